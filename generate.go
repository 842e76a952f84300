package legs

import (
	"fmt"
	"sort"

	"github.com/tablelex/legs/dfa"
	"github.com/tablelex/legs/dfa/minimize"
	"github.com/tablelex/legs/ir"
	"github.com/tablelex/legs/mode"
	"github.com/tablelex/legs/nfa"
)

// Input is everything the parser collaborator hands the core (spec section
// 6, "Input to the core"): every named pattern, which rule names belong to
// which mode, the pushdown transition table between modes, and a license
// string passed through untouched to emitters.
type Input struct {
	// Patterns maps every rule name, across every mode, to its compiled
	// pattern IR.
	Patterns map[string]ir.Pattern

	// ModePatternNames maps a mode name to the rule names active in it.
	// Generate sorts each mode's names lexically before building its NFA;
	// callers do not need to pre-sort.
	ModePatternNames map[string][]string

	// ModeTransitions is the pushdown table the lexer runtime consults when
	// a token is emitted: which mode to push, and what kind pops back out.
	// Generate passes it straight through to Result.
	ModeTransitions mode.Transitions

	// License is pass-through text for emitters; Generate never inspects
	// it.
	License string
}

// Result is everything Generate hands the emitter collaborators (spec
// section 6, "Output from the core").
type Result struct {
	DFA             *dfa.DFA
	Modes           []mode.Mode
	NodeModes       map[int]string
	ModeTransitions mode.Transitions
	License         string
}

// InputError reports a malformed Input: an empty grammar, a mode
// referencing an undefined rule, or a grammar past Config's size limits.
// It is a fatal semantic error (spec section 7).
type InputError struct {
	Message string
}

func (e *InputError) Error() string { return "legs: " + e.Message }

// Generate runs the full pipeline (spec section 2) with DefaultConfig:
// build one NFA per mode, validate it, subset-construct its fat DFA,
// minimize it, then combine every mode's minimized DFA into one. It
// returns the combined result, any non-fatal advisory diagnostics, and an
// error if any step hit a fatal condition.
func Generate(in Input) (*Result, Diagnostics, error) {
	return GenerateWithConfig(in, DefaultConfig())
}

// GenerateWithConfig is Generate with an explicit Config.
func GenerateWithConfig(in Input, cfg Config) (*Result, Diagnostics, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if len(in.ModePatternNames) == 0 {
		return nil, nil, &InputError{Message: "no modes defined"}
	}
	if len(in.ModePatternNames) > cfg.MaxModes {
		return nil, nil, &InputError{Message: fmt.Sprintf(
			"%d modes exceeds the configured limit of %d", len(in.ModePatternNames), cfg.MaxModes)}
	}

	modeNames := make([]string, 0, len(in.ModePatternNames))
	for name := range in.ModePatternNames {
		modeNames = append(modeNames, name)
	}
	sort.Strings(modeNames)

	modeDFAs := make(map[string]*dfa.DFA, len(modeNames))
	var diagnostics Diagnostics

	for _, modeName := range modeNames {
		ruleNames := in.ModePatternNames[modeName]
		if len(ruleNames) > cfg.MaxRulesPerMode {
			return nil, nil, &InputError{Message: fmt.Sprintf(
				"mode %q: %d rules exceeds the configured limit of %d", modeName, len(ruleNames), cfg.MaxRulesPerMode)}
		}
		sorted := append([]string(nil), ruleNames...)
		sort.Strings(sorted)

		named := make([]nfa.NamedPattern, 0, len(sorted))
		for _, ruleName := range sorted {
			pattern, ok := in.Patterns[ruleName]
			if !ok {
				return nil, nil, &InputError{Message: fmt.Sprintf(
					"mode %q references undefined rule %q", modeName, ruleName)}
			}
			named = append(named, nfa.NamedPattern{Name: ruleName, Pattern: pattern})
		}

		n, err := nfa.BuildMode(modeName, named)
		if err != nil {
			return nil, nil, err
		}
		if msgs := n.Validate(); len(msgs) > 0 {
			return nil, nil, &nfa.ValidationError{Mode: modeName, Messages: msgs}
		}

		fat, notes, err := dfa.Construct(n)
		if err != nil {
			return nil, nil, err
		}
		if cfg.EnableLiteralOverlapAdvisories {
			diagnostics = append(diagnostics, notes...)
		}

		min, err := minimize.Minimize(fat)
		if err != nil {
			return nil, nil, err
		}
		if cfg.EnablePostMatchAdvisories {
			for _, node := range min.PostMatchNodes() {
				diagnostics = append(diagnostics, fmt.Sprintf(
					"warning: mode %q: node %d is reachable after a match but accepts no rule itself", modeName, node))
			}
		}

		modeDFAs[modeName] = min
	}

	combined, modes, nodeModes, err := mode.Combine(modeDFAs)
	if err != nil {
		return nil, nil, err
	}

	return &Result{
		DFA:             combined,
		Modes:           modes,
		NodeModes:       nodeModes,
		ModeTransitions: in.ModeTransitions,
		License:         in.License,
	}, diagnostics, nil
}
