package legs

import (
	"errors"
	"testing"

	"github.com/tablelex/legs/dfa"
	"github.com/tablelex/legs/ir"
	"github.com/tablelex/legs/mode"
	"github.com/tablelex/legs/nfa"
)

func wordWhitespaceInput() Input {
	word := ir.Plus{Child: ir.CharClass{Ranges: []ir.ByteRange{{Lo: 'a', Hi: 'z'}}}}
	ws := ir.Plus{Child: ir.CharClass{Ranges: []ir.ByteRange{{Lo: ' ', Hi: ' '}}}}
	return Input{
		Patterns: map[string]ir.Pattern{
			"word": word,
			"ws":   ws,
		},
		ModePatternNames: map[string][]string{
			"main": {"word", "ws"},
		},
		License: "MIT",
	}
}

func TestGenerateProducesCombinedDFA(t *testing.T) {
	result, diags, err := Generate(wordWhitespaceInput())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("diagnostics = %v, want none", diags)
	}
	if result.DFA == nil || result.DFA.IsEmpty() {
		t.Fatal("expected a non-empty combined DFA")
	}
	if len(result.Modes) != 1 || result.Modes[0].Name != "main" {
		t.Fatalf("Modes = %v, want a single main mode", result.Modes)
	}
	if result.License != "MIT" {
		t.Fatalf("License = %q, want MIT", result.License)
	}
	if name, ok := result.DFA.Match([]byte("hi")); !ok || name != "word" {
		t.Fatalf("Match(hi) = %q, %v, want word, true", name, ok)
	}
	if name, ok := result.DFA.Match([]byte("  ")); !ok || name != "ws" {
		t.Fatalf("Match(spaces) = %q, %v, want ws, true", name, ok)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	r1, _, err := Generate(wordWhitespaceInput())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	r2, _, err := Generate(wordWhitespaceInput())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(r1.DFA.Transitions) != len(r2.DFA.Transitions) {
		t.Fatalf("node counts differ across runs: %d vs %d", len(r1.DFA.Transitions), len(r2.DFA.Transitions))
	}
	for node, byByte := range r1.DFA.Transitions {
		other, ok := r2.DFA.Transitions[node]
		if !ok {
			t.Fatalf("node %d missing on second run", node)
		}
		for b, dst := range byByte {
			if other[b] != dst {
				t.Fatalf("node %d byte %d: %d vs %d across runs", node, b, dst, other[b])
			}
		}
	}
}

func TestGenerateModeTransitionsPassThrough(t *testing.T) {
	open := ir.Char{Byte: '('}
	closeParen := ir.Char{Byte: ')'}
	word := ir.Plus{Child: ir.CharClass{Ranges: []ir.ByteRange{{Lo: 'a', Hi: 'z'}}}}

	transitions := mode.Transitions{
		{Mode: "main", Kind: "open"}: {Mode: "paren", PopKind: "close"},
	}
	in := Input{
		Patterns: map[string]ir.Pattern{
			"open":  open,
			"close": closeParen,
			"word":  word,
		},
		ModePatternNames: map[string][]string{
			"main":  {"open"},
			"paren": {"close", "word"},
		},
		ModeTransitions: transitions,
	}

	result, _, err := Generate(in)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(result.Modes) != 2 {
		t.Fatalf("Modes = %v, want 2 modes", result.Modes)
	}
	if result.Modes[0].Name != "main" {
		t.Fatalf("Modes[0] = %q, want main sorted first", result.Modes[0].Name)
	}
	got, ok := result.ModeTransitions[mode.Key{Mode: "main", Kind: "open"}]
	if !ok || got.Mode != "paren" || got.PopKind != "close" {
		t.Fatalf("ModeTransitions lost the main/open entry: %v, %v", got, ok)
	}
}

func TestGenerateLiteralOverlapAdvisory(t *testing.T) {
	kwIf := ir.Seq{Children: []ir.Pattern{ir.Char{Byte: 'i'}, ir.Char{Byte: 'f'}}}
	kwIffy := ir.Seq{Children: []ir.Pattern{
		ir.Char{Byte: 'i'}, ir.Char{Byte: 'f'}, ir.Char{Byte: 'f'}, ir.Char{Byte: 'y'},
	}}
	in := Input{
		Patterns: map[string]ir.Pattern{
			"kw_if":   kwIf,
			"kw_iffy": kwIffy,
		},
		ModePatternNames: map[string][]string{
			"main": {"kw_if", "kw_iffy"},
		},
	}
	_, diags, err := Generate(in)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(diags) == 0 {
		t.Fatal("expected a literal overlap advisory note")
	}
	found := false
	for _, line := range diags {
		if line[:5] == "note:" {
			found = true
		}
	}
	if !found {
		t.Fatalf("diagnostics = %v, want a note: line", diags)
	}
}

func TestGenerateDisablingAdvisoriesSuppressesNotes(t *testing.T) {
	kwIf := ir.Seq{Children: []ir.Pattern{ir.Char{Byte: 'i'}, ir.Char{Byte: 'f'}}}
	kwIffy := ir.Seq{Children: []ir.Pattern{
		ir.Char{Byte: 'i'}, ir.Char{Byte: 'f'}, ir.Char{Byte: 'f'}, ir.Char{Byte: 'y'},
	}}
	in := Input{
		Patterns: map[string]ir.Pattern{
			"kw_if":   kwIf,
			"kw_iffy": kwIffy,
		},
		ModePatternNames: map[string][]string{
			"main": {"kw_if", "kw_iffy"},
		},
	}
	cfg := DefaultConfig()
	cfg.EnableLiteralOverlapAdvisories = false
	// The node after "iff" is reachable from kw_if's match node and accepts
	// no rule, so post-match warnings must be off too for a silent run.
	cfg.EnablePostMatchAdvisories = false
	_, diags, err := GenerateWithConfig(in, cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("diagnostics = %v, want none with advisories disabled", diags)
	}
}

func TestGenerateFatalOnAmbiguity(t *testing.T) {
	in := Input{
		Patterns: map[string]ir.Pattern{
			"a": ir.Seq{Children: []ir.Pattern{ir.Char{Byte: 'a'}, ir.Char{Byte: 'b'}}},
			"b": ir.Seq{Children: []ir.Pattern{ir.Char{Byte: 'a'}, ir.Char{Byte: 'b'}}},
		},
		ModePatternNames: map[string][]string{
			"main": {"a", "b"},
		},
	}
	_, _, err := Generate(in)
	if err == nil {
		t.Fatal("expected an ambiguity error")
	}
	if _, ok := err.(*dfa.AmbiguityError); !ok {
		t.Fatalf("err = %T, want *dfa.AmbiguityError", err)
	}
	if !errors.Is(err, dfa.ErrAmbiguousRule) {
		t.Fatalf("errors.Is(err, dfa.ErrAmbiguousRule) = false for %v", err)
	}
}

func TestGenerateFatalOnTrivialMatch(t *testing.T) {
	in := Input{
		Patterns: map[string]ir.Pattern{
			"r": ir.Star{Child: ir.Char{Byte: 'a'}},
		},
		ModePatternNames: map[string][]string{
			"main": {"r"},
		},
	}
	_, _, err := Generate(in)
	if err == nil {
		t.Fatal("expected a trivial-match validation error")
	}
	if _, ok := err.(*nfa.ValidationError); !ok {
		t.Fatalf("err = %T, want *nfa.ValidationError", err)
	}
	if !errors.Is(err, nfa.ErrTriviallyMatched) {
		t.Fatalf("errors.Is(err, nfa.ErrTriviallyMatched) = false for %v", err)
	}
}

func TestGenerateRejectsUndefinedRule(t *testing.T) {
	in := Input{
		Patterns: map[string]ir.Pattern{
			"word": ir.Char{Byte: 'a'},
		},
		ModePatternNames: map[string][]string{
			"main": {"word", "missing"},
		},
	}
	_, _, err := Generate(in)
	if err == nil {
		t.Fatal("expected an InputError for the undefined rule")
	}
	if _, ok := err.(*InputError); !ok {
		t.Fatalf("err = %T, want *InputError", err)
	}
}

func TestGenerateRejectsEmptyInput(t *testing.T) {
	_, _, err := Generate(Input{})
	if err == nil {
		t.Fatal("expected an InputError for no modes")
	}
}

func TestGenerateRejectsInvalidMaxModesConfig(t *testing.T) {
	in := wordWhitespaceInput()
	cfg := DefaultConfig()
	cfg.MaxModes = 0
	_, _, err := GenerateWithConfig(in, cfg)
	if err == nil {
		t.Fatal("expected a ConfigError for MaxModes below the valid range")
	}
	if _, ok := err.(*ConfigError); !ok {
		t.Fatalf("err = %T, want *ConfigError", err)
	}
}

func TestGenerateRejectsModeCountOverLimit(t *testing.T) {
	in := Input{
		Patterns: map[string]ir.Pattern{
			"open":  ir.Char{Byte: '('},
			"close": ir.Char{Byte: ')'},
		},
		ModePatternNames: map[string][]string{
			"main":  {"open"},
			"paren": {"close"},
		},
	}
	cfg := DefaultConfig()
	cfg.MaxModes = 1
	_, _, err := GenerateWithConfig(in, cfg)
	if err == nil {
		t.Fatal("expected an InputError for exceeding MaxModes")
	}
	if _, ok := err.(*InputError); !ok {
		t.Fatalf("err = %T, want *InputError", err)
	}
}
