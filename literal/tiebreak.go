// Package literal resolves naming conflicts when several rules can match
// the same text, and flags likely over-specification among literal rules.
//
// Two concerns live here because they are both about literal bias (spec
// section 4.4, "Literal-bias tie-break"): TieBreak decides which single
// rule name wins when a DFA node accepts more than one rule, and
// OverlapScanner looks across all of a mode's literal rules for one whose
// text is swallowed by another, which is usually a sign the grammar has a
// redundant rule.
package literal

import "sort"

// Resolution is the outcome of coalescing the rule names that a single DFA
// node accepts into the one name the DFA will actually report.
type Resolution struct {
	// Winner is the single name the coalesced node should carry. Empty if
	// the candidates were ambiguous.
	Winner string

	// LiteralCollision lists two or more literal rule names that tied
	// (spec section 7: "literal rule collision"). Non-empty only when
	// len >= 2.
	LiteralCollision []string

	// NonLiteralAmbiguity lists two or more non-literal rule names that
	// tied with no literal rule to break the tie (spec section 4.4 step 5,
	// "Ambiguity detection"). Non-empty only when len >= 2.
	NonLiteralAmbiguity []string
}

// Ambiguous reports whether this resolution failed to produce a single
// winner.
func (r Resolution) Ambiguous() bool {
	return len(r.LiteralCollision) > 1 || len(r.NonLiteralAmbiguity) > 1
}

// TieBreak resolves the set of candidate rule names accepted by one DFA
// node. literalRules names every rule (in any mode) whose pattern matches
// exactly one byte string; a single literal candidate wins over any number
// of non-literal ones, and a lone candidate wins outright. Ties are never
// silently resolved: two or more literal candidates are reported as a
// literal-rule collision (two literal rules tying means they matched the
// identical byte string), and two or more non-literal candidates with no
// literal among them as a non-literal ambiguity. Both lists are sorted
// lexically.
func TieBreak(candidates []string, literalRules map[string][]byte) Resolution {
	if len(candidates) == 0 {
		return Resolution{}
	}
	sorted := append([]string(nil), candidates...)
	sort.Strings(sorted)

	var lit []string
	for _, name := range sorted {
		if _, ok := literalRules[name]; ok {
			lit = append(lit, name)
		}
	}

	if len(lit) > 0 {
		if len(lit) > 1 {
			return Resolution{LiteralCollision: lit}
		}
		return Resolution{Winner: lit[0]}
	}

	if len(sorted) > 1 {
		return Resolution{NonLiteralAmbiguity: sorted}
	}
	return Resolution{Winner: sorted[0]}
}
