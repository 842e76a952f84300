package legs

import (
	"fmt"

	"github.com/tablelex/legs/dfa"
	"github.com/tablelex/legs/nfa"
)

// CrossCheckError reports a three-way disagreement CrossCheck found
// between an NFA, its fat DFA, and that DFA's minimized form over a
// specific input — testable properties 1 through 3 of spec section 8
// stated as a runtime check rather than only as a property-test claim.
type CrossCheckError struct {
	Input   string
	Message string
}

func (e *CrossCheckError) Error() string {
	return fmt.Sprintf("legs: cross-check failed on %q: %s", e.Input, e.Message)
}

// CrossCheck simulates n, fat, and min over s and confirms they agree,
// mirroring the original generator's `-match` flag (spec section 6,
// "CLI surface"): a single ad hoc string run through all three stages of
// the pipeline as a quick consistency probe, independent of and
// complementary to the property-based tests in the dfa and minimize
// packages.
//
//   - If n matches s ambiguously (more than one rule name), that alone is
//     reported: generation should have already failed on this grammar.
//   - Otherwise fat must agree with n exactly: the same single name, or
//     both reporting no match (subset consistency, property 2).
//   - min must agree with fat exactly, name for name (minimization
//     preserves semantics, property 3).
func CrossCheck(n *nfa.NFA, fat, min *dfa.DFA, s string) error {
	text := []byte(s)

	names := n.Match(text)
	if len(names) > 1 {
		return &CrossCheckError{Input: s, Message: fmt.Sprintf("nfa matches ambiguously: %v", names)}
	}

	fatName, fatOK := fat.Match(text)
	switch len(names) {
	case 0:
		if fatOK {
			return &CrossCheckError{Input: s, Message: fmt.Sprintf(
				"nfa has no match but fat dfa matched %q", fatName)}
		}
	case 1:
		if !fatOK {
			return &CrossCheckError{Input: s, Message: fmt.Sprintf(
				"nfa matched %q but fat dfa has no match", names[0])}
		}
		if fatName != names[0] {
			return &CrossCheckError{Input: s, Message: fmt.Sprintf(
				"nfa matched %q but fat dfa matched %q", names[0], fatName)}
		}
	}

	minName, minOK := min.Match(text)
	if fatOK != minOK {
		return &CrossCheckError{Input: s, Message: fmt.Sprintf(
			"fat dfa match=%v but minimized dfa match=%v", fatOK, minOK)}
	}
	if fatOK && fatName != minName {
		return &CrossCheckError{Input: s, Message: fmt.Sprintf(
			"fat dfa matched %q but minimized dfa matched %q", fatName, minName)}
	}

	return nil
}
