package literal

import (
	"fmt"
	"sort"

	"github.com/coregx/ahocorasick"
)

// OverlapScanner reports, for a mode's full set of literal rules, every
// pair where one rule's text is found inside another's — an advisory
// signal (spec section 4.9) that the grammar may have a redundant literal
// rule, since the shorter one can never win a longest-match contest
// against the longer one and is only reachable via literal bias on an
// exact, full-length match.
//
// For each candidate outer rule, the other rules' literal bytes are built
// into an Aho-Corasick automaton and the outer rule's own text is searched
// against it as a real haystack: since the automaton never contains the
// outer rule's own pattern, a hit means some other rule's literal genuinely
// occurs inside it, not the trivial self-match a pattern always has against
// itself. Only on that hit is the O(len(outer)·len(inner)) comparison run,
// to name which rule(s) actually matched for the diagnostic; the common
// case of no overlap at all costs one automaton search per rule, not a full
// pairwise scan.
func OverlapScanner(literalRules map[string][]byte) ([]string, error) {
	if len(literalRules) < 2 {
		return nil, nil
	}

	names := make([]string, 0, len(literalRules))
	for name := range literalRules {
		names = append(names, name)
	}
	sort.Strings(names)

	var notes []string
	for i, outer := range names {
		others := make([]string, 0, len(names)-1)
		others = append(others, names[:i]...)
		others = append(others, names[i+1:]...)

		builder := ahocorasick.NewBuilder()
		for _, name := range others {
			builder.AddPattern(literalRules[name])
		}
		automaton, err := builder.Build()
		if err != nil {
			return nil, fmt.Errorf("literal: building overlap automaton: %w", err)
		}

		outerText := literalRules[outer]
		if !automaton.IsMatch(outerText) {
			continue // no other rule's literal occurs anywhere in outer's text.
		}

		for _, inner := range others {
			text := literalRules[inner]
			if len(text) == 0 || len(text) >= len(outerText) {
				continue
			}
			if containsBytes(outerText, text) {
				notes = append(notes, fmt.Sprintf(
					"note: literal rule %q (%q) contains literal rule %q (%q)",
					outer, outerText, inner, text))
			}
		}
	}
	sort.Strings(notes)
	return notes, nil
}

func containsBytes(haystack, needle []byte) bool {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return false
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if string(haystack[i:i+len(needle)]) == string(needle) {
			return true
		}
	}
	return false
}
