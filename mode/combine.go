package mode

import (
	"fmt"
	"sort"

	"github.com/tablelex/legs/dfa"
)

// Combine unions a set of per-mode minimized DFAs into one combined DFA,
// following spec section 4.7: modes are stable-sorted with "main" first
// and the rest lexically, then each mode's nodes are remapped in
// sorted-old-id order onto a fresh range of the combined node space. It
// returns the combined DFA, the sorted Mode list, and nodeModes (every
// combined node's owning mode name, used only for diagnostics).
func Combine(modeDFAs map[string]*dfa.DFA) (*dfa.DFA, []Mode, map[int]string, error) {
	names := make([]string, 0, len(modeDFAs))
	for name := range modeDFAs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if names[i] == "main" {
			return names[j] != "main"
		}
		if names[j] == "main" {
			return false
		}
		return names[i] < names[j]
	})

	combined := &dfa.DFA{
		Transitions:  make(map[int]map[byte]int),
		MatchNames:   make(map[int]string),
		LiteralRules: make(map[string][]byte),
	}
	nodeModes := make(map[int]string)
	modes := make([]Mode, 0, len(names))

	var collisions []string
	next := 0

	for _, name := range names {
		d := modeDFAs[name]
		remap := make(map[int]int, len(d.AllNodes()))
		for _, old := range d.AllNodes() {
			remap[old] = next
			next++
		}

		for oldSrc, byByte := range d.Transitions {
			newSrc := remap[oldSrc]
			row := make(map[byte]int, len(byByte))
			for b, oldDst := range byByte {
				row[b] = remap[oldDst]
			}
			combined.Transitions[newSrc] = row
			nodeModes[newSrc] = name
		}
		for oldNode, ruleName := range d.MatchNames {
			newNode := remap[oldNode]
			combined.MatchNames[newNode] = ruleName
		}

		incompleteName := "incomplete"
		if name != "main" {
			incompleteName = name + "_incomplete"
		}
		modes = append(modes, Mode{
			Name:           name,
			Start:          remap[d.StartNode],
			Invalid:        remap[d.InvalidNode],
			InvalidName:    d.InvalidName,
			IncompleteName: incompleteName,
		})

		for ruleName, bytes := range d.LiteralRules {
			if existing, ok := combined.LiteralRules[ruleName]; ok && !bytesEqual(existing, bytes) {
				collisions = append(collisions, fmt.Sprintf(
					"literal rule %q defined with different text in more than one mode", ruleName))
				continue
			}
			combined.LiteralRules[ruleName] = bytes
		}
	}

	ruleModes := make(map[string][]string)
	for _, name := range names {
		for _, ruleName := range modeDFAs[name].RuleNames() {
			ruleModes[ruleName] = append(ruleModes[ruleName], name)
		}
	}
	for ruleName, owners := range ruleModes {
		if len(owners) > 1 {
			collisions = append(collisions, fmt.Sprintf(
				"rule name %q is defined in more than one mode: %v", ruleName, owners))
		}
	}

	if len(collisions) > 0 {
		sort.Strings(collisions)
		return nil, nil, nil, &CollisionError{Messages: collisions}
	}

	// The combined DFA has one start/invalid pair per mode, carried on the
	// Mode records; StartNode/InvalidNode here default to main's so that
	// DFA.Match keeps working as a convenience for single-mode grammars and
	// ad hoc inspection.
	combined.StartNode = modes[0].Start
	combined.InvalidNode = modes[0].Invalid
	combined.InvalidName = modes[0].InvalidName

	return combined, modes, nodeModes, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
