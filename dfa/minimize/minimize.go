// Package minimize implements Hopcroft-style partition refinement over a
// dfa.DFA (spec section 4.5): "{n} for each match node" plus "non-match
// nodes" as the initial partition, so that minimization never merges two
// rules with distinct names, then repeated splitting against a
// reverse-transition index until no class can be split further.
package minimize

import (
	"fmt"
	"sort"

	"github.com/tablelex/legs/dfa"
)

// class is a mutable set of node ids sharing a partition identity. Pointer
// identity stands in for the reference-equality "set objects" the
// reference algorithm keys its worklist and membership map by.
type class struct {
	members map[int]bool
}

func newClass(nodes ...int) *class {
	c := &class{members: make(map[int]bool, len(nodes))}
	for _, n := range nodes {
		c.members[n] = true
	}
	return c
}

func (c *class) sortedMembers() []int {
	out := make([]int, 0, len(c.members))
	for n := range c.members {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// Minimize runs partition refinement over d and returns a new, minimized
// DFA. The result's node numbering is canonical: classes are sorted by the
// sorted tuple of their members' original node ids and renumbered in that
// order (spec section 4.5, "Renumbering"), independent of map iteration
// order, so two calls over an equal DFA always produce identical output.
//
// d must already be sink-completed and free of ambiguity (dfa.Construct
// guarantees both); Minimize returns an *InvariantError if the input or an
// intermediate result is nonetheless inconsistent, which indicates a
// generator bug rather than a malformed grammar.
func Minimize(d *dfa.DFA) (*dfa.DFA, error) {
	if d.IsEmpty() {
		return &dfa.DFA{
			Transitions:  make(map[int]map[byte]int),
			MatchNames:   make(map[int]string),
			LiteralRules: d.LiteralRules,
			InvalidName:  d.InvalidName,
		}, nil
	}

	allNodes := d.AllNodes()

	// Initial partition: one singleton class per match node (including the
	// invalid sink, which carries its own match name and so gets its own
	// singleton class), plus one class holding every other node.
	var initial []*class
	matchNodeSet := make(map[int]bool, len(d.MatchNames))
	for _, node := range d.MatchNodes() {
		matchNodeSet[node] = true
		initial = append(initial, newClass(node))
	}
	var nonMatch []int
	for _, node := range allNodes {
		if !matchNodeSet[node] {
			nonMatch = append(nonMatch, node)
		}
	}
	if len(nonMatch) > 0 {
		initial = append(initial, newClass(nonMatch...))
	}

	partition := make(map[int]*class, len(allNodes))
	for _, c := range initial {
		for n := range c.members {
			partition[n] = c
		}
	}

	revTransitions := make(map[int]map[byte][]int)
	for src, byByte := range d.Transitions {
		for b, dst := range byByte {
			byByte2, ok := revTransitions[dst]
			if !ok {
				byByte2 = make(map[byte][]int)
				revTransitions[dst] = byByte2
			}
			byByte2[b] = append(byByte2[b], src)
		}
	}

	// refine splits every class intersecting refiningSet into its
	// intersection with refiningSet and its remainder, mutating partition
	// and sets in place, and returns the (new, old) pair for each class
	// actually split.
	refine := func(refiningSet map[int]bool) [][2]*class {
		bySplitClass := make(map[*class]map[int]bool)
		for node := range refiningSet {
			c := partition[node]
			sub, ok := bySplitClass[c]
			if !ok {
				sub = make(map[int]bool)
				bySplitClass[c] = sub
			}
			sub[node] = true
		}
		var pairs [][2]*class
		for c, intersection := range bySplitClass {
			if len(intersection) == len(c.members) {
				continue // whole class is inside refiningSet, no split.
			}
			newC := &class{members: intersection}
			for n := range intersection {
				partition[n] = newC
				delete(c.members, n)
			}
			pairs = append(pairs, [2]*class{newC, c})
		}
		return pairs
	}

	remaining := append([]*class(nil), initial...)
	inWorklist := make(map[*class]bool, len(initial))
	for _, c := range initial {
		inWorklist[c] = true
	}

	alphabet := make([]byte, 256)
	for i := range alphabet {
		alphabet[i] = byte(i)
	}

	for len(remaining) > 0 {
		a := remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]
		inWorklist[a] = false

		for _, b := range alphabet {
			dsts := make(map[int]bool)
			for node := range a.members {
				for _, src := range revTransitions[node][b] {
					dsts[src] = true
				}
			}
			if len(dsts) == 0 || len(dsts) == len(partition) {
				continue
			}
			for _, pair := range refine(dsts) {
				newC, oldC := pair[0], pair[1]
				preferNew := len(newC.members) < len(oldC.members)
				if preferNew {
					enqueueIfAbsent(&remaining, inWorklist, newC, oldC)
				} else {
					enqueueIfAbsent(&remaining, inWorklist, oldC, newC)
				}
			}
		}
	}

	finalClasses := make(map[*class]bool)
	for _, c := range partition {
		finalClasses[c] = true
	}
	ordered := make([]*class, 0, len(finalClasses))
	for c := range finalClasses {
		ordered = append(ordered, c)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return lessIntSlice(ordered[i].sortedMembers(), ordered[j].sortedMembers())
	})

	mapping := make(map[int]int, len(partition))
	for newID, c := range ordered {
		for _, oldID := range c.sortedMembers() {
			mapping[oldID] = newID
		}
	}

	out := &dfa.DFA{
		Transitions:  make(map[int]map[byte]int),
		MatchNames:   make(map[int]string),
		StartNode:    mapping[d.StartNode],
		InvalidNode:  mapping[d.InvalidNode],
		InvalidName:  d.InvalidName,
		LiteralRules: d.LiteralRules,
	}

	for oldSrc, byByte := range d.Transitions {
		newSrc := mapping[oldSrc]
		row, ok := out.Transitions[newSrc]
		if !ok {
			row = make(map[byte]int)
			out.Transitions[newSrc] = row
		}
		for b, oldDst := range byByte {
			newDst := mapping[oldDst]
			if existing, ok := row[b]; ok && existing != newDst {
				return nil, &InvariantError{
					Message: fmt.Sprintf("src %d->%d, byte %q: dst %d->%d conflicts with already-assigned %d",
						oldSrc, newSrc, b, oldDst, newDst, existing),
				}
			}
			row[b] = newDst
		}
	}

	for oldNode, name := range d.MatchNames {
		newNode := mapping[oldNode]
		if existing, ok := out.MatchNames[newNode]; ok && existing != name {
			return nil, &InvariantError{
				Message: fmt.Sprintf("node %d (was %d) merges rules %q and %q", newNode, oldNode, existing, name),
			}
		}
		out.MatchNames[newNode] = name
	}

	return out, nil
}

// enqueueIfAbsent adds preferred to the worklist if it isn't already
// queued; otherwise it falls back to queuing fallback. Mirrors the
// reference algorithm's choice to always prefer re-examining the smaller
// of a split pair, falling back to the larger one only if the smaller is
// already pending.
func enqueueIfAbsent(remaining *[]*class, inWorklist map[*class]bool, preferred, fallback *class) {
	if !inWorklist[preferred] {
		*remaining = append(*remaining, preferred)
		inWorklist[preferred] = true
	} else if !inWorklist[fallback] {
		*remaining = append(*remaining, fallback)
		inWorklist[fallback] = true
	}
}

func lessIntSlice(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
