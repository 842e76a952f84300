package dfa

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/tablelex/legs/internal/conv"
	"github.com/tablelex/legs/literal"
	"github.com/tablelex/legs/nfa"
)

// Construct performs subset construction (spec section 4.4) over an NFA,
// producing a deterministic DFA plus any advisory notes literal.OverlapScanner
// found among the NFA's literal rules.
//
// Node 0 of the result is always the epsilon-closure of the NFA's start
// node, and it alone is sink-completed: every byte with no discovered
// transition is wired to invalid. Node 1 is always the invalid sink,
// reserved up front since the NFA's own node 1 is by construction
// unreachable from its start; it transitions to itself on exactly the same
// bytes that were missing from the start node, no more. Every other node is
// discovered by a worklist over distinct reachable NFA subsets, visited in
// the order the worklist produces them so that two calls over the same NFA
// produce node-for-node identical output, and keeps only the bytes subset
// construction actually found: a missing byte there means no further match
// is possible from that state, not invalid input.
func Construct(n *nfa.NFA) (*DFA, []string, error) {
	d := &DFA{
		Transitions:  make(map[int]map[byte]int),
		MatchNames:   make(map[int]string),
		StartNode:    Start,
		InvalidNode:  Invalid,
		LiteralRules: n.LiteralRules,
	}

	key := func(set []int) string {
		sorted := append([]int(nil), set...)
		sort.Ints(sorted)
		parts := make([]string, len(sorted))
		for i, v := range sorted {
			parts[i] = strconv.Itoa(v)
		}
		return strings.Join(parts, ",")
	}

	nodeOf := make(map[string]int)
	setOf := make(map[int][]int)

	startSet := n.EpsilonClosure([]int{nfa.Start})
	nodeOf[key(startSet)] = Start
	setOf[Start] = startSet
	d.Transitions[Invalid] = make(map[byte]int)
	nextID := Invalid + 1

	allocate := func(set []int) int {
		k := key(set)
		if id, ok := nodeOf[k]; ok {
			return id
		}
		id := nextID
		nextID++
		_ = conv.IntToUint32(id)
		nodeOf[k] = id
		setOf[id] = set
		return id
	}

	var conflicts []string
	var invalidChars []byte

	worklist := []int{Start}
	visited := map[int]bool{Start: true, Invalid: true}

	for len(worklist) > 0 {
		node := worklist[0]
		worklist = worklist[1:]

		set := setOf[node]
		d.Transitions[node] = make(map[byte]int)

		for b := 0; b < 256; b++ {
			dstSet := n.Advance(set, byte(b))
			if len(dstSet) == 0 {
				// Sink completion (spec section 4.4 step 4) only totalizes
				// the start node. Everywhere else, a byte with no outgoing
				// transition stays absent: "no further match possible from
				// here," and the runtime falls back to the last match it
				// saw rather than walking into invalid.
				if node == Start {
					d.Transitions[node][byte(b)] = Invalid
					invalidChars = append(invalidChars, byte(b))
				}
				continue
			}
			dstID := allocate(dstSet)
			d.Transitions[node][byte(b)] = dstID
			if !visited[dstID] {
				visited[dstID] = true
				worklist = append(worklist, dstID)
			}
		}

		var names []string
		for _, nfaNode := range set {
			if name, ok := n.MatchNames[nfaNode]; ok {
				names = append(names, name)
			}
		}
		if len(names) > 0 {
			res := literal.TieBreak(names, n.LiteralRules)
			if res.Ambiguous() {
				if len(res.LiteralCollision) > 1 {
					conflicts = append(conflicts, fmt.Sprintf(
						"node %d: literal rule collision among %s on %q", node, strings.Join(res.LiteralCollision, ", "),
						n.LiteralRules[res.LiteralCollision[0]]))
				} else {
					conflicts = append(conflicts, fmt.Sprintf(
						"node %d: ambiguous match among %s", node, strings.Join(res.NonLiteralAmbiguity, ", ")))
				}
			} else {
				d.MatchNames[node] = res.Winner
			}
		}
	}

	// Invalid transitions to itself on exactly the bytes that were missing
	// from start: those are the only bytes that can ever land the runtime in
	// invalid in the first place, so they are the only bytes it needs to
	// keep consuming there. A byte that start does handle is never added
	// here, so landing in invalid and then seeing such a byte leaves the
	// walk with no transition, and the runtime falls back to its last
	// accepted match instead of remaining stuck in invalid forever.
	for _, b := range invalidChars {
		d.Transitions[Invalid][b] = Invalid
	}
	d.InvalidName = n.MatchNames[nfa.Invalid]

	// The NFA's invalid node already carries its own match name (spec
	// section 4.2), so the DFA's invalid sink is a match node exactly like
	// any rule's: landing there and then failing to extend further reports
	// one invalid token rather than leaving the lexer runtime to guess.
	d.MatchNames[Invalid] = d.InvalidName

	notes, err := literal.OverlapScanner(n.LiteralRules)
	if err != nil {
		return nil, nil, err
	}

	if len(conflicts) > 0 {
		return nil, nil, &AmbiguityError{Conflicts: conflicts}
	}

	return d, notes, nil
}
