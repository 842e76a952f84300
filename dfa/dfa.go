// Package dfa constructs a deterministic finite automaton from an NFA via
// subset construction (Construct, spec section 4.4) and defines the DFA
// type those automata — and later the minimizer in package minimize —
// operate on (spec section 4.6).
//
// Like package nfa, a DFA is a flat, integer-keyed transition table, but
// only the start node is total: Construct's sink completion step (spec
// section 4.4 step 4) wires every byte the start node lacks to invalid, and
// invalid self-loops on exactly that same byte set — the only bytes that
// could ever land the runtime there in the first place. Every other
// reachable node keeps only the bytes subset construction actually found. A missing transition there means no further
// match is possible from that state, not invalid input; the lexer runtime
// falls back to the last match it saw, which is invalid's own match name if
// that is where the run last was. Construct always numbers the start node
// 0 and the invalid sink 1, but minimization's canonical renumbering (spec
// section 4.5) does not special-case either one, so every DFA carries its
// own StartNode and InvalidNode rather than callers assuming fixed ids.
package dfa

import (
	"fmt"
	"sort"
	"strings"
)

// Invalid is the node id Construct always assigns to the invalid sink,
// before any minimization or mode combination has run.
const Invalid = 1

// Start is the node id Construct always assigns to the initial state,
// before any minimization or mode combination has run.
const Start = 0

// DFA is an immutable deterministic finite automaton.
type DFA struct {
	// Transitions maps a source node to a map of byte value to the single
	// destination node reached on that byte.
	Transitions map[int]map[byte]int

	// MatchNames maps a match node to the single rule name it accepts.
	MatchNames map[int]string

	// StartNode is the initial node for this DFA.
	StartNode int

	// InvalidNode is the invalid sink node for this DFA: it self-loops on
	// exactly the bytes the start node routes there, and is itself a match
	// node (named InvalidName) so the lexer runtime can fall back to it like
	// any other rule.
	InvalidNode int

	// InvalidName is the token kind reported when the lexer falls into the
	// invalid sink with no earlier accepted match to fall back to (spec
	// section 4.8). Carried through from the NFA's invalid match node.
	InvalidName string

	// LiteralRules maps every literal rule name reachable in this DFA to
	// its literal bytes, carried through from the NFA it was built from.
	LiteralRules map[string][]byte
}

// IsEmpty reports whether the DFA has no transitions at all.
func (d *DFA) IsEmpty() bool { return len(d.Transitions) == 0 }

// AllNodes returns the sorted set of every node id mentioned as a source or
// destination anywhere in the transition table.
func (d *DFA) AllNodes() []int {
	seen := make(map[int]bool)
	for src, byByte := range d.Transitions {
		seen[src] = true
		for _, dst := range byByte {
			seen[dst] = true
		}
	}
	out := make([]int, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// MatchNodes returns the sorted set of nodes that accept a rule.
func (d *DFA) MatchNodes() []int {
	out := make([]int, 0, len(d.MatchNames))
	for node := range d.MatchNames {
		out = append(out, node)
	}
	sort.Ints(out)
	return out
}

// RuleNames returns the sorted set of distinct rule names this DFA can
// emit.
func (d *DFA) RuleNames() []string {
	seen := make(map[string]bool, len(d.MatchNames))
	for _, name := range d.MatchNames {
		seen[name] = true
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (d *DFA) dstNodes(node int) []int {
	seen := make(map[int]bool)
	for _, dst := range d.Transitions[node] {
		seen[dst] = true
	}
	out := make([]int, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// PreMatchNodes returns every node reachable from Start without passing
// through a match node.
func (d *DFA) PreMatchNodes() []int {
	if d.IsEmpty() {
		return nil
	}
	matchNodes := make(map[int]bool, len(d.MatchNames))
	for node := range d.MatchNames {
		matchNodes[node] = true
	}
	seen := make(map[int]bool)
	remaining := []int{d.StartNode}
	for len(remaining) > 0 {
		node := remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]
		if seen[node] || matchNodes[node] {
			continue
		}
		seen[node] = true
		for _, d2 := range d.dstNodes(node) {
			if !seen[d2] {
				remaining = append(remaining, d2)
			}
		}
	}
	out := make([]int, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// PostMatchNodes returns every node reachable from a match node that is
// itself not a match node: a generator warning that a rule has a reachable
// non-match suffix, usually a sign of an over-specified pattern (spec
// section 4.6). The invalid sink carries its own match name (it is never
// reported here for that reason, not as a special case).
func (d *DFA) PostMatchNodes() []int {
	matchNodes := make(map[int]bool, len(d.MatchNames))
	for node := range d.MatchNames {
		matchNodes[node] = true
	}
	found := make(map[int]bool)
	remaining := make([]int, 0, len(matchNodes))
	for node := range matchNodes {
		remaining = append(remaining, node)
	}
	for len(remaining) > 0 {
		node := remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]
		for _, d2 := range d.dstNodes(node) {
			if !matchNodes[d2] && !found[d2] {
				found[d2] = true
				remaining = append(remaining, d2)
			}
		}
	}
	out := make([]int, 0, len(found))
	for n := range found {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// Advance returns the node reached from node on byte b, and whether a
// transition was defined at all.
func (d *DFA) Advance(node int, b byte) (int, bool) {
	byByte, ok := d.Transitions[node]
	if !ok {
		return 0, false
	}
	dst, ok := byByte[b]
	return dst, ok
}

// Match performs a single-walk simulation over text starting at StartNode.
// It returns the rule name at the final node and true, or false if any
// byte has no outgoing transition or the final node is not a match node.
func (d *DFA) Match(text []byte) (string, bool) {
	state := d.StartNode
	for _, b := range text {
		next, ok := d.Advance(state, b)
		if !ok {
			return "", false
		}
		state = next
	}
	name, ok := d.MatchNames[state]
	return name, ok
}

// Describe writes a human-readable dump of the DFA.
func (d *DFA) Describe(w *strings.Builder, label string) {
	if label == "" {
		label = "DFA"
	}
	fmt.Fprintf(w, "%s:\n", label)
	w.WriteString(" matchNodeNames:\n")
	for _, node := range d.MatchNodes() {
		fmt.Fprintf(w, "  %d: %s\n", node, d.MatchNames[node])
	}
	w.WriteString(" transitions:\n")
	for _, src := range d.AllNodes() {
		byByte := d.Transitions[src]
		name := d.MatchNames[src]
		if name != "" {
			name = " " + name
		}
		fmt.Fprintf(w, "  %d:%s\n", src, name)
		grouped := make(map[int][]byte)
		for b, dst := range byByte {
			grouped[dst] = append(grouped[dst], b)
		}
		dsts := make([]int, 0, len(grouped))
		for dst := range grouped {
			dsts = append(dsts, dst)
		}
		sort.Slice(dsts, func(i, j int) bool {
			return minByte(grouped[dsts[i]]) < minByte(grouped[dsts[j]])
		})
		for _, dst := range dsts {
			bytes := grouped[dst]
			sort.Slice(bytes, func(i, j int) bool { return bytes[i] < bytes[j] })
			dstName := d.MatchNames[dst]
			if dstName != "" {
				dstName = ": " + dstName
			}
			fmt.Fprintf(w, "    %s ==> %d%s\n", describeByteRuns(bytes), dst, dstName)
		}
	}
}

// DescribeStats writes summary counts used by -stats dumps.
func (d *DFA) DescribeStats(w *strings.Builder, label string) {
	if label == "" {
		label = "DFA"
	}
	total := 0
	for _, byByte := range d.Transitions {
		total += len(byByte)
	}
	fmt.Fprintf(w, "%s:\n", label)
	fmt.Fprintf(w, "  matchNodeNames: %d\n", len(d.MatchNames))
	fmt.Fprintf(w, "  nodes: %d\n", len(d.Transitions))
	fmt.Fprintf(w, "  transitions: %d\n", total)
}

func minByte(bs []byte) byte {
	m := bs[0]
	for _, b := range bs[1:] {
		if b < m {
			m = b
		}
	}
	return m
}

func describeByteRuns(bs []byte) string {
	if len(bs) == 0 {
		return ""
	}
	var parts []string
	start, prev := bs[0], bs[0]
	flush := func(lo, hi byte) {
		if lo == hi {
			parts = append(parts, fmt.Sprintf("%q", lo))
		} else {
			parts = append(parts, fmt.Sprintf("%q-%q", lo, hi))
		}
	}
	for _, b := range bs[1:] {
		if int(b) == int(prev)+1 {
			prev = b
			continue
		}
		flush(start, prev)
		start, prev = b, b
	}
	flush(start, prev)
	return strings.Join(parts, ",")
}
