package nfa

import (
	"fmt"
	"sort"

	"github.com/tablelex/legs/internal/conv"
	"github.com/tablelex/legs/ir"
)

// NamedPattern pairs a rule name with the pattern it compiles to. Builders
// require the caller to pass these pre-sorted lexically by name so that
// node allocation — and therefore every downstream automaton — is
// deterministic for a given input.
type NamedPattern struct {
	Name    string
	Pattern ir.Pattern
}

// Builder assembles one NFA from a mode's named patterns. It implements
// ir.TransitionSink so that Pattern.EmitNFA can record edges directly into
// the builder's scratch transition table.
type Builder struct {
	next        int
	transitions map[int]map[int][]int
}

// NewBuilder creates an empty Builder. The first call to mkNode returns 0,
// the second returns 1; BuildMode relies on this to guarantee node 0 is the
// start and node 1 is the invalid sink.
func NewBuilder() *Builder {
	return &Builder{transitions: make(map[int]map[int][]int)}
}

func (b *Builder) mkNode() int {
	id := b.next
	b.next++
	return id
}

// AddByte implements ir.TransitionSink.
func (b *Builder) AddByte(src, dst int, byteVal byte) {
	b.addEdge(src, int(byteVal), dst)
}

// AddEpsilon implements ir.TransitionSink.
func (b *Builder) AddEpsilon(src, dst int) {
	b.addEdge(src, Epsilon, dst)
}

func (b *Builder) addEdge(src, symbol, dst int) {
	// conv guards against a rule set large enough to overflow the node-id
	// space the rest of the pipeline assumes (uint32 in the sparse set used
	// for epsilon-closure).
	_ = conv.IntToUint32(src)
	_ = conv.IntToUint32(dst)
	byDst, ok := b.transitions[src]
	if !ok {
		byDst = make(map[int][]int)
		b.transitions[src] = byDst
	}
	for _, existing := range byDst[symbol] {
		if existing == dst {
			return // de-duplicate repeated edges (e.g. shared Alt branches).
		}
	}
	byDst[symbol] = append(byDst[symbol], dst)
}

// BuildMode assembles an NFA for one mode from its sorted named patterns,
// following spec section 4.2: node 0 is the start, node 1 is the invalid
// sink (pre-named "invalid" in the main mode, "<mode>_invalid" otherwise),
// and every other pattern gets a fresh match node.
//
// namedRules must already be sorted lexically by name; BuildMode does not
// sort them itself so that callers control determinism of node allocation
// explicitly (the parser collaborator is expected to hand rules over
// pre-sorted, per spec section 4.2).
func BuildMode(modeName string, namedRules []NamedPattern) (*NFA, error) {
	for i := 1; i < len(namedRules); i++ {
		if namedRules[i].Name <= namedRules[i-1].Name {
			return nil, fmt.Errorf("nfa: rules for mode %q are not sorted lexically by name (%q before %q)",
				modeName, namedRules[i-1].Name, namedRules[i].Name)
		}
	}

	b := NewBuilder()
	start := b.mkNode() // 0
	invalid := b.mkNode()

	invalidName := "invalid"
	if modeName != "main" {
		invalidName = modeName + "_invalid"
	}

	matchNames := map[int]string{invalid: invalidName}
	literalRules := make(map[string][]byte)

	for _, nr := range namedRules {
		if err := ir.Validate(nr.Pattern); err != nil {
			return nil, fmt.Errorf("nfa: mode %q: rule %q: %w", modeName, nr.Name, err)
		}
		match := b.mkNode()
		nr.Pattern.EmitNFA(b.mkNode, b, start, match)
		if existing, ok := matchNames[match]; ok {
			return nil, fmt.Errorf("nfa: internal error: match node %d already named %q", match, existing)
		}
		matchNames[match] = nr.Name
		if nr.Pattern.IsLiteral() {
			literalRules[nr.Name] = nr.Pattern.LiteralBytes()
		}
	}

	return &NFA{
		Transitions:  b.transitions,
		MatchNames:   matchNames,
		LiteralRules: literalRules,
	}, nil
}

// SortedNames returns rule names sorted lexically, a convenience for
// callers assembling NamedPattern slices from an unordered map.
func SortedNames(patterns map[string]ir.Pattern) []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
