package legs

import (
	"testing"

	"github.com/tablelex/legs/dfa"
	"github.com/tablelex/legs/dfa/minimize"
	"github.com/tablelex/legs/ir"
	"github.com/tablelex/legs/nfa"
)

func buildPipeline(t *testing.T, rules []nfa.NamedPattern) (*nfa.NFA, *dfa.DFA, *dfa.DFA) {
	t.Helper()
	n, err := nfa.BuildMode("main", rules)
	if err != nil {
		t.Fatalf("BuildMode: %v", err)
	}
	fat, _, err := dfa.Construct(n)
	if err != nil {
		t.Fatalf("Construct: %v", err)
	}
	min, err := minimize.Minimize(fat)
	if err != nil {
		t.Fatalf("Minimize: %v", err)
	}
	return n, fat, min
}

func TestCrossCheckAgreesOnMatchingInput(t *testing.T) {
	n, fat, min := buildPipeline(t, []nfa.NamedPattern{
		{Name: "id", Pattern: ir.Plus{Child: ir.CharClass{Ranges: []ir.ByteRange{{Lo: 'a', Hi: 'z'}}}}},
	})
	if err := CrossCheck(n, fat, min, "abc"); err != nil {
		t.Fatalf("CrossCheck(abc) = %v, want nil", err)
	}
}

func TestCrossCheckAgreesOnNonMatchingInput(t *testing.T) {
	n, fat, min := buildPipeline(t, []nfa.NamedPattern{
		{Name: "id", Pattern: ir.Plus{Child: ir.CharClass{Ranges: []ir.ByteRange{{Lo: 'a', Hi: 'z'}}}}},
	})
	if err := CrossCheck(n, fat, min, "ab3"); err != nil {
		t.Fatalf("CrossCheck(ab3) = %v, want nil", err)
	}
}

// An NFA-ambiguous input (two non-literal rules matching identically) is
// exactly the grammar dfa.Construct itself would have rejected with an
// AmbiguityError; CrossCheck must report the NFA-level disagreement before
// ever touching fat or min, which is why this test can pass them as nil.
func TestCrossCheckDetectsNFAAmbiguity(t *testing.T) {
	n, err := nfa.BuildMode("main", []nfa.NamedPattern{
		{Name: "a", Pattern: ir.CharClass{Ranges: []ir.ByteRange{{Lo: 'x', Hi: 'x'}}}},
		{Name: "b", Pattern: ir.CharClass{Ranges: []ir.ByteRange{{Lo: 'x', Hi: 'x'}}}},
	})
	if err != nil {
		t.Fatalf("BuildMode: %v", err)
	}
	cerr := CrossCheck(n, nil, nil, "x")
	if cerr == nil {
		t.Fatal("expected an error for an NFA-ambiguous input")
	}
	if _, ok := cerr.(*CrossCheckError); !ok {
		t.Fatalf("err = %T, want *CrossCheckError", cerr)
	}
}

func TestCrossCheckEmptyInput(t *testing.T) {
	n, fat, min := buildPipeline(t, []nfa.NamedPattern{
		{Name: "id", Pattern: ir.Plus{Child: ir.CharClass{Ranges: []ir.ByteRange{{Lo: 'a', Hi: 'z'}}}}},
	})
	if err := CrossCheck(n, fat, min, ""); err != nil {
		t.Fatalf("CrossCheck(\"\") = %v, want nil", err)
	}
}

func TestCrossCheckErrorMessageNamesTheInput(t *testing.T) {
	n, err := nfa.BuildMode("main", []nfa.NamedPattern{
		{Name: "a", Pattern: ir.CharClass{Ranges: []ir.ByteRange{{Lo: 'x', Hi: 'x'}}}},
		{Name: "b", Pattern: ir.CharClass{Ranges: []ir.ByteRange{{Lo: 'x', Hi: 'x'}}}},
	})
	if err != nil {
		t.Fatalf("BuildMode: %v", err)
	}
	cerr, ok := CrossCheck(n, nil, nil, "x").(*CrossCheckError)
	if !ok {
		t.Fatalf("CrossCheck did not return *CrossCheckError")
	}
	if cerr.Input != "x" {
		t.Fatalf("Input = %q, want x", cerr.Input)
	}
}
