// Package ir defines the pattern intermediate representation shared by every
// rule in a lexer description: a small tagged tree of regex constructs that
// knows how to emit itself into an NFA builder.
//
// A Pattern has no notion of rule names, modes, or match priority; those
// concerns belong to the NFA builder (package nfa), which assembles many
// named patterns into one automaton. Pattern only answers three questions:
// how does this match (EmitNFA), does it match exactly one byte string
// (IsLiteral / LiteralBytes), and how should it be described in diagnostics
// (Describe).
package ir

import "fmt"

// NodeAllocator hands out fresh, globally unique node ids while an NFA is
// under construction. It is implemented by nfa.Builder; ir never constructs
// node ids itself.
type NodeAllocator func() int

// TransitionSink receives the edges a Pattern emits while compiling itself
// into an NFA. AddByte records a transition on a single byte value from src
// to dst; AddEpsilon records an unconditional (epsilon) transition.
// Implemented by nfa.Builder.
type TransitionSink interface {
	AddByte(src, dst int, b byte)
	AddEpsilon(src, dst int)
}

// Pattern is a node in the pattern IR. Every regex construct the generator
// supports implements it: Char, CharClass, Seq, Alt, Opt, Star, Plus.
type Pattern interface {
	// EmitNFA adds transitions to sink so that the pattern is accepted iff
	// the automaton can move from src to dst consuming exactly the bytes
	// the pattern matches. It may allocate fresh intermediate nodes via mk.
	EmitNFA(mk NodeAllocator, sink TransitionSink, src, dst int)

	// IsLiteral reports whether this pattern matches exactly one byte
	// sequence (no alternation, no repetition, no nontrivial class).
	IsLiteral() bool

	// LiteralBytes returns the single byte sequence this pattern matches.
	// Only valid when IsLiteral() is true; panics otherwise.
	LiteralBytes() []byte

	// Describe renders a short, human-readable form of the pattern, used
	// in diagnostics and -dbg dumps.
	Describe() string
}

// ByteRange is an inclusive range of byte values [Lo, Hi]. CharClass stores
// its alternatives as a sorted, disjoint list of these.
type ByteRange struct {
	Lo, Hi byte
}

func (r ByteRange) String() string {
	if r.Lo == r.Hi {
		return fmt.Sprintf("%q", r.Lo)
	}
	return fmt.Sprintf("%q-%q", r.Lo, r.Hi)
}
