package ir

import "strings"

// Char matches a single literal byte.
type Char struct {
	Byte byte
}

func (c Char) EmitNFA(mk NodeAllocator, sink TransitionSink, src, dst int) {
	sink.AddByte(src, dst, c.Byte)
}

func (c Char) IsLiteral() bool { return true }

func (c Char) LiteralBytes() []byte { return []byte{c.Byte} }

func (c Char) Describe() string { return ByteRange{c.Byte, c.Byte}.String() }

// CharClass matches a single byte falling in any of a sorted, disjoint set
// of inclusive ranges, e.g. [a-zA-Z0-9].
type CharClass struct {
	Ranges []ByteRange
}

func (c CharClass) EmitNFA(mk NodeAllocator, sink TransitionSink, src, dst int) {
	for _, r := range c.Ranges {
		for b := int(r.Lo); b <= int(r.Hi); b++ {
			sink.AddByte(src, dst, byte(b))
		}
	}
}

// IsLiteral is always false: even a single-byte class [a] is expressed as
// Char by the parser collaborator, so CharClass is reserved for genuine
// alternatives and never participates in literal-bias tie-breaking.
func (c CharClass) IsLiteral() bool { return false }

func (c CharClass) LiteralBytes() []byte {
	panic("ir: LiteralBytes called on non-literal CharClass")
}

func (c CharClass) Describe() string {
	var b strings.Builder
	b.WriteByte('[')
	for _, r := range c.Ranges {
		b.WriteString(r.String())
	}
	b.WriteByte(']')
	return b.String()
}

// Seq matches its children in order, each starting where the previous left
// off. Seq is literal iff every child is literal.
type Seq struct {
	Children []Pattern
}

func (s Seq) EmitNFA(mk NodeAllocator, sink TransitionSink, src, dst int) {
	if len(s.Children) == 0 {
		sink.AddEpsilon(src, dst)
		return
	}
	cur := src
	for i, child := range s.Children {
		next := dst
		if i < len(s.Children)-1 {
			next = mk()
		}
		child.EmitNFA(mk, sink, cur, next)
		cur = next
	}
}

func (s Seq) IsLiteral() bool {
	for _, c := range s.Children {
		if !c.IsLiteral() {
			return false
		}
	}
	return true
}

func (s Seq) LiteralBytes() []byte {
	out := make([]byte, 0, len(s.Children))
	for _, c := range s.Children {
		out = append(out, c.LiteralBytes()...)
	}
	return out
}

func (s Seq) Describe() string {
	var b strings.Builder
	for _, c := range s.Children {
		b.WriteString(c.Describe())
	}
	return b.String()
}

// Alt matches if any one of its children matches; each child is emitted
// directly between src and dst, with no epsilon transitions of its own.
type Alt struct {
	Children []Pattern
}

func (a Alt) EmitNFA(mk NodeAllocator, sink TransitionSink, src, dst int) {
	for _, child := range a.Children {
		child.EmitNFA(mk, sink, src, dst)
	}
}

// IsLiteral is always false: an alternation matches more than one byte
// string unless degenerate, and a degenerate single-branch Alt is expected
// to be simplified away by the parser collaborator, not by ir.
func (a Alt) IsLiteral() bool { return false }

func (a Alt) LiteralBytes() []byte {
	panic("ir: LiteralBytes called on non-literal Alt")
}

func (a Alt) Describe() string {
	parts := make([]string, len(a.Children))
	for i, c := range a.Children {
		parts[i] = c.Describe()
	}
	return "(" + strings.Join(parts, "|") + ")"
}

// Opt matches its child zero or one times.
type Opt struct {
	Child Pattern
}

func (o Opt) EmitNFA(mk NodeAllocator, sink TransitionSink, src, dst int) {
	sink.AddEpsilon(src, dst)
	o.Child.EmitNFA(mk, sink, src, dst)
}

func (o Opt) IsLiteral() bool { return false }

func (o Opt) LiteralBytes() []byte {
	panic("ir: LiteralBytes called on non-literal Opt")
}

func (o Opt) Describe() string { return o.Child.Describe() + "?" }

// Star matches its child zero or more times.
type Star struct {
	Child Pattern
}

func (s Star) EmitNFA(mk NodeAllocator, sink TransitionSink, src, dst int) {
	sink.AddEpsilon(src, dst)
	loop := mk()
	sink.AddEpsilon(src, loop)
	s.Child.EmitNFA(mk, sink, loop, loop)
	sink.AddEpsilon(loop, dst)
}

func (s Star) IsLiteral() bool { return false }

func (s Star) LiteralBytes() []byte {
	panic("ir: LiteralBytes called on non-literal Star")
}

func (s Star) Describe() string { return s.Child.Describe() + "*" }

// Plus matches its child one or more times.
type Plus struct {
	Child Pattern
}

func (p Plus) EmitNFA(mk NodeAllocator, sink TransitionSink, src, dst int) {
	loop := mk()
	p.Child.EmitNFA(mk, sink, src, loop)
	sink.AddEpsilon(loop, dst)
	p.Child.EmitNFA(mk, sink, loop, loop)
}

func (p Plus) IsLiteral() bool { return false }

func (p Plus) LiteralBytes() []byte {
	panic("ir: LiteralBytes called on non-literal Plus")
}

func (p Plus) Describe() string { return p.Child.Describe() + "+" }
