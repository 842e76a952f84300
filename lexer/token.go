// Package lexer implements the pushdown lexer runtime that drives a
// combined DFA produced by packages dfa/minimize/mode (spec section 4.8):
// a byte-at-a-time, longest-match tokenizer with last-accept fallback, a
// mode stack, and a Source type for rendering caret diagnostics over the
// original text.
package lexer

import "fmt"

// Token is one emitted span: Kind names the rule (or invalid/incomplete)
// that matched, Pos is the first byte and End is one past the last byte.
type Token struct {
	Kind string
	Pos  int
	End  int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%d,%d)", t.Kind, t.Pos, t.End)
}
