package lexer

import (
	"github.com/tablelex/legs/dfa"
	"github.com/tablelex/legs/mode"
)

// Lexer is a pushdown tokenizer over a combined DFA: byte-at-a-time
// longest-match with last-accept fallback, and a mode stack that the
// emitted token kind can push onto or pop (spec section 4.8).
type Lexer struct {
	source *Source
	dfa    *dfa.DFA
	modes  map[string]mode.Mode
	trans  mode.Transitions

	pos   int
	stack []mode.Frame
}

// New creates a Lexer over source, driven by the combined DFA, its sorted
// Mode list, and the mode-transition table produced by mode.Combine. The
// mode stack starts with a single frame: ("main", "").
func New(source *Source, combined *dfa.DFA, modes []mode.Mode, trans mode.Transitions) *Lexer {
	byName := make(map[string]mode.Mode, len(modes))
	for _, m := range modes {
		byName[m.Name] = m
	}
	return &Lexer{
		source: source,
		dfa:    combined,
		modes:  byName,
		trans:  trans,
		stack:  []mode.Frame{{Mode: "main", PopKind: ""}},
	}
}

// Next returns the next token and true, or false once the source is
// exhausted. It never errors: malformed input surfaces as invalid or
// incomplete token kinds rather than a Go error, per spec section 7.
func (l *Lexer) Next() (Token, bool) {
	text := l.source.Text
	if l.pos == len(text) {
		return Token{}, false
	}

	tokenPos := l.pos
	frame := l.stack[len(l.stack)-1]
	m := l.modes[frame.Mode]

	state := m.Start
	end := -1
	kind := m.IncompleteName

	pos := l.pos
	for pos < len(text) {
		next, ok := l.dfa.Advance(state, text[pos])
		if !ok {
			break
		}
		state = next
		pos++
		if name, ok := l.dfa.MatchNames[state]; ok {
			kind = name
			end = pos
		}
	}

	if end == -1 {
		end = pos
	}
	if tokenPos >= end {
		// Sink completion makes every mode start total: it has an edge for
		// every byte, so at least one byte is always consumed. Reaching
		// here means the automaton is broken.
		panic("lexer: zero-length token; the combined DFA is not sink-complete")
	}

	l.pos = end

	if kind == frame.PopKind {
		l.stack = l.stack[:len(l.stack)-1]
	} else if next, ok := l.trans[mode.Key{Mode: frame.Mode, Kind: kind}]; ok {
		l.stack = append(l.stack, next)
	}

	return Token{Kind: kind, Pos: tokenPos, End: end}, true
}

// All drains the lexer into a slice, mainly useful for tests and the -test
// CLI surface.
func (l *Lexer) All() []Token {
	var out []Token
	for {
		tok, ok := l.Next()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}
