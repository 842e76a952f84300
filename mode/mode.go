// Package mode combines the per-mode minimized DFAs produced by packages
// nfa/dfa/minimize into the single combined DFA the lexer runtime drives
// (spec section 4.7), and carries the pushdown-transition table that moves
// the runtime between modes.
package mode

import "fmt"

// Mode names one sub-automaton of a combined DFA: its start and invalid
// node ids after combination renumbering, and the token kinds the runtime
// emits for a dead byte (InvalidName) or a walk that stops, at end of input
// or on a missing transition, before reaching any match node
// (IncompleteName).
type Mode struct {
	Name           string
	Start          int
	Invalid        int
	InvalidName    string
	IncompleteName string
}

// Frame is a mode-stack entry: the mode the lexer should enter, and the
// token kind that pops back out of it.
type Frame struct {
	Mode    string
	PopKind string
}

// Key identifies one (mode, emitted token kind) pair in a Transitions
// table.
type Key struct {
	Mode string
	Kind string
}

// Transitions maps (from_mode, emitted_kind) to the Frame the lexer
// pushes onto its mode stack when a token of that kind is emitted in that
// mode (spec section 3, "ModeTransitions").
type Transitions map[Key]Frame

func (k Key) String() string { return fmt.Sprintf("%s/%s", k.Mode, k.Kind) }
