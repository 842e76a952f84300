package nfa

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTriviallyMatched is the sentinel ValidationError wraps: a rule whose
// match node is already present in the epsilon-closure of the mode's start
// state, i.e. a rule that matches the empty input (spec section 4.3,
// Validate).
var ErrTriviallyMatched = errors.New("nfa: rule is trivially matched from start")

// ValidationError reports one or more rules that Validate found to be
// trivially matched from the mode's start state. It is a fatal semantic
// error (spec section 7): no recovery is attempted past it.
type ValidationError struct {
	Mode     string
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("nfa: mode %q: %s", e.Mode, strings.Join(e.Messages, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrTriviallyMatched }
