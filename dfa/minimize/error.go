package minimize

import (
	"errors"
	"fmt"
)

// ErrInvariantViolation is the sentinel InvariantError wraps: a
// post-minimization inconsistency indicating a bug in Minimize itself,
// never a malformed input grammar (spec section 4.5).
var ErrInvariantViolation = errors.New("minimize: invariant violation")

// InvariantError reports a post-minimization inconsistency: two distinct
// nodes that partition refinement placed in the same class turned out to
// behave differently, or merged two differently-named rules. Either
// indicates a bug in Minimize itself rather than a problem with the input
// grammar.
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("minimize: invariant violation: %s", e.Message)
}

func (e *InvariantError) Unwrap() error { return ErrInvariantViolation }
