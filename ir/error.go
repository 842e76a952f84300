package ir

import (
	"errors"
	"fmt"
)

// ErrUnsortedRanges indicates a CharClass's byte ranges are not sorted and
// disjoint, violating the data model invariant spec section 3 requires of
// every CharClass ("sorted disjoint byte ranges").
var ErrUnsortedRanges = errors.New("ir: char class ranges are not sorted and disjoint")

// BuildError reports a malformed Pattern IR node found by Validate before
// it ever reaches the NFA builder (package nfa). It wraps a sentinel so
// callers can test the specific violation with errors.Is.
type BuildError struct {
	// Describe is the offending pattern's own Describe() text, included so
	// the diagnostic names what failed without the caller needing to walk
	// the tree again.
	Describe string
	Err      error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("ir: invalid pattern %s: %v", e.Describe, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }
