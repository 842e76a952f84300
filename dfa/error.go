package dfa

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAmbiguousRule is the sentinel AmbiguityError wraps: two or more rules
// tied at the same fat-DFA node with no literal bias to break the tie, or
// two literal rules collided on identical text (spec section 4.4,
// "Ambiguity detection").
var ErrAmbiguousRule = errors.New("dfa: ambiguous rule match")

// AmbiguityError reports one or more DFA nodes where subset construction
// could not coalesce the accepted NFA match names into a single winner:
// either two literal rules matched the identical text, or two or more
// non-literal rules tied with no literal rule to break the tie (spec
// section 4.4, "Ambiguity detection").
type AmbiguityError struct {
	Conflicts []string
}

func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("dfa: %s", strings.Join(e.Conflicts, "; "))
}

func (e *AmbiguityError) Unwrap() error { return ErrAmbiguousRule }
