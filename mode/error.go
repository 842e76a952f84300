package mode

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRuleCollision is the sentinel CollisionError wraps: a rule name
// defined in more than one mode, or a literal rule whose text disagrees
// across modes, which the (out-of-scope) parser collaborator is expected
// to prevent but Combine verifies rather than trusts (spec section 4.7).
var ErrRuleCollision = errors.New("mode: rule collision")

// CollisionError reports two or more modes whose minimized DFAs disagree
// about a literal rule's bytes, or a rule name that appears in more than
// one mode. Rule names are expected to be globally unique by construction
// of the (out-of-scope) parser; Combine verifies this rather than trusting
// it, since a violation here is a fatal generation error (spec section
// 4.7, "must be verified with a fatal error on collision").
type CollisionError struct {
	Messages []string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("mode: %s", strings.Join(e.Messages, "; "))
}

func (e *CollisionError) Unwrap() error { return ErrRuleCollision }
