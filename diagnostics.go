package legs

import "strings"

// Diagnostics is the ordered set of non-fatal advisory lines Generate
// returns alongside a successful Result: literal-rule-overlap notes from
// package literal and post-match-node warnings from each mode's minimized
// DFA (spec section 4.9). Every line already carries its own severity
// prefix ("note:" or "warning:"); Generate collects them mode by mode in
// sorted-mode-name order, and each source already sorts its own lines, so
// the overall order is deterministic without a final global sort.
type Diagnostics []string

// String renders every line, one per line, for printing to the caller's
// diagnostic stream.
func (d Diagnostics) String() string { return strings.Join(d, "\n") }

// HasWarnings reports whether any line is a warning rather than a note.
// A generator that treats warnings as build failures (e.g. "-Werror") can
// use this to decide whether to exit non-zero despite Generate itself
// having succeeded.
func (d Diagnostics) HasWarnings() bool {
	for _, line := range d {
		if strings.HasPrefix(line, "warning:") {
			return true
		}
	}
	return false
}

// FormatFatal renders a fatal generation error as a single "error:"-
// prefixed line, matching the severity-prefixed plain-line contract
// Diagnostics follows, so a caller can print either uniformly (spec
// section 4.9, section 7).
func FormatFatal(err error) string {
	return "error: " + err.Error()
}
