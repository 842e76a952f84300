// Package legs ties packages ir, nfa, dfa, dfa/minimize, and mode into the
// generation pipeline spec section 2 describes end to end: Generate takes a
// parser collaborator's patterns and mode layout and produces the combined,
// minimized DFA the lexer runtime in package lexer drives.
package legs

// Config bounds how large a grammar Generate will accept and which
// advisory diagnostics it emits. Every pipeline step itself is fixed by the
// spec; Config never changes generation semantics, only its limits and its
// non-fatal reporting.
type Config struct {
	// EnableLiteralOverlapAdvisories enables literal.OverlapScanner's
	// per-mode advisory notes about one literal rule's text appearing
	// inside another's (spec section 4.9).
	// Default: true
	EnableLiteralOverlapAdvisories bool

	// EnablePostMatchAdvisories enables per-mode post-match-node warnings
	// from each mode's minimized DFA (spec section 4.9).
	// Default: true
	EnablePostMatchAdvisories bool

	// MaxModes caps the number of modes a single Input may define, guarding
	// against a combined node space large enough to overflow the sparse
	// set epsilon-closure relies on.
	// Default: 64
	MaxModes int

	// MaxRulesPerMode caps the number of rules any single mode may define.
	// Default: 4096
	MaxRulesPerMode int
}

// DefaultConfig returns a Config with sensible defaults: both advisory
// classes enabled, and limits generous enough for any grammar a real
// lexer would define.
func DefaultConfig() Config {
	return Config{
		EnableLiteralOverlapAdvisories: true,
		EnablePostMatchAdvisories:      true,
		MaxModes:                       64,
		MaxRulesPerMode:                4096,
	}
}

// Validate checks that c's limits are in range.
//
// Valid ranges:
//   - MaxModes: 1 to 100,000
//   - MaxRulesPerMode: 1 to 1,000,000
func (c Config) Validate() error {
	if c.MaxModes < 1 || c.MaxModes > 100_000 {
		return &ConfigError{Field: "MaxModes", Message: "must be between 1 and 100,000"}
	}
	if c.MaxRulesPerMode < 1 || c.MaxRulesPerMode > 1_000_000 {
		return &ConfigError{Field: "MaxRulesPerMode", Message: "must be between 1 and 1,000,000"}
	}
	return nil
}

// ConfigError reports an out-of-range Config field.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "legs: invalid config: " + e.Field + ": " + e.Message
}
