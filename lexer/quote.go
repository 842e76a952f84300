package lexer

import (
	"fmt"
	"strings"
)

// QuoteBytes renders raw bytes as a single-quoted, escaped literal for use
// in diagnostics and -dbg dumps: printable ASCII passes through, and
// everything else becomes a short escape (\0, \t, \n, \r, \\, \') or a
// \xNN; run so every byte round-trips unambiguously.
func QuoteBytes(b []byte) string {
	var out strings.Builder
	out.WriteByte('\'')
	for _, c := range b {
		switch {
		case c == '\\':
			out.WriteString(`\\`)
		case c == '\'':
			out.WriteString(`\'`)
		case c >= 0x20 && c <= 0x7E:
			out.WriteByte(c)
		case c == 0:
			out.WriteString(`\0`)
		case c == '\t':
			out.WriteString(`\t`)
		case c == '\n':
			out.WriteString(`\n`)
		case c == '\r':
			out.WriteString(`\r`)
		default:
			fmt.Fprintf(&out, `\x%02x;`, c)
		}
	}
	out.WriteByte('\'')
	return out.String()
}
