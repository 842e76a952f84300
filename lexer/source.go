package lexer

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// Source is an immutable, named byte buffer the lexer reads from. Every
// diagnostic helper is read-only over the text the Source was constructed
// with.
type Source struct {
	Name string
	Text []byte

	newlinePositions []int
}

// NewSource builds a Source, indexing every newline position up front so
// LineIndex can answer in O(log n).
func NewSource(name string, text []byte) *Source {
	s := &Source{Name: name, Text: text}
	for i, b := range text {
		if b == '\n' {
			s.newlinePositions = append(s.newlinePositions, i)
		}
	}
	return s
}

func (s *Source) String() string { return fmt.Sprintf("Source(%s)", s.Name) }

// LineIndex returns the 0-based line number containing pos.
func (s *Source) LineIndex(pos int) int {
	return sort.SearchInts(s.newlinePositions, pos)
}

// LineStart returns the byte offset of the first byte of the line
// containing pos.
func (s *Source) LineStart(pos int) int {
	idx := bytes.LastIndexByte(s.Text[:pos], '\n')
	return idx + 1
}

// LineEnd returns the byte offset one past the line containing pos; the
// trailing newline, if present, counts as part of the line.
func (s *Source) LineEnd(pos int) int {
	rel := bytes.IndexByte(s.Text[pos:], '\n')
	if rel == -1 {
		return len(s.Text)
	}
	return pos + rel + 1
}

func (s *Source) lineString(pos, end int) string {
	return string(s.Text[pos:end])
}

// BytesFor returns the bytes a Token spans, starting offset bytes into the
// token.
func (s *Source) BytesFor(t Token, offset int) []byte {
	return s.Text[t.Pos+offset : t.End]
}

// DiagnosticForToken renders a caret/tilde diagnostic under the line(s)
// spanned by t, prefixed with the source name, line, and column.
func (s *Source) DiagnosticForToken(t Token, msg string, showMissingNewline bool) string {
	lineStart := s.LineStart(t.Pos)
	lineIdx := strings.Count(string(s.Text[:t.Pos]), "\n")
	return s.diagnosticForPos(t.Pos, t.End, lineStart, lineIdx, msg, showMissingNewline)
}

// DiagnosticAtEnd renders a zero-width diagnostic pointing at the very end
// of the text, used when input runs out mid-pattern.
func (s *Source) DiagnosticAtEnd(msg string, showMissingNewline bool) string {
	if len(s.Text) == 0 {
		return fmt.Sprintf("%s:1:1: %s\n|\n  ^\n", s.Name, msg)
	}
	lastPos := len(s.Text) - 1
	var linePos, lineIdx int
	nl := bytes.LastIndexByte(s.Text, '\n')
	switch {
	case nl == lastPos:
		linePos = s.LineStart(nl)
		lineIdx = strings.Count(string(s.Text[:nl]), "\n")
	case nl >= 0:
		linePos = nl + 1
		lineIdx = len(s.newlinePositions)
	default:
		linePos = 0
		lineIdx = 0
	}
	lineStr := s.lineString(linePos, s.LineEnd(linePos))
	return s.diagnostic(lastPos, lastPos, linePos, lineIdx, lineStr, msg, showMissingNewline)
}

func (s *Source) diagnosticForPos(pos, end, linePos, lineIdx int, msg string, showMissingNewline bool) string {
	lineEnd := s.LineEnd(pos)
	if end <= lineEnd {
		return s.diagnostic(pos, end, linePos, lineIdx, s.lineString(linePos, lineEnd), msg, showMissingNewline)
	}
	// Multi-line span: render the head of the first line and the tail of
	// the last, each with its own underline.
	endLineIdx := s.LineIndex(end)
	endLinePos := s.LineStart(end)
	endLineEnd := s.LineEnd(end)
	return s.diagnostic(pos, lineEnd, linePos, lineIdx, s.lineString(linePos, lineEnd), msg, showMissingNewline) +
		s.diagnostic(endLinePos, end, endLinePos, endLineIdx, s.lineString(endLinePos, endLineEnd), msg, showMissingNewline)
}

func (s *Source) diagnostic(pos, end, linePos, lineIdx int, lineStr, msg string, showMissingNewline bool) string {
	var srcLine string
	hasNewline := strings.HasSuffix(lineStr, "\n")
	switch {
	case hasNewline:
		srcLine = strings.TrimSuffix(lineStr, "\n")
	case showMissingNewline:
		srcLine = lineStr + "⏎" // RETURN SYMBOL marks a missing terminating newline.
	default:
		srcLine = lineStr
	}

	srcBar := "|"
	if srcLine != "" {
		srcBar = "| "
	}

	var under strings.Builder
	for _, c := range lineStr[:pos-linePos] {
		if c == '\t' {
			under.WriteByte('\t')
		} else {
			under.WriteByte(' ')
		}
	}
	if pos >= end {
		under.WriteByte('^')
	} else {
		for i := pos; i < end; i++ {
			under.WriteByte('~')
		}
	}

	col := func(p int) int { return p - linePos + 1 }
	var colStr string
	if pos < end {
		colStr = fmt.Sprintf("%d-%d", col(pos), col(end))
	} else {
		colStr = fmt.Sprintf("%d", col(pos))
	}

	msgSpace := " "
	if msg == "" || strings.HasPrefix(msg, "\n") {
		msgSpace = ""
	}

	return fmt.Sprintf("%s:%d:%s:%s%s\n%s%s\n  %s\n",
		s.Name, lineIdx+1, colStr, msgSpace, msg, srcBar, srcLine, under.String())
}
