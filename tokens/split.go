package tokens

import (
	"fmt"
	"strings"
)

// Splitter breaks a string into raw token fragments. Fragments may carry
// surrounding whitespace or be empty; the normalizer trims them and drops
// empty ones.
type Splitter interface {
	Split(s string) []string
}

// SplitterFunc adapts an ordinary function to the Splitter interface.
type SplitterFunc func(string) []string

// Split calls f(s).
func (f SplitterFunc) Split(s string) []string {
	return f(s)
}

// WhitespaceSplitter is the default splitter. It splits at runs of
// ASCII whitespace (space, tab, newline, vertical tab, form feed, carriage return).
// Other Unicode spaces, e.g. NBSP, are part of a token.
var WhitespaceSplitter Splitter = SplitterFunc(splitAtWhitespace)

func splitAtWhitespace(s string) []string {
	return strings.FieldsFunc(s, IsSpace)
}

// IsSpace is a predicate for the bytes which separate tokens.
func IsSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// cutset for trimming fragments. NUL is trimmed, but does not separate tokens.
const cutset = " \t\n\r\x00\x0b"

// Trim removes surrounding whitespace and NUL bytes from a token fragment.
func Trim(fragment string) string {
	return strings.Trim(fragment, cutset)
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing the position of a token within an input
// string. A span denotes a start (byte-)position and the position just
// behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is a predicate for the empty span (0…0).
func (s Span) IsNull() bool {
	return s == Span{}
}

// Of returns the substring of input covered by s.
func (s Span) Of(input string) string {
	if s[0] > s[1] || s[1] > uint64(len(input)) {
		return ""
	}
	return input[s[0]:s[1]]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
