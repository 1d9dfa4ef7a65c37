// Package escape implements the quoting rules of i18nstr literals.
//
// Only four characters are special inside a quoted literal: the single
// quote, the backslash, newline and tab. They are written as \', \\, \n
// and \t. Everything else, including the double quote, is copied as is.
package escape

import (
	"io"
	"strings"
)

// special lists the bytes that must be escaped inside a literal.
const special = "'\\\n\t"

// NeedsEscape reports whether s contains a character that Escape would rewrite.
func NeedsEscape(s string) bool {
	return strings.ContainsAny(s, special)
}

// Escape returns s with ', \, newline and tab escaped.
// When nothing needs escaping, s itself is returned.
func Escape(s string) string {
	if !NeedsEscape(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		if seq := sequence(s[i]); seq != "" {
			b.WriteString(seq)
		} else {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// EscapeBytes is the byte-slice form of Escape. The input slice is returned
// unchanged when nothing needs escaping.
func EscapeBytes(p []byte) []byte {
	n := 0
	for _, c := range p {
		if sequence(c) != "" {
			n++
		}
	}
	if n == 0 {
		return p
	}

	out := make([]byte, 0, len(p)+n)
	for _, c := range p {
		if seq := sequence(c); seq != "" {
			out = append(out, seq...)
		} else {
			out = append(out, c)
		}
	}
	return out
}

// Unescape reverses Escape. An unknown sequence \x yields x, and a trailing
// lone backslash is kept.
func Unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		default:
			// \', \\ and any unknown \x all drop the backslash.
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func sequence(c byte) string {
	switch c {
	case '\'':
		return `\'`
	case '\\':
		return `\\`
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	}
	return ""
}

// Writer escapes everything written through it before passing it on.
// The escaped characters are all ASCII, so writes may split multi-byte
// runes freely.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer that escapes into w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write escapes p into the underlying writer. On success it reports len(p),
// not the number of escaped bytes.
func (e *Writer) Write(p []byte) (int, error) {
	if _, err := e.w.Write(EscapeBytes(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteString is the string form of Write.
func (e *Writer) WriteString(s string) (int, error) {
	if _, err := io.WriteString(e.w, Escape(s)); err != nil {
		return 0, err
	}
	return len(s), nil
}
