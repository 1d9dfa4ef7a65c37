package i18nstr

import (
	"io"
	"strings"

	"github.com/minios-linux/i18nstr/escape"
)

// Format encodes s in canonical form: no whitespace after commas and no
// trailing comma. Parse(Format(s)) is structurally equal to s.
func Format(s String) string {
	var b strings.Builder
	writeTo(&b, s)
	return b.String()
}

// String implements fmt.Stringer with the canonical encoding.
func (s String) String() string { return Format(s) }

// AppendFormat appends the canonical encoding of s to dst.
func AppendFormat(dst []byte, s String) []byte {
	return append(dst, Format(s)...)
}

// WriteTo writes the canonical encoding of s to w.
func (s String) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, Format(s))
	return int64(n), err
}

func writeTo(b *strings.Builder, s String) {
	if s.kind == KindLiteral {
		writeLiteral(b, s.text)
		return
	}

	b.WriteString(macroOpen)
	writeLiteral(b, s.text)
	for _, arg := range s.args {
		b.WriteByte(',')
		writeTo(b, arg)
	}
	b.WriteByte(')')
}

func writeLiteral(b *strings.Builder, text string) {
	b.WriteByte('\'')
	b.WriteString(escape.Escape(text))
	b.WriteByte('\'')
}
