package i18nstr

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/minios-linux/i18nstr/escape"
)

// ErrInvalidFormat is returned for every malformed encoding. It carries no
// position or detail.
var ErrInvalidFormat = errors.New("invalid format")

// macroOpen starts a template in both the encoding and free text.
const macroOpen = "t!("

// Parse decodes a single value from text. Characters after the first
// complete value are ignored.
func Parse(text string) (String, error) {
	s, _, err := ParsePrefix(text)
	return s, err
}

// ParsePrefix decodes the value at the start of text and reports how many
// bytes it occupied.
func ParsePrefix(text string) (String, int, error) {
	c := cursor{input: text}
	s, err := c.value()
	if err != nil {
		return String{}, 0, err
	}
	return s, c.pos, nil
}

// cursor is a forward-only reader over the encoding.
type cursor struct {
	input string
	pos   int
}

func (c *cursor) rest() string { return c.input[c.pos:] }

func (c *cursor) atLiteral() bool {
	return c.pos < len(c.input) && c.input[c.pos] == '\''
}

func (c *cursor) atMacro() bool {
	return strings.HasPrefix(c.rest(), macroOpen)
}

func (c *cursor) skipSpace() {
	for c.pos < len(c.input) {
		r, size := utf8.DecodeRuneInString(c.rest())
		if !unicode.IsSpace(r) {
			return
		}
		c.pos += size
	}
}

func (c *cursor) match(b byte) bool {
	if c.pos < len(c.input) && c.input[c.pos] == b {
		c.pos++
		return true
	}
	return false
}

// literal reads a quoted literal. When the literal holds no escape
// sequence the result is a substring of the input.
func (c *cursor) literal() (string, error) {
	if !c.match('\'') {
		return "", ErrInvalidFormat
	}

	start := c.pos
	escaped := false
	for i := start; i < len(c.input); i++ {
		switch c.input[i] {
		case '\\':
			escaped = true
			i++ // the escaped byte never terminates the literal
		case '\'':
			c.pos = i + 1
			raw := c.input[start:i]
			if escaped {
				return escape.Unescape(raw), nil
			}
			return raw, nil
		}
	}
	return "", ErrInvalidFormat
}

func (c *cursor) value() (String, error) {
	switch {
	case c.atLiteral():
		text, err := c.literal()
		if err != nil {
			return String{}, err
		}
		return Literal(text), nil
	case c.atMacro():
		body, args, err := macro(c, (*cursor).value)
		if err != nil {
			return String{}, err
		}
		return String{kind: KindTemplate, text: body, args: args}, nil
	}
	return String{}, ErrInvalidFormat
}

// macro reads t!( 'body' , arg , ... ) with optional whitespace around the
// separators. Each argument is read by arg, which lets the tree parser and
// the streaming transformer share the grammar.
func macro[T any](c *cursor, arg func(*cursor) (T, error)) (string, []T, error) {
	if !c.atMacro() {
		return "", nil, ErrInvalidFormat
	}
	c.pos += len(macroOpen)
	c.skipSpace()

	body, err := c.literal()
	if err != nil {
		return "", nil, err
	}

	var args []T
	for {
		c.skipSpace()
		switch {
		case c.match(')'):
			return body, args, nil
		case c.match(','):
			c.skipSpace()
			v, err := arg(c)
			if err != nil {
				return "", nil, err
			}
			args = append(args, v)
		default:
			return "", nil, ErrInvalidFormat
		}
	}
}
