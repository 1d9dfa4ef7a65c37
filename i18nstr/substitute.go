package i18nstr

import (
	"strconv"
	"strings"
)

// braceState is the placeholder scanner state.
type braceState uint8

const (
	stNormal    braceState = iota
	stOpenBrace            // saw '{', collecting index text
	stCloseBrace           // saw a '}' outside a placeholder
)

// substitute copies body to out, replacing {n} with argument n.
//
// Placeholders are lenient: an index that is not a plain decimal number or
// is not below nargs is copied literally with its braces. "{{" yields "{"
// and "}}" yields "}". A lone '}' followed by anything else is copied
// together with that character. An unterminated '{' is copied with the
// rest of the body.
//
// writeArg renders argument i into out. It is only called for indices that
// are actually referenced.
func substitute(out *strings.Builder, body string, nargs int, writeArg func(out *strings.Builder, i int)) {
	state := stNormal
	open := 0

	for i := 0; i < len(body); i++ {
		c := body[i]
		switch state {
		case stNormal:
			switch c {
			case '{':
				state, open = stOpenBrace, i
			case '}':
				state = stCloseBrace
			default:
				out.WriteByte(c)
			}

		case stOpenBrace:
			switch c {
			case '}':
				text := body[open+1 : i]
				if n, ok := placeholderIndex(text); ok && n < nargs {
					writeArg(out, n)
				} else {
					out.WriteByte('{')
					out.WriteString(text)
					out.WriteByte('}')
				}
				state = stNormal
			case '{':
				// Text collected since the first brace is dropped.
				out.WriteByte('{')
				state = stNormal
			}

		case stCloseBrace:
			out.WriteByte('}')
			if c != '}' {
				out.WriteByte(c)
			}
			state = stNormal
		}
	}

	switch state {
	case stOpenBrace:
		out.WriteByte('{')
		out.WriteString(body[open+1:])
	case stCloseBrace:
		out.WriteByte('}')
	}
}

// placeholderIndex parses the text between braces. Only ASCII digits are
// accepted; signs, spaces and overflowing values are not.
func placeholderIndex(text string) (int, bool) {
	if text == "" {
		return 0, false
	}
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(text, 10, strconv.IntSize-1)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// Placeholders returns the distinct argument indices referenced by body in
// order of first use, scanning it the way Translate does. Indices are
// reported regardless of how many arguments a template actually has.
func Placeholders(body string) []int {
	var (
		seen    = make(map[int]bool)
		indices []int
		discard strings.Builder
	)
	substitute(&discard, body, int(^uint(0)>>1), func(_ *strings.Builder, i int) {
		if !seen[i] {
			seen[i] = true
			indices = append(indices, i)
		}
	})
	return indices
}
