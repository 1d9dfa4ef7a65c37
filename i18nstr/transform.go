package i18nstr

import "strings"

// Transform replaces every t!(...) macro embedded in free text with its
// translation. Macros are rendered directly from the input without building
// a tree: each argument is rendered to text first, then substituted into
// the resolved body using the same placeholder rules as Translate.
//
// Text without any "t!" is returned as is. The first malformed macro aborts
// the whole transform with ErrInvalidFormat and no partial output.
func Transform(text string, r Resolver) (string, error) {
	if !strings.Contains(text, "t!") {
		return text, nil
	}

	t := transformer{r: orIdentity(r)}
	c := &cursor{input: text}

	var out strings.Builder
	out.Grow(len(text))
	for c.pos < len(c.input) {
		idx := strings.Index(c.rest(), macroOpen)
		if idx < 0 {
			out.WriteString(c.rest())
			break
		}
		out.WriteString(c.input[c.pos : c.pos+idx])
		c.pos += idx

		s, err := t.render(c)
		if err != nil {
			return "", err
		}
		out.WriteString(s)
	}
	return out.String(), nil
}

// TranslateInPlace runs Transform on *s and stores the result. On error *s
// is left untouched.
func TranslateInPlace(s *string, r Resolver) error {
	out, err := Transform(*s, r)
	if err != nil {
		return err
	}
	*s = out
	return nil
}

type transformer struct {
	r Resolver
}

// render reads one macro at the cursor and returns its final text.
func (t transformer) render(c *cursor) (string, error) {
	body, args, err := macro(c, t.arg)
	if err != nil {
		return "", err
	}

	body = t.r.Resolve(body)
	if !strings.ContainsAny(body, "{}") {
		return body, nil
	}

	var b strings.Builder
	b.Grow(len(body) + 16)
	substitute(&b, body, len(args), func(out *strings.Builder, i int) {
		out.WriteString(args[i])
	})
	return b.String(), nil
}

func (t transformer) arg(c *cursor) (string, error) {
	switch {
	case c.atLiteral():
		return c.literal()
	case c.atMacro():
		return t.render(c)
	}
	return "", ErrInvalidFormat
}
