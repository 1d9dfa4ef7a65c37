package i18nstr

import "strings"

// Translate renders s into final text. Literals are copied verbatim;
// template bodies go through r and then have their placeholders replaced
// by the rendered arguments. Arguments that no placeholder references are
// never rendered, so r never sees them. A nil r behaves like NoResolver.
func Translate(s String, r Resolver) string {
	var b strings.Builder
	b.Grow(32)
	TranslateTo(&b, s, r)
	return b.String()
}

// TranslateTo is Translate writing into b.
func TranslateTo(b *strings.Builder, s String, r Resolver) {
	translateTo(b, s, orIdentity(r))
}

func translateTo(b *strings.Builder, s String, r Resolver) {
	if s.kind == KindLiteral {
		b.WriteString(s.text)
		return
	}

	body := r.Resolve(s.text)
	substitute(b, body, len(s.args), func(out *strings.Builder, i int) {
		translateTo(out, s.args[i], r)
	})
}

// Translate is the method form of the package-level Translate.
func (s String) Translate(r Resolver) string {
	return Translate(s, r)
}
