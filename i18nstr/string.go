// Package i18nstr implements a small text format for translatable strings.
//
// A value is either a quoted literal or a t!(...) template whose body may
// refer to its arguments with {0}, {1}, ... placeholders:
//
//	'already final text'
//	t!('pull {1} error: {0}', t!('resource changed'), '/file')
//
// Parse turns the encoding into a String tree, Format does the exact inverse,
// and Translate renders a tree into final text, passing every template body
// through a Resolver first. Transform does the same for macros embedded in
// free text without building a tree.
//
// All operations are pure and safe for concurrent use as long as the
// Resolver is.
package i18nstr

import "strings"

// Kind tells the two variants of a String apart.
type Kind uint8

const (
	KindLiteral  Kind = iota // already final text
	KindTemplate             // body with placeholders plus arguments
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindTemplate:
		return "template"
	}
	return "unknown"
}

// String is an immutable translatable string tree.
// The zero value is the empty literal.
type String struct {
	kind Kind
	text string
	args []String
}

// Literal returns a literal node holding text.
func Literal(text string) String {
	return String{kind: KindLiteral, text: text}
}

// Template returns a template node. Placeholder indices in body are not
// checked against args here; that happens during translation.
func Template(body string, args ...String) String {
	s := String{kind: KindTemplate, text: body}
	if len(args) > 0 {
		s.args = append([]String(nil), args...)
	}
	return s
}

// Kind returns the variant of s.
func (s String) Kind() Kind { return s.kind }

// IsLiteral reports whether s is a literal.
func (s String) IsLiteral() bool { return s.kind == KindLiteral }

// IsTemplate reports whether s is a template.
func (s String) IsTemplate() bool { return s.kind == KindTemplate }

// Text returns the literal text or the raw template body.
func (s String) Text() string { return s.text }

// NumArgs returns the number of template arguments. Literals have none.
func (s String) NumArgs() int { return len(s.args) }

// Arg returns the i-th argument. It panics if i is out of range.
func (s String) Arg(i int) String { return s.args[i] }

// Args returns a copy of the argument list.
func (s String) Args() []String {
	if len(s.args) == 0 {
		return nil
	}
	return append([]String(nil), s.args...)
}

// Equal reports whether s and o are structurally equal.
func (s String) Equal(o String) bool {
	return Compare(s, o) == 0
}

// Compare orders strings by kind, then text, then arguments
// lexicographically. A shorter argument list sorts first when it is a
// prefix of the longer one.
func Compare(a, b String) int {
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}
	if c := strings.Compare(a.text, b.text); c != 0 {
		return c
	}
	for i := 0; i < len(a.args) && i < len(b.args); i++ {
		if c := Compare(a.args[i], b.args[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a.args) < len(b.args):
		return -1
	case len(a.args) > len(b.args):
		return 1
	}
	return 0
}
