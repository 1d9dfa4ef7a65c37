package i18nstr

import (
	"strings"
	"testing"
)

// dictResolver translates a fixed set of bodies.
type dictResolver map[string]string

func (d dictResolver) Resolve(body string) string {
	if v, ok := d[body]; ok {
		return v
	}
	return body
}

// recordingResolver remembers every body it was asked about.
type recordingResolver struct {
	seen []string
}

func (r *recordingResolver) Resolve(body string) string {
	r.seen = append(r.seen, body)
	return body
}

func mustParse(t *testing.T, s string) String {
	t.Helper()
	v, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", s, err)
	}
	return v
}

func TestTranslate(t *testing.T) {
	zh := dictResolver{"resource changed": "资源变更"}

	tests := []struct {
		name  string
		input string
		r     Resolver
		want  string
	}{
		{
			name:  "resolver applied to nested template",
			input: "t!('pull {1} error: {0}', t!('resource changed'), '/file')",
			r:     zh,
			want:  "pull /file error: 资源变更",
		},
		{
			name:  "escaped quotes",
			input: `t!('User {0} says: \'Hello\'!', 'Alice')`,
			r:     NoResolver,
			want:  "User Alice says: 'Hello'!",
		},
		{
			name:  "nesting",
			input: "t!('Start -> {0} -> End', t!('Middle {0}', t!('Inner')))",
			want:  "Start -> Middle Inner -> End",
		},
		{
			name:  "literal is never resolved",
			input: "'resource changed'",
			r:     zh,
			want:  "resource changed",
		},
		{
			name:  "out of range placeholder",
			input: "t!('x {9}')",
			want:  "x {9}",
		},
		{
			name:  "non numeric placeholder",
			input: "t!('{name} and {+0} and { 0}', 'a')",
			want:  "{name} and {+0} and { 0}",
		},
		{
			name:  "empty placeholder",
			input: "t!('a {} b', 'x')",
			want:  "a {} b",
		},
		{
			name:  "unclosed brace",
			input: "t!('Hello {0')",
			want:  "Hello {0",
		},
		{
			name:  "empty argument",
			input: "t!('Empty: {0}', '')",
			want:  "Empty: ",
		},
		{
			name:  "repeated placeholder",
			input: "t!('{0}-{0}-{1}', 'a', 'b')",
			want:  "a-a-b",
		},
		{
			name:  "double open brace",
			input: "t!('{{0}}', 'a')",
			want:  "{0}",
		},
		{
			name:  "double close brace collapses",
			input: "t!('a}}b')",
			want:  "a}b",
		},
		{
			name:  "lone close brace",
			input: "t!('a}b')",
			want:  "a}b",
		},
		{
			name:  "close brace at end",
			input: "t!('a}')",
			want:  "a}",
		},
		{
			name:  "close then open brace",
			input: "t!('}{0}', 'x')",
			want:  "}{0}",
		},
		{
			name:  "huge index",
			input: "t!('{99999999999999999999999}', 'x')",
			want:  "{99999999999999999999999}",
		},
		{
			name:  "argument text is not substituted again",
			input: "t!('{0}', '{0}')",
			want:  "{0}",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Translate(mustParse(t, tc.input), tc.r); got != tc.want {
				t.Fatalf("Translate(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestTranslateResolvesBeforeSubstituting(t *testing.T) {
	r := ResolverFunc(func(body string) string {
		if body == "{0} files" {
			return "файлов: {0}"
		}
		return body
	})

	got := Template("{0} files", Literal("3")).Translate(r)
	if got != "файлов: 3" {
		t.Fatalf("Translate() = %q, want %q", got, "файлов: 3")
	}
}

func TestTranslateIsLazy(t *testing.T) {
	tree := Template("only {1}",
		Template("unused {0}", Template("deep unused")),
		Template("used"),
		Template("also unused"),
	)

	r := &recordingResolver{}
	if got := Translate(tree, r); got != "only used" {
		t.Fatalf("Translate() = %q, want %q", got, "only used")
	}

	want := []string{"only {1}", "used"}
	if strings.Join(r.seen, "|") != strings.Join(want, "|") {
		t.Fatalf("resolver saw %q, want %q", r.seen, want)
	}
}

func TestTranslateOncePerVisit(t *testing.T) {
	tree := Template("{0} {0}", Template("x"))

	r := &recordingResolver{}
	Translate(tree, r)

	// The argument node is visited once per placeholder that refers to it.
	if len(r.seen) != 3 {
		t.Fatalf("resolver called %d times, want 3: %q", len(r.seen), r.seen)
	}
}

func TestTranslateNilResolver(t *testing.T) {
	if got := Translate(Template("a {0}", Literal("b")), nil); got != "a b" {
		t.Fatalf("Translate(nil resolver) = %q, want %q", got, "a b")
	}
}

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		body string
		want []int
	}{
		{body: "no placeholders", want: nil},
		{body: "{1} then {0} then {1}", want: []int{1, 0}},
		{body: "{{0}} {x} {2", want: nil},
		{body: "{12}", want: []int{12}},
	}

	for _, tc := range tests {
		got := Placeholders(tc.body)
		if len(got) != len(tc.want) {
			t.Fatalf("Placeholders(%q) = %v, want %v", tc.body, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("Placeholders(%q) = %v, want %v", tc.body, got, tc.want)
			}
		}
	}
}
