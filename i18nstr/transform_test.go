package i18nstr

import (
	"errors"
	"testing"
	"unsafe"
)

func TestTransform(t *testing.T) {
	zh := dictResolver{"resource changed": "资源变更"}

	tests := []struct {
		input string
		want  string
	}{
		{
			input: "t!('pull {1} error: {0}', t!('resource changed'), '/file')",
			want:  "pull /file error: 资源变更",
		},
		{
			input: `t!('User {0} says: \'Hello\'!', 'Alice')`,
			want:  "User Alice says: 'Hello'!",
		},
		{
			input: "t!('Start -> {0} -> End', t!('Middle {0}', t!('Inner')))",
			want:  "Start -> Middle Inner -> End",
		},
		{
			input: "Error log: t!('File not found: {0}', 'config.json'). Please check.",
			want:  "Error log: File not found: config.json. Please check.",
		},
		{
			input: "t!(  'Trim {0}'  ,  'test'  )",
			want:  "Trim test",
		},
		{
			input: "t!('Just string')",
			want:  "Just string",
		},
		{
			input: "Prefix t!('A') middle t!('B') suffix",
			want:  "Prefix A middle B suffix",
		},
		{
			input: "not a macro: t! or t!x, then t!('real')",
			want:  "not a macro: t! or t!x, then real",
		},
		{
			input: "t!('x {9}')",
			want:  "x {9}",
		},
		{
			input: "t!('Hello {0')",
			want:  "Hello {0",
		},
		{
			input: "t!('Empty: {0}', '')",
			want:  "Empty: ",
		},
		{
			input: "t!('{name} is {0}', 'lenient')",
			want:  "{name} is lenient",
		},
		{
			input: `t!('tab:{0}', 'a\tb')`,
			want:  "tab:a\tb",
		},
		{
			input: "t!('a}}b')",
			want:  "a}b",
		},
	}

	for _, tc := range tests {
		got, err := Transform(tc.input, zh)
		if err != nil {
			t.Fatalf("Transform(%q) error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("Transform(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestTransformInvalid(t *testing.T) {
	inputs := []string{
		"before t!('unterminated",
		"t!('a', b)",
		"t!('a' 'b')",
		"ok t!('fine') then t!(broken)",
		"t!('a', \"b\")",
	}

	for _, in := range inputs {
		if got, err := Transform(in, NoResolver); !errors.Is(err, ErrInvalidFormat) || got != "" {
			t.Fatalf("Transform(%q) = %q, %v; want empty, ErrInvalidFormat", in, got, err)
		}
	}
}

func TestTransformFastPath(t *testing.T) {
	in := "plain text without macros, only a t and a ! apart"
	out, err := Transform(in, NoResolver)
	if err != nil {
		t.Fatalf("Transform error: %v", err)
	}
	if unsafe.StringData(in) != unsafe.StringData(out) {
		t.Fatal("Transform copied input without macros")
	}
}

func TestTransformMatchesTranslate(t *testing.T) {
	r := dictResolver{
		"greeting {0}": "привет {0}",
		"world":        "мир",
	}
	inputs := []string{
		"t!('greeting {0}', t!('world'))",
		"t!('{1}{0}}}{{', 'a', t!('world'))",
		"t!('{0} {x} {1', 'v')",
		"t!('a}{0}', 'b')",
	}

	for _, in := range inputs {
		streamed, err := Transform(in, r)
		if err != nil {
			t.Fatalf("Transform(%q) error: %v", in, err)
		}
		if tree := Translate(mustParse(t, in), r); tree != streamed {
			t.Fatalf("Transform(%q) = %q but Translate = %q", in, streamed, tree)
		}
	}
}

func TestTranslateInPlace(t *testing.T) {
	s := "Status: t!('ok')"
	if err := TranslateInPlace(&s, NoResolver); err != nil {
		t.Fatalf("TranslateInPlace error: %v", err)
	}
	if s != "Status: ok" {
		t.Fatalf("TranslateInPlace result = %q", s)
	}

	bad := "Status: t!('broken"
	if err := TranslateInPlace(&bad, NoResolver); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("TranslateInPlace(bad) error = %v, want ErrInvalidFormat", err)
	}
	if bad != "Status: t!('broken" {
		t.Fatalf("TranslateInPlace modified input on error: %q", bad)
	}
}
