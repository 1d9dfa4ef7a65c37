package i18nstr

import (
	"errors"
	"testing"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

type message struct {
	Code string `json:"code" yaml:"code"`
	Text String `json:"text" yaml:"text"`
}

func TestJSONCodec(t *testing.T) {
	in := message{
		Code: "E42",
		Text: Template("File not found: {0}", Literal("it's.json")),
	}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("json.Marshal error: %v", err)
	}
	want := `{"code":"E42","text":"t!('File not found: {0}','it\\'s.json')"}`
	if string(data) != want {
		t.Fatalf("json.Marshal = %s, want %s", data, want)
	}

	var out message
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal error: %v", err)
	}
	if !out.Text.Equal(in.Text) {
		t.Fatalf("json round trip = %s, want %s", out.Text, in.Text)
	}
}

func TestJSONCodecRejectsInvalidEncoding(t *testing.T) {
	var out message
	err := json.Unmarshal([]byte(`{"text":"t!('broken"}`), &out)
	if !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("json.Unmarshal error = %v, want ErrInvalidFormat", err)
	}
}

func TestYAMLCodec(t *testing.T) {
	in := message{
		Code: "W1",
		Text: Template("{0} changed", Template("resource")),
	}

	data, err := yaml.Marshal(in)
	if err != nil {
		t.Fatalf("yaml.Marshal error: %v", err)
	}

	var out message
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatalf("yaml.Unmarshal error: %v\n%s", err, data)
	}
	if !out.Text.Equal(in.Text) {
		t.Fatalf("yaml round trip = %s, want %s", out.Text, in.Text)
	}

	if err := yaml.Unmarshal([]byte("text: [1, 2]\n"), &out); err == nil {
		t.Fatal("yaml.Unmarshal accepted a sequence")
	}
}

func TestTextCodec(t *testing.T) {
	var s String
	if err := s.UnmarshalText([]byte("t!('a {0}', 'b')")); err != nil {
		t.Fatalf("UnmarshalText error: %v", err)
	}
	text, err := s.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText error: %v", err)
	}
	if string(text) != "t!('a {0}','b')" {
		t.Fatalf("MarshalText = %q", text)
	}
}
