// Package extract collects i18nstr template bodies from free text and
// writes them as a gettext POT template for translators.
//
// Any file may embed encoded strings; every "t!(" occurrence is decoded and
// the body of the macro, together with the bodies of nested template
// arguments, becomes a message.
package extract

import (
	"fmt"
	"strings"
	"time"

	"github.com/minios-linux/i18nstr/i18nstr"
	"github.com/minios-linux/i18nstr/pofile"
)

const marker = "t!("

// Message is one extracted template body.
type Message struct {
	Body string
	// Refs are "name:line" locations in first-seen order.
	Refs []string
}

// Warning reports a "t!(" occurrence that did not decode.
type Warning struct {
	Ref string
	Err error
}

func (w Warning) String() string { return fmt.Sprintf("%s: %v", w.Ref, w.Err) }

// Result accumulates messages across any number of inputs.
type Result struct {
	Messages []*Message
	Warnings []Warning
	// Files lists the inputs that were scanned.
	Files []string

	index map[string]*Message
}

// NewResult returns an empty result.
func NewResult() *Result {
	return &Result{index: make(map[string]*Message)}
}

func (r *Result) add(body, ref string) {
	if m, ok := r.index[body]; ok {
		for _, existing := range m.Refs {
			if existing == ref {
				return
			}
		}
		m.Refs = append(m.Refs, ref)
		return
	}
	m := &Message{Body: body, Refs: []string{ref}}
	r.index[body] = m
	r.Messages = append(r.Messages, m)
}

// addTree records the body of s and of every template nested in it.
func (r *Result) addTree(s i18nstr.String, ref string) {
	if !s.IsTemplate() {
		return
	}
	r.add(s.Text(), ref)
	for i := range s.NumArgs() {
		r.addTree(s.Arg(i), ref)
	}
}

// Scan adds the messages found in text. name labels references.
func (r *Result) Scan(name, text string) {
	line, counted := 1, 0
	for pos := 0; ; {
		i := strings.Index(text[pos:], marker)
		if i < 0 {
			break
		}
		start := pos + i
		line += strings.Count(text[counted:start], "\n")
		counted = start
		ref := fmt.Sprintf("%s:%d", name, line)

		s, n, err := i18nstr.ParsePrefix(text[start:])
		if err != nil {
			r.Warnings = append(r.Warnings, Warning{Ref: ref, Err: err})
			pos = start + len(marker)
			continue
		}
		r.addTree(s, ref)
		pos = start + n
	}
	r.Files = append(r.Files, name)
}

// Text extracts the messages of a single input.
func Text(name, text string) *Result {
	r := NewResult()
	r.Scan(name, text)
	return r
}

// POT renders the messages as a template catalog. Bodies that reference
// placeholders are flagged with pofile.FormatFlag.
func (r *Result) POT(project string) *pofile.File {
	f := &pofile.File{Header: pofile.Header(project, "", time.Now())}
	for _, m := range r.Messages {
		e := &pofile.Entry{
			MsgID:      m.Body,
			References: append([]string(nil), m.Refs...),
		}
		if len(i18nstr.Placeholders(m.Body)) > 0 {
			e.AddFlag(pofile.FormatFlag)
		}
		f.Entries = append(f.Entries, e)
	}
	return f
}
