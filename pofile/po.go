// Package pofile reads and writes the gettext PO/POT files used as catalogs
// of i18nstr template bodies.
//
// Only what template catalogs need is modeled: no plural forms and no
// message contexts. Such entries parse without error but their plural and
// context lines are dropped.
package pofile

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// FormatFlag marks entries whose msgid is an i18nstr template body.
const FormatFlag = "i18nstr-format"

// Entry is a single message of a PO file.
type Entry struct {
	// TranslatorComments are "# " lines.
	TranslatorComments []string
	// ExtractedComments are "#." lines.
	ExtractedComments []string
	// References are "#:" lines, one "file:line" per element.
	References []string
	// Flags are the comma separated items of "#," lines.
	Flags []string

	MsgID  string
	MsgStr string

	// Obsolete marks "#~" entries.
	Obsolete bool
}

// HasFlag reports whether flag is set on the entry.
func (e *Entry) HasFlag(flag string) bool {
	return slices.Contains(e.Flags, flag)
}

// AddFlag sets flag unless it is already present.
func (e *Entry) AddFlag(flag string) {
	if !e.HasFlag(flag) {
		e.Flags = append(e.Flags, flag)
	}
}

func (e *Entry) IsFuzzy() bool { return e.HasFlag("fuzzy") }

// IsTranslated reports whether the entry carries a usable translation.
func (e *Entry) IsTranslated() bool {
	return e.MsgID != "" && e.MsgStr != "" && !e.IsFuzzy()
}

// AddReference records a source location, ignoring duplicates.
func (e *Entry) AddReference(ref string) {
	if !slices.Contains(e.References, ref) {
		e.References = append(e.References, ref)
	}
}

// File is a parsed PO or POT file.
type File struct {
	// Header is the msgid "" entry.
	Header  *Entry
	Entries []*Entry
}

// NewFile returns a file with an empty header.
func NewFile() *File {
	return &File{Header: &Entry{}}
}

// Lookup returns the live entry for msgid, or nil.
func (f *File) Lookup(msgid string) *Entry {
	for _, e := range f.Entries {
		if e.MsgID == msgid && !e.Obsolete {
			return e
		}
	}
	return nil
}

// HeaderField returns the value of a header field, matched
// case-insensitively.
func (f *File) HeaderField(name string) string {
	if f.Header == nil {
		return ""
	}
	for _, line := range strings.Split(f.Header.MsgStr, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if ok && strings.EqualFold(strings.TrimSpace(key), name) {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// SetHeaderField replaces or appends a header field.
func (f *File) SetHeaderField(name, value string) {
	if f.Header == nil {
		f.Header = &Entry{}
	}
	field := name + ": " + value

	lines := strings.Split(strings.TrimSuffix(f.Header.MsgStr, "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		lines = lines[:0]
	}
	replaced := false
	for i, line := range lines {
		key, _, ok := strings.Cut(line, ":")
		if ok && strings.EqualFold(strings.TrimSpace(key), name) {
			lines[i] = field
			replaced = true
			break
		}
	}
	if !replaced {
		lines = append(lines, field)
	}
	f.Header.MsgStr = strings.Join(lines, "\n") + "\n"
}

// Stats counts live entries by state.
type Stats struct {
	Total        int
	Translated   int
	Fuzzy        int
	Untranslated int
}

// Percent returns the translated share, 0 for an empty file.
func (s Stats) Percent() int {
	if s.Total == 0 {
		return 0
	}
	return s.Translated * 100 / s.Total
}

// Stats returns translation statistics.
func (f *File) Stats() Stats {
	var s Stats
	for _, e := range f.Entries {
		if e.MsgID == "" || e.Obsolete {
			continue
		}
		s.Total++
		switch {
		case e.IsFuzzy():
			s.Fuzzy++
		case e.IsTranslated():
			s.Translated++
		default:
			s.Untranslated++
		}
	}
	return s
}

// Header builds the metadata entry of a template catalog.
func Header(project, lang string, now time.Time) *Entry {
	stamp := now.UTC().Format("2006-01-02 15:04+0000")

	var b strings.Builder
	fmt.Fprintf(&b, "Project-Id-Version: %s\n", project)
	fmt.Fprintf(&b, "POT-Creation-Date: %s\n", stamp)
	fmt.Fprintf(&b, "PO-Revision-Date: %s\n", stamp)
	fmt.Fprintf(&b, "Language: %s\n", lang)
	b.WriteString("MIME-Version: 1.0\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\n")
	b.WriteString("Content-Transfer-Encoding: 8bit\n")

	return &Entry{
		TranslatorComments: []string{
			fmt.Sprintf("Template catalog for %s.", project),
		},
		MsgStr: b.String(),
	}
}
