package pofile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

type field int

const (
	fieldNone field = iota
	fieldID
	fieldStr
	fieldIgnored
)

type parser struct {
	file    *File
	current *Entry
	last    field
}

func (p *parser) entry() *Entry {
	if p.current == nil {
		p.current = &Entry{}
	}
	return p.current
}

func (p *parser) flush() {
	if p.current == nil {
		return
	}
	if p.current.MsgID == "" && !p.current.Obsolete {
		p.file.Header = p.current
	} else {
		p.file.Entries = append(p.file.Entries, p.current)
	}
	p.current = nil
	p.last = fieldNone
}

func (p *parser) comment(line string) {
	e := p.entry()
	switch {
	case strings.HasPrefix(line, "#:"):
		e.References = append(e.References, strings.Fields(line[2:])...)
	case strings.HasPrefix(line, "#,"):
		for _, flag := range strings.Split(line[2:], ",") {
			if flag = strings.TrimSpace(flag); flag != "" {
				e.Flags = append(e.Flags, flag)
			}
		}
	case strings.HasPrefix(line, "#."):
		e.ExtractedComments = append(e.ExtractedComments, strings.TrimSpace(line[2:]))
	case strings.HasPrefix(line, "#|"):
		// previous msgid of fuzzy entries
	default:
		e.TranslatorComments = append(e.TranslatorComments, strings.TrimPrefix(line[1:], " "))
	}
}

func (p *parser) keyword(line string, lineNum int) error {
	e := p.entry()
	key, value, _ := strings.Cut(line, " ")
	text, err := unquote(value)
	if err != nil {
		return fmt.Errorf("line %d: %w", lineNum, err)
	}
	switch {
	case key == "msgid":
		e.MsgID, p.last = text, fieldID
	case key == "msgstr", key == "msgstr[0]":
		e.MsgStr, p.last = text, fieldStr
	case key == "msgctxt", key == "msgid_plural", strings.HasPrefix(key, "msgstr["):
		p.last = fieldIgnored
	default:
		return fmt.Errorf("line %d: unknown keyword %q", lineNum, key)
	}
	return nil
}

func (p *parser) continuation(line string, lineNum int) error {
	text, err := unquote(line)
	if err != nil {
		return fmt.Errorf("line %d: %w", lineNum, err)
	}
	switch p.last {
	case fieldID:
		p.current.MsgID += text
	case fieldStr:
		p.current.MsgStr += text
	case fieldNone:
		return fmt.Errorf("line %d: string without keyword", lineNum)
	}
	return nil
}

// Parse reads a PO or POT file.
func Parse(r io.Reader) (*File, error) {
	p := &parser{file: NewFile()}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			p.flush()
			continue
		}

		if rest, ok := strings.CutPrefix(line, "#~"); ok {
			p.entry().Obsolete = true
			line = strings.TrimSpace(rest)
			if line == "" {
				continue
			}
		}

		var err error
		switch {
		case line[0] == '#':
			p.comment(line)
		case line[0] == '"':
			err = p.continuation(line, lineNum)
		default:
			err = p.keyword(line, lineNum)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading PO file: %w", err)
	}
	p.flush()
	return p.file, nil
}

// ParseFile reads a PO or POT file from disk.
func ParseFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	po, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return po, nil
}

// unquote decodes a PO string literal.
func unquote(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", fmt.Errorf("malformed string %s", s)
	}
	s = s[1 : len(s)-1]
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String(), nil
}
