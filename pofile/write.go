package pofile

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Write encodes the file in PO syntax.
func (f *File) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if f.Header != nil {
		writeEntry(bw, f.Header)
	}
	for _, e := range f.Entries {
		bw.WriteByte('\n')
		writeEntry(bw, e)
	}
	return bw.Flush()
}

// WriteFile writes the file to path, creating parent directories.
func (f *File) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.Write(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func writeEntry(w *bufio.Writer, e *Entry) {
	for _, c := range e.TranslatorComments {
		w.WriteString("# " + c + "\n")
	}
	for _, c := range e.ExtractedComments {
		w.WriteString("#. " + c + "\n")
	}
	if len(e.References) > 0 {
		w.WriteString("#: " + strings.Join(e.References, " ") + "\n")
	}
	if len(e.Flags) > 0 {
		w.WriteString("#, " + strings.Join(e.Flags, ", ") + "\n")
	}

	prefix := ""
	if e.Obsolete {
		prefix = "#~ "
	}
	writeString(w, prefix, "msgid", e.MsgID)
	writeString(w, prefix, "msgstr", e.MsgStr)
}

// writeString emits keyword and value, splitting multi-line values into
// one quoted line per source line.
func writeString(w *bufio.Writer, prefix, keyword, value string) {
	w.WriteString(prefix + keyword + " ")
	if !strings.Contains(value, "\n") || value == "\n" {
		w.WriteString(quote(value) + "\n")
		return
	}

	w.WriteString("\"\"\n")
	for _, line := range strings.SplitAfter(value, "\n") {
		if line != "" {
			w.WriteString(prefix + quote(line) + "\n")
		}
	}
}

var quoter = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\t", `\t`,
	"\r", `\r`,
)

func quote(s string) string {
	return `"` + quoter.Replace(s) + `"`
}
