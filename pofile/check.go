package pofile

import (
	"fmt"
	"slices"
	"strings"

	"github.com/minios-linux/i18nstr/i18nstr"
)

// ProblemKind classifies a catalog problem.
type ProblemKind int

const (
	// Untranslated entries have an empty msgstr.
	Untranslated ProblemKind = iota
	// Fuzzy entries are translated but marked for review.
	Fuzzy
	// PlaceholderMismatch entries reference a different set of argument
	// indices in msgstr than in msgid.
	PlaceholderMismatch
)

func (k ProblemKind) String() string {
	switch k {
	case Untranslated:
		return "untranslated"
	case Fuzzy:
		return "fuzzy"
	case PlaceholderMismatch:
		return "placeholder mismatch"
	}
	return fmt.Sprintf("ProblemKind(%d)", int(k))
}

// Problem is one finding of Check.
type Problem struct {
	Kind  ProblemKind
	Entry *Entry
	// Missing lists indices used by msgid but not by msgstr, Extra the
	// reverse. Both are sorted and only set for PlaceholderMismatch.
	Missing []int
	Extra   []int
}

func (p Problem) String() string {
	s := fmt.Sprintf("%s: %q", p.Kind, p.Entry.MsgID)
	if len(p.Missing) > 0 {
		s += fmt.Sprintf(" missing %s", formatIndices(p.Missing))
	}
	if len(p.Extra) > 0 {
		s += fmt.Sprintf(" extra %s", formatIndices(p.Extra))
	}
	return s
}

func formatIndices(indices []int) string {
	parts := make([]string, len(indices))
	for i, n := range indices {
		parts[i] = fmt.Sprintf("{%d}", n)
	}
	return strings.Join(parts, ",")
}

// Check reports untranslated and fuzzy entries and translations whose
// placeholders differ from their template body. Obsolete entries are
// skipped.
func Check(f *File) []Problem {
	var problems []Problem
	for _, e := range f.Entries {
		if e.MsgID == "" || e.Obsolete {
			continue
		}
		if e.MsgStr == "" {
			problems = append(problems, Problem{Kind: Untranslated, Entry: e})
			continue
		}
		if e.IsFuzzy() {
			problems = append(problems, Problem{Kind: Fuzzy, Entry: e})
		}

		want := sorted(i18nstr.Placeholders(e.MsgID))
		got := sorted(i18nstr.Placeholders(e.MsgStr))
		if !slices.Equal(want, got) {
			problems = append(problems, Problem{
				Kind:    PlaceholderMismatch,
				Entry:   e,
				Missing: difference(want, got),
				Extra:   difference(got, want),
			})
		}
	}
	return problems
}

func sorted(s []int) []int {
	slices.Sort(s)
	return s
}

// difference returns the elements of a absent from b.
func difference(a, b []int) []int {
	var out []int
	for _, n := range a {
		if !slices.Contains(b, n) {
			out = append(out, n)
		}
	}
	return out
}
