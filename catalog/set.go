package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/thoas/go-funk"
	"golang.org/x/text/language"

	"github.com/minios-linux/i18nstr/i18nstr"
)

// Match picks the entry of supported that best serves the requested
// languages, in preference order. It fails with ErrNoCatalog when supported
// is empty or nothing matches better than "no confidence".
func Match(supported []string, requested ...string) (string, error) {
	if len(supported) == 0 {
		return "", ErrNoCatalog
	}

	tags := make([]language.Tag, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(normalizeLang(s))
		if err != nil {
			return "", fmt.Errorf("parsing language %q: %w", s, err)
		}
		tags = append(tags, tag)
	}

	want := requestedTags(requested)
	if len(want) == 0 {
		return "", ErrNoCatalog
	}

	_, idx, conf := language.NewMatcher(tags).Match(want...)
	if conf == language.No {
		return "", ErrNoCatalog
	}
	return supported[idx], nil
}

// requestedTags parses the requested languages in order. Entries are
// trimmed and normalized before duplicates are dropped, so " ru" and "ru"
// count once. Blank and unparsable entries are skipped.
func requestedTags(requested []string) []language.Tag {
	cleaned := make([]string, 0, len(requested))
	for _, r := range requested {
		if r = normalizeLang(strings.TrimSpace(r)); r != "" {
			cleaned = append(cleaned, r)
		}
	}

	want := make([]language.Tag, 0, len(cleaned))
	for _, r := range funk.UniqString(cleaned) {
		tag, err := language.Parse(r)
		if err != nil {
			continue
		}
		want = append(want, tag)
	}
	return want
}

// normalizeLang turns POSIX locale names such as "pt_BR.UTF-8" into BCP 47.
func normalizeLang(lang string) string {
	if i := strings.IndexByte(lang, '.'); i >= 0 {
		lang = lang[:i]
	}
	return strings.ReplaceAll(lang, "_", "-")
}

// Set holds one resolver per language.
type Set struct {
	mu        sync.RWMutex
	resolvers map[string]i18nstr.Resolver
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{resolvers: make(map[string]i18nstr.Resolver)}
}

// Add registers r for lang. A second resolver for the same language is
// consulted after the first one.
func (s *Set) Add(lang string, r i18nstr.Resolver) error {
	if lang == "" {
		return ErrEmptyLanguage
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.resolvers[lang]; ok {
		r = Chain(existing, r)
	}
	s.resolvers[lang] = r
	return nil
}

// Languages returns the registered languages in sorted order.
func (s *Set) Languages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	langs := make([]string, 0, len(s.resolvers))
	for l := range s.resolvers {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	return langs
}

// For returns the resolver of the best matching language.
func (s *Set) For(requested ...string) (i18nstr.Resolver, string, error) {
	lang, err := Match(s.Languages(), requested...)
	if err != nil {
		return nil, "", err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolvers[lang], lang, nil
}
