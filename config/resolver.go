package config

import (
	"errors"
	"slices"

	log "github.com/sirupsen/logrus"

	"github.com/minios-linux/i18nstr/catalog"
	"github.com/minios-linux/i18nstr/i18nstr"
)

// Translator is the resolver assembled from a project file.
type Translator struct {
	i18nstr.Resolver
	// Lang is the catalog language that matched, or the source language
	// when nothing matched.
	Lang string

	cache *catalog.Cache
}

// Close releases the resolver cache.
func (t *Translator) Close() {
	if t.cache != nil {
		t.cache.Close()
	}
}

// Translator opens every catalog and returns a cached resolver for the
// best match of requested, then Lang, then Fallback. Catalogs of the
// fallback languages are consulted for bodies the primary lacks. When no
// catalog matches, bodies pass through untranslated.
func (f *File) Translator(requested ...string) (*Translator, error) {
	set := catalog.NewSet()
	for _, c := range f.Catalogs {
		src := c.Source()
		r, err := catalog.Open(src)
		if err != nil {
			return nil, err
		}
		if err := set.Add(src.Language(), r); err != nil {
			return nil, err
		}
	}

	want := slices.Concat(requested, []string{f.Lang})
	primary, lang, err := set.For(want...)
	if errors.Is(err, catalog.ErrNoCatalog) {
		log.Debugf("no catalog for %v, leaving bodies in %s", want, f.SourceLang)
		return &Translator{Resolver: i18nstr.NoResolver, Lang: f.SourceLang}, nil
	}
	if err != nil {
		return nil, err
	}

	chain := []i18nstr.Resolver{primary}
	used := map[string]bool{lang: true}
	for _, fb := range f.Fallback {
		r, fbLang, err := set.For(fb)
		if err != nil || used[fbLang] {
			continue
		}
		used[fbLang] = true
		chain = append(chain, r)
	}
	log.Debugf("translating into %s (%d catalog languages chained)", lang, len(chain))

	cache, err := catalog.Cached(catalog.Chain(chain...), f.CacheSize)
	if err != nil {
		return nil, err
	}
	return &Translator{Resolver: cache, Lang: lang, cache: cache}, nil
}
