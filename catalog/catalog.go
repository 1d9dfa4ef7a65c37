// Package catalog provides i18nstr resolvers backed by translation catalogs:
// in-memory maps loaded from JSON or YAML, gettext PO files, and go-i18n
// message bundles. Resolvers can be chained, cached, and selected per
// language with Set.
//
// Every resolver in this package is safe for concurrent use once built.
package catalog

import (
	"sort"

	"github.com/minios-linux/i18nstr/i18nstr"
)

// Catalog is an immutable map from template bodies to translated bodies
// for one language.
type Catalog struct {
	lang     string
	messages map[string]string
}

// New returns a catalog holding a copy of messages.
func New(lang string, messages map[string]string) *Catalog {
	c := &Catalog{lang: lang, messages: make(map[string]string, len(messages))}
	for k, v := range messages {
		c.messages[k] = v
	}
	return c
}

// Lang returns the catalog language.
func (c *Catalog) Lang() string { return c.lang }

// Len returns the number of messages.
func (c *Catalog) Len() int { return len(c.messages) }

// Keys returns the template bodies in sorted order.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.messages))
	for k := range c.messages {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lookup returns the translation of body, if any. Empty translations count
// as missing.
func (c *Catalog) Lookup(body string) (string, bool) {
	v, ok := c.messages[body]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Resolve implements i18nstr.Resolver.
func (c *Catalog) Resolve(body string) string {
	if v, ok := c.Lookup(body); ok {
		return v
	}
	return body
}

// merge returns a new catalog with o's messages layered over c's.
func (c *Catalog) merge(o *Catalog) *Catalog {
	out := New(c.lang, c.messages)
	for k, v := range o.messages {
		out.messages[k] = v
	}
	return out
}

type chain []i18nstr.Resolver

func (ch chain) Resolve(body string) string {
	for _, r := range ch {
		if v := r.Resolve(body); v != body {
			return v
		}
	}
	return body
}

// Chain returns a resolver that asks each resolver in turn and uses the
// first answer that differs from the body. Nil resolvers are skipped.
func Chain(resolvers ...i18nstr.Resolver) i18nstr.Resolver {
	ch := make(chain, 0, len(resolvers))
	for _, r := range resolvers {
		if r != nil {
			ch = append(ch, r)
		}
	}
	if len(ch) == 1 {
		return ch[0]
	}
	return ch
}
