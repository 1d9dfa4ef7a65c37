package catalog

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"
)

// Po resolves template bodies through a single gettext PO file. The body is
// the msgid; untranslated and missing entries resolve to the body itself.
type Po struct {
	po *gotext.Po
}

// NewPo parses PO file contents.
func NewPo(data []byte) *Po {
	po := gotext.NewPo()
	po.Parse(data)
	return &Po{po: po}
}

// LoadPoFile reads and parses a PO file from disk.
func LoadPoFile(filePath string) (*Po, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filePath, err)
	}
	log.Debugf("loaded PO catalog %s", filePath)
	return NewPo(data), nil
}

// Resolve implements i18nstr.Resolver.
func (p *Po) Resolve(body string) string {
	if body == "" {
		return body
	}
	return p.po.Get(body)
}

// Gettext resolves template bodies through a gettext locale tree laid out
// as {dir}/{lang}/LC_MESSAGES/{domain}.po (or .mo).
type Gettext struct {
	locale *gotext.Locale
	domain string
}

// NewGettext opens the locale tree rooted at dir inside fsys.
func NewGettext(fsys fs.FS, dir, lang, domain string) *Gettext {
	locale := gotext.NewLocaleFSWithPath(lang, fsys, dir)
	locale.AddDomain(domain)
	locale.SetDomain(domain)
	return &Gettext{locale: locale, domain: domain}
}

// Resolve implements i18nstr.Resolver.
func (g *Gettext) Resolve(body string) string {
	if body == "" {
		return body
	}
	return g.locale.Get(body)
}
