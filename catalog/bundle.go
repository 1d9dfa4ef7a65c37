package catalog

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/nicksnyder/go-i18n/v2/i18n/template"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Bundle wraps a go-i18n message bundle. Message IDs are template bodies.
// Messages are rendered with the identity parser, so {n} placeholders reach
// i18nstr untouched.
type Bundle struct {
	bundle *i18n.Bundle
}

// NewBundle returns an empty bundle whose default language is lang. TOML,
// YAML and JSON message files are understood.
func NewBundle(lang string) (*Bundle, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("parsing language %q: %w", lang, err)
	}
	b := i18n.NewBundle(tag)
	b.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	b.RegisterUnmarshalFunc("yml", yaml.Unmarshal)
	return &Bundle{bundle: b}, nil
}

// LoadFile loads a message file such as "active.ru.toml". The language is
// taken from the file name.
func (b *Bundle) LoadFile(filePath string) error {
	mf, err := b.bundle.LoadMessageFile(filePath)
	if err != nil {
		return fmt.Errorf("%w: %s: %s", ErrInvalidFile, filePath, err)
	}
	log.Debugf("loaded %d messages for %s from %s", len(mf.Messages), mf.Tag, filePath)
	return nil
}

// LoadFS loads message files from fsys.
func (b *Bundle) LoadFS(fsys fs.FS, paths ...string) error {
	for _, p := range paths {
		if _, err := b.bundle.LoadMessageFileFS(fsys, p); err != nil {
			return fmt.Errorf("%w: %s: %s", ErrInvalidFile, p, err)
		}
	}
	return nil
}

// ParseBytes parses message file contents; path only supplies the language
// and format, e.g. "ru.toml".
func (b *Bundle) ParseBytes(buf []byte, path string) error {
	if _, err := b.bundle.ParseMessageFileBytes(buf, path); err != nil {
		return fmt.Errorf("%w: %s: %s", ErrInvalidFile, path, err)
	}
	return nil
}

// AddMessages adds body → translation pairs for lang.
func (b *Bundle) AddMessages(lang string, messages map[string]string) error {
	tag, err := language.Parse(lang)
	if err != nil {
		return fmt.Errorf("parsing language %q: %w", lang, err)
	}
	msgs := make([]*i18n.Message, 0, len(messages))
	for id, other := range messages {
		msgs = append(msgs, &i18n.Message{ID: id, Other: other})
	}
	return b.bundle.AddMessages(tag, msgs...)
}

// Languages returns the languages with messages in the bundle.
func (b *Bundle) Languages() []string {
	tags := b.bundle.LanguageTags()
	langs := make([]string, len(tags))
	for i, t := range tags {
		langs[i] = t.String()
	}
	return langs
}

// Resolver returns a resolver preferring langs in order, falling back to
// the bundle default language.
func (b *Bundle) Resolver(langs ...string) *BundleResolver {
	return &BundleResolver{localizer: i18n.NewLocalizer(b.bundle, langs...)}
}

// BundleResolver resolves template bodies through a go-i18n localizer.
type BundleResolver struct {
	localizer *i18n.Localizer
}

// Resolve implements i18nstr.Resolver.
func (r *BundleResolver) Resolve(body string) string {
	out, err := r.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:      body,
		TemplateParser: template.IdentityParser{},
	})
	if err != nil {
		// A message found only in the default language comes back together
		// with MessageNotFoundErr; keep it.
		var notFound *i18n.MessageNotFoundErr
		if !errors.As(err, &notFound) {
			log.Debugf("localizing %q: %v", body, err)
			return body
		}
	}
	if out == "" {
		return body
	}
	return out
}
