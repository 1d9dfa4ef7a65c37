package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/minios-linux/i18nstr/i18nstr"
)

// Catalog source types.
const (
	TypePo      = "po"      // single PO file
	TypeGettext = "gettext" // {lang}/LC_MESSAGES/{domain}.po tree
	TypeJSON    = "json"
	TypeYAML    = "yaml"
	TypeTOML    = "toml" // go-i18n message file
)

// DefaultDomain is the gettext domain used when a source names none.
const DefaultDomain = "messages"

// Source describes where a catalog comes from.
type Source struct {
	Lang   string
	Type   string
	Path   string
	Domain string
}

// DetectType infers the source type from the path: directories are gettext
// trees, files are recognized by extension.
func DetectType(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return TypeGettext
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".po":
		return TypePo
	case ".json":
		return TypeJSON
	case ".yaml", ".yml":
		return TypeYAML
	case ".toml":
		return TypeTOML
	}
	return ""
}

// Language returns the source language, falling back to the one named by
// the file, as in "ru.po" or "active.ru.toml".
func (s Source) Language() string {
	if s.Lang != "" || s.Type == TypeGettext || (s.Type == "" && DetectType(s.Path) == TypeGettext) {
		return s.Lang
	}
	return langFromPath(s.Path)
}

// Open builds the resolver described by src. Missing Type and Lang are
// inferred from the path.
func Open(src Source) (i18nstr.Resolver, error) {
	if src.Type == "" {
		src.Type = DetectType(src.Path)
	}
	src.Lang = src.Language()
	if src.Lang == "" {
		return nil, fmt.Errorf("%s: %w", src.Path, ErrEmptyLanguage)
	}

	switch src.Type {
	case TypePo:
		return LoadPoFile(src.Path)
	case TypeGettext:
		domain := src.Domain
		if domain == "" {
			domain = DefaultDomain
		}
		return NewGettext(os.DirFS(src.Path), ".", src.Lang, domain), nil
	case TypeJSON, TypeYAML:
		return LoadFile(src.Lang, src.Path)
	case TypeTOML:
		b, err := NewBundle(src.Lang)
		if err != nil {
			return nil, err
		}
		if err := b.LoadFile(src.Path); err != nil {
			return nil, err
		}
		return b.Resolver(src.Lang), nil
	}
	return nil, fmt.Errorf("%w: %q (%s)", ErrUnsupportedFormat, src.Type, src.Path)
}
