// Package config loads the .i18nstr.yaml project file.
//
// A project file names the translation catalogs and the language to
// translate into. Values come from three layers, each overriding the
// previous one: the YAML file, I18NSTR_* environment variables (a .env file
// next to the project file is loaded first), and command line flags applied
// by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/minios-linux/i18nstr/catalog"
)

// FileName is the project file looked up in the root directory.
const FileName = ".i18nstr.yaml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "I18NSTR"

// DefaultCacheSize bounds the resolver cache when the file sets none.
const DefaultCacheSize = 1000

var ErrInvalidConfig = errors.New("config: invalid configuration")

// ---------------------------------------------------------------------------
// YAML schema
// ---------------------------------------------------------------------------

// File is the top-level .i18nstr.yaml structure.
type File struct {
	// SourceLang is the language template bodies are written in (default "en").
	SourceLang string `yaml:"source_lang,omitempty"`
	// Lang is the target language. Empty means detect from the locale.
	Lang string `yaml:"lang,omitempty"`
	// Fallback languages are tried in order when Lang has no translation.
	Fallback []string `yaml:"fallback,omitempty"`
	// CacheSize is the number of resolved bodies kept in memory.
	CacheSize int64 `yaml:"cache_size,omitempty"`
	// Catalogs lists the translation catalogs.
	Catalogs []Catalog `yaml:"catalogs,omitempty"`

	// Root is the directory holding the file. Catalog paths are relative
	// to it.
	Root string `yaml:"-"`
}

// Catalog is one catalogs entry.
type Catalog struct {
	Lang   string `yaml:"lang,omitempty"`
	Type   string `yaml:"type,omitempty"`
	Path   string `yaml:"path"`
	Domain string `yaml:"domain,omitempty"`
}

// env mirrors the overridable fields.
type env struct {
	Lang       string
	SourceLang string `split_words:"true"`
	CacheSize  envInt `split_words:"true"`
}

// envInt is an integer override where an empty value means unset.
type envInt int64

// Decode implements envconfig.Decoder.
func (n *envInt) Decode(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return err
	}
	*n = envInt(v)
	return nil
}

// ---------------------------------------------------------------------------
// Loading
// ---------------------------------------------------------------------------

// Load reads FileName from rootDir and applies environment overrides. A
// missing file yields the defaults.
func Load(rootDir string) (*File, error) {
	path := filepath.Join(rootDir, FileName)
	f := &File{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, f); err != nil {
			return nil, fmt.Errorf("parsing %s: %w: %s", path, ErrInvalidConfig, err)
		}
		log.Debugf("loaded %s", path)
	case errors.Is(err, os.ErrNotExist):
		log.Debugf("%s not found, using defaults", path)
	default:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	f.Root = rootDir
	if err := f.applyEnv(); err != nil {
		return nil, err
	}
	if err := f.normalize(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func (f *File) applyEnv() error {
	dotenv := filepath.Join(f.Root, ".env")
	if _, err := os.Stat(dotenv); err == nil {
		if err := godotenv.Load(dotenv); err != nil {
			log.Warnf("unable to load %s: %v", dotenv, err)
		}
	}

	var e env
	if err := envconfig.Process(EnvPrefix, &e); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	if e.Lang != "" {
		f.Lang = e.Lang
	}
	if e.SourceLang != "" {
		f.SourceLang = e.SourceLang
	}
	if e.CacheSize != 0 {
		f.CacheSize = int64(e.CacheSize)
	}
	return nil
}

// normalize fills defaults and validates.
func (f *File) normalize() error {
	if f.SourceLang == "" {
		f.SourceLang = "en"
	}
	if f.CacheSize == 0 {
		f.CacheSize = DefaultCacheSize
	}
	if f.CacheSize < 0 {
		return fmt.Errorf("%w: cache_size must be positive, got %d", ErrInvalidConfig, f.CacheSize)
	}

	for i := range f.Catalogs {
		c := &f.Catalogs[i]
		if c.Path == "" {
			return fmt.Errorf("%w: catalog #%d has no path", ErrInvalidConfig, i+1)
		}
		if err := f.normalizeCatalog(c); err != nil {
			return err
		}
	}
	return nil
}

// AddCatalog appends a catalog given on the command line, resolving its
// path against the working directory.
func (f *File) AddCatalog(c Catalog) error {
	if c.Path == "" {
		return fmt.Errorf("%w: catalog has no path", ErrInvalidConfig)
	}
	abs, err := filepath.Abs(c.Path)
	if err != nil {
		return err
	}
	c.Path = abs
	if err := f.normalizeCatalog(&c); err != nil {
		return err
	}
	f.Catalogs = append(f.Catalogs, c)
	return nil
}

func (f *File) normalizeCatalog(c *Catalog) error {
	if !filepath.IsAbs(c.Path) {
		c.Path = filepath.Join(f.Root, c.Path)
	}
	if c.Type == "" {
		c.Type = catalog.DetectType(c.Path)
	}
	switch c.Type {
	case catalog.TypePo, catalog.TypeJSON, catalog.TypeYAML, catalog.TypeTOML:
	case catalog.TypeGettext:
		if c.Lang == "" {
			return fmt.Errorf("%w: gettext catalog %s needs a lang", ErrInvalidConfig, c.Path)
		}
	case "":
		return fmt.Errorf("%w: cannot infer type of catalog %s", ErrInvalidConfig, c.Path)
	default:
		return fmt.Errorf("%w: catalog %s has unknown type %q (valid: po, gettext, json, yaml, toml)",
			ErrInvalidConfig, c.Path, c.Type)
	}
	return nil
}

// Source converts the entry for catalog.Open.
func (c Catalog) Source() catalog.Source {
	return catalog.Source{Lang: c.Lang, Type: c.Type, Path: c.Path, Domain: c.Domain}
}
