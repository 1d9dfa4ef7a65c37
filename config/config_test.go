package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/minios-linux/i18nstr/catalog"
	"github.com/minios-linux/i18nstr/i18nstr"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"I18NSTR_LANG", "I18NSTR_SOURCE_LANG", "I18NSTR_CACHE_SIZE"} {
		t.Setenv(name, "")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	f, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.SourceLang != "en" || f.CacheSize != DefaultCacheSize || f.Lang != "" || len(f.Catalogs) != 0 {
		t.Fatalf("defaults = %+v", f)
	}
}

func TestLoadResolvesCatalogs(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FileName), `
source_lang: en
lang: ru
fallback: [uk]
cache_size: 50
catalogs:
  - path: po/ru.po
  - path: i18n/uk.yaml
  - lang: de
    path: locales
    domain: app
  - path: strings.json
    type: json
    lang: fr
`)
	if err := os.MkdirAll(filepath.Join(dir, "locales"), 0755); err != nil {
		t.Fatal(err)
	}

	f, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.Lang != "ru" || f.CacheSize != 50 || !reflect.DeepEqual(f.Fallback, []string{"uk"}) {
		t.Fatalf("loaded = %+v", f)
	}

	want := []Catalog{
		{Type: catalog.TypePo, Path: filepath.Join(dir, "po/ru.po")},
		{Type: catalog.TypeYAML, Path: filepath.Join(dir, "i18n/uk.yaml")},
		{Lang: "de", Type: catalog.TypeGettext, Path: filepath.Join(dir, "locales"), Domain: "app"},
		{Lang: "fr", Type: catalog.TypeJSON, Path: filepath.Join(dir, "strings.json")},
	}
	if !reflect.DeepEqual(f.Catalogs, want) {
		t.Fatalf("Catalogs = %+v, want %+v", f.Catalogs, want)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FileName), "lang: ru\ncache_size: 10\n")
	writeFile(t, filepath.Join(dir, ".env"), "I18NSTR_SOURCE_LANG=de\n")
	t.Setenv("I18NSTR_LANG", "uk")
	t.Setenv("I18NSTR_CACHE_SIZE", "20")

	f, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.Lang != "uk" {
		t.Fatalf("Lang = %q, want uk", f.Lang)
	}
	if f.SourceLang != "de" {
		t.Fatalf("SourceLang = %q, want de from .env", f.SourceLang)
	}
	if f.CacheSize != 20 {
		t.Fatalf("CacheSize = %d, want 20", f.CacheSize)
	}
}

func TestLoadValidation(t *testing.T) {
	cases := map[string]string{
		"bad yaml":        "catalogs: [",
		"missing path":    "catalogs:\n  - lang: ru\n",
		"unknown type":    "catalogs:\n  - path: ru.po\n    type: xliff\n",
		"unknown ext":     "catalogs:\n  - path: ru.ini\n",
		"gettext no lang": "catalogs:\n  - path: locales\n    type: gettext\n",
		"negative cache":  "cache_size: -1\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			dir := t.TempDir()
			writeFile(t, filepath.Join(dir, FileName), content)

			_, err := Load(dir)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Load() error = %v, want ErrInvalidConfig", err)
			}
		})
	}

	t.Run("bad env", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("I18NSTR_CACHE_SIZE", "many")
		if _, err := Load(t.TempDir()); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("Load() error = %v, want ErrInvalidConfig", err)
		}
	})
}

func TestLoadIgnoresEmptyEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FileName), "lang: ru\nsource_lang: de\ncache_size: 10\n")
	for _, name := range []string{"I18NSTR_LANG", "I18NSTR_SOURCE_LANG", "I18NSTR_CACHE_SIZE"} {
		t.Setenv(name, "")
	}

	f, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.Lang != "ru" || f.SourceLang != "de" || f.CacheSize != 10 {
		t.Fatalf("Load() = %+v, want values from %s", f, FileName)
	}

	t.Setenv("I18NSTR_CACHE_SIZE", "  ")
	if f, err = Load(t.TempDir()); err != nil {
		t.Fatalf("Load with blank cache size: %v", err)
	}
	if f.CacheSize != DefaultCacheSize {
		t.Fatalf("CacheSize = %d, want %d", f.CacheSize, DefaultCacheSize)
	}
}

func TestTranslator(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ru.json"), `{"File not found: {0}": "Файл не найден: {0}"}`)
	writeFile(t, filepath.Join(dir, "uk.yaml"), "\"Saved {0}\": \"Збережено {0}\"\n")
	writeFile(t, filepath.Join(dir, FileName), "lang: ru\nfallback: [uk]\ncatalogs:\n  - path: ru.json\n  - path: uk.yaml\n")

	f, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	tr, err := f.Translator()
	if err != nil {
		t.Fatalf("Translator: %v", err)
	}
	t.Cleanup(tr.Close)

	if tr.Lang != "ru" {
		t.Fatalf("Lang = %q, want ru", tr.Lang)
	}
	out, err := i18nstr.Transform("t!('File not found: {0}',t!('Saved {0}','a'))", tr)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if want := "Файл не найден: Збережено a"; out != want {
		t.Fatalf("Transform() = %q, want %q", out, want)
	}

	explicit, err := f.Translator("uk_UA.UTF-8")
	if err != nil {
		t.Fatalf("Translator(uk): %v", err)
	}
	t.Cleanup(explicit.Close)
	if explicit.Lang != "uk" {
		t.Fatalf("Lang = %q, want uk", explicit.Lang)
	}

	none, err := f.Translator("ja")
	if err != nil {
		t.Fatalf("Translator(ja): %v", err)
	}
	if none.Lang != "ru" {
		t.Fatalf("Lang = %q, want ru from the file", none.Lang)
	}
}

func TestTranslatorWithoutCatalogs(t *testing.T) {
	clearEnv(t)
	f, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	tr, err := f.Translator("ru")
	if err != nil {
		t.Fatalf("Translator: %v", err)
	}
	if tr.Lang != "en" {
		t.Fatalf("Lang = %q, want source language", tr.Lang)
	}
	if got := tr.Resolve("Hello"); got != "Hello" {
		t.Fatalf("Resolve = %q, want passthrough", got)
	}
}

func TestAddCatalog(t *testing.T) {
	clearEnv(t)
	f, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := f.AddCatalog(Catalog{Path: "ru.po"}); err != nil {
		t.Fatalf("AddCatalog: %v", err)
	}
	if c := f.Catalogs[0]; !filepath.IsAbs(c.Path) || c.Type != catalog.TypePo {
		t.Fatalf("catalog = %+v", c)
	}
	if err := f.AddCatalog(Catalog{}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("AddCatalog(empty) error = %v", err)
	}
}
