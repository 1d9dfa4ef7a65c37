package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type unmarshalFunc func(data []byte, v any) error

// LoadJSON parses a JSON object of body → translation pairs. Nested objects
// are flattened into dotted keys.
func LoadJSON(lang string, data []byte) (*Catalog, error) {
	return load(lang, data, json.Unmarshal)
}

// LoadYAML parses a YAML mapping of body → translation pairs. Nested
// mappings are flattened into dotted keys.
func LoadYAML(lang string, data []byte) (*Catalog, error) {
	return load(lang, data, yaml.Unmarshal)
}

func load(lang string, data []byte, unmarshal unmarshalFunc) (*Catalog, error) {
	if lang == "" {
		return nil, ErrEmptyLanguage
	}

	var raw map[string]any
	if err := unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, err)
	}
	return &Catalog{lang: lang, messages: flatten(raw, "")}, nil
}

func flatten(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string)
	for key, value := range data {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[full] = v
		case map[string]any:
			for k, s := range flatten(v, full) {
				result[k] = s
			}
		case nil:
			result[full] = ""
		default:
			result[full] = fmt.Sprintf("%v", v)
		}
	}
	return result
}

// unmarshalerFor picks a decoder by file extension.
func unmarshalerFor(name string) (unmarshalFunc, bool) {
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		return json.Unmarshal, true
	case ".yaml", ".yml":
		return yaml.Unmarshal, true
	}
	return nil, false
}

// LoadFile reads a JSON or YAML catalog from disk, choosing the decoder by
// extension.
func LoadFile(lang, filePath string) (*Catalog, error) {
	unmarshal, ok := unmarshalerFor(filePath)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filePath, err)
	}
	c, err := load(lang, data, unmarshal)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filePath, err)
	}
	log.Debugf("loaded %d messages for %s from %s", c.Len(), lang, filePath)
	return c, nil
}

// LoadDir loads every JSON and YAML file under fsys. Files must live in a
// directory named after their language:
//
//	en/common.json
//	ru/common.yaml
//	ru/errors.yml
//
// Files of the same language are merged in walk order.
func LoadDir(fsys fs.FS) (map[string]*Catalog, error) {
	catalogs := make(map[string]*Catalog)

	err := fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		unmarshal, ok := unmarshalerFor(filePath)
		if !ok {
			return nil
		}

		dir := path.Dir(filePath)
		if dir == "." || dir == "" {
			return fmt.Errorf("%w: file %q must be inside a language directory", ErrInvalidFile, filePath)
		}
		lang := path.Base(dir)

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}
		c, err := load(lang, data, unmarshal)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", filePath, err)
		}

		if existing, ok := catalogs[lang]; ok {
			c = existing.merge(c)
		}
		catalogs[lang] = c
		log.Debugf("loaded %s (%d messages for %s)", filePath, c.Len(), lang)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return catalogs, nil
}

// langFromPath guesses a language from a file name such as "ru.json" or
// "locale.pt-BR.toml".
func langFromPath(filePath string) string {
	base := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		base = base[i+1:]
	}
	return base
}
