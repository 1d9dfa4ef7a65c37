package extract

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	log "github.com/sirupsen/logrus"
)

// skipDirs are never descended into.
var skipDirs = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	"node_modules": true,
	"__pycache__":  true,
	".venv":        true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
}

// Options narrows which files Files scans.
type Options struct {
	// Extensions limits scanning to these extensions (".txt", ".go", ...).
	// Empty means every regular file that mentions "t!(".
	Extensions []string
}

func (o Options) wants(path string) bool {
	if len(o.Extensions) == 0 {
		return true
	}
	return slices.Contains(o.Extensions, strings.ToLower(filepath.Ext(path)))
}

// FindFiles expands paths into the sorted list of files to scan. Explicit
// file arguments are always kept; directories are walked.
func FindFiles(paths []string, opts Options) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				log.Debugf("skipping %s: %v", path, err)
				return nil
			}
			if d.IsDir() {
				if path != root && skipDirs[d.Name()] {
					return filepath.SkipDir
				}
				return nil
			}
			if d.Type().IsRegular() && opts.wants(path) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", root, err)
		}
	}

	slices.Sort(files)
	return files, nil
}

// Files scans every file found under paths.
func Files(paths []string, opts Options) (*Result, error) {
	files, err := FindFiles(paths, opts)
	if err != nil {
		return nil, err
	}

	r := NewResult()
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if !bytes.Contains(data, []byte(marker)) {
			continue
		}
		before := len(r.Messages)
		r.Scan(path, string(data))
		log.Debugf("%s: %d new messages", path, len(r.Messages)-before)
	}
	return r, nil
}

// Run extracts from paths and writes the template to potPath.
func Run(paths []string, potPath, project string, opts Options) (*Result, error) {
	r, err := Files(paths, opts)
	if err != nil {
		return nil, err
	}
	if err := r.POT(project).WriteFile(potPath); err != nil {
		return nil, fmt.Errorf("writing %s: %w", potPath, err)
	}
	return r, nil
}
