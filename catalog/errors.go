package catalog

import "errors"

var (
	ErrInvalidFile       = errors.New("catalog: invalid translation file")
	ErrUnsupportedFormat = errors.New("catalog: unsupported catalog format")
	ErrNoCatalog         = errors.New("catalog: no catalog for requested languages")
	ErrEmptyLanguage     = errors.New("catalog: language cannot be empty")
)
