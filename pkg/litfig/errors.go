package litfig

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates an input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// LoadError represents a failure while loading or cleaning one of the
// review tables.
type LoadError struct {
	Table string // "data items", "reported results", "workbook"
	Path  string
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s from %q: %v", e.Table, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(table, path string, err error) *LoadError {
	return &LoadError{
		Table: table,
		Path:  path,
		Err:   err,
	}
}
