// Package catalog implements the tabular catalogue layer: typed, validated
// tables with declared key columns, required columns, column defaults, and
// column types, following the contract described for xesthora's input
// catalogues.
package catalog

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying the catalogue validation taxonomy. Wrap one of
// these with fmt.Errorf("...: %w", ...) and inspect with errors.Is/errors.As.
var (
	ErrMissingRequired     = errors.New("catalog: missing required column")
	ErrBadType             = errors.New("catalog: invalid cell type")
	ErrDuplicateKey        = errors.New("catalog: duplicate key")
	ErrReferentialIntegrity = errors.New("catalog: referential integrity violation")
)

// ValidationError carries the offending catalogue name and key alongside one
// of the sentinel errors above, so a caller can report "which catalogue,
// which row" without string-parsing the message.
type ValidationError struct {
	Catalog string
	Key     string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: %v", e.Catalog, e.Err)
	}
	return fmt.Sprintf("%s[%s]: %v", e.Catalog, e.Key, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func newValidationError(catalog, key string, err error) error {
	return &ValidationError{Catalog: catalog, Key: key, Err: err}
}
