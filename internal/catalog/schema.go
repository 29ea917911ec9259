package catalog

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"
)

// ColumnType is the declared scalar type of a catalogue column.
type ColumnType int

const (
	ColumnString ColumnType = iota
	ColumnInt
	ColumnFloat
)

// ColumnSpec declares one column of a catalogue: its name, whether it is
// required in every input row, its default (used to fill missing optional
// columns and null cells), and its scalar type.
type ColumnSpec struct {
	Name     string
	Required bool
	Default  string
	Type     ColumnType
}

// Schema is the declared, ordered column list for one catalogue, used only
// at the persistence boundary (loaders). Internally, once rows are decoded
// into a concrete Go struct, the schema is closed — see DESIGN.md's note on
// Design Note 9.
type Schema struct {
	Name    string
	Columns []ColumnSpec
}

// Validate rejects a header that is missing a required column and returns
// the list of columns present in header but not declared in the schema
// (callers should log these as warnings, not errors).
func (s Schema) Validate(header []string) (unknown []string, err error) {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}
	for _, c := range s.Columns {
		if c.Required && !present[c.Name] {
			return nil, newValidationError(s.Name, c.Name, ErrMissingRequired)
		}
	}
	declared := make(map[string]bool, len(s.Columns))
	for _, c := range s.Columns {
		declared[c.Name] = true
	}
	for _, h := range header {
		if !declared[h] {
			unknown = append(unknown, h)
		}
	}
	return unknown, nil
}

// Coerce fills missing optional columns and empty cells with their declared
// defaults, type-checks every declared cell, and returns the row ready for
// per-entity decoding. The returned map always has every schema column set.
func (s Schema) Coerce(row map[string]string, log *zap.Logger) (map[string]string, error) {
	out := make(map[string]string, len(s.Columns))
	for _, c := range s.Columns {
		v, ok := row[c.Name]
		if !ok || v == "" {
			if c.Required && (!ok || v == "") {
				// Required columns with an empty cell still get the
				// referential check elsewhere; here we only enforce type.
			}
			v = c.Default
		}
		if err := checkType(v, c.Type); err != nil {
			return nil, newValidationError(s.Name, c.Name, fmt.Errorf("%w: %q", ErrBadType, v))
		}
		out[c.Name] = v
	}
	if log != nil {
		for k := range row {
			if _, declared := out[k]; !declared {
				log.Warn("unknown column ignored", zap.String("catalog", s.Name), zap.String("column", k))
			}
		}
	}
	return out, nil
}

func checkType(v string, t ColumnType) error {
	if v == "" {
		return nil
	}
	switch t {
	case ColumnInt:
		_, err := strconv.Atoi(v)
		return err
	case ColumnFloat:
		_, err := strconv.ParseFloat(v, 64)
		return err
	default:
		return nil
	}
}
