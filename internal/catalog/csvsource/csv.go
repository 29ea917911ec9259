// Package csvsource reads catalogue rows from CSV files. It is a boundary
// collaborator only: the engine itself does not mandate a specific file
// format (see SPEC_FULL.md §6), CSV is simply the default binding.
package csvsource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// ReadRows reads a CSV file and returns its header plus one map per data
// row, keyed by header column name.
func ReadRows(path string) ([]string, []map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("csvsource: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("csvsource: read header of %s: %w", path, err)
	}

	var rows []map[string]string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("csvsource: read row of %s: %w", path, err)
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}
