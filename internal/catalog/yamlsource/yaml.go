// Package yamlsource reads catalogue rows from YAML files, demonstrating
// that the catalogue layer is agnostic to the persistence format (see
// SPEC_FULL.md §6): it produces the same raw-row shape as csvsource.
package yamlsource

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// document is the on-disk shape: a declared column order (used only to
// detect unknown columns the same way a CSV header would) plus a list of
// rows, each row a string-keyed map of cell values.
type document struct {
	Columns []string            `yaml:"columns"`
	Rows    []map[string]string `yaml:"rows"`
}

// ReadRows reads a YAML catalogue file and returns its declared column order
// plus its rows, in the same shape csvsource.ReadRows produces.
func ReadRows(path string) ([]string, []map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("yamlsource: read %s: %w", path, err)
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("yamlsource: parse %s: %w", path, err)
	}
	header := doc.Columns
	if len(header) == 0 {
		seen := make(map[string]bool)
		for _, row := range doc.Rows {
			for col := range row {
				if !seen[col] {
					seen[col] = true
					header = append(header, col)
				}
			}
		}
	}
	return header, doc.Rows, nil
}
