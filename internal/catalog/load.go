package catalog

import (
	"fmt"

	"go.uber.org/zap"
)

// RowSource is satisfied by csvsource.ReadRows and yamlsource.ReadRows: read
// a file into a header plus one raw string-map per row.
type RowSource func(path string) (header []string, rows []map[string]string, err error)

// DecodeFunc turns one coerced raw row into a concrete catalogue row.
type DecodeFunc[R any] func(row map[string]string) (R, error)

// Load reads path with source, validates/coerces it against schema, decodes
// every row with decode, and builds a Table with keyFn/less/DefaultOptions.
// This is the shared boundary every catalogue loader (playtime,
// teacher_calendar_tasks, calendar_tasks, fixed_assignments) goes through.
func Load[K comparable, R any](
	path string,
	source RowSource,
	schema Schema,
	decode DecodeFunc[R],
	keyFn KeyFunc[R, K],
	less LessFunc[K],
	log *zap.Logger,
) (*Table[K, R], error) {
	header, rawRows, err := source(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: load %s: %w", path, err)
	}
	unknown, err := schema.Validate(header)
	if err != nil {
		return nil, fmt.Errorf("catalog: load %s: %w", path, err)
	}
	if log != nil {
		for _, u := range unknown {
			log.Warn("unknown column ignored", zap.String("catalog", schema.Name), zap.String("column", u))
		}
	}

	rows := make([]R, 0, len(rawRows))
	for i, raw := range rawRows {
		coerced, err := schema.Coerce(raw, log)
		if err != nil {
			return nil, fmt.Errorf("catalog: load %s: row %d: %w", path, i, err)
		}
		row, err := decode(coerced)
		if err != nil {
			return nil, fmt.Errorf("catalog: load %s: row %d: %w", path, i, err)
		}
		rows = append(rows, row)
	}

	return New(schema.Name, rows, keyFn, less, DefaultOptions(), log), nil
}
