package render

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.xesthora.dev/xesthora/internal/model"
)

// JSONWriter writes each calendar as its own "<name>.json" file under dir,
// one object per cell in day×time order.
type JSONWriter struct{}

var _ Writer = JSONWriter{}

type jsonCell struct {
	Day  string `json:"day"`
	Time string `json:"time"`
	Task string `json:"task"`
}

func (JSONWriter) Write(dir string, calendars []*model.OutputCalendar) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("render: mkdir %s: %w", dir, err)
	}
	for _, cal := range calendars {
		cells := make([]jsonCell, 0, len(cal.Rows()))
		for _, d := range cal.Days {
			for _, t := range cal.Times {
				cells = append(cells, jsonCell{Day: string(d), Time: string(t), Task: cal.Get(d, t)})
			}
		}
		data, err := json.MarshalIndent(cells, "", "  ")
		if err != nil {
			return fmt.Errorf("render: marshal calendar %s: %w", cal.Name, err)
		}
		path := filepath.Join(dir, cal.Name+".json")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("render: write %s: %w", path, err)
		}
	}
	return nil
}
