package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"go.xesthora.dev/xesthora/internal/model"
)

// XLSXWriter writes every calendar as one sheet of a single workbook,
// "calendars.xlsx": rows are times, columns are days, mirroring the
// day×time grid the decoder produces.
type XLSXWriter struct {
	// FileName overrides the workbook's file name. Defaults to
	// "calendars.xlsx".
	FileName string
}

var _ Writer = XLSXWriter{}

func (w XLSXWriter) Write(dir string, calendars []*model.OutputCalendar) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("render: mkdir %s: %w", dir, err)
	}

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	for i, cal := range calendars {
		sheet := sheetName(cal.Name)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return fmt.Errorf("render: rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("render: add sheet %s: %w", sheet, err)
		}

		for col, d := range cal.Days {
			cellRef, _ := excelize.CoordinatesToCellName(col+2, 1)
			_ = f.SetCellValue(sheet, cellRef, string(d))
		}
		for row, t := range cal.Times {
			cellRef, _ := excelize.CoordinatesToCellName(1, row+2)
			_ = f.SetCellValue(sheet, cellRef, string(t))
			for col, d := range cal.Days {
				dataRef, _ := excelize.CoordinatesToCellName(col+2, row+2)
				_ = f.SetCellValue(sheet, dataRef, cal.Get(d, t))
			}
		}
	}

	name := w.FileName
	if name == "" {
		name = "calendars.xlsx"
	}
	path := filepath.Join(dir, name)
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}

// sheetName truncates to Excel's 31-character sheet-name limit.
func sheetName(name string) string {
	if len(name) > 31 {
		return name[:31]
	}
	return name
}
