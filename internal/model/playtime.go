package model

import (
	"go.uber.org/zap"

	"go.xesthora.dev/xesthora/internal/catalog"
)

// PlaytimeRow is one break-period slot: (calendar, day, time) with no
// non-key attributes.
type PlaytimeRow struct {
	Calendar Calendar
	Day      Day
	Time     Time
}

func PlaytimeKeyOf(r PlaytimeRow) PlaytimeKey {
	return PlaytimeKey{Calendar: r.Calendar, Day: r.Day, Time: r.Time}
}

// PlaytimeSchema declares the Playtime catalogue's columns for the
// persistence boundary.
func PlaytimeSchema() catalog.Schema {
	return catalog.Schema{
		Name: "playtime",
		Columns: []catalog.ColumnSpec{
			{Name: "calendar", Required: true, Type: catalog.ColumnString},
			{Name: "day", Required: true, Type: catalog.ColumnString},
			{Name: "time", Required: true, Type: catalog.ColumnString},
		},
	}
}

func DecodePlaytimeRow(row map[string]string) (PlaytimeRow, error) {
	return PlaytimeRow{
		Calendar: Calendar(row["calendar"]),
		Day:      Day(row["day"]),
		Time:     Time(row["time"]),
	}, nil
}

// NewPlaytimeTable builds a catalogue from already-decoded rows, applying
// the standard construction contract (dedup keeping last, sort by key).
func NewPlaytimeTable(rows []PlaytimeRow, log *zap.Logger) *catalog.Table[PlaytimeKey, PlaytimeRow] {
	return catalog.New("playtime", rows, PlaytimeKeyOf, LessPlaytimeKey, catalog.DefaultOptions(), log)
}
