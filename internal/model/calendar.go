package model

import (
	"go.uber.org/zap"

	"go.xesthora.dev/xesthora/internal/catalog"
)

// CalendarCellRow is one cell of a decoded output calendar: (day, time) ->
// task (the human-readable label produced by the decoder; "" if blank).
type CalendarCellRow struct {
	Day  Day
	Time Time
	Task string
}

func CalendarCellKeyOf(r CalendarCellRow) CalendarOutputKey {
	return CalendarOutputKey{Day: r.Day, Time: r.Time}
}

func CalendarOutputSchema() catalog.Schema {
	return catalog.Schema{
		Name: "calendar",
		Columns: []catalog.ColumnSpec{
			{Name: "day", Required: true, Type: catalog.ColumnString},
			{Name: "time", Required: true, Type: catalog.ColumnString},
			{Name: "task", Required: false, Default: "", Type: catalog.ColumnString},
		},
	}
}

// OutputCalendar is a named day×time grid produced by the decoder: either a
// class's timetable or a teacher's personal timetable (see §4.6 and §6).
type OutputCalendar struct {
	Name  string
	Days  []Day
	Times []Time
	Cells *catalog.Table[CalendarOutputKey, CalendarCellRow]
}

// NewOutputCalendar builds a calendar with every (day,time) slot pre-seeded
// to an empty cell, in the declared days×times order.
func NewOutputCalendar(name string, days []Day, times []Time, log *zap.Logger) *OutputCalendar {
	rows := make([]CalendarCellRow, 0, len(days)*len(times))
	for _, d := range days {
		for _, t := range times {
			rows = append(rows, CalendarCellRow{Day: d, Time: t, Task: ""})
		}
	}
	return &OutputCalendar{
		Name:  name,
		Days:  days,
		Times: times,
		Cells: catalog.New("calendar:"+name, rows, CalendarCellKeyOf, LessCalendarOutputKey, catalog.DefaultOptions(), log),
	}
}

// Set overwrites the cell at (day, time) with label.
func (c *OutputCalendar) Set(day Day, time Time, label string) {
	c.Cells.Add(CalendarCellRow{Day: day, Time: time, Task: label})
}

// Get returns the label at (day, time), or "" if unset.
func (c *OutputCalendar) Get(day Day, time Time) string {
	row, ok := c.Cells.Lookup(CalendarOutputKey{Day: day, Time: time})
	if !ok {
		return ""
	}
	return row.Task
}

// Rows returns every cell in catalogue key order: by day, then time, each
// compared as a string. This equals the declared days×times order only
// when the declared days and times already sort lexicographically; callers
// needing the declared positional order should use Days/Times with Get.
func (c *OutputCalendar) Rows() []CalendarCellRow {
	return c.Cells.Rows()
}
