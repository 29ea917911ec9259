package model

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"go.xesthora.dev/xesthora/internal/catalog"
)

// CalendarTasksRow declares one (calendar, task) demand: its weekly
// min/max occurrence envelope, its optional daily cap, and how many
// teachers it needs staffed simultaneously.
type CalendarTasksRow struct {
	Calendar            Calendar
	Task                Task
	MinTimePeriods      int
	MaxTimePeriods      float64
	MaxTimePeriodPerDay float64
	NumTeachers         int
}

func CalendarTaskKeyOf(r CalendarTasksRow) CalendarTaskKey {
	return CalendarTaskKey{Calendar: r.Calendar, Task: r.Task}
}

func CalendarTasksSchema() catalog.Schema {
	return catalog.Schema{
		Name: "calendar_tasks",
		Columns: []catalog.ColumnSpec{
			{Name: "calendar", Required: true, Type: catalog.ColumnString},
			{Name: "task", Required: true, Type: catalog.ColumnString},
			{Name: "min_time_periods", Required: false, Default: "0", Type: catalog.ColumnInt},
			{Name: "max_time_periods", Required: false, Default: "+Inf", Type: catalog.ColumnFloat},
			{Name: "max_time_period_per_day", Required: false, Default: "+Inf", Type: catalog.ColumnFloat},
			{Name: "num_teachers", Required: false, Default: "1", Type: catalog.ColumnInt},
		},
	}
}

func DecodeCalendarTasksRow(row map[string]string) (CalendarTasksRow, error) {
	minT, err := strconv.Atoi(row["min_time_periods"])
	if err != nil {
		return CalendarTasksRow{}, fmt.Errorf("calendar_tasks: min_time_periods: %w", err)
	}
	maxT, err := strconv.ParseFloat(row["max_time_periods"], 64)
	if err != nil {
		return CalendarTasksRow{}, fmt.Errorf("calendar_tasks: max_time_periods: %w", err)
	}
	maxPerDay, err := strconv.ParseFloat(row["max_time_period_per_day"], 64)
	if err != nil {
		return CalendarTasksRow{}, fmt.Errorf("calendar_tasks: max_time_period_per_day: %w", err)
	}
	numTeachers, err := strconv.Atoi(row["num_teachers"])
	if err != nil {
		return CalendarTasksRow{}, fmt.Errorf("calendar_tasks: num_teachers: %w", err)
	}
	r := CalendarTasksRow{
		Calendar:            Calendar(row["calendar"]),
		Task:                Task(row["task"]),
		MinTimePeriods:      minT,
		MaxTimePeriods:      maxT,
		MaxTimePeriodPerDay: maxPerDay,
		NumTeachers:         numTeachers,
	}
	if err := r.Validate(); err != nil {
		return CalendarTasksRow{}, err
	}
	return r, nil
}

// Validate enforces §3's numeric invariants for a single row:
// 0 ≤ min ≤ max, and max_time_period_per_day ≤ max_time_periods.
func (r CalendarTasksRow) Validate() error {
	if r.MinTimePeriods < 0 {
		return fmt.Errorf("%s/%s: min_time_periods must be >= 0", r.Calendar, r.Task)
	}
	if float64(r.MinTimePeriods) > r.MaxTimePeriods {
		return fmt.Errorf("%s/%s: min_time_periods exceeds max_time_periods", r.Calendar, r.Task)
	}
	if r.MaxTimePeriodPerDay > r.MaxTimePeriods {
		return fmt.Errorf("%s/%s: max_time_period_per_day exceeds max_time_periods", r.Calendar, r.Task)
	}
	if r.NumTeachers < 0 {
		return fmt.Errorf("%s/%s: num_teachers must be >= 0", r.Calendar, r.Task)
	}
	return nil
}

func NewCalendarTasksTable(rows []CalendarTasksRow, log *zap.Logger) *catalog.Table[CalendarTaskKey, CalendarTasksRow] {
	return catalog.New("calendar_tasks", rows, CalendarTaskKeyOf, LessCalendarTaskKey, catalog.DefaultOptions(), log)
}
