package model

import (
	"go.uber.org/zap"

	"go.xesthora.dev/xesthora/internal/catalog"
)

// FixedAssignmentRow pre-fixes x[teacher,calendar,task,day,time] = 1 in the
// model builder. No non-key attributes.
type FixedAssignmentRow struct {
	Teacher  Teacher
	Calendar Calendar
	Task     Task
	Day      Day
	Time     Time
}

func FixedAssignmentKeyOf(r FixedAssignmentRow) FixedAssignmentKey {
	return FixedAssignmentKey{
		Teacher: r.Teacher, Calendar: r.Calendar, Task: r.Task, Day: r.Day, Time: r.Time,
	}
}

func FixedAssignmentsSchema() catalog.Schema {
	return catalog.Schema{
		Name: "fixed_teacher_calendar_task_day_times",
		Columns: []catalog.ColumnSpec{
			{Name: "teacher", Required: true, Type: catalog.ColumnString},
			{Name: "calendar", Required: true, Type: catalog.ColumnString},
			{Name: "task", Required: true, Type: catalog.ColumnString},
			{Name: "day", Required: true, Type: catalog.ColumnString},
			{Name: "time", Required: true, Type: catalog.ColumnString},
		},
	}
}

func DecodeFixedAssignmentRow(row map[string]string) (FixedAssignmentRow, error) {
	return FixedAssignmentRow{
		Teacher:  Teacher(row["teacher"]),
		Calendar: Calendar(row["calendar"]),
		Task:     Task(row["task"]),
		Day:      Day(row["day"]),
		Time:     Time(row["time"]),
	}, nil
}

func NewFixedAssignmentsTable(rows []FixedAssignmentRow, log *zap.Logger) *catalog.Table[FixedAssignmentKey, FixedAssignmentRow] {
	return catalog.New("fixed_teacher_calendar_task_day_times", rows, FixedAssignmentKeyOf, LessFixedAssignmentKey, catalog.DefaultOptions(), log)
}
