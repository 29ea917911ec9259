package model

import (
	"go.uber.org/zap"

	"go.xesthora.dev/xesthora/internal/catalog"
)

// TeacherCalendarTasksRow states that Teacher is eligible to perform Task
// for Calendar. No non-key attributes.
type TeacherCalendarTasksRow struct {
	Teacher  Teacher
	Calendar Calendar
	Task     Task
}

func TeacherCalendarTaskKeyOf(r TeacherCalendarTasksRow) TeacherCalendarTaskKey {
	return TeacherCalendarTaskKey{Teacher: r.Teacher, Calendar: r.Calendar, Task: r.Task}
}

func TeacherCalendarTasksSchema() catalog.Schema {
	return catalog.Schema{
		Name: "teacher_calendar_tasks",
		Columns: []catalog.ColumnSpec{
			{Name: "teacher", Required: true, Type: catalog.ColumnString},
			{Name: "calendar", Required: true, Type: catalog.ColumnString},
			{Name: "task", Required: true, Type: catalog.ColumnString},
		},
	}
}

func DecodeTeacherCalendarTasksRow(row map[string]string) (TeacherCalendarTasksRow, error) {
	return TeacherCalendarTasksRow{
		Teacher:  Teacher(row["teacher"]),
		Calendar: Calendar(row["calendar"]),
		Task:     Task(row["task"]),
	}, nil
}

func NewTeacherCalendarTasksTable(rows []TeacherCalendarTasksRow, log *zap.Logger) *catalog.Table[TeacherCalendarTaskKey, TeacherCalendarTasksRow] {
	return catalog.New("teacher_calendar_tasks", rows, TeacherCalendarTaskKeyOf, LessTeacherCalendarTaskKey, catalog.DefaultOptions(), log)
}
