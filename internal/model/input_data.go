package model

import (
	"fmt"
	"sort"

	"go.xesthora.dev/xesthora/internal/catalog"
)

// InputData is the frozen bundle of §4.2: the four catalogues, the ordered
// classes/days/times and the playtime label, plus the derived universes of
// teachers, calendars and tasks. Once built
// it is never mutated — the model builder only reads it.
type InputData struct {
	Classes []Calendar
	Days    []Day
	Times   []Time

	PlaytimeName string
	Playtime     *catalog.Table[PlaytimeKey, PlaytimeRow]

	TeacherCalendarTasks *catalog.Table[TeacherCalendarTaskKey, TeacherCalendarTasksRow]
	CalendarTasks        *catalog.Table[CalendarTaskKey, CalendarTasksRow]
	FixedAssignments     *catalog.Table[FixedAssignmentKey, FixedAssignmentRow]
}

// NewInputData validates the §3 cross-catalogue invariants and, if they
// hold, returns the frozen aggregate.
func NewInputData(
	classes []Calendar,
	days []Day,
	times []Time,
	playtimeName string,
	playtime *catalog.Table[PlaytimeKey, PlaytimeRow],
	tct *catalog.Table[TeacherCalendarTaskKey, TeacherCalendarTasksRow],
	ct *catalog.Table[CalendarTaskKey, CalendarTasksRow],
	fixed *catalog.Table[FixedAssignmentKey, FixedAssignmentRow],
) (*InputData, error) {
	if playtimeName == "" {
		playtimeName = DefaultPlaytimeName
	}
	d := &InputData{
		Classes:              classes,
		Days:                 days,
		Times:                times,
		PlaytimeName:         playtimeName,
		Playtime:             playtime,
		TeacherCalendarTasks: tct,
		CalendarTasks:        ct,
		FixedAssignments:     fixed,
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *InputData) validate() error {
	dayOK := toSet(d.Days)
	timeOK := toSet(d.Times)

	for _, k := range d.TeacherCalendarTasks.Keys() {
		if _, ok := d.CalendarTasks.Lookup(CalendarTaskKey{Calendar: k.Calendar, Task: k.Task}); !ok {
			return fmt.Errorf("%w: teacher_calendar_tasks (%s,%s,%s) has no calendar_tasks entry for (%s,%s)",
				catalog.ErrReferentialIntegrity, k.Teacher, k.Calendar, k.Task, k.Calendar, k.Task)
		}
	}
	for _, k := range d.FixedAssignments.Keys() {
		if _, ok := d.CalendarTasks.Lookup(CalendarTaskKey{Calendar: k.Calendar, Task: k.Task}); !ok {
			return fmt.Errorf("%w: fixed assignment (%s,%s,%s,%s,%s) has no calendar_tasks entry for (%s,%s)",
				catalog.ErrReferentialIntegrity, k.Teacher, k.Calendar, k.Task, k.Day, k.Time, k.Calendar, k.Task)
		}
		if !dayOK[k.Day] || !timeOK[k.Time] {
			return fmt.Errorf("%w: fixed assignment (%s,%s,%s,%s,%s) references unknown day/time",
				catalog.ErrReferentialIntegrity, k.Teacher, k.Calendar, k.Task, k.Day, k.Time)
		}
	}
	for _, k := range d.Playtime.Keys() {
		if !dayOK[k.Day] || !timeOK[k.Time] {
			return fmt.Errorf("%w: playtime (%s,%s,%s) references unknown day/time",
				catalog.ErrReferentialIntegrity, k.Calendar, k.Day, k.Time)
		}
	}
	return nil
}

func toSet[T comparable](xs []T) map[T]bool {
	out := make(map[T]bool, len(xs))
	for _, x := range xs {
		out[x] = true
	}
	return out
}

// Teachers is the derived universe: distinct teachers in
// TeacherCalendarTasks, sorted ascending.
func (d *InputData) Teachers() []Teacher {
	seen := make(map[Teacher]bool)
	for _, k := range d.TeacherCalendarTasks.Keys() {
		seen[k.Teacher] = true
	}
	out := make([]Teacher, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Calendars is the derived universe: distinct calendars in CalendarTasks,
// sorted ascending. A calendar is either a class (member of Classes) or a
// teacher's personal calendar (string equal to a teacher name) — the
// distinction is by set membership, not by any catalogue column.
func (d *InputData) Calendars() []Calendar {
	seen := make(map[Calendar]bool)
	for _, k := range d.CalendarTasks.Keys() {
		seen[k.Calendar] = true
	}
	out := make([]Calendar, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Tasks is the derived universe: distinct tasks in CalendarTasks ∪
// {playtime.name}, sorted ascending.
func (d *InputData) Tasks() []Task {
	seen := map[Task]bool{Task(d.PlaytimeName): true}
	for _, k := range d.CalendarTasks.Keys() {
		seen[k.Task] = true
	}
	out := make([]Task, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsClass reports whether calendar c is one of the declared classes, as
// opposed to a teacher's personal calendar.
func (d *InputData) IsClass(c Calendar) bool {
	for _, cl := range d.Classes {
		if cl == c {
			return true
		}
	}
	return false
}
