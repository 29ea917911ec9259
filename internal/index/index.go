// Package index materializes the two cross-product universes A and B used
// throughout the model builder (§4.3). Elements are ordered deterministically
// by lexicographic order of their input keys followed by the positional
// order of days and times; this determinism is part of the contract that
// tests and decoding depend on.
//
// Per Design Note 9, A and B are the hot data structures: besides the sorted
// slices themselves, Build precomputes the groupings each constraint family
// needs so constraint emission never re-scans A or B.
package index

import "go.xesthora.dev/xesthora/internal/model"

// AKey is one element of A: a teacher performing a task for a calendar at a
// given day and time.
type AKey struct {
	Teacher  model.Teacher
	Calendar model.Calendar
	Task     model.Task
	Day      model.Day
	Time     model.Time
}

// BKey is one element of B: a calendar having a task scheduled at a given
// day and time.
type BKey struct {
	Calendar model.Calendar
	Task     model.Task
	Day      model.Day
	Time     model.Time
}

type teacherSlot struct {
	Teacher model.Teacher
	Day     model.Day
	Time    model.Time
}

type calendarSlot struct {
	Calendar model.Calendar
	Day      model.Day
	Time     model.Time
}

type calendarTaskSlot struct {
	Calendar model.Calendar
	Task     model.Task
	Day      model.Day
	Time     model.Time
}

type calendarTask struct {
	Calendar model.Calendar
	Task     model.Task
}

type calendarTaskDay struct {
	Calendar model.Calendar
	Task     model.Task
	Day      model.Day
}

type teacherTask struct {
	Teacher model.Teacher
	Task    model.Task
}

// Indexes holds A and B as sorted slices with a parallel key→position
// lookup plus the groupings each constraint family addresses by, so the
// model builder can emit every constraint in O(1) per group member.
type Indexes struct {
	A    []AKey
	APos map[AKey]int

	B    []BKey
	BPos map[BKey]int

	byTeacherSlot      map[teacherSlot][]AKey
	byCalendarSlot     map[calendarSlot][]BKey
	byCalendarTaskSlot map[calendarTaskSlot][]AKey
	byCalendarTask     map[calendarTask][]BKey
	byCalendarTaskDay  map[calendarTaskDay][]BKey
	byTeacherTask      map[teacherTask][]AKey
	byTeacher          map[model.Teacher][]AKey
}

// Build constructs A and B from the input aggregate's declared
// eligibilities/demands crossed with days and times, in the deterministic
// order described above, along with the groupings constraint emission uses.
func Build(data *model.InputData) *Indexes {
	idx := &Indexes{
		APos:               make(map[AKey]int),
		BPos:               make(map[BKey]int),
		byTeacherSlot:      make(map[teacherSlot][]AKey),
		byCalendarTaskSlot: make(map[calendarTaskSlot][]AKey),
		byTeacherTask:      make(map[teacherTask][]AKey),
		byTeacher:          make(map[model.Teacher][]AKey),
		byCalendarSlot:     make(map[calendarSlot][]BKey),
		byCalendarTask:     make(map[calendarTask][]BKey),
		byCalendarTaskDay:  make(map[calendarTaskDay][]BKey),
	}

	for _, k := range data.TeacherCalendarTasks.Keys() {
		for _, d := range data.Days {
			for _, h := range data.Times {
				a := AKey{Teacher: k.Teacher, Calendar: k.Calendar, Task: k.Task, Day: d, Time: h}
				idx.APos[a] = len(idx.A)
				idx.A = append(idx.A, a)

				ts := teacherSlot{Teacher: a.Teacher, Day: a.Day, Time: a.Time}
				idx.byTeacherSlot[ts] = append(idx.byTeacherSlot[ts], a)

				cts := calendarTaskSlot{Calendar: a.Calendar, Task: a.Task, Day: a.Day, Time: a.Time}
				idx.byCalendarTaskSlot[cts] = append(idx.byCalendarTaskSlot[cts], a)

				tt := teacherTask{Teacher: a.Teacher, Task: a.Task}
				idx.byTeacherTask[tt] = append(idx.byTeacherTask[tt], a)

				idx.byTeacher[a.Teacher] = append(idx.byTeacher[a.Teacher], a)
			}
		}
	}

	for _, k := range data.CalendarTasks.Keys() {
		for _, d := range data.Days {
			for _, h := range data.Times {
				b := BKey{Calendar: k.Calendar, Task: k.Task, Day: d, Time: h}
				idx.BPos[b] = len(idx.B)
				idx.B = append(idx.B, b)

				cs := calendarSlot{Calendar: b.Calendar, Day: b.Day, Time: b.Time}
				idx.byCalendarSlot[cs] = append(idx.byCalendarSlot[cs], b)

				ct := calendarTask{Calendar: b.Calendar, Task: b.Task}
				idx.byCalendarTask[ct] = append(idx.byCalendarTask[ct], b)

				ctd := calendarTaskDay{Calendar: b.Calendar, Task: b.Task, Day: b.Day}
				idx.byCalendarTaskDay[ctd] = append(idx.byCalendarTaskDay[ctd], b)
			}
		}
	}

	return idx
}

// ForTeacherSlot returns every A element sharing (teacher, day, time), used
// by constraint C1.
func (idx *Indexes) ForTeacherSlot(p model.Teacher, d model.Day, h model.Time) []AKey {
	return idx.byTeacherSlot[teacherSlot{Teacher: p, Day: d, Time: h}]
}

// ForCalendarSlot returns every B element sharing (calendar, day, time),
// used by constraint C2.
func (idx *Indexes) ForCalendarSlot(c model.Calendar, d model.Day, h model.Time) []BKey {
	return idx.byCalendarSlot[calendarSlot{Calendar: c, Day: d, Time: h}]
}

// ForCalendarTaskSlot returns every A element sharing (calendar, task, day,
// time), used by constraint C3.
func (idx *Indexes) ForCalendarTaskSlot(c model.Calendar, t model.Task, d model.Day, h model.Time) []AKey {
	return idx.byCalendarTaskSlot[calendarTaskSlot{Calendar: c, Task: t, Day: d, Time: h}]
}

// ForCalendarTask returns every B element sharing (calendar, task), used by
// constraints C4/C5.
func (idx *Indexes) ForCalendarTask(c model.Calendar, t model.Task) []BKey {
	return idx.byCalendarTask[calendarTask{Calendar: c, Task: t}]
}

// ForCalendarTaskDay returns every B element sharing (calendar, task, day),
// used by constraint C6.
func (idx *Indexes) ForCalendarTaskDay(c model.Calendar, t model.Task, d model.Day) []BKey {
	return idx.byCalendarTaskDay[calendarTaskDay{Calendar: c, Task: t, Day: d}]
}

// ForTeacherTask returns every A element sharing (teacher, task), used by
// constraint C7 (the guard-hour cap).
func (idx *Indexes) ForTeacherTask(p model.Teacher, t model.Task) []AKey {
	return idx.byTeacherTask[teacherTask{Teacher: p, Task: t}]
}

// ForTeacher returns every A element for teacher p, in A's declared order;
// used by the decoder to build one teacher's calendar.
func (idx *Indexes) ForTeacher(p model.Teacher) []AKey {
	return idx.byTeacher[p]
}
