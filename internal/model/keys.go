package model

// Composite key tuples for the four input catalogues. Each is a plain
// comparable struct so it can key both a catalog.Table and a Go map
// directly — the index builder (internal/index) relies on this.

type PlaytimeKey struct {
	Calendar Calendar
	Day      Day
	Time     Time
}

type TeacherCalendarTaskKey struct {
	Teacher  Teacher
	Calendar Calendar
	Task     Task
}

type CalendarTaskKey struct {
	Calendar Calendar
	Task     Task
}

type FixedAssignmentKey struct {
	Teacher  Teacher
	Calendar Calendar
	Task     Task
	Day      Day
	Time     Time
}

type CalendarOutputKey struct {
	Day  Day
	Time Time
}

func lessString(a, b string) bool { return a < b }

func LessPlaytimeKey(a, b PlaytimeKey) bool {
	if a.Calendar != b.Calendar {
		return lessString(string(a.Calendar), string(b.Calendar))
	}
	if a.Day != b.Day {
		return lessString(string(a.Day), string(b.Day))
	}
	return lessString(string(a.Time), string(b.Time))
}

func LessTeacherCalendarTaskKey(a, b TeacherCalendarTaskKey) bool {
	if a.Teacher != b.Teacher {
		return lessString(string(a.Teacher), string(b.Teacher))
	}
	if a.Calendar != b.Calendar {
		return lessString(string(a.Calendar), string(b.Calendar))
	}
	return lessString(string(a.Task), string(b.Task))
}

func LessCalendarTaskKey(a, b CalendarTaskKey) bool {
	if a.Calendar != b.Calendar {
		return lessString(string(a.Calendar), string(b.Calendar))
	}
	return lessString(string(a.Task), string(b.Task))
}

func LessFixedAssignmentKey(a, b FixedAssignmentKey) bool {
	if a.Teacher != b.Teacher {
		return lessString(string(a.Teacher), string(b.Teacher))
	}
	if a.Calendar != b.Calendar {
		return lessString(string(a.Calendar), string(b.Calendar))
	}
	if a.Task != b.Task {
		return lessString(string(a.Task), string(b.Task))
	}
	if a.Day != b.Day {
		return lessString(string(a.Day), string(b.Day))
	}
	return lessString(string(a.Time), string(b.Time))
}

func LessCalendarOutputKey(a, b CalendarOutputKey) bool {
	if a.Day != b.Day {
		return lessString(string(a.Day), string(b.Day))
	}
	return lessString(string(a.Time), string(b.Time))
}
