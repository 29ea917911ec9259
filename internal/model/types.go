// Package model holds the entities of §3 DATA MODEL: the four input
// catalogues, the output Calendar, and the InputData aggregate that bundles
// them together with their derived universes.
package model

import "math"

// Teacher, Calendar, Task, Day and Time are the scalar identifiers threaded
// through every catalogue. Calendar is either a class name (a member of
// InputData.Classes) or a teacher's own name used as their personal
// calendar — the distinction is positional (set membership), not typed.
type (
	Teacher  string
	Calendar string
	Task     string
	Day      string
	Time     string
)

// Unbounded represents the "+∞" default for max_time_periods and
// max_time_period_per_day.
var Unbounded = math.Inf(1)

// DefaultPlaytimeName is the abstract default for playtime.name. The
// reference dataset overrides it to "recreo" (see testdata fixtures).
const DefaultPlaytimeName = "playtime"
