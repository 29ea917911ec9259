package solve_test

// Reproductions of the engine's worked seed scenarios, exercised against a
// fabricated primal solution rather than a real cbc run.

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.xesthora.dev/xesthora/internal/engine"
	"go.xesthora.dev/xesthora/internal/index"
	"go.xesthora.dev/xesthora/internal/model"
	"go.xesthora.dev/xesthora/internal/solve"
)

func newData(t *testing.T, classes []model.Calendar, days []model.Day, times []model.Time,
	tct []model.TeacherCalendarTasksRow, ct []model.CalendarTasksRow) *model.InputData {
	t.Helper()
	data, err := model.NewInputData(classes, days, times, "recreo",
		model.NewPlaytimeTable(nil, nil),
		model.NewTeacherCalendarTasksTable(tct, nil),
		model.NewCalendarTasksTable(ct, nil),
		model.NewFixedAssignmentsTable(nil, nil),
	)
	require.NoError(t, err)
	return data
}

// S1 — minimal feasible: a fully staffed 2-slot task leaves every slack at
// zero.
func TestScenarioS1_MinimalFeasible(t *testing.T) {
	data := newData(t,
		[]model.Calendar{"X"}, []model.Day{"Mo"}, []model.Time{"t1", "t2"},
		[]model.TeacherCalendarTasksRow{{Teacher: "T1", Calendar: "X", Task: "a"}},
		[]model.CalendarTasksRow{{Calendar: "X", Task: "a", MinTimePeriods: 2, MaxTimePeriods: 2, MaxTimePeriodPerDay: model.Unbounded, NumTeachers: 1}},
	)
	idx := index.Build(data)
	m, err := engine.New(data, idx, nil).Build()
	require.NoError(t, err)

	values := map[string]float64{
		engine.YName(index.BKey{Calendar: "X", Task: "a", Day: "Mo", Time: "t1"}): 1,
		engine.YName(index.BKey{Calendar: "X", Task: "a", Day: "Mo", Time: "t2"}): 1,
		engine.XName(index.AKey{Teacher: "T1", Calendar: "X", Task: "a", Day: "Mo", Time: "t1"}): 1,
		engine.XName(index.AKey{Teacher: "T1", Calendar: "X", Task: "a", Day: "Mo", Time: "t2"}): 1,
	}
	result := solve.Result{Status: solve.StatusOptimal, Values: values}

	found := solve.EnumerateInfeasibilities(m, result)
	require.Empty(t, found)
	require.Equal(t, 0.0, result.Value(engine.MGardaName))
}

// S2 — infeasible weekly minimum: only 2 slots exist for a task declared
// min=3,max=3, so sn2 must absorb the shortfall.
func TestScenarioS2_InfeasibleWeeklyMinimum(t *testing.T) {
	data := newData(t,
		[]model.Calendar{"X"}, []model.Day{"Mo"}, []model.Time{"t1", "t2"},
		[]model.TeacherCalendarTasksRow{{Teacher: "T1", Calendar: "X", Task: "a"}},
		[]model.CalendarTasksRow{{Calendar: "X", Task: "a", MinTimePeriods: 3, MaxTimePeriods: 3, MaxTimePeriodPerDay: model.Unbounded, NumTeachers: 1}},
	)
	idx := index.Build(data)
	m, err := engine.New(data, idx, nil).Build()
	require.NoError(t, err)

	values := map[string]float64{
		engine.YName(index.BKey{Calendar: "X", Task: "a", Day: "Mo", Time: "t1"}): 1,
		engine.YName(index.BKey{Calendar: "X", Task: "a", Day: "Mo", Time: "t2"}): 1,
		engine.XName(index.AKey{Teacher: "T1", Calendar: "X", Task: "a", Day: "Mo", Time: "t1"}): 1,
		engine.XName(index.AKey{Teacher: "T1", Calendar: "X", Task: "a", Day: "Mo", Time: "t2"}): 1,
		engine.Sn2Name("X", "a"): 1,
	}
	result := solve.Result{Status: solve.StatusOptimal, Objective: 1000, Values: values}

	found := solve.EnumerateInfeasibilities(m, result)
	require.Len(t, found, 1)
	require.Equal(t, "C5", found[0].Constraint)
	require.Equal(t, -1.0, found[0].Slack)
}

// S3 — two-teacher task: C3's staffing link ties y to the sum of both
// teachers' x.
func TestScenarioS3_TwoTeacherTask(t *testing.T) {
	data := newData(t,
		[]model.Calendar{"X"}, []model.Day{"Mo"}, []model.Time{"t1"},
		[]model.TeacherCalendarTasksRow{
			{Teacher: "T1", Calendar: "X", Task: "r"},
			{Teacher: "T2", Calendar: "X", Task: "r"},
		},
		[]model.CalendarTasksRow{{Calendar: "X", Task: "r", MinTimePeriods: 1, MaxTimePeriods: 1, MaxTimePeriodPerDay: 1, NumTeachers: 2}},
	)
	idx := index.Build(data)
	m, err := engine.New(data, idx, nil).Build()
	require.NoError(t, err)

	var matched bool
	for _, c := range m.Constraints {
		if c.Name == "C3#X#r#Mo#t1" {
			matched = true
			require.Equal(t, -2.0, c.Terms[0].Coef)
		}
	}
	require.True(t, matched)
}

// S5 — guard balancing: two teachers both hold exactly their minimum two
// garda slots, M_garda equal to that shared maximum.
func TestScenarioS5_GuardBalancing(t *testing.T) {
	data := newData(t,
		nil, []model.Day{"Mo", "Tu"}, []model.Time{"t1", "t2"},
		[]model.TeacherCalendarTasksRow{
			{Teacher: "T1", Calendar: "T1", Task: "garda"},
			{Teacher: "T1", Calendar: "T1", Task: "libre"},
			{Teacher: "T2", Calendar: "T2", Task: "garda"},
			{Teacher: "T2", Calendar: "T2", Task: "libre"},
		},
		[]model.CalendarTasksRow{
			{Calendar: "T1", Task: "garda", MinTimePeriods: 2, MaxTimePeriods: model.Unbounded, MaxTimePeriodPerDay: model.Unbounded, NumTeachers: 1},
			{Calendar: "T1", Task: "libre", MinTimePeriods: 2, MaxTimePeriods: 2, MaxTimePeriodPerDay: model.Unbounded, NumTeachers: 1},
			{Calendar: "T2", Task: "garda", MinTimePeriods: 2, MaxTimePeriods: model.Unbounded, MaxTimePeriodPerDay: model.Unbounded, NumTeachers: 1},
			{Calendar: "T2", Task: "libre", MinTimePeriods: 2, MaxTimePeriods: 2, MaxTimePeriodPerDay: model.Unbounded, NumTeachers: 1},
		},
	)
	idx := index.Build(data)
	m, err := engine.New(data, idx, nil).Build()
	require.NoError(t, err)

	values := map[string]float64{
		engine.MGardaName: 2,

		engine.YName(index.BKey{Calendar: "T1", Task: "garda", Day: "Mo", Time: "t1"}): 1,
		engine.YName(index.BKey{Calendar: "T1", Task: "garda", Day: "Mo", Time: "t2"}): 1,
		engine.YName(index.BKey{Calendar: "T1", Task: "libre", Day: "Tu", Time: "t1"}): 1,
		engine.YName(index.BKey{Calendar: "T1", Task: "libre", Day: "Tu", Time: "t2"}): 1,
		engine.YName(index.BKey{Calendar: "T2", Task: "garda", Day: "Tu", Time: "t1"}): 1,
		engine.YName(index.BKey{Calendar: "T2", Task: "garda", Day: "Tu", Time: "t2"}): 1,
		engine.YName(index.BKey{Calendar: "T2", Task: "libre", Day: "Mo", Time: "t1"}): 1,
		engine.YName(index.BKey{Calendar: "T2", Task: "libre", Day: "Mo", Time: "t2"}): 1,

		engine.XName(index.AKey{Teacher: "T1", Calendar: "T1", Task: "garda", Day: "Mo", Time: "t1"}): 1,
		engine.XName(index.AKey{Teacher: "T1", Calendar: "T1", Task: "garda", Day: "Mo", Time: "t2"}): 1,
		engine.XName(index.AKey{Teacher: "T1", Calendar: "T1", Task: "libre", Day: "Tu", Time: "t1"}): 1,
		engine.XName(index.AKey{Teacher: "T1", Calendar: "T1", Task: "libre", Day: "Tu", Time: "t2"}): 1,
		engine.XName(index.AKey{Teacher: "T2", Calendar: "T2", Task: "garda", Day: "Tu", Time: "t1"}): 1,
		engine.XName(index.AKey{Teacher: "T2", Calendar: "T2", Task: "garda", Day: "Tu", Time: "t2"}): 1,
		engine.XName(index.AKey{Teacher: "T2", Calendar: "T2", Task: "libre", Day: "Mo", Time: "t1"}): 1,
		engine.XName(index.AKey{Teacher: "T2", Calendar: "T2", Task: "libre", Day: "Mo", Time: "t2"}): 1,
	}
	result := solve.Result{Status: solve.StatusOptimal, Values: values}

	found := solve.EnumerateInfeasibilities(m, result)
	require.Empty(t, found)
	require.Equal(t, 2.0, result.Value(engine.MGardaName))
}

// S6 — teacher double-booking impossible absent slack: the only eligible
// teacher for two distinct classes at the same slot forces sp1 to absorb
// the double assignment.
func TestScenarioS6_DoubleBookingForcesSlack(t *testing.T) {
	data := newData(t,
		[]model.Calendar{"X", "Y"}, []model.Day{"Mo"}, []model.Time{"t1"},
		[]model.TeacherCalendarTasksRow{
			{Teacher: "T1", Calendar: "X", Task: "a"},
			{Teacher: "T1", Calendar: "Y", Task: "b"},
		},
		[]model.CalendarTasksRow{
			{Calendar: "X", Task: "a", MinTimePeriods: 1, MaxTimePeriods: 1, MaxTimePeriodPerDay: 1, NumTeachers: 1},
			{Calendar: "Y", Task: "b", MinTimePeriods: 1, MaxTimePeriods: 1, MaxTimePeriodPerDay: 1, NumTeachers: 1},
		},
	)
	idx := index.Build(data)
	m, err := engine.New(data, idx, nil).Build()
	require.NoError(t, err)

	values := map[string]float64{
		engine.YName(index.BKey{Calendar: "X", Task: "a", Day: "Mo", Time: "t1"}): 1,
		engine.YName(index.BKey{Calendar: "Y", Task: "b", Day: "Mo", Time: "t1"}): 1,
		engine.XName(index.AKey{Teacher: "T1", Calendar: "X", Task: "a", Day: "Mo", Time: "t1"}): 1,
		engine.XName(index.AKey{Teacher: "T1", Calendar: "Y", Task: "b", Day: "Mo", Time: "t1"}): 1,
		engine.Sp1Name("T1", "Mo", "t1"): 1,
	}
	result := solve.Result{Status: solve.StatusOptimal, Objective: 1000, Values: values}

	found := solve.EnumerateInfeasibilities(m, result)
	require.Len(t, found, 1)
	require.Equal(t, "C1", found[0].Constraint)
	require.Equal(t, "T1#Mo#t1", found[0].Index)
	require.Equal(t, 1.0, found[0].Slack)
}
