package engine

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"go.xesthora.dev/xesthora/internal/ilp"
	"go.xesthora.dev/xesthora/internal/index"
	"go.xesthora.dev/xesthora/internal/model"
)

// emitC1 — single task per teacher per slot, elastic:
// Σ x[p,c,t,d,h] = 1 + sp1[p,d,h] − sn1[p,d,h].
func (b *Builder) emitC1(m *ilp.Model, teachers []model.Teacher) {
	for _, p := range teachers {
		for _, d := range b.data.Days {
			for _, h := range b.data.Times {
				terms := make([]ilp.Term, 0)
				for _, a := range b.idx.ForTeacherSlot(p, d, h) {
					terms = append(terms, ilp.Term{Coef: 1, Var: XName(a)})
				}
				terms = append(terms,
					ilp.Term{Coef: -1, Var: Sp1Name(p, d, h)},
					ilp.Term{Coef: 1, Var: Sn1Name(p, d, h)},
				)
				name := fmt.Sprintf("C1#%s#%s#%s", p, d, h)
				m.AddConstraint(name, terms, ilp.EQ, 1)
			}
		}
	}
}

// emitC2 — class coverage, hard: Σ y[c,t,d,h] = 1.
func (b *Builder) emitC2(m *ilp.Model) {
	for _, c := range b.data.Classes {
		for _, d := range b.data.Days {
			for _, h := range b.data.Times {
				members := b.idx.ForCalendarSlot(c, d, h)
				if len(members) == 0 {
					m.Skip("C2", fmt.Sprintf("%s/%s/%s", c, d, h), true)
					b.log.Error("infeasible constraint: class has no declared task at slot",
						zap.String("class", string(c)), zap.String("day", string(d)), zap.String("time", string(h)))
					continue
				}
				terms := make([]ilp.Term, 0, len(members))
				for _, bk := range members {
					terms = append(terms, ilp.Term{Coef: 1, Var: YName(bk)})
				}
				name := fmt.Sprintf("C2#%s#%s#%s", c, d, h)
				m.AddConstraint(name, terms, ilp.EQ, 1)
			}
		}
	}
}

// emitC3 — staffing link, hard: num_teachers[c,t]·y[c,t,d,h] = Σ x[...].
func (b *Builder) emitC3(m *ilp.Model, ctKeys []model.CalendarTaskKey) {
	rows := b.data.CalendarTasks.ByKey()
	for _, k := range ctKeys {
		numTeachers := float64(rows[k].NumTeachers)
		for _, d := range b.data.Days {
			for _, h := range b.data.Times {
				bk := index.BKey{Calendar: k.Calendar, Task: k.Task, Day: d, Time: h}
				terms := []ilp.Term{{Coef: -numTeachers, Var: YName(bk)}}
				for _, a := range b.idx.ForCalendarTaskSlot(k.Calendar, k.Task, d, h) {
					terms = append(terms, ilp.Term{Coef: 1, Var: XName(a)})
				}
				name := fmt.Sprintf("C3#%s#%s#%s#%s", k.Calendar, k.Task, d, h)
				m.AddConstraint(name, terms, ilp.EQ, 0)
			}
		}
	}
}

// emitC4 — weekly maximum per (calendar,task), elastic from above:
// Σ y ≤ max_time_periods + sp2. Omitted (skip, tautology) when the declared
// maximum is +∞, since no finite sum of booleans can ever exceed it.
func (b *Builder) emitC4(m *ilp.Model, ctKeys []model.CalendarTaskKey, rows map[model.CalendarTaskKey]model.CalendarTasksRow) {
	for _, k := range ctKeys {
		row := rows[k]
		if math.IsInf(row.MaxTimePeriods, 1) {
			m.Skip("C4", fmt.Sprintf("%s/%s", k.Calendar, k.Task), false)
			continue
		}
		members := b.idx.ForCalendarTask(k.Calendar, k.Task)
		terms := make([]ilp.Term, 0, len(members)+1)
		for _, bk := range members {
			terms = append(terms, ilp.Term{Coef: 1, Var: YName(bk)})
		}
		terms = append(terms, ilp.Term{Coef: -1, Var: Sp2Name(k.Calendar, k.Task)})
		name := fmt.Sprintf("C4#%s#%s", k.Calendar, k.Task)
		m.AddConstraint(name, terms, ilp.LE, row.MaxTimePeriods)
	}
}

// emitC5 — weekly minimum per (calendar,task), elastic from below:
// Σ y ≥ min_time_periods − sn2. Omitted (skip, tautology) when the declared
// minimum is 0, since Σ y ≥ 0 − sn2 always holds (both nonnegative).
func (b *Builder) emitC5(m *ilp.Model, ctKeys []model.CalendarTaskKey, rows map[model.CalendarTaskKey]model.CalendarTasksRow) {
	for _, k := range ctKeys {
		row := rows[k]
		if row.MinTimePeriods == 0 {
			m.Skip("C5", fmt.Sprintf("%s/%s", k.Calendar, k.Task), false)
			continue
		}
		members := b.idx.ForCalendarTask(k.Calendar, k.Task)
		terms := make([]ilp.Term, 0, len(members)+1)
		for _, bk := range members {
			terms = append(terms, ilp.Term{Coef: 1, Var: YName(bk)})
		}
		terms = append(terms, ilp.Term{Coef: 1, Var: Sn2Name(k.Calendar, k.Task)})
		name := fmt.Sprintf("C5#%s#%s", k.Calendar, k.Task)
		m.AddConstraint(name, terms, ilp.GE, float64(row.MinTimePeriods))
	}
}

// emitC6 — daily maximum per (calendar,task,day), hard, emitted only when a
// finite max_time_period_per_day was supplied: Σ_h y ≤ max_time_period_per_day.
func (b *Builder) emitC6(m *ilp.Model, ctKeys []model.CalendarTaskKey, rows map[model.CalendarTaskKey]model.CalendarTasksRow) {
	for _, k := range ctKeys {
		row := rows[k]
		if math.IsInf(row.MaxTimePeriodPerDay, 1) {
			for _, d := range b.data.Days {
				m.Skip("C6", fmt.Sprintf("%s/%s/%s", k.Calendar, k.Task, d), false)
			}
			continue
		}
		for _, d := range b.data.Days {
			members := b.idx.ForCalendarTaskDay(k.Calendar, k.Task, d)
			terms := make([]ilp.Term, 0, len(members))
			for _, bk := range members {
				terms = append(terms, ilp.Term{Coef: 1, Var: YName(bk)})
			}
			name := fmt.Sprintf("C6#%s#%s#%s", k.Calendar, k.Task, d)
			m.AddConstraint(name, terms, ilp.LE, row.MaxTimePeriodPerDay)
		}
	}
}

// emitC7 — guard-hour cap link, hard: Σ x[p,c,"garda",d,h] ≤ M_garda.
// Omitted (skip, tautology) for a teacher with no garda eligibility at all,
// since the empty sum is always ≤ the nonnegative M_garda.
func (b *Builder) emitC7(m *ilp.Model, teachers []model.Teacher) {
	const garda = model.Task("garda")
	for _, p := range teachers {
		members := b.idx.ForTeacherTask(p, garda)
		if len(members) == 0 {
			m.Skip("C7", string(p), false)
			continue
		}
		terms := make([]ilp.Term, 0, len(members)+1)
		for _, a := range members {
			terms = append(terms, ilp.Term{Coef: 1, Var: XName(a)})
		}
		terms = append(terms, ilp.Term{Coef: -1, Var: MGardaName})
		name := fmt.Sprintf("C7#%s", p)
		m.AddConstraint(name, terms, ilp.LE, 0)
	}
}

// formObjective — minimize M_garda + 1000·(Σ sp2+sn2 over CT + Σ sp1+sn1
// over p,d,h).
func (b *Builder) formObjective(m *ilp.Model, teachers []model.Teacher, ctKeys []model.CalendarTaskKey) {
	m.AddObjectiveTerm(ilp.Term{Coef: 1, Var: MGardaName})
	for _, k := range ctKeys {
		m.AddObjectiveTerm(ilp.Term{Coef: 1000, Var: Sp2Name(k.Calendar, k.Task)})
		m.AddObjectiveTerm(ilp.Term{Coef: 1000, Var: Sn2Name(k.Calendar, k.Task)})
	}
	for _, p := range teachers {
		for _, d := range b.data.Days {
			for _, h := range b.data.Times {
				m.AddObjectiveTerm(ilp.Term{Coef: 1000, Var: Sp1Name(p, d, h)})
				m.AddObjectiveTerm(ilp.Term{Coef: 1000, Var: Sn1Name(p, d, h)})
			}
		}
	}
}
