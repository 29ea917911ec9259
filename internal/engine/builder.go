// Package engine builds the mixed-integer linear model of §4.4 from an
// InputData aggregate and its index sets: decision variables, elastic
// slacks, pre-assignments, the seven constraint families, and the
// objective. It never talks to a solver — see internal/solve for that.
package engine

import (
	"fmt"

	"go.uber.org/zap"

	"go.xesthora.dev/xesthora/internal/ilp"
	"go.xesthora.dev/xesthora/internal/index"
	"go.xesthora.dev/xesthora/internal/model"
)

// Builder accumulates the ilp.Model for one solve.
type Builder struct {
	data *model.InputData
	idx  *index.Indexes
	log  *zap.Logger
}

// New returns a Builder for one input aggregate and its precomputed index
// sets.
func New(data *model.InputData, idx *index.Indexes, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{data: data, idx: idx, log: log}
}

// Build declares every variable, fixes every pre-assignment, emits C1–C7,
// and forms the objective, returning the solver-agnostic model.
func (b *Builder) Build() (*ilp.Model, error) {
	m := ilp.NewModel()

	for _, a := range b.idx.A {
		m.AddBinary(XName(a))
	}
	for _, bk := range b.idx.B {
		m.AddBinary(YName(bk))
	}
	m.AddNonNegativeInteger(MGardaName)

	teachers := b.data.Teachers()
	for _, p := range teachers {
		for _, d := range b.data.Days {
			for _, h := range b.data.Times {
				m.AddNonNegativeInteger(Sp1Name(p, d, h))
				m.AddNonNegativeInteger(Sn1Name(p, d, h))
			}
		}
	}

	ctKeys := b.data.CalendarTasks.Keys()
	ctRows := b.data.CalendarTasks.ByKey()
	for _, k := range ctKeys {
		m.AddNonNegativeInteger(Sp2Name(k.Calendar, k.Task))
		m.AddNonNegativeInteger(Sn2Name(k.Calendar, k.Task))
	}

	if err := b.fixPreassignments(m); err != nil {
		return nil, err
	}

	b.emitC1(m, teachers)
	b.emitC2(m)
	b.emitC3(m, ctKeys)
	b.emitC4(m, ctKeys, ctRows)
	b.emitC5(m, ctKeys, ctRows)
	b.emitC6(m, ctKeys, ctRows)
	b.emitC7(m, teachers)
	b.formObjective(m, teachers, ctKeys)

	return m, nil
}

func (b *Builder) fixPreassignments(m *ilp.Model) error {
	for _, row := range b.data.FixedAssignments.Rows() {
		a := index.AKey{Teacher: row.Teacher, Calendar: row.Calendar, Task: row.Task, Day: row.Day, Time: row.Time}
		if _, ok := b.idx.APos[a]; !ok {
			return fmt.Errorf("engine: fixed assignment %v has no matching eligibility in A", a)
		}
		if err := m.Fix(XName(a), 1); err != nil {
			return err
		}
	}

	playtimeKeys := b.data.Playtime.ByKey()
	for _, bk := range b.idx.B {
		if bk.Task != model.Task(b.data.PlaytimeName) {
			continue
		}
		value := 0.0
		if _, ok := playtimeKeys[model.PlaytimeKey{Calendar: bk.Calendar, Day: bk.Day, Time: bk.Time}]; ok {
			value = 1
		}
		if err := m.Fix(YName(bk), value); err != nil {
			return err
		}
	}
	return nil
}
