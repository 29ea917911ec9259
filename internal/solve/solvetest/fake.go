// Package solvetest provides a canned solve.Backend for tests of the
// decoder and the infeasibility scan, so they do not depend on an actual
// cbc binary being installed.
package solvetest

import (
	"context"
	"time"

	"go.xesthora.dev/xesthora/internal/ilp"
	"go.xesthora.dev/xesthora/internal/solve"
)

// FakeBackend returns a fixed Result regardless of the model it is given,
// except that fixed variables are always reported at their fixed value.
type FakeBackend struct {
	Status    solve.Status
	Objective float64
	Values    map[string]float64
}

var _ solve.Backend = (*FakeBackend)(nil)

func (f *FakeBackend) Solve(_ context.Context, model *ilp.Model, _ time.Duration) (solve.Result, error) {
	values := make(map[string]float64, len(f.Values))
	for k, v := range f.Values {
		values[k] = v
	}
	for _, v := range model.Vars() {
		if v.Fixed {
			values[v.Name] = v.FixedAt
		}
	}
	return solve.Result{Status: f.Status, Objective: f.Objective, Values: values}, nil
}
