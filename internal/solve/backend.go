// Package solve is the solver driver of §4.5: it invokes an external MILP
// capability, surfaces termination, and enumerates residual infeasibilities
// from the elastic slacks.
package solve

import (
	"context"
	"time"

	"go.xesthora.dev/xesthora/internal/ilp"
)

// Status mirrors the MILP solver interface's termination vocabulary (§6).
type Status int

const (
	StatusOptimal Status = iota
	StatusFeasible
	StatusInfeasible
	StatusUnbounded
	StatusTimeLimit
	StatusOther
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusFeasible:
		return "feasible"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	case StatusTimeLimit:
		return "time_limit"
	default:
		return "other"
	}
}

// Result is what a Backend reports back: termination status, objective
// value (if any), and every declared variable's primal value.
type Result struct {
	Status    Status
	Objective float64
	Values    map[string]float64
}

// Value returns the primal value of a variable, or 0 if it was never
// reported (e.g. the solve never reached a primal solution).
func (r Result) Value(name string) float64 {
	return r.Values[name]
}

// Backend is the abstract MILP solver capability of §6: build-or-accept a
// model, solve it, and allow reading back every declared variable's value.
// The reference binding (Backend implementation) targets CBC; any
// equivalent MILP backend satisfying this interface is acceptable.
type Backend interface {
	Solve(ctx context.Context, model *ilp.Model, timeLimit time.Duration) (Result, error)
}
