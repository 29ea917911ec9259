// Package ilp is the solver-agnostic mixed-integer linear model
// abstraction built by the model builder (§4.4) and consumed by the solver
// driver (§4.5). It knows nothing about CBC, MPS, or any other concrete
// backend — that binding lives in internal/solve.
package ilp

import (
	"fmt"
	"math"
)

// Kind is a decision variable's domain.
type Kind int

const (
	Binary Kind = iota
	NonNegativeInteger
)

// Var is one declared decision variable.
type Var struct {
	Name    string
	Kind    Kind
	Lower   float64
	Upper   float64
	Fixed   bool
	FixedAt float64
}

// Sense is a constraint's relational operator.
type Sense int

const (
	LE Sense = iota
	GE
	EQ
)

func (s Sense) String() string {
	switch s {
	case LE:
		return "<="
	case GE:
		return ">="
	default:
		return "="
	}
}

// Term is one coefficient×variable pair in a linear expression.
type Term struct {
	Coef float64
	Var  string
}

// Constraint is one emitted row: Σ terms {<=,>=,=} RHS.
type Constraint struct {
	Name  string
	Terms []Term
	Sense Sense
	RHS   float64
}

// SkippedIndex records a constraint-emission decision, per the §4.4 "skip"
// semantics: either a trivial tautology that was omitted, or a statically
// impossible predicate that was recorded for diagnostics and not emitted.
type SkippedIndex struct {
	Rule       string
	Index      string
	Impossible bool
}

// Model is the accumulated decision-variable/constraint/objective state of
// one solve. A Model is scoped to a single Execute call (§5) and is never
// shared between concurrent solves.
type Model struct {
	vars     map[string]*Var
	varOrder []string

	Constraints []Constraint
	Objective   []Term

	Skipped []SkippedIndex
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{vars: make(map[string]*Var)}
}

// AddBinary declares a 0/1 variable, returning its name for convenience.
func (m *Model) AddBinary(name string) string {
	m.addVar(&Var{Name: name, Kind: Binary, Lower: 0, Upper: 1})
	return name
}

// AddNonNegativeInteger declares an unbounded-above nonnegative integer
// variable (used for slacks and M_garda).
func (m *Model) AddNonNegativeInteger(name string) string {
	m.addVar(&Var{Name: name, Kind: NonNegativeInteger, Lower: 0, Upper: math.Inf(1)})
	return name
}

func (m *Model) addVar(v *Var) {
	if _, exists := m.vars[v.Name]; exists {
		return
	}
	m.vars[v.Name] = v
	m.varOrder = append(m.varOrder, v.Name)
}

// Fix pins a previously declared variable to a constant value (used for
// pre-assignments: FixedTeacherCalendarTaskDayTimes and playtime).
func (m *Model) Fix(name string, value float64) error {
	v, ok := m.vars[name]
	if !ok {
		return fmt.Errorf("ilp: fix: unknown variable %q", name)
	}
	v.Fixed = true
	v.FixedAt = value
	return nil
}

// Var returns the declared variable, if any.
func (m *Model) Var(name string) (*Var, bool) {
	v, ok := m.vars[name]
	return v, ok
}

// Vars returns every declared variable in declaration order.
func (m *Model) Vars() []*Var {
	out := make([]*Var, 0, len(m.varOrder))
	for _, n := range m.varOrder {
		out = append(out, m.vars[n])
	}
	return out
}

// AddConstraint appends one row. Sum of terms is implicitly taken over
// duplicate variable names (callers may pass repeated Terms for the same
// variable; they are not pre-merged, matching how the linear expression was
// built).
func (m *Model) AddConstraint(name string, terms []Term, sense Sense, rhs float64) {
	m.Constraints = append(m.Constraints, Constraint{Name: name, Terms: terms, Sense: sense, RHS: rhs})
}

// Skip records a constraint-emission guard decision without adding a row.
func (m *Model) Skip(rule, index string, impossible bool) {
	m.Skipped = append(m.Skipped, SkippedIndex{Rule: rule, Index: index, Impossible: impossible})
}

// AddObjectiveTerm accumulates one term of the (always-minimize) objective.
func (m *Model) AddObjectiveTerm(t Term) {
	m.Objective = append(m.Objective, t)
}
