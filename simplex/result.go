package simplex

import (
	"q.log/exactsimplex/extended"
	"q.log/exactsimplex/model"
)

// Status says why the pivot loop stopped.
type Status int

const (
	// Optimal: the tableau is primal feasible and no column improves the
	// objective.
	Optimal Status = iota
	// Unbounded: an improving column has no positive entry to bound it.
	Unbounded
	// Infeasible: a dual step found a negative row with no negative entry
	// outside the basis.
	Infeasible
	// Stalled: the loop stopped while the tableau was neither primal nor
	// dual feasible, so nothing can be said about the problem.
	Stalled
	// Cycle: the next basis had already been visited.
	Cycle
	// StepLimit: the step budget ran out.
	StepLimit
)

var statusNames = [...]string{"optimal", "unbounded", "infeasible", "stalled", "cycle", "step-limit"}

func (s Status) String() string {
	if s < Optimal || s > StepLimit {
		return "unknown"
	}
	return statusNames[s]
}

// Kind is the pivoting rule used by a step.
type Kind int

const (
	Primal Kind = iota
	Dual
)

func (k Kind) String() string {
	if k == Dual {
		return "dual"
	}
	return "primal"
}

// Step records one pivot. Index is 1-based; the observer receives a zero
// Step for the initial tableau.
type Step struct {
	Index    int
	Kind     Kind
	Row      int
	Entering int
	Leaving  int
	Basis    []int
}

// Result is the final state of a Solve call.
type Result struct {
	Status Status
	// Steps is the number of pivots performed.
	Steps     int
	Basis     []int
	Objective model.Row
	Tableau   *model.Tableau
	History   []Step
	// Mixed is set when at least one step ran while the tableau was neither
	// primal nor dual feasible.
	Mixed bool
}

// Value is the objective value of the final basic solution.
func (r *Result) Value() extended.Number { return r.Tableau.ObjectiveValue() }

// Solution returns the values of the original variables.
func (r *Result) Solution() []extended.Number { return r.Tableau.DecisionValues() }
