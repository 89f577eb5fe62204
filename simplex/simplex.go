package simplex

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"q.log/exactsimplex/model"
)

// PrintBasis writes the basis as 1-based variable names.
func PrintBasis(w io.Writer, basis []int) error {
	names := make([]string, len(basis))
	for i, col := range basis {
		names[i] = fmt.Sprintf("x%d", col+1)
	}
	_, err := fmt.Fprintf(w, "B = [%s]\n", strings.Join(names, " "))
	return err
}

// Solve runs the tableau simplex method on t for at most maxSteps pivots and
// returns the final basis and objective row. t is modified in place: rows are
// first rescaled so that each basic entry is one and the basic columns are
// priced out of the objective, then every pivot rewrites it.
//
// Each step is a dual step when t is primal infeasible but dual feasible and
// a primal step otherwise. The loop stops when a step has no candidate, when
// the next basis was already visited, or when the budget runs out; Status
// tells which. Errors are reserved for malformed tableaux.
func Solve(t *model.Tableau, maxSteps int, opts ...Option) (*Result, error) {
	if maxSteps <= 0 {
		return nil, ErrStepBudget
	}
	cfg := newConfig(opts)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := t.CheckBasis(); err != nil {
		return nil, err
	}
	if err := canonicalize(t); err != nil {
		return nil, err
	}

	res := &Result{Tableau: t, Status: StepLimit}
	visited := basisSet{}
	visited.add(t.Basis)
	cfg.observe(Step{Basis: slices.Clone(t.Basis)}, t)

loop:
	for res.Steps < maxSteps {
		primal, dual := t.PrimalFeasible(), t.DualFeasible()
		if !primal && !dual && !res.Mixed {
			res.Mixed = true
			cfg.logger.Warn("tableau is neither primal nor dual feasible, using the primal rule",
				"step", res.Steps+1)
		}

		kind := Primal
		if !primal && dual {
			kind = Dual
		}

		var row, col int
		switch kind {
		case Dual:
			if row = dualLeaving(t); row < 0 {
				res.Status = Optimal
				break loop
			}
			if col = dualEntering(t, row); col < 0 {
				res.Status = Infeasible
				break loop
			}
		default:
			if col = primalEntering(t); col < 0 {
				res.Status = outcome(primal, Optimal)
				break loop
			}
			if row = primalLeaving(t, col); row < 0 {
				res.Status = outcome(primal, Unbounded)
				break loop
			}
		}

		slot, err := basicSlot(t, row)
		if err != nil {
			return nil, fmt.Errorf("step %d, row %d: %w", res.Steps+1, row, err)
		}
		next := slices.Clone(t.Basis)
		leaving := next[slot]
		next[slot] = col
		if !visited.add(next) {
			res.Status = Cycle
			break
		}

		if err := pivot(t, row, col); err != nil {
			return nil, fmt.Errorf("step %d: %w", res.Steps+1, err)
		}
		t.Basis = next
		res.Steps++

		step := Step{
			Index:    res.Steps,
			Kind:     kind,
			Row:      row,
			Entering: col,
			Leaving:  leaving,
			Basis:    slices.Clone(next),
		}
		res.History = append(res.History, step)
		cfg.logger.Debug("pivot",
			"step", step.Index,
			"kind", kind.String(),
			"entering", col,
			"leaving", leaving,
			"basis", next)
		cfg.observe(step, t)
	}

	if res.Status == StepLimit && t.PrimalFeasible() && primalEntering(t) < 0 {
		res.Status = Optimal
	}
	res.Basis = slices.Clone(t.Basis)
	res.Objective = t.Objective.Clone()

	cfg.logger.Debug("simplex finished",
		"status", res.Status.String(),
		"steps", res.Steps,
		"value", t.ObjectiveValue().String())
	return res, nil
}

// outcome keeps s only when the tableau is primal feasible; otherwise the
// stop says nothing about the problem.
func outcome(primalFeasible bool, s Status) Status {
	if primalFeasible {
		return s
	}
	return Stalled
}

func (c *config) observe(step Step, t *model.Tableau) {
	if c.observer != nil {
		c.observer(step, t)
	}
}
