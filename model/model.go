package model

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"
	"q.log/exactsimplex/extended"
)

// Tableau is a standardized problem: constraint rows, the objective row and
// one basic column per row. Simplex mutates it in place.
type Tableau struct {
	Rows      []Row
	Objective Row
	Basis     []int

	// Decision is the number of original variables; later columns are
	// slack or surplus columns.
	Decision int
}

// Clone returns a deep copy that shares nothing with t.
func (t *Tableau) Clone() *Tableau {
	rows := make([]Row, len(t.Rows))
	for i := range t.Rows {
		rows[i] = t.Rows[i].Clone()
	}
	return &Tableau{
		Rows:      rows,
		Objective: t.Objective.Clone(),
		Basis:     append([]int(nil), t.Basis...),
		Decision:  t.Decision,
	}
}

// Width is the number of columns, excluding the constant term.
func (t *Tableau) Width() int { return t.Objective.Width() }

// Validate checks the shape: equal row widths and a basis of distinct,
// in-range columns, one per row.
func (t *Tableau) Validate() error {
	w := t.Width()
	for i := range t.Rows {
		if t.Rows[i].Width() != w {
			return fmt.Errorf("row %d: %w: width %d, objective width %d", i, ErrLengthMismatch, t.Rows[i].Width(), w)
		}
	}
	if len(t.Basis) != len(t.Rows) {
		return fmt.Errorf("%w: %d columns for %d rows", ErrBasisLength, len(t.Basis), len(t.Rows))
	}
	seen := make(map[int]int, len(t.Basis))
	for i, col := range t.Basis {
		if col < 0 || col >= w {
			return fmt.Errorf("row %d: %w: %d", i, ErrBasisRange, col)
		}
		if j, ok := seen[col]; ok {
			return fmt.Errorf("rows %d and %d: %w: %d", j, i, ErrDuplicateBasis, col)
		}
		seen[col] = i
	}
	return nil
}

// CheckBasis verifies that every basic column is non-zero, with an
// invertible entry, in its own row only.
func (t *Tableau) CheckBasis() error {
	for i, col := range t.Basis {
		if !t.Rows[i].Coefficients[col].Invertible() {
			return fmt.Errorf("row %d, column %d: %w", i, col, ErrInvalidBasis)
		}
		for k := range t.Rows {
			if k != i && !t.Rows[k].Coefficients[col].IsZero() {
				return fmt.Errorf("column %d appears in rows %d and %d: %w", col, i, k, ErrInvalidBasis)
			}
		}
	}
	return nil
}

// PrimalFeasible reports whether every row's constant term is non-negative.
func (t *Tableau) PrimalFeasible() bool {
	for i := range t.Rows {
		if t.Rows[i].MinusZ.Sign() < 0 {
			return false
		}
	}
	return true
}

// DualFeasible reports whether no objective coefficient is positive.
func (t *Tableau) DualFeasible() bool {
	for _, c := range t.Objective.Coefficients {
		if c.Sign() > 0 {
			return false
		}
	}
	return true
}

// Values returns the basic solution: one value per column, zero for
// non-basic columns.
func (t *Tableau) Values() []extended.Number {
	out := make([]extended.Number, t.Width())
	for i, col := range t.Basis {
		out[col] = t.Rows[i].MinusZ.Div(t.Rows[i].Coefficients[col])
	}
	return out
}

// DecisionValues is Values restricted to the original variables.
func (t *Tableau) DecisionValues() []extended.Number {
	return t.Values()[:t.Decision]
}

// ObjectiveValue is the objective at the current basic solution.
func (t *Tableau) ObjectiveValue() extended.Number {
	return t.Objective.MinusZ.Neg()
}

// Dense exports the real parts as a matrix, one row per constraint followed
// by the objective, with the constant term as the last column.
func (t *Tableau) Dense() *mat.Dense {
	r, c := len(t.Rows)+1, t.Width()+1
	d := mat.NewDense(r, c, nil)
	set := func(i int, row *Row) {
		for j, v := range row.Coefficients {
			d.Set(i, j, v.Float64())
		}
		d.Set(i, c-1, row.MinusZ.Float64())
	}
	for i := range t.Rows {
		set(i, &t.Rows[i])
	}
	set(r-1, &t.Objective)
	return d
}

// Print writes the real parts of the tableau and the basis.
func (t *Tableau) Print(w io.Writer) error {
	taux := mat.Formatted(t.Dense(), mat.Prefix("    "), mat.Squeeze())
	_, err := fmt.Fprintf(w, "T = %v\nB = %v\n", taux, t.Basis)
	return err
}
