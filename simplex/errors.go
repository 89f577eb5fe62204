package simplex

import "errors"

var (
	// ErrStepBudget is returned when Solve is given a non-positive budget.
	ErrStepBudget = errors.New("simplex: step budget must be positive")

	// ErrCorruptBasis is returned when no basic column is non-zero in the
	// row chosen for a pivot. The tableau no longer matches its basis.
	ErrCorruptBasis = errors.New("simplex: no basic column in pivot row")
)
