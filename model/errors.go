package model

import "errors"

var (
	// ErrEmptyRow is returned when a row is built from no values at all.
	ErrEmptyRow = errors.New("model: row needs at least one value")

	// ErrLengthMismatch is returned when two rows of different length are
	// combined, or when the rows of a tableau are not all the same width.
	ErrLengthMismatch = errors.New("model: row length mismatch")

	// ErrSingularPivot is returned when a row is scaled by a number whose
	// real part is zero.
	ErrSingularPivot = errors.New("model: pivot has zero real part")

	ErrNoObjective = errors.New("model: objective not set")

	ErrNoConstraints = errors.New("model: no constraints")

	ErrUnknownRelation = errors.New("model: unknown relation")

	// ErrBasisLength, ErrBasisRange and ErrDuplicateBasis describe a basis that
	// cannot index the tableau it belongs to.
	ErrBasisLength    = errors.New("model: basis length differs from row count")
	ErrBasisRange     = errors.New("model: basis column out of range")
	ErrDuplicateBasis = errors.New("model: duplicate basis column")

	// ErrInvalidBasis is returned when a basis column is not a scaled unit
	// vector of its row, e.g. an equality row whose default basic column also
	// appears in another row.
	ErrInvalidBasis = errors.New("model: basis columns do not form an identity")
)
