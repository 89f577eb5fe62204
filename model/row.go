package model

import (
	"fmt"
	"math/big"
	"strings"

	"q.log/exactsimplex/extended"
)

// Row is one line of a tableau: a coefficient per column plus the row's
// constant term. For a constraint MinusZ is the right-hand side; for the
// objective it is the negated objective value of the current basic solution.
type Row struct {
	Coefficients []extended.Number
	MinusZ       extended.Number
}

// NewRow wraps coefficients and a constant term without copying them.
func NewRow(coefficients []extended.Number, minusZ extended.Number) Row {
	return Row{Coefficients: coefficients, MinusZ: minusZ}
}

// RowFromInts builds a row whose last value is the constant term.
func RowFromInts(values ...int64) (Row, error) {
	if len(values) == 0 {
		return Row{}, ErrEmptyRow
	}
	coefs := make([]extended.Number, len(values)-1)
	for i, v := range values[:len(values)-1] {
		coefs[i] = extended.FromInt(v)
	}
	return NewRow(coefs, extended.FromInt(values[len(values)-1])), nil
}

// RowFromRats is RowFromInts for rationals.
func RowFromRats(values ...*big.Rat) (Row, error) {
	if len(values) == 0 {
		return Row{}, ErrEmptyRow
	}
	coefs := make([]extended.Number, len(values)-1)
	for i, v := range values[:len(values)-1] {
		coefs[i] = extended.FromRat(v)
	}
	return NewRow(coefs, extended.FromRat(values[len(values)-1])), nil
}

// Width is the number of coefficients.
func (r *Row) Width() int { return len(r.Coefficients) }

// Len counts the coefficients and the constant term.
func (r *Row) Len() int { return len(r.Coefficients) + 1 }

// Clone returns a deep copy.
func (r *Row) Clone() Row {
	coefs := make([]extended.Number, len(r.Coefficients))
	copy(coefs, r.Coefficients)
	return Row{Coefficients: coefs, MinusZ: r.MinusZ}
}

// extend appends n zero columns.
func (r *Row) extend(n int) {
	for i := 0; i < n; i++ {
		r.Coefficients = append(r.Coefficients, extended.Zero())
	}
}

// Scale divides the row by by, using Conj(by)/x² as the reciprocal.
func (r *Row) Scale(by extended.Number) error {
	inv, ok := by.Inverse()
	if !ok {
		return fmt.Errorf("scale by %v: %w", by, ErrSingularPivot)
	}
	r.MulNumber(inv)
	return nil
}

// MulNumber multiplies every entry by by.
func (r *Row) MulNumber(by extended.Number) {
	for i, c := range r.Coefficients {
		r.Coefficients[i] = c.Mul(by)
	}
	r.MinusZ = r.MinusZ.Mul(by)
}

// Negate flips the sign of every entry.
func (r *Row) Negate() {
	for i, c := range r.Coefficients {
		r.Coefficients[i] = c.Neg()
	}
	r.MinusZ = r.MinusZ.Neg()
}

func (r *Row) sameLength(o *Row) error {
	if r.Len() != o.Len() {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, r.Len(), o.Len())
	}
	return nil
}

// Add adds o to r in place.
func (r *Row) Add(o *Row) error {
	if err := r.sameLength(o); err != nil {
		return err
	}
	for i, c := range o.Coefficients {
		r.Coefficients[i] = r.Coefficients[i].Add(c)
	}
	r.MinusZ = r.MinusZ.Add(o.MinusZ)
	return nil
}

// Sub subtracts o from r in place.
func (r *Row) Sub(o *Row) error {
	if err := r.sameLength(o); err != nil {
		return err
	}
	for i, c := range o.Coefficients {
		r.Coefficients[i] = r.Coefficients[i].Sub(c)
	}
	r.MinusZ = r.MinusZ.Sub(o.MinusZ)
	return nil
}

// SubScaled performs r -= o·by, the elimination step of a pivot.
func (r *Row) SubScaled(o *Row, by extended.Number) error {
	if err := r.sameLength(o); err != nil {
		return err
	}
	if by.IsZero() {
		return nil
	}
	for i, c := range o.Coefficients {
		r.Coefficients[i] = r.Coefficients[i].Sub(c.Mul(by))
	}
	r.MinusZ = r.MinusZ.Sub(o.MinusZ.Mul(by))
	return nil
}

// Equal compares rows entry by entry.
func (r Row) Equal(o Row) bool {
	if r.Len() != o.Len() || !r.MinusZ.Equal(o.MinusZ) {
		return false
	}
	for i, c := range r.Coefficients {
		if !c.Equal(o.Coefficients[i]) {
			return false
		}
	}
	return true
}

// Printable returns one display string per coefficient followed by one for
// the constant term.
func (r *Row) Printable() []string {
	out := make([]string, 0, r.Len())
	for _, c := range r.Coefficients {
		out = append(out, c.String())
	}
	return append(out, r.MinusZ.String())
}

func (r Row) String() string {
	var b strings.Builder
	for _, s := range r.Printable() {
		b.WriteString("| ")
		b.WriteString(s)
		b.WriteString(" ")
	}
	b.WriteString("|")
	return b.String()
}
