package simplex

import (
	"slices"
	"strconv"
	"strings"

	"q.log/exactsimplex/extended"
	"q.log/exactsimplex/model"
)

// basisSet holds the bases visited by one Solve call.
type basisSet map[string]struct{}

func basisKey(basis []int) string {
	var b strings.Builder
	for i, col := range basis {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(col))
	}
	return b.String()
}

// add records basis and reports whether it was new.
func (s basisSet) add(basis []int) bool {
	k := basisKey(basis)
	if _, ok := s[k]; ok {
		return false
	}
	s[k] = struct{}{}
	return true
}

// primalEntering picks the non-basic column with the largest positive
// objective coefficient, first one on ties. -1 means none improves.
func primalEntering(t *model.Tableau) int {
	best := -1
	for col, c := range t.Objective.Coefficients {
		if c.Sign() <= 0 || slices.Contains(t.Basis, col) {
			continue
		}
		if best < 0 || t.Objective.Coefficients[best].Less(c) {
			best = col
		}
	}
	return best
}

// primalLeaving runs the minimum ratio test on col over the rows with a
// positive, invertible entry. -1 means col is unbounded.
func primalLeaving(t *model.Tableau, col int) int {
	best := -1
	var bestRatio extended.Number
	for i := range t.Rows {
		a := t.Rows[i].Coefficients[col]
		if a.Sign() <= 0 || !a.Invertible() {
			continue
		}
		ratio := t.Rows[i].MinusZ.Div(a)
		if ratio.Sign() < 0 {
			continue
		}
		if best < 0 || ratio.Less(bestRatio) {
			best, bestRatio = i, ratio
		}
	}
	return best
}

// dualLeaving picks the row with the most negative constant term.
func dualLeaving(t *model.Tableau) int {
	best := -1
	for i := range t.Rows {
		z := t.Rows[i].MinusZ
		if z.Sign() >= 0 {
			continue
		}
		if best < 0 || z.Less(t.Rows[best].MinusZ) {
			best = i
		}
	}
	return best
}

// dualEntering runs the dual ratio test on row: among non-basic columns with
// a negative, invertible entry, maximize -objective[col]/entry.
func dualEntering(t *model.Tableau, row int) int {
	best := -1
	var bestRatio extended.Number
	for col, a := range t.Rows[row].Coefficients {
		if a.Sign() >= 0 || !a.Invertible() || slices.Contains(t.Basis, col) {
			continue
		}
		ratio := t.Objective.Coefficients[col].Neg().Div(a)
		if best < 0 || bestRatio.Less(ratio) {
			best, bestRatio = col, ratio
		}
	}
	return best
}

// basicSlot finds the basis position whose column is non-zero in row.
func basicSlot(t *model.Tableau, row int) (int, error) {
	for k, col := range t.Basis {
		if !t.Rows[row].Coefficients[col].IsZero() {
			return k, nil
		}
	}
	return -1, ErrCorruptBasis
}

// pivot scales row so that its entry in col is one and clears col from every
// other row, objective included.
func pivot(t *model.Tableau, row, col int) error {
	p := &t.Rows[row]
	if err := p.Scale(p.Coefficients[col]); err != nil {
		return err
	}
	for i := range t.Rows {
		if i == row {
			continue
		}
		if err := t.Rows[i].SubScaled(p, t.Rows[i].Coefficients[col]); err != nil {
			return err
		}
	}
	return t.Objective.SubScaled(p, t.Objective.Coefficients[col])
}

// canonicalize scales every row so its basic entry is one and prices the
// basic columns out of the objective. The basis must have passed
// model.Tableau.CheckBasis.
func canonicalize(t *model.Tableau) error {
	one := extended.One()
	for i, col := range t.Basis {
		if c := t.Rows[i].Coefficients[col]; !c.Equal(one) {
			if err := t.Rows[i].Scale(c); err != nil {
				return err
			}
		}
	}
	for i, col := range t.Basis {
		if err := t.Objective.SubScaled(&t.Rows[i], t.Objective.Coefficients[col]); err != nil {
			return err
		}
	}
	return nil
}
