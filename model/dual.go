package model

import (
	"fmt"

	"q.log/exactsimplex/extended"
)

// normalized rewrites every constraint as a ≤ row: ≥ and > rows are negated,
// strict rows lose an ε from their right-hand side and each equality becomes
// the pair row ≤ rhs, -row ≤ -rhs. Rows are padded to width n.
func (b *Builder) normalized(n int) ([]Row, error) {
	out := make([]Row, 0, len(b.constraints))
	for i := range b.constraints {
		row := b.constraints[i].Clone()
		row.extend(n - row.Width())
		rel := b.relations[i]
		switch rel {
		case Greater, GreaterEqual:
			row.Negate()
		case Less, LessEqual, Equal:
		default:
			return nil, fmt.Errorf("constraint %d: %w", i, ErrUnknownRelation)
		}
		if rel.Strict() {
			row.MinusZ = row.MinusZ.Sub(extended.Epsilon())
		}
		out = append(out, row)
		if rel == Equal {
			mirror := row.Clone()
			mirror.Negate()
			out = append(out, mirror)
		}
	}
	return out, nil
}

// Dual returns an independent builder holding the dual problem, also posed
// as a maximization: for the primal max c·x - d subject to A·x ≤ b, the dual
// is max -b·y + d subject to Aᵀ·y ≥ c. Every dual constraint is tagged ≥.
func (b *Builder) Dual() (*Builder, error) {
	if b.objective == nil {
		return nil, ErrNoObjective
	}
	if len(b.constraints) == 0 {
		return nil, ErrNoConstraints
	}
	n := b.decisionWidth()
	rows, err := b.normalized(n)
	if err != nil {
		return nil, err
	}
	obj := b.objective.Clone()
	obj.extend(n - obj.Width())

	dual := NewBuilder()
	for j := 0; j < n; j++ {
		coefs := make([]extended.Number, len(rows))
		for i := range rows {
			coefs[i] = rows[i].Coefficients[j]
		}
		dual.AddConstraintRow(NewRow(coefs, obj.Coefficients[j]), GreaterEqual)
	}

	target := make([]extended.Number, len(rows))
	for i := range rows {
		target[i] = rows[i].MinusZ.Neg()
	}
	dual.SetObjective(NewRow(target, obj.MinusZ.Neg()))
	return dual, nil
}
