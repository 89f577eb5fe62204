package model

import (
	"fmt"

	"q.log/exactsimplex/extended"
)

// Builder accumulates relational constraints and an objective, and turns
// them into a standardized Tableau. The objective is maximized.
type Builder struct {
	constraints []Row
	relations   []Relation
	objective   *Row

	// equalityBasis names the basic column of each equality row, in order.
	equalityBasis []int
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddConstraint appends coefficients·x rel rhs.
func (b *Builder) AddConstraint(coefficients []int64, rhs int64, rel Relation) {
	coefs := make([]extended.Number, len(coefficients))
	for i, c := range coefficients {
		coefs[i] = extended.FromInt(c)
	}
	b.AddConstraintRow(NewRow(coefs, extended.FromInt(rhs)), rel)
}

// AddConstraintRow appends a prepared row; MinusZ is the right-hand side.
// The row is copied.
func (b *Builder) AddConstraintRow(row Row, rel Relation) {
	b.constraints = append(b.constraints, row.Clone())
	b.relations = append(b.relations, rel)
}

// SetObjective records the row to maximize. Its MinusZ is the constant term.
func (b *Builder) SetObjective(row Row) {
	obj := row.Clone()
	b.objective = &obj
}

// SetEqualityBasis overrides the default basic columns 0, 1, 2, ... used for
// equality rows.
func (b *Builder) SetEqualityBasis(cols ...int) {
	b.equalityBasis = append([]int(nil), cols...)
}

// Len is the number of constraints added so far.
func (b *Builder) Len() int { return len(b.constraints) }

// Relations returns a copy of the relation tags in insertion order.
func (b *Builder) Relations() []Relation {
	return append([]Relation(nil), b.relations...)
}

// Constraint returns a copy of the i-th constraint row as added.
func (b *Builder) Constraint(i int) Row { return b.constraints[i].Clone() }

// Objective returns a copy of the objective row and whether it was set.
func (b *Builder) Objective() (Row, bool) {
	if b.objective == nil {
		return Row{}, false
	}
	return b.objective.Clone(), true
}

// decisionWidth is the widest coefficient list among constraints and
// objective.
func (b *Builder) decisionWidth() int {
	n := 0
	if b.objective != nil {
		n = b.objective.Width()
	}
	for i := range b.constraints {
		n = max(n, b.constraints[i].Width())
	}
	return n
}

// Standardize produces the slack/surplus tableau and its initial basis.
// The builder is left untouched, so repeated calls give identical results.
func (b *Builder) Standardize() (*Tableau, error) {
	if b.objective == nil {
		return nil, ErrNoObjective
	}
	if len(b.constraints) == 0 {
		return nil, ErrNoConstraints
	}
	for i, rel := range b.relations {
		if !rel.Valid() {
			return nil, fmt.Errorf("constraint %d: %w", i, ErrUnknownRelation)
		}
	}

	n := b.decisionWidth()
	slackOf := make([]int, len(b.relations))
	slacks := 0
	for i, rel := range b.relations {
		slackOf[i] = -1
		if rel.HasSlack() {
			slackOf[i] = n + slacks
			slacks++
		}
	}

	rows := make([]Row, len(b.constraints))
	for i := range b.constraints {
		rows[i] = b.constraints[i].Clone()
		rows[i].extend(n + slacks - rows[i].Width())
	}
	obj := b.objective.Clone()
	obj.extend(n + slacks - obj.Width())

	for i, rel := range b.relations {
		if slackOf[i] >= 0 {
			rows[i].Coefficients[slackOf[i]] = extended.FromInt(rel.slackSign())
		}
		switch rel {
		case Less:
			rows[i].MinusZ = rows[i].MinusZ.Add(extended.Epsilon())
		case Greater:
			rows[i].MinusZ = rows[i].MinusZ.Sub(extended.Epsilon())
		}
	}

	basis := make([]int, len(rows))
	next := 0
	for i := range rows {
		if slackOf[i] >= 0 {
			basis[i] = slackOf[i]
			continue
		}
		if next < len(b.equalityBasis) {
			basis[i] = b.equalityBasis[next]
		} else {
			basis[i] = next
		}
		next++
	}

	t := &Tableau{Rows: rows, Objective: obj, Basis: basis, Decision: n}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := t.CheckBasis(); err != nil {
		return nil, err
	}
	return t, nil
}
