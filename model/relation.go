package model

// Relation tags a constraint row with the comparison between its left-hand
// side and its right-hand side.
type Relation int

const (
	Less Relation = iota
	LessEqual
	Greater
	GreaterEqual
	Equal
)

var relationSymbols = [...]string{"<", "<=", ">", ">=", "="}

func (r Relation) String() string {
	if r < Less || r > Equal {
		return "?"
	}
	return relationSymbols[r]
}

func (r Relation) Valid() bool { return r >= Less && r <= Equal }

// Strict reports whether r is < or >.
func (r Relation) Strict() bool { return r == Less || r == Greater }

// HasSlack reports whether standardization appends a slack or surplus
// column for r.
func (r Relation) HasSlack() bool { return r.Valid() && r != Equal }

// slackSign is +1 for slack columns and -1 for surplus columns.
func (r Relation) slackSign() int64 {
	switch r {
	case Less, LessEqual:
		return 1
	case Greater, GreaterEqual:
		return -1
	}
	return 0
}
