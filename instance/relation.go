package instance

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
	"q.log/exactsimplex/model"
)

// ParseRelation accepts the ASCII spellings (<, <=, =<, >, >=, =>, =, ==),
// the symbols ≤ and ≥, and their full-width forms, which NFKC folds to ASCII.
func ParseRelation(s string) (model.Relation, error) {
	switch norm.NFKC.String(strings.TrimSpace(s)) {
	case "<":
		return model.Less, nil
	case "<=", "=<", "≤", "≦":
		return model.LessEqual, nil
	case ">":
		return model.Greater, nil
	case ">=", "=>", "≥", "≧":
		return model.GreaterEqual, nil
	case "=", "==":
		return model.Equal, nil
	}
	return 0, fmt.Errorf("%q: %w", s, model.ErrUnknownRelation)
}
