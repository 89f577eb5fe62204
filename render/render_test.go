package render

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"q.log/exactsimplex/model"
	"q.log/exactsimplex/simplex"
)

func build(t *testing.T, objective []int64, add func(b *model.Builder)) *model.Tableau {
	t.Helper()
	b := model.NewBuilder()
	add(b)
	obj, err := model.RowFromInts(objective...)
	require.NoError(t, err)
	b.SetObjective(obj)
	tab, err := b.Standardize()
	require.NoError(t, err)
	return tab
}

func assertGolden(t *testing.T, name string, tab *model.Tableau) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Tableau(&buf, tab))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, buf.Bytes())
}

func TestTableauInitial(t *testing.T) {
	tab := build(t, []int64{1, 2, 0}, func(b *model.Builder) {
		b.AddConstraint([]int64{-2, 1}, 2, model.LessEqual)
		b.AddConstraint([]int64{-1, 2}, 5, model.LessEqual)
		b.AddConstraint([]int64{1, -4}, 5, model.LessEqual)
	})
	assertGolden(t, "initial_tableau", tab)
}

func TestTableauAfterSolve(t *testing.T) {
	tab := build(t, []int64{3, 5, 0}, func(b *model.Builder) {
		b.AddConstraint([]int64{1, 0}, 4, model.LessEqual)
		b.AddConstraint([]int64{0, 2}, 12, model.LessEqual)
		b.AddConstraint([]int64{3, 2}, 18, model.LessEqual)
	})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	res, err := simplex.Solve(tab, 10, simplex.WithLogger(logger))
	require.NoError(t, err)
	require.Equal(t, simplex.Optimal, res.Status)
	assertGolden(t, "optimal_tableau", res.Tableau)
}

func TestTableauStrict(t *testing.T) {
	tab := build(t, []int64{1, 1, 0}, func(b *model.Builder) {
		b.AddConstraint([]int64{1, 1}, 5, model.Less)
		b.AddConstraint([]int64{1, 0}, 1, model.Greater)
	})
	assertGolden(t, "strict_tableau", tab)
}

func TestTableRagged(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Table(&buf, nil, [][]string{{"a", "bb"}, {"ccc"}}, nil))
	want := "" +
		"+-----+----+\n" +
		"| a   | bb |\n" +
		"| ccc |    |\n" +
		"+-----+----+\n"
	assert.Equal(t, want, buf.String())
}

func TestTableFooter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Table(&buf, []string{"x1", "-z"}, [][]string{{"+1", "+4"}}, []string{"-2", "+1/2"}))
	want := "" +
		"+----+------+\n" +
		"| x1 | -z   |\n" +
		"+----+------+\n" +
		"| +1 | +4   |\n" +
		"+----+------+\n" +
		"| -2 | +1/2 |\n" +
		"+----+------+\n"
	assert.Equal(t, want, buf.String())
}
