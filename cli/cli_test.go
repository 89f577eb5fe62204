package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"q.log/exactsimplex/simplex"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

const dietFile = "../instance/testdata/diet.yaml"

func TestSolveText(t *testing.T) {
	out, err := run(t, "solve", dietFile)
	require.NoError(t, err)
	assert.Contains(t, out, "name:     diet (primal)\n")
	assert.Contains(t, out, "status:   optimal\n")
	assert.Contains(t, out, "steps:    3\n")
	assert.Contains(t, out, "value:    -255\n")
	assert.Contains(t, out, "x1        +5/4\n")
	assert.Contains(t, out, "x2        +1/4\n")
	assert.Contains(t, out, "x3        0\n")
	assert.Contains(t, out, "B = [x1 x2]\n")
}

func TestSolveDualJSON(t *testing.T) {
	out, err := run(t, "solve", "--dual", "--format", "json", dietFile)
	require.NoError(t, err)

	var r Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "dual", r.Problem)
	assert.Equal(t, "optimal", r.Status)
	assert.Equal(t, "+255", r.Value)
	assert.Equal(t, []string{"+45", "+30"}, r.Solution)
	assert.Equal(t, []int{0, 4, 1}, r.Basis)

	id, err := uuid.Parse(r.RunID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestSolveTrace(t *testing.T) {
	out, err := run(t, "solve", "--trace", dietFile)
	require.NoError(t, err)
	assert.Contains(t, out, "step 1 (dual): x3 enters, x5 leaves\n")
	assert.Contains(t, out, "step 3 (dual): x2 enters, x3 leaves\n")
	assert.Equal(t, 4, strings.Count(out, "| x1"), "one table before the loop and one per pivot")
}

func TestSolveVerbosePrintsFinalTableau(t *testing.T) {
	out, err := run(t, "solve", "-v", dietFile)
	require.NoError(t, err)
	assert.Contains(t, out, "T = ")
	assert.Contains(t, out, "B = [0 1]\n")

	out, err = run(t, "solve", "-v", "--format", "json", dietFile)
	require.NoError(t, err)
	assert.NotContains(t, out, "T = ")
}

var errClosed = errors.New("writer closed")

// failingWriter accepts limit bytes and then fails every write.
type failingWriter struct{ limit int }

func (f *failingWriter) Write(p []byte) (int, error) {
	if len(p) > f.limit {
		n := f.limit
		f.limit = 0
		return n, errClosed
	}
	f.limit -= len(p)
	return len(p), nil
}

func TestSolveTraceWriteError(t *testing.T) {
	quiet := simplex.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	for _, limit := range []int{0, 300} {
		b, err := dietExample()
		require.NoError(t, err)
		_, err = solve(b, 10, true, &failingWriter{limit: limit}, quiet)
		assert.ErrorIs(t, err, errClosed, "limit %d", limit)
	}

	b, err := dietExample()
	require.NoError(t, err)
	res, err := solve(b, 10, false, &failingWriter{}, quiet)
	require.NoError(t, err)
	assert.Equal(t, simplex.Optimal, res.Status)
}

func TestSolveStepBudgetFlag(t *testing.T) {
	out, err := run(t, "solve", "--max-steps", "1", dietFile)
	require.NoError(t, err)
	assert.Contains(t, out, "status:   step-limit\n")
	assert.Contains(t, out, "steps:    1\n")
}

func TestSolveErrors(t *testing.T) {
	_, err := run(t, "solve", "--format", "xml", dietFile)
	assert.ErrorContains(t, err, "invalid format")

	_, err = run(t, "solve", "missing.yaml")
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("objective: [1, 0]\n"), 0o644))
	_, err = run(t, "solve", bad)
	assert.Error(t, err)

	_, err = run(t, "solve")
	assert.Error(t, err)
}

func TestExamples(t *testing.T) {
	out, err := run(t, "examples")
	require.NoError(t, err)
	dual := strings.Index(out, "== dual simplex ==")
	primal := strings.Index(out, "== primal simplex ==")
	require.GreaterOrEqual(t, dual, 0)
	require.Greater(t, primal, dual)
	assert.Contains(t, out[dual:primal], "value:    +255\n")
	assert.Contains(t, out[primal:], "value:    -255\n")
	assert.Equal(t, 2, strings.Count(out, "status:   optimal\n"))
}

func TestExamplesJSON(t *testing.T) {
	out, err := run(t, "examples", "--format", "json")
	require.NoError(t, err)
	dec := json.NewDecoder(strings.NewReader(out))
	var reports []Report
	for dec.More() {
		var r Report
		require.NoError(t, dec.Decode(&r))
		reports = append(reports, r)
	}
	require.Len(t, reports, 2)
	assert.Equal(t, "dual", reports[0].Problem)
	assert.Equal(t, "primal", reports[1].Problem)
	assert.Equal(t, reports[0].RunID, reports[1].RunID)
}
