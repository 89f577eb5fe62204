package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"q.log/exactsimplex/simplex"
)

// Report is the printed outcome of one solve.
type Report struct {
	RunID    string   `json:"run_id"`
	Name     string   `json:"name"`
	Problem  string   `json:"problem"`
	Status   string   `json:"status"`
	Steps    int      `json:"steps"`
	Mixed    bool     `json:"mixed,omitempty"`
	Value    string   `json:"value"`
	Solution []string `json:"solution"`
	Basis    []int    `json:"basis"`
}

func newReport(runID, name, problem string, res *simplex.Result) *Report {
	sol := res.Solution()
	values := make([]string, len(sol))
	for i, v := range sol {
		values[i] = v.String()
	}
	return &Report{
		RunID:    runID,
		Name:     name,
		Problem:  problem,
		Status:   res.Status.String(),
		Steps:    res.Steps,
		Mixed:    res.Mixed,
		Value:    res.Value().String(),
		Solution: values,
		Basis:    res.Basis,
	}
}

func writeReport(w io.Writer, format string, r *Report) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "name:     %s (%s)\n", r.Name, r.Problem)
	fmt.Fprintf(&b, "status:   %s\n", r.Status)
	fmt.Fprintf(&b, "steps:    %d\n", r.Steps)
	if r.Mixed {
		fmt.Fprintf(&b, "warning:  tableau was neither primal nor dual feasible\n")
	}
	fmt.Fprintf(&b, "value:    %s\n", r.Value)
	for i, v := range r.Solution {
		fmt.Fprintf(&b, "x%-7d  %s\n", i+1, v)
	}
	if err := simplex.PrintBasis(&b, r.Basis); err != nil {
		return err
	}
	_, err := io.WriteString(w, b.String())
	return err
}
