package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"q.log/exactsimplex/instance"
	"q.log/exactsimplex/instance/mps"
	"q.log/exactsimplex/model"
	"q.log/exactsimplex/render"
	"q.log/exactsimplex/simplex"
)

// DefaultMaxSteps is the step budget when neither the flag nor the problem
// file sets one.
const DefaultMaxSteps = 100

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	*RootOptions
	MaxSteps int
	Dual     bool
	Trace    bool
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "solve <problem-file>",
		Short: "Solve a YAML or MPS problem",
		Long: `Standardize and solve a linear program.

Files ending in .yaml or .yml are read as problem files; anything else is
read as fixed MPS through GLPK. The objective is maximized.

Example:
  exactsimplex solve diet.yaml
  exactsimplex solve --dual --trace diet.yaml
  exactsimplex solve --max-steps 50 --format json afiro.mps`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.MaxSteps, "max-steps", 0, fmt.Sprintf("pivot budget (default %d, or max_steps from the file)", DefaultMaxSteps))
	cmd.Flags().BoolVar(&opts.Dual, "dual", false, "solve the dual problem instead")
	cmd.Flags().BoolVar(&opts.Trace, "trace", false, "print the tableau after every pivot")

	return cmd
}

func load(path string) (*instance.Instance, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		p, err := instance.LoadProblem(path)
		if err != nil {
			return nil, err
		}
		return p.Instance()
	default:
		return mps.NewReader(path).ConstructInstance()
	}
}

func runSolve(opts *SolveOptions, path string, cmd *cobra.Command) error {
	runID := newRunID()
	logger := opts.logger(runID)

	inst, err := load(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	logger.Info("problem loaded", "name", inst.Name, "constraints", inst.Builder.Len())

	b, problem := inst.Builder, "primal"
	if opts.Dual {
		if b, err = b.Dual(); err != nil {
			return fmt.Errorf("dual of %s: %w", inst.Name, err)
		}
		problem = "dual"
	}

	maxSteps := DefaultMaxSteps
	switch {
	case opts.MaxSteps > 0:
		maxSteps = opts.MaxSteps
	case inst.MaxSteps > 0:
		maxSteps = inst.MaxSteps
	}

	res, err := solve(b, maxSteps, opts.Trace, cmd.OutOrStdout(), simplex.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("solve %s: %w", inst.Name, err)
	}
	logger.Info("solved", "status", res.Status.String(), "steps", res.Steps)

	out := cmd.OutOrStdout()
	if err := writeReport(out, opts.Format, newReport(runID, inst.Name, problem, res)); err != nil {
		return err
	}
	if opts.Verbose && opts.Format == "text" {
		return res.Tableau.Print(out)
	}
	return nil
}

// solve standardizes b and runs the engine, rendering every tableau to w
// when trace is set. A failed trace write fails the solve.
func solve(b *model.Builder, maxSteps int, trace bool, w io.Writer, opts ...simplex.Option) (*simplex.Result, error) {
	tab, err := b.Standardize()
	if err != nil {
		return nil, err
	}
	var tr *tracer
	if trace {
		tr = &tracer{w: w}
		opts = append(opts, simplex.WithObserver(tr.observe))
	}
	res, err := simplex.Solve(tab, maxSteps, opts...)
	if err != nil {
		return nil, err
	}
	if tr != nil && tr.err != nil {
		return nil, fmt.Errorf("trace: %w", tr.err)
	}
	return res, nil
}

// tracer prints one line per pivot followed by the rendered tableau. It
// stops writing after the first error.
type tracer struct {
	w   io.Writer
	err error
}

func (tr *tracer) observe(step simplex.Step, t *model.Tableau) {
	if tr.err != nil {
		return
	}
	if step.Index > 0 {
		if _, tr.err = fmt.Fprintf(tr.w, "step %d (%s): x%d enters, x%d leaves\n",
			step.Index, step.Kind, step.Entering+1, step.Leaving+1); tr.err != nil {
			return
		}
	}
	tr.err = render.Tableau(tr.w, t)
}
