package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"q.log/exactsimplex/model"
	"q.log/exactsimplex/simplex"
)

// ExampleSteps is the budget used by the built-in examples.
const ExampleSteps = 10

type example struct {
	name    string
	builder func() (*model.Builder, error)
}

func dietExample() (*model.Builder, error) {
	b := model.NewBuilder()
	b.AddConstraint([]int64{-2, -2, -1}, -3, model.LessEqual)
	b.AddConstraint([]int64{-3, -1, -3}, -4, model.LessEqual)
	obj, err := model.RowFromInts(-180, -120, -150, 0)
	if err != nil {
		return nil, err
	}
	b.SetObjective(obj)
	return b, nil
}

func examples() []example {
	return []example{
		{
			name: "dual",
			builder: func() (*model.Builder, error) {
				b, err := dietExample()
				if err != nil {
					return nil, err
				}
				return b.Dual()
			},
		},
		{name: "primal", builder: dietExample},
	}
}

// NewExamplesCommand creates the examples command.
func NewExamplesCommand(rootOpts *RootOptions) *cobra.Command {
	trace := true
	cmd := &cobra.Command{
		Use:   "examples",
		Short: "Run the built-in diet problem and its dual",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := newRunID()
			logger := rootOpts.logger(runID)
			out := cmd.OutOrStdout()
			for _, ex := range examples() {
				b, err := ex.builder()
				if err != nil {
					return err
				}
				if rootOpts.Format == "text" {
					fmt.Fprintf(out, "== %s simplex ==\n", ex.name)
				}
				res, err := solve(b, ExampleSteps, trace && rootOpts.Format == "text", out, simplex.WithLogger(logger))
				if err != nil {
					return fmt.Errorf("%s example: %w", ex.name, err)
				}
				if err := writeReport(out, rootOpts.Format, newReport(runID, "diet", ex.name, res)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", true, "print the tableau after every pivot")
	return cmd
}
