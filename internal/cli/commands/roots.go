package commands

import (
	"fmt"
	"math"

	"github.com/calcplot/calcplot/pkg/calculus"
	"github.com/spf13/cobra"
)

// RootOptions holds options for the root command.
type RootOptions struct {
	Initial    float64
	Iterations int
}

// NewRootCommand creates the root-finding command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	cmd := &cobra.Command{
		Use:   "root FUNCTION",
		Short: "Find a root with Newton's method",
		Long: `Run Newton's method for a fixed number of iterations from a starting
point. The engine never errors: a zero derivative along the way yields a
non-finite value, which this command reports as "no root found".`,
		Example: `  # First positive root of cosine
  calcplot root "cos(x)" --initial 1

  # Seed the search near a different root
  calcplot root "x^4-4*x^2" --initial 1.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cctx := NewCommandContext(cmd)

			fns, err := resolveFuncs(args)
			if err != nil {
				return err
			}

			got := cctx.Precision.Roots(fns[0], opts.Initial, opts.Iterations)
			if math.IsNaN(got) || math.IsInf(got, 0) {
				return fmt.Errorf("no root found for %s from %g after %d iterations (non-finite result)",
					args[0], opts.Initial, opts.Iterations)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%g\n", got)
			return nil
		},
	}

	cmd.Flags().Float64Var(&opts.Initial, "initial", 0, "Starting point for the iteration")
	cmd.Flags().IntVar(&opts.Iterations, "iterations", calculus.DefaultRootIterations, "Exact number of Newton steps")

	return cmd
}
