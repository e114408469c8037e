package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewIntegrateCommand creates the integrate command.
func NewIntegrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "integrate FUNCTION LOWER UPPER",
		Short: "Compute a definite integral by fixed-step Riemann summation",
		Long: `Approximate the definite integral of a function with a left Riemann sum
whose step is the precision policy's sampling step.

The accumulation grid runs from LOWER up to |UPPER|; a negative UPPER
negates the sum, consistent with orientation reversal. The step is fixed
by contract, so a wide interval under a fine precision knob takes
proportionally longer.`,
		Example: `  # Area under the identity line
  calcplot integrate x 0 4

  # Reversed orientation flips the sign
  calcplot integrate x 0 -4

  # Finer precision
  calcplot integrate "sin(x)" 0 3.14159 --large 1000000`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cctx := NewCommandContext(cmd)

			fns, err := resolveFuncs(args[:1])
			if err != nil {
				return err
			}
			lower, err := parseFloat("LOWER", args[1])
			if err != nil {
				return err
			}
			upper, err := parseFloat("UPPER", args[2])
			if err != nil {
				return err
			}

			result := cctx.Precision.DefiniteIntegral(fns[0], lower, upper)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%g\n", result)
			return nil
		},
	}
}

func parseFloat(what, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", what, s, err)
	}
	return v, nil
}
