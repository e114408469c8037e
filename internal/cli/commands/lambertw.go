package commands

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
)

// NewLambertWCommand creates the lambertw command.
func NewLambertWCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lambertw VALUE",
		Short: "Approximate the Lambert W function, the inverse of x*e^x",
		Long: `Approximate W(VALUE) by running Newton's method on x*e^x - VALUE,
seeded at VALUE. Inputs below -1/e have no real solution and report as
"no value found".`,
		Example: `  # W(0) = 0
  calcplot lambertw 0

  # W(e) = 1
  calcplot lambertw 2.71828182845904523`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cctx := NewCommandContext(cmd)

			value, err := parseFloat("VALUE", args[0])
			if err != nil {
				return err
			}

			got := cctx.Precision.LambertW(value)
			if math.IsNaN(got) || math.IsInf(got, 0) {
				return fmt.Errorf("no value found for W(%g) (non-finite result)", value)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%g\n", got)
			return nil
		},
	}
}
