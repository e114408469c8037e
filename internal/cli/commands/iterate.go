package commands

import (
	"fmt"

	"github.com/calcplot/calcplot/pkg/calculus"
	"github.com/spf13/cobra"
)

// NewIterateCommand creates the iterate command.
func NewIterateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "iterate FUNCTION TIMES VALUE",
		Short: "Apply a function to a value repeatedly",
		Long: `Compute f(f(...f(VALUE))), applying FUNCTION TIMES times.

Only integer-valued TIMES are meaningful; a fractional count decrements
by one per application until it drops to or below zero, so it behaves
like its ceiling.`,
		Example: `  # Square 2 three times
  calcplot iterate x^2 3 2

  # Iterating cos from anywhere approaches its fixed point
  calcplot iterate "cos(x)" 50 0`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			fns, err := resolveFuncs(args[:1])
			if err != nil {
				return err
			}
			times, err := parseFloat("TIMES", args[1])
			if err != nil {
				return err
			}
			value, err := parseFloat("VALUE", args[2])
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%g\n", calculus.Iterate(fns[0], times, value))
			return nil
		},
	}
}
