package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// PlotOptions holds options for the plot command.
type PlotOptions struct {
	Derivative bool    // overlay the numerical derivative of each function
	Integral   bool    // overlay the antiderivative of each function
	Anchor     float64 // constant of integration for the antiderivative
}

// NewPlotCommand creates the plot command.
func NewPlotCommand() *cobra.Command {
	opts := &PlotOptions{}
	cmd := &cobra.Command{
		Use:   "plot FUNCTION...",
		Short: "Rasterize functions onto a character grid",
		Long: `Plot one or more named functions in the terminal.

The window defaults to [-10,10] on both axes and the viewport to the
terminal size; both follow the global --xmin/--xmax/--ymin/--ymax and
--width/--height flags. Functions draw in argument order with the
configured glyph cycle, later ones over earlier ones. Samples outside the
range leave gaps in the curve.`,
		Example: `  # Plot a parabola
  calcplot plot x^2

  # Two functions in one window
  calcplot plot "sin(x)" "cos(x)"

  # A function with its derivative overlaid
  calcplot plot x^2 --derivative

  # Zoom the window
  calcplot plot "exp(x)" --xmin -2 --xmax 2 --ymin 0 --ymax 8`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Derivative, "derivative", "d", false, "Overlay the numerical derivative of each function")
	cmd.Flags().BoolVarP(&opts.Integral, "integral", "i", false, "Overlay the antiderivative of each function")
	cmd.Flags().Float64Var(&opts.Anchor, "anchor", 0, "Anchor point where the antiderivative is zero")

	return cmd
}

func runPlot(cmd *cobra.Command, args []string, opts *PlotOptions) error {
	cctx := NewCommandContext(cmd)

	fns, err := resolveFuncs(args)
	if err != nil {
		return err
	}

	g := cctx.NewGrapher()
	var legend []string
	glyphs := 0
	register := func(label string, fn func(float64) float64) {
		glyph := cctx.Glyph(glyphs)
		glyphs++
		g.AddFunction(fn, glyph)
		legend = append(legend, fmt.Sprintf("%c %s", glyph, label))
	}

	for i, fn := range fns {
		register(args[i], fn)
		if opts.Derivative {
			register("d/dx "+args[i], cctx.Precision.Derivative(fn))
		}
		if opts.Integral {
			register("int "+args[i], cctx.Precision.Integral(fn, opts.Anchor))
		}
	}

	buf, err := g.Render()
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprint(out, buf.String())
	_, _ = fmt.Fprintln(out, cctx.styleIf(legendStyle, strings.Join(legend, "   ")))
	return nil
}
