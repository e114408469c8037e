package commands

import (
	"log/slog"
	"os"

	"github.com/calcplot/calcplot/internal/config"
	"github.com/calcplot/calcplot/internal/funcs"
	"github.com/calcplot/calcplot/pkg/calculus"
	"github.com/calcplot/calcplot/pkg/graph"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// statusLines is how many terminal rows a full-size plot leaves free for
// the legend and the shell prompt.
const statusLines = 2

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg       *config.Config
	Logger    *slog.Logger
	Precision calculus.Precision
}

// NewCommandContext resolves config, logger and the precision policy for
// a command invocation.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	return &CommandContext{
		Cfg:       cfg,
		Logger:    config.GetLogger(cmd.Context()),
		Precision: calculus.New(cfg.Large),
	}
}

// getConfig returns the loaded configuration, falling back to defaults
// when a command runs outside the root command (tests, mostly).
func getConfig() *config.Config {
	if cfg := config.GetCurrent(); cfg != nil {
		return cfg
	}
	return &config.Config{
		Large:  config.DefaultLarge,
		XMin:   config.DefaultMin,
		XMax:   config.DefaultMax,
		YMin:   config.DefaultMin,
		YMax:   config.DefaultMax,
		Glyphs: config.DefaultGlyphs,
		Output: config.DefaultOutput,
	}
}

// Viewport resolves the plot size in cells: configured values win, then
// the live terminal size, then the grapher defaults.
func (c *CommandContext) Viewport() (width, height int) {
	width, height = c.Cfg.Width, c.Cfg.Height
	if width > 0 && height > 0 {
		return width, height
	}

	tw, th, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		tw, th = graph.DefaultWidth, graph.DefaultHeight
	}
	if width == 0 {
		width = tw
	}
	if height == 0 {
		height = th - statusLines
		if height < 1 {
			height = th
		}
	}
	return width, height
}

// NewGrapher builds a Grapher from the configured window and viewport.
func (c *CommandContext) NewGrapher() *graph.Grapher {
	g := graph.New()
	w, h := c.Viewport()
	g.SetOutputDimensions(w, h)
	g.SetDomain(c.Cfg.XMin, c.Cfg.XMax)
	g.SetRange(c.Cfg.YMin, c.Cfg.YMax)
	return g
}

// Glyph returns the i-th rune of the configured glyph cycle.
func (c *CommandContext) Glyph(i int) rune {
	runes := []rune(c.Cfg.Glyphs)
	if len(runes) == 0 {
		return graph.DefaultGlyph
	}
	return runes[i%len(runes)]
}

// resolveFuncs looks up every named function, in order.
func resolveFuncs(names []string) ([]calculus.Func, error) {
	fns := make([]calculus.Func, 0, len(names))
	for _, name := range names {
		fn, err := funcs.Get(name)
		if err != nil {
			return nil, err
		}
		fns = append(fns, fn)
	}
	return fns, nil
}
