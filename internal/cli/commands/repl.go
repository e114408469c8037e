package commands

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/calcplot/calcplot/internal/funcs"
	"github.com/calcplot/calcplot/pkg/calculus"
	"github.com/calcplot/calcplot/pkg/graph"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive calculus session",
		Long: `Start an interactive session with a persistent plot window.

Functions added with 'add' accumulate until 'clear'; 'plot' renders the
current set, adding any names given first. Engine operations
(integrate, root, lambertw, iterate) run against the same precision
policy as the one-shot commands. Type 'help' inside the session for the
command list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd)
		},
	}
}

// replSession holds the mutable state of one interactive session.
type replSession struct {
	cctx    *CommandContext
	grapher *graph.Grapher
	legend  []string
	glyphs  int
}

func runREPL(cmd *cobra.Command) error {
	cctx := NewCommandContext(cmd)
	s := &replSession{cctx: cctx, grapher: cctx.NewGrapher()}

	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".calcplot_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "calcplot> ",
		HistoryFile:     historyFile,
		AutoComplete:    replCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, cctx.styleIf(titleStyle, "calcplot interactive session"))
	_, _ = fmt.Fprintln(out, "Type 'help' for commands, 'quit' to exit")
	_, _ = fmt.Fprintln(out)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			break
		}

		if err := s.eval(out, fields[0], fields[1:]); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
		}
	}
	return nil
}

func replCompleter() readline.AutoCompleter {
	names := make([]readline.PrefixCompleterInterface, 0, len(funcs.Names()))
	for _, name := range funcs.Names() {
		names = append(names, readline.PcItem(name))
	}
	return readline.NewPrefixCompleter(
		readline.PcItem("plot", names...),
		readline.PcItem("add", names...),
		readline.PcItem("clear"),
		readline.PcItem("domain"),
		readline.PcItem("range"),
		readline.PcItem("size"),
		readline.PcItem("integrate", names...),
		readline.PcItem("root", names...),
		readline.PcItem("lambertw"),
		readline.PcItem("iterate", names...),
		readline.PcItem("funcs"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

func (s *replSession) eval(out io.Writer, cmd string, args []string) error {
	switch cmd {
	case "help":
		s.printHelp(out)
		return nil
	case "funcs":
		_, _ = fmt.Fprintln(out, strings.Join(funcs.Names(), "  "))
		return nil
	case "add":
		return s.add(args)
	case "clear":
		s.grapher.ClearFunctions()
		s.legend = nil
		s.glyphs = 0
		return nil
	case "plot":
		return s.plot(out, args)
	case "domain":
		return s.window(args, s.grapher.SetDomain)
	case "range":
		return s.window(args, s.grapher.SetRange)
	case "size":
		return s.size(args)
	case "integrate":
		return s.integrate(out, args)
	case "root":
		return s.root(out, args)
	case "lambertw":
		return s.lambertW(out, args)
	case "iterate":
		return s.iterate(out, args)
	default:
		return fmt.Errorf("unknown command %q (try 'help')", cmd)
	}
}

func (s *replSession) printHelp(out io.Writer) {
	_, _ = fmt.Fprint(out, `Commands:
  add FN...             add functions to the plot set
  plot [FN...]          add any named functions, then render the set
  clear                 empty the plot set
  domain MIN MAX        set the horizontal window
  range MIN MAX         set the vertical window
  size WIDTH HEIGHT     set the viewport in cells
  integrate FN A B      definite integral of FN from A to B
  root FN [INITIAL]     Newton root of FN
  lambertw VALUE        Lambert W approximation
  iterate FN TIMES VAL  repeated application
  funcs                 list available function names
  quit                  leave the session
`)
}

func (s *replSession) add(names []string) error {
	if len(names) == 0 {
		return fmt.Errorf("usage: add FN...")
	}
	fns, err := resolveFuncs(names)
	if err != nil {
		return err
	}
	for i, fn := range fns {
		glyph := s.cctx.Glyph(s.glyphs)
		s.glyphs++
		s.grapher.AddFunction(fn, glyph)
		s.legend = append(s.legend, fmt.Sprintf("%c %s", glyph, names[i]))
	}
	return nil
}

func (s *replSession) plot(out io.Writer, names []string) error {
	if len(names) > 0 {
		if err := s.add(names); err != nil {
			return err
		}
	}

	buf, err := s.grapher.Render()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(out, buf.String())
	if len(s.legend) > 0 {
		_, _ = fmt.Fprintln(out, s.cctx.styleIf(legendStyle, strings.Join(s.legend, "   ")))
	}
	return nil
}

func (s *replSession) window(args []string, set func(from, to float64)) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: domain|range MIN MAX")
	}
	from, err := parseFloat("MIN", args[0])
	if err != nil {
		return err
	}
	to, err := parseFloat("MAX", args[1])
	if err != nil {
		return err
	}
	set(from, to)
	return nil
}

func (s *replSession) size(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: size WIDTH HEIGHT")
	}
	var width, height int
	if _, err := fmt.Sscanf(args[0]+" "+args[1], "%d %d", &width, &height); err != nil {
		return fmt.Errorf("invalid size %q %q: %w", args[0], args[1], err)
	}
	s.grapher.SetOutputDimensions(width, height)
	return nil
}

func (s *replSession) integrate(out io.Writer, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: integrate FN A B")
	}
	fns, err := resolveFuncs(args[:1])
	if err != nil {
		return err
	}
	lower, err := parseFloat("A", args[1])
	if err != nil {
		return err
	}
	upper, err := parseFloat("B", args[2])
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "%g\n", s.cctx.Precision.DefiniteIntegral(fns[0], lower, upper))
	return nil
}

func (s *replSession) root(out io.Writer, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: root FN [INITIAL]")
	}
	fns, err := resolveFuncs(args[:1])
	if err != nil {
		return err
	}
	initial := 0.0
	if len(args) == 2 {
		if initial, err = parseFloat("INITIAL", args[1]); err != nil {
			return err
		}
	}
	got := s.cctx.Precision.Roots(fns[0], initial, calculus.DefaultRootIterations)
	if math.IsNaN(got) || math.IsInf(got, 0) {
		return fmt.Errorf("no root found from %g", initial)
	}
	_, _ = fmt.Fprintf(out, "%g\n", got)
	return nil
}

func (s *replSession) lambertW(out io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: lambertw VALUE")
	}
	value, err := parseFloat("VALUE", args[0])
	if err != nil {
		return err
	}
	got := s.cctx.Precision.LambertW(value)
	if math.IsNaN(got) || math.IsInf(got, 0) {
		return fmt.Errorf("no value found for W(%g)", value)
	}
	_, _ = fmt.Fprintf(out, "%g\n", got)
	return nil
}

func (s *replSession) iterate(out io.Writer, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: iterate FN TIMES VAL")
	}
	fns, err := resolveFuncs(args[:1])
	if err != nil {
		return err
	}
	times, err := parseFloat("TIMES", args[1])
	if err != nil {
		return err
	}
	value, err := parseFloat("VAL", args[2])
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "%g\n", calculus.Iterate(fns[0], times, value))
	return nil
}
