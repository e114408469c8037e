package commands

import (
	"fmt"
	"strings"

	"github.com/calcplot/calcplot/pkg/calculus"
	"github.com/calcplot/calcplot/pkg/graph"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// NewViewCommand creates the view command.
func NewViewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view FUNCTION...",
		Short: "Explore functions interactively (pan and zoom)",
		Long: `Open a full-screen viewer for the named functions.

Arrow keys pan the window, +/- zoom around its center, r resets to the
configured window, q quits. The plot re-rasterizes on every terminal
resize.`,
		Example: `  # Pan around a parabola
  calcplot view x^2

  # Compare two oscillations
  calcplot view "sin(x)" "x*sin(x)"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cctx := NewCommandContext(cmd)
			fns, err := resolveFuncs(args)
			if err != nil {
				return err
			}

			m := newViewModel(cctx, args, fns)
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()))
			_, err = p.Run()
			return err
		},
	}
}

// panFraction and zoomFraction are the per-keystroke window adjustments,
// as a share of the current span.
const (
	panFraction  = 0.1
	zoomFraction = 0.2
)

type viewKeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	ZoomIn  key.Binding
	ZoomOut key.Binding
	Reset   key.Binding
	Quit    key.Binding
}

func defaultViewKeyMap() viewKeyMap {
	return viewKeyMap{
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "pan left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "pan right")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "pan up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "pan down")),
		ZoomIn:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "zoom out")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset window")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k viewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.ZoomIn, k.ZoomOut, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k viewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type viewModel struct {
	names []string
	fns   []calculus.Func

	// Current and configured (reset target) window.
	xMin, xMax, yMin, yMax float64
	home                   [4]float64

	// Viewport in cells; zero until the first WindowSizeMsg.
	width, height int
	glyphs        string

	keys viewKeyMap
	help help.Model
}

func newViewModel(cctx *CommandContext, names []string, fns []calculus.Func) viewModel {
	cfg := cctx.Cfg
	return viewModel{
		names:  names,
		fns:    fns,
		xMin:   cfg.XMin,
		xMax:   cfg.XMax,
		yMin:   cfg.YMin,
		yMax:   cfg.YMax,
		home:   [4]float64{cfg.XMin, cfg.XMax, cfg.YMin, cfg.YMax},
		glyphs: cfg.Glyphs,
		keys:   defaultViewKeyMap(),
		help:   help.New(),
	}
}

// Init implements tea.Model.
func (m viewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height - statusLines
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		xSpan := m.xMax - m.xMin
		ySpan := m.yMax - m.yMin
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Left):
			m.xMin -= xSpan * panFraction
			m.xMax -= xSpan * panFraction
		case key.Matches(msg, m.keys.Right):
			m.xMin += xSpan * panFraction
			m.xMax += xSpan * panFraction
		case key.Matches(msg, m.keys.Up):
			m.yMin += ySpan * panFraction
			m.yMax += ySpan * panFraction
		case key.Matches(msg, m.keys.Down):
			m.yMin -= ySpan * panFraction
			m.yMax -= ySpan * panFraction
		case key.Matches(msg, m.keys.ZoomIn):
			m.xMin += xSpan * zoomFraction / 2
			m.xMax -= xSpan * zoomFraction / 2
			m.yMin += ySpan * zoomFraction / 2
			m.yMax -= ySpan * zoomFraction / 2
		case key.Matches(msg, m.keys.ZoomOut):
			m.xMin -= xSpan * zoomFraction / 2
			m.xMax += xSpan * zoomFraction / 2
			m.yMin -= ySpan * zoomFraction / 2
			m.yMax += ySpan * zoomFraction / 2
		case key.Matches(msg, m.keys.Reset):
			m.xMin, m.xMax, m.yMin, m.yMax = m.home[0], m.home[1], m.home[2], m.home[3]
		}
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m viewModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "sizing..."
	}

	g := graph.New()
	g.SetOutputDimensions(m.width, m.height)
	g.SetDomain(m.xMin, m.xMax)
	g.SetRange(m.yMin, m.yMax)
	glyphs := []rune(m.glyphs)
	for i, fn := range m.fns {
		g.AddFunction(fn, glyphs[i%len(glyphs)])
	}

	buf, err := g.Render()
	if err != nil {
		return fmt.Sprintf("render failed: %v\n", err)
	}

	status := statusStyle.Render(fmt.Sprintf("%s  x:[%.3g,%.3g] y:[%.3g,%.3g]",
		strings.Join(m.names, " "), m.xMin, m.xMax, m.yMin, m.yMax))
	return buf.String() + status + "\n" + m.help.View(m.keys)
}
