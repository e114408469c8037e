package commands

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Output modes. Auto picks styled on a capable terminal and plain
// everywhere else; json is machine-readable where a command supports it.
const (
	ModeAuto   = "auto"
	ModeStyled = "styled"
	ModePlain  = "plain"
	ModeJSON   = "json"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	legendStyle = lipgloss.NewStyle().Faint(true)
	statusStyle = lipgloss.NewStyle().Reverse(true).Padding(0, 1)
)

// Mode resolves the effective output mode for this invocation.
func (c *CommandContext) Mode() string {
	switch c.Cfg.Output {
	case "", ModeAuto:
		if termenv.NewOutput(os.Stdout).Profile == termenv.Ascii {
			return ModePlain
		}
		return ModeStyled
	default:
		return c.Cfg.Output
	}
}

// styleIf applies style only in styled mode.
func (c *CommandContext) styleIf(style lipgloss.Style, s string) string {
	if c.Mode() != ModeStyled {
		return s
	}
	return style.Render(s)
}
