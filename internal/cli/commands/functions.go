package commands

import (
	"encoding/json"

	"github.com/calcplot/calcplot/internal/funcs"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewFunctionsCommand creates the functions command.
func NewFunctionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "functions",
		Aliases: []string{"funcs"},
		Short:   "List the named functions available to plot and evaluate",
		Long: `List every function name the other commands accept.

The library itself treats functions as opaque values; this registry is
the bridge between command-line names and function values.`,
		Example: `  # List all functions
  calcplot functions

  # As JSON
  calcplot functions -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cctx := NewCommandContext(cmd)

			if cctx.Mode() == ModeJSON {
				type entry struct {
					Name        string `json:"name"`
					Description string `json:"description"`
				}
				entries := make([]entry, 0, len(funcs.All()))
				for _, f := range funcs.All() {
					entries = append(entries, entry{Name: f.Name, Description: f.Desc})
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Function", "Description"})
			for _, f := range funcs.All() {
				t.AppendRow(table.Row{f.Name, f.Desc})
			}
			t.Render()
			return nil
		},
	}
}
