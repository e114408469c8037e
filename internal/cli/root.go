// Package cli provides the command-line interface for calcplot.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/calcplot/calcplot/internal/cli/commands"
	"github.com/calcplot/calcplot/internal/config"
	"github.com/spf13/cobra"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "calcplot",
		Short: "calcplot - numerical calculus in the terminal",
		Long: `calcplot is a numerical-calculus toolkit and terminal function plotter.

It differentiates, integrates, finds roots of and iterates real functions
numerically under one shared precision policy, and rasterizes them onto a
character grid right in the terminal.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := config.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
			ctx := context.WithValue(cmd.Context(), config.LoggerKey(), logger)
			cmd.SetContext(ctx)

			if cfg.Verbose {
				if configFile := config.ConfigFileUsed(); configFile != "" {
					logger.Debug("using config file", "path", configFile)
				}
				logger.Debug("precision policy", "large", cfg.Large)
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Numerical calculus and terminal plotting
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./calcplot.yaml)")
	rootCmd.PersistentFlags().Float64("large", config.DefaultLarge, "Precision knob: reciprocal of the sampling step")
	rootCmd.PersistentFlags().Int("width", 0, "Plot width in cells (0 = terminal width)")
	rootCmd.PersistentFlags().Int("height", 0, "Plot height in cells (0 = terminal height)")
	rootCmd.PersistentFlags().Float64("xmin", config.DefaultMin, "Left edge of the plot domain")
	rootCmd.PersistentFlags().Float64("xmax", config.DefaultMax, "Right edge of the plot domain")
	rootCmd.PersistentFlags().Float64("ymin", config.DefaultMin, "Bottom edge of the plot range")
	rootCmd.PersistentFlags().Float64("ymax", config.DefaultMax, "Top edge of the plot range")
	rootCmd.PersistentFlags().String("glyphs", config.DefaultGlyphs, "Curve glyph cycle, one rune per function")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (auto|plain|json)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "plain", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewFunctionsCommand())
	rootCmd.AddCommand(commands.NewPlotCommand())
	rootCmd.AddCommand(commands.NewTableCommand())
	rootCmd.AddCommand(commands.NewIntegrateCommand())
	rootCmd.AddCommand(commands.NewRootCommand())
	rootCmd.AddCommand(commands.NewLambertWCommand())
	rootCmd.AddCommand(commands.NewIterateCommand())
	rootCmd.AddCommand(commands.NewREPLCommand())
	rootCmd.AddCommand(commands.NewViewCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
