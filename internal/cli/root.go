// Package cli provides the Cobra command structure for tmplc's demo CLI.
package cli

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root tmplc command with its subcommands.
func NewRootCommand() *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "tmplc",
		Short: "Parse template source and report its structure and diagnostics",
		Long: `tmplc parses HTML-like template source into an AST and reports what it
found: the element tree, and any diagnostics raised along the way.

It exercises the tmplc parser only — it does not compile templates into
render functions.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				log.SetLevel(log.DebugLevel)
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newParseCommand())

	return rootCmd
}

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
}
