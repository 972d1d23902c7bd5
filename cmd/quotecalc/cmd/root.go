// Package cmd provides the CLI commands for quotecalc.
package cmd

import (
	"fmt"

	"seminar_billing/internal/infrastructure/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is overridden at build time with -ldflags "-X".
var Version = "0.1.0"

type globalOptions struct {
	verbose bool
	log     *zap.Logger
}

// NewRootCmd builds the command tree. A fresh tree per call keeps flag state
// out of package globals.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "quotecalc",
		Short: "Price seminar quotes from the command line",
		Long: `quotecalc runs the seminar quote pricing engine on a quote state
document and prints the resulting summary.

Examples:
  quotecalc summary --file quote.json
  quotecalc summary --output json < quote.json`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			l, err := logger.New(level, true)
			if err != nil {
				return fmt.Errorf("init logging: %w", err)
			}
			opts.log = l
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")

	root.AddCommand(newSummaryCmd(opts))
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "quotecalc version %s\n", Version)
		},
	}
}
