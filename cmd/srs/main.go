package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/srs/internal/cli"
	"github.com/example/srs/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "srs",
		Short:   "srs - spaced repetition for practice problems",
		Version: version.String(),
		Long: `srs tracks practice items (coding problems) and schedules their next
review with a spaced-repetition policy: rate how well you recalled an
item and the interval until its next review grows or resets.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.AddCmd())
	rootCmd.AddCommand(cli.ReviewCmd())
	rootCmd.AddCommand(cli.DueCmd())
	rootCmd.AddCommand(cli.PlanCmd())
	rootCmd.AddCommand(cli.SummaryCmd())
	rootCmd.AddCommand(cli.ListCmd())
	rootCmd.AddCommand(cli.HistoryCmd())
	rootCmd.AddCommand(cli.InitCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
