package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "timesheet",
	Short: "Weekly timesheet entry, totals and exports",
	Long: `timesheet runs a weekly timesheet service: engineers log per-day
entries against a fixed project and service catalog, see computed totals,
and export each week as CSV or an email draft. Entries are stored in
PostgreSQL and autosaved to an on-disk JSON snapshot.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
}
