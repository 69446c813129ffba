/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"qaboard/internal/errs"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the current QA health summary",
	RunE: withApp(func(cmd *cobra.Command, svcs *services) error {
		snap := svcs.Dashboard.Load(cmd.Context())

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		stats := snap.Stats.Value
		fmt.Fprintf(w, "services\t%d\n", stats.TotalServices)
		fmt.Fprintf(w, "test cases\t%d\n", stats.TotalTestCases)
		fmt.Fprintf(w, "tests\t%d\n", stats.TotalTests)
		fmt.Fprintf(w, "open bugs\t%d\n", stats.OpenBugs)
		fmt.Fprintf(w, "avg coverage\t%d%%\n", stats.AverageCoverage)

		if alerts := snap.Alerts.Value; len(alerts) > 0 {
			fmt.Fprintln(w, "\nalerts\t")
			for _, a := range alerts {
				fmt.Fprintf(w, "  [%s]\t%s\n", a.Severity, a.Title)
			}
		}
		if degraded := snap.Degraded(); len(degraded) > 0 {
			fmt.Fprintf(w, "\ndegraded sections\t%v\n", degraded)
		}
		if err := w.Flush(); err != nil {
			return errs.Wrap(err, "write stats output")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
