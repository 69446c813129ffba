/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"qaboard/internal/bootstrap/logging"
	"qaboard/internal/errs"
)

var (
	exportEntity string
	exportOut    string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export one entity to an xlsx workbook",
	RunE: withApp(func(cmd *cobra.Command, svcs *services) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		f, err := svcs.Exchange.Export(ctx, exportEntity)
		if err != nil {
			return errs.Wrapf(err, "export %s", exportEntity)
		}
		defer f.Close()

		out := exportOut
		if out == "" {
			out = exportEntity + ".xlsx"
		}
		if err := f.SaveAs(out); err != nil {
			return errs.Wrapf(err, "save workbook %s", out)
		}

		logging.Info(ctx, "export finished", slog.String("entity", exportEntity), slog.String("file", out))
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "exported %s to %s\n", exportEntity, out); err != nil {
			return errs.Wrap(err, "write export output")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportEntity, "entity", "", "Entity to export (services, test-cases, tests, bugs, improvements, performance)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file path (defaults to <entity>.xlsx)")
	_ = exportCmd.MarkFlagRequired("entity")
}
