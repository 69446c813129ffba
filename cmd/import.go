/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"qaboard/internal/bootstrap/logging"
	"qaboard/internal/errs"
)

var (
	importEntity string
	importFile   string
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import one entity from an xlsx workbook",
	RunE: withApp(func(cmd *cobra.Command, svcs *services) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		f, err := os.Open(importFile)
		if err != nil {
			return errs.Wrapf(err, "open workbook %s", importFile)
		}
		defer f.Close()

		result, err := svcs.Exchange.Import(ctx, importEntity, f)
		if err != nil {
			return errs.Wrapf(err, "import %s", importEntity)
		}

		logging.Info(ctx, "import finished",
			slog.String("entity", importEntity),
			slog.Int("inserted", result.Inserted),
			slog.Int("rejected", len(result.Errors)),
		)

		out := cmd.OutOrStdout()
		if _, err := fmt.Fprintf(out, "imported %d rows into %s\n", result.Inserted, importEntity); err != nil {
			return errs.Wrap(err, "write import output")
		}
		for _, rowErr := range result.Errors {
			if _, err := fmt.Fprintf(out, "row %d: %s\n", rowErr.Row, rowErr.Message); err != nil {
				return errs.Wrap(err, "write import output")
			}
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVar(&importEntity, "entity", "", "Entity to import (services, test-cases, tests, bugs, improvements, performance)")
	importCmd.Flags().StringVar(&importFile, "file", "", "Workbook to read")
	_ = importCmd.MarkFlagRequired("entity")
	_ = importCmd.MarkFlagRequired("file")
}
