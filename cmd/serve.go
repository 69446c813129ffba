/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"qaboard/internal/bootstrap/logging"
	"qaboard/internal/errs"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE:  withApp(runServe),
}

// runServe migrates the schema and serves until interrupted; a fresh
// DSN must come up without a separate init-db run.
func runServe(cmd *cobra.Command, svcs *services) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx = logging.WithAttrs(ctx, slog.String("command", cmd.CommandPath()))

	if err := svcs.App.InitSchema(ctx); err != nil {
		logging.Error(ctx, "initialize schema failed", slog.Any("err", errs.Loggable(err)))
		return errs.Wrap(err, "initialize schema")
	}

	logging.Info(ctx, "starting server", slog.String("addr", svcs.App.Config.Server.Addr))

	if err := svcs.Server.Start(ctx); err != nil {
		logging.Error(ctx, "server stopped with error", slog.Any("err", errs.Loggable(err)))
		return errs.Wrap(err, "run http server")
	}

	logging.Info(ctx, "server stopped")
	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
