/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"qaboard/internal/api"
	"qaboard/internal/bootstrap"
	"qaboard/internal/bootstrap/logging"
	"qaboard/internal/errs"
	"qaboard/internal/usecase/dashboard"
	"qaboard/internal/usecase/exchange"
)

// services bundles what the commands reach for after bootstrap.
type services struct {
	App       *bootstrap.App
	Server    *api.Server
	Dashboard *dashboard.Service
	Exchange  *exchange.Service
}

func withApp(run func(cmd *cobra.Command, svcs *services) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := logging.WithAttrs(
			cmd.Context(),
			slog.String("command", cmd.CommandPath()),
			slog.String("config_file", cfgFile),
		)

		svcs := &services{}
		fxApp := fx.New(
			bootstrap.Module,
			fx.Provide(func() context.Context { return ctx }),
			fx.Provide(
				fx.Annotate(
					func() string { return cfgFile },
					fx.ResultTags(`name:"configFile"`),
				),
			),
			fx.Populate(&svcs.App, &svcs.Server, &svcs.Dashboard, &svcs.Exchange),
		)

		startCtx, cancelStart := context.WithTimeout(ctx, 10*time.Second)
		defer cancelStart()
		if err := fxApp.Start(startCtx); err != nil {
			logging.Error(ctx, "bootstrap application failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "start fx application")
		}

		defer func() {
			stopCtx, cancelStop := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancelStop()
			if err := fxApp.Stop(stopCtx); err != nil {
				logging.Error(ctx, "fx application stop failed", slog.Any("err", errs.Loggable(err)))
			}
		}()

		if err := run(cmd, svcs); err != nil {
			return errs.Wrap(err, "run command")
		}
		return nil
	}
}
