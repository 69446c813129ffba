package bootstrap

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"qaboard/internal/api"
	"qaboard/internal/bootstrap/config"
	"qaboard/internal/bootstrap/database"
	"qaboard/internal/bootstrap/logging"
	sqliterepo "qaboard/internal/infrastructure/persistence/sqlite/repository"
	sqliteuow "qaboard/internal/infrastructure/persistence/sqlite/uow"
	"qaboard/internal/metrics"
	"qaboard/internal/ports"
	"qaboard/internal/usecase/catalog"
	"qaboard/internal/usecase/dashboard"
	"qaboard/internal/usecase/exchange"
)

var Module = fx.Options(
	fx.Provide(provideConfig),
	fx.Provide(provideDatabase),
	fx.Provide(provideApp),
	fx.Provide(
		fx.Annotate(
			sqliterepo.NewCatalogRepository,
			fx.As(new(ports.CatalogStore)),
		),
	),
	fx.Provide(
		fx.Annotate(
			sqliterepo.NewMetricsRepository,
			fx.As(new(ports.MetricsStore)),
		),
	),
	fx.Provide(
		fx.Annotate(
			sqliteuow.NewUnitOfWork,
			fx.As(new(ports.UnitOfWork)),
		),
	),
	fx.Provide(provideExporter),
	fx.Provide(catalog.NewService),
	fx.Provide(provideDashboard),
	fx.Provide(exchange.NewService),
	fx.Provide(provideServer),
)

type configParams struct {
	fx.In

	Ctx        context.Context
	ConfigFile string `name:"configFile"`
}

func provideConfig(p configParams) (config.Config, error) {
	ctx := logging.WithAttrs(p.Ctx, slog.String("component", "bootstrap.fx"))
	return config.Load(ctx, p.ConfigFile)
}

func provideDatabase(lc fx.Lifecycle, ctx context.Context, cfg config.Config) (*gorm.DB, error) {
	logCtx := logging.WithAttrs(ctx, slog.String("component", "bootstrap.fx"))

	db, err := database.Open(logCtx, cfg.Database)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})

	return db, nil
}

func provideApp(cfg config.Config, db *gorm.DB) *App {
	return &App{
		Config: cfg,
		DB:     db,
	}
}

func provideExporter() *metrics.Exporter {
	return metrics.NewExporter(prometheus.DefaultRegisterer)
}

func provideDashboard(store ports.MetricsStore, cfg config.Config, exporter *metrics.Exporter) *dashboard.Service {
	return dashboard.NewService(store, dashboard.Thresholds{
		CriticalBugDays: cfg.Alerts.CriticalBugDays,
		StaleTestDays:   cfg.Alerts.StaleTestDays,
	}, exporter)
}

func provideServer(cfg config.Config, cat *catalog.Service, dash *dashboard.Service, exch *exchange.Service, exporter *metrics.Exporter) *api.Server {
	return api.NewServer(api.Config{
		Catalog:   cat,
		Dashboard: dash,
		Exchange:  exch,
		Exporter:  exporter,
		Addr:      cfg.Server.Addr,
	})
}
