package cmd

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	gormsqlite "github.com/glebarez/sqlite"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"qaboard/internal/api"
	"qaboard/internal/bootstrap"
	"qaboard/internal/bootstrap/config"
)

func TestRunServeMigratesFreshSchema(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "qaboard.sqlite")
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	svcs := &services{
		App: &bootstrap.App{
			Config: config.Config{Server: config.ServerConfig{Addr: "127.0.0.1:0"}},
			DB:     db,
		},
		Server: api.NewServer(api.Config{Addr: "127.0.0.1:0"}),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	time.AfterFunc(200*time.Millisecond, cancel)

	serve := &cobra.Command{Use: "serve"}
	serve.SetContext(ctx)

	if err := runServe(serve, svcs); err != nil {
		t.Fatalf("runServe: %v", err)
	}

	for _, table := range []string{"services", "test_cases", "tests", "bugs", "improvements", "performance_plans"} {
		if !db.Migrator().HasTable(table) {
			t.Fatalf("table %s not migrated on serve start", table)
		}
	}
}
