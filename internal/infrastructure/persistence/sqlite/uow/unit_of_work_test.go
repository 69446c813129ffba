package uow

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"qaboard/internal/infrastructure/persistence/sqlite/model"
	"qaboard/internal/infrastructure/persistence/sqlite/repository"
	"qaboard/internal/ports"
)

func setupUnitOfWork(t *testing.T) (*UnitOfWork, *repository.CatalogRepository) {
	t.Helper()

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
	if err := db.AutoMigrate(&model.Service{}, &model.TestCase{}, &model.Test{}, &model.Bug{}, &model.Improvement{}, &model.PerformancePlan{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return NewUnitOfWork(db), repository.NewCatalogRepository(db)
}

func TestWithTxCommitsOnSuccess(t *testing.T) {
	u, repo := setupUnitOfWork(t)
	ctx := context.Background()

	var created ports.Service
	err := u.WithTx(ctx, func(txCtx context.Context) error {
		svc, err := repo.CreateService(txCtx, ports.Service{Name: "auth", Status: "ativo"})
		if err != nil {
			return err
		}
		created = svc

		// Reads inside the tx observe the uncommitted row.
		if _, err := repo.GetService(txCtx, svc.ID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		t.Fatalf("with tx: %v", err)
	}

	got, err := repo.GetService(ctx, created.ID)
	if err != nil {
		t.Fatalf("get service after commit: %v", err)
	}
	if got.Name != "auth" {
		t.Fatalf("unexpected service: %+v", got)
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	u, repo := setupUnitOfWork(t)
	ctx := context.Background()

	boom := errors.New("boom")
	var created ports.Service
	err := u.WithTx(ctx, func(txCtx context.Context) error {
		svc, err := repo.CreateService(txCtx, ports.Service{Name: "billing", Status: "ativo"})
		if err != nil {
			return err
		}
		created = svc
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}

	if _, err := repo.GetService(ctx, created.ID); !errors.Is(err, ports.ErrServiceNotFound) {
		t.Fatalf("expected rollback, got %v", err)
	}
}
