package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"qaboard/internal/errs"
	"qaboard/internal/infrastructure/persistence/sqlite/model"
	"qaboard/internal/ports"
)

// CatalogRepository implements the CRUD stores for every QA entity.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) dbFromContext(ctx context.Context) (*gorm.DB, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}

	tx := ports.TxFromContext(ctx)
	if tx == nil {
		return r.db.WithContext(ctx), nil
	}

	gormTx, ok := tx.(*gorm.DB)
	if !ok || gormTx == nil {
		return nil, fmt.Errorf("invalid tx in context: %T", tx)
	}
	return gormTx.WithContext(ctx), nil
}

// --- services ---

func (r *CatalogRepository) CreateService(ctx context.Context, svc ports.Service) (ports.Service, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.Service{}, err
	}

	row := serviceToModel(svc)
	if err := db.Create(&row).Error; err != nil {
		return ports.Service{}, errs.Wrap(err, "create service")
	}
	return serviceFromModel(row), nil
}

func (r *CatalogRepository) UpdateService(ctx context.Context, svc ports.Service) (ports.Service, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.Service{}, err
	}

	var row model.Service
	if err := db.First(&row, svc.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Service{}, ports.ErrServiceNotFound
		}
		return ports.Service{}, errs.Wrap(err, "load service")
	}

	row.Name = svc.Name
	row.Description = svc.Description
	row.Owner = svc.Owner
	row.Repository = svc.Repository
	row.Documentation = svc.Documentation
	row.Status = svc.Status
	row.CoveragePercentage = svc.CoveragePercentage
	row.Observations = svc.Observations

	if err := db.Save(&row).Error; err != nil {
		return ports.Service{}, errs.Wrap(err, "update service")
	}
	return serviceFromModel(row), nil
}

func (r *CatalogRepository) DeleteService(ctx context.Context, id uint) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	res := db.Delete(&model.Service{}, id)
	if res.Error != nil {
		return errs.Wrap(res.Error, "delete service")
	}
	if res.RowsAffected == 0 {
		return ports.ErrServiceNotFound
	}
	return nil
}

func (r *CatalogRepository) GetService(ctx context.Context, id uint) (ports.Service, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.Service{}, err
	}

	var row model.Service
	if err := db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Service{}, ports.ErrServiceNotFound
		}
		return ports.Service{}, errs.Wrap(err, "get service")
	}
	return serviceFromModel(row), nil
}

func (r *CatalogRepository) ListServices(ctx context.Context) ([]ports.Service, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []model.Service
	if err := db.Order("name asc").Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query services")
	}

	items := make([]ports.Service, 0, len(rows))
	for _, row := range rows {
		items = append(items, serviceFromModel(row))
	}
	return items, nil
}

// --- test cases ---

func (r *CatalogRepository) CreateTestCase(ctx context.Context, tc ports.TestCase) (ports.TestCase, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.TestCase{}, err
	}

	row := testCaseToModel(tc)
	if err := db.Create(&row).Error; err != nil {
		return ports.TestCase{}, errs.Wrap(err, "create test case")
	}
	return fetchTestCase(db, row.ID)
}

func (r *CatalogRepository) UpdateTestCase(ctx context.Context, tc ports.TestCase) (ports.TestCase, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.TestCase{}, err
	}

	var row model.TestCase
	if err := db.First(&row, tc.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.TestCase{}, ports.ErrTestCaseNotFound
		}
		return ports.TestCase{}, errs.Wrap(err, "load test case")
	}

	row.Name = tc.Name
	row.ServiceID = tc.ServiceID
	row.UserStory = tc.UserStory
	row.Gherkin = tc.Gherkin
	row.TestData = tc.TestData
	row.Status = tc.Status
	row.IsAutomated = tc.IsAutomated
	row.Observations = tc.Observations

	if err := db.Save(&row).Error; err != nil {
		return ports.TestCase{}, errs.Wrap(err, "update test case")
	}
	return fetchTestCase(db, row.ID)
}

func (r *CatalogRepository) DeleteTestCase(ctx context.Context, id uint) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	res := db.Delete(&model.TestCase{}, id)
	if res.Error != nil {
		return errs.Wrap(res.Error, "delete test case")
	}
	if res.RowsAffected == 0 {
		return ports.ErrTestCaseNotFound
	}
	return nil
}

func (r *CatalogRepository) GetTestCase(ctx context.Context, id uint) (ports.TestCase, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.TestCase{}, err
	}
	return fetchTestCase(db, id)
}

// fetchTestCase reads one row with its joined service name; writes go
// through it so create/update responses carry service_name too.
func fetchTestCase(db *gorm.DB, id uint) (ports.TestCase, error) {
	var row testCaseRow
	err := db.Model(&model.TestCase{}).
		Select("test_cases.*, services.name AS service_name").
		Joins("LEFT JOIN services ON services.id = test_cases.service_id").
		Where("test_cases.id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.TestCase{}, ports.ErrTestCaseNotFound
		}
		return ports.TestCase{}, errs.Wrap(err, "get test case")
	}
	return testCaseFromModel(row.TestCase, row.ServiceName), nil
}

func (r *CatalogRepository) ListTestCases(ctx context.Context) ([]ports.TestCase, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []testCaseRow
	err = db.Model(&model.TestCase{}).
		Select("test_cases.*, services.name AS service_name").
		Joins("LEFT JOIN services ON services.id = test_cases.service_id").
		Order("test_cases.created_at desc, test_cases.id desc").
		Scan(&rows).Error
	if err != nil {
		return nil, errs.Wrap(err, "query test cases")
	}

	items := make([]ports.TestCase, 0, len(rows))
	for _, row := range rows {
		items = append(items, testCaseFromModel(row.TestCase, row.ServiceName))
	}
	return items, nil
}

type testCaseRow struct {
	model.TestCase
	ServiceName string `gorm:"column:service_name"`
}

// --- mapping ---

func serviceToModel(svc ports.Service) model.Service {
	return model.Service{
		ID:                 svc.ID,
		Name:               svc.Name,
		Description:        svc.Description,
		Owner:              svc.Owner,
		Repository:         svc.Repository,
		Documentation:      svc.Documentation,
		Status:             svc.Status,
		CoveragePercentage: svc.CoveragePercentage,
		Observations:       svc.Observations,
	}
}

func serviceFromModel(row model.Service) ports.Service {
	return ports.Service{
		ID:                 row.ID,
		Name:               row.Name,
		Description:        row.Description,
		Owner:              row.Owner,
		Repository:         row.Repository,
		Documentation:      row.Documentation,
		Status:             row.Status,
		CoveragePercentage: row.CoveragePercentage,
		Observations:       row.Observations,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
}

func testCaseToModel(tc ports.TestCase) model.TestCase {
	return model.TestCase{
		ID:           tc.ID,
		Name:         tc.Name,
		ServiceID:    tc.ServiceID,
		UserStory:    tc.UserStory,
		Gherkin:      tc.Gherkin,
		TestData:     tc.TestData,
		Status:       tc.Status,
		IsAutomated:  tc.IsAutomated,
		Observations: tc.Observations,
	}
}

func testCaseFromModel(row model.TestCase, serviceName string) ports.TestCase {
	return ports.TestCase{
		ID:           row.ID,
		Name:         row.Name,
		ServiceID:    row.ServiceID,
		ServiceName:  serviceName,
		UserStory:    row.UserStory,
		Gherkin:      row.Gherkin,
		TestData:     row.TestData,
		Status:       row.Status,
		IsAutomated:  row.IsAutomated,
		Observations: row.Observations,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
