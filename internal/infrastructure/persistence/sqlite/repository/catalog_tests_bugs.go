package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"qaboard/internal/errs"
	"qaboard/internal/infrastructure/persistence/sqlite/model"
	"qaboard/internal/ports"
)

// --- tests ---

func (r *CatalogRepository) CreateTest(ctx context.Context, test ports.Test) (ports.Test, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.Test{}, err
	}

	row := testToModel(test)
	if err := db.Create(&row).Error; err != nil {
		return ports.Test{}, errs.Wrap(err, "create test")
	}
	return fetchTest(db, row.ID)
}

func (r *CatalogRepository) UpdateTest(ctx context.Context, test ports.Test) (ports.Test, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.Test{}, err
	}

	var row model.Test
	if err := db.First(&row, test.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Test{}, ports.ErrTestNotFound
		}
		return ports.Test{}, errs.Wrap(err, "load test")
	}

	row.Name = test.Name
	row.Description = test.Description
	row.TestCaseID = test.TestCaseID
	row.ServiceID = test.ServiceID
	row.Type = test.Type
	row.Result = test.Result
	row.ExecutionDate = test.ExecutionDate
	row.ExecutionType = test.ExecutionType
	row.ExecutionLocation = test.ExecutionLocation
	row.ExecutionMethod = test.ExecutionMethod
	row.TestData = test.TestData
	row.JiraLink = test.JiraLink
	row.BugLink = test.BugLink
	row.Evidence = test.Evidence
	row.ResponsibleQA = test.ResponsibleQA
	row.ResponsibleDev = test.ResponsibleDev

	if err := db.Save(&row).Error; err != nil {
		return ports.Test{}, errs.Wrap(err, "update test")
	}
	return fetchTest(db, row.ID)
}

func (r *CatalogRepository) DeleteTest(ctx context.Context, id uint) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	res := db.Delete(&model.Test{}, id)
	if res.Error != nil {
		return errs.Wrap(res.Error, "delete test")
	}
	if res.RowsAffected == 0 {
		return ports.ErrTestNotFound
	}
	return nil
}

func (r *CatalogRepository) GetTest(ctx context.Context, id uint) (ports.Test, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.Test{}, err
	}
	return fetchTest(db, id)
}

// fetchTest reads one row with its joined service name; writes go
// through it so create/update responses carry service_name too.
func fetchTest(db *gorm.DB, id uint) (ports.Test, error) {
	var row testRow
	err := db.Model(&model.Test{}).
		Select("tests.*, services.name AS service_name").
		Joins("LEFT JOIN services ON services.id = tests.service_id").
		Where("tests.id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Test{}, ports.ErrTestNotFound
		}
		return ports.Test{}, errs.Wrap(err, "get test")
	}
	return testFromModel(row.Test, row.ServiceName), nil
}

func (r *CatalogRepository) ListTests(ctx context.Context, filter ports.TestFilter) ([]ports.Test, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	query := db.Model(&model.Test{}).
		Select("tests.*, services.name AS service_name").
		Joins("LEFT JOIN services ON services.id = tests.service_id")

	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + q + "%"
		query = query.Where("tests.name LIKE ? OR tests.description LIKE ?", pattern, pattern)
	}
	if filter.Type != "" {
		query = query.Where("tests.type = ?", filter.Type)
	}
	if filter.Result != "" {
		query = query.Where("tests.result = ?", filter.Result)
	}
	if filter.ServiceID != 0 {
		query = query.Where("tests.service_id = ?", filter.ServiceID)
	}

	var rows []testRow
	if err := query.Order("tests.created_at desc, tests.id desc").Scan(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query tests")
	}

	items := make([]ports.Test, 0, len(rows))
	for _, row := range rows {
		items = append(items, testFromModel(row.Test, row.ServiceName))
	}
	return items, nil
}

type testRow struct {
	model.Test
	ServiceName string `gorm:"column:service_name"`
}

// --- bugs ---

func (r *CatalogRepository) CreateBug(ctx context.Context, bug ports.Bug) (ports.Bug, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.Bug{}, err
	}

	row := bugToModel(bug)
	if err := db.Create(&row).Error; err != nil {
		return ports.Bug{}, errs.Wrap(err, "create bug")
	}
	return fetchBug(db, row.ID)
}

func (r *CatalogRepository) UpdateBug(ctx context.Context, bug ports.Bug) (ports.Bug, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.Bug{}, err
	}

	var row model.Bug
	if err := db.First(&row, bug.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Bug{}, ports.ErrBugNotFound
		}
		return ports.Bug{}, errs.Wrap(err, "load bug")
	}

	row.Name = bug.Name
	row.Description = bug.Description
	row.TestID = bug.TestID
	row.ServiceID = bug.ServiceID
	row.UserStory = bug.UserStory
	row.Gherkin = bug.Gherkin
	row.Evidence = bug.Evidence
	row.EvidenceLink = bug.EvidenceLink
	row.Status = bug.Status
	row.Criticality = bug.Criticality
	row.Risk = bug.Risk
	row.Observations = bug.Observations
	row.FoundDate = bug.FoundDate
	row.ResolvedDate = bug.ResolvedDate
	row.RetestedDate = bug.RetestedDate
	row.ResponsibleQA = bug.ResponsibleQA
	row.ResponsibleDev = bug.ResponsibleDev

	if err := db.Save(&row).Error; err != nil {
		return ports.Bug{}, errs.Wrap(err, "update bug")
	}
	return fetchBug(db, row.ID)
}

func (r *CatalogRepository) DeleteBug(ctx context.Context, id uint) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	res := db.Delete(&model.Bug{}, id)
	if res.Error != nil {
		return errs.Wrap(res.Error, "delete bug")
	}
	if res.RowsAffected == 0 {
		return ports.ErrBugNotFound
	}
	return nil
}

func (r *CatalogRepository) GetBug(ctx context.Context, id uint) (ports.Bug, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.Bug{}, err
	}
	return fetchBug(db, id)
}

func fetchBug(db *gorm.DB, id uint) (ports.Bug, error) {
	var row bugRow
	err := db.Model(&model.Bug{}).
		Select("bugs.*, services.name AS service_name").
		Joins("LEFT JOIN services ON services.id = bugs.service_id").
		Where("bugs.id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Bug{}, ports.ErrBugNotFound
		}
		return ports.Bug{}, errs.Wrap(err, "get bug")
	}
	return bugFromModel(row.Bug, row.ServiceName), nil
}

func (r *CatalogRepository) ListBugs(ctx context.Context, filter ports.BugFilter) ([]ports.Bug, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	query := db.Model(&model.Bug{}).
		Select("bugs.*, services.name AS service_name").
		Joins("LEFT JOIN services ON services.id = bugs.service_id")

	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + q + "%"
		query = query.Where("bugs.name LIKE ? OR bugs.description LIKE ?", pattern, pattern)
	}
	if filter.Status != "" {
		query = query.Where("bugs.status = ?", filter.Status)
	}
	if filter.Criticality != "" {
		query = query.Where("bugs.criticality = ?", filter.Criticality)
	}
	if filter.Risk != "" {
		query = query.Where("bugs.risk = ?", filter.Risk)
	}
	if filter.FoundFrom != nil {
		query = query.Where("bugs.found_date >= ?", filter.FoundFrom)
	}
	if filter.FoundTo != nil {
		query = query.Where("bugs.found_date <= ?", filter.FoundTo)
	}
	if resp := strings.TrimSpace(filter.Responsible); resp != "" {
		pattern := "%" + resp + "%"
		query = query.Where("bugs.responsible_qa LIKE ? OR bugs.responsible_dev LIKE ?", pattern, pattern)
	}

	var rows []bugRow
	if err := query.Order("bugs.created_at desc, bugs.id desc").Scan(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query bugs")
	}

	items := make([]ports.Bug, 0, len(rows))
	for _, row := range rows {
		items = append(items, bugFromModel(row.Bug, row.ServiceName))
	}
	return items, nil
}

type bugRow struct {
	model.Bug
	ServiceName string `gorm:"column:service_name"`
}

// --- mapping ---

func testToModel(test ports.Test) model.Test {
	return model.Test{
		ID:                test.ID,
		Name:              test.Name,
		Description:       test.Description,
		TestCaseID:        test.TestCaseID,
		ServiceID:         test.ServiceID,
		Type:              test.Type,
		Result:            test.Result,
		ExecutionDate:     test.ExecutionDate,
		ExecutionType:     test.ExecutionType,
		ExecutionLocation: test.ExecutionLocation,
		ExecutionMethod:   test.ExecutionMethod,
		TestData:          test.TestData,
		JiraLink:          test.JiraLink,
		BugLink:           test.BugLink,
		Evidence:          test.Evidence,
		ResponsibleQA:     test.ResponsibleQA,
		ResponsibleDev:    test.ResponsibleDev,
	}
}

func testFromModel(row model.Test, serviceName string) ports.Test {
	return ports.Test{
		ID:                row.ID,
		Name:              row.Name,
		Description:       row.Description,
		TestCaseID:        row.TestCaseID,
		ServiceID:         row.ServiceID,
		ServiceName:       serviceName,
		Type:              row.Type,
		Result:            row.Result,
		ExecutionDate:     row.ExecutionDate,
		ExecutionType:     row.ExecutionType,
		ExecutionLocation: row.ExecutionLocation,
		ExecutionMethod:   row.ExecutionMethod,
		TestData:          row.TestData,
		JiraLink:          row.JiraLink,
		BugLink:           row.BugLink,
		Evidence:          row.Evidence,
		ResponsibleQA:     row.ResponsibleQA,
		ResponsibleDev:    row.ResponsibleDev,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
}

func bugToModel(bug ports.Bug) model.Bug {
	return model.Bug{
		ID:             bug.ID,
		Name:           bug.Name,
		Description:    bug.Description,
		TestID:         bug.TestID,
		ServiceID:      bug.ServiceID,
		UserStory:      bug.UserStory,
		Gherkin:        bug.Gherkin,
		Evidence:       bug.Evidence,
		EvidenceLink:   bug.EvidenceLink,
		Status:         bug.Status,
		Criticality:    bug.Criticality,
		Risk:           bug.Risk,
		Observations:   bug.Observations,
		FoundDate:      bug.FoundDate,
		ResolvedDate:   bug.ResolvedDate,
		RetestedDate:   bug.RetestedDate,
		ResponsibleQA:  bug.ResponsibleQA,
		ResponsibleDev: bug.ResponsibleDev,
	}
}

func bugFromModel(row model.Bug, serviceName string) ports.Bug {
	return ports.Bug{
		ID:             row.ID,
		Name:           row.Name,
		Description:    row.Description,
		TestID:         row.TestID,
		ServiceID:      row.ServiceID,
		ServiceName:    serviceName,
		UserStory:      row.UserStory,
		Gherkin:        row.Gherkin,
		Evidence:       row.Evidence,
		EvidenceLink:   row.EvidenceLink,
		Status:         row.Status,
		Criticality:    row.Criticality,
		Risk:           row.Risk,
		Observations:   row.Observations,
		FoundDate:      row.FoundDate,
		ResolvedDate:   row.ResolvedDate,
		RetestedDate:   row.RetestedDate,
		ResponsibleQA:  row.ResponsibleQA,
		ResponsibleDev: row.ResponsibleDev,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
