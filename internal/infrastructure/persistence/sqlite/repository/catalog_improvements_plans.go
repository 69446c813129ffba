package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"qaboard/internal/errs"
	"qaboard/internal/infrastructure/persistence/sqlite/model"
	"qaboard/internal/ports"
)

// --- improvements ---

func (r *CatalogRepository) CreateImprovement(ctx context.Context, imp ports.Improvement) (ports.Improvement, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.Improvement{}, err
	}

	row := improvementToModel(imp)
	if err := db.Create(&row).Error; err != nil {
		return ports.Improvement{}, errs.Wrap(err, "create improvement")
	}
	return fetchImprovement(db, row.ID)
}

func (r *CatalogRepository) UpdateImprovement(ctx context.Context, imp ports.Improvement) (ports.Improvement, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.Improvement{}, err
	}

	var row model.Improvement
	if err := db.First(&row, imp.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Improvement{}, ports.ErrImprovementNotFound
		}
		return ports.Improvement{}, errs.Wrap(err, "load improvement")
	}

	row.Name = imp.Name
	row.Description = imp.Description
	row.ServiceID = imp.ServiceID
	row.UserStory = imp.UserStory
	row.Evidence = imp.Evidence
	row.Status = imp.Status
	row.Observations = imp.Observations
	row.StartDate = imp.StartDate
	row.EndDate = imp.EndDate

	if err := db.Save(&row).Error; err != nil {
		return ports.Improvement{}, errs.Wrap(err, "update improvement")
	}
	return fetchImprovement(db, row.ID)
}

func (r *CatalogRepository) DeleteImprovement(ctx context.Context, id uint) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	res := db.Delete(&model.Improvement{}, id)
	if res.Error != nil {
		return errs.Wrap(res.Error, "delete improvement")
	}
	if res.RowsAffected == 0 {
		return ports.ErrImprovementNotFound
	}
	return nil
}

func (r *CatalogRepository) GetImprovement(ctx context.Context, id uint) (ports.Improvement, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.Improvement{}, err
	}
	return fetchImprovement(db, id)
}

func fetchImprovement(db *gorm.DB, id uint) (ports.Improvement, error) {
	var row improvementRow
	err := db.Model(&model.Improvement{}).
		Select("improvements.*, services.name AS service_name").
		Joins("LEFT JOIN services ON services.id = improvements.service_id").
		Where("improvements.id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Improvement{}, ports.ErrImprovementNotFound
		}
		return ports.Improvement{}, errs.Wrap(err, "get improvement")
	}
	return improvementFromModel(row.Improvement, row.ServiceName), nil
}

func (r *CatalogRepository) ListImprovements(ctx context.Context) ([]ports.Improvement, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []improvementRow
	err = db.Model(&model.Improvement{}).
		Select("improvements.*, services.name AS service_name").
		Joins("LEFT JOIN services ON services.id = improvements.service_id").
		Order("improvements.created_at desc, improvements.id desc").
		Scan(&rows).Error
	if err != nil {
		return nil, errs.Wrap(err, "query improvements")
	}

	items := make([]ports.Improvement, 0, len(rows))
	for _, row := range rows {
		items = append(items, improvementFromModel(row.Improvement, row.ServiceName))
	}
	return items, nil
}

type improvementRow struct {
	model.Improvement
	ServiceName string `gorm:"column:service_name"`
}

// --- performance plans ---

func (r *CatalogRepository) CreatePlan(ctx context.Context, plan ports.PerformancePlan) (ports.PerformancePlan, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.PerformancePlan{}, err
	}

	row := planToModel(plan)
	if err := db.Create(&row).Error; err != nil {
		return ports.PerformancePlan{}, errs.Wrap(err, "create performance plan")
	}
	return fetchPlan(db, row.ID)
}

func (r *CatalogRepository) UpdatePlan(ctx context.Context, plan ports.PerformancePlan) (ports.PerformancePlan, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.PerformancePlan{}, err
	}

	var row model.PerformancePlan
	if err := db.First(&row, plan.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.PerformancePlan{}, ports.ErrPlanNotFound
		}
		return ports.PerformancePlan{}, errs.Wrap(err, "load performance plan")
	}

	row.Name = plan.Name
	row.Description = plan.Description
	row.ServiceID = plan.ServiceID
	row.TestType = plan.TestType
	row.TargetMetrics = plan.TargetMetrics
	row.TestData = plan.TestData
	row.ExecutionDate = plan.ExecutionDate
	row.Results = plan.Results
	row.Status = plan.Status
	row.Observations = plan.Observations
	row.StartDate = plan.StartDate
	row.EndDate = plan.EndDate

	if err := db.Save(&row).Error; err != nil {
		return ports.PerformancePlan{}, errs.Wrap(err, "update performance plan")
	}
	return fetchPlan(db, row.ID)
}

func (r *CatalogRepository) DeletePlan(ctx context.Context, id uint) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	res := db.Delete(&model.PerformancePlan{}, id)
	if res.Error != nil {
		return errs.Wrap(res.Error, "delete performance plan")
	}
	if res.RowsAffected == 0 {
		return ports.ErrPlanNotFound
	}
	return nil
}

func (r *CatalogRepository) GetPlan(ctx context.Context, id uint) (ports.PerformancePlan, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.PerformancePlan{}, err
	}
	return fetchPlan(db, id)
}

func fetchPlan(db *gorm.DB, id uint) (ports.PerformancePlan, error) {
	var row planRow
	err := db.Model(&model.PerformancePlan{}).
		Select("performance_plans.*, services.name AS service_name").
		Joins("LEFT JOIN services ON services.id = performance_plans.service_id").
		Where("performance_plans.id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.PerformancePlan{}, ports.ErrPlanNotFound
		}
		return ports.PerformancePlan{}, errs.Wrap(err, "get performance plan")
	}
	return planFromModel(row.PerformancePlan, row.ServiceName), nil
}

func (r *CatalogRepository) ListPlans(ctx context.Context) ([]ports.PerformancePlan, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []planRow
	err = db.Model(&model.PerformancePlan{}).
		Select("performance_plans.*, services.name AS service_name").
		Joins("LEFT JOIN services ON services.id = performance_plans.service_id").
		Order("performance_plans.created_at desc, performance_plans.id desc").
		Scan(&rows).Error
	if err != nil {
		return nil, errs.Wrap(err, "query performance plans")
	}

	items := make([]ports.PerformancePlan, 0, len(rows))
	for _, row := range rows {
		items = append(items, planFromModel(row.PerformancePlan, row.ServiceName))
	}
	return items, nil
}

type planRow struct {
	model.PerformancePlan
	ServiceName string `gorm:"column:service_name"`
}

// --- mapping ---

func improvementToModel(imp ports.Improvement) model.Improvement {
	return model.Improvement{
		ID:           imp.ID,
		Name:         imp.Name,
		Description:  imp.Description,
		ServiceID:    imp.ServiceID,
		UserStory:    imp.UserStory,
		Evidence:     imp.Evidence,
		Status:       imp.Status,
		Observations: imp.Observations,
		StartDate:    imp.StartDate,
		EndDate:      imp.EndDate,
	}
}

func improvementFromModel(row model.Improvement, serviceName string) ports.Improvement {
	return ports.Improvement{
		ID:           row.ID,
		Name:         row.Name,
		Description:  row.Description,
		ServiceID:    row.ServiceID,
		ServiceName:  serviceName,
		UserStory:    row.UserStory,
		Evidence:     row.Evidence,
		Status:       row.Status,
		Observations: row.Observations,
		StartDate:    row.StartDate,
		EndDate:      row.EndDate,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func planToModel(plan ports.PerformancePlan) model.PerformancePlan {
	return model.PerformancePlan{
		ID:            plan.ID,
		Name:          plan.Name,
		Description:   plan.Description,
		ServiceID:     plan.ServiceID,
		TestType:      plan.TestType,
		TargetMetrics: plan.TargetMetrics,
		TestData:      plan.TestData,
		ExecutionDate: plan.ExecutionDate,
		Results:       plan.Results,
		Status:        plan.Status,
		Observations:  plan.Observations,
		StartDate:     plan.StartDate,
		EndDate:       plan.EndDate,
	}
}

func planFromModel(row model.PerformancePlan, serviceName string) ports.PerformancePlan {
	return ports.PerformancePlan{
		ID:            row.ID,
		Name:          row.Name,
		Description:   row.Description,
		ServiceID:     row.ServiceID,
		ServiceName:   serviceName,
		TestType:      row.TestType,
		TargetMetrics: row.TargetMetrics,
		TestData:      row.TestData,
		ExecutionDate: row.ExecutionDate,
		Results:       row.Results,
		Status:        row.Status,
		Observations:  row.Observations,
		StartDate:     row.StartDate,
		EndDate:       row.EndDate,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
