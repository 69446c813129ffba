package catalog

import (
	"context"

	"qaboard/internal/domain/qa"
	"qaboard/internal/ports"
)

// Service is the write path over the entity catalog: it validates,
// normalizes labels and delegates persistence to the store. Reads pass
// through untouched.
type Service struct {
	store ports.CatalogStore
	uow   ports.UnitOfWork
}

func NewService(store ports.CatalogStore, uow ports.UnitOfWork) *Service {
	return &Service{store: store, uow: uow}
}

// inTx wraps one write in a transaction. The store re-reads the joined
// row after a write; the boundary keeps both queries on one snapshot.
func (s *Service) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.uow == nil {
		return fn(ctx)
	}
	return s.uow.WithTx(ctx, fn)
}

// writeTx runs one store write inside the transaction boundary.
func writeTx[T any](s *Service, ctx context.Context, write func(ctx context.Context) (T, error)) (T, error) {
	var out T
	err := s.inTx(ctx, func(ctx context.Context) error {
		var err error
		out, err = write(ctx)
		return err
	})
	return out, err
}

// Services

func (s *Service) CreateService(ctx context.Context, svc ports.Service) (ports.Service, error) {
	if err := validateService(svc); err != nil {
		return ports.Service{}, err
	}
	normalizeService(&svc)
	return writeTx(s, ctx, func(ctx context.Context) (ports.Service, error) {
		return s.store.CreateService(ctx, svc)
	})
}

func (s *Service) UpdateService(ctx context.Context, svc ports.Service) (ports.Service, error) {
	if err := validateService(svc); err != nil {
		return ports.Service{}, err
	}
	normalizeService(&svc)
	return writeTx(s, ctx, func(ctx context.Context) (ports.Service, error) {
		return s.store.UpdateService(ctx, svc)
	})
}

func (s *Service) DeleteService(ctx context.Context, id uint) error {
	return s.store.DeleteService(ctx, id)
}

func (s *Service) GetService(ctx context.Context, id uint) (ports.Service, error) {
	return s.store.GetService(ctx, id)
}

func (s *Service) ListServices(ctx context.Context) ([]ports.Service, error) {
	return s.store.ListServices(ctx)
}

func validateService(svc ports.Service) error {
	return validate(
		fieldCheck{field: "name", message: msgNameRequired, ok: present(svc.Name)},
	)
}

func normalizeService(svc *ports.Service) {
	svc.Status = qa.NormalizeLabel(svc.Status)
}

// Test cases

func (s *Service) CreateTestCase(ctx context.Context, tc ports.TestCase) (ports.TestCase, error) {
	if err := validateTestCase(tc); err != nil {
		return ports.TestCase{}, err
	}
	normalizeTestCase(&tc)
	return writeTx(s, ctx, func(ctx context.Context) (ports.TestCase, error) {
		return s.store.CreateTestCase(ctx, tc)
	})
}

func (s *Service) UpdateTestCase(ctx context.Context, tc ports.TestCase) (ports.TestCase, error) {
	if err := validateTestCase(tc); err != nil {
		return ports.TestCase{}, err
	}
	normalizeTestCase(&tc)
	return writeTx(s, ctx, func(ctx context.Context) (ports.TestCase, error) {
		return s.store.UpdateTestCase(ctx, tc)
	})
}

func (s *Service) DeleteTestCase(ctx context.Context, id uint) error {
	return s.store.DeleteTestCase(ctx, id)
}

func (s *Service) GetTestCase(ctx context.Context, id uint) (ports.TestCase, error) {
	return s.store.GetTestCase(ctx, id)
}

func (s *Service) ListTestCases(ctx context.Context) ([]ports.TestCase, error) {
	return s.store.ListTestCases(ctx)
}

func validateTestCase(tc ports.TestCase) error {
	return validate(
		fieldCheck{field: "name", message: msgNameRequired, ok: present(tc.Name)},
		fieldCheck{field: "service_id", message: msgServiceRequired, ok: tc.ServiceID > 0},
		fieldCheck{field: "status", message: msgStatusRequired, ok: present(tc.Status)},
	)
}

func normalizeTestCase(tc *ports.TestCase) {
	tc.Status = qa.NormalizeCaseStatus(tc.Status)
}

// Tests

func (s *Service) CreateTest(ctx context.Context, test ports.Test) (ports.Test, error) {
	if err := validateTest(test); err != nil {
		return ports.Test{}, err
	}
	normalizeTest(&test)
	return writeTx(s, ctx, func(ctx context.Context) (ports.Test, error) {
		return s.store.CreateTest(ctx, test)
	})
}

func (s *Service) UpdateTest(ctx context.Context, test ports.Test) (ports.Test, error) {
	if err := validateTest(test); err != nil {
		return ports.Test{}, err
	}
	normalizeTest(&test)
	return writeTx(s, ctx, func(ctx context.Context) (ports.Test, error) {
		return s.store.UpdateTest(ctx, test)
	})
}

func (s *Service) DeleteTest(ctx context.Context, id uint) error {
	return s.store.DeleteTest(ctx, id)
}

func (s *Service) GetTest(ctx context.Context, id uint) (ports.Test, error) {
	return s.store.GetTest(ctx, id)
}

func (s *Service) ListTests(ctx context.Context, filter ports.TestFilter) ([]ports.Test, error) {
	filter.Result = qa.NormalizeResult(filter.Result)
	filter.Type = qa.NormalizeLabel(filter.Type)
	return s.store.ListTests(ctx, filter)
}

func validateTest(test ports.Test) error {
	return validate(
		fieldCheck{field: "name", message: msgNameRequired, ok: present(test.Name)},
		fieldCheck{field: "service_id", message: msgServiceRequired, ok: test.ServiceID > 0},
		fieldCheck{field: "type", message: msgTypeRequired, ok: present(test.Type)},
		fieldCheck{field: "result", message: msgResultRequired, ok: present(test.Result)},
	)
}

func normalizeTest(test *ports.Test) {
	test.Type = qa.NormalizeLabel(test.Type)
	test.Result = qa.NormalizeResult(test.Result)
}

// Bugs

func (s *Service) CreateBug(ctx context.Context, bug ports.Bug) (ports.Bug, error) {
	if err := validateBug(bug); err != nil {
		return ports.Bug{}, err
	}
	normalizeBug(&bug)
	return writeTx(s, ctx, func(ctx context.Context) (ports.Bug, error) {
		return s.store.CreateBug(ctx, bug)
	})
}

func (s *Service) UpdateBug(ctx context.Context, bug ports.Bug) (ports.Bug, error) {
	if err := validateBug(bug); err != nil {
		return ports.Bug{}, err
	}
	normalizeBug(&bug)
	return writeTx(s, ctx, func(ctx context.Context) (ports.Bug, error) {
		return s.store.UpdateBug(ctx, bug)
	})
}

func (s *Service) DeleteBug(ctx context.Context, id uint) error {
	return s.store.DeleteBug(ctx, id)
}

func (s *Service) GetBug(ctx context.Context, id uint) (ports.Bug, error) {
	return s.store.GetBug(ctx, id)
}

func (s *Service) ListBugs(ctx context.Context, filter ports.BugFilter) ([]ports.Bug, error) {
	filter.Status = qa.NormalizeLabel(filter.Status)
	filter.Criticality = qa.NormalizeLabel(filter.Criticality)
	filter.Risk = qa.NormalizeLabel(filter.Risk)
	return s.store.ListBugs(ctx, filter)
}

// validateBug leaves test_id unchecked: a bug can be filed without a
// linked execution.
func validateBug(bug ports.Bug) error {
	return validate(
		fieldCheck{field: "name", message: msgNameRequired, ok: present(bug.Name)},
		fieldCheck{field: "service_id", message: msgServiceRequired, ok: bug.ServiceID > 0},
		fieldCheck{field: "status", message: msgStatusRequired, ok: present(bug.Status)},
		fieldCheck{field: "criticality", message: msgCriticalityRequired, ok: present(bug.Criticality)},
		fieldCheck{field: "risk", message: msgRiskRequired, ok: present(bug.Risk)},
	)
}

func normalizeBug(bug *ports.Bug) {
	bug.Status = qa.NormalizeLabel(bug.Status)
	bug.Criticality = qa.NormalizeLabel(bug.Criticality)
	bug.Risk = qa.NormalizeLabel(bug.Risk)
}

// Improvements

func (s *Service) CreateImprovement(ctx context.Context, imp ports.Improvement) (ports.Improvement, error) {
	if err := validateImprovement(imp); err != nil {
		return ports.Improvement{}, err
	}
	imp.Status = qa.NormalizeLabel(imp.Status)
	return writeTx(s, ctx, func(ctx context.Context) (ports.Improvement, error) {
		return s.store.CreateImprovement(ctx, imp)
	})
}

func (s *Service) UpdateImprovement(ctx context.Context, imp ports.Improvement) (ports.Improvement, error) {
	if err := validateImprovement(imp); err != nil {
		return ports.Improvement{}, err
	}
	imp.Status = qa.NormalizeLabel(imp.Status)
	return writeTx(s, ctx, func(ctx context.Context) (ports.Improvement, error) {
		return s.store.UpdateImprovement(ctx, imp)
	})
}

func (s *Service) DeleteImprovement(ctx context.Context, id uint) error {
	return s.store.DeleteImprovement(ctx, id)
}

func (s *Service) GetImprovement(ctx context.Context, id uint) (ports.Improvement, error) {
	return s.store.GetImprovement(ctx, id)
}

func (s *Service) ListImprovements(ctx context.Context) ([]ports.Improvement, error) {
	return s.store.ListImprovements(ctx)
}

func validateImprovement(imp ports.Improvement) error {
	return validate(
		fieldCheck{field: "name", message: msgNameRequired, ok: present(imp.Name)},
		fieldCheck{field: "service_id", message: msgServiceRequired, ok: imp.ServiceID > 0},
		fieldCheck{field: "status", message: msgStatusRequired, ok: present(imp.Status)},
	)
}

// Performance plans

func (s *Service) CreatePlan(ctx context.Context, plan ports.PerformancePlan) (ports.PerformancePlan, error) {
	if err := validatePlan(plan); err != nil {
		return ports.PerformancePlan{}, err
	}
	plan.Status = qa.NormalizeLabel(plan.Status)
	return writeTx(s, ctx, func(ctx context.Context) (ports.PerformancePlan, error) {
		return s.store.CreatePlan(ctx, plan)
	})
}

func (s *Service) UpdatePlan(ctx context.Context, plan ports.PerformancePlan) (ports.PerformancePlan, error) {
	if err := validatePlan(plan); err != nil {
		return ports.PerformancePlan{}, err
	}
	plan.Status = qa.NormalizeLabel(plan.Status)
	return writeTx(s, ctx, func(ctx context.Context) (ports.PerformancePlan, error) {
		return s.store.UpdatePlan(ctx, plan)
	})
}

func (s *Service) DeletePlan(ctx context.Context, id uint) error {
	return s.store.DeletePlan(ctx, id)
}

func (s *Service) GetPlan(ctx context.Context, id uint) (ports.PerformancePlan, error) {
	return s.store.GetPlan(ctx, id)
}

func (s *Service) ListPlans(ctx context.Context) ([]ports.PerformancePlan, error) {
	return s.store.ListPlans(ctx)
}

func validatePlan(plan ports.PerformancePlan) error {
	return validate(
		fieldCheck{field: "name", message: msgNameRequired, ok: present(plan.Name)},
		fieldCheck{field: "service_id", message: msgServiceRequired, ok: plan.ServiceID > 0},
		fieldCheck{field: "status", message: msgStatusRequired, ok: present(plan.Status)},
	)
}
