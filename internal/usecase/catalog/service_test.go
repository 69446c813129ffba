package catalog

import (
	"context"
	"errors"
	"testing"

	"qaboard/internal/ports"
)

// fakeStore embeds the interface so tests only override what they
// touch; calling anything else panics loudly.
type fakeStore struct {
	ports.CatalogStore

	createdBug  ports.Bug
	createdTest ports.Test
	testFilter  ports.TestFilter
	deletedID   uint
}

func (f *fakeStore) CreateBug(_ context.Context, bug ports.Bug) (ports.Bug, error) {
	f.createdBug = bug
	bug.ID = 1
	return bug, nil
}

func (f *fakeStore) CreateTest(_ context.Context, test ports.Test) (ports.Test, error) {
	f.createdTest = test
	test.ID = 1
	return test, nil
}

func (f *fakeStore) ListTests(_ context.Context, filter ports.TestFilter) ([]ports.Test, error) {
	f.testFilter = filter
	return nil, nil
}

func (f *fakeStore) DeleteService(_ context.Context, id uint) error {
	f.deletedID = id
	return ports.ErrServiceNotFound
}

func fieldMessages(t *testing.T, err error) map[string]string {
	t.Helper()

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("error type = %T, want ValidationErrors", err)
	}
	byField := map[string]string{}
	for _, ve := range verrs {
		byField[ve.Field] = ve.Message
	}
	return byField
}

func validBug() ports.Bug {
	return ports.Bug{
		Name:        "login broken",
		ServiceID:   3,
		Status:      "open",
		Criticality: "Critica",
		Risk:        "alto",
	}
}

func TestCreateBugRejectsMissingFields(t *testing.T) {
	svc := NewService(&fakeStore{}, nil)

	_, err := svc.CreateBug(context.Background(), ports.Bug{Description: "no required fields"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("error type = %T, want ValidationErrors", err)
	}

	byField := map[string]string{}
	for _, ve := range verrs {
		byField[ve.Field] = ve.Message
	}
	if byField["name"] != "O nome é obrigatório" {
		t.Fatalf("name message = %q", byField["name"])
	}
	if byField["service_id"] != "O serviço é obrigatório" {
		t.Fatalf("service_id message = %q", byField["service_id"])
	}
	for _, field := range []string{"status", "criticality", "risk"} {
		if _, ok := byField[field]; !ok {
			t.Fatalf("missing validation for %s, got %v", field, byField)
		}
	}
}

func TestCreateTestCaseRequiresStatus(t *testing.T) {
	svc := NewService(&fakeStore{}, nil)

	_, err := svc.CreateTestCase(context.Background(), ports.TestCase{
		Name:      "login com credenciais válidas",
		ServiceID: 2,
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if msg := fieldMessages(t, err)["status"]; msg != "O status é obrigatório" {
		t.Fatalf("status message = %q", msg)
	}
}

func TestCreateImprovementRequiresStatus(t *testing.T) {
	svc := NewService(&fakeStore{}, nil)

	_, err := svc.CreateImprovement(context.Background(), ports.Improvement{
		Name:      "paralelizar regressão",
		ServiceID: 2,
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if msg := fieldMessages(t, err)["status"]; msg != "O status é obrigatório" {
		t.Fatalf("status message = %q", msg)
	}
}

func TestCreatePlanRequiresStatus(t *testing.T) {
	svc := NewService(&fakeStore{}, nil)

	_, err := svc.CreatePlan(context.Background(), ports.PerformancePlan{
		Name:      "carga no fechamento",
		ServiceID: 2,
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if msg := fieldMessages(t, err)["status"]; msg != "O status é obrigatório" {
		t.Fatalf("status message = %q", msg)
	}
}

func TestCreateBugAcceptsMissingTestID(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nil)

	bug := validBug()
	bug.TestID = nil
	if _, err := svc.CreateBug(context.Background(), bug); err != nil {
		t.Fatalf("CreateBug without test_id: %v", err)
	}
	if store.createdBug.TestID != nil {
		t.Fatalf("test_id = %v, want nil", store.createdBug.TestID)
	}
}

func TestCreateBugNormalizesLabels(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nil)

	bug := validBug()
	bug.Criticality = "  CRITICA "
	bug.Status = " Open"
	if _, err := svc.CreateBug(context.Background(), bug); err != nil {
		t.Fatalf("CreateBug: %v", err)
	}
	if store.createdBug.Criticality != "critica" {
		t.Fatalf("criticality = %q, want critica", store.createdBug.Criticality)
	}
	if store.createdBug.Status != "open" {
		t.Fatalf("status = %q, want open", store.createdBug.Status)
	}
}

func TestCreateTestMapsLegacyResult(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nil)

	test := ports.Test{
		Name:      "checkout regression",
		ServiceID: 2,
		Type:      "Funcional",
		Result:    "Reprovado",
	}
	if _, err := svc.CreateTest(context.Background(), test); err != nil {
		t.Fatalf("CreateTest: %v", err)
	}
	if store.createdTest.Result != "falho" {
		t.Fatalf("result = %q, want falho", store.createdTest.Result)
	}
	if store.createdTest.Type != "funcional" {
		t.Fatalf("type = %q, want funcional", store.createdTest.Type)
	}
}

func TestListTestsNormalizesFilter(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nil)

	_, err := svc.ListTests(context.Background(), ports.TestFilter{Result: "Bloqueado"})
	if err != nil {
		t.Fatalf("ListTests: %v", err)
	}
	if store.testFilter.Result != "quebrado" {
		t.Fatalf("filter result = %q, want quebrado", store.testFilter.Result)
	}
}

func TestDeleteServicePassesThroughNotFound(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nil)

	err := svc.DeleteService(context.Background(), 42)
	if !errors.Is(err, ports.ErrServiceNotFound) {
		t.Fatalf("err = %v, want ErrServiceNotFound", err)
	}
	if store.deletedID != 42 {
		t.Fatalf("deleted id = %d, want 42", store.deletedID)
	}
}
