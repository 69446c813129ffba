package ports

import (
	"context"
	"errors"
	"time"
)

var (
	ErrServiceNotFound     = errors.New("service not found")
	ErrTestCaseNotFound    = errors.New("test case not found")
	ErrTestNotFound        = errors.New("test not found")
	ErrBugNotFound         = errors.New("bug not found")
	ErrImprovementNotFound = errors.New("improvement not found")
	ErrPlanNotFound        = errors.New("performance plan not found")
)

// Service is the root entity; every other record references one.
type Service struct {
	ID                 uint
	Name               string
	Description        string
	Owner              string
	Repository         string
	Documentation      string
	Status             string
	CoveragePercentage int
	Observations       string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type TestCase struct {
	ID          uint
	Name        string
	ServiceID   uint
	ServiceName string
	UserStory   string
	Gherkin     string
	TestData    string
	Status      string
	IsAutomated bool
	Observations string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Test is an execution record, optionally linked to a test case.
type Test struct {
	ID                uint
	Name              string
	Description       string
	TestCaseID        *uint
	ServiceID         uint
	ServiceName       string
	Type              string
	Result            string
	ExecutionDate     *time.Time
	ExecutionType     string
	ExecutionLocation string
	ExecutionMethod   string
	TestData          string
	JiraLink          string
	BugLink           string
	Evidence          string
	ResponsibleQA     string
	ResponsibleDev    string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type Bug struct {
	ID             uint
	Name           string
	Description    string
	TestID         *uint
	ServiceID      uint
	ServiceName    string
	UserStory      string
	Gherkin        string
	Evidence       string
	EvidenceLink   string
	Status         string
	Criticality    string
	Risk           string
	Observations   string
	FoundDate      *time.Time
	ResolvedDate   *time.Time
	RetestedDate   *time.Time
	ResponsibleQA  string
	ResponsibleDev string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Improvement struct {
	ID           uint
	Name         string
	Description  string
	ServiceID    uint
	ServiceName  string
	UserStory    string
	Evidence     string
	Status       string
	Observations string
	StartDate    *time.Time
	EndDate      *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type PerformancePlan struct {
	ID            uint
	Name          string
	Description   string
	ServiceID     uint
	ServiceName   string
	TestType      string
	TargetMetrics string
	TestData      string
	ExecutionDate *time.Time
	Results       string
	Status        string
	Observations  string
	StartDate     *time.Time
	EndDate       *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BugFilter narrows ListBugs; zero values mean "no constraint".
type BugFilter struct {
	Query       string
	Status      string
	Criticality string
	Risk        string
	FoundFrom   *time.Time
	FoundTo     *time.Time
	Responsible string
}

type TestFilter struct {
	Query     string
	Type      string
	Result    string
	ServiceID uint
}

type ServiceStore interface {
	CreateService(ctx context.Context, svc Service) (Service, error)
	UpdateService(ctx context.Context, svc Service) (Service, error)
	DeleteService(ctx context.Context, id uint) error
	GetService(ctx context.Context, id uint) (Service, error)
	ListServices(ctx context.Context) ([]Service, error)
}

type TestCaseStore interface {
	CreateTestCase(ctx context.Context, tc TestCase) (TestCase, error)
	UpdateTestCase(ctx context.Context, tc TestCase) (TestCase, error)
	DeleteTestCase(ctx context.Context, id uint) error
	GetTestCase(ctx context.Context, id uint) (TestCase, error)
	ListTestCases(ctx context.Context) ([]TestCase, error)
}

type TestStore interface {
	CreateTest(ctx context.Context, test Test) (Test, error)
	UpdateTest(ctx context.Context, test Test) (Test, error)
	DeleteTest(ctx context.Context, id uint) error
	GetTest(ctx context.Context, id uint) (Test, error)
	ListTests(ctx context.Context, filter TestFilter) ([]Test, error)
}

type BugStore interface {
	CreateBug(ctx context.Context, bug Bug) (Bug, error)
	UpdateBug(ctx context.Context, bug Bug) (Bug, error)
	DeleteBug(ctx context.Context, id uint) error
	GetBug(ctx context.Context, id uint) (Bug, error)
	ListBugs(ctx context.Context, filter BugFilter) ([]Bug, error)
}

type ImprovementStore interface {
	CreateImprovement(ctx context.Context, imp Improvement) (Improvement, error)
	UpdateImprovement(ctx context.Context, imp Improvement) (Improvement, error)
	DeleteImprovement(ctx context.Context, id uint) error
	GetImprovement(ctx context.Context, id uint) (Improvement, error)
	ListImprovements(ctx context.Context) ([]Improvement, error)
}

type PlanStore interface {
	CreatePlan(ctx context.Context, plan PerformancePlan) (PerformancePlan, error)
	UpdatePlan(ctx context.Context, plan PerformancePlan) (PerformancePlan, error)
	DeletePlan(ctx context.Context, id uint) error
	GetPlan(ctx context.Context, id uint) (PerformancePlan, error)
	ListPlans(ctx context.Context) ([]PerformancePlan, error)
}

// CatalogStore is the full CRUD surface over the entity store.
type CatalogStore interface {
	ServiceStore
	TestCaseStore
	TestStore
	BugStore
	ImprovementStore
	PlanStore
}
