package api

import (
	"time"

	"qaboard/internal/ports"
)

// View types are the wire shapes of the catalog entities. Field names
// follow the stored column names.

type serviceView struct {
	ID                 uint      `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Owner              string    `json:"owner"`
	Repository         string    `json:"repository"`
	Documentation      string    `json:"documentation"`
	Status             string    `json:"status"`
	CoveragePercentage int       `json:"coverage_percentage"`
	Observations       string    `json:"observations"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func serviceToView(s ports.Service) serviceView {
	return serviceView{
		ID:                 s.ID,
		Name:               s.Name,
		Description:        s.Description,
		Owner:              s.Owner,
		Repository:         s.Repository,
		Documentation:      s.Documentation,
		Status:             s.Status,
		CoveragePercentage: s.CoveragePercentage,
		Observations:       s.Observations,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

func (v serviceView) toPorts() ports.Service {
	return ports.Service{
		ID:                 v.ID,
		Name:               v.Name,
		Description:        v.Description,
		Owner:              v.Owner,
		Repository:         v.Repository,
		Documentation:      v.Documentation,
		Status:             v.Status,
		CoveragePercentage: v.CoveragePercentage,
		Observations:       v.Observations,
	}
}

type testCaseView struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	ServiceID    uint      `json:"service_id"`
	ServiceName  string    `json:"service_name,omitempty"`
	UserStory    string    `json:"user_story"`
	Gherkin      string    `json:"gherkin"`
	TestData     string    `json:"test_data"`
	Status       string    `json:"status"`
	IsAutomated  bool      `json:"is_automated"`
	Observations string    `json:"observations"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func testCaseToView(tc ports.TestCase) testCaseView {
	return testCaseView{
		ID:           tc.ID,
		Name:         tc.Name,
		ServiceID:    tc.ServiceID,
		ServiceName:  tc.ServiceName,
		UserStory:    tc.UserStory,
		Gherkin:      tc.Gherkin,
		TestData:     tc.TestData,
		Status:       tc.Status,
		IsAutomated:  tc.IsAutomated,
		Observations: tc.Observations,
		CreatedAt:    tc.CreatedAt,
		UpdatedAt:    tc.UpdatedAt,
	}
}

func (v testCaseView) toPorts() ports.TestCase {
	return ports.TestCase{
		ID:           v.ID,
		Name:         v.Name,
		ServiceID:    v.ServiceID,
		UserStory:    v.UserStory,
		Gherkin:      v.Gherkin,
		TestData:     v.TestData,
		Status:       v.Status,
		IsAutomated:  v.IsAutomated,
		Observations: v.Observations,
	}
}

type testView struct {
	ID                uint       `json:"id"`
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	TestCaseID        *uint      `json:"test_case_id"`
	ServiceID         uint       `json:"service_id"`
	ServiceName       string     `json:"service_name,omitempty"`
	Type              string     `json:"type"`
	Result            string     `json:"result"`
	ExecutionDate     *time.Time `json:"execution_date"`
	ExecutionType     string     `json:"execution_type"`
	ExecutionLocation string     `json:"execution_location"`
	ExecutionMethod   string     `json:"execution_method"`
	TestData          string     `json:"test_data"`
	JiraLink          string     `json:"jira_link"`
	BugLink           string     `json:"bug_link"`
	Evidence          string     `json:"evidence"`
	ResponsibleQA     string     `json:"responsible_qa"`
	ResponsibleDev    string     `json:"responsible_dev"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func testToView(t ports.Test) testView {
	return testView{
		ID:                t.ID,
		Name:              t.Name,
		Description:       t.Description,
		TestCaseID:        t.TestCaseID,
		ServiceID:         t.ServiceID,
		ServiceName:       t.ServiceName,
		Type:              t.Type,
		Result:            t.Result,
		ExecutionDate:     t.ExecutionDate,
		ExecutionType:     t.ExecutionType,
		ExecutionLocation: t.ExecutionLocation,
		ExecutionMethod:   t.ExecutionMethod,
		TestData:          t.TestData,
		JiraLink:          t.JiraLink,
		BugLink:           t.BugLink,
		Evidence:          t.Evidence,
		ResponsibleQA:     t.ResponsibleQA,
		ResponsibleDev:    t.ResponsibleDev,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

func (v testView) toPorts() ports.Test {
	return ports.Test{
		ID:                v.ID,
		Name:              v.Name,
		Description:       v.Description,
		TestCaseID:        v.TestCaseID,
		ServiceID:         v.ServiceID,
		Type:              v.Type,
		Result:            v.Result,
		ExecutionDate:     v.ExecutionDate,
		ExecutionType:     v.ExecutionType,
		ExecutionLocation: v.ExecutionLocation,
		ExecutionMethod:   v.ExecutionMethod,
		TestData:          v.TestData,
		JiraLink:          v.JiraLink,
		BugLink:           v.BugLink,
		Evidence:          v.Evidence,
		ResponsibleQA:     v.ResponsibleQA,
		ResponsibleDev:    v.ResponsibleDev,
	}
}

type bugView struct {
	ID             uint       `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	TestID         *uint      `json:"test_id"`
	ServiceID      uint       `json:"service_id"`
	ServiceName    string     `json:"service_name,omitempty"`
	UserStory      string     `json:"user_story"`
	Gherkin        string     `json:"gherkin"`
	Evidence       string     `json:"evidence"`
	EvidenceLink   string     `json:"evidence_link"`
	Status         string     `json:"status"`
	Criticality    string     `json:"criticality"`
	Risk           string     `json:"risk"`
	Observations   string     `json:"observations"`
	FoundDate      *time.Time `json:"found_date"`
	ResolvedDate   *time.Time `json:"resolved_date"`
	RetestedDate   *time.Time `json:"retested_date"`
	ResponsibleQA  string     `json:"responsible_qa"`
	ResponsibleDev string     `json:"responsible_dev"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func bugToView(b ports.Bug) bugView {
	return bugView{
		ID:             b.ID,
		Name:           b.Name,
		Description:    b.Description,
		TestID:         b.TestID,
		ServiceID:      b.ServiceID,
		ServiceName:    b.ServiceName,
		UserStory:      b.UserStory,
		Gherkin:        b.Gherkin,
		Evidence:       b.Evidence,
		EvidenceLink:   b.EvidenceLink,
		Status:         b.Status,
		Criticality:    b.Criticality,
		Risk:           b.Risk,
		Observations:   b.Observations,
		FoundDate:      b.FoundDate,
		ResolvedDate:   b.ResolvedDate,
		RetestedDate:   b.RetestedDate,
		ResponsibleQA:  b.ResponsibleQA,
		ResponsibleDev: b.ResponsibleDev,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (v bugView) toPorts() ports.Bug {
	return ports.Bug{
		ID:             v.ID,
		Name:           v.Name,
		Description:    v.Description,
		TestID:         v.TestID,
		ServiceID:      v.ServiceID,
		UserStory:      v.UserStory,
		Gherkin:        v.Gherkin,
		Evidence:       v.Evidence,
		EvidenceLink:   v.EvidenceLink,
		Status:         v.Status,
		Criticality:    v.Criticality,
		Risk:           v.Risk,
		Observations:   v.Observations,
		FoundDate:      v.FoundDate,
		ResolvedDate:   v.ResolvedDate,
		RetestedDate:   v.RetestedDate,
		ResponsibleQA:  v.ResponsibleQA,
		ResponsibleDev: v.ResponsibleDev,
	}
}

type improvementView struct {
	ID           uint       `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	ServiceID    uint       `json:"service_id"`
	ServiceName  string     `json:"service_name,omitempty"`
	UserStory    string     `json:"user_story"`
	Evidence     string     `json:"evidence"`
	Status       string     `json:"status"`
	Observations string     `json:"observations"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func improvementToView(i ports.Improvement) improvementView {
	return improvementView{
		ID:           i.ID,
		Name:         i.Name,
		Description:  i.Description,
		ServiceID:    i.ServiceID,
		ServiceName:  i.ServiceName,
		UserStory:    i.UserStory,
		Evidence:     i.Evidence,
		Status:       i.Status,
		Observations: i.Observations,
		StartDate:    i.StartDate,
		EndDate:      i.EndDate,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

func (v improvementView) toPorts() ports.Improvement {
	return ports.Improvement{
		ID:           v.ID,
		Name:         v.Name,
		Description:  v.Description,
		ServiceID:    v.ServiceID,
		UserStory:    v.UserStory,
		Evidence:     v.Evidence,
		Status:       v.Status,
		Observations: v.Observations,
		StartDate:    v.StartDate,
		EndDate:      v.EndDate,
	}
}

type planView struct {
	ID            uint       `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	ServiceID     uint       `json:"service_id"`
	ServiceName   string     `json:"service_name,omitempty"`
	TestType      string     `json:"test_type"`
	TargetMetrics string     `json:"target_metrics"`
	TestData      string     `json:"test_data"`
	ExecutionDate *time.Time `json:"execution_date"`
	Results       string     `json:"results"`
	Status        string     `json:"status"`
	Observations  string     `json:"observations"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func planToView(p ports.PerformancePlan) planView {
	return planView{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		ServiceID:     p.ServiceID,
		ServiceName:   p.ServiceName,
		TestType:      p.TestType,
		TargetMetrics: p.TargetMetrics,
		TestData:      p.TestData,
		ExecutionDate: p.ExecutionDate,
		Results:       p.Results,
		Status:        p.Status,
		Observations:  p.Observations,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (v planView) toPorts() ports.PerformancePlan {
	return ports.PerformancePlan{
		ID:            v.ID,
		Name:          v.Name,
		Description:   v.Description,
		ServiceID:     v.ServiceID,
		TestType:      v.TestType,
		TargetMetrics: v.TargetMetrics,
		TestData:      v.TestData,
		ExecutionDate: v.ExecutionDate,
		Results:       v.Results,
		Status:        v.Status,
		Observations:  v.Observations,
		StartDate:     v.StartDate,
		EndDate:       v.EndDate,
	}
}
