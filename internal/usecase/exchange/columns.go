package exchange

import (
	"qaboard/internal/ports"
)

// column binds one spreadsheet header to a field of the entity. set is
// nil for export-only columns (ids and join fields the store assigns).
type column[T any] struct {
	header string
	get    func(T) string
	set    func(*T, string) error
}

func textCol[T any](header string, get func(T) string, set func(*T, string)) column[T] {
	return column[T]{
		header: header,
		get:    get,
		set: func(e *T, cell string) error {
			set(e, cell)
			return nil
		},
	}
}

func exportOnlyCol[T any](header string, get func(T) string) column[T] {
	return column[T]{header: header, get: get}
}

var serviceColumns = []column[ports.Service]{
	exportOnlyCol("ID", func(s ports.Service) string { return formatUint(s.ID) }),
	textCol("Nome",
		func(s ports.Service) string { return s.Name },
		func(s *ports.Service, v string) { s.Name = v }),
	textCol("Descrição",
		func(s ports.Service) string { return s.Description },
		func(s *ports.Service, v string) { s.Description = v }),
	textCol("Responsável",
		func(s ports.Service) string { return s.Owner },
		func(s *ports.Service, v string) { s.Owner = v }),
	textCol("Repositório",
		func(s ports.Service) string { return s.Repository },
		func(s *ports.Service, v string) { s.Repository = v }),
	textCol("Documentação",
		func(s ports.Service) string { return s.Documentation },
		func(s *ports.Service, v string) { s.Documentation = v }),
	textCol("Status",
		func(s ports.Service) string { return s.Status },
		func(s *ports.Service, v string) { s.Status = v }),
	{
		header: "Cobertura (%)",
		get:    func(s ports.Service) string { return formatUint(uint(s.CoveragePercentage)) },
		set: func(s *ports.Service, cell string) error {
			v, err := parseUintCell(cell)
			if err != nil {
				return err
			}
			s.CoveragePercentage = int(v)
			return nil
		},
	},
	textCol("Observações",
		func(s ports.Service) string { return s.Observations },
		func(s *ports.Service, v string) { s.Observations = v }),
}

var testCaseColumns = []column[ports.TestCase]{
	exportOnlyCol("ID", func(tc ports.TestCase) string { return formatUint(tc.ID) }),
	textCol("Nome",
		func(tc ports.TestCase) string { return tc.Name },
		func(tc *ports.TestCase, v string) { tc.Name = v }),
	{
		header: "Serviço (ID)",
		get:    func(tc ports.TestCase) string { return formatUint(tc.ServiceID) },
		set: func(tc *ports.TestCase, cell string) error {
			v, err := parseUintCell(cell)
			if err != nil {
				return err
			}
			tc.ServiceID = v
			return nil
		},
	},
	exportOnlyCol("Serviço", func(tc ports.TestCase) string { return tc.ServiceName }),
	textCol("História de Usuário",
		func(tc ports.TestCase) string { return tc.UserStory },
		func(tc *ports.TestCase, v string) { tc.UserStory = v }),
	textCol("Gherkin",
		func(tc ports.TestCase) string { return tc.Gherkin },
		func(tc *ports.TestCase, v string) { tc.Gherkin = v }),
	textCol("Massa de Teste",
		func(tc ports.TestCase) string { return tc.TestData },
		func(tc *ports.TestCase, v string) { tc.TestData = v }),
	textCol("Status",
		func(tc ports.TestCase) string { return tc.Status },
		func(tc *ports.TestCase, v string) { tc.Status = v }),
	{
		header: "Automatizado",
		get:    func(tc ports.TestCase) string { return formatBool(tc.IsAutomated) },
		set: func(tc *ports.TestCase, cell string) error {
			tc.IsAutomated = parseBoolCell(cell)
			return nil
		},
	},
	textCol("Observações",
		func(tc ports.TestCase) string { return tc.Observations },
		func(tc *ports.TestCase, v string) { tc.Observations = v }),
}

var testColumns = []column[ports.Test]{
	exportOnlyCol("ID", func(t ports.Test) string { return formatUint(t.ID) }),
	textCol("Nome",
		func(t ports.Test) string { return t.Name },
		func(t *ports.Test, v string) { t.Name = v }),
	textCol("Descrição",
		func(t ports.Test) string { return t.Description },
		func(t *ports.Test, v string) { t.Description = v }),
	{
		header: "Caso de Teste (ID)",
		get:    func(t ports.Test) string { return formatUintPtr(t.TestCaseID) },
		set: func(t *ports.Test, cell string) error {
			v, err := parseUintPtrCell(cell)
			if err != nil {
				return err
			}
			t.TestCaseID = v
			return nil
		},
	},
	{
		header: "Serviço (ID)",
		get:    func(t ports.Test) string { return formatUint(t.ServiceID) },
		set: func(t *ports.Test, cell string) error {
			v, err := parseUintCell(cell)
			if err != nil {
				return err
			}
			t.ServiceID = v
			return nil
		},
	},
	exportOnlyCol("Serviço", func(t ports.Test) string { return t.ServiceName }),
	textCol("Tipo",
		func(t ports.Test) string { return t.Type },
		func(t *ports.Test, v string) { t.Type = v }),
	textCol("Resultado",
		func(t ports.Test) string { return t.Result },
		func(t *ports.Test, v string) { t.Result = v }),
	{
		header: "Data de Execução",
		get:    func(t ports.Test) string { return formatDate(t.ExecutionDate) },
		set: func(t *ports.Test, cell string) error {
			d, err := parseDate(cell)
			if err != nil {
				return err
			}
			t.ExecutionDate = d
			return nil
		},
	},
	textCol("Tipo de Execução",
		func(t ports.Test) string { return t.ExecutionType },
		func(t *ports.Test, v string) { t.ExecutionType = v }),
	textCol("Local de Execução",
		func(t ports.Test) string { return t.ExecutionLocation },
		func(t *ports.Test, v string) { t.ExecutionLocation = v }),
	textCol("Método de Execução",
		func(t ports.Test) string { return t.ExecutionMethod },
		func(t *ports.Test, v string) { t.ExecutionMethod = v }),
	textCol("Massa de Teste",
		func(t ports.Test) string { return t.TestData },
		func(t *ports.Test, v string) { t.TestData = v }),
	textCol("Link Jira",
		func(t ports.Test) string { return t.JiraLink },
		func(t *ports.Test, v string) { t.JiraLink = v }),
	textCol("Link do Bug",
		func(t ports.Test) string { return t.BugLink },
		func(t *ports.Test, v string) { t.BugLink = v }),
	textCol("Evidência",
		func(t ports.Test) string { return t.Evidence },
		func(t *ports.Test, v string) { t.Evidence = v }),
	textCol("QA Responsável",
		func(t ports.Test) string { return t.ResponsibleQA },
		func(t *ports.Test, v string) { t.ResponsibleQA = v }),
	textCol("Dev Responsável",
		func(t ports.Test) string { return t.ResponsibleDev },
		func(t *ports.Test, v string) { t.ResponsibleDev = v }),
}

var bugColumns = []column[ports.Bug]{
	exportOnlyCol("ID", func(b ports.Bug) string { return formatUint(b.ID) }),
	textCol("Nome",
		func(b ports.Bug) string { return b.Name },
		func(b *ports.Bug, v string) { b.Name = v }),
	textCol("Descrição",
		func(b ports.Bug) string { return b.Description },
		func(b *ports.Bug, v string) { b.Description = v }),
	{
		header: "Teste (ID)",
		get:    func(b ports.Bug) string { return formatUintPtr(b.TestID) },
		set: func(b *ports.Bug, cell string) error {
			v, err := parseUintPtrCell(cell)
			if err != nil {
				return err
			}
			b.TestID = v
			return nil
		},
	},
	{
		header: "Serviço (ID)",
		get:    func(b ports.Bug) string { return formatUint(b.ServiceID) },
		set: func(b *ports.Bug, cell string) error {
			v, err := parseUintCell(cell)
			if err != nil {
				return err
			}
			b.ServiceID = v
			return nil
		},
	},
	exportOnlyCol("Serviço", func(b ports.Bug) string { return b.ServiceName }),
	textCol("História de Usuário",
		func(b ports.Bug) string { return b.UserStory },
		func(b *ports.Bug, v string) { b.UserStory = v }),
	textCol("Gherkin",
		func(b ports.Bug) string { return b.Gherkin },
		func(b *ports.Bug, v string) { b.Gherkin = v }),
	textCol("Evidência",
		func(b ports.Bug) string { return b.Evidence },
		func(b *ports.Bug, v string) { b.Evidence = v }),
	textCol("Link da Evidência",
		func(b ports.Bug) string { return b.EvidenceLink },
		func(b *ports.Bug, v string) { b.EvidenceLink = v }),
	textCol("Status",
		func(b ports.Bug) string { return b.Status },
		func(b *ports.Bug, v string) { b.Status = v }),
	textCol("Criticidade",
		func(b ports.Bug) string { return b.Criticality },
		func(b *ports.Bug, v string) { b.Criticality = v }),
	textCol("Risco",
		func(b ports.Bug) string { return b.Risk },
		func(b *ports.Bug, v string) { b.Risk = v }),
	textCol("Observações",
		func(b ports.Bug) string { return b.Observations },
		func(b *ports.Bug, v string) { b.Observations = v }),
	{
		header: "Data de Abertura",
		get:    func(b ports.Bug) string { return formatDate(b.FoundDate) },
		set: func(b *ports.Bug, cell string) error {
			d, err := parseDate(cell)
			if err != nil {
				return err
			}
			b.FoundDate = d
			return nil
		},
	},
	{
		header: "Data de Resolução",
		get:    func(b ports.Bug) string { return formatDate(b.ResolvedDate) },
		set: func(b *ports.Bug, cell string) error {
			d, err := parseDate(cell)
			if err != nil {
				return err
			}
			b.ResolvedDate = d
			return nil
		},
	},
	{
		header: "Data de Reteste",
		get:    func(b ports.Bug) string { return formatDate(b.RetestedDate) },
		set: func(b *ports.Bug, cell string) error {
			d, err := parseDate(cell)
			if err != nil {
				return err
			}
			b.RetestedDate = d
			return nil
		},
	},
	textCol("QA Responsável",
		func(b ports.Bug) string { return b.ResponsibleQA },
		func(b *ports.Bug, v string) { b.ResponsibleQA = v }),
	textCol("Dev Responsável",
		func(b ports.Bug) string { return b.ResponsibleDev },
		func(b *ports.Bug, v string) { b.ResponsibleDev = v }),
}

var improvementColumns = []column[ports.Improvement]{
	exportOnlyCol("ID", func(i ports.Improvement) string { return formatUint(i.ID) }),
	textCol("Nome",
		func(i ports.Improvement) string { return i.Name },
		func(i *ports.Improvement, v string) { i.Name = v }),
	textCol("Descrição",
		func(i ports.Improvement) string { return i.Description },
		func(i *ports.Improvement, v string) { i.Description = v }),
	{
		header: "Serviço (ID)",
		get:    func(i ports.Improvement) string { return formatUint(i.ServiceID) },
		set: func(i *ports.Improvement, cell string) error {
			v, err := parseUintCell(cell)
			if err != nil {
				return err
			}
			i.ServiceID = v
			return nil
		},
	},
	exportOnlyCol("Serviço", func(i ports.Improvement) string { return i.ServiceName }),
	textCol("História de Usuário",
		func(i ports.Improvement) string { return i.UserStory },
		func(i *ports.Improvement, v string) { i.UserStory = v }),
	textCol("Evidência",
		func(i ports.Improvement) string { return i.Evidence },
		func(i *ports.Improvement, v string) { i.Evidence = v }),
	textCol("Status",
		func(i ports.Improvement) string { return i.Status },
		func(i *ports.Improvement, v string) { i.Status = v }),
	textCol("Observações",
		func(i ports.Improvement) string { return i.Observations },
		func(i *ports.Improvement, v string) { i.Observations = v }),
	{
		header: "Data de Início",
		get:    func(i ports.Improvement) string { return formatDate(i.StartDate) },
		set: func(i *ports.Improvement, cell string) error {
			d, err := parseDate(cell)
			if err != nil {
				return err
			}
			i.StartDate = d
			return nil
		},
	},
	{
		header: "Data de Fim",
		get:    func(i ports.Improvement) string { return formatDate(i.EndDate) },
		set: func(i *ports.Improvement, cell string) error {
			d, err := parseDate(cell)
			if err != nil {
				return err
			}
			i.EndDate = d
			return nil
		},
	},
}

var planColumns = []column[ports.PerformancePlan]{
	exportOnlyCol("ID", func(p ports.PerformancePlan) string { return formatUint(p.ID) }),
	textCol("Nome",
		func(p ports.PerformancePlan) string { return p.Name },
		func(p *ports.PerformancePlan, v string) { p.Name = v }),
	textCol("Descrição",
		func(p ports.PerformancePlan) string { return p.Description },
		func(p *ports.PerformancePlan, v string) { p.Description = v }),
	{
		header: "Serviço (ID)",
		get:    func(p ports.PerformancePlan) string { return formatUint(p.ServiceID) },
		set: func(p *ports.PerformancePlan, cell string) error {
			v, err := parseUintCell(cell)
			if err != nil {
				return err
			}
			p.ServiceID = v
			return nil
		},
	},
	exportOnlyCol("Serviço", func(p ports.PerformancePlan) string { return p.ServiceName }),
	textCol("Tipo de Teste",
		func(p ports.PerformancePlan) string { return p.TestType },
		func(p *ports.PerformancePlan, v string) { p.TestType = v }),
	textCol("Métricas Alvo",
		func(p ports.PerformancePlan) string { return p.TargetMetrics },
		func(p *ports.PerformancePlan, v string) { p.TargetMetrics = v }),
	textCol("Massa de Teste",
		func(p ports.PerformancePlan) string { return p.TestData },
		func(p *ports.PerformancePlan, v string) { p.TestData = v }),
	{
		header: "Data de Execução",
		get:    func(p ports.PerformancePlan) string { return formatDate(p.ExecutionDate) },
		set: func(p *ports.PerformancePlan, cell string) error {
			d, err := parseDate(cell)
			if err != nil {
				return err
			}
			p.ExecutionDate = d
			return nil
		},
	},
	textCol("Resultados",
		func(p ports.PerformancePlan) string { return p.Results },
		func(p *ports.PerformancePlan, v string) { p.Results = v }),
	textCol("Status",
		func(p ports.PerformancePlan) string { return p.Status },
		func(p *ports.PerformancePlan, v string) { p.Status = v }),
	textCol("Observações",
		func(p ports.PerformancePlan) string { return p.Observations },
		func(p *ports.PerformancePlan, v string) { p.Observations = v }),
	{
		header: "Data de Início",
		get:    func(p ports.PerformancePlan) string { return formatDate(p.StartDate) },
		set: func(p *ports.PerformancePlan, cell string) error {
			d, err := parseDate(cell)
			if err != nil {
				return err
			}
			p.StartDate = d
			return nil
		},
	},
	{
		header: "Data de Fim",
		get:    func(p ports.PerformancePlan) string { return formatDate(p.EndDate) },
		set: func(p *ports.PerformancePlan, cell string) error {
			d, err := parseDate(cell)
			if err != nil {
				return err
			}
			p.EndDate = d
			return nil
		},
	},
}
