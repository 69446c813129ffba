package exchange

import (
	"context"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"qaboard/internal/errs"
	"qaboard/internal/ports"
	"qaboard/internal/usecase/catalog"
)

// Entity keys accepted by Export and Import.
const (
	EntityServices     = "services"
	EntityTestCases    = "test-cases"
	EntityTests        = "tests"
	EntityBugs         = "bugs"
	EntityImprovements = "improvements"
	EntityPerformance  = "performance"
)

const maxColumnWidth = 50

// ErrUnknownEntity is returned for an entity key outside the set above.
type ErrUnknownEntity struct {
	Entity string
}

func (e ErrUnknownEntity) Error() string {
	return fmt.Sprintf("unknown entity %q", e.Entity)
}

// Service moves catalog rows in and out of xlsx workbooks. Writes go
// through the catalog service so imported rows get the same validation
// and label normalization as the API.
type Service struct {
	catalog *catalog.Service
}

func NewService(catalog *catalog.Service) *Service {
	return &Service{catalog: catalog}
}

// Export loads every row of one entity and renders a single-sheet
// workbook, newest rows first.
func (s *Service) Export(ctx context.Context, entity string) (*excelize.File, error) {
	switch entity {
	case EntityServices:
		rows, err := s.catalog.ListServices(ctx)
		if err != nil {
			return nil, errs.Wrap(err, "list services for export")
		}
		sortNewestFirst(rows, func(i int) uint { return rows[i].ID })
		return exportSheet("Serviços", serviceColumns, rows)
	case EntityTestCases:
		rows, err := s.catalog.ListTestCases(ctx)
		if err != nil {
			return nil, errs.Wrap(err, "list test cases for export")
		}
		sortNewestFirst(rows, func(i int) uint { return rows[i].ID })
		return exportSheet("Casos de Teste", testCaseColumns, rows)
	case EntityTests:
		rows, err := s.catalog.ListTests(ctx, ports.TestFilter{})
		if err != nil {
			return nil, errs.Wrap(err, "list tests for export")
		}
		sortNewestFirst(rows, func(i int) uint { return rows[i].ID })
		return exportSheet("Testes", testColumns, rows)
	case EntityBugs:
		rows, err := s.catalog.ListBugs(ctx, ports.BugFilter{})
		if err != nil {
			return nil, errs.Wrap(err, "list bugs for export")
		}
		sortNewestFirst(rows, func(i int) uint { return rows[i].ID })
		return exportSheet("Bugs", bugColumns, rows)
	case EntityImprovements:
		rows, err := s.catalog.ListImprovements(ctx)
		if err != nil {
			return nil, errs.Wrap(err, "list improvements for export")
		}
		sortNewestFirst(rows, func(i int) uint { return rows[i].ID })
		return exportSheet("Melhorias", improvementColumns, rows)
	case EntityPerformance:
		rows, err := s.catalog.ListPlans(ctx)
		if err != nil {
			return nil, errs.Wrap(err, "list performance plans for export")
		}
		sortNewestFirst(rows, func(i int) uint { return rows[i].ID })
		return exportSheet("Planos de Performance", planColumns, rows)
	}
	return nil, ErrUnknownEntity{Entity: entity}
}

func sortNewestFirst[T any](rows []T, id func(int) uint) {
	sort.SliceStable(rows, func(i, j int) bool {
		return id(i) > id(j)
	})
}

func exportSheet[T any](sheetName string, cols []column[T], rows []T) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, errs.Wrap(err, "name export sheet")
	}

	widths := make([]int, len(cols))
	for i, col := range cols {
		widths[i] = len([]rune(col.header))
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, errs.Wrap(err, "build header cell name")
		}
		if err := f.SetCellValue(sheetName, cell, col.header); err != nil {
			return nil, errs.Wrap(err, "write header cell")
		}
	}

	for r, row := range rows {
		for c, col := range cols {
			value := col.get(row)
			if n := len([]rune(value)); n > widths[c] {
				widths[c] = n
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, errs.Wrap(err, "build cell name")
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, errs.Wrap(err, "write cell")
			}
		}
	}

	for i := range cols {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, errs.Wrap(err, "build column name")
		}
		width := widths[i] + 2
		if width > maxColumnWidth {
			width = maxColumnWidth
		}
		if err := f.SetColWidth(sheetName, name, name, float64(width)); err != nil {
			return nil, errs.Wrap(err, "set column width")
		}
	}

	return f, nil
}
