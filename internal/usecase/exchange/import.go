package exchange

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/xuri/excelize/v2"

	"qaboard/internal/errs"
	"qaboard/internal/ports"
)

// RowError reports one rejected spreadsheet row. Row is the 1-based
// spreadsheet row number, header included.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Result is the outcome of one import. Rows insert independently, so
// a partial success reports both the inserted count and every failure.
type Result struct {
	Inserted int        `json:"inserted"`
	Errors   []RowError `json:"errors,omitempty"`
}

// Import reads the first sheet of the workbook, maps header labels to
// fields and inserts each data row through the catalog service. Rows
// are inserted concurrently and never atomically: a failing row does
// not roll back its siblings.
func (s *Service) Import(ctx context.Context, entity string, r io.Reader) (Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Result{}, errs.Wrap(err, "open workbook")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Result{}, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Result{}, errs.Wrap(err, "read sheet rows")
	}
	if len(rows) == 0 {
		return Result{}, errors.New("sheet has no header row")
	}

	switch entity {
	case EntityServices:
		return importRows(ctx, rows, serviceColumns, func(ctx context.Context, v ports.Service) error {
			_, err := s.catalog.CreateService(ctx, v)
			return err
		})
	case EntityTestCases:
		return importRows(ctx, rows, testCaseColumns, func(ctx context.Context, v ports.TestCase) error {
			_, err := s.catalog.CreateTestCase(ctx, v)
			return err
		})
	case EntityTests:
		return importRows(ctx, rows, testColumns, func(ctx context.Context, v ports.Test) error {
			_, err := s.catalog.CreateTest(ctx, v)
			return err
		})
	case EntityBugs:
		return importRows(ctx, rows, bugColumns, func(ctx context.Context, v ports.Bug) error {
			_, err := s.catalog.CreateBug(ctx, v)
			return err
		})
	case EntityImprovements:
		return importRows(ctx, rows, improvementColumns, func(ctx context.Context, v ports.Improvement) error {
			_, err := s.catalog.CreateImprovement(ctx, v)
			return err
		})
	case EntityPerformance:
		return importRows(ctx, rows, planColumns, func(ctx context.Context, v ports.PerformancePlan) error {
			_, err := s.catalog.CreatePlan(ctx, v)
			return err
		})
	}
	return Result{}, ErrUnknownEntity{Entity: entity}
}

func importRows[T any](ctx context.Context, rows [][]string, cols []column[T], insert func(context.Context, T) error) (Result, error) {
	// Header labels map to column definitions; unknown headers are
	// ignored so extra columns never break an import.
	setters := make([]func(*T, string) error, len(rows[0]))
	for i, header := range rows[0] {
		header = strings.TrimSpace(header)
		for _, col := range cols {
			if col.set != nil && strings.EqualFold(col.header, header) {
				setters[i] = col.set
				break
			}
		}
	}

	type parsed struct {
		rowNum int
		value  T
	}

	var records []parsed
	var result Result
	for i, cells := range rows[1:] {
		rowNum := i + 2
		if emptyRow(cells) {
			continue
		}

		var value T
		var rowErr error
		for c, cell := range cells {
			if c >= len(setters) || setters[c] == nil {
				continue
			}
			if err := setters[c](&value, cell); err != nil {
				rowErr = err
				break
			}
		}
		if rowErr != nil {
			result.Errors = append(result.Errors, RowError{Row: rowNum, Message: rowErr.Error()})
			continue
		}
		records = append(records, parsed{rowNum: rowNum, value: value})
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		inserted int
	)
	for _, rec := range records {
		wg.Add(1)
		go func(rec parsed) {
			defer wg.Done()
			if err := insert(ctx, rec.value); err != nil {
				mu.Lock()
				result.Errors = append(result.Errors, RowError{
					Row:     rec.rowNum,
					Message: fmt.Sprintf("linha rejeitada: %v", err),
				})
				mu.Unlock()
				return
			}
			mu.Lock()
			inserted++
			mu.Unlock()
		}(rec)
	}
	wg.Wait()

	result.Inserted = inserted
	sort.Slice(result.Errors, func(i, j int) bool {
		return result.Errors[i].Row < result.Errors[j].Row
	})
	return result, nil
}

func emptyRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
