package exchange

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const brDateLayout = "02/01/2006"

// formatDate renders the pt-BR spreadsheet date, empty for nil.
func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(brDateLayout)
}

// parseDate accepts DD/MM/YYYY first and falls back to ISO forms.
// Empty cells mean no date.
func parseDate(cell string) (*time.Time, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil, nil
	}
	for _, layout := range []string{brDateLayout, "2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, cell); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("data inválida: %q", cell)
}

func formatUint(v uint) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(v), 10)
}

func formatUintPtr(v *uint) string {
	if v == nil {
		return ""
	}
	return strconv.FormatUint(uint64(*v), 10)
}

func parseUintCell(cell string) (uint, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(cell, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("número inválido: %q", cell)
	}
	return uint(v), nil
}

func parseUintPtrCell(cell string) (*uint, error) {
	v, err := parseUintCell(cell)
	if err != nil || v == 0 {
		return nil, err
	}
	return &v, nil
}

func formatBool(v bool) string {
	if v {
		return "sim"
	}
	return "não"
}

func parseBoolCell(cell string) bool {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "sim", "true", "1", "yes":
		return true
	}
	return false
}
