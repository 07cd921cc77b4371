// Package roster reads the input workbook and normalizes its rows into
// the canonical student and mentor records the matching engine consumes.
package roster

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet is one worksheet with headers canonicalized (lower-case, trimmed)
// once at ingestion. Data rows keep their 1-based workbook row numbers.
type Sheet struct {
	Name   string
	header map[string]int
	rows   [][]string
}

func readSheet(f *excelize.File, name string) (*Sheet, error) {
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", name)
	}

	s := &Sheet{Name: name, header: make(map[string]int), rows: rows[1:]}
	for i, h := range rows[0] {
		key := strings.ToLower(strings.TrimSpace(h))
		if key == "" {
			continue
		}
		if _, ok := s.header[key]; !ok {
			s.header[key] = i
		}
	}
	return s, nil
}

func (s *Sheet) require(cols ...string) error {
	for _, c := range cols {
		if _, ok := s.header[strings.ToLower(strings.TrimSpace(c))]; !ok {
			return fmt.Errorf("sheet %q: required column %q not found", s.Name, c)
		}
	}
	return nil
}

// value returns the trimmed cell under col for the given data row, or ""
// when the column is absent or the row is short.
func (s *Sheet) value(row []string, col string) string {
	i, ok := s.header[strings.ToLower(strings.TrimSpace(col))]
	if !ok || i >= len(row) {
		return ""
	}
	return CleanText(row[i])
}

// rowNum converts a data-row index to its 1-based workbook row number.
func (s *Sheet) rowNum(i int) int { return i + 2 }
