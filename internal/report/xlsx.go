// Package report serializes the engine's output: the matches workbook on
// disk and the unmatched listing for the operator.
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/xuri/excelize/v2"

	"github.com/dcor01/student-mentor-matching/internal/domain"
)

var matchHeader = []any{
	"Student Name", "Student Age", "Student Program", "Student Faculty",
	"Student Campus", "Gender Preference",
	"Mentor Name", "Mentor Age", "Mentor Program", "Mentor Faculty",
	"Mentor Campus", "Mentor Gender", "Same Campus",
}

// WriteWorkbook writes one row per match, in engine order, to a single
// sheet. The output path is guarded by an advisory lock file so two
// concurrent runs cannot interleave writes to the same artifact.
func WriteWorkbook(path, sheet string, matches []domain.MatchResult) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	if !locked {
		return fmt.Errorf("%s is locked by another run", path)
	}
	defer lock.Unlock()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &matchHeader); err != nil {
		return err
	}

	for i, m := range matches {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			m.Student.Name, m.Student.Age, m.Student.Program, m.Student.Faculty,
			string(m.Student.Campus), string(m.Student.Preference),
			m.Mentor.Name, m.Mentor.Age, m.Mentor.Program, m.Mentor.Faculty,
			string(m.Mentor.Campus), string(m.Mentor.Gender), yesNo(m.SameCampus),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
