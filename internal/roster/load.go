package roster

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/dcor01/student-mentor-matching/internal/config"
	"github.com/dcor01/student-mentor-matching/internal/domain"
)

type Rosters struct {
	Students []domain.StudentRecord
	Mentors  []domain.MentorRecord
	Failures []Failure
}

// Load opens the workbook and builds both normalized pools. Missing file,
// sheet or required column is fatal; bad rows are excluded and reported
// through Failures.
func Load(path string, cfg config.Config) (Rosters, error) {
	var out Rosters

	f, err := excelize.OpenFile(path)
	if err != nil {
		return out, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	campuses := CampusTable{
		Campus1: cfg.Campus.Campus1Keywords,
		Campus2: cfg.Campus.Campus2Keywords,
	}

	students, err := readSheet(f, cfg.Sheets.Students)
	if err != nil {
		return out, err
	}
	mentors, err := readSheet(f, cfg.Sheets.Mentors)
	if err != nil {
		return out, err
	}

	out.Students, out.Failures, err = loadStudents(students, campuses, out.Failures)
	if err != nil {
		return out, err
	}
	out.Mentors, out.Failures, err = loadMentors(mentors, campuses, cfg.Columns.Title, cfg.Matching.MentorCapacity, out.Failures)
	if err != nil {
		return out, err
	}
	return out, nil
}

func loadStudents(s *Sheet, campuses CampusTable, failures []Failure) ([]domain.StudentRecord, []Failure, error) {
	if err := s.require("age", "faculty", "gender_preference"); err != nil {
		return nil, failures, err
	}

	var students []domain.StudentRecord
	for i, row := range s.rows {
		age, err := ParseAge(s.value(row, "age"))
		if err != nil {
			failures = append(failures, Failure{s.Name, s.rowNum(i), err.Error()})
			continue
		}
		pref, err := ParsePreference(s.value(row, "gender_preference"))
		if err != nil {
			failures = append(failures, Failure{s.Name, s.rowNum(i), err.Error()})
			continue
		}
		faculty := s.value(row, "faculty")
		students = append(students, domain.StudentRecord{
			Row:        s.rowNum(i),
			Name:       s.value(row, "name"),
			Age:        age,
			Program:    s.value(row, "program"),
			Faculty:    faculty,
			Campus:     campuses.Lookup(faculty),
			Preference: pref,
		})
	}
	return students, failures, nil
}

func loadMentors(s *Sheet, campuses CampusTable, titleCol string, capacity int, failures []Failure) ([]domain.MentorRecord, []Failure, error) {
	if err := s.require("age", "faculty", titleCol); err != nil {
		return nil, failures, err
	}

	var mentors []domain.MentorRecord
	for i, row := range s.rows {
		age, err := ParseAge(s.value(row, "age"))
		if err != nil {
			failures = append(failures, Failure{s.Name, s.rowNum(i), err.Error()})
			continue
		}
		gender, err := ParseTitle(s.value(row, titleCol))
		if err != nil {
			failures = append(failures, Failure{s.Name, s.rowNum(i), err.Error()})
			continue
		}
		faculty := s.value(row, "faculty")
		mentors = append(mentors, domain.MentorRecord{
			Row:       s.rowNum(i),
			Name:      s.value(row, "name"),
			Age:       age,
			Program:   s.value(row, "program"),
			Faculty:   faculty,
			Campus:    campuses.Lookup(faculty),
			Gender:    gender,
			Remaining: capacity,
		})
	}
	return mentors, failures, nil
}
