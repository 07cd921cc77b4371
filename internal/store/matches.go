// Package store writes the run's matches into a sqlite database for
// downstream querying. The tables are recreated on every run; the file
// is a per-run artifact, not state carried between runs.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dcor01/student-mentor-matching/internal/domain"
)

// SaveRun replaces the matches table with this run's output, keeping the
// engine's ordering in the position column.
func (d *DB) SaveRun(ctx context.Context, capacity int, matches []domain.MatchResult) error {
	if err := migrate(d.Pool); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	tx, err := d.Pool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM matches;`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO run_info(capacity, created_at) VALUES(?, ?);`,
		capacity, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO matches (
  position, student_row, student_name, student_age, student_program,
  student_faculty, student_campus, gender_preference,
  mentor_row, mentor_name, mentor_age, mentor_program,
  mentor_faculty, mentor_campus, mentor_gender, same_campus
) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?);`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, m := range matches {
		same := 0
		if m.SameCampus {
			same = 1
		}
		if _, err := stmt.ExecContext(ctx,
			i+1,
			m.Student.Row, m.Student.Name, m.Student.Age, m.Student.Program,
			m.Student.Faculty, string(m.Student.Campus), string(m.Student.Preference),
			m.Mentor.Row, m.Mentor.Name, m.Mentor.Age, m.Mentor.Program,
			m.Mentor.Faculty, string(m.Mentor.Campus), string(m.Mentor.Gender), same,
		); err != nil {
			return fmt.Errorf("insert match %d: %w", i+1, err)
		}
	}

	return tx.Commit()
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS matches (
  position INTEGER PRIMARY KEY,
  student_row INTEGER NOT NULL,
  student_name TEXT NOT NULL,
  student_age INTEGER NOT NULL,
  student_program TEXT NOT NULL,
  student_faculty TEXT NOT NULL,
  student_campus TEXT NOT NULL,
  gender_preference TEXT NOT NULL,
  mentor_row INTEGER NOT NULL,
  mentor_name TEXT NOT NULL,
  mentor_age INTEGER NOT NULL,
  mentor_program TEXT NOT NULL,
  mentor_faculty TEXT NOT NULL,
  mentor_campus TEXT NOT NULL,
  mentor_gender TEXT NOT NULL,
  same_campus INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS run_info (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  capacity INTEGER NOT NULL,
  created_at TEXT NOT NULL
);
`)
	return err
}
