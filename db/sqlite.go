package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/brequin/brequin/audit/course"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS courses (
	department TEXT NOT NULL,
	number     INTEGER NOT NULL CHECK (number >= 0),
	name       TEXT NOT NULL DEFAULT '',
	credits    REAL NOT NULL CHECK (credits >= 0),
	tags       TEXT NOT NULL DEFAULT '[]',
	PRIMARY KEY (department, number)
);
`

const sqliteInsertCourse = `INSERT INTO courses (department, number, name, credits, tags) VALUES (?, ?, ?, ?, ?)
ON CONFLICT (department, number) DO UPDATE SET name=excluded.name, credits=excluded.credits, tags=excluded.tags`

// SQLite is a course store in a local SQLite file.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens or creates a SQLite course store at path.
func OpenSQLite(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) InsertCourses(ctx context.Context, courses []course.Course) error {
	if len(courses) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, sqliteInsertCourse)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range courses {
		tags := c.Tags
		if tags == nil {
			tags = []string{}
		}
		encoded, err := json.Marshal(tags)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, c.Department, c.Number, c.Name, c.Credits, string(encoded)); err != nil {
			return fmt.Errorf("insert %v: %w", c.ID(), err)
		}
	}

	return tx.Commit()
}

func (s *SQLite) ListCourses(ctx context.Context) ([]course.Course, error) {
	rows, err := s.db.QueryContext(ctx, listCourses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []course.Course
	for rows.Next() {
		var department, name, encoded string
		var number int
		var credits float64
		if err := rows.Scan(&department, &number, &name, &credits, &encoded); err != nil {
			return nil, err
		}

		var tags []string
		if err := json.Unmarshal([]byte(encoded), &tags); err != nil {
			return nil, fmt.Errorf("decode tags of %v: %w", course.ID(department, number), err)
		}

		c, err := course.New(department, number, name, credits, tags...)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
