package db

import (
	"context"
	"fmt"

	"github.com/brequin/brequin/audit/course"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createCourses = `CREATE TABLE IF NOT EXISTS courses (
	department TEXT NOT NULL,
	number INTEGER NOT NULL CHECK (number >= 0),
	name TEXT NOT NULL DEFAULT '',
	credits DOUBLE PRECISION NOT NULL CHECK (credits >= 0),
	tags TEXT[] NOT NULL DEFAULT '{}',
	PRIMARY KEY (department, number)
)`

const listCourses = `SELECT department, number, name, credits, tags FROM courses ORDER BY department, number`
const insertCourse = `INSERT INTO courses (department, number, name, credits, tags) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (department, number) DO UPDATE SET name=EXCLUDED.name, credits=EXCLUDED.credits, tags=EXCLUDED.tags`

// Database is a PostgreSQL course store.
type Database struct {
	Pool *pgxpool.Pool
}

// Open connects to PostgreSQL and creates the courses table if needed.
func Open(ctx context.Context, connString string) (*Database, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	d := &Database{Pool: pool}
	if err := d.Migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return d, nil
}

func (d *Database) Migrate(ctx context.Context) error {
	_, err := d.Pool.Exec(ctx, createCourses)
	return err
}

func insertCallback(ct pgconn.CommandTag) error {
	return nil
}

func (d *Database) ListCourses(ctx context.Context) ([]course.Course, error) {
	rows, err := d.Pool.Query(ctx, listCourses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []course.Course
	for rows.Next() {
		var department, name string
		var number int
		var credits float64
		var tags []string
		if err := rows.Scan(&department, &number, &name, &credits, &tags); err != nil {
			return nil, err
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

func (d *Database) InsertCourses(ctx context.Context, courses []course.Course) error {
	if len(courses) == 0 {
		return nil
	}

	batch := pgx.Batch{}
	var queuedQueries []*pgx.QueuedQuery

	for _, c := range courses {
		tags := c.Tags
		if tags == nil {
			tags = []string{}
		}
		queuedQueries = append(queuedQueries, batch.Queue(insertCourse, c.Department, c.Number, c.Name, c.Credits, tags))
	}

	for _, queuedQuery := range queuedQueries {
		queuedQuery.Exec(insertCallback)
	}

	if err := d.Pool.SendBatch(ctx, &batch).Close(); err != nil {
		return err
	}

	return nil
}

func (d *Database) Close() error {
	d.Pool.Close()
	return nil
}
