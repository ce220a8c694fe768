// Package db persists course catalogs in PostgreSQL or SQLite.
package db

import (
	"context"
	"fmt"

	"github.com/brequin/brequin/audit/catalog"
	"github.com/brequin/brequin/audit/course"
)

// Store holds the course universe between ingestion and evaluation.
type Store interface {
	// InsertCourses adds courses, replacing any with the same identifier.
	InsertCourses(ctx context.Context, courses []course.Course) error

	// ListCourses returns every stored course ordered by identifier.
	ListCourses(ctx context.Context) ([]course.Course, error)

	Close() error
}

// LoadCatalog reads every stored course into a catalog.
func LoadCatalog(ctx context.Context, s Store) (catalog.Catalog, error) {
	courses, err := s.ListCourses(ctx)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("list courses: %w", err)
	}
	return catalog.New(courses)
}

var (
	_ Store = (*Database)(nil)
	_ Store = (*SQLite)(nil)
)
