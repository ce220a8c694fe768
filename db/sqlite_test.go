package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/brequin/brequin/audit/course"
)

func newTestStore(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "nested", "catalog.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func mustCourse(t *testing.T, department string, number int, name string, credits float64, tags ...string) course.Course {
	t.Helper()
	c, err := course.New(department, number, name, credits, tags...)
	if err != nil {
		t.Fatalf("new course: %v", err)
	}
	return c
}

func TestInsertAndList(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	err := s.InsertCourses(ctx, []course.Course{
		mustCourse(t, "CSE", 214, "Data Structures", 3),
		mustCourse(t, "AMS", 151, "Applied Calculus I", 3, "QPS"),
		mustCourse(t, "CSE", 114, "Intro", 4, "TECH", "QPS"),
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	courses, err := s.ListCourses(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(courses) != 3 {
		t.Fatalf("expected 3 courses, got %d", len(courses))
	}
	if courses[0].ID() != "AMS 151" || courses[1].ID() != "CSE 114" || courses[2].ID() != "CSE 214" {
		t.Errorf("unexpected order %v", courses)
	}
	if len(courses[1].Tags) != 2 || !courses[1].HasTag("TECH") {
		t.Errorf("expected tags to survive storage, got %v", courses[1].Tags)
	}
	if courses[2].Tags != nil {
		t.Errorf("expected no tags, got %v", courses[2].Tags)
	}
}

func TestInsertReplacesExisting(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if err := s.InsertCourses(ctx, []course.Course{mustCourse(t, "CSE", 300, "Writing", 1)}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := s.InsertCourses(ctx, []course.Course{mustCourse(t, "CSE", 300, "Technical Writing", 0, "WRTD")}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	courses, _ := s.ListCourses(ctx)
	if len(courses) != 1 {
		t.Fatalf("expected 1 course, got %d", len(courses))
	}
	if courses[0].Name != "Technical Writing" || courses[0].Credits != 0 || !courses[0].HasTag("WRTD") {
		t.Errorf("expected replaced course, got %+v", courses[0])
	}
}

func TestInsertRejectsNegativeCredits(t *testing.T) {
	s := newTestStore(t)
	err := s.InsertCourses(context.Background(), []course.Course{{Department: "CSE", Number: 114, Credits: -1}})
	if err == nil {
		t.Error("expected constraint violation")
	}
}

func TestLoadCatalog(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	s.InsertCourses(ctx, []course.Course{mustCourse(t, "PHY", 131, "Classical Physics I", 4, "SNW")})

	c, err := LoadCatalog(ctx, s)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := c.Lookup("PHY 131"); !ok {
		t.Error("expected PHY 131 in catalog")
	}
}

func TestLoadCatalogEmpty(t *testing.T) {
	c, err := LoadCatalog(context.Background(), newTestStore(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("expected empty catalog, got %d", c.Len())
	}
}
