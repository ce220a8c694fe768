// Package catalog holds the course universe that schedules are resolved
// against, and reads it from JSON files or department web pages.
package catalog

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/brequin/brequin/audit/course"
)

var (
	ErrDuplicateCourse = errors.New("duplicate course")
	ErrMismatchedKey   = errors.New("catalog key does not match course")
)

// Catalog maps "{DEPT} {NUMBER}" identifiers to courses. It is not
// modified after construction.
type Catalog struct {
	courses map[string]course.Course
}

// New validates every course and indexes it by identifier.
func New(courses []course.Course) (Catalog, error) {
	index := make(map[string]course.Course, len(courses))
	for _, c := range courses {
		validated, err := c.Validated()
		if err != nil {
			return Catalog{}, err
		}
		id := validated.ID()
		if _, exists := index[id]; exists {
			return Catalog{}, fmt.Errorf("%v: %w", id, ErrDuplicateCourse)
		}
		index[id] = validated
	}
	return Catalog{courses: index}, nil
}

// Lookup finds a course by exact identifier.
func (c Catalog) Lookup(id string) (course.Course, bool) {
	found, ok := c.courses[id]
	return found, ok
}

func (c Catalog) Len() int {
	return len(c.courses)
}

// Courses lists every course ordered by department, then number.
func (c Catalog) Courses() []course.Course {
	courses := slices.Collect(maps.Values(c.courses))
	slices.SortFunc(courses, compareCourses)
	return courses
}

// Department lists the courses of one department in number order.
func (c Catalog) Department(department string) []course.Course {
	var courses []course.Course
	for _, found := range c.courses {
		if found.Department == department {
			courses = append(courses, found)
		}
	}
	slices.SortFunc(courses, compareCourses)
	return courses
}

func compareCourses(a, b course.Course) int {
	return cmp.Or(cmp.Compare(a.Department, b.Department), cmp.Compare(a.Number, b.Number))
}

// ReadJSON decodes an object keyed by course identifier, the format
// written by WriteJSON.
func ReadJSON(r io.Reader) (Catalog, error) {
	var entries map[string]course.Course
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}

	courses := make([]course.Course, 0, len(entries))
	for id, entry := range entries {
		if entry.ID() != id {
			return Catalog{}, fmt.Errorf("%v holds %v: %w", id, entry.ID(), ErrMismatchedKey)
		}
		courses = append(courses, entry)
	}
	return New(courses)
}

func WriteJSON(w io.Writer, c Catalog) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(c.courses); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return nil
}
