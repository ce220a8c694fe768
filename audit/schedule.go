package audit

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/brequin/brequin/audit/catalog"
	"github.com/brequin/brequin/audit/course"
)

// Term lists the course identifiers taken in one term.
type Term struct {
	Year    int      `json:"year"`
	Term    int      `json:"term"`
	Courses []string `json:"courses"`
}

// Schedule is a student's actual or planned course history. Waived
// courses (placement exams, transfer credit) are full records rather than
// catalog identifiers and stream ahead of every term.
type Schedule struct {
	Waived []course.Course `json:"waived,omitempty"`
	Terms  []Term          `json:"terms"`
}

func ReadSchedule(r io.Reader) (Schedule, error) {
	var s Schedule
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Schedule{}, fmt.Errorf("decode schedule: %w", err)
	}
	return s, nil
}

// UnknownCourseError reports a schedule entry missing from the catalog.
type UnknownCourseError struct {
	ID   string
	Year int
	Term int
}

func (e *UnknownCourseError) Error() string {
	return fmt.Sprintf("unknown course %q in year %v term %v", e.ID, e.Year, e.Term)
}

// ResolvedTerm is a term whose identifiers have been looked up.
type ResolvedTerm struct {
	Year    int
	Term    int
	Courses []course.Course
}

// Plan is a schedule resolved against a catalog, ready to stream.
type Plan struct {
	Waived []course.Course
	Terms  []ResolvedTerm
}

// Stream returns every course in evaluation order: waived courses first,
// then each term in schedule order.
func (p Plan) Stream() []course.Course {
	stream := append([]course.Course(nil), p.Waived...)
	for _, term := range p.Terms {
		stream = append(stream, term.Courses...)
	}
	return stream
}

// Resolve looks up every identifier of s in c. All unknown identifiers
// and invalid waived records are reported together.
func Resolve(c catalog.Catalog, s Schedule) (Plan, error) {
	var errs []error
	var plan Plan

	for _, waived := range s.Waived {
		validated, err := waived.Validated()
		if err != nil {
			errs = append(errs, fmt.Errorf("waived: %w", err))
			continue
		}
		plan.Waived = append(plan.Waived, validated)
	}

	for _, term := range s.Terms {
		resolved := ResolvedTerm{Year: term.Year, Term: term.Term}
		for _, id := range term.Courses {
			found, ok := c.Lookup(id)
			if !ok {
				errs = append(errs, &UnknownCourseError{ID: id, Year: term.Year, Term: term.Term})
				continue
			}
			resolved.Courses = append(resolved.Courses, found)
		}
		plan.Terms = append(plan.Terms, resolved)
	}

	if len(errs) > 0 {
		return Plan{}, errors.Join(errs...)
	}
	return plan, nil
}
