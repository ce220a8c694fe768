package catalog

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brequin/brequin/audit/course"
)

func mustCourse(t *testing.T, department string, number int, name string, credits float64, tags ...string) course.Course {
	t.Helper()
	c, err := course.New(department, number, name, credits, tags...)
	if err != nil {
		t.Fatalf("new course: %v", err)
	}
	return c
}

func TestNewAndLookup(t *testing.T) {
	c, err := New([]course.Course{
		mustCourse(t, "CSE", 214, "Data Structures", 3),
		mustCourse(t, "CSE", 114, "Intro", 4, "TECH"),
		mustCourse(t, "AMS", 151, "Applied Calculus I", 3),
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if c.Len() != 3 {
		t.Errorf("expected 3 courses, got %d", c.Len())
	}

	found, ok := c.Lookup("CSE 114")
	if !ok || found.Name != "Intro" {
		t.Errorf("expected CSE 114, got %+v (%v)", found, ok)
	}
	if _, ok := c.Lookup("CSE 1140"); ok {
		t.Error("lookup must be exact")
	}
	if _, ok := c.Lookup("cse 114"); ok {
		t.Error("lookup must be case sensitive")
	}

	ids := []string{}
	for _, found := range c.Courses() {
		ids = append(ids, found.ID())
	}
	if strings.Join(ids, ",") != "AMS 151,CSE 114,CSE 214" {
		t.Errorf("unexpected order %v", ids)
	}

	cse := c.Department("CSE")
	if len(cse) != 2 || cse[0].Number != 114 {
		t.Errorf("unexpected department listing %v", cse)
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New([]course.Course{
		mustCourse(t, "CSE", 114, "a", 4),
		mustCourse(t, "CSE", 114, "b", 3),
	})
	if !errors.Is(err, ErrDuplicateCourse) {
		t.Errorf("expected ErrDuplicateCourse, got %v", err)
	}
}

func TestNewRejectsNegativeCredits(t *testing.T) {
	_, err := New([]course.Course{{Department: "CSE", Number: 114, Credits: -4}})
	if !errors.Is(err, course.ErrNegativeCredits) {
		t.Errorf("expected ErrNegativeCredits, got %v", err)
	}
}

func TestReadJSON(t *testing.T) {
	file, err := os.Open(filepath.Join("testdata", "courses.json"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer file.Close()

	c, err := ReadJSON(file)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	found, ok := c.Lookup("CSE 114")
	if !ok {
		t.Fatal("expected CSE 114")
	}
	if found.Credits != 4 || !found.HasTag("QPS") || !found.HasTag("TECH") {
		t.Errorf("unexpected course %+v", found)
	}
}

func TestReadJSONRejectsMismatchedKey(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`{"CSE 214": {"dep": "CSE", "number": 114, "credits": 4}}`))
	if !errors.Is(err, ErrMismatchedKey) {
		t.Errorf("expected ErrMismatchedKey, got %v", err)
	}
}

func TestWriteJSONIsReadable(t *testing.T) {
	original, err := New([]course.Course{mustCourse(t, "WRT", 102, "Intermediate Writing", 3, "WRT")})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, original); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(buf.String(), `"sbcs": [`) {
		t.Errorf("expected sbcs key in output, got %s", buf.String())
	}

	read, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	found, ok := read.Lookup("WRT 102")
	if !ok || found.Name != "Intermediate Writing" {
		t.Errorf("unexpected course %+v", found)
	}
}
