package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestScrapeDepartment(t *testing.T) {
	file, err := os.Open(filepath.Join("testdata", "departments", "cse.html"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer file.Close()

	courses, err := ScrapeDepartment(file, "CSE", DefaultTags)
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}
	if len(courses) != 3 {
		t.Fatalf("expected 3 courses, got %d: %v", len(courses), courses)
	}

	intro := courses[0]
	if intro.ID() != "CSE 114" {
		t.Errorf("expected CSE 114, got %v", intro.ID())
	}
	if intro.Name != "Introduction to Object-Oriented Programming" {
		t.Errorf("unexpected name %q", intro.Name)
	}
	if intro.Credits != 4 {
		t.Errorf("expected 4 credits, got %v", intro.Credits)
	}
	if len(intro.Tags) != 2 || intro.Tags[0] != "QPS" || intro.Tags[1] != "TECH" {
		t.Errorf("expected [QPS TECH], got %v", intro.Tags)
	}

	writing := courses[2]
	if writing.ID() != "CSE 300" || writing.Credits != 0 || !writing.HasTag("WRTD") {
		t.Errorf("unexpected course %+v", writing)
	}
}

func TestScrapeDepartmentWithoutColumn(t *testing.T) {
	_, err := ScrapeDepartment(strings.NewReader("<html><body><p>nothing</p></body></html>"), "CSE", DefaultTags)
	if err == nil {
		t.Error("expected error for page without a course column")
	}
}

func TestScrapeDepartmentRestrictsTags(t *testing.T) {
	page := `<div class="column_2_text"><div class="course" id="101">
		<h3>CSE 101: Computer Science Principles</h3>
		<p><a>TECH</a> <a>QPS</a></p><p>3 credits</p></div></div>`
	courses, err := ScrapeDepartment(strings.NewReader(page), "CSE", []string{"TECH"})
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}
	if len(courses) != 1 || len(courses[0].Tags) != 1 || courses[0].Tags[0] != "TECH" {
		t.Errorf("expected only TECH, got %v", courses)
	}
}

func TestCourseName(t *testing.T) {
	tests := map[string]string{
		"CSE 114: Intro":         "Intro",
		"  AMS 151: Calculus I ": "Calculus I",
		"CSE 114  Intro":         "Intro",
		"Short":                  "Short",
	}
	for heading, want := range tests {
		if got := courseName(heading); got != want {
			t.Errorf("%q: expected %q, got %q", heading, want, got)
		}
	}
}

func TestScrapeDirectory(t *testing.T) {
	courses, err := ScrapeDirectory(filepath.Join("testdata", "departments"), DefaultTags)
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}

	var ids []string
	for _, c := range courses {
		ids = append(ids, c.ID())
	}
	want := "AMS 151,AMS 210,CSE 114,CSE 214,CSE 300"
	if strings.Join(ids, ",") != want {
		t.Errorf("expected %v, got %v", want, ids)
	}

	if _, err := New(courses); err != nil {
		t.Errorf("scraped courses should form a catalog: %v", err)
	}
}

func TestReadTags(t *testing.T) {
	tags, err := ReadTags(strings.NewReader(`["WRT", "QPS"]`))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(tags) != 2 || tags[0] != "WRT" {
		t.Errorf("unexpected tags %v", tags)
	}
}
