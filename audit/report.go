package audit

import (
	"fmt"
	"io"
	"strings"

	"github.com/brequin/brequin/audit/course"
)

type TermReport struct {
	Year    int             `json:"year"`
	Term    int             `json:"term"`
	Courses []course.Course `json:"courses"`
	Credits float64         `json:"credits"`
	Ceiling float64         `json:"ceiling"`
}

// Over reports whether the term carries more credits than its ceiling.
func (t TermReport) Over() bool {
	return t.Credits > t.Ceiling
}

type Result struct {
	Description string `json:"description"`
	Satisfied   bool   `json:"satisfied"`
}

type GroupReport struct {
	Name    string   `json:"name"`
	Results []Result `json:"results"`
}

// Complete reports whether every predicate of the group is satisfied.
func (g GroupReport) Complete() bool {
	for _, result := range g.Results {
		if !result.Satisfied {
			return false
		}
	}
	return true
}

type Report struct {
	Waived []course.Course `json:"waived,omitempty"`
	Terms  []TermReport    `json:"terms"`
	Groups []GroupReport   `json:"groups"`
}

// WriteText renders the report as indented plain text: waived courses,
// then each year's terms with their credit load (marked OVER past the
// ceiling), then every requirement group.
func (r Report) WriteText(w io.Writer) error {
	var b strings.Builder

	if len(r.Waived) > 0 {
		fmt.Fprintln(&b, "WAIVED")
		for _, c := range r.Waived {
			fmt.Fprintf(&b, "\t%v\n", c)
		}
	}

	year := 0
	for i, term := range r.Terms {
		if i == 0 || term.Year != year {
			year = term.Year
			fmt.Fprintf(&b, "YEAR %v\n", year)
		}
		fmt.Fprintf(&b, "\tSEM %v\n", term.Term)
		for _, c := range term.Courses {
			fmt.Fprintf(&b, "\t\t%v\n", c)
		}
		fmt.Fprintf(&b, "\t%v/%v", course.FormatCredits(term.Credits), course.FormatCredits(term.Ceiling))
		if term.Over() {
			fmt.Fprint(&b, " OVER")
		}
		fmt.Fprintln(&b)
	}

	for _, group := range r.Groups {
		fmt.Fprintln(&b, group.Name)
		for _, result := range group.Results {
			fmt.Fprintf(&b, "%v %v\n", result.Description, result.Satisfied)
		}
		fmt.Fprintln(&b)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
