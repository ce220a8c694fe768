// Package audit streams a student's courses through degree requirements
// and reports what is fulfilled.
package audit

import (
	"github.com/brequin/brequin/audit/catalog"
	"github.com/brequin/brequin/audit/course"
	"github.com/brequin/brequin/audit/requirement"
)

// Ceilings are per-term credit limits. The first term listed for year 1
// uses First; every other term uses Default.
type Ceilings struct {
	First   float64
	Default float64
}

func DefaultCeilings() Ceilings {
	return Ceilings{First: 17, Default: 19}
}

// Driver evaluates requirement groups against schedules resolved in its
// catalog. Predicates keep their state between runs, so a driver is meant
// to audit one schedule; build fresh groups for the next student.
type Driver struct {
	catalog  catalog.Catalog
	groups   []requirement.Group
	ceilings Ceilings
}

func NewDriver(c catalog.Catalog, groups []requirement.Group, ceilings Ceilings) *Driver {
	return &Driver{catalog: c, groups: groups, ceilings: ceilings}
}

// Audit resolves s and, only if every course is known, runs it.
func (d *Driver) Audit(s Schedule) (Report, error) {
	plan, err := Resolve(d.catalog, s)
	if err != nil {
		return Report{}, err
	}
	return d.Run(plan), nil
}

// Run feeds every course of plan, in order, to every predicate of every
// group, then reads each predicate with the null course for the report.
// Each course is one step, so a predicate shared between groups sees it
// once.
func (d *Driver) Run(plan Plan) Report {
	for _, c := range plan.Stream() {
		step := requirement.NextStep()
		for _, group := range d.groups {
			for _, predicate := range group.Predicates {
				step.Evaluate(predicate, c)
			}
		}
	}

	report := Report{Waived: plan.Waived}
	firstTerm := true
	for _, term := range plan.Terms {
		ceiling := d.ceilings.Default
		if term.Year == 1 && firstTerm {
			ceiling = d.ceilings.First
			firstTerm = false
		}

		var credits float64
		for _, c := range term.Courses {
			credits += c.Credits
		}

		report.Terms = append(report.Terms, TermReport{
			Year:    term.Year,
			Term:    term.Term,
			Courses: term.Courses,
			Credits: credits,
			Ceiling: ceiling,
		})
	}

	final := requirement.NextStep()
	for _, group := range d.groups {
		groupReport := GroupReport{Name: group.Name}
		for _, predicate := range group.Predicates {
			satisfied := final.Evaluate(predicate, course.Null)
			groupReport.Results = append(groupReport.Results, Result{
				Description: predicate.Describe(),
				Satisfied:   satisfied,
			})
		}
		report.Groups = append(report.Groups, groupReport)
	}

	return report
}
