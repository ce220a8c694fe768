// Package degree defines the built-in requirement programs. Every
// constructor returns fresh predicates, so each audit starts from nothing.
package degree

import (
	"fmt"
	"slices"

	"github.com/brequin/brequin/audit/course"
	r "github.com/brequin/brequin/audit/requirement"
)

// Programs maps program names to their constructors.
func Programs() map[string]func() []r.Group {
	return map[string]func() []r.Group{
		"core": Core,
		"cse":  func() []r.Group { return append(Core(), ComputerScience()...) },
	}
}

// ProgramNames lists the built-in programs alphabetically.
func ProgramNames() []string {
	var names []string
	for name := range Programs() {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Program builds the named program.
func Program(name string) ([]r.Group, error) {
	build, ok := Programs()[name]
	if !ok {
		return nil, fmt.Errorf("unknown program %q", name)
	}
	return build(), nil
}

func tags(names ...string) []r.Predicate {
	predicates := make([]r.Predicate, len(names))
	for i, name := range names {
		predicates[i] = r.HasDistributionTag(name)
	}
	return predicates
}

func courses(ids ...string) []r.Predicate {
	predicates := make([]r.Predicate, len(ids))
	for i, id := range ids {
		predicates[i] = r.IsCourse(id)
	}
	return predicates
}

// Core is the university-wide general education curriculum.
func Core() []r.Group {
	return []r.Group{
		r.NewGroup("Credit Hour Requirement", r.MinimumCredits(120, nil)),
		r.NewGroup("Upper-Division Credit Requirement", r.MinimumCredits(39, r.IsUpperDivision())),
		r.NewGroup("Mandatory Freshman Courses", courses("SBU 101", "SBU 102")...),
		r.NewGroup("Demonstrate Versatility", tags("ARTS", "GLO", "HUM", "QPS", "SBS", "SNW", "TECH", "USA", "WRT")...),
		r.NewGroup("Explore Interconnectedness", r.HasDistributionTag("STAS")),
		r.NewGroup("Pursue Deeper Understanding", r.NOutOfList(3, tags("EXP+", "HFA+", "SBS+", "STEM+"))),
		r.NewGroup("Prepare for Life-Long Learning", tags("CER", "DIV", "ESI", "SPK", "WRTD")...),
	}
}

// ComputerScience is the CSE major.
func ComputerScience() []r.Group {
	return []r.Group{
		r.NewGroup("Required Introductory Courses", courses("CSE 114", "CSE 214", "CSE 215", "CSE 216", "CSE 220")...),
		r.NewGroup("Required Advanced Courses", courses("CSE 303", "CSE 310", "CSE 316", "CSE 320", "CSE 373", "CSE 416")...),
		r.NewGroup("Applied Calculus", courses("AMS 151", "AMS 161")...),
		r.NewGroup("Linear Algebra", r.Or(r.IsCourse("MAT 211"), r.IsCourse("AMS 210"))),
		r.NewGroup("More Math", courses("AMS 301", "AMS 310")...),
		r.NewGroup("Natural Science", NaturalScience()),
		r.NewGroup("Professional Ethics", r.IsCourse("CSE 312")),
		r.NewGroup("Upper-Division Writing Requirement", r.IsCourse("CSE 300")),
	}
}

// LectureLab is satisfied once both a lecture and its lab are taken.
func LectureLab(department string, lecture, lab int) r.Predicate {
	return r.And(r.IsCourse(course.ID(department, lecture)), r.IsCourse(course.ID(department, lab)))
}

// NaturalScience requires one lecture/lab pair and one further science
// course.
func NaturalScience() r.Predicate {
	pairs := []r.Predicate{
		LectureLab("BIO", 201, 204),
		LectureLab("BIO", 202, 204),
		LectureLab("BIO", 203, 204),
		LectureLab("CHE", 131, 133),
		LectureLab("CHE", 152, 154),
		LectureLab("PHY", 126, 133),
		LectureLab("PHY", 131, 133),
		LectureLab("PHY", 141, 133),
	}
	additional := courses(
		"AST 203", "AST 205",
		"CHE 132", "CHE 321", "CHE 322", "CHE 331", "CHE 332",
		"GEO 102", "GEO 103", "GEO 112", "GEO 113", "GEO 122",
		"PHY 125", "PHY 127", "PHY 132", "PHY 134", "PHY 142", "PHY 251", "PHY 252",
	)

	return r.Named("natural science requirement", r.And(
		r.Or(pairs[0], pairs[1], pairs[2:]...),
		r.Or(additional[0], additional[1], additional[2:]...),
	))
}
