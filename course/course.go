// Package course defines the immutable course record that requirement
// predicates are evaluated against.
package course

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var (
	ErrNegativeCredits = errors.New("course credits must not be negative")
	ErrNegativeNumber  = errors.New("course number must not be negative")
	ErrMalformedID     = errors.New("malformed course identifier")
)

// Course is one completed or placed course. Values are created once by a
// catalog or schedule and never mutated afterwards.
type Course struct {
	Department string   `json:"dep"`
	Number     int      `json:"number"`
	Name       string   `json:"name"`
	Credits    float64  `json:"credits"`
	Tags       []string `json:"sbcs"`
}

// Null is the zero course. It is fed to predicates to read their current
// state without adding evidence.
var Null = Course{}

// New validates a course and normalizes its distribution tags into a
// sorted set.
func New(department string, number int, name string, credits float64, tags ...string) (Course, error) {
	if credits < 0 {
		return Course{}, fmt.Errorf("%v: %w", ID(department, number), ErrNegativeCredits)
	}
	if number < 0 {
		return Course{}, fmt.Errorf("%v: %w", ID(department, number), ErrNegativeNumber)
	}

	return Course{
		Department: department,
		Number:     number,
		Name:       name,
		Credits:    credits,
		Tags:       normalizeTags(tags),
	}, nil
}

// Validated runs c through New, so decoded records get the same checks as
// constructed ones.
func (c Course) Validated() (Course, error) {
	return New(c.Department, c.Number, c.Name, c.Credits, c.Tags...)
}

func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	set := slices.Clone(tags)
	slices.Sort(set)
	return slices.Compact(set)
}

// ID formats the "{DEPT} {NUMBER}" identifier.
func ID(department string, number int) string {
	return department + " " + strconv.Itoa(number)
}

// ParseID splits an identifier into department and number.
func ParseID(id string) (string, int, error) {
	department, numberText, found := strings.Cut(id, " ")
	if !found || department == "" || strings.ToUpper(department) != department {
		return "", 0, fmt.Errorf("%q: %w", id, ErrMalformedID)
	}
	number, err := strconv.Atoi(numberText)
	if err != nil || number < 0 {
		return "", 0, fmt.Errorf("%q: %w", id, ErrMalformedID)
	}
	return department, number, nil
}

func (c Course) ID() string {
	return ID(c.Department, c.Number)
}

func (c Course) HasTag(tag string) bool {
	return slices.Contains(c.Tags, tag)
}

// IsNull reports whether c carries no information at all.
func (c Course) IsNull() bool {
	return c.Department == "" && c.Number == 0 && c.Name == "" && c.Credits == 0 && len(c.Tags) == 0
}

func (c Course) String() string {
	return fmt.Sprintf("%v %v %q", FormatCredits(c.Credits), c.ID(), c.Name)
}

// FormatCredits prints integral credit values without a decimal point.
func FormatCredits(credits float64) string {
	return strconv.FormatFloat(credits, 'f', -1, 64)
}
