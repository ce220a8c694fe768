// Package requirement implements stateful course predicates and the
// combinators that compose them into degree requirements.
//
// A predicate accumulates evidence as courses are streamed through it and
// reports the truth of its condition over everything seen so far. Evidence
// is never forgotten, so once a predicate is satisfied it stays satisfied.
//
// Predicates may be shared by several combinators and several groups. Each
// course fed to them is one Step; within a step each predicate instance
// updates at most once and later readers in the same step get the cached
// result. A bare call to Evaluate is a step of its own.
package requirement

import (
	"fmt"
	"sync/atomic"

	"github.com/brequin/brequin/audit/course"
)

// Predicate is a stateful test over a stream of courses.
type Predicate interface {
	// Evaluate feeds c to the predicate and returns whether its condition
	// holds for all courses observed so far.
	Evaluate(c course.Course) bool

	// Describe renders the condition and any progress, as of the most
	// recent Evaluate.
	Describe() string

	observe(step Step, c course.Course) bool
	satisfied() bool
}

// courseMatcher is implemented by atomic predicates, whose condition can be
// tested against a single course without touching accumulated state.
type courseMatcher interface {
	matches(c course.Course) bool
}

// Step identifies one course of a stream. Feed every predicate the same
// course through one Step so shared instances update only once.
type Step uint64

var steps atomic.Uint64

// NextStep opens a new step.
func NextStep() Step {
	return Step(steps.Add(1))
}

// Evaluate feeds c to p as part of step s and returns p's truth.
func (s Step) Evaluate(p Predicate, c course.Course) bool {
	return p.observe(s, c)
}

// latch remembers whether any observed course matched, and which step it
// last observed.
type latch struct {
	step Step
	done bool
}

func (l *latch) update(step Step, matched bool) bool {
	if l.step != step {
		l.step = step
		if matched {
			l.done = true
		}
	}
	return l.done
}

func (l *latch) satisfied() bool {
	return l.done
}

type anyCourse struct{}

// Any is satisfied unconditionally.
func Any() Predicate {
	return anyCourse{}
}

func (p anyCourse) Evaluate(c course.Course) bool           { return true }
func (p anyCourse) observe(step Step, c course.Course) bool { return true }
func (p anyCourse) matches(c course.Course) bool            { return true }
func (p anyCourse) satisfied() bool                         { return true }
func (p anyCourse) Describe() string                        { return "any course" }

type upperDivision struct {
	latch
}

// IsUpperDivision is satisfied once a course numbered 300 or above is seen.
func IsUpperDivision() Predicate {
	return &upperDivision{}
}

func (p *upperDivision) Evaluate(c course.Course) bool {
	return p.observe(NextStep(), c)
}

func (p *upperDivision) observe(step Step, c course.Course) bool {
	return p.update(step, p.matches(c))
}

func (p *upperDivision) matches(c course.Course) bool {
	return c.Number >= 300
}

func (p *upperDivision) Describe() string {
	return "upper division"
}

type inDepartment struct {
	latch
	department string
}

// InDepartment is satisfied once a course from department is seen.
func InDepartment(department string) Predicate {
	return &inDepartment{department: department}
}

func (p *inDepartment) Evaluate(c course.Course) bool {
	return p.observe(NextStep(), c)
}

func (p *inDepartment) observe(step Step, c course.Course) bool {
	return p.update(step, p.matches(c))
}

func (p *inDepartment) matches(c course.Course) bool {
	return !c.IsNull() && c.Department == p.department
}

func (p *inDepartment) Describe() string {
	return p.department + " course"
}

type hasTag struct {
	latch
	tag string
}

// HasDistributionTag is satisfied once a course carrying tag is seen.
func HasDistributionTag(tag string) Predicate {
	return &hasTag{tag: tag}
}

func (p *hasTag) Evaluate(c course.Course) bool {
	return p.observe(NextStep(), c)
}

func (p *hasTag) observe(step Step, c course.Course) bool {
	return p.update(step, p.matches(c))
}

func (p *hasTag) matches(c course.Course) bool {
	return c.HasTag(p.tag)
}

func (p *hasTag) Describe() string {
	return "has " + p.tag
}

type isCourse struct {
	latch
	id string
}

// IsCourse is satisfied once the course with exactly this identifier is
// seen.
func IsCourse(id string) Predicate {
	return &isCourse{id: id}
}

func (p *isCourse) Evaluate(c course.Course) bool {
	return p.observe(NextStep(), c)
}

func (p *isCourse) observe(step Step, c course.Course) bool {
	return p.update(step, p.matches(c))
}

func (p *isCourse) matches(c course.Course) bool {
	return !c.IsNull() && c.ID() == p.id
}

func (p *isCourse) Describe() string {
	return "is " + p.id
}

type minimumCredits struct {
	threshold float64
	filter    Predicate
	total     float64
	step      Step
}

// MinimumCredits keeps a running total of the credits of every course for
// which filter holds when the course is evaluated. An atomic filter is
// tested against the course itself, so IsUpperDivision counts only
// upper-division courses; a compound filter counts a course when the
// filter is satisfied after observing it. It is satisfied once the total
// reaches threshold. A nil filter counts every course.
func MinimumCredits(threshold float64, filter Predicate) Predicate {
	if filter == nil {
		filter = Any()
	}
	return &minimumCredits{threshold: threshold, filter: filter}
}

func (p *minimumCredits) Evaluate(c course.Course) bool {
	return p.observe(NextStep(), c)
}

func (p *minimumCredits) observe(step Step, c course.Course) bool {
	if p.step != step {
		p.step = step
		counted := p.filter.observe(step, c)
		if m, ok := p.filter.(courseMatcher); ok {
			counted = m.matches(c)
		}
		if counted {
			p.total += c.Credits
		}
	}
	return p.satisfied()
}

func (p *minimumCredits) satisfied() bool {
	return p.total >= p.threshold
}

func (p *minimumCredits) Describe() string {
	return fmt.Sprintf("Minimum credits: %v/%v for %v",
		course.FormatCredits(p.total), course.FormatCredits(p.threshold), p.filter.Describe())
}
