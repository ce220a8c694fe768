package requirement

import (
	"fmt"
	"strings"

	"github.com/brequin/brequin/audit/course"
)

// pair holds one latch per operand. Both operands observe every course, so
// their own state stays current no matter what the pair has concluded.
type pair struct {
	left, right         Predicate
	leftDone, rightDone bool
	step                Step
}

func (p *pair) observe(step Step, c course.Course) {
	if p.step == step {
		return
	}
	p.step = step
	if p.left.observe(step, c) {
		p.leftDone = true
	}
	if p.right.observe(step, c) {
		p.rightDone = true
	}
}

func (p *pair) describe(op string) string {
	return fmt.Sprintf("%v (%v) %v %v (%v)", p.left.Describe(), p.leftDone, op, p.right.Describe(), p.rightDone)
}

type and struct {
	pair
}

// And is satisfied once both a and b have been satisfied, not necessarily
// by the same course.
func And(a, b Predicate) Predicate {
	return &and{pair{left: a, right: b}}
}

func (p *and) Evaluate(c course.Course) bool {
	return p.observe(NextStep(), c)
}

func (p *and) observe(step Step, c course.Course) bool {
	p.pair.observe(step, c)
	return p.satisfied()
}

func (p *and) satisfied() bool {
	return p.leftDone && p.rightDone
}

func (p *and) Describe() string {
	return p.describe("and")
}

type or struct {
	pair
}

// Or is satisfied once any operand has been satisfied. More than two
// operands reduce left to right: Or(a, b, c) is Or(Or(a, b), c).
func Or(a, b Predicate, more ...Predicate) Predicate {
	var out Predicate = &or{pair{left: a, right: b}}
	for _, next := range more {
		out = &or{pair{left: out, right: next}}
	}
	return out
}

func (p *or) Evaluate(c course.Course) bool {
	return p.observe(NextStep(), c)
}

func (p *or) observe(step Step, c course.Course) bool {
	p.pair.observe(step, c)
	return p.satisfied()
}

func (p *or) satisfied() bool {
	return p.leftDone || p.rightDone
}

func (p *or) Describe() string {
	return p.describe("or")
}

type nOutOfList struct {
	n        int
	list     []Predicate
	credited []bool
	count    int
	step     Step
}

// NOutOfList is satisfied once n distinct predicates from list have been
// satisfied. Each predicate is credited at most once, on the step it is
// first seen satisfied; every predicate credited on the same step counts.
func NOutOfList(n int, list []Predicate) Predicate {
	return &nOutOfList{
		n:        n,
		list:     append([]Predicate(nil), list...),
		credited: make([]bool, len(list)),
	}
}

func (p *nOutOfList) Evaluate(c course.Course) bool {
	return p.observe(NextStep(), c)
}

func (p *nOutOfList) observe(step Step, c course.Course) bool {
	if p.step != step {
		p.step = step
		for i, pred := range p.list {
			if pred.observe(step, c) && !p.credited[i] {
				p.credited[i] = true
				p.count++
			}
		}
	}
	return p.satisfied()
}

func (p *nOutOfList) satisfied() bool {
	return p.count >= p.n
}

func (p *nOutOfList) Describe() string {
	parts := make([]string, len(p.list))
	for i, pred := range p.list {
		parts[i] = fmt.Sprintf("%v (%v)", pred.Describe(), pred.satisfied())
	}
	return fmt.Sprintf("%v out of %v", p.n, strings.Join(parts, ", "))
}

type named struct {
	Predicate
	name string
}

// Named gives p a fixed description.
func Named(name string, p Predicate) Predicate {
	return &named{Predicate: p, name: name}
}

func (p *named) Evaluate(c course.Course) bool {
	return p.observe(NextStep(), c)
}

func (p *named) Describe() string {
	return p.name
}
