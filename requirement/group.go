package requirement

// Group is one named requirement category. It has no truth value of its
// own; callers reduce its predicates as they need.
type Group struct {
	Name       string
	Predicates []Predicate
}

func NewGroup(name string, predicates ...Predicate) Group {
	return Group{Name: name, Predicates: predicates}
}
