package requirement

import (
	"encoding/json"
	"fmt"
	"io"
)

// GroupDefinition is the file form of a group: a name and one expression
// per predicate.
type GroupDefinition struct {
	Name         string   `json:"name"`
	Requirements []string `json:"requirements"`
}

// Build parses every expression of every definition into fresh groups.
func Build(definitions []GroupDefinition) ([]Group, error) {
	groups := make([]Group, 0, len(definitions))
	for _, definition := range definitions {
		if definition.Name == "" {
			return nil, fmt.Errorf("group %v has no name", len(groups)+1)
		}

		var predicates []Predicate
		for i, expression := range definition.Requirements {
			predicate, err := Parse(expression)
			if err != nil {
				return nil, fmt.Errorf("%v requirement %v: %w", definition.Name, i+1, err)
			}
			predicates = append(predicates, predicate)
		}
		groups = append(groups, NewGroup(definition.Name, predicates...))
	}
	return groups, nil
}

// ReadDefinitions decodes a JSON array of group definitions.
func ReadDefinitions(r io.Reader) ([]GroupDefinition, error) {
	var definitions []GroupDefinition
	if err := json.NewDecoder(r).Decode(&definitions); err != nil {
		return nil, fmt.Errorf("decode requirements: %w", err)
	}
	return definitions, nil
}
