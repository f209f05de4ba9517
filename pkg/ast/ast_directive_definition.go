package ast

import (
	"github.com/wundergraph/graphql-directives/pkg/lexer/position"
)

// DirectiveDefinition is the source node a directive was declared with
// example:
// directive @example(arg: String = "x") repeatable on FIELD | FRAGMENT_SPREAD
type DirectiveDefinition struct {
	Description         string                 // optional, describes the directive
	Name                string                 // e.g. example
	ArgumentsDefinition []InputValueDefinition // optional, e.g. (arg: String = "x")
	Repeatable          bool                   // repeatable
	DirectiveLocations  DirectiveLocations     // e.g. FIELD | FRAGMENT_SPREAD
	Position            position.Position      // position of the directive keyword
}

// InputValueDefinition
// example:
// inputValue: Int = 2
type InputValueDefinition struct {
	Description  string            // optional, describes the input value
	Name         string            // e.g. inputValue
	Type         Type              // e.g. Int
	DefaultValue string            // optional, raw literal, e.g. 2
	Position     position.Position // position of the name
}

// ArgumentDefinition returns the input value with the given name.
func (d *DirectiveDefinition) ArgumentDefinition(name string) (InputValueDefinition, bool) {
	for i := range d.ArgumentsDefinition {
		if d.ArgumentsDefinition[i].Name == name {
			return d.ArgumentsDefinition[i], true
		}
	}
	return InputValueDefinition{}, false
}
