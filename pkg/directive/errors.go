package directive

import (
	"github.com/wundergraph/graphql-directives/pkg/ast"
)

// ConfigError is returned by New when a Config violates a directive invariant.
// Message is meant to be shown to the schema author verbatim.
type ConfigError struct {
	DirectiveName string // empty when the directive has no name
	Message       string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// TypeError is returned by AssertDirective for values that are not directives.
type TypeError struct {
	Value   interface{}
	Message string
}

func (e *TypeError) Error() string {
	return e.Message
}

func invalidNameError(directiveName, name string) *ConfigError {
	return &ConfigError{
		DirectiveName: directiveName,
		Message:       "Names must match " + ast.NamePattern + " but \"" + name + "\" does not.",
	}
}
