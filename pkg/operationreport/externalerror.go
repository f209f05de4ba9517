package operationreport

import (
	"fmt"

	"github.com/wundergraph/graphql-directives/pkg/lexer/position"
)

type ExternalError struct {
	Message   string     `json:"message"`
	Locations []Location `json:"locations,omitempty"`
}

type Location struct {
	Line   uint32 `json:"line"`
	Column uint32 `json:"column"`
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

func (e ExternalError) Error() string {
	return fmt.Sprintf("%s, locations: %+v", e.Message, e.Locations)
}

// LocationsFromPositions converts source positions, unset positions are skipped.
func LocationsFromPositions(positions ...position.Position) []Location {
	out := make([]Location, 0, len(positions))
	for i := range positions {
		if !positions[i].IsSet() {
			continue
		}
		out = append(out, Location{
			Line:   uint32(positions[i].Line),
			Column: uint32(positions[i].Column),
		})
	}
	return out
}

// ErrDirectiveDefinitionInvalid wraps a directive construction failure.
func ErrDirectiveDefinitionInvalid(message string, pos position.Position) (err ExternalError) {
	err.Message = message
	err.Locations = LocationsFromPositions(pos)
	return err
}

func ErrDirectiveNameMustBeUnique(name string, first, second position.Position) (err ExternalError) {
	err.Message = fmt.Sprintf("There can be only one directive named \"@%s\".", name)
	err.Locations = LocationsFromPositions(first, second)
	return err
}

func ErrSpecifiedDirectiveRedefined(name string, pos position.Position) (err ExternalError) {
	err.Message = fmt.Sprintf("Directive \"@%s\" already exists in the schema. It cannot be redefined.", name)
	err.Locations = LocationsFromPositions(pos)
	return err
}

func ErrDirectiveLocationUnknown(directiveName, location string, pos position.Position) (err ExternalError) {
	err.Message = fmt.Sprintf("Directive \"@%s\" has an unknown location \"%s\".", directiveName, location)
	err.Locations = LocationsFromPositions(pos)
	return err
}

func ErrDirectiveArgumentDefaultValueInvalid(directiveName, argName string, pos position.Position) (err ExternalError) {
	err.Message = fmt.Sprintf("Argument \"@%s(%s:)\" has an invalid default value.", directiveName, argName)
	err.Locations = LocationsFromPositions(pos)
	return err
}
