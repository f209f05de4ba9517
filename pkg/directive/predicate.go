package directive

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/davecgh/go-spew/spew"

	"github.com/wundergraph/graphql-directives/pkg/ast"
	"github.com/wundergraph/graphql-directives/pkg/typesystem"
)

// Definition is the capability every directive definition provides.
// *Directive implements it, so do wrappers built by other packages.
type Definition interface {
	fmt.Stringer
	Name() string
	Description() string
	Locations() ast.DirectiveLocations
	IsRepeatable() bool
	Args() []typesystem.Argument
	ToConfig() Config
}

var _ Definition = (*Directive)(nil)

var inspectConfig = spew.ConfigState{
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

// IsDirective reports whether value is a directive definition.
// It never panics. A typed nil *Directive or a Definition that can't report its name is not a directive.
func IsDirective(value interface{}) bool {
	definition, ok := value.(Definition)
	if !ok {
		return false
	}
	_, ok = definitionName(definition)
	return ok
}

// AssertDirective returns value as a Definition or a *TypeError naming the value.
func AssertDirective(value interface{}) (Definition, error) {
	if !IsDirective(value) {
		return nil, &TypeError{
			Value:   value,
			Message: fmt.Sprintf("Expected %s to be a GraphQL directive.", Inspect(value)),
		}
	}
	return value.(Definition), nil
}

// Inspect returns a debug representation of any value, used in error messages.
func Inspect(value interface{}) string {
	if isNilPointer(value) {
		return "null"
	}
	switch v := value.(type) {
	case Definition:
		if name, ok := definitionName(v); ok {
			return "@" + name
		}
	case string:
		return strconv.Quote(v)
	case error:
		if message, ok := callString(v.Error); ok {
			return message
		}
	case fmt.Stringer:
		if s, ok := callString(v.String); ok {
			return s
		}
	}
	return inspectConfig.Sprintf("%+v", value)
}

func isNilPointer(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// definitionName is false for nil definitions and wrappers around a nil *Directive.
func definitionName(definition Definition) (name string, ok bool) {
	if isNilPointer(definition) {
		return "", false
	}
	return callString(definition.Name)
}

func callString(fn func() string) (out string, ok bool) {
	defer func() {
		if recover() != nil {
			out, ok = "", false
		}
	}()
	return fn(), true
}
