// Package typesystem holds the argument definitions shared by directives and fields.
package typesystem

import (
	"github.com/wundergraph/graphql-directives/pkg/ast"
)

// Built in scalar type references.
var (
	Int     = ast.NamedType("Int")
	Float   = ast.NamedType("Float")
	String  = ast.NamedType("String")
	Boolean = ast.NamedType("Boolean")
	ID      = ast.NamedType("ID")
)

// Argument is a defined argument of a directive or a field.
type Argument struct {
	Name              string
	Description       string
	Type              ast.Type
	DefaultValue      interface{} // nil when no default value is declared
	DeprecationReason string
	Extensions        map[string]interface{}
	ASTNode           *ast.InputValueDefinition
}

// ArgumentConfig is an Argument without its name, used as the value of an ArgumentConfigMap.
type ArgumentConfig struct {
	Description       string
	Type              ast.Type
	DefaultValue      interface{}
	DeprecationReason string
	Extensions        map[string]interface{}
	ASTNode           *ast.InputValueDefinition
}

func (a Argument) Config() ArgumentConfig {
	return ArgumentConfig{
		Description:       a.Description,
		Type:              a.Type.Copy(),
		DefaultValue:      CopyValue(a.DefaultValue),
		DeprecationReason: a.DeprecationReason,
		Extensions:        CopyExtensions(a.Extensions),
		ASTNode:           a.ASTNode,
	}
}

// Copy returns an Argument that shares no mutable state with a, except the ASTNode reference.
func (a Argument) Copy() Argument {
	return a.Config().Argument(a.Name)
}

func (c ArgumentConfig) Argument(name string) Argument {
	return Argument{
		Name:              name,
		Description:       c.Description,
		Type:              c.Type.Copy(),
		DefaultValue:      CopyValue(c.DefaultValue),
		DeprecationReason: c.DeprecationReason,
		Extensions:        CopyExtensions(c.Extensions),
		ASTNode:           c.ASTNode,
	}
}

func (a Argument) HasDefaultValue() bool {
	return a.DefaultValue != nil
}

func (a Argument) IsDeprecated() bool {
	return a.DeprecationReason != ""
}

// IsRequiredArgument reports whether a caller must always provide the argument.
func IsRequiredArgument(arg Argument) bool {
	return arg.Type.IsNonNull() && !arg.HasDefaultValue()
}

// Arguments is the input form of an argument list.
// Both ArgumentList and ArgumentConfigMap implement it.
type Arguments interface {
	DefineArguments() []Argument
}

// ArgumentList declares arguments by name in order.
type ArgumentList []Argument

func (l ArgumentList) DefineArguments() []Argument {
	out := make([]Argument, 0, len(l))
	for i := range l {
		out = append(out, l[i].Copy())
	}
	return out
}

// CopyExtensions returns a deep copy of an extensions map, nil stays nil.
func CopyExtensions(extensions map[string]interface{}) map[string]interface{} {
	if extensions == nil {
		return nil
	}
	out := make(map[string]interface{}, len(extensions))
	for key, value := range extensions {
		out[key] = CopyValue(value)
	}
	return out
}

// CopyValue deep copies the lists and objects of a default or extension value.
// Scalars are returned as is.
func CopyValue(value interface{}) interface{} {
	switch v := value.(type) {
	case []interface{}:
		if v == nil {
			return v
		}
		out := make([]interface{}, len(v))
		for i := range v {
			out[i] = CopyValue(v[i])
		}
		return out
	case map[string]interface{}:
		return CopyExtensions(v)
	case map[interface{}]interface{}:
		if v == nil {
			return v
		}
		out := make(map[interface{}]interface{}, len(v))
		for key, item := range v {
			out[key] = CopyValue(item)
		}
		return out
	case []string:
		if v == nil {
			return v
		}
		return append([]string(nil), v...)
	default:
		return v
	}
}

// EnumValue is a default value that prints as a bare enum literal instead of a string.
type EnumValue string
