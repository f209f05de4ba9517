// Package directive defines GraphQL directive definitions.
//
// A Directive is built once from a Config, validated eagerly and never changes afterwards.
// Printers, validators and executors read it concurrently without locking.
package directive

import (
	"encoding/json"

	"github.com/wundergraph/graphql-directives/pkg/ast"
	"github.com/wundergraph/graphql-directives/pkg/typesystem"
)

// Config describes a directive to be built with New.
type Config struct {
	Name         string
	Description  string
	Locations    ast.DirectiveLocations
	Args         typesystem.Arguments // optional, an ArgumentList or an *ArgumentConfigMap
	IsRepeatable bool
	Extensions   map[string]interface{}
	ASTNode      *ast.DirectiveDefinition // not owned, only used for error locations
}

// Directive is an immutable directive definition.
// All accessors return copies, callers can't change a Directive once it is built.
type Directive struct {
	name         string
	description  string
	locations    ast.DirectiveLocations
	isRepeatable bool
	args         []typesystem.Argument
	extensions   map[string]interface{}
	astNode      *ast.DirectiveDefinition
}

// New validates config and returns the directive it describes.
// Every failure is a *ConfigError.
func New(config Config) (*Directive, error) {
	if config.Name == "" {
		return nil, &ConfigError{Message: "Directive must be named."}
	}
	if !ast.IsValidName(config.Name) {
		return nil, invalidNameError(config.Name, config.Name)
	}

	if len(config.Locations) == 0 {
		return nil, &ConfigError{
			DirectiveName: config.Name,
			Message:       "@" + config.Name + " locations must be a non-empty list.",
		}
	}
	for _, location := range config.Locations {
		if !location.IsValid() {
			return nil, &ConfigError{
				DirectiveName: config.Name,
				Message:       "@" + config.Name + " has an invalid location \"" + location.String() + "\".",
			}
		}
	}

	var args []typesystem.Argument
	if config.Args != nil {
		args = config.Args.DefineArguments()
	}
	if args == nil {
		args = []typesystem.Argument{}
	}
	seen := make(map[string]struct{}, len(args))
	for i := range args {
		if !ast.IsValidName(args[i].Name) {
			return nil, invalidNameError(config.Name, args[i].Name)
		}
		if _, exists := seen[args[i].Name]; exists {
			return nil, &ConfigError{
				DirectiveName: config.Name,
				Message:       "Argument \"@" + config.Name + "(" + args[i].Name + ":)\" can only be defined once.",
			}
		}
		seen[args[i].Name] = struct{}{}
	}

	return &Directive{
		name:         config.Name,
		description:  config.Description,
		locations:    config.Locations.Copy(),
		isRepeatable: config.IsRepeatable,
		args:         args,
		extensions:   typesystem.CopyExtensions(config.Extensions),
		astNode:      config.ASTNode,
	}, nil
}

// MustNew is like New but panics on an invalid config.
// It is meant for package level directive variables.
func MustNew(config Config) *Directive {
	directive, err := New(config)
	if err != nil {
		panic(err)
	}
	return directive
}

func (d *Directive) Name() string {
	return d.name
}

func (d *Directive) Description() string {
	return d.description
}

// Locations returns a copy of the locations in declaration order.
func (d *Directive) Locations() ast.DirectiveLocations {
	return d.locations.Copy()
}

func (d *Directive) IsRepeatable() bool {
	return d.isRepeatable
}

// Args returns a copy of the arguments in declaration order.
func (d *Directive) Args() []typesystem.Argument {
	out := make([]typesystem.Argument, len(d.args))
	for i := range d.args {
		out[i] = d.args[i].Copy()
	}
	return out
}

// Arg looks up a single argument by name.
func (d *Directive) Arg(name string) (typesystem.Argument, bool) {
	for i := range d.args {
		if d.args[i].Name == name {
			return d.args[i].Copy(), true
		}
	}
	return typesystem.Argument{}, false
}

// Extensions returns a copy of the extensions, nil if none were set.
func (d *Directive) Extensions() map[string]interface{} {
	return typesystem.CopyExtensions(d.extensions)
}

func (d *Directive) ASTNode() *ast.DirectiveDefinition {
	return d.astNode
}

// ToConfig returns a Config that builds a directive equal to d.
// Args are returned as an *ArgumentConfigMap in declaration order.
func (d *Directive) ToConfig() Config {
	return Config{
		Name:         d.name,
		Description:  d.description,
		Locations:    d.locations.Copy(),
		Args:         typesystem.ArgumentsToConfigMap(d.args),
		IsRepeatable: d.isRepeatable,
		Extensions:   typesystem.CopyExtensions(d.extensions),
		ASTNode:      d.astNode,
	}
}

// String returns the short form, e.g. @skip.
func (d *Directive) String() string {
	return "@" + d.name
}

// GoString makes %#v print the short form as well.
func (d *Directive) GoString() string {
	return d.String()
}

// MarshalJSON encodes the directive as its short form string.
func (d *Directive) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
