package directive

import (
	"github.com/wundergraph/graphql-directives/pkg/ast"
	"github.com/wundergraph/graphql-directives/pkg/typesystem"
)

// DefaultDeprecationReason is the reason used by @deprecated when none is given.
const DefaultDeprecationReason = "No longer supported"

// IncludeDirective is used to conditionally include fields or fragments.
var IncludeDirective = MustNew(Config{
	Name:        "include",
	Description: "Directs the executor to include this field or fragment only when the `if` argument is true.",
	Locations: ast.DirectiveLocations{
		ast.ExecutableDirectiveLocationField,
		ast.ExecutableDirectiveLocationFragmentSpread,
		ast.ExecutableDirectiveLocationInlineFragment,
	},
	Args: typesystem.NewArgumentConfigMap(typesystem.ArgumentConfigEntry{
		Name: "if",
		Config: typesystem.ArgumentConfig{
			Type:        ast.NonNullType(typesystem.Boolean),
			Description: "Included when true.",
		},
	}),
})

// SkipDirective is used to conditionally skip (exclude) fields or fragments.
var SkipDirective = MustNew(Config{
	Name:        "skip",
	Description: "Directs the executor to skip this field or fragment when the `if` argument is true.",
	Locations: ast.DirectiveLocations{
		ast.ExecutableDirectiveLocationField,
		ast.ExecutableDirectiveLocationFragmentSpread,
		ast.ExecutableDirectiveLocationInlineFragment,
	},
	Args: typesystem.NewArgumentConfigMap(typesystem.ArgumentConfigEntry{
		Name: "if",
		Config: typesystem.ArgumentConfig{
			Type:        ast.NonNullType(typesystem.Boolean),
			Description: "Skipped when true.",
		},
	}),
})

// DeprecatedDirective is used to declare an element of a GraphQL schema as deprecated.
var DeprecatedDirective = MustNew(Config{
	Name:        "deprecated",
	Description: "Marks an element of a GraphQL schema as no longer supported.",
	Locations: ast.DirectiveLocations{
		ast.TypeSystemDirectiveLocationFieldDefinition,
		ast.TypeSystemDirectiveLocationArgumentDefinition,
		ast.TypeSystemDirectiveLocationInputFieldDefinition,
		ast.TypeSystemDirectiveLocationEnumValue,
	},
	Args: typesystem.NewArgumentConfigMap(typesystem.ArgumentConfigEntry{
		Name: "reason",
		Config: typesystem.ArgumentConfig{
			Type: typesystem.String,
			Description: "Explains why this element was deprecated, usually also including a suggestion for how to access " +
				"supported similar data. Formatted using the Markdown syntax, as specified by [CommonMark](https://commonmark.org/).",
			DefaultValue: DefaultDeprecationReason,
		},
	}),
})

var specifiedDirectives = [...]*Directive{
	IncludeDirective,
	SkipDirective,
	DeprecatedDirective,
}

// SpecifiedDirectives returns the directives every schema carries, in spec order.
// The returned slice is a copy.
func SpecifiedDirectives() []*Directive {
	out := make([]*Directive, len(specifiedDirectives))
	copy(out, specifiedDirectives[:])
	return out
}

// IsSpecifiedDirective reports whether directive has the name of a specified directive.
// The check is by name, a custom directive named skip is still a specified one.
func IsSpecifiedDirective(directive Definition) bool {
	if !IsDirective(directive) {
		return false
	}
	return IsSpecifiedDirectiveName(directive.Name())
}

func IsSpecifiedDirectiveName(name string) bool {
	for i := range specifiedDirectives {
		if specifiedDirectives[i].name == name {
			return true
		}
	}
	return false
}
