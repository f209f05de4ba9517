package directive

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wundergraph/graphql-directives/pkg/ast"
	"github.com/wundergraph/graphql-directives/pkg/lexer/position"
	"github.com/wundergraph/graphql-directives/pkg/typesystem"
)

var cmpOptions = cmp.Options{
	cmp.AllowUnexported(Directive{}, typesystem.ArgumentConfigMap{}),
}

func fieldLocations() ast.DirectiveLocations {
	return ast.DirectiveLocations{ast.ExecutableDirectiveLocationField}
}

func TestNew(t *testing.T) {
	t.Run("minimal config", func(t *testing.T) {
		directive, err := New(Config{
			Name:      "Foo",
			Locations: ast.DirectiveLocations{ast.ExecutableDirectiveLocationQuery},
		})
		require.NoError(t, err)

		assert.Equal(t, "Foo", directive.Name())
		assert.Equal(t, "", directive.Description())
		assert.Equal(t, ast.DirectiveLocations{ast.ExecutableDirectiveLocationQuery}, directive.Locations())
		assert.Equal(t, []typesystem.Argument{}, directive.Args())
		assert.False(t, directive.IsRepeatable())
		assert.Nil(t, directive.Extensions())
		assert.Nil(t, directive.ASTNode())
	})
	t.Run("all fields", func(t *testing.T) {
		node := &ast.DirectiveDefinition{Name: "Foo", Position: position.Position{Line: 2, Column: 1}}
		directive, err := New(Config{
			Name:         "Foo",
			Description:  "Foo description",
			Locations:    ast.DirectiveLocations{ast.ExecutableDirectiveLocationQuery, ast.TypeSystemDirectiveLocationSchema},
			IsRepeatable: true,
			Extensions:   map[string]interface{}{"someExtension": "extension"},
			ASTNode:      node,
			Args: typesystem.NewArgumentConfigMap(
				typesystem.ArgumentConfigEntry{Name: "foo", Config: typesystem.ArgumentConfig{Type: typesystem.String}},
				typesystem.ArgumentConfigEntry{Name: "bar", Config: typesystem.ArgumentConfig{Type: typesystem.Int}},
			),
		})
		require.NoError(t, err)

		assert.Equal(t, "Foo description", directive.Description())
		assert.True(t, directive.IsRepeatable())
		assert.Equal(t, map[string]interface{}{"someExtension": "extension"}, directive.Extensions())
		assert.Same(t, node, directive.ASTNode())

		args := directive.Args()
		require.Len(t, args, 2)
		assert.Equal(t, "foo", args[0].Name)
		assert.Equal(t, "String", args[0].Type.String())
		assert.Equal(t, "bar", args[1].Name)
		assert.Equal(t, "Int", args[1].Type.String())
	})
	t.Run("args as list keep declaration order", func(t *testing.T) {
		directive, err := New(Config{
			Name:      "Foo",
			Locations: fieldLocations(),
			Args: typesystem.ArgumentList{
				{Name: "z", Type: typesystem.Int},
				{Name: "a", Type: typesystem.Boolean, DefaultValue: false},
			},
		})
		require.NoError(t, err)

		args := directive.Args()
		require.Len(t, args, 2)
		assert.Equal(t, "z", args[0].Name)
		assert.Equal(t, "a", args[1].Name)
		assert.Equal(t, false, args[1].DefaultValue)
	})
	t.Run("arg lookup", func(t *testing.T) {
		arg, ok := SkipDirective.Arg("if")
		assert.True(t, ok)
		assert.Equal(t, "Boolean!", arg.Type.String())

		_, ok = SkipDirective.Arg("unless")
		assert.False(t, ok)
	})
}

func TestNew_Errors(t *testing.T) {
	run := func(t *testing.T, config Config, expectedMessage string) {
		t.Helper()
		directive, err := New(config)
		assert.Nil(t, directive)
		require.Error(t, err)

		var configErr *ConfigError
		require.True(t, errors.As(err, &configErr))
		assert.Equal(t, expectedMessage, err.Error())
	}

	t.Run("missing name", func(t *testing.T) {
		run(t, Config{Locations: fieldLocations()}, "Directive must be named.")
	})
	t.Run("invalid name", func(t *testing.T) {
		run(t, Config{Name: "bad-name", Locations: fieldLocations()},
			`Names must match /^[_a-zA-Z][_a-zA-Z0-9]*$/ but "bad-name" does not.`)
		run(t, Config{Name: "1st", Locations: fieldLocations()},
			`Names must match /^[_a-zA-Z][_a-zA-Z0-9]*$/ but "1st" does not.`)
	})
	t.Run("missing locations", func(t *testing.T) {
		run(t, Config{Name: "Foo"}, "@Foo locations must be a non-empty list.")
	})
	t.Run("empty locations", func(t *testing.T) {
		run(t, Config{Name: "Foo", Locations: ast.DirectiveLocations{}}, "@Foo locations must be a non-empty list.")
	})
	t.Run("unknown location", func(t *testing.T) {
		run(t, Config{Name: "Foo", Locations: ast.DirectiveLocations{ast.ExecutableDirectiveLocationField, ast.DirectiveLocationUnknown}},
			`@Foo has an invalid location "UNKNOWN".`)
		run(t, Config{Name: "Foo", Locations: ast.DirectiveLocations{ast.DirectiveLocation(42)}},
			`@Foo has an invalid location "DirectiveLocation(42)".`)
	})
	t.Run("invalid arg name", func(t *testing.T) {
		run(t, Config{
			Name:      "Foo",
			Locations: fieldLocations(),
			Args:      typesystem.ArgumentList{{Name: "bad name", Type: typesystem.String}},
		}, `Names must match /^[_a-zA-Z][_a-zA-Z0-9]*$/ but "bad name" does not.`)
	})
	t.Run("invalid arg map key", func(t *testing.T) {
		run(t, Config{
			Name:      "Foo",
			Locations: fieldLocations(),
			Args:      typesystem.NewArgumentConfigMap(typesystem.ArgumentConfigEntry{Name: "", Config: typesystem.ArgumentConfig{Type: typesystem.String}}),
		}, `Names must match /^[_a-zA-Z][_a-zA-Z0-9]*$/ but "" does not.`)
	})
	t.Run("duplicate args", func(t *testing.T) {
		run(t, Config{
			Name:      "Foo",
			Locations: fieldLocations(),
			Args: typesystem.ArgumentList{
				{Name: "arg", Type: typesystem.String},
				{Name: "other", Type: typesystem.String},
				{Name: "arg", Type: typesystem.Int},
			},
		}, `Argument "@Foo(arg:)" can only be defined once.`)
	})
	t.Run("arg names are case sensitive", func(t *testing.T) {
		_, err := New(Config{
			Name:      "Foo",
			Locations: fieldLocations(),
			Args: typesystem.ArgumentList{
				{Name: "arg", Type: typesystem.String},
				{Name: "Arg", Type: typesystem.String},
			},
		})
		assert.NoError(t, err)
	})
	t.Run("config error carries the directive name", func(t *testing.T) {
		_, err := New(Config{Name: "Foo"})
		var configErr *ConfigError
		require.True(t, errors.As(err, &configErr))
		assert.Equal(t, "Foo", configErr.DirectiveName)
	})
}

func TestMustNew(t *testing.T) {
	assert.Panics(t, func() {
		MustNew(Config{Name: "Foo"})
	})
	assert.NotPanics(t, func() {
		MustNew(Config{Name: "Foo", Locations: fieldLocations()})
	})
}

func TestDirective_Immutability(t *testing.T) {
	locations := ast.DirectiveLocations{ast.ExecutableDirectiveLocationField, ast.ExecutableDirectiveLocationQuery}
	extensions := map[string]interface{}{"k": "v"}
	args := typesystem.ArgumentList{{Name: "a", Type: ast.NonNullType(typesystem.String)}}

	directive, err := New(Config{Name: "Foo", Locations: locations, Extensions: extensions, Args: args})
	require.NoError(t, err)

	t.Run("config inputs are copied", func(t *testing.T) {
		locations[0] = ast.TypeSystemDirectiveLocationEnum
		extensions["k"] = "changed"
		args[0].Name = "changed"
		args[0].Type.OfType.Name = "Int"

		assert.Equal(t, ast.ExecutableDirectiveLocationField, directive.Locations()[0])
		assert.Equal(t, "v", directive.Extensions()["k"])
		assert.Equal(t, "a", directive.Args()[0].Name)
		assert.Equal(t, "String!", directive.Args()[0].Type.String())
	})
	t.Run("accessor results are copies", func(t *testing.T) {
		gotLocations := directive.Locations()
		gotLocations[0] = ast.TypeSystemDirectiveLocationEnum

		gotArgs := directive.Args()
		gotArgs[0].Name = "changed"
		gotArgs[0].Type.OfType.Name = "Int"

		gotExtensions := directive.Extensions()
		gotExtensions["new"] = true

		assert.Equal(t, ast.ExecutableDirectiveLocationField, directive.Locations()[0])
		assert.Equal(t, "a", directive.Args()[0].Name)
		assert.Equal(t, "String!", directive.Args()[0].Type.String())
		assert.NotContains(t, directive.Extensions(), "new")
	})
	t.Run("to config results are copies", func(t *testing.T) {
		config := directive.ToConfig()
		config.Locations[0] = ast.TypeSystemDirectiveLocationEnum
		config.Extensions["new"] = true

		assert.Equal(t, ast.ExecutableDirectiveLocationField, directive.Locations()[0])
		assert.NotContains(t, directive.Extensions(), "new")
	})
	t.Run("list and object default values are copies", func(t *testing.T) {
		tags := []interface{}{"a", "b"}
		limits := map[string]interface{}{"max": 10, "nested": []interface{}{1}}
		withDefaults, err := New(Config{
			Name:       "cache",
			Locations:  fieldLocations(),
			Extensions: map[string]interface{}{"owner": map[string]interface{}{"team": "core"}},
			Args: typesystem.ArgumentList{
				{Name: "tags", Type: ast.ListType(typesystem.String), DefaultValue: tags},
				{Name: "limits", Type: ast.NamedType("Limits"), DefaultValue: limits},
			},
		})
		require.NoError(t, err)

		tags[0] = "changed"
		limits["max"] = 0

		gotArgs := withDefaults.Args()
		gotArgs[0].DefaultValue.([]interface{})[0] = "changed"
		gotArgs[1].DefaultValue.(map[string]interface{})["nested"].([]interface{})[0] = 2

		config := withDefaults.ToConfig()
		tagsConfig, ok := config.Args.(*typesystem.ArgumentConfigMap).Get("tags")
		require.True(t, ok)
		tagsConfig.DefaultValue.([]interface{})[1] = "changed"
		config.Extensions["owner"].(map[string]interface{})["team"] = "changed"

		withDefaults.Extensions()["owner"].(map[string]interface{})["team"] = "changed"

		tagsArg, _ := withDefaults.Arg("tags")
		limitsArg, _ := withDefaults.Arg("limits")
		assert.Equal(t, []interface{}{"a", "b"}, tagsArg.DefaultValue)
		assert.Equal(t, map[string]interface{}{"max": 10, "nested": []interface{}{1}}, limitsArg.DefaultValue)
		assert.Equal(t, map[string]interface{}{"team": "core"}, withDefaults.Extensions()["owner"])
	})
}

func TestDirective_ToConfig(t *testing.T) {
	node := &ast.DirectiveDefinition{Name: "Foo"}
	configs := map[string]Config{
		"minimal": {
			Name:      "Foo",
			Locations: fieldLocations(),
		},
		"full with arg map": {
			Name:         "Foo",
			Description:  "Foo description",
			Locations:    ast.DirectiveLocations{ast.ExecutableDirectiveLocationQuery, ast.ExecutableDirectiveLocationMutation},
			IsRepeatable: true,
			Extensions:   map[string]interface{}{"someExtension": "extension"},
			ASTNode:      node,
			Args: typesystem.NewArgumentConfigMap(
				typesystem.ArgumentConfigEntry{Name: "z", Config: typesystem.ArgumentConfig{
					Type:              ast.NonNullType(ast.ListType(typesystem.ID)),
					Description:       "z description",
					DeprecationReason: "use a",
					Extensions:        map[string]interface{}{"argExtension": 1},
				}},
				typesystem.ArgumentConfigEntry{Name: "a", Config: typesystem.ArgumentConfig{
					Type:         typesystem.Float,
					DefaultValue: 1.5,
				}},
			),
		},
		"arg list": {
			Name:      "Foo",
			Locations: fieldLocations(),
			Args: typesystem.ArgumentList{
				{Name: "b", Type: typesystem.String},
				{Name: "a", Type: typesystem.Int, DefaultValue: 3},
			},
		},
	}

	for name, config := range configs {
		config := config
		t.Run(name, func(t *testing.T) {
			directive, err := New(config)
			require.NoError(t, err)

			out := directive.ToConfig()
			assert.Equal(t, config.Name, out.Name)
			assert.Equal(t, config.Description, out.Description)
			assert.Equal(t, config.Locations, out.Locations)
			assert.Equal(t, config.IsRepeatable, out.IsRepeatable)
			assert.Equal(t, config.Extensions, out.Extensions)
			assert.Same(t, config.ASTNode, out.ASTNode)

			var want []typesystem.Argument
			if config.Args != nil {
				want = config.Args.DefineArguments()
			} else {
				want = []typesystem.Argument{}
			}
			assert.Equal(t, want, out.Args.DefineArguments())

			_, isMap := out.Args.(*typesystem.ArgumentConfigMap)
			assert.True(t, isMap)

			rebuilt, err := New(out)
			require.NoError(t, err)
			if diff := cmp.Diff(directive, rebuilt, cmpOptions); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("specified directives round trip", func(t *testing.T) {
		for _, specified := range SpecifiedDirectives() {
			rebuilt, err := New(specified.ToConfig())
			require.NoError(t, err)
			if diff := cmp.Diff(specified, rebuilt, cmpOptions); diff != "" {
				t.Fatalf("%s round trip mismatch (-want +got):\n%s", specified, diff)
			}
		}
	})
}

func TestDirective_String(t *testing.T) {
	directive := MustNew(Config{Name: "Foo", Locations: fieldLocations()})

	assert.Equal(t, "@Foo", directive.String())
	assert.Equal(t, "@Foo", fmt.Sprintf("%v", directive))
	assert.Equal(t, "@Foo", fmt.Sprintf("%s", directive))
	assert.Equal(t, "@Foo", fmt.Sprintf("%#v", directive))

	data, err := json.Marshal(directive)
	require.NoError(t, err)
	assert.Equal(t, `"@Foo"`, string(data))

	data, err = json.Marshal(map[string]interface{}{"directives": SpecifiedDirectives()})
	require.NoError(t, err)
	assert.Equal(t, `{"directives":["@include","@skip","@deprecated"]}`, string(data))
}
