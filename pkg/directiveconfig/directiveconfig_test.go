package directiveconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wundergraph/graphql-directives/pkg/ast"
	"github.com/wundergraph/graphql-directives/pkg/directive"
	"github.com/wundergraph/graphql-directives/pkg/directiveprinter"
	"github.com/wundergraph/graphql-directives/pkg/operationreport"
	"github.com/wundergraph/graphql-directives/pkg/typesystem"
)

const expectedSDL = `"""Caches the field."""
directive @cache(
  """Seconds to keep the value."""
  maxAge: Int!
  scope: CacheScope = PUBLIC
  tags: [String!] = ["a", "b"]
  legacy: Boolean @deprecated
) repeatable on FIELD_DEFINITION | OBJECT

directive @internal(team: String = "core", level: Int = 2) on QUERY | MUTATION
`

func printDirectives(t *testing.T, directives []*directive.Directive) string {
	t.Helper()
	definitions := make([]directive.Definition, len(directives))
	for i := range directives {
		definitions[i] = directives[i]
	}
	out := &stringWriter{}
	require.NoError(t, directiveprinter.Print(definitions, false, out))
	return out.String()
}

type stringWriter struct {
	data []byte
}

func (w *stringWriter) Write(p []byte) (int, error) {
	w.data = append(w.data, p...)
	return len(p), nil
}

func (w *stringWriter) String() string {
	return string(w.data)
}

func TestLoader_LoadFile(t *testing.T) {
	for _, file := range []string{"directives.yaml", "directives.json"} {
		file := file
		t.Run(file, func(t *testing.T) {
			directives, err := NewLoader().LoadFile(filepath.Join("testdata", file))
			require.NoError(t, err)
			require.Len(t, directives, 2)

			assert.Equal(t, expectedSDL, printDirectives(t, directives))

			cache := directives[0]
			assert.Equal(t, "platform", cache.Extensions()["owner"])
			assert.Equal(t, map[string]interface{}{"max": float64(10)}, normalizeNumbers(cache.Extensions()["limits"]))

			_, isMap := cache.ToConfig().Args.(*typesystem.ArgumentConfigMap)
			assert.True(t, isMap)

			scope, ok := cache.Arg("scope")
			require.True(t, ok)
			assert.Equal(t, typesystem.EnumValue("PUBLIC"), scope.DefaultValue)

			internal := directives[1]
			assert.Equal(t, ast.DirectiveLocations{ast.ExecutableDirectiveLocationQuery, ast.ExecutableDirectiveLocationMutation}, internal.Locations())
			assert.False(t, internal.IsRepeatable())
		})
	}
}

// normalizeNumbers makes yaml ints and json floats comparable.
func normalizeNumbers(value interface{}) interface{} {
	switch v := value.(type) {
	case int:
		return float64(v)
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, item := range v {
			out[key] = normalizeNumbers(item)
		}
		return out
	default:
		return v
	}
}

func TestLoad_Errors(t *testing.T) {
	reportMessages := func(t *testing.T, err error) []string {
		t.Helper()
		var report operationreport.Report
		require.True(t, errors.As(err, &report), "want report, got %v", err)
		messages := make([]string, 0, len(report.ExternalErrors))
		for i := range report.ExternalErrors {
			messages = append(messages, report.ExternalErrors[i].Message)
		}
		return messages
	}

	t.Run("yaml", func(t *testing.T) {
		directives, err := LoadYAML([]byte(`
directives:
  - name: noLocations
  - name: badLocation
    locations: [NOPE]
  - name: badType
    locations: [FIELD]
    args:
      a:
        type: "[Int"
  - name: duplicateArgs
    locations: [FIELD]
    args:
      - name: a
        type: Int
      - name: a
        type: String
  - name: bothDefaults
    locations: [FIELD]
    args:
      - name: a
        type: Color
        defaultValue: RED
        defaultEnumValue: RED
  - name: fine
    locations: [FIELD]
`))
		assert.Nil(t, directives)
		assert.Equal(t, []string{
			"@noLocations locations must be a non-empty list.",
			`Directive "@badLocation" has an unknown location "NOPE".`,
			`Argument "@badType(a:)" is invalid: ast: missing ] in type "[Int"`,
			`Argument "@duplicateArgs(a:)" can only be defined once.`,
			`Argument "@bothDefaults(a:)" is invalid: defaultValue and defaultEnumValue are mutually exclusive`,
		}, reportMessages(t, err))
	})
	t.Run("json", func(t *testing.T) {
		directives, err := LoadJSON([]byte(`{"directives":[{"locations":["FIELD"]},{"name":"ok","locations":["FIELD"]}]}`))
		assert.Nil(t, directives)
		assert.Equal(t, []string{"Directive must be named."}, reportMessages(t, err))
	})
	t.Run("repeated keys in an args mapping", func(t *testing.T) {
		_, err := LoadYAML([]byte(`
directives:
  - name: cache
    locations: [FIELD]
    args:
      maxAge:
        type: Int
      maxAge:
        type: String
`))
		assert.Equal(t, []string{`Argument "@cache(maxAge:)" can only be defined once.`}, reportMessages(t, err))

		_, err = LoadJSON([]byte(`{"directives":[{"name":"cache","locations":["FIELD"],"args":{"maxAge":{"type":"Int"},"maxAge":{"type":"String"}}}]}`))
		assert.Equal(t, []string{`Argument "@cache(maxAge:)" can only be defined once.`}, reportMessages(t, err))
	})
	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadYAML([]byte("directives: [\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode yaml directive config")
	})
	t.Run("malformed json", func(t *testing.T) {
		_, err := LoadJSON([]byte(`{"directives": {"name": "x"}}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "has to be a JSON array")
	})
	t.Run("json args of wrong kind", func(t *testing.T) {
		_, err := LoadJSON([]byte(`{"directives":[{"name":"x","locations":["FIELD"],"args":"nope"}]}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "has to be a JSON object or array")
	})
	t.Run("unknown format", func(t *testing.T) {
		_, err := NewLoader().Load(nil, Format("toml"))
		assert.True(t, errors.Is(err, ErrUnknownFormat))

		_, err = NewLoader().LoadFile("directives.toml")
		assert.True(t, errors.Is(err, ErrUnknownFormat))
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := NewLoader().LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.True(t, os.IsNotExist(errors.Cause(err)))
	})
}

func TestLoad_Empty(t *testing.T) {
	directives, err := LoadJSON([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, directives)

	directives, err = LoadYAML([]byte(`directives: []`))
	require.NoError(t, err)
	assert.Empty(t, directives)
}

func TestFormatFromPath(t *testing.T) {
	for path, expected := range map[string]Format{
		"a.yaml":      FormatYAML,
		"dir/b.YML":   FormatYAML,
		"/abs/c.json": FormatJSON,
	} {
		format, err := FormatFromPath(path)
		require.NoError(t, err)
		assert.Equal(t, expected, format)
	}
	_, err := FormatFromPath("schema.graphql")
	assert.Error(t, err)
}
