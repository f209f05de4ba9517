// Package directiveconfig loads directive definitions from YAML or JSON configuration files.
//
// Both formats share one layout:
//
//	directives:
//	  - name: cache
//	    description: Caches the field.
//	    locations: [FIELD_DEFINITION, OBJECT]
//	    repeatable: true
//	    extensions:
//	      owner: platform
//	    args:
//	      maxAge:
//	        type: Int!
//	        defaultValue: 60
//	      scope:
//	        type: CacheScope
//	        defaultEnumValue: PUBLIC
//
// args may also be a list of objects that carry their own name key. Mapping order is kept.
package directiveconfig

import (
	"path/filepath"
	"strings"

	"github.com/jensneuse/abstractlogger"
	"github.com/pkg/errors"

	"github.com/wundergraph/graphql-directives/pkg/ast"
	"github.com/wundergraph/graphql-directives/pkg/directive"
	"github.com/wundergraph/graphql-directives/pkg/lexer/position"
	"github.com/wundergraph/graphql-directives/pkg/operationreport"
	"github.com/wundergraph/graphql-directives/pkg/typesystem"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var ErrUnknownFormat = errors.New("unknown directive config format")

// FormatFromPath guesses the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "file %s", path)
	}
}

// Definition is the decoded form of a single directive entry.
type Definition struct {
	Name        string
	Description string
	Locations   []string
	Repeatable  bool
	Extensions  map[string]interface{}
	Args        []ArgumentDefinition
	// ArgsAsMap is set when args were given as a mapping keyed by argument name.
	ArgsAsMap bool
}

type ArgumentDefinition struct {
	Name              string
	Type              string
	Description       string
	DefaultValue      interface{}
	DefaultEnumValue  string
	DeprecationReason string
	Extensions        map[string]interface{}
}

type Option func(l *Loader)

func WithLogger(log abstractlogger.Logger) Option {
	return func(l *Loader) {
		l.log = log
	}
}

type Loader struct {
	log abstractlogger.Logger
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		log: abstractlogger.NoopLogger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load decodes data in the given format and builds its directives.
func (l *Loader) Load(data []byte, format Format) ([]*directive.Directive, error) {
	var (
		definitions []Definition
		err         error
	)
	switch format {
	case FormatYAML:
		definitions, err = decodeYAML(data)
	case FormatJSON:
		definitions, err = decodeJSON(data)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s directive config", format)
	}
	return l.Build(definitions)
}

// Build turns decoded definitions into directives, reporting every invalid entry.
func (l *Loader) Build(definitions []Definition) ([]*directive.Directive, error) {
	report := operationreport.Report{}
	out := make([]*directive.Directive, 0, len(definitions))
	for i := range definitions {
		built, ok := l.build(definitions[i], &report)
		if !ok {
			continue
		}
		l.log.Debug("directiveconfig.Loader.Build",
			abstractlogger.String("directive", built.String()),
			abstractlogger.Int("args", len(definitions[i].Args)),
		)
		out = append(out, built)
	}
	if report.HasErrors() {
		return nil, report
	}
	return out, nil
}

func (l *Loader) build(definition Definition, report *operationreport.Report) (*directive.Directive, bool) {
	locations := make(ast.DirectiveLocations, 0, len(definition.Locations))
	for _, name := range definition.Locations {
		location, ok := ast.ParseDirectiveLocation(name)
		if !ok {
			report.AddExternalError(operationreport.ErrDirectiveLocationUnknown(definition.Name, name, position.Position{}))
			return nil, false
		}
		locations = append(locations, location)
	}

	var args typesystem.Arguments
	if definition.ArgsAsMap {
		argMap := &typesystem.ArgumentConfigMap{}
		for _, arg := range definition.Args {
			if _, exists := argMap.Get(arg.Name); exists {
				report.AddExternalError(operationreport.ErrDirectiveDefinitionInvalid(duplicateArgumentError(definition.Name, arg.Name), position.Position{}))
				return nil, false
			}
			config, err := argumentConfig(arg)
			if err != nil {
				report.AddExternalError(operationreport.ErrDirectiveDefinitionInvalid(argumentError(definition.Name, arg.Name, err), position.Position{}))
				return nil, false
			}
			argMap.Set(arg.Name, config)
		}
		args = argMap
	} else {
		argList := make(typesystem.ArgumentList, 0, len(definition.Args))
		for _, arg := range definition.Args {
			config, err := argumentConfig(arg)
			if err != nil {
				report.AddExternalError(operationreport.ErrDirectiveDefinitionInvalid(argumentError(definition.Name, arg.Name, err), position.Position{}))
				return nil, false
			}
			argList = append(argList, config.Argument(arg.Name))
		}
		args = argList
	}

	built, err := directive.New(directive.Config{
		Name:         definition.Name,
		Description:  definition.Description,
		Locations:    locations,
		Args:         args,
		IsRepeatable: definition.Repeatable,
		Extensions:   definition.Extensions,
	})
	if err != nil {
		report.AddExternalError(operationreport.ErrDirectiveDefinitionInvalid(err.Error(), position.Position{}))
		return nil, false
	}
	return built, true
}

func argumentConfig(arg ArgumentDefinition) (typesystem.ArgumentConfig, error) {
	typ, err := ast.ParseType(arg.Type)
	if err != nil {
		return typesystem.ArgumentConfig{}, err
	}
	config := typesystem.ArgumentConfig{
		Description:       arg.Description,
		Type:              typ,
		DefaultValue:      arg.DefaultValue,
		DeprecationReason: arg.DeprecationReason,
		Extensions:        arg.Extensions,
	}
	if arg.DefaultEnumValue != "" {
		if arg.DefaultValue != nil {
			return typesystem.ArgumentConfig{}, errors.New("defaultValue and defaultEnumValue are mutually exclusive")
		}
		config.DefaultValue = typesystem.EnumValue(arg.DefaultEnumValue)
	}
	return config, nil
}

func argumentError(directiveName, argName string, err error) string {
	return "Argument \"@" + directiveName + "(" + argName + ":)\" is invalid: " + err.Error()
}

func duplicateArgumentError(directiveName, argName string) string {
	return "Argument \"@" + directiveName + "(" + argName + ":)\" can only be defined once."
}
