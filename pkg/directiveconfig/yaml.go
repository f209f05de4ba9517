package directiveconfig

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

type yamlFile struct {
	Directives []yamlDirective `yaml:"directives"`
}

type yamlDirective struct {
	Name        string                 `yaml:"name"`
	Description string                 `yaml:"description"`
	Locations   []string               `yaml:"locations"`
	Repeatable  bool                   `yaml:"repeatable"`
	Extensions  map[string]interface{} `yaml:"extensions"`
	Args        yamlArgs               `yaml:"args"`
}

type yamlArgument struct {
	Name              string                 `yaml:"name"`
	Type              string                 `yaml:"type"`
	Description       string                 `yaml:"description"`
	DefaultValue      interface{}            `yaml:"defaultValue"`
	DefaultEnumValue  string                 `yaml:"defaultEnumValue"`
	DeprecationReason string                 `yaml:"deprecationReason"`
	Extensions        map[string]interface{} `yaml:"extensions"`
}

// yamlArgs accepts both a list of arguments and a mapping keyed by argument name.
type yamlArgs struct {
	args  []yamlArgument
	asMap bool
}

func (a *yamlArgs) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var list []yamlArgument
	if err := unmarshal(&list); err == nil {
		a.args = list
		return nil
	}

	var mapping yaml.MapSlice
	if err := unmarshal(&mapping); err != nil {
		return fmt.Errorf("args must be a list or a mapping: %w", err)
	}
	a.asMap = true
	a.args = make([]yamlArgument, 0, len(mapping))
	for _, item := range mapping {
		name, ok := item.Key.(string)
		if !ok {
			return fmt.Errorf("argument name %v must be a string", item.Key)
		}
		raw, err := yaml.Marshal(item.Value)
		if err != nil {
			return err
		}
		var arg yamlArgument
		if err := yaml.Unmarshal(raw, &arg); err != nil {
			return fmt.Errorf("argument %s: %w", name, err)
		}
		arg.Name = name
		a.args = append(a.args, arg)
	}
	return nil
}

func decodeYAML(data []byte) ([]Definition, error) {
	var file yamlFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	out := make([]Definition, 0, len(file.Directives))
	for _, d := range file.Directives {
		definition := Definition{
			Name:        d.Name,
			Description: d.Description,
			Locations:   d.Locations,
			Repeatable:  d.Repeatable,
			Extensions:  normalizeYAMLMap(d.Extensions),
			ArgsAsMap:   d.Args.asMap,
			Args:        make([]ArgumentDefinition, 0, len(d.Args.args)),
		}
		for _, arg := range d.Args.args {
			definition.Args = append(definition.Args, ArgumentDefinition{
				Name:              arg.Name,
				Type:              arg.Type,
				Description:       arg.Description,
				DefaultValue:      normalizeYAMLValue(arg.DefaultValue),
				DefaultEnumValue:  arg.DefaultEnumValue,
				DeprecationReason: arg.DeprecationReason,
				Extensions:        normalizeYAMLMap(arg.Extensions),
			})
		}
		out = append(out, definition)
	}
	return out, nil
}

func normalizeYAMLMap(in map[string]interface{}) map[string]interface{} {
	if in == nil {
		return nil
	}
	out := make(map[string]interface{}, len(in))
	for key, value := range in {
		out[key] = normalizeYAMLValue(value)
	}
	return out
}

// normalizeYAMLValue turns the map[interface{}]interface{} values yaml.v2 decodes into JSON-like maps.
func normalizeYAMLValue(value interface{}) interface{} {
	switch v := value.(type) {
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = normalizeYAMLValue(item)
		}
		return out
	case map[string]interface{}:
		return normalizeYAMLMap(v)
	case []interface{}:
		out := make([]interface{}, len(v))
		for i := range v {
			out[i] = normalizeYAMLValue(v[i])
		}
		return out
	default:
		return v
	}
}
