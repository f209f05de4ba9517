package directiveconfig

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/buger/jsonparser"
)

const (
	directivesKey        = "directives"
	nameKey              = "name"
	descriptionKey       = "description"
	locationsKey         = "locations"
	repeatableKey        = "repeatable"
	extensionsKey        = "extensions"
	argsKey              = "args"
	typeKey              = "type"
	defaultValueKey      = "defaultValue"
	defaultEnumValueKey  = "defaultEnumValue"
	deprecationReasonKey = "deprecationReason"
)

func decodeJSON(data []byte) ([]Definition, error) {
	directivesValue, dataType, _, err := jsonparser.Get(data, directivesKey)
	if errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if dataType != jsonparser.Array {
		return nil, fmt.Errorf("key: %s has to be a JSON array", directivesKey)
	}

	var (
		out     []Definition
		itemErr error
	)
	_, err = jsonparser.ArrayEach(directivesValue, func(value []byte, dataType jsonparser.ValueType, _ int, _ error) {
		if itemErr != nil {
			return
		}
		if dataType != jsonparser.Object {
			itemErr = fmt.Errorf("%s entries have to be JSON objects", directivesKey)
			return
		}
		definition, err := decodeJSONDirective(value)
		if err != nil {
			itemErr = err
			return
		}
		out = append(out, definition)
	})
	if err != nil {
		return nil, err
	}
	return out, itemErr
}

func decodeJSONDirective(data []byte) (definition Definition, err error) {
	if definition.Name, err = optionalString(data, nameKey); err != nil {
		return definition, err
	}
	if definition.Description, err = optionalString(data, descriptionKey); err != nil {
		return definition, err
	}

	definition.Repeatable, err = jsonparser.GetBoolean(data, repeatableKey)
	if err != nil && !errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return definition, fmt.Errorf("directive %s: key: %s has to be a boolean", definition.Name, repeatableKey)
	}

	locationsValue, dataType, _, err := jsonparser.Get(data, locationsKey)
	if err == nil {
		if dataType != jsonparser.Array {
			return definition, fmt.Errorf("directive %s: key: %s has to be a JSON array", definition.Name, locationsKey)
		}
		_, err = jsonparser.ArrayEach(locationsValue, func(value []byte, dataType jsonparser.ValueType, _ int, _ error) {
			definition.Locations = append(definition.Locations, string(value))
		})
		if err != nil {
			return definition, err
		}
	}

	if definition.Extensions, err = optionalObject(data, extensionsKey); err != nil {
		return definition, err
	}

	argsValue, dataType, _, err := jsonparser.Get(data, argsKey)
	if errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return definition, nil
	}
	if err != nil {
		return definition, err
	}

	switch dataType {
	case jsonparser.Object:
		definition.ArgsAsMap = true
		err = jsonparser.ObjectEach(argsValue, func(key []byte, value []byte, dataType jsonparser.ValueType, _ int) error {
			if dataType != jsonparser.Object {
				return fmt.Errorf("directive %s: argument %s has to be a JSON object", definition.Name, key)
			}
			arg, err := decodeJSONArgument(value)
			if err != nil {
				return err
			}
			arg.Name = string(key)
			definition.Args = append(definition.Args, arg)
			return nil
		})
	case jsonparser.Array:
		var itemErr error
		_, err = jsonparser.ArrayEach(argsValue, func(value []byte, dataType jsonparser.ValueType, _ int, _ error) {
			if itemErr != nil {
				return
			}
			arg, err := decodeJSONArgument(value)
			if err != nil {
				itemErr = err
				return
			}
			definition.Args = append(definition.Args, arg)
		})
		if err == nil {
			err = itemErr
		}
	default:
		err = fmt.Errorf("directive %s: key: %s has to be a JSON object or array", definition.Name, argsKey)
	}
	return definition, err
}

func decodeJSONArgument(data []byte) (arg ArgumentDefinition, err error) {
	if arg.Name, err = optionalString(data, nameKey); err != nil {
		return arg, err
	}
	if arg.Type, err = optionalString(data, typeKey); err != nil {
		return arg, err
	}
	if arg.Description, err = optionalString(data, descriptionKey); err != nil {
		return arg, err
	}
	if arg.DefaultEnumValue, err = optionalString(data, defaultEnumValueKey); err != nil {
		return arg, err
	}
	if arg.DeprecationReason, err = optionalString(data, deprecationReasonKey); err != nil {
		return arg, err
	}
	if arg.Extensions, err = optionalObject(data, extensionsKey); err != nil {
		return arg, err
	}

	defaultValue, dataType, _, err := jsonparser.Get(data, defaultValueKey)
	if errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return arg, nil
	}
	if err != nil {
		return arg, err
	}
	if dataType == jsonparser.String {
		// Get strips the quotes of string values
		arg.DefaultValue, err = jsonparser.ParseString(defaultValue)
		return arg, err
	}
	err = json.Unmarshal(defaultValue, &arg.DefaultValue)
	return arg, err
}

func optionalString(data []byte, key string) (string, error) {
	value, err := jsonparser.GetString(data, key)
	if errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("key: %s has to be a string", key)
	}
	return value, nil
}

func optionalObject(data []byte, key string) (map[string]interface{}, error) {
	value, dataType, _, err := jsonparser.Get(data, key)
	if errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if dataType != jsonparser.Object {
		return nil, fmt.Errorf("key: %s has to be a JSON object", key)
	}
	out := map[string]interface{}{}
	if err := json.Unmarshal(value, &out); err != nil {
		return nil, err
	}
	return out, nil
}
