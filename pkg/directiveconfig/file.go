package directiveconfig

import (
	"os"

	"github.com/pkg/errors"

	"github.com/wundergraph/graphql-directives/pkg/directive"
)

// LoadFile reads a .yaml, .yml or .json directive config.
func (l *Loader) LoadFile(path string) ([]*directive.Directive, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read directive config %s", path)
	}
	return l.Load(data, format)
}

func LoadYAML(data []byte) ([]*directive.Directive, error) {
	return NewLoader().Load(data, FormatYAML)
}

func LoadJSON(data []byte) ([]*directive.Directive, error) {
	return NewLoader().Load(data, FormatJSON)
}
