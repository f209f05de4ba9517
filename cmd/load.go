package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jensneuse/abstractlogger"
	"github.com/pkg/errors"

	"github.com/wundergraph/graphql-directives/pkg/directive"
	"github.com/wundergraph/graphql-directives/pkg/directiveconfig"
	"github.com/wundergraph/graphql-directives/pkg/registry"
	"github.com/wundergraph/graphql-directives/pkg/sdl"
)

const formatSDL = "sdl"

func inputFormat(path, override string) (string, error) {
	if override != "" {
		switch override {
		case formatSDL, string(directiveconfig.FormatYAML), string(directiveconfig.FormatJSON):
			return override, nil
		}
		return "", errors.Errorf("unknown input format: %s", override)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".graphql", ".graphqls", ".gql", ".sdl":
		return formatSDL, nil
	}
	format, err := directiveconfig.FormatFromPath(path)
	return string(format), err
}

func loadFile(log abstractlogger.Logger, path, formatOverride string) ([]*directive.Directive, error) {
	format, err := inputFormat(path, formatOverride)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	if format == formatSDL {
		return sdl.NewBuilder(sdl.WithLogger(log)).Build(string(data), path)
	}
	return directiveconfig.NewLoader(directiveconfig.WithLogger(log)).Load(data, directiveconfig.Format(format))
}

// loadRegistry adds the directives of all files to a fresh registry, in file order.
func loadRegistry(log abstractlogger.Logger, paths []string, formatOverride string, protectSpecified bool) (*registry.Registry, error) {
	opts := []registry.Option{registry.WithLogger(log)}
	if protectSpecified {
		opts = append(opts, registry.WithProtectedSpecifiedDirectives())
	}
	reg := registry.New(opts...)
	for _, path := range paths {
		directives, err := loadFile(log, path, formatOverride)
		if err != nil {
			return nil, &fileError{path: path, err: err}
		}
		definitions := make([]directive.Definition, len(directives))
		for i := range directives {
			definitions[i] = directives[i]
		}
		if err := reg.Add(definitions...); err != nil {
			return nil, &fileError{path: path, err: err}
		}
		log.Debug("cmd.loadRegistry",
			abstractlogger.String("file", path),
			abstractlogger.Int("directives", len(directives)),
		)
	}
	return reg, nil
}

type fileError struct {
	path string
	err  error
}

func (e *fileError) Error() string {
	return e.path + ": " + e.err.Error()
}

func (e *fileError) Unwrap() error {
	return e.err
}
