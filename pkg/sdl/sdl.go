// Package sdl builds directive definitions from GraphQL schema definition language documents.
package sdl

import (
	"errors"
	"strconv"

	"github.com/jensneuse/abstractlogger"
	gqlast "github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/wundergraph/graphql-directives/pkg/ast"
	"github.com/wundergraph/graphql-directives/pkg/directive"
	"github.com/wundergraph/graphql-directives/pkg/lexer/position"
	"github.com/wundergraph/graphql-directives/pkg/operationreport"
	"github.com/wundergraph/graphql-directives/pkg/typesystem"
)

type Option func(b *Builder)

func WithLogger(log abstractlogger.Logger) Option {
	return func(b *Builder) {
		b.log = log
	}
}

// Builder turns the directive definitions of SDL documents into directives.
type Builder struct {
	log abstractlogger.Logger
}

func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		log: abstractlogger.NoopLogger,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ParseDirectives is a shorthand for NewBuilder().Build(source, name).
func ParseDirectives(source, name string) ([]*directive.Directive, error) {
	return NewBuilder().Build(source, name)
}

// Build parses source and returns its directive definitions in declaration order.
// All invalid definitions are reported at once, the returned error is an operationreport.Report.
func (b *Builder) Build(source, name string) ([]*directive.Directive, error) {
	doc, parseErr := parser.ParseSchema(&gqlast.Source{Name: name, Input: source})
	if parseErr != nil {
		report := operationreport.Report{}
		var gqlErr *gqlerror.Error
		if errors.As(parseErr, &gqlErr) {
			report.AddExternalError(externalErrorFromGQLError(gqlErr))
		} else {
			report.AddInternalError(parseErr)
		}
		return nil, report
	}

	report := operationreport.Report{}
	directives := make([]*directive.Directive, 0, len(doc.Directives))
	seen := make(map[string]position.Position, len(doc.Directives))

	for _, definition := range doc.Directives {
		node, ok := b.definitionNode(definition, name, &report)
		if !ok {
			continue
		}
		if first, exists := seen[node.Name]; exists {
			report.AddExternalError(operationreport.ErrDirectiveNameMustBeUnique(node.Name, first, node.Position))
			continue
		}
		seen[node.Name] = node.Position

		args, ok := b.arguments(definition, node, &report)
		if !ok {
			continue
		}

		built, err := directive.New(directive.Config{
			Name:         node.Name,
			Description:  node.Description,
			Locations:    node.DirectiveLocations,
			Args:         args,
			IsRepeatable: node.Repeatable,
			ASTNode:      node,
		})
		if err != nil {
			report.AddExternalError(operationreport.ErrDirectiveDefinitionInvalid(err.Error(), node.Position))
			continue
		}

		b.log.Debug("sdl.Builder.Build",
			abstractlogger.String("directive", built.String()),
			abstractlogger.String("source", name),
			abstractlogger.Int("args", len(node.ArgumentsDefinition)),
		)
		directives = append(directives, built)
	}

	if report.HasErrors() {
		return nil, report
	}
	return directives, nil
}

func (b *Builder) definitionNode(definition *gqlast.DirectiveDefinition, sourceName string, report *operationreport.Report) (*ast.DirectiveDefinition, bool) {
	node := &ast.DirectiveDefinition{
		Description: definition.Description,
		Name:        definition.Name,
		Repeatable:  definition.IsRepeatable,
		Position:    convertPosition(definition.Position, sourceName),
	}

	node.DirectiveLocations = make(ast.DirectiveLocations, 0, len(definition.Locations))
	for _, name := range definition.Locations {
		location, ok := ast.ParseDirectiveLocation(string(name))
		if !ok {
			report.AddExternalError(operationreport.ErrDirectiveLocationUnknown(definition.Name, string(name), node.Position))
			return nil, false
		}
		node.DirectiveLocations = append(node.DirectiveLocations, location)
	}

	node.ArgumentsDefinition = make([]ast.InputValueDefinition, 0, len(definition.Arguments))
	for _, arg := range definition.Arguments {
		inputValue := ast.InputValueDefinition{
			Description: arg.Description,
			Name:        arg.Name,
			Type:        convertType(arg.Type),
			Position:    convertPosition(arg.Position, sourceName),
		}
		if arg.DefaultValue != nil {
			inputValue.DefaultValue = arg.DefaultValue.String()
		}
		node.ArgumentsDefinition = append(node.ArgumentsDefinition, inputValue)
	}

	return node, true
}

func (b *Builder) arguments(definition *gqlast.DirectiveDefinition, node *ast.DirectiveDefinition, report *operationreport.Report) (typesystem.ArgumentList, bool) {
	args := make(typesystem.ArgumentList, 0, len(definition.Arguments))
	for i, arg := range definition.Arguments {
		argument := typesystem.Argument{
			Name:        arg.Name,
			Description: arg.Description,
			Type:        node.ArgumentsDefinition[i].Type,
			ASTNode:     &node.ArgumentsDefinition[i],
		}
		if arg.DefaultValue != nil {
			value, err := valueFromAST(arg.DefaultValue)
			if err != nil {
				report.AddExternalError(operationreport.ErrDirectiveArgumentDefaultValueInvalid(definition.Name, arg.Name, node.ArgumentsDefinition[i].Position))
				return nil, false
			}
			argument.DefaultValue = value
		}
		if deprecated := arg.Directives.ForName("deprecated"); deprecated != nil {
			argument.DeprecationReason = directive.DefaultDeprecationReason
			if reason := deprecated.Arguments.ForName("reason"); reason != nil && reason.Value != nil && reason.Value.Kind != gqlast.NullValue {
				argument.DeprecationReason = reason.Value.Raw
			}
		}
		args = append(args, argument)
	}
	return args, true
}

func convertType(t *gqlast.Type) ast.Type {
	if t == nil {
		return ast.Type{TypeKind: ast.TypeKindUnknown}
	}
	var out ast.Type
	if t.Elem != nil {
		out = ast.ListType(convertType(t.Elem))
	} else {
		out = ast.NamedType(t.NamedType)
	}
	if t.NonNull {
		out = ast.NonNullType(out)
	}
	return out
}

func convertPosition(pos *gqlast.Position, sourceName string) position.Position {
	if pos == nil {
		return position.Position{}
	}
	return position.Position{
		Line:   pos.Line,
		Column: pos.Column,
		Source: sourceName,
	}
}

var errVariableInDefaultValue = errors.New("variables are not allowed in default values")

func valueFromAST(value *gqlast.Value) (interface{}, error) {
	switch value.Kind {
	case gqlast.NullValue:
		return nil, nil
	case gqlast.IntValue:
		return strconv.ParseInt(value.Raw, 10, 64)
	case gqlast.FloatValue:
		return strconv.ParseFloat(value.Raw, 64)
	case gqlast.StringValue, gqlast.BlockValue:
		return value.Raw, nil
	case gqlast.BooleanValue:
		return strconv.ParseBool(value.Raw)
	case gqlast.EnumValue:
		return typesystem.EnumValue(value.Raw), nil
	case gqlast.ListValue:
		out := make([]interface{}, 0, len(value.Children))
		for _, child := range value.Children {
			item, err := valueFromAST(child.Value)
			if err != nil {
				return nil, err
			}
			out = append(out, item)
		}
		return out, nil
	case gqlast.ObjectValue:
		out := make(map[string]interface{}, len(value.Children))
		for _, child := range value.Children {
			item, err := valueFromAST(child.Value)
			if err != nil {
				return nil, err
			}
			out[child.Name] = item
		}
		return out, nil
	default:
		return nil, errVariableInDefaultValue
	}
}

func externalErrorFromGQLError(err *gqlerror.Error) operationreport.ExternalError {
	out := operationreport.ExternalError{Message: err.Message}
	for _, location := range err.Locations {
		out.Locations = append(out.Locations, operationreport.Location{
			Line:   uint32(location.Line),
			Column: uint32(location.Column),
		})
	}
	return out
}
