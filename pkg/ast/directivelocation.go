package ast

import (
	"strconv"
	"strings"
)

// DirectiveLocation as specified in:
// http://spec.graphql.org/October2021/#DirectiveLocations
type DirectiveLocation int

const (
	DirectiveLocationUnknown DirectiveLocation = iota

	ExecutableDirectiveLocationQuery
	ExecutableDirectiveLocationMutation
	ExecutableDirectiveLocationSubscription
	ExecutableDirectiveLocationField
	ExecutableDirectiveLocationFragmentDefinition
	ExecutableDirectiveLocationFragmentSpread
	ExecutableDirectiveLocationInlineFragment
	ExecutableDirectiveLocationVariableDefinition

	TypeSystemDirectiveLocationSchema
	TypeSystemDirectiveLocationScalar
	TypeSystemDirectiveLocationObject
	TypeSystemDirectiveLocationFieldDefinition
	TypeSystemDirectiveLocationArgumentDefinition
	TypeSystemDirectiveLocationInterface
	TypeSystemDirectiveLocationUnion
	TypeSystemDirectiveLocationEnum
	TypeSystemDirectiveLocationEnumValue
	TypeSystemDirectiveLocationInputObject
	TypeSystemDirectiveLocationInputFieldDefinition

	directiveLocationEnd
)

var directiveLocationNames = [...]string{
	DirectiveLocationUnknown:                        "UNKNOWN",
	ExecutableDirectiveLocationQuery:                "QUERY",
	ExecutableDirectiveLocationMutation:             "MUTATION",
	ExecutableDirectiveLocationSubscription:         "SUBSCRIPTION",
	ExecutableDirectiveLocationField:                "FIELD",
	ExecutableDirectiveLocationFragmentDefinition:   "FRAGMENT_DEFINITION",
	ExecutableDirectiveLocationFragmentSpread:       "FRAGMENT_SPREAD",
	ExecutableDirectiveLocationInlineFragment:       "INLINE_FRAGMENT",
	ExecutableDirectiveLocationVariableDefinition:   "VARIABLE_DEFINITION",
	TypeSystemDirectiveLocationSchema:               "SCHEMA",
	TypeSystemDirectiveLocationScalar:               "SCALAR",
	TypeSystemDirectiveLocationObject:               "OBJECT",
	TypeSystemDirectiveLocationFieldDefinition:      "FIELD_DEFINITION",
	TypeSystemDirectiveLocationArgumentDefinition:   "ARGUMENT_DEFINITION",
	TypeSystemDirectiveLocationInterface:            "INTERFACE",
	TypeSystemDirectiveLocationUnion:                "UNION",
	TypeSystemDirectiveLocationEnum:                 "ENUM",
	TypeSystemDirectiveLocationEnumValue:            "ENUM_VALUE",
	TypeSystemDirectiveLocationInputObject:          "INPUT_OBJECT",
	TypeSystemDirectiveLocationInputFieldDefinition: "INPUT_FIELD_DEFINITION",
}

// ParseDirectiveLocation resolves the GraphQL name of a location, e.g. FIELD_DEFINITION.
func ParseDirectiveLocation(name string) (DirectiveLocation, bool) {
	for i := ExecutableDirectiveLocationQuery; i < directiveLocationEnd; i++ {
		if directiveLocationNames[i] == name {
			return i, true
		}
	}
	return DirectiveLocationUnknown, false
}

// IsValid reports whether d is one of the locations GraphQL defines.
func (d DirectiveLocation) IsValid() bool {
	return d > DirectiveLocationUnknown && d < directiveLocationEnd
}

func (d DirectiveLocation) IsExecutable() bool {
	return d >= ExecutableDirectiveLocationQuery && d <= ExecutableDirectiveLocationVariableDefinition
}

func (d DirectiveLocation) IsTypeSystem() bool {
	return d >= TypeSystemDirectiveLocationSchema && d < directiveLocationEnd
}

func (d DirectiveLocation) String() string {
	if d < DirectiveLocationUnknown || d >= directiveLocationEnd {
		return "DirectiveLocation(" + strconv.Itoa(int(d)) + ")"
	}
	return directiveLocationNames[d]
}

// DirectiveLocations is an ordered list of locations, in declaration order.
type DirectiveLocations []DirectiveLocation

func (d DirectiveLocations) Contains(location DirectiveLocation) bool {
	for i := range d {
		if d[i] == location {
			return true
		}
	}
	return false
}

func (d DirectiveLocations) Copy() DirectiveLocations {
	if d == nil {
		return nil
	}
	out := make(DirectiveLocations, len(d))
	copy(out, d)
	return out
}

// Names returns the GraphQL names in declaration order.
func (d DirectiveLocations) Names() []string {
	out := make([]string, len(d))
	for i := range d {
		out[i] = d[i].String()
	}
	return out
}

func (d DirectiveLocations) String() string {
	builder := strings.Builder{}
	builder.WriteString("[")
	for i, location := range d {
		builder.WriteString(location.String())
		if i < len(d)-1 {
			builder.WriteString(",")
		}
	}
	builder.WriteString("]")
	return builder.String()
}
