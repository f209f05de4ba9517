package ast

import (
	"bytes"
	"io"

	"github.com/wundergraph/graphql-directives/pkg/lexer/literal"
	"github.com/wundergraph/graphql-directives/pkg/lexer/position"
)

type TypeKind int

const (
	TypeKindUnknown TypeKind = 14 + iota
	TypeKindNamed
	TypeKindList
	TypeKindNonNull
)

// Type is a reference to an input or output type
// example:
// [String!]!
type Type struct {
	TypeKind TypeKind // one of Named,List,NonNull
	Name     string   // e.g. String (only on NamedType)
	OfType   *Type    // wrapped type (only on ListType and NonNullType)
	Position position.Position
}

func NamedType(name string) Type {
	return Type{TypeKind: TypeKindNamed, Name: name}
}

func ListType(ofType Type) Type {
	return Type{TypeKind: TypeKindList, OfType: &ofType}
}

func NonNullType(ofType Type) Type {
	return Type{TypeKind: TypeKindNonNull, OfType: &ofType}
}

func (t Type) IsNonNull() bool {
	return t.TypeKind == TypeKindNonNull
}

// NamedTypeName unwraps all List and NonNull wrappers and returns the innermost name.
func (t Type) NamedTypeName() string {
	current := &t
	for current != nil && current.TypeKind != TypeKindNamed {
		current = current.OfType
	}
	if current == nil {
		return ""
	}
	return current.Name
}

// Copy returns a deep copy so that the wrapped types are not shared.
func (t Type) Copy() Type {
	out := t
	if t.OfType != nil {
		inner := t.OfType.Copy()
		out.OfType = &inner
	}
	return out
}

func (t Type) Equals(other Type) bool {
	if t.TypeKind != other.TypeKind || t.Name != other.Name {
		return false
	}
	if t.OfType == nil || other.OfType == nil {
		return t.OfType == nil && other.OfType == nil
	}
	return t.OfType.Equals(*other.OfType)
}

func (t Type) Print(w io.Writer) error {
	switch t.TypeKind {
	case TypeKindNonNull:
		if t.OfType == nil {
			return ErrInvalidType
		}
		err := t.OfType.Print(w)
		if err != nil {
			return err
		}
		_, err = w.Write(literal.BANG)
		return err
	case TypeKindNamed:
		_, err := io.WriteString(w, t.Name)
		return err
	case TypeKindList:
		if t.OfType == nil {
			return ErrInvalidType
		}
		_, err := w.Write(literal.LBRACK)
		if err != nil {
			return err
		}
		err = t.OfType.Print(w)
		if err != nil {
			return err
		}
		_, err = w.Write(literal.RBRACK)
		return err
	}
	return ErrInvalidType
}

func (t Type) String() string {
	buf := bytes.Buffer{}
	if err := t.Print(&buf); err != nil {
		return "<invalid type>"
	}
	return buf.String()
}
