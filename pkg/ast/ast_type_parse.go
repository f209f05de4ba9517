package ast

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/wundergraph/graphql-directives/pkg/lexer/runes"
)

// ParseType parses a type reference written in SDL notation, e.g. [String!]!
func ParseType(input string) (Type, error) {
	p := typeParser{input: strings.TrimSpace(input)}
	t, err := p.parse()
	if err != nil {
		return Type{}, err
	}
	if p.pos != len(p.input) {
		return Type{}, fmt.Errorf("ast: unexpected %q at offset %d in type %q", p.input[p.pos:], p.pos, input)
	}
	return t, nil
}

type typeParser struct {
	input string
	pos   int
}

func (p *typeParser) parse() (Type, error) {
	var out Type
	if p.peek() == runes.LBRACK {
		p.pos++
		inner, err := p.parse()
		if err != nil {
			return Type{}, err
		}
		if p.peek() != runes.RBRACK {
			return Type{}, fmt.Errorf("ast: missing ] in type %q", p.input)
		}
		p.pos++
		out = ListType(inner)
	} else {
		start := p.pos
		for p.pos < len(p.input) {
			r, size := utf8.DecodeRuneInString(p.input[p.pos:])
			if !runes.IsNameContinue(r) {
				break
			}
			p.pos += size
		}
		name := p.input[start:p.pos]
		if !IsValidName(name) {
			return Type{}, fmt.Errorf("ast: invalid type name %q in type %q", name, p.input)
		}
		out = NamedType(name)
	}
	if p.peek() == runes.BANG {
		p.pos++
		out = NonNullType(out)
	}
	return out, nil
}

func (p *typeParser) peek() rune {
	for p.pos < len(p.input) && p.input[p.pos] == runes.SPACE {
		p.pos++
	}
	if p.pos >= len(p.input) {
		return runes.EOF
	}
	return rune(p.input[p.pos])
}
