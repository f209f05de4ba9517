// Package directiveprinter prints directive definitions as GraphQL SDL.
package directiveprinter

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/wundergraph/graphql-directives/pkg/directive"
	"github.com/wundergraph/graphql-directives/pkg/lexer/literal"
	"github.com/wundergraph/graphql-directives/pkg/typesystem"
)

const (
	indent = "  "
	// descriptions longer than this are printed as multi line block strings
	maxSingleLineDescription = 70
)

// Print writes the custom directives of definitions, separated by an empty line.
// Specified directives are skipped unless includeSpecified is set.
func Print(definitions []directive.Definition, includeSpecified bool, out io.Writer) error {
	printer := Printer{IncludeSpecified: includeSpecified}
	return printer.Print(definitions, out)
}

// PrintString prints a single directive definition.
func PrintString(definition directive.Definition) (string, error) {
	buf := &bytes.Buffer{}
	printer := Printer{IncludeSpecified: true}
	err := printer.PrintDirective(definition, buf)
	return buf.String(), err
}

type Printer struct {
	IncludeSpecified bool
	out              io.Writer
	err              error
}

func (p *Printer) Print(definitions []directive.Definition, out io.Writer) error {
	p.out = out
	p.err = nil
	printed := 0
	for _, definition := range definitions {
		if !p.IncludeSpecified && directive.IsSpecifiedDirective(definition) {
			continue
		}
		if printed != 0 {
			p.write(literal.LINETERMINATOR)
			p.write(literal.LINETERMINATOR)
		}
		p.printDirective(definition)
		printed++
	}
	if printed != 0 {
		p.write(literal.LINETERMINATOR)
	}
	return p.err
}

func (p *Printer) PrintDirective(definition directive.Definition, out io.Writer) error {
	p.out = out
	p.err = nil
	p.printDirective(definition)
	return p.err
}

func (p *Printer) printDirective(definition directive.Definition) {
	p.printDescription(definition.Description(), "", true)
	p.write(literal.DIRECTIVE)
	p.write(literal.SPACE)
	p.write(literal.AT)
	p.writeString(definition.Name())
	p.printArgs(definition.Args())
	if definition.IsRepeatable() {
		p.write(literal.SPACE)
		p.write(literal.REPEATABLE)
	}
	p.write(literal.SPACE)
	p.write(literal.ON)
	p.write(literal.SPACE)
	for i, location := range definition.Locations() {
		if i != 0 {
			p.write(literal.SPACE)
			p.write(literal.PIPE)
			p.write(literal.SPACE)
		}
		p.writeString(location.String())
	}
}

func (p *Printer) printArgs(args []typesystem.Argument) {
	if len(args) == 0 {
		return
	}
	described := false
	for i := range args {
		if args[i].Description != "" {
			described = true
			break
		}
	}
	p.write(literal.LPAREN)
	if !described {
		for i := range args {
			if i != 0 {
				p.write(literal.COMMA)
				p.write(literal.SPACE)
			}
			p.printInputValue(args[i])
		}
		p.write(literal.RPAREN)
		return
	}
	p.write(literal.LINETERMINATOR)
	for i := range args {
		p.printDescription(args[i].Description, indent, i == 0)
		p.writeString(indent)
		p.printInputValue(args[i])
		p.write(literal.LINETERMINATOR)
	}
	p.write(literal.RPAREN)
}

func (p *Printer) printInputValue(arg typesystem.Argument) {
	p.writeString(arg.Name)
	p.write(literal.COLON)
	p.write(literal.SPACE)
	if p.err == nil {
		p.err = arg.Type.Print(p.out)
	}
	if arg.HasDefaultValue() {
		p.write(literal.SPACE)
		p.write(literal.EQUALS)
		p.write(literal.SPACE)
		p.writeString(PrintValue(arg.DefaultValue))
	}
	if arg.IsDeprecated() {
		p.write(literal.SPACE)
		p.write(literal.AT)
		p.write(literal.DEPRECATED)
		if arg.DeprecationReason != directive.DefaultDeprecationReason {
			p.write(literal.LPAREN)
			p.write(literal.REASON)
			p.write(literal.COLON)
			p.write(literal.SPACE)
			p.writeString(printString(arg.DeprecationReason))
			p.write(literal.RPAREN)
		}
	}
}

func (p *Printer) printDescription(description, indentation string, firstInBlock bool) {
	if description == "" {
		return
	}
	if indentation != "" && !firstInBlock {
		p.write(literal.LINETERMINATOR)
	}
	p.writeString(indentation)
	block := blockString(description, len(description) > maxSingleLineDescription)
	p.writeString(strings.ReplaceAll(block, "\n", "\n"+indentation))
	p.write(literal.LINETERMINATOR)
}

func blockString(value string, preferMultipleLines bool) string {
	isSingleLine := !strings.Contains(value, "\n")
	hasLeadingSpace := value[0] == ' ' || value[0] == '\t'
	hasTrailingQuote := value[len(value)-1] == '"'
	hasTrailingSlash := value[len(value)-1] == '\\'
	multipleLines := !isSingleLine || hasTrailingQuote || hasTrailingSlash || preferMultipleLines

	result := ""
	if multipleLines && !(isSingleLine && hasLeadingSpace) {
		result += "\n"
	}
	result += value
	if multipleLines {
		result += "\n"
	}
	return `"""` + strings.ReplaceAll(result, `"""`, `\"""`) + `"""`
}

// PrintValue prints a Go value as a GraphQL input literal.
func PrintValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return string(literal.NULL)
	case typesystem.EnumValue:
		return string(v)
	case string:
		return printString(v)
	case bool:
		if v {
			return string(literal.TRUE)
		}
		return string(literal.FALSE)
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case []interface{}:
		items := make([]string, len(v))
		for i := range v {
			items[i] = PrintValue(v[i])
		}
		return "[" + strings.Join(items, ", ") + "]"
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		fields := make([]string, len(keys))
		for i, key := range keys {
			fields[i] = key + ": " + PrintValue(v[key])
		}
		return "{" + strings.Join(fields, ", ") + "}"
	case []string:
		items := make([]string, len(v))
		for i := range v {
			items[i] = printString(v[i])
		}
		return "[" + strings.Join(items, ", ") + "]"
	default:
		return printString(directive.Inspect(v))
	}
}

// printString prints value as a GraphQL string literal.
// Control characters use \uXXXX escapes, everything else but quote and backslash is kept as is.
func printString(value string) string {
	var b strings.Builder
	b.Grow(len(value) + 2)
	b.WriteByte('"')
	for _, r := range value {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || (r >= 0x7f && r <= 0x9f) {
				fmt.Fprintf(&b, `\u%04X`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func (p *Printer) write(data []byte) {
	if p.err != nil {
		return
	}
	_, p.err = p.out.Write(data)
}

func (p *Printer) writeString(data string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.out, data)
}
