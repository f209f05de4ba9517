package position

import "fmt"

// Position points at the first rune of a node in its source document.
// Line and Column are 1-based, the zero value means unknown.
type Position struct {
	Line   int
	Column int
	Source string // optional, name of the source document
}

func (p Position) String() string {
	if p.Source == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Source, p.Line, p.Column)
}

func (p *Position) IsSet() bool {
	return p.Line != 0 || p.Column != 0
}

func (p *Position) IsBefore(another Position) bool {
	return p.Line < another.Line ||
		p.Line == another.Line && p.Column < another.Column
}
