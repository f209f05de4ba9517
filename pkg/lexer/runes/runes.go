package runes

const (
	EOF            = 0
	COLON          = ':'
	BANG           = '!'
	LINETERMINATOR = '\n'
	SPACE          = ' '
	QUOTE          = '"'
	BACKSLASH      = '\\'
	AT             = '@'
	PIPE           = '|'
	EQUALS         = '='
	UNDERSCORE     = '_'

	LPAREN = '('
	RPAREN = ')'
	LBRACK = '['
	RBRACK = ']'
)

// IsNameStart reports whether r may open a GraphQL Name.
func IsNameStart(r rune) bool {
	return r == UNDERSCORE || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// IsNameContinue reports whether r may appear after the first rune of a GraphQL Name.
func IsNameContinue(r rune) bool {
	return IsNameStart(r) || (r >= '0' && r <= '9')
}
