package literal

var (
	COLON          = []byte(":")
	BANG           = []byte("!")
	SPACE          = []byte(" ")
	COMMA          = []byte(",")
	AT             = []byte("@")
	PIPE           = []byte("|")
	EQUALS         = []byte("=")
	LINETERMINATOR = []byte("\n")
	QUOTE          = []byte(`"`)
	BLOCKQUOTE     = []byte(`"""`)

	LPAREN = []byte("(")
	RPAREN = []byte(")")
	LBRACK = []byte("[")
	RBRACK = []byte("]")
	LBRACE = []byte("{")
	RBRACE = []byte("}")

	DIRECTIVE  = []byte("directive")
	ON         = []byte("on")
	REPEATABLE = []byte("repeatable")
	NULL       = []byte("null")
	TRUE       = []byte("true")
	FALSE      = []byte("false")

	BOOLEAN = []byte("Boolean")
	STRING  = []byte("String")
	INT     = []byte("Int")
	FLOAT   = []byte("Float")
	ID      = []byte("ID")

	INCLUDE    = []byte("include")
	SKIP       = []byte("skip")
	DEPRECATED = []byte("deprecated")
	IF         = []byte("if")
	REASON     = []byte("reason")
)
