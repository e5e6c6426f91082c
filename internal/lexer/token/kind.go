package token

import "fmt"

type Kind int

const (
	EOF Kind = iota
	INVALID
	WHITESPACE

	// Literals
	NUMBER
	STRING

	// Identifier
	ID

	// Keywords
	TRUE
	FALSE
	VAR
	DEF
	IF
	ELSE
	WHILE
	FOR

	// (
	OPEN_PAREN
	// )
	CLOSE_PAREN
	// {
	OPEN_CURLY
	// }
	CLOSE_CURLY
	// ;
	SEMICOLON

	// +
	PLUS
	// -
	MINUS
	// *
	STAR
	// /
	SLASH
	// %
	PERCENT
	// ^
	HAT
	// ~
	TILDE

	// !
	BANG
	// =
	EQUAL
	// ==
	EQUAL_EQUAL
	// !=
	BANG_EQUAL
	// <
	LESS
	// <=
	LESS_EQ
	// >
	GREATER
	// >=
	GREATER_EQ

	// &
	AMPERSAND
	// &&
	AMPERSAND_AMPERSAND
	// |
	PIPE
	// ||
	PIPE_PIPE

	kindCount
)

var KEYWORDS map[string]Kind = map[string]Kind{
	"true":  TRUE,
	"false": FALSE,
	"var":   VAR,
	"def":   DEF,
	"if":    IF,
	"else":  ELSE,
	"while": WHILE,
	"for":   FOR,
}

// Kinds returns every token kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for kind := EOF; kind < kindCount; kind++ {
		kinds = append(kinds, kind)
	}
	return kinds
}

func KeywordKind(identifier string) Kind {
	if kind, ok := KEYWORDS[identifier]; ok {
		return kind
	}
	return ID
}

func (kind Kind) IsKeyword() bool {
	return kind >= TRUE && kind <= FOR
}

// Text returns the fixed spelling of kind, or "" when tokens of that kind
// carry arbitrary text.
func Text(kind Kind) string {
	switch kind {
	case TRUE:
		return "true"
	case FALSE:
		return "false"
	case VAR:
		return "var"
	case DEF:
		return "def"
	case IF:
		return "if"
	case ELSE:
		return "else"
	case WHILE:
		return "while"
	case FOR:
		return "for"
	case OPEN_PAREN:
		return "("
	case CLOSE_PAREN:
		return ")"
	case OPEN_CURLY:
		return "{"
	case CLOSE_CURLY:
		return "}"
	case SEMICOLON:
		return ";"
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case STAR:
		return "*"
	case SLASH:
		return "/"
	case PERCENT:
		return "%"
	case HAT:
		return "^"
	case TILDE:
		return "~"
	case BANG:
		return "!"
	case EQUAL:
		return "="
	case EQUAL_EQUAL:
		return "=="
	case BANG_EQUAL:
		return "!="
	case LESS:
		return "<"
	case LESS_EQ:
		return "<="
	case GREATER:
		return ">"
	case GREATER_EQ:
		return ">="
	case AMPERSAND:
		return "&"
	case AMPERSAND_AMPERSAND:
		return "&&"
	case PIPE:
		return "|"
	case PIPE_PIPE:
		return "||"
	default:
		return ""
	}
}

func (kind Kind) String() string {
	switch kind {
	case EOF:
		return "end of file"
	case INVALID:
		return "invalid"
	case WHITESPACE:
		return "whitespace"
	case NUMBER:
		return "number"
	case STRING:
		return "string"
	case ID:
		return "identifier"
	}
	if text := Text(kind); text != "" {
		return text
	}
	return fmt.Sprintf("Kind(%d)", int(kind))
}
