package token

import (
	"fmt"

	"github.com/HicaroD/mangle/internal/text"
)

type Token struct {
	Kind   Kind
	Pos    int
	Lexeme string
	// Value holds the int64, bool or string denoted by a literal token.
	Value any
	// Missing is set on tokens the parser synthesized to recover from an
	// unexpected token.
	Missing bool
}

func New(kind Kind, pos int, lexeme string, value any) *Token {
	return &Token{Kind: kind, Pos: pos, Lexeme: lexeme, Value: value}
}

func (token *Token) Span() text.Span {
	return text.NewSpan(token.Pos, len(token.Lexeme))
}

func (token *Token) Name() string {
	if token.Kind == ID || token.Kind == STRING || token.Kind == NUMBER {
		return token.Lexeme
	}
	return token.Kind.String()
}

func (token *Token) String() string {
	return fmt.Sprintf("%s | %s | %d", token.Lexeme, token.Kind, token.Pos)
}
