package lexer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/HicaroD/mangle/internal/diagnostics"
	"github.com/HicaroD/mangle/internal/lexer/token"
	"github.com/HicaroD/mangle/internal/symbols"
	"github.com/HicaroD/mangle/internal/text"
)

const eof = '\000'

type Lexer struct {
	Source    *text.Source
	Collector *diagnostics.Collector

	src    string
	offset int
}

func New(source *text.Source, collector *diagnostics.Collector) *Lexer {
	lexer := new(Lexer)

	lexer.Source = source
	lexer.Collector = collector
	lexer.src = source.String()
	lexer.offset = 0

	return lexer
}

// Next returns the next token. Once the input is exhausted every call returns
// an EOF token positioned at the end of the source.
func (lex *Lexer) Next() *token.Token {
	start := lex.offset
	character := lex.peekChar()

	if start >= len(lex.src) {
		return token.New(token.EOF, len(lex.src), "", nil)
	}

	switch character {
	case '(':
		return lex.single(token.OPEN_PAREN)
	case ')':
		return lex.single(token.CLOSE_PAREN)
	case '{':
		return lex.single(token.OPEN_CURLY)
	case '}':
		return lex.single(token.CLOSE_CURLY)
	case ';':
		return lex.single(token.SEMICOLON)
	case '+':
		return lex.single(token.PLUS)
	case '-':
		return lex.single(token.MINUS)
	case '*':
		return lex.single(token.STAR)
	case '/':
		return lex.single(token.SLASH)
	case '%':
		return lex.single(token.PERCENT)
	case '^':
		return lex.single(token.HAT)
	case '~':
		return lex.single(token.TILDE)
	case '!':
		return lex.oneOrTwo('=', token.BANG, token.BANG_EQUAL)
	case '=':
		return lex.oneOrTwo('=', token.EQUAL, token.EQUAL_EQUAL)
	case '<':
		return lex.oneOrTwo('=', token.LESS, token.LESS_EQ)
	case '>':
		return lex.oneOrTwo('=', token.GREATER, token.GREATER_EQ)
	case '&':
		return lex.oneOrTwo('&', token.AMPERSAND, token.AMPERSAND_AMPERSAND)
	case '|':
		return lex.oneOrTwo('|', token.PIPE, token.PIPE_PIPE)
	case '"':
		return lex.getStringLit()
	}

	if character >= '0' && character <= '9' {
		return lex.getNumberLit()
	}

	r, width := utf8.DecodeRuneInString(lex.src[start:])
	switch {
	case unicode.IsSpace(r):
		lexeme := lex.readWhile(unicode.IsSpace)
		return token.New(token.WHITESPACE, start, lexeme, nil)
	case unicode.IsLetter(r):
		return lex.getIdOrKeyword()
	default:
		lex.offset += width
		lex.Collector.ReportBadCharacter(text.NewSpan(start, width), r)
		return token.New(token.INVALID, start, lex.src[start:lex.offset], nil)
	}
}

// Tokenize lexes the whole source, EOF included.
func (lex *Lexer) Tokenize() []*token.Token {
	var tokens []*token.Token
	for {
		tok := lex.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

func (lex *Lexer) single(kind token.Kind) *token.Token {
	start := lex.offset
	lex.nextChar()
	return token.New(kind, start, lex.src[start:lex.offset], nil)
}

func (lex *Lexer) oneOrTwo(second byte, one, two token.Kind) *token.Token {
	start := lex.offset
	lex.nextChar()

	if lex.peekChar() != second {
		return token.New(one, start, lex.src[start:lex.offset], nil)
	}
	lex.nextChar()
	return token.New(two, start, lex.src[start:lex.offset], nil)
}

func (lex *Lexer) getStringLit() *token.Token {
	start := lex.offset
	lex.nextChar() // "

	var str strings.Builder
	for {
		ch := lex.peekChar()
		if lex.offset >= len(lex.src) || ch == '\n' || ch == '\r' {
			lex.Collector.ReportUnterminatedString(text.NewSpan(start, 1))
			break
		}
		if ch == '"' {
			lex.nextChar()
			break
		}

		if ch == '\\' {
			escapeStart := lex.offset
			lex.nextChar()

			escapeSym := lex.peekChar()
			switch escapeSym {
			case '"':
				str.WriteByte('"')
			case '\\':
				str.WriteByte('\\')
			case 'n':
				str.WriteByte('\n')
			case 't':
				str.WriteByte('\t')
			default:
				if lex.offset >= len(lex.src) || escapeSym == '\n' || escapeSym == '\r' {
					continue
				}
				lex.Collector.ReportInvalidEscape(text.NewSpan(escapeStart, 2), escapeSym)
				str.WriteByte(escapeSym)
			}
			lex.nextChar()
			continue
		}

		str.WriteByte(ch)
		lex.nextChar()
	}

	return token.New(token.STRING, start, lex.src[start:lex.offset], str.String())
}

func (lex *Lexer) getNumberLit() *token.Token {
	start := lex.offset
	number := lex.readWhile(func(r rune) bool { return r >= '0' && r <= '9' })

	value, err := strconv.ParseInt(number, 10, 64)
	if err != nil {
		lex.Collector.ReportInvalidNumber(text.NewSpan(start, len(number)), number, symbols.Int)
		value = 0
	}
	return token.New(token.NUMBER, start, number, value)
}

func (lex *Lexer) getIdOrKeyword() *token.Token {
	start := lex.offset
	identifier := lex.readWhile(unicode.IsLetter)

	kind := token.KeywordKind(identifier)
	switch kind {
	case token.TRUE:
		return token.New(kind, start, identifier, true)
	case token.FALSE:
		return token.New(kind, start, identifier, false)
	default:
		return token.New(kind, start, identifier, nil)
	}
}

func (lex *Lexer) readWhile(isValid func(rune) bool) string {
	start := lex.offset

	for lex.offset < len(lex.src) {
		r, width := utf8.DecodeRuneInString(lex.src[lex.offset:])
		if !isValid(r) {
			break
		}
		lex.offset += width
	}

	return lex.src[start:lex.offset]
}

func (lex *Lexer) nextChar() byte {
	if lex.offset >= len(lex.src) {
		return eof
	}
	character := lex.src[lex.offset]
	lex.offset++
	return character
}

func (lex *Lexer) peekChar() byte {
	if lex.offset >= len(lex.src) {
		return eof
	}
	return lex.src[lex.offset]
}
