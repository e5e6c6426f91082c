package parser

import (
	"github.com/HicaroD/mangle/internal/ast"
	"github.com/HicaroD/mangle/internal/diagnostics"
	"github.com/HicaroD/mangle/internal/lexer"
	"github.com/HicaroD/mangle/internal/lexer/token"
	"github.com/HicaroD/mangle/internal/text"
)

// SyntaxTree is the result of parsing one source. Diagnostics holds the
// lexer's diagnostics followed by the parser's.
type SyntaxTree struct {
	Source      *text.Source
	Root        *ast.CompilationUnit
	Diagnostics []diagnostics.Diag
}

type Parser struct {
	collector *diagnostics.Collector

	tokens   []*token.Token
	position int
}

func New(tokens []*token.Token, collector *diagnostics.Collector) *Parser {
	parser := new(Parser)
	parser.collector = collector
	parser.position = 0

	// The grammar never sees whitespace or invalid tokens, the lexer has
	// already reported the latter.
	for _, tok := range tokens {
		if tok.Kind == token.WHITESPACE || tok.Kind == token.INVALID {
			continue
		}
		parser.tokens = append(parser.tokens, tok)
	}
	if len(parser.tokens) == 0 || parser.tokens[len(parser.tokens)-1].Kind != token.EOF {
		end := 0
		if len(tokens) > 0 {
			last := tokens[len(tokens)-1]
			end = last.Span().End()
		}
		parser.tokens = append(parser.tokens, token.New(token.EOF, end, "", nil))
	}

	return parser
}

func Parse(src string) *SyntaxTree {
	return ParseText(text.From(src))
}

func ParseText(source *text.Source) *SyntaxTree {
	collector := diagnostics.New()
	tokens := lexer.New(source, collector).Tokenize()

	parser := New(tokens, collector)
	root := parser.ParseCompilationUnit()

	return &SyntaxTree{
		Source:      source,
		Root:        root,
		Diagnostics: collector.Diags,
	}
}

// ParseTokens lexes src and returns every token before EOF, whitespace and
// invalid tokens included.
func ParseTokens(src string) []*token.Token {
	tokens := lexer.New(text.From(src), diagnostics.New()).Tokenize()
	return tokens[:len(tokens)-1]
}

func (p *Parser) ParseCompilationUnit() *ast.CompilationUnit {
	stmt := p.parseStmt()
	eof := p.match(token.EOF)
	return &ast.CompilationUnit{Stmt: stmt, EOF: eof}
}

func (p *Parser) peek(offset int) *token.Token {
	index := p.position + offset
	if index >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[index]
}

func (p *Parser) current() *token.Token { return p.peek(0) }

func (p *Parser) nextToken() *token.Token {
	current := p.current()
	if p.position < len(p.tokens)-1 {
		p.position++
	}
	return current
}

func (p *Parser) expect(expectedKind token.Kind) (*token.Token, bool) {
	tok := p.current()
	if tok.Kind != expectedKind {
		return tok, false
	}
	p.nextToken()
	return tok, true
}

// match consumes a token of the expected kind. On mismatch it reports the
// unexpected token and returns a synthesized missing token instead, without
// consuming anything.
func (p *Parser) match(expectedKind token.Kind) *token.Token {
	tok, ok := p.expect(expectedKind)
	if ok {
		return tok
	}

	p.collector.ReportUnexpectedToken(tok.Span(), tok.Kind, expectedKind)

	missing := token.New(expectedKind, tok.Pos, "", nil)
	missing.Missing = true
	return missing
}

func (p *Parser) parseStmt() ast.Stmt {
	switch p.current().Kind {
	case token.OPEN_CURLY:
		return p.parseBlock()
	case token.VAR, token.DEF:
		return p.parseVar()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhileLoop()
	case token.FOR:
		return p.parseForLoop()
	default:
		return &ast.ExprStmt{Expr: p.parseExpr()}
	}
}

func (p *Parser) parseBlock() *ast.BlockStmt {
	openCurly := p.match(token.OPEN_CURLY)

	var statements []ast.Stmt
	for {
		tok := p.current()
		if tok.Kind == token.EOF || tok.Kind == token.CLOSE_CURLY {
			break
		}

		stmt := p.parseStmt()
		statements = append(statements, stmt)

		// A statement that consumed nothing would otherwise be parsed
		// again forever.
		if p.current() == tok {
			p.nextToken()
		}
	}

	closeCurly := p.match(token.CLOSE_CURLY)

	return &ast.BlockStmt{
		OpenCurly:  openCurly,
		Statements: statements,
		CloseCurly: closeCurly,
	}
}

func (p *Parser) parseVar() *ast.VarStmt {
	expected := token.VAR
	if p.current().Kind == token.DEF {
		expected = token.DEF
	}

	keyword := p.match(expected)
	name := p.match(token.ID)
	equal := p.match(token.EQUAL)
	value := p.parseExpr()

	return &ast.VarStmt{
		Keyword: keyword,
		Name:    name,
		Equal:   equal,
		Value:   value,
	}
}

func (p *Parser) parseIf() *ast.IfStmt {
	ifKeyword := p.match(token.IF)
	cond := p.parseExpr()
	then := p.parseStmt()

	var elseClause *ast.ElseClause
	if p.current().Kind == token.ELSE {
		elseKeyword := p.nextToken()
		body := p.parseStmt()
		elseClause = &ast.ElseClause{Else: elseKeyword, Body: body}
	}

	return &ast.IfStmt{
		If:   ifKeyword,
		Cond: cond,
		Then: then,
		Else: elseClause,
	}
}

func (p *Parser) parseWhileLoop() *ast.WhileStmt {
	whileKeyword := p.match(token.WHILE)
	cond := p.parseExpr()
	body := p.parseStmt()

	return &ast.WhileStmt{While: whileKeyword, Cond: cond, Body: body}
}

func (p *Parser) parseForLoop() *ast.ForStmt {
	forKeyword := p.match(token.FOR)
	decl := p.parseStmt()
	cond := p.parseExpr()
	incr := p.parseExpr()
	body := p.parseStmt()

	return &ast.ForStmt{
		For:  forKeyword,
		Decl: decl,
		Cond: cond,
		Incr: incr,
		Body: body,
	}
}

func (p *Parser) parseExpr() ast.Expr {
	return p.parseAssignment()
}

func (p *Parser) parseAssignment() ast.Expr {
	if p.peek(0).Kind == token.ID && p.peek(1).Kind == token.EQUAL {
		name := p.nextToken()
		equal := p.nextToken()
		value := p.parseAssignment()
		return &ast.AssignExpr{Name: name, Equal: equal, Value: value}
	}
	return p.parseBinary(0)
}

// parseBinary climbs operator precedence. Operators binding no tighter than
// parentPrecedence are left for the caller, which makes equal precedences
// associate to the left.
func (p *Parser) parseBinary(parentPrecedence int) ast.Expr {
	var left ast.Expr

	unaryPrecedence := p.current().Kind.UnaryPrecedence()
	if unaryPrecedence != 0 && unaryPrecedence >= parentPrecedence {
		op := p.nextToken()
		operand := p.parseBinary(unaryPrecedence)
		left = &ast.UnaryExpr{Op: op, Operand: operand}
	} else {
		left = p.parsePrimary()
	}

	for {
		precedence := p.current().Kind.BinaryPrecedence()
		if precedence == 0 || precedence <= parentPrecedence {
			break
		}

		op := p.nextToken()
		right := p.parseBinary(precedence)
		left = &ast.BinaryExpr{Left: left, Op: op, Right: right}
	}

	return left
}

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.current()
	switch tok.Kind {
	case token.OPEN_PAREN:
		open := p.nextToken()
		expr := p.parseExpr()
		closeParen := p.match(token.CLOSE_PAREN)
		return &ast.ParenExpr{Open: open, Expr: expr, Close: closeParen}
	case token.TRUE, token.FALSE:
		literal := p.nextToken()
		return &ast.LiteralExpr{Literal: literal, Value: literal.Kind == token.TRUE}
	case token.NUMBER:
		literal := p.nextToken()
		return &ast.LiteralExpr{Literal: literal, Value: literal.Value}
	case token.STRING:
		literal := p.nextToken()
		return &ast.LiteralExpr{Literal: literal, Value: literal.Value}
	default:
		return &ast.NameExpr{Name: p.match(token.ID)}
	}
}
