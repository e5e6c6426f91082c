package ast

import (
	"github.com/HicaroD/mangle/internal/lexer/token"
	"github.com/HicaroD/mangle/internal/text"
)

type LiteralExpr struct {
	Literal *token.Token
	// Value is an int64, a bool or a string.
	Value any
}

func (literal *LiteralExpr) Span() text.Span { return literal.Literal.Span() }
func (literal *LiteralExpr) exprNode()       {}

type NameExpr struct {
	Name *token.Token
}

func (name *NameExpr) Span() text.Span { return name.Name.Span() }
func (name *NameExpr) exprNode()       {}

type AssignExpr struct {
	Name  *token.Token
	Equal *token.Token
	Value Expr
}

func (assign *AssignExpr) Span() text.Span { return spanOf(assign) }
func (assign *AssignExpr) exprNode()       {}

type UnaryExpr struct {
	Op      *token.Token
	Operand Expr
}

func (unary *UnaryExpr) Span() text.Span { return spanOf(unary) }
func (unary *UnaryExpr) exprNode()       {}

type BinaryExpr struct {
	Left  Expr
	Op    *token.Token
	Right Expr
}

func (binary *BinaryExpr) Span() text.Span { return spanOf(binary) }
func (binary *BinaryExpr) exprNode()       {}

type ParenExpr struct {
	Open  *token.Token
	Expr  Expr
	Close *token.Token
}

func (paren *ParenExpr) Span() text.Span { return spanOf(paren) }
func (paren *ParenExpr) exprNode()       {}
