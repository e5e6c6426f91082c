package ast

import (
	"github.com/HicaroD/mangle/internal/lexer/token"
	"github.com/HicaroD/mangle/internal/text"
)

type BlockStmt struct {
	OpenCurly  *token.Token
	Statements []Stmt
	CloseCurly *token.Token
}

func (block *BlockStmt) Span() text.Span { return spanOf(block) }
func (block *BlockStmt) stmtNode()       {}

// VarStmt declares a variable. Keyword is either `var` or `def`, the latter
// making the variable read-only.
type VarStmt struct {
	Keyword *token.Token
	Name    *token.Token
	Equal   *token.Token
	Value   Expr
}

func (variable *VarStmt) ReadOnly() bool  { return variable.Keyword.Kind == token.DEF }
func (variable *VarStmt) Span() text.Span { return spanOf(variable) }
func (variable *VarStmt) stmtNode()       {}

type IfStmt struct {
	If   *token.Token
	Cond Expr
	Then Stmt
	Else *ElseClause // nil when there is no else branch
}

func (cond *IfStmt) Span() text.Span { return spanOf(cond) }
func (cond *IfStmt) stmtNode()       {}

type ElseClause struct {
	Else *token.Token
	Body Stmt
}

func (clause *ElseClause) Span() text.Span { return spanOf(clause) }

type WhileStmt struct {
	While *token.Token
	Cond  Expr
	Body  Stmt
}

func (loop *WhileStmt) Span() text.Span { return spanOf(loop) }
func (loop *WhileStmt) stmtNode()       {}

type ForStmt struct {
	For  *token.Token
	Decl Stmt
	Cond Expr
	Incr Expr
	Body Stmt
}

func (loop *ForStmt) Span() text.Span { return spanOf(loop) }
func (loop *ForStmt) stmtNode()       {}

type ExprStmt struct {
	Expr Expr
}

func (stmt *ExprStmt) Span() text.Span { return stmt.Expr.Span() }
func (stmt *ExprStmt) stmtNode()       {}
