package sema

import (
	"errors"
	"fmt"

	"github.com/HicaroD/mangle/internal/ast"
	"github.com/HicaroD/mangle/internal/bound"
	"github.com/HicaroD/mangle/internal/diagnostics"
	"github.com/HicaroD/mangle/internal/lexer/token"
	"github.com/HicaroD/mangle/internal/scope"
	"github.com/HicaroD/mangle/internal/symbols"
)

type VariableScope = scope.Scope[*symbols.VariableSymbol]

// GlobalScope is what one submission leaves behind for the next one.
// Diagnostics accumulates the binder diagnostics of every submission in the
// chain, oldest first.
type GlobalScope struct {
	Previous    *GlobalScope
	Diagnostics []diagnostics.Diag
	Variables   []*symbols.VariableSymbol
	Statement   bound.Stmt

	own []diagnostics.Diag
}

// SubmissionDiagnostics returns the diagnostics reported while binding this
// submission only.
func (global *GlobalScope) SubmissionDiagnostics() []diagnostics.Diag { return global.own }

type binder struct {
	collector *diagnostics.Collector
	scope     *VariableScope
}

func New(parent *VariableScope, collector *diagnostics.Collector) *binder {
	return &binder{collector: collector, scope: scope.New(parent)}
}

// BindGlobalScope binds unit on top of the variables declared by previous
// and its ancestors. Symbols of earlier submissions are reused, never
// redeclared.
func BindGlobalScope(previous *GlobalScope, unit *ast.CompilationUnit) *GlobalScope {
	collector := diagnostics.New()
	b := New(parentScopes(previous), collector)

	stmt := b.bindStmt(unit.Stmt)

	var diags []diagnostics.Diag
	if previous != nil {
		diags = append(diags, previous.Diagnostics...)
	}
	diags = append(diags, collector.Diags...)

	return &GlobalScope{
		Previous:    previous,
		Diagnostics: diags,
		Variables:   b.scope.Declared(),
		Statement:   stmt,
		own:         collector.Diags,
	}
}

// parentScopes rebuilds one scope level per previous submission, the oldest
// one outermost.
func parentScopes(previous *GlobalScope) *VariableScope {
	var stack []*GlobalScope
	for ; previous != nil; previous = previous.Previous {
		stack = append(stack, previous)
	}

	var parent *VariableScope
	for i := len(stack) - 1; i >= 0; i-- {
		current := scope.New(parent)
		for _, variable := range stack[i].Variables {
			// Names are unique per level already.
			_ = current.Insert(variable.Name, variable)
		}
		parent = current
	}

	return parent
}

func (b *binder) pushScope() { b.scope = scope.New(b.scope) }
func (b *binder) popScope()  { b.scope = b.scope.Parent }

func (b *binder) bindStmt(stmt ast.Stmt) bound.Stmt {
	switch node := stmt.(type) {
	case *ast.BlockStmt:
		return b.bindBlock(node)
	case *ast.VarStmt:
		return b.bindVar(node)
	case *ast.IfStmt:
		return b.bindIf(node)
	case *ast.WhileStmt:
		return b.bindWhileLoop(node)
	case *ast.ForStmt:
		return b.bindForLoop(node)
	case *ast.ExprStmt:
		return &bound.ExprStmt{Expr: b.bindExpr(node.Expr)}
	default:
		panic(fmt.Sprintf("sema: unexpected statement %T", stmt))
	}
}

func (b *binder) bindBlock(block *ast.BlockStmt) *bound.BlockStmt {
	b.pushScope()
	defer b.popScope()

	statements := make([]bound.Stmt, 0, len(block.Statements))
	for _, stmt := range block.Statements {
		statements = append(statements, b.bindStmt(stmt))
	}
	return &bound.BlockStmt{Statements: statements}
}

func (b *binder) bindVar(variable *ast.VarStmt) *bound.VarDecl {
	init := b.bindExpr(variable.Value)
	symbol := symbols.NewVariable(variable.Name.Lexeme, variable.ReadOnly(), init.Type())

	// The parser has already reported a missing name.
	if !variable.Name.Missing {
		err := b.scope.Insert(symbol.Name, symbol)
		if errors.Is(err, scope.SYMBOL_ALREADY_DEFINED_ON_SCOPE) {
			b.collector.ReportVariableAlreadyDeclared(variable.Name.Span(), symbol.Name)
		}
	}

	return &bound.VarDecl{Variable: symbol, Init: init}
}

func (b *binder) bindIf(cond *ast.IfStmt) *bound.IfStmt {
	condition := b.bindExprOfType(cond.Cond, symbols.Bool)
	then := b.bindStmt(cond.Then)

	var elseStmt bound.Stmt
	if cond.Else != nil {
		elseStmt = b.bindStmt(cond.Else.Body)
	}

	return &bound.IfStmt{Cond: condition, Then: then, Else: elseStmt}
}

func (b *binder) bindWhileLoop(loop *ast.WhileStmt) *bound.WhileStmt {
	cond := b.bindExprOfType(loop.Cond, symbols.Bool)
	body := b.bindStmt(loop.Body)
	return &bound.WhileStmt{Cond: cond, Body: body}
}

// bindForLoop scopes the loop variable to the loop.
func (b *binder) bindForLoop(loop *ast.ForStmt) *bound.ForStmt {
	b.pushScope()
	defer b.popScope()

	decl := b.bindStmt(loop.Decl)
	cond := b.bindExprOfType(loop.Cond, symbols.Bool)
	incr := b.bindExpr(loop.Incr)
	body := b.bindStmt(loop.Body)

	return &bound.ForStmt{Decl: decl, Cond: cond, Incr: incr, Body: body}
}

func (b *binder) bindExprOfType(expr ast.Expr, expected *symbols.TypeSymbol) bound.Expr {
	result := b.bindExpr(expr)
	if result.Type() != symbols.Error && result.Type() != expected {
		b.collector.ReportCannotConvert(expr.Span(), result.Type(), expected)
	}
	return result
}

func (b *binder) bindExpr(expr ast.Expr) bound.Expr {
	switch node := expr.(type) {
	case *ast.ParenExpr:
		return b.bindExpr(node.Expr)
	case *ast.LiteralExpr:
		value := node.Value
		if value == nil {
			value = int64(0)
		}
		return &bound.LiteralExpr{Value: value}
	case *ast.NameExpr:
		return b.bindName(node)
	case *ast.AssignExpr:
		return b.bindAssign(node)
	case *ast.UnaryExpr:
		return b.bindUnary(node)
	case *ast.BinaryExpr:
		return b.bindBinary(node)
	default:
		panic(fmt.Sprintf("sema: unexpected expression %T", expr))
	}
}

func (b *binder) lookup(name *token.Token) (*symbols.VariableSymbol, bool) {
	variable, err := b.scope.Lookup(name.Lexeme)
	if errors.Is(err, scope.SYMBOL_NOT_FOUND_ON_SCOPE) {
		b.collector.ReportUndefinedName(name.Span(), name.Lexeme)
		return nil, false
	}
	return variable, true
}

func (b *binder) bindName(name *ast.NameExpr) bound.Expr {
	// The parser has already reported a missing name.
	if name.Name.Missing {
		return &bound.ErrorExpr{}
	}

	variable, ok := b.lookup(name.Name)
	if !ok {
		return &bound.ErrorExpr{}
	}
	return &bound.VariableExpr{Variable: variable}
}

func (b *binder) bindAssign(assign *ast.AssignExpr) bound.Expr {
	value := b.bindExpr(assign.Value)

	variable, ok := b.lookup(assign.Name)
	if !ok {
		return value
	}

	if variable.ReadOnly {
		b.collector.ReportCannotAssign(assign.Equal.Span(), variable.Name)
	}

	if value.Type() != symbols.Error && variable.Type != symbols.Error && value.Type() != variable.Type {
		b.collector.ReportCannotConvert(assign.Value.Span(), value.Type(), variable.Type)
		return value
	}

	return &bound.AssignExpr{Variable: variable, Expr: value}
}

func (b *binder) bindUnary(unary *ast.UnaryExpr) bound.Expr {
	operand := b.bindExpr(unary.Operand)
	if operand.Type() == symbols.Error {
		return &bound.ErrorExpr{}
	}

	op := bound.BindUnaryOperator(unary.Op.Kind, operand.Type())
	if op == nil {
		b.collector.ReportUndefinedUnaryOperator(unary.Op.Span(), unary.Op.Lexeme, operand.Type())
		return &bound.ErrorExpr{}
	}

	return &bound.UnaryExpr{Op: op, Operand: operand}
}

func (b *binder) bindBinary(binary *ast.BinaryExpr) bound.Expr {
	left := b.bindExpr(binary.Left)
	right := b.bindExpr(binary.Right)
	if left.Type() == symbols.Error || right.Type() == symbols.Error {
		return &bound.ErrorExpr{}
	}

	op := bound.BindBinaryOperator(binary.Op.Kind, left.Type(), right.Type())
	if op == nil {
		b.collector.ReportUndefinedBinaryOperator(binary.Op.Span(), binary.Op.Lexeme, left.Type(), right.Type())
		return &bound.ErrorExpr{}
	}

	return &bound.BinaryExpr{Left: left, Op: op, Right: right, OpSpan: binary.Op.Span()}
}
