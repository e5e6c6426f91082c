package bound

import "fmt"

// Rewriter rebuilds a bound tree bottom-up. A node whose children are all
// returned unchanged is itself returned unchanged, so untouched subtrees are
// shared between the input and the output.
//
// Stmt and Expr run before the default rewrite of every node. When they
// report the node as handled their result is used as is; they may call back
// into the Rewriter to continue with the default behaviour.
type Rewriter struct {
	Stmt func(r *Rewriter, stmt Stmt) (Stmt, bool)
	Expr func(r *Rewriter, expr Expr) (Expr, bool)
}

func (r *Rewriter) RewriteStmt(stmt Stmt) Stmt {
	if r.Stmt != nil {
		if rewritten, handled := r.Stmt(r, stmt); handled {
			return rewritten
		}
	}
	return r.RewriteStmtChildren(stmt)
}

// RewriteStmtChildren rewrites the children of stmt without running the Stmt
// hook on stmt itself.
func (r *Rewriter) RewriteStmtChildren(stmt Stmt) Stmt {
	switch node := stmt.(type) {
	case *BlockStmt:
		return r.rewriteBlock(node)
	case *VarDecl:
		init := r.RewriteExpr(node.Init)
		if init == node.Init {
			return node
		}
		return &VarDecl{Variable: node.Variable, Init: init}
	case *IfStmt:
		cond := r.RewriteExpr(node.Cond)
		then := r.RewriteStmt(node.Then)
		var elseStmt Stmt
		if node.Else != nil {
			elseStmt = r.RewriteStmt(node.Else)
		}
		if cond == node.Cond && then == node.Then && elseStmt == node.Else {
			return node
		}
		return &IfStmt{Cond: cond, Then: then, Else: elseStmt}
	case *WhileStmt:
		cond := r.RewriteExpr(node.Cond)
		body := r.RewriteStmt(node.Body)
		if cond == node.Cond && body == node.Body {
			return node
		}
		return &WhileStmt{Cond: cond, Body: body}
	case *ForStmt:
		decl := r.RewriteStmt(node.Decl)
		cond := r.RewriteExpr(node.Cond)
		incr := r.RewriteExpr(node.Incr)
		body := r.RewriteStmt(node.Body)
		if decl == node.Decl && cond == node.Cond && incr == node.Incr && body == node.Body {
			return node
		}
		return &ForStmt{Decl: decl, Cond: cond, Incr: incr, Body: body}
	case *LabelStmt, *GotoStmt:
		return node
	case *CondGotoStmt:
		cond := r.RewriteExpr(node.Cond)
		if cond == node.Cond {
			return node
		}
		return &CondGotoStmt{Label: node.Label, Cond: cond, JumpIfTrue: node.JumpIfTrue}
	case *ExprStmt:
		expr := r.RewriteExpr(node.Expr)
		if expr == node.Expr {
			return node
		}
		return &ExprStmt{Expr: expr, Discard: node.Discard}
	default:
		panic(fmt.Sprintf("bound: unexpected statement %T", stmt))
	}
}

func (r *Rewriter) rewriteBlock(block *BlockStmt) Stmt {
	var statements []Stmt

	for i, stmt := range block.Statements {
		rewritten := r.RewriteStmt(stmt)
		if statements == nil && rewritten != stmt {
			statements = make([]Stmt, i, len(block.Statements))
			copy(statements, block.Statements[:i])
		}
		if statements != nil {
			statements = append(statements, rewritten)
		}
	}

	if statements == nil {
		return block
	}
	return &BlockStmt{Statements: statements}
}

func (r *Rewriter) RewriteExpr(expr Expr) Expr {
	if r.Expr != nil {
		if rewritten, handled := r.Expr(r, expr); handled {
			return rewritten
		}
	}

	switch node := expr.(type) {
	case *ErrorExpr, *LiteralExpr, *VariableExpr:
		return node
	case *AssignExpr:
		value := r.RewriteExpr(node.Expr)
		if value == node.Expr {
			return node
		}
		return &AssignExpr{Variable: node.Variable, Expr: value}
	case *UnaryExpr:
		operand := r.RewriteExpr(node.Operand)
		if operand == node.Operand {
			return node
		}
		return &UnaryExpr{Op: node.Op, Operand: operand}
	case *BinaryExpr:
		left := r.RewriteExpr(node.Left)
		right := r.RewriteExpr(node.Right)
		if left == node.Left && right == node.Right {
			return node
		}
		return &BinaryExpr{Left: left, Op: node.Op, Right: right, OpSpan: node.OpSpan}
	default:
		panic(fmt.Sprintf("bound: unexpected expression %T", expr))
	}
}
