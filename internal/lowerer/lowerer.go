// Package lowerer rewrites structured control flow into labels and jumps.
package lowerer

import (
	"fmt"

	"github.com/HicaroD/mangle/internal/bound"
)

type lowerer struct {
	labelCount int
}

// Lower returns stmt as one flat block made only of declarations,
// expression statements, labels, gotos and conditional gotos. Labels are
// unique within the returned block.
func Lower(stmt bound.Stmt) *bound.BlockStmt {
	l := new(lowerer)
	rewriter := &bound.Rewriter{Stmt: l.rewriteStmt}
	return flatten(rewriter.RewriteStmt(stmt))
}

func (l *lowerer) generateLabel() *bound.Label {
	l.labelCount++
	return bound.NewLabel(fmt.Sprintf("Label%d", l.labelCount))
}

// rewriteStmt turns each loop or conditional into an equivalent block and
// lowers that block again, so nested control flow is handled too.
func (l *lowerer) rewriteStmt(r *bound.Rewriter, stmt bound.Stmt) (bound.Stmt, bool) {
	switch node := stmt.(type) {
	case *bound.IfStmt:
		return r.RewriteStmt(l.lowerIf(node)), true
	case *bound.WhileStmt:
		return r.RewriteStmt(l.lowerWhileLoop(node)), true
	case *bound.ForStmt:
		return r.RewriteStmt(l.lowerForLoop(node)), true
	default:
		return nil, false
	}
}

// if <cond>
//
//	<then>
//
// ---->
//
//	gotoFalse <cond> end
//	<then>
//	end:
//
// and with an else branch:
//
//	gotoFalse <cond> else
//	<then>
//	goto end
//	else:
//	<else>
//	end:
func (l *lowerer) lowerIf(node *bound.IfStmt) *bound.BlockStmt {
	if node.Else == nil {
		end := l.generateLabel()
		return &bound.BlockStmt{Statements: []bound.Stmt{
			&bound.CondGotoStmt{Label: end, Cond: node.Cond, JumpIfTrue: false},
			node.Then,
			&bound.LabelStmt{Label: end},
		}}
	}

	elseLabel := l.generateLabel()
	end := l.generateLabel()
	return &bound.BlockStmt{Statements: []bound.Stmt{
		&bound.CondGotoStmt{Label: elseLabel, Cond: node.Cond, JumpIfTrue: false},
		node.Then,
		&bound.GotoStmt{Label: end},
		&bound.LabelStmt{Label: elseLabel},
		node.Else,
		&bound.LabelStmt{Label: end},
	}}
}

// while <cond>
//
//	<body>
//
// ---->
//
//	goto check
//	continue:
//	<body>
//	check:
//	gotoTrue <cond> continue
//	end:
func (l *lowerer) lowerWhileLoop(node *bound.WhileStmt) *bound.BlockStmt {
	continueLabel := l.generateLabel()
	check := l.generateLabel()
	end := l.generateLabel()

	return &bound.BlockStmt{Statements: []bound.Stmt{
		&bound.GotoStmt{Label: check},
		&bound.LabelStmt{Label: continueLabel},
		node.Body,
		&bound.LabelStmt{Label: check},
		&bound.CondGotoStmt{Label: continueLabel, Cond: node.Cond, JumpIfTrue: true},
		&bound.LabelStmt{Label: end},
	}}
}

// for <decl> <cond> <incr>
//
//	<body>
//
// ---->
//
//	{
//		<decl>
//		while <cond>
//		{
//			<body>
//			<incr>
//		}
//	}
//
// The increment does not count as the value of the program.
func (l *lowerer) lowerForLoop(node *bound.ForStmt) *bound.BlockStmt {
	increment := &bound.ExprStmt{Expr: node.Incr, Discard: true}
	body := &bound.BlockStmt{Statements: []bound.Stmt{node.Body, increment}}

	return &bound.BlockStmt{Statements: []bound.Stmt{
		node.Decl,
		&bound.WhileStmt{Cond: node.Cond, Body: body},
	}}
}

// flatten splices nested blocks into one statement list, depth first.
func flatten(stmt bound.Stmt) *bound.BlockStmt {
	var statements []bound.Stmt
	stack := []bound.Stmt{stmt}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		block, ok := current.(*bound.BlockStmt)
		if !ok {
			statements = append(statements, current)
			continue
		}
		for i := len(block.Statements) - 1; i >= 0; i-- {
			stack = append(stack, block.Statements[i])
		}
	}

	return &bound.BlockStmt{Statements: statements}
}
