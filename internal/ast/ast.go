// Package ast defines the syntax tree produced by the parser.
package ast

import (
	"fmt"

	"github.com/HicaroD/mangle/internal/lexer/token"
	"github.com/HicaroD/mangle/internal/text"
)

// Node is anything that occupies a span of the source: tree nodes and the
// tokens they own.
type Node interface {
	Span() text.Span
}

type Expr interface {
	Node
	exprNode()
}

type Stmt interface {
	Node
	stmtNode()
}

type CompilationUnit struct {
	Stmt Stmt
	EOF  *token.Token
}

func (unit *CompilationUnit) Span() text.Span { return spanOf(unit) }

// Children lists the direct children of n in source order. Tokens have no
// children. Optional children that are absent are skipped.
func Children(n Node) []Node {
	switch node := n.(type) {
	case *token.Token:
		return nil
	case *CompilationUnit:
		return []Node{node.Stmt, node.EOF}

	case *LiteralExpr:
		return []Node{node.Literal}
	case *NameExpr:
		return []Node{node.Name}
	case *AssignExpr:
		return []Node{node.Name, node.Equal, node.Value}
	case *UnaryExpr:
		return []Node{node.Op, node.Operand}
	case *BinaryExpr:
		return []Node{node.Left, node.Op, node.Right}
	case *ParenExpr:
		return []Node{node.Open, node.Expr, node.Close}

	case *BlockStmt:
		children := make([]Node, 0, len(node.Statements)+2)
		children = append(children, node.OpenCurly)
		for _, stmt := range node.Statements {
			children = append(children, stmt)
		}
		return append(children, node.CloseCurly)
	case *VarStmt:
		return []Node{node.Keyword, node.Name, node.Equal, node.Value}
	case *IfStmt:
		children := []Node{node.If, node.Cond, node.Then}
		if node.Else != nil {
			children = append(children, node.Else)
		}
		return children
	case *ElseClause:
		return []Node{node.Else, node.Body}
	case *WhileStmt:
		return []Node{node.While, node.Cond, node.Body}
	case *ForStmt:
		return []Node{node.For, node.Decl, node.Cond, node.Incr, node.Body}
	case *ExprStmt:
		return []Node{node.Expr}
	default:
		panic(fmt.Sprintf("ast: unexpected node %T", n))
	}
}

// spanOf is the bounding span of the first and last child of n.
func spanOf(n Node) text.Span {
	children := Children(n)
	if len(children) == 0 {
		return text.Span{}
	}
	first := children[0].Span()
	last := children[len(children)-1].Span()
	return text.SpanFromBounds(first.Start, last.End())
}

// LastToken returns the rightmost token under n.
func LastToken(n Node) *token.Token {
	if tok, ok := n.(*token.Token); ok {
		return tok
	}
	children := Children(n)
	if len(children) == 0 {
		return nil
	}
	return LastToken(children[len(children)-1])
}
