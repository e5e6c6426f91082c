// Package bound defines the type-checked tree produced by the binder and
// rewritten by the lowerer.
package bound

import "fmt"

type NodeKind int

const (
	EXPR_START NodeKind = iota // expression node start delimiter
	KIND_ERROR_EXPR
	KIND_LITERAL_EXPR
	KIND_VARIABLE_EXPR
	KIND_ASSIGN_EXPR
	KIND_UNARY_EXPR
	KIND_BINARY_EXPR
	EXPR_END // expression node end delimiter

	STMT_START // statement node start delimiter
	KIND_BLOCK_STMT
	KIND_VAR_DECL
	KIND_IF_STMT
	KIND_WHILE_STMT
	KIND_FOR_STMT
	KIND_LABEL_STMT
	KIND_GOTO_STMT
	KIND_COND_GOTO_STMT
	KIND_EXPR_STMT
	STMT_END // statement node end delimiter
)

func (kind NodeKind) IsExpr() bool { return kind > EXPR_START && kind < EXPR_END }
func (kind NodeKind) IsStmt() bool { return kind > STMT_START && kind < STMT_END }

func (kind NodeKind) String() string {
	switch kind {
	case KIND_ERROR_EXPR:
		return "ErrorExpr"
	case KIND_LITERAL_EXPR:
		return "LiteralExpr"
	case KIND_VARIABLE_EXPR:
		return "VariableExpr"
	case KIND_ASSIGN_EXPR:
		return "AssignExpr"
	case KIND_UNARY_EXPR:
		return "UnaryExpr"
	case KIND_BINARY_EXPR:
		return "BinaryExpr"
	case KIND_BLOCK_STMT:
		return "BlockStmt"
	case KIND_VAR_DECL:
		return "VarDecl"
	case KIND_IF_STMT:
		return "IfStmt"
	case KIND_WHILE_STMT:
		return "WhileStmt"
	case KIND_FOR_STMT:
		return "ForStmt"
	case KIND_LABEL_STMT:
		return "LabelStmt"
	case KIND_GOTO_STMT:
		return "GotoStmt"
	case KIND_COND_GOTO_STMT:
		return "CondGotoStmt"
	case KIND_EXPR_STMT:
		return "ExprStmt"
	default:
		return fmt.Sprintf("NodeKind(%d)", int(kind))
	}
}

type Node interface {
	Kind() NodeKind
}

// Children lists the direct children of n in evaluation order.
func Children(n Node) []Node {
	switch node := n.(type) {
	case *ErrorExpr, *LiteralExpr, *VariableExpr:
		return nil
	case *AssignExpr:
		return []Node{node.Expr}
	case *UnaryExpr:
		return []Node{node.Operand}
	case *BinaryExpr:
		return []Node{node.Left, node.Right}

	case *BlockStmt:
		children := make([]Node, 0, len(node.Statements))
		for _, stmt := range node.Statements {
			children = append(children, stmt)
		}
		return children
	case *VarDecl:
		return []Node{node.Init}
	case *IfStmt:
		if node.Else == nil {
			return []Node{node.Cond, node.Then}
		}
		return []Node{node.Cond, node.Then, node.Else}
	case *WhileStmt:
		return []Node{node.Cond, node.Body}
	case *ForStmt:
		return []Node{node.Decl, node.Cond, node.Incr, node.Body}
	case *LabelStmt, *GotoStmt:
		return nil
	case *CondGotoStmt:
		return []Node{node.Cond}
	case *ExprStmt:
		return []Node{node.Expr}
	default:
		panic(fmt.Sprintf("bound: unexpected node %T", n))
	}
}
