package bound

import (
	"fmt"

	"github.com/HicaroD/mangle/internal/symbols"
	"github.com/HicaroD/mangle/internal/text"
)

type Expr interface {
	Node
	Type() *symbols.TypeSymbol
}

// ErrorExpr stands in for an expression that failed to bind. Its diagnostic
// has already been reported.
type ErrorExpr struct{}

func (expr *ErrorExpr) Kind() NodeKind            { return KIND_ERROR_EXPR }
func (expr *ErrorExpr) Type() *symbols.TypeSymbol { return symbols.Error }

type LiteralExpr struct {
	// Value is an int64, a bool or a string.
	Value any
}

func (literal *LiteralExpr) Kind() NodeKind { return KIND_LITERAL_EXPR }

func (literal *LiteralExpr) Type() *symbols.TypeSymbol {
	switch literal.Value.(type) {
	case bool:
		return symbols.Bool
	case int64:
		return symbols.Int
	case string:
		return symbols.String
	default:
		panic(fmt.Sprintf("bound: unexpected literal %T", literal.Value))
	}
}

type VariableExpr struct {
	Variable *symbols.VariableSymbol
}

func (variable *VariableExpr) Kind() NodeKind            { return KIND_VARIABLE_EXPR }
func (variable *VariableExpr) Type() *symbols.TypeSymbol { return variable.Variable.Type }

type AssignExpr struct {
	Variable *symbols.VariableSymbol
	Expr     Expr
}

func (assign *AssignExpr) Kind() NodeKind            { return KIND_ASSIGN_EXPR }
func (assign *AssignExpr) Type() *symbols.TypeSymbol { return assign.Expr.Type() }

type UnaryExpr struct {
	Op      *UnaryOp
	Operand Expr
}

func (unary *UnaryExpr) Kind() NodeKind            { return KIND_UNARY_EXPR }
func (unary *UnaryExpr) Type() *symbols.TypeSymbol { return unary.Op.Result }

type BinaryExpr struct {
	Left  Expr
	Op    *BinaryOp
	Right Expr

	// OpSpan locates the operator for runtime faults.
	OpSpan text.Span
}

func (binary *BinaryExpr) Kind() NodeKind            { return KIND_BINARY_EXPR }
func (binary *BinaryExpr) Type() *symbols.TypeSymbol { return binary.Op.Result }
