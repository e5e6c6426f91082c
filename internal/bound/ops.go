package bound

import (
	"github.com/HicaroD/mangle/internal/lexer/token"
	"github.com/HicaroD/mangle/internal/symbols"
)

type UnaryOpKind int

const (
	IDENTITY UnaryOpKind = iota
	NEGATION
	LOGICAL_NEGATION
	ONES_COMPLEMENT
)

type UnaryOp struct {
	TokenKind token.Kind
	Kind      UnaryOpKind
	Operand   *symbols.TypeSymbol
	Result    *symbols.TypeSymbol
}

func newUnaryOp(tokenKind token.Kind, kind UnaryOpKind, operand *symbols.TypeSymbol) *UnaryOp {
	return &UnaryOp{TokenKind: tokenKind, Kind: kind, Operand: operand, Result: operand}
}

var unaryOps = []*UnaryOp{
	newUnaryOp(token.BANG, LOGICAL_NEGATION, symbols.Bool),
	newUnaryOp(token.PLUS, IDENTITY, symbols.Int),
	newUnaryOp(token.MINUS, NEGATION, symbols.Int),
	newUnaryOp(token.TILDE, ONES_COMPLEMENT, symbols.Int),
}

// BindUnaryOperator returns nil when tokenKind is not defined for operand.
func BindUnaryOperator(tokenKind token.Kind, operand *symbols.TypeSymbol) *UnaryOp {
	for _, op := range unaryOps {
		if op.TokenKind == tokenKind && op.Operand == operand {
			return op
		}
	}
	return nil
}

type BinaryOpKind int

const (
	ADDITION BinaryOpKind = iota
	SUBTRACTION
	MULTIPLICATION
	DIVISION
	MODULO
	POWER
	CONCATENATION

	// On int operands these are bitwise, on bool operands they evaluate both
	// sides and combine them logically.
	BITWISE_AND
	BITWISE_OR

	LOGICAL_AND
	LOGICAL_OR

	EQUALS
	NOT_EQUALS
	LESS
	LESS_OR_EQUALS
	GREATER
	GREATER_OR_EQUALS
)

type BinaryOp struct {
	TokenKind token.Kind
	Kind      BinaryOpKind
	Left      *symbols.TypeSymbol
	Right     *symbols.TypeSymbol
	Result    *symbols.TypeSymbol
}

func newBinaryOp(tokenKind token.Kind, kind BinaryOpKind, operand, result *symbols.TypeSymbol) *BinaryOp {
	return &BinaryOp{TokenKind: tokenKind, Kind: kind, Left: operand, Right: operand, Result: result}
}

var binaryOps = []*BinaryOp{
	newBinaryOp(token.PLUS, ADDITION, symbols.Int, symbols.Int),
	newBinaryOp(token.MINUS, SUBTRACTION, symbols.Int, symbols.Int),
	newBinaryOp(token.STAR, MULTIPLICATION, symbols.Int, symbols.Int),
	newBinaryOp(token.SLASH, DIVISION, symbols.Int, symbols.Int),
	newBinaryOp(token.PERCENT, MODULO, symbols.Int, symbols.Int),
	newBinaryOp(token.HAT, POWER, symbols.Int, symbols.Int),
	newBinaryOp(token.AMPERSAND, BITWISE_AND, symbols.Int, symbols.Int),
	newBinaryOp(token.PIPE, BITWISE_OR, symbols.Int, symbols.Int),

	newBinaryOp(token.EQUAL_EQUAL, EQUALS, symbols.Int, symbols.Bool),
	newBinaryOp(token.BANG_EQUAL, NOT_EQUALS, symbols.Int, symbols.Bool),
	newBinaryOp(token.LESS, LESS, symbols.Int, symbols.Bool),
	newBinaryOp(token.LESS_EQ, LESS_OR_EQUALS, symbols.Int, symbols.Bool),
	newBinaryOp(token.GREATER, GREATER, symbols.Int, symbols.Bool),
	newBinaryOp(token.GREATER_EQ, GREATER_OR_EQUALS, symbols.Int, symbols.Bool),

	newBinaryOp(token.AMPERSAND_AMPERSAND, LOGICAL_AND, symbols.Bool, symbols.Bool),
	newBinaryOp(token.PIPE_PIPE, LOGICAL_OR, symbols.Bool, symbols.Bool),
	newBinaryOp(token.AMPERSAND, BITWISE_AND, symbols.Bool, symbols.Bool),
	newBinaryOp(token.PIPE, BITWISE_OR, symbols.Bool, symbols.Bool),
	newBinaryOp(token.EQUAL_EQUAL, EQUALS, symbols.Bool, symbols.Bool),
	newBinaryOp(token.BANG_EQUAL, NOT_EQUALS, symbols.Bool, symbols.Bool),

	newBinaryOp(token.PLUS, CONCATENATION, symbols.String, symbols.String),
	newBinaryOp(token.EQUAL_EQUAL, EQUALS, symbols.String, symbols.Bool),
	newBinaryOp(token.BANG_EQUAL, NOT_EQUALS, symbols.String, symbols.Bool),
}

// BindBinaryOperator returns nil when tokenKind is not defined for the pair
// of operand types.
func BindBinaryOperator(tokenKind token.Kind, left, right *symbols.TypeSymbol) *BinaryOp {
	for _, op := range binaryOps {
		if op.TokenKind == tokenKind && op.Left == left && op.Right == right {
			return op
		}
	}
	return nil
}
