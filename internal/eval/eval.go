// Package eval executes lowered programs.
package eval

import (
	"errors"
	"fmt"

	"github.com/HicaroD/mangle/internal/bound"
	"github.com/HicaroD/mangle/internal/symbols"
	"github.com/HicaroD/mangle/internal/text"
)

// Value is an int64, a bool or a string. A program without any value to
// report evaluates to nil.
type Value = any

// Variables is the store a program reads and writes. It is owned by the
// caller and may be reused across evaluations to keep state.
type Variables map[*symbols.VariableSymbol]Value

var (
	ErrDivisionByZero   = errors.New("Division by zero.")
	ErrNegativeExponent = errors.New("Negative exponent.")
)

// RuntimeError reports an arithmetic fault at the operator that raised it.
type RuntimeError struct {
	Span text.Span
	Err  error
}

func (err *RuntimeError) Error() string { return err.Err.Error() }
func (err *RuntimeError) Unwrap() error { return err.Err }

type evaluator struct {
	vars Variables
}

// Evaluate runs a block produced by the lowerer and returns the value of
// the last declaration or non-discarded expression statement executed.
func Evaluate(block *bound.BlockStmt, vars Variables) (Value, error) {
	e := &evaluator{vars: vars}

	labels := make(map[*bound.Label]int)
	for i, stmt := range block.Statements {
		if label, ok := stmt.(*bound.LabelStmt); ok {
			labels[label.Label] = i
		}
	}

	var last Value
	statements := block.Statements

	pc := 0
	for pc < len(statements) {
		switch node := statements[pc].(type) {
		case *bound.VarDecl:
			value, err := e.evalExpr(node.Init)
			if err != nil {
				return nil, err
			}
			e.vars[node.Variable] = value
			last = value
			pc++
		case *bound.ExprStmt:
			value, err := e.evalExpr(node.Expr)
			if err != nil {
				return nil, err
			}
			if !node.Discard {
				last = value
			}
			pc++
		case *bound.GotoStmt:
			pc = target(labels, node.Label)
		case *bound.CondGotoStmt:
			cond, err := e.evalExpr(node.Cond)
			if err != nil {
				return nil, err
			}
			if cond.(bool) == node.JumpIfTrue {
				pc = target(labels, node.Label)
			} else {
				pc++
			}
		case *bound.LabelStmt:
			pc++
		default:
			panic(fmt.Sprintf("eval: unexpected statement %s, the block must be lowered first", node.Kind()))
		}
	}

	return last, nil
}

func target(labels map[*bound.Label]int, label *bound.Label) int {
	index, ok := labels[label]
	if !ok {
		panic(fmt.Sprintf("eval: jump to undeclared label %s", label))
	}
	return index
}

func (e *evaluator) evalExpr(expr bound.Expr) (Value, error) {
	switch node := expr.(type) {
	case *bound.LiteralExpr:
		return node.Value, nil
	case *bound.VariableExpr:
		return e.vars[node.Variable], nil
	case *bound.AssignExpr:
		value, err := e.evalExpr(node.Expr)
		if err != nil {
			return nil, err
		}
		e.vars[node.Variable] = value
		return value, nil
	case *bound.UnaryExpr:
		return e.evalUnary(node)
	case *bound.BinaryExpr:
		return e.evalBinary(node)
	default:
		panic(fmt.Sprintf("eval: unexpected expression %s", expr.Kind()))
	}
}

func (e *evaluator) evalUnary(unary *bound.UnaryExpr) (Value, error) {
	operand, err := e.evalExpr(unary.Operand)
	if err != nil {
		return nil, err
	}

	switch unary.Op.Kind {
	case bound.IDENTITY:
		return operand.(int64), nil
	case bound.NEGATION:
		return -operand.(int64), nil
	case bound.LOGICAL_NEGATION:
		return !operand.(bool), nil
	case bound.ONES_COMPLEMENT:
		return ^operand.(int64), nil
	default:
		panic(fmt.Sprintf("eval: unexpected unary operator %v", unary.Op.Kind))
	}
}

func (e *evaluator) evalBinary(binary *bound.BinaryExpr) (Value, error) {
	left, err := e.evalExpr(binary.Left)
	if err != nil {
		return nil, err
	}

	// && and || skip their right operand once the left one decides.
	switch binary.Op.Kind {
	case bound.LOGICAL_AND:
		if !left.(bool) {
			return false, nil
		}
		return e.evalExpr(binary.Right)
	case bound.LOGICAL_OR:
		if left.(bool) {
			return true, nil
		}
		return e.evalExpr(binary.Right)
	}

	right, err := e.evalExpr(binary.Right)
	if err != nil {
		return nil, err
	}

	switch binary.Op.Kind {
	case bound.ADDITION:
		return left.(int64) + right.(int64), nil
	case bound.SUBTRACTION:
		return left.(int64) - right.(int64), nil
	case bound.MULTIPLICATION:
		return left.(int64) * right.(int64), nil
	case bound.DIVISION:
		if right.(int64) == 0 {
			return nil, &RuntimeError{Span: binary.OpSpan, Err: ErrDivisionByZero}
		}
		return left.(int64) / right.(int64), nil
	case bound.MODULO:
		if right.(int64) == 0 {
			return nil, &RuntimeError{Span: binary.OpSpan, Err: ErrDivisionByZero}
		}
		return left.(int64) % right.(int64), nil
	case bound.POWER:
		if right.(int64) < 0 {
			return nil, &RuntimeError{Span: binary.OpSpan, Err: ErrNegativeExponent}
		}
		return power(left.(int64), right.(int64)), nil
	case bound.CONCATENATION:
		return left.(string) + right.(string), nil
	case bound.BITWISE_AND:
		if l, ok := left.(bool); ok {
			return l && right.(bool), nil
		}
		return left.(int64) & right.(int64), nil
	case bound.BITWISE_OR:
		if l, ok := left.(bool); ok {
			return l || right.(bool), nil
		}
		return left.(int64) | right.(int64), nil
	case bound.EQUALS:
		return left == right, nil
	case bound.NOT_EQUALS:
		return left != right, nil
	case bound.LESS:
		return left.(int64) < right.(int64), nil
	case bound.LESS_OR_EQUALS:
		return left.(int64) <= right.(int64), nil
	case bound.GREATER:
		return left.(int64) > right.(int64), nil
	case bound.GREATER_OR_EQUALS:
		return left.(int64) >= right.(int64), nil
	default:
		panic(fmt.Sprintf("eval: unexpected binary operator %v", binary.Op.Kind))
	}
}

// power computes base^exponent by squaring. Overflow wraps.
func power(base, exponent int64) int64 {
	result := int64(1)
	for exponent > 0 {
		if exponent&1 == 1 {
			result *= base
		}
		base *= base
		exponent >>= 1
	}
	return result
}
