package evaluator

import (
	"github.com/jeff-160/Pseudocode-Interpreter/internal/ast"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/errors"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/values"
)

// evalBinary evaluates any arithmetic, logical, or comparison operator.
// Any type failure raised while combining the two operands is repackaged
// as OperatorTypeMismatch naming both operand types, except for AND/OR,
// whose operand-type errors are deliberately reported directly since
// short-circuiting only evaluates the left operand until the type is
// already known to be wrong.
func (e *Evaluator) evalBinary(n *ast.BinaryExpr) (values.Value, error) {
	switch n.Op {
	case ast.And, ast.Or:
		return e.evalLogical(n)
	}

	left, err := e.evalExpr(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(n.Right)
	if err != nil {
		return nil, err
	}

	v, err := combine(n.Op, left, right)
	if err != nil {
		if _, ok := err.(errDivisionByZero); ok {
			return nil, errors.New(errors.DivisionByZero, pos(n), "division by zero")
		}
		return nil, errors.OperatorTypeMismatchError(pos(n), left.TypeName(), right.TypeName())
	}
	return v, nil
}

// evalLogical evaluates AND/OR left-to-right with short-circuiting; both
// operands must be BOOLEAN.
func (e *Evaluator) evalLogical(n *ast.BinaryExpr) (values.Value, error) {
	left, err := e.evalBoolExpr(n.Left)
	if err != nil {
		return nil, err
	}
	if n.Op == ast.And && !left {
		return values.Bool{Value: false}, nil
	}
	if n.Op == ast.Or && left {
		return values.Bool{Value: true}, nil
	}
	right, err := e.evalBoolExpr(n.Right)
	if err != nil {
		return nil, err
	}
	return values.Bool{Value: right}, nil
}

// combine applies a non-logical binary operator to two already-evaluated
// values. Apart from division by zero (errDivisionByZero), errors here are
// type errors and are repackaged by the caller as OperatorTypeMismatch.
func combine(op ast.BinaryOp, left, right values.Value) (values.Value, error) {
	switch op {
	case ast.Add:
		if ls, ok := left.(values.Str); ok {
			if rs, ok := right.(values.Str); ok {
				return values.Str{Value: ls.Value + rs.Value}, nil
			}
		}
		return arith(op, left, right)
	case ast.Sub, ast.Mul:
		return arith(op, left, right)
	case ast.Div:
		return divide(left, right)
	case ast.Mod:
		return modulo(left, right)
	case ast.Gt, ast.Lt, ast.Gte, ast.Lte:
		return compareOrder(op, left, right)
	case ast.Eq, ast.Neq:
		return compareEq(op, left, right)
	default:
		return nil, errNotSupported
	}
}

var errNotSupported = errNotSupportedErr{}

type errNotSupportedErr struct{}

func (errNotSupportedErr) Error() string { return "operator not supported" }

// arith implements + - * with INTEGER/REAL widening: the result is REAL
// unless both operands are INTEGER.
func arith(op ast.BinaryOp, left, right values.Value) (values.Value, error) {
	li, lok := left.(values.Integer)
	ri, rok := right.(values.Integer)
	if lok && rok {
		switch op {
		case ast.Add:
			return values.Integer{Value: li.Value + ri.Value}, nil
		case ast.Sub:
			return values.Integer{Value: li.Value - ri.Value}, nil
		case ast.Mul:
			return values.Integer{Value: li.Value * ri.Value}, nil
		}
	}

	ln, lnOk := left.(values.Numeric)
	rn, rnOk := right.(values.Numeric)
	if !lnOk || !rnOk {
		return nil, errNotSupported
	}
	lf, rf := ln.AsFloat(), rn.AsFloat()
	switch op {
	case ast.Add:
		return values.Real{Value: lf + rf}, nil
	case ast.Sub:
		return values.Real{Value: lf - rf}, nil
	case ast.Mul:
		return values.Real{Value: lf * rf}, nil
	default:
		return nil, errNotSupported
	}
}

// divide implements `/`: always REAL, even for two INTEGERs.
func divide(left, right values.Value) (values.Value, error) {
	ln, lok := left.(values.Numeric)
	rn, rok := right.(values.Numeric)
	if !lok || !rok {
		return nil, errNotSupported
	}
	rf := rn.AsFloat()
	if rf == 0 {
		return nil, errDivisionByZero{}
	}
	return values.Real{Value: ln.AsFloat() / rf}, nil
}

type errDivisionByZero struct{}

func (errDivisionByZero) Error() string { return "division by zero" }

// modulo implements MOD, which requires two INTEGERs.
func modulo(left, right values.Value) (values.Value, error) {
	li, lok := left.(values.Integer)
	ri, rok := right.(values.Integer)
	if !lok || !rok {
		return nil, errNotSupported
	}
	if ri.Value == 0 {
		return nil, errDivisionByZero{}
	}
	return values.Integer{Value: li.Value % ri.Value}, nil
}

func compareOrder(op ast.BinaryOp, left, right values.Value) (values.Value, error) {
	lt, err := values.Less(left, right)
	if err != nil {
		return nil, err
	}
	eq, _ := values.Equals(left, right)
	switch op {
	case ast.Gt:
		return values.Bool{Value: !lt && !eq}, nil
	case ast.Lt:
		return values.Bool{Value: lt}, nil
	case ast.Gte:
		return values.Bool{Value: !lt}, nil
	case ast.Lte:
		return values.Bool{Value: lt || eq}, nil
	default:
		return nil, errNotSupported
	}
}

func compareEq(op ast.BinaryOp, left, right values.Value) (values.Value, error) {
	eq, err := values.Equals(left, right)
	if err != nil {
		return nil, err
	}
	if op == ast.Neq {
		return values.Bool{Value: !eq}, nil
	}
	return values.Bool{Value: eq}, nil
}
