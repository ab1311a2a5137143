package evaluator

import (
	"github.com/jeff-160/Pseudocode-Interpreter/internal/ast"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/errors"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/values"
)

// evalLength implements the builtin LENGTH(x): x must be STRING or ARRAY.
func (e *Evaluator) evalLength(n *ast.LengthExpr) (values.Value, error) {
	v, err := e.evalExpr(n.Operand)
	if err != nil {
		return nil, err
	}
	switch t := v.(type) {
	case values.Str:
		return values.Integer{Value: int64(len([]rune(t.Value)))}, nil
	case *values.Array:
		return values.Integer{Value: int64(t.Length())}, nil
	default:
		return nil, errors.New(errors.TypeMismatch, pos(n), "cannot apply LENGTH() to %q", v.TypeName())
	}
}

// evalCast implements the builtin type-name cast `T(x)`.
func (e *Evaluator) evalCast(n *ast.CastExpr) (values.Value, error) {
	v, err := e.evalExpr(n.Operand)
	if err != nil {
		return nil, err
	}
	out, err := values.Cast(n.TargetType, v)
	if err != nil {
		return nil, errors.New(errors.CastError, pos(n), "%s", err.Error())
	}
	return out, nil
}
