package evaluator

import (
	"fmt"

	"github.com/jeff-160/Pseudocode-Interpreter/internal/ast"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/errors"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/values"
)

// evalExpr reduces an expression node to a Value, dispatching on its
// concrete node kind.
func (e *Evaluator) evalExpr(expr ast.Expression) (values.Value, error) {
	switch n := expr.(type) {
	case *ast.NumberLit:
		if n.IsFloat {
			return values.Real{Value: n.Value}, nil
		}
		return values.Integer{Value: int64(n.Value)}, nil
	case *ast.StringLit:
		return values.Str{Value: n.Value}, nil
	case *ast.CharLit:
		return values.Char{Value: n.Value}, nil
	case *ast.BoolLit:
		return values.Bool{Value: n.Value}, nil
	case *ast.VarExpr:
		v, err := e.scope.Get(n.Name)
		if err != nil {
			return nil, errors.New(errors.VariableUndefined, pos(n), "variable %q is not defined", n.Name)
		}
		return v, nil
	case *ast.NegExpr:
		return e.evalNeg(n)
	case *ast.BinaryExpr:
		return e.evalBinary(n)
	case *ast.IndexExpr:
		return e.evalIndex(n)
	case *ast.CallExpr:
		return e.callFunction(n.Name, n.Args, n.Line())
	case *ast.LengthExpr:
		return e.evalLength(n)
	case *ast.CastExpr:
		return e.evalCast(n)
	default:
		return nil, fmt.Errorf("unsupported expression node %T", expr)
	}
}

func (e *Evaluator) evalNeg(n *ast.NegExpr) (values.Value, error) {
	v, err := e.evalExpr(n.Operand)
	if err != nil {
		return nil, err
	}
	switch o := v.(type) {
	case values.Integer:
		return values.Integer{Value: -o.Value}, nil
	case values.Real:
		return values.Real{Value: -o.Value}, nil
	default:
		return nil, errors.New(errors.OperatorTypeMismatch, pos(n), "unary - is not supported for %q", v.TypeName())
	}
}
