package evaluator

import (
	"github.com/jeff-160/Pseudocode-Interpreter/internal/ast"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/errors"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/values"
)

// evalIndex evaluates `a[i]` or `a[i,j]`. The target must be STRING or
// ARRAY; 2-D indexing requires the target's element type to itself be
// ARRAY. Indices must be INTEGER and fall within [1, len].
func (e *Evaluator) evalIndex(n *ast.IndexExpr) (values.Value, error) {
	target, err := e.evalExpr(n.Target)
	if err != nil {
		return nil, err
	}

	idx, err := e.evalIntExpr(n.Indices[0])
	if err != nil {
		return nil, errors.New(errors.IndexNotInteger, pos(n), "index must be INTEGER")
	}

	switch t := target.(type) {
	case values.Str:
		runes := []rune(t.Value)
		if idx < 1 || idx > len(runes) {
			return nil, errors.New(errors.IndexOutOfBounds, pos(n), "index %d out of bounds for STRING of length %d", idx, len(runes))
		}
		if len(n.Indices) > 1 {
			return nil, errors.New(errors.DimensionMismatch, pos(n), "STRING does not support 2-D indexing")
		}
		return values.Char{Value: runes[idx-1]}, nil
	case *values.Array:
		elem, err := t.Get(idx)
		if err != nil {
			return nil, errors.New(errors.IndexOutOfBounds, pos(n), "%s", err.Error())
		}
		if len(n.Indices) == 1 {
			return elem, nil
		}
		inner, ok := elem.(*values.Array)
		if !ok {
			return nil, errors.New(errors.DimensionMismatch, pos(n), "element type %q is not a 2-D array", t.ElemType.String())
		}
		idx2, err := e.evalIntExpr(n.Indices[1])
		if err != nil {
			return nil, errors.New(errors.IndexNotInteger, pos(n), "index must be INTEGER")
		}
		elem2, err := inner.Get(idx2)
		if err != nil {
			return nil, errors.New(errors.IndexOutOfBounds, pos(n), "%s", err.Error())
		}
		return elem2, nil
	default:
		return nil, errors.New(errors.NotIndexable, pos(n), "cannot index %q", target.TypeName())
	}
}
