package evaluator

import (
	"strings"

	"github.com/jeff-160/Pseudocode-Interpreter/internal/ast"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/errors"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/token"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/values"
)

// execAssign handles `name <- expr` by delegating to the scope's Assign,
// which enforces constant immutability, the array-reassignment ban, and
// the type-match invariant.
func (e *Evaluator) execAssign(s *ast.AssignStmt) error {
	v, err := e.evalExpr(s.Value)
	if err != nil {
		return err
	}
	if err := e.scope.Assign(s.Name, v); err != nil {
		return classifyAssignError(pos(s), s.Name, err)
	}
	return nil
}

// execIndexAssign handles `name[i] <- expr` and `name[i,j] <- expr`:
// resolve the array, bounds-check, and write in place without widening.
func (e *Evaluator) execIndexAssign(s *ast.IndexAssignStmt) error {
	v, err := e.evalExpr(s.Value)
	if err != nil {
		return err
	}

	arr, err := e.scope.ArrayAt(s.Name)
	if err != nil {
		return errors.New(errors.NotAnArray, pos(s), "%q is not an array", s.Name)
	}

	idx, err := e.evalIntExpr(s.Indices[0])
	if err != nil {
		return err
	}

	if len(s.Indices) == 1 {
		if !arr.ElemType.IsArray() {
			if v.TypeName() != arr.ElemType.String() {
				return errors.New(errors.TypeMismatch, pos(s), "assignment type mismatch for %q: expected %q, got %q", s.Name, arr.ElemType.String(), v.TypeName())
			}
		}
		if err := arr.Set(idx, v); err != nil {
			return errors.New(errors.IndexOutOfBounds, pos(s), "%s", err.Error())
		}
		return nil
	}

	if !arr.ElemType.IsArray() {
		return errors.New(errors.DimensionMismatch, pos(s), "%q is not a 2-D array", s.Name)
	}
	inner, err := arr.Get(idx)
	if err != nil {
		return errors.New(errors.IndexOutOfBounds, pos(s), "%s", err.Error())
	}
	innerArr, ok := inner.(*values.Array)
	if !ok {
		return errors.New(errors.DimensionMismatch, pos(s), "%q is not a 2-D array", s.Name)
	}

	idx2, err := e.evalIntExpr(s.Indices[1])
	if err != nil {
		return err
	}
	if v.TypeName() != innerArr.ElemType.String() {
		return errors.New(errors.TypeMismatch, pos(s), "assignment type mismatch for %q: expected %q, got %q", s.Name, innerArr.ElemType.String(), v.TypeName())
	}
	if err := innerArr.Set(idx2, v); err != nil {
		return errors.New(errors.IndexOutOfBounds, pos(s), "%s", err.Error())
	}
	return nil
}

// classifyAssignError maps the plain errors scope.Assign returns back onto
// the named error kinds the diagnostic boundary expects.
func classifyAssignError(p token.Position, name string, err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "constant"):
		return errors.New(errors.ConstantAssignment, p, "cannot assign to constant %q", name)
	case strings.Contains(msg, "reassign array"):
		return errors.New(errors.ArrayReassignment, p, "cannot reassign array %q directly; use indexed assignment", name)
	case strings.Contains(msg, "not declared"):
		return errors.New(errors.VariableUndeclared, p, "variable %q is not declared", name)
	default:
		return errors.New(errors.TypeMismatch, p, "%s", msg)
	}
}
