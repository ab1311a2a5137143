package evaluator

import (
	"github.com/jeff-160/Pseudocode-Interpreter/internal/ast"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/errors"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/scope"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/values"
)

// execDecl handles `DECLARE name : T`, materializing a binding initialized
// to T's default value. For an array declaration, both lower bounds must
// equal 1, and the upper bound must be >= the lower bound.
func (e *Evaluator) execDecl(s *ast.DeclStmt) error {
	if !s.IsArray {
		def, err := values.Default(s.Type)
		if err != nil {
			return errors.New(errors.TypeMismatch, pos(s), "unknown type %q", s.Type)
		}
		e.scope.Define(s.Name, &scope.Binding{
			DeclaredType: ast.TypeDesc{Name: s.Type},
			Value:        def,
			Mutable:      true,
		})
		return nil
	}

	return e.declareArray(s)
}

func (e *Evaluator) declareArray(s *ast.DeclStmt) error {
	b := s.Array

	l1, err := e.evalIntExpr(b.Lower1)
	if err != nil {
		return err
	}
	u1, err := e.evalIntExpr(b.Upper1)
	if err != nil {
		return err
	}
	if l1 != 1 {
		return errors.New(errors.ArrayNotOneIndexed, pos(s), "array %q must be 1-indexed, got lower bound %d", s.Name, l1)
	}
	if u1 < l1 {
		return errors.New(errors.ArrayBoundsInvalid, pos(s), "invalid array bounds for %q: upper %d < lower %d", s.Name, u1, l1)
	}

	var arr *values.Array
	var declType ast.TypeDesc

	if !b.TwoD {
		arr, err = values.NewArray(b.ElemType, u1)
		if err != nil {
			return errors.New(errors.TypeMismatch, pos(s), "%s", err.Error())
		}
		declType = ast.TypeDesc{Name: "ARRAY", Elem: &ast.TypeDesc{Name: b.ElemType}}
	} else {
		l2, err := e.evalIntExpr(b.Lower2)
		if err != nil {
			return err
		}
		u2, err := e.evalIntExpr(b.Upper2)
		if err != nil {
			return err
		}
		if l2 != 1 {
			return errors.New(errors.ArrayNotOneIndexed, pos(s), "array %q must be 1-indexed, got inner lower bound %d", s.Name, l2)
		}
		if u2 < l2 {
			return errors.New(errors.ArrayBoundsInvalid, pos(s), "invalid inner array bounds for %q: upper %d < lower %d", s.Name, u2, l2)
		}
		arr, err = values.NewArray2D(b.ElemType, u1, u2)
		if err != nil {
			return errors.New(errors.TypeMismatch, pos(s), "%s", err.Error())
		}
		declType = ast.TypeDesc{Name: "ARRAY", Elem: &ast.TypeDesc{Name: "ARRAY", Elem: &ast.TypeDesc{Name: b.ElemType}}}
	}

	e.scope.Define(s.Name, &scope.Binding{DeclaredType: declType, Value: arr, Mutable: true})
	return nil
}

// execConst handles `CONSTANT name = expr`: the initializer is evaluated
// eagerly and the resulting binding is immutable with its type inferred
// from the value.
func (e *Evaluator) execConst(s *ast.ConstStmt) error {
	v, err := e.evalExpr(s.Value)
	if err != nil {
		return err
	}
	e.scope.Define(s.Name, &scope.Binding{
		DeclaredType: typeDescOf(v),
		Value:        v,
		Mutable:      false,
	})
	return nil
}

// typeDescOf returns the ast.TypeDesc matching a runtime value's type, so
// a constant's declared type can be recorded for diagnostics even though
// constants are never type-checked on assignment (they cannot be
// reassigned at all).
func typeDescOf(v values.Value) ast.TypeDesc {
	if arr, ok := v.(*values.Array); ok {
		return ast.TypeDesc{Name: "ARRAY", Elem: &arr.ElemType}
	}
	return ast.TypeDesc{Name: v.TypeName()}
}

// evalIntExpr evaluates expr and requires it to be an INTEGER (used for
// array bounds, which must be integers).
func (e *Evaluator) evalIntExpr(expr ast.Expression) (int, error) {
	v, err := e.evalExpr(expr)
	if err != nil {
		return 0, err
	}
	i, ok := v.(values.Integer)
	if !ok {
		return 0, errors.New(errors.TypeMismatch, pos(expr), "array bounds must be INTEGER, got %q", v.TypeName())
	}
	return int(i.Value), nil
}
