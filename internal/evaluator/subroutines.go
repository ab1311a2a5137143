package evaluator

import (
	"github.com/jeff-160/Pseudocode-Interpreter/internal/ast"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/errors"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/scope"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/subroutine"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/token"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/values"
)

// execProcedureDecl records a PROCEDURE under its name in the current
// scope without executing its body.
func (e *Evaluator) execProcedureDecl(s *ast.ProcedureDecl) error {
	rec := &subroutine.Procedure{Name: s.Name, Params: s.Params, Body: s.Body}
	e.scope.Define(s.Name, &scope.Binding{
		DeclaredType: ast.TypeDesc{Name: "PROCEDURE"},
		Value:        values.Procedure{Record: rec},
		Mutable:      false,
	})
	return nil
}

// execFunctionDecl records a FUNCTION under its name in the current scope.
func (e *Evaluator) execFunctionDecl(s *ast.FunctionDecl) error {
	rec := &subroutine.Function{
		Procedure:  subroutine.Procedure{Name: s.Name, Params: s.Params, Body: s.Body},
		ReturnType: s.ReturnType,
	}
	e.scope.Define(s.Name, &scope.Binding{
		DeclaredType: ast.TypeDesc{Name: "FUNCTION"},
		Value:        values.Function{Record: rec},
		Mutable:      false,
	})
	return nil
}

// execReturn handles `RETURN expr`: legal only with a function call frame
// on top of the call stack.
func (e *Evaluator) execReturn(s *ast.ReturnStmt) (*returnSignal, error) {
	if !e.inFunction() {
		return nil, errors.New(errors.ReturnOutsideFunction, pos(s), "RETURN statement outside FUNCTION block")
	}
	v, err := e.evalExpr(s.Value)
	if err != nil {
		return nil, err
	}
	return &returnSignal{value: v}, nil
}

// callProcedure resolves name, asserts it is a Procedure (not a Function),
// binds args in a fresh scope, and executes the body, without the RETURN
// path a function call needs.
func (e *Evaluator) callProcedure(name string, args []ast.Expression, line int) (values.Value, error) {
	p := token.Position{Line: line}

	v, err := e.scope.Get(name)
	if err != nil {
		return nil, errors.New(errors.VariableUndefined, p, "procedure %q is not defined", name)
	}
	proc, ok := v.(values.Procedure)
	if !ok {
		return nil, errors.New(errors.WrongSubroutineKind, p, "%q is not a procedure", name)
	}

	e.pushCall(callProcedure)
	defer e.popCall()

	if err := e.bindArgs(proc.Record.Params, args, p); err != nil {
		return nil, err
	}
	defer e.scope.Pop()

	if sig, err := e.execBlock(proc.Record.Body); err != nil {
		return nil, err
	} else if sig != nil {
		return nil, errors.New(errors.ReturnOutsideFunction, p, "RETURN statement outside FUNCTION block")
	}
	return nil, nil
}

// callFunction resolves name, asserts it is a Function, binds args, and
// executes the body. If the body runs to completion without RETURN, the
// call yields the return type's default value; if RETURN fires, its value
// must match the declared return type exactly.
func (e *Evaluator) callFunction(name string, args []ast.Expression, line int) (values.Value, error) {
	p := token.Position{Line: line}

	v, err := e.scope.Get(name)
	if err != nil {
		return nil, errors.New(errors.VariableUndefined, p, "function %q is not defined", name)
	}
	fn, ok := v.(values.Function)
	if !ok {
		return nil, errors.New(errors.WrongSubroutineKind, p, "%q is not a function", name)
	}

	e.pushCall(callFunction)
	defer e.popCall()

	if err := e.bindArgs(fn.Record.Params, args, p); err != nil {
		return nil, err
	}
	defer e.scope.Pop()

	sig, err := e.execBlock(fn.Record.Body)
	if err != nil {
		return nil, err
	}
	if sig == nil {
		def, err := values.Default(fn.Record.ReturnType.String())
		if err != nil {
			return nil, errors.New(errors.TypeMismatch, p, "%s", err.Error())
		}
		return def, nil
	}

	if sig.value.TypeName() != fn.Record.ReturnType.String() {
		return nil, errors.New(errors.ReturnTypeMismatch, p, "expected %q RETURN type, got %q", fn.Record.ReturnType.String(), sig.value.TypeName())
	}
	return sig.value, nil
}

// bindArgs evaluates each argument eagerly in the caller's scope, copies
// arrays so no aliasing crosses the boundary, checks exact arity and
// parameter-type match, then pushes a fresh scope and defines each
// parameter as a mutable binding within it.
func (e *Evaluator) bindArgs(params []ast.Param, args []ast.Expression, p token.Position) error {
	if len(params) != len(args) {
		return errors.New(errors.ArityMismatch, p, "expected %d argument(s), got %d", len(params), len(args))
	}

	bound := make([]values.Value, len(args))
	for i, argExpr := range args {
		v, err := e.evalExpr(argExpr)
		if err != nil {
			return err
		}
		if arr, ok := v.(*values.Array); ok {
			v = arr.Copy()
		}
		if v.TypeName() != params[i].Type.String() {
			return errors.New(errors.TypeMismatch, p, "argument %d: expected %q, got %q", i+1, params[i].Type.String(), v.TypeName())
		}
		bound[i] = v
	}

	e.scope.Push()
	for i, param := range params {
		e.scope.Define(param.Name, &scope.Binding{
			DeclaredType: param.Type,
			Value:        bound[i],
			Mutable:      true,
		})
	}
	return nil
}
