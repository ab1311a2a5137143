package evaluator

import (
	"github.com/jeff-160/Pseudocode-Interpreter/internal/ast"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/errors"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/scope"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/values"
)

// execConditional runs `IF ... THEN ... [ELSE IF ...] ... [ELSE ...]
// ENDIF`: branches are tried in order, at most one runs, and the whole
// statement pushes a scope.
func (e *Evaluator) execConditional(s *ast.ConditionalStmt) (*returnSignal, error) {
	for _, branch := range s.Branches {
		cond, err := e.evalBoolExpr(branch.Cond)
		if err != nil {
			return nil, err
		}
		if !cond {
			continue
		}
		return e.runScoped(branch.Body)
	}
	if s.ElseBody != nil {
		return e.runScoped(s.ElseBody)
	}
	return nil, nil
}

// execSwitch runs `CASE OF id ... ENDCASE`: branches are tested in order
// against id's current value by equality; OTHERWISE runs if nothing
// matched.
func (e *Evaluator) execSwitch(s *ast.SwitchStmt) (*returnSignal, error) {
	subject, err := e.scope.Get(s.Subject)
	if err != nil {
		return nil, errors.New(errors.VariableUndefined, pos(s), "variable %q is not defined", s.Subject)
	}

	for _, c := range s.Cases {
		label, err := e.evalExpr(c.Label)
		if err != nil {
			return nil, err
		}
		match, err := values.Equals(subject, label)
		if err != nil {
			continue
		}
		if match {
			return e.runScoped(c.Body)
		}
	}
	if s.Otherwise != nil {
		return e.runScoped(s.Otherwise)
	}
	return nil, nil
}

// execWhile runs `WHILE cond DO ... ENDWHILE`, pushing one scope for the
// whole loop.
func (e *Evaluator) execWhile(s *ast.WhileStmt) (*returnSignal, error) {
	e.scope.Push()
	defer e.scope.Pop()

	for {
		cond, err := e.evalBoolExpr(s.Cond)
		if err != nil {
			return nil, err
		}
		if !cond {
			return nil, nil
		}
		sig, err := e.execBlock(s.Body)
		if err != nil || sig != nil {
			return sig, err
		}
	}
}

// execRepeat runs `REPEAT ... UNTIL cond`: the body always executes at
// least once before the condition is tested.
func (e *Evaluator) execRepeat(s *ast.RepeatStmt) (*returnSignal, error) {
	e.scope.Push()
	defer e.scope.Pop()

	for {
		sig, err := e.execBlock(s.Body)
		if err != nil || sig != nil {
			return sig, err
		}
		done, err := e.evalBoolExpr(s.Cond)
		if err != nil {
			return nil, err
		}
		if done {
			return nil, nil
		}
	}
}

// execFor runs `FOR i <- start TO end [STEP s] ... NEXT`. start/end/step
// must be INTEGER; step defaults to 1 and must not be 0. The iterator is
// a fresh INTEGER binding in a scope pushed for the loop's lifetime, and
// is overwritten at the top of every iteration; the binding is popped
// with that scope when the loop exits.
func (e *Evaluator) execFor(s *ast.ForStmt) (*returnSignal, error) {
	start, err := e.evalIntExpr(s.Start)
	if err != nil {
		return nil, err
	}
	end, err := e.evalIntExpr(s.End)
	if err != nil {
		return nil, err
	}

	step := 1
	if s.Step != nil {
		step, err = e.evalIntExpr(s.Step)
		if err != nil {
			return nil, err
		}
	}
	if step == 0 {
		return nil, errors.New(errors.StepZero, pos(s), "iteration step cannot be 0")
	}

	e.scope.Push()
	defer e.scope.Pop()

	e.scope.Define(s.Iterator, &scope.Binding{
		DeclaredType: ast.TypeDesc{Name: "INTEGER"},
		Value:        values.Integer{Value: int64(start)},
		Mutable:      true,
	})

	for i := start; (step > 0 && i <= end) || (step < 0 && i >= end); i += step {
		if err := e.scope.Assign(s.Iterator, values.Integer{Value: int64(i)}); err != nil {
			return nil, errors.New(errors.TypeMismatch, pos(s), "%s", err.Error())
		}
		sig, err := e.execBlock(s.Body)
		if err != nil || sig != nil {
			return sig, err
		}
	}
	return nil, nil
}

// runScoped pushes a fresh scope, runs body, and always pops before
// returning, regardless of whether body ended in a RETURN signal or an
// error.
func (e *Evaluator) runScoped(body []ast.Statement) (*returnSignal, error) {
	e.scope.Push()
	defer e.scope.Pop()
	return e.execBlock(body)
}

// evalBoolExpr evaluates expr and requires it to be BOOLEAN.
func (e *Evaluator) evalBoolExpr(expr ast.Expression) (bool, error) {
	v, err := e.evalExpr(expr)
	if err != nil {
		return false, err
	}
	b, ok := v.(values.Bool)
	if !ok {
		return false, errors.New(errors.TypeMismatch, pos(expr), "condition must be BOOLEAN, got %q", v.TypeName())
	}
	return b.Value, nil
}
