package evaluator

import (
	"fmt"

	"github.com/jeff-160/Pseudocode-Interpreter/internal/ast"
)

// exec executes one statement, dispatching on its concrete node kind. It
// returns a non-nil returnSignal when a RETURN inside stmt (or a block it
// contains) should unwind further; the caller must stop executing its own
// remaining statements and propagate the signal upward.
func (e *Evaluator) exec(stmt ast.Statement) (*returnSignal, error) {
	switch s := stmt.(type) {
	case *ast.DeclStmt:
		return nil, e.execDecl(s)
	case *ast.ConstStmt:
		return nil, e.execConst(s)
	case *ast.AssignStmt:
		return nil, e.execAssign(s)
	case *ast.IndexAssignStmt:
		return nil, e.execIndexAssign(s)
	case *ast.OutputStmt:
		return nil, e.execOutput(s)
	case *ast.InputStmt:
		return nil, e.execInput(s)
	case *ast.ConditionalStmt:
		return e.execConditional(s)
	case *ast.SwitchStmt:
		return e.execSwitch(s)
	case *ast.WhileStmt:
		return e.execWhile(s)
	case *ast.RepeatStmt:
		return e.execRepeat(s)
	case *ast.ForStmt:
		return e.execFor(s)
	case *ast.ProcedureDecl:
		return nil, e.execProcedureDecl(s)
	case *ast.FunctionDecl:
		return nil, e.execFunctionDecl(s)
	case *ast.CallProcStmt:
		_, err := e.callProcedure(s.Name, s.Args, s.Line())
		return nil, err
	case *ast.ExprStmt:
		_, err := e.evalExpr(s.Expr)
		return nil, err
	case *ast.ReturnStmt:
		return e.execReturn(s)
	default:
		return nil, fmt.Errorf("unsupported statement node %T", stmt)
	}
}

// execBlock runs stmts in order, stopping at the first returnSignal or
// error and propagating it to the caller: execution is strictly
// sequential, with no partial continuation after an error.
func (e *Evaluator) execBlock(stmts []ast.Statement) (*returnSignal, error) {
	for _, stmt := range stmts {
		sig, err := e.exec(stmt)
		if err != nil {
			return nil, err
		}
		if sig != nil {
			return sig, nil
		}
	}
	return nil, nil
}
