package evaluator

import (
	"fmt"
	"strings"

	"github.com/jeff-160/Pseudocode-Interpreter/internal/ast"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/errors"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/scope"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/values"
)

// execOutput handles `OUTPUT e1, e2, ...`: each expression is evaluated
// left-to-right and printed space-separated, followed by a
// newline unless the evaluator was built with WithNoNewlines.
func (e *Evaluator) execOutput(s *ast.OutputStmt) error {
	parts := make([]string, len(s.Args))
	for i, arg := range s.Args {
		v, err := e.evalExpr(arg)
		if err != nil {
			return err
		}
		parts[i] = v.String()
	}

	line := strings.Join(parts, " ")
	if e.noNewlines {
		if _, err := fmt.Fprint(e.io.Out, line); err != nil {
			return errors.New(errors.IOError, pos(s), "%s", err.Error())
		}
		return nil
	}
	if _, err := fmt.Fprintln(e.io.Out, line); err != nil {
		return errors.New(errors.IOError, pos(s), "%s", err.Error())
	}
	return nil
}

// execInput handles `INPUT name`: reads one line from the I/O port and
// (re)defines name as a fresh STRING binding in the top scope, even if a
// variable of a different declared type already exists under that name
// (this is the observed, preserved behavior).
func (e *Evaluator) execInput(s *ast.InputStmt) error {
	line, err := e.io.In.ReadString('\n')
	if err != nil && line == "" {
		return errors.New(errors.IOError, pos(s), "failed to read input: %s", err.Error())
	}
	line = strings.TrimRight(line, "\r\n")

	e.scope.Define(s.Name, &scope.Binding{
		DeclaredType: typeDescOf(values.Str{}),
		Value:        values.Str{Value: line},
		Mutable:      true,
	})
	return nil
}
