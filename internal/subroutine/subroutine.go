// Package subroutine holds the procedure and function records the
// evaluator installs when it visits a PROCEDURE or FUNCTION definition.
// A record is immutable once defined; only its body is interpreted, never
// mutated.
package subroutine

import "github.com/jeff-160/Pseudocode-Interpreter/internal/ast"

// Procedure is a recorded PROCEDURE: its formal parameters and body.
type Procedure struct {
	Name   string
	Params []ast.Param
	Body   []ast.Statement
}

// Function is a recorded FUNCTION: a Procedure plus its declared return
// type.
type Function struct {
	Procedure
	ReturnType ast.TypeDesc
}
