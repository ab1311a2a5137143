package values

import "github.com/jeff-160/Pseudocode-Interpreter/internal/subroutine"

// Procedure is the PROCEDURE value kind: a callable record with no return
// value. It is defined into scope like any other binding, since variables
// and constants share the same namespace as subroutines.
type Procedure struct {
	Record *subroutine.Procedure
}

func (Procedure) Kind() Kind        { return KindProcedure }
func (Procedure) TypeName() string  { return "PROCEDURE" }
func (p Procedure) String() string  { return "<procedure " + p.Record.Name + ">" }

// Function is the FUNCTION value kind.
type Function struct {
	Record *subroutine.Function
}

func (Function) Kind() Kind       { return KindFunction }
func (Function) TypeName() string { return "FUNCTION" }
func (f Function) String() string { return "<function " + f.Record.Name + ">" }
