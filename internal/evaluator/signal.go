package evaluator

import "github.com/jeff-160/Pseudocode-Interpreter/internal/values"

// returnSignal is the non-error control-flow event RETURN raises. It is
// threaded up through exec's result rather than carried
// by panic/recover, so that a RETURN deep inside nested IF/WHILE blocks
// unwinds each enclosing exec call explicitly and is caught only by the
// function-call frame that owns it.
type returnSignal struct {
	value values.Value
}

// callKind marks whether the innermost subroutine invocation on the call
// stack is a procedure or a function; RETURN is only legal when the top
// marker is callFunction.
type callKind int

const (
	callProcedure callKind = iota
	callFunction
)

func (e *Evaluator) pushCall(k callKind) { e.callStack = append(e.callStack, k) }

func (e *Evaluator) popCall() { e.callStack = e.callStack[:len(e.callStack)-1] }

func (e *Evaluator) inFunction() bool {
	return len(e.callStack) > 0 && e.callStack[len(e.callStack)-1] == callFunction
}
