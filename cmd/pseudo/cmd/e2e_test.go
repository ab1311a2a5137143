package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/evaluator"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/lexer"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/parser"
)

// runProgram lexes, parses, and evaluates source against stdin, returning
// stdout (or a diagnostic string on the first error), mirroring what `pseudo
// run` does end to end.
func runProgram(t *testing.T, source, stdin string) string {
	t.Helper()

	lex := lexer.New(source)
	p := parser.New(lex)
	program := p.ParseProgram()
	if perrs := p.Errors(); len(perrs) > 0 {
		t.Fatalf("unexpected parse errors: %v", perrs)
	}

	var out bytes.Buffer
	port := evaluator.NewIOPort(strings.NewReader(stdin), &out)
	eval := evaluator.New("fixture.pseudo", source, port)

	if err := eval.Run(program); err != nil {
		return eval.Diagnostic(err)
	}
	return out.String()
}

func TestEndToEnd_scenario1_arithmetic(t *testing.T) {
	out := runProgram(t, "DECLARE x:INTEGER\nx<-3\nOUTPUT x+4\n", "")
	snaps.MatchSnapshot(t, out)
}

func TestEndToEnd_scenario2_forLoop(t *testing.T) {
	out := runProgram(t, "FOR i<-1 TO 3\nOUTPUT i\nNEXT i\n", "")
	snaps.MatchSnapshot(t, out)
}

func TestEndToEnd_scenario3_arrayIndex(t *testing.T) {
	out := runProgram(t, "DECLARE a:ARRAY[1:3] OF INTEGER\na[2]<-5\nOUTPUT a[2]\n", "")
	snaps.MatchSnapshot(t, out)
}

func TestEndToEnd_scenario4_functionCall(t *testing.T) {
	out := runProgram(t, "FUNCTION f(n:INTEGER) RETURNS INTEGER\nRETURN n*n\nENDFUNCTION\nOUTPUT f(6)\n", "")
	snaps.MatchSnapshot(t, out)
}

func TestEndToEnd_scenario5_inputEcho(t *testing.T) {
	out := runProgram(t, "INPUT s\nOUTPUT s\n", "hello\n")
	snaps.MatchSnapshot(t, out)
}

func TestEndToEnd_scenario6_constantAssignment(t *testing.T) {
	out := runProgram(t, "CONSTANT PI=3.14\nPI<-1\n", "")
	snaps.MatchSnapshot(t, out)
}
