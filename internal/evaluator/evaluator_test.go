package evaluator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jeff-160/Pseudocode-Interpreter/internal/errors"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/lexer"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/parser"
)

// run lexes, parses, and evaluates src, returning captured OUTPUT and any
// error Run produced.
func run(t *testing.T, src, stdin string) (string, error) {
	t.Helper()

	p := parser.New(lexer.New(src))
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, errs)
	}

	var out bytes.Buffer
	port := NewIOPort(strings.NewReader(stdin), &out)
	eval := New("test.pseudo", src, port)
	err := eval.Run(program)
	return out.String(), err
}

func runtimeKind(t *testing.T, err error) errors.Kind {
	t.Helper()
	re, ok := err.(*errors.RuntimeError)
	if !ok {
		t.Fatalf("want *errors.RuntimeError, got %T (%v)", err, err)
	}
	return re.Kind
}

func TestRun_declareDefaultsToZeroValue(t *testing.T) {
	out, err := run(t, "DECLARE x:INTEGER\nOUTPUT x\n", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "0\n" {
		t.Fatalf("want \"0\\n\", got %q", out)
	}
}

func TestRun_arithmeticAndOutput(t *testing.T) {
	out, err := run(t, "OUTPUT 1 + 2 * 3\n", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "7\n" {
		t.Fatalf("want \"7\\n\", got %q", out)
	}
}

func TestRun_divisionOfTwoIntegersYieldsReal(t *testing.T) {
	out, err := run(t, "OUTPUT 7 / 2\n", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "3.5\n" {
		t.Fatalf("want \"3.5\\n\", got %q", out)
	}
}

func TestRun_divisionByZeroIsRuntimeError(t *testing.T) {
	_, err := run(t, "OUTPUT 1 / 0\n", "")
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if k := runtimeKind(t, err); k != errors.DivisionByZero {
		t.Fatalf("want DivisionByZero, got %s", k)
	}
}

func TestRun_undefinedVariableIsRuntimeError(t *testing.T) {
	_, err := run(t, "OUTPUT y\n", "")
	if k := runtimeKind(t, err); k != errors.VariableUndefined {
		t.Fatalf("want VariableUndefined, got %s", k)
	}
}

func TestRun_assigningToConstantIsRuntimeError(t *testing.T) {
	_, err := run(t, "CONSTANT PI=3.14\nPI<-1\n", "")
	if k := runtimeKind(t, err); k != errors.ConstantAssignment {
		t.Fatalf("want ConstantAssignment, got %s", k)
	}
}

func TestRun_whileLoopAccumulates(t *testing.T) {
	src := "DECLARE i:INTEGER\nDECLARE total:INTEGER\ni<-1\ntotal<-0\nWHILE i <= 3 DO\ntotal<-total+i\ni<-i+1\nENDWHILE\nOUTPUT total\n"
	out, err := run(t, src, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "6\n" {
		t.Fatalf("want \"6\\n\", got %q", out)
	}
}

func TestRun_forLoopNegativeStep(t *testing.T) {
	out, err := run(t, "FOR i<-3 TO 1 STEP -1\nOUTPUT i\nNEXT i\n", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "3\n2\n1\n" {
		t.Fatalf("want \"3\\n2\\n1\\n\", got %q", out)
	}
}

func TestRun_forLoopStepZeroIsRuntimeError(t *testing.T) {
	_, err := run(t, "FOR i<-1 TO 3 STEP 0\nOUTPUT i\nNEXT i\n", "")
	if k := runtimeKind(t, err); k != errors.StepZero {
		t.Fatalf("want StepZero, got %s", k)
	}
}

func TestRun_arrayIndexAssignmentAndOutOfBounds(t *testing.T) {
	out, err := run(t, "DECLARE a:ARRAY[1:3] OF INTEGER\na[2]<-9\nOUTPUT a[2]\n", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "9\n" {
		t.Fatalf("want \"9\\n\", got %q", out)
	}

	_, err = run(t, "DECLARE a:ARRAY[1:3] OF INTEGER\na[5]<-1\n", "")
	if k := runtimeKind(t, err); k != errors.IndexOutOfBounds {
		t.Fatalf("want IndexOutOfBounds, got %s", k)
	}
}

func TestRun_wholeArrayReassignmentIsRuntimeError(t *testing.T) {
	src := "DECLARE a:ARRAY[1:3] OF INTEGER\nDECLARE b:ARRAY[1:3] OF INTEGER\na<-b\n"
	_, err := run(t, src, "")
	if k := runtimeKind(t, err); k != errors.ArrayReassignment {
		t.Fatalf("want ArrayReassignment, got %s", k)
	}
}

func TestRun_functionCallReturnsValue(t *testing.T) {
	src := "FUNCTION square(n:INTEGER) RETURNS INTEGER\nRETURN n*n\nENDFUNCTION\nOUTPUT square(5)\n"
	out, err := run(t, src, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "25\n" {
		t.Fatalf("want \"25\\n\", got %q", out)
	}
}

func TestRun_functionReturnTypeMismatchIsRuntimeError(t *testing.T) {
	src := "FUNCTION bad() RETURNS INTEGER\nRETURN \"oops\"\nENDFUNCTION\nOUTPUT bad()\n"
	_, err := run(t, src, "")
	if k := runtimeKind(t, err); k != errors.ReturnTypeMismatch {
		t.Fatalf("want ReturnTypeMismatch, got %s", k)
	}
}

func TestRun_callArityMismatchIsRuntimeError(t *testing.T) {
	src := "PROCEDURE greet(name:STRING)\nOUTPUT name\nENDPROCEDURE\nCALL greet()\n"
	_, err := run(t, src, "")
	if k := runtimeKind(t, err); k != errors.ArityMismatch {
		t.Fatalf("want ArityMismatch, got %s", k)
	}
}

func TestRun_procedureArrayParamIsCopiedNotAliased(t *testing.T) {
	src := "PROCEDURE bump(xs:ARRAY OF INTEGER)\nxs[1]<-99\nENDPROCEDURE\n" +
		"DECLARE a:ARRAY[1:2] OF INTEGER\na[1]<-1\nCALL bump(a)\nOUTPUT a[1]\n"
	out, err := run(t, src, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n" {
		t.Fatalf("array argument should be passed by value, got %q", out)
	}
}

func TestRun_caseOfMatchesFirstLabelOnly(t *testing.T) {
	src := "DECLARE x:INTEGER\nx<-2\nCASE OF x\n1: OUTPUT \"one\"\n2: OUTPUT \"two\"\nOTHERWISE: OUTPUT \"other\"\nENDCASE\n"
	out, err := run(t, src, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "two\n" {
		t.Fatalf("want \"two\\n\", got %q", out)
	}
}

func TestRun_caseOfFallsThroughToOtherwise(t *testing.T) {
	src := "DECLARE x:INTEGER\nx<-9\nCASE OF x\n1: OUTPUT \"one\"\nOTHERWISE: OUTPUT \"other\"\nENDCASE\n"
	out, err := run(t, src, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "other\n" {
		t.Fatalf("want \"other\\n\", got %q", out)
	}
}

func TestRun_inputDefinesFreshMutableString(t *testing.T) {
	out, err := run(t, "INPUT s\nOUTPUT s\n", "hello\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "hello\n" {
		t.Fatalf("want \"hello\\n\", got %q", out)
	}
}

func TestRun_outputRoundTripsMultipleArgsSpaceJoined(t *testing.T) {
	out, err := run(t, "OUTPUT \"x=\", 1+1\n", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "x= 2\n" {
		t.Fatalf("want \"x= 2\\n\", got %q", out)
	}
}

func TestRun_castStringToIntegerFailureIsRuntimeError(t *testing.T) {
	_, err := run(t, "OUTPUT INTEGER(\"nope\")\n", "")
	if k := runtimeKind(t, err); k != errors.CastError {
		t.Fatalf("want CastError, got %s", k)
	}
}

func TestRun_lengthOfString(t *testing.T) {
	out, err := run(t, "OUTPUT LENGTH(\"hello\")\n", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "5\n" {
		t.Fatalf("want \"5\\n\", got %q", out)
	}
}

func TestRun_returnOutsideFunctionIsRuntimeError(t *testing.T) {
	_, err := run(t, "RETURN 1\n", "")
	if k := runtimeKind(t, err); k != errors.ReturnOutsideFunction {
		t.Fatalf("want ReturnOutsideFunction, got %s", k)
	}
}

func TestDiagnostic_formatsFileLineAndSource(t *testing.T) {
	src := "OUTPUT y\n"
	_, err := run(t, src, "")
	if err == nil {
		t.Fatal("expected error")
	}
	eval := New("test.pseudo", src, NewIOPort(strings.NewReader(""), &bytes.Buffer{}))
	diag := eval.Diagnostic(err)
	if !strings.Contains(diag, "test.pseudo:1") || !strings.Contains(diag, "OUTPUT y") {
		t.Fatalf("diagnostic missing file:line or source context: %q", diag)
	}
}
