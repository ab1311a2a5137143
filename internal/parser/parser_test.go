package parser

import (
	"testing"

	"github.com/jeff-160/Pseudocode-Interpreter/internal/ast"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/lexer"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := New(lexer.New(src))
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, errs)
	}
	return prog
}

func TestParseProgram_declareScalar(t *testing.T) {
	prog := parseProgram(t, "DECLARE x:INTEGER\n")
	if len(prog.Statements) != 1 {
		t.Fatalf("want 1 statement, got %d", len(prog.Statements))
	}
	decl, ok := prog.Statements[0].(*ast.DeclStmt)
	if !ok {
		t.Fatalf("want *ast.DeclStmt, got %T", prog.Statements[0])
	}
	if decl.Name != "x" || decl.Type != "INTEGER" || decl.IsArray {
		t.Fatalf("unexpected decl: %+v", decl)
	}
}

func TestParseProgram_declareArray2D(t *testing.T) {
	prog := parseProgram(t, "DECLARE grid:ARRAY[1:3,1:4] OF INTEGER\n")
	decl := prog.Statements[0].(*ast.DeclStmt)
	if !decl.IsArray || !decl.Array.TwoD || decl.Array.ElemType != "INTEGER" {
		t.Fatalf("unexpected array decl: %+v", decl.Array)
	}
}

func TestParseProgram_assignmentAndArithmeticPrecedence(t *testing.T) {
	prog := parseProgram(t, "x <- 1 + 2 * 3\n")
	assign := prog.Statements[0].(*ast.AssignStmt)
	bin, ok := assign.Value.(*ast.BinaryExpr)
	if !ok || bin.Op != ast.Add {
		t.Fatalf("want top-level Add, got %#v", assign.Value)
	}
	rhs, ok := bin.Right.(*ast.BinaryExpr)
	if !ok || rhs.Op != ast.Mul {
		t.Fatalf("want Mul to bind tighter than Add, got %#v", bin.Right)
	}
}

func TestParseProgram_indexAssignment2D(t *testing.T) {
	prog := parseProgram(t, "grid[1,2] <- 5\n")
	stmt := prog.Statements[0].(*ast.IndexAssignStmt)
	if stmt.Name != "grid" || len(stmt.Indices) != 2 {
		t.Fatalf("unexpected index assign: %+v", stmt)
	}
}

func TestParseProgram_conditionalWithElseIfAndElse(t *testing.T) {
	src := "IF x > 0 THEN\nOUTPUT 1\nELSE IF x < 0 THEN\nOUTPUT 2\nELSE\nOUTPUT 3\nENDIF\n"
	prog := parseProgram(t, src)
	cond := prog.Statements[0].(*ast.ConditionalStmt)
	if len(cond.Branches) != 2 {
		t.Fatalf("want 2 branches (IF + ELSE IF), got %d", len(cond.Branches))
	}
	if len(cond.ElseBody) != 1 {
		t.Fatalf("want 1 ELSE statement, got %d", len(cond.ElseBody))
	}
}

func TestParseProgram_whileLoop(t *testing.T) {
	prog := parseProgram(t, "WHILE x < 10 DO\nx <- x + 1\nENDWHILE\n")
	stmt := prog.Statements[0].(*ast.WhileStmt)
	if len(stmt.Body) != 1 {
		t.Fatalf("want 1 body statement, got %d", len(stmt.Body))
	}
}

func TestParseProgram_repeatUntil(t *testing.T) {
	prog := parseProgram(t, "REPEAT\nx <- x + 1\nUNTIL x = 10\n")
	stmt := prog.Statements[0].(*ast.RepeatStmt)
	if stmt.Cond == nil {
		t.Fatal("expected repeat condition")
	}
}

func TestParseProgram_forLoopWithStep(t *testing.T) {
	prog := parseProgram(t, "FOR i <- 10 TO 1 STEP -1\nOUTPUT i\nNEXT i\n")
	stmt := prog.Statements[0].(*ast.ForStmt)
	if stmt.Iterator != "i" || stmt.Step == nil {
		t.Fatalf("unexpected for stmt: %+v", stmt)
	}
}

func TestParseProgram_caseOf(t *testing.T) {
	src := "CASE OF x\n1: OUTPUT \"one\"\n2: OUTPUT \"two\"\nOTHERWISE: OUTPUT \"other\"\nENDCASE\n"
	prog := parseProgram(t, src)
	stmt := prog.Statements[0].(*ast.SwitchStmt)
	if stmt.Subject != "x" || len(stmt.Cases) != 2 || len(stmt.Otherwise) != 1 {
		t.Fatalf("unexpected switch: %+v", stmt)
	}
}

func TestParseProgram_procedureAndCall(t *testing.T) {
	src := "PROCEDURE greet(name:STRING)\nOUTPUT name\nENDPROCEDURE\nCALL greet(\"hi\")\n"
	prog := parseProgram(t, src)
	proc := prog.Statements[0].(*ast.ProcedureDecl)
	if proc.Name != "greet" || len(proc.Params) != 1 || proc.Params[0].Type.Name != "STRING" {
		t.Fatalf("unexpected procedure: %+v", proc)
	}
	call := prog.Statements[1].(*ast.CallProcStmt)
	if call.Name != "greet" || len(call.Args) != 1 {
		t.Fatalf("unexpected call: %+v", call)
	}
}

func TestParseProgram_functionWithArrayParam(t *testing.T) {
	src := "FUNCTION total(xs:ARRAY OF INTEGER) RETURNS INTEGER\nRETURN 0\nENDFUNCTION\n"
	prog := parseProgram(t, src)
	fn := prog.Statements[0].(*ast.FunctionDecl)
	if fn.ReturnType.Name != "INTEGER" || !fn.Params[0].Type.IsArray() {
		t.Fatalf("unexpected function: %+v", fn)
	}
}

func TestParseProgram_castVsFunctionCall(t *testing.T) {
	prog := parseProgram(t, "x <- INTEGER(y)\nz <- area(w)\n")
	cast, ok := prog.Statements[0].(*ast.AssignStmt).Value.(*ast.CastExpr)
	if !ok || cast.TargetType != "INTEGER" {
		t.Fatalf("want CastExpr, got %#v", prog.Statements[0].(*ast.AssignStmt).Value)
	}
	call, ok := prog.Statements[1].(*ast.AssignStmt).Value.(*ast.CallExpr)
	if !ok || call.Name != "area" {
		t.Fatalf("want CallExpr, got %#v", prog.Statements[1].(*ast.AssignStmt).Value)
	}
}

func TestParseProgram_lengthBuiltin(t *testing.T) {
	prog := parseProgram(t, "x <- LENGTH(s)\n")
	expr := prog.Statements[0].(*ast.AssignStmt).Value
	if _, ok := expr.(*ast.LengthExpr); !ok {
		t.Fatalf("want LengthExpr, got %#v", expr)
	}
}

func TestParseProgram_unaryMinusBindsTighterThanProduct(t *testing.T) {
	prog := parseProgram(t, "x <- -2 * 3\n")
	bin := prog.Statements[0].(*ast.AssignStmt).Value.(*ast.BinaryExpr)
	if bin.Op != ast.Mul {
		t.Fatalf("want Mul at top level, got %v", bin.Op)
	}
	if _, ok := bin.Left.(*ast.NegExpr); !ok {
		t.Fatalf("want NegExpr on the left, got %#v", bin.Left)
	}
}

func TestErrors_reportsUnexpectedToken(t *testing.T) {
	p := New(lexer.New("DECLARE :INTEGER\n"))
	p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatal("expected a parse error for a missing identifier")
	}
}

func TestErrors_resynchronizesAfterError(t *testing.T) {
	p := New(lexer.New("DECLARE :INTEGER\nDECLARE y:INTEGER\n"))
	prog := p.ParseProgram()
	if len(p.Errors()) != 1 {
		t.Fatalf("want exactly 1 error, got %d: %v", len(p.Errors()), p.Errors())
	}
	if len(prog.Statements) != 1 {
		t.Fatalf("want the second DECLARE to still parse, got %d statements", len(prog.Statements))
	}
}
