// Package evaluator is the tree-walking core of the interpreter: the
// expression evaluator and statement executor. It type-checks, dispatches,
// and executes a parsed ast.Program directly against a lexically scoped
// environment, with no intermediate bytecode.
package evaluator

import (
	"bufio"
	"io"

	"github.com/jeff-160/Pseudocode-Interpreter/internal/ast"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/errors"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/scope"
)

// IOPort decouples the evaluator from concrete I/O: it never touches
// os.Stdin/os.Stdout directly, so tests can inject deterministic streams.
type IOPort struct {
	In  *bufio.Reader
	Out io.Writer
}

// NewIOPort wraps an io.Reader/io.Writer pair as an IOPort.
func NewIOPort(in io.Reader, out io.Writer) *IOPort {
	return &IOPort{In: bufio.NewReader(in), Out: out}
}

// Evaluator owns the scope stack, the call-kind stack, and the I/O port
// for one program run. It is not safe for concurrent use: the evaluator
// is single-threaded and synchronous.
type Evaluator struct {
	scope       *scope.Stack
	io          *IOPort
	callStack   []callKind
	file        string
	source      string
	noNewlines  bool
	trace       func(line int, text string)
}

// Option configures an Evaluator at construction time.
type Option func(*Evaluator)

// WithNoNewlines suppresses the automatic newline OUTPUT would otherwise
// emit (the CLI's --no-newlines flag).
func WithNoNewlines() Option {
	return func(e *Evaluator) { e.noNewlines = true }
}

// WithTrace installs a callback invoked once per top-level statement
// executed, with its source line and a short description; used by the
// CLI's --trace flag.
func WithTrace(fn func(line int, text string)) Option {
	return func(e *Evaluator) { e.trace = fn }
}

// New creates an Evaluator bound to file/source (used for diagnostics) and
// the given I/O port.
func New(file, source string, port *IOPort, opts ...Option) *Evaluator {
	e := &Evaluator{
		scope:  scope.New(),
		io:     port,
		file:   file,
		source: source,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes every top-level statement of program in source order;
// statement execution is strictly sequential. The first error
// encountered aborts the run; there is no partial continuation after an
// error.
func (e *Evaluator) Run(program *ast.Program) error {
	for _, stmt := range program.Statements {
		if e.trace != nil {
			e.trace(stmt.Line(), traceLabel(stmt))
		}
		if _, err := e.exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Diagnostic formats err (a *errors.RuntimeError or *errors.ParseError) as
// a file:line diagnostic. Any other error is returned unformatted via its
// own Error() text.
func (e *Evaluator) Diagnostic(err error) string {
	switch v := err.(type) {
	case *errors.RuntimeError:
		return errors.FormatRuntimeError(e.file, e.source, v)
	case *errors.ParseError:
		return errors.Format(e.file, e.source, v.Pos.Line, v.Message)
	default:
		return err.Error()
	}
}

func traceLabel(stmt ast.Statement) string {
	switch stmt.(type) {
	case *ast.DeclStmt:
		return "DECLARE"
	case *ast.ConstStmt:
		return "CONSTANT"
	case *ast.AssignStmt:
		return "assignment"
	case *ast.IndexAssignStmt:
		return "indexed assignment"
	case *ast.OutputStmt:
		return "OUTPUT"
	case *ast.InputStmt:
		return "INPUT"
	case *ast.ConditionalStmt:
		return "IF"
	case *ast.SwitchStmt:
		return "CASE OF"
	case *ast.WhileStmt:
		return "WHILE"
	case *ast.RepeatStmt:
		return "REPEAT"
	case *ast.ForStmt:
		return "FOR"
	case *ast.ProcedureDecl:
		return "PROCEDURE"
	case *ast.FunctionDecl:
		return "FUNCTION"
	case *ast.CallProcStmt:
		return "CALL"
	case *ast.ExprStmt:
		return "call"
	case *ast.ReturnStmt:
		return "RETURN"
	default:
		return "statement"
	}
}
