// Package pseudo is the embeddable public facade over the interpreter:
// callers that want to run pseudocode from Go code (rather than the
// pseudo CLI) use Engine instead of reaching into internal/.
package pseudo

import (
	"io"

	"github.com/jeff-160/Pseudocode-Interpreter/internal/ast"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/errors"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/evaluator"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/lexer"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/parser"
)

// Engine parses and runs pseudocode source against a caller-supplied I/O
// port.
type Engine struct {
	file string
	in   io.Reader
	out  io.Writer
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithIO overrides the engine's input/output streams; the zero Engine
// reads nothing and discards output.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(e *Engine) { e.in, e.out = in, out }
}

// WithFileName sets the name reported in diagnostics; default "<source>".
func WithFileName(name string) Option {
	return func(e *Engine) { e.file = name }
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{file: "<source>"}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Parse lexes and parses source into an ast.Program, returning every
// syntax error collected.
func (e *Engine) Parse(source string) (*ast.Program, []*errors.ParseError) {
	lex := lexer.New(source)
	p := parser.New(lex)
	return p.ParseProgram(), p.Errors()
}

// Run parses and executes source, returning a formatted diagnostic string
// if parsing or evaluation failed.
func (e *Engine) Run(source string) error {
	program, perrs := e.Parse(source)
	if len(perrs) > 0 {
		return &formattedError{errors.FormatParseErrors(e.file, source, perrs)}
	}

	port := evaluator.NewIOPort(nonNilReader(e.in), nonNilWriter(e.out))
	eval := evaluator.New(e.file, source, port)
	if err := eval.Run(program); err != nil {
		return &formattedError{eval.Diagnostic(err)}
	}
	return nil
}

type formattedError struct{ msg string }

func (e *formattedError) Error() string { return e.msg }

func nonNilReader(r io.Reader) io.Reader {
	if r != nil {
		return r
	}
	return emptyReader{}
}

func nonNilWriter(w io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return io.Discard
}

type emptyReader struct{}

func (emptyReader) Read([]byte) (int, error) { return 0, io.EOF }
