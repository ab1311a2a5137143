// Package parser builds an *ast.Program from a token stream using
// recursive descent with a small precedence-climbing expression parser.
// A syntax error is recorded and parsing resynchronizes at the next
// NEWLINE so the caller can report every error found in one pass.
package parser

import (
	"fmt"

	"github.com/jeff-160/Pseudocode-Interpreter/internal/ast"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/errors"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/lexer"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/token"
)

// Parser consumes tokens from a Lexer and produces an ast.Program.
type Parser struct {
	lex    *lexer.Lexer
	cur    token.Token
	peek   token.Token
	errors []*errors.ParseError
}

// New creates a Parser reading from lex.
func New(lex *lexer.Lexer) *Parser {
	p := &Parser{lex: lex}
	p.advance()
	p.advance()
	return p
}

// Errors returns every syntax error collected during ParseProgram.
func (p *Parser) Errors() []*errors.ParseError { return p.errors }

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

func (p *Parser) curIs(t token.Type) bool  { return p.cur.Type == t }
func (p *Parser) peekIs(t token.Type) bool { return p.peek.Type == t }

func (p *Parser) expect(t token.Type) (token.Token, bool) {
	if !p.curIs(t) {
		p.errorf("expected %s, got %s %q", t, p.cur.Type, p.cur.Literal)
		return token.Token{}, false
	}
	tok := p.cur
	p.advance()
	return tok, true
}

func (p *Parser) errorf(format string, args ...any) {
	p.errors = append(p.errors, &errors.ParseError{
		Message: fmt.Sprintf(format, args...),
		Pos:     p.cur.Pos,
	})
}

// skipNewlines consumes zero or more NEWLINE tokens.
func (p *Parser) skipNewlines() {
	for p.curIs(token.NEWLINE) {
		p.advance()
	}
}

// synchronize advances past tokens until the next NEWLINE or EOF, so one
// syntax error doesn't cascade into spurious follow-on errors.
func (p *Parser) synchronize() {
	for !p.curIs(token.NEWLINE) && !p.curIs(token.EOF) {
		p.advance()
	}
}

// ParseProgram parses the whole token stream into an ast.Program. Parse
// errors are accumulated in p.Errors() rather than aborting immediately,
// so one bad statement doesn't prevent reporting errors in the rest of the file.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	p.skipNewlines()

	for !p.curIs(token.EOF) {
		before := len(p.errors)
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		if len(p.errors) > before {
			p.synchronize()
		}
		p.skipNewlines()
	}

	return prog
}
