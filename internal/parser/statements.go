package parser

import (
	"github.com/jeff-160/Pseudocode-Interpreter/internal/ast"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/token"
)

// parseStatement parses one statement, dispatching on the leading token.
// It returns nil (with an error recorded) if the current token cannot
// start a statement.
func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Type {
	case token.DECLARE:
		return p.parseDecl()
	case token.CONSTANT:
		return p.parseConst()
	case token.OUTPUT:
		return p.parseOutput()
	case token.INPUT:
		return p.parseInput()
	case token.IF:
		return p.parseConditional()
	case token.CASE:
		return p.parseSwitch()
	case token.WHILE:
		return p.parseWhile()
	case token.REPEAT:
		return p.parseRepeat()
	case token.FOR:
		return p.parseFor()
	case token.PROCEDURE:
		return p.parseProcedureDecl()
	case token.FUNCTION:
		return p.parseFunctionDecl()
	case token.CALL:
		return p.parseCallProc()
	case token.RETURN:
		return p.parseReturn()
	case token.IDENT:
		return p.parseIdentStatement()
	default:
		p.errorf("unexpected token %s %q", p.cur.Type, p.cur.Literal)
		p.advance()
		return nil
	}
}

// parseBlock parses statements until the current token is one of
// terminators (left unconsumed) or EOF.
func (p *Parser) parseBlock(terminators ...token.Type) []ast.Statement {
	var stmts []ast.Statement
	p.skipNewlines()

	for !p.atAny(terminators) && !p.curIs(token.EOF) {
		before := len(p.errors)
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}

		switch {
		case len(p.errors) > before:
			p.synchronize()
		case !p.curIs(token.NEWLINE) && !p.atAny(terminators):
			p.errorf("expected end of line, got %s %q", p.cur.Type, p.cur.Literal)
			p.synchronize()
		}
		p.skipNewlines()
	}
	return stmts
}

func (p *Parser) atAny(types []token.Type) bool {
	for _, t := range types {
		if p.curIs(t) {
			return true
		}
	}
	return false
}

// parseIdentStatement parses an assignment, an indexed assignment, or a
// bare function call used for its side effect, all of which begin with an
// identifier.
func (p *Parser) parseIdentStatement() ast.Statement {
	nameTok := p.cur
	line := nameTok.Pos.Line
	p.advance()

	switch {
	case p.curIs(token.ASSIGN):
		p.advance()
		val := p.parseExpr(LOWEST)
		return ast.NewAssignStmt(line, nameTok.Literal, val)
	case p.curIs(token.LBRACKET):
		p.advance()
		indices := []ast.Expression{p.parseExpr(LOWEST)}
		if p.curIs(token.COMMA) {
			p.advance()
			indices = append(indices, p.parseExpr(LOWEST))
		}
		p.expect(token.RBRACKET)
		p.expect(token.ASSIGN)
		val := p.parseExpr(LOWEST)
		return ast.NewIndexAssignStmt(line, nameTok.Literal, indices, val)
	case p.curIs(token.LPAREN):
		p.advance()
		args := p.parseArgList(token.RPAREN)
		return ast.NewExprStmt(line, ast.NewCallExpr(line, nameTok.Literal, args))
	default:
		p.errorf("expected assignment or call after identifier %q, got %s %q", nameTok.Literal, p.cur.Type, p.cur.Literal)
		return nil
	}
}

func (p *Parser) parseArgList(end token.Type) []ast.Expression {
	if p.curIs(end) {
		p.advance()
		return nil
	}
	args := []ast.Expression{p.parseExpr(LOWEST)}
	for p.curIs(token.COMMA) {
		p.advance()
		args = append(args, p.parseExpr(LOWEST))
	}
	p.expect(end)
	return args
}

func (p *Parser) parseDecl() ast.Statement {
	line := p.cur.Pos.Line
	p.advance() // DECLARE
	nameTok, ok := p.expect(token.IDENT)
	if !ok {
		return nil
	}
	p.expect(token.COLON)

	if p.curIs(token.ARRAY) {
		bounds := p.parseArrayBounds()
		return ast.NewDeclStmt(line, nameTok.Literal, "", bounds)
	}
	typeTok, ok := p.expect(token.IDENT)
	if !ok {
		return nil
	}
	return ast.NewDeclStmt(line, nameTok.Literal, typeTok.Literal, nil)
}

func (p *Parser) parseArrayBounds() *ast.ArrayBounds {
	p.advance() // ARRAY
	p.expect(token.LBRACKET)

	lower1 := p.parseExpr(LOWEST)
	p.expect(token.COLON)
	upper1 := p.parseExpr(LOWEST)
	bounds := &ast.ArrayBounds{Lower1: lower1, Upper1: upper1}

	if p.curIs(token.COMMA) {
		p.advance()
		lower2 := p.parseExpr(LOWEST)
		p.expect(token.COLON)
		upper2 := p.parseExpr(LOWEST)
		bounds.Lower2, bounds.Upper2, bounds.TwoD = lower2, upper2, true
	}

	p.expect(token.RBRACKET)
	p.expect(token.OF)
	elemTok, _ := p.expect(token.IDENT)
	bounds.ElemType = elemTok.Literal
	return bounds
}

func (p *Parser) parseConst() ast.Statement {
	line := p.cur.Pos.Line
	p.advance() // CONSTANT
	nameTok, ok := p.expect(token.IDENT)
	if !ok {
		return nil
	}
	p.expect(token.EQ)
	val := p.parseExpr(LOWEST)
	return ast.NewConstStmt(line, nameTok.Literal, val)
}

func (p *Parser) parseOutput() ast.Statement {
	line := p.cur.Pos.Line
	p.advance() // OUTPUT
	args := []ast.Expression{p.parseExpr(LOWEST)}
	for p.curIs(token.COMMA) {
		p.advance()
		args = append(args, p.parseExpr(LOWEST))
	}
	return ast.NewOutputStmt(line, args)
}

func (p *Parser) parseInput() ast.Statement {
	line := p.cur.Pos.Line
	p.advance() // INPUT
	nameTok, ok := p.expect(token.IDENT)
	if !ok {
		return nil
	}
	return ast.NewInputStmt(line, nameTok.Literal)
}

func (p *Parser) parseCallProc() ast.Statement {
	line := p.cur.Pos.Line
	p.advance() // CALL
	nameTok, ok := p.expect(token.IDENT)
	if !ok {
		return nil
	}
	var args []ast.Expression
	if p.curIs(token.LPAREN) {
		p.advance()
		args = p.parseArgList(token.RPAREN)
	}
	return ast.NewCallProcStmt(line, nameTok.Literal, args)
}

func (p *Parser) parseReturn() ast.Statement {
	line := p.cur.Pos.Line
	p.advance() // RETURN
	return ast.NewReturnStmt(line, p.parseExpr(LOWEST))
}
