package parser

import (
	"github.com/jeff-160/Pseudocode-Interpreter/internal/ast"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/token"
)

func (p *Parser) parseConditional() ast.Statement {
	line := p.cur.Pos.Line
	p.advance() // IF
	cond := p.parseExpr(LOWEST)
	p.expect(token.THEN)
	body := p.parseBlock(token.ENDIF, token.ELSE)
	branches := []ast.IfBranch{{Cond: cond, Body: body}}

	var elseBody []ast.Statement
	for p.curIs(token.ELSE) && p.peekIs(token.IF) {
		p.advance() // ELSE
		p.advance() // IF
		c := p.parseExpr(LOWEST)
		p.expect(token.THEN)
		b := p.parseBlock(token.ENDIF, token.ELSE)
		branches = append(branches, ast.IfBranch{Cond: c, Body: b})
	}

	if p.curIs(token.ELSE) {
		p.advance()
		elseBody = p.parseBlock(token.ENDIF)
	}

	p.expect(token.ENDIF)
	return ast.NewConditionalStmt(line, branches, elseBody)
}

// isCaseLabelStart reports whether the current token begins a CASE OF
// branch label: a literal immediately followed by a colon.
func (p *Parser) isCaseLabelStart() bool {
	switch p.cur.Type {
	case token.INT, token.REAL, token.STRING, token.CHAR, token.TRUE, token.FALSE:
		return p.peekIs(token.COLON)
	default:
		return false
	}
}

func (p *Parser) parseSwitch() ast.Statement {
	line := p.cur.Pos.Line
	p.advance() // CASE
	p.expect(token.OF)
	subjTok, ok := p.expect(token.IDENT)
	if !ok {
		return nil
	}
	p.skipNewlines()

	var cases []ast.CaseBranch
	for p.isCaseLabelStart() {
		label := p.parseExpr(LOWEST)
		p.expect(token.COLON)
		stmt := p.parseStatement()
		var body []ast.Statement
		if stmt != nil {
			body = []ast.Statement{stmt}
		}
		cases = append(cases, ast.CaseBranch{Label: label, Body: body})
		p.skipNewlines()
	}

	var otherwise []ast.Statement
	if p.curIs(token.OTHERWISE) {
		p.advance()
		if p.curIs(token.COLON) {
			p.advance()
		}
		stmt := p.parseStatement()
		if stmt != nil {
			otherwise = []ast.Statement{stmt}
		}
		p.skipNewlines()
	}

	p.expect(token.ENDCASE)
	return ast.NewSwitchStmt(line, subjTok.Literal, cases, otherwise)
}

func (p *Parser) parseWhile() ast.Statement {
	line := p.cur.Pos.Line
	p.advance() // WHILE
	cond := p.parseExpr(LOWEST)
	p.expect(token.DO)
	body := p.parseBlock(token.ENDWHILE)
	p.expect(token.ENDWHILE)
	return ast.NewWhileStmt(line, cond, body)
}

func (p *Parser) parseRepeat() ast.Statement {
	line := p.cur.Pos.Line
	p.advance() // REPEAT
	body := p.parseBlock(token.UNTIL)
	p.expect(token.UNTIL)
	cond := p.parseExpr(LOWEST)
	return ast.NewRepeatStmt(line, body, cond)
}

func (p *Parser) parseFor() ast.Statement {
	line := p.cur.Pos.Line
	p.advance() // FOR
	iterTok, ok := p.expect(token.IDENT)
	if !ok {
		return nil
	}
	p.expect(token.ASSIGN)
	start := p.parseExpr(LOWEST)
	p.expect(token.TO)
	end := p.parseExpr(LOWEST)

	var step ast.Expression
	if p.curIs(token.STEP) {
		p.advance()
		step = p.parseExpr(LOWEST)
	}

	body := p.parseBlock(token.NEXT)
	p.expect(token.NEXT)
	if p.curIs(token.IDENT) {
		p.advance() // optional `NEXT i` trailing iterator name
	}
	return ast.NewForStmt(line, iterTok.Literal, start, end, step, body)
}
