package parser

import (
	"github.com/jeff-160/Pseudocode-Interpreter/internal/ast"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/token"
)

func (p *Parser) parseProcedureDecl() ast.Statement {
	line := p.cur.Pos.Line
	p.advance() // PROCEDURE
	nameTok, ok := p.expect(token.IDENT)
	if !ok {
		return nil
	}
	p.expect(token.LPAREN)
	params := p.parseParamList()
	p.expect(token.RPAREN)
	body := p.parseBlock(token.ENDPROCEDURE)
	p.expect(token.ENDPROCEDURE)
	return ast.NewProcedureDecl(line, nameTok.Literal, params, body)
}

func (p *Parser) parseFunctionDecl() ast.Statement {
	line := p.cur.Pos.Line
	p.advance() // FUNCTION
	nameTok, ok := p.expect(token.IDENT)
	if !ok {
		return nil
	}
	p.expect(token.LPAREN)
	params := p.parseParamList()
	p.expect(token.RPAREN)
	p.expect(token.RETURNS)
	returnType := p.parseParamType()
	body := p.parseBlock(token.ENDFUNCTION)
	p.expect(token.ENDFUNCTION)
	return ast.NewFunctionDecl(line, nameTok.Literal, params, returnType, body)
}

func (p *Parser) parseParamList() []ast.Param {
	var params []ast.Param
	if p.curIs(token.RPAREN) {
		return params
	}
	for {
		nameTok, ok := p.expect(token.IDENT)
		if !ok {
			return params
		}
		p.expect(token.COLON)
		typ := p.parseParamType()
		params = append(params, ast.Param{Name: nameTok.Literal, Type: typ})
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	return params
}

// parseParamType parses a scalar type name or an ARRAY OF <type> descriptor,
// recursing for nested ARRAY OF with no depth limit; parameters carry no
// declared bounds.
func (p *Parser) parseParamType() ast.TypeDesc {
	if p.curIs(token.ARRAY) {
		p.advance()
		p.expect(token.OF)
		inner := p.parseParamType()
		return ast.TypeDesc{Name: "ARRAY", Elem: &inner}
	}
	nameTok, _ := p.expect(token.IDENT)
	return ast.TypeDesc{Name: nameTok.Literal}
}
