package parser

import (
	"strconv"

	"github.com/jeff-160/Pseudocode-Interpreter/internal/ast"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/token"
)

// Operator precedence levels, lowest to highest.
const (
	LOWEST int = iota
	LOGIC_OR
	LOGIC_AND
	EQUALITY
	COMPARE
	SUM
	PRODUCT
	PREFIX
)

var precedences = map[token.Type]int{
	token.OR:     LOGIC_OR,
	token.AND:    LOGIC_AND,
	token.EQ:     EQUALITY,
	token.NEQ:    EQUALITY,
	token.GT:     COMPARE,
	token.LT:     COMPARE,
	token.GTE:    COMPARE,
	token.LTE:    COMPARE,
	token.PLUS:   SUM,
	token.MINUS:  SUM,
	token.STAR:   PRODUCT,
	token.SLASH:  PRODUCT,
	token.MOD:    PRODUCT,
}

var binaryOps = map[token.Type]ast.BinaryOp{
	token.OR:    ast.Or,
	token.AND:   ast.And,
	token.EQ:    ast.Eq,
	token.NEQ:   ast.Neq,
	token.GT:    ast.Gt,
	token.LT:    ast.Lt,
	token.GTE:   ast.Gte,
	token.LTE:   ast.Lte,
	token.PLUS:  ast.Add,
	token.MINUS: ast.Sub,
	token.STAR:  ast.Mul,
	token.SLASH: ast.Div,
	token.MOD:   ast.Mod,
}

// scalarTypeNames are the built-in cast targets `T(x)` recognises; any
// other bare `name(...)` is a function call.
var scalarTypeNames = map[string]bool{
	"INTEGER": true, "REAL": true, "STRING": true, "BOOLEAN": true, "CHAR": true,
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.cur.Type]; ok {
		return prec
	}
	return LOWEST
}

// parseExpr parses an expression via precedence climbing: operators
// binding tighter than minPrec are folded into the left-hand side before
// control returns to the caller.
func (p *Parser) parseExpr(minPrec int) ast.Expression {
	left := p.parsePrefix()
	if left == nil {
		return nil
	}

	for minPrec < p.curPrecedence() {
		op, ok := binaryOps[p.cur.Type]
		if !ok {
			break
		}
		opTok := p.cur
		p.advance()
		right := p.parseExpr(precedences[opTok.Type])
		left = ast.NewBinaryExpr(opTok.Pos.Line, op, left, right)
	}
	return left
}

func (p *Parser) parsePrefix() ast.Expression {
	switch p.cur.Type {
	case token.INT:
		tok := p.cur
		p.advance()
		v, _ := strconv.ParseInt(tok.Literal, 10, 64)
		return ast.NewNumberLit(tok.Pos.Line, float64(v), false)
	case token.REAL:
		tok := p.cur
		p.advance()
		v, _ := strconv.ParseFloat(tok.Literal, 64)
		return ast.NewNumberLit(tok.Pos.Line, v, true)
	case token.STRING:
		tok := p.cur
		p.advance()
		return ast.NewStringLit(tok.Pos.Line, tok.Literal)
	case token.CHAR:
		tok := p.cur
		p.advance()
		r := rune(0)
		if len(tok.Literal) > 0 {
			r = []rune(tok.Literal)[0]
		}
		return ast.NewCharLit(tok.Pos.Line, r)
	case token.TRUE:
		tok := p.cur
		p.advance()
		return ast.NewBoolLit(tok.Pos.Line, true)
	case token.FALSE:
		tok := p.cur
		p.advance()
		return ast.NewBoolLit(tok.Pos.Line, false)
	case token.MINUS:
		tok := p.cur
		p.advance()
		operand := p.parseExpr(PREFIX)
		return ast.NewNegExpr(tok.Pos.Line, operand)
	case token.LPAREN:
		p.advance()
		e := p.parseExpr(LOWEST)
		p.expect(token.RPAREN)
		return e
	case token.LENGTH:
		tok := p.cur
		p.advance()
		p.expect(token.LPAREN)
		operand := p.parseExpr(LOWEST)
		p.expect(token.RPAREN)
		return ast.NewLengthExpr(tok.Pos.Line, operand)
	case token.IDENT:
		return p.parseIdentExpr()
	default:
		p.errorf("unexpected token %s %q in expression", p.cur.Type, p.cur.Literal)
		return nil
	}
}

// parseIdentExpr parses a variable reference, an indexed reference, a
// function call, or a type-name cast, all of which start with IDENT.
func (p *Parser) parseIdentExpr() ast.Expression {
	nameTok := p.cur
	line := nameTok.Pos.Line
	p.advance()

	switch {
	case p.curIs(token.LPAREN):
		p.advance()
		args := p.parseArgList(token.RPAREN)
		if scalarTypeNames[nameTok.Literal] {
			if len(args) != 1 {
				p.errorf("cast %s(...) takes exactly one argument", nameTok.Literal)
				return nil
			}
			return ast.NewCastExpr(line, nameTok.Literal, args[0])
		}
		return ast.NewCallExpr(line, nameTok.Literal, args)
	case p.curIs(token.LBRACKET):
		p.advance()
		indices := []ast.Expression{p.parseExpr(LOWEST)}
		if p.curIs(token.COMMA) {
			p.advance()
			indices = append(indices, p.parseExpr(LOWEST))
		}
		p.expect(token.RBRACKET)
		return ast.NewIndexExpr(line, ast.NewVarExpr(line, nameTok.Literal), indices)
	default:
		return ast.NewVarExpr(line, nameTok.Literal)
	}
}
