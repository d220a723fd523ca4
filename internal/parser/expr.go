package parser

import (
	"github.com/lambdaphoton/lp/internal/ast"
	"github.com/lambdaphoton/lp/internal/lexer"
)

// parseExpression enters the precedence ladder at its lowest level.
func (p *Parser) parseExpression() ast.Node {
	return p.parseTernary()
}

// parseTernary is `logical_or ( '?' expression ':' ternary )?`. The else
// branch recurses into parseTernary rather than parseExpression so that a
// chain of ternaries associates to the right.
func (p *Parser) parseTernary() ast.Node {
	cond := p.parseLogicalOr()
	if p.cur().Type != lexer.QUESTION {
		return cond
	}
	pos := p.cur().Pos
	p.advance()
	then := p.parseExpression()
	p.expect(lexer.COLON)
	els := p.parseTernary()
	return ast.NewTernary(pos, cond, then, els)
}

func (p *Parser) parseLogicalOr() ast.Node {
	left := p.parseLogicalAnd()
	for p.cur().Type == lexer.OROR {
		pos, op := p.cur().Pos, p.cur().Type
		p.advance()
		right := p.parseLogicalAnd()
		left = ast.NewBinary(pos, op, left, right)
	}
	return left
}

func (p *Parser) parseLogicalAnd() ast.Node {
	left := p.parseEquality()
	for p.cur().Type == lexer.ANDAND {
		pos, op := p.cur().Pos, p.cur().Type
		p.advance()
		right := p.parseEquality()
		left = ast.NewBinary(pos, op, left, right)
	}
	return left
}

func (p *Parser) parseEquality() ast.Node {
	left := p.parseComparison()
	for p.cur().Type == lexer.EQ || p.cur().Type == lexer.NEQ {
		pos, op := p.cur().Pos, p.cur().Type
		p.advance()
		right := p.parseComparison()
		left = ast.NewBinary(pos, op, left, right)
	}
	return left
}

func (p *Parser) parseComparison() ast.Node {
	left := p.parseTerm()
	for p.cur().Type == lexer.LT || p.cur().Type == lexer.GT ||
		p.cur().Type == lexer.LE || p.cur().Type == lexer.GE {
		pos, op := p.cur().Pos, p.cur().Type
		p.advance()
		right := p.parseTerm()
		left = ast.NewBinary(pos, op, left, right)
	}
	return left
}

func (p *Parser) parseTerm() ast.Node {
	left := p.parseFactor()
	for p.cur().Type == lexer.PLUS || p.cur().Type == lexer.MINUS {
		pos, op := p.cur().Pos, p.cur().Type
		p.advance()
		right := p.parseFactor()
		left = ast.NewBinary(pos, op, left, right)
	}
	return left
}

func (p *Parser) parseFactor() ast.Node {
	left := p.parseUnary()
	for p.cur().Type == lexer.STAR || p.cur().Type == lexer.SLASH || p.cur().Type == lexer.PERCENT {
		pos, op := p.cur().Pos, p.cur().Type
		p.advance()
		right := p.parseUnary()
		left = ast.NewBinary(pos, op, left, right)
	}
	return left
}

func (p *Parser) parseUnary() ast.Node {
	if p.cur().Type == lexer.MINUS || p.cur().Type == lexer.BANG {
		pos, op := p.cur().Pos, p.cur().Type
		p.advance()
		operand := p.parseUnary()
		return ast.NewUnary(pos, op, operand)
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() ast.Node {
	expr := p.parsePrimary()
	for p.cur().Type == lexer.LBRACK {
		pos := p.cur().Pos
		p.advance()
		idx := p.parseExpression()
		p.expect(lexer.RBRACK)
		expr = ast.NewIndex(pos, expr, idx)
	}
	return expr
}

func (p *Parser) parsePrimary() ast.Node {
	tok := p.cur()
	switch tok.Type {
	case lexer.INT:
		p.advance()
		return ast.NewIntLit(tok.Pos, tok.IntVal)
	case lexer.FLOAT:
		p.advance()
		return ast.NewFloatLit(tok.Pos, tok.FloatVal)
	case lexer.STRING:
		p.advance()
		return ast.NewStringLit(tok.Pos, []byte(tok.Lexeme))
	case lexer.IDENT:
		p.advance()
		return ast.NewIdent(tok.Pos, tok.Lexeme)
	case lexer.LPAREN:
		p.advance()
		expr := p.parseExpression()
		p.expect(lexer.RPAREN)
		return expr
	case lexer.LBRACK:
		return p.parseArrayLit()
	case lexer.AT:
		pos := tok.Pos
		p.advance()
		return p.parseBuiltinAt(pos)
	case lexer.BACKSLASH:
		return p.parseLambda()
	default:
		// No valid primary starts here. The grammar performs no error
		// recovery, so advance past the offending token and yield a
		// placeholder rather than looping forever.
		p.advance()
		return ast.NewIntLit(tok.Pos, 0)
	}
}

func (p *Parser) parseArrayLit() ast.Node {
	pos := p.cur().Pos
	p.expect(lexer.LBRACK)
	var elems []ast.Node
	if p.cur().Type != lexer.RBRACK {
		elems = append(elems, p.parseExpression())
		for p.cur().Type == lexer.COMMA {
			p.advance()
			elems = append(elems, p.parseExpression())
		}
	}
	p.expect(lexer.RBRACK)
	return ast.NewArray(pos, elems)
}

// parseBuiltinAt parses `IDENT ( '(' args ')' )?` assuming the leading '@'
// has already been consumed at pos.
func (p *Parser) parseBuiltinAt(pos lexer.Position) ast.Node {
	name := ""
	if p.cur().Type == lexer.IDENT {
		name = p.cur().Lexeme
		p.advance()
	}
	var args []ast.Node
	if p.cur().Type == lexer.LPAREN {
		p.advance()
		if p.cur().Type != lexer.RPAREN {
			args = append(args, p.parseExpression())
			for p.cur().Type == lexer.COMMA {
				p.advance()
				args = append(args, p.parseExpression())
			}
		}
		p.expect(lexer.RPAREN)
	}
	return ast.NewBuiltin(pos, name, args)
}

func (p *Parser) parseLambda() ast.Node {
	pos := p.cur().Pos
	p.expect(lexer.BACKSLASH)
	var params []string
	for p.cur().Type == lexer.IDENT {
		params = append(params, p.cur().Lexeme)
		p.advance()
	}
	p.expect(lexer.ARROW)
	body := p.parseExpression()
	return ast.NewLambda(pos, params, body)
}
