package parser

import (
	"github.com/lambdaphoton/lp/internal/ast"
	"github.com/lambdaphoton/lp/internal/lexer"
)

// parseStatement is the entry point for each element of a Block/Program's
// statement list:
//
//	statement := ['@parallel'] for_stmt
//	           | 'let' IDENT (':' type)? '=' expression ';'
//	           | '{' statement* '}'
//	           | expression ';'
func (p *Parser) parseStatement() ast.Node {
	switch p.cur().Type {
	case lexer.AT:
		return p.parseAtStatement()
	case lexer.FOR:
		return p.parseFor(false)
	case lexer.LET:
		return p.parseLet()
	case lexer.LBRACE:
		return p.parseBlockRaw()
	default:
		expr := p.parseExpression()
		p.expect(lexer.SEMI)
		return expr
	}
}

// parseAtStatement resolves the '@' ambiguity: `@parallel for ...` is an
// annotated for-loop, anything else starting with '@' is a Builtin
// expression statement. The identifier "parallel" is read on spec, and put
// back with a single rewind if it turns out not to precede 'for' - the
// parser's only backtracking point.
func (p *Parser) parseAtStatement() ast.Node {
	atPos := p.cur().Pos
	p.advance() // consume '@'

	if p.cur().Type == lexer.IDENT && p.cur().Lexeme == "parallel" {
		p.advance() // consume 'parallel'
		if p.cur().Type == lexer.FOR {
			return p.parseFor(true)
		}
		p.rewind(1) // put 'parallel' back; it was not an annotation
	}

	expr := p.parseBuiltinAt(atPos)
	p.expect(lexer.SEMI)
	return expr
}

// parseFor parses `'for' IDENT 'in' expression '..' expression '{' statement* '}' ';'?`.
// The caller has already decided the parallel flag; the 'for' keyword
// itself is still sitting in front of the cursor.
func (p *Parser) parseFor(parallel bool) ast.Node {
	pos := p.cur().Pos
	p.expect(lexer.FOR)

	name := ""
	if p.cur().Type == lexer.IDENT {
		name = p.cur().Lexeme
		p.advance()
	}

	p.expect(lexer.IN)
	start := p.parseExpression()
	p.expect(lexer.DOTDOT)
	end := p.parseExpression()
	body := p.parseBlockRaw()
	p.expect(lexer.SEMI)

	return ast.NewFor(pos, name, start, end, body, parallel)
}

// parseLet parses `'let' IDENT (':' type)? '=' expression ';'`.
func (p *Parser) parseLet() ast.Node {
	pos := p.cur().Pos
	p.expect(lexer.LET)

	name := ""
	if p.cur().Type == lexer.IDENT {
		name = p.cur().Lexeme
		p.advance()
	}

	let := ast.NewLet(pos, name, nil)
	if p.cur().Type == lexer.COLON {
		p.advance()
		let.Annotation = p.parseTypeAnnotation()
		let.HasAnnotation = true
	}

	p.expect(lexer.ASSIGN)
	let.Init = p.parseExpression()
	p.expect(lexer.SEMI)
	return let
}

// parseBlockRaw parses `'{' statement* '}'`.
func (p *Parser) parseBlockRaw() *ast.Block {
	pos := p.cur().Pos
	p.expect(lexer.LBRACE)

	var stmts []ast.Node
	for p.cur().Type != lexer.RBRACE && p.cur().Type != lexer.EOF {
		stmts = append(stmts, p.parseStatement())
	}
	p.expect(lexer.RBRACE)

	return ast.NewBlock(pos, stmts)
}

// parseTypeAnnotation resolves a type keyword or identifier following ':'.
// An unrecognized spelling falls back to I64 without failing the parse,
// per the grammar's documented fallback.
func (p *Parser) parseTypeAnnotation() ast.Type {
	tok := p.cur()
	switch tok.Type {
	case lexer.I8, lexer.I16, lexer.I32, lexer.I64,
		lexer.U8, lexer.U16, lexer.U32, lexer.U64,
		lexer.F32, lexer.F64, lexer.STR, lexer.PTR, lexer.VOID:
		p.advance()
		return ast.TypeFromKeyword(tok.Lexeme)
	case lexer.IDENT:
		p.advance()
		return ast.TypeFromKeyword(tok.Lexeme)
	default:
		return ast.Type{Kind: ast.I64}
	}
}
