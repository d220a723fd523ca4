// Package parser implements the single-pass recursive-descent parser for
// Lambda Photon. It consumes a lexer.TokenStream and produces a single
// ast.Program owning all its children. The grammar has no error recovery:
// missing punctuation is silently tolerated rather than reported, matching
// the lenient shape described for this surface language. The only
// backtracking the parser ever performs is the single one-token rewind used
// to disambiguate the `@parallel for` annotation from a `@builtin(...)`
// expression that happens to start with the identifier "parallel".
package parser

import (
	"github.com/lambdaphoton/lp/internal/ast"
	"github.com/lambdaphoton/lp/internal/lexer"
)

// Parser walks a token stream by index, never re-lexing and never
// allocating more than the single rewind slot its grammar requires.
type Parser struct {
	toks *lexer.TokenStream
	pos  int
}

// Parse runs the parser to completion over toks and returns the resulting
// Program.
func Parse(toks *lexer.TokenStream) *ast.Program {
	p := &Parser{toks: toks}
	var stmts []ast.Node
	for p.cur().Type != lexer.EOF {
		stmts = append(stmts, p.parseStatement())
	}
	return ast.NewProgram(stmts)
}

func (p *Parser) cur() lexer.Token {
	return p.toks.At(p.pos)
}

// advance consumes and returns the current token. It never reads past the
// stream's terminator.
func (p *Parser) advance() lexer.Token {
	tok := p.toks.At(p.pos)
	if p.pos < p.toks.Len()-1 {
		p.pos++
	}
	return tok
}

// rewind steps back n tokens. The grammar only ever calls this with n=1,
// for the @parallel-for lookahead.
func (p *Parser) rewind(n int) {
	p.pos -= n
	if p.pos < 0 {
		p.pos = 0
	}
}

// expect consumes the current token if it has type tt and reports whether
// it did. A mismatch is silently tolerated: the token is left in place and
// parsing continues, per the grammar's documented error-recovery posture.
func (p *Parser) expect(tt lexer.TokenType) bool {
	if p.cur().Type == tt {
		p.advance()
		return true
	}
	return false
}
