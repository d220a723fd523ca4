package lexer

import "testing"

func TestLexSmallProgram(t *testing.T) {
	src := `let x: i32 = 7; @print(x);`

	want := []TokenType{
		LET, IDENT, COLON, I32, ASSIGN, INT, SEMI,
		AT, IDENT, LPAREN, IDENT, RPAREN, SEMI, EOF,
	}

	toks := Lex(src)
	if toks.Len() != len(want) {
		t.Fatalf("got %d tokens, want %d", toks.Len(), len(want))
	}
	for i, w := range want {
		if toks.At(i).Type != w {
			t.Fatalf("token %d: got %s, want %s", i, toks.At(i).Type, w)
		}
	}
}

func TestLexForLoopWithAnnotation(t *testing.T) {
	src := `@parallel for i in 0..4 { @print(i*i); };`

	want := []TokenType{
		AT, IDENT, FOR, IDENT, IN, INT, DOTDOT, INT, LBRACE,
		AT, IDENT, LPAREN, IDENT, STAR, IDENT, RPAREN, SEMI, RBRACE, SEMI, EOF,
	}

	toks := Lex(src)
	if toks.Len() != len(want) {
		t.Fatalf("got %d tokens, want %d", toks.Len(), len(want))
	}
	for i, w := range want {
		if toks.At(i).Type != w {
			t.Fatalf("token %d: got %s, want %s", i, toks.At(i).Type, w)
		}
	}
}

func TestIdempotentRelexing(t *testing.T) {
	// Invariant 1 of spec §8: lexing the same source twice yields the same
	// token kinds and positions.
	src := "let x = 1 ? 10 : 20; @print(x);"
	a := Lex(src)
	b := Lex(src)
	if a.Len() != b.Len() {
		t.Fatalf("lengths differ: %d vs %d", a.Len(), b.Len())
	}
	for i := 0; i < a.Len(); i++ {
		ta, tb := a.At(i), b.At(i)
		if ta.Type != tb.Type || ta.Pos != tb.Pos {
			t.Fatalf("token %d differs: %v vs %v", i, ta, tb)
		}
	}
}
