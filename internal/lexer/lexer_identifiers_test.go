package lexer

import "testing"

func TestIdentifiers(t *testing.T) {
	input := `x _x foo_bar Bar42`
	want := []string{"x", "_x", "foo_bar", "Bar42"}

	toks := Lex(input)
	for i, w := range want {
		tok := toks.At(i)
		if tok.Type != IDENT {
			t.Fatalf("token %d: type = %s, want IDENT", i, tok.Type)
		}
		if tok.Lexeme != w {
			t.Fatalf("token %d: lexeme = %q, want %q", i, tok.Lexeme, w)
		}
	}
}

func TestTypeKeywords(t *testing.T) {
	input := `i8 i16 i32 i64 u8 u16 u32 u64 f32 f64 str ptr void`
	want := []TokenType{I8, I16, I32, I64, U8, U16, U32, U64, F32, F64, STR, PTR, VOID}

	toks := Lex(input)
	for i, w := range want {
		if toks.At(i).Type != w {
			t.Fatalf("token %d: got %s, want %s", i, toks.At(i).Type, w)
		}
	}
}

func TestControlKeywords(t *testing.T) {
	input := `let for in async await gpu kernel`
	want := []TokenType{LET, FOR, IN, ASYNC, AWAIT, GPU, KERNEL}

	toks := Lex(input)
	for i, w := range want {
		if toks.At(i).Type != w {
			t.Fatalf("token %d: got %s, want %s", i, toks.At(i).Type, w)
		}
	}
}

func TestNoOtherIdentifiersAreReserved(t *testing.T) {
	// A near-miss on a keyword spelling must lex as a plain identifier.
	toks := Lex("lets letx int printer")
	for i := 0; i < 4; i++ {
		if toks.At(i).Type != IDENT {
			t.Fatalf("token %d: got %s, want IDENT", i, toks.At(i).Type)
		}
	}
}
