package lexer

import "testing"

func TestLookupIdentKnownKeywords(t *testing.T) {
	cases := map[string]TokenType{
		"i8": I8, "u64": U64, "f32": F32, "str": STR, "ptr": PTR, "void": VOID,
		"let": LET, "for": FOR, "in": IN, "async": ASYNC, "await": AWAIT,
		"gpu": GPU, "kernel": KERNEL,
	}
	for lexeme, want := range cases {
		if got := LookupIdent(lexeme); got != want {
			t.Fatalf("LookupIdent(%q) = %s, want %s", lexeme, got, want)
		}
	}
}

func TestLookupIdentNonKeyword(t *testing.T) {
	if got := LookupIdent("printf"); got != IDENT {
		t.Fatalf("LookupIdent(\"printf\") = %s, want IDENT", got)
	}
}

func TestTokenTypeString(t *testing.T) {
	if PLUS.String() != "+" {
		t.Fatalf("PLUS.String() = %q, want %q", PLUS.String(), "+")
	}
}
