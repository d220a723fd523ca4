package lexer

import "testing"

func TestEmptyInputIsJustEOF(t *testing.T) {
	toks := Lex("")
	if toks.Len() != 1 || toks.At(0).Type != EOF {
		t.Fatalf("Lex(\"\") = %v, want a single EOF", toks)
	}
}

func TestWhitespaceOnlySkipsToEOF(t *testing.T) {
	toks := Lex("  \t\n\r\n  ")
	if toks.Len() != 1 || toks.At(0).Type != EOF {
		t.Fatalf("got %d tokens, want a single EOF", toks.Len())
	}
}

func TestTokenStreamEndsInEOF(t *testing.T) {
	toks := Lex("1 + 1")
	if toks.At(toks.Len() - 1).Type != EOF {
		t.Fatalf("stream did not end in EOF")
	}
	if toks.Failed() {
		t.Fatalf("Failed() = true for valid input")
	}
}
