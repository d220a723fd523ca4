package errors

import (
	"strings"
	"testing"

	"github.com/lambdaphoton/lp/internal/lexer"
)

func TestFormatIncludesSourceLineAndCaret(t *testing.T) {
	src := "let x = 1\nlet y = @\n"
	err := New(KindParseFailed, lexer.Position{Line: 2, Column: 9}, "unexpected token", src, "prog.lp")

	out := err.Format(false)
	if !strings.Contains(out, "prog.lp:2:9") {
		t.Fatalf("Format() missing file:line:col header: %q", out)
	}
	if !strings.Contains(out, "let y = @") {
		t.Fatalf("Format() missing source line: %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Fatalf("Format() missing caret: %q", out)
	}
}

func TestFormatWithoutFileUsesBarePosition(t *testing.T) {
	err := New(KindLexFailed, lexer.Position{Line: 1, Column: 1}, "illegal character", "@", "")
	out := err.Format(false)
	if !strings.Contains(out, "at 1:1") {
		t.Fatalf("Format() = %q, want bare position header", out)
	}
}

func TestKindString(t *testing.T) {
	if KindLinkFailed.String() != "link failed" {
		t.Fatalf("KindLinkFailed.String() = %q", KindLinkFailed.String())
	}
}

func TestErrorImplementsErrorInterface(t *testing.T) {
	var err error = New(KindEmitFailed, lexer.Position{}, "boom", "", "")
	if err.Error() == "" {
		t.Fatalf("Error() returned empty string")
	}
}
