package lexer

import "testing"

func BenchmarkLexSmallProgram(b *testing.B) {
	src := `@parallel for i in 0..100 { let y = i * i + 1; @print(y); };`
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Lex(src)
	}
}
