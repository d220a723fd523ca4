package optimizer

import (
	"math"
	"testing"

	"github.com/lambdaphoton/lp/internal/ast"
	"github.com/lambdaphoton/lp/internal/lexer"
	"github.com/lambdaphoton/lp/internal/parser"
)

func foldSource(t *testing.T, src string) ast.Node {
	t.Helper()
	prog := parser.Parse(lexer.Lex(src + ";"))
	if len(prog.Stmts) != 1 {
		t.Fatalf("parse(%q) produced %d statements, want 1", src, len(prog.Stmts))
	}
	return Fold(prog.Stmts[0])
}

func TestFoldArithmeticPrecedence(t *testing.T) {
	n := foldSource(t, "2 + 3 * 4 - 1")
	lit, ok := n.(*ast.IntLit)
	if !ok || lit.Value != 13 {
		t.Fatalf("Fold(2+3*4-1) = %#v, want IntLit 13", n)
	}
}

func TestFoldMixedIntFloatPromotesToFloat(t *testing.T) {
	n := foldSource(t, "1.0 + 2")
	lit, ok := n.(*ast.FloatLit)
	if !ok || lit.Value != 3.0 {
		t.Fatalf("Fold(1.0+2) = %#v, want FloatLit 3.0", n)
	}
}

func TestFoldIntDivByZeroYieldsZero(t *testing.T) {
	n := foldSource(t, "5 / 0")
	lit, ok := n.(*ast.IntLit)
	if !ok || lit.Value != 0 {
		t.Fatalf("Fold(5/0) = %#v, want IntLit 0", n)
	}
}

func TestFoldFloatDivByExactZeroYieldsZero(t *testing.T) {
	n := foldSource(t, "5.0 / 0.0")
	lit, ok := n.(*ast.FloatLit)
	if !ok || lit.Value != 0 {
		t.Fatalf("Fold(5.0/0.0) = %#v, want FloatLit 0, not Inf/NaN", n)
	}
}

func TestFoldFloatModByZeroYieldsNaN(t *testing.T) {
	n := foldSource(t, "5.0 % 0.0")
	lit, ok := n.(*ast.FloatLit)
	if !ok || !math.IsNaN(lit.Value) {
		t.Fatalf("Fold(5.0%%0.0) = %#v, want FloatLit NaN (unguarded math.Mod, matching CreateFRem)", n)
	}
}

func TestFoldComparisonYieldsIntLit(t *testing.T) {
	n := foldSource(t, "3 < 4")
	lit, ok := n.(*ast.IntLit)
	if !ok || lit.Value != 1 {
		t.Fatalf("Fold(3<4) = %#v, want IntLit 1", n)
	}
}

func TestFoldLogicalYieldsIntLit(t *testing.T) {
	n := foldSource(t, "0 && 1")
	lit, ok := n.(*ast.IntLit)
	if !ok || lit.Value != 0 {
		t.Fatalf("Fold(0&&1) = %#v, want IntLit 0", n)
	}
}

func TestFoldTernaryReplacesWithTakenBranch(t *testing.T) {
	n := foldSource(t, "1 ? 10 : 20")
	lit, ok := n.(*ast.IntLit)
	if !ok || lit.Value != 10 {
		t.Fatalf("Fold(1?10:20) = %#v, want IntLit 10", n)
	}
}

func TestFoldTernaryFalseTakesElseBranch(t *testing.T) {
	n := foldSource(t, "0 ? 10 : 20")
	lit, ok := n.(*ast.IntLit)
	if !ok || lit.Value != 20 {
		t.Fatalf("Fold(0?10:20) = %#v, want IntLit 20", n)
	}
}

func TestFoldUnaryNegate(t *testing.T) {
	n := foldSource(t, "-5")
	lit, ok := n.(*ast.IntLit)
	if !ok || lit.Value != -5 {
		t.Fatalf("Fold(-5) = %#v, want IntLit -5", n)
	}
}

func TestFoldUnaryNotFloat(t *testing.T) {
	n := foldSource(t, "!0.0")
	lit, ok := n.(*ast.IntLit)
	if !ok || lit.Value != 1 {
		t.Fatalf("Fold(!0.0) = %#v, want IntLit 1", n)
	}
}

func TestFoldDoesNotDescendIntoArray(t *testing.T) {
	n := foldSource(t, "[1 + 1, 2 + 2]")
	arr, ok := n.(*ast.Array)
	if !ok {
		t.Fatalf("n = %#v, want Array left unfolded", n)
	}
	if _, ok := arr.Elems[0].(*ast.Binary); !ok {
		t.Fatalf("arr.Elems[0] = %#v, want un-folded Binary (documented limitation)", arr.Elems[0])
	}
}

func TestFoldLeavesIdentUnchanged(t *testing.T) {
	n := foldSource(t, "x + 1")
	bin, ok := n.(*ast.Binary)
	if !ok {
		t.Fatalf("n = %#v, want Binary (x not constant)", n)
	}
	if _, ok := bin.Left.(*ast.Ident); !ok {
		t.Fatalf("Left = %#v, want Ident", bin.Left)
	}
}

func TestFoldRecursesIntoLetAndFor(t *testing.T) {
	prog := parser.Parse(lexer.Lex("let x = 1 + 2; for i in 0+0..5*2 { @print(1+1); };"))
	for i, s := range prog.Stmts {
		prog.Stmts[i] = Fold(s)
	}

	let := prog.Stmts[0].(*ast.Let)
	if lit, ok := let.Init.(*ast.IntLit); !ok || lit.Value != 3 {
		t.Fatalf("let.Init = %#v, want folded IntLit 3", let.Init)
	}

	forStmt := prog.Stmts[1].(*ast.For)
	if lit, ok := forStmt.Start.(*ast.IntLit); !ok || lit.Value != 0 {
		t.Fatalf("For.Start = %#v, want folded IntLit 0", forStmt.Start)
	}
	if lit, ok := forStmt.End.(*ast.IntLit); !ok || lit.Value != 10 {
		t.Fatalf("For.End = %#v, want folded IntLit 10", forStmt.End)
	}
	builtin := forStmt.Body.Stmts[0].(*ast.Builtin)
	if lit, ok := builtin.Args[0].(*ast.IntLit); !ok || lit.Value != 2 {
		t.Fatalf("Builtin arg = %#v, want folded IntLit 2", builtin.Args[0])
	}
}
