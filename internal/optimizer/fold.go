package optimizer

import (
	"math"

	"github.com/lambdaphoton/lp/internal/ast"
	"github.com/lambdaphoton/lp/internal/lexer"
)

// literalValue extracts the numeric payload of a literal node. ok is false
// for anything that is not an IntLit or FloatLit, in which case the caller
// must leave the enclosing expression unfolded.
func literalValue(n ast.Node) (f float64, i int64, isFloat, ok bool) {
	switch lit := n.(type) {
	case *ast.IntLit:
		return 0, lit.Value, false, true
	case *ast.FloatLit:
		return lit.Value, 0, true, true
	default:
		return 0, 0, false, false
	}
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// foldBinary evaluates n if both operands are literals, per the numeric
// semantics: the result is float-typed if either immediate operand is a
// FloatLit, otherwise integer.
func foldBinary(n *ast.Binary) ast.Node {
	lf, li, lIsFloat, lOK := literalValue(n.Left)
	rf, ri, rIsFloat, rOK := literalValue(n.Right)
	if !lOK || !rOK {
		return n
	}
	isFloat := lIsFloat || rIsFloat

	af, bf := lf, rf
	if !lIsFloat {
		af = float64(li)
	}
	if !rIsFloat {
		bf = float64(ri)
	}

	switch n.Op {
	case lexer.PLUS, lexer.MINUS, lexer.STAR, lexer.SLASH, lexer.PERCENT:
		if isFloat {
			return ast.NewFloatLit(n.Pos(), foldFloatArith(n.Op, af, bf))
		}
		return ast.NewIntLit(n.Pos(), foldIntArith(n.Op, li, ri))
	case lexer.AMP, lexer.PIPE, lexer.CARET, lexer.SHL, lexer.SHR:
		a, b := li, ri
		if lIsFloat {
			a = int64(lf)
		}
		if rIsFloat {
			b = int64(rf)
		}
		return ast.NewIntLit(n.Pos(), foldIntBitwise(n.Op, a, b))
	case lexer.EQ, lexer.NEQ, lexer.LT, lexer.GT, lexer.LE, lexer.GE:
		return ast.NewIntLit(n.Pos(), boolToInt(foldCompare(n.Op, af, bf, isFloat, li, ri)))
	case lexer.ANDAND, lexer.OROR:
		left, right := af != 0, bf != 0
		var result bool
		if n.Op == lexer.ANDAND {
			result = left && right
		} else {
			result = left || right
		}
		return ast.NewIntLit(n.Pos(), boolToInt(result))
	default:
		return n
	}
}

// foldIntArith implements two's-complement 64-bit signed arithmetic;
// division and modulo by zero yield 0 rather than trapping.
func foldIntArith(op lexer.TokenType, a, b int64) int64 {
	switch op {
	case lexer.PLUS:
		return a + b
	case lexer.MINUS:
		return a - b
	case lexer.STAR:
		return a * b
	case lexer.SLASH:
		if b == 0 {
			return 0
		}
		return a / b
	case lexer.PERCENT:
		if b == 0 {
			return 0
		}
		return a % b
	default:
		return 0
	}
}

// foldFloatArith implements IEEE-754 double arithmetic. '/' guards an
// exact-zero RHS to 0 rather than inf/NaN; '%' does not - it lowers
// straight to math.Mod, matching codegen's CreateFRem and yielding NaN on
// x % 0.0 the same as the reference implementation's unguarded fmod(l, r).
func foldFloatArith(op lexer.TokenType, a, b float64) float64 {
	switch op {
	case lexer.PLUS:
		return a + b
	case lexer.MINUS:
		return a - b
	case lexer.STAR:
		return a * b
	case lexer.SLASH:
		if b == 0 {
			return 0
		}
		return a / b
	case lexer.PERCENT:
		return math.Mod(a, b)
	default:
		return 0
	}
}

// foldIntBitwise implements the bitwise family on 64-bit signed integers.
// Shift amounts are taken modulo the 64-bit width.
func foldIntBitwise(op lexer.TokenType, a, b int64) int64 {
	switch op {
	case lexer.AMP:
		return a & b
	case lexer.PIPE:
		return a | b
	case lexer.CARET:
		return a ^ b
	case lexer.SHL:
		return a << (uint(((b%64)+64)%64))
	case lexer.SHR:
		return a >> (uint(((b%64)+64)%64))
	default:
		return 0
	}
}

// foldCompare evaluates a comparison operator. Float comparisons use the
// float payloads directly; integer comparisons use the raw int64 values so
// that signed ordering is exact rather than routed through float64.
func foldCompare(op lexer.TokenType, af, bf float64, isFloat bool, ai, bi int64) bool {
	if isFloat {
		switch op {
		case lexer.EQ:
			return af == bf
		case lexer.NEQ:
			return af != bf
		case lexer.LT:
			return af < bf
		case lexer.GT:
			return af > bf
		case lexer.LE:
			return af <= bf
		case lexer.GE:
			return af >= bf
		}
		return false
	}
	switch op {
	case lexer.EQ:
		return ai == bi
	case lexer.NEQ:
		return ai != bi
	case lexer.LT:
		return ai < bi
	case lexer.GT:
		return ai > bi
	case lexer.LE:
		return ai <= bi
	case lexer.GE:
		return ai >= bi
	}
	return false
}

// foldUnary evaluates n if its operand is a literal. '-' negates by
// operand kind; '!' compares to zero and yields 0/1.
func foldUnary(n *ast.Unary) ast.Node {
	f, i, isFloat, ok := literalValue(n.Operand)
	if !ok {
		return n
	}
	switch n.Op {
	case lexer.MINUS:
		if isFloat {
			return ast.NewFloatLit(n.Pos(), -f)
		}
		return ast.NewIntLit(n.Pos(), -i)
	case lexer.BANG:
		var zero bool
		if isFloat {
			zero = f == 0
		} else {
			zero = i == 0
		}
		return ast.NewIntLit(n.Pos(), boolToInt(zero))
	default:
		return n
	}
}

// foldTernary evaluates n eagerly if Cond is a literal: the taken branch
// replaces the whole node and the untaken branch is discarded.
func foldTernary(n *ast.Ternary) ast.Node {
	f, i, isFloat, ok := literalValue(n.Cond)
	if !ok {
		return n
	}
	var truthy bool
	if isFloat {
		truthy = f != 0
	} else {
		truthy = i != 0
	}
	if truthy {
		return n.Then
	}
	return n.Else
}
