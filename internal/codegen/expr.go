package codegen

import (
	"github.com/lambdaphoton/lp/internal/ast"
	"github.com/lambdaphoton/lp/internal/lexer"
	"tinygo.org/x/go-llvm"
)

// lowerExpr lowers an expression node to an IR value, evaluating
// sub-expressions in the order they appear in the node's payload.
func (cg *CodeGen) lowerExpr(n ast.Node) llvm.Value {
	switch e := n.(type) {
	case *ast.IntLit:
		return llvm.ConstInt(cg.i64, uint64(e.Value), true)
	case *ast.FloatLit:
		return llvm.ConstFloat(cg.f64, e.Value)
	case *ast.StringLit:
		return cg.builder.CreateGlobalStringPtr(string(e.Value), "str")
	case *ast.Ident:
		return cg.lowerIdent(e)
	case *ast.Binary:
		return cg.lowerBinary(e)
	case *ast.Unary:
		return cg.lowerUnary(e)
	case *ast.Ternary:
		return cg.lowerTernary(e)
	case *ast.Builtin:
		return cg.lowerBuiltin(e)
	default:
		// Lambda, Apply, Array, Index, Async, Await, GpuKernel: parsed but
		// not lowered in this core.
		return llvm.ConstInt(cg.i64, 0, true)
	}
}

func (cg *CodeGen) lowerIdent(e *ast.Ident) llvm.Value {
	entry, ok := cg.scope.lookup(e.Name)
	if !ok {
		return llvm.ConstInt(cg.i64, 0, true)
	}
	return cg.builder.CreateLoad2(entry.typ, entry.slot, e.Name)
}

// lowerBinary implements the operand-promotion rule: if either side is a
// float IR type, the integer side is promoted via signed int-to-float to
// double and the float form of the operator runs; otherwise the signed
// integer form runs (SDiv, SRem, AShr).
func (cg *CodeGen) lowerBinary(e *ast.Binary) llvm.Value {
	left := cg.lowerExpr(e.Left)
	right := cg.lowerExpr(e.Right)

	isFloat := cg.isFloatType(left.Type()) || cg.isFloatType(right.Type())
	if isFloat {
		if !cg.isFloatType(left.Type()) {
			left = cg.builder.CreateSIToFP(left, cg.f64, "")
		}
		if !cg.isFloatType(right.Type()) {
			right = cg.builder.CreateSIToFP(right, cg.f64, "")
		}
	}

	switch e.Op {
	case lexer.PLUS:
		if isFloat {
			return cg.builder.CreateFAdd(left, right, "")
		}
		return cg.builder.CreateAdd(left, right, "")
	case lexer.MINUS:
		if isFloat {
			return cg.builder.CreateFSub(left, right, "")
		}
		return cg.builder.CreateSub(left, right, "")
	case lexer.STAR:
		if isFloat {
			return cg.builder.CreateFMul(left, right, "")
		}
		return cg.builder.CreateMul(left, right, "")
	case lexer.SLASH:
		if isFloat {
			return cg.builder.CreateFDiv(left, right, "")
		}
		return cg.builder.CreateSDiv(left, right, "")
	case lexer.PERCENT:
		if isFloat {
			return cg.builder.CreateFRem(left, right, "")
		}
		return cg.builder.CreateSRem(left, right, "")
	case lexer.AMP:
		return cg.builder.CreateAnd(left, right, "")
	case lexer.PIPE:
		return cg.builder.CreateOr(left, right, "")
	case lexer.CARET:
		return cg.builder.CreateXor(left, right, "")
	case lexer.SHL:
		return cg.builder.CreateShl(left, right, "")
	case lexer.SHR:
		return cg.builder.CreateAShr(left, right, "")
	case lexer.EQ, lexer.NEQ, lexer.LT, lexer.GT, lexer.LE, lexer.GE:
		return cg.lowerComparison(e.Op, left, right, isFloat)
	case lexer.ANDAND, lexer.OROR:
		return cg.lowerLogical(e.Op, left, right, isFloat)
	default:
		return llvm.ConstInt(cg.i64, 0, true)
	}
}

// lowerComparison produces an i1 then zero-extends to i64.
func (cg *CodeGen) lowerComparison(op lexer.TokenType, left, right llvm.Value, isFloat bool) llvm.Value {
	var bit llvm.Value
	if isFloat {
		var pred llvm.FloatPredicate
		switch op {
		case lexer.EQ:
			pred = llvm.FloatOEQ
		case lexer.NEQ:
			pred = llvm.FloatONE
		case lexer.LT:
			pred = llvm.FloatOLT
		case lexer.GT:
			pred = llvm.FloatOGT
		case lexer.LE:
			pred = llvm.FloatOLE
		case lexer.GE:
			pred = llvm.FloatOGE
		}
		bit = cg.builder.CreateFCmp(pred, left, right, "")
	} else {
		var pred llvm.IntPredicate
		switch op {
		case lexer.EQ:
			pred = llvm.IntEQ
		case lexer.NEQ:
			pred = llvm.IntNE
		case lexer.LT:
			pred = llvm.IntSLT
		case lexer.GT:
			pred = llvm.IntSGT
		case lexer.LE:
			pred = llvm.IntSLE
		case lexer.GE:
			pred = llvm.IntSGE
		}
		bit = cg.builder.CreateICmp(pred, left, right, "")
	}
	return cg.builder.CreateZExt(bit, cg.i64, "")
}

// lowerLogical lowers && and || as non-short-circuit reductions to i1 via
// "!= 0" on each side, then bitwise and/or. Both sides are always
// evaluated; any side effects of the right-hand side always execute.
func (cg *CodeGen) lowerLogical(op lexer.TokenType, left, right llvm.Value, isFloat bool) llvm.Value {
	leftBit := cg.nonZero(left, isFloat)
	rightBit := cg.nonZero(right, isFloat)
	var bit llvm.Value
	if op == lexer.ANDAND {
		bit = cg.builder.CreateAnd(leftBit, rightBit, "")
	} else {
		bit = cg.builder.CreateOr(leftBit, rightBit, "")
	}
	return cg.builder.CreateZExt(bit, cg.i64, "")
}

func (cg *CodeGen) nonZero(v llvm.Value, isFloat bool) llvm.Value {
	if isFloat {
		return cg.builder.CreateFCmp(llvm.FloatONE, v, llvm.ConstFloat(v.Type(), 0), "")
	}
	return cg.builder.CreateICmp(llvm.IntNE, v, llvm.ConstInt(v.Type(), 0, false), "")
}

// lowerUnary selects integer/float negate by operand kind for '-'; '!'
// compares the operand to zero and zero-extends the result.
func (cg *CodeGen) lowerUnary(e *ast.Unary) llvm.Value {
	operand := cg.lowerExpr(e.Operand)
	isFloat := cg.isFloatType(operand.Type())
	switch e.Op {
	case lexer.MINUS:
		if isFloat {
			return cg.builder.CreateFNeg(operand, "")
		}
		return cg.builder.CreateNeg(operand, "")
	case lexer.BANG:
		isZero := cg.builder.CreateNot(cg.nonZero(operand, isFloat), "")
		return cg.builder.CreateZExt(isZero, cg.i64, "")
	default:
		return operand
	}
}

// lowerTernary lowers to a select on the i1 "cond != 0"; both branches are
// always evaluated, no branching.
func (cg *CodeGen) lowerTernary(e *ast.Ternary) llvm.Value {
	cond := cg.lowerExpr(e.Cond)
	condBit := cg.nonZero(cond, cg.isFloatType(cond.Type()))

	then := cg.lowerExpr(e.Then)
	els := cg.lowerExpr(e.Else)

	if cg.isFloatType(then.Type()) && !cg.isFloatType(els.Type()) {
		els = cg.builder.CreateSIToFP(els, then.Type(), "")
	} else if cg.isFloatType(els.Type()) && !cg.isFloatType(then.Type()) {
		then = cg.builder.CreateSIToFP(then, els.Type(), "")
	}

	return cg.builder.CreateSelect(condBit, then, els, "")
}

// lowerBuiltin lowers a Builtin call. The only required builtin is
// `print`: one printf declaration per module, with the format string
// chosen per-argument by operand IR kind.
func (cg *CodeGen) lowerBuiltin(e *ast.Builtin) llvm.Value {
	switch e.Name {
	case "print":
		return cg.lowerPrint(e)
	default:
		for _, a := range e.Args {
			cg.lowerExpr(a)
		}
		return llvm.ConstInt(cg.i64, 0, true)
	}
}

func (cg *CodeGen) lowerPrint(e *ast.Builtin) llvm.Value {
	printf, printfTy := cg.printfDecl()

	format := ""
	args := make([]llvm.Value, 0, len(e.Args)+1)
	for _, a := range e.Args {
		v := cg.lowerExpr(a)
		switch {
		case cg.isFloatType(v.Type()):
			format += "%f\n"
			if v.Type() != cg.f64 {
				v = cg.builder.CreateFPExt(v, cg.f64, "")
			}
		case v.Type() == cg.ptrType:
			format += "%s\n"
		default:
			format += "%lld\n"
			if v.Type() != cg.i64 {
				v = cg.builder.CreateSExt(v, cg.i64, "")
			}
		}
		args = append(args, v)
	}

	fmtPtr := cg.builder.CreateGlobalStringPtr(format, "fmt")
	args = append([]llvm.Value{fmtPtr}, args...)
	return cg.builder.CreateCall2(printfTy, printf, args, "")
}

// printfDecl looks up or declares `printf(i8*, ...)` once per module.
func (cg *CodeGen) printfDecl() (llvm.Value, llvm.Type) {
	if !cg.printfFn.IsNil() {
		return cg.printfFn, cg.printfFnType
	}
	fnType := llvm.FunctionType(cg.i32, []llvm.Type{cg.ptrType}, true)
	fn := llvm.AddFunction(cg.mod, "printf", fnType)
	cg.printfFn = fn
	cg.printfFnType = fnType
	return fn, fnType
}
