package codegen

import (
	"github.com/lambdaphoton/lp/internal/ast"
	"tinygo.org/x/go-llvm"
)

// lowerStmt lowers a single statement of a Block or Program.
func (cg *CodeGen) lowerStmt(n ast.Node) {
	switch s := n.(type) {
	case *ast.Let:
		cg.lowerLet(s)
	case *ast.For:
		cg.lowerFor(s)
	case *ast.Block:
		cg.lowerBlock(s)
	default:
		cg.lowerExpr(n)
	}
}

func (cg *CodeGen) lowerStmts(stmts []ast.Node) {
	for _, s := range stmts {
		cg.lowerStmt(s)
	}
}

// lowerLet evaluates the initializer, coerces it to the annotated type if
// present, allocas a slot of the target type, stores the value, and binds
// name -> (slot, type) in the current scope.
func (cg *CodeGen) lowerLet(s *ast.Let) {
	val := cg.lowerExpr(s.Init)
	target := val.Type()
	if s.HasAnnotation {
		target = cg.mapType(s.Annotation)
		val = cg.coerce(val, target)
	}
	slot := cg.builder.CreateAlloca(target, s.Name)
	cg.builder.CreateStore(val, slot)
	cg.scope.define(s.Name, slot, target)
}

// coerce implements the Let coercion matrix: int widths truncate/sign-
// extend/no-op by comparing widths, int<->float cross signed conversion,
// and float<->float widens/narrows between f32 and f64.
func (cg *CodeGen) coerce(v llvm.Value, target llvm.Type) llvm.Value {
	src := v.Type()
	if src == target {
		return v
	}
	srcFloat, dstFloat := cg.isFloatType(src), cg.isFloatType(target)

	switch {
	case !srcFloat && !dstFloat:
		srcWidth, dstWidth := src.IntTypeWidth(), target.IntTypeWidth()
		switch {
		case dstWidth < srcWidth:
			return cg.builder.CreateTrunc(v, target, "")
		case dstWidth > srcWidth:
			return cg.builder.CreateSExt(v, target, "")
		default:
			return v
		}
	case !srcFloat && dstFloat:
		return cg.builder.CreateSIToFP(v, target, "")
	case srcFloat && !dstFloat:
		return cg.builder.CreateFPToSI(v, target, "")
	default:
		srcWidth, dstWidth := cg.floatWidth(src), cg.floatWidth(target)
		switch {
		case dstWidth > srcWidth:
			return cg.builder.CreateFPExt(v, target, "")
		case dstWidth < srcWidth:
			return cg.builder.CreateFPTrunc(v, target, "")
		default:
			return v
		}
	}
}

// lowerFor implements the integer-range loop: an i64 counter slot is
// allocated and stored with start, then loop/body/after blocks are wired
// the same way regardless of the parallel flag - only the attached loop
// metadata differs.
func (cg *CodeGen) lowerFor(s *ast.For) {
	fn := cg.mainFn

	startVal := cg.coerce(cg.lowerExpr(s.Start), cg.i64)
	endVal := cg.coerce(cg.lowerExpr(s.End), cg.i64)

	counter := cg.builder.CreateAlloca(cg.i64, s.Var)
	cg.builder.CreateStore(startVal, counter)

	loopBB := llvm.AddBasicBlock(fn, "loop")
	bodyBB := llvm.AddBasicBlock(fn, "body")
	afterBB := llvm.AddBasicBlock(fn, "after")

	cg.builder.CreateBr(loopBB)
	cg.builder.SetInsertPointAtEnd(loopBB)

	cur := cg.builder.CreateLoad2(cg.i64, counter, s.Var)
	cond := cg.builder.CreateICmp(llvm.IntSLT, cur, endVal, "")
	br := cg.builder.CreateCondBr(cond, bodyBB, afterBB)

	if s.Parallel {
		cg.parallelForDecl()
		cg.attachParallelMetadata(br)
	}

	cg.builder.SetInsertPointAtEnd(bodyBB)
	cg.pushScope()
	cg.scope.define(s.Var, counter, cg.i64)
	cg.lowerStmts(s.Body.Stmts)
	cg.popScope()

	next := cg.builder.CreateAdd(cg.builder.CreateLoad2(cg.i64, counter, s.Var), llvm.ConstInt(cg.i64, 1, true), "")
	cg.builder.CreateStore(next, counter)
	cg.builder.CreateBr(loopBB)

	cg.builder.SetInsertPointAtEnd(afterBB)
}

// lowerBlock pushes a fresh child scope, lowers each statement, then pops
// the scope.
func (cg *CodeGen) lowerBlock(b *ast.Block) {
	cg.pushScope()
	cg.lowerStmts(b.Stmts)
	cg.popScope()
}

// attachParallelMetadata attaches the llvm.loop metadata that marks the
// loop's memory accesses as free of cross-iteration dependencies, enabling
// the vectorizer and unroller. The first operand is an empty placeholder
// node rather than a true self-reference.
func (cg *CodeGen) attachParallelMetadata(br llvm.Value) {
	kindID := cg.ctx.MDKindID("llvm.loop")
	trueBit := llvm.ConstInt(cg.ctx.Int1Type(), 1, false)

	parallelAccesses := cg.ctx.MDNode([]llvm.Metadata{cg.ctx.MDString("llvm.loop.parallel_accesses")})
	vectorizeEnable := cg.ctx.MDNode([]llvm.Metadata{
		cg.ctx.MDString("llvm.loop.vectorize.enable"),
		llvm.ValueAsMetadata(trueBit),
	})
	unrollEnable := cg.ctx.MDNode([]llvm.Metadata{
		cg.ctx.MDString("llvm.loop.unroll.enable"),
		llvm.ValueAsMetadata(trueBit),
	})

	loopID := cg.ctx.MDNode([]llvm.Metadata{cg.ctx.MDNode(nil), parallelAccesses, vectorizeEnable, unrollEnable})

	br.SetMetadata(kindID, loopID)
}

// parallelForDecl looks up or declares
// `__lp_parallel_for(i64, i64, ptr, ptr) -> void` once per module. Parallel
// loops are lowered with llvm.loop metadata rather than a call to this
// runtime, so the declaration is never referenced by any instruction; it
// exists so a linked runtime could later provide a real implementation.
func (cg *CodeGen) parallelForDecl() llvm.Value {
	if !cg.parallelForFn.IsNil() {
		return cg.parallelForFn
	}
	fnType := llvm.FunctionType(cg.ctx.VoidType(), []llvm.Type{cg.i64, cg.i64, cg.ptrType, cg.ptrType}, false)
	fn := llvm.AddFunction(cg.mod, "__lp_parallel_for", fnType)
	cg.parallelForFn = fn
	return fn
}
