// Package codegen lowers a folded Lambda Photon AST to LLVM IR using
// tinygo.org/x/go-llvm, the Go binding over the LLVM C API. One CodeGen
// owns the context/module/builder triad and the lexical scope chain for a
// single compilation run; nothing else touches them for the run's
// duration.
package codegen

import (
	"github.com/lambdaphoton/lp/internal/ast"
	"tinygo.org/x/go-llvm"
)

// CodeGen holds the LLVM state for one compilation run: the context that
// owns every type/value/metadata node it creates, the module being built,
// the instruction builder, and the current lexical scope.
type CodeGen struct {
	ctx     llvm.Context
	mod     llvm.Module
	builder llvm.Builder

	scope *scope

	i8, i16, i32, i64 llvm.Type
	f32, f64          llvm.Type
	ptrType           llvm.Type

	printfFn     llvm.Value
	printfFnType llvm.Type
	mainFn       llvm.Value

	parallelForFn llvm.Value
}

// New creates a CodeGen with a fresh context and a module named
// moduleName.
func New(moduleName string) *CodeGen {
	ctx := llvm.NewContext()
	cg := &CodeGen{
		ctx:     ctx,
		mod:     ctx.NewModule(moduleName),
		builder: ctx.NewBuilder(),
		i8:      ctx.Int8Type(),
		i16:     ctx.Int16Type(),
		i32:     ctx.Int32Type(),
		i64:     ctx.Int64Type(),
		f32:     ctx.FloatType(),
		f64:     ctx.DoubleType(),
	}
	cg.ptrType = llvm.PointerType(cg.i8, 0)
	return cg
}

// Dispose releases the builder, module, and context, in that order. Call
// it once after the module has been verified/optimized/emitted.
func (cg *CodeGen) Dispose() {
	cg.builder.Dispose()
	cg.mod.Dispose()
	cg.ctx.Dispose()
}

// Module returns the underlying LLVM module.
func (cg *CodeGen) Module() llvm.Module { return cg.mod }

// Lower lowers prog's statements into the body of a `main` function
// returning i32, per the module-finalization contract: `ret i32 0` is
// appended after the last statement.
func (cg *CodeGen) Lower(prog *ast.Program) {
	mainType := llvm.FunctionType(cg.i32, nil, false)
	main := llvm.AddFunction(cg.mod, "main", mainType)
	cg.mainFn = main

	entry := llvm.AddBasicBlock(main, "entry")
	cg.builder.SetInsertPointAtEnd(entry)

	cg.scope = newScope(nil)
	cg.lowerStmts(prog.Stmts)

	cg.builder.CreateRet(llvm.ConstInt(cg.i32, 0, true))
}

func (cg *CodeGen) pushScope() {
	cg.scope = newScope(cg.scope)
}

func (cg *CodeGen) popScope() {
	cg.scope = cg.scope.parent
}
