package codegen

import (
	"fmt"

	"tinygo.org/x/go-llvm"
)

// Verify runs LLVM's module verifier. It never aborts the process; the
// caller decides whether a verification failure is fatal.
func (cg *CodeGen) Verify() error {
	return llvm.VerifyModule(cg.mod, llvm.ReturnStatusAction)
}

// String returns the module's textual IR representation.
func (cg *CodeGen) String() string {
	return cg.mod.String()
}

// Optimize runs the "default<O{level}>" pass pipeline with loop
// vectorization, SLP vectorization, and loop unrolling enabled. level is
// clamped to [1,3]; level <= 0 is a no-op.
func (cg *CodeGen) Optimize(level int, tm llvm.TargetMachine) error {
	if level <= 0 {
		return nil
	}
	if level > 3 {
		level = 3
	}

	opts := llvm.NewPassBuilderOptions()
	defer opts.Dispose()
	opts.SetLoopVectorization(true)
	opts.SetSLPVectorization(true)
	opts.SetLoopUnrolling(true)

	return cg.mod.RunPasses(fmt.Sprintf("default<O%d>", level), tm, opts)
}

// EmitObject emits the module as a relocatable object file for tm.
func (cg *CodeGen) EmitObject(tm llvm.TargetMachine) ([]byte, error) {
	buf, err := tm.EmitToMemoryBuffer(cg.mod, llvm.ObjectFile)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
