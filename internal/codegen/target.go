package codegen

import "tinygo.org/x/go-llvm"

// NewHostTargetMachine initializes the native target backend and builds a
// target machine for the host's default triple at generic CPU/features,
// default optimization and relocation behavior.
func NewHostTargetMachine() (llvm.TargetMachine, error) {
	llvm.InitializeNativeTarget()
	llvm.InitializeNativeAsmPrinter()
	llvm.InitializeAllTargetInfos()
	llvm.InitializeAllTargets()
	llvm.InitializeAllTargetMCs()
	llvm.InitializeAllAsmParsers()
	llvm.InitializeAllAsmPrinters()

	triple := llvm.DefaultTargetTriple()
	target, err := llvm.GetTargetFromTriple(triple)
	if err != nil {
		return llvm.TargetMachine{}, err
	}

	tm := target.CreateTargetMachine(
		triple,
		"generic",
		"",
		llvm.CodeGenLevelDefault,
		llvm.RelocDefault,
		llvm.CodeModelDefault,
	)
	return tm, nil
}
