package codegen

import (
	"github.com/lambdaphoton/lp/internal/ast"
	"tinygo.org/x/go-llvm"
)

// mapType resolves a surface Type to its IR type per the type-mapping
// table: integer widths map to fixed-width IR integers (signedness is
// carried only by instruction choice, never by the type itself), F32/F64
// map to float/double, Str/Ptr map to an opaque i8 pointer, and
// Unknown/anything else defaults to the 64-bit integer.
func (cg *CodeGen) mapType(t ast.Type) llvm.Type {
	switch t.Kind {
	case ast.I8, ast.U8:
		return cg.i8
	case ast.I16, ast.U16:
		return cg.i16
	case ast.I32, ast.U32:
		return cg.i32
	case ast.I64, ast.U64:
		return cg.i64
	case ast.F32:
		return cg.f32
	case ast.F64:
		return cg.f64
	case ast.Str, ast.Ptr:
		return cg.ptrType
	case ast.Void:
		return cg.ctx.VoidType()
	default:
		return cg.i64
	}
}

func (cg *CodeGen) isFloatType(t llvm.Type) bool {
	return t == cg.f32 || t == cg.f64
}

func (cg *CodeGen) floatWidth(t llvm.Type) int {
	if t == cg.f64 {
		return 64
	}
	return 32
}
