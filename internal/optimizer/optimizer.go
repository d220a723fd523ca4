// Package optimizer implements the constant-folding pass described for
// Lambda Photon. It takes ownership of an AST and returns a
// semantically-equivalent AST in which every constant subtree over
// {IntLit, FloatLit, Binary, Unary, Ternary} has been evaluated down to a
// single literal. Nodes are folded in place and the input tree must not be
// reused afterward.
package optimizer

import (
	"github.com/lambdaphoton/lp/internal/ast"
)

// Fold recursively folds constant subtrees of node and returns the
// resulting (possibly identical) node. Folding descends into Let.Init,
// For.Start/End/Body, Block/Program statements, and Builtin arguments;
// Lambda, Apply, Ident, Array, Index, Async, Await, and GpuKernel are
// returned unchanged, and this pass does not look inside them.
func Fold(node ast.Node) ast.Node {
	switch n := node.(type) {
	case *ast.Program:
		for i, s := range n.Stmts {
			n.Stmts[i] = Fold(s)
		}
		return n
	case *ast.Block:
		for i, s := range n.Stmts {
			n.Stmts[i] = Fold(s)
		}
		return n
	case *ast.Let:
		n.Init = Fold(n.Init)
		return n
	case *ast.For:
		n.Start = Fold(n.Start)
		n.End = Fold(n.End)
		if body, ok := Fold(n.Body).(*ast.Block); ok {
			n.Body = body
		}
		return n
	case *ast.Builtin:
		for i, a := range n.Args {
			n.Args[i] = Fold(a)
		}
		return n
	case *ast.Binary:
		n.Left = Fold(n.Left)
		n.Right = Fold(n.Right)
		return foldBinary(n)
	case *ast.Unary:
		n.Operand = Fold(n.Operand)
		return foldUnary(n)
	case *ast.Ternary:
		n.Cond = Fold(n.Cond)
		n.Then = Fold(n.Then)
		n.Else = Fold(n.Else)
		return foldTernary(n)
	default:
		return node
	}
}
