// Package ast defines the Abstract Syntax Tree node types for Lambda
// Photon. Each node is a tagged variant: a common header (node kind,
// resolved type, source position) plus a kind-specific payload, per spec
// §3. A node exclusively owns its children; destroying a node destroys the
// whole subtree.
package ast

import "github.com/lambdaphoton/lp/internal/lexer"

// Kind tags the variant of an AST node.
type Kind int

const (
	KindIntLit Kind = iota
	KindFloatLit
	KindStringLit
	KindIdent
	KindBinary
	KindUnary
	KindTernary
	KindLambda
	KindApply
	KindLet
	KindFor
	KindBlock
	KindProgram
	KindAsync
	KindAwait
	KindArray
	KindIndex
	KindBuiltin
	KindGpuKernel
)

var kindNames = [...]string{
	"IntLit", "FloatLit", "StringLit", "Ident", "Binary", "Unary", "Ternary",
	"Lambda", "Apply", "Let", "For", "Block", "Program", "Async", "Await",
	"Array", "Index", "Builtin", "GpuKernel",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Node is implemented by every AST node. It provides the common header
// described in spec §3: a kind tag, a resolved type slot (filled in lazily
// by the optimizer/codegen passes), and the source position of the node's
// first token.
type Node interface {
	Kind() Kind
	Pos() lexer.Position
	Type() Type
	SetType(Type)
}

// header is embedded by every concrete node and implements the Node
// bookkeeping methods; it is never used on its own.
type header struct {
	kind Kind
	pos  lexer.Position
	typ  Type
}

func (h *header) Kind() Kind         { return h.kind }
func (h *header) Pos() lexer.Position { return h.pos }
func (h *header) Type() Type         { return h.typ }
func (h *header) SetType(t Type)     { h.typ = t }

func newHeader(k Kind, pos lexer.Position) header {
	return header{kind: k, pos: pos}
}

// IntLit is a 64-bit signed integer literal.
type IntLit struct {
	header
	Value int64
}

func NewIntLit(pos lexer.Position, v int64) *IntLit {
	return &IntLit{header: newHeader(KindIntLit, pos), Value: v}
}

// FloatLit is a 64-bit float literal.
type FloatLit struct {
	header
	Value float64
}

func NewFloatLit(pos lexer.Position, v float64) *FloatLit {
	return &FloatLit{header: newHeader(KindFloatLit, pos), Value: v}
}

// StringLit holds a decoded byte sequence with outer quotes stripped;
// escape handling is deferred (spec §3).
type StringLit struct {
	header
	Value []byte
}

func NewStringLit(pos lexer.Position, v []byte) *StringLit {
	return &StringLit{header: newHeader(KindStringLit, pos), Value: v}
}

// Ident is a bare identifier reference.
type Ident struct {
	header
	Name string
}

func NewIdent(pos lexer.Position, name string) *Ident {
	return &Ident{header: newHeader(KindIdent, pos), Name: name}
}

// Binary is a binary operator application.
type Binary struct {
	header
	Op          lexer.TokenType
	Left, Right Node
}

func NewBinary(pos lexer.Position, op lexer.TokenType, left, right Node) *Binary {
	return &Binary{header: newHeader(KindBinary, pos), Op: op, Left: left, Right: right}
}

// Unary is a prefix operator application ('-' or '!').
type Unary struct {
	header
	Op      lexer.TokenType
	Operand Node
}

func NewUnary(pos lexer.Position, op lexer.TokenType, operand Node) *Unary {
	return &Unary{header: newHeader(KindUnary, pos), Op: op, Operand: operand}
}

// Ternary is `cond ? then : else`.
type Ternary struct {
	header
	Cond, Then, Else Node
}

func NewTernary(pos lexer.Position, cond, then, els Node) *Ternary {
	return &Ternary{header: newHeader(KindTernary, pos), Cond: cond, Then: then, Else: els}
}

// Lambda is `\ IDENT* -> expression`. Parameter types are left Unknown
// unless a future surface extension annotates them; lowering is
// deliberately out of scope (spec §4.4.2, §9).
type Lambda struct {
	header
	Params     []string
	ParamTypes []Type
	Body       Node
}

func NewLambda(pos lexer.Position, params []string, body Node) *Lambda {
	return &Lambda{header: newHeader(KindLambda, pos), Params: params, Body: body}
}

// Apply is a function call `callee(args...)`.
type Apply struct {
	header
	Callee Node
	Args   []Node
}

func NewApply(pos lexer.Position, callee Node, args []Node) *Apply {
	return &Apply{header: newHeader(KindApply, pos), Callee: callee, Args: args}
}

// Let is `let name (: type)? = init;`.
type Let struct {
	header
	Name          string
	Annotation    Type
	HasAnnotation bool
	Init          Node
}

func NewLet(pos lexer.Position, name string, init Node) *Let {
	return &Let{header: newHeader(KindLet, pos), Name: name, Init: init}
}

// For is a bounded integer-range loop, optionally annotated `@parallel`.
type For struct {
	header
	Var        string
	Start, End Node
	Body       *Block
	Parallel   bool
}

func NewFor(pos lexer.Position, v string, start, end Node, body *Block, parallel bool) *For {
	return &For{header: newHeader(KindFor, pos), Var: v, Start: start, End: end, Body: body, Parallel: parallel}
}

// Block is an ordered sequence of statements inside `{ }`.
type Block struct {
	header
	Stmts []Node
}

func NewBlock(pos lexer.Position, stmts []Node) *Block {
	return &Block{header: newHeader(KindBlock, pos), Stmts: stmts}
}

// Program is the unique AST root; it shares Block's shape (spec §3
// invariant).
type Program struct {
	header
	Stmts []Node
}

func NewProgram(stmts []Node) *Program {
	return &Program{header: newHeader(KindProgram, lexer.Position{Line: 1, Column: 1}), Stmts: stmts}
}

// Async wraps an expression marked `async`. Parsed but not lowered
// (spec §9).
type Async struct {
	header
	Expr Node
}

func NewAsync(pos lexer.Position, expr Node) *Async {
	return &Async{header: newHeader(KindAsync, pos), Expr: expr}
}

// Await wraps an expression marked `await`. Parsed but not lowered.
type Await struct {
	header
	Expr Node
}

func NewAwait(pos lexer.Position, expr Node) *Await {
	return &Await{header: newHeader(KindAwait, pos), Expr: expr}
}

// Array is an array literal `[e1, e2, ...]`.
type Array struct {
	header
	Elems []Node
}

func NewArray(pos lexer.Position, elems []Node) *Array {
	return &Array{header: newHeader(KindArray, pos), Elems: elems}
}

// Index is `array[index]`.
type Index struct {
	header
	Arr, Idx Node
}

func NewIndex(pos lexer.Position, arr, idx Node) *Index {
	return &Index{header: newHeader(KindIndex, pos), Arr: arr, Idx: idx}
}

// Builtin is `@name(args...)`.
type Builtin struct {
	header
	Name string
	Args []Node
}

func NewBuiltin(pos lexer.Position, name string, args []Node) *Builtin {
	return &Builtin{header: newHeader(KindBuiltin, pos), Name: name, Args: args}
}

// GpuKernel is a named kernel declaration. Parsed but not lowered
// (spec §9).
type GpuKernel struct {
	header
	Name       string
	Params     []string
	ParamTypes []Type
	Body       Node
}

func NewGpuKernel(pos lexer.Position, name string, params []string, paramTypes []Type, body Node) *GpuKernel {
	return &GpuKernel{header: newHeader(KindGpuKernel, pos), Name: name, Params: params, ParamTypes: paramTypes, Body: body}
}
