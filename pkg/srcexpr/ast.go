// Package srcexpr is a small hand-written reader for the textual surface
// form of the expression IR: the grammar the evalSrc* convenience entry
// points accept (literals, operators, let/if, array and struct literals).
// It is not a Ziria surface-syntax parser: declarations, stream
// combinators, and the rest of Ziria's grammar are out of scope, and no
// Ziria tree-sitter grammar exists in the retrieved pack to drive one
// (see DESIGN.md). This package plays the same role the teacher's
// pkg/parser plays for Able source, scoped down to just this grammar.
package srcexpr

// Node is any node of the untyped surface tree produced by Parse. The type
// checker (pkg/typecheck) elaborates a Node into a typed pkg/ir.Expr.
type Node interface {
	isNode()
}

type IntLit struct {
	Text string
}

func (IntLit) isNode() {}

type DoubleLit struct {
	Text string
}

func (DoubleLit) isNode() {}

type BoolLit struct {
	Value bool
}

func (BoolLit) isNode() {}

type StringLit struct {
	Value string
}

func (StringLit) isNode() {}

type BitLit struct {
	Value bool
}

func (BitLit) isNode() {}

type Ident struct {
	Name string
}

func (Ident) isNode() {}

type ArrayLit struct {
	Elems []Node
}

func (ArrayLit) isNode() {}

type FieldInit struct {
	Name string
	Val  Node
}

type StructLit struct {
	TypeName string
	Fields   []FieldInit
}

func (StructLit) isNode() {}

type Unary struct {
	Op string // "-", "not", "~"
	E  Node
}

func (Unary) isNode() {}

type Binary struct {
	Op string
	L  Node
	R  Node
}

func (Binary) isNode() {}

type Index struct {
	Arr Node
	Idx Node
	Len Node // non-nil for a slice read arr[idx, len]
}

func (Index) isNode() {}

type Proj struct {
	Struct Node
	Field  string
}

func (Proj) isNode() {}

type Let struct {
	Name string
	Rhs  Node
	Body Node
}

func (Let) isNode() {}

type LetRef struct {
	Name string
	Rhs  Node // nil when no initializer
	Body Node
}

func (LetRef) isNode() {}

type Assign struct {
	Lhs Node
	Rhs Node
}

func (Assign) isNode() {}

type Seq struct {
	First  Node
	Second Node
}

func (Seq) isNode() {}

type If struct {
	Cond Node
	Then Node
	Else Node
}

func (If) isNode() {}

type While struct {
	Cond Node
	Body Node
}

func (While) isNode() {}

type For struct {
	Name  string
	Start Node
	Len   Node
	Body  Node
}

func (For) isNode() {}

type Print struct {
	Newline bool
	E       Node
}

func (Print) isNode() {}

type ErrorNode struct {
	Msg string
}

func (ErrorNode) isNode() {}
