// Package ir defines the typed expression IR consumed by the interpreter,
// and the normal-form/list helpers used to reduce arrays and records.
package ir

import "ziria-lang/interp-go/pkg/value"

// UniqID is the unique identifier a variable carries, assigned by the type
// checker. The heap (pkg/heap) indexes bindings by UniqID, never by source
// name, so that shadowing never merges scopes.
type UniqID int64

// ArrReadKind distinguishes a single-element read from a slice read.
type ArrReadKind int

const (
	Singleton ArrReadKind = iota
	Length
)

// UnaryOp enumerates the unary operator families.
type UnaryOp int

const (
	OpNeg UnaryOp = iota
	OpNot
	OpBwNeg
	OpALength
)

// BinaryOp enumerates the binary operator families.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMult
	OpDiv
	OpRem
	OpExpon
	OpShL
	OpShR
	OpBwAnd
	OpBwOr
	OpBwXor
	OpEq
	OpNeq
	OpLt
	OpGt
	OpLeq
	OpGeq
	OpAnd
	OpOr
)

// ExprKind discriminates the Expr union.
type ExprKind int

const (
	KVal ExprKind = iota
	KValArr
	KStruct
	KVar
	KUnOp
	KBinOp
	KCast
	KArrRead
	KArrWrite
	KProj
	KLet
	KLetRef
	KAssign
	KSeq
	KIf
	KWhile
	KFor
	KCall
	KPrint
	KError
	KLUT
	KBPerm
)

// Expr is any node of the expression IR.
type Expr interface {
	ExprKind() ExprKind
}

// DerefPath is the restricted shape of an assignment lhs: Var, ArrRead, or
// Proj. Only those three implement it; no other Expr does.
type DerefPath interface {
	Expr
	isDerefPath()
}

//-----------------------------------------------------------------------------
// Literals and containers
//-----------------------------------------------------------------------------

// Val is a literal scalar.
type Val struct {
	Ty value.Type
	V  value.Value
}

func (Val) ExprKind() ExprKind { return KVal }

// ValArr is a literal array whose elements are themselves expressions in
// normal form.
type ValArr struct {
	Elems []Expr
}

func (ValArr) ExprKind() ExprKind { return KValArr }

// StructField is one (name, value-expression) pair of a struct literal,
// order preserved.
type StructField struct {
	Name string
	Val  Expr
}

// Struct is a record literal.
type Struct struct {
	Ty     value.Type
	Fields []StructField
}

func (Struct) ExprKind() ExprKind { return KStruct }

//-----------------------------------------------------------------------------
// Variables
//-----------------------------------------------------------------------------

// Var references a named variable by its unique id.
type Var struct {
	ID   UniqID
	Name string // source name, for error messages and pretty-printing only
	Ty   value.Type
}

func (Var) ExprKind() ExprKind { return KVar }
func (Var) isDerefPath()       {}

//-----------------------------------------------------------------------------
// Operators
//-----------------------------------------------------------------------------

type UnOp struct {
	Op UnaryOp
	E  Expr
}

func (UnOp) ExprKind() ExprKind { return KUnOp }

type BinOp struct {
	Op BinaryOp
	E1 Expr
	E2 Expr
}

func (BinOp) ExprKind() ExprKind { return KBinOp }

// Cast converts E to Target, per the cast matrix in pkg/ops.
type Cast struct {
	Target value.Type
	E      Expr
}

func (Cast) ExprKind() ExprKind { return KCast }

//-----------------------------------------------------------------------------
// Arrays, records
//-----------------------------------------------------------------------------

// ArrRead reads an element (Singleton) or slice (Length) of Arr at Idx.
type ArrRead struct {
	Arr  Expr
	Idx  Expr
	Kind ArrReadKind
	N    Expr // slice length expression, valid when Kind == Length
}

func (ArrRead) ExprKind() ExprKind { return KArrRead }
func (ArrRead) isDerefPath()       {}

// ArrWrite is desugared to Assign(ArrRead(...), Rhs) on entry to the
// interpreter.
type ArrWrite struct {
	Arr  Expr
	Idx  Expr
	Kind ArrReadKind
	N    Expr
	Rhs  Expr
}

func (ArrWrite) ExprKind() ExprKind { return KArrWrite }

// Proj projects a named field out of a struct value.
type Proj struct {
	Struct Expr
	Field  string
}

func (Proj) ExprKind() ExprKind { return KProj }
func (Proj) isDerefPath()       {}

//-----------------------------------------------------------------------------
// Bindings
//-----------------------------------------------------------------------------

// Let introduces an immutable binding. When ForceInline is true, E1 is
// substituted textually into E2 rather than reduced once.
type Let struct {
	X           UniqID
	Name        string
	ForceInline bool
	E1          Expr
	E2          Expr
}

func (Let) ExprKind() ExprKind { return KLet }

// LetRef introduces a mutable reference. E1 is nil when no initializer was
// given, in which case the slot is bound to the type-driven default.
type LetRef struct {
	X    UniqID
	Name string
	Ty   value.Type
	E1   Expr // nil => use initial(Ty)
	E2   Expr
}

func (LetRef) ExprKind() ExprKind { return KLetRef }

//-----------------------------------------------------------------------------
// Assignment and control flow
//-----------------------------------------------------------------------------

// Assign writes Rhs through the deref path Lhs.
type Assign struct {
	Lhs DerefPath
	Rhs Expr
}

func (Assign) ExprKind() ExprKind { return KAssign }

type Seq struct {
	E1 Expr
	E2 Expr
}

func (Seq) ExprKind() ExprKind { return KSeq }

type If struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (If) ExprKind() ExprKind { return KIf }

type While struct {
	Cond Expr
	Body Expr
}

func (While) ExprKind() ExprKind { return KWhile }

// For binds X to Start, Start+1, ... Start+Len-1 in ascending order and
// reduces Body once per iteration.
type For struct {
	X     UniqID
	Name  string
	Start Expr
	Len   Expr
	Body  Expr
}

func (For) ExprKind() ExprKind { return KFor }

//-----------------------------------------------------------------------------
// Rejected / transparent constructs
//-----------------------------------------------------------------------------

// Call is always rejected as an unsupported construct.
type Call struct {
	Fn   Expr
	Args []Expr
}

func (Call) ExprKind() ExprKind { return KCall }

// Print renders E's reduced form to the branch's output buffer.
type Print struct {
	Newline bool
	E       Expr
}

func (Print) ExprKind() ExprKind { return KPrint }

// Error is an explicit error node carrying a user message.
type Error struct {
	Msg string
}

func (Error) ExprKind() ExprKind { return KError }

// LUT is a transparent wrapper around E.
type LUT struct {
	Tag string
	E   Expr
}

func (LUT) ExprKind() ExprKind { return KLUT }

// BPerm is always rejected as an unsupported construct.
type BPerm struct {
	A Expr
	B Expr
}

func (BPerm) ExprKind() ExprKind { return KBPerm }
