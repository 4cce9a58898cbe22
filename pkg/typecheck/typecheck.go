// Package typecheck elaborates the untyped tree pkg/srcexpr produces into
// the typed expression IR pkg/interp consumes, playing the same "thin
// black-box type-checker" role the teacher's pkg/typechecker plays for full
// Able source: given an untyped tree, it returns either a typed expression
// or a diagnostic, never both. It only needs to support the small
// expression grammar pkg/srcexpr reads, not Able's
// generics/interfaces/unions/concurrency.
package typecheck

import (
	"fmt"
	"math/big"

	"ziria-lang/interp-go/pkg/ir"
	"ziria-lang/interp-go/pkg/srcexpr"
	"ziria-lang/interp-go/pkg/value"
)

// ErrType is a type-checking diagnostic.
type ErrType struct {
	Msg string
}

func (e *ErrType) Error() string { return "type error: " + e.Msg }

// Env binds source names to their unique id and type, and names struct
// types so struct literals can be elaborated: struct identity is by name.
type Env struct {
	parent  *Env
	vars    map[string]binding
	structs map[string]value.Type
	nextID  *ir.UniqID
}

type binding struct {
	id ir.UniqID
	ty value.Type
}

// NewEnv returns an empty top-level environment.
func NewEnv() *Env {
	var start ir.UniqID
	return &Env{vars: map[string]binding{}, structs: map[string]value.Type{}, nextID: &start}
}

// RegisterStruct makes a named struct type available to struct literals.
func (e *Env) RegisterStruct(ty value.Type) {
	e.structs[ty.StructName] = ty
}

func (e *Env) child() *Env {
	return &Env{parent: e, vars: map[string]binding{}, structs: e.structs, nextID: e.nextID}
}

func (e *Env) lookup(name string) (binding, bool) {
	for env := e; env != nil; env = env.parent {
		if b, ok := env.vars[name]; ok {
			return b, true
		}
	}
	return binding{}, false
}

func (e *Env) lookupStruct(name string) (value.Type, bool) {
	ty, ok := e.structs[name]
	return ty, ok
}

func (e *Env) bind(name string, ty value.Type) ir.UniqID {
	*e.nextID++
	e.vars[name] = binding{id: *e.nextID, ty: ty}
	return *e.nextID
}

// Elaborate type-checks n and returns the typed IR it denotes, along with
// its type.
func Elaborate(n srcexpr.Node, env *Env) (ir.Expr, value.Type, error) {
	switch node := n.(type) {
	case srcexpr.IntLit:
		i, ok := new(big.Int).SetString(node.Text, 10)
		if !ok {
			return nil, value.Type{}, &ErrType{Msg: fmt.Sprintf("malformed integer literal %q", node.Text)}
		}
		ty := value.Int(value.W32)
		return ir.Val{Ty: ty, V: value.VInt(i, value.W32)}, ty, nil

	case srcexpr.DoubleLit:
		var f float64
		if _, err := fmt.Sscanf(node.Text, "%g", &f); err != nil {
			return nil, value.Type{}, &ErrType{Msg: fmt.Sprintf("malformed double literal %q", node.Text)}
		}
		return ir.Val{Ty: value.Double, V: value.VDouble(f)}, value.Double, nil

	case srcexpr.BoolLit:
		return ir.Val{Ty: value.Bool, V: value.VBool(node.Value)}, value.Bool, nil

	case srcexpr.StringLit:
		return ir.Val{Ty: value.String, V: value.VString(node.Value)}, value.String, nil

	case srcexpr.BitLit:
		return ir.Val{Ty: value.Bit, V: value.VBit(node.Value)}, value.Bit, nil

	case srcexpr.Ident:
		b, ok := env.lookup(node.Name)
		if !ok {
			return nil, value.Type{}, &ErrType{Msg: fmt.Sprintf("undefined name %q", node.Name)}
		}
		return ir.Var{ID: b.id, Name: node.Name, Ty: b.ty}, b.ty, nil

	case srcexpr.ArrayLit:
		return elaborateArray(node, env)

	case srcexpr.StructLit:
		return elaborateStruct(node, env)

	case srcexpr.Unary:
		return elaborateUnary(node, env)

	case srcexpr.Binary:
		return elaborateBinary(node, env)

	case srcexpr.Index:
		return elaborateIndex(node, env)

	case srcexpr.Proj:
		return elaborateProj(node, env)

	case srcexpr.Let:
		return elaborateLet(node, env)

	case srcexpr.LetRef:
		return elaborateLetRef(node, env)

	case srcexpr.Assign:
		return elaborateAssign(node, env)

	case srcexpr.Seq:
		return elaborateSeq(node, env)

	case srcexpr.If:
		return elaborateIf(node, env)

	case srcexpr.While:
		return elaborateWhile(node, env)

	case srcexpr.For:
		return elaborateFor(node, env)

	case srcexpr.Print:
		e, _, err := Elaborate(node.E, env)
		if err != nil {
			return nil, value.Type{}, err
		}
		return ir.Print{Newline: node.Newline, E: e}, value.Unit, nil

	case srcexpr.ErrorNode:
		return ir.Error{Msg: node.Msg}, value.Unit, nil

	default:
		return nil, value.Type{}, &ErrType{Msg: "unsupported surface node"}
	}
}
