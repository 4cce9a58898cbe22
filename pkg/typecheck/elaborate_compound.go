package typecheck

import (
	"fmt"
	"strconv"

	"ziria-lang/interp-go/pkg/ir"
	"ziria-lang/interp-go/pkg/srcexpr"
	"ziria-lang/interp-go/pkg/value"
)

var sliceLenSeq int64

// sliceLenCounter mints a fresh symbolic name for a slice read whose length
// isn't a literal in source form: array types may carry a symbolic length.
func sliceLenCounter() int64 {
	sliceLenSeq++
	return sliceLenSeq
}

func elaborateArray(node srcexpr.ArrayLit, env *Env) (ir.Expr, value.Type, error) {
	if len(node.Elems) == 0 {
		return nil, value.Type{}, &ErrType{Msg: "empty array literal has no element type"}
	}
	elems := make([]ir.Expr, len(node.Elems))
	first, elemTy, err := Elaborate(node.Elems[0], env)
	if err != nil {
		return nil, value.Type{}, err
	}
	elems[0] = first
	for i := 1; i < len(node.Elems); i++ {
		e, ty, err := Elaborate(node.Elems[i], env)
		if err != nil {
			return nil, value.Type{}, err
		}
		if !ty.Equal(elemTy) {
			return nil, value.Type{}, &ErrType{Msg: fmt.Sprintf("array element %d has type %s, expected %s", i, ty, elemTy)}
		}
		elems[i] = e
	}
	arrTy := value.Array(value.LitLen(int64(len(node.Elems))), elemTy)
	return ir.ValArr{Elems: elems}, arrTy, nil
}

func elaborateStruct(node srcexpr.StructLit, env *Env) (ir.Expr, value.Type, error) {
	structTy, ok := env.lookupStruct(node.TypeName)
	if !ok {
		return nil, value.Type{}, &ErrType{Msg: fmt.Sprintf("undefined struct type %q", node.TypeName)}
	}
	if len(node.Fields) != len(structTy.StructFields) {
		return nil, value.Type{}, &ErrType{Msg: fmt.Sprintf("struct %s expects %d fields, got %d", node.TypeName, len(structTy.StructFields), len(node.Fields))}
	}
	fields := make([]ir.StructField, len(structTy.StructFields))
	for i, want := range structTy.StructFields {
		got := node.Fields[i]
		if got.Name != want.Name {
			return nil, value.Type{}, &ErrType{Msg: fmt.Sprintf("struct %s field %d: expected %q, got %q", node.TypeName, i, want.Name, got.Name)}
		}
		e, ty, err := Elaborate(got.Val, env)
		if err != nil {
			return nil, value.Type{}, err
		}
		if !ty.Equal(want.Type) {
			return nil, value.Type{}, &ErrType{Msg: fmt.Sprintf("struct %s field %q has type %s, expected %s", node.TypeName, want.Name, ty, want.Type)}
		}
		fields[i] = ir.StructField{Name: want.Name, Val: e}
	}
	return ir.Struct{Ty: structTy, Fields: fields}, structTy, nil
}

func elaborateUnary(node srcexpr.Unary, env *Env) (ir.Expr, value.Type, error) {
	e, ty, err := Elaborate(node.E, env)
	if err != nil {
		return nil, value.Type{}, err
	}
	switch node.Op {
	case "-":
		if ty.Kind != value.TInt && ty.Kind != value.TDouble {
			return nil, value.Type{}, &ErrType{Msg: fmt.Sprintf("unary - requires int or double, got %s", ty)}
		}
		return ir.UnOp{Op: ir.OpNeg, E: e}, ty, nil
	case "~":
		if ty.Kind != value.TInt && ty.Kind != value.TBit && ty.Kind != value.TBool {
			return nil, value.Type{}, &ErrType{Msg: fmt.Sprintf("~ requires int, bit, or bool, got %s", ty)}
		}
		return ir.UnOp{Op: ir.OpBwNeg, E: e}, ty, nil
	case "not":
		if ty.Kind != value.TBool {
			return nil, value.Type{}, &ErrType{Msg: fmt.Sprintf("not requires bool, got %s", ty)}
		}
		return ir.UnOp{Op: ir.OpNot, E: e}, value.Bool, nil
	default:
		return nil, value.Type{}, &ErrType{Msg: fmt.Sprintf("unknown unary operator %q", node.Op)}
	}
}

var arithOps = map[string]ir.BinaryOp{"+": ir.OpAdd, "-": ir.OpSub, "*": ir.OpMult, "/": ir.OpDiv, "%": ir.OpRem, "**": ir.OpExpon}
var shiftOps = map[string]ir.BinaryOp{"<<": ir.OpShL, ">>": ir.OpShR}
var bitwiseOps = map[string]ir.BinaryOp{"&": ir.OpBwAnd, "|": ir.OpBwOr, "^": ir.OpBwXor}
var compareOps = map[string]ir.BinaryOp{"==": ir.OpEq, "!=": ir.OpNeq, "<": ir.OpLt, ">": ir.OpGt, "<=": ir.OpLeq, ">=": ir.OpGeq}
var logicalOps = map[string]ir.BinaryOp{"&&": ir.OpAnd, "||": ir.OpOr}

func elaborateBinary(node srcexpr.Binary, env *Env) (ir.Expr, value.Type, error) {
	l, lty, err := Elaborate(node.L, env)
	if err != nil {
		return nil, value.Type{}, err
	}
	r, rty, err := Elaborate(node.R, env)
	if err != nil {
		return nil, value.Type{}, err
	}

	if op, ok := arithOps[node.Op]; ok {
		if !lty.Equal(rty) || (lty.Kind != value.TInt && lty.Kind != value.TDouble) {
			return nil, value.Type{}, &ErrType{Msg: fmt.Sprintf("%s requires matching int or double operands, got %s and %s", node.Op, lty, rty)}
		}
		return ir.BinOp{Op: op, E1: l, E2: r}, lty, nil
	}
	if op, ok := shiftOps[node.Op]; ok {
		if lty.Kind != value.TInt || rty.Kind != value.TInt {
			return nil, value.Type{}, &ErrType{Msg: fmt.Sprintf("%s requires int operands, got %s and %s", node.Op, lty, rty)}
		}
		return ir.BinOp{Op: op, E1: l, E2: r}, lty, nil
	}
	if op, ok := bitwiseOps[node.Op]; ok {
		if !lty.Equal(rty) || (lty.Kind != value.TInt && lty.Kind != value.TBit && lty.Kind != value.TBool) {
			return nil, value.Type{}, &ErrType{Msg: fmt.Sprintf("%s requires matching int, bit, or bool operands, got %s and %s", node.Op, lty, rty)}
		}
		return ir.BinOp{Op: op, E1: l, E2: r}, lty, nil
	}
	if op, ok := compareOps[node.Op]; ok {
		if !lty.Equal(rty) || !lty.Orderable() {
			return nil, value.Type{}, &ErrType{Msg: fmt.Sprintf("%s requires matching orderable operands, got %s and %s", node.Op, lty, rty)}
		}
		return ir.BinOp{Op: op, E1: l, E2: r}, value.Bool, nil
	}
	if op, ok := logicalOps[node.Op]; ok {
		if lty.Kind != value.TBool || rty.Kind != value.TBool {
			return nil, value.Type{}, &ErrType{Msg: fmt.Sprintf("%s requires bool operands, got %s and %s", node.Op, lty, rty)}
		}
		return ir.BinOp{Op: op, E1: l, E2: r}, value.Bool, nil
	}
	return nil, value.Type{}, &ErrType{Msg: fmt.Sprintf("unknown binary operator %q", node.Op)}
}

func elaborateIndex(node srcexpr.Index, env *Env) (ir.Expr, value.Type, error) {
	arr, arrTy, err := Elaborate(node.Arr, env)
	if err != nil {
		return nil, value.Type{}, err
	}
	if arrTy.Kind != value.TArray {
		return nil, value.Type{}, &ErrType{Msg: fmt.Sprintf("index requires an array, got %s", arrTy)}
	}
	idx, idxTy, err := Elaborate(node.Idx, env)
	if err != nil {
		return nil, value.Type{}, err
	}
	if idxTy.Kind != value.TInt {
		return nil, value.Type{}, &ErrType{Msg: fmt.Sprintf("array index must be int, got %s", idxTy)}
	}
	arrDeref, isDeref := arr.(ir.DerefPath)
	if !isDeref {
		return nil, value.Type{}, &ErrType{Msg: "array read target is not a variable, array read, or projection"}
	}
	if node.Len == nil {
		return ir.ArrRead{Arr: arrDeref, Idx: idx, Kind: ir.Singleton}, *arrTy.ArrayElem, nil
	}
	length, lenTy, err := Elaborate(node.Len, env)
	if err != nil {
		return nil, value.Type{}, err
	}
	if lenTy.Kind != value.TInt {
		return nil, value.Type{}, &ErrType{Msg: fmt.Sprintf("slice length must be int, got %s", lenTy)}
	}
	sliceLen := value.SymLen(fmt.Sprintf("slice@%d", sliceLenCounter()))
	if lit, isLit := node.Len.(srcexpr.IntLit); isLit {
		if n, err := strconv.ParseInt(lit.Text, 10, 64); err == nil {
			sliceLen = value.LitLen(n)
		}
	}
	return ir.ArrRead{Arr: arrDeref, Idx: idx, Kind: ir.Length, N: length}, value.Array(sliceLen, *arrTy.ArrayElem), nil
}

func elaborateProj(node srcexpr.Proj, env *Env) (ir.Expr, value.Type, error) {
	s, sty, err := Elaborate(node.Struct, env)
	if err != nil {
		return nil, value.Type{}, err
	}
	if sty.Kind != value.TStruct {
		return nil, value.Type{}, &ErrType{Msg: fmt.Sprintf("projection requires a struct, got %s", sty)}
	}
	for _, f := range sty.StructFields {
		if f.Name == node.Field {
			return ir.Proj{Struct: s, Field: node.Field}, f.Type, nil
		}
	}
	return nil, value.Type{}, &ErrType{Msg: fmt.Sprintf("struct %s has no field %q", sty.StructName, node.Field)}
}

func elaborateLet(node srcexpr.Let, env *Env) (ir.Expr, value.Type, error) {
	rhs, rty, err := Elaborate(node.Rhs, env)
	if err != nil {
		return nil, value.Type{}, err
	}
	child := env.child()
	id := child.bind(node.Name, rty)
	body, bty, err := Elaborate(node.Body, child)
	if err != nil {
		return nil, value.Type{}, err
	}
	return ir.Let{X: id, Name: node.Name, E1: rhs, E2: body}, bty, nil
}

func elaborateLetRef(node srcexpr.LetRef, env *Env) (ir.Expr, value.Type, error) {
	if node.Rhs == nil {
		return nil, value.Type{}, &ErrType{Msg: "var without an initializer is not expressible in source form; give it an initial value"}
	}
	rhs, rty, err := Elaborate(node.Rhs, env)
	if err != nil {
		return nil, value.Type{}, err
	}
	child := env.child()
	id := child.bind(node.Name, rty)
	body, bty, err := Elaborate(node.Body, child)
	if err != nil {
		return nil, value.Type{}, err
	}
	return ir.LetRef{X: id, Name: node.Name, Ty: rty, E1: rhs, E2: body}, bty, nil
}

func elaborateAssign(node srcexpr.Assign, env *Env) (ir.Expr, value.Type, error) {
	lhs, lty, err := Elaborate(node.Lhs, env)
	if err != nil {
		return nil, value.Type{}, err
	}
	lhsDeref, isDeref := lhs.(ir.DerefPath)
	if !isDeref {
		return nil, value.Type{}, &ErrType{Msg: "assignment target is not a variable, array read, or projection"}
	}
	rhs, rty, err := Elaborate(node.Rhs, env)
	if err != nil {
		return nil, value.Type{}, err
	}
	if !lty.Equal(rty) {
		return nil, value.Type{}, &ErrType{Msg: fmt.Sprintf("assignment type mismatch: %s := %s", lty, rty)}
	}
	return ir.Assign{Lhs: lhsDeref, Rhs: rhs}, value.Unit, nil
}

func elaborateSeq(node srcexpr.Seq, env *Env) (ir.Expr, value.Type, error) {
	first, _, err := Elaborate(node.First, env)
	if err != nil {
		return nil, value.Type{}, err
	}
	second, sty, err := Elaborate(node.Second, env)
	if err != nil {
		return nil, value.Type{}, err
	}
	return ir.Seq{E1: first, E2: second}, sty, nil
}

func elaborateIf(node srcexpr.If, env *Env) (ir.Expr, value.Type, error) {
	cond, cty, err := Elaborate(node.Cond, env)
	if err != nil {
		return nil, value.Type{}, err
	}
	if cty.Kind != value.TBool {
		return nil, value.Type{}, &ErrType{Msg: fmt.Sprintf("if condition must be bool, got %s", cty)}
	}
	then, tty, err := Elaborate(node.Then, env)
	if err != nil {
		return nil, value.Type{}, err
	}
	els, ety, err := Elaborate(node.Else, env)
	if err != nil {
		return nil, value.Type{}, err
	}
	if !tty.Equal(ety) {
		return nil, value.Type{}, &ErrType{Msg: fmt.Sprintf("if branches disagree: %s vs %s", tty, ety)}
	}
	return ir.If{Cond: cond, Then: then, Else: els}, tty, nil
}

func elaborateWhile(node srcexpr.While, env *Env) (ir.Expr, value.Type, error) {
	cond, cty, err := Elaborate(node.Cond, env)
	if err != nil {
		return nil, value.Type{}, err
	}
	if cty.Kind != value.TBool {
		return nil, value.Type{}, &ErrType{Msg: fmt.Sprintf("while condition must be bool, got %s", cty)}
	}
	body, _, err := Elaborate(node.Body, env)
	if err != nil {
		return nil, value.Type{}, err
	}
	return ir.While{Cond: cond, Body: body}, value.Unit, nil
}

func elaborateFor(node srcexpr.For, env *Env) (ir.Expr, value.Type, error) {
	start, sty, err := Elaborate(node.Start, env)
	if err != nil {
		return nil, value.Type{}, err
	}
	if sty.Kind != value.TInt {
		return nil, value.Type{}, &ErrType{Msg: fmt.Sprintf("for loop start must be int, got %s", sty)}
	}
	length, lty, err := Elaborate(node.Len, env)
	if err != nil {
		return nil, value.Type{}, err
	}
	if lty.Kind != value.TInt {
		return nil, value.Type{}, &ErrType{Msg: fmt.Sprintf("for loop length must be int, got %s", lty)}
	}
	child := env.child()
	id := child.bind(node.Name, sty)
	body, _, err := Elaborate(node.Body, child)
	if err != nil {
		return nil, value.Type{}, err
	}
	return ir.For{X: id, Name: node.Name, Start: start, Len: length, Body: body}, value.Unit, nil
}
