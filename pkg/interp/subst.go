package interp

import "ziria-lang/interp-go/pkg/ir"

// Subst replaces every occurrence of the variable x with replacement inside
// in. Capture is not a concern here: unique ids are assigned once by the
// type checker and never reused by an inner binder, so no binder below x
// can shadow it.
func Subst(x ir.UniqID, replacement ir.Expr, in ir.Expr) ir.Expr {
	if in == nil {
		return nil
	}
	switch n := in.(type) {
	case ir.Val:
		return n
	case ir.ValArr:
		elems := make([]ir.Expr, len(n.Elems))
		for i, e := range n.Elems {
			elems[i] = Subst(x, replacement, e)
		}
		return ir.ValArr{Elems: elems}
	case ir.Struct:
		fields := make([]ir.StructField, len(n.Fields))
		for i, f := range n.Fields {
			fields[i] = ir.StructField{Name: f.Name, Val: Subst(x, replacement, f.Val)}
		}
		return ir.Struct{Ty: n.Ty, Fields: fields}
	case ir.Var:
		if n.ID == x {
			return replacement
		}
		return n
	case ir.UnOp:
		return ir.UnOp{Op: n.Op, E: Subst(x, replacement, n.E)}
	case ir.BinOp:
		return ir.BinOp{Op: n.Op, E1: Subst(x, replacement, n.E1), E2: Subst(x, replacement, n.E2)}
	case ir.Cast:
		return ir.Cast{Target: n.Target, E: Subst(x, replacement, n.E)}
	case ir.ArrRead:
		return ir.ArrRead{
			Arr:  Subst(x, replacement, n.Arr),
			Idx:  Subst(x, replacement, n.Idx),
			Kind: n.Kind,
			N:    Subst(x, replacement, n.N),
		}
	case ir.ArrWrite:
		return ir.ArrWrite{
			Arr:  Subst(x, replacement, n.Arr),
			Idx:  Subst(x, replacement, n.Idx),
			Kind: n.Kind,
			N:    Subst(x, replacement, n.N),
			Rhs:  Subst(x, replacement, n.Rhs),
		}
	case ir.Proj:
		return ir.Proj{Struct: Subst(x, replacement, n.Struct), Field: n.Field}
	case ir.Let:
		e2 := n.E2
		substE1 := Subst(x, replacement, n.E1)
		if n.X != x {
			e2 = Subst(x, replacement, n.E2)
		}
		return ir.Let{X: n.X, Name: n.Name, ForceInline: n.ForceInline, E1: substE1, E2: e2}
	case ir.LetRef:
		var e1 ir.Expr
		if n.E1 != nil {
			e1 = Subst(x, replacement, n.E1)
		}
		e2 := n.E2
		if n.X != x {
			e2 = Subst(x, replacement, n.E2)
		}
		return ir.LetRef{X: n.X, Name: n.Name, Ty: n.Ty, E1: e1, E2: e2}
	case ir.Assign:
		lhs := Subst(x, replacement, n.Lhs)
		dp, _ := lhs.(ir.DerefPath)
		return ir.Assign{Lhs: dp, Rhs: Subst(x, replacement, n.Rhs)}
	case ir.Seq:
		return ir.Seq{E1: Subst(x, replacement, n.E1), E2: Subst(x, replacement, n.E2)}
	case ir.If:
		return ir.If{Cond: Subst(x, replacement, n.Cond), Then: Subst(x, replacement, n.Then), Else: Subst(x, replacement, n.Else)}
	case ir.While:
		return ir.While{Cond: Subst(x, replacement, n.Cond), Body: Subst(x, replacement, n.Body)}
	case ir.For:
		body := n.Body
		if n.X != x {
			body = Subst(x, replacement, n.Body)
		}
		return ir.For{X: n.X, Name: n.Name, Start: Subst(x, replacement, n.Start), Len: Subst(x, replacement, n.Len), Body: body}
	case ir.Call:
		args := make([]ir.Expr, len(n.Args))
		for i, a := range n.Args {
			args[i] = Subst(x, replacement, a)
		}
		return ir.Call{Fn: Subst(x, replacement, n.Fn), Args: args}
	case ir.Print:
		return ir.Print{Newline: n.Newline, E: Subst(x, replacement, n.E)}
	case ir.Error:
		return n
	case ir.LUT:
		return ir.LUT{Tag: n.Tag, E: Subst(x, replacement, n.E)}
	case ir.BPerm:
		return ir.BPerm{A: Subst(x, replacement, n.A), B: Subst(x, replacement, n.B)}
	default:
		return in
	}
}
