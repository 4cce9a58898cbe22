package interp

import (
	"ziria-lang/interp-go/pkg/ir"
	"ziria-lang/interp-go/pkg/ops"
	"ziria-lang/interp-go/pkg/value"
)

// Eval reduces e under ctx's mode, returning one branch per possible
// outcome. In approximation mode this may be zero or more reduced forms;
// partial and full mode never fork, so they always return exactly one
// Branch.
func Eval(ctx Ctx, e ir.Expr) []Branch {
	switch n := e.(type) {
	case ir.Val:
		return one(ok(n, ctx))
	case ir.ValArr:
		return evalArr(ctx, n)
	case ir.Struct:
		return evalStruct(ctx, n)
	case ir.Var:
		return evalVar(ctx, n)
	case ir.UnOp:
		return evalUnOp(ctx, n)
	case ir.BinOp:
		return evalBinOp(ctx, n)
	case ir.Cast:
		return evalCast(ctx, n)
	case ir.ArrRead:
		return evalArrRead(ctx, n)
	case ir.ArrWrite:
		return Eval(ctx, ir.Assign{Lhs: ir.ArrRead{Arr: n.Arr, Idx: n.Idx, Kind: n.Kind, N: n.N}, Rhs: n.Rhs})
	case ir.Proj:
		return evalProj(ctx, n)
	case ir.Let:
		return evalLet(ctx, n)
	case ir.LetRef:
		return evalLetRef(ctx, n)
	case ir.Assign:
		return evalAssign(ctx, n)
	case ir.Seq:
		return evalSeq(ctx, n)
	case ir.If:
		return evalIf(ctx, n)
	case ir.While:
		return evalWhile(ctx, n)
	case ir.For:
		return evalFor(ctx, n)
	case ir.Call:
		return one(fail(ctx, &ErrUnsupportedConstruct{Construct: "Call"}))
	case ir.Print:
		return evalPrint(ctx, n)
	case ir.LUT:
		return Eval(ctx, n.E)
	case ir.Error:
		return one(fail(ctx, &ErrExplicit{Msg: n.Msg}))
	case ir.BPerm:
		return one(fail(ctx, &ErrUnsupportedConstruct{Construct: "BPerm"}))
	default:
		return one(fail(ctx, &ErrMalformedLhs{Detail: "unknown expression node"}))
	}
}

//-----------------------------------------------------------------------------
// Literals and containers (rules 2, 4)
//-----------------------------------------------------------------------------

func evalArr(ctx Ctx, n ir.ValArr) []Branch {
	return evalExprList(ctx, n.Elems, func(reduced []ir.Expr, ctx Ctx) []Branch {
		return one(ok(ir.ValArr{Elems: reduced}, ctx))
	})
}

func evalStruct(ctx Ctx, n ir.Struct) []Branch {
	exprs := make([]ir.Expr, len(n.Fields))
	for i, f := range n.Fields {
		exprs[i] = f.Val
	}
	return evalExprList(ctx, exprs, func(reduced []ir.Expr, ctx Ctx) []Branch {
		fields := make([]ir.StructField, len(n.Fields))
		for i, f := range n.Fields {
			fields[i] = ir.StructField{Name: f.Name, Val: reduced[i]}
		}
		return one(ok(ir.Struct{Ty: n.Ty, Fields: fields}, ctx))
	})
}

// evalExprList reduces a list of expressions left-to-right, threading ctx
// (and therefore prints and heap mutations) through in program order, and
// fans out across the approximator's branches.
func evalExprList(ctx Ctx, exprs []ir.Expr, done func([]ir.Expr, Ctx) []Branch) []Branch {
	var rec func(i int, acc []ir.Expr, ctx Ctx) []Branch
	rec = func(i int, acc []ir.Expr, ctx Ctx) []Branch {
		if i == len(exprs) {
			return done(acc, ctx)
		}
		branches := Eval(ctx, exprs[i])
		return sequence(branches, func(b Branch) []Branch {
			return rec(i+1, append(append([]ir.Expr{}, acc...), b.Expr), b.Ctx)
		})
	}
	return rec(0, nil, ctx)
}

//-----------------------------------------------------------------------------
// Variables (rule 10)
//-----------------------------------------------------------------------------

func evalVar(ctx Ctx, n ir.Var) []Branch {
	if v, err := ctx.Heap.Get(n.ID, n.Name); err == nil {
		return one(ok(v, ctx))
	}
	switch ctx.Mode {
	case ModePartial:
		return one(ok(n, ctx))
	case ModeFull:
		return one(fail(ctx, &ErrFreeVariables{Detail: n.Name}))
	default: // ModeApprox
		return guessFreeVar(ctx, n)
	}
}

//-----------------------------------------------------------------------------
// Operators (rule 6)
//-----------------------------------------------------------------------------

func evalUnOp(ctx Ctx, n ir.UnOp) []Branch {
	branches := Eval(ctx, n.E)
	return sequence(branches, func(b Branch) []Branch {
		if n.Op == ir.OpALength {
			if arr, isArr := b.Expr.(ir.ValArr); isArr {
				return one(ok(ir.Val{Ty: value.Int(value.W32), V: value.VIntN(int64(len(arr.Elems)), value.W32)}, b.Ctx))
			}
			return stuck(b.Ctx, ir.UnOp{Op: n.Op, E: b.Expr}, "array length of non-array")
		}
		val, isVal := b.Expr.(ir.Val)
		if !isVal {
			return stuck(b.Ctx, ir.UnOp{Op: n.Op, E: b.Expr}, "operand not ground")
		}
		fn, matched := ops.DispatchUnary(n.Op, val.Ty)
		if !matched {
			return stuck(b.Ctx, ir.UnOp{Op: n.Op, E: b.Expr}, "no operator family matches")
		}
		result, err := fn(val.V)
		if err != nil {
			return one(fail(b.Ctx, err))
		}
		return one(ok(ir.Val{Ty: result.Type(), V: result}, b.Ctx))
	})
}

func evalBinOp(ctx Ctx, n ir.BinOp) []Branch {
	if n.Op == ir.OpAnd || n.Op == ir.OpOr {
		return evalShortCircuit(ctx, n)
	}
	b1s := Eval(ctx, n.E1)
	return sequence(b1s, func(b1 Branch) []Branch {
		b2s := Eval(b1.Ctx, n.E2)
		return sequence(b2s, func(b2 Branch) []Branch {
			return applyBinOp(b2.Ctx, n.Op, b1.Expr, b2.Expr)
		})
	})
}

// evalShortCircuit reduces both operands of And/Or, applying the operator
// only once both are ground; otherwise the operator is left residual (no
// short-circuit, since the source IR is assumed free of divergent
// sub-expressions).
func evalShortCircuit(ctx Ctx, n ir.BinOp) []Branch {
	b1s := Eval(ctx, n.E1)
	return sequence(b1s, func(b1 Branch) []Branch {
		b2s := Eval(b1.Ctx, n.E2)
		return sequence(b2s, func(b2 Branch) []Branch {
			v1, ok1 := b1.Expr.(ir.Val)
			v2, ok2 := b2.Expr.(ir.Val)
			if ok1 && ok2 && v1.V.Kind == value.KBool && v2.V.Kind == value.KBool {
				var result bool
				if n.Op == ir.OpAnd {
					result = v1.V.Bool && v2.V.Bool
				} else {
					result = v1.V.Bool || v2.V.Bool
				}
				return one(ok(ir.Val{Ty: value.Bool, V: value.VBool(result)}, b2.Ctx))
			}
			return stuck(b2.Ctx, ir.BinOp{Op: n.Op, E1: b1.Expr, E2: b2.Expr}, "and/or operand not ground bool")
		})
	})
}

func applyBinOp(ctx Ctx, op ir.BinaryOp, e1, e2 ir.Expr) []Branch {
	v1, ok1 := e1.(ir.Val)
	v2, ok2 := e2.(ir.Val)
	if !ok1 || !ok2 {
		return stuck(ctx, ir.BinOp{Op: op, E1: e1, E2: e2}, "operand not ground")
	}
	fn, matched := ops.DispatchBinary(op, v1.Ty, v2.Ty)
	if !matched {
		return stuck(ctx, ir.BinOp{Op: op, E1: e1, E2: e2}, "no operator family matches")
	}
	result, err := fn(v1.V, v2.V)
	if err != nil {
		return one(fail(ctx, err))
	}
	return one(ok(ir.Val{Ty: result.Type(), V: result}, ctx))
}

func evalCast(ctx Ctx, n ir.Cast) []Branch {
	branches := Eval(ctx, n.E)
	return sequence(branches, func(b Branch) []Branch {
		val, isVal := b.Expr.(ir.Val)
		if !isVal {
			return stuck(b.Ctx, ir.Cast{Target: n.Target, E: b.Expr}, "cast operand not ground")
		}
		fn, matched := ops.DispatchCast(val.Ty, n.Target)
		if !matched {
			return one(fail(b.Ctx, castDomainError(val.Ty, n.Target)))
		}
		result, err := fn(val.V, n.Target)
		if err != nil {
			return one(fail(b.Ctx, err))
		}
		return one(ok(ir.Val{Ty: n.Target, V: result}, b.Ctx))
	})
}

//-----------------------------------------------------------------------------
// Arrays and records (rules 3, 5)
//-----------------------------------------------------------------------------

func evalArrRead(ctx Ctx, n ir.ArrRead) []Branch {
	arrBranches := Eval(ctx, n.Arr)
	return sequence(arrBranches, func(ba Branch) []Branch {
		idxBranches := Eval(ba.Ctx, n.Idx)
		return sequence(idxBranches, func(bi Branch) []Branch {
			arr, isArr := ba.Expr.(ir.ValArr)
			idx, isIdx := bi.Expr.(ir.Val)
			if !isArr || !isIdx || idx.V.Kind != value.KInt {
				return stuck(bi.Ctx, ir.ArrRead{Arr: ba.Expr, Idx: bi.Expr, Kind: n.Kind, N: n.N}, "array read operands not ground")
			}
			i := idx.V.Int.Int64()
			if n.Kind == ir.Singleton {
				_, elem, _, err := ir.SplitArrayAt(i, arr)
				if err != nil {
					return one(fail(bi.Ctx, err))
				}
				return one(ok(elem, bi.Ctx))
			}
			nBranches := Eval(bi.Ctx, n.N)
			return sequence(nBranches, func(bn Branch) []Branch {
				lenVal, isLen := bn.Expr.(ir.Val)
				if !isLen || lenVal.V.Kind != value.KInt {
					return stuck(bn.Ctx, ir.ArrRead{Arr: arr, Idx: idx, Kind: n.Kind, N: bn.Expr}, "slice length not ground")
				}
				_, middle, _, err := ir.SliceArrayAt(i, lenVal.V.Int.Int64(), arr)
				if err != nil {
					return one(fail(bn.Ctx, err))
				}
				return one(ok(ir.ValArr{Elems: middle}, bn.Ctx))
			})
		})
	})
}

func evalProj(ctx Ctx, n ir.Proj) []Branch {
	branches := Eval(ctx, n.Struct)
	return sequence(branches, func(b Branch) []Branch {
		s, isStruct := b.Expr.(ir.Struct)
		if !isStruct {
			return stuck(b.Ctx, ir.Proj{Struct: b.Expr, Field: n.Field}, "projection operand not ground")
		}
		_, field, _, err := ir.FindField(n.Field, s)
		if err != nil {
			return one(fail(b.Ctx, err))
		}
		return one(ok(field.Val, b.Ctx))
	})
}

//-----------------------------------------------------------------------------
// Sequencing and control flow (rules 13-16)
//-----------------------------------------------------------------------------

func evalSeq(ctx Ctx, n ir.Seq) []Branch {
	b1s := Eval(ctx, n.E1)
	return sequence(b1s, func(b1 Branch) []Branch {
		return Eval(b1.Ctx, n.E2)
	})
}

func evalIf(ctx Ctx, n ir.If) []Branch {
	condBranches := Eval(ctx, n.Cond)
	return sequence(condBranches, func(b Branch) []Branch {
		v, isVal := b.Expr.(ir.Val)
		if isVal && v.V.Kind == value.KBool {
			if v.V.Bool {
				return Eval(b.Ctx, n.Then)
			}
			return Eval(b.Ctx, n.Else)
		}
		return controlFlowStuck(b.Ctx, ir.If{Cond: b.Expr, Then: n.Then, Else: n.Else}, "if condition not ground")
	})
}

func evalWhile(ctx Ctx, n ir.While) []Branch {
	condBranches := Eval(ctx, n.Cond)
	return sequence(condBranches, func(b Branch) []Branch {
		v, isVal := b.Expr.(ir.Val)
		if !isVal || v.V.Kind != value.KBool {
			return controlFlowStuck(b.Ctx, ir.While{Cond: b.Expr, Body: n.Body}, "while condition not ground")
		}
		if !v.V.Bool {
			return one(ok(unitVal(), b.Ctx))
		}
		bodyBranches := Eval(b.Ctx, n.Body)
		return sequence(bodyBranches, func(bb Branch) []Branch {
			return evalWhile(bb.Ctx, n)
		})
	})
}

func evalFor(ctx Ctx, n ir.For) []Branch {
	startBranches := Eval(ctx, n.Start)
	return sequence(startBranches, func(bs Branch) []Branch {
		lenBranches := Eval(bs.Ctx, n.Len)
		return sequence(lenBranches, func(bl Branch) []Branch {
			sv, okS := bs.Expr.(ir.Val)
			lv, okL := bl.Expr.(ir.Val)
			if !okS || !okL || sv.V.Kind != value.KInt || lv.V.Kind != value.KInt {
				return controlFlowStuck(bl.Ctx, ir.For{X: n.X, Name: n.Name, Start: bs.Expr, Len: bl.Expr, Body: n.Body}, "for bounds not ground")
			}
			start := sv.V.Int.Int64()
			length := lv.V.Int.Int64()
			if length < 0 {
				length = 0
			}
			ty := sv.V.Type()
			ctx2 := bl.Ctx
			ctx2.Heap.Push(n.X, n.Name, ir.Val{Ty: ty, V: value.VIntN(start, ty.IntWidth)})
			return forLoop(ctx2, n, start, start+length)
		})
	})
}

func forLoop(ctx Ctx, n ir.For, i, end int64) []Branch {
	if i >= end {
		ctx.Heap.Pop()
		return one(ok(unitVal(), ctx))
	}
	ty := value.Int(value.W32)
	if v, err := ctx.Heap.Get(n.X, n.Name); err == nil {
		if val, isVal := v.(ir.Val); isVal {
			ty = val.Ty
		}
	}
	if err := ctx.Heap.Set(n.X, n.Name, ir.Val{Ty: ty, V: value.VIntN(i, ty.IntWidth)}); err != nil {
		ctx.Heap.Pop()
		return one(fail(ctx, err))
	}
	bodyBranches := Eval(ctx, n.Body)
	return sequence(bodyBranches, func(b Branch) []Branch {
		return forLoop(b.Ctx, n, i+1, end)
	})
}

func evalPrint(ctx Ctx, n ir.Print) []Branch {
	branches := Eval(ctx, n.E)
	return sequence(branches, func(b Branch) []Branch {
		line := ir.Pretty(b.Expr)
		if n.Newline {
			line += "\n"
		}
		return one(ok(unitVal(), b.Ctx.print(line)))
	})
}

//-----------------------------------------------------------------------------
// Helpers
//-----------------------------------------------------------------------------

func unitVal() ir.Val { return ir.Val{Ty: value.Unit, V: value.VUnit()} }

func castDomainError(src, tgt value.Type) error {
	return &ops.ErrCastDomain{Msg: "no cast from " + src.String() + " to " + tgt.String()}
}

// stuck is the mode-dependent fallback for "operator dispatch matched
// nothing" / "sub-term is a free var" style stuck points: residualize in
// partial mode, error in full mode, delegate to the guesser in
// approximation mode.
func stuck(ctx Ctx, residual ir.Expr, detail string) []Branch {
	switch ctx.Mode {
	case ModePartial:
		return one(ok(residual, ctx))
	case ModeFull:
		return one(fail(ctx, &ErrFreeVariables{Detail: detail}))
	default:
		return guessStuck(ctx, residual)
	}
}

// controlFlowStuck is the stuck-point fallback specific to If/While/For:
// partial mode errors too (control flow cannot be residualized), full
// mode errors, approx mode guesses.
func controlFlowStuck(ctx Ctx, residual ir.Expr, detail string) []Branch {
	switch ctx.Mode {
	case ModePartial:
		return one(fail(ctx, &ErrControlFlowNotGround{Detail: detail}))
	case ModeFull:
		return one(fail(ctx, &ErrControlFlowNotGround{Detail: detail}))
	default:
		return guessStuck(ctx, residual)
	}
}
