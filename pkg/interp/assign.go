package interp

import (
	"ziria-lang/interp-go/pkg/ir"
	"ziria-lang/interp-go/pkg/value"
)

// evalAssign reduces the right-hand side, then walks the deref path down
// to its root variable, rebuilding each container level along the way.
func evalAssign(ctx Ctx, n ir.Assign) []Branch {
	rhsBranches := Eval(ctx, n.Rhs)
	return sequence(rhsBranches, func(b Branch) []Branch {
		return assignInto(b.Ctx, n.Lhs, b.Expr)
	})
}

// assignInto rewrites the deref path rooted at path so that its denoted
// slot now holds rhs, updating the owning variable on the heap. Each case
// resolves just enough of its sub-path to locate the slot, recursing
// upward once the containing array/struct has been rebuilt.
func assignInto(ctx Ctx, path ir.Expr, rhs ir.Expr) []Branch {
	switch p := path.(type) {
	case ir.Var:
		if err := ctx.Heap.Set(p.ID, p.Name, rhs); err != nil {
			return one(fail(ctx, err))
		}
		return one(ok(unitVal(), ctx))

	case ir.ArrRead:
		return assignArrRead(ctx, p, rhs)

	case ir.Proj:
		structBranches := Eval(ctx, p.Struct)
		return sequence(structBranches, func(bs Branch) []Branch {
			s, isStruct := bs.Expr.(ir.Struct)
			if !isStruct {
				return one(fail(bs.Ctx, &ErrPartialAssignment{Detail: "struct operand not ground"}))
			}
			before, _, after, err := ir.FindField(p.Field, s)
			if err != nil {
				return one(fail(bs.Ctx, err))
			}
			newStruct := ir.SpliceField(s.Ty, before, ir.StructField{Name: p.Field, Val: rhs}, after)
			return assignInto(bs.Ctx, p.Struct, newStruct)
		})

	default:
		return one(fail(ctx, &ErrMalformedLhs{Detail: "assignment target is not a variable, array read, or projection"}))
	}
}

func assignArrRead(ctx Ctx, p ir.ArrRead, rhs ir.Expr) []Branch {
	idxBranches := Eval(ctx, p.Idx)
	return sequence(idxBranches, func(bi Branch) []Branch {
		idxVal, isVal := bi.Expr.(ir.Val)
		if !isVal || idxVal.V.Kind != value.KInt {
			return one(fail(bi.Ctx, &ErrPartialAssignment{Detail: "array index not ground"}))
		}
		i := idxVal.V.Int.Int64()

		arrBranches := Eval(bi.Ctx, p.Arr)
		return sequence(arrBranches, func(ba Branch) []Branch {
			arr, isArr := ba.Expr.(ir.ValArr)
			if !isArr {
				return one(fail(ba.Ctx, &ErrPartialAssignment{Detail: "array operand not ground"}))
			}

			if p.Kind == ir.Singleton {
				prefix, _, suffix, err := ir.SplitArrayAt(i, arr)
				if err != nil {
					return one(fail(ba.Ctx, err))
				}
				newArr := ir.SpliceArray(prefix, rhs, suffix)
				return assignInto(ba.Ctx, p.Arr, newArr)
			}

			nBranches := Eval(ba.Ctx, p.N)
			return sequence(nBranches, func(bn Branch) []Branch {
				nVal, isN := bn.Expr.(ir.Val)
				if !isN || nVal.V.Kind != value.KInt {
					return one(fail(bn.Ctx, &ErrPartialAssignment{Detail: "slice length not ground"}))
				}
				length := nVal.V.Int.Int64()
				rhsArr, isRhsArr := rhs.(ir.ValArr)
				if !isRhsArr {
					return one(fail(bn.Ctx, &ErrPartialAssignment{Detail: "slice assignment value not ground"}))
				}
				if int64(len(rhsArr.Elems)) != length {
					panic("interp: slice write length does not match declared slice length")
				}
				prefix, _, suffix, err := ir.SliceArrayAt(i, length, arr)
				if err != nil {
					return one(fail(bn.Ctx, err))
				}
				newArr := ir.SpliceArraySlice(prefix, rhsArr.Elems, suffix)
				return assignInto(bn.Ctx, p.Arr, newArr)
			})
		})
	})
}
