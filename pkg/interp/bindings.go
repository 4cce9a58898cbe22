package interp

import "ziria-lang/interp-go/pkg/ir"

// evalLet evaluates a let binding. A force-inline let is modeled as
// textual substitution of E1 into E2 before reduction; an ordinary let
// reduces E1 once, pushes it onto the heap under X, and pops on the way
// back out so sibling scopes never see it.
func evalLet(ctx Ctx, n ir.Let) []Branch {
	if n.ForceInline {
		return Eval(ctx, Subst(n.X, n.E1, n.E2))
	}
	e1Branches := Eval(ctx, n.E1)
	return sequence(e1Branches, func(b1 Branch) []Branch {
		return pushEvalPop(b1.Ctx, n.X, n.Name, b1.Expr, n.E2)
	})
}

// evalLetRef evaluates a mutable binding, defaulted to initial(Ty) when no
// initializer is given.
func evalLetRef(ctx Ctx, n ir.LetRef) []Branch {
	if n.E1 == nil {
		initVal, err := ir.InitialValue(n.Ty)
		if err != nil {
			return one(fail(ctx, err))
		}
		return pushEvalPop(ctx, n.X, n.Name, initVal, n.E2)
	}
	e1Branches := Eval(ctx, n.E1)
	return sequence(e1Branches, func(b1 Branch) []Branch {
		return pushEvalPop(b1.Ctx, n.X, n.Name, b1.Expr, n.E2)
	})
}

// pushEvalPop pushes v under (x, name), reduces body, and pops on every
// successful branch before returning. Errored branches terminate without
// popping, which is harmless since no further reduction walks that branch.
func pushEvalPop(ctx Ctx, x ir.UniqID, name string, v ir.Expr, body ir.Expr) []Branch {
	ctx.Heap.Push(x, name, v)
	bodyBranches := Eval(ctx, body)
	return sequence(bodyBranches, func(b Branch) []Branch {
		b.Ctx.Heap.Pop()
		return one(b)
	})
}
