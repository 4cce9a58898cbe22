package interp

import (
	"math/big"

	"ziria-lang/interp-go/pkg/guess"
	"ziria-lang/interp-go/pkg/ir"
	"ziria-lang/interp-go/pkg/value"
)

// guessFreeVar handles a free variable read in approximation mode. Only
// boolean-typed variables are worth guessing; any other type is simply
// carried forward symbolically, same as in partial mode, since nothing
// downstream needs it resolved to a ground value to make progress.
func guessFreeVar(ctx Ctx, v ir.Var) []Branch {
	if v.Ty.Kind == value.TBool {
		return guessBool(ctx, ir.CanonicalKey(v))
	}
	return one(ok(v, ctx))
}

// guessStuck is the approximation-mode fallback for every other stuck
// point: a dispatch miss, a non-ground operand, or a control-flow condition
// that isn't ground. A comparison of a symbolic term against a ground
// integer is resolved against that term's recorded domain; any other
// boolean-shaped residual falls back to plain memoized guessing; anything
// else is residualized, matching partial mode, since a caller in
// approximation mode only ever needs a concrete answer for control flow or
// a boolean sub-expression.
func guessStuck(ctx Ctx, residual ir.Expr) []Branch {
	if bo, isBinOp := residual.(ir.BinOp); isBinOp {
		if k, sym, cmp, matched := comparisonShape(bo); matched {
			return guessComparison(ctx, ir.CanonicalKey(sym), cmp, k)
		}
	}
	if isBoolTyped(residual) {
		return guessBool(ctx, ir.CanonicalKey(residual))
	}
	return one(ok(residual, ctx))
}

// guessBool reuses a previously memoized guess for key if one exists;
// otherwise it forks into a true branch and a false branch, each recording
// its own guess so that sibling branches never observe each other's choice.
// key must be a canonical, uniqId-carrying form (see ir.CanonicalKey), not
// Pretty's source-name rendering, or two unrelated variables sharing a name
// would collide onto the same guess.
func guessBool(ctx Ctx, key string) []Branch {
	if v, found := ctx.Guesses.LookupBool(key); found {
		return one(ok(boolExpr(v), ctx))
	}
	trueCtx := ctx.fork()
	trueCtx.Guesses.RecordBool(key, true)
	falseCtx := ctx.fork()
	falseCtx.Guesses.RecordBool(key, false)
	return []Branch{ok(boolExpr(true), trueCtx), ok(boolExpr(false), falseCtx)}
}

// guessComparison resolves "sym cmp k" by narrowing sym's recorded domain.
// When the domain already rules out one outcome, only the surviving branch
// is produced; this is the pruning that keeps the approximator from
// exploring outcomes the domain already excludes. key must be a canonical
// key for sym, same requirement as guessBool.
func guessComparison(ctx Ctx, key string, cmp guess.Comparison, k *big.Int) []Branch {
	dom := ctx.Guesses.Domain(key)
	posDom := guess.Intersect(dom, guess.PositiveDomain(cmp, k))
	negDom := guess.Intersect(dom, guess.PositiveDomain(cmp.Negate(), k))
	posEmpty := posDom.Empty()
	negEmpty := negDom.Empty()

	switch {
	case posEmpty && negEmpty:
		return one(fail(ctx, &ErrMalformedLhs{Detail: "contradictory domain for " + key}))
	case posEmpty:
		c := ctx.fork()
		c.Guesses.RecordDomain(key, negDom)
		return one(ok(boolExpr(false), c))
	case negEmpty:
		c := ctx.fork()
		c.Guesses.RecordDomain(key, posDom)
		return one(ok(boolExpr(true), c))
	default:
		trueCtx := ctx.fork()
		trueCtx.Guesses.RecordDomain(key, posDom)
		falseCtx := ctx.fork()
		falseCtx.Guesses.RecordDomain(key, negDom)
		return []Branch{ok(boolExpr(true), trueCtx), ok(boolExpr(false), falseCtx)}
	}
}

func boolExpr(b bool) ir.Expr { return ir.Val{Ty: value.Bool, V: value.VBool(b)} }

func isBoolTyped(e ir.Expr) bool {
	switch n := e.(type) {
	case ir.Var:
		return n.Ty.Kind == value.TBool
	case ir.BinOp:
		return isComparisonOp(n.Op) || n.Op == ir.OpAnd || n.Op == ir.OpOr
	case ir.UnOp:
		return n.Op == ir.OpNot
	default:
		return false
	}
}

func isComparisonOp(op ir.BinaryOp) bool {
	switch op {
	case ir.OpEq, ir.OpNeq, ir.OpLt, ir.OpGt, ir.OpLeq, ir.OpGeq:
		return true
	default:
		return false
	}
}

func binOpToCmp(op ir.BinaryOp) (guess.Comparison, bool) {
	switch op {
	case ir.OpEq:
		return guess.CmpEq, true
	case ir.OpNeq:
		return guess.CmpNeq, true
	case ir.OpLt:
		return guess.CmpLt, true
	case ir.OpGt:
		return guess.CmpGt, true
	case ir.OpLeq:
		return guess.CmpLeq, true
	case ir.OpGeq:
		return guess.CmpGeq, true
	default:
		return 0, false
	}
}

// mirrorLhsConst flips a comparison written as "k OP sym" into the
// equivalent "sym OP' k" so the symbolic operand is always on the left.
func mirrorLhsConst(cmp guess.Comparison) guess.Comparison {
	switch cmp {
	case guess.CmpLt:
		return guess.CmpGt
	case guess.CmpGt:
		return guess.CmpLt
	case guess.CmpLeq:
		return guess.CmpGeq
	case guess.CmpGeq:
		return guess.CmpLeq
	default:
		return cmp
	}
}

// comparisonShape recognizes "symbolic cmp literal" or "literal cmp
// symbolic" binary comparisons over integers, returning the literal, the
// symbolic side, and the comparison oriented as "symbolic cmp literal".
func comparisonShape(bo ir.BinOp) (k *big.Int, sym ir.Expr, cmp guess.Comparison, matched bool) {
	baseCmp, isCmp := binOpToCmp(bo.Op)
	if !isCmp {
		return nil, nil, 0, false
	}
	if v2, isVal2 := bo.E2.(ir.Val); isVal2 && v2.V.Kind == value.KInt {
		if _, e1IsVal := bo.E1.(ir.Val); !e1IsVal {
			return v2.V.Int, bo.E1, baseCmp, true
		}
	}
	if v1, isVal1 := bo.E1.(ir.Val); isVal1 && v1.V.Kind == value.KInt {
		if _, e2IsVal := bo.E2.(ir.Val); !e2IsVal {
			return v1.V.Int, bo.E2, mirrorLhsConst(baseCmp), true
		}
	}
	return nil, nil, 0, false
}
