package interp

import (
	"ziria-lang/interp-go/pkg/ir"
	"ziria-lang/interp-go/pkg/srcexpr"
	"ziria-lang/interp-go/pkg/typecheck"
	"ziria-lang/interp-go/pkg/value"
)

// Result is the outcome of evaluating e to completion in Full or Partial
// mode: the reduced expression, plus any output the branch accumulated via
// Print.
type Result struct {
	Expr   ir.Expr
	Prints []string
}

// runSingle drives Partial or Full mode, both of which always yield exactly
// one branch, and unwraps it into a Result or an error.
func runSingle(mode Mode, e ir.Expr) (Result, error) {
	ctx := NewCtx(mode)
	branches := Eval(ctx, e)
	if len(branches) != 1 {
		panic("interp: partial/full evaluation produced other than one branch")
	}
	b := branches[0]
	if b.Err != nil {
		return Result{}, b.Err
	}
	return Result{Expr: b.Expr, Prints: b.Ctx.Prints}, nil
}

// EvalPartial reduces e as far as it can go without resolving free
// variables, residualizing wherever it gets stuck.
func EvalPartial(e ir.Expr) (Result, error) {
	return runSingle(ModePartial, e)
}

// EvalFull reduces e to a ground normal form, failing if any sub-expression
// cannot be resolved.
func EvalFull(e ir.Expr) (Result, error) {
	return runSingle(ModeFull, e)
}

// EvalInt fully evaluates e and requires the result be a ground integer.
func EvalInt(e ir.Expr) (*ir.Val, error) {
	res, err := EvalFull(e)
	if err != nil {
		return nil, err
	}
	v, isVal := res.Expr.(ir.Val)
	if !isVal || v.V.Kind != value.KInt {
		return nil, &ErrTypeProjection{Detail: "Not an integer: " + ir.Pretty(res.Expr)}
	}
	return &v, nil
}

// EvalBool fully evaluates e and requires the result be a ground boolean.
func EvalBool(e ir.Expr) (bool, error) {
	res, err := EvalFull(e)
	if err != nil {
		return false, err
	}
	v, isVal := res.Expr.(ir.Val)
	if !isVal || v.V.Kind != value.KBool {
		return false, &ErrTypeProjection{Detail: "Not a boolean: " + ir.Pretty(res.Expr)}
	}
	return v.V.Bool, nil
}

// Approximate runs e once per distinct guess combination the approximator
// explores, returning every surviving branch's boolean outcome. A branch
// whose residual never resolves to a ground boolean is dropped rather
// than reported as a counterexample. Error branches are dropped too (see
// DESIGN.md's open-question notes), except that when no branch succeeds
// and at least one errored, the last branch error is returned.
func Approximate(e ir.Expr) ([]bool, error) {
	ctx := NewCtx(ModeApprox)
	branches := Eval(ctx, e)
	var outcomes []bool
	var lastErr error
	sawSuccess := false
	for _, b := range branches {
		if b.Err != nil {
			lastErr = b.Err
			continue
		}
		v, isVal := b.Expr.(ir.Val)
		if !isVal || v.V.Kind != value.KBool {
			continue
		}
		sawSuccess = true
		outcomes = append(outcomes, v.V.Bool)
	}
	if !sawSuccess && lastErr != nil {
		return nil, lastErr
	}
	return outcomes, nil
}

// Satisfiable reports whether some guess combination makes e evaluate to
// true.
func Satisfiable(e ir.Expr) (bool, error) {
	outcomes, err := Approximate(e)
	if err != nil {
		return false, err
	}
	for _, o := range outcomes {
		if o {
			return true, nil
		}
	}
	return false, nil
}

// Provable reports whether every guess combination makes e evaluate to
// true. An errored branch counts neither as a counterexample nor as a
// witness; if every branch errored, that error is returned. An expression
// whose branches all end without error but none in a ground boolean is
// vacuously provable.
func Provable(e ir.Expr) (bool, error) {
	outcomes, err := Approximate(e)
	if err != nil {
		return false, err
	}
	for _, o := range outcomes {
		if !o {
			return false, nil
		}
	}
	return true, nil
}

// EvalSrcInt parses src as an expression, type-checks it against env, and
// fully evaluates it, requiring a ground integer result.
func EvalSrcInt(src string, env *typecheck.Env) (*ir.Val, error) {
	e, err := elaborateSrc(src, env)
	if err != nil {
		return nil, err
	}
	return EvalInt(e)
}

// EvalSrcBool parses src as an expression, type-checks it against env, and
// fully evaluates it, requiring a ground boolean result.
func EvalSrcBool(src string, env *typecheck.Env) (bool, error) {
	e, err := elaborateSrc(src, env)
	if err != nil {
		return false, err
	}
	return EvalBool(e)
}

func elaborateSrc(src string, env *typecheck.Env) (ir.Expr, error) {
	if env == nil {
		env = typecheck.NewEnv()
	}
	node, err := srcexpr.Parse(src)
	if err != nil {
		return nil, err
	}
	e, _, err := typecheck.Elaborate(node, env)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Implies reports whether antecedent implies consequent over every guess
// combination of their conjunction: provable(not antecedent or consequent).
func Implies(antecedent, consequent ir.Expr) (bool, error) {
	disjunction := ir.BinOp{
		Op: ir.OpOr,
		E1: ir.UnOp{Op: ir.OpNot, E: antecedent},
		E2: consequent,
	}
	return Provable(disjunction)
}
