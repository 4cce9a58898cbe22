// Package interp implements the interpreter core and the top-level API:
// evalPartial, evalFull, evalInt, evalBool, provable, implies, and the
// evalSrc* convenience wrappers. One recursive evaluator drives all three
// modes (partial evaluator, full evaluator, and approximator), since they
// share every reduction rule and differ only at a handful of
// mode-dependent decision points.
package interp

import (
	"ziria-lang/interp-go/pkg/guess"
	"ziria-lang/interp-go/pkg/heap"
	"ziria-lang/interp-go/pkg/ir"
)

// Mode selects which of the three interpreter roles governs the
// mode-dependent decisions of the residualization table.
type Mode int

const (
	ModePartial Mode = iota
	ModeFull
	ModeApprox
)

// Ctx is the state threaded through one evaluation branch: the heap, the
// approximator's guess memoization, and the branch's accumulated print
// output. Each branch owns its own snapshot of all three.
type Ctx struct {
	Mode    Mode
	Heap    *heap.Heap
	Guesses *guess.State
	Prints  []string
}

// NewCtx returns a fresh, empty evaluation context for the given mode.
func NewCtx(mode Mode) Ctx {
	return Ctx{Mode: mode, Heap: heap.New(), Guesses: guess.NewState()}
}

// fork produces an independent copy of ctx so that a guesser branch point
// can diverge without disturbing its sibling.
func (c Ctx) fork() Ctx {
	prints := make([]string, len(c.Prints))
	copy(prints, c.Prints)
	return Ctx{
		Mode:    c.Mode,
		Heap:    c.Heap.Clone(),
		Guesses: c.Guesses.Clone(),
		Prints:  prints,
	}
}

func (c Ctx) print(line string) Ctx {
	prints := append(append([]string{}, c.Prints...), line)
	return Ctx{Mode: c.Mode, Heap: c.Heap, Guesses: c.Guesses, Prints: prints}
}

// Branch is one outcome of reducing an expression: either a reduced form
// paired with the context it produced, or an error that terminates this
// branch. All errors short-circuit the current branch.
type Branch struct {
	Expr ir.Expr
	Ctx  Ctx
	Err  error
}

func ok(expr ir.Expr, ctx Ctx) Branch  { return Branch{Expr: expr, Ctx: ctx} }
func fail(ctx Ctx, err error) Branch   { return Branch{Ctx: ctx, Err: err} }
func one(b Branch) []Branch            { return []Branch{b} }

// sequence chains a slice of branches through a continuation that itself
// yields branches, propagating errored branches unchanged and flattening
// successful continuations (the approximator's fan-out point; for
// Partial/Full modes, which never fork, this behaves as plain error-
// propagating sequencing).
func sequence(branches []Branch, next func(Branch) []Branch) []Branch {
	out := make([]Branch, 0, len(branches))
	for _, b := range branches {
		if b.Err != nil {
			out = append(out, b)
			continue
		}
		out = append(out, next(b)...)
	}
	return out
}
