package heap

import (
	"testing"

	"ziria-lang/interp-go/pkg/ir"
	"ziria-lang/interp-go/pkg/value"
)

func val(n int64) ir.Expr {
	return ir.Val{Ty: value.Int(value.W32), V: value.VIntN(n, value.W32)}
}

func TestPushGetPop(t *testing.T) {
	h := New()
	h.Push(1, "x", val(10))
	got, err := h.Get(1, "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ir.Pretty(got) != ir.Pretty(val(10)) {
		t.Fatalf("expected 10, got %v", ir.Pretty(got))
	}
	h.Pop()
	if h.Has(1) {
		t.Fatalf("variable should be entirely absent after Pop, not merely shadowed")
	}
}

func TestGetNotInScope(t *testing.T) {
	h := New()
	if _, err := h.Get(99, "y"); err == nil {
		t.Fatalf("expected NotInScope error")
	} else if _, ok := err.(*ErrNotInScope); !ok {
		t.Fatalf("expected *ErrNotInScope, got %T", err)
	}
}

func TestSetNotInScope(t *testing.T) {
	h := New()
	if err := h.Set(5, "z", val(1)); err == nil {
		t.Fatalf("expected error setting an unbound id")
	}
}

func TestSetOverwritesCurrentBinding(t *testing.T) {
	h := New()
	h.Push(1, "x", val(1))
	if err := h.Set(1, "x", val(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := h.Get(1, "x")
	if ir.Pretty(got) != ir.Pretty(val(2)) {
		t.Fatalf("expected overwritten value 2, got %v", ir.Pretty(got))
	}
}

func TestPushPopRestoresPriorBindingForReusedID(t *testing.T) {
	h := New()
	h.Push(1, "i", val(0))
	h.Push(1, "i", val(1)) // a reused id, e.g. a nested loop reusing a slot
	got, _ := h.Get(1, "i")
	if ir.Pretty(got) != ir.Pretty(val(1)) {
		t.Fatalf("expected innermost push to win, got %v", ir.Pretty(got))
	}
	h.Pop()
	got, _ = h.Get(1, "i")
	if ir.Pretty(got) != ir.Pretty(val(0)) {
		t.Fatalf("expected pop to restore the previous binding for the reused id, got %v", ir.Pretty(got))
	}
	h.Pop()
	if h.Has(1) {
		t.Fatalf("expected id to be entirely absent after both pops")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	h := New()
	h.Push(1, "x", val(1))
	clone := h.Clone()
	if err := clone.Set(1, "x", val(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := h.Get(1, "x")
	if ir.Pretty(got) != ir.Pretty(val(1)) {
		t.Fatalf("mutating a clone must not affect the original heap")
	}
	cloneGot, _ := clone.Get(1, "x")
	if ir.Pretty(cloneGot) != ir.Pretty(val(2)) {
		t.Fatalf("expected clone's own mutation to stick")
	}
}
