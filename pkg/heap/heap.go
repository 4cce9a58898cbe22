// Package heap implements the interpreter's scope model: a mapping from a
// variable's unique identifier to its current value, extended on
// Let/LetRef entry and popped, strictly LIFO, on exit. Modeled on the
// teacher's runtime.Environment (Define/Assign/Get), but keyed by
// ir.UniqID rather than source name and with explicit push/pop instead of
// a persistent parent chain, since a variable must become entirely
// absent, not merely shadowed, once its binding form exits.
package heap

import (
	"fmt"

	"ziria-lang/interp-go/pkg/ir"
)

// ErrNotInScope is returned by Get/Set when a variable is absent from the
// heap.
type ErrNotInScope struct {
	Name string
	ID   ir.UniqID
}

func (e *ErrNotInScope) Error() string {
	return fmt.Sprintf("Not in scope: %s", e.Name)
}

// entry is one binding, along with what shadowed before it so Pop can
// restore prior state for a reused UniqID (loop induction variables reuse
// their slot across iterations without a Push/Pop per iteration, but a
// nested binding that happens to reuse an id it previously saw still
// unwinds correctly).
type entry struct {
	id      ir.UniqID
	had     bool
	prev    ir.Expr
}

// Heap is the mutable binding store threaded through one evaluation branch.
// It is intentionally not safe for concurrent use: the interpreter is
// single-threaded; the approximator clones a Heap per branch via Clone
// instead of sharing one across goroutines.
type Heap struct {
	vars   map[ir.UniqID]ir.Expr
	names  map[ir.UniqID]string
	stack  []entry
}

// New returns an empty heap.
func New() *Heap {
	return &Heap{
		vars:  make(map[ir.UniqID]ir.Expr),
		names: make(map[ir.UniqID]string),
	}
}

// Push binds id to v, recording enough to Pop it later. Heap entries are
// born at Let/LetRef entry and removed on exit, in last-in-first-out
// order.
func (h *Heap) Push(id ir.UniqID, name string, v ir.Expr) {
	prev, had := h.vars[id]
	h.stack = append(h.stack, entry{id: id, had: had, prev: prev})
	h.vars[id] = v
	h.names[id] = name
}

// Pop undoes the most recent Push. Callers must pop in exact reverse order
// of Push (the interpreter only ever pops immediately after reducing the
// body of the Let/LetRef/For that pushed).
func (h *Heap) Pop() {
	n := len(h.stack)
	e := h.stack[n-1]
	h.stack = h.stack[:n-1]
	if e.had {
		h.vars[e.id] = e.prev
	} else {
		delete(h.vars, e.id)
		delete(h.names, e.id)
	}
}

// Get reads the current value bound to id.
func (h *Heap) Get(id ir.UniqID, name string) (ir.Expr, error) {
	v, ok := h.vars[id]
	if !ok {
		return nil, &ErrNotInScope{Name: name, ID: id}
	}
	return v, nil
}

// Set overwrites the current value bound to id. Writing an id absent from
// the heap is always an error, in every mode.
func (h *Heap) Set(id ir.UniqID, name string, v ir.Expr) error {
	if _, ok := h.vars[id]; !ok {
		return &ErrNotInScope{Name: name, ID: id}
	}
	h.vars[id] = v
	return nil
}

// Has reports whether id is currently bound.
func (h *Heap) Has(id ir.UniqID) bool {
	_, ok := h.vars[id]
	return ok
}

// Clone deep-copies the heap's current bindings so that a branch of the
// approximator can diverge independently, each branch seeing its own
// copy of the heap.
func (h *Heap) Clone() *Heap {
	out := &Heap{
		vars:  make(map[ir.UniqID]ir.Expr, len(h.vars)),
		names: make(map[ir.UniqID]string, len(h.names)),
		stack: append([]entry(nil), h.stack...),
	}
	for k, v := range h.vars {
		out.vars[k] = v
	}
	for k, v := range h.names {
		out.names[k] = v
	}
	// The push/pop stack is copied too: a branch point can occur inside a
	// Let, LetRef or For body, and the clone then pops the bindings that
	// were pushed before the fork.
	return out
}
