package ops

import (
	"ziria-lang/interp-go/pkg/ir"
	"ziria-lang/interp-go/pkg/value"
)

// registerCompare wires Eq/Neq/Lt/Gt/Leq/Geq for every orderable scalar
// type.
func registerCompare(t value.Type) {
	registerBinarySym(ir.OpEq, t, func(a, b value.Value) (value.Value, error) {
		return value.VBool(a.Equal(b)), nil
	})
	registerBinarySym(ir.OpNeq, t, func(a, b value.Value) (value.Value, error) {
		return value.VBool(!a.Equal(b)), nil
	})
	registerBinarySym(ir.OpLt, t, func(a, b value.Value) (value.Value, error) {
		return value.VBool(a.Compare(b) < 0), nil
	})
	registerBinarySym(ir.OpGt, t, func(a, b value.Value) (value.Value, error) {
		return value.VBool(a.Compare(b) > 0), nil
	})
	registerBinarySym(ir.OpLeq, t, func(a, b value.Value) (value.Value, error) {
		return value.VBool(a.Compare(b) <= 0), nil
	})
	registerBinarySym(ir.OpGeq, t, func(a, b value.Value) (value.Value, error) {
		return value.VBool(a.Compare(b) >= 0), nil
	})
}
