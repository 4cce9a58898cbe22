package ops

import (
	"math/big"

	"ziria-lang/interp-go/pkg/ir"
	"ziria-lang/interp-go/pkg/value"
)

// registerBitwise wires BwAnd/BwOr/BwXor over bit, bool (logical bitwise),
// and the given integer width.
func registerBitwise(w value.Width) {
	t := value.Int(w)
	registerBinarySym(ir.OpBwAnd, t, func(a, b value.Value) (value.Value, error) {
		return value.VInt(wrap(new(big.Int).And(a.Int, b.Int), w), w), nil
	})
	registerBinarySym(ir.OpBwOr, t, func(a, b value.Value) (value.Value, error) {
		return value.VInt(wrap(new(big.Int).Or(a.Int, b.Int), w), w), nil
	})
	registerBinarySym(ir.OpBwXor, t, func(a, b value.Value) (value.Value, error) {
		return value.VInt(wrap(new(big.Int).Xor(a.Int, b.Int), w), w), nil
	})
}

func registerBitwiseLogical() {
	registerBinarySym(ir.OpBwAnd, value.Bit, func(a, b value.Value) (value.Value, error) {
		return value.VBit(a.Bit && b.Bit), nil
	})
	registerBinarySym(ir.OpBwOr, value.Bit, func(a, b value.Value) (value.Value, error) {
		return value.VBit(a.Bit || b.Bit), nil
	})
	registerBinarySym(ir.OpBwXor, value.Bit, func(a, b value.Value) (value.Value, error) {
		return value.VBit(a.Bit != b.Bit), nil
	})

	registerBinarySym(ir.OpBwAnd, value.Bool, func(a, b value.Value) (value.Value, error) {
		return value.VBool(a.Bool && b.Bool), nil
	})
	registerBinarySym(ir.OpBwOr, value.Bool, func(a, b value.Value) (value.Value, error) {
		return value.VBool(a.Bool || b.Bool), nil
	})
	registerBinarySym(ir.OpBwXor, value.Bool, func(a, b value.Value) (value.Value, error) {
		return value.VBool(a.Bool != b.Bool), nil
	})
}
