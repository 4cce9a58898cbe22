package ops

import (
	"math/big"

	"ziria-lang/interp-go/pkg/ir"
	"ziria-lang/interp-go/pkg/value"
)

func registerUnaryOps(w value.Width) {
	t := value.Int(w)

	registerUnary(ir.OpNeg, t, func(a value.Value) (value.Value, error) {
		return value.VInt(wrap(new(big.Int).Neg(a.Int), w), w), nil
	})
	registerUnary(ir.OpBwNeg, t, func(a value.Value) (value.Value, error) {
		return value.VInt(wrap(new(big.Int).Not(a.Int), w), w), nil
	})
}

func registerUnaryScalarOps() {
	registerUnary(ir.OpNeg, value.Double, func(a value.Value) (value.Value, error) {
		return value.VDouble(-a.Double), nil
	})
	registerUnary(ir.OpNot, value.Bool, func(a value.Value) (value.Value, error) {
		return value.VBool(!a.Bool), nil
	})
	registerUnary(ir.OpBwNeg, value.Bit, func(a value.Value) (value.Value, error) {
		return value.VBit(!a.Bit), nil
	})
	registerUnary(ir.OpBwNeg, value.Bool, func(a value.Value) (value.Value, error) {
		return value.VBool(!a.Bool), nil
	})
}
