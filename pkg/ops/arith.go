package ops

import (
	"math"
	"math/big"

	"ziria-lang/interp-go/pkg/ir"
	"ziria-lang/interp-go/pkg/value"
)

func registerIntArith(w value.Width) {
	t := value.Int(w)

	registerBinarySym(ir.OpAdd, t, func(a, b value.Value) (value.Value, error) {
		return value.VInt(wrap(new(big.Int).Add(a.Int, b.Int), w), w), nil
	})
	registerBinarySym(ir.OpSub, t, func(a, b value.Value) (value.Value, error) {
		return value.VInt(wrap(new(big.Int).Sub(a.Int, b.Int), w), w), nil
	})
	registerBinarySym(ir.OpMult, t, func(a, b value.Value) (value.Value, error) {
		return value.VInt(wrap(new(big.Int).Mul(a.Int, b.Int), w), w), nil
	})
	registerBinarySym(ir.OpDiv, t, func(a, b value.Value) (value.Value, error) {
		if b.Int.Sign() == 0 {
			return value.Value{}, domainErr("division by zero")
		}
		return value.VInt(wrap(new(big.Int).Quo(a.Int, b.Int), w), w), nil
	})
	registerBinarySym(ir.OpRem, t, func(a, b value.Value) (value.Value, error) {
		if b.Int.Sign() == 0 {
			return value.Value{}, domainErr("remainder by zero")
		}
		return value.VInt(wrap(new(big.Int).Rem(a.Int, b.Int), w), w), nil
	})
	registerBinarySym(ir.OpExpon, t, func(a, b value.Value) (value.Value, error) {
		if b.Int.Sign() < 0 {
			return value.Value{}, domainErr("negative exponent")
		}
		return value.VInt(wrap(new(big.Int).Exp(a.Int, b.Int, nil), w), w), nil
	})
}

func registerDoubleArith() {
	t := value.Double

	registerBinarySym(ir.OpAdd, t, func(a, b value.Value) (value.Value, error) {
		return value.VDouble(a.Double + b.Double), nil
	})
	registerBinarySym(ir.OpSub, t, func(a, b value.Value) (value.Value, error) {
		return value.VDouble(a.Double - b.Double), nil
	})
	registerBinarySym(ir.OpMult, t, func(a, b value.Value) (value.Value, error) {
		return value.VDouble(a.Double * b.Double), nil
	})
	registerBinarySym(ir.OpDiv, t, func(a, b value.Value) (value.Value, error) {
		return value.VDouble(a.Double / b.Double), nil
	})
	registerBinarySym(ir.OpExpon, t, func(a, b value.Value) (value.Value, error) {
		return value.VDouble(math.Pow(a.Double, b.Double)), nil
	})
}
