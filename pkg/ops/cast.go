package ops

import (
	"math"
	"math/big"

	"ziria-lang/interp-go/pkg/value"
)

// registerCasts wires the cast matrix. Unregistered (src, tgt) pairs
// fall through to CastDomainError at the call site.
func registerCasts() {
	registerCast(value.Unit, value.String, func(v value.Value, _ value.Type) (value.Value, error) {
		return value.VString(v.Pretty()), nil
	})

	for _, src := range []value.Type{value.Bit, value.Bool, value.Double, value.String} {
		s := src
		registerCast(s, value.Unit, func(v value.Value, _ value.Type) (value.Value, error) {
			return value.VUnit(), nil
		})
	}
	for _, w := range allWidths {
		registerCast(value.Int(w), value.Unit, func(v value.Value, _ value.Type) (value.Value, error) {
			return value.VUnit(), nil
		})
	}

	registerCast(value.Bit, value.Bit, idCast)
	registerCast(value.Bit, value.Bool, func(v value.Value, _ value.Type) (value.Value, error) {
		return value.VBool(v.Bit), nil
	})
	registerCast(value.Bool, value.Bit, func(v value.Value, _ value.Type) (value.Value, error) {
		return value.VBit(v.Bool), nil
	})
	registerCast(value.Bool, value.Bool, idCast)

	for _, w := range allWidths {
		w := w
		registerCast(value.Bit, value.Int(w), func(v value.Value, _ value.Type) (value.Value, error) {
			return value.VIntN(enumInt(v.Bit), w), nil
		})
		registerCast(value.Bool, value.Int(w), func(v value.Value, _ value.Type) (value.Value, error) {
			return value.VIntN(enumInt(v.Bool), w), nil
		})
	}

	registerCast(value.Unit, value.Unit, idCast)

	for _, src := range allWidths {
		for _, tgt := range allWidths {
			src, tgt := src, tgt
			registerCast(value.Int(src), value.Int(tgt), func(v value.Value, _ value.Type) (value.Value, error) {
				if src == tgt {
					return v, nil
				}
				return value.VInt(wrap(v.Int, tgt), tgt), nil
			})
		}
		src := src
		registerCast(value.Int(src), value.Double, func(v value.Value, _ value.Type) (value.Value, error) {
			f := new(big.Float).SetInt(v.Int)
			d, _ := f.Float64()
			return value.VDouble(d), nil
		})
		registerCast(value.Int(src), value.String, func(v value.Value, _ value.Type) (value.Value, error) {
			return value.VString(v.Pretty()), nil
		})
	}

	for _, w := range allWidths {
		w := w
		registerCast(value.Double, value.Int(w), func(v value.Value, _ value.Type) (value.Value, error) {
			rounded := math.RoundToEven(v.Double)
			i, _ := big.NewFloat(rounded).Int(nil)
			return value.VInt(wrap(i, w), w), nil
		})
	}
	registerCast(value.Double, value.Double, idCast)
	registerCast(value.Double, value.String, func(v value.Value, _ value.Type) (value.Value, error) {
		return value.VString(v.Pretty()), nil
	})

	registerCast(value.String, value.String, idCast)
}

func idCast(v value.Value, _ value.Type) (value.Value, error) { return v, nil }

func enumInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
