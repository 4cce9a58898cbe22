package ops

import (
	"math/big"

	"ziria-lang/interp-go/pkg/ir"
	"ziria-lang/interp-go/pkg/value"
)

// registerShifts wires ShL/ShR where the left operand has width w and the
// shift amount may be any of the signed int widths. ShR is arithmetic
// (sign-extending); math/big's Rsh implements floor division by a power
// of two, which coincides with a two's-complement arithmetic shift.
func registerShifts(w value.Width) {
	t := value.Int(w)
	for _, sw := range allWidths {
		st := value.Int(sw)
		registerBinary(ir.OpShL, t, st, func(a, b value.Value) (value.Value, error) {
			if b.Int.Sign() < 0 {
				return value.Value{}, domainErr("negative shift amount")
			}
			return value.VInt(wrap(new(big.Int).Lsh(a.Int, uint(b.Int.Int64())), w), w), nil
		})
		registerBinary(ir.OpShR, t, st, func(a, b value.Value) (value.Value, error) {
			if b.Int.Sign() < 0 {
				return value.Value{}, domainErr("negative shift amount")
			}
			return value.VInt(wrap(new(big.Int).Rsh(a.Int, uint(b.Int.Int64())), w), w), nil
		})
	}
}
