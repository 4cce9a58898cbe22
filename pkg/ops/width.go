package ops

import (
	"math/big"

	"ziria-lang/interp-go/pkg/value"
)

// wrap truncates i into the signed range of width w (two's complement),
// matching the teacher's own choice of math/big for arbitrary-precision
// integers backed by an explicit width tag.
func wrap(i *big.Int, w value.Width) *big.Int {
	bits := uint(w)
	mod := new(big.Int).Lsh(big.NewInt(1), bits)
	r := new(big.Int).Mod(i, mod) // r in [0, mod)
	half := new(big.Int).Lsh(big.NewInt(1), bits-1)
	if r.Cmp(half) >= 0 {
		r.Sub(r, mod)
	}
	return r
}
