package ops

import "ziria-lang/interp-go/pkg/value"

func init() {
	for _, w := range allWidths {
		registerIntArith(w)
		registerShifts(w)
		registerBitwise(w)
		registerUnaryOps(w)
		registerCompare(value.Int(w))
	}
	registerDoubleArith()
	registerUnaryScalarOps()
	registerBitwiseLogical()
	registerCompare(value.Unit)
	registerCompare(value.Bit)
	registerCompare(value.Bool)
	registerCompare(value.Double)
	registerCompare(value.String)
	registerCasts()
}
