package ops

import (
	"testing"

	"ziria-lang/interp-go/pkg/ir"
	"ziria-lang/interp-go/pkg/value"
)

func TestDispatchBinaryArith(t *testing.T) {
	fn, ok := DispatchBinary(ir.OpAdd, value.Int(value.W32), value.Int(value.W32))
	if !ok {
		t.Fatalf("expected Add(int32,int32) to dispatch")
	}
	res, err := fn(value.VIntN(2, value.W32), value.VIntN(3, value.W32))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Equal(value.VIntN(5, value.W32)) {
		t.Fatalf("2+3 = %v, want 5", res.Pretty())
	}
}

func TestDispatchBinaryMissing(t *testing.T) {
	if _, ok := DispatchBinary(ir.OpAdd, value.Int(value.W32), value.Bool); ok {
		t.Fatalf("Add(int32,bool) should not dispatch")
	}
}

func TestArithWraparound(t *testing.T) {
	fn, ok := DispatchBinary(ir.OpAdd, value.Int(value.W8), value.Int(value.W8))
	if !ok {
		t.Fatalf("expected Add(int8,int8) to dispatch")
	}
	res, err := fn(value.VIntN(127, value.W8), value.VIntN(1, value.W8))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Equal(value.VIntN(-128, value.W8)) {
		t.Fatalf("127+1 at width 8 = %v, want -128 (two's complement wraparound)", res.Pretty())
	}
}

func TestDivisionByZero(t *testing.T) {
	fn, ok := DispatchBinary(ir.OpDiv, value.Int(value.W32), value.Int(value.W32))
	if !ok {
		t.Fatalf("expected Div(int32,int32) to dispatch")
	}
	if _, err := fn(value.VIntN(1, value.W32), value.VIntN(0, value.W32)); err == nil {
		t.Fatalf("expected division by zero to error")
	} else if _, isDomainErr := err.(*ErrCastDomain); !isDomainErr {
		t.Fatalf("expected *ErrCastDomain, got %T", err)
	}
}

func TestRemainderByZero(t *testing.T) {
	fn, _ := DispatchBinary(ir.OpRem, value.Int(value.W32), value.Int(value.W32))
	if _, err := fn(value.VIntN(7, value.W32), value.VIntN(0, value.W32)); err == nil {
		t.Fatalf("expected remainder by zero to error")
	}
}

func TestNegativeShiftErrors(t *testing.T) {
	fn, ok := DispatchBinary(ir.OpShL, value.Int(value.W32), value.Int(value.W32))
	if !ok {
		t.Fatalf("expected ShL(int32,int32) to dispatch")
	}
	if _, err := fn(value.VIntN(1, value.W32), value.VIntN(-1, value.W32)); err == nil {
		t.Fatalf("expected negative shift amount to error")
	}
}

func TestNegativeExponentErrors(t *testing.T) {
	fn, _ := DispatchBinary(ir.OpExpon, value.Int(value.W32), value.Int(value.W32))
	if _, err := fn(value.VIntN(2, value.W32), value.VIntN(-1, value.W32)); err == nil {
		t.Fatalf("expected negative exponent to error")
	}
}

func TestCompareOrderableTypes(t *testing.T) {
	fn, ok := DispatchBinary(ir.OpLt, value.String, value.String)
	if !ok {
		t.Fatalf("expected Lt(string,string) to dispatch")
	}
	res, err := fn(value.VString("a"), value.VString("b"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Equal(value.VBool(true)) {
		t.Fatalf(`"a" < "b" should be true`)
	}
}

func TestCastIntWidening(t *testing.T) {
	fn, ok := DispatchCast(value.Int(value.W8), value.Int(value.W64))
	if !ok {
		t.Fatalf("expected int8->int64 cast to be registered")
	}
	res, err := fn(value.VIntN(-1, value.W8), value.Int(value.W64))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Equal(value.VIntN(-1, value.W64)) {
		t.Fatalf("casting -1i8 to int64 should stay -1, got %v", res.Pretty())
	}
}

func TestCastMissingPair(t *testing.T) {
	if _, ok := DispatchCast(value.Array(value.LitLen(1), value.Int(value.W32)), value.Int(value.W32)); ok {
		t.Fatalf("array-to-int cast should not be registered")
	}
}

func TestUnaryNeg(t *testing.T) {
	fn, ok := DispatchUnary(ir.OpNeg, value.Int(value.W32))
	if !ok {
		t.Fatalf("expected Neg(int32) to dispatch")
	}
	res, err := fn(value.VIntN(5, value.W32))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Equal(value.VIntN(-5, value.W32)) {
		t.Fatalf("-5 expected, got %v", res.Pretty())
	}
}

func TestBitwiseLogicalOnBool(t *testing.T) {
	fn, ok := DispatchBinary(ir.OpBwAnd, value.Bool, value.Bool)
	if !ok {
		t.Fatalf("expected BwAnd(bool,bool) to dispatch")
	}
	res, err := fn(value.VBool(true), value.VBool(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Equal(value.VBool(false)) {
		t.Fatalf("true && false should be false")
	}
}
