package value

import (
	"fmt"
	"math/big"
)

// ScalarKind discriminates the Value union.
type ScalarKind int

const (
	KUnit ScalarKind = iota
	KBit
	KBool
	KInt
	KDouble
	KString
)

func (k ScalarKind) String() string {
	switch k {
	case KUnit:
		return "unit"
	case KBit:
		return "bit"
	case KBool:
		return "bool"
	case KInt:
		return "int"
	case KDouble:
		return "double"
	case KString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is a ground scalar value. Arrays and records are not represented
// here: they remain expressions (ValArr / Struct live in package ir) so
// that partial reduction can coexist with concrete data inside their
// elements/fields.
type Value struct {
	Kind ScalarKind

	Bit    bool // KBit
	Bool   bool // KBool
	Int    *big.Int
	IntTy  Width // width tag accompanying Int
	Double float64
	Str    string
}

func VUnit() Value { return Value{Kind: KUnit} }

func VBit(b bool) Value { return Value{Kind: KBit, Bit: b} }

func VBool(b bool) Value { return Value{Kind: KBool, Bool: b} }

func VInt(i *big.Int, w Width) Value { return Value{Kind: KInt, Int: i, IntTy: w} }

func VIntN(n int64, w Width) Value { return Value{Kind: KInt, Int: big.NewInt(n), IntTy: w} }

func VDouble(d float64) Value { return Value{Kind: KDouble, Double: d} }

func VString(s string) Value { return Value{Kind: KString, Str: s} }

// Type recovers the type tag of a scalar value.
func (v Value) Type() Type {
	switch v.Kind {
	case KUnit:
		return Unit
	case KBit:
		return Bit
	case KBool:
		return Bool
	case KInt:
		return Int(v.IntTy)
	case KDouble:
		return Double
	case KString:
		return String
	default:
		return Type{}
	}
}

// Pretty renders a value deterministically and injectively across distinct
// scalar types.
func (v Value) Pretty() string {
	switch v.Kind {
	case KUnit:
		return "()"
	case KBit:
		if v.Bit {
			return "'1"
		}
		return "'0"
	case KBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KInt:
		return fmt.Sprintf("%s%s", v.Int.String(), v.IntTy.suffix())
	case KDouble:
		return fmt.Sprintf("%gd", v.Double)
	case KString:
		return fmt.Sprintf("%q", v.Str)
	default:
		return "<?>"
	}
}

func (w Width) suffix() string {
	switch w {
	case W8:
		return "i8"
	case W16:
		return "i16"
	case W32:
		return "i32"
	case W64:
		return "i64"
	default:
		return ""
	}
}

// Equal compares two scalar values for equality. Values of different kinds
// are never equal (Bit and Bool are distinct kinds); integers compare by
// numeric value alone, so the same number at two widths is equal.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KUnit:
		return true
	case KBit:
		return v.Bit == other.Bit
	case KBool:
		return v.Bool == other.Bool
	case KInt:
		return v.Int.Cmp(other.Int) == 0
	case KDouble:
		return v.Double == other.Double
	case KString:
		return v.Str == other.Str
	default:
		return false
	}
}

// Compare orders two scalar values of the same orderable type. Returns
// -1, 0, or 1. Panics if the kind is not orderable. It does not check that
// the two kinds match; callers (pkg/ops) only invoke this after matching
// operand type tags.
func (v Value) Compare(other Value) int {
	switch v.Kind {
	case KUnit:
		return 0
	case KBit:
		return boolCompare(v.Bit, other.Bit)
	case KBool:
		return boolCompare(v.Bool, other.Bool)
	case KInt:
		return v.Int.Cmp(other.Int)
	case KDouble:
		switch {
		case v.Double < other.Double:
			return -1
		case v.Double > other.Double:
			return 1
		default:
			return 0
		}
	case KString:
		switch {
		case v.Str < other.Str:
			return -1
		case v.Str > other.Str:
			return 1
		default:
			return 0
		}
	default:
		panic("value: Compare on non-orderable kind")
	}
}

func boolCompare(a, b bool) int {
	if a == b {
		return 0
	}
	if !a && b {
		return -1
	}
	return 1
}
