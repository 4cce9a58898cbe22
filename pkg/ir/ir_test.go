package ir

import (
	"testing"

	"ziria-lang/interp-go/pkg/value"
)

func TestIsGroundValue(t *testing.T) {
	ground := ValArr{Elems: []Expr{
		Val{Ty: value.Int(value.W32), V: value.VIntN(1, value.W32)},
		Val{Ty: value.Int(value.W32), V: value.VIntN(2, value.W32)},
	}}
	if !IsGroundValue(ground) {
		t.Fatalf("array of ground values should be ground")
	}

	stuck := ValArr{Elems: []Expr{
		Var{ID: 1, Name: "x", Ty: value.Int(value.W32)},
	}}
	if IsGroundValue(stuck) {
		t.Fatalf("array containing a free variable should not be ground")
	}
}

func TestSplitArrayAtRoundTrip(t *testing.T) {
	elems := []Expr{
		Val{V: value.VIntN(10, value.W32)},
		Val{V: value.VIntN(20, value.W32)},
		Val{V: value.VIntN(30, value.W32)},
	}
	arr := ValArr{Elems: elems}
	prefix, elem, suffix, err := SplitArrayAt(1, arr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prefix) != 1 || len(suffix) != 1 {
		t.Fatalf("expected prefix/suffix of length 1, got %d/%d", len(prefix), len(suffix))
	}
	rebuilt := SpliceArray(prefix, elem, suffix)
	if len(rebuilt.Elems) != 3 {
		t.Fatalf("expected 3 elements after splice, got %d", len(rebuilt.Elems))
	}
	for i := range elems {
		if Pretty(rebuilt.Elems[i]) != Pretty(elems[i]) {
			t.Fatalf("splice did not reproduce original array at index %d", i)
		}
	}
}

func TestSplitArrayAtOutOfBounds(t *testing.T) {
	arr := ValArr{Elems: []Expr{Val{V: value.VIntN(1, value.W32)}}}
	if _, _, _, err := SplitArrayAt(5, arr); err == nil {
		t.Fatalf("expected out-of-bounds error")
	} else if _, ok := err.(*ErrOutOfBounds); !ok {
		t.Fatalf("expected *ErrOutOfBounds, got %T", err)
	}
}

func TestSliceArrayAtRoundTrip(t *testing.T) {
	arr := ValArr{Elems: []Expr{
		Val{V: value.VIntN(1, value.W32)},
		Val{V: value.VIntN(2, value.W32)},
		Val{V: value.VIntN(3, value.W32)},
		Val{V: value.VIntN(4, value.W32)},
	}}
	prefix, middle, suffix, err := SliceArrayAt(1, 2, arr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(middle) != 2 {
		t.Fatalf("expected slice of length 2, got %d", len(middle))
	}
	rebuilt := SpliceArraySlice(prefix, middle, suffix)
	if len(rebuilt.Elems) != 4 {
		t.Fatalf("expected 4 elements, got %d", len(rebuilt.Elems))
	}
}

func TestFindFieldPreservesOrder(t *testing.T) {
	s := Struct{
		Ty: value.Struct("P", []value.FieldType{{Name: "a", Type: value.Int(value.W32)}, {Name: "b", Type: value.Bool}}),
		Fields: []StructField{
			{Name: "a", Val: Val{V: value.VIntN(1, value.W32)}},
			{Name: "b", Val: Val{V: value.VBool(true)}},
		},
	}
	before, _, after, err := FindField("b", s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(before) != 1 || len(after) != 0 {
		t.Fatalf("expected one field before 'b' and none after, got %d/%d", len(before), len(after))
	}
	replaced := StructField{Name: "b", Val: Val{V: value.VBool(false)}}
	rebuilt := SpliceField(s.Ty, before, replaced, after)
	if rebuilt.Fields[0].Name != "a" || rebuilt.Fields[1].Name != "b" {
		t.Fatalf("SpliceField must preserve original field order")
	}
}

func TestFindFieldUnknown(t *testing.T) {
	s := Struct{Fields: []StructField{{Name: "a", Val: Val{V: value.VIntN(1, value.W32)}}}}
	if _, _, _, err := FindField("z", s); err == nil {
		t.Fatalf("expected unknown-field error")
	} else if _, ok := err.(*ErrUnknownField); !ok {
		t.Fatalf("expected *ErrUnknownField, got %T", err)
	}
}

func TestInitialValueScalarsAndContainers(t *testing.T) {
	arrTy := value.Array(value.LitLen(3), value.Int(value.W16))
	e, err := InitialValue(arrTy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	arr, ok := e.(ValArr)
	if !ok || len(arr.Elems) != 3 {
		t.Fatalf("expected a 3-element array, got %#v", e)
	}
	for _, el := range arr.Elems {
		v, ok := el.(Val)
		if !ok || v.V.Kind != value.KInt || v.V.Int.Sign() != 0 {
			t.Fatalf("expected each element to default to 0, got %v", Pretty(el))
		}
	}
}

func TestInitialValueSymbolicArrayErrors(t *testing.T) {
	arrTy := value.Array(value.SymLen("n"), value.Bool)
	if _, err := InitialValue(arrTy); err == nil {
		t.Fatalf("expected error constructing default for symbolic-length array")
	} else if _, ok := err.(*ErrSymbolicArrayLength); !ok {
		t.Fatalf("expected *ErrSymbolicArrayLength, got %T", err)
	}
}

func TestPrettyDeterministic(t *testing.T) {
	e := BinOp{Op: OpAdd, E1: Val{V: value.VIntN(1, value.W32)}, E2: Val{V: value.VIntN(2, value.W32)}}
	if Pretty(e) != Pretty(e) {
		t.Fatalf("Pretty must be deterministic across calls")
	}
}

func TestPrettyDistinctForDistinctScalarKinds(t *testing.T) {
	bit := Pretty(Val{V: value.VBit(true)})
	boolean := Pretty(Val{V: value.VBool(true)})
	if bit == boolean {
		t.Fatalf("bit(true) and bool(true) must render distinctly, got %q for both", bit)
	}
}
