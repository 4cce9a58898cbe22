package ir

import (
	"fmt"

	"ziria-lang/interp-go/pkg/value"
)

// IsGroundValue reports whether e is a fully reduced normal form: Val,
// ValArr with every element ground, or Struct with every field ground.
func IsGroundValue(e Expr) bool {
	switch n := e.(type) {
	case Val:
		return true
	case ValArr:
		for _, el := range n.Elems {
			if !IsGroundValue(el) {
				return false
			}
		}
		return true
	case Struct:
		for _, f := range n.Fields {
			if !IsGroundValue(f.Val) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// ErrOutOfBounds is returned by the split/slice helpers when an index or
// slice falls outside the array bounds.
type ErrOutOfBounds struct {
	Index  int64
	Length int
}

func (e *ErrOutOfBounds) Error() string {
	return fmt.Sprintf("Out of bounds: index %d, length %d", e.Index, e.Length)
}

// ErrUnknownField is returned when a struct projection or assignment names a
// field absent from the struct.
type ErrUnknownField struct {
	Field string
}

func (e *ErrUnknownField) Error() string {
	return fmt.Sprintf("Unknown field: %q", e.Field)
}

// SplitArrayAt splits a ground ValArr at index i, returning the elements
// before i, the element at i, and the elements after i.
func SplitArrayAt(i int64, arr ValArr) (prefix []Expr, elem Expr, suffix []Expr, err error) {
	n := int64(len(arr.Elems))
	if i < 0 || i >= n {
		return nil, nil, nil, &ErrOutOfBounds{Index: i, Length: len(arr.Elems)}
	}
	prefix = arr.Elems[:i]
	elem = arr.Elems[i]
	suffix = arr.Elems[i+1:]
	return prefix, elem, suffix, nil
}

// SliceArrayAt returns the elements before, within, and after the slice
// [i, i+n) of a ground ValArr.
func SliceArrayAt(i, n int64, arr ValArr) (prefix, middle, suffix []Expr, err error) {
	total := int64(len(arr.Elems))
	if i < 0 || n < 0 || i+n > total {
		return nil, nil, nil, &ErrOutOfBounds{Index: i, Length: len(arr.Elems)}
	}
	prefix = arr.Elems[:i]
	middle = arr.Elems[i : i+n]
	suffix = arr.Elems[i+n:]
	return prefix, middle, suffix, nil
}

// FindField locates a named field in a ground Struct, returning the fields
// before it, the field itself, and the fields after it.
func FindField(field string, s Struct) (before []StructField, found StructField, after []StructField, err error) {
	for idx, f := range s.Fields {
		if f.Name == field {
			before = s.Fields[:idx]
			found = f
			after = s.Fields[idx+1:]
			return before, found, after, nil
		}
	}
	return nil, StructField{}, nil, &ErrUnknownField{Field: field}
}

// SpliceArray rebuilds a ValArr from prefix + replacement + suffix,
// preserving order; elements are never reordered.
func SpliceArray(prefix []Expr, replacement Expr, suffix []Expr) ValArr {
	out := make([]Expr, 0, len(prefix)+1+len(suffix))
	out = append(out, prefix...)
	out = append(out, replacement)
	out = append(out, suffix...)
	return ValArr{Elems: out}
}

// SpliceArraySlice rebuilds a ValArr from prefix + replacement elements +
// suffix, used by slice-write.
func SpliceArraySlice(prefix []Expr, replacement []Expr, suffix []Expr) ValArr {
	out := make([]Expr, 0, len(prefix)+len(replacement)+len(suffix))
	out = append(out, prefix...)
	out = append(out, replacement...)
	out = append(out, suffix...)
	return ValArr{Elems: out}
}

// SpliceField rebuilds a Struct from before + replacement + after,
// preserving field order.
func SpliceField(ty value.Type, before []StructField, replacement StructField, after []StructField) Struct {
	out := make([]StructField, 0, len(before)+1+len(after))
	out = append(out, before...)
	out = append(out, replacement)
	out = append(out, after...)
	return Struct{Ty: ty, Fields: out}
}
