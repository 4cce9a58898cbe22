// Package ops implements the dynamic operator table: a closed set of typed
// unary/binary/cast operator families, dispatched by operand type tag
// through a map populated once at package init. This loses no behavior
// versus a switch-per-operator and makes the cast matrix checkable at
// build time.
package ops

import (
	"ziria-lang/interp-go/pkg/ir"
	"ziria-lang/interp-go/pkg/value"
)

// UnaryFn implements one monomorphic member of a unary operator family.
type UnaryFn func(value.Value) (value.Value, error)

// BinaryFn implements one monomorphic member of a binary operator family.
type BinaryFn func(a, b value.Value) (value.Value, error)

// CastFn converts a value from one scalar type to another.
type CastFn func(value.Value, value.Type) (value.Value, error)

var unaryTable = map[unaryKey]UnaryFn{}
var binaryTable = map[binaryKey]BinaryFn{}
var castTable = map[castKey]CastFn{}

type unaryKey struct {
	op ir.UnaryOp
	t  typeKey
}

type binaryKey struct {
	op ir.BinaryOp
	t1 typeKey
	t2 typeKey
}

type castKey struct {
	src typeKey
	tgt typeKey
}

// typeKey is a comparable projection of value.Type suitable for map keys.
// Array/struct/arrow shapes never appear as dynamic-op operands (every
// family is scalar), so only the scalar discriminant and integer width
// matter here.
type typeKey struct {
	kind  value.TypeTagKind
	width value.Width
}

func keyOf(t value.Type) typeKey {
	return typeKey{kind: t.Kind, width: t.IntWidth}
}

// DispatchUnary looks up the family member matching op over operand type t.
// The bool result is false when no member matches: dispatch succeeds only
// when a family member's domain types match the runtime types of the
// arguments.
func DispatchUnary(op ir.UnaryOp, t value.Type) (UnaryFn, bool) {
	fn, ok := unaryTable[unaryKey{op: op, t: keyOf(t)}]
	return fn, ok
}

// DispatchBinary looks up the family member matching op over operand types
// t1, t2.
func DispatchBinary(op ir.BinaryOp, t1, t2 value.Type) (BinaryFn, bool) {
	fn, ok := binaryTable[binaryKey{op: op, t1: keyOf(t1), t2: keyOf(t2)}]
	return fn, ok
}

// DispatchCast looks up the conversion from src to tgt in the cast matrix.
func DispatchCast(src, tgt value.Type) (CastFn, bool) {
	fn, ok := castTable[castKey{src: keyOf(src), tgt: keyOf(tgt)}]
	return fn, ok
}

func registerUnary(op ir.UnaryOp, t value.Type, fn UnaryFn) {
	unaryTable[unaryKey{op: op, t: keyOf(t)}] = fn
}

func registerBinary(op ir.BinaryOp, t1, t2 value.Type, fn BinaryFn) {
	binaryTable[binaryKey{op: op, t1: keyOf(t1), t2: keyOf(t2)}] = fn
}

func registerBinarySym(op ir.BinaryOp, t value.Type, fn BinaryFn) {
	registerBinary(op, t, t, fn)
}

func registerCast(src, tgt value.Type, fn CastFn) {
	castTable[castKey{src: keyOf(src), tgt: keyOf(tgt)}] = fn
}

var allWidths = []value.Width{value.W8, value.W16, value.W32, value.W64}
