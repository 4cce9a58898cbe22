package typecheck

import (
	"testing"

	"ziria-lang/interp-go/pkg/ir"
	"ziria-lang/interp-go/pkg/srcexpr"
	"ziria-lang/interp-go/pkg/value"
)

func elaborateStr(t *testing.T, src string, env *Env) (ir.Expr, value.Type) {
	t.Helper()
	if env == nil {
		env = NewEnv()
	}
	node, err := srcexpr.Parse(src)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	e, ty, err := Elaborate(node, env)
	if err != nil {
		t.Fatalf("elaborate error: %v", err)
	}
	return e, ty
}

func TestElaborateIntLiteralDefaultsToInt32(t *testing.T) {
	_, ty := elaborateStr(t, "42", nil)
	if ty.Kind != value.TInt || ty.IntWidth != value.W32 {
		t.Fatalf("expected int32, got %s", ty)
	}
}

func TestElaborateArithmeticMatchingTypes(t *testing.T) {
	e, ty := elaborateStr(t, "1 + 2", nil)
	if ty.Kind != value.TInt {
		t.Fatalf("expected int result, got %s", ty)
	}
	bin, ok := e.(ir.BinOp)
	if !ok || bin.Op != ir.OpAdd {
		t.Fatalf("expected ir.BinOp{Op: OpAdd}, got %#v", e)
	}
}

func TestElaborateArithmeticTypeMismatchErrors(t *testing.T) {
	node, err := srcexpr.Parse("1 + true")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if _, _, err := Elaborate(node, NewEnv()); err == nil {
		t.Fatalf("expected a type error mixing int and bool in +")
	}
}

func TestElaborateComparisonProducesBool(t *testing.T) {
	_, ty := elaborateStr(t, "1 < 2", nil)
	if ty.Kind != value.TBool {
		t.Fatalf("expected bool result from comparison, got %s", ty)
	}
}

func TestElaborateUndefinedNameErrors(t *testing.T) {
	node, err := srcexpr.Parse("x + 1")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if _, _, err := Elaborate(node, NewEnv()); err == nil {
		t.Fatalf("expected undefined-name error")
	}
}

func TestElaborateLetBindsFreshID(t *testing.T) {
	e, ty := elaborateStr(t, "let x = 1 in x + x", nil)
	if ty.Kind != value.TInt {
		t.Fatalf("expected int, got %s", ty)
	}
	let, ok := e.(ir.Let)
	if !ok {
		t.Fatalf("expected ir.Let, got %#v", e)
	}
	bin, ok := let.E2.(ir.BinOp)
	if !ok {
		t.Fatalf("expected body to be a BinOp, got %#v", let.E2)
	}
	v1, ok1 := bin.E1.(ir.Var)
	v2, ok2 := bin.E2.(ir.Var)
	if !ok1 || !ok2 || v1.ID != let.X || v2.ID != let.X {
		t.Fatalf("expected both occurrences of x to reference the let's bound id")
	}
}

func TestElaborateLetRefWithoutInitializerErrors(t *testing.T) {
	node, err := srcexpr.Parse("var x in x")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if _, _, err := Elaborate(node, NewEnv()); err == nil {
		t.Fatalf("expected an error for an uninitialized var in source form")
	}
}

func TestElaborateArrayLiteralHomogeneous(t *testing.T) {
	_, ty := elaborateStr(t, "{1, 2, 3}", nil)
	if ty.Kind != value.TArray || ty.ArrayLenVal.N != 3 {
		t.Fatalf("expected array of length 3, got %s", ty)
	}
}

func TestElaborateArrayLiteralMixedTypesErrors(t *testing.T) {
	node, err := srcexpr.Parse("{1, true}")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if _, _, err := Elaborate(node, NewEnv()); err == nil {
		t.Fatalf("expected a type error for a mixed-type array literal")
	}
}

func TestElaborateStructLiteralAndProjection(t *testing.T) {
	env := NewEnv()
	pointTy := value.Struct("Point", []value.FieldType{
		{Name: "x", Type: value.Int(value.W32)},
		{Name: "y", Type: value.Int(value.W32)},
	})
	env.RegisterStruct(pointTy)
	_, ty := elaborateStr(t, "struct Point{x=1, y=2}.x", env)
	if ty.Kind != value.TInt {
		t.Fatalf("expected projecting field x to yield int, got %s", ty)
	}
}

func TestElaborateUndefinedStructErrors(t *testing.T) {
	node, err := srcexpr.Parse("struct Missing{a=1}")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if _, _, err := Elaborate(node, NewEnv()); err == nil {
		t.Fatalf("expected undefined struct type error")
	}
}

func TestElaborateAssignTypeMismatchErrors(t *testing.T) {
	node, err := srcexpr.Parse("let x = 1 in x := true")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if _, _, err := Elaborate(node, NewEnv()); err == nil {
		t.Fatalf("expected an assignment type-mismatch error")
	}
}

func TestElaborateIfBranchMismatchErrors(t *testing.T) {
	node, err := srcexpr.Parse("if true then 1 else true")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if _, _, err := Elaborate(node, NewEnv()); err == nil {
		t.Fatalf("expected if-branch type mismatch error")
	}
}

func TestElaborateForLoopBindsIntInduction(t *testing.T) {
	e, ty := elaborateStr(t, "for i in 0, 5 do print i", nil)
	if ty.Kind != value.TUnit {
		t.Fatalf("expected unit result from for, got %s", ty)
	}
	forNode, ok := e.(ir.For)
	if !ok {
		t.Fatalf("expected ir.For, got %#v", e)
	}
	printNode, ok := forNode.Body.(ir.Print)
	if !ok {
		t.Fatalf("expected body to be a Print, got %#v", forNode.Body)
	}
	v, ok := printNode.E.(ir.Var)
	if !ok || v.ID != forNode.X {
		t.Fatalf("expected printed variable to reference the loop induction id")
	}
}

func TestElaborateIndexNonArrayErrors(t *testing.T) {
	node, err := srcexpr.Parse("let x = 1 in x[0]")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if _, _, err := Elaborate(node, NewEnv()); err == nil {
		t.Fatalf("expected error indexing a non-array")
	}
}
