package srcexpr

import "testing"

func TestParseArithmeticPrecedence(t *testing.T) {
	n, err := Parse("1 + 2 * 3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bin, ok := n.(Binary)
	if !ok || bin.Op != "+" {
		t.Fatalf("expected top-level '+', got %#v", n)
	}
	rhs, ok := bin.R.(Binary)
	if !ok || rhs.Op != "*" {
		t.Fatalf("expected '*' to bind tighter than '+', got %#v", bin.R)
	}
}

func TestParseExponRightAssociative(t *testing.T) {
	n, err := Parse("2 ** 3 ** 2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bin, ok := n.(Binary)
	if !ok || bin.Op != "**" {
		t.Fatalf("expected top-level '**', got %#v", n)
	}
	if _, ok := bin.R.(Binary); !ok {
		t.Fatalf("expected ** to be right-associative (3**2 nested on the right), got %#v", bin.R)
	}
	if _, ok := bin.L.(IntLit); !ok {
		t.Fatalf("expected left operand to be a bare literal for right-associativity, got %#v", bin.L)
	}
}

func TestParseLet(t *testing.T) {
	n, err := Parse("let x = 1 + 2 in x * 2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	let, ok := n.(Let)
	if !ok || let.Name != "x" {
		t.Fatalf("expected a let binding x, got %#v", n)
	}
}

func TestParseVarNoInitializer(t *testing.T) {
	n, err := Parse("var x in x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ref, ok := n.(LetRef)
	if !ok || ref.Rhs != nil {
		t.Fatalf("expected an uninitialized letref, got %#v", n)
	}
}

func TestParseIfWhileFor(t *testing.T) {
	if _, err := Parse("if true then 1 else 2"); err != nil {
		t.Fatalf("unexpected error parsing if: %v", err)
	}
	if _, err := Parse("while x < 10 do x := x + 1"); err != nil {
		t.Fatalf("unexpected error parsing while: %v", err)
	}
	if _, err := Parse("for i in 0, 10 do print i"); err != nil {
		t.Fatalf("unexpected error parsing for: %v", err)
	}
}

func TestParseArrayAndIndex(t *testing.T) {
	n, err := Parse("{1, 2, 3}[1]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	idx, ok := n.(Index)
	if !ok {
		t.Fatalf("expected an Index node, got %#v", n)
	}
	if _, ok := idx.Arr.(ArrayLit); !ok {
		t.Fatalf("expected array literal as index target, got %#v", idx.Arr)
	}
}

func TestParseSliceIndex(t *testing.T) {
	n, err := Parse("a[1, 2]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	idx, ok := n.(Index)
	if !ok || idx.Len == nil {
		t.Fatalf("expected a slice-read Index with a Len, got %#v", n)
	}
}

func TestParseStructLitAndProj(t *testing.T) {
	n, err := Parse("struct Point{x=1, y=2}.x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, ok := n.(Proj)
	if !ok || p.Field != "x" {
		t.Fatalf("expected a projection of field x, got %#v", n)
	}
}

func TestParseComments(t *testing.T) {
	n, err := Parse("1 + 2 // trailing comment\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := n.(Binary); !ok {
		t.Fatalf("expected the comment to be skipped, got %#v", n)
	}
}

func TestParseBitLiteral(t *testing.T) {
	n, err := Parse("'1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bit, ok := n.(BitLit)
	if !ok || !bit.Value {
		t.Fatalf("expected bit literal true, got %#v", n)
	}
}

func TestParseTrailingTokensError(t *testing.T) {
	if _, err := Parse("1 + 2 3"); err == nil {
		t.Fatalf("expected trailing token to be a parse error")
	}
}

func TestParseUnterminatedStringErrors(t *testing.T) {
	if _, err := Parse(`"abc`); err == nil {
		t.Fatalf("expected unterminated string to error")
	}
}
