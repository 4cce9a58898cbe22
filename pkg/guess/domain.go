// Package guess implements the approximator's guessing strategy: a
// memoized boolean-guess map and an interval-with-holes domain for
// integer sub-terms, both keyed on a canonical, location-stripped form of
// an expression so that memoization survives rebuilding an equivalent
// sub-term.
package guess

import "math/big"

// Domain is an interval with holes: lower and upper bounds (either may be
// unbounded) plus a set of specifically excluded values.
type Domain struct {
	Lower *big.Int // nil == -infinity
	Upper *big.Int // nil == +infinity
	Holes map[string]struct{}
}

// Unbounded returns the initial domain for an unseen term: unbounded, no
// holes.
func Unbounded() Domain {
	return Domain{Holes: map[string]struct{}{}}
}

func (d Domain) clone() Domain {
	holes := make(map[string]struct{}, len(d.Holes))
	for k := range d.Holes {
		holes[k] = struct{}{}
	}
	return Domain{Lower: cloneBig(d.Lower), Upper: cloneBig(d.Upper), Holes: holes}
}

func cloneBig(i *big.Int) *big.Int {
	if i == nil {
		return nil
	}
	return new(big.Int).Set(i)
}

// Empty reports whether the domain can contain no value: lower > upper,
// or lower == upper and that single remaining value is itself a hole.
func (d Domain) Empty() bool {
	if d.Lower != nil && d.Upper != nil {
		if d.Lower.Cmp(d.Upper) > 0 {
			return true
		}
		if d.Lower.Cmp(d.Upper) == 0 {
			if _, excluded := d.Holes[d.Lower.String()]; excluded {
				return true
			}
		}
	}
	return false
}

// Intersect takes the pointwise max of lowers (nil treated as -infinity),
// pointwise min of uppers (nil treated as +infinity), and the union of
// holes.
func Intersect(a, b Domain) Domain {
	out := Domain{Holes: make(map[string]struct{}, len(a.Holes)+len(b.Holes))}
	out.Lower = maxBound(a.Lower, b.Lower, true)
	out.Upper = maxBound(a.Upper, b.Upper, false)
	for k := range a.Holes {
		out.Holes[k] = struct{}{}
	}
	for k := range b.Holes {
		out.Holes[k] = struct{}{}
	}
	return out
}

// maxBound computes max(a, b) when lowerBound is true (nil == -infinity) or
// min(a, b) when lowerBound is false (nil == +infinity).
func maxBound(a, b *big.Int, lowerBound bool) *big.Int {
	if a == nil {
		return cloneBig(b)
	}
	if b == nil {
		return cloneBig(a)
	}
	if lowerBound {
		if a.Cmp(b) >= 0 {
			return cloneBig(a)
		}
		return cloneBig(b)
	}
	if a.Cmp(b) <= 0 {
		return cloneBig(a)
	}
	return cloneBig(b)
}

// Comparison is one of the six relational operators over a ground integer.
type Comparison int

const (
	CmpEq Comparison = iota
	CmpNeq
	CmpLt
	CmpGt
	CmpLeq
	CmpGeq
)

// Negate returns the comparison's negation: = <-> !=, < <-> >=, > <-> <=.
func (c Comparison) Negate() Comparison {
	switch c {
	case CmpEq:
		return CmpNeq
	case CmpNeq:
		return CmpEq
	case CmpLt:
		return CmpGeq
	case CmpGeq:
		return CmpLt
	case CmpGt:
		return CmpLeq
	case CmpLeq:
		return CmpGt
	default:
		return c
	}
}

// PositiveDomain derives the domain implied by "e' cmp k" being true.
func PositiveDomain(cmp Comparison, k *big.Int) Domain {
	switch cmp {
	case CmpEq:
		return Domain{Lower: cloneBig(k), Upper: cloneBig(k), Holes: map[string]struct{}{}}
	case CmpNeq:
		return Domain{Holes: map[string]struct{}{k.String(): {}}}
	case CmpLt:
		return Domain{Upper: new(big.Int).Sub(k, big.NewInt(1)), Holes: map[string]struct{}{}}
	case CmpGt:
		return Domain{Lower: new(big.Int).Add(k, big.NewInt(1)), Holes: map[string]struct{}{}}
	case CmpLeq:
		return Domain{Upper: cloneBig(k), Holes: map[string]struct{}{}}
	case CmpGeq:
		return Domain{Lower: cloneBig(k), Holes: map[string]struct{}{}}
	default:
		return Unbounded()
	}
}
