// Package extended implements the exact scalar used by every tableau entry:
// a value m·M + x + e·ε over big.Rat, where M and ε are nilpotent units
// (M² = ε² = Mε = 0).
//
// Values are immutable. Every operation allocates its result, so a Number can
// be shared freely between rows.
package extended

import (
	"math/big"
	"strings"
)

// Number is the triple (m, x, e) standing for m·M + x + e·ε.
// The zero value is the number 0.
type Number struct {
	m, x, e *big.Rat
}

func or0(r *big.Rat) *big.Rat {
	if r == nil {
		return new(big.Rat)
	}
	return r
}

// New returns m·M + x + e·ε.
func New(m, x, e int64) Number {
	return Number{m: big.NewRat(m, 1), x: big.NewRat(x, 1), e: big.NewRat(e, 1)}
}

// FromInt lifts an integer to a Number with no infinite or infinitesimal part.
func FromInt(x int64) Number {
	return Number{x: big.NewRat(x, 1)}
}

// FromRat lifts a rational. The argument is copied.
func FromRat(x *big.Rat) Number {
	return Number{x: new(big.Rat).Set(or0(x))}
}

// FromRats builds a Number from its three components. Arguments are copied;
// nil stands for zero.
func FromRats(m, x, e *big.Rat) Number {
	return Number{
		m: new(big.Rat).Set(or0(m)),
		x: new(big.Rat).Set(or0(x)),
		e: new(big.Rat).Set(or0(e)),
	}
}

// Zero is the additive identity; it equals the zero value of Number.
func Zero() Number { return Number{} }

// One is the multiplicative identity.
func One() Number { return FromInt(1) }

// Epsilon is the infinitesimal unit ε.
func Epsilon() Number { return New(0, 0, 1) }

// Infinity is the infinite unit M.
func Infinity() Number { return New(1, 0, 0) }

// Inf returns a copy of the M coefficient.
func (n Number) Inf() *big.Rat { return new(big.Rat).Set(or0(n.m)) }

// Real returns a copy of the real part.
func (n Number) Real() *big.Rat { return new(big.Rat).Set(or0(n.x)) }

// Eps returns a copy of the ε coefficient.
func (n Number) Eps() *big.Rat { return new(big.Rat).Set(or0(n.e)) }

func add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(or0(a), or0(b)) }
func sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(or0(a), or0(b)) }
func mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(or0(a), or0(b)) }
func neg(a *big.Rat) *big.Rat    { return new(big.Rat).Neg(or0(a)) }

// Add returns n + o, componentwise.
func (n Number) Add(o Number) Number {
	return Number{m: add(n.m, o.m), x: add(n.x, o.x), e: add(n.e, o.e)}
}

// Sub returns n - o, componentwise.
func (n Number) Sub(o Number) Number {
	return Number{m: sub(n.m, o.m), x: sub(n.x, o.x), e: sub(n.e, o.e)}
}

// Mul multiplies two Numbers. The M·M, ε·ε and M·ε terms vanish.
func (n Number) Mul(o Number) Number {
	return Number{
		m: add(mul(n.x, o.m), mul(n.m, o.x)),
		x: mul(n.x, o.x),
		e: add(mul(n.x, o.e), mul(n.e, o.x)),
	}
}

// MulRat scales every component by r.
func (n Number) MulRat(r *big.Rat) Number {
	return Number{m: mul(n.m, r), x: mul(n.x, r), e: mul(n.e, r)}
}

// DivRat divides every component by r. r must be non-zero.
func (n Number) DivRat(r *big.Rat) Number {
	inv := new(big.Rat).Inv(r)
	return n.MulRat(inv)
}

// Conj negates the M and ε parts, so that n·Conj(n) is the pure real x².
func (n Number) Conj() Number {
	return Number{m: neg(n.m), x: new(big.Rat).Set(or0(n.x)), e: neg(n.e)}
}

// Neg returns -n.
func (n Number) Neg() Number {
	return Number{m: neg(n.m), x: neg(n.x), e: neg(n.e)}
}

// Div divides by o through its conjugate. When o has a zero real part the
// quotient is undefined and Div returns zero, which is not a real result:
// callers that depend on the inverse must check Invertible first.
func (n Number) Div(o Number) Number {
	d := o.Mul(o.Conj())
	if d.x.Sign() == 0 {
		return Zero()
	}
	return n.Mul(o.Conj()).DivRat(d.x)
}

// Inverse returns 1/n computed as Conj(n)/x². ok is false when the real part
// is zero.
func (n Number) Inverse() (inv Number, ok bool) {
	if !n.Invertible() {
		return Zero(), false
	}
	sq := mul(n.x, n.x)
	return n.Conj().DivRat(sq), true
}

// Invertible reports whether the real part is non-zero.
func (n Number) Invertible() bool { return or0(n.x).Sign() != 0 }

// Cmp orders lexicographically on (m, x, e).
func (n Number) Cmp(o Number) int {
	if c := or0(n.m).Cmp(or0(o.m)); c != 0 {
		return c
	}
	if c := or0(n.x).Cmp(or0(o.x)); c != 0 {
		return c
	}
	return or0(n.e).Cmp(or0(o.e))
}

func (n Number) Equal(o Number) bool { return n.Cmp(o) == 0 }
func (n Number) Less(o Number) bool  { return n.Cmp(o) < 0 }

// Sign returns -1, 0 or +1 following the same lexicographic order.
func (n Number) Sign() int {
	if s := or0(n.m).Sign(); s != 0 {
		return s
	}
	if s := or0(n.x).Sign(); s != 0 {
		return s
	}
	return or0(n.e).Sign()
}

// IsZero reports whether all three components are zero.
func (n Number) IsZero() bool { return n.Sign() == 0 }

// IsReal reports whether both the M and ε parts are zero.
func (n Number) IsReal() bool {
	return or0(n.m).Sign() == 0 && or0(n.e).Sign() == 0
}

// Float64 returns the real part as the nearest float64.
func (n Number) Float64() float64 {
	f, _ := or0(n.x).Float64()
	return f
}

func signed(r *big.Rat) string {
	if r.Sign() < 0 {
		return r.RatString()
	}
	return "+" + r.RatString()
}

// String renders 0, a signed real such as +5/4, or the signed non-zero
// terms of the triple, e.g. +1M+2 or +5-1ε.
func (n Number) String() string {
	if n.IsZero() {
		return "0"
	}
	var b strings.Builder
	if m := or0(n.m); m.Sign() != 0 {
		b.WriteString(signed(m))
		b.WriteString("M")
	}
	if x := or0(n.x); x.Sign() != 0 {
		b.WriteString(signed(x))
	}
	if e := or0(n.e); e.Sign() != 0 {
		b.WriteString(signed(e))
		b.WriteString("ε")
	}
	return b.String()
}
