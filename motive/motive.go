// SPDX-License-Identifier: MIT

package motive

import (
	"math/big"
	"strings"
)

// Motive is an element of Q(R), held as R^shift · num(R) / den(R) in
// canonical reduced form. A nil den stands for 1. Values are immutable.
type Motive struct {
	num   poly
	den   poly
	shift int
}

// Zero returns the additive identity.
func Zero() Motive { return Motive{} }

// One returns the multiplicative identity.
func One() Motive { return Int(1) }

// Int returns the integer constant n.
func Int(n int64) Motive {
	return Motive{num: constPoly(big.NewRat(n, 1))}
}

// Rat returns the rational constant p/q. It panics if q == 0.
func Rat(p, q int64) Motive {
	return Motive{num: constPoly(big.NewRat(p, q))}
}

// Monomial returns c·R^k.
func Monomial(c *big.Rat, k int) Motive {
	if c.Sign() == 0 {
		return Motive{}
	}

	return Motive{num: poly{new(big.Rat).Set(c)}, shift: k}
}

// R returns the symbol R = L^{1/2}.
func R() Motive { return Motive{num: poly{ratOne}, shift: 1} }

// L returns the motive of the affine line, L = R².
func L() Motive { return Motive{num: poly{ratOne}, shift: 2} }

// LPow returns L^n for any integer n.
func LPow(n int) Motive { return Motive{num: poly{ratOne}, shift: 2 * n} }

// GL returns the motive of the general linear group GL(n), Π_{k<n} (L^n - L^k).
func GL(n int) Motive {
	out := One()
	for k := 0; k < n; k++ {
		out = out.Mul(LPow(n).Sub(LPow(k)))
	}

	return out
}

// GLProduct returns Π GL(n_i).
func GLProduct(ns ...int) Motive {
	out := One()
	for _, n := range ns {
		out = out.Mul(GL(n))
	}

	return out
}

// normalize brings R^shift·num/den into canonical form.
func normalize(num, den poly, shift int) Motive {
	num, den = trim(num), trim(den)
	if num.isZero() {
		return Motive{}
	}
	if den.isZero() {
		panic("motive: division by zero")
	}
	if k := num.lowOrder(); k > 0 {
		num = polyShiftDown(num, k)
		shift += k
	}
	if k := den.lowOrder(); k > 0 {
		den = polyShiftDown(den, k)
		shift -= k
	}
	if len(den) > 1 {
		if g := polyGCD(num, den); len(g) > 1 {
			num, _ = polyDivMod(num, g)
			den, _ = polyDivMod(den, g)
		}
	}
	if lead := den.lead(); lead.Cmp(ratOne) != 0 {
		inv := new(big.Rat).Inv(lead)
		num = polyScale(num, inv)
		den = polyScale(den, inv)
	}
	if den.isOne() {
		den = nil
	}

	return Motive{num: num, den: den, shift: shift}
}

func (m Motive) denominator() poly {
	if m.den == nil {
		return poly{ratOne}
	}

	return m.den
}

// IsZero reports m == 0.
func (m Motive) IsZero() bool { return m.num.isZero() }

// IsOne reports m == 1.
func (m Motive) IsOne() bool { return m.shift == 0 && m.den == nil && m.num.isOne() }

// Equal reports m == o. Both operands are canonical, so this is structural.
func (m Motive) Equal(o Motive) bool {
	if m.IsZero() || o.IsZero() {
		return m.IsZero() && o.IsZero()
	}

	return m.shift == o.shift && polyEqual(m.num, o.num) && polyEqual(m.denominator(), o.denominator())
}

// Add returns m + o.
func (m Motive) Add(o Motive) Motive {
	if m.IsZero() {
		return o
	}
	if o.IsZero() {
		return m
	}
	s := m.shift
	if o.shift < s {
		s = o.shift
	}
	a := polyMul(polyShiftUp(m.num, m.shift-s), o.denominator())
	b := polyMul(polyShiftUp(o.num, o.shift-s), m.denominator())

	return normalize(polyAdd(a, b), polyMul(m.denominator(), o.denominator()), s)
}

// Neg returns -m.
func (m Motive) Neg() Motive {
	if m.IsZero() {
		return m
	}

	return Motive{num: polyNeg(m.num), den: m.den, shift: m.shift}
}

// Sub returns m - o.
func (m Motive) Sub(o Motive) Motive { return m.Add(o.Neg()) }

// Mul returns m·o.
func (m Motive) Mul(o Motive) Motive {
	if m.IsZero() || o.IsZero() {
		return Motive{}
	}

	return normalize(polyMul(m.num, o.num), polyMul(m.denominator(), o.denominator()), m.shift+o.shift)
}

// Inv returns 1/m. It panics if m is zero.
func (m Motive) Inv() Motive {
	if m.IsZero() {
		panic("motive: division by zero")
	}

	return normalize(m.denominator(), m.num, -m.shift)
}

// Div returns m/o. It panics if o is zero.
func (m Motive) Div(o Motive) Motive { return m.Mul(o.Inv()) }

// Pow returns m^n; negative exponents invert first.
func (m Motive) Pow(n int) Motive {
	if n < 0 {
		return m.Inv().Pow(-n)
	}
	out, base := One(), m
	for n > 0 {
		if n&1 == 1 {
			out = out.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}

	return out
}

// MulRPow returns m·R^k.
func (m Motive) MulRPow(k int) Motive {
	if m.IsZero() {
		return m
	}

	return Motive{num: m.num, den: m.den, shift: m.shift + k}
}

// PowHalf returns L^{n/2} = R^n, the half-integer power of L used for
// virtual-dimension shifts.
func PowHalf(n int) Motive { return One().MulRPow(n) }

// Scale returns c·m for a rational c.
func (m Motive) Scale(c *big.Rat) Motive {
	if c.Sign() == 0 || m.IsZero() {
		return Motive{}
	}

	return Motive{num: polyScale(m.num, c), den: m.den, shift: m.shift}
}

// Adams returns m with R substituted by -(-R)^k, the k-th Adams operation.
// It panics for k < 1.
func (m Motive) Adams(k int) Motive {
	if k < 1 {
		panic("motive: Adams operation needs k ≥ 1")
	}
	if k == 1 || m.IsZero() {
		return m
	}
	sign := 1
	if k%2 == 0 {
		sign = -1
	}
	num := substitute(m.num, sign, k)
	den := substitute(m.denominator(), sign, k)
	if sign < 0 && m.shift%2 != 0 {
		num = polyNeg(num)
	}

	return normalize(num, den, k*m.shift)
}

// Factor returns the canonical (reduced, factored over the coprime
// numerator/denominator split) form of m.
func (m Motive) Factor() Motive {
	if m.IsZero() {
		return Motive{}
	}

	return normalize(m.num, m.denominator(), m.shift)
}

// Expand returns m with numerator and denominator distributed. The
// representation is dense already, so this agrees with Factor.
func (m Motive) Expand() Motive { return m.Factor() }

// Normalize is the expand-then-factor round trip.
func (m Motive) Normalize() Motive { return m.Expand().Factor() }

// Sum adds all arguments.
func Sum(ms ...Motive) Motive {
	var out Motive
	for _, m := range ms {
		out = out.Add(m)
	}

	return out
}

// Product multiplies all arguments.
func Product(ms ...Motive) Motive {
	out := One()
	for _, m := range ms {
		out = out.Mul(m)
	}

	return out
}

// Numerator renders the numerator including the positive R-power.
func (m Motive) Numerator() string {
	if m.IsZero() {
		return "0"
	}
	n := m.num
	if m.shift > 0 {
		n = polyShiftUp(n, m.shift)
	}

	return renderPoly(n)
}

// Denominator renders the denominator including the negative R-power.
func (m Motive) Denominator() string {
	d := m.denominator()
	if m.shift < 0 {
		d = polyShiftUp(d, -m.shift)
	}

	return renderPoly(d)
}

// String renders m in the symbol R, e.g. "R/(R^2 - 1)".
func (m Motive) String() string {
	if m.IsZero() {
		return "0"
	}
	num := m.Numerator()
	if m.den == nil && m.shift >= 0 {
		return num
	}
	den := m.Denominator()
	if strings.ContainsAny(num, "+-") && strings.Count(num, " ") > 0 {
		num = "(" + num + ")"
	}
	if strings.ContainsAny(den, "+-*/") {
		den = "(" + den + ")"
	}

	return num + "/" + den
}

// MarshalText implements encoding.TextMarshaler.
func (m Motive) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// renderPoly renders a polynomial in R with descending powers.
func renderPoly(p poly) string {
	var b strings.Builder
	first := true
	for i := len(p) - 1; i >= 0; i-- {
		c := p[i]
		if c.Sign() == 0 {
			continue
		}
		abs := new(big.Rat).Abs(c)
		switch {
		case first && c.Sign() < 0:
			b.WriteString("-")
		case !first && c.Sign() < 0:
			b.WriteString(" - ")
		case !first:
			b.WriteString(" + ")
		}
		first = false
		b.WriteString(renderTerm(abs, i))
	}

	return b.String()
}

func renderTerm(c *big.Rat, k int) string {
	var sym string
	switch k {
	case 0:
		return c.RatString()
	case 1:
		sym = "R"
	default:
		sym = "R^" + big.NewInt(int64(k)).String()
	}
	if c.Cmp(ratOne) == 0 {
		return sym
	}

	return c.RatString() + "*" + sym
}
