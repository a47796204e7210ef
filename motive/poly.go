// SPDX-License-Identifier: MIT

package motive

import "math/big"

// poly is a dense univariate polynomial over Q: p[i] is the coefficient of
// x^i. Polynomials are trimmed (no zero leading coefficient) and the
// coefficient values are never mutated once a poly is built.
type poly []*big.Rat

var ratOne = big.NewRat(1, 1)

func constPoly(c *big.Rat) poly {
	if c.Sign() == 0 {
		return nil
	}

	return poly{c}
}

func trim(p poly) poly {
	i := len(p)
	for i > 0 && p[i-1].Sign() == 0 {
		i--
	}

	return p[:i]
}

func (p poly) isZero() bool { return len(p) == 0 }

func (p poly) isOne() bool { return len(p) == 1 && p[0].Cmp(ratOne) == 0 }

func (p poly) lead() *big.Rat { return p[len(p)-1] }

// lowOrder returns the multiplicity of x as a factor of p (p ≠ 0).
func (p poly) lowOrder() int {
	for i, c := range p {
		if c.Sign() != 0 {
			return i
		}
	}

	return len(p)
}

func polyAdd(a, b poly) poly {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(poly, n)
	for i := range out {
		s := new(big.Rat)
		if i < len(a) {
			s.Add(s, a[i])
		}
		if i < len(b) {
			s.Add(s, b[i])
		}
		out[i] = s
	}

	return trim(out)
}

func polyNeg(a poly) poly {
	out := make(poly, len(a))
	for i, c := range a {
		out[i] = new(big.Rat).Neg(c)
	}

	return out
}

func polyMul(a, b poly) poly {
	if a.isZero() || b.isZero() {
		return nil
	}
	out := make(poly, len(a)+len(b)-1)
	for i := range out {
		out[i] = new(big.Rat)
	}
	t := new(big.Rat)
	for i, x := range a {
		if x.Sign() == 0 {
			continue
		}
		for j, y := range b {
			out[i+j].Add(out[i+j], t.Mul(x, y))
		}
	}

	return trim(out)
}

func polyScale(a poly, c *big.Rat) poly {
	if c.Sign() == 0 {
		return nil
	}
	out := make(poly, len(a))
	for i, x := range a {
		out[i] = new(big.Rat).Mul(x, c)
	}

	return out
}

// polyShiftUp multiplies by x^k.
func polyShiftUp(a poly, k int) poly {
	if a.isZero() || k == 0 {
		return a
	}
	out := make(poly, len(a)+k)
	for i := 0; i < k; i++ {
		out[i] = new(big.Rat)
	}
	copy(out[k:], a)

	return out
}

// polyShiftDown divides by x^k; the low k coefficients must vanish.
func polyShiftDown(a poly, k int) poly {
	if k == 0 {
		return a
	}

	return a[k:]
}

// polyDivMod returns (q, r) with a = q·b + r and deg r < deg b.
func polyDivMod(a, b poly) (poly, poly) {
	if b.isZero() {
		panic("motive: polynomial division by zero")
	}
	if len(a) < len(b) {
		return nil, a
	}
	r := make(poly, len(a))
	for i, c := range a {
		r[i] = new(big.Rat).Set(c)
	}
	q := make(poly, len(a)-len(b)+1)
	for i := range q {
		q[i] = new(big.Rat)
	}
	lead := b.lead()
	t := new(big.Rat)
	for len(r) >= len(b) {
		k := len(r) - len(b)
		c := new(big.Rat).Quo(r.lead(), lead)
		q[k] = c
		for j, y := range b {
			r[k+j].Sub(r[k+j], t.Mul(c, y))
		}
		r = trim(r[:len(r)-1])
	}

	return trim(q), r
}

// polyGCD returns the monic gcd of a and b (not both zero).
func polyGCD(a, b poly) poly {
	for !b.isZero() {
		_, r := polyDivMod(a, b)
		a, b = b, r
	}

	return monic(a)
}

func monic(a poly) poly {
	if a.isZero() || a.lead().Cmp(ratOne) == 0 {
		return a
	}

	return polyScale(a, new(big.Rat).Inv(a.lead()))
}

// substitute returns p(sign·x^k).
func substitute(p poly, sign, k int) poly {
	if p.isZero() {
		return nil
	}
	out := make(poly, (len(p)-1)*k+1)
	for i := range out {
		out[i] = new(big.Rat)
	}
	for i, c := range p {
		v := new(big.Rat).Set(c)
		if sign < 0 && i%2 == 1 {
			v.Neg(v)
		}
		out[i*k] = v
	}

	return trim(out)
}

func polyEqual(a, b poly) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}

	return true
}
