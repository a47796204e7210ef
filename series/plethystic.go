// SPDX-License-Identifier: MIT

package series

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/dtinv/lattice"
	"github.com/katalvlaran/dtinv/motive"
)

// Exp returns the plethystic exponential of arg on the cone of arg.
//
//	Exp(0) = 1
//	Exp(d) = Σ_{partitions {e_i: m_i} of d} Π ψ(e_i)^{m_i} / m_i!
//	ψ(d)   = Σ_{k | gcd(d)} arg(d/k)|_{R ↦ -(-R)^k} / k
//
// arg must vanish at the zero vector.
func Exp(arg *Series) (*Series, error) {
	c, err := arg.At(lattice.Zero(arg.Rank()))
	if err != nil {
		return nil, err
	}
	if !c.IsZero() {
		return nil, fmt.Errorf("exp of %v: constant term %v: %w", arg, c, ErrExpConstant)
	}
	t := &expTransform{arg: arg, psi: make(map[string]motive.Motive)}

	return NewSeries(arg.cone, t.at, WithName(fmt.Sprintf("Exp(%v)", arg)))
}

type expTransform struct {
	arg *Series
	psi map[string]motive.Motive
}

func (t *expTransform) at(d lattice.Vector) (motive.Motive, error) {
	if d.IsZero() {
		return motive.One(), nil
	}
	parts, err := lattice.Partitions(t.arg.cone, d)
	if err != nil {
		return motive.Zero(), err
	}
	var sum motive.Motive
	for _, p := range parts {
		term := motive.One()
		for _, part := range p {
			v, err := t.adams(part.Summand)
			if err != nil {
				return motive.Zero(), err
			}
			term = term.Mul(v.Pow(part.Multiplicity).Scale(invFactorial(part.Multiplicity)))
			if term.IsZero() {
				break
			}
		}
		sum = sum.Add(term)
	}

	return sum.Factor(), nil
}

// adams returns ψ(d).
func (t *expTransform) adams(d lattice.Vector) (motive.Motive, error) {
	key := d.Key()
	if v, ok := t.psi[key]; ok {
		return v, nil
	}
	var sum motive.Motive
	for _, k := range divisors(d.GCD()) {
		v, err := t.arg.At(d.DivScalar(k))
		if err != nil {
			return motive.Zero(), err
		}
		sum = sum.Add(v.Adams(k).Scale(big.NewRat(1, int64(k))))
	}
	sum = sum.Factor()
	t.psi[key] = sum

	return sum, nil
}

// Log returns the plethystic logarithm of arg on the cone of arg, the
// inverse of Exp. arg must be 1 at the zero vector.
//
//	Log(0) = 0
//	Log(d) = arg(d) - ψ'(d) - Σ_{partitions p ≠ {d: 1}} Π (ψ'(e)+Log(e))^m / m!
//	ψ'(d)  = Σ_{k | gcd(d), k ≠ 1} Log(d/k)|_{R ↦ -(-R)^k} / k
//
// Every recursive call is on a strictly smaller cone element.
func Log(arg *Series) (*Series, error) {
	c, err := arg.At(lattice.Zero(arg.Rank()))
	if err != nil {
		return nil, err
	}
	if !c.IsOne() {
		return nil, fmt.Errorf("log of %v: constant term %v: %w", arg, c, ErrLogConstant)
	}
	t := &logTransform{arg: arg, psi: make(map[string]motive.Motive)}
	if t.self, err = NewSeries(arg.cone, t.at, WithName(fmt.Sprintf("Log(%v)", arg))); err != nil {
		return nil, err
	}

	return t.self, nil
}

type logTransform struct {
	arg  *Series
	self *Series
	psi  map[string]motive.Motive
}

func (t *logTransform) at(d lattice.Vector) (motive.Motive, error) {
	if d.IsZero() {
		return motive.Zero(), nil
	}
	v, err := t.arg.At(d)
	if err != nil {
		return motive.Zero(), err
	}
	red, err := t.reduced(d)
	if err != nil {
		return motive.Zero(), err
	}
	out := v.Sub(red)

	parts, err := lattice.Partitions(t.arg.cone, d)
	if err != nil {
		return motive.Zero(), err
	}
	for _, p := range parts {
		if p.IsTrivial(d) {
			continue
		}
		term := motive.One()
		for _, part := range p {
			lg, err := t.self.At(part.Summand)
			if err != nil {
				return motive.Zero(), err
			}
			r, err := t.reduced(part.Summand)
			if err != nil {
				return motive.Zero(), err
			}
			term = term.Mul(lg.Add(r).Pow(part.Multiplicity).Scale(invFactorial(part.Multiplicity)))
			if term.IsZero() {
				break
			}
		}
		out = out.Sub(term)
	}

	return out.Factor(), nil
}

// reduced returns ψ'(d), the Adams sum without its k = 1 term.
func (t *logTransform) reduced(d lattice.Vector) (motive.Motive, error) {
	key := d.Key()
	if v, ok := t.psi[key]; ok {
		return v, nil
	}
	var sum motive.Motive
	for _, k := range divisors(d.GCD()) {
		if k == 1 {
			continue
		}
		v, err := t.self.At(d.DivScalar(k))
		if err != nil {
			return motive.Zero(), err
		}
		sum = sum.Add(v.Adams(k).Scale(big.NewRat(1, int64(k))))
	}
	sum = sum.Factor()
	t.psi[key] = sum

	return sum, nil
}

// divisors returns the positive divisors of n in increasing order; none for
// n ≤ 0.
func divisors(n int) []int {
	var out []int
	for k := 1; k <= n; k++ {
		if n%k == 0 {
			out = append(out, k)
		}
	}

	return out
}

func invFactorial(m int) *big.Rat {
	f := new(big.Int).MulRange(1, int64(m))

	return new(big.Rat).SetFrac(big.NewInt(1), f)
}
