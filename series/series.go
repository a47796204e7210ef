// SPDX-License-Identifier: MIT

package series

import (
	"fmt"

	"github.com/katalvlaran/dtinv/lattice"
	"github.com/katalvlaran/dtinv/motive"
)

// Series is a graded motive supported on a cone: coefficients of vectors
// outside the cone are zero and never reach the coefficient function.
type Series struct {
	cone lattice.Cone
	g    *Graded
}

// Term is one coefficient of a series.
type Term struct {
	Vector lattice.Vector
	Value  motive.Motive
}

// NewSeries builds a series on cone with coefficients fn.
func NewSeries(cone lattice.Cone, fn CoeffFunc, opts ...Option) (*Series, error) {
	if cone == nil {
		return nil, fmt.Errorf("series: nil cone: %w", ErrInvalidArgument)
	}
	g, err := NewGraded(cone.Rank(), fn, opts...)
	if err != nil {
		return nil, err
	}

	return &Series{cone: cone, g: g}, nil
}

// Cone returns the support cone.
func (s *Series) Cone() lattice.Cone { return s.cone }

// Rank returns the lattice rank.
func (s *Series) Rank() int { return s.g.rank }

// Name returns the display name.
func (s *Series) Name() string { return s.g.name }

// String implements fmt.Stringer.
func (s *Series) String() string {
	if s.g.name == "" {
		return fmt.Sprintf("Series(rank=%d)", s.g.rank)
	}

	return s.g.name
}

// At returns the coefficient of d; zero outside the cone.
func (s *Series) At(d lattice.Vector) (motive.Motive, error) {
	if d.Rank() != s.g.rank {
		return motive.Zero(), fmt.Errorf("%v at %v: %w", s, d, ErrRankMismatch)
	}
	if !s.cone.Contains(d) {
		return motive.Zero(), nil
	}

	return s.g.At(d)
}

// Below returns the coefficients of every summand of d, in descending
// lexicographic order from d down to zero.
func (s *Series) Below(d lattice.Vector) ([]Term, error) {
	if d.Rank() != s.g.rank {
		return nil, fmt.Errorf("%v below %v: %w", s, d, ErrRankMismatch)
	}
	sums, err := lattice.Summands(s.cone, d)
	if err != nil {
		return nil, err
	}
	out := make([]Term, 0, len(sums))
	for _, e := range sums {
		v, err := s.g.At(e)
		if err != nil {
			return nil, err
		}
		out = append(out, Term{Vector: e, Value: v})
	}

	return out, nil
}

// Shift returns the n-fold shift: the coefficient of d is s((-1)^n·d) and
// the cone is mirrored for odd n.
func (s *Series) Shift(n int) *Series {
	if n%2 == 0 {
		return s
	}
	name := s.g.name
	if name != "" {
		name = fmt.Sprintf("%s[%d]", name, n)
	}
	out, _ := NewSeries(lattice.Shift(s.cone, n), func(d lattice.Vector) (motive.Motive, error) {
		return s.At(d.Neg())
	}, WithName(name))

	return out
}

// Scale returns the coefficientwise product m·s.
func (s *Series) Scale(m motive.Motive) *Series {
	out, _ := NewSeries(s.cone, func(d lattice.Vector) (motive.Motive, error) {
		v, err := s.g.At(d)
		if err != nil {
			return motive.Zero(), err
		}

		return v.Mul(m).Factor(), nil
	}, WithName(s.g.name))

	return out
}

// Add returns the coefficientwise sum a + b on the cone of a.
func Add(a, b *Series) (*Series, error) {
	if a.Rank() != b.Rank() {
		return nil, fmt.Errorf("add %v and %v: %w", a, b, ErrRankMismatch)
	}

	return NewSeries(a.cone, func(d lattice.Vector) (motive.Motive, error) {
		x, err := a.At(d)
		if err != nil {
			return motive.Zero(), err
		}
		y, err := b.At(d)
		if err != nil {
			return motive.Zero(), err
		}

		return x.Add(y).Factor(), nil
	})
}

// Mul returns the Cauchy product (a·b)(d) = Σ_{e summand of d} a(e)·b(d-e)
// on the cone of a.
func Mul(a, b *Series) (*Series, error) {
	if a.Rank() != b.Rank() {
		return nil, fmt.Errorf("mul %v and %v: %w", a, b, ErrRankMismatch)
	}

	return NewSeries(a.cone, func(d lattice.Vector) (motive.Motive, error) {
		sums, err := lattice.Summands(a.cone, d)
		if err != nil {
			return motive.Zero(), err
		}
		var out motive.Motive
		for _, e := range sums {
			x, err := a.At(e)
			if err != nil {
				return motive.Zero(), err
			}
			if x.IsZero() {
				continue
			}
			y, err := b.At(d.Sub(e))
			if err != nil {
				return motive.Zero(), err
			}
			out = out.Add(x.Mul(y))
		}

		return out.Factor(), nil
	})
}
