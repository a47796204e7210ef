// SPDX-License-Identifier: MIT

package lattice

import "fmt"

// Cone is a subset of the lattice containing zero, closed under addition,
// in which every element has finitely many summands.
//
// Implementations supply two primitives only; every enumeration
// (Summands, Partitions) is derived from them by free functions.
type Cone interface {
	// Rank returns the rank of the ambient lattice.
	Rank() int

	// Contains reports membership.
	Contains(d Vector) bool

	// Pred returns the lexicographically greatest cone element e < d with
	// e ≤ bound coordinatewise. d must be a nonzero vector that is either a
	// member of the cone or a scaled copy of bound (the partition entry point).
	Pred(d, bound Vector) Vector
}

// standardCone is the non-negative orthant.
type standardCone struct {
	rank int
}

// StandardCone returns the cone of vectors with non-negative coordinates.
func StandardCone(rank int) Cone {
	return standardCone{rank: rank}
}

// Rank implements Cone.
func (c standardCone) Rank() int { return c.rank }

// Contains implements Cone.
func (c standardCone) Contains(d Vector) bool {
	if d.Rank() != c.rank {
		return false
	}
	for _, x := range d.c {
		if x < 0 {
			return false
		}
	}

	return true
}

// Pred implements Cone.
//
// If d exceeds bound somewhere, the first offending coordinate and
// everything after it are clamped to bound. Otherwise the last nonzero
// coordinate is decremented and all later ones are raised to bound.
func (c standardCone) Pred(d, bound Vector) Vector {
	mustSameRank(d, bound)
	if d.IsZero() {
		panic("lattice: the zero vector has no predecessor")
	}
	p := d.Coords()
	for i, x := range d.c {
		if bound.c[i] < x {
			copy(p[i:], bound.c[i:])

			return Vector{c: p}
		}
	}
	for i := len(p) - 1; i >= 0; i-- {
		if d.c[i] > 0 {
			p[i]--

			return Vector{c: p}
		}
		p[i] = bound.c[i]
	}

	// unreachable: d is nonzero with non-negative coordinates
	return Zero(c.rank)
}

// String implements fmt.Stringer.
func (c standardCone) String() string { return fmt.Sprintf("StandardCone(%d)", c.rank) }

// funcCone wraps user supplied primitives.
type funcCone struct {
	rank     int
	contains func(Vector) bool
	pred     func(d, bound Vector) Vector
}

// NewFuncCone builds a cone from a membership test and a predecessor
// function. The caller vouches for the cone axioms.
func NewFuncCone(rank int, contains func(Vector) bool, pred func(d, bound Vector) Vector) (Cone, error) {
	if rank <= 0 {
		return nil, fmt.Errorf("cone: rank %d must be positive: %w", rank, ErrInvalidArgument)
	}
	if contains == nil || pred == nil {
		return nil, fmt.Errorf("cone: contains and pred are required: %w", ErrInvalidArgument)
	}

	return funcCone{rank: rank, contains: contains, pred: pred}, nil
}

func (c funcCone) Rank() int                   { return c.rank }
func (c funcCone) Contains(d Vector) bool      { return d.Rank() == c.rank && c.contains(d) }
func (c funcCone) Pred(d, bound Vector) Vector { return c.pred(d, bound) }

// subcone keeps the members of an ambient cone satisfying a condition.
type subcone struct {
	cone Cone
	cond func(Vector) bool
}

// Subcone returns the members of cone satisfying cond. The condition must
// hold at zero and be closed under addition.
func Subcone(cone Cone, cond func(Vector) bool) Cone {
	return subcone{cone: cone, cond: cond}
}

func (c subcone) Rank() int { return c.cone.Rank() }

func (c subcone) Contains(d Vector) bool { return c.cone.Contains(d) && c.cond(d) }

// Pred steps through the ambient cone until the condition holds. Zero
// always satisfies it, so the walk terminates.
func (c subcone) Pred(d, bound Vector) Vector {
	e := c.cone.Pred(d, bound)
	for !e.IsZero() && !c.cond(e) {
		e = c.cone.Pred(e, bound)
	}

	return e
}

// shiftedCone is the mirror image -C of a cone.
type shiftedCone struct {
	cone Cone
}

// Shift returns the cone attached to the n-fold shift: the cone itself for
// even n and its mirror image {-d : d ∈ cone} for odd n.
func Shift(cone Cone, n int) Cone {
	if n%2 == 0 {
		return cone
	}
	if s, ok := cone.(shiftedCone); ok {
		return s.cone
	}

	return shiftedCone{cone: cone}
}

func (c shiftedCone) Rank() int { return c.cone.Rank() }

func (c shiftedCone) Contains(d Vector) bool { return c.cone.Contains(d.Neg()) }

func (c shiftedCone) Pred(d, bound Vector) Vector {
	return c.cone.Pred(d.Neg(), bound.Neg()).Neg()
}
