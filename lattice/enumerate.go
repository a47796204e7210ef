// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxSteps bounds the number of iterations an enumerator performs on a single
// recursion level. Exceeding it yields ErrExhausted.
const MaxSteps = 10_000

// Part is one summand of a partition together with its multiplicity.
type Part struct {
	Summand      Vector
	Multiplicity int
}

// Partition is an unordered decomposition d = Σ m_i·e_i into cone elements,
// stored with summands in strictly decreasing lexicographic order.
type Partition []Part

// Sum returns Σ multiplicity·summand. The empty partition has no rank and
// sums to the zero vector of rank 0.
func (p Partition) Sum() Vector {
	if len(p) == 0 {
		return Vector{}
	}
	s := Zero(p[0].Summand.Rank())
	for _, part := range p {
		s = s.Add(part.Summand.Scale(part.Multiplicity))
	}

	return s
}

// IsTrivial reports whether p is the one-part partition {d: 1}.
func (p Partition) IsTrivial(d Vector) bool {
	return len(p) == 1 && p[0].Multiplicity == 1 && p[0].Summand.Equal(d)
}

// String renders the partition as "{(1,1):1, (0,1):1}".
func (p Partition) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, part := range p {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(part.Summand.String())
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(part.Multiplicity))
	}
	b.WriteByte('}')

	return b.String()
}

// Summands returns every cone element reached by descending from d to zero
// through Pred(·, d). The result starts with d and ends with zero.
//
// Complexity: one Pred call per summand.
func Summands(c Cone, d Vector) ([]Vector, error) {
	if !c.Contains(d) {
		return nil, fmt.Errorf("summands of %v: %w", d, ErrNotInCone)
	}
	out := []Vector{d}
	for e := d; !e.IsZero(); {
		e = c.Pred(e, d)
		out = append(out, e)
	}

	return out, nil
}

// Partitions enumerates every unordered decomposition of d into nonzero cone
// elements with multiplicities.
//
// Algorithm Outline:
//  1. Start with the largest candidate e = Pred(2d, d) = d.
//  2. (q, r) = d.DivMod(e). If r = 0 emit {e: q}; otherwise prefix {e: q}
//     to every partition of r using summands strictly below e.
//  3. Lower the multiplicity (q-1, r+e) until q = 1, then advance e to its
//     predecessor and repeat until e reaches zero.
//
// The zero vector has no partitions. Each recursion level performs at most
// MaxSteps iterations; beyond that ErrExhausted is returned.
func Partitions(c Cone, d Vector) ([]Partition, error) {
	if !c.Contains(d) {
		return nil, fmt.Errorf("partitions of %v: %w", d, ErrNotInCone)
	}
	if d.IsZero() {
		return nil, nil
	}

	return partitionsBelow(c, d, d.Scale(2))
}

// partitionsBelow returns the partitions of d whose summands are all
// lexicographically smaller than below. Membership of d is not re-checked.
func partitionsBelow(c Cone, d, below Vector) ([]Partition, error) {
	if below.IsZero() {
		return nil, nil
	}
	e := c.Pred(below, d)
	if e.IsZero() {
		return nil, nil
	}
	q, r := d.DivMod(e)

	var out []Partition
	for step := 0; ; step++ {
		if step >= MaxSteps {
			return nil, fmt.Errorf("partitions of %v below %v: %w", d, below, ErrExhausted)
		}
		if r.IsZero() {
			out = append(out, Partition{{Summand: e, Multiplicity: q}})
		} else {
			rest, err := partitionsBelow(c, r, e)
			if err != nil {
				return nil, err
			}
			for _, p := range rest {
				part := make(Partition, 0, len(p)+1)
				part = append(part, Part{Summand: e, Multiplicity: q})
				out = append(out, append(part, p...))
			}
		}
		if q > 1 {
			q--
			r = r.Add(e)

			continue
		}
		e = c.Pred(e, d)
		if e.IsZero() {
			return out, nil
		}
		q, r = d.DivMod(e)
	}
}
