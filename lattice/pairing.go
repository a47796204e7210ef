// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"sort"
)

// Pairing is a sparse bilinear integer form
//
//	⟨d, e⟩ = Σ_{(i,j)} d[i]·e[j]·coeff(i,j).
type Pairing struct {
	rank   int
	coeffs map[[2]int]int
}

// NewPairing builds a pairing of the given rank. An empty coefficient map
// yields the standard scalar product. Zero coefficients are dropped.
func NewPairing(rank int, coeffs map[[2]int]int) (*Pairing, error) {
	if rank <= 0 {
		return nil, fmt.Errorf("pairing: rank %d must be positive: %w", rank, ErrInvalidArgument)
	}
	c := make(map[[2]int]int, len(coeffs))
	if len(coeffs) == 0 {
		for i := 0; i < rank; i++ {
			c[[2]int{i, i}] = 1
		}

		return &Pairing{rank: rank, coeffs: c}, nil
	}
	for ij, v := range coeffs {
		if ij[0] < 0 || ij[0] >= rank || ij[1] < 0 || ij[1] >= rank {
			return nil, fmt.Errorf("pairing: index %v outside [0,%d): %w", ij, rank, ErrInvalidArgument)
		}
		if v != 0 {
			c[ij] = v
		}
	}

	return &Pairing{rank: rank, coeffs: c}, nil
}

// ZeroPairing returns the pairing that vanishes identically.
func ZeroPairing(rank int) (*Pairing, error) {
	if rank <= 0 {
		return nil, fmt.Errorf("pairing: rank %d must be positive: %w", rank, ErrInvalidArgument)
	}

	return &Pairing{rank: rank, coeffs: map[[2]int]int{}}, nil
}

// Rank returns the rank of the pairing.
func (p *Pairing) Rank() int { return p.rank }

// Coefficient returns coeff(i,j).
func (p *Pairing) Coefficient(i, j int) int { return p.coeffs[[2]int{i, j}] }

// Coefficients returns a copy of the nonzero coefficients.
func (p *Pairing) Coefficients() map[[2]int]int {
	c := make(map[[2]int]int, len(p.coeffs))
	for k, v := range p.coeffs {
		c[k] = v
	}

	return c
}

// Eval returns ⟨d, e⟩. Both vectors must have the pairing's rank.
func (p *Pairing) Eval(d, e Vector) int {
	if d.Rank() != p.rank || e.Rank() != p.rank {
		panic(fmt.Sprintf("%v: pairing of rank %d at %v, %v", ErrRankMismatch, p.rank, d, e))
	}
	var s int
	for ij, v := range p.coeffs {
		s += d.c[ij[0]] * e.c[ij[1]] * v
	}

	return s
}

// Transpose returns the pairing ⟨e, d⟩.
func (p *Pairing) Transpose() *Pairing {
	c := make(map[[2]int]int, len(p.coeffs))
	for ij, v := range p.coeffs {
		c[[2]int{ij[1], ij[0]}] = v
	}

	return &Pairing{rank: p.rank, coeffs: c}
}

// Sub returns the pairing p - q.
func (p *Pairing) Sub(q *Pairing) (*Pairing, error) {
	if p.rank != q.rank {
		return nil, fmt.Errorf("pairing: ranks %d and %d: %w", p.rank, q.rank, ErrRankMismatch)
	}
	c := p.Coefficients()
	for ij, v := range q.coeffs {
		c[ij] -= v
		if c[ij] == 0 {
			delete(c, ij)
		}
	}

	return &Pairing{rank: p.rank, coeffs: c}, nil
}

// String renders the nonzero coefficients in index order.
func (p *Pairing) String() string {
	keys := make([][2]int, 0, len(p.coeffs))
	for k := range p.coeffs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a][0] != keys[b][0] {
			return keys[a][0] < keys[b][0]
		}

		return keys[a][1] < keys[b][1]
	})
	s := fmt.Sprintf("Pairing(rank=%d", p.rank)
	for _, k := range keys {
		s += fmt.Sprintf(", (%d,%d):%d", k[0], k[1], p.coeffs[k])
	}

	return s + ")"
}
