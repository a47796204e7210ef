// SPDX-License-Identifier: MIT

package stability

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/dtinv/lattice"
)

// HNType is a Harder–Narasimhan type: pieces of pairwise distinct phase,
// listed in decreasing lexicographic order, and the extension exponent.
type HNType struct {
	Pieces   []lattice.Vector
	Exponent int
}

// IsTrivial reports whether t is the singleton type {d}.
func (t HNType) IsTrivial(d lattice.Vector) bool {
	return len(t.Pieces) == 1 && t.Pieces[0].Equal(d)
}

// Ordered returns the pieces sorted by decreasing phase, the order of the
// HN filtration quotients.
func (t HNType) Ordered(phaseOf func(lattice.Vector) (lattice.Phase, error)) ([]lattice.Vector, error) {
	type piece struct {
		v   lattice.Vector
		phi lattice.Phase
	}
	ps := make([]piece, len(t.Pieces))
	for i, v := range t.Pieces {
		phi, err := phaseOf(v)
		if err != nil {
			return nil, err
		}
		ps[i] = piece{v: v, phi: phi}
	}
	sort.SliceStable(ps, func(i, j int) bool { return ps[j].phi.Less(ps[i].phi) })
	out := make([]lattice.Vector, len(ps))
	for i, p := range ps {
		out[i] = p.v
	}

	return out, nil
}

// String renders the type as "{(1,0), (0,1)} L^0".
func (t HNType) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, p := range t.Pieces {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString("} L^")
	b.WriteString(strconv.Itoa(t.Exponent))

	return b.String()
}

// HNTypes enumerates the Harder–Narasimhan types of d, trivial type
// included. The zero vector has none.
//
// Algorithm Outline:
//  1. e runs through the cone predecessors of 2d bounded by d.
//  2. If e = d emit {d} with exponent 0.
//  3. Otherwise extend every type of d - e built from pieces below e,
//     provided none of its pieces has the phase of e. Each existing piece p
//     lowers the exponent by χ(lower, higher) of the pair (e, p).
func (c *Condition) HNTypes(d lattice.Vector) ([]HNType, error) {
	if d.Rank() != c.Rank() {
		return nil, fmt.Errorf("hn types of %v: %w", d, lattice.ErrRankMismatch)
	}
	if !c.Cone().Contains(d) {
		return nil, fmt.Errorf("hn types of %v: %w", d, lattice.ErrNotInCone)
	}
	types, err := c.hnBelow(d, d.Scale(2))
	if err != nil {
		return nil, err
	}
	slog.Debug("hn types", "condition", c.name, "d", d.String(), "count", len(types))

	return types, nil
}

func (c *Condition) hnBelow(d, below lattice.Vector) ([]HNType, error) {
	if below.IsZero() {
		return nil, nil
	}
	cone, chi := c.Cone(), c.Pairing()
	var out []HNType
	for e, step := cone.Pred(below, d), 0; !e.IsZero(); e, step = cone.Pred(e, d), step+1 {
		if step >= lattice.MaxSteps {
			return nil, fmt.Errorf("hn types of %v below %v: %w", d, below, lattice.ErrExhausted)
		}
		r := d.Sub(e)
		if r.IsZero() {
			out = append(out, HNType{Pieces: []lattice.Vector{e}})

			continue
		}
		if !cone.Contains(r) {
			continue
		}
		rest, err := c.hnBelow(r, e)
		if err != nil {
			return nil, err
		}
		if len(rest) == 0 {
			continue
		}
		phi, err := c.charge.Phase(e)
		if err != nil {
			return nil, err
		}
	types:
		for _, t := range rest {
			exp := t.Exponent
			for _, p := range t.Pieces {
				psi, err := c.charge.Phase(p)
				if err != nil {
					return nil, err
				}
				switch phi.Compare(psi) {
				case 0:
					continue types
				case -1:
					exp -= chi.Eval(e, p)
				default:
					exp -= chi.Eval(p, e)
				}
			}
			pieces := make([]lattice.Vector, 0, len(t.Pieces)+1)
			pieces = append(pieces, e)
			out = append(out, HNType{Pieces: append(pieces, t.Pieces...), Exponent: exp})
		}
	}

	return out, nil
}
