// SPDX-License-Identifier: MIT

package stability

import (
	"github.com/katalvlaran/dtinv/lattice"
	"github.com/katalvlaran/dtinv/motive"
)

// semistableAt computes ss(d) by subtracting every non-trivial HN stratum
// from the motive of all objects.
func (c *Condition) semistableAt(d lattice.Vector) (motive.Motive, error) {
	if !c.Cone().Contains(d) {
		return motive.Zero(), nil
	}
	out, err := c.cat.MotiveOfObjects().At(d)
	if err != nil {
		return motive.Zero(), err
	}
	types, err := c.HNTypes(d)
	if err != nil {
		return motive.Zero(), err
	}
	ss := c.MotiveOfSemistables()
	for _, t := range types {
		if t.IsTrivial(d) {
			continue
		}
		term := motive.LPow(t.Exponent)
		for _, p := range t.Pieces {
			v, err := ss.At(p)
			if err != nil {
				return motive.Zero(), err
			}
			if term = term.Mul(v); term.IsZero() {
				break
			}
		}
		out = out.Sub(term)
	}

	return out.Factor(), nil
}
