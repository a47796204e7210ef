// SPDX-License-Identifier: MIT

package stability

import (
	"fmt"

	"github.com/katalvlaran/dtinv/category"
	"github.com/katalvlaran/dtinv/lattice"
	"github.com/katalvlaran/dtinv/series"
)

// Option configures a Condition.
type Option func(*Condition)

// WithName sets the display name.
func WithName(name string) Option {
	return func(c *Condition) { c.name = name }
}

// Condition is a stability condition: an abelian category together with a
// central charge on its grading lattice.
type Condition struct {
	name        string
	cat         *category.AbelianCategory
	charge      *lattice.CentralCharge
	semistables *category.Slicing
	motive      *series.Sliced
}

// New validates that cat and charge share a rank.
func New(cat *category.AbelianCategory, charge *lattice.CentralCharge, opts ...Option) (*Condition, error) {
	if cat == nil || charge == nil {
		return nil, fmt.Errorf("stability condition: category and charge are required: %w", ErrInvalidArgument)
	}
	if cat.Rank() != charge.Rank() {
		return nil, fmt.Errorf("stability condition: category of rank %d, charge of rank %d: %w",
			cat.Rank(), charge.Rank(), ErrRankMismatch)
	}
	c := &Condition{cat: cat, charge: charge}
	for _, opt := range opts {
		opt(c)
	}
	if c.name == "" {
		c.name = "Stability(" + cat.Name() + ")"
	}

	return c, nil
}

// Rank returns the rank of the grading lattice.
func (c *Condition) Rank() int { return c.charge.Rank() }

// Name returns the display name.
func (c *Condition) Name() string { return c.name }

// Charge returns the central charge.
func (c *Condition) Charge() *lattice.CentralCharge { return c.charge }

// Category returns the underlying abelian category.
func (c *Condition) Category() *category.AbelianCategory { return c.cat }

// Cone returns the cone of dimension vectors of objects.
func (c *Condition) Cone() lattice.Cone { return c.cat.MotiveOfObjects().Cone() }

// Pairing returns the Euler pairing of the category.
func (c *Condition) Pairing() *lattice.Pairing { return c.cat.EulerPairing() }

// PhaseOf returns the phase of the central charge of d.
func (c *Condition) PhaseOf(d lattice.Vector) (lattice.Phase, error) { return c.charge.Phase(d) }

// Collinear reports whether d and e have the same phase.
func (c *Condition) Collinear(d, e lattice.Vector) (bool, error) { return c.charge.Collinear(d, e) }

// ConeAt returns the vectors of the ambient cone whose phase equals phi
// modulo 2, together with zero.
func (c *Condition) ConeAt(phi lattice.Phase) (lattice.Cone, error) {
	return lattice.Subcone(c.Cone(), func(d lattice.Vector) bool {
		if d.IsZero() {
			return true
		}
		p, err := c.charge.Phase(d)
		if err != nil {
			return false
		}
		k := phi.Branch() - p.Branch()

		return k%2 == 0 && p.Shift(k).Equal(phi)
	}), nil
}

// Semistables returns the slicing of semistable objects, built on first use.
func (c *Condition) Semistables() *category.Slicing {
	if c.semistables == nil {
		// pairing and sliced motive share the rank checked in New
		c.semistables, _ = category.NewSlicing(c.Pairing(), c.MotiveOfSemistables(),
			category.WithName("Semistables("+c.cat.Name()+")"))
	}

	return c.semistables
}

// MotiveOfSemistables returns the motive of semistable objects, queried by
// dimension vector or by phase.
func (c *Condition) MotiveOfSemistables() *series.Sliced {
	if c.motive == nil {
		// the vector func and both resolvers are set, so validation passes
		c.motive, _ = series.NewSliced(c.Rank(),
			series.WithVectorFunc(c.semistableAt),
			series.WithPhaseOf(c.PhaseOf),
			series.WithConeAt(c.ConeAt),
			series.WithSlicedName("Semistables("+c.cat.Name()+")"))
	}

	return c.motive
}

// DTInvariants is shorthand for Semistables().DTInvariants().
func (c *Condition) DTInvariants() *category.DTInvariants {
	return c.Semistables().DTInvariants()
}
