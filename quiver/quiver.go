// SPDX-License-Identifier: MIT

package quiver

import (
	"fmt"

	"github.com/katalvlaran/dtinv/category"
	"github.com/katalvlaran/dtinv/lattice"
	"github.com/katalvlaran/dtinv/motive"
	"github.com/katalvlaran/dtinv/series"
	"github.com/katalvlaran/dtinv/stability"
)

// Option configures a Quiver.
type Option func(*Quiver)

// WithName sets the display name.
func WithName(name string) Option {
	return func(q *Quiver) { q.name = name }
}

// Quiver is a finite quiver given by its arrow counts.
type Quiver struct {
	name     string
	vertices int
	arrows   map[[2]int]int

	hom, ext, euler *lattice.Pairing
	reps            *category.AbelianCategory
}

// New validates the arrow counts and derives hom, ext and χ.
// arrows maps (source, target) to the number of arrows; zero counts are
// ignored.
func New(vertices int, arrows map[[2]int]int, opts ...Option) (*Quiver, error) {
	if vertices <= 0 {
		return nil, fmt.Errorf("quiver with %d vertices: %w", vertices, ErrInvalidQuiver)
	}
	a := make(map[[2]int]int, len(arrows))
	for st, n := range arrows {
		if st[0] < 0 || st[0] >= vertices || st[1] < 0 || st[1] >= vertices {
			return nil, fmt.Errorf("arrow %d → %d outside [0,%d): %w", st[0], st[1], vertices, ErrInvalidQuiver)
		}
		if n < 0 {
			return nil, fmt.Errorf("arrow %d → %d with count %d: %w", st[0], st[1], n, ErrInvalidQuiver)
		}
		if n > 0 {
			a[st] = n
		}
	}

	q := &Quiver{vertices: vertices, arrows: a}
	for _, opt := range opts {
		opt(q)
	}
	if q.name == "" {
		q.name = fmt.Sprintf("Quiver(%d)", vertices)
	}

	var err error
	if q.hom, err = lattice.NewPairing(vertices, nil); err != nil {
		return nil, err
	}
	if len(a) == 0 {
		q.ext, err = lattice.ZeroPairing(vertices)
	} else {
		q.ext, err = lattice.NewPairing(vertices, a)
	}
	if err != nil {
		return nil, err
	}
	if q.euler, err = q.hom.Sub(q.ext); err != nil {
		return nil, err
	}

	return q, nil
}

// Name returns the display name.
func (q *Quiver) Name() string { return q.name }

// Vertices returns the number of vertices.
func (q *Quiver) Vertices() int { return q.vertices }

// Arrows returns a copy of the nonzero arrow counts.
func (q *Quiver) Arrows() map[[2]int]int {
	a := make(map[[2]int]int, len(q.arrows))
	for k, v := range q.arrows {
		a[k] = v
	}

	return a
}

// Hom returns the standard scalar product.
func (q *Quiver) Hom() *lattice.Pairing { return q.hom }

// Ext returns the arrow pairing.
func (q *Quiver) Ext() *lattice.Pairing { return q.ext }

// EulerPairing returns χ = hom - ext.
func (q *Quiver) EulerPairing() *lattice.Pairing { return q.euler }

// Reps returns the category of representations, built on first use.
func (q *Quiver) Reps() *category.AbelianCategory {
	if q.reps != nil {
		return q.reps
	}
	objects, _ := series.NewSeries(lattice.StandardCone(q.vertices), q.motiveOfReps,
		series.WithName("Reps("+q.name+")"))
	q.reps, _ = category.NewAbelianCategory(objects, q.euler, category.WithName(q.name))

	return q.reps
}

func (q *Quiver) motiveOfReps(d lattice.Vector) (motive.Motive, error) {
	return motive.LPow(q.ext.Eval(d, d)).Div(motive.GLProduct(d.Coords()...)), nil
}

// Stability returns the stability condition of charge on the category of
// representations. A nil charge selects the trivial one, Z(d) = i·Σ d_i.
func (q *Quiver) Stability(charge *lattice.CentralCharge) (*stability.Condition, error) {
	if charge == nil {
		var err error
		if charge, err = lattice.NewCentralCharge(make([]int, q.vertices), nil); err != nil {
			return nil, err
		}
	}

	return stability.New(q.Reps(), charge)
}
