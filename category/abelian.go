// SPDX-License-Identifier: MIT

package category

import (
	"fmt"

	"github.com/katalvlaran/dtinv/lattice"
	"github.com/katalvlaran/dtinv/motive"
	"github.com/katalvlaran/dtinv/series"
)

// Option configures an AbelianCategory or a Slicing.
type Option func(*options)

type options struct {
	name string
}

// WithName sets the display name.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// AbelianCategory holds the motive of objects of an abelian category,
// graded by dimension vectors, and its Euler pairing.
type AbelianCategory struct {
	name       string
	euler      *lattice.Pairing
	objects    *series.Series
	normalized *series.Series
}

// NewAbelianCategory validates that objects and euler share a rank.
func NewAbelianCategory(objects *series.Series, euler *lattice.Pairing, opts ...Option) (*AbelianCategory, error) {
	if objects == nil || euler == nil {
		return nil, fmt.Errorf("abelian category: objects and euler pairing are required: %w", ErrInvalidArgument)
	}
	if objects.Rank() != euler.Rank() {
		return nil, fmt.Errorf("abelian category: objects of rank %d, pairing of rank %d: %w",
			objects.Rank(), euler.Rank(), ErrRankMismatch)
	}
	o := buildOptions(opts)
	if o.name == "" {
		o.name = fmt.Sprintf("AbelianCategory(rank=%d)", euler.Rank())
	}

	return &AbelianCategory{name: o.name, euler: euler, objects: objects}, nil
}

// Rank returns the rank of the grading lattice.
func (a *AbelianCategory) Rank() int { return a.euler.Rank() }

// Name returns the display name.
func (a *AbelianCategory) Name() string { return a.name }

// String implements fmt.Stringer.
func (a *AbelianCategory) String() string { return a.name }

// EulerPairing returns χ.
func (a *AbelianCategory) EulerPairing() *lattice.Pairing { return a.euler }

// MotiveOfObjects returns the motive-of-objects series.
func (a *AbelianCategory) MotiveOfObjects() *series.Series { return a.objects }

// NormalizedMotiveOfObjects returns d ↦ R^{χ(d,d)}·objects(d), built on
// first use.
func (a *AbelianCategory) NormalizedMotiveOfObjects() *series.Series {
	if a.normalized != nil {
		return a.normalized
	}
	a.normalized, _ = series.NewSeries(a.objects.Cone(), func(d lattice.Vector) (motive.Motive, error) {
		v, err := a.objects.At(d)
		if err != nil {
			return motive.Zero(), err
		}

		return v.MulRPow(a.euler.Eval(d, d)), nil
	}, series.WithName(a.objects.Name()+"_vir"))

	return a.normalized
}

// Shift returns the category shifted n times: objects are re-indexed by
// (-1)^n·d, the pairing is unchanged.
func (a *AbelianCategory) Shift(n int) *AbelianCategory {
	return &AbelianCategory{
		name:    fmt.Sprintf("%s[%d]", a.name, n),
		euler:   a.euler,
		objects: a.objects.Shift(n),
	}
}
