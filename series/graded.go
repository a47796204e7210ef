// SPDX-License-Identifier: MIT

package series

import (
	"fmt"

	"github.com/katalvlaran/dtinv/lattice"
	"github.com/katalvlaran/dtinv/motive"
)

// CoeffFunc computes the coefficient of a dimension vector.
type CoeffFunc func(d lattice.Vector) (motive.Motive, error)

// Option configures a Graded or a Series.
type Option func(*options)

type options struct {
	name string
}

// WithName sets the display name used in String and in log records.
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

// Graded is a memoized map from dimension vectors of a fixed rank to
// motives. Each coefficient is computed at most once.
//
// Not safe for concurrent use.
type Graded struct {
	rank  int
	name  string
	fn    CoeffFunc
	cache map[string]motive.Motive
}

// NewGraded wraps fn. The rank must be positive and fn non-nil.
func NewGraded(rank int, fn CoeffFunc, opts ...Option) (*Graded, error) {
	if rank <= 0 {
		return nil, fmt.Errorf("graded: rank %d must be positive: %w", rank, ErrInvalidArgument)
	}
	if fn == nil {
		return nil, fmt.Errorf("graded: nil coefficient function: %w", ErrInvalidArgument)
	}
	o := buildOptions(opts)

	return &Graded{rank: rank, name: o.name, fn: fn, cache: make(map[string]motive.Motive)}, nil
}

// Rank returns the rank of the indexing lattice.
func (g *Graded) Rank() int { return g.rank }

// Name returns the display name.
func (g *Graded) Name() string { return g.name }

// At returns the coefficient of d, computing and caching it on first use.
// Errors from the coefficient function are returned and not cached.
func (g *Graded) At(d lattice.Vector) (motive.Motive, error) {
	if d.Rank() != g.rank {
		return motive.Zero(), fmt.Errorf("%s at %v: rank %d: %w", g.label(), d, g.rank, ErrRankMismatch)
	}
	key := d.Key()
	if v, ok := g.cache[key]; ok {
		return v, nil
	}
	v, err := g.fn(d)
	if err != nil {
		return motive.Zero(), err
	}
	g.cache[key] = v

	return v, nil
}

// Len returns the number of cached coefficients.
func (g *Graded) Len() int { return len(g.cache) }

func (g *Graded) label() string {
	if g.name == "" {
		return "graded"
	}

	return g.name
}
