// SPDX-License-Identifier: MIT

package series

import (
	"fmt"

	"github.com/katalvlaran/dtinv/lattice"
	"github.com/katalvlaran/dtinv/motive"
)

// PhaseFunc produces the series of one phase.
type PhaseFunc func(phi lattice.Phase) (*Series, error)

// PhaseOfFunc resolves the phase of a nonzero dimension vector.
type PhaseOfFunc func(d lattice.Vector) (lattice.Phase, error)

// ConeAtFunc resolves the cone of vectors of a given phase.
type ConeAtFunc func(phi lattice.Phase) (lattice.Cone, error)

// SlicedOption configures a Sliced.
type SlicedOption func(*Sliced)

// WithVectorFunc supplies explicit per-vector coefficients.
func WithVectorFunc(fn CoeffFunc) SlicedOption {
	return func(s *Sliced) { s.vectorFn = fn }
}

// WithPhaseFunc supplies explicit per-phase series.
func WithPhaseFunc(fn PhaseFunc) SlicedOption {
	return func(s *Sliced) { s.phaseFn = fn }
}

// WithPhaseOf sets the phase resolver used to derive vector values from
// phase series.
func WithPhaseOf(fn PhaseOfFunc) SlicedOption {
	return func(s *Sliced) { s.phaseOf = fn }
}

// WithConeAt sets the cone resolver used to derive phase series from
// vector values.
func WithConeAt(fn ConeAtFunc) SlicedOption {
	return func(s *Sliced) { s.coneAt = fn }
}

// WithSlicedName sets the display name.
func WithSlicedName(name string) SlicedOption {
	return func(s *Sliced) { s.name = name }
}

// Sliced is a motive valued function that can be queried either by vector
// or by phase. Whichever representation is not given explicitly is derived
// from the other:
//
//	At(d)   = Of(phaseOf(d)).At(d)
//	Of(phi) = the series on coneAt(phi) with coefficients At
//
// Both results are cached in maps keyed by Vector.Key and Phase.Key.
//
// Not safe for concurrent use.
type Sliced struct {
	rank     int
	name     string
	vectorFn CoeffFunc
	phaseFn  PhaseFunc
	phaseOf  PhaseOfFunc
	coneAt   ConeAtFunc

	vectors map[string]motive.Motive
	phases  map[lattice.PhaseKey]*Series
}

// NewSliced validates that every query can terminate:
//   - without a vector func, a phase func and a phase resolver are required;
//   - without a phase func, a cone resolver is required.
func NewSliced(rank int, opts ...SlicedOption) (*Sliced, error) {
	if rank <= 0 {
		return nil, fmt.Errorf("sliced: rank %d must be positive: %w", rank, ErrInvalidArgument)
	}
	s := &Sliced{
		rank:    rank,
		vectors: make(map[string]motive.Motive),
		phases:  make(map[lattice.PhaseKey]*Series),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.vectorFn == nil && s.phaseFn == nil {
		return nil, fmt.Errorf("sliced: neither vector nor phase values given: %w", ErrInvalidArgument)
	}
	if s.vectorFn == nil && s.phaseOf == nil {
		return nil, fmt.Errorf("sliced: deriving vector values needs a phase resolver: %w", ErrInvalidArgument)
	}
	if s.phaseFn == nil && s.coneAt == nil {
		return nil, fmt.Errorf("sliced: deriving phase series needs a cone resolver: %w", ErrInvalidArgument)
	}

	return s, nil
}

// Rank returns the lattice rank.
func (s *Sliced) Rank() int { return s.rank }

// Name returns the display name.
func (s *Sliced) Name() string { return s.name }

// At returns the value at d.
func (s *Sliced) At(d lattice.Vector) (motive.Motive, error) {
	if d.Rank() != s.rank {
		return motive.Zero(), fmt.Errorf("sliced %q at %v: rank %d: %w", s.name, d, s.rank, ErrRankMismatch)
	}
	key := d.Key()
	if v, ok := s.vectors[key]; ok {
		return v, nil
	}

	var v motive.Motive
	if s.vectorFn != nil {
		var err error
		if v, err = s.vectorFn(d); err != nil {
			return motive.Zero(), err
		}
	} else {
		phi, err := s.phaseOf(d)
		if err != nil {
			return motive.Zero(), err
		}
		ser, err := s.Of(phi)
		if err != nil {
			return motive.Zero(), err
		}
		if v, err = ser.At(d); err != nil {
			return motive.Zero(), err
		}
	}
	s.vectors[key] = v

	return v, nil
}

// Of returns the series of phase phi.
func (s *Sliced) Of(phi lattice.Phase) (*Series, error) {
	key := phi.Key()
	if ser, ok := s.phases[key]; ok {
		return ser, nil
	}

	var ser *Series
	if s.phaseFn != nil {
		var err error
		if ser, err = s.phaseFn(phi); err != nil {
			return nil, err
		}
		if ser.Rank() != s.rank {
			return nil, fmt.Errorf("sliced %q at %v: series of rank %d: %w", s.name, phi, ser.Rank(), ErrRankMismatch)
		}
	} else {
		cone, err := s.coneAt(phi)
		if err != nil {
			return nil, err
		}
		if ser, err = NewSeries(cone, s.At, WithName(fmt.Sprintf("%s%v", s.name, phi))); err != nil {
			return nil, err
		}
	}
	s.phases[key] = ser

	return ser, nil
}

// PhaseOf resolves the phase of d with the configured resolver.
func (s *Sliced) PhaseOf(d lattice.Vector) (lattice.Phase, error) {
	if s.phaseOf == nil {
		return lattice.Phase{}, fmt.Errorf("sliced %q: no phase resolver: %w", s.name, ErrInvalidArgument)
	}

	return s.phaseOf(d)
}

// ConeAt resolves the cone of phase phi with the configured resolver.
func (s *Sliced) ConeAt(phi lattice.Phase) (lattice.Cone, error) {
	if s.coneAt == nil {
		return nil, fmt.Errorf("sliced %q: no cone resolver: %w", s.name, ErrInvalidArgument)
	}

	return s.coneAt(phi)
}
