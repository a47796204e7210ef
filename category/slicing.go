// SPDX-License-Identifier: MIT

package category

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/dtinv/lattice"
	"github.com/katalvlaran/dtinv/series"
)

// Slicing assigns to each phase the abelian category of objects of that
// phase.
type Slicing struct {
	name    string
	euler   *lattice.Pairing
	objects *series.Sliced
	slices  map[lattice.PhaseKey]*AbelianCategory
	dt      *DTInvariants
}

// NewSlicing validates that objects and euler share a rank.
func NewSlicing(euler *lattice.Pairing, objects *series.Sliced, opts ...Option) (*Slicing, error) {
	if objects == nil || euler == nil {
		return nil, fmt.Errorf("slicing: objects and euler pairing are required: %w", ErrInvalidArgument)
	}
	if objects.Rank() != euler.Rank() {
		return nil, fmt.Errorf("slicing: objects of rank %d, pairing of rank %d: %w",
			objects.Rank(), euler.Rank(), ErrRankMismatch)
	}
	o := buildOptions(opts)
	if o.name == "" {
		o.name = objects.Name()
	}
	if o.name == "" {
		o.name = fmt.Sprintf("Slicing(rank=%d)", euler.Rank())
	}

	return &Slicing{
		name:    o.name,
		euler:   euler,
		objects: objects,
		slices:  make(map[lattice.PhaseKey]*AbelianCategory),
	}, nil
}

// Rank returns the rank of the grading lattice.
func (s *Slicing) Rank() int { return s.euler.Rank() }

// Name returns the display name.
func (s *Slicing) Name() string { return s.name }

// EulerPairing returns χ.
func (s *Slicing) EulerPairing() *lattice.Pairing { return s.euler }

// MotiveOfObjects returns the sliced motive of objects.
func (s *Slicing) MotiveOfObjects() *series.Sliced { return s.objects }

// At returns the abelian category of objects of phase phi.
func (s *Slicing) At(phi lattice.Phase) (*AbelianCategory, error) {
	key := phi.Key()
	if a, ok := s.slices[key]; ok {
		return a, nil
	}
	objects, err := s.objects.Of(phi)
	if err != nil {
		return nil, err
	}
	a, err := NewAbelianCategory(objects, s.euler, WithName(fmt.Sprintf("%s(%.4f)", s.name, phi.Float())))
	if err != nil {
		return nil, err
	}
	s.slices[key] = a
	slog.Debug("slice created", "slicing", s.name, "phase", phi.String())

	return a, nil
}

// DTInvariants returns the DT invariants of the slicing, built on first use.
func (s *Slicing) DTInvariants() *DTInvariants {
	if s.dt == nil {
		s.dt = newDTInvariants(s)
	}

	return s.dt
}
