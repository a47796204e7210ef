// SPDX-License-Identifier: MIT

package category

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/dtinv/lattice"
	"github.com/katalvlaran/dtinv/motive"
	"github.com/katalvlaran/dtinv/series"
)

// DTInvariants are the motivic Donaldson–Thomas invariants of a slicing:
//
//	DT_phi = (L-1)/R · Log(normalized objects of phase phi)
//
// queried by phase or by dimension vector.
type DTInvariants struct {
	slicing *Slicing
	logs    map[lattice.PhaseKey]*series.Series
	sliced  *series.Sliced
}

func newDTInvariants(s *Slicing) *DTInvariants {
	dt := &DTInvariants{slicing: s, logs: make(map[lattice.PhaseKey]*series.Series)}
	// The resolvers are method values and the phase func is set, so the
	// configuration is always valid.
	dt.sliced, _ = series.NewSliced(s.Rank(),
		series.WithPhaseFunc(dt.of),
		series.WithPhaseOf(s.objects.PhaseOf),
		series.WithConeAt(s.objects.ConeAt),
		series.WithSlicedName("DT("+s.name+")"))

	return dt
}

// Rank returns the rank of the grading lattice.
func (dt *DTInvariants) Rank() int { return dt.slicing.Rank() }

// Name returns the display name.
func (dt *DTInvariants) Name() string { return dt.sliced.Name() }

// VirtualDimension returns 1 - χ(d,d).
func (dt *DTInvariants) VirtualDimension(d lattice.Vector) int {
	return 1 - dt.slicing.euler.Eval(d, d)
}

// Log returns the plethystic logarithm of the normalized objects of phase
// phi, cached per phase.
func (dt *DTInvariants) Log(phi lattice.Phase) (*series.Series, error) {
	key := phi.Key()
	if l, ok := dt.logs[key]; ok {
		return l, nil
	}
	a, err := dt.slicing.At(phi)
	if err != nil {
		return nil, err
	}
	l, err := series.Log(a.NormalizedMotiveOfObjects())
	if err != nil {
		return nil, fmt.Errorf("dt invariants at %v: %w", phi, err)
	}
	dt.logs[key] = l
	slog.Debug("log computed", "slicing", dt.slicing.name, "phase", phi.String())

	return l, nil
}

// Of returns the DT invariants of phase phi as a series.
func (dt *DTInvariants) Of(phi lattice.Phase) (*series.Series, error) {
	return dt.sliced.Of(phi)
}

func (dt *DTInvariants) of(phi lattice.Phase) (*series.Series, error) {
	l, err := dt.Log(phi)
	if err != nil {
		return nil, err
	}
	c := motive.L().Sub(motive.One()).Div(motive.R())

	return series.NewSeries(l.Cone(), func(d lattice.Vector) (motive.Motive, error) {
		v, err := l.At(d)
		if err != nil {
			return motive.Zero(), err
		}

		return c.Mul(v), nil
	}, series.WithName(fmt.Sprintf("%v * %s", c, l.Name())))
}

// At returns the DT invariant of d, normalized as
// R^{-vdim}·Normalize(R^{vdim}·DT(d)). The zero vector has invariant 0.
func (dt *DTInvariants) At(d lattice.Vector) (motive.Motive, error) {
	if d.Rank() != dt.Rank() {
		return motive.Zero(), fmt.Errorf("dt invariants at %v: rank %d: %w", d, dt.Rank(), ErrRankMismatch)
	}
	if d.IsZero() {
		return motive.Zero(), nil
	}
	v, err := dt.sliced.At(d)
	if err != nil {
		return motive.Zero(), err
	}
	vdim := dt.VirtualDimension(d)

	return v.MulRPow(vdim).Normalize().MulRPow(-vdim), nil
}
