// SPDX-License-Identifier: MIT

package lattice

import "fmt"

// CentralCharge is the linear map Z(d) = real·d + i·imag·d.
// It induces a Phase on every vector with nonzero charge.
type CentralCharge struct {
	real, imag []int
}

// NewCentralCharge builds a central charge. A nil real part defaults to
// zeros and a nil imaginary part to ones; at least one part is required.
func NewCentralCharge(real, imag []int) (*CentralCharge, error) {
	var rank int
	switch {
	case real != nil:
		rank = len(real)
	case imag != nil:
		rank = len(imag)
	default:
		return nil, fmt.Errorf("central charge: real or imaginary part required: %w", ErrInvalidArgument)
	}
	if rank == 0 {
		return nil, fmt.Errorf("central charge: rank must be positive: %w", ErrInvalidArgument)
	}
	re := make([]int, rank)
	im := make([]int, rank)
	if real != nil {
		if len(real) != rank {
			return nil, fmt.Errorf("central charge: real part has %d components, want %d: %w",
				len(real), rank, ErrInvalidArgument)
		}
		copy(re, real)
	}
	if imag != nil {
		if len(imag) != rank {
			return nil, fmt.Errorf("central charge: imaginary part has %d components, want %d: %w",
				len(imag), rank, ErrInvalidArgument)
		}
		copy(im, imag)
	} else {
		for i := range im {
			im[i] = 1
		}
	}

	return &CentralCharge{real: re, imag: im}, nil
}

// Rank returns the number of components.
func (z *CentralCharge) Rank() int { return len(z.real) }

// Eval returns (Re Z(d), Im Z(d)).
func (z *CentralCharge) Eval(d Vector) (int, int) {
	if d.Rank() != z.Rank() {
		panic(fmt.Sprintf("%v: charge of rank %d at %v", ErrRankMismatch, z.Rank(), d))
	}
	var re, im int
	for i, x := range d.c {
		re += z.real[i] * x
		im += z.imag[i] * x
	}

	return re, im
}

// Slope returns -Re Z(d) / Im Z(d).
func (z *CentralCharge) Slope(d Vector) float64 {
	re, im := z.Eval(d)

	return -float64(re) / float64(im)
}

// Phase returns the phase of Z(d) on branch 0 or 1.
func (z *CentralCharge) Phase(d Vector) (Phase, error) {
	if d.Rank() != z.Rank() {
		return Phase{}, fmt.Errorf("phase of %v: %w", d, ErrRankMismatch)
	}
	re, im := z.Eval(d)
	if re == 0 && im == 0 {
		return Phase{}, fmt.Errorf("phase of %v: %w", d, ErrZeroCharge)
	}

	return phaseOf(re, im), nil
}

// Collinear reports whether d and e have the same phase.
func (z *CentralCharge) Collinear(d, e Vector) (bool, error) {
	p, err := z.Phase(d)
	if err != nil {
		return false, err
	}
	q, err := z.Phase(e)
	if err != nil {
		return false, err
	}

	return p.Equal(q), nil
}
