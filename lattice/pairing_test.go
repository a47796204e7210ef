// SPDX-License-Identifier: MIT

package lattice_test

import (
	"testing"

	"github.com/katalvlaran/dtinv/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPairing_Values evaluates the documented rank-3 scenario.
func TestPairing_Values(t *testing.T) {
	p, err := lattice.NewPairing(3, map[[2]int]int{{0, 0}: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, p.Rank())
	assert.Equal(t, 2, p.Coefficient(0, 0))

	d := lattice.V(2, 1, 1)
	e := lattice.V(2, 1, 0)
	assert.Equal(t, 8, p.Eval(d, d))
	assert.Equal(t, 8, p.Eval(d, e))
}

// TestPairing_DefaultIsScalarProduct checks the unit matrix default.
func TestPairing_DefaultIsScalarProduct(t *testing.T) {
	p, err := lattice.NewPairing(3, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, p.Eval(lattice.V(2, 1, 1), lattice.V(2, 1, 1)))
}

// TestPairing_Validation rejects bad rank and indices.
func TestPairing_Validation(t *testing.T) {
	_, err := lattice.NewPairing(-3, map[[2]int]int{{0, 0}: 2})
	assert.ErrorIs(t, err, lattice.ErrInvalidArgument)
	_, err = lattice.NewPairing(3, map[[2]int]int{{3, 3}: 2})
	assert.ErrorIs(t, err, lattice.ErrInvalidArgument)
	_, err = lattice.NewPairing(3, map[[2]int]int{{0, -1}: 2})
	assert.ErrorIs(t, err, lattice.ErrInvalidArgument)
}

// TestPairing_Bilinear checks additivity in both arguments.
func TestPairing_Bilinear(t *testing.T) {
	p, err := lattice.NewPairing(3, map[[2]int]int{{0, 0}: 1, {0, 1}: -2, {2, 1}: 3, {1, 2}: -1})
	require.NoError(t, err)
	vs := []lattice.Vector{
		lattice.V(2, 1, 1), lattice.V(2, 1, 0), lattice.V(0, 3, 1), lattice.V(1, 0, 4),
	}
	for _, d := range vs {
		for _, d2 := range vs {
			for _, e := range vs {
				assert.Equal(t, p.Eval(d, e)+p.Eval(d2, e), p.Eval(d.Add(d2), e))
				assert.Equal(t, p.Eval(e, d)+p.Eval(e, d2), p.Eval(e, d.Add(d2)))
			}
		}
	}
}

// TestPairing_TransposeAndSub builds an Euler-type form.
func TestPairing_TransposeAndSub(t *testing.T) {
	hom, err := lattice.NewPairing(2, nil)
	require.NoError(t, err)
	ext, err := lattice.NewPairing(2, map[[2]int]int{{0, 1}: 1})
	require.NoError(t, err)

	chi, err := hom.Sub(ext)
	require.NoError(t, err)
	assert.Equal(t, -1, chi.Eval(lattice.V(1, 0), lattice.V(0, 1)))
	assert.Equal(t, 0, chi.Eval(lattice.V(0, 1), lattice.V(1, 0)))
	assert.Equal(t, -1, chi.Transpose().Eval(lattice.V(0, 1), lattice.V(1, 0)))

	other, err := lattice.NewPairing(3, nil)
	require.NoError(t, err)
	_, err = hom.Sub(other)
	assert.ErrorIs(t, err, lattice.ErrRankMismatch)
	assert.Equal(t, "Pairing(rank=2, (0,0):1, (0,1):-1, (1,1):1)", chi.String())
}

// TestZeroPairing checks that the zero form is not mistaken for the default.
func TestZeroPairing(t *testing.T) {
	z, err := lattice.ZeroPairing(2)
	require.NoError(t, err)
	assert.Equal(t, 0, z.Eval(lattice.V(3, 1), lattice.V(2, 5)))
	assert.Empty(t, z.Coefficients())
	assert.Equal(t, "Pairing(rank=2)", z.String())

	_, err = lattice.ZeroPairing(0)
	assert.ErrorIs(t, err, lattice.ErrInvalidArgument)
}
