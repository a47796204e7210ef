// SPDX-License-Identifier: MIT

package stability_test

import (
	"testing"

	"github.com/katalvlaran/dtinv/category"
	"github.com/katalvlaran/dtinv/lattice"
	"github.com/katalvlaran/dtinv/motive"
	"github.com/katalvlaran/dtinv/quiver"
	"github.com/katalvlaran/dtinv/series"
	"github.com/katalvlaran/dtinv/stability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// condition builds the stability condition with charge (real, imag) on the
// representations of the two-vertex quiver with n arrows 0 → 1.
func condition(t *testing.T, n int, real []int) *stability.Condition {
	t.Helper()
	q, err := quiver.New(2, map[[2]int]int{{0, 1}: n})
	require.NoError(t, err)
	z, err := lattice.NewCentralCharge(real, []int{1, 1})
	require.NoError(t, err)
	c, err := q.Stability(z)
	require.NoError(t, err)

	return c
}

func typeStrings(ts []stability.HNType) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.String()
	}

	return out
}

// TestNew_Validation rejects mismatched inputs.
func TestNew_Validation(t *testing.T) {
	q, err := quiver.New(2, nil)
	require.NoError(t, err)
	z, err := lattice.NewCentralCharge([]int{0, 0, 0}, nil)
	require.NoError(t, err)

	_, err = stability.New(q.Reps(), z)
	assert.ErrorIs(t, err, stability.ErrRankMismatch)
	_, err = stability.New(nil, z)
	assert.ErrorIs(t, err, stability.ErrInvalidArgument)
}

// TestHNTypes_A2 checks types and exponents in both chambers of A2.
func TestHNTypes_A2(t *testing.T) {
	// e1 above e2: the simple subobject S_2 does not destabilize
	c := condition(t, 1, []int{-1, 0})
	ts, err := c.HNTypes(lattice.V(1, 1))
	require.NoError(t, err)
	assert.Equal(t, []string{"{(1,1)} L^0", "{(1,0), (0,1)} L^0"}, typeStrings(ts))
	assert.True(t, ts[0].IsTrivial(lattice.V(1, 1)))
	assert.False(t, ts[1].IsTrivial(lattice.V(1, 1)))

	// e2 above e1: every extension with the arrow is destabilized
	c = condition(t, 1, []int{0, -1})
	ts, err = c.HNTypes(lattice.V(1, 1))
	require.NoError(t, err)
	assert.Equal(t, []string{"{(1,1)} L^0", "{(1,0), (0,1)} L^1"}, typeStrings(ts))

	ordered, err := ts[1].Ordered(c.PhaseOf)
	require.NoError(t, err)
	assert.True(t, ordered[0].Equal(lattice.V(0, 1)))
	assert.True(t, ordered[1].Equal(lattice.V(1, 0)))

	none, err := c.HNTypes(lattice.Zero(2))
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = c.HNTypes(lattice.V(-1, 0))
	assert.ErrorIs(t, err, lattice.ErrNotInCone)
	_, err = c.HNTypes(lattice.V(1))
	assert.ErrorIs(t, err, lattice.ErrRankMismatch)
}

// TestHNTypes_SkipsCollinear checks that pieces of equal phase never
// appear together.
func TestHNTypes_SkipsCollinear(t *testing.T) {
	c := condition(t, 1, []int{-1, 0})
	ts, err := c.HNTypes(lattice.V(2, 2))
	require.NoError(t, err)
	for _, ty := range ts {
		for i, p := range ty.Pieces {
			for _, q := range ty.Pieces[i+1:] {
				same, err := c.Collinear(p, q)
				require.NoError(t, err)
				assert.False(t, same, "type %v", ty)
			}
		}
	}
}

// TestSemistables_A2 checks the motive of semistables in both chambers.
func TestSemistables_A2(t *testing.T) {
	c := condition(t, 1, []int{-1, 0})
	ss := c.MotiveOfSemistables()
	v, err := ss.At(lattice.V(1, 1))
	require.NoError(t, err)
	assert.Equal(t, "1/(R^2 - 1)", v.String())
	v, err = ss.At(lattice.V(2, 1))
	require.NoError(t, err)
	assert.True(t, v.IsZero())
	v, err = ss.At(lattice.Zero(2))
	require.NoError(t, err)
	assert.True(t, v.IsOne())

	c = condition(t, 1, []int{0, -1})
	v, err = c.MotiveOfSemistables().At(lattice.V(1, 1))
	require.NoError(t, err)
	assert.True(t, v.IsZero())
}

// TestSemistables_HNLaw checks objects(d) = Σ_types L^exp·Π ss(pieces).
func TestSemistables_HNLaw(t *testing.T) {
	c := condition(t, 2, []int{-1, 0})
	objects := c.Category().MotiveOfObjects()
	ss := c.MotiveOfSemistables()
	for i := 0; i <= 2; i++ {
		for j := 0; j <= 2; j++ {
			d := lattice.V(i, j)
			ts, err := c.HNTypes(d)
			require.NoError(t, err)
			var sum motive.Motive
			for _, ty := range ts {
				term := motive.LPow(ty.Exponent)
				for _, p := range ty.Pieces {
					v, err := ss.At(p)
					require.NoError(t, err)
					term = term.Mul(v)
				}
				sum = sum.Add(term)
			}
			if d.IsZero() {
				sum = motive.One()
			}
			want, err := objects.At(d)
			require.NoError(t, err)
			assert.True(t, sum.Equal(want), "HN law at %v: %v vs %v", d, sum, want)
		}
	}
}

// TestConeAt restricts to vectors of one phase.
func TestConeAt(t *testing.T) {
	c := condition(t, 1, []int{-1, 0})
	phi, err := c.PhaseOf(lattice.V(1, 0))
	require.NoError(t, err)
	cone, err := c.ConeAt(phi)
	require.NoError(t, err)

	assert.True(t, cone.Contains(lattice.Zero(2)))
	assert.True(t, cone.Contains(lattice.V(3, 0)))
	assert.False(t, cone.Contains(lattice.V(1, 1)))
	assert.False(t, cone.Contains(lattice.V(-1, 0)))
	assert.True(t, cone.Pred(lattice.V(2, 0), lattice.V(2, 0)).Equal(lattice.V(1, 0)))

	other, err := c.ConeAt(phi.Shift(1))
	require.NoError(t, err)
	assert.False(t, other.Contains(lattice.V(1, 0)), "phases differ by one")
}

// TestDTInvariants_A2 checks the invariants in both chambers.
func TestDTInvariants_A2(t *testing.T) {
	dt := condition(t, 1, []int{-1, 0}).DTInvariants()
	for _, d := range []lattice.Vector{lattice.V(1, 0), lattice.V(0, 1), lattice.V(1, 1)} {
		v, err := dt.At(d)
		require.NoError(t, err)
		assert.True(t, v.IsOne(), "DT%v = %v", d, v)
	}
	for _, d := range []lattice.Vector{lattice.Zero(2), lattice.V(2, 2), lattice.V(2, 1)} {
		v, err := dt.At(d)
		require.NoError(t, err)
		assert.True(t, v.IsZero(), "DT%v = %v", d, v)
	}

	dt = condition(t, 1, []int{0, -1}).DTInvariants()
	v, err := dt.At(lattice.V(1, 1))
	require.NoError(t, err)
	assert.True(t, v.IsZero())
}

// TestDTInvariants_Kronecker checks the invariants of the Kronecker quiver.
func TestDTInvariants_Kronecker(t *testing.T) {
	c := condition(t, 2, []int{-1, 0})
	v, err := c.MotiveOfSemistables().At(lattice.V(1, 1))
	require.NoError(t, err)
	assert.Equal(t, "(R^2 + 1)/(R^2 - 1)", v.String())

	dt := c.DTInvariants()
	assert.Same(t, dt, c.Semistables().DTInvariants())
	assert.Equal(t, 1, dt.VirtualDimension(lattice.V(1, 1)))

	cases := map[string]string{
		"(1,1)": "(R^2 + 1)/R",
		"(2,2)": "0",
		"(1,2)": "1",
		"(2,1)": "1",
		"(1,3)": "0",
	}
	for key, want := range cases {
		d, err := lattice.ParseVector(key)
		require.NoError(t, err)
		got, err := dt.At(d)
		require.NoError(t, err)
		assert.Equal(t, want, got.String(), "DT%s", key)
	}
}

// TestErrors_ZeroCharge propagates a vanishing central charge.
func TestErrors_ZeroCharge(t *testing.T) {
	q, err := quiver.New(2, nil)
	require.NoError(t, err)
	z, err := lattice.NewCentralCharge([]int{0, 0}, []int{1, -1})
	require.NoError(t, err)
	c, err := q.Stability(z)
	require.NoError(t, err)

	_, err = c.HNTypes(lattice.V(2, 2))
	assert.ErrorIs(t, err, lattice.ErrZeroCharge)
	_, err = c.DTInvariants().At(lattice.V(1, 1))
	assert.ErrorIs(t, err, lattice.ErrZeroCharge)
}

// TestErrors_Exhausted reports a runaway cone instead of truncating.
func TestErrors_Exhausted(t *testing.T) {
	stuck, err := lattice.NewFuncCone(1,
		func(d lattice.Vector) bool { return d.At(0) >= 0 },
		func(d, bound lattice.Vector) lattice.Vector {
			if d.At(0) > bound.At(0) {
				return bound
			}

			return d
		})
	require.NoError(t, err)
	objects, err := series.NewSeries(stuck, func(lattice.Vector) (motive.Motive, error) { return motive.One(), nil })
	require.NoError(t, err)
	euler, err := lattice.NewPairing(1, nil)
	require.NoError(t, err)
	cat, err := category.NewAbelianCategory(objects, euler)
	require.NoError(t, err)
	z, err := lattice.NewCentralCharge(nil, []int{1})
	require.NoError(t, err)
	c, err := stability.New(cat, z, stability.WithName("stuck"))
	require.NoError(t, err)
	assert.Equal(t, "stuck", c.Name())

	_, err = c.HNTypes(lattice.V(1))
	assert.ErrorIs(t, err, lattice.ErrExhausted)
	_, err = c.MotiveOfSemistables().At(lattice.V(1))
	assert.ErrorIs(t, err, lattice.ErrExhausted)
}
