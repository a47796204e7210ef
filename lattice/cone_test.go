// SPDX-License-Identifier: MIT

package lattice_test

import (
	"testing"

	"github.com/katalvlaran/dtinv/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func partitionStrings(parts []lattice.Partition) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = p.String()
	}

	return out
}

// TestStandardCone_Pred checks the stepping primitive directly.
func TestStandardCone_Pred(t *testing.T) {
	c := lattice.StandardCone(2)
	cases := []struct {
		d, bound, want lattice.Vector
	}{
		{lattice.V(1, 1), lattice.V(1, 1), lattice.V(1, 0)},
		{lattice.V(1, 0), lattice.V(1, 1), lattice.V(0, 1)},
		{lattice.V(2, 4), lattice.V(1, 2), lattice.V(1, 2)},
		{lattice.V(1, 1), lattice.V(0, 1), lattice.V(0, 1)},
		{lattice.V(0, 2), lattice.V(1, 0), lattice.V(0, 0)},
	}
	for _, tc := range cases {
		assert.True(t, c.Pred(tc.d, tc.bound).Equal(tc.want), "pred(%v, %v)", tc.d, tc.bound)
	}
	assert.Panics(t, func() { c.Pred(lattice.Zero(2), lattice.V(1, 1)) })
}

// TestSummands_StandardCone verifies the documented rank-2 scenario.
func TestSummands_StandardCone(t *testing.T) {
	got, err := lattice.Summands(lattice.StandardCone(2), lattice.V(1, 1))
	require.NoError(t, err)
	want := []lattice.Vector{lattice.V(1, 1), lattice.V(1, 0), lattice.V(0, 1), lattice.V(0, 0)}
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, got[i].Equal(want[i]), "summand %d: got %v", i, got[i])
	}
}

// TestSummands_ContainEndpoints checks that d and zero are always present.
func TestSummands_ContainEndpoints(t *testing.T) {
	c := lattice.StandardCone(3)
	for _, d := range []lattice.Vector{lattice.V(0, 0, 0), lattice.V(1, 0, 2), lattice.V(2, 2, 1)} {
		s, err := lattice.Summands(c, d)
		require.NoError(t, err)
		assert.True(t, s[0].Equal(d))
		assert.True(t, s[len(s)-1].IsZero())
		// every coordinate box point is reached exactly once
		want := 1
		for _, x := range d.Coords() {
			want *= x + 1
		}
		assert.Len(t, s, want)
	}

	_, err := lattice.Summands(c, lattice.V(1, -1, 0))
	assert.ErrorIs(t, err, lattice.ErrNotInCone)
}

// TestPartitions_StandardCone verifies the documented rank-2 scenario.
func TestPartitions_StandardCone(t *testing.T) {
	got, err := lattice.Partitions(lattice.StandardCone(2), lattice.V(1, 2))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"{(1,2):1}",
		"{(1,1):1, (0,1):1}",
		"{(1,0):1, (0,2):1}",
		"{(1,0):1, (0,1):2}",
	}, partitionStrings(got))
	assert.True(t, got[0].IsTrivial(lattice.V(1, 2)))
	assert.False(t, got[1].IsTrivial(lattice.V(1, 2)))
}

// TestPartitions_Rank1 counts integer partitions.
func TestPartitions_Rank1(t *testing.T) {
	counts := []int{0, 1, 2, 3, 5, 7, 11, 15, 22, 30, 42}
	c := lattice.StandardCone(1)
	for n := 0; n < len(counts); n++ {
		got, err := lattice.Partitions(c, lattice.V(n))
		require.NoError(t, err)
		assert.Len(t, got, counts[n], "p(%d)", n)
	}

	got, err := lattice.Partitions(c, lattice.V(4))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"{(4):1}", "{(3):1, (1):1}", "{(2):2}", "{(2):1, (1):2}", "{(1):4}",
	}, partitionStrings(got))
}

// TestPartitions_Reconstruct checks that every partition sums back to d
// and that no partition is emitted twice.
func TestPartitions_Reconstruct(t *testing.T) {
	c := lattice.StandardCone(3)
	for _, d := range []lattice.Vector{lattice.V(1, 1, 1), lattice.V(2, 0, 1), lattice.V(2, 2, 1)} {
		parts, err := lattice.Partitions(c, d)
		require.NoError(t, err)
		seen := make(map[string]bool)
		for _, p := range parts {
			assert.True(t, p.Sum().Equal(d), "%v sums to %v", p, p.Sum())
			for i := 1; i < len(p); i++ {
				assert.True(t, p[i].Summand.Less(p[i-1].Summand), "summands descend in %v", p)
			}
			assert.False(t, seen[p.String()], "duplicate %v", p)
			seen[p.String()] = true
		}
	}
	// (1,1,1) has the 5 set partitions of a 3-element set
	parts, err := lattice.Partitions(c, lattice.V(1, 1, 1))
	require.NoError(t, err)
	assert.Len(t, parts, 5)
}

// TestPartitions_Errors covers the membership precondition and the step cap.
func TestPartitions_Errors(t *testing.T) {
	_, err := lattice.Partitions(lattice.StandardCone(2), lattice.V(-1, 1))
	assert.ErrorIs(t, err, lattice.ErrNotInCone)

	zero, err := lattice.Partitions(lattice.StandardCone(2), lattice.Zero(2))
	require.NoError(t, err)
	assert.Empty(t, zero)

	// a runaway cone whose predecessor never decreases
	stuck, err := lattice.NewFuncCone(1,
		func(d lattice.Vector) bool { return d.At(0) >= 0 },
		func(d, bound lattice.Vector) lattice.Vector {
			if d.At(0) > bound.At(0) {
				return bound
			}

			return d
		})
	require.NoError(t, err)
	_, err = lattice.Partitions(stuck, lattice.V(1))
	assert.ErrorIs(t, err, lattice.ErrExhausted)
}

// TestNewFuncCone_Validation rejects missing primitives.
func TestNewFuncCone_Validation(t *testing.T) {
	_, err := lattice.NewFuncCone(0, func(lattice.Vector) bool { return true }, nil)
	assert.ErrorIs(t, err, lattice.ErrInvalidArgument)
	_, err = lattice.NewFuncCone(1, nil, nil)
	assert.ErrorIs(t, err, lattice.ErrInvalidArgument)
}

// TestSubcone restricts summands and partitions to the condition.
func TestSubcone(t *testing.T) {
	sub := lattice.Subcone(lattice.StandardCone(2), func(d lattice.Vector) bool { return d.At(1) == 0 })
	assert.False(t, sub.Contains(lattice.V(1, 1)))
	assert.True(t, sub.Contains(lattice.V(1, 0)))

	s, err := lattice.Summands(sub, lattice.V(2, 0))
	require.NoError(t, err)
	require.Len(t, s, 3)
	assert.True(t, s[1].Equal(lattice.V(1, 0)))

	diag := lattice.Subcone(lattice.StandardCone(2), func(d lattice.Vector) bool { return d.At(0) == d.At(1) })
	parts, err := lattice.Partitions(diag, lattice.V(2, 2))
	require.NoError(t, err)
	assert.Equal(t, []string{"{(2,2):1}", "{(1,1):2}"}, partitionStrings(parts))
}

// TestShift mirrors the cone for odd shifts.
func TestShift(t *testing.T) {
	c := lattice.StandardCone(2)
	assert.Equal(t, c, lattice.Shift(c, 2))

	neg := lattice.Shift(c, 1)
	assert.True(t, neg.Contains(lattice.V(-1, -2)))
	assert.False(t, neg.Contains(lattice.V(1, 2)))
	assert.Equal(t, c, lattice.Shift(neg, -1))

	parts, err := lattice.Partitions(neg, lattice.V(-1, -2))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"{(-1,-2):1}",
		"{(-1,-1):1, (0,-1):1}",
		"{(-1,0):1, (0,-2):1}",
		"{(-1,0):1, (0,-1):2}",
	}, partitionStrings(parts))
}
