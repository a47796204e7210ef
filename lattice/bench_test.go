// SPDX-License-Identifier: MIT

package lattice_test

import (
	"testing"

	"github.com/katalvlaran/dtinv/lattice"
)

// BenchmarkPartitions_Rank2 enumerates the partitions of (3,3).
func BenchmarkPartitions_Rank2(b *testing.B) {
	c := lattice.StandardCone(2)
	d := lattice.V(3, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lattice.Partitions(c, d); err != nil {
			b.Fatalf("Partitions failed: %v", err)
		}
	}
}

// BenchmarkSummands_Rank3 descends through a 5×5×5 box.
func BenchmarkSummands_Rank3(b *testing.B) {
	c := lattice.StandardCone(3)
	d := lattice.V(4, 4, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lattice.Summands(c, d); err != nil {
			b.Fatalf("Summands failed: %v", err)
		}
	}
}
