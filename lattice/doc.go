// SPDX-License-Identifier: MIT

// Package lattice provides the integer-lattice machinery behind the DT
// engine: dimension vectors, phases and central charges, bilinear pairings
// and cones together with their summand and partition enumerators.
//
// What lives here:
//
//   - Vector          immutable lattice point with a lexicographic total order.
//   - Phase           branch-extended argument of a nonzero integer complex number.
//   - CentralCharge   linear map Vector → (real, imag) inducing phases.
//   - Pairing         sparse bilinear integer form (Euler, Hom, Ext pairings).
//   - Cone            sum-closed subset of the lattice with finitely many
//     summands per member, described by two primitives (Contains, Pred).
//
// Enumeration:
//
//	Every enumerator is built on the single stepping primitive
//	Cone.Pred(d, bound): the lexicographically greatest cone element e < d
//	with e ≤ bound coordinatewise. Summands descends from d to zero;
//	Partitions walks candidate summands from the largest down and recurses
//	on the remainder restricted to strictly smaller summands.
//
// Usage:
//
//	cone := lattice.StandardCone(2)
//	parts, err := lattice.Partitions(cone, lattice.V(1, 2))
//	// {(1,2):1} {(1,1):1, (0,1):1} {(1,0):1, (0,2):1} {(1,0):1, (0,1):2}
//
// Errors:
//
//	Constructors validate shapes and ranks and return ErrInvalidArgument.
//	Enumerators refuse non-members with ErrNotInCone and report runaway
//	enumeration with ErrExhausted instead of truncating.
//	Arithmetic on vectors of different rank is a programmer error and panics.
//
// Concurrency:
//
//	All values are immutable after construction and may be shared freely.
package lattice
