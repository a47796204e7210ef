// SPDX-License-Identifier: MIT

// Package stability computes Harder–Narasimhan types and the motive of
// semistable objects induced by a central charge on an abelian category.
//
// Harder–Narasimhan types:
//
//	An HN type of d is a set of pieces d = Σ e_i of pairwise distinct
//	phase together with the exponent
//
//	    -Σ_{i<j} χ(lower-phase piece, higher-phase piece),
//
//	the dimension of the stack of iterated extensions of semistables of
//	those dimensions. The singleton {d} is the trivial type.
//
// Semistables:
//
//	ss(d) = objects(d) - Σ_{non-trivial HN types} L^{exponent}·Π ss(e_i)
//
//	Every piece of a non-trivial type is strictly smaller than d, so the
//	recursion terminates. Values are cached in a series.Sliced whose phase
//	slices are the subcones of vectors of one phase.
//
// Errors:
//
//	Enumeration past lattice.MaxSteps yields lattice.ErrExhausted; vectors
//	with vanishing central charge yield lattice.ErrZeroCharge.
//
// Not safe for concurrent use.
package stability
