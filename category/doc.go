// SPDX-License-Identifier: MIT

// Package category glues graded motives and pairings into the objects the
// invariants are computed from.
//
// Types:
//
//   - AbelianCategory: a motive-of-objects series together with an Euler
//     pairing χ. Its normalized series multiplies each coefficient by
//     R^{χ(d,d)} to remove the virtual-dimension shift.
//   - Slicing: a sliced motive of objects; At(phi) is the abelian category
//     of objects of phase phi.
//   - DTInvariants: the plethystic logarithm of the normalized slices,
//     scaled by (L-1)/R.
//
// All derived objects are built lazily on first use and cached for the
// lifetime of their owner. None of the types is safe for concurrent use.
package category
