// SPDX-License-Identifier: MIT

// Package quiver builds the category of representations of a finite quiver
// as input for the stability and invariant computations.
//
// For a quiver with n vertices and a_ij arrows i → j:
//
//	hom(d, e) = Σ_i d_i·e_i
//	ext(d, e) = Σ_{i,j} a_ij·d_i·e_j
//	χ(d, e)   = hom(d, e) - ext(d, e)
//
// The stack of representations of dimension vector d is the quotient of
// the affine space of dimension ext(d,d) by Π GL(d_i), so its motive is
// L^{ext(d,d)} / Π GL(d_i).
package quiver
