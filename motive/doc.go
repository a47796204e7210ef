// SPDX-License-Identifier: MIT

// Package motive implements the commutative ring the DT engine computes in:
// rational functions in the symbol R = L^{1/2} with exact rational
// coefficients, where L is the motive of the affine line.
//
// Representation:
//
//	A Motive is kept in a canonical reduced form
//
//	    R^shift · N(R) / D(R)
//
//	with N and D coprime, N(0) ≠ 0, D(0) ≠ 0 and D monic. Canonical form
//	makes equality structural, so cached values can be compared directly.
//	The zero value of Motive is the ring zero.
//
// Operations:
//
//   - ring arithmetic: Add, Sub, Neg, Mul, Div, Inv, Pow;
//   - half-integer powers of L through PowHalf / MulRPow;
//   - the Adams operation Adams(k): R ↦ -(-R)^k;
//   - canonicalization hooks Factor, Expand and Normalize, all idempotent.
//
// Division by the zero motive panics, mirroring math/big.
package motive
