// SPDX-License-Identifier: MIT

// Package dtinv computes motivic Donaldson–Thomas invariants of abelian
// categories with a stability condition, with quiver representations as the
// worked family.
//
// The computation is split into small layers, each usable on its own:
//
//	lattice/     vectors, phases, central charges, pairings, cones and the
//	             summand / partition enumerators built on a cone's Pred
//	motive/      exact rational functions in R = L^{1/2} with Adams operations
//	series/      lazily evaluated, cached power series over a cone, plethystic
//	             Exp and Log, and series sliced by phase
//	category/    abelian categories, slicings and DT invariants
//	stability/   stability conditions, Harder–Narasimhan types and motives of
//	             semistable objects
//	quiver/      quivers, their Euler form and the motive of representations
//	config/      YAML problem files
//
// The dtinv command (cmd/dtinv) evaluates these from a problem file:
//
//	dtinv dt --config kronecker.yaml 1,1 2,2
//
// Every value is exact; there is no floating point arithmetic on motives.
package dtinv
