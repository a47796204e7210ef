// SPDX-License-Identifier: MIT

// Package config loads problem files: a quiver together with an optional
// central charge, written in YAML.
//
//	name: kronecker
//	vertices: 2
//	arrows:
//	  - {source: 0, target: 1, count: 2}
//	charge:
//	  real: [-1, 0]
//	  imag: [1, 1]
//
// Unknown fields are rejected. A missing charge selects the trivial one,
// real part zero and imaginary part one on every vertex.
package config
