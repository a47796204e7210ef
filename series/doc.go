// SPDX-License-Identifier: MIT

// Package series implements memoized generating series of motives indexed
// by dimension vectors, their phase-sliced variant and the plethystic
// exponential and logarithm.
//
// Types:
//
//   - Graded: dimension vector → Motive, computed once per vector.
//   - Series: a Graded restricted to a lattice.Cone; zero outside.
//   - Sliced: queried by vector (→ Motive) or by phase (→ *Series); each
//     representation is derived lazily from the other.
//
// Transforms:
//
//	Exp(x)(d) = Σ_{partitions {e_i: m_i} of d} Π ψ(e_i)^{m_i} / m_i!
//	ψ(d)      = Σ_{k | gcd(d)} x(d/k)|_{R ↦ -(-R)^k} / k
//
//	Log is the two-sided inverse of Exp and recurses only on strictly
//	smaller cone elements, so every value it needs is cached before use.
//
// Caching:
//
//	Every cache is append-only for the lifetime of its owner; there is no
//	invalidation API. Values are computed by pure functions, so the caches
//	never go stale.
//
// Concurrency:
//
//	Not safe for concurrent use. The engine is single-threaded by design.
package series
