// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math"
)

// Phase is the normalized argument φ of a nonzero complex number
// z = real + i·imag, extended over branches: z = |z|·exp(iπφ) with
// φ ∈ (branch, branch+1].
//
// Validity:
//   - even branch: imag > 0, or imag == 0 and real < 0;
//   - odd branch:  imag < 0, or imag == 0 and real > 0.
//
// Equality and order depend only on the branch and the slope, never on the
// particular representative (real, imag).
type Phase struct {
	real, imag, branch int
}

// PhaseKey is a comparable canonical form of a Phase, suitable as a map key.
type PhaseKey struct {
	Real, Imag, Branch int
}

// NewPhase validates and builds a phase.
func NewPhase(real, imag, branch int) (Phase, error) {
	if !validPhase(real, imag, branch) {
		return Phase{}, fmt.Errorf("phase (%d,%d) on branch %d: %w", real, imag, branch, ErrInvalidPhase)
	}

	return Phase{real: real, imag: imag, branch: branch}, nil
}

// phaseOf returns the phase of z on branch 0 or 1.
// Callers guarantee z ≠ 0.
func phaseOf(real, imag int) Phase {
	if imag > 0 || (imag == 0 && real < 0) {
		return Phase{real: real, imag: imag, branch: 0}
	}

	return Phase{real: real, imag: imag, branch: 1}
}

func validPhase(real, imag, branch int) bool {
	if branch%2 != 0 {
		return imag < 0 || (imag == 0 && real > 0)
	}

	return imag > 0 || (imag == 0 && real < 0)
}

// Real returns the real part of the representative.
func (p Phase) Real() int { return p.real }

// Imag returns the imaginary part of the representative.
func (p Phase) Imag() int { return p.imag }

// Branch returns the branch number.
func (p Phase) Branch() int { return p.branch }

// Slope returns -real/imag, or +Inf on the real axis.
func (p Phase) Slope() float64 {
	if p.imag == 0 {
		return math.Inf(1)
	}

	return -float64(p.real) / float64(p.imag)
}

// IsInUpperHalfPlane reports φ ∈ (0, 1].
func (p Phase) IsInUpperHalfPlane() bool { return p.branch == 0 }

// Float returns φ as a floating point number.
func (p Phase) Float() float64 {
	re, im := p.real, p.imag
	if p.branch%2 != 0 {
		re, im = -re, -im
	}

	return float64(p.branch) + math.Atan2(float64(im), float64(re))/math.Pi
}

// Integer returns the branch, or branch+1 when the phase lies on the real axis.
func (p Phase) Integer() int {
	if p.imag != 0 {
		return p.branch
	}

	return p.branch + 1
}

// Equal reports equal branch and slope.
func (p Phase) Equal(q Phase) bool {
	return p.branch == q.branch && p.real*q.imag == q.real*p.imag
}

// Compare orders phases: branch first, then slope.
func (p Phase) Compare(q Phase) int {
	switch {
	case p.branch < q.branch:
		return -1
	case p.branch > q.branch:
		return 1
	}

	return compareSlopes(p, q)
}

// Less reports p < q.
func (p Phase) Less(q Phase) bool { return p.Compare(q) < 0 }

// compareSlopes compares -real/imag exactly; imag == 0 is +Inf.
func compareSlopes(p, q Phase) int {
	pn, pd := slopeFraction(p)
	qn, qd := slopeFraction(q)
	switch {
	case pd == 0 && qd == 0:
		return 0
	case pd == 0:
		return 1
	case qd == 0:
		return -1
	}
	l, r := pn*qd, qn*pd
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	}

	return 0
}

// slopeFraction returns (num, den) with den ≥ 0 and slope = num/den.
func slopeFraction(p Phase) (int, int) {
	if p.imag < 0 {
		return p.real, -p.imag
	}

	return -p.real, p.imag
}

// Shift moves the phase by n: φ ↦ φ + n.
func (p Phase) Shift(n int) Phase {
	if n%2 == 0 {
		return Phase{real: p.real, imag: p.imag, branch: p.branch + n}
	}

	return Phase{real: -p.real, imag: -p.imag, branch: p.branch + n}
}

// Add returns the phase φ(p) + φ(q), represented by the product of the
// representatives.
func (p Phase) Add(q Phase) Phase {
	re := p.real*q.real - p.imag*q.imag
	im := p.real*q.imag + p.imag*q.real
	g := gcd(abs(re), abs(im))
	re, im = re/g, im/g
	b := p.branch + q.branch
	if phaseOf(re, im).branch != mod2(b) {
		b++
	}

	return Phase{real: re, imag: im, branch: b}
}

// Neg returns the phase -φ, represented by the complex conjugate.
func (p Phase) Neg() Phase {
	if p.imag == 0 {
		return Phase{real: p.real, imag: 0, branch: -p.branch - 2}
	}

	return Phase{real: p.real, imag: -p.imag, branch: -p.branch - 1}
}

// Sub returns φ(p) - φ(q).
func (p Phase) Sub(q Phase) Phase { return p.Add(q.Neg()) }

// Covers reports whether real + i·imag has phase p modulo 2.
// The zero number is covered by every phase.
func (p Phase) Covers(real, imag int) bool {
	if real == 0 && imag == 0 {
		return true
	}

	return p.real*imag == real*p.imag
}

// Key returns the canonical comparable key of the phase.
func (p Phase) Key() PhaseKey {
	g := gcd(abs(p.real), abs(p.imag))
	if g == 0 {
		return PhaseKey{Branch: p.branch}
	}

	return PhaseKey{Real: p.real / g, Imag: p.imag / g, Branch: p.branch}
}

// String renders the phase as "φ(real,imag;branch)".
func (p Phase) String() string {
	return fmt.Sprintf("φ(%d,%d;%d)", p.real, p.imag, p.branch)
}

func mod2(n int) int {
	if n%2 == 0 {
		return 0
	}

	return 1
}
