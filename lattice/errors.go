// SPDX-License-Identifier: MIT
// Package lattice: sentinel error set.
// All constructors and enumerators return these sentinels (possibly wrapped
// with fmt.Errorf("...: %w", ErrX)); callers match them via errors.Is.

package lattice

import "errors"

var (
	// ErrInvalidArgument is returned for malformed constructor input:
	// non-positive rank, indices out of range, unparsable coordinates.
	ErrInvalidArgument = errors.New("lattice: invalid argument")

	// ErrRankMismatch indicates that two lattice objects of different rank
	// were combined.
	ErrRankMismatch = errors.New("lattice: rank mismatch")

	// ErrInvalidPhase signals a (real, imag, branch) triple that does not
	// describe a phase on the given branch.
	ErrInvalidPhase = errors.New("lattice: invalid phase")

	// ErrZeroCharge is returned when the central charge of a vector vanishes,
	// so that no phase is defined.
	ErrZeroCharge = errors.New("lattice: central charge is zero")

	// ErrNotInCone signals that an enumerator was called on a vector outside
	// the cone.
	ErrNotInCone = errors.New("lattice: vector is not in the cone")

	// ErrExhausted is returned when an enumeration exceeds MaxSteps
	// iterations on a single recursion level.
	ErrExhausted = errors.New("lattice: enumeration step limit exceeded")
)
