// SPDX-License-Identifier: MIT
// Package series: sentinel error set.

package series

import "errors"

var (
	// ErrInvalidArgument is returned for missing coefficient functions,
	// cones or resolvers, and for non-positive ranks.
	ErrInvalidArgument = errors.New("series: invalid argument")

	// ErrRankMismatch indicates a query with a vector of the wrong rank, or
	// an operation combining series of different rank.
	ErrRankMismatch = errors.New("series: rank mismatch")

	// ErrExpConstant is returned by Exp when the argument does not vanish at
	// the zero vector.
	ErrExpConstant = errors.New("series: Exp argument must vanish at zero")

	// ErrLogConstant is returned by Log when the argument is not 1 at the
	// zero vector.
	ErrLogConstant = errors.New("series: Log argument must be 1 at zero")
)
