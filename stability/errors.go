// SPDX-License-Identifier: MIT
// Package stability: sentinel error set.

package stability

import "errors"

var (
	// ErrInvalidArgument is returned for nil inputs.
	ErrInvalidArgument = errors.New("stability: invalid argument")

	// ErrRankMismatch indicates a central charge and a category of
	// different rank.
	ErrRankMismatch = errors.New("stability: rank mismatch")
)
