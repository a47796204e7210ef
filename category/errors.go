// SPDX-License-Identifier: MIT
// Package category: sentinel error set.

package category

import "errors"

var (
	// ErrInvalidArgument is returned for nil inputs.
	ErrInvalidArgument = errors.New("category: invalid argument")

	// ErrRankMismatch indicates inputs of different rank.
	ErrRankMismatch = errors.New("category: rank mismatch")
)
