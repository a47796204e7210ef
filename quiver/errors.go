// SPDX-License-Identifier: MIT
// Package quiver: sentinel error set.

package quiver

import "errors"

// ErrInvalidQuiver is returned for a non-positive vertex count, arrows
// with endpoints outside the vertex range, or negative arrow counts.
var ErrInvalidQuiver = errors.New("quiver: invalid quiver")
