// SPDX-License-Identifier: MIT
// Package config: sentinel error set.

package config

import "errors"

// ErrInvalidConfig is returned for problem files that cannot be read,
// parsed or validated.
var ErrInvalidConfig = errors.New("config: invalid problem")
