// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/dtinv/config"
	"github.com/katalvlaran/dtinv/lattice"
	"github.com/katalvlaran/dtinv/stability"
)

// parseVectors parses dimension vector arguments of the given rank; rank 0
// accepts any rank shared by all arguments.
func parseVectors(args []string, rank int) ([]lattice.Vector, error) {
	out := make([]lattice.Vector, 0, len(args))
	for _, a := range args {
		d, err := lattice.ParseVector(a)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "invalid dimension vector", err)
		}
		if rank == 0 {
			rank = d.Rank()
		}
		if d.Rank() != rank {
			return nil, NewExitError(ExitCommandError,
				fmt.Sprintf("dimension vector %v has rank %d, want %d", d, d.Rank(), rank))
		}
		out = append(out, d)
	}

	return out, nil
}

// loadCondition reads a problem file and builds its stability condition.
func loadCondition(path string) (*stability.Condition, error) {
	if path == "" {
		return nil, NewExitError(ExitCommandError, "--config is required")
	}
	p, err := config.Load(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load problem", err)
	}
	q, z, err := p.Build()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to build problem", err)
	}
	slog.Debug("problem loaded", "name", q.Name(), "vertices", q.Vertices(), "arrows", len(q.Arrows()))
	c, err := q.Stability(z)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to build stability condition", err)
	}

	return c, nil
}

// computeError maps library errors to exit codes.
func computeError(message string, err error) error {
	switch {
	case errors.Is(err, lattice.ErrNotInCone), errors.Is(err, lattice.ErrRankMismatch):
		return WrapExitError(ExitCommandError, message, err)
	default:
		return WrapExitError(ExitFailure, message, err)
	}
}
