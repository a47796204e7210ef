// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/dtinv/lattice"
	"github.com/katalvlaran/dtinv/quiver"
	"gopkg.in/yaml.v3"
)

// Problem describes a quiver and a stability condition on it.
type Problem struct {
	// Name labels the quiver in output and logs.
	Name string `yaml:"name"`

	// Vertices is the number of vertices, and the rank of every vector.
	Vertices int `yaml:"vertices"`

	// Arrows lists arrow counts between vertices.
	Arrows []Arrow `yaml:"arrows,omitempty"`

	// Charge is the central charge; nil selects DefaultCharge.
	Charge *Charge `yaml:"charge,omitempty"`
}

// Arrow is Count arrows from Source to Target.
type Arrow struct {
	Source int `yaml:"source"`
	Target int `yaml:"target"`
	Count  int `yaml:"count"`
}

// Charge holds the integer coefficients of Z(d) = real·d + i·imag·d.
// A missing real part means zeros, a missing imaginary part means ones.
type Charge struct {
	Real []int `yaml:"real,omitempty"`
	Imag []int `yaml:"imag,omitempty"`
}

// DefaultCharge returns the trivial charge on n vertices.
func DefaultCharge(n int) Charge {
	imag := make([]int, n)
	for i := range imag {
		imag[i] = 1
	}

	return Charge{Real: make([]int, n), Imag: imag}
}

// Load reads and validates the problem file at path.
func Load(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w: %w", path, ErrInvalidConfig, err)
	}

	return Parse(data)
}

// Parse decodes and validates a problem, rejecting unknown fields.
func Parse(data []byte) (*Problem, error) {
	var p Problem
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w: %w", ErrInvalidConfig, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// Validate checks shapes and ranges.
func (p *Problem) Validate() error {
	if p.Vertices <= 0 {
		return fmt.Errorf("vertices = %d must be positive: %w", p.Vertices, ErrInvalidConfig)
	}
	seen := make(map[[2]int]bool, len(p.Arrows))
	for i, a := range p.Arrows {
		if a.Source < 0 || a.Source >= p.Vertices || a.Target < 0 || a.Target >= p.Vertices {
			return fmt.Errorf("arrows[%d]: %d → %d outside [0,%d): %w", i, a.Source, a.Target, p.Vertices, ErrInvalidConfig)
		}
		if a.Count < 0 {
			return fmt.Errorf("arrows[%d]: negative count %d: %w", i, a.Count, ErrInvalidConfig)
		}
		st := [2]int{a.Source, a.Target}
		if seen[st] {
			return fmt.Errorf("arrows[%d]: duplicate %d → %d: %w", i, a.Source, a.Target, ErrInvalidConfig)
		}
		seen[st] = true
	}
	if p.Charge != nil {
		if p.Charge.Real == nil && p.Charge.Imag == nil {
			return fmt.Errorf("charge: real or imag required: %w", ErrInvalidConfig)
		}
		if p.Charge.Real != nil && len(p.Charge.Real) != p.Vertices {
			return fmt.Errorf("charge.real has %d entries, want %d: %w", len(p.Charge.Real), p.Vertices, ErrInvalidConfig)
		}
		if p.Charge.Imag != nil && len(p.Charge.Imag) != p.Vertices {
			return fmt.Errorf("charge.imag has %d entries, want %d: %w", len(p.Charge.Imag), p.Vertices, ErrInvalidConfig)
		}
	}

	return nil
}

// Build constructs the quiver and the central charge.
func (p *Problem) Build() (*quiver.Quiver, *lattice.CentralCharge, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}
	arrows := make(map[[2]int]int, len(p.Arrows))
	for _, a := range p.Arrows {
		arrows[[2]int{a.Source, a.Target}] = a.Count
	}
	var opts []quiver.Option
	if p.Name != "" {
		opts = append(opts, quiver.WithName(p.Name))
	}
	q, err := quiver.New(p.Vertices, arrows, opts...)
	if err != nil {
		return nil, nil, err
	}
	c := DefaultCharge(p.Vertices)
	if p.Charge != nil {
		c = *p.Charge
	}
	z, err := lattice.NewCentralCharge(c.Real, c.Imag)
	if err != nil {
		return nil, nil, err
	}

	return q, z, nil
}

// Marshal renders the problem as YAML.
func (p *Problem) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}
