// SPDX-License-Identifier: MIT

package config_test

import (
	"path/filepath"
	"testing"

	"github.com/katalvlaran/dtinv/config"
	"github.com/katalvlaran/dtinv/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Kronecker reads a complete problem file.
func TestLoad_Kronecker(t *testing.T) {
	p, err := config.Load(filepath.Join("testdata", "kronecker.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "kronecker", p.Name)
	assert.Equal(t, 2, p.Vertices)
	assert.Equal(t, []config.Arrow{{Source: 0, Target: 1, Count: 2}}, p.Arrows)
	require.NotNil(t, p.Charge)
	assert.Equal(t, []int{-1, 0}, p.Charge.Real)

	q, z, err := p.Build()
	require.NoError(t, err)
	assert.Equal(t, "kronecker", q.Name())
	assert.Equal(t, -2, q.EulerPairing().Eval(lattice.V(1, 0), lattice.V(0, 1)))
	re, im := z.Eval(lattice.V(1, 1))
	assert.Equal(t, -1, re)
	assert.Equal(t, 2, im)
}

// TestLoad_DefaultCharge selects the trivial charge when none is given.
func TestLoad_DefaultCharge(t *testing.T) {
	p, err := config.Load(filepath.Join("testdata", "jordan.yaml"))
	require.NoError(t, err)
	assert.Nil(t, p.Charge)

	_, z, err := p.Build()
	require.NoError(t, err)
	re, im := z.Eval(lattice.V(3))
	assert.Equal(t, 0, re)
	assert.Equal(t, 3, im)
	assert.Equal(t, config.Charge{Real: []int{0}, Imag: []int{1}}, config.DefaultCharge(1))
}

// TestParse_Invalid covers every validation failure.
func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty":          ``,
		"no vertices":    `name: x`,
		"bad endpoint":   "vertices: 2\narrows: [{source: 0, target: 2, count: 1}]",
		"negative count": "vertices: 2\narrows: [{source: 0, target: 1, count: -1}]",
		"duplicate":      "vertices: 2\narrows: [{source: 0, target: 1, count: 1}, {source: 0, target: 1, count: 2}]",
		"empty charge":   "vertices: 2\ncharge: {}",
		"short real":     "vertices: 2\ncharge: {real: [1]}",
		"short imag":     "vertices: 2\ncharge: {imag: [1, 1, 1]}",
		"not yaml":       "vertices: [",
		"unknown field":  "vertices: 1\nloops: 2",
	}
	for name, src := range cases {
		_, err := config.Parse([]byte(src))
		assert.ErrorIs(t, err, config.ErrInvalidConfig, name)
	}

	_, err := config.Load(filepath.Join("testdata", "typo.yaml"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	_, err = config.Load(filepath.Join("testdata", "missing.yaml"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

// TestProblem_Marshal round-trips through YAML.
func TestProblem_Marshal(t *testing.T) {
	p := &config.Problem{
		Name:     "a2",
		Vertices: 2,
		Arrows:   []config.Arrow{{Source: 0, Target: 1, Count: 1}},
	}
	data, err := p.Marshal()
	require.NoError(t, err)
	back, err := config.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, p, back)
}
