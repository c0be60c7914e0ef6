// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, 31, c.K)
	assert.Equal(t, 24, c.MinQuality)
	assert.Equal(t, 2, c.MinSupport)
	assert.Equal(t, 33, c.PhredOffset)
	assert.Equal(t, "-", c.Out)
	assert.Empty(t, c.DOT)
	assert.Equal(t, 150, c.Simulate.ReadLength)
	assert.True(t, c.Simulate.BothStrands)

	assert.ErrorIs(t, c.Validate(), ErrInvalid, "no inputs")
	c.Inputs = []string{"reads.fq"}
	assert.NoError(t, c.Validate())
	assert.NoError(t, c.ValidateSimulate())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("LVLASM_MIN_SUPPORT", "5")
	t.Setenv("LVLASM_K", "25")
	t.Setenv("LVLASM_SIMULATE_ERROR_RATE", "0.01")

	c, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, 5, c.MinSupport)
	assert.Equal(t, 25, c.K)
	assert.InDelta(t, 0.01, c.Simulate.ErrorRate, 1e-12)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvlasm.yaml")
	body := "k: 21\nmin-quality: 10\ndot: graph.dot\nsimulate:\n  step: 3\n  seed: 77\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	c, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, 21, c.K)
	assert.Equal(t, 10, c.MinQuality)
	assert.Equal(t, "graph.dot", c.DOT)
	assert.Equal(t, 3, c.Simulate.Step)
	assert.Equal(t, int64(77), c.Simulate.Seed)
	assert.Equal(t, 150, c.Simulate.ReadLength, "defaults survive a partial file")

	_, err = Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base, err := Load(New(), "")
	require.NoError(t, err)
	base.Inputs = []string{"a.fq"}

	bad := []func(*Config){
		func(c *Config) { c.K = 32 },
		func(c *Config) { c.K = 0 },
		func(c *Config) { c.MinQuality = 300 },
		func(c *Config) { c.MinSupport = 0 },
		func(c *Config) { c.Capacity = -1 },
		func(c *Config) { c.PhredOffset = 200 },
	}
	for i, mutate := range bad {
		c := base
		mutate(&c)
		assert.ErrorIs(t, c.Validate(), ErrInvalid, "case %d", i)
	}

	badSim := []func(*Simulate){
		func(s *Simulate) { s.GenomeLength = 0 },
		func(s *Simulate) { s.ReadLength = s.GenomeLength + 1 },
		func(s *Simulate) { s.Step = 0 },
		func(s *Simulate) { s.ErrorRate = 2 },
		func(s *Simulate) { s.DropoutRate = -1 },
	}
	for i, mutate := range badSim {
		c := base
		mutate(&c.Simulate)
		assert.ErrorIs(t, c.ValidateSimulate(), ErrInvalid, "case %d", i)
	}
}
