// SPDX-License-Identifier: MIT

// Package config merges defaults, an optional config file, LVLASM_*
// environment variables and command-line flags into one Config.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/lvlasm/assembly"
	"github.com/katalvlaran/lvlasm/dbg"
	"github.com/katalvlaran/lvlasm/kmer"
	"github.com/katalvlaran/lvlasm/reads"
	"github.com/katalvlaran/lvlasm/simulate"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid setting")

// EnvPrefix prefixes every environment variable, e.g. LVLASM_MIN_SUPPORT.
const EnvPrefix = "LVLASM"

// Keys shared by flags, files and the environment.
const (
	KeyK           = "k"
	KeyMinQuality  = "min-quality"
	KeyMinSupport  = "min-support"
	KeyCapacity    = "capacity"
	KeyPhredOffset = "phred-offset"
	KeyOut         = "out"
	KeyDOT         = "dot"
	KeyPaths       = "paths"
	KeyMetrics     = "metrics"
	KeyProgress    = "progress"
	KeyVerbose     = "verbose"

	KeyGenomeLength = "simulate.genome-length"
	KeyReadLength   = "simulate.read-length"
	KeyStep         = "simulate.step"
	KeyErrorRate    = "simulate.error-rate"
	KeyDropoutRate  = "simulate.dropout-rate"
	KeySeed         = "simulate.seed"
	KeyBothStrands  = "simulate.both-strands"
	KeyGenomeOut    = "simulate.genome-out"
)

// Config holds the settings of one run.
type Config struct {
	// graph construction
	K           int `mapstructure:"k"`
	MinQuality  int `mapstructure:"min-quality"`
	Capacity    int `mapstructure:"capacity"`
	PhredOffset int `mapstructure:"phred-offset"`

	// assembly
	MinSupport int `mapstructure:"min-support"`

	// outputs; "-" is stdout, empty disables
	Out     string `mapstructure:"out"`
	DOT     string `mapstructure:"dot"`
	Paths   string `mapstructure:"paths"`
	Metrics string `mapstructure:"metrics"`

	Progress bool `mapstructure:"progress"`
	Verbose  bool `mapstructure:"verbose"`

	// Inputs are the read files, taken from positional arguments.
	Inputs []string `mapstructure:"-"`

	Simulate Simulate `mapstructure:"simulate"`
}

// Simulate holds the settings of the simulate command.
type Simulate struct {
	GenomeLength int     `mapstructure:"genome-length"`
	ReadLength   int     `mapstructure:"read-length"`
	Step         int     `mapstructure:"step"`
	ErrorRate    float64 `mapstructure:"error-rate"`
	DropoutRate  float64 `mapstructure:"dropout-rate"`
	Seed         int64   `mapstructure:"seed"`
	BothStrands  bool    `mapstructure:"both-strands"`
	GenomeOut    string  `mapstructure:"genome-out"`
}

// New returns a viper instance with defaults registered and the
// environment bound.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyK, kmer.DefaultK)
	v.SetDefault(KeyMinQuality, kmer.DefaultMinQuality)
	v.SetDefault(KeyMinSupport, assembly.DefaultMinSupport)
	v.SetDefault(KeyCapacity, dbg.DefaultCapacity)
	v.SetDefault(KeyPhredOffset, reads.DefaultPhredOffset)
	v.SetDefault(KeyOut, "-")
	v.SetDefault(KeyDOT, "")
	v.SetDefault(KeyPaths, "")
	v.SetDefault(KeyMetrics, "")
	v.SetDefault(KeyProgress, false)
	v.SetDefault(KeyVerbose, false)

	v.SetDefault(KeyGenomeLength, 10_000)
	v.SetDefault(KeyReadLength, 150)
	v.SetDefault(KeyStep, 10)
	v.SetDefault(KeyErrorRate, 0.0)
	v.SetDefault(KeyDropoutRate, 0.0)
	v.SetDefault(KeySeed, simulate.DefaultSeed)
	v.SetDefault(KeyBothStrands, true)
	v.SetDefault(KeyGenomeOut, "")
	return v
}

// Load reads file (when non-empty) into v and decodes the merged settings.
// The result is not validated; callers pick Validate or ValidateSimulate.
func Load(v *viper.Viper, file string) (Config, error) {
	var c Config
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return c, fmt.Errorf("config: read %s: %w", file, err)
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("config: decode: %w", err)
	}
	return c, nil
}

// Validate checks the assemble settings.
func (c Config) Validate() error {
	switch {
	case c.K < 1 || c.K > kmer.MaxK || c.K%2 == 0:
		return fmt.Errorf("%w: k=%d must be odd and in [1,%d]", ErrInvalid, c.K, kmer.MaxK)
	case c.MinQuality < 0 || c.MinQuality > 255:
		return fmt.Errorf("%w: min-quality=%d", ErrInvalid, c.MinQuality)
	case c.MinSupport < 1:
		return fmt.Errorf("%w: min-support=%d", ErrInvalid, c.MinSupport)
	case c.Capacity < 0:
		return fmt.Errorf("%w: capacity=%d", ErrInvalid, c.Capacity)
	case c.PhredOffset < 0 || c.PhredOffset > '~':
		return fmt.Errorf("%w: phred-offset=%d", ErrInvalid, c.PhredOffset)
	case len(c.Inputs) == 0:
		return fmt.Errorf("%w: no input files", ErrInvalid)
	}
	return nil
}

// ValidateSimulate checks the simulate settings.
func (c Config) ValidateSimulate() error {
	s := c.Simulate
	switch {
	case s.GenomeLength < 1:
		return fmt.Errorf("%w: genome-length=%d", ErrInvalid, s.GenomeLength)
	case s.ReadLength < 1 || s.ReadLength > s.GenomeLength:
		return fmt.Errorf("%w: read-length=%d for genome-length=%d", ErrInvalid, s.ReadLength, s.GenomeLength)
	case s.Step < 1:
		return fmt.Errorf("%w: step=%d", ErrInvalid, s.Step)
	case s.ErrorRate < 0 || s.ErrorRate > 1:
		return fmt.Errorf("%w: error-rate=%g", ErrInvalid, s.ErrorRate)
	case s.DropoutRate < 0 || s.DropoutRate > 1:
		return fmt.Errorf("%w: dropout-rate=%g", ErrInvalid, s.DropoutRate)
	}
	return nil
}
