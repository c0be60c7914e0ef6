// SPDX-License-Identifier: MIT

package simulate

import "math/rand"

// Option customizes a generator call.
type Option func(*config)

type config struct {
	rng         *rand.Rand
	quality     byte
	lowQuality  byte
	errorRate   float64
	dropoutRate float64
	bothStrands bool
	namePrefix  string
}

// Deterministic defaults.
const (
	DefaultSeed       = int64(1)
	DefaultQuality    = byte(40) // phred of an accepted base
	DefaultLowQuality = byte(2)  // phred of a dropout base
	defaultNamePrefix = "sim"
)

func newConfig(opts ...Option) config {
	cfg := config{
		quality:    DefaultQuality,
		lowQuality: DefaultLowQuality,
		namePrefix: defaultNamePrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}
	return cfg
}

// WithSeed uses a fresh RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand shares r across calls. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("simulate: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithQuality sets the phred value of every unaffected base.
func WithQuality(q byte) Option {
	return func(c *config) { c.quality = q }
}

// WithErrorRate substitutes each base with probability p in [0,1].
// Substituted bases keep the normal quality. Panics outside [0,1].
func WithErrorRate(p float64) Option {
	if p < 0 || p > 1 {
		panic("simulate: WithErrorRate(p outside [0,1])")
	}
	return func(c *config) { c.errorRate = p }
}

// WithDropoutRate gives each base the low quality q with probability p.
// Panics when p is outside [0,1].
func WithDropoutRate(p float64, q byte) Option {
	if p < 0 || p > 1 {
		panic("simulate: WithDropoutRate(p outside [0,1])")
	}
	return func(c *config) {
		c.dropoutRate = p
		c.lowQuality = q
	}
}

// WithBothStrands emits every second read as a reverse complement.
func WithBothStrands() Option {
	return func(c *config) { c.bothStrands = true }
}

// WithNamePrefix sets the read name prefix; names are prefix + index
// (from 1). An empty prefix keeps the default.
func WithNamePrefix(p string) Option {
	return func(c *config) {
		if p != "" {
			c.namePrefix = p
		}
	}
}
