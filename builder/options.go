// Functional options for the builder package.
//
// Contract: options are functional (BuilderOption func(*builderConfig));
// option constructors validate eagerly and panic on meaningless inputs,
// while constructors themselves never panic and return sentinel errors.
package builder

import "math/rand"

// DefaultSeed seeds the RNG when neither WithSeed nor WithRand is given,
// keeping unconfigured builds reproducible.
const DefaultSeed int64 = 42

// BuilderOption customizes construction by mutating the builderConfig
// before any Constructor runs.
type BuilderOption func(*builderConfig)

// builderConfig is the immutable, resolved configuration every
// Constructor receives.
type builderConfig struct {
	rng *rand.Rand
}

// newBuilderConfig resolves opts over defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{rng: rand.New(rand.NewSource(DefaultSeed))}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed creates a fresh deterministic RNG from seed.
// Use in tests and benchmarks to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}
