// Package builder — functional options.
//
// Contract (strict):
//   - Options are functional (type Option func(*config)).
//   - Option constructors validate and panic on meaningless inputs;
//     factories themselves never panic.
//   - Seeding is explicit via WithSeed or WithRand; no hidden globals.
package builder

import "math/rand"

// Option customizes a factory by mutating its resolved config before
// construction begins. Applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config aggregates all knobs used by factories. It is resolved once per
// call and passed by value (immutable to callers).
type config struct {
	// rng drives stochastic factories; nil means "no randomness allowed".
	rng *rand.Rand
}

// newConfig builds a config with deterministic defaults (no RNG) and
// applies all options in order; later options override earlier ones.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand attaches an explicit RNG for stochastic factories.
// Panics on nil to surface programmer error early; prefer WithSeed for
// reproducible runs. Complexity: O(1).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("builder: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithSeed attaches a fresh RNG seeded deterministically; the standard
// choice for tests and examples. Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}
