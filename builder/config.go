// SPDX-License-Identifier: MIT
// Package: pershom/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng     = nil                      (pure/deterministic unless seeded)
//   • valueFn = DimensionRatioValueFn    (k/(k+1) for a k-simplex)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Filtration value of an inserted simplex.
	valueFn ValueFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:     nil,
		valueFn: DimensionRatioValueFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// value evaluates the configured ValueFn for a sorted vertex list.
func (c builderConfig) value(vertices []int) float64 {
	return c.valueFn(vertices, c.rng)
}
