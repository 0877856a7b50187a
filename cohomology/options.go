// SPDX-License-Identifier: MIT

package cohomology

import "github.com/katalvlaran/pershom/unionfind"

// defaultConfig returns the documented defaults: Z/11Z, essential pairs on,
// larger key dies on ties, no logging.
func defaultConfig() config {
	return config{
		characteristic: DefaultCharacteristic,
		essentials:     true,
		tie:            unionfind.TieBreakLargerKey,
		logger:         NoopLogger(),
	}
}

// WithCharacteristic selects the coefficient field Z/pZ. New fails when p is
// not a prime.
func WithCharacteristic(p uint32) Option {
	return func(c *config) { c.characteristic = p }
}

// WithEssentials controls whether classes that never die are reported with
// death +Inf.
func WithEssentials(on bool) Option {
	return func(c *config) { c.essentials = on }
}

// WithTieBreak selects which of two equally old classes dies first.
func WithTieBreak(t unionfind.TieBreak) Option {
	return func(c *config) { c.tie = t }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *Logger) Option {
	if l == nil {
		panic("cohomology: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}
