// SPDX-License-Identifier: MIT
// Package: hypercubes/builder
//
// options.go - functional options.
//
// Option constructors validate their arguments and panic on meaningless
// values (nil cache, nil logger, parallelism < 1). Build itself never panics.

package builder

import "log/slog"

// Option customizes a Build or BuildAll call.
type Option func(*builderConfig)

// WithCache shares c across calls, so that subtrees already built for an
// earlier chain are reused. Panics on nil.
func WithCache(c *Cache) Option {
	if c == nil {
		panic("builder: WithCache(nil)")
	}
	return func(cfg *builderConfig) {
		cfg.cache = c
	}
}

// WithLogger routes debug records (cache misses, build summaries) to l.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(cfg *builderConfig) {
		cfg.logger = l
	}
}

// WithMaxParallel bounds the number of layouts BuildAll compiles at once.
// Panics on n < 1.
func WithMaxParallel(n int) Option {
	if n < 1 {
		panic("builder: WithMaxParallel(n < 1)")
	}
	return func(cfg *builderConfig) {
		cfg.maxParallel = n
	}
}
