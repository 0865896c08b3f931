// SPDX-License-Identifier: MIT
// Package: hypercubes/builder
//
// config.go - resolved options and defaults.
//
// Defaults:
//   • cache       = nil (a fresh Cache per Build / BuildAll call)
//   • logger      = discards everything
//   • maxParallel = 0   (no limit in BuildAll)

package builder

import "log/slog"

// builderConfig aggregates every knob; passed by value after resolution.
type builderConfig struct {
	cache       *Cache
	logger      *slog.Logger
	maxParallel int
}

// newBuilderConfig applies opts in order over the defaults.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.cache == nil {
		cfg.cache = NewCache()
	}

	return cfg
}
