// SPDX-License-Identifier: MIT
// Package: hypercubes/builder
//
// api.go - public entry points: Build and BuildAll.
//
// Contract:
//   - Every class reachable from the root is instantiated eagerly, so any
//     configuration error surfaces from Build, never later.
//   - Same geometry and rules ⇒ structurally identical trees; with a shared
//     Cache, the very same *Node values.

package builder

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/mmesiti/hypercubes/geometry"
	"github.com/mmesiti/hypercubes/partition"
)

// Layout pairs a root geometry with the rule chain to apply to it.
type Layout struct {
	Geometry geometry.Geometry
	Rules    []partition.Rule
}

// Build compiles rules over geom into a decomposition tree.
//
// Complexity: O(K · (D + c)) for K distinct (geometry, suffix) keys, D axes
// and c children per class; without memoization K would be exponential in
// the chain length.
func Build(geom geometry.Geometry, rules []partition.Rule, opts ...Option) (*Node, error) {
	cfg := newBuilderConfig(opts...)

	return build(cfg, geom, rules)
}

// BuildAll compiles every layout concurrently against one shared Cache and
// returns the roots in input order. The first error cancels the remaining
// layouts that have not started yet.
func BuildAll(ctx context.Context, layouts []Layout, opts ...Option) ([]*Node, error) {
	cfg := newBuilderConfig(opts...)
	roots := make([]*Node, len(layouts))

	g, ctx := errgroup.WithContext(ctx)
	if cfg.maxParallel > 0 {
		g.SetLimit(cfg.maxParallel)
	}
	for i, l := range layouts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			root, err := build(cfg, l.Geometry, l.Rules)
			if err != nil {
				return fmt.Errorf("layout %d: %w", i, err)
			}
			roots[i] = root
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, builderErrorf("BuildAll", err)
	}

	return roots, nil
}

func build(cfg builderConfig, geom geometry.Geometry, rules []partition.Rule) (*Node, error) {
	if len(rules) == 0 {
		return nil, builderErrorf("Build", ErrNoRules)
	}
	if len(geom) == 0 {
		return nil, builderErrorf("Build", ErrEmptyGeometry)
	}
	b := &treeBuilder{cache: cfg.cache, log: cfg.logger}
	before := cfg.cache.Stats()
	root, err := b.node(geom, rules)
	if err != nil {
		return nil, builderErrorf("Build", err)
	}
	after := cfg.cache.Stats()
	cfg.logger.Debug("decomposition tree built",
		slog.Int("rules", len(rules)),
		slog.Int("axes", len(geom)),
		slog.Int64("hits", after.Hits-before.Hits),
		slog.Int64("misses", after.Misses-before.Misses),
		slog.Int("cached", after.Entries),
	)

	return root, nil
}

// treeBuilder carries the per-call dependencies through the recursion.
type treeBuilder struct {
	cache *Cache
	log   *slog.Logger
}

func (b *treeBuilder) node(geom geometry.Geometry, rules []partition.Rule) (*Node, error) {
	key := geom.Key() + "|" + partition.ChainKey(rules)

	return b.cache.getOrBuild(key, func() (*Node, error) {
		rule := rules[0]
		b.log.Debug("building level",
			slog.String("rule", rule.Name),
			slog.String("kind", rule.Kind.String()),
			slog.String("geometry", geom.Key()),
			slog.Int("remaining", len(rules)-1),
		)
		cls, err := partition.New(geom, rule)
		if err != nil {
			return nil, err
		}
		n := &Node{Class: cls}
		if cls == nil || len(rules) == 1 {
			return n, nil
		}
		kids := cls.ChildGeometries()
		n.Children = make([]*Node, len(kids))
		for i, g := range kids {
			if n.Children[i], err = b.node(g, rules[1:]); err != nil {
				return nil, err
			}
		}

		return n, nil
	})
}
