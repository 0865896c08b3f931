// SPDX-License-Identifier: MIT
// Package: hypercubes/builder
//
// Package builder assembles decomposition trees from a geometry and an
// ordered rule chain.
//
// What:
//
//   - Build instantiates rules[0] on the geometry (partition.New), then
//     recurses into every distinct child geometry with rules[1:].
//   - A chain of length one, or an End rule, produces a node without children.
//   - Every (geometry, rule-suffix) pair is built once per Cache; equal
//     subtrees reached through different parents are the same *Node.
//   - BuildAll compiles several layouts concurrently against one Cache.
//   - Dump renders a depth-limited diagnostic view of a tree.
//
// Why memoize:
//
//	A uniform rule chain on D axes reaches the same child geometries through
//	exponentially many parent paths; the memo keeps the tree size linear in
//	the number of distinct (geometry, suffix) pairs.
//
// Options:
//
//	WithCache(c)        share a Cache between calls (default: fresh per call)
//	WithLogger(l)       slog logger for cache misses and build summaries
//	WithMaxParallel(n)  bound BuildAll concurrency
//
// Errors:
//
//	ErrNoRules        - empty rule chain.
//	ErrEmptyGeometry  - geometry without axes.
//	partition.ErrConfiguration (wrapped) - any rule rejected at build time.
//
// Concurrency:
//
//	Nodes are immutable once returned. Cache is safe for concurrent use;
//	concurrent builds of the same key are collapsed with singleflight.
package builder
