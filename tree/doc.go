// Package tree provides an immutable generic rose tree and the structural
// operations the decomposition engine is built on: folds, path enumeration,
// truncation, and level reordering (collapse, bring-on-top, swap).
//
// A Tree value is never modified after construction. Operations that change
// the shape return a new tree sharing unchanged subtrees with the input.
//
// Complexity:
//
//   - Map, Fold, Leaves, Flatten, AllPaths: O(N) nodes (AllPaths O(N·depth)).
//   - CollapseLevel: O(N).
//   - BringLevelOnTop: O(k·N) for k children at the chosen level.
//   - SwapLevels: O(L·k·N) for an ordering of L levels.
//
// Errors:
//
//	ErrNonUniformLevel  - nodes at a level disagree in value or child count.
//	ErrLeafLevel        - a reordering selected a level of leaves.
//	ErrChildOutOfRange  - collapse selected a child a node does not have.
//	ErrBadOrdering      - level ordering is not a permutation of distinct levels.
package tree
