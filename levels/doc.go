// Package levels analyses which levels of a decomposition tree depend on
// each other and uses the result to permute levels safely.
//
// Level e depends on a shallower level s when the shape of the tree below s,
// truncated at e, changes with the index chosen at s. Concretely, on the
// max-index tree (every node replaced by MaxIndexValue of its class) the pair
// (e, s) is independent iff for every node at depth s the leaf lists of its
// children are identical, or all carry one single value. A dependent level
// must stay below the levels it depends on in any reordering.
//
// What:
//
//   - MaxIndexTree: the max-index tree of a built decomposition.
//   - DependencyMatrix, MustComeAfter, Analyze: the dependency relation.
//   - TopologicalOrder: a level ordering honouring every dependency,
//     pulling requested levels as close to the top as allowed.
//   - CheckOrdering, Reorder: certify a user ordering and apply it with
//     tree.SwapLevels.
//
// Complexity:
//
//   - DependencyMatrix: O(L²·N) for L levels and N max-index tree nodes.
//   - TopologicalOrder, CheckOrdering: O(L + E) for E dependency pairs.
//
// Errors:
//
//	ErrUnsafeOrdering     - an ordering lifts a level above one it depends on.
//	ErrCyclicConstraints  - the constraints admit no ordering.
package levels
