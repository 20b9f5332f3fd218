// Package toptree implements a self-adjusting top tree: a dynamic
// forest whose clusters come in two flavors, compress clusters along
// preferred paths and rake clusters bundling the light subtrees that
// hang off them. It is the only backend that answers path, component
// and subtree queries at once, and the only one with weighted edges.
//
// Overview:
//
//   - Preferred paths are splay sequences, as in package linkcut, but
//     every tree edge is subdivided into its own node: the in-order
//     sequence of an exposed path alternates vertex, edge, vertex. Edge
//     nodes carry a key of their own, so paths and components can be
//     folded over vertex and edge weights together.
//   - Where a plain link-cut tree folds its light (virtual) subtrees
//     into a single running total, this one keeps them in a per-vertex
//     rake tree: a small splay tree whose leaves are the light
//     subtrees' path roots. Rake trees let a lazy "apply to the whole
//     component" distribute structurally, so the policy needs no
//     inverse operation.
//   - Two lazy channels coexist on every node: one scoped to the path
//     sequence, one to the entire subtree including rake trees. When a
//     workload mixes path actions with component or subtree actions,
//     the policy's Compose must be commutative; every stock policy's
//     is.
//
// Edge weights:
//
//   - Link attaches an edge carrying the policy's KeyUnit, which is
//     neutral in Merge, so unweighted use folds exactly like the other
//     backends. LinkWithEdge attaches a chosen weight instead, and
//     EdgeGet, EdgeSet and EdgeApply address it afterwards.
//   - Lazy actions never touch edge weights; EdgeApply is the one
//     explicit exception. Folds therefore stay exact for additive
//     aggregates, and for any policy when edges are unweighted. A
//     min/max policy combined with weighted edges can report folds
//     that lag behind a PathApply or ComponentApply; keep edges
//     unweighted for those policies.
//
// Complexity: every operation is amortized O(log n), except EdgeGet
// which is O(1) because edge keys are never stale.
//
// Error handling matches the forest contract: Link, Cut and the path
// operations report failure by return value; out-of-range ids, subtree
// operations on non-edges and edge accessors on non-edges are
// programmer errors and panic.
package toptree
