// Package linkcut provides two splay-based Link-Cut Trees over a
// dynamic forest: Tree, the classic preferred-path structure for path
// queries, and SubtreeTree, a component-aware variant that additionally
// answers whole-component and subtree queries.
//
// Overview:
//
//   - Both structures decompose each tree of the forest into vertex-
//     disjoint preferred paths, one splay tree per path, stitched
//     together by path-parent pointers. The single structural primitive
//     is access(v): after it, the splay tree containing v holds exactly
//     the root-to-v path, with v at its root.
//   - Re-rooting is O(1) on top of access: flip one lazy reversal bit.
//   - All nodes live in one arena, addressed by integer id; vertex v is
//     node v. Nothing is allocated or freed after construction.
//
// Tree is generic over a policy.Policy. It maintains, per node, the
// in-order aggregate of its splay subtree and (unless the policy is
// reversal-invariant) the reverse-order aggregate, so PathFold(u, v)
// and PathFold(v, u) are both exact for direction-sensitive monoids.
//
// SubtreeTree fixes Key = Agg = Act = int64 with wrapping addition.
// That specialization is deliberate: its virtual-subtree bookkeeping
// reconciles deferred actions by subtracting snapshots, which requires
// invertible actions. Per node it tracks the sum and size of the
// subtrees hanging off non-preferred ("virtual") edges, two independent
// lazy channels (path-only and whole-subtree), and a snapshot of the
// parent's virtual-lazy counter taken when the node last became a
// virtual child. When access promotes a virtual child to preferred, it
// first applies the delta between the parent's current counter and the
// snapshot — the promoted subtree receives exactly the actions it
// missed, no more. For a policy-generic structure with component
// queries, use the toptree package instead.
//
// Complexity: every public operation is amortized O(log n); a single
// call may be Θ(n) in the worst case (standard splay behavior).
//
// Error handling:
//
//   - Link returns false when u == v or the endpoints are already
//     connected; Cut returns false when (u, v) is not a live edge; path
//     operations return ok == false when the endpoints are disconnected.
//     None of these panic and none change state when they report failure.
//   - Vertex ids outside [0, n), and subtree operations on pairs that
//     are not live edges, are programmer errors and panic.
//
// See the forest package for the shared contract, including the root
// side effects of Link, Cut and the path operations.
package linkcut
