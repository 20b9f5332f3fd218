// Package forest defines the contract every dynforest backend speaks,
// plus Reference, a brute-force implementation of the whole contract
// used as the correctness oracle.
//
// Overview:
//
//   - A dynamic forest is a set of n vertices, fixed at construction
//     and identified by dense ids in [0, n), whose undirected edge set
//     changes over time under Link and Cut. The live edge set is always
//     acyclic: Link refuses to close a cycle, Cut refuses to remove an
//     edge that does not exist.
//   - Aggregation is delegated to a policy.Policy: each vertex carries
//     one Key, folds produce Agg values, mutations apply lazy Act
//     values. Folds over paths respect path order; folds over
//     components and subtrees are set-like.
//
// The contract is split into small interfaces so each backend can
// implement exactly the subset that is natural for its structure:
//
//	Forest        — Len, Link, Cut, Connected (every backend)
//	VertexOps     — point reads and writes (every backend)
//	PathOps       — MakeRoot, FindRoot, PathFold/Apply/Len/Kth
//	ComponentOps  — ComponentFold/Apply/Size
//	SubtreeOps    — SubtreeFold/Apply on an oriented live edge
//
// Error handling:
//
//   - Ordinary misuse is reported by return value, never by panic:
//     Link and Cut return false and change nothing; path operations
//     return ok == false when the endpoints are disconnected.
//   - SubtreeFold/SubtreeApply require (child, parent) to be a live
//     edge. Violating that is a programmer error, caught by an
//     assertion panic, because validating the edge cheaply without
//     performing the temporary cut would defeat the complexity bound.
//   - Vertex ids outside [0, n) are likewise programmer errors.
//
// Root semantics:
//
//	MakeRoot re-roots a component in O(1) amortized on the real
//	backends. Several operations re-root internally and the effect is
//	observable through FindRoot: PathFold(u, v) and friends leave u the
//	root of its component; Link(u, v) leaves the root of v's component
//	the root of the merged one; Cut(u, v) leaves u and v the roots of
//	their halves. Re-rooting at u happens before a Cut or a path
//	operation can tell it must fail, so a failed Cut(u, v) with u != v
//	and a disconnected path query still leave u the root of its
//	component. Reference mirrors these side effects exactly so that
//	differential tests can compare FindRoot answers verbatim.
//
// Reference answers every query by breadth-first search over adjacency
// sets in O(n + m) and applies every action eagerly. It exists to be
// obviously correct, not fast; agreement with Reference under random
// operation interleavings is the acceptance bar for every backend.
package forest
