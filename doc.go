// Package dynforest is a toolbox of dynamic-forest data structures:
// a forest of vertices whose edge set changes over time (Link/Cut)
// while algebraic aggregates stay queryable over paths, subtrees and
// whole components.
//
// 🌲 What is dynforest?
//
//	A pure-Go collection of four interchangeable backends, all generic
//	over one pluggable monoid-plus-lazy-action algebra:
//		• linkcut.Tree        — splay-based Link-Cut Tree (path queries)
//		• linkcut.SubtreeTree — Link-Cut Tree with virtual-subtree sums
//		                        (component & subtree queries, int64 add)
//		• eulertour.Tree      — Euler-Tour Tree (component queries)
//		• toptree.Tree        — rake/compress Top Tree (the richest:
//		                        paths, components, subtrees, weighted
//		                        edges, path order statistics)
//
// ✨ Why choose dynforest?
//
//   - One contract, four strategies — every backend implements the
//     forest interfaces; pick the one whose operation mix fits
//   - Pluggable algebra — sums, minima, concatenations, your own
//     monoid with lazily-deferred actions (policy package)
//   - Honest oracle — forest.Reference answers every query by BFS,
//     ready for differential testing of custom policies
//   - Pure Go — no cgo, no hidden deps
//
// Under the hood, everything is organized under five subpackages:
//
//	policy/    — the Key/Agg/Act algebra and stock policies
//	forest/    — the shared interfaces + the brute-force Reference
//	linkcut/   — Link-Cut Tree and its subtree/component variant
//	eulertour/ — Euler-Tour Tree
//	toptree/   — self-adjusting rake/compress Top Tree
//
// Quick ASCII example:
//
//	    0───1        Link(0,1), Link(1,2): PathFold(0,2) folds the
//	        │        keys along 0→1→2; Cut(1,2) splits the component
//	    3   2        and PathFold(1,2) reports "disconnected".
//
// All backends require external serialization of calls on one instance:
// every public method takes exclusive ownership for its whole duration.
// Operations are amortized O(log n) on every backend except the
// Reference oracle, which is deliberately O(n) and deliberately simple.
//
//	go get github.com/katalvlaran/dynforest
package dynforest
