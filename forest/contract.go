// Package forest: the backend contract.
//
// This file declares the interfaces only; see doc.go for the shared
// semantics (id ranges, acyclicity, root side effects, error policy).

package forest

// Forest is the structural core every backend implements: a fixed set
// of vertices and a mutable, always-acyclic undirected edge set.
type Forest interface {
	// Len returns the number of vertices, fixed at construction.
	Len() int

	// Link adds the edge (u, v). It returns false, changing nothing,
	// when u == v or u and v are already connected.
	// Complexity: amortized O(log n).
	Link(u, v int) bool

	// Cut removes the edge (u, v). It returns false, changing nothing,
	// when no such edge is live.
	// Complexity: amortized O(log n).
	Cut(u, v int) bool

	// Connected reports whether u and v are in the same component.
	// Complexity: amortized O(log n).
	Connected(u, v int) bool
}

// VertexOps reads and writes a single vertex's key.
type VertexOps[K, A any] interface {
	// VertexGet returns v's current key.
	VertexGet(v int) K

	// VertexSet overwrites v's key.
	VertexSet(v int, k K)

	// VertexApply applies an action to v's key alone.
	VertexApply(v int, a A)
}

// PathOps answers queries about the unique simple path between two
// vertices of one component. Directions matter: folds run from u to v.
type PathOps[G, A any] interface {
	// MakeRoot re-roots v's component at v.
	MakeRoot(v int)

	// FindRoot returns the current root of v's component.
	FindRoot(v int) int

	// PathFold folds the keys along the u→v path, in path order.
	// ok is false when u and v are disconnected.
	PathFold(u, v int) (agg G, ok bool)

	// PathApply applies an action to every vertex on the u→v path.
	// It returns false, changing nothing, when u and v are disconnected.
	PathApply(u, v int, a A) bool

	// PathLen returns the number of vertices on the u→v path,
	// endpoints included.
	PathLen(u, v int) (n int, ok bool)

	// PathKth returns the k-th vertex of the u→v path, counting from
	// u with PathKth(u, v, 0) == u. ok is false when the endpoints are
	// disconnected or k is out of range.
	PathKth(u, v, k int) (vertex int, ok bool)
}

// ComponentOps aggregates over whole components. Folds are set-like:
// the key order is unspecified, so policies used with them should have
// a commutative Merge.
type ComponentOps[G, A any] interface {
	// ComponentFold folds the keys of every vertex in v's component.
	ComponentFold(v int) G

	// ComponentApply applies an action to every vertex in v's component.
	ComponentApply(v int, a A)

	// ComponentSize returns the number of vertices in v's component.
	ComponentSize(v int) int
}

// SubtreeOps aggregates over the subtree hanging off the child side of
// a live (child, parent) edge. Passing a pair that is not a live edge
// is a programmer error and panics.
type SubtreeOps[G, A any] interface {
	// SubtreeFold folds the keys of child's side of the (child, parent)
	// edge.
	SubtreeFold(child, parent int) G

	// SubtreeApply applies an action to every vertex on child's side of
	// the (child, parent) edge.
	SubtreeApply(child, parent int, a A)
}
