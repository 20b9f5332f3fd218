// Package forest: the Reference oracle.
//
// Reference keeps plain adjacency sets and answers every query by BFS,
// applying actions eagerly. Everything here favors being obviously
// correct over being fast: per-query cost is O(n + m).

package forest

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/dynforest/policy"
)

// Reference is the brute-force implementation of the full contract.
// It is the oracle every real backend is differential-tested against,
// and is exported so users can do the same with their own policies.
type Reference[K, G, A any, P policy.Policy[K, G, A]] struct {
	pol  P
	keys []K
	adj  []map[int]struct{} // adjacency sets, one per vertex
	root []int              // root[v] = designated root of v's component
}

// NewReference builds an edgeless forest over len(values) vertices;
// vertex i starts with key values[i] and is the root of its own
// single-vertex component.
func NewReference[K, G, A any, P policy.Policy[K, G, A]](pol P, values []K) *Reference[K, G, A, P] {
	n := len(values)
	r := &Reference[K, G, A, P]{
		pol:  pol,
		keys: make([]K, n),
		adj:  make([]map[int]struct{}, n),
		root: make([]int, n),
	}
	copy(r.keys, values)
	for v := 0; v < n; v++ {
		r.adj[v] = make(map[int]struct{})
		r.root[v] = v
	}

	return r
}

// Len returns the vertex count.
func (r *Reference[K, G, A, P]) Len() int { return len(r.keys) }

// Link adds edge (u, v); false when u == v or already connected.
func (r *Reference[K, G, A, P]) Link(u, v int) bool {
	r.check(u)
	r.check(v)
	if u == v || r.Connected(u, v) {
		return false
	}
	newRoot := r.root[v] // the merged component keeps v's root
	r.adj[u][v] = struct{}{}
	r.adj[v][u] = struct{}{}
	r.retag(u, newRoot)

	return true
}

// Cut removes edge (u, v); false when no such edge is live. The two
// halves end up rooted at u and v respectively.
func (r *Reference[K, G, A, P]) Cut(u, v int) bool {
	r.check(u)
	r.check(v)
	if u == v {
		return false
	}
	// The real backends re-root at u before they can tell whether the
	// edge exists; mirror that even on failure.
	r.retag(u, u)
	if _, ok := r.adj[u][v]; !ok {
		return false
	}
	delete(r.adj[u], v)
	delete(r.adj[v], u)
	r.retag(v, v)

	return true
}

// Connected reports whether u and v share a component.
func (r *Reference[K, G, A, P]) Connected(u, v int) bool {
	r.check(u)
	r.check(v)
	if u == v {
		return true
	}
	_, ok := r.parents(u)[v]

	return ok
}

// VertexGet returns v's key.
func (r *Reference[K, G, A, P]) VertexGet(v int) K {
	r.check(v)

	return r.keys[v]
}

// VertexSet overwrites v's key.
func (r *Reference[K, G, A, P]) VertexSet(v int, k K) {
	r.check(v)
	r.keys[v] = k
}

// VertexApply applies an action to v's key alone.
func (r *Reference[K, G, A, P]) VertexApply(v int, a A) {
	r.check(v)
	r.keys[v] = r.pol.ApplyKey(a, r.keys[v])
}

// MakeRoot re-roots v's component at v.
func (r *Reference[K, G, A, P]) MakeRoot(v int) {
	r.check(v)
	r.retag(v, v)
}

// FindRoot returns the root of v's component.
func (r *Reference[K, G, A, P]) FindRoot(v int) int {
	r.check(v)

	return r.root[v]
}

// PathFold folds keys along the u→v path in path order.
func (r *Reference[K, G, A, P]) PathFold(u, v int) (G, bool) {
	path, ok := r.path(u, v)
	r.retag(u, u) // mirrors the makeroot(u) the real backends perform
	if !ok {
		var zero G
		return zero, false
	}
	agg := r.pol.AggUnit()
	for _, x := range path {
		agg = r.pol.Merge(agg, r.keys[x], r.pol.AggUnit())
	}

	return agg, true
}

// PathApply applies an action to every vertex on the u→v path.
func (r *Reference[K, G, A, P]) PathApply(u, v int, a A) bool {
	path, ok := r.path(u, v)
	r.retag(u, u)
	if !ok {
		return false
	}
	for _, x := range path {
		r.keys[x] = r.pol.ApplyKey(a, r.keys[x])
	}

	return true
}

// PathLen returns the number of vertices on the u→v path.
func (r *Reference[K, G, A, P]) PathLen(u, v int) (int, bool) {
	path, ok := r.path(u, v)
	r.retag(u, u)
	if !ok {
		return 0, false
	}

	return len(path), true
}

// PathKth returns the k-th vertex of the u→v path, counting from u.
func (r *Reference[K, G, A, P]) PathKth(u, v, k int) (int, bool) {
	path, ok := r.path(u, v)
	r.retag(u, u)
	if !ok || k < 0 || k >= len(path) {
		return 0, false
	}

	return path[k], true
}

// ComponentFold folds the keys of v's whole component (BFS order).
func (r *Reference[K, G, A, P]) ComponentFold(v int) G {
	r.check(v)
	agg := r.pol.AggUnit()
	for _, x := range r.walk(v) {
		agg = r.pol.Merge(agg, r.keys[x], r.pol.AggUnit())
	}

	return agg
}

// ComponentApply applies an action to every vertex of v's component.
func (r *Reference[K, G, A, P]) ComponentApply(v int, a A) {
	r.check(v)
	for _, x := range r.walk(v) {
		r.keys[x] = r.pol.ApplyKey(a, r.keys[x])
	}
}

// ComponentSize returns the number of vertices in v's component.
func (r *Reference[K, G, A, P]) ComponentSize(v int) int {
	r.check(v)

	return len(r.walk(v))
}

// SubtreeFold folds child's side of the live (child, parent) edge.
func (r *Reference[K, G, A, P]) SubtreeFold(child, parent int) G {
	r.detach(child, parent)
	agg := r.ComponentFold(child)
	r.reattach(child, parent)

	return agg
}

// SubtreeApply applies an action to child's side of the (child, parent)
// edge.
func (r *Reference[K, G, A, P]) SubtreeApply(child, parent int, a A) {
	r.detach(child, parent)
	r.ComponentApply(child, a)
	r.reattach(child, parent)
}

// --- internals ---------------------------------------------------------

func (r *Reference[K, G, A, P]) check(v int) {
	if v < 0 || v >= len(r.keys) {
		panic(fmt.Sprintf("forest: vertex %d out of range [0,%d)", v, len(r.keys)))
	}
}

// detach removes the (child, parent) edge for a subtree operation,
// panicking when the pair is not a live edge.
func (r *Reference[K, G, A, P]) detach(child, parent int) {
	r.check(child)
	r.check(parent)
	if _, ok := r.adj[child][parent]; !ok {
		panic(fmt.Sprintf("forest: (%d,%d) is not a live edge", child, parent))
	}
	delete(r.adj[child], parent)
	delete(r.adj[parent], child)
}

// reattach restores the edge and applies the root side effect of the
// cut-then-relink subtree pattern: the component ends up rooted at
// parent.
func (r *Reference[K, G, A, P]) reattach(child, parent int) {
	r.adj[child][parent] = struct{}{}
	r.adj[parent][child] = struct{}{}
	r.retag(child, parent)
}

// parents runs BFS from start and returns the parent map of every
// reached vertex (start maps to itself). Neighbor order is sorted so
// traversals are deterministic.
func (r *Reference[K, G, A, P]) parents(start int) map[int]int {
	parent := map[int]int{start: start}
	queue := []int{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nbr := range r.neighbors(cur) {
			if _, seen := parent[nbr]; !seen {
				parent[nbr] = cur
				queue = append(queue, nbr)
			}
		}
	}

	return parent
}

// walk returns the vertices of start's component in BFS order.
func (r *Reference[K, G, A, P]) walk(start int) []int {
	seen := map[int]struct{}{start: {}}
	order := []int{start}
	for i := 0; i < len(order); i++ {
		for _, nbr := range r.neighbors(order[i]) {
			if _, ok := seen[nbr]; !ok {
				seen[nbr] = struct{}{}
				order = append(order, nbr)
			}
		}
	}

	return order
}

// path reconstructs the unique simple u→v path, endpoints included.
func (r *Reference[K, G, A, P]) path(u, v int) ([]int, bool) {
	r.check(u)
	r.check(v)
	parent := r.parents(u)
	if _, ok := parent[v]; !ok {
		return nil, false
	}
	// Walk v→u by parent links, then reverse.
	rev := []int{v}
	for cur := v; cur != u; {
		cur = parent[cur]
		rev = append(rev, cur)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, true
}

func (r *Reference[K, G, A, P]) neighbors(v int) []int {
	out := make([]int, 0, len(r.adj[v]))
	for nbr := range r.adj[v] {
		out = append(out, nbr)
	}
	sort.Ints(out)

	return out
}

// retag marks root as the designated root of every vertex in its
// component. start may be any member.
func (r *Reference[K, G, A, P]) retag(start, root int) {
	for _, x := range r.walk(start) {
		r.root[x] = root
	}
}
