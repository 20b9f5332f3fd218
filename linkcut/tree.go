// Package linkcut: the classic preferred-path Link-Cut Tree.
//
// This file holds the policy-generic Tree: arena, splay core, access,
// and the public forest operations. The subtree/component variant with
// its own node layout lives in subtree.go.

package linkcut

import (
	"fmt"

	"github.com/katalvlaran/dynforest/policy"
)

// nilID is the arena's null pointer.
const nilID int32 = -1

// node is one splay-tree node; node i represents vertex i.
type node[K, G, A any] struct {
	p, l, r int32 // splay parent and children; p doubles as path-parent
	sz      int32 // splay-subtree vertex count
	rev     bool  // children of l and r still need flipping
	pend    bool  // lz holds a deferred action for both children
	key     K
	agg     G // in-order fold of the splay subtree
	rag     G // reverse-order fold (mirrors agg when the policy is symmetric)
	lz      A
}

// Tree is a splay-based Link-Cut Tree, generic over a policy.
// It implements forest.Forest, forest.VertexOps and forest.PathOps.
type Tree[K, G, A any, P policy.Policy[K, G, A]] struct {
	pol     P
	sym     bool // policy.RevInvariant: skip maintaining rag separately
	n       []node[K, G, A]
	scratch []int32 // reusable push stack for splay
}

// New builds an edgeless forest over len(values) vertices; vertex i
// starts with key values[i].
// Complexity: O(n).
func New[K, G, A any, P policy.Policy[K, G, A]](pol P, values []K) *Tree[K, G, A, P] {
	t := &Tree[K, G, A, P]{
		pol: pol,
		sym: pol.RevInvariant(),
		n:   make([]node[K, G, A], len(values)),
	}
	for i := range values {
		nd := &t.n[i]
		nd.p, nd.l, nd.r = nilID, nilID, nilID
		nd.sz = 1
		nd.key = values[i]
		nd.agg = pol.AggOf(values[i])
		nd.rag = nd.agg
		nd.lz = pol.ActUnit()
	}

	return t
}

// Len returns the vertex count.
func (t *Tree[K, G, A, P]) Len() int { return len(t.n) }

// Link adds the edge (u, v); false when u == v or already connected.
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) Link(u, v int) bool {
	t.check(u)
	t.check(v)
	if u == v || t.Connected(u, v) {
		return false
	}
	t.makeroot(int32(u))
	t.n[u].p = int32(v) // path-parent: u's tree hangs off v

	return true
}

// Cut removes the edge (u, v); false when no such edge is live.
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) Cut(u, v int) bool {
	t.check(u)
	t.check(v)
	if u == v {
		return false
	}
	ui, vi := int32(u), int32(v)
	t.makeroot(ui)
	t.access(vi)
	// The edge exists iff u and v are adjacent on the exposed path:
	// v's in-order predecessor subtree must be exactly {u}.
	if t.n[vi].l != ui {
		return false
	}
	t.push(ui)
	if t.n[ui].l != nilID || t.n[ui].r != nilID {
		return false
	}
	t.n[vi].l = nilID
	t.n[ui].p = nilID
	t.pull(vi)

	return true
}

// Connected reports whether u and v share a component.
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) Connected(u, v int) bool {
	t.check(u)
	t.check(v)
	if u == v {
		return true
	}
	t.access(int32(u))
	t.access(int32(v))
	// access(v) touched u's tree iff they share one: only the exposed
	// root keeps a nil parent.
	return t.n[u].p != nilID
}

// VertexGet returns v's key.
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) VertexGet(v int) K {
	t.check(v)
	t.access(int32(v))

	return t.n[v].key
}

// VertexSet overwrites v's key.
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) VertexSet(v int, k K) {
	t.check(v)
	t.access(int32(v))
	t.n[v].key = k
	t.pull(int32(v))
}

// VertexApply applies an action to v's key alone.
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) VertexApply(v int, a A) {
	t.check(v)
	t.access(int32(v))
	t.n[v].key = t.pol.ApplyKey(a, t.n[v].key)
	t.pull(int32(v))
}

// MakeRoot re-roots v's component at v.
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) MakeRoot(v int) {
	t.check(v)
	t.makeroot(int32(v))
}

// FindRoot returns the root of v's component.
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) FindRoot(v int) int {
	t.check(v)
	t.access(int32(v))
	x := int32(v)
	t.push(x)
	for t.n[x].l != nilID {
		x = t.n[x].l
		t.push(x)
	}
	t.splay(x) // re-balance the walked spine

	return int(x)
}

// PathFold folds the keys along the u→v path in path order.
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) PathFold(u, v int) (G, bool) {
	t.check(u)
	t.check(v)
	if !t.expose(int32(u), int32(v)) {
		var zero G
		return zero, false
	}

	return t.n[v].agg, true
}

// PathApply applies an action to every vertex on the u→v path.
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) PathApply(u, v int, a A) bool {
	t.check(u)
	t.check(v)
	if !t.expose(int32(u), int32(v)) {
		return false
	}
	t.applyAct(int32(v), a)

	return true
}

// PathLen returns the number of vertices on the u→v path.
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) PathLen(u, v int) (int, bool) {
	t.check(u)
	t.check(v)
	if !t.expose(int32(u), int32(v)) {
		return 0, false
	}

	return int(t.n[v].sz), true
}

// PathKth returns the k-th vertex of the u→v path, counting from u.
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) PathKth(u, v, k int) (int, bool) {
	t.check(u)
	t.check(v)
	if !t.expose(int32(u), int32(v)) {
		return 0, false
	}
	if k < 0 || k >= int(t.n[v].sz) {
		return 0, false
	}
	x := int32(v)
	for {
		t.push(x)
		lsz := 0
		if l := t.n[x].l; l != nilID {
			lsz = int(t.n[l].sz)
		}
		switch {
		case k < lsz:
			x = t.n[x].l
		case k == lsz:
			t.splay(x) // re-balance the descent

			return int(x), true
		default:
			k -= lsz + 1
			x = t.n[x].r
		}
	}
}

// --- splay core --------------------------------------------------------

func (t *Tree[K, G, A, P]) check(v int) {
	if v < 0 || v >= len(t.n) {
		panic(fmt.Sprintf("linkcut: vertex %d out of range [0,%d)", v, len(t.n)))
	}
}

// isRoot reports whether x heads its splay tree. A non-nil parent that
// does not own x as a child is a path-parent pointer.
func (t *Tree[K, G, A, P]) isRoot(x int32) bool {
	p := t.n[x].p

	return p == nilID || (t.n[p].l != x && t.n[p].r != x)
}

// flip reverses x's subtree: children and direction aggregates swap
// eagerly, the pending bit defers the grandchildren.
func (t *Tree[K, G, A, P]) flip(x int32) {
	nd := &t.n[x]
	nd.l, nd.r = nd.r, nd.l
	nd.agg, nd.rag = nd.rag, nd.agg
	nd.rev = !nd.rev
}

// applyAct applies an action to x's whole splay subtree: key and both
// aggregates now, children deferred through lz.
func (t *Tree[K, G, A, P]) applyAct(x int32, a A) {
	nd := &t.n[x]
	nd.key = t.pol.ApplyKey(a, nd.key)
	nd.agg = t.pol.ApplyAgg(a, nd.agg, int(nd.sz))
	if t.sym {
		nd.rag = nd.agg
	} else {
		nd.rag = t.pol.ApplyAgg(a, nd.rag, int(nd.sz))
	}
	nd.lz = t.pol.Compose(a, nd.lz)
	nd.pend = true
}

// push moves x's deferred state one level down: reversal first, then
// the pending action. Must run before inspecting x's children.
func (t *Tree[K, G, A, P]) push(x int32) {
	nd := &t.n[x]
	if nd.rev {
		if nd.l != nilID {
			t.flip(nd.l)
		}
		if nd.r != nilID {
			t.flip(nd.r)
		}
		nd.rev = false
	}
	if nd.pend {
		a := nd.lz
		if nd.l != nilID {
			t.applyAct(nd.l, a)
		}
		if nd.r != nilID {
			t.applyAct(nd.r, a)
		}
		nd.lz = t.pol.ActUnit()
		nd.pend = false
	}
}

// pull recomputes x's size and aggregates from its children. Children
// caches must already be current.
func (t *Tree[K, G, A, P]) pull(x int32) {
	nd := &t.n[x]
	lagg, lrag := t.pol.AggUnit(), t.pol.AggUnit()
	ragg, rrag := t.pol.AggUnit(), t.pol.AggUnit()
	nd.sz = 1
	if l := nd.l; l != nilID {
		nd.sz += t.n[l].sz
		lagg, lrag = t.n[l].agg, t.n[l].rag
	}
	if r := nd.r; r != nilID {
		nd.sz += t.n[r].sz
		ragg, rrag = t.n[r].agg, t.n[r].rag
	}
	nd.agg = t.pol.Merge(lagg, nd.key, ragg)
	if t.sym {
		nd.rag = nd.agg
	} else {
		nd.rag = t.pol.Merge(rrag, nd.key, lrag)
	}
}

// rotate lifts x above its splay parent, preserving in-order layout
// and inheriting the path-parent pointer when p was a splay root.
func (t *Tree[K, G, A, P]) rotate(x int32) {
	p := t.n[x].p
	g := t.n[p].p
	left := t.n[p].l == x

	var b int32
	if left {
		b = t.n[x].r
		t.n[p].l = b
		t.n[x].r = p
	} else {
		b = t.n[x].l
		t.n[p].r = b
		t.n[x].l = p
	}
	if b != nilID {
		t.n[b].p = p
	}
	t.n[p].p = x
	t.n[x].p = g
	if g != nilID {
		if t.n[g].l == p {
			t.n[g].l = x
		} else if t.n[g].r == p {
			t.n[g].r = x
		}
		// otherwise p hung by path-parent; x inherits it via t.n[x].p
	}
	t.pull(p)
	t.pull(x)
}

// splay rotates x to the root of its splay tree, pushing the whole
// root-to-x spine top-down first so every rotation sees clean nodes.
func (t *Tree[K, G, A, P]) splay(x int32) {
	t.scratch = t.scratch[:0]
	for y := x; ; y = t.n[y].p {
		t.scratch = append(t.scratch, y)
		if t.isRoot(y) {
			break
		}
	}
	for i := len(t.scratch) - 1; i >= 0; i-- {
		t.push(t.scratch[i])
	}
	for !t.isRoot(x) {
		p := t.n[x].p
		if t.isRoot(p) {
			t.rotate(x)
			continue
		}
		g := t.n[p].p
		if (t.n[g].l == p) == (t.n[p].l == x) {
			t.rotate(p) // zig-zig
			t.rotate(x)
		} else {
			t.rotate(x) // zig-zag
			t.rotate(x)
		}
	}
}

// access exposes the root-to-v path: afterwards v heads a splay tree
// whose in-order sequence is exactly that path, with no preferred
// child below v.
func (t *Tree[K, G, A, P]) access(v int32) {
	t.splay(v)
	t.n[v].r = nilID // detached subtree keeps v as its path-parent
	t.pull(v)
	for t.n[v].p != nilID {
		w := t.n[v].p
		t.splay(w)
		t.n[w].r = v // switch w's preferred child to v's path
		t.pull(w)
		t.splay(v)
	}
}

// makeroot re-roots v's represented tree at v: expose, then reverse
// the whole exposed path in O(1).
func (t *Tree[K, G, A, P]) makeroot(v int32) {
	t.access(v)
	t.flip(v)
}

// expose re-roots at u and exposes the u→v path; false when the two
// are in different components.
func (t *Tree[K, G, A, P]) expose(u, v int32) bool {
	t.makeroot(u)
	t.access(v)

	return u == v || t.n[u].p != nilID
}
