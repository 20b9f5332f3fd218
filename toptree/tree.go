// Package toptree: the tree itself.
//
// One arena holds three node kinds. Vertex nodes [0, n) and edge nodes
// form the path splay trees; rake nodes are the internal nodes of the
// per-vertex rake trees. Edge and rake nodes are recycled through a
// free-list.

package toptree

import (
	"fmt"

	"github.com/katalvlaran/dynforest/policy"
)

// nilID is the arena's null pointer.
const nilID int32 = -1

type kind int8

const (
	kindVertex kind = iota
	kindEdge
	kindRake
)

// node is one cluster node. Path nodes (vertex, edge) use p/l/r within
// their path splay tree; a path root's p points into the owning
// vertex's rake tree. Vertex nodes additionally own lt, the root of
// their rake tree. Rake nodes use p/l/r within the rake tree and keep
// only the subtree-wide caches.
type node[K, G, A any] struct {
	p, l, r int32
	lt      int32 // rake-tree root over this vertex's light subtrees
	kind    kind
	rev     bool // children of l and r still need flipping
	pendP   bool // lzPath holds a deferred path action for l and r
	pendA   bool // lzAll holds a deferred action for l, r and lt
	sz      int32 // vertices on the path sequence of this splay subtree
	asz     int32 // vertices anywhere below, rake trees included
	key     K
	agg     G // in-order fold of the path sequence, edge keys included
	rag     G // reverse-order fold (mirrors agg when the policy is symmetric)
	vag     G // fold of everything outside the path sequence
	aag     G // fold of the whole subtree: Merge(agg, KeyUnit, vag)
	lzPath  A
	lzAll   A
}

// Tree is a splay-based top tree, generic over a policy. It implements
// every forest interface: Forest, VertexOps, PathOps, ComponentOps and
// SubtreeOps, plus the weighted-edge accessors of its own.
type Tree[K, G, A any, P policy.Policy[K, G, A]] struct {
	pol     P
	sym     bool // policy.RevInvariant: skip maintaining rag separately
	nv      int  // vertex count; arena slots beyond it are edge/rake nodes
	n       []node[K, G, A]
	free    []int32            // edge and rake ids ready for reuse
	edges   map[[2]int32]int32 // unordered endpoint pair → its edge node
	scratch []int32            // reusable push stack for splay
}

// New builds an edgeless forest over len(values) vertices; vertex i
// starts with key values[i].
// Complexity: O(n).
func New[K, G, A any, P policy.Policy[K, G, A]](pol P, values []K) *Tree[K, G, A, P] {
	t := &Tree[K, G, A, P]{
		pol:   pol,
		sym:   pol.RevInvariant(),
		nv:    len(values),
		n:     make([]node[K, G, A], len(values)),
		edges: make(map[[2]int32]int32),
	}
	for i := range values {
		nd := &t.n[i]
		nd.p, nd.l, nd.r, nd.lt = nilID, nilID, nilID, nilID
		nd.kind = kindVertex
		nd.sz, nd.asz = 1, 1
		nd.key = values[i]
		nd.agg = pol.AggOf(values[i])
		nd.rag = nd.agg
		nd.vag = pol.AggUnit()
		nd.aag = nd.agg
		nd.lzPath = pol.ActUnit()
		nd.lzAll = pol.ActUnit()
	}

	return t
}

// Len returns the vertex count.
func (t *Tree[K, G, A, P]) Len() int { return t.nv }

// Link adds the edge (u, v) with the unit weight; false when u == v or
// already connected.
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) Link(u, v int) bool {
	return t.LinkWithEdge(u, v, t.pol.KeyUnit())
}

// LinkWithEdge adds the edge (u, v) carrying weight w; false when
// u == v or already connected. The root of v's component roots the
// merged one. Weighted edges pair exactly with additive aggregates;
// under a min/max policy, folds over weighted edges can lag behind
// PathApply and ComponentApply (see the package doc), so keep edges
// unweighted there.
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) LinkWithEdge(u, v int, w K) bool {
	t.check(u)
	t.check(v)
	if u == v || t.Connected(u, v) {
		return false
	}
	ui, vi := int32(u), int32(v)
	t.makeroot(ui)
	t.access(vi)
	// Splice [root..v] e [u..] into one path: v has no right child
	// after access, u no left child after makeroot.
	e := t.alloc(kindEdge, w)
	t.edges[pairKey(ui, vi)] = e
	t.n[e].r = ui
	t.n[ui].p = e
	t.n[e].p = vi
	t.n[vi].r = e
	t.pull(e)
	t.pull(vi)

	return true
}

// Cut removes the edge (u, v); false when no such edge is live. The
// two halves end up rooted at u and v respectively.
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) Cut(u, v int) bool {
	t.check(u)
	t.check(v)
	if u == v {
		return false
	}
	ui, vi := int32(u), int32(v)
	t.makeroot(ui) // re-roots even when the edge turns out missing
	e, ok := t.edges[pairKey(ui, vi)]
	if !ok {
		return false
	}
	delete(t.edges, pairKey(ui, vi))
	// The exposed u→v path is exactly [u, e, v]; splay the edge node
	// and let both sides go.
	t.access(vi)
	t.splayPath(e)
	l, r := t.n[e].l, t.n[e].r
	t.n[l].p = nilID
	t.n[r].p = nilID
	t.freeNode(e)

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
	// access(v) re-hung u's exposed path iff they share a component.
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
	// The component root heads the exposed path: leftmost in order,
	// and always a vertex node.
	x := int32(v)
	t.push(x)
	for t.n[x].l != nilID {
		x = t.n[x].l
		t.push(x)
	}
	t.splayPath(x) // re-balance the walked spine

	return int(x)
}

// PathFold folds vertex keys and edge weights along the u→v path, in
// path order.
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

// PathApply applies an action to every vertex on the u→v path. Edge
// weights on the path are untouched.
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) PathApply(u, v int, a A) bool {
	t.check(u)
	t.check(v)
	if !t.expose(int32(u), int32(v)) {
		return false
	}
	t.applyPath(int32(v), a)

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
	// Descend by path vertex counts; edge nodes contribute none.
	x := int32(v)
	for {
		t.push(x)
		lsz := 0
		if l := t.n[x].l; l != nilID {
			lsz = int(t.n[l].sz)
		}
		if t.n[x].kind == kindVertex {
			switch {
			case k < lsz:
				x = t.n[x].l
			case k == lsz:
				t.splayPath(x) // re-balance the descent

				return int(x), true
			default:
				k -= lsz + 1
				x = t.n[x].r
			}
			continue
		}
		if k < lsz {
			x = t.n[x].l
		} else {
			k -= lsz
			x = t.n[x].r
		}
	}
}

// ComponentFold folds the vertex keys and edge weights of v's whole
// component.
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) ComponentFold(v int) G {
	t.check(v)
	t.access(int32(v))

	return t.n[v].aag
}

// ComponentApply applies an action to every vertex of v's component.
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) ComponentApply(v int, a A) {
	t.check(v)
	t.access(int32(v))
	t.applyAll(int32(v), a)
}

// ComponentSize returns the number of vertices in v's component.
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) ComponentSize(v int) int {
	t.check(v)
	t.access(int32(v))

	return int(t.n[v].asz)
}

// SubtreeFold folds child's side of the live (child, parent) edge via
// a temporary cut; the edge weight is preserved across the relink.
// Passing a non-edge is a programmer error.
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) SubtreeFold(child, parent int) G {
	w := t.edgeKey(child, parent)
	t.Cut(child, parent)
	agg := t.ComponentFold(child)
	t.LinkWithEdge(child, parent, w)

	return agg
}

// SubtreeApply applies an action to every vertex on child's side of
// the (child, parent) edge via a temporary cut.
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) SubtreeApply(child, parent int, a A) {
	w := t.edgeKey(child, parent)
	t.Cut(child, parent)
	t.ComponentApply(child, a)
	t.LinkWithEdge(child, parent, w)
}

// EdgeGet returns the weight of the live edge (u, v). Lazy actions
// never reach edge keys, so no restructuring is needed.
// Complexity: O(1).
func (t *Tree[K, G, A, P]) EdgeGet(u, v int) K {
	return t.edgeKey(u, v)
}

// EdgeSet overwrites the weight of the live edge (u, v). Like a path
// operation, it leaves u the root of the component.
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) EdgeSet(u, v int, w K) {
	e := t.edgeNode(u, v)
	t.expose(int32(u), int32(v))
	t.splayPath(e)
	t.n[e].key = w
	t.pull(e)
}

// EdgeApply applies an action to the weight of the live edge (u, v),
// the one way an action reaches an edge. Leaves u the root.
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) EdgeApply(u, v int, a A) {
	e := t.edgeNode(u, v)
	t.expose(int32(u), int32(v))
	t.splayPath(e)
	t.n[e].key = t.pol.ApplyKey(a, t.n[e].key)
	t.pull(e)
}

// --- splay core --------------------------------------------------------

func (t *Tree[K, G, A, P]) check(v int) {
	if v < 0 || v >= t.nv {
		panic(fmt.Sprintf("toptree: vertex %d out of range [0,%d)", v, t.nv))
	}
}

func pairKey(u, v int32) [2]int32 {
	if u > v {
		u, v = v, u
	}

	return [2]int32{u, v}
}

func (t *Tree[K, G, A, P]) edgeNode(u, v int) int32 {
	t.check(u)
	t.check(v)
	e, ok := t.edges[pairKey(int32(u), int32(v))]
	if !ok {
		panic(fmt.Sprintf("toptree: (%d,%d) is not a live edge", u, v))
	}

	return e
}

func (t *Tree[K, G, A, P]) edgeKey(u, v int) K {
	return t.n[t.edgeNode(u, v)].key
}

func (t *Tree[K, G, A, P]) alloc(kd kind, k K) int32 {
	var id int32
	if n := len(t.free); n > 0 {
		id = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		t.n = append(t.n, node[K, G, A]{})
		id = int32(len(t.n) - 1)
	}
	nd := &t.n[id]
	nd.p, nd.l, nd.r, nd.lt = nilID, nilID, nilID, nilID
	nd.kind = kd
	nd.rev, nd.pendP, nd.pendA = false, false, false
	nd.sz, nd.asz = 0, 0
	nd.key = k
	nd.agg, nd.rag = t.pol.AggUnit(), t.pol.AggUnit()
	nd.vag, nd.aag = t.pol.AggUnit(), t.pol.AggUnit()
	nd.lzPath, nd.lzAll = t.pol.ActUnit(), t.pol.ActUnit()

	return id
}

// freeNode returns an excised edge or rake node to the free-list.
func (t *Tree[K, G, A, P]) freeNode(x int32) {
	t.n[x].p, t.n[x].l, t.n[x].r, t.n[x].lt = nilID, nilID, nilID, nilID
	t.free = append(t.free, x)
}

// isPathRoot reports whether x heads its path splay tree: no parent,
// a rake-node parent, or a vertex holding x through lt.
func (t *Tree[K, G, A, P]) isPathRoot(x int32) bool {
	p := t.n[x].p

	return p == nilID || t.n[p].kind == kindRake || (t.n[p].l != x && t.n[p].r != x)
}

// flip reverses x's path subtree: children and direction aggregates
// swap eagerly, the pending bit defers the grandchildren. Rake trees
// hang off lt and are untouched by reversal.
func (t *Tree[K, G, A, P]) flip(x int32) {
	nd := &t.n[x]
	nd.l, nd.r = nd.r, nd.l
	if !t.sym {
		nd.agg, nd.rag = nd.rag, nd.agg
	}
	nd.rev = !nd.rev
}

// applyPath applies an action to the path sequence of x's subtree:
// vertex keys and path aggregates now, children deferred through
// lzPath. Edge keys and everything behind lt stay as they are.
func (t *Tree[K, G, A, P]) applyPath(x int32, a A) {
	nd := &t.n[x]
	if nd.kind == kindVertex {
		nd.key = t.pol.ApplyKey(a, nd.key)
	}
	nd.agg = t.pol.ApplyAgg(a, nd.agg, int(nd.sz))
	if t.sym {
		nd.rag = nd.agg
	} else {
		nd.rag = t.pol.ApplyAgg(a, nd.rag, int(nd.sz))
	}
	nd.aag = t.pol.Merge(nd.agg, t.pol.KeyUnit(), nd.vag)
	nd.lzPath = t.pol.Compose(a, nd.lzPath)
	nd.pendP = true
}

// applyAll applies an action to every vertex below x, rake trees
// included: caches now, children deferred through lzAll.
func (t *Tree[K, G, A, P]) applyAll(x int32, a A) {
	nd := &t.n[x]
	if nd.kind == kindRake {
		nd.aag = t.pol.ApplyAgg(a, nd.aag, int(nd.asz))
		nd.vag = nd.aag
	} else {
		if nd.kind == kindVertex {
			nd.key = t.pol.ApplyKey(a, nd.key)
		}
		nd.agg = t.pol.ApplyAgg(a, nd.agg, int(nd.sz))
		if t.sym {
			nd.rag = nd.agg
		} else {
			nd.rag = t.pol.ApplyAgg(a, nd.rag, int(nd.sz))
		}
		nd.vag = t.pol.ApplyAgg(a, nd.vag, int(nd.asz-nd.sz))
		nd.aag = t.pol.Merge(nd.agg, t.pol.KeyUnit(), nd.vag)
	}
	nd.lzAll = t.pol.Compose(a, nd.lzAll)
	nd.pendA = true
}

// push moves x's deferred state one level down: reversal first, then
// the subtree-wide action, then the path action. Must run before
// inspecting x's children.
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
	if nd.pendA {
		a := nd.lzAll
		if nd.l != nilID {
			t.applyAll(nd.l, a)
		}
		if nd.r != nilID {
			t.applyAll(nd.r, a)
		}
		if nd.lt != nilID {
			t.applyAll(nd.lt, a)
		}
		nd.lzAll = t.pol.ActUnit()
		nd.pendA = false
	}
	if nd.pendP {
		a := nd.lzPath
		if nd.l != nilID {
			t.applyPath(nd.l, a)
		}
		if nd.r != nilID {
			t.applyPath(nd.r, a)
		}
		nd.lzPath = t.pol.ActUnit()
		nd.pendP = false
	}
}

// pull recomputes x's counts and aggregates from its children.
// Children caches must already be current.
func (t *Tree[K, G, A, P]) pull(x int32) {
	nd := &t.n[x]
	unit := t.pol.AggUnit()
	if nd.kind == kindRake {
		la, ra := unit, unit
		nd.asz = 0
		if l := nd.l; l != nilID {
			nd.asz += t.n[l].asz
			la = t.n[l].aag
		}
		if r := nd.r; r != nilID {
			nd.asz += t.n[r].asz
			ra = t.n[r].aag
		}
		nd.sz = 0
		nd.agg, nd.rag = unit, unit
		nd.aag = t.pol.Merge(la, t.pol.KeyUnit(), ra)
		nd.vag = nd.aag

		return
	}
	lagg, lrag, lvag := unit, unit, unit
	ragg, rrag, rvag := unit, unit, unit
	if nd.kind == kindVertex {
		nd.sz, nd.asz = 1, 1
	} else {
		nd.sz, nd.asz = 0, 0
	}
	if l := nd.l; l != nilID {
		nd.sz += t.n[l].sz
		nd.asz += t.n[l].asz
		lagg, lrag, lvag = t.n[l].agg, t.n[l].rag, t.n[l].vag
	}
	if r := nd.r; r != nilID {
		nd.sz += t.n[r].sz
		nd.asz += t.n[r].asz
		ragg, rrag, rvag = t.n[r].agg, t.n[r].rag, t.n[r].vag
	}
	nd.agg = t.pol.Merge(lagg, nd.key, ragg)
	if t.sym {
		nd.rag = nd.agg
	} else {
		nd.rag = t.pol.Merge(rrag, nd.key, lrag)
	}
	nd.vag = t.pol.Merge(lvag, t.pol.KeyUnit(), rvag)
	if lt := nd.lt; lt != nilID {
		nd.asz += t.n[lt].asz
		nd.vag = t.pol.Merge(nd.vag, t.pol.KeyUnit(), t.n[lt].aag)
	}
	nd.aag = t.pol.Merge(nd.agg, t.pol.KeyUnit(), nd.vag)
}

// rotate lifts x above its splay parent, preserving in-order layout.
// When p headed its tree, x inherits the attachment: a rake parent's
// child slot or the owning vertex's lt.
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
		switch {
		case t.n[g].l == p:
			t.n[g].l = x
		case t.n[g].r == p:
			t.n[g].r = x
		case t.n[g].lt == p:
			t.n[g].lt = x
		}
	}
	t.pull(p)
	t.pull(x)
}

// splayPath rotates x to the head of its path splay tree, pushing the
// whole root-to-x spine top-down first so every rotation sees clean
// nodes.
func (t *Tree[K, G, A, P]) splayPath(x int32) {
	t.scratch = t.scratch[:0]
	for y := x; ; y = t.n[y].p {
		t.scratch = append(t.scratch, y)
		if t.isPathRoot(y) {
			break
		}
	}
	for i := len(t.scratch) - 1; i >= 0; i-- {
		t.push(t.scratch[i])
	}
	for !t.isPathRoot(x) {
		p := t.n[x].p
		if t.isPathRoot(p) {
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

// splayRake rotates q to the top of its rake tree. The caller must
// already have pushed q's rake ancestors.
func (t *Tree[K, G, A, P]) splayRake(q int32) {
	for {
		p := t.n[q].p
		if t.n[p].kind != kindRake {
			return
		}
		g := t.n[p].p
		if t.n[g].kind != kindRake {
			t.rotate(q)
			continue
		}
		if (t.n[g].l == p) == (t.n[p].l == q) {
			t.rotate(p) // zig-zig
			t.rotate(q)
		} else {
			t.rotate(q) // zig-zag
			t.rotate(q)
		}
	}
}

// rakeAttach hangs path root rt as a light subtree of w, growing w's
// rake tree by one rake node when it is not empty. The caller pulls w.
func (t *Tree[K, G, A, P]) rakeAttach(w, rt int32) {
	lt := t.n[w].lt
	if lt == nilID {
		t.n[w].lt = rt
		t.n[rt].p = w

		return
	}
	q := t.alloc(kindRake, t.pol.KeyUnit())
	t.n[q].l = lt
	t.n[q].r = rt
	t.n[lt].p = q
	t.n[rt].p = q
	t.n[q].p = w
	t.n[w].lt = q
	t.pull(q)
}

// rakeRemove takes path root pr out of w's rake tree, freeing the rake
// node that held it. The chain from w down to pr must be pushed.
func (t *Tree[K, G, A, P]) rakeRemove(w, pr int32) {
	if t.n[pr].p == w {
		t.n[w].lt = nilID
		t.n[pr].p = nilID

		return
	}
	q := t.n[pr].p
	s := t.n[q].l
	if s == pr {
		s = t.n[q].r
	}
	g := t.n[q].p
	t.n[s].p = g
	if g == w {
		t.n[w].lt = s
	} else if t.n[g].l == q {
		t.n[g].l = s
	} else {
		t.n[g].r = s
	}
	t.n[pr].p = nilID
	t.freeNode(q)
	if g != w {
		// g is a rake node whose caches still count the freed pair;
		// re-pull it before splaying, since the splay rotates zero
		// times when g already tops its rake tree.
		t.pull(g)
		t.splayRake(g)
	}
}

// pushRakeChain pushes the rake nodes between w and path root pr,
// top-down. w itself must already be pushed.
func (t *Tree[K, G, A, P]) pushRakeChain(w, pr int32) {
	t.scratch = t.scratch[:0]
	for y := t.n[pr].p; y != w; y = t.n[y].p {
		t.scratch = append(t.scratch, y)
	}
	for i := len(t.scratch) - 1; i >= 0; i-- {
		t.push(t.scratch[i])
	}
}

// dropRight demotes x's preferred child, if any, into x's rake tree.
// The caller pulls x.
func (t *Tree[K, G, A, P]) dropRight(x int32) {
	r := t.n[x].r
	if r == nilID {
		return
	}
	t.n[x].r = nilID
	t.rakeAttach(x, r)
}

// access exposes the root-to-v path: afterwards v heads a path splay
// tree whose in-order sequence is exactly that path, every other
// subtree hanging in a rake tree along it.
func (t *Tree[K, G, A, P]) access(v int32) {
	t.splayPath(v)
	t.dropRight(v)
	t.pull(v)
	for t.n[v].p != nilID {
		// v heads a light path tree; climb through its rake tree to
		// the owning vertex, then splice v in as the preferred child.
		w := t.n[v].p
		for t.n[w].kind == kindRake {
			w = t.n[w].p
		}
		t.splayPath(w)
		t.pushRakeChain(w, v)
		t.rakeRemove(w, v)
		t.dropRight(w)
		t.n[w].r = v
		t.n[v].p = w
		t.pull(w)
		t.splayPath(v)
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
