// Package eulertour: the tree itself.

package eulertour

import (
	"fmt"

	"github.com/katalvlaran/dynforest/policy"
)

// nilID is the arena's null pointer.
const nilID int32 = -1

// enode is one token of a tour sequence. Tokens [0, n) are the vertex
// tokens; everything above is an arc token, recycled through the
// free-list.
type enode[K, G, A any] struct {
	p, l, r int32
	cnt     int32 // vertex tokens in this splay subtree
	vert    bool  // vertex token (arcs hold the unit key)
	pend    bool
	key     K
	agg     G // fold over the subtree's tokens in sequence order
	lz      A
}

// Tree is an Euler-Tour Tree, generic over a policy. It implements
// forest.Forest, forest.VertexOps, forest.ComponentOps and
// forest.SubtreeOps.
type Tree[K, G, A any, P policy.Policy[K, G, A]] struct {
	pol     P
	nv      int // vertex count; arena slots beyond it are arcs
	n       []enode[K, G, A]
	free    []int32               // arc ids ready for reuse
	edges   map[[2]int32][2]int32 // unordered endpoint pair → its two arc ids
	scratch []int32
}

// New builds an edgeless forest over len(values) vertices; vertex i
// starts with key values[i] and forms a one-token tour.
// Complexity: O(n).
func New[K, G, A any, P policy.Policy[K, G, A]](pol P, values []K) *Tree[K, G, A, P] {
	t := &Tree[K, G, A, P]{
		pol:   pol,
		nv:    len(values),
		n:     make([]enode[K, G, A], len(values)),
		edges: make(map[[2]int32][2]int32),
	}
	for i := range values {
		nd := &t.n[i]
		nd.p, nd.l, nd.r = nilID, nilID, nilID
		nd.cnt = 1
		nd.vert = true
		nd.key = values[i]
		nd.agg = pol.AggOf(values[i])
		nd.lz = pol.ActUnit()
	}

	return t
}

// Len returns the vertex count.
func (t *Tree[K, G, A, P]) Len() int { return t.nv }

// Link adds the edge (u, v); false when u == v or already connected.
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) Link(u, v int) bool {
	t.check(u)
	t.check(v)
	if u == v || t.Connected(u, v) {
		return false
	}
	ui, vi := int32(u), int32(v)
	t.reroot(ui)
	t.reroot(vi)
	a := t.allocArc() // crossing u→v
	b := t.allocArc() // crossing v→u
	t.edges[pairKey(ui, vi)] = [2]int32{a, b}
	// tour(u) + a + tour(v) + b, left to right.
	t.splay(ui)
	root := t.join(ui, a)
	t.splay(vi)
	root = t.join(root, vi)
	t.join(root, b)

	return true
}

// Cut removes the edge (u, v); false when no such edge is live. The
// sub-range between the edge's two arcs becomes its own tour, and both
// arcs go back to the free-list.
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) Cut(u, v int) bool {
	t.check(u)
	t.check(v)
	if u == v {
		return false
	}
	arcs, ok := t.edges[pairKey(int32(u), int32(v))]
	if !ok {
		return false
	}
	delete(t.edges, pairKey(int32(u), int32(v)))
	a, b := arcs[0], arcs[1]

	// Excise a: the tour splits into [L] a [R].
	t.splay(a)
	l, r := t.n[a].l, t.n[a].r
	t.orphan(l)
	t.orphan(r)
	t.freeArc(a)

	// Locate and excise b in whichever piece holds it.
	t.splay(b)
	bInLeft := l != nilID && (b == l || t.n[l].p != nilID)
	x, y := t.n[b].l, t.n[b].r
	t.orphan(x)
	t.orphan(y)
	t.freeArc(b)

	if bInLeft {
		// Circular tour was [x b y] a [r]: the detached component's
		// tour is y; x and r rejoin.
		t.joinAny(x, r)
	} else {
		// Tour was [l] a [x b y]: the detached tour is x; l and y
		// rejoin.
		t.joinAny(l, y)
	}

	return true
}

// Connected reports whether u and v share a tour.
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) Connected(u, v int) bool {
	t.check(u)
	t.check(v)
	if u == v {
		return true
	}
	t.splay(int32(u))
	t.splay(int32(v))

	return t.n[u].p != nilID
}

// VertexGet returns v's key.
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) VertexGet(v int) K {
	t.check(v)
	t.splay(int32(v))

	return t.n[v].key
}

// VertexSet overwrites v's key.
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) VertexSet(v int, k K) {
	t.check(v)
	t.splay(int32(v))
	t.n[v].key = k
	t.pull(int32(v))
}

// VertexApply applies an action to v's key alone.
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) VertexApply(v int, a A) {
	t.check(v)
	t.splay(int32(v))
	t.n[v].key = t.pol.ApplyKey(a, t.n[v].key)
	t.pull(int32(v))
}

// ComponentFold folds the keys of v's whole component (tour order).
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) ComponentFold(v int) G {
	t.check(v)
	t.splay(int32(v))

	return t.n[v].agg
}

// ComponentApply applies an action to every vertex of v's component.
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) ComponentApply(v int, a A) {
	t.check(v)
	t.splay(int32(v))
	t.applyAct(int32(v), a)
}

// ComponentSize returns the number of vertices in v's component.
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) ComponentSize(v int) int {
	t.check(v)
	t.splay(int32(v))

	return int(t.n[v].cnt)
}

// SubtreeFold folds child's side of the live (child, parent) edge via
// a temporary cut. Passing a non-edge is a programmer error.
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) SubtreeFold(child, parent int) G {
	t.detach(child, parent)
	agg := t.ComponentFold(child)
	t.reattach(child, parent)

	return agg
}

// SubtreeApply applies an action to child's side of the
// (child, parent) edge via a temporary cut.
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) SubtreeApply(child, parent int, a A) {
	t.detach(child, parent)
	t.ComponentApply(child, a)
	t.reattach(child, parent)
}

// --- splay core --------------------------------------------------------

func (t *Tree[K, G, A, P]) check(v int) {
	if v < 0 || v >= t.nv {
		panic(fmt.Sprintf("eulertour: vertex %d out of range [0,%d)", v, t.nv))
	}
}

func pairKey(u, v int32) [2]int32 {
	if u > v {
		u, v = v, u
	}

	return [2]int32{u, v}
}

func (t *Tree[K, G, A, P]) orphan(x int32) {
	if x != nilID {
		t.n[x].p = nilID
	}
}

func (t *Tree[K, G, A, P]) allocArc() int32 {
	var id int32
	if k := len(t.free); k > 0 {
		id = t.free[k-1]
		t.free = t.free[:k-1]
	} else {
		t.n = append(t.n, enode[K, G, A]{})
		id = int32(len(t.n) - 1)
	}
	nd := &t.n[id]
	nd.p, nd.l, nd.r = nilID, nilID, nilID
	nd.cnt = 0
	nd.vert = false
	nd.pend = false
	nd.key = t.pol.KeyUnit()
	nd.agg = t.pol.AggUnit()
	nd.lz = t.pol.ActUnit()

	return id
}

// freeArc returns an excised arc to the free-list; its id is dead
// until allocArc hands it out again.
func (t *Tree[K, G, A, P]) freeArc(x int32) {
	t.n[x].p, t.n[x].l, t.n[x].r = nilID, nilID, nilID
	t.free = append(t.free, x)
}

func (t *Tree[K, G, A, P]) applyAct(x int32, a A) {
	nd := &t.n[x]
	if nd.vert {
		nd.key = t.pol.ApplyKey(a, nd.key)
	}
	nd.agg = t.pol.ApplyAgg(a, nd.agg, int(nd.cnt))
	nd.lz = t.pol.Compose(a, nd.lz)
	nd.pend = true
}

func (t *Tree[K, G, A, P]) push(x int32) {
	nd := &t.n[x]
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

func (t *Tree[K, G, A, P]) pull(x int32) {
	nd := &t.n[x]
	lagg, ragg := t.pol.AggUnit(), t.pol.AggUnit()
	nd.cnt = 0
	if nd.vert {
		nd.cnt = 1
	}
	if l := nd.l; l != nilID {
		nd.cnt += t.n[l].cnt
		lagg = t.n[l].agg
	}
	if r := nd.r; r != nilID {
		nd.cnt += t.n[r].cnt
		ragg = t.n[r].agg
	}
	nd.agg = t.pol.Merge(lagg, nd.key, ragg)
}

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
		} else {
			t.n[g].r = x
		}
	}
	t.pull(p)
	t.pull(x)
}

func (t *Tree[K, G, A, P]) splay(x int32) {
	t.scratch = t.scratch[:0]
	for y := x; ; y = t.n[y].p {
		t.scratch = append(t.scratch, y)
		if t.n[y].p == nilID {
			break
		}
	}
	for i := len(t.scratch) - 1; i >= 0; i-- {
		t.push(t.scratch[i])
	}
	for t.n[x].p != nilID {
		p := t.n[x].p
		if t.n[p].p == nilID {
			t.rotate(x)
			continue
		}
		g := t.n[p].p
		if (t.n[g].l == p) == (t.n[p].l == x) {
			t.rotate(p)
			t.rotate(x)
		} else {
			t.rotate(x)
			t.rotate(x)
		}
	}
}

// join concatenates two sequences given their roots and returns the
// new root. Either may be nilID.
func (t *Tree[K, G, A, P]) join(a, b int32) int32 {
	if a == nilID {
		return b
	}
	if b == nilID {
		return a
	}
	// Splay a's rightmost token, then hang b after it.
	x := a
	t.push(x)
	for t.n[x].r != nilID {
		x = t.n[x].r
		t.push(x)
	}
	t.splay(x)
	t.n[x].r = b
	t.n[b].p = x
	t.pull(x)

	return x
}

// joinAny is join for possibly-nil halves left over from an excision.
func (t *Tree[K, G, A, P]) joinAny(a, b int32) {
	t.join(a, b)
}

// reroot rotates v's tour so that v's token comes first.
// Complexity: amortized O(log n).
func (t *Tree[K, G, A, P]) reroot(v int32) {
	t.splay(v)
	l := t.n[v].l
	if l == nilID {
		return
	}
	t.n[v].l = nilID
	t.n[l].p = nilID
	t.pull(v)
	t.join(v, l)
}

func (t *Tree[K, G, A, P]) detach(child, parent int) {
	if !t.Cut(child, parent) {
		panic(fmt.Sprintf("eulertour: (%d,%d) is not a live edge", child, parent))
	}
}

func (t *Tree[K, G, A, P]) reattach(child, parent int) {
	if !t.Link(child, parent) {
		panic(fmt.Sprintf("eulertour: relink of (%d,%d) failed", child, parent))
	}
}
