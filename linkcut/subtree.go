// Package linkcut: the subtree/component variant.
//
// SubtreeTree keeps the same preferred-path splay skeleton as Tree but
// adds per-node bookkeeping for the subtrees hanging off virtual
// (non-preferred) edges, which makes whole-component and subtree
// queries answerable from the node access exposes. The price is the
// int64 additive specialization: reconciling deferred virtual actions
// subtracts snapshots, so actions must be invertible.

package linkcut

import "fmt"

// snode is one node of SubtreeTree; node i represents vertex i.
// All sums use wrapping int64 addition.
type snode struct {
	p, l, r int32 // splay parent and children; p doubles as path-parent
	rev     bool

	key int64
	sz  int32 // splay-subtree vertex count
	sum int64 // splay-subtree key sum

	vsz  int32 // vertices in this node's own virtual children's subtrees
	vsum int64 // their key sum, current up to virLazy
	asz  int32 // sz plus every vsz in the splay subtree
	asum int64 // sum plus every vsum in the splay subtree

	lzPath int64 // pending add for keys in the splay subtree only
	lzAll  int64 // pending add for the splay subtree and all virtual descendants

	virLazy int64 // per-vertex add already accounted into vsum but not pushed
	virSnap int64 // parent's virLazy when this node last went virtual
}

// SubtreeTree is a Link-Cut Tree with virtual-subtree aggregates,
// specialized to Key = Agg = Act = int64 with wrapping addition. It
// implements every forest interface for those types.
type SubtreeTree struct {
	n       []snode
	scratch []int32
}

// NewSubtree builds an edgeless forest over len(values) vertices;
// vertex i starts with key values[i].
// Complexity: O(n).
func NewSubtree(values []int64) *SubtreeTree {
	t := &SubtreeTree{n: make([]snode, len(values))}
	for i := range values {
		nd := &t.n[i]
		nd.p, nd.l, nd.r = nilID, nilID, nilID
		nd.key = values[i]
		nd.sz, nd.asz = 1, 1
		nd.sum, nd.asum = values[i], values[i]
	}

	return t
}

// Len returns the vertex count.
func (t *SubtreeTree) Len() int { return len(t.n) }

// Link adds the edge (u, v); false when u == v or already connected.
// Complexity: amortized O(log n).
func (t *SubtreeTree) Link(u, v int) bool {
	t.check(u)
	t.check(v)
	if u == v || t.Connected(u, v) {
		return false
	}
	ui, vi := int32(u), int32(v)
	t.makeroot(ui)
	t.access(vi) // v heads its root path: its vir fields are the ones to grow
	t.n[ui].p = vi
	t.vAttach(vi, ui)
	t.pull(vi)

	return true
}

// Cut removes the edge (u, v); false when no such edge is live.
// Complexity: amortized O(log n).
func (t *SubtreeTree) Cut(u, v int) bool {
	t.check(u)
	t.check(v)
	if u == v {
		return false
	}
	ui, vi := int32(u), int32(v)
	t.makeroot(ui)
	t.access(vi)
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
func (t *SubtreeTree) Connected(u, v int) bool {
	t.check(u)
	t.check(v)
	if u == v {
		return true
	}
	t.access(int32(u))
	t.access(int32(v))

	return t.n[u].p != nilID
}

// VertexGet returns v's key.
func (t *SubtreeTree) VertexGet(v int) int64 {
	t.check(v)
	t.access(int32(v))

	return t.n[v].key
}

// VertexSet overwrites v's key.
func (t *SubtreeTree) VertexSet(v int, k int64) {
	t.check(v)
	t.access(int32(v))
	t.n[v].key = k
	t.pull(int32(v))
}

// VertexApply adds a to v's key alone.
func (t *SubtreeTree) VertexApply(v int, a int64) {
	t.check(v)
	t.access(int32(v))
	t.n[v].key += a
	t.pull(int32(v))
}

// MakeRoot re-roots v's component at v.
func (t *SubtreeTree) MakeRoot(v int) {
	t.check(v)
	t.makeroot(int32(v))
}

// FindRoot returns the root of v's component.
func (t *SubtreeTree) FindRoot(v int) int {
	t.check(v)
	t.access(int32(v))
	x := int32(v)
	t.push(x)
	for t.n[x].l != nilID {
		x = t.n[x].l
		t.push(x)
	}
	t.splay(x)

	return int(x)
}

// PathFold sums the keys along the u→v path.
// Complexity: amortized O(log n).
func (t *SubtreeTree) PathFold(u, v int) (int64, bool) {
	t.check(u)
	t.check(v)
	if !t.expose(int32(u), int32(v)) {
		return 0, false
	}

	return t.n[v].sum, true
}

// PathApply adds a to every vertex on the u→v path.
// Complexity: amortized O(log n).
func (t *SubtreeTree) PathApply(u, v int, a int64) bool {
	t.check(u)
	t.check(v)
	if !t.expose(int32(u), int32(v)) {
		return false
	}
	t.applyPath(int32(v), a)

	return true
}

// PathLen returns the number of vertices on the u→v path.
func (t *SubtreeTree) PathLen(u, v int) (int, bool) {
	t.check(u)
	t.check(v)
	if !t.expose(int32(u), int32(v)) {
		return 0, false
	}

	return int(t.n[v].sz), true
}

// PathKth returns the k-th vertex of the u→v path, counting from u.
func (t *SubtreeTree) PathKth(u, v, k int) (int, bool) {
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
			t.splay(x)

			return int(x), true
		default:
			k -= lsz + 1
			x = t.n[x].r
		}
	}
}

// ComponentFold sums the keys of v's whole component.
// Complexity: amortized O(log n).
func (t *SubtreeTree) ComponentFold(v int) int64 {
	t.check(v)
	t.access(int32(v))

	return t.n[v].asum
}

// ComponentApply adds a to every vertex of v's component.
// Complexity: amortized O(log n).
func (t *SubtreeTree) ComponentApply(v int, a int64) {
	t.check(v)
	t.access(int32(v))
	t.applyAll(int32(v), a)
}

// ComponentSize returns the number of vertices in v's component.
// Complexity: amortized O(log n).
func (t *SubtreeTree) ComponentSize(v int) int {
	t.check(v)
	t.access(int32(v))

	return int(t.n[v].asz)
}

// SubtreeFold sums child's side of the live (child, parent) edge via a
// temporary cut. Passing a non-edge is a programmer error.
// Complexity: amortized O(log n).
func (t *SubtreeTree) SubtreeFold(child, parent int) int64 {
	t.detach(child, parent)
	agg := t.ComponentFold(child)
	t.reattach(child, parent)

	return agg
}

// SubtreeApply adds a to every vertex on child's side of the
// (child, parent) edge via a temporary cut.
// Complexity: amortized O(log n).
func (t *SubtreeTree) SubtreeApply(child, parent int, a int64) {
	t.detach(child, parent)
	t.ComponentApply(child, a)
	t.reattach(child, parent)
}

// --- splay core --------------------------------------------------------

func (t *SubtreeTree) check(v int) {
	if v < 0 || v >= len(t.n) {
		panic(fmt.Sprintf("linkcut: vertex %d out of range [0,%d)", v, len(t.n)))
	}
}

func (t *SubtreeTree) detach(child, parent int) {
	if !t.Cut(child, parent) {
		panic(fmt.Sprintf("linkcut: (%d,%d) is not a live edge", child, parent))
	}
}

func (t *SubtreeTree) reattach(child, parent int) {
	if !t.Link(child, parent) {
		panic(fmt.Sprintf("linkcut: relink of (%d,%d) failed", child, parent))
	}
}

func (t *SubtreeTree) isRoot(x int32) bool {
	p := t.n[x].p

	return p == nilID || (t.n[p].l != x && t.n[p].r != x)
}

func (t *SubtreeTree) flip(x int32) {
	nd := &t.n[x]
	nd.l, nd.r = nd.r, nd.l
	nd.rev = !nd.rev
}

// applyPath adds a to every key in x's splay subtree (path vertices
// only; virtual descendants are untouched).
func (t *SubtreeTree) applyPath(x int32, a int64) {
	nd := &t.n[x]
	nd.key += a
	nd.sum += int64(nd.sz) * a
	nd.asum += int64(nd.sz) * a
	nd.lzPath += a
}

// applyAll adds a to every key in x's splay subtree and in every
// virtual subtree hanging anywhere below it. The virtual share is
// accounted immediately (vsum, virLazy) and settled per child on
// promotion.
func (t *SubtreeTree) applyAll(x int32, a int64) {
	nd := &t.n[x]
	nd.key += a
	nd.sum += int64(nd.sz) * a
	nd.asum += int64(nd.asz) * a
	nd.vsum += int64(nd.vsz) * a
	nd.virLazy += a
	nd.lzAll += a
}

// vAttach records c, a splay root with current caches, as a fresh
// virtual child of x. The snapshot pins the reconciliation baseline.
func (t *SubtreeTree) vAttach(x, c int32) {
	t.n[x].vsum += t.n[c].asum
	t.n[x].vsz += t.n[c].asz
	t.n[c].virSnap = t.n[x].virLazy
}

// vPromote settles and removes the virtual child c of x: c first
// receives exactly the actions x accumulated since c's snapshot, then
// its (now current) totals leave x's virtual account.
func (t *SubtreeTree) vPromote(x, c int32) {
	if d := t.n[x].virLazy - t.n[c].virSnap; d != 0 {
		t.applyAll(c, d)
	}
	t.n[x].vsum -= t.n[c].asum
	t.n[x].vsz -= t.n[c].asz
}

// push moves x's deferred state one level down: reversal, then the
// whole-subtree channel, then the path channel.
func (t *SubtreeTree) push(x int32) {
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
	if a := nd.lzAll; a != 0 {
		if nd.l != nilID {
			t.applyAll(nd.l, a)
		}
		if nd.r != nilID {
			t.applyAll(nd.r, a)
		}
		nd.lzAll = 0
	}
	if a := nd.lzPath; a != 0 {
		if nd.l != nilID {
			t.applyPath(nd.l, a)
		}
		if nd.r != nilID {
			t.applyPath(nd.r, a)
		}
		nd.lzPath = 0
	}
}

// pull recomputes x's caches from its children and its own virtual
// account. Children caches must already be current.
func (t *SubtreeTree) pull(x int32) {
	nd := &t.n[x]
	nd.sz = 1
	nd.sum = nd.key
	nd.asz = 1 + nd.vsz
	nd.asum = nd.key + nd.vsum
	if l := nd.l; l != nilID {
		nd.sz += t.n[l].sz
		nd.sum += t.n[l].sum
		nd.asz += t.n[l].asz
		nd.asum += t.n[l].asum
	}
	if r := nd.r; r != nilID {
		nd.sz += t.n[r].sz
		nd.sum += t.n[r].sum
		nd.asz += t.n[r].asz
		nd.asum += t.n[r].asum
	}
}

func (t *SubtreeTree) rotate(x int32) {
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
	if g == nilID || (t.n[g].l != p && t.n[g].r != p) {
		// p headed this path tree; x does now, so the virtual-attach
		// snapshot must move with the headship for vPromote to settle
		// against the right baseline.
		t.n[x].virSnap = t.n[p].virSnap
	} else if t.n[g].l == p {
		t.n[g].l = x
	} else {
		t.n[g].r = x
	}
	t.pull(p)
	t.pull(x)
}

func (t *SubtreeTree) splay(x int32) {
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
			t.rotate(p)
			t.rotate(x)
		} else {
			t.rotate(x)
			t.rotate(x)
		}
	}
}

// access exposes the root-to-v path. Preferred-child switches move
// subtrees between the preferred and virtual worlds: the demoted child
// is snapshotted in, the promoted one settled out.
func (t *SubtreeTree) access(v int32) {
	t.splay(v)
	if r := t.n[v].r; r != nilID {
		t.n[v].r = nilID
		t.vAttach(v, r)
		t.pull(v)
	}
	for t.n[v].p != nilID {
		w := t.n[v].p
		t.splay(w)
		if r := t.n[w].r; r != nilID {
			t.vAttach(w, r)
		}
		t.vPromote(w, v)
		t.n[w].r = v
		t.pull(w)
		t.splay(v)
	}
}

func (t *SubtreeTree) makeroot(v int32) {
	t.access(v)
	t.flip(v)
}

func (t *SubtreeTree) expose(u, v int32) bool {
	t.makeroot(u)
	t.access(v)

	return u == v || t.n[u].p != nilID
}
