// Package linkcut_test: SubtreeTree coverage. The int64 specialization
// carries virtual-subtree sums, so the interesting cases are subtree
// deltas under re-rooting, component actions leaking (or not) across
// cuts, and the snapshot reconciliation exercised by deep relink
// churn.
package linkcut_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynforest/forest"
	"github.com/katalvlaran/dynforest/linkcut"
)

// Compile-time check: SubtreeTree implements the entire contract.
var (
	_ forest.Forest                     = (*linkcut.SubtreeTree)(nil)
	_ forest.VertexOps[int64, int64]    = (*linkcut.SubtreeTree)(nil)
	_ forest.PathOps[int64, int64]      = (*linkcut.SubtreeTree)(nil)
	_ forest.ComponentOps[int64, int64] = (*linkcut.SubtreeTree)(nil)
	_ forest.SubtreeOps[int64, int64]   = (*linkcut.SubtreeTree)(nil)
)

// ------------------------------------------------------------------------
// 1. Component totals across links and cuts.
// ------------------------------------------------------------------------

func TestSubtreeTree_ComponentTotals(t *testing.T) {
	st := linkcut.NewSubtree([]int64{1, 2, 4, 8, 16})
	require.True(t, st.Link(0, 1))
	require.True(t, st.Link(1, 2))
	require.True(t, st.Link(3, 4))

	require.Equal(t, int64(7), st.ComponentFold(0))
	require.Equal(t, int64(24), st.ComponentFold(4))
	require.Equal(t, 3, st.ComponentSize(2))

	st.ComponentApply(0, 10)
	require.Equal(t, int64(37), st.ComponentFold(1))
	require.Equal(t, int64(24), st.ComponentFold(3), "other component untouched")

	require.True(t, st.Cut(1, 2))
	require.Equal(t, int64(11+12), st.ComponentFold(0))
	require.Equal(t, int64(14), st.ComponentFold(2))
}

// ------------------------------------------------------------------------
// 2. Subtree folds are orientation-sensitive and root-independent.
// ------------------------------------------------------------------------

func TestSubtreeTree_Orientation(t *testing.T) {
	// Line 0-1-2-3 with a branch 1-4.
	st := linkcut.NewSubtree([]int64{1, 2, 4, 8, 16})
	require.True(t, st.Link(0, 1))
	require.True(t, st.Link(1, 2))
	require.True(t, st.Link(2, 3))
	require.True(t, st.Link(1, 4))

	require.Equal(t, int64(4+8), st.SubtreeFold(2, 1))
	require.Equal(t, int64(1+2+16), st.SubtreeFold(1, 2), "complement side")

	// Re-rooting must not change edge-relative subtrees.
	st.MakeRoot(3)
	require.Equal(t, int64(4+8), st.SubtreeFold(2, 1))
	require.Equal(t, int64(16), st.SubtreeFold(4, 1))

	require.Panics(t, func() { st.SubtreeFold(0, 3) }, "not a live edge")
}

func TestSubtreeTree_SubtreeApplyDelta(t *testing.T) {
	st := linkcut.NewSubtree([]int64{1, 2, 3, 4})
	require.True(t, st.Link(0, 1))
	require.True(t, st.Link(1, 2))
	require.True(t, st.Link(2, 3))

	before := st.SubtreeFold(2, 1) // {2, 3}
	require.Equal(t, int64(7), before)

	st.SubtreeApply(2, 1, 5)
	require.Equal(t, before+5*2, st.SubtreeFold(2, 1))

	// The cut-then-relink pattern leaves the component rooted at parent.
	require.Equal(t, 1, st.FindRoot(3))

	require.Equal(t, int64(1+2), st.SubtreeFold(1, 2), "complement unchanged")
	require.Equal(t, 2, st.FindRoot(3), "parent side of the last fold")
	require.Equal(t, int64(8), st.VertexGet(2))
	require.Equal(t, int64(2), st.VertexGet(1))
}

// ------------------------------------------------------------------------
// 3. Path operations still hold on the subtree variant.
// ------------------------------------------------------------------------

func TestSubtreeTree_PathOps(t *testing.T) {
	st := linkcut.NewSubtree([]int64{1, 2, 3, 4, 5})
	for i := 1; i < 5; i++ {
		require.True(t, st.Link(i-1, i))
	}

	agg, ok := st.PathFold(1, 3)
	require.True(t, ok)
	require.Equal(t, int64(2+3+4), agg)

	require.True(t, st.PathApply(0, 2, 10))
	require.Equal(t, int64(11+12+13+4+5), st.ComponentFold(4), "component sees path deltas")

	n, ok := st.PathLen(4, 0)
	require.True(t, ok)
	require.Equal(t, 5, n)

	got, ok := st.PathKth(4, 0, 1)
	require.True(t, ok)
	require.Equal(t, 3, got)

	_, ok = st.PathFold(0, 0)
	require.True(t, ok)
}

// ------------------------------------------------------------------------
// 4. Virtual-sum reconciliation under churn.
// ------------------------------------------------------------------------

// Star re-wiring interleaved with component actions is the worst case
// for the lazy snapshot bookkeeping: every relink promotes a virtual
// child that must first collect the deltas accumulated above it.
func TestSubtreeTree_ChurnReconciliation(t *testing.T) {
	const n = 64
	values := make([]int64, n)
	for i := range values {
		values[i] = 1
	}
	st := linkcut.NewSubtree(values)
	total := make([]int64, n)
	for i := range total {
		total[i] = 1
	}

	for i := 1; i < n; i++ {
		require.True(t, st.Link(i, 0))
	}
	st.ComponentApply(0, 2) // everyone 1→3
	for i := range total {
		total[i] = 3
	}

	// Detach every even leaf, bump the remaining component, re-attach.
	for i := 2; i < n; i += 2 {
		require.True(t, st.Cut(i, 0))
	}
	st.ComponentApply(0, 1)
	total[0]++
	total[1]++
	for i := 3; i < n; i += 2 {
		total[i]++
	}
	for i := 2; i < n; i += 2 {
		require.True(t, st.Link(i, 0))
	}

	var want int64
	for _, k := range total {
		want += k
	}
	require.Equal(t, want, st.ComponentFold(5))
	require.Equal(t, n, st.ComponentSize(0))
	for _, v := range []int{0, 1, 2, 3, n - 2, n - 1} {
		require.Equal(t, total[v], st.VertexGet(v), "vertex %d", v)
	}
	require.Equal(t, total[7], st.SubtreeFold(7, 0), "leaf subtree")
	require.Equal(t, want-total[7], st.SubtreeFold(0, 7), "complement of a leaf")
}
