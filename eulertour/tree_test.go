// Package eulertour_test exercises the tour-sequence backend:
// component totals under link/cut churn, subtree operations, and arc
// recycling. Path queries are deliberately absent from this backend,
// so none are tested. The randomized cross-backend battery lives in
// the forest package.
package eulertour_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynforest/eulertour"
	"github.com/katalvlaran/dynforest/forest"
	"github.com/katalvlaran/dynforest/policy"
)

// Compile-time check: Tree implements the component-oriented contract.
var (
	_ forest.Forest                     = (*eulertour.Tree[int64, int64, int64, policy.SumAdd])(nil)
	_ forest.VertexOps[int64, int64]    = (*eulertour.Tree[int64, int64, int64, policy.SumAdd])(nil)
	_ forest.ComponentOps[int64, int64] = (*eulertour.Tree[int64, int64, int64, policy.SumAdd])(nil)
	_ forest.SubtreeOps[int64, int64]   = (*eulertour.Tree[int64, int64, int64, policy.SumAdd])(nil)
)

func newSumTour(values ...int64) *eulertour.Tree[int64, int64, int64, policy.SumAdd] {
	return eulertour.New[int64, int64, int64, policy.SumAdd](policy.SumAdd{}, values)
}

// ------------------------------------------------------------------------
// 1. Connectivity and component totals.
// ------------------------------------------------------------------------

func TestTour_ComponentTotals(t *testing.T) {
	et := newSumTour(1, 2, 4, 8, 16)
	require.True(t, et.Link(0, 1))
	require.True(t, et.Link(1, 2))
	require.True(t, et.Link(3, 4))

	require.True(t, et.Connected(0, 2))
	require.False(t, et.Connected(0, 3))
	require.Equal(t, int64(7), et.ComponentFold(0))
	require.Equal(t, int64(24), et.ComponentFold(4))
	require.Equal(t, 3, et.ComponentSize(2))
	require.Equal(t, 2, et.ComponentSize(3))

	et.ComponentApply(0, 10)
	require.Equal(t, int64(37), et.ComponentFold(1))
	require.Equal(t, int64(24), et.ComponentFold(3), "other component untouched")
}

func TestTour_LinkCutRejections(t *testing.T) {
	et := newSumTour(1, 2, 3)
	require.False(t, et.Link(1, 1), "self-loop")
	require.False(t, et.Cut(0, 1), "no edge yet")
	require.True(t, et.Link(0, 1))
	require.False(t, et.Link(1, 0), "duplicate edge, reversed")
	require.True(t, et.Link(1, 2))
	require.False(t, et.Link(0, 2), "cycle-forming link")
	require.False(t, et.Cut(0, 2), "connected but not adjacent")
	require.True(t, et.Cut(1, 0), "unordered endpoint pair")
	require.False(t, et.Connected(0, 2))
	require.True(t, et.Connected(1, 2))
}

// ------------------------------------------------------------------------
// 2. Cuts anywhere in the tour, both excision orders.
// ------------------------------------------------------------------------

func TestTour_CutMiddle(t *testing.T) {
	// Line 0-1-2-3-4; cutting an inner edge splits the circular tour
	// with the detached range on either side of the excised arcs.
	et := newSumTour(1, 2, 4, 8, 16)
	for i := 1; i < 5; i++ {
		require.True(t, et.Link(i-1, i))
	}

	require.True(t, et.Cut(2, 3))
	require.Equal(t, int64(1+2+4), et.ComponentFold(0))
	require.Equal(t, int64(8+16), et.ComponentFold(3))

	// Rebuild across the split the other way around and cut again.
	require.True(t, et.Link(4, 0))
	require.True(t, et.Cut(1, 2))
	require.Equal(t, int64(1+2+8+16), et.ComponentFold(1))
	require.Equal(t, int64(4), et.ComponentFold(2))
}

// ------------------------------------------------------------------------
// 3. Subtree operations ride on temporary cuts.
// ------------------------------------------------------------------------

func TestTour_SubtreeOps(t *testing.T) {
	// Line 0-1-2-3 with a branch 1-4.
	et := newSumTour(1, 2, 4, 8, 16)
	require.True(t, et.Link(0, 1))
	require.True(t, et.Link(1, 2))
	require.True(t, et.Link(2, 3))
	require.True(t, et.Link(1, 4))

	require.Equal(t, int64(4+8), et.SubtreeFold(2, 1))
	require.Equal(t, int64(1+2+16), et.SubtreeFold(1, 2), "complement side")

	et.SubtreeApply(2, 1, 5)
	require.Equal(t, int64(9+13), et.SubtreeFold(2, 1))
	require.Equal(t, int64(1+2+16), et.SubtreeFold(1, 2), "complement unchanged")
	require.True(t, et.Connected(0, 3), "edge restored after the fold")

	require.Panics(t, func() { et.SubtreeFold(0, 3) }, "not a live edge")
}

// ------------------------------------------------------------------------
// 4. Arc recycling under churn.
// ------------------------------------------------------------------------

func TestTour_ArcReuse(t *testing.T) {
	const n = 32
	values := make([]int64, n)
	for i := range values {
		values[i] = int64(i)
	}
	et := newSumTour(values...)

	var want int64
	for i := range values {
		want += values[i]
	}

	// Repeatedly rebuild the spanning line with alternating endpoints;
	// every round frees n-1 edges worth of arcs and reuses them.
	for round := 0; round < 8; round++ {
		for i := 1; i < n; i++ {
			if round%2 == 0 {
				require.True(t, et.Link(i-1, i))
			} else {
				require.True(t, et.Link(i, i-1))
			}
		}
		require.Equal(t, want, et.ComponentFold(n/2))
		require.Equal(t, n, et.ComponentSize(0))
		for i := 1; i < n; i++ {
			require.True(t, et.Cut(i-1, i))
		}
		require.Equal(t, 1, et.ComponentSize(0))
	}
}

// ------------------------------------------------------------------------
// 5. Vertex operations and validation.
// ------------------------------------------------------------------------

func TestTour_VertexOps(t *testing.T) {
	et := newSumTour(5, 7)
	require.Equal(t, int64(5), et.VertexGet(0))
	et.VertexSet(0, 9)
	et.VertexApply(1, -2)
	require.Equal(t, int64(9), et.VertexGet(0))
	require.Equal(t, int64(5), et.VertexGet(1))
	require.Equal(t, 2, et.Len())

	require.True(t, et.Link(0, 1))
	et.ComponentApply(0, 1)
	require.Equal(t, int64(10), et.VertexGet(0), "lazy action reaches the vertex")
}

func TestTour_MinPolicy(t *testing.T) {
	mn := eulertour.New[int64, int64, int64, policy.MinAdd](policy.MinAdd{}, []int64{9, 4, 7})
	require.True(t, mn.Link(0, 1))
	require.True(t, mn.Link(1, 2))
	require.Equal(t, int64(4), mn.ComponentFold(2))
	mn.ComponentApply(0, 3)
	require.Equal(t, int64(7), mn.ComponentFold(0))
}

func TestTour_RangePanics(t *testing.T) {
	et := newSumTour(1, 2)
	require.Panics(t, func() { et.VertexGet(2) })
	require.Panics(t, func() { et.Link(-1, 0) })
}
