// Package linkcut_test exercises the path-oriented Tree: scripted
// scenarios per policy, root side-effect semantics, order statistics,
// and a deep-path stress against a locally computed expectation. The
// randomized cross-backend battery lives in the forest package.
package linkcut_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynforest/forest"
	"github.com/katalvlaran/dynforest/linkcut"
	"github.com/katalvlaran/dynforest/policy"
)

// Compile-time check: Tree implements the path-oriented contract.
var (
	_ forest.Forest                  = (*linkcut.Tree[int64, int64, int64, policy.SumAdd])(nil)
	_ forest.VertexOps[int64, int64] = (*linkcut.Tree[int64, int64, int64, policy.SumAdd])(nil)
	_ forest.PathOps[int64, int64]   = (*linkcut.Tree[int64, int64, int64, policy.SumAdd])(nil)
)

func newSumTree(values ...int64) *linkcut.Tree[int64, int64, int64, policy.SumAdd] {
	return linkcut.New[int64, int64, int64, policy.SumAdd](policy.SumAdd{}, values)
}

// ------------------------------------------------------------------------
// 1. The scripted sum scenario.
// ------------------------------------------------------------------------

func TestTree_SumScenario(t *testing.T) {
	lc := newSumTree(1, 2, 3)

	require.True(t, lc.Link(0, 1))
	require.True(t, lc.Link(1, 2))

	agg, ok := lc.PathFold(0, 2)
	require.True(t, ok)
	require.Equal(t, int64(6), agg)

	require.True(t, lc.Cut(1, 2))
	require.False(t, lc.Connected(0, 2))

	_, ok = lc.PathFold(1, 2)
	require.False(t, ok)
}

// ------------------------------------------------------------------------
// 2. Link/Cut edge cases.
// ------------------------------------------------------------------------

func TestTree_LinkRejections(t *testing.T) {
	lc := newSumTree(1, 2, 3)
	require.False(t, lc.Link(1, 1), "self-loop")
	require.True(t, lc.Link(0, 1))
	require.False(t, lc.Link(0, 1), "duplicate edge")
	require.True(t, lc.Link(1, 2))
	require.False(t, lc.Link(0, 2), "cycle-forming link")
}

func TestTree_CutRejections(t *testing.T) {
	lc := newSumTree(1, 2, 3)
	require.False(t, lc.Cut(0, 1), "no edge yet")
	require.True(t, lc.Link(0, 1))
	require.True(t, lc.Link(1, 2))
	require.False(t, lc.Cut(0, 2), "connected but not adjacent")
	require.True(t, lc.Cut(1, 0), "unordered endpoint pair")
	require.False(t, lc.Connected(0, 1))
}

// ------------------------------------------------------------------------
// 3. Root side effects.
// ------------------------------------------------------------------------

func TestTree_RootSemantics(t *testing.T) {
	lc := newSumTree(0, 0, 0, 0)
	require.True(t, lc.Link(0, 1)) // merged root: root of 1's component = 1
	require.Equal(t, 1, lc.FindRoot(0))

	require.True(t, lc.Link(2, 1)) // merged root stays 1
	require.Equal(t, 1, lc.FindRoot(2))

	lc.MakeRoot(2)
	require.Equal(t, 2, lc.FindRoot(0))

	_, ok := lc.PathFold(0, 1) // re-roots at 0
	require.True(t, ok)
	require.Equal(t, 0, lc.FindRoot(2))

	require.True(t, lc.Cut(0, 1))
	require.Equal(t, 0, lc.FindRoot(0))
	require.Equal(t, 1, lc.FindRoot(1))
	require.Equal(t, 1, lc.FindRoot(2))

	require.False(t, lc.Cut(0, 3)) // fails, still re-roots at 0
	require.Equal(t, 0, lc.FindRoot(0))
}

// ------------------------------------------------------------------------
// 4. Path order and order statistics.
// ------------------------------------------------------------------------

func TestTree_PathOrder(t *testing.T) {
	c := linkcut.New[string, string, policy.NopAct, policy.ConcatNop](policy.ConcatNop{}, []string{"a", "b", "c", "d"})
	require.True(t, c.Link(0, 1))
	require.True(t, c.Link(1, 2))
	require.True(t, c.Link(2, 3))

	fwd, ok := c.PathFold(0, 3)
	require.True(t, ok)
	require.Equal(t, "abcd", fwd)

	rev, ok := c.PathFold(3, 0)
	require.True(t, ok)
	require.Equal(t, "dcba", rev)

	for k, want := range []int{3, 2, 1, 0} {
		got, ok := c.PathKth(3, 0, k)
		require.True(t, ok)
		require.Equal(t, want, got)
	}
	_, ok = c.PathKth(0, 3, 4)
	require.False(t, ok, "k out of range")
}

// ------------------------------------------------------------------------
// 5. Lazy path actions across re-linked shapes.
// ------------------------------------------------------------------------

func TestTree_PathApply(t *testing.T) {
	lc := newSumTree(1, 1, 1, 1, 1)
	// Star around 2: every leaf-to-leaf path runs through the center.
	for _, leaf := range []int{0, 1, 3, 4} {
		require.True(t, lc.Link(leaf, 2))
	}

	require.True(t, lc.PathApply(0, 4, 10)) // touches 0, 2, 4

	agg, ok := lc.PathFold(1, 3) // touches 1, 2, 3: only 2 was bumped
	require.True(t, ok)
	require.Equal(t, int64(1+11+1), agg)

	n, ok := lc.PathLen(0, 1)
	require.True(t, ok)
	require.Equal(t, 3, n)

	require.True(t, lc.PathApply(1, 1, 5), "single-vertex path is valid")
	require.Equal(t, int64(6), lc.VertexGet(1))
	require.Equal(t, int64(11), lc.VertexGet(0), "still carries the earlier delta")
}

func TestTree_MinPolicy(t *testing.T) {
	mn := linkcut.New[int64, int64, int64, policy.MinAdd](policy.MinAdd{}, []int64{9, 4, 7, 2})
	require.True(t, mn.Link(0, 1))
	require.True(t, mn.Link(1, 2))
	require.True(t, mn.Link(2, 3))

	agg, ok := mn.PathFold(0, 2)
	require.True(t, ok)
	require.Equal(t, int64(4), agg)

	require.True(t, mn.PathApply(0, 1, 10)) // 9→19, 4→14
	agg, ok = mn.PathFold(0, 3)
	require.True(t, ok)
	require.Equal(t, int64(2), agg)
}

// ------------------------------------------------------------------------
// 6. Deep-path stress: a long line, folded at every prefix.
// ------------------------------------------------------------------------

func TestTree_DeepLine(t *testing.T) {
	const n = 1000
	values := make([]int64, n)
	for i := range values {
		values[i] = int64(i)
	}
	lc := newSumTree(values...)
	for i := 1; i < n; i++ {
		require.True(t, lc.Link(i-1, i))
	}

	for _, end := range []int{1, 7, 99, 500, n - 1} {
		agg, ok := lc.PathFold(0, end)
		require.True(t, ok)
		require.Equal(t, int64(end)*int64(end+1)/2, agg)

		mid, ok := lc.PathKth(0, end, end/2)
		require.True(t, ok)
		require.Equal(t, end/2, mid)
	}

	// Sever the middle and verify both halves stay consistent.
	require.True(t, lc.Cut(n/2-1, n/2))
	require.False(t, lc.Connected(0, n-1))
	agg, ok := lc.PathFold(n/2, n-1)
	require.True(t, ok)
	var want int64
	for i := n / 2; i < n; i++ {
		want += int64(i)
	}
	require.Equal(t, want, agg)
}

// ------------------------------------------------------------------------
// 7. Vertex operations and validation.
// ------------------------------------------------------------------------

func TestTree_VertexOps(t *testing.T) {
	lc := newSumTree(5, 7)
	require.Equal(t, int64(5), lc.VertexGet(0))
	lc.VertexSet(0, 9)
	lc.VertexApply(1, -2)
	require.Equal(t, int64(9), lc.VertexGet(0))
	require.Equal(t, int64(5), lc.VertexGet(1))
	require.Equal(t, 2, lc.Len())
}

func TestTree_RangePanics(t *testing.T) {
	lc := newSumTree(1, 2)
	require.Panics(t, func() { lc.VertexGet(2) })
	require.Panics(t, func() { lc.Link(-1, 0) })
}
