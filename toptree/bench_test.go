package toptree_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dynforest/policy"
	"github.com/katalvlaran/dynforest/toptree"
)

func benchForest(n int, rng *rand.Rand) (*toptree.Tree[int64, int64, int64, policy.SumAdd], []int) {
	values := make([]int64, n)
	for i := range values {
		values[i] = rng.Int63n(1000)
	}
	tp := toptree.New[int64, int64, int64, policy.SumAdd](policy.SumAdd{}, values)
	parent := make([]int, n)
	for i := 1; i < n; i++ {
		parent[i] = rng.Intn(i)
		tp.LinkWithEdge(i, parent[i], rng.Int63n(100))
	}

	return tp, parent
}

func BenchmarkTree_PathFold(b *testing.B) {
	const n = 1 << 13
	rng := rand.New(rand.NewSource(1))
	tp, _ := benchForest(n, rng)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tp.PathFold(rng.Intn(n), rng.Intn(n))
	}
}

func BenchmarkTree_ComponentFold(b *testing.B) {
	const n = 1 << 13
	rng := rand.New(rand.NewSource(1))
	tp, _ := benchForest(n, rng)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tp.ComponentFold(rng.Intn(n))
	}
}

func BenchmarkTree_SubtreeFold(b *testing.B) {
	const n = 1 << 13
	rng := rand.New(rand.NewSource(1))
	tp, parent := benchForest(n, rng)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := 1 + rng.Intn(n-1)
		tp.SubtreeFold(c, parent[c])
	}
}
