package linkcut_test

import (
	"fmt"

	"github.com/katalvlaran/dynforest/linkcut"
	"github.com/katalvlaran/dynforest/policy"
)

// ExampleTree maintains path sums over a forest that changes shape.
func ExampleTree() {
	lc := linkcut.New[int64, int64, int64, policy.SumAdd](policy.SumAdd{}, []int64{1, 2, 3, 4})

	lc.Link(0, 1)
	lc.Link(1, 2)
	lc.Link(2, 3)

	sum, _ := lc.PathFold(0, 3)
	fmt.Println("path 0→3:", sum)

	lc.Cut(1, 2)
	if _, ok := lc.PathFold(0, 3); !ok {
		fmt.Println("path 0→3: disconnected")
	}

	lc.Link(0, 3)
	sum, _ = lc.PathFold(1, 2)
	fmt.Println("path 1→2:", sum)

	// Output:
	// path 0→3: 10
	// path 0→3: disconnected
	// path 1→2: 10
}

// ExampleSubtreeTree answers subtree totals relative to a live edge.
func ExampleSubtreeTree() {
	st := linkcut.NewSubtree([]int64{1, 2, 4, 8})

	st.Link(0, 1)
	st.Link(1, 2)
	st.Link(2, 3)

	fmt.Println("side of 2 away from 1:", st.SubtreeFold(2, 1))

	st.SubtreeApply(2, 1, 10)
	fmt.Println("after +10 each:", st.SubtreeFold(2, 1))
	fmt.Println("whole component:", st.ComponentFold(0))

	// Output:
	// side of 2 away from 1: 12
	// after +10 each: 32
	// whole component: 35
}
