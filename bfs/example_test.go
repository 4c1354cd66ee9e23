package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/spantree/bfs"
	"github.com/katalvlaran/spantree/builder"
)

// ExampleBFS walks a star from its center: every leaf is one hop away.
func ExampleBFS() {
	g, _ := builder.BuildGraph(builder.Star(4))
	res, _ := bfs.BFS(g, 0)
	fmt.Println(res.Order, res.Depth)
	// Output: [0 1 2 3] [0 1 1 1]
}

// ExampleComponents splits a graph with an isolated vertex.
func ExampleComponents() {
	g, _ := builder.BuildGraph(builder.RandomSparse(4, 0))
	comps, _ := bfs.Components(g)
	fmt.Println(len(comps), comps)
	// Output: 4 [[0] [1] [2] [3]]
}
