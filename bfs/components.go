package bfs

import "github.com/katalvlaran/spantree/core"

// Components partitions the vertices of g into connected components.
// Each component is listed in BFS order from its smallest vertex, and the
// components are ordered by that vertex, so vertex 0's component comes first.
//
// One walker serves every component: each unreached vertex, in id order,
// seeds a fresh BFS over the shared Depth array, and the visits it adds to
// Order form the component. Options apply to all of them.
//
// Complexity: O(V + E)
func Components(g *core.AdjacencyList, opts ...Option) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	w := newWalker(g, opts)
	var comps [][]int
	for root := 0; root < g.Len(); root++ {
		if w.res.Reached(root) {
			continue
		}
		from := len(w.res.Order)
		w.enqueue(root, 0, Unreached)
		if err := w.loop(); err != nil {
			return nil, err
		}
		to := len(w.res.Order)
		comps = append(comps, w.res.Order[from:to:to])
	}

	return comps, nil
}

// Connected reports whether every vertex of g is reachable from vertex 0.
func Connected(g *core.AdjacencyList) bool {
	comps, err := Components(g)
	return err == nil && len(comps) == 1
}
