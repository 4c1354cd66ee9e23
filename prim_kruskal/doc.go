// Package prim_kruskal computes Minimum Spanning Trees (and forests) of an
// undirected, weighted *core.AdjacencyList.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E that
//     connects all vertices in V with no cycle while the sum of its weights is minimal.
//
//   - Why MST matters:
//
//   - Network Design: cheapest backbone connecting every site.
//
//   - Clustering: cutting the heaviest tree edges splits the data into groups.
//
//   - Subroutines: approximation algorithms (Steiner trees, metric TSP) start from an MST.
//
// Algorithms Provided
//
//   - Prim(g, opts...) (Result, error)
//
//   - Strategy: grow one tree from vertex 0. Every vertex sits in an
//     indexed_heap.IndexedMinHeap exactly once, keyed by the cheapest edge
//     seen so far from the tree; a cheaper edge lowers the key in place
//     (decrease-key) instead of pushing a duplicate entry.
//
//   - Complexity: O(E log V) time, O(V) extra memory.
//
//   - Output: (source, child) edges in the order vertices join the tree.
//
//   - Kruskal(g, opts...) (Result, error)
//
//   - Strategy: stable-sort all edges by weight and merge components with a
//     disjoint-set (path halving, union by rank).
//
//   - Complexity: O(E log E + α(V)·E) ≈ O(E log V).
//
//   - Use-Case: an independent oracle for Prim; both totals must agree.
//
//   - ComputeMST(map[int][]core.Neighbor) ([]core.Edge, error)
//     The plain entry point: validate the mapping, run Prim in default mode.
//
// Disconnected Graphs
//
//	By default Prim returns only the tree of vertex 0's component and lists
//	the vertices it could not reach in Result.Unreached. WithForest() restarts
//	from each such vertex and returns a spanning forest. WithRequireSpanning()
//	rejects the input with ErrUnreachableVertex instead.
//
// Error Conditions
//
//	- ErrInvalidGraph       : graph pointer is nil.
//	- core.ErrEmptyGraph, core.ErrInvalidVertex, core.ErrNegativeWeight,
//	  core.ErrInvalidWeight, core.ErrAsymmetric : input validation.
//	- ErrUnreachableVertex  : disconnected input under WithRequireSpanning.
//	- ErrUnknownMethod      : Compute with a method other than prim or kruskal.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
