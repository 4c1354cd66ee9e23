// Package bfs implements breadth-first search over a *core.AdjacencyList.
//
// BFS visits vertices in increasing hop distance from a start vertex and
// records, for each vertex, its depth and its parent in the BFS tree. Weights
// play no part. Components reuses one walker to run a BFS from every vertex
// not yet reached, splitting the graph into connected components; the CLI and
// the spanning-tree tests use it to tell a tree from a forest and to check
// results independently of any heap.
//
// Options:
//   - WithContext: cancel long traversals.
//   - WithOnVisit: per-vertex hook; returning an error stops the search.
//
// Complexity: O(V + E) time and O(V) memory for both BFS and Components.
package bfs
