// Package core provides the weighted undirected graph shared by every other
// package: an adjacency list over dense vertex ids 0..n-1.
//
// The AdjacencyList G = (V,E) has the following contract:
//
//   - Vertices are the integers 0..n-1, fixed when the graph is created.
//   - Each vertex owns an ordered sequence of Neighbor{To, Weight}; order is
//     insertion order and algorithms that iterate it (Prim, BFS) are
//     deterministic because of it.
//   - Undirected: every (u→v, w) entry has a matching (v→u, w) entry.
//     AddEdge maintains this; graphs built from caller-supplied sequences
//     (FromMap, FromSlices) are checked by Validate.
//   - Weights are finite and non-negative. Parallel edges are kept; a
//     self-loop is stored once and never joins a spanning tree.
//
// Errors:
//
//	ErrNilGraph, ErrEmptyGraph, ErrInvalidVertex, ErrNegativeWeight,
//	ErrInvalidWeight, ErrAsymmetric. Every error is a sentinel wrapped with
//	context via %w; branch with errors.Is.
//
// Concurrency: an AdjacencyList carries no lock. Concurrent readers are
// safe; mutation must not overlap with any other access.
//
// Complexity:
//
//	NewAdjacencyList O(V), AddEdge O(1) amortized, Neighbors O(deg),
//	Edges O(E log E), Validate O(V + E) expected.
package core
