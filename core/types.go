// Package core defines the weighted undirected adjacency list consumed by the
// spanning-tree algorithms, together with the Neighbor and Edge value types
// and the sentinel errors raised while building or validating a graph.
//
// Vertices are dense integer ids 0..n-1. Every undirected edge {u,v} with
// weight w is stored twice: (v,w) in u's sequence and (u,w) in v's sequence.
// Neighbor order is preserved exactly as inserted, because Prim's edge
// discovery order depends on it.
//
// Errors:
//
//	ErrNilGraph        - graph pointer is nil.
//	ErrEmptyGraph      - graph has no vertices.
//	ErrInvalidVertex   - vertex id outside 0..n-1.
//	ErrNegativeWeight  - edge weight below zero.
//	ErrInvalidWeight   - edge weight is NaN or infinite.
//	ErrAsymmetric      - adjacency list is not a valid undirected graph.
package core

import "errors"

// Sentinel errors for graph construction and validation.
var (
	// ErrNilGraph indicates that a nil *AdjacencyList was supplied.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrEmptyGraph indicates a graph without any vertex.
	ErrEmptyGraph = errors.New("core: graph has no vertices")

	// ErrInvalidVertex indicates a vertex id outside the dense range 0..n-1,
	// or a sparse set of ids where a dense range was required.
	ErrInvalidVertex = errors.New("core: vertex id out of range")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrInvalidWeight indicates a NaN or infinite edge weight.
	ErrInvalidWeight = errors.New("core: edge weight is not a finite number")

	// ErrAsymmetric indicates that some (u→v, w) entry has no matching
	// (v→u, w) entry, so the adjacency list does not describe an undirected graph.
	ErrAsymmetric = errors.New("core: adjacency list is not symmetric")
)

// Neighbor is one entry in a vertex's adjacency sequence.
type Neighbor struct {
	// To is the neighbor vertex id.
	To int

	// Weight is the cost of the edge leading to To.
	Weight float64
}

// Edge is an undirected weighted edge. In spanning-tree results From is the
// vertex already in the tree and To is the vertex it attached.
type Edge struct {
	// From is the source (tree-side) vertex id.
	From int

	// To is the destination (newly attached) vertex id.
	To int

	// Weight is the cost of the edge.
	Weight float64
}

// AdjacencyList is a weighted undirected graph over vertex ids 0..n-1.
//
// The zero value is not usable; construct with NewAdjacencyList, FromMap or
// FromSlices. An AdjacencyList carries no lock: share it read-only between
// goroutines, or give each goroutine its own copy via Clone.
type AdjacencyList struct {
	// adj[v] is the ordered neighbor sequence of vertex v.
	adj [][]Neighbor
}
