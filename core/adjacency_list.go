package core

import (
	"fmt"
	"math"
	"sort"
)

// NewAdjacencyList creates a graph with n isolated vertices 0..n-1.
// Returns ErrEmptyGraph if n < 1.
//
// Complexity: O(n)
func NewAdjacencyList(n int) (*AdjacencyList, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrEmptyGraph, n)
	}

	return &AdjacencyList{adj: make([][]Neighbor, n)}, nil
}

// FromMap builds a graph from the mapping vertex → ordered neighbor sequence.
// Keys must cover exactly 0..len(m)-1. Sequences are copied verbatim (no
// mirroring), so the caller must already list every edge at both endpoints;
// the result is run through Validate before it is returned.
//
// Complexity: O(V + E)
func FromMap(m map[int][]Neighbor) (*AdjacencyList, error) {
	if len(m) == 0 {
		return nil, ErrEmptyGraph
	}

	n := len(m)
	adj := make([][]Neighbor, n)
	for v, nbrs := range m {
		// A key outside 0..n-1 means the ids are not a dense range.
		if v < 0 || v >= n {
			return nil, fmt.Errorf("%w: key %d not in [0,%d)", ErrInvalidVertex, v, n)
		}
		adj[v] = append([]Neighbor(nil), nbrs...)
	}

	g := &AdjacencyList{adj: adj}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// FromSlices builds a graph from adj, where adj[v] is the neighbor sequence
// of vertex v. Like FromMap it copies without mirroring and validates.
//
// Complexity: O(V + E)
func FromSlices(adj [][]Neighbor) (*AdjacencyList, error) {
	if len(adj) == 0 {
		return nil, ErrEmptyGraph
	}

	cp := make([][]Neighbor, len(adj))
	for v, nbrs := range adj {
		cp[v] = append([]Neighbor(nil), nbrs...)
	}

	g := &AdjacencyList{adj: cp}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// AddEdge inserts the undirected edge {u,v} with weight w by appending
// (v,w) to u's sequence and (u,w) to v's. A self-loop is appended once.
// Parallel edges are kept.
//
// Complexity: O(1) amortized
func (g *AdjacencyList) AddEdge(u, v int, w float64) error {
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if err := checkWeight(w); err != nil {
		return fmt.Errorf("edge %d-%d: %w", u, v, err)
	}

	g.adj[u] = append(g.adj[u], Neighbor{To: v, Weight: w})
	if u != v {
		g.adj[v] = append(g.adj[v], Neighbor{To: u, Weight: w})
	}

	return nil
}

// Len returns the number of vertices n.
func (g *AdjacencyList) Len() int {
	return len(g.adj)
}

// Neighbors returns a copy of v's neighbor sequence in insertion order.
//
// Complexity: O(deg(v))
func (g *AdjacencyList) Neighbors(v int) ([]Neighbor, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}

	return append([]Neighbor(nil), g.adj[v]...), nil
}

// neighbors exposes v's sequence without copying. Callers must not mutate it.
func (g *AdjacencyList) neighbors(v int) []Neighbor {
	return g.adj[v]
}

// Range calls fn for every neighbor of v in insertion order without copying
// the sequence. Iteration stops early if fn returns false.
// v must be a valid vertex id; Range panics otherwise, like a slice index.
func (g *AdjacencyList) Range(v int, fn func(nb Neighbor) bool) {
	for _, nb := range g.neighbors(v) {
		if !fn(nb) {
			return
		}
	}
}

// Edges returns every undirected edge once, with From <= To, sorted by
// (From, To, Weight). Parallel edges are all reported.
// Assumes the graph is symmetric (see Validate).
//
// Complexity: O(E log E)
func (g *AdjacencyList) Edges() []Edge {
	var out []Edge
	for u, nbrs := range g.adj {
		for _, nb := range nbrs {
			// Each undirected edge is seen from both sides; keep the u <= To side.
			// Self-loops are stored once, so they pass this filter exactly once.
			if u <= nb.To {
				out = append(out, Edge{From: u, To: nb.To, Weight: nb.Weight})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		if out[i].To != out[j].To {
			return out[i].To < out[j].To
		}

		return out[i].Weight < out[j].Weight
	})

	return out
}

// EdgeCount returns the number of undirected edges, self-loops included.
func (g *AdjacencyList) EdgeCount() int {
	count := 0
	for u, nbrs := range g.adj {
		for _, nb := range nbrs {
			if u <= nb.To {
				count++
			}
		}
	}

	return count
}

// Clone returns a deep copy of g.
//
// Complexity: O(V + E)
func (g *AdjacencyList) Clone() *AdjacencyList {
	cp := make([][]Neighbor, len(g.adj))
	for v, nbrs := range g.adj {
		cp[v] = append([]Neighbor(nil), nbrs...)
	}

	return &AdjacencyList{adj: cp}
}

// TotalWeight sums the weights of edges.
func TotalWeight(edges []Edge) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}

func (g *AdjacencyList) checkVertex(v int) error {
	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidVertex, v, len(g.adj))
	}

	return nil
}

func checkWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidWeight, w)
	}
	if w < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeWeight, w)
	}

	return nil
}
