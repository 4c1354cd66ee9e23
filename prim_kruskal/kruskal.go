// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It serves as an independent oracle for Prim: same graph, different strategy, same total weight.
package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/spantree/core"
	"github.com/sirupsen/logrus"
)

// Kruskal computes a Minimum Spanning Forest of an undirected, weighted graph.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph        : if g is nil.
//   - core validation errors : see Prim.
//   - ErrUnreachableVertex   : only with WithRequireSpanning, if g is disconnected.
//
// Steps:
//  1. Validate g.
//  2. Collect g.Edges() (each undirected edge once), skip self-loops.
//  3. Stable-sort by ascending weight; equal weights keep (From, To) order.
//  4. Initialize parent[v] = v, rank[v] = 0.
//  5. For each edge (u,v): if find(u) != find(v), union and keep the edge.
//     Stop once n-1 edges are kept.
//  6. Components = n - len(edges).
//
// The Forest option is irrelevant here: Kruskal always spans every component.
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(g *core.AdjacencyList, opts ...Option) (Result, error) {
	// 1. Validate the graph.
	if err := validate(g); err != nil {
		return Result{}, err
	}
	o := resolveOptions(opts)
	n := g.Len()

	// 2. Collect all edges, skipping self-loops to avoid trivial cycles.
	all := g.Edges()
	edges := make([]core.Edge, 0, len(all))
	for _, e := range all {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}

	// 3. Sort by ascending weight (stable for deterministic tie-breaking).
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Initialize disjoint-set structures.
	parent := make([]int, n)
	rank := make([]int, n)
	for v := range parent {
		parent[v] = v
	}

	// Iterative find with path halving to avoid deep recursion.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// union by rank; reports whether two sets were merged.
	union := func(u, v int) bool {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return false
		}
		if rank[rootU] < rank[rootV] {
			rootU, rootV = rootV, rootU
		}
		parent[rootV] = rootU
		if rank[rootU] == rank[rootV] {
			rank[rootU]++
		}

		return true
	}

	// 5. Build the forest over sorted edges.
	mst := make([]core.Edge, 0, n-1)
	var total float64
	for _, e := range edges {
		if !union(e.From, e.To) {
			continue
		}
		mst = append(mst, e)
		total += e.Weight
		o.Logger.WithFields(logrus.Fields{
			"from":   e.From,
			"to":     e.To,
			"weight": e.Weight,
		}).Debug("edge accepted")
		if len(mst) == n-1 {
			break
		}
	}

	// 6. Each missing edge leaves one more tree.
	components := n - len(mst)
	if o.RequireSpanning && components > 1 {
		return Result{}, fmt.Errorf("%w: graph splits into %d components", ErrUnreachableVertex, components)
	}

	return Result{
		Edges:      mst,
		Total:      total,
		Components: components,
	}, nil
}
