// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows the tree from vertex 0 of a validated *core.AdjacencyList, keeping one heap
// entry per vertex and lowering it in place through indexed_heap decrease-key.
package prim_kruskal

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/indexed_heap"
	"github.com/sirupsen/logrus"
)

// noSource marks a vertex that no tree vertex has offered an edge to yet.
const noSource = -1

// Prim computes the Minimum Spanning Tree of an undirected, weighted graph
// by growing outwards from StartVertex.
//
// Error Conditions:
//   - ErrInvalidGraph         : if g is nil.
//   - core validation errors  : ErrEmptyGraph, ErrInvalidVertex, ErrNegativeWeight,
//     ErrInvalidWeight, ErrAsymmetric (checked before any heap work).
//   - ErrUnreachableVertex    : only with WithRequireSpanning, if g is disconnected.
//
// Steps:
//  1. Validate g.
//  2. Initialize bestDistance[v] = +Inf and bestSource[v] = none for every v.
//  3. Mark vertex 0 visited; each neighbor of 0 takes the cheapest edge weight to 0.
//  4. Build the indexed heap over bestDistance. Vertex 0 keeps the +Inf
//     "already handled" key, so it can only surface after every reachable vertex.
//  5. Until the heap is empty:
//     a. v = ExtractMin.
//     b. If v is visited, skip it (only the start vertex can do this).
//     c. If v has no source it is unreachable: record it, or in forest mode
//     make it the root of a new tree.
//     d. Otherwise mark v visited and confirm edge (bestSource[v], v).
//     e. For each unvisited neighbor whose edge beats bestDistance, lower the
//     distance, remember v as its source and DecreaseKey the neighbor.
//  6. Return edges in confirmation order.
//
// Ties between equal distances are settled by the heap's deterministic sift
// order (left child first); the edge order is implementation-defined but the
// same for every call on the same graph.
//
// Complexity: O(E log V) time, O(V) memory beyond the graph.
func Prim(g *core.AdjacencyList, opts ...Option) (Result, error) {
	// 1. Validate before touching any state.
	if err := validate(g); err != nil {
		return Result{}, err
	}

	r := newPrimRunner(g, resolveOptions(opts))
	r.init()
	if err := r.process(); err != nil {
		return Result{}, err
	}

	return r.result()
}

// primRunner holds the per-call working state. Nothing outlives one Prim call.
type primRunner struct {
	g    *core.AdjacencyList
	opts MSTOptions

	visited      []bool
	bestSource   []int
	bestDistance []float64
	heap         *indexed_heap.IndexedMinHeap

	edges      []core.Edge
	total      float64
	components int
	unreached  []int
}

func newPrimRunner(g *core.AdjacencyList, opts MSTOptions) *primRunner {
	n := g.Len()

	return &primRunner{
		g:            g,
		opts:         opts,
		visited:      make([]bool, n),
		bestSource:   make([]int, n),
		bestDistance: make([]float64, n),
		edges:        make([]core.Edge, 0, n-1),
		components:   1,
	}
}

// init performs steps 2–4.
func (r *primRunner) init() {
	for v := range r.bestDistance {
		r.bestDistance[v] = math.Inf(1)
		r.bestSource[v] = noSource
	}

	r.visited[StartVertex] = true
	r.g.Range(StartVertex, func(nb core.Neighbor) bool {
		// Parallel edges: the cheapest one wins. Self-loops never attach anything.
		if nb.To != StartVertex && nb.Weight < r.bestDistance[nb.To] {
			r.bestSource[nb.To] = StartVertex
			r.bestDistance[nb.To] = nb.Weight
		}
		return true
	})

	r.heap = indexed_heap.New(r.bestDistance)
}

// process is the main extraction loop (step 5). Each vertex leaves the heap
// exactly once, so the loop runs n times at most.
func (r *primRunner) process() error {
	for r.heap.Len() > 0 {
		v, err := r.heap.ExtractMin()
		if err != nil {
			return fmt.Errorf("%w: %w", errHeapContract, err)
		}

		// 5b. Only the start vertex is visited while still in the heap.
		if r.visited[v] {
			continue
		}

		// 5c. An infinite distance with no source: nothing in the tree reaches v.
		if r.bestSource[v] == noSource {
			if !r.opts.Forest {
				r.unreached = append(r.unreached, v)
				r.opts.Logger.WithField("vertex", v).Debug("vertex unreachable from start")
				continue
			}
			r.visited[v] = true
			r.components++
			r.opts.Logger.WithField("root", v).Debug("starting new tree")
			if err := r.relax(v); err != nil {
				return err
			}
			continue
		}

		// 5d. Confirm the cheapest known edge into v.
		r.visited[v] = true
		e := core.Edge{From: r.bestSource[v], To: v, Weight: r.bestDistance[v]}
		r.edges = append(r.edges, e)
		r.total += e.Weight
		r.opts.Logger.WithFields(logrus.Fields{
			"from":   e.From,
			"to":     e.To,
			"weight": e.Weight,
		}).Debug("edge confirmed")

		// 5e. Offer v's edges to the vertices still outside the tree.
		if err := r.relax(v); err != nil {
			return err
		}
	}

	return nil
}

// relax lowers bestDistance for every unvisited neighbor of u reachable
// through a strictly cheaper edge and mirrors the change in the heap.
func (r *primRunner) relax(u int) error {
	var relaxErr error
	r.g.Range(u, func(nb core.Neighbor) bool {
		if r.visited[nb.To] || !(nb.Weight < r.bestDistance[nb.To]) {
			return true
		}
		r.bestDistance[nb.To] = nb.Weight
		r.bestSource[nb.To] = u
		if err := r.heap.DecreaseKey(nb.To, nb.Weight); err != nil {
			relaxErr = fmt.Errorf("%w: %w", errHeapContract, err)
			return false
		}
		return true
	})

	return relaxErr
}

// result assembles the Result and applies the RequireSpanning policy (step 6).
func (r *primRunner) result() (Result, error) {
	sort.Ints(r.unreached)
	if r.opts.RequireSpanning && (len(r.unreached) > 0 || r.components > 1) {
		return Result{}, fmt.Errorf("%w: %d tree(s), %d vertex(es) not attached to vertex %d",
			ErrUnreachableVertex, r.components, len(r.unreached), StartVertex)
	}

	return Result{
		Edges:      r.edges,
		Total:      r.total,
		Components: r.components,
		Unreached:  r.unreached,
	}, nil
}
