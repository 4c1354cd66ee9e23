// Package bfs provides breadth-first search over a core.AdjacencyList,
// returning unweighted hop distances, parent links, visit order and the
// connected components of the graph.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.AdjacencyList
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options. Edge weights are ignored; parallel edges and
// self-loops are harmless.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ctx.Err() on cancellation, or any user-supplied hook error.
func BFS(g *core.AdjacencyList, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if n := g.Len(); start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d (n=%d)", ErrStartVertexNotFound, start, n)
	}

	w := newWalker(g, opts)
	w.enqueue(start, 0, Unreached)

	return w.res, w.loop()
}

// newWalker allocates the result arrays with every vertex unreached.
func newWalker(g *core.AdjacencyList, opts []Option) *walker {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Len()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = Unreached
		w.res.Parent[v] = Unreached
	}

	return w
}

// enqueue marks v reached at depth d and records its parent.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
		}

		next := item.depth + 1
		w.graph.Range(item.v, func(nb core.Neighbor) bool {
			if w.res.Depth[nb.To] == Unreached {
				w.enqueue(nb.To, next, item.v)
			}
			return true
		})
	}

	return nil
}
