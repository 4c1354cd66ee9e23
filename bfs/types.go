// Package bfs provides tunable options and error definitions
// for breadth‐first search over a core.AdjacencyList.
package bfs

import (
	"context"
	"errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start id is outside 0..n-1.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Unreached is the Depth and Parent value of a vertex BFS never enqueued.
const Unreached = -1

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v, depth int) error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no-op OnVisit hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:     context.Background(),
		OnVisit: func(int, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: Depth[v] is the distance (in edges) from the start, or Unreached.
//   - Parent: Parent[v] is v's predecessor in the BFS tree, or Unreached for
//     the start vertex and for vertices never reached.
type BFSResult struct {
	Order  []int
	Depth  []int
	Parent []int
}

// Reached reports whether v was visited.
func (r *BFSResult) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] != Unreached
}
