// Package prim_kruskal defines configuration options, result type and
// sentinel errors for MST computation over a *core.AdjacencyList.
// It supports selecting between Prim and Kruskal algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/spantree/core"
	"github.com/sirupsen/logrus"
)

// ErrInvalidGraph indicates that the graph pointer is nil.
var ErrInvalidGraph = errors.New("prim_kruskal: graph is nil")

// ErrUnknownMethod indicates an MSTOptions.Method other than MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// ErrUnreachableVertex indicates that some vertex cannot be reached from the
// start vertex. It is returned only when spanning is required
// (WithRequireSpanning); otherwise the driver reports a partial result.
var ErrUnreachableVertex = errors.New("prim_kruskal: vertex unreachable from start")

// errHeapContract wraps indexed_heap errors raised inside the driver.
// Seeing it means the driver broke its own contract with the heap.
var errHeapContract = errors.New("prim_kruskal: heap contract violated")

// MethodPrim selects Prim's algorithm (grow from vertex 0 using the indexed heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// StartVertex is the fixed root of Prim's algorithm.
const StartVertex = 0

// MSTOptions configures which MST algorithm to run and how disconnected
// inputs are reported.
//
// Fields:
//
//	Method          string            : MethodPrim or MethodKruskal.
//	Forest          bool              : Prim only: restart from every unreachable vertex.
//	RequireSpanning bool              : fail with ErrUnreachableVertex instead of a partial result.
//	Logger          logrus.FieldLogger : debug tracing; never nil after DefaultOptions.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Forest makes Prim restart from each vertex it could not reach,
	// producing a spanning forest. Kruskal always yields a forest.
	Forest bool

	// RequireSpanning turns a disconnected input into ErrUnreachableVertex.
	RequireSpanning bool

	// Logger receives debug traces of extractions and confirmed edges.
	Logger logrus.FieldLogger
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal. Others surface as ErrUnknownMethod from Compute.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithForest returns an Option that makes Prim span every component.
func WithForest() Option {
	return func(opts *MSTOptions) {
		opts.Forest = true
	}
}

// WithRequireSpanning returns an Option that rejects disconnected graphs.
func WithRequireSpanning() Option {
	return func(opts *MSTOptions) {
		opts.RequireSpanning = true
	}
}

// WithLogger returns an Option that routes debug traces to l.
// Panics on nil; pass a discarding logger to silence output instead.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("prim_kruskal: WithLogger(nil)")
	}
	return func(opts *MSTOptions) {
		opts.Logger = l
	}
}

// DefaultOptions returns MSTOptions initialized for Prim in tree mode:
//
//	– Method          = MethodPrim
//	– Forest          = false (report only vertex 0's component)
//	– RequireSpanning = false (partial result on disconnected input)
//	– Logger          = logrus logger writing to io.Discard
//
// Complexity: O(1) to construct.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodPrim,
		Logger: discardLogger(),
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.Out = io.Discard

	return l
}

func resolveOptions(opts []Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Result is the outcome of an MST computation.
//
// Edges are in confirmation order: for Prim this is the order vertices were
// attached (discovery order), for Kruskal ascending weight.
type Result struct {
	// Edges holds (source, child) tree edges with their weights.
	Edges []core.Edge

	// Total is the sum of Edges weights.
	Total float64

	// Components is the number of trees described by Edges. It is 1 for a
	// spanning tree and for Prim in tree mode.
	Components int

	// Unreached lists, in ascending order, vertices left out of the result
	// (Prim tree mode on a disconnected graph). Empty otherwise.
	Unreached []int
}

// Spanning reports whether every vertex is covered by a single tree.
func (r Result) Spanning() bool {
	return r.Components == 1 && len(r.Unreached) == 0
}

// Pairs returns the (source, child) vertex pairs of r.Edges in order.
func (r Result) Pairs() [][2]int {
	out := make([][2]int, len(r.Edges))
	for i, e := range r.Edges {
		out[i] = [2]int{e.From, e.To}
	}

	return out
}

// Compute selects and runs the MST algorithm based on the resolved Method.
//
//	– MethodPrim:    calls Prim(g, opts...).
//	– MethodKruskal: calls Kruskal(g, opts...).
//	– Otherwise:     returns ErrUnknownMethod.
func Compute(g *core.AdjacencyList, opts ...Option) (Result, error) {
	o := resolveOptions(opts)
	switch o.Method {
	case MethodPrim:
		return Prim(g, opts...)
	case MethodKruskal:
		return Kruskal(g, opts...)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// ComputeMST is the plain entry point: it validates the mapping vertex →
// ordered (neighbor, weight) sequence and returns Prim's tree edges from
// vertex 0 in discovery order.
//
// A connected graph yields exactly n-1 edges. A disconnected one yields only
// the tree of vertex 0's component; no edge is fabricated for vertices it
// cannot reach. Validation errors come from core (ErrInvalidVertex,
// ErrAsymmetric, ErrNegativeWeight, ...) and no partial result accompanies them.
func ComputeMST(adjacency map[int][]core.Neighbor) ([]core.Edge, error) {
	g, err := core.FromMap(adjacency)
	if err != nil {
		return nil, err
	}
	res, err := Prim(g)
	if err != nil {
		return nil, err
	}

	return res.Edges, nil
}

// validate is the shared precondition check of Prim and Kruskal.
func validate(g *core.AdjacencyList) error {
	if g == nil {
		return ErrInvalidGraph
	}

	return g.Validate()
}
