package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

// newGraph allocates n vertices, tagging failures with the method name.
func newGraph(method string, n int) (*core.AdjacencyList, error) {
	g, err := core.NewAdjacencyList(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return g, nil
}

// addEdge draws a weight from cfg and inserts {u,v}. A weight function that
// yields a negative or non-finite weight surfaces as ErrConstructFailed.
func addEdge(method string, g *core.AdjacencyList, cfg builderConfig, u, v int) error {
	w := cfg.weight()
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d, w=%g): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}

	return nil
}
