// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_complete.go : implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Edges {i,j} for i<j, emitted for i asc, then j asc.
//
// Complexity:
//   • Time: O(n²) edges. Space: O(n²) adjacency entries.

package builder

import "github.com/katalvlaran/spantree/core"

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(cfg builderConfig) (*core.AdjacencyList, error) {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return nil, err
		}
		g, err := newGraph(MethodComplete, n)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(MethodComplete, g, cfg, i, j); err != nil {
					return nil, err
				}
			}
		}

		return g, nil
	}
}
