// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_path.go : implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); n == 1 yields a single isolated vertex.
//   • Edges i : i+1 for i = 0..n-2, emitted in ascending i.

package builder

import "github.com/katalvlaran/spantree/core"

// Path returns a Constructor that builds the path P_n: 0-1-…-(n-1).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(cfg builderConfig) (*core.AdjacencyList, error) {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return nil, err
		}
		g, err := newGraph(MethodPath, n)
		if err != nil {
			return nil, err
		}
		for i := 0; i+1 < n; i++ {
			if err = addEdge(MethodPath, g, cfg, i, i+1); err != nil {
				return nil, err
			}
		}

		return g, nil
	}
}
