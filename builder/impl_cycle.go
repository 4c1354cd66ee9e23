// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_cycle.go : implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order i : (i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n) edges. Space: O(1) extra.

package builder

import "github.com/katalvlaran/spantree/core"

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(cfg builderConfig) (*core.AdjacencyList, error) {
		// Validate parameter domain early (fail fast, no work on invalid input).
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return nil, err
		}
		g, err := newGraph(MethodCycle, n)
		if err != nil {
			return nil, err
		}

		// Emit edges in ascending i; for i==n-1, connect to 0 to close the ring.
		for i := 0; i < n; i++ {
			if err = addEdge(MethodCycle, g, cfg, i, (i+1)%n); err != nil {
				return nil, err
			}
		}

		return g, nil
	}
}
