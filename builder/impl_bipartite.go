// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_bipartite.go : implementation of CompleteBipartite(n1,n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left partition is 0..n1-1, right partition is n1..n1+n2-1.
//   • Emits every cross pair L_i : R_j, i asc outer, j asc inner.
//
// Complexity:
//   • Time: O(n1·n2) edges. Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(cfg builderConfig) (*core.AdjacencyList, error) {
		if n1 < MinPartitionSize || n2 < MinPartitionSize {
			return nil, fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				MethodCompleteBipartite, n1, n2, MinPartitionSize, ErrTooFewVertices)
		}
		g, err := newGraph(MethodCompleteBipartite, n1+n2)
		if err != nil {
			return nil, err
		}

		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err = addEdge(MethodCompleteBipartite, g, cfg, i, n1+j); err != nil {
					return nil, err
				}
			}
		}

		return g, nil
	}
}
