// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_star.go : implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Vertex 0 is the center; leaves 1..n-1 are attached in ascending order.

package builder

import "github.com/katalvlaran/spantree/core"

// Star returns a Constructor that builds the star K_{1,n-1} centered at 0.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(cfg builderConfig) (*core.AdjacencyList, error) {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return nil, err
		}
		g, err := newGraph(MethodStar, n)
		if err != nil {
			return nil, err
		}
		for leaf := 1; leaf < n; leaf++ {
			if err = addEdge(MethodStar, g, cfg, 0, leaf); err != nil {
				return nil, err
			}
		}

		return g, nil
	}
}
