// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_wheel.go : implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + hub: a rim cycle over vertices 0..n-2 plus hub vertex n-1.
//   • Therefore, n ≥ 4 (the rim must be a valid cycle: n-1 ≥ 3).
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Rim edges are emitted exactly as Cycle(n-1) emits them.
//   • Spokes hub-i follow in ascending rim index.
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

// Wheel returns a Constructor that builds a wheel Wₙ whose hub is vertex n-1.
// Prim starts on the rim, so the hub is discovered through a spoke.
func Wheel(n int) Constructor {
	return func(cfg builderConfig) (*core.AdjacencyList, error) {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return nil, err
		}
		g, err := newGraph(MethodWheel, n)
		if err != nil {
			return nil, err
		}

		rim := n - 1
		for i := 0; i < rim; i++ {
			if err = addEdge(MethodWheel, g, cfg, i, (i+1)%rim); err != nil {
				return nil, fmt.Errorf("%s: rim C_%d: %w", MethodWheel, rim, err)
			}
		}
		for i := 0; i < rim; i++ {
			if err = addEdge(MethodWheel, g, cfg, rim, i); err != nil {
				return nil, err
			}
		}

		return g, nil
	}
}
