// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_random_connected.go : implementation of RandomConnected(n, extra).
//
// Canonical model:
//   - Guarantee connectivity with a spanning chain over a random permutation
//     of 0..n-1 (so vertex 0 is not always an endpoint).
//   - Then add `extra` random edges between distinct vertices; parallel
//     edges are allowed and kept, self-loops are never drawn.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); extra ≥ 0 (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - extra > 0 with n == 1 is rejected: there is no distinct pair to draw.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

// RandomConnected returns a Constructor that samples a connected graph with
// exactly n-1+extra edges.
// Complexity: O(n + extra).
func RandomConnected(n, extra int) Constructor {
	return func(cfg builderConfig) (*core.AdjacencyList, error) {
		if err := validateMin(MethodRandomConnected, "n", n, MinPathNodes); err != nil {
			return nil, err
		}
		if err := validateMin(MethodRandomConnected, "extra", extra, 0); err != nil {
			return nil, err
		}
		if n == 1 && extra > 0 {
			return nil, fmt.Errorf("%s: extra=%d on a single vertex: %w",
				MethodRandomConnected, extra, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: rng is required: %w", MethodRandomConnected, ErrNeedRandSource)
		}

		g, err := newGraph(MethodRandomConnected, n)
		if err != nil {
			return nil, err
		}

		// 1) Spanning chain over a shuffled vertex order.
		perm := cfg.rng.Perm(n)
		for i := 1; i < n; i++ {
			if err = addEdge(MethodRandomConnected, g, cfg, perm[i-1], perm[i]); err != nil {
				return nil, err
			}
		}

		// 2) Extra edges between distinct random endpoints.
		for added := 0; added < extra; {
			u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if u == v {
				continue
			}
			if err = addEdge(MethodRandomConnected, g, cfg, u, v); err != nil {
				return nil, err
			}
			added++
		}

		return g, nil
	}
}
