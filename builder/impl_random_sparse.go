// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each unordered pair {i,j}, i<j,
//     independently with probability p. The result may be disconnected,
//     which makes it the fixture of choice for forest behaviour.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j asc (j>i).
//   - Each trial draws the Bernoulli sample before the weight.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n vertices with independent edge probability p.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(cfg builderConfig) (*core.AdjacencyList, error) {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if err := validateMin(MethodRandomSparse, "n", n, MinPathNodes); err != nil {
			return nil, err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return nil, err
		}
		// RNG is only required when 0 < p < 1 (true stochastic sampling).
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return nil, fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		g, err := newGraph(MethodRandomSparse, n)
		if err != nil {
			return nil, err
		}

		// 2) Trial every unordered pair in a fixed order.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				include := p == MaxProbability || (p > MinProbability && cfg.rng.Float64() < p)
				if !include {
					continue
				}
				if err = addEdge(MethodRandomSparse, g, cfg, i, j); err != nil {
					return nil, err
				}
			}
		}

		return g, nil
	}
}
