// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// api.go : public entry point tying constructors and options together.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

// Constructor builds a fresh graph from the resolved configuration.
// Implementations must not panic; they return sentinel-wrapped errors.
type Constructor func(cfg builderConfig) (*core.AdjacencyList, error)

// BuildGraph resolves bopts into a builderConfig and runs cons with it.
//
// Errors:
//   - ErrConstructFailed if cons is nil.
//   - whatever the constructor returns, wrapped with "BuildGraph: ".
//
// Determinism: equal options (same seed) produce identical graphs,
// including neighbor order.
func BuildGraph(cons Constructor, bopts ...BuilderOption) (*core.AdjacencyList, error) {
	if cons == nil {
		return nil, fmt.Errorf("BuildGraph: nil constructor: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	g, err := cons(cfg)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}
