// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_grid.go : implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex id of cell (r,c) is r*cols + c.
//   • Row-major emission: for each cell, the edge to the right neighbor
//     first, then the edge to the neighbor below.
//
// Complexity:
//   • Time: O(rows·cols). Space: O(rows·cols).

package builder

import "github.com/katalvlaran/spantree/core"

// Grid returns a Constructor that builds a rows×cols 4-connected lattice.
func Grid(rows, cols int) Constructor {
	return func(cfg builderConfig) (*core.AdjacencyList, error) {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return nil, err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return nil, err
		}
		g, err := newGraph(MethodGrid, rows*cols)
		if err != nil {
			return nil, err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := r*cols + c
				if c+1 < cols {
					if err = addEdge(MethodGrid, g, cfg, id, id+1); err != nil {
						return nil, err
					}
				}
				if r+1 < rows {
					if err = addEdge(MethodGrid, g, cfg, id, id+cols); err != nil {
						return nil, err
					}
				}
			}
		}

		return g, nil
	}
}
