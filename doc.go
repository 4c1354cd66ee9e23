// Package spantree computes minimum spanning trees of weighted undirected
// graphs, growing Prim's tree from vertex 0 over an indexed binary heap with
// decrease-key.
//
// 🚀 What is spantree?
//
//	A small library plus a command-line tool:
//		• Graph primitives: dense-id adjacency lists with validation
//		• Indexed min-heap: O(log n) decrease-key through a vertex↔slot index
//		• Minimum spanning trees: Prim (heap-driven), Kruskal (union-find)
//		• Fixtures: deterministic path, grid, complete and random graphs
//		• I/O: edge-list text, YAML and TOML graphs; text and YAML results
//
// ✨ Why spantree?
//
//   - Deterministic – the same graph always yields the same edges in the same order
//   - Explicit errors – sentinel errors per package, wrapped with context
//   - Verifiable – Kruskal and BFS components cross-check every Prim result
//
// Under the hood, everything is organized under these packages:
//
//	core/         : AdjacencyList, Neighbor, Edge, validation
//	indexed_heap/ : IndexedMinHeap with ExtractMin and DecreaseKey
//	prim_kruskal/ : Prim, Kruskal, Compute, ComputeMST
//	bfs/          : breadth-first search and connected components
//	builder/      : functional-options graph generators
//	converters/   : graph readers/writers and result formatting
//	cmd/spantree/ : the spantree CLI
//
// Quick start:
//
//	edges, err := prim_kruskal.ComputeMST(map[int][]core.Neighbor{
//		0: {{To: 1, Weight: 2}},
//		1: {{To: 0, Weight: 2}},
//	})
package spantree
