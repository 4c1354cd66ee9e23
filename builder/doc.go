// Package builder provides reusable “functional‐options”‐style generators of
// deterministic *core.AdjacencyList fixtures for the spanning-tree algorithms:
// tests, benchmarks and the `spantree generate` command all draw from it.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds the RNG and the weight function.
//   - Topologies (Constructor implementations):
//     – Path, Cycle, Star, Complete, Grid: fixed shapes, vertex 0 first.
//     – Wheel, CompleteBipartite: rim-plus-hub and two-partition shapes.
//     – RandomSparse:      Erdős–Rényi-like, may be disconnected.
//     – RandomConnected:   random spanning chain plus extra random edges.
//   - Edge‐weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max).
//     – IntegerWeightFn:   uniform integer in [min,max], exact sums in tests.
//
// Guarantees:
//
//   - Determinism: vertex ids are 0..n-1, edges are emitted in a fixed order,
//     weights depend only on the seeded RNG.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Runtime parameter errors are sentinel errors wrapped with the method name.
package builder
