package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/spantree/builder"
	"github.com/katalvlaran/spantree/prim_kruskal"
)

// BenchmarkKruskal measures performance on a random graph with 500 vertices and 2000 edges.
func BenchmarkKruskal(b *testing.B) {
	g, err := builder.BuildGraph(builder.RandomConnected(500, 1501),
		builder.WithSeed(42), builder.WithUniformWeight(1, 100))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer() // exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Kruskal(g)
	}
}

// BenchmarkPrim measures performance on the same graph, starting from vertex 0.
func BenchmarkPrim(b *testing.B) {
	g, err := builder.BuildGraph(builder.RandomConnected(500, 1501),
		builder.WithSeed(42), builder.WithUniformWeight(1, 100))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Prim(g)
	}
}

// BenchmarkPrim_Dense runs Prim on K_200, where decrease-key dominates.
func BenchmarkPrim_Dense(b *testing.B) {
	g, err := builder.BuildGraph(builder.Complete(200),
		builder.WithSeed(7), builder.WithUniformWeight(1, 100))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Prim(g)
	}
}
