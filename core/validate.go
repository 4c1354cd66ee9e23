package core

import "fmt"

// arc is the multiset key used by the symmetry check.
type arc struct {
	from, to int
	weight   float64
}

// Validate checks that g is a well-formed weighted undirected graph:
//
//  1. g is non-nil and has at least one vertex.
//  2. Every neighbor id lies in 0..n-1 (ErrInvalidVertex).
//  3. Every weight is finite (ErrInvalidWeight) and non-negative (ErrNegativeWeight).
//  4. Symmetry: the multiset of (u→v, w) entries equals the multiset of
//     (v→u, w) entries (ErrAsymmetric). A self-loop is its own mirror.
//
// The first violation found is returned, wrapped with the offending entry.
// Validation runs before any heap work, so algorithms never see a corrupt graph.
//
// Complexity: O(V + E) time, O(E) memory.
func (g *AdjacencyList) Validate() error {
	if g == nil {
		return ErrNilGraph
	}
	n := len(g.adj)
	if n == 0 {
		return ErrEmptyGraph
	}

	// Pass 1: ranges and weights; count each directed entry.
	counts := make(map[arc]int)
	for u, nbrs := range g.adj {
		for i, nb := range nbrs {
			if nb.To < 0 || nb.To >= n {
				return fmt.Errorf("%w: vertex %d neighbor #%d references %d (n=%d)",
					ErrInvalidVertex, u, i, nb.To, n)
			}
			if err := checkWeight(nb.Weight); err != nil {
				return fmt.Errorf("vertex %d neighbor %d: %w", u, nb.To, err)
			}
			if u == nb.To {
				continue
			}
			counts[arc{from: u, to: nb.To, weight: nb.Weight}]++
		}
	}

	// Pass 2: every entry must be mirrored the same number of times. Walking
	// the lists again (not the map) reports the first violation deterministically.
	for u, nbrs := range g.adj {
		for _, nb := range nbrs {
			if u == nb.To {
				continue
			}
			c := counts[arc{from: u, to: nb.To, weight: nb.Weight}]
			mirror := counts[arc{from: nb.To, to: u, weight: nb.Weight}]
			if mirror != c {
				return fmt.Errorf("%w: %d→%d (w=%v) listed %d time(s), %d→%d listed %d time(s)",
					ErrAsymmetric, u, nb.To, nb.Weight, c, nb.To, u, mirror)
			}
		}
	}

	return nil
}
