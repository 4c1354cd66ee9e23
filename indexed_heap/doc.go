// Package indexed_heap provides a binary min-heap over float64 keys in which
// every element carries a stable external identity (a vertex id 0..n-1).
//
// What & Why
//
//   - container/heap orders values but cannot tell the caller where a given
//     value currently sits, so decrease-key degrades to "push a duplicate and
//     skip stale entries later" (see the lazy pattern in dijkstra-style code).
//   - IndexedMinHeap keeps a dual index instead: vertexAt[slot] says which
//     vertex occupies a heap slot, slotOf[vertex] says where a vertex sits.
//     Both arrays change together inside a single swap routine, so the lookup
//     is O(1) and decrease-key is a true in-place O(log n) operation.
//
// Invariants
//
//   - Heap property: for every slot i > 0, keys[i] >= keys[parent(i)], over
//     all n slots including those of extracted vertices.
//   - Index consistency: slotOf[vertexAt[i]] == i for every slot 0..n-1 and
//     vertexAt[slotOf[v]] == v for every vertex.
//   - Extraction writes the +Inf sentinel into the root and sifts it down, so
//     an extracted vertex sinks below every finite key and stays there.
//
// Determinism
//
//   - sift-down swaps only with a strictly smaller child and prefers the left
//     child when both children hold equal keys. Results are therefore fully
//     reproducible for a given key array and operation sequence.
//
// Complexity
//
//   - New (build): O(n). ExtractMin, DecreaseKey: O(log n).
//     Peek, PositionOf, Key, Contains, Len: O(1).
//
// A heap is not safe for concurrent use; give each computation its own heap.
package indexed_heap
