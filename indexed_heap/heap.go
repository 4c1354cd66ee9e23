package indexed_heap

import (
	"fmt"
	"math"
)

// removedKey is the sentinel key carried by an extracted vertex.
var removedKey = math.Inf(1)

// IndexedMinHeap is a binary min-heap of n vertices keyed by float64.
//
// All n vertices keep a slot for the whole life of the heap; extraction only
// marks a vertex removed and sinks it with the +Inf sentinel key. The three
// parallel arrays are private and only ever change through swap, siftUp and
// ExtractMin, which keep them consistent.
type IndexedMinHeap struct {
	keys     []float64 // keys[slot]: current key of the vertex in that slot
	vertexAt []int     // vertexAt[slot]: vertex occupying the slot
	slotOf   []int     // slotOf[vertex]: slot currently holding the vertex
	removed  []bool    // removed[vertex]: already extracted
	size     int       // number of vertices not yet extracted
	lowLive  int       // no vertex below lowLive is live
}

// New builds a heap over len(keys) vertices, vertex v starting with keys[v].
// The slice is copied. NaN keys are stored as +Inf so ordering stays total.
//
// Build runs sift-down from the last internal node back to the root.
// Complexity: O(n) time, O(n) memory.
func New(keys []float64) *IndexedMinHeap {
	n := len(keys)
	h := &IndexedMinHeap{
		keys:     make([]float64, n),
		vertexAt: make([]int, n),
		slotOf:   make([]int, n),
		removed:  make([]bool, n),
		size:     n,
	}
	for v, k := range keys {
		if math.IsNaN(k) {
			k = math.Inf(1)
		}
		h.keys[v] = k
		h.vertexAt[v] = v
		h.slotOf[v] = v
	}
	for slot := n/2 - 1; slot >= 0; slot-- {
		h.siftDown(slot)
	}

	return h
}

// Len returns the number of vertices still in the heap.
func (h *IndexedMinHeap) Len() int { return h.size }

// Cap returns n, the number of vertices the heap was built over.
func (h *IndexedMinHeap) Cap() int { return len(h.keys) }

// Peek returns the minimum vertex and its key without removing it.
func (h *IndexedMinHeap) Peek() (int, float64, error) {
	if h.size == 0 {
		return -1, 0, ErrEmptyHeap
	}
	slot := h.topSlot()

	return h.vertexAt[slot], h.keys[slot], nil
}

// ExtractMin removes and returns the vertex with the smallest key.
//
// The root's key is replaced by the +Inf sentinel and sifted down over all n
// slots, so the extracted vertex sinks to a resting slot below every finite
// key. Its slotOf entry stays valid and the index arrays remain mutual
// inverses over all n vertices.
//
// Once only +Inf keys are left the root may hold an extracted vertex; the
// live vertex with the lowest id is then brought to the root, which cannot
// break the heap property since every key is +Inf.
//
// Complexity: O(log n); extractions among +Inf keys add O(n) in total.
func (h *IndexedMinHeap) ExtractMin() (int, error) {
	if h.size == 0 {
		return -1, ErrEmptyHeap
	}

	if slot := h.topSlot(); slot != 0 {
		h.swap(0, slot)
	}
	top := h.vertexAt[0]
	h.removed[top] = true
	h.size--
	h.keys[0] = removedKey
	h.siftDown(0)

	return top, nil
}

// topSlot returns the slot of the live minimum: the root, unless the root is
// an extracted vertex, in which case every key is +Inf and the slot of the
// lowest live vertex id is taken.
func (h *IndexedMinHeap) topSlot() int {
	if !h.removed[h.vertexAt[0]] {
		return 0
	}
	for h.removed[h.lowLive] {
		h.lowLive++
	}

	return h.slotOf[h.lowLive]
}

// DecreaseKey lowers the key of v to key and restores the heap property by
// moving v toward the root.
//
// Errors:
//   - ErrInvalidVertex if v is outside 0..n-1.
//   - ErrNotInHeap     if v was already extracted.
//   - ErrKeyIncrease   if key > current key or key is NaN; nothing changes.
//
// An equal key is accepted and leaves the heap as it is.
// Complexity: O(log n)
func (h *IndexedMinHeap) DecreaseKey(v int, key float64) error {
	slot, err := h.liveSlot(v)
	if err != nil {
		return err
	}
	if math.IsNaN(key) || key > h.keys[slot] {
		return fmt.Errorf("%w: vertex %d has %v, got %v", ErrKeyIncrease, v, h.keys[slot], key)
	}
	h.siftUp(slot, key)

	return nil
}

// PositionOf returns the slot currently holding v. For an extracted vertex
// this is the slot its sentinel key sank to.
// Complexity: O(1)
func (h *IndexedMinHeap) PositionOf(v int) (int, error) {
	if v < 0 || v >= len(h.slotOf) {
		return -1, fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidVertex, v, len(h.slotOf))
	}

	return h.slotOf[v], nil
}

// Key returns v's current key; +Inf once v has been extracted.
func (h *IndexedMinHeap) Key(v int) (float64, error) {
	slot, err := h.PositionOf(v)
	if err != nil {
		return 0, err
	}

	return h.keys[slot], nil
}

// Contains reports whether v is a valid vertex that has not been extracted.
func (h *IndexedMinHeap) Contains(v int) bool {
	_, err := h.liveSlot(v)
	return err == nil
}

func (h *IndexedMinHeap) liveSlot(v int) (int, error) {
	slot, err := h.PositionOf(v)
	if err != nil {
		return -1, err
	}
	if h.removed[v] {
		return -1, fmt.Errorf("%w: %d", ErrNotInHeap, v)
	}

	return slot, nil
}

// swap exchanges two slots and re-points both vertices at their new slots.
// It is the only place where keys, vertexAt and slotOf move together pairwise.
func (h *IndexedMinHeap) swap(i, j int) {
	h.keys[i], h.keys[j] = h.keys[j], h.keys[i]
	h.vertexAt[i], h.vertexAt[j] = h.vertexAt[j], h.vertexAt[i]
	h.slotOf[h.vertexAt[i]] = i
	h.slotOf[h.vertexAt[j]] = j
}

// siftDown moves the element at slot toward the leaves until no child is
// strictly smaller. Loop invariant: the subtrees below slot's children are
// heaps; slot is the resting place once neither child beats it.
func (h *IndexedMinHeap) siftDown(slot int) {
	for {
		left := 2*slot + 1
		if left >= len(h.keys) || left < 0 { // left < 0 after int overflow
			return
		}
		child := left
		// Right wins only when strictly smaller; ties keep the left child.
		if right := left + 1; right < len(h.keys) && h.keys[right] < h.keys[left] {
			child = right
		}
		if !(h.keys[child] < h.keys[slot]) {
			return
		}
		h.swap(slot, child)
		slot = child
	}
}

// siftUp places key (belonging to the vertex at slot) on the path to the
// root. Larger parents are shifted down one level into the hole, each shift
// re-pointing slotOf for the moved vertex, until the parent is <= key or the
// hole reaches the root; then key and its vertex drop into the hole.
func (h *IndexedMinHeap) siftUp(slot int, key float64) {
	v := h.vertexAt[slot]
	for slot > 0 {
		parent := (slot - 1) / 2
		if !(key < h.keys[parent]) {
			break
		}
		h.keys[slot] = h.keys[parent]
		h.vertexAt[slot] = h.vertexAt[parent]
		h.slotOf[h.vertexAt[slot]] = slot
		slot = parent
	}
	// Either a parent <= key stopped the walk or the hole is the root.
	h.keys[slot] = key
	h.vertexAt[slot] = v
	h.slotOf[v] = slot
}

// checkInvariants verifies the heap property over all slots, the
// vertexAt/slotOf inverse relation, and that extracted vertices carry the
// sentinel key.
func (h *IndexedMinHeap) checkInvariants() error {
	for i := 1; i < len(h.keys); i++ {
		if p := (i - 1) / 2; h.keys[i] < h.keys[p] {
			return fmt.Errorf("heap property: keys[%d]=%v < keys[%d]=%v", i, h.keys[i], p, h.keys[p])
		}
	}
	for i, v := range h.vertexAt {
		if h.slotOf[v] != i {
			return fmt.Errorf("index: vertexAt[%d]=%d but slotOf[%d]=%d", i, v, v, h.slotOf[v])
		}
	}
	for v, i := range h.slotOf {
		if h.vertexAt[i] != v {
			return fmt.Errorf("index: slotOf[%d]=%d but vertexAt[%d]=%d", v, i, i, h.vertexAt[i])
		}
	}
	live := 0
	for v, gone := range h.removed {
		if !gone {
			live++
			continue
		}
		if k := h.keys[h.slotOf[v]]; !math.IsInf(k, 1) {
			return fmt.Errorf("removed vertex %d has key %v", v, k)
		}
	}
	if live != h.size {
		return fmt.Errorf("size %d but %d live vertices", h.size, live)
	}

	return nil
}
