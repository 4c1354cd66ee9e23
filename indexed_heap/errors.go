package indexed_heap

import "errors"

var (
	// ErrEmptyHeap indicates ExtractMin or Peek on a heap with no live entries.
	// Inside a correct driver this never happens; treat it as a logic bug.
	ErrEmptyHeap = errors.New("indexed_heap: heap is empty")

	// ErrInvalidVertex indicates a vertex id outside 0..n-1.
	ErrInvalidVertex = errors.New("indexed_heap: vertex out of range")

	// ErrNotInHeap indicates an operation on a vertex that was already extracted.
	ErrNotInHeap = errors.New("indexed_heap: vertex already extracted")

	// ErrKeyIncrease indicates DecreaseKey was asked to raise a key (or to set NaN).
	// The heap is left untouched.
	ErrKeyIncrease = errors.New("indexed_heap: new key is greater than current key")
)
