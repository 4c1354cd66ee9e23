package indexed_heap_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/spantree/indexed_heap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var inf = math.Inf(1)

// drain extracts every live vertex, checking invariants after each step.
func drain(t *testing.T, h *indexed_heap.IndexedMinHeap) []int {
	t.Helper()
	var out []int
	for h.Len() > 0 {
		v, err := h.ExtractMin()
		require.NoError(t, err)
		require.NoError(t, h.CheckInvariants())
		out = append(out, v)
	}

	return out
}

func TestNew_BuildsHeap(t *testing.T) {
	h := indexed_heap.New([]float64{5, 3, 8, 1, 9, 2})
	require.NoError(t, h.CheckInvariants())
	assert.Equal(t, 6, h.Len())
	assert.Equal(t, 6, h.Cap())

	v, k, err := h.Peek()
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.Equal(t, 1.0, k)

	assert.Equal(t, []int{3, 5, 1, 0, 2, 4}, drain(t, h))
}

func TestNew_CopiesKeys(t *testing.T) {
	keys := []float64{2, 1}
	h := indexed_heap.New(keys)
	keys[0] = -10

	v, _, err := h.Peek()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestNew_Empty(t *testing.T) {
	h := indexed_heap.New(nil)
	assert.Zero(t, h.Len())

	_, err := h.ExtractMin()
	assert.ErrorIs(t, err, indexed_heap.ErrEmptyHeap)

	_, _, err = h.Peek()
	assert.ErrorIs(t, err, indexed_heap.ErrEmptyHeap)
}

func TestNew_NaNTreatedAsInfinity(t *testing.T) {
	h := indexed_heap.New([]float64{math.NaN(), 4, 2})
	require.NoError(t, h.CheckInvariants())
	assert.Equal(t, []int{2, 1, 0}, drain(t, h))
}

func TestSiftDown_TiePrefersLeft(t *testing.T) {
	// Root 9 with two equal children: the left child (vertex 1) must rise.
	h := indexed_heap.New([]float64{9, 4, 4})
	assert.Equal(t, []int{1, 0, 2}, h.VertexAt())
	assert.Equal(t, []int{1, 2, 0}, drain(t, h))
}

func TestExtractMin_EqualKeysDeterministic(t *testing.T) {
	keys := []float64{inf, inf, inf, inf, inf}
	first := drain(t, indexed_heap.New(keys))
	second := drain(t, indexed_heap.New(keys))
	assert.Equal(t, first, second)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, first)
}

func TestExtractMin_BeyondSize(t *testing.T) {
	h := indexed_heap.New([]float64{1})
	_, err := h.ExtractMin()
	require.NoError(t, err)

	_, err = h.ExtractMin()
	assert.ErrorIs(t, err, indexed_heap.ErrEmptyHeap)
}

func TestExtractMin_RemovedVertexState(t *testing.T) {
	h := indexed_heap.New([]float64{3, 1, 2})
	v, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	require.NoError(t, h.CheckInvariants())

	assert.False(t, h.Contains(1))
	assert.True(t, h.Contains(0))

	// The sentinel key sank from the root past the smaller right child.
	pos, err := h.PositionOf(1)
	require.NoError(t, err)
	assert.Equal(t, 2, pos)
	assert.Equal(t, []int{2, 0, 1}, h.VertexAt())

	k, err := h.Key(1)
	require.NoError(t, err)
	assert.True(t, math.IsInf(k, 1))

	assert.ErrorIs(t, h.DecreaseKey(1, 0), indexed_heap.ErrNotInHeap)
}

// TestExtractMin_SentinelSinksFromRoot pins the order among equal keys: the
// extracted root sinks with +Inf rather than trading places with the last slot.
func TestExtractMin_SentinelSinksFromRoot(t *testing.T) {
	h := indexed_heap.New([]float64{inf, 1, 1, 1, 1})
	assert.Equal(t, []int{1, 3, 2, 0, 4}, h.VertexAt())

	v, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, []int{3, 4, 2, 0, 1}, h.VertexAt())

	assert.Equal(t, []int{3, 4, 2, 0}, drain(t, h))
}

func TestExtractMin_OnlyInfiniteKeysLeft(t *testing.T) {
	h := indexed_heap.New([]float64{0, inf, inf})
	v, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	// Vertex 0 still sits at the root; the next extraction must skip it.
	assert.Equal(t, 0, h.VertexAt()[0])
	p, _, err := h.Peek()
	require.NoError(t, err)
	assert.Equal(t, 1, p)
	assert.Equal(t, []int{1, 2}, drain(t, h))
}

func TestDecreaseKey_MovesToRoot(t *testing.T) {
	h := indexed_heap.New([]float64{1, 2, 3, 4, 5, 6, 7})
	require.NoError(t, h.DecreaseKey(6, 0))
	require.NoError(t, h.CheckInvariants())

	pos, err := h.PositionOf(6)
	require.NoError(t, err)
	assert.Equal(t, 0, pos)

	v, k, err := h.Peek()
	require.NoError(t, err)
	assert.Equal(t, 6, v)
	assert.Equal(t, 0.0, k)
}

func TestDecreaseKey_StopsBelowSmallerParent(t *testing.T) {
	h := indexed_heap.New([]float64{1, 2, 3, 4, 5, 6, 7})
	// Vertex 6 sits under vertex 2 (key 3). 2.5 < 3 but > 1: it stops at slot 2.
	require.NoError(t, h.DecreaseKey(6, 2.5))
	require.NoError(t, h.CheckInvariants())

	pos, err := h.PositionOf(6)
	require.NoError(t, err)
	assert.Equal(t, 2, pos)

	pos, err = h.PositionOf(2)
	require.NoError(t, err)
	assert.Equal(t, 6, pos)
}

func TestDecreaseKey_EqualKeyIsNoop(t *testing.T) {
	h := indexed_heap.New([]float64{1, 1, 1})
	before := h.VertexAt()
	require.NoError(t, h.DecreaseKey(2, 1))
	assert.Equal(t, before, h.VertexAt())
}

func TestDecreaseKey_RejectsIncrease(t *testing.T) {
	h := indexed_heap.New([]float64{1, 2, 3})
	before := h.VertexAt()

	assert.ErrorIs(t, h.DecreaseKey(0, 10), indexed_heap.ErrKeyIncrease)
	assert.ErrorIs(t, h.DecreaseKey(0, math.NaN()), indexed_heap.ErrKeyIncrease)

	k, err := h.Key(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, k)
	assert.Equal(t, before, h.VertexAt())
}

func TestInvalidVertex(t *testing.T) {
	h := indexed_heap.New([]float64{1, 2})

	assert.ErrorIs(t, h.DecreaseKey(2, 0), indexed_heap.ErrInvalidVertex)
	assert.ErrorIs(t, h.DecreaseKey(-1, 0), indexed_heap.ErrInvalidVertex)

	_, err := h.PositionOf(5)
	assert.ErrorIs(t, err, indexed_heap.ErrInvalidVertex)

	_, err = h.Key(-2)
	assert.ErrorIs(t, err, indexed_heap.ErrInvalidVertex)

	assert.False(t, h.Contains(7))
}

// TestRandomOperations interleaves decrease-key and extract-min on random
// heaps and checks invariants plus extraction order after every step.
func TestRandomOperations(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for round := 0; round < 50; round++ {
		n := 1 + r.Intn(40)
		keys := make([]float64, n)
		for i := range keys {
			if r.Intn(4) == 0 {
				keys[i] = inf
			} else {
				keys[i] = float64(r.Intn(20))
			}
		}
		h := indexed_heap.New(keys)
		require.NoError(t, h.CheckInvariants())

		current := append([]float64(nil), keys...)
		last := math.Inf(-1)
		for h.Len() > 0 {
			if r.Intn(3) > 0 {
				v := r.Intn(n)
				if !h.Contains(v) {
					continue
				}
				k := current[v] - float64(r.Intn(5))
				if math.IsInf(current[v], 1) {
					k = float64(r.Intn(20))
				}
				// The heap never yields a key below one already extracted.
				k = math.Max(k, last)
				require.NoError(t, h.DecreaseKey(v, k))
				current[v] = k
			} else {
				_, key, err := h.Peek()
				require.NoError(t, err)
				v, err := h.ExtractMin()
				require.NoError(t, err)
				assert.Equal(t, current[v], key)
				assert.GreaterOrEqual(t, key, last)
				last = key
			}
			require.NoError(t, h.CheckInvariants())
		}
	}
}

// TestHeapSortOrder checks that draining yields keys in ascending order.
func TestHeapSortOrder(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	keys := make([]float64, 200)
	for i := range keys {
		keys[i] = r.Float64() * 100
	}
	h := indexed_heap.New(keys)

	var got []float64
	for _, v := range drain(t, h) {
		got = append(got, keys[v])
	}
	assert.True(t, sort.Float64sAreSorted(got))
}
