package indexed_heap

// CheckInvariants exposes checkInvariants to the external test package.
func (h *IndexedMinHeap) CheckInvariants() error { return h.checkInvariants() }

// VertexAt exposes the slot → vertex array for white-box assertions.
func (h *IndexedMinHeap) VertexAt() []int { return append([]int(nil), h.vertexAt...) }
