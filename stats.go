package heap

// Stats summarizes the current free-list without mutating anything;
// used by cmd/heapd's /stats endpoint.
type Stats struct {
	FreeBytes        uint32
	UsedBytes        uint32
	LargestFreeBlock uint32
	FreeBlockCount   int
}

// Stats walks the address-ordered free list once and reports totals.
func (h *Heap) Stats() Stats {
	var s Stats

	cur := h.freeListHead
	for cur != NIL {
		b := h.at(cur)
		size := b.size()
		s.FreeBytes += size
		s.FreeBlockCount++
		if size > s.LargestFreeBlock {
			s.LargestFreeBlock = size
		}
		cur = b.next()
	}

	s.UsedBytes = h.heapSize - s.FreeBytes
	return s
}
