package heap

// merge combines two address-adjacent free blocks into one.
// b1 and b2 must both currently be free, with b2 == b1 + size(b1).
func (h *Heap) merge(b1, b2 uint32) {
	size1 := h.at(b1).size()
	size2 := h.at(b2).size()

	h.remove(b1)
	h.remove(b2)
	h.insert(b1, size1+size2)
}

// Free returns the block behind payload to the free pool and
// runs the coalescing sweep that restores invariant 5 (no two free
// blocks are address-adjacent). Freeing a pointer not obtained from
// this heap, or freeing twice, is undefined behavior —
// allocator does not and cannot detect it from the buffer alone.
func (h *Heap) Free(payload uint32) {
	blockOff := payload - allocHeaderSize
	size := h.at(blockOff).size()

	h.insert(blockOff, size)
	h.coalesce()
	h.checkInvariants("free")
}

// coalesce sweeps the address list from FreeListHead, merging
// any address-adjacent pair it finds. A merge can expose a further
// merge opportunity at the same resulting offset (e.g. freeing a
// block between two already-free neighbors joins all three), so the
// cursor re-examines the merged block instead of advancing past it.
// The sweep always starts at the head rather than at the block that
// was just freed: the freed block's own predecessor may also now be
// adjacent to it, and only a head-anchored walk is guaranteed to
// reach that pair.
func (h *Heap) coalesce() {
	cur := h.freeListHead
	for cur != NIL {
		b := h.at(cur)
		next := b.next()
		if next == NIL {
			break
		}
		if cur+b.size() == next {
			h.merge(cur, next)
			continue
		}
		cur = next
	}
}

// ClearAndFree zeroes the payload region before returning the
// block to the free pool.
func (h *Heap) ClearAndFree(payload uint32) {
	blockOff := payload - allocHeaderSize
	size := h.at(blockOff).size()
	clear(h.buf[payload : blockOff+size])

	h.Free(payload)
}

// MemCopy copies n bytes from src to dst within the heap's backing
// buffer. The regions must not overlap.
func (h *Heap) MemCopy(src, n, dst uint32) {
	copy(h.buf[dst:dst+n], h.buf[src:src+n])
}

// MemMoveSecure copies n bytes from src to dst, then zeroes the
// source region, for callers that want to relocate sensitive data
// within the heap without leaving a stale copy behind.
func (h *Heap) MemMoveSecure(src, n, dst uint32) {
	h.MemCopy(src, n, dst)
	clear(h.buf[src : src+n])
}
