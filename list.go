package heap

// remove excises a free block from both the address list and the
// size list. The block's own size field and payload bytes are
// left untouched — the caller is about to either overwrite them
// (split, allocate) or the block no longer exists (merge).
func (h *Heap) remove(off uint32) {
	b := h.at(off)

	if off == h.freeListHead {
		h.freeListHead = b.next()
	}

	h.patch(b.next(), block.setPrev, b.prev())
	h.patch(b.prev(), block.setNext, b.next())
	h.patch(b.smaller(), block.setLarger, b.larger())
	h.patch(b.larger(), block.setSmaller, b.smaller())
}

// insert threads a block of the given size, at the given address,
// into both orderings. The block must not already be in the
// free list. If the list is currently empty, the new block becomes
// the sole element.
func (h *Heap) insert(off, size uint32) {
	b := h.at(off)
	b.setSize(size)

	if h.freeListHead == NIL {
		b.clearLinks()
		h.freeListHead = off
		return
	}

	addrPrev, addrNext := h.findAddressNeighbors(off)
	sizeSmaller, sizeLarger := h.findSizeNeighbors(size)

	b.setPrev(addrPrev)
	b.setNext(addrNext)
	b.setSmaller(sizeSmaller)
	b.setLarger(sizeLarger)

	h.patch(addrNext, block.setPrev, off)
	h.patch(addrPrev, block.setNext, off)
	h.patch(sizeSmaller, block.setLarger, off)
	h.patch(sizeLarger, block.setSmaller, off)

	if off < h.freeListHead {
		h.freeListHead = off
	}
}

// findAddressNeighbors walks the address (NEXT) list from the head to
// find the pair of free blocks the block at off would sit between.
func (h *Heap) findAddressNeighbors(off uint32) (prev, next uint32) {
	prev, next = NIL, NIL

	cur := h.freeListHead
	for cur != NIL {
		if cur > off {
			next = cur
			return
		}
		prev = cur
		cur = h.at(cur).next()
	}
	return
}

// findSizeNeighbors walks the size (SMALLER/LARGER) list from the
// head, traveling toward LARGER while the current block is smaller
// than size and toward SMALLER otherwise, to find the bounding pair
// for a new block of the given size.
func (h *Heap) findSizeNeighbors(size uint32) (smaller, larger uint32) {
	cur := h.freeListHead
	if cur == NIL {
		return NIL, NIL
	}

	curBlock := h.at(cur)
	if curBlock.size() < size {
		for {
			next := curBlock.larger()
			if next == NIL {
				return cur, NIL
			}
			nb := h.at(next)
			if nb.size() >= size {
				return cur, next
			}
			cur, curBlock = next, nb
		}
	}

	for {
		prevSmaller := curBlock.smaller()
		if prevSmaller == NIL {
			return NIL, cur
		}
		pb := h.at(prevSmaller)
		if pb.size() < size {
			return prevSmaller, cur
		}
		cur, curBlock = prevSmaller, pb
	}
}
