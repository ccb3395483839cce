package heap

// search returns the offset of the smallest free block whose
// size is >= want, exploiting the size-ordered list to avoid a linear
// scan. Ties among equal-size blocks break toward whichever is
// reached first along the size chain; the tie-break is not
// observable to callers.
func (h *Heap) search(want uint32) (uint32, error) {
	cur := h.freeListHead
	if cur == NIL {
		return NIL, ErrOutOfMemory
	}

	curBlock := h.at(cur)
	for {
		if curBlock.size() < want {
			next := curBlock.larger()
			if next == NIL {
				return NIL, ErrOutOfMemory
			}
			cur, curBlock = next, h.at(next)
			continue
		}

		smaller := curBlock.smaller()
		if smaller == NIL {
			return cur, nil
		}
		sb := h.at(smaller)
		if sb.size() < want {
			return cur, nil
		}
		cur, curBlock = smaller, sb
	}
}

// split truncates a free block b to exactly size bytes and
// turns the remainder into a new, inserted free block. b must
// currently be free and size(b) must be strictly greater than size;
// the caller is responsible for the == case (consume whole block).
func (h *Heap) split(off, size uint32) {
	b := h.at(off)
	total := b.size()
	h.remove(off)

	remainderOff := off + size
	h.insert(remainderOff, total-size)

	h.at(off).setSize(size)
}

// Allocate returns the payload offset of a region with at
// least n usable bytes, disjoint from every other live allocation.
// The region's block starts on a BLOCK_QUANTUM boundary; the payload
// offset is 4 bytes past it, after the size header. It fails with ErrOutOfMemory, leaving the
// heap's structure unchanged, if no free block of sufficient size
// exists.
func (h *Heap) Allocate(n uint32) (uint32, error) {
	blockSize := h.blockSizeFor(n)

	off, err := h.search(blockSize)
	if err != nil {
		return 0, err
	}

	b := h.at(off)
	if b.size() == blockSize {
		h.remove(off)
	} else {
		h.split(off, blockSize)
	}

	h.checkInvariants("allocate")
	return b.payload(), nil
}

// ZeroedAllocate allocates n bytes and zeroes the entire
// payload region (block size minus the 4-byte header) before
// returning it.
func (h *Heap) ZeroedAllocate(n uint32) (uint32, error) {
	payload, err := h.Allocate(n)
	if err != nil {
		return 0, err
	}

	blockOff := payload - allocHeaderSize
	size := h.at(blockOff).size()
	clear(h.buf[payload : blockOff+size])

	return payload, nil
}
