package heap

// reallocPreserveBytes is the size of the block header region that a
// free/allocate round-trip through the free list would otherwise
// clobber (next, prev, smaller and larger, the four link fields that
// follow the size field) before
// the caller's bytes can be safely read back out: the first 16 bytes
// of payload for a block whose header is NIL-filled on insert.
const reallocPreserveBytes = 16

// Reallocate resizes the block behind payload to hold n bytes,
// preserving min(oldPayload, n) bytes of content and returning a
// (possibly different) payload offset. If the new request rounds to
// the same block size as the old one, the original offset is
// returned unchanged.
//
// The implementation aliases the old block's memory via the free list
// for the duration of the call: it frees the old block, then
// allocates the new size, which may hand back the very same bytes.
// This is correct only because no other caller can observe that
// intermediate state under the single-threaded cooperative model, and
// because the first reallocPreserveBytes bytes of payload — which
// Free's insert step overwrites with link fields — are captured
// before the free and restored before the remaining payload is
// copied. It is observably equivalent to allocate-new / copy-all /
// free-old.
func (h *Heap) Reallocate(payload, n uint32) (uint32, error) {
	oldBlockOff := payload - allocHeaderSize
	oldBlockSize := h.at(oldBlockOff).size()
	newBlockSize := h.blockSizeFor(n)

	if newBlockSize == oldBlockSize {
		return payload, nil
	}

	var preserved [reallocPreserveBytes]byte
	copy(preserved[:], h.buf[payload:payload+reallocPreserveBytes])

	h.Free(payload)

	newPayload, err := h.Allocate(n)
	if err != nil {
		// Allocation failed: the old block is gone, handed back to
		// the free pool by the Free above, so there is nothing to
		// roll back to.
		return 0, err
	}

	copy(h.buf[newPayload:newPayload+reallocPreserveBytes], preserved[:])

	// Tail copy, clamped to the smaller of the two block sizes: copying
	// oldBlockSize-20 bytes unconditionally would read past the new
	// payload's end when shrinking.
	tailLen := oldBlockSize
	if newBlockSize < tailLen {
		tailLen = newBlockSize
	}
	if tailLen > freeHeaderSize {
		tailLen -= freeHeaderSize
		src := payload + reallocPreserveBytes
		dst := newPayload + reallocPreserveBytes
		copy(h.buf[dst:dst+tailLen], h.buf[src:src+tailLen])
	}

	return newPayload, nil
}
