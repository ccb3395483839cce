package heap

import "fmt"

// CheckInvariants walks both free-list orderings and the full block
// tiling and verifies the block-layout invariants. It is O(n) in the
// number of blocks and is not called from the allocator's own hot
// path — it exists for tests and for the debug-build instrumentation
// wired in via checkInvariants (debug.go /
// nodebug.go).
func (h *Heap) CheckInvariants() error {
	addr, err := h.walkAddressList()
	if err != nil {
		return err
	}

	size, err := h.walkSizeList()
	if err != nil {
		return err
	}

	if len(addr) != len(size) {
		return fmt.Errorf("heap: address list has %d blocks, size list has %d", len(addr), len(size))
	}

	// addr is already address-sorted by construction (walkAddressList
	// rejects a non-increasing sequence), so BinarySearch can check
	// size-list membership in it without a second O(n) scan per
	// lookup.
	for _, off := range size {
		if _, found := BinarySearch(addr, off); !found {
			return fmt.Errorf("heap: block at %d is in the size list but not the address list", off)
		}
	}

	addrSet := make(map[uint32]struct{}, len(addr))
	for _, off := range addr {
		addrSet[off] = struct{}{}
	}

	if h.freeListHead != NIL {
		if len(addr) == 0 || addr[0] != h.freeListHead {
			return fmt.Errorf("heap: FreeListHead %d is not the lowest-address free block", h.freeListHead)
		}
	} else if len(addr) != 0 {
		return fmt.Errorf("heap: FreeListHead is NIL but %d free blocks exist", len(addr))
	}

	return h.walkTiling(addrSet)
}

func (h *Heap) walkAddressList() ([]uint32, error) {
	var out []uint32
	seen := make(map[uint32]struct{})

	cur := h.freeListHead
	prevAddr := uint32(0)
	first := true
	for cur != NIL {
		if _, dup := seen[cur]; dup {
			return nil, fmt.Errorf("heap: address list cycles back to %d", cur)
		}
		seen[cur] = struct{}{}

		if !first && cur <= prevAddr {
			return nil, fmt.Errorf("heap: address list not strictly increasing at %d", cur)
		}

		b := h.at(cur)
		if b.size() < h.quantum || b.size()%h.quantum != 0 {
			return nil, fmt.Errorf("heap: free block at %d has invalid size %d", cur, b.size())
		}

		out = append(out, cur)
		prevAddr, first = cur, false
		cur = b.next()
	}
	return out, nil
}

func (h *Heap) walkSizeList() ([]uint32, error) {
	var out []uint32
	seen := make(map[uint32]struct{})

	// Find the smallest-size end by walking SMALLER from the head,
	// since FreeListHead need not be the smallest free block.
	cur := h.freeListHead
	for cur != NIL {
		if prev := h.at(cur).smaller(); prev != NIL {
			cur = prev
		} else {
			break
		}
	}

	prevSize := uint32(0)
	first := true
	for cur != NIL {
		if _, dup := seen[cur]; dup {
			return nil, fmt.Errorf("heap: size list cycles back to %d", cur)
		}
		seen[cur] = struct{}{}

		b := h.at(cur)
		if !first && b.size() < prevSize {
			return nil, fmt.Errorf("heap: size list not non-decreasing at %d", cur)
		}

		out = append(out, cur)
		prevSize, first = b.size(), false
		cur = b.larger()
	}
	return out, nil
}

// walkTiling verifies that every block (free or allocated) exactly
// tiles [heapOffset, heapOffset+heapSize) and that no two free blocks
// (identified via addrSet) are address-adjacent.
func (h *Heap) walkTiling(freeSet map[uint32]struct{}) error {
	cur := h.heapOffset
	end := h.heapOffset + h.heapSize
	var total uint32
	prevWasFree := false

	for cur < end {
		size := h.at(cur).size()
		if size == 0 || size%h.quantum != 0 {
			return fmt.Errorf("heap: block at %d has invalid size %d", cur, size)
		}

		_, isFree := freeSet[cur]
		if isFree && prevWasFree {
			return fmt.Errorf("heap: adjacent free blocks ending/starting at %d were not coalesced", cur)
		}

		total += size
		prevWasFree = isFree
		cur += size
	}

	if cur != end {
		return fmt.Errorf("heap: block tiling overruns heap end: landed on %d, want %d", cur, end)
	}
	if total != h.heapSize {
		return fmt.Errorf("heap: summed block sizes %d != heap size %d", total, h.heapSize)
	}
	return nil
}
