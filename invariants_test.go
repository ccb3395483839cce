package heap

import (
	"heap/internal/assert"
	"math/rand"
	"testing"
)

// TestRandomizedAllocFreeSequencePreservesInvariants fabricates many
// interleaved allocate/free sequences, some producing runs of
// equal-size free blocks, and checks invariants 1-6 after every
// single call — not just at the end — the way a property test for
// the size list's equal-size tie-breaking rule needs to.
func TestRandomizedAllocFreeSequencePreservesInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	h := newTestHeap(t, 1<<16)
	var live []uint32

	for i := 0; i < 2000; i++ {
		if len(live) == 0 || rng.Intn(3) != 0 {
			n := uint32(rng.Intn(512))
			p, err := h.Allocate(n)
			if err == nil {
				live = append(live, p)
			}
		} else {
			idx := rng.Intn(len(live))
			h.Free(live[idx])
			live[idx] = live[len(live)-1]
			live = live[:len(live)-1]
		}

		if err := h.CheckInvariants(); err != nil {
			t.Fatalf("iteration %d: %v", i, err)
		}
	}

	for _, p := range live {
		h.Free(p)
	}
	assert.Equal(t, nil, h.CheckInvariants())
	assert.Equal(t, h.heapOffset, h.freeListHead)
	assert.Equal(t, uint32(1<<16), h.at(h.heapOffset).size())
}

// TestEqualSizeFreeBlocksSearchTerminates builds a heap with many
// free blocks of identical size and checks that search still
// terminates and returns a validly-sized block — the size list's
// SMALLER-descent rule relies on equality blocking further descent
// rather than looping forever.
func TestEqualSizeFreeBlocksSearchTerminates(t *testing.T) {
	h := newTestHeap(t, 1<<16)

	var ptrs []uint32
	for {
		p, err := h.Allocate(60) // -> 64-byte blocks, same size as each other
		if err != nil {
			break
		}
		ptrs = append(ptrs, p)
	}

	for i := 0; i < len(ptrs); i += 2 {
		h.Free(ptrs[i])
	}

	p, err := h.Allocate(60)
	assert.Equal(t, nil, err)
	blockOff := p - allocHeaderSize
	assert.Equal(t, uint32(64), h.at(blockOff).size())
	assert.Equal(t, nil, h.CheckInvariants())
}
