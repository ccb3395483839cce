package heap

import (
	"heap/internal/assert"
	"testing"
)

func newTestHeap(t *testing.T, size uint32) *Heap {
	t.Helper()
	h, err := New(make([]byte, size), 0, 64)
	assert.Equal(t, nil, err)
	return h
}

func TestInit(t *testing.T) {
	h := newTestHeap(t, 65536)

	assert.Equal(t, uint32(0), h.freeListHead)
	b := h.at(0)
	assert.Equal(t, uint32(65536), b.size())
	assert.Equal(t, NIL, b.next())
	assert.Equal(t, NIL, b.prev())
	assert.Equal(t, NIL, b.smaller())
	assert.Equal(t, NIL, b.larger())
}

func TestSingleAlloc(t *testing.T) {
	h := newTestHeap(t, 65536)

	p, err := h.Allocate(26)
	assert.Equal(t, nil, err)
	assert.Equal(t, uint32(4), p)

	assert.Equal(t, uint32(64), h.at(0).size())

	assert.Equal(t, uint32(64), h.freeListHead)
	free := h.at(64)
	assert.Equal(t, uint32(65472), free.size())
}

func TestAllocFreeRoundTrip(t *testing.T) {
	h := newTestHeap(t, 65536)

	before := append([]byte{}, h.buf[:20]...)

	p, err := h.Allocate(26)
	assert.Equal(t, nil, err)
	h.Free(p)

	assert.Equal(t, string(before), string(h.buf[:20]))
	assert.Equal(t, uint32(0), h.freeListHead)
}

func TestCoalescing(t *testing.T) {
	h := newTestHeap(t, 65536)

	a := must(h.Allocate(26))
	b := must(h.Allocate(26))
	c := must(h.Allocate(26))

	h.Free(b)
	h.Free(a)
	h.Free(c)

	assert.Equal(t, uint32(0), h.freeListHead)
	root := h.at(0)
	assert.Equal(t, uint32(65536), root.size())
	assert.Equal(t, NIL, root.next())
	assert.Equal(t, nil, h.CheckInvariants())
}

func TestBestFitSelection(t *testing.T) {
	h := newTestHeap(t, 65536)

	// Interleave the three candidate blocks with small allocated
	// spacers so that freeing them out of address order leaves three
	// isolated free blocks (128, 192, 256 bytes) instead of one
	// contiguous run — otherwise the coalescing sweep would merge
	// address-adjacent frees back together before the search ever
	// gets to choose between them.
	p1 := must(h.Allocate(124)) // -> 128-byte block
	g1 := must(h.Allocate(12))  // spacer
	p2 := must(h.Allocate(188)) // -> 192-byte block
	g2 := must(h.Allocate(12))  // spacer
	p3 := must(h.Allocate(252)) // -> 256-byte block
	tail := must(h.Allocate(12))

	h.Free(p1)
	h.Free(p3)
	h.Free(p2)

	got, err := h.Allocate(50)
	assert.Equal(t, nil, err)
	assert.Equal(t, p1, got)

	h.Free(got)
	h.Free(g1)
	h.Free(g2)
	h.Free(tail)
	assert.Equal(t, nil, h.CheckInvariants())
}

func TestReallocNoMove(t *testing.T) {
	h := newTestHeap(t, 65536)

	p := must(h.Allocate(10))
	q, err := h.Reallocate(p, 20)
	assert.Equal(t, nil, err)
	assert.Equal(t, p, q)
}

func TestReallocGrowPreservesPrefix(t *testing.T) {
	h := newTestHeap(t, 65536)

	p := must(h.Allocate(40))
	for i := uint32(0); i < 40; i++ {
		h.buf[p+i] = byte(i + 1)
	}

	q, err := h.Reallocate(p, 400)
	assert.Equal(t, nil, err)

	for i := uint32(0); i < 40; i++ {
		assert.Equal(t, byte(i+1), h.buf[q+i])
	}
}

func TestReallocShrinkClampsTailCopy(t *testing.T) {
	h := newTestHeap(t, 65536)

	p := must(h.Allocate(400))
	for i := uint32(0); i < 400; i++ {
		h.buf[p+i] = byte(i)
	}

	q, err := h.Reallocate(p, 10)
	assert.Equal(t, nil, err)

	blockOff := q - allocHeaderSize
	usable := h.at(blockOff).size() - allocHeaderSize
	for i := uint32(0); i < usable; i++ {
		assert.Equal(t, byte(i), h.buf[q+i])
	}
}

func TestZeroedAllocate(t *testing.T) {
	h := newTestHeap(t, 65536)

	p := must(h.Allocate(100))
	for i := uint32(0); i < 100; i++ {
		h.buf[p+i] = 0xFF
	}
	h.Free(p)

	p2, err := h.ZeroedAllocate(100)
	assert.Equal(t, nil, err)

	blockOff := p2 - allocHeaderSize
	usable := h.at(blockOff).size() - allocHeaderSize
	for i := uint32(0); i < usable; i++ {
		if h.buf[p2+i] != 0 {
			t.Fatalf("byte %d not zeroed: %#x", i, h.buf[p2+i])
		}
	}
}

func TestClearAndFree(t *testing.T) {
	h := newTestHeap(t, 65536)

	p := must(h.Allocate(100))
	for i := uint32(0); i < 100; i++ {
		h.buf[p+i] = 0xAA
	}

	blockOff := p - allocHeaderSize
	size := h.at(blockOff).size()

	h.ClearAndFree(p)

	for i := p; i < blockOff+size; i++ {
		if h.buf[i] != 0 {
			t.Fatalf("byte at %d not zeroed after ClearAndFree: %#x", i, h.buf[i])
		}
	}
}

func TestOutOfMemory(t *testing.T) {
	h := newTestHeap(t, 128)

	_, err := h.Allocate(1000)
	assert.Equal(t, ErrOutOfMemory, err)

	assert.Equal(t, nil, h.CheckInvariants())
}

func TestAllocateExactlyLargestBlockConsumesWhole(t *testing.T) {
	h := newTestHeap(t, 256)

	p, err := h.Allocate(252)
	assert.Equal(t, nil, err)
	assert.Equal(t, uint32(4), p)
	assert.Equal(t, NIL, h.freeListHead)
}

func TestAllocateZeroBytes(t *testing.T) {
	h := newTestHeap(t, 65536)

	p, err := h.Allocate(0)
	assert.Equal(t, nil, err)

	blockOff := p - allocHeaderSize
	assert.Equal(t, uint32(64), h.at(blockOff).size())

	h.Free(p)
}

func TestMemCopyAndMemMoveSecure(t *testing.T) {
	h := newTestHeap(t, 65536)

	src := must(h.Allocate(16))
	dst := must(h.Allocate(16))

	for i := uint32(0); i < 16; i++ {
		h.buf[src+i] = byte(i + 1)
	}

	h.MemCopy(src, 16, dst)
	for i := uint32(0); i < 16; i++ {
		assert.Equal(t, byte(i+1), h.buf[dst+i])
	}

	dst2 := must(h.Allocate(16))
	h.MemMoveSecure(dst, 16, dst2)
	for i := uint32(0); i < 16; i++ {
		assert.Equal(t, byte(i+1), h.buf[dst2+i])
		assert.Equal(t, byte(0), h.buf[dst+i])
	}
}

func must(p uint32, err error) uint32 {
	if err != nil {
		panic(err)
	}
	return p
}
