// Package heap implements a dlmalloc-style dynamic memory allocator
// over a single fixed-size, byte-addressable buffer supplied by the
// host. Free blocks are threaded as a combined address-ordered and
// size-ordered doubly-linked list, stored in-band inside the buffer
// itself; boundary merging on release limits external fragmentation.
//
// The allocator is single-threaded cooperative: a call runs to
// completion before another is admitted. Callers that need concurrent
// use must serialize externally (see cmd/heapd for an example using
// a binary semaphore).
package heap

import "errors"

// ErrOutOfMemory is returned when no free block large enough to
// satisfy a request exists. The search that produces it is read-only,
// so a failed Allocate never leaves the heap structure mutated.
// Reallocate frees the old block before it allocates, so when it
// returns this error the old block has already been released.
var ErrOutOfMemory = errors.New("heap: out of memory")

// Heap owns one backing buffer and the scalar state describing its
// free-list. Bundling these into a value rather than process-wide
// globals lets multiple independent heaps coexist in one process.
type Heap struct {
	buf          []byte
	heapOffset   uint32
	heapSize     uint32
	freeListHead uint32
	quantum      uint32
	quantumMask  uint32
}

// New wraps buf as a heap with the given block quantum (alignment and
// minimum block size, must be a power of two and at least 20) and
// establishes one free block spanning the whole buffer. heapOffset is
// the byte offset within buf where the heap begins; bytes before it
// are not managed.
func New(buf []byte, heapOffset uint32, quantum uint32) (*Heap, error) {
	if quantum == 0 || quantum&(quantum-1) != 0 {
		return nil, errors.New("heap: block quantum must be a power of two")
	}
	if quantum < freeHeaderSize {
		return nil, errors.New("heap: block quantum must be at least 20 bytes")
	}
	if int(heapOffset) > len(buf) {
		return nil, errors.New("heap: heap offset exceeds buffer length")
	}
	if (uint32(len(buf))-heapOffset)%quantum != 0 {
		return nil, errors.New("heap: managed region length must be a multiple of the block quantum")
	}

	h := &Heap{
		buf:         buf,
		heapOffset:  heapOffset,
		quantum:     quantum,
		quantumMask: quantum - 1,
	}
	h.Init()
	return h, nil
}

// NewDefault wraps buf using DefaultBlockQuantum and a zero heap
// offset, the common case.
func NewDefault(buf []byte) (*Heap, error) {
	return New(buf, 0, DefaultBlockQuantum)
}

// Init prepares buf for allocation: HeapSize is set to the
// buffer's length minus HeapOffset, a single free block spanning that
// extent is written, and FreeListHead is set to point at it. It is
// idempotent in effect on a heap with no live allocations — calling
// it again simply re-establishes the same lone free block.
func (h *Heap) Init() {
	h.heapSize = uint32(len(h.buf)) - h.heapOffset

	root := h.at(h.heapOffset)
	root.setSize(h.heapSize)
	root.clearLinks()

	h.freeListHead = h.heapOffset
	h.checkInvariants("init")
}

// HeapSize returns the total usable byte length of the heap.
func (h *Heap) HeapSize() uint32 { return h.heapSize }

// BlockQuantum returns the alignment and minimum block size this heap
// was constructed with.
func (h *Heap) BlockQuantum() uint32 { return h.quantum }

// aligned rounds a requested block size up to the next multiple of
// the block quantum: aligned(s) = s + ((Q - (s & mask)) & mask).
func (h *Heap) aligned(s uint32) uint32 {
	return s + ((h.quantum - (s & h.quantumMask)) & h.quantumMask)
}

// blockSizeFor rounds a requested payload size up to a block size:
// add the 4-byte header, then align.
func (h *Heap) blockSizeFor(payload uint32) uint32 {
	return h.aligned(payload + allocHeaderSize)
}
