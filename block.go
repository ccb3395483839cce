package heap

import "encoding/binary"

// block is a cursor over a region of the backing buffer, offset by
// the block's address. It never copies the buffer; reads and writes
// go straight through to h.buf. Referring to neighbors by byte offset
// rather than native pointer keeps the structure relocatable with the
// buffer, per the design notes: offsets survive the buffer being
// moved or reloaded, native pointers would not.
type block struct {
	h      *Heap
	offset uint32
}

func (h *Heap) at(offset uint32) block {
	return block{h: h, offset: offset}
}

func (b block) field(off int) []byte {
	base := int(b.offset) + off
	return b.h.buf[base : base+4]
}

func (b block) size() uint32        { return binary.LittleEndian.Uint32(b.field(fieldSize)) }
func (b block) setSize(v uint32)    { binary.LittleEndian.PutUint32(b.field(fieldSize), v) }
func (b block) next() uint32        { return binary.LittleEndian.Uint32(b.field(fieldNext)) }
func (b block) setNext(v uint32)    { binary.LittleEndian.PutUint32(b.field(fieldNext), v) }
func (b block) prev() uint32        { return binary.LittleEndian.Uint32(b.field(fieldPrev)) }
func (b block) setPrev(v uint32)    { binary.LittleEndian.PutUint32(b.field(fieldPrev), v) }
func (b block) smaller() uint32     { return binary.LittleEndian.Uint32(b.field(fieldSmaller)) }
func (b block) setSmaller(v uint32) { binary.LittleEndian.PutUint32(b.field(fieldSmaller), v) }
func (b block) larger() uint32      { return binary.LittleEndian.Uint32(b.field(fieldLarger)) }
func (b block) setLarger(v uint32)  { binary.LittleEndian.PutUint32(b.field(fieldLarger), v) }

// payload returns the byte offset handed back to callers: the block's
// address plus the 4-byte size-field header.
func (b block) payload() uint32 { return b.offset + allocHeaderSize }

// end returns the offset one past the block's extent.
func (b block) end() uint32 { return b.offset + b.size() }

// clearLinks sets all four link fields to NIL. Used when a block is
// written fresh (init, split remainder, lone free-list member).
func (b block) clearLinks() {
	b.setNext(NIL)
	b.setPrev(NIL)
	b.setSmaller(NIL)
	b.setLarger(NIL)
}

// patch writes value through setter on the block at offset, unless
// offset is NIL, in which case it is a no-op. Every neighbor-mirror
// update in insert/remove is a pair of these calls, one per side of
// the link being severed or spliced; treating NIL as a no-op here is
// what collapses the four-neighbor case analysis into straight-line
// code instead of branchy special-casing.
func (h *Heap) patch(offset uint32, setter func(block, uint32), value uint32) {
	if offset != NIL {
		setter(h.at(offset), value)
	}
}
