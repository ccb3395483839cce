//go:build !heap_debug

package heap

// checkInvariants is a no-op in normal builds; invariant walking is
// O(n) and not something the allocator pays for outside heap_debug or
// tests calling CheckInvariants directly.
func (h *Heap) checkInvariants(where string) {}
