//go:build heap_debug

package heap

// checkInvariants is compiled in only under the heap_debug build tag.
// Internal consistency errors here are unreachable via the public
// API; this panics rather than returning an error because by the time
// it fires the caller has already lost, and a silent wrong answer is
// worse than a loud one.
func (h *Heap) checkInvariants(where string) {
	if err := h.CheckInvariants(); err != nil {
		panic("heap: invariant violated after " + where + ": " + err.Error())
	}
}
