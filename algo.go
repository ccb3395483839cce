package heap

// BinarySearch returns the position of x in the sorted slice a, and
// whether it was found. When not found, pos is the index of the
// largest element less than x (or -1). The allocator's own free-list
// search (alloc.go) never uses this — its size ordering is a linked
// structure, not a sorted slice — but the invariant-checking test
// helpers use it to confirm membership consistency between snapshots
// of the two orderings without an O(n) scan per check.
func BinarySearch[T ~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64 | ~string](
	a []T,
	x T,
) (pos int, found bool) {
	start, pos, end := 0, 0, len(a)-1
	for start <= end {
		pos = (start + end) >> 1
		switch {
		case a[pos] > x:
			end = pos - 1
		case a[pos] < x:
			start = pos + 1
		default:
			found = true
			return
		}
	}
	return end, found
}
