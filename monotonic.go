package heap

import (
	"sync/atomic"
	"time"
)

// Monotonic produces a strictly increasing int64 sequence derived
// from wall-clock time, used by cmd/heapd to tag each request with an
// id for log correlation. A single diagnostic daemon process has no
// fleet to partition sequence numbers across, so this keeps only the
// collision-avoidance loop that guarantees strict increase even when
// two requests land in the same nanosecond.
type Monotonic struct {
	lastTime atomic.Int64
}

func (m *Monotonic) Next() int64 {
	now := time.Now().UnixNano()

	for {
		lastTime := m.lastTime.Load()
		if now <= lastTime {
			now = lastTime + 1
		}
		if m.lastTime.CompareAndSwap(lastTime, now) {
			return now
		}
	}
}
