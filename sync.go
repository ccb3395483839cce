package heap

import "sync"

// Semaphore gives a concurrent caller a way to serialize access to a
// Heap, which is single-threaded cooperative by design: no internal
// locking, wrap the public API in a mutex externally. cmd/heapd uses
// one with Value 1 as a binary lock around every request that touches
// its Heap.
type Semaphore struct {
	c     *sync.Cond
	Value int
}

func NewSemaphore(n int) *Semaphore {
	return &Semaphore{
		c:     sync.NewCond(&sync.Mutex{}),
		Value: n,
	}
}

func (s *Semaphore) Acquire(n int) {
	s.c.L.Lock()
	for s.Value < n {
		s.c.Wait()
	}
	s.Value -= n
	s.c.L.Unlock()
}

func (s *Semaphore) Release(n int) {
	s.c.L.Lock()
	s.Value += n
	s.c.L.Unlock()
	s.c.Broadcast()
}

// Pool is a bounded generic object pool, used by cmd/heapd to reuse
// the /stats response byte buffer across requests instead of
// allocating one per request.
type Pool[T any] struct {
	new     func() T
	cap     int
	items   []T
	created int
	c       *sync.Cond
}

func NewPool[T any](new func() T, cap int) (ret Pool[T]) {
	ret.new = new
	ret.cap = cap
	ret.c = sync.NewCond(&sync.Mutex{})
	ret.items = make([]T, 0, cap)
	return
}

func (p *Pool[T]) Get() (ret T) {
	p.c.L.Lock()
	for {
		l := len(p.items)
		if l > 0 {
			ret = p.items[l-1]
			p.items = p.items[:l-1]
			p.c.L.Unlock()
			return
		}

		if p.created < p.cap {
			p.created++
			ret = p.new()
			p.c.L.Unlock()
			return
		}

		p.c.Wait()
	}
}

func (p *Pool[T]) Put(item T) {
	p.c.L.Lock()
	p.items = append(p.items, item)
	p.c.L.Unlock()
	p.c.Signal()
}
