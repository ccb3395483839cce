package main

import (
	"heap"
	"heap/structured_logger"

	fiber "github.com/gofiber/fiber/v2"
)

// daemon serializes every request against h through sem: a
// single-threaded heap.Heap must be wrapped in an external mutex by
// any concurrent caller, and an HTTP server is exactly such a caller
// since fiber dispatches handlers on goroutines per connection.
type daemon struct {
	h    *heap.Heap
	log  *structured_logger.Logger
	sem  *heap.Semaphore
	seq  heap.Monotonic
	bufs heap.Pool[[]byte]
}

func newDaemon(h *heap.Heap, log *structured_logger.Logger) *daemon {
	return &daemon{
		h:   h,
		log: log,
		sem: heap.NewSemaphore(1),
		bufs: heap.NewPool(func() []byte {
			return make([]byte, 0, 256)
		}, 64),
	}
}

func (d *daemon) withHeap(f func() error) error {
	d.sem.Acquire(1)
	defer d.sem.Release(1)
	return f()
}

func (d *daemon) routes(app *fiber.App) error {
	app.Post("/alloc", d.handleAlloc)
	app.Post("/free", d.handleFree)
	app.Post("/realloc", d.handleRealloc)
	app.Get("/stats", d.handleStats)
	return nil
}
