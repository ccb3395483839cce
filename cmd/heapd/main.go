// Command heapd is a small diagnostic daemon that owns one heap.Heap
// over a configured backing buffer — in-process by default, or a
// memory-mapped file when HEAP_FILE is set — and exposes
// allocate/free/stats over HTTP, so the allocator's behavior can be
// poked at from outside a test binary. It is not part of the
// allocator's public contract — see heap.Heap for that.
package main

import (
	"heap"
	"heap/structured_logger"
	"os"
)

type config struct {
	ListenAddr string `env:"LISTEN_ADDR" default:":8080"`
	LogLevel   string `env:"LOG_LEVEL" default:"info"`
	HeapSize   int32  `env:"HEAP_SIZE" default:"1048576"`
	Quantum    int32  `env:"BLOCK_QUANTUM" default:"64"`
	HeapFile   string `env:"HEAP_FILE" default:""`
}

// provisionBuffer returns the backing buffer for the heap: a
// memory-mapped file when cfg.HeapFile is set, so the managed region
// can be inspected on disk (heap.New still re-Inits it on every
// start), or a plain
// in-process slice otherwise. mf is non-nil only in the mmap case and
// must be closed by the caller once the heap is done with it.
func provisionBuffer(cfg *config) (buf []byte, mf *heap.MmapFile, err error) {
	if cfg.HeapFile == "" {
		return make([]byte, cfg.HeapSize), nil, nil
	}

	mf = &heap.MmapFile{}
	if err = mf.Init(int(cfg.HeapSize), cfg.HeapFile); err != nil {
		return nil, nil, err
	}
	return mf.Data, mf, nil
}

func main() {
	cfg := heap.LoadConfig[config]()
	logger := structured_logger.NewLogger(cfg.LogLevel)
	heap.Log = logger

	var scope heap.Scope
	scope.Init(logger)

	buf, mf, err := provisionBuffer(cfg)
	heap.Assert(err)
	if mf != nil {
		defer mf.Close()
	}

	h, err := heap.New(buf, 0, uint32(cfg.Quantum))
	heap.Assert(err)

	d := newDaemon(h, logger)

	app, err := heap.NewFiber(d.routes)
	heap.Assert(err)

	scope.Go(func() {
		if err := app.Start(scope.Context, cfg.ListenAddr, 0); err != nil {
			logger.Err().Msg(err.Error())
		}
	})

	scope.Done(false)
	os.Exit(0)
}
