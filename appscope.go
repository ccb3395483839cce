package heap

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"
)

// Scope bundles a signal-aware lifecycle context with a wait group
// for background goroutines. The allocator core has no goroutines and
// never touches this; it exists for cmd/heapd.
type Scope struct {
	Log       Logger
	Context   context.Context
	Cancel    context.CancelFunc
	waitGroup sync.WaitGroup
}

// Init sets up Context to cancel on SIGINT/SIGTERM.
func (d *Scope) Init(log Logger) {
	appContext, appCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	d.Log = log
	d.Context = appContext
	d.Cancel = appCancel
}

// Go runs routine in a goroutine tracked by the scope's wait group.
// When routine returns, the scope's context is cancelled so sibling
// goroutines started with Go also wind down. A recovered panic whose
// value is an error is logged at error level; any other panic value
// is logged through Log.Fatal.
func (d *Scope) Go(routine func()) {
	d.waitGroup.Add(1)
	go func() {
		defer func() {
			if e := recover(); e != nil {
				if err, ok := e.(error); ok {
					d.Log.Err().Caller(4).Msg(err.Error())
				} else {
					d.Log.Fatal().Msg(fmt.Sprint(e))
				}
			}
			d.Cancel()
			d.waitGroup.Done()
		}()
		routine()
	}()
}

// Done waits until all goroutines started with Go have returned.
func (d *Scope) Done(cancel bool) {
	if cancel {
		d.Cancel()
	}
	d.waitGroup.Wait()
}
