// Package workers runs background tasks for the host.
//
// A [Runtime] is the single task executor of the process. It is created
// cheaply and initialised on first use, bounds the number of concurrently
// running tasks, and cancels everything it runs on Shutdown.
package workers

import "context"

// Worker is a long-lived background job started with [Runtime.Go].
//
// Run must block until ctx is cancelled or the work is finished.
//
// Example implementation:
//
//	type ticker struct{ every time.Duration }
//
//	func (w *ticker) Run(ctx context.Context) {
//	    t := time.NewTicker(w.every)
//	    defer t.Stop()
//	    for {
//	        select {
//	        case <-ctx.Done():
//	            return
//	        case <-t.C:
//	            // poll
//	        }
//	    }
//	}
type Worker interface {
	Run(ctx context.Context)
}

// WorkerFunc adapts a plain function to [Worker].
type WorkerFunc func(ctx context.Context)

// Run calls f(ctx).
func (f WorkerFunc) Run(ctx context.Context) { f(ctx) }
