// Package workers runs the server's background jobs.
//
// A [Worker] blocks in Run until its context is cancelled; [Workers] starts
// a group of them side by side and waits for all to return.
package workers

import "context"

// Worker is a long-running background job.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}
