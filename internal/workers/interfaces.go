// Package workers runs background jobs of the client process.
//
// A [Worker] is started once with a context and stopped on shutdown.
// [Workers] starts a set of workers together and stops them in reverse
// order. [PeriodicJob] is the ticker-driven worker used for recurring tasks
// such as refreshing the signed-in user's profile.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start must not block: long-running work belongs in a goroutine that exits
// when ctx is cancelled or Stop is called. Stop blocks until that goroutine
// has exited and is a no-op when the worker is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
