package workerpool

import (
	"github.com/statekit/actions.go/options"
)

// WithCapacity sets the capacity (number of workers) of the WorkerPool.
func WithCapacity(capacity int) options.Option[WorkerPool] {
	return func(w *WorkerPool) {
		w.capacity = capacity
	}
}
