package workerpool

import (
	"fmt"
	"runtime"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/atomic"

	"github.com/statekit/actions.go/options"
	"github.com/statekit/actions.go/syncutils"
)

// WorkerPool is a blocking goroutine pool with fixed capacity that manages and recycles workers,
// allowing callers to limit the number of goroutines in their concurrent code.
type WorkerPool struct {
	// Name is the name of the WorkerPool.
	Name string

	// PendingTasksCounter tracks the number of tasks that were submitted but did not finish, yet.
	PendingTasksCounter *syncutils.Counter

	pool      *ants.Pool
	capacity  int
	isRunning atomic.Bool
	mutex     syncutils.Mutex
}

// New creates a new WorkerPool with the given name and options.
func New(name string, opts ...options.Option[WorkerPool]) *WorkerPool {
	return options.Apply(&WorkerPool{
		Name:                name,
		PendingTasksCounter: syncutils.NewCounter(),
		capacity:            2 * runtime.NumCPU(),
	}, opts)
}

// Start starts the WorkerPool and returns it for chaining.
func (w *WorkerPool) Start() (self *WorkerPool) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.isRunning.Load() {
		pool, err := ants.NewPool(w.capacity, ants.WithNonblocking(false))
		if err != nil {
			panic(err)
		}

		w.pool = pool
		w.isRunning.Store(true)
	}

	return w
}

// Submit submits a new task to the WorkerPool (it waits if not enough workers are available).
func (w *WorkerPool) Submit(workerFunc func(), optStackTrace ...string) {
	if !w.isRunning.Load() {
		panic(fmt.Sprintf("worker pool '%s' is not running", w.Name))
	}

	var stackTrace string
	if len(optStackTrace) >= 1 {
		stackTrace = optStackTrace[0]
	}

	w.PendingTasksCounter.Increase()

	if antsErr := w.pool.Submit(newTask(w, workerFunc, stackTrace).run); antsErr != nil {
		w.PendingTasksCounter.Decrease()

		panic(antsErr)
	}
}

// IsRunning returns true if the WorkerPool is running.
func (w *WorkerPool) IsRunning() (isRunning bool) {
	return w.isRunning.Load()
}

// Capacity returns the capacity (number of workers) of the WorkerPool.
func (w *WorkerPool) Capacity() (capacity int) {
	return w.capacity
}

// Tune changes the capacity of the WorkerPool.
func (w *WorkerPool) Tune(capacity int) (self *WorkerPool) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	w.capacity = capacity

	if w.isRunning.Load() {
		w.pool.Tune(capacity)
	}

	return w
}

// RunningWorkers returns the number of workers that are currently executing a task.
func (w *WorkerPool) RunningWorkers() (workerCount int) {
	if !w.isRunning.Load() {
		return 0
	}

	return w.pool.Running()
}

// IdleWorkers returns the number of available (idle) workers.
func (w *WorkerPool) IdleWorkers() (workerCount int) {
	if !w.isRunning.Load() {
		return 0
	}

	return w.pool.Free()
}

// Shutdown immediately stops the WorkerPool (see ShutdownGracefully for a variant that waits for pending tasks
// to finish).
func (w *WorkerPool) Shutdown() (self *WorkerPool) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.isRunning.Load() {
		w.isRunning.Store(false)

		go w.pool.Release()
	}

	return w
}

// ShutdownGracefully stops the WorkerPool and waits for the pending tasks to finish.
func (w *WorkerPool) ShutdownGracefully() (self *WorkerPool) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.isRunning.Load() {
		w.PendingTasksCounter.WaitIsZero()
		w.isRunning.Store(false)

		go w.pool.Release()
	}

	return w
}
