package workerpool

import (
	"fmt"
	"strings"
	"time"

	"github.com/statekit/actions.go/debug"
)

// Task is a single unit of work that is executed by a WorkerPool.
type Task struct {
	workerPool *WorkerPool
	workerFunc func()
	doneChan   chan struct{}
	stackTrace string
}

// newTask creates a new Task.
func newTask(workerPool *WorkerPool, workerFunc func(), stackTrace string) *Task {
	if debug.GetEnabled() && stackTrace == "" {
		stackTrace = debug.ClosureStackTrace(workerFunc)
	}

	return &Task{
		workerPool: workerPool,
		workerFunc: workerFunc,
		doneChan:   make(chan struct{}),
		stackTrace: stackTrace,
	}
}

// run executes the task.
func (t *Task) run() {
	if debug.GetEnabled() {
		go t.detectHangingTask()
	}

	defer t.markDone()
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("recovered from panic in worker pool '%s': %s\n%s\n", t.workerPool.Name, r, debug.StackTrace(false, 0))
		}
	}()

	t.workerFunc()
}

// markDone marks the task as done.
func (t *Task) markDone() {
	close(t.doneChan)
	t.workerPool.PendingTasksCounter.Decrease()
}

// detectHangingTask is a debug method that prints information about tasks that run for too long.
func (t *Task) detectHangingTask() {
	timer := time.NewTimer(debug.StallDetectionTimeout)
	defer timer.Stop()

	select {
	case <-t.doneChan:
		return
	case <-timer.C:
		fmt.Println("task in worker pool '" + t.workerPool.Name + "' seems to hang (" + debug.StallDetectionTimeout.String() + ") ...")
		fmt.Println("\n" + strings.Replace(strings.Replace(t.stackTrace, "closure:", "task:", 1), "called by", "queued by", 1))
	}
}
