package action

import (
	"github.com/statekit/actions.go/logger"
	"github.com/statekit/actions.go/options"
	"github.com/statekit/actions.go/workerpool"
)

// WithChannelName sets the name of a Channel (used in log and defect messages).
func WithChannelName[T any](name string) options.Option[Channel[T]] {
	return func(c *Channel[T]) {
		c.name = name
	}
}

// WithChannelLogger sets the logger that a Channel reports usage errors to.
func WithChannelLogger[T any](log *logger.Logger) options.Option[Channel[T]] {
	return func(c *Channel[T]) {
		c.log = logger.NewWrappedLogger(log)
	}
}

// WithListener configures the read-only callback that a Subscription invokes for every received Action.
func WithListener[T any](callback func(payload T)) options.Option[Subscription[T]] {
	return func(s *Subscription[T]) {
		s.listenFunc = callback
	}
}

// WithResolver configures the resolving callback of a Subscription: for every received Action the Subscription
// reserves the result slot and invokes the callback with a Resolver that either fulfills or abandons the reservation.
func WithResolver[T any](callback func(payload T, resolver *Resolver)) options.Option[Subscription[T]] {
	return func(s *Subscription[T]) {
		s.resolveFunc = callback
	}
}

// WithWorkerPool configures a Subscription to run its callbacks on the given WorkerPool instead of inline on the
// emitting goroutine.
func WithWorkerPool[T any](workerPool *workerpool.WorkerPool) options.Option[Subscription[T]] {
	return func(s *Subscription[T]) {
		s.workerPool = workerPool
	}
}

// WithSubscriptionLogger sets the logger that a Subscription reports usage errors to.
func WithSubscriptionLogger[T any](log *logger.Logger) options.Option[Subscription[T]] {
	return func(s *Subscription[T]) {
		s.log = logger.NewWrappedLogger(log)
	}
}
