package action

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/atomic"

	"github.com/statekit/actions.go/debug"
	"github.com/statekit/actions.go/event"
	"github.com/statekit/actions.go/ierrors"
	"github.com/statekit/actions.go/logger"
	"github.com/statekit/actions.go/options"
	"github.com/statekit/actions.go/shrinkingmap"
	"github.com/statekit/actions.go/syncutils"
	"github.com/statekit/actions.go/workerpool"
)

// Subscription connects action handlers to a Channel. It forwards every received Action to an optional read-only
// listener, and optionally reserves the result slot of the Action for a resolving callback that answers the parked
// emitter through a Resolver.
//
// A Subscription is attached to at most one Channel at a time and releases everything that is still in flight
// whenever that attachment ends (Detach, Dispose, a replacing Attach or the Channel closing). Attach and Detach must
// not be called from inside the callbacks of the Subscription itself.
type Subscription[T any] struct {
	// listenFunc is the read-only callback that is invoked for every received Action.
	listenFunc func(payload T)

	// resolveFunc is the resolving callback that answers the emitters of received actions.
	resolveFunc func(payload T, resolver *Resolver)

	// workerPool is the optional pool the callbacks are submitted to (they run inline on the emitting goroutine
	// otherwise).
	workerPool *workerpool.WorkerPool

	// log is used to report usage errors.
	log *logger.WrappedLogger

	// channel is the Channel the Subscription is currently attached to.
	channel *Channel[T]

	// dispatchHook is the registration of the deliver method with the dispatch event of the attached Channel.
	dispatchHook *event.Hook[func(*Action[T])]

	// closedDetach unregisters the callback that detaches the Subscription when the attached Channel closes.
	closedDetach func()

	// inflight contains the reservations that the resolving callback did not answer yet.
	inflight *shrinkingmap.ShrinkingMap[uint64, *Action[T]]

	// disposed is set as soon as the Subscription is retired for good.
	disposed atomic.Bool

	// resolverTrace is the stack trace of the resolving callback (only set in debug mode).
	resolverTrace string

	// mutex is used to synchronize attachment changes.
	mutex syncutils.Mutex
}

// NewSubscription creates a new Subscription. It starts out detached and is connected to a Channel with Attach.
func NewSubscription[T any](opts ...options.Option[Subscription[T]]) *Subscription[T] {
	return options.Apply(&Subscription[T]{
		inflight: shrinkingmap.New[uint64, *Action[T]](),
	}, opts, func(s *Subscription[T]) {
		if s.log == nil {
			s.log = logger.NewWrappedLogger(nil)
		}

		if debug.GetEnabled() && s.resolveFunc != nil {
			s.resolverTrace = debug.ClosureStackTrace(s.resolveFunc)
		}
	})
}

// Attach connects the Subscription to the given Channel and replaces a previous attachment, abandoning in-flight
// reservations on the previous Channel exactly as if Detach had been called first. Attaching to a nil or already
// closed Channel just detaches, attaching to the Channel the Subscription is already attached to is a no-op and
// attaching a disposed Subscription is a usage error.
func (s *Subscription[T]) Attach(channel *Channel[T]) error {
	s.mutex.Lock()

	if s.disposed.Load() {
		s.mutex.Unlock()

		return reportDefect(s.log, ierrors.Wrap(ErrSubscriptionDisposed, "cannot attach"))
	}

	if s.channel == channel {
		s.mutex.Unlock()

		return nil
	}

	s.detachFromCurrent()

	if channel == nil || channel.IsClosed() {
		s.mutex.Unlock()

		return nil
	}

	s.channel = channel
	s.dispatchHook = channel.dispatch.Hook(s.deliver)
	s.mutex.Unlock()

	// registered outside the lock because the callback fires inline when the channel closed in the meantime
	unsubscribe := channel.closed.OnTrigger(func() {
		s.detachFromClosed(channel)
	})

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.channel != channel {
		unsubscribe()

		return nil
	}

	s.closedDetach = unsubscribe

	return nil
}

// Detach disconnects the Subscription from its current Channel. Reservations that the resolving callback did not
// answer yet are abandoned so that the corresponding parked emitters resolve without a result. Detaching an already
// detached Subscription is a no-op.
func (s *Subscription[T]) Detach() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.detachFromCurrent()
}

// Dispose retires the Subscription for good: it detaches from the current Channel and refuses any future Attach.
// Dispose is idempotent.
func (s *Subscription[T]) Dispose() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.disposed.Store(true)

	s.detachFromCurrent()
}

// IsDisposed reports whether the Subscription was disposed.
func (s *Subscription[T]) IsDisposed() bool {
	return s.disposed.Load()
}

// Channel returns the Channel the Subscription is currently attached to (nil when detached).
func (s *Subscription[T]) Channel() *Channel[T] {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.channel
}

// deliver handles a single Action during the fan-out of the attached Channel: it runs the read-only listener and, if
// a resolving callback is configured, claims the result slot and hands the reservation to that callback.
func (s *Subscription[T]) deliver(receivedAction *Action[T]) {
	if s.listenFunc != nil {
		s.submit(func() {
			s.listenFunc(receivedAction.payload)
		})
	}

	if s.resolveFunc == nil {
		return
	}

	if !s.claim(receivedAction) {
		return
	}

	if debug.GetEnabled() {
		go s.detectStalledReservation(receivedAction)
	}

	s.submit(func() {
		s.resolveFunc(receivedAction.payload, s.newResolver(receivedAction))
	})
}

// claim reserves the result slot of the given Action and tracks the reservation so the teardown sweeps can release
// it again. A claim that races a concurrent detach of the Subscription is released immediately.
func (s *Subscription[T]) claim(receivedAction *Action[T]) (claimed bool) {
	if !receivedAction.slot.reserve() {
		return false
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.channel != receivedAction.channel {
		receivedAction.slot.abandon()

		return false
	}

	s.inflight.Set(receivedAction.id, receivedAction)

	return true
}

// newResolver creates the single-writer handle for the given reserved Action.
func (s *Subscription[T]) newResolver(reservedAction *Action[T]) *Resolver {
	return &Resolver{
		fulfillFunc: func(value any) bool {
			s.inflight.Delete(reservedAction.id)

			return reservedAction.slot.fulfill(value)
		},
		abandonFunc: func() bool {
			s.inflight.Delete(reservedAction.id)

			return reservedAction.slot.abandon()
		},
	}
}

// submit runs the given callback inline or on the configured WorkerPool.
func (s *Subscription[T]) submit(callback func()) {
	if s.workerPool != nil {
		s.workerPool.Submit(callback)

		return
	}

	callback()
}

// detachFromClosed detaches the Subscription when the given Channel announces its closing (unless it was re-attached
// somewhere else in the meantime).
func (s *Subscription[T]) detachFromClosed(channel *Channel[T]) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.channel != channel {
		return
	}

	s.detachFromCurrent()
}

// detachFromCurrent releases the current attachment (the caller must hold the mutex).
func (s *Subscription[T]) detachFromCurrent() {
	if s.channel == nil {
		return
	}

	if s.closedDetach != nil {
		s.closedDetach()
		s.closedDetach = nil
	}

	s.dispatchHook.Unhook()
	s.dispatchHook = nil
	s.channel = nil

	for {
		_, inflightAction, exists := s.inflight.Pop()
		if !exists {
			break
		}

		inflightAction.slot.abandon()
	}
}

// detectStalledReservation is a debug method that prints information about reservations that are neither fulfilled
// nor abandoned in time.
func (s *Subscription[T]) detectStalledReservation(reservedAction *Action[T]) {
	timer := time.NewTimer(debug.StallDetectionTimeout)
	defer timer.Stop()

	resolvedChan := make(chan struct{})
	defer reservedAction.slot.done.OnTrigger(func() { close(resolvedChan) })()

	select {
	case <-resolvedChan:
		return
	case <-timer.C:
		fmt.Printf("reservation of action %d seems to be stalled (%s) ...\n", reservedAction.id, debug.StallDetectionTimeout)

		if reservedAction.stackTrace != "" {
			fmt.Println("\n" + strings.Replace(reservedAction.stackTrace, "called by", "emitted by", 1))
		}

		if s.resolverTrace != "" {
			fmt.Println("\n" + strings.Replace(strings.Replace(s.resolverTrace, "closure:", "resolver:", 1), "called by", "reserved by", 1))
		}
	}
}
