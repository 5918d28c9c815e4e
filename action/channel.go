package action

import (
	"context"
	"runtime"

	"go.uber.org/atomic"

	"github.com/statekit/actions.go/event"
	"github.com/statekit/actions.go/ierrors"
	"github.com/statekit/actions.go/logger"
	"github.com/statekit/actions.go/options"
	"github.com/statekit/actions.go/promise"
	"github.com/statekit/actions.go/shrinkingmap"
)

// Channel is a broadcast stream of actions that is owned by a single state-holder. Every emitted payload is delivered
// to all attached subscriptions in the order in which they attached, and each emit optionally waits for one of them
// to deposit a result in the slot of the corresponding Action.
type Channel[T any] struct {
	// name is the name of the Channel (used in log and defect messages).
	name string

	// log is used to report usage errors.
	log *logger.WrappedLogger

	// dispatch delivers emitted actions to the attached subscriptions.
	dispatch *event.Event1[*Action[T]]

	// closed is triggered as soon as the Channel is closed.
	closed *promise.Event

	// pending contains the actions whose result handshake did not conclude yet.
	pending *shrinkingmap.ShrinkingMap[uint64, *Action[T]]

	// actionCounter is used to assign a unique id to each emitted Action.
	actionCounter atomic.Uint64
}

// NewChannel creates a new Channel for the given payload type.
func NewChannel[T any](opts ...options.Option[Channel[T]]) *Channel[T] {
	return options.Apply(&Channel[T]{
		dispatch: event.New1[*Action[T]](),
		closed:   promise.NewEvent(),
		pending:  shrinkingmap.New[uint64, *Action[T]](),
	}, opts, func(c *Channel[T]) {
		if c.log == nil {
			c.log = logger.NewWrappedLogger(nil)
		}
	})
}

// Name returns the name of the Channel.
func (c *Channel[T]) Name() string {
	return c.name
}

// Emit publishes the given payload to all attached subscriptions and plays out the result handshake: if one of the
// subscriptions reserves the result slot of the Action during the fan-out, Emit parks until that reservation is
// either fulfilled or abandoned, otherwise it returns right away.
//
// The returned result is nil whenever no subscription answered with a value (nobody attached, nobody reserved, the
// reservation was abandoned or the answer itself was nil). Canceling the context only stops the wait - an outstanding
// reservation stays valid and is released by the usual teardown sweeps. Emitting on a closed Channel is a usage error
// that yields no result.
func (c *Channel[T]) Emit(ctx context.Context, payload T) (result any, err error) {
	if c.IsClosed() {
		return nil, reportDefect(c.log, ierrors.Wrapf(ErrChannelClosed, "cannot emit on channel '%s'", c.name))
	}

	emittedAction := newAction(c, c.actionCounter.Inc(), payload)

	c.pending.Set(emittedAction.id, emittedAction)
	defer c.pending.Delete(emittedAction.id)

	c.dispatch.Trigger(emittedAction)

	// give handlers that were scheduled during the fan-out a chance to claim the result slot before deciding that
	// nobody wants to answer
	runtime.Gosched()

	if emittedAction.slot.abandonIfUnset() {
		return nil, nil
	}

	if waitErr := emittedAction.slot.await(ctx); waitErr != nil {
		return nil, waitErr
	}

	return emittedAction.slot.result(), nil
}

// IsClosed reports whether the Channel was closed.
func (c *Channel[T]) IsClosed() bool {
	return c.closed.WasTriggered()
}

// Close closes the Channel: attached subscriptions detach themselves, outstanding reservations are abandoned so that
// parked emitters resolve without a result, and later emits fail without reaching any subscription. Closing an
// already closed Channel is a no-op.
func (c *Channel[T]) Close() {
	if !c.closed.Trigger() {
		return
	}

	for {
		_, pendingAction, exists := c.pending.Pop()
		if !exists {
			break
		}

		pendingAction.slot.abandon()
	}

	c.dispatch.UnhookAll()
}
