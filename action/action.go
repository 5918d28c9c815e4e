package action

import (
	"github.com/statekit/actions.go/debug"
)

// Action is the envelope that a Channel wraps around a single emitted payload. It combines the payload with the
// single-writer result slot that carries the optional answer of a subscription back to the emitter.
type Action[T any] struct {
	// id is the unique identifier of the Action within its Channel.
	id uint64

	// channel is the Channel the Action was emitted on.
	channel *Channel[T]

	// payload is the emitted payload.
	payload T

	// slot tracks the result handshake between the emitter and the subscription that answers it.
	slot *resultSlot

	// stackTrace is the stack trace of the emitter (only set in debug mode).
	stackTrace string
}

// newAction creates a new Action around the given payload.
func newAction[T any](channel *Channel[T], id uint64, payload T) *Action[T] {
	a := &Action[T]{
		id:      id,
		channel: channel,
		payload: payload,
		slot:    newResultSlot(id, channel.log),
	}

	if debug.GetEnabled() {
		a.stackTrace = debug.CallerStackTrace()
	}

	return a
}

// Payload returns the payload that was emitted with this Action.
func (a *Action[T]) Payload() T {
	return a.payload
}
