package action

import (
	"context"

	"github.com/statekit/actions.go/ierrors"
	"github.com/statekit/actions.go/logger"
	"github.com/statekit/actions.go/promise"
	"github.com/statekit/actions.go/syncutils"
)

// region resultSlot

// resultSlot is the single-writer cell that carries the optional answer of an Action back to its emitter. It moves
// from unset to reserved to fulfilled, or sideways to abandoned, but never back to an earlier state.
type resultSlot struct {
	// id is the identifier of the Action the slot belongs to (used in defect messages).
	id uint64

	// state is the current lifecycle state of the slot.
	state slotState

	// value is the deposited result (only set when the slot was fulfilled).
	value any

	// done is triggered as soon as the slot reaches a terminal state.
	done *promise.Event

	// log is used to report usage errors.
	log *logger.WrappedLogger

	// mutex is used to synchronize the state transitions.
	mutex syncutils.Mutex
}

// newResultSlot creates a new resultSlot for the Action with the given id.
func newResultSlot(id uint64, log *logger.WrappedLogger) *resultSlot {
	return &resultSlot{
		id:   id,
		done: promise.NewEvent(),
		log:  log,
	}
}

// reserve claims the exclusive right to write the slot. Claiming a slot that another reservation is still outstanding
// on is a usage error, while losing against a slot that already reached a terminal state is an ordinary race that is
// not reported.
func (r *resultSlot) reserve() (granted bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	switch r.state {
	case slotUnset:
		r.state = slotReserved

		return true
	case slotReserved:
		_ = reportDefect(r.log, ierrors.Wrapf(ErrAlreadyReserved, "action %d", r.id))

		return false
	default:
		return false
	}
}

// fulfill completes the slot with the given value and wakes the parked emitter. Writing a slot that already reached a
// terminal state is a usage error.
func (r *resultSlot) fulfill(value any) (fulfilled bool) {
	r.mutex.Lock()
	if reachedState := r.state; reachedState == slotFulfilled || reachedState == slotAbandoned {
		r.mutex.Unlock()

		_ = reportDefect(r.log, ierrors.Wrapf(ErrAlreadyResolved, "action %d is already %s", r.id, reachedState))

		return false
	}

	r.state = slotFulfilled
	r.value = value
	r.mutex.Unlock()

	r.done.Trigger()

	return true
}

// abandon completes the slot without a value and wakes the parked emitter. Abandoning a slot that already reached a
// terminal state is a no-op, so teardown sweeps and racing writers can overlap safely.
func (r *resultSlot) abandon() (abandoned bool) {
	r.mutex.Lock()
	if r.state == slotFulfilled || r.state == slotAbandoned {
		r.mutex.Unlock()

		return false
	}

	r.state = slotAbandoned
	r.mutex.Unlock()

	r.done.Trigger()

	return true
}

// abandonIfUnset abandons the slot if no subscription claimed it yet and reports whether it did.
func (r *resultSlot) abandonIfUnset() (abandoned bool) {
	r.mutex.Lock()
	if r.state != slotUnset {
		r.mutex.Unlock()

		return false
	}

	r.state = slotAbandoned
	r.mutex.Unlock()

	r.done.Trigger()

	return true
}

// result returns the value the slot was fulfilled with (nil if it was abandoned).
func (r *resultSlot) result() any {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.state != slotFulfilled {
		return nil
	}

	return r.value
}

// await blocks until the slot reaches a terminal state or the given context is canceled.
func (r *resultSlot) await(ctx context.Context) error {
	doneChan := make(chan struct{})
	defer r.done.OnTrigger(func() { close(doneChan) })()

	select {
	case <-doneChan:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// endregion

// region slotState

// slotState is the lifecycle state of a resultSlot.
type slotState uint8

const (
	// slotUnset is the state of a slot that nobody claimed yet.
	slotUnset slotState = iota

	// slotReserved is the state of a slot that a subscription promised to write.
	slotReserved

	// slotFulfilled is the state of a slot that holds a deposited result.
	slotFulfilled

	// slotAbandoned is the state of a slot that was released without a result.
	slotAbandoned
)

// String returns a human-readable version of the slotState.
func (s slotState) String() string {
	switch s {
	case slotUnset:
		return "unset"
	case slotReserved:
		return "reserved"
	case slotFulfilled:
		return "fulfilled"
	default:
		return "abandoned"
	}
}

// endregion
