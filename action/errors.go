package action

import (
	"github.com/statekit/actions.go/debug"
	"github.com/statekit/actions.go/ierrors"
	"github.com/statekit/actions.go/logger"
)

var (
	// ErrChannelClosed is returned when an action is emitted on a Channel that was closed before.
	ErrChannelClosed = ierrors.New("channel already closed")

	// ErrAlreadyReserved is returned when a subscription tries to reserve a result slot that another reservation is
	// still outstanding on.
	ErrAlreadyReserved = ierrors.New("result already reserved")

	// ErrAlreadyResolved is returned when a result slot is written after it already reached a terminal state.
	ErrAlreadyResolved = ierrors.New("result already resolved")

	// ErrResultTypeMismatch is returned when the deposited result of an action is not assignable to the type the
	// emitter asked for.
	ErrResultTypeMismatch = ierrors.New("result type mismatch")

	// ErrSubscriptionDisposed is returned when a disposed Subscription is attached to a Channel.
	ErrSubscriptionDisposed = ierrors.New("subscription already disposed")
)

// reportDefect escalates a usage error of this package: in debug mode it panics to surface the offending call site,
// otherwise it logs the error and returns it so the surrounding result handshake degrades to an empty result.
func reportDefect(log *logger.WrappedLogger, err error) error {
	if debug.GetEnabled() {
		panic(err)
	}

	log.LogWarn(err)

	return err
}
