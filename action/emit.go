package action

import (
	"context"

	"github.com/statekit/actions.go/ierrors"
)

// Emit publishes the given payload on the given Channel and converts the outcome of the result handshake to the
// requested type. The hasResult flag reports whether one of the subscriptions answered with a value - it is false
// when nobody reserved the result slot, when the reservation was abandoned or when the deposited answer was nil.
//
// Depositing a value that is not assignable to R is a usage error of the resolving side that degrades to an empty
// result.
func Emit[R any, T any](ctx context.Context, channel *Channel[T], payload T) (result R, hasResult bool, err error) {
	rawResult, err := channel.Emit(ctx, payload)
	if err != nil || rawResult == nil {
		return result, false, err
	}

	typedResult, ok := rawResult.(R)
	if !ok {
		return result, false, reportDefect(channel.log, ierrors.Wrapf(ErrResultTypeMismatch, "expected %T but the action was answered with %T", result, rawResult))
	}

	return typedResult, true, nil
}
