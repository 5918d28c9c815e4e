package action

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/statekit/actions.go/debug"
	"github.com/statekit/actions.go/logger"
)

func TestResultSlotLifecycle(t *testing.T) {
	slot := newResultSlot(1, logger.NewWrappedLogger(nil))

	require.True(t, slot.reserve())
	require.False(t, slot.reserve())
	require.True(t, slot.fulfill("answer"))
	require.Equal(t, "answer", slot.result())
	require.False(t, slot.fulfill("too late"))
	require.False(t, slot.abandon())
	require.Equal(t, "answer", slot.result())
}

func TestResultSlotAbandon(t *testing.T) {
	slot := newResultSlot(1, logger.NewWrappedLogger(nil))

	require.True(t, slot.reserve())
	require.True(t, slot.abandon())
	require.Nil(t, slot.result())
	require.False(t, slot.fulfill("too late"))
}

func TestResultSlotAbandonIfUnset(t *testing.T) {
	unclaimedSlot := newResultSlot(1, logger.NewWrappedLogger(nil))
	require.True(t, unclaimedSlot.abandonIfUnset())
	require.False(t, unclaimedSlot.abandonIfUnset())

	claimedSlot := newResultSlot(2, logger.NewWrappedLogger(nil))
	require.True(t, claimedSlot.reserve())
	require.False(t, claimedSlot.abandonIfUnset())
}

func TestResultSlotDefectsPanicInDebugMode(t *testing.T) {
	debug.SetEnabled(true)
	t.Cleanup(func() { debug.SetEnabled(false) })

	slot := newResultSlot(1, logger.NewWrappedLogger(nil))
	require.True(t, slot.reserve())
	require.Panics(t, func() { slot.reserve() })
	require.True(t, slot.fulfill(42))
	require.Panics(t, func() { slot.fulfill(43) })
}

func TestResultSlotToleratesTerminalRaces(t *testing.T) {
	debug.SetEnabled(true)
	t.Cleanup(func() { debug.SetEnabled(false) })

	slot := newResultSlot(1, logger.NewWrappedLogger(nil))
	require.True(t, slot.abandonIfUnset())

	// losing against an already terminal slot is an ordinary race, not a defect
	require.NotPanics(t, func() { require.False(t, slot.reserve()) })
	require.NotPanics(t, func() { require.False(t, slot.abandon()) })
}

func TestResultSlotAwait(t *testing.T) {
	slot := newResultSlot(1, logger.NewWrappedLogger(nil))
	require.True(t, slot.reserve())

	go func() {
		time.Sleep(10 * time.Millisecond)
		slot.fulfill("late answer")
	}()

	require.NoError(t, slot.await(context.Background()))
	require.Equal(t, "late answer", slot.result())
}

func TestResultSlotAwaitAlreadyTerminal(t *testing.T) {
	slot := newResultSlot(1, logger.NewWrappedLogger(nil))

	require.True(t, slot.reserve())
	require.True(t, slot.fulfill("answer"))
	require.NoError(t, slot.await(context.Background()))
}

func TestResultSlotAwaitCancellation(t *testing.T) {
	slot := newResultSlot(1, logger.NewWrappedLogger(nil))
	require.True(t, slot.reserve())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, slot.await(ctx), context.Canceled)

	// a canceled wait does not invalidate the reservation
	require.True(t, slot.fulfill("after the emitter gave up"))
}
