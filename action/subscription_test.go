package action

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/statekit/actions.go/debug"
	"github.com/statekit/actions.go/workerpool"
)

func TestAttachIsIdempotent(t *testing.T) {
	channel := NewChannel[string]()
	defer channel.Close()

	deliveries := 0
	subscription := NewSubscription(WithListener(func(string) {
		deliveries++
	}))
	require.NoError(t, subscription.Attach(channel))
	require.NoError(t, subscription.Attach(channel))
	defer subscription.Dispose()

	_, err := channel.Emit(context.Background(), "once")
	require.NoError(t, err)
	require.Equal(t, 1, deliveries)
	require.Same(t, channel, subscription.Channel())
}

func TestAttachReplacesPreviousAttachment(t *testing.T) {
	firstChannel := NewChannel[string]()
	defer firstChannel.Close()
	secondChannel := NewChannel[string]()
	defer secondChannel.Close()

	var received []string
	subscription := NewSubscription(WithListener(func(payload string) {
		received = append(received, payload)
	}))
	require.NoError(t, subscription.Attach(firstChannel))
	require.NoError(t, subscription.Attach(secondChannel))
	defer subscription.Dispose()

	_, err := firstChannel.Emit(context.Background(), "into the void")
	require.NoError(t, err)
	_, err = secondChannel.Emit(context.Background(), "heard")
	require.NoError(t, err)

	require.Equal(t, []string{"heard"}, received)
	require.Same(t, secondChannel, subscription.Channel())
}

func TestAttachNilDetaches(t *testing.T) {
	channel := NewChannel[string]()
	defer channel.Close()

	subscription := NewSubscription[string]()
	require.NoError(t, subscription.Attach(channel))
	require.Same(t, channel, subscription.Channel())

	require.NoError(t, subscription.Attach(nil))
	require.Nil(t, subscription.Channel())
}

func TestAttachToClosedChannel(t *testing.T) {
	channel := NewChannel[string]()
	channel.Close()

	subscription := NewSubscription[string]()
	require.NoError(t, subscription.Attach(channel))
	require.Nil(t, subscription.Channel())
}

func TestDetachReleasesParkedEmit(t *testing.T) {
	channel := NewChannel[string]()
	defer channel.Close()

	reserved := make(chan struct{})
	subscription := NewSubscription(WithResolver(func(string, *Resolver) {
		close(reserved)
	}))
	require.NoError(t, subscription.Attach(channel))

	outcomeChan := make(chan emitOutcome, 1)
	go func() {
		result, err := channel.Emit(context.Background(), "question")
		outcomeChan <- emitOutcome{result, err}
	}()

	<-reserved
	subscription.Detach()

	select {
	case outcome := <-outcomeChan:
		require.NoError(t, outcome.err)
		require.Nil(t, outcome.result)
	case <-time.After(time.Second):
		t.Fatal("the parked emit was not released by the detach")
	}

	require.Nil(t, subscription.Channel())

	// the channel itself stays usable
	result, err := channel.Emit(context.Background(), "still open")
	require.NoError(t, err)
	require.Nil(t, result)
}

func TestAttachAbandonsInflightReservations(t *testing.T) {
	firstChannel := NewChannel[string]()
	defer firstChannel.Close()
	secondChannel := NewChannel[string]()
	defer secondChannel.Close()

	reserved := make(chan struct{})
	subscription := NewSubscription(WithResolver(func(string, *Resolver) {
		close(reserved)
	}))
	require.NoError(t, subscription.Attach(firstChannel))
	defer subscription.Dispose()

	outcomeChan := make(chan emitOutcome, 1)
	go func() {
		result, err := firstChannel.Emit(context.Background(), "question")
		outcomeChan <- emitOutcome{result, err}
	}()

	<-reserved
	require.NoError(t, subscription.Attach(secondChannel))

	outcome := <-outcomeChan
	require.NoError(t, outcome.err)
	require.Nil(t, outcome.result)
	require.Same(t, secondChannel, subscription.Channel())
}

func TestDisposeReleasesParkedEmit(t *testing.T) {
	channel := NewChannel[string]()
	defer channel.Close()

	reserved := make(chan struct{})
	subscription := NewSubscription(WithResolver(func(string, *Resolver) {
		close(reserved)
	}))
	require.NoError(t, subscription.Attach(channel))

	outcomeChan := make(chan emitOutcome, 1)
	go func() {
		result, err := channel.Emit(context.Background(), "question")
		outcomeChan <- emitOutcome{result, err}
	}()

	<-reserved
	subscription.Dispose()

	outcome := <-outcomeChan
	require.NoError(t, outcome.err)
	require.Nil(t, outcome.result)
	require.True(t, subscription.IsDisposed())
}

func TestAttachAfterDispose(t *testing.T) {
	channel := NewChannel[string]()
	defer channel.Close()

	subscription := NewSubscription[string]()
	subscription.Dispose()
	require.True(t, subscription.IsDisposed())

	require.ErrorIs(t, subscription.Attach(channel), ErrSubscriptionDisposed)
	require.Nil(t, subscription.Channel())
}

func TestAttachAfterDisposePanicsInDebugMode(t *testing.T) {
	debug.SetEnabled(true)
	t.Cleanup(func() { debug.SetEnabled(false) })

	channel := NewChannel[string]()
	defer channel.Close()

	subscription := NewSubscription[string]()
	subscription.Dispose()

	require.Panics(t, func() { _ = subscription.Attach(channel) })
}

func TestDisposeIsIdempotent(t *testing.T) {
	subscription := NewSubscription[string]()
	subscription.Dispose()
	require.NotPanics(t, subscription.Dispose)
}

func TestChannelCloseDetachesSubscriptions(t *testing.T) {
	channel := NewChannel[string]()

	subscription := NewSubscription[string]()
	require.NoError(t, subscription.Attach(channel))
	require.Same(t, channel, subscription.Channel())

	channel.Close()
	require.Nil(t, subscription.Channel())

	// a retired channel does not block re-attaching somewhere else
	replacement := NewChannel[string]()
	defer replacement.Close()
	require.NoError(t, subscription.Attach(replacement))
	require.Same(t, replacement, subscription.Channel())
}

func TestSecondResolverLosesAgainstSettledSlot(t *testing.T) {
	channel := NewChannel[string]()
	defer channel.Close()

	first := NewSubscription(WithResolver(func(_ string, resolver *Resolver) {
		resolver.Resolve("first come")
	}))
	require.NoError(t, first.Attach(channel))
	defer first.Dispose()

	secondInvoked := false
	second := NewSubscription(WithResolver(func(string, *Resolver) {
		secondInvoked = true
	}))
	require.NoError(t, second.Attach(channel))
	defer second.Dispose()

	result, err := channel.Emit(context.Background(), "question")
	require.NoError(t, err)
	require.Equal(t, "first come", result)
	require.False(t, secondInvoked)
}

func TestConflictingReservationIsSkipped(t *testing.T) {
	channel := NewChannel[string]()
	defer channel.Close()

	resolverChan := make(chan *Resolver, 1)
	first := NewSubscription(WithResolver(func(_ string, resolver *Resolver) {
		resolverChan <- resolver
	}))
	require.NoError(t, first.Attach(channel))
	defer first.Dispose()

	secondInvoked := false
	second := NewSubscription(WithResolver(func(string, *Resolver) {
		secondInvoked = true
	}))
	require.NoError(t, second.Attach(channel))
	defer second.Dispose()

	outcomeChan := make(chan emitOutcome, 1)
	go func() {
		result, err := channel.Emit(context.Background(), "contested")
		outcomeChan <- emitOutcome{result, err}
	}()

	resolver := <-resolverChan
	resolver.Resolve("first claim wins")

	outcome := <-outcomeChan
	require.NoError(t, outcome.err)
	require.Equal(t, "first claim wins", outcome.result)
	require.False(t, secondInvoked)
}

func TestConflictingReservationPanicsInDebugMode(t *testing.T) {
	debug.SetEnabled(true)
	t.Cleanup(func() { debug.SetEnabled(false) })

	channel := NewChannel[string]()

	first := NewSubscription(WithResolver(func(string, *Resolver) {}))
	require.NoError(t, first.Attach(channel))

	second := NewSubscription(WithResolver(func(string, *Resolver) {}))
	require.NoError(t, second.Attach(channel))

	require.Panics(t, func() {
		_, _ = channel.Emit(context.Background(), "contested")
	})

	channel.Close()
}

func TestResolveOnWorkerPool(t *testing.T) {
	pool := workerpool.New("resolvers").Start()
	defer pool.Shutdown()

	channel := NewChannel[int]()
	defer channel.Close()

	subscription := NewSubscription(
		WithWorkerPool[int](pool),
		WithResolver(func(payload int, resolver *Resolver) {
			resolver.Resolve(payload + 1)
		}),
	)
	require.NoError(t, subscription.Attach(channel))
	defer subscription.Dispose()

	result, err := channel.Emit(context.Background(), 41)
	require.NoError(t, err)
	require.Equal(t, 42, result)
}

func TestResolveClearsInflightTracking(t *testing.T) {
	channel := NewChannel[string]()
	defer channel.Close()

	subscription := NewSubscription(WithResolver(func(_ string, resolver *Resolver) {
		resolver.Resolve("done")
	}))
	require.NoError(t, subscription.Attach(channel))
	defer subscription.Dispose()

	for i := 0; i < 3; i++ {
		_, err := channel.Emit(context.Background(), "work")
		require.NoError(t, err)
	}

	require.Zero(t, subscription.inflight.Size())
	require.Zero(t, channel.pending.Size())
}
