package action

// Resolver is the single-writer handle that a resolving subscription receives together with every Action it reserved.
// It answers the parked emitter by either depositing a result value or abandoning the reservation again.
//
// Exactly one of its methods is supposed to be called exactly once per Action - depositing a second result is a usage
// error while abandoning an already answered Action is tolerated (so teardown logic can unconditionally clean up).
type Resolver struct {
	// fulfillFunc deposits the result of the reserved Action.
	fulfillFunc func(value any) bool

	// abandonFunc releases the reservation without a result.
	abandonFunc func() bool
}

// Resolve completes the reserved Action with the given value and wakes the parked emitter. Resolving with nil counts
// as an answer without a value, so the emitter resolves with an empty result instead of waiting any longer. The
// return value reports whether this call completed the handshake.
func (r *Resolver) Resolve(value any) (resolved bool) {
	return r.fulfillFunc(value)
}

// Abandon releases the reservation without an answer, so the parked emitter resolves with an empty result. The return
// value reports whether this call completed the handshake.
func (r *Resolver) Abandon() (abandoned bool) {
	return r.abandonFunc()
}
