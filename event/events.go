package event

// region Event

// Event is an event with no generic parameters.
type Event struct {
	*event[func()]
}

// New creates a new event with no generic parameters.
func New(opts ...Option) *Event {
	return &Event{
		event: newEvent[func()](opts...),
	}
}

// Trigger invokes the hooked callbacks.
func (e *Event) Trigger() {
	if e.currentTriggerExceedsMaxTriggerCount() {
		return
	}

	e.hooks.ForEach(func(_ uint64, hook *Hook[func()]) bool {
		if hook.currentTriggerExceedsMaxTriggerCount() {
			hook.Unhook()

			return true
		}

		if e.preTriggerFunc != nil {
			e.preTriggerFunc()
		}

		if hook.preTriggerFunc != nil {
			hook.preTriggerFunc()
		}

		if workerPool := hook.WorkerPool(); workerPool != nil {
			workerPool.Submit(func() { hook.trigger() })
		} else {
			hook.trigger()
		}

		return true
	})
}

// LinkTo links the event to the given target event (nil unlinks).
func (e *Event) LinkTo(target *Event) {
	e.linkTo(target, e.Trigger)
}

// endregion

// region Event1

// Event1 is an event with 1 generic parameter.
type Event1[T1 any] struct {
	*event[func(T1)]
}

// New1 creates a new event with 1 generic parameter.
func New1[T1 any](opts ...Option) *Event1[T1] {
	return &Event1[T1]{
		event: newEvent[func(T1)](opts...),
	}
}

// Trigger invokes the hooked callbacks with the given parameters.
func (e *Event1[T1]) Trigger(arg1 T1) {
	if e.currentTriggerExceedsMaxTriggerCount() {
		return
	}

	e.hooks.ForEach(func(_ uint64, hook *Hook[func(T1)]) bool {
		if hook.currentTriggerExceedsMaxTriggerCount() {
			hook.Unhook()

			return true
		}

		if e.preTriggerFunc != nil {
			e.preTriggerFunc(arg1)
		}

		if hook.preTriggerFunc != nil {
			hook.preTriggerFunc(arg1)
		}

		if workerPool := hook.WorkerPool(); workerPool != nil {
			workerPool.Submit(func() { hook.trigger(arg1) })
		} else {
			hook.trigger(arg1)
		}

		return true
	})
}

// LinkTo links the event to the given target event (nil unlinks).
func (e *Event1[T1]) LinkTo(target *Event1[T1]) {
	e.linkTo(target, e.Trigger)
}

// endregion

// region Event2

// Event2 is an event with 2 generic parameters.
type Event2[T1, T2 any] struct {
	*event[func(T1, T2)]
}

// New2 creates a new event with 2 generic parameters.
func New2[T1, T2 any](opts ...Option) *Event2[T1, T2] {
	return &Event2[T1, T2]{
		event: newEvent[func(T1, T2)](opts...),
	}
}

// Trigger invokes the hooked callbacks with the given parameters.
func (e *Event2[T1, T2]) Trigger(arg1 T1, arg2 T2) {
	if e.currentTriggerExceedsMaxTriggerCount() {
		return
	}

	e.hooks.ForEach(func(_ uint64, hook *Hook[func(T1, T2)]) bool {
		if hook.currentTriggerExceedsMaxTriggerCount() {
			hook.Unhook()

			return true
		}

		if e.preTriggerFunc != nil {
			e.preTriggerFunc(arg1, arg2)
		}

		if hook.preTriggerFunc != nil {
			hook.preTriggerFunc(arg1, arg2)
		}

		if workerPool := hook.WorkerPool(); workerPool != nil {
			workerPool.Submit(func() { hook.trigger(arg1, arg2) })
		} else {
			hook.trigger(arg1, arg2)
		}

		return true
	})
}

// LinkTo links the event to the given target event (nil unlinks).
func (e *Event2[T1, T2]) LinkTo(target *Event2[T1, T2]) {
	e.linkTo(target, e.Trigger)
}

// endregion

// region Event3

// Event3 is an event with 3 generic parameters.
type Event3[T1, T2, T3 any] struct {
	*event[func(T1, T2, T3)]
}

// New3 creates a new event with 3 generic parameters.
func New3[T1, T2, T3 any](opts ...Option) *Event3[T1, T2, T3] {
	return &Event3[T1, T2, T3]{
		event: newEvent[func(T1, T2, T3)](opts...),
	}
}

// Trigger invokes the hooked callbacks with the given parameters.
func (e *Event3[T1, T2, T3]) Trigger(arg1 T1, arg2 T2, arg3 T3) {
	if e.currentTriggerExceedsMaxTriggerCount() {
		return
	}

	e.hooks.ForEach(func(_ uint64, hook *Hook[func(T1, T2, T3)]) bool {
		if hook.currentTriggerExceedsMaxTriggerCount() {
			hook.Unhook()

			return true
		}

		if e.preTriggerFunc != nil {
			e.preTriggerFunc(arg1, arg2, arg3)
		}

		if hook.preTriggerFunc != nil {
			hook.preTriggerFunc(arg1, arg2, arg3)
		}

		if workerPool := hook.WorkerPool(); workerPool != nil {
			workerPool.Submit(func() { hook.trigger(arg1, arg2, arg3) })
		} else {
			hook.trigger(arg1, arg2, arg3)
		}

		return true
	})
}

// LinkTo links the event to the given target event (nil unlinks).
func (e *Event3[T1, T2, T3]) LinkTo(target *Event3[T1, T2, T3]) {
	e.linkTo(target, e.Trigger)
}

// endregion
