package promise

import (
	"sync"

	"github.com/statekit/actions.go/lo"
)

// region Event

// Event is an event that can be triggered exactly once. Consumers that register themselves after the event was
// triggered, will be called immediately.
type Event struct {
	// uniqueCallbackID is the unique identifier for the next registered callback.
	uniqueCallbackID uniqueID

	// callbacks is a map of callbacks that will be called when the event is triggered.
	callbacks map[uniqueID]func()

	// mutex is used to synchronize access to the callbacks.
	mutex sync.RWMutex
}

// NewEvent creates a new Event with 0 generic parameters.
func NewEvent() *Event {
	return &Event{
		callbacks: make(map[uniqueID]func()),
	}
}

// Trigger triggers the event. If the event was already triggered, this method does nothing.
func (e *Event) Trigger() (wasTriggered bool) {
	for _, callback := range func() (callbacks []func()) {
		e.mutex.Lock()
		defer e.mutex.Unlock()

		if wasTriggered = e.callbacks != nil; wasTriggered {
			callbacks = lo.Values(e.callbacks)
			e.callbacks = nil
		}

		return callbacks
	}() {
		callback()
	}

	return
}

// OnTrigger registers a callback that will be called when the event is triggered. If the event was already triggered,
// the callback will be called immediately. The returned function can be used to unsubscribe the callback again.
func (e *Event) OnTrigger(callback func()) (unsubscribe func()) {
	if !func() (callbackRegistered bool) {
		e.mutex.Lock()
		defer e.mutex.Unlock()

		if e.callbacks == nil {
			return false
		}

		callbackID := e.uniqueCallbackID.Next()
		e.callbacks[callbackID] = callback

		unsubscribe = func() {
			e.mutex.Lock()
			defer e.mutex.Unlock()

			delete(e.callbacks, callbackID)
		}

		return true
	}() {
		callback()

		return void
	}

	return unsubscribe
}

// WasTriggered returns true if the event was already triggered.
func (e *Event) WasTriggered() bool {
	e.mutex.RLock()
	defer e.mutex.RUnlock()

	return e.callbacks == nil
}

// endregion

// region Event1

// Event1 is an event with a single parameter that can be triggered exactly once. Consumers that register themselves
// after the event was triggered, will be called immediately.
type Event1[T any] struct {
	// uniqueCallbackID is the unique identifier for the next registered callback.
	uniqueCallbackID uniqueID

	// callbacks is a map of callbacks that will be called when the event is triggered.
	callbacks map[uniqueID]func(T)

	// value is the value that was passed to the Trigger method.
	value *T

	// mutex is used to synchronize access to the callbacks.
	mutex sync.RWMutex
}

// NewEvent1 creates a new event with 1 generic parameter.
func NewEvent1[T any]() *Event1[T] {
	return &Event1[T]{
		callbacks: make(map[uniqueID]func(T)),
	}
}

// Trigger triggers the event. If the event was already triggered, this method does nothing.
func (e *Event1[T]) Trigger(arg T) (wasTriggered bool) {
	for _, callback := range func() (callbacks []func(T)) {
		e.mutex.Lock()
		defer e.mutex.Unlock()

		if wasTriggered = e.callbacks != nil; wasTriggered {
			callbacks = lo.Values(e.callbacks)
			e.callbacks = nil
			e.value = &arg
		}

		return callbacks
	}() {
		callback(arg)
	}

	return
}

// OnTrigger registers a callback that will be called when the event is triggered. If the event was already triggered,
// the callback will be called immediately. The returned function can be used to unsubscribe the callback again.
func (e *Event1[T]) OnTrigger(callback func(T)) (unsubscribe func()) {
	if !func() (callbackRegistered bool) {
		e.mutex.Lock()
		defer e.mutex.Unlock()

		if e.callbacks == nil {
			return false
		}

		callbackID := e.uniqueCallbackID.Next()
		e.callbacks[callbackID] = callback

		unsubscribe = func() {
			e.mutex.Lock()
			defer e.mutex.Unlock()

			delete(e.callbacks, callbackID)
		}

		return true
	}() {
		callback(*e.value)

		return void
	}

	return unsubscribe
}

// WasTriggered returns true if the event was already triggered.
func (e *Event1[T]) WasTriggered() bool {
	e.mutex.RLock()
	defer e.mutex.RUnlock()

	return e.callbacks == nil
}

// endregion
