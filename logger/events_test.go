package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/statekit/actions.go/lo"
)

const (
	testName      = "test"
	testMsg       = "123"
	testLoggedMsg = testMsg
)

func TestNewEventCore(t *testing.T) {
	// initialize the mock
	m, teardown := newEventMock(t)

	t.Run("levelDisabled", func(t *testing.T) {
		logger := zap.New(NewEventCore(LevelWarn))

		// there should not be any events, as info is below warning.
		logger.Info(testMsg)
	})

	t.Run("eventsTriggered", func(t *testing.T) {
		logger := zap.New(NewEventCore(LevelDebug)).Named(testName)

		m.On("debug", LevelDebug, testName, testLoggedMsg).Once()
		m.On("any", LevelDebug, testName, testLoggedMsg).Once()
		logger.Debug(testMsg)

		m.On("info", LevelInfo, testName, testLoggedMsg).Once()
		m.On("any", LevelInfo, testName, testLoggedMsg).Once()
		logger.Info(testMsg)

		m.On("warn", LevelWarn, testName, testLoggedMsg).Once()
		m.On("any", LevelWarn, testName, testLoggedMsg).Once()
		logger.Warn(testMsg)

		m.On("error", LevelError, testName, testLoggedMsg).Once()
		m.On("any", LevelError, testName, testLoggedMsg).Once()
		logger.Error(testMsg)

		m.On("panic", LevelPanic, testName, testLoggedMsg).Once()
		m.On("any", LevelPanic, testName, testLoggedMsg).Once()
		assert.Panics(t, func() { logger.Panic(testMsg) }, testMsg)

		m.AssertExpectations(t)
	})

	// remove the mock
	teardown()
}

type eventMock struct{ mock.Mock }

func (e *eventMock) debug(lvl Level, name string, msg string) { e.Called(lvl, name, msg) }
func (e *eventMock) info(lvl Level, name string, msg string)  { e.Called(lvl, name, msg) }
func (e *eventMock) warn(lvl Level, name string, msg string)  { e.Called(lvl, name, msg) }
func (e *eventMock) error(lvl Level, name string, msg string) { e.Called(lvl, name, msg) }
func (e *eventMock) panic(lvl Level, name string, msg string) { e.Called(lvl, name, msg) }
func (e *eventMock) any(lvl Level, name string, msg string)   { e.Called(lvl, name, msg) }

func newEventMock(t *testing.T) (*eventMock, func()) {
	m := &eventMock{}
	m.Test(t)

	debugHook := Events.DebugMsg.Hook(func(ev *LogEvent) { m.debug(ev.Level, ev.Name, ev.Msg) })
	infoHook := Events.InfoMsg.Hook(func(ev *LogEvent) { m.info(ev.Level, ev.Name, ev.Msg) })
	warnHook := Events.WarningMsg.Hook(func(ev *LogEvent) { m.warn(ev.Level, ev.Name, ev.Msg) })
	errorHook := Events.ErrorMsg.Hook(func(ev *LogEvent) { m.error(ev.Level, ev.Name, ev.Msg) })
	panicHook := Events.PanicMsg.Hook(func(ev *LogEvent) { m.panic(ev.Level, ev.Name, ev.Msg) })
	anyHook := Events.AnyMsg.Hook(func(ev *LogEvent) { m.any(ev.Level, ev.Name, ev.Msg) })

	teardown := lo.Batch(
		debugHook.Unhook,
		infoHook.Unhook,
		warnHook.Unhook,
		errorHook.Unhook,
		panicHook.Unhook,
		anyHook.Unhook,
	)

	return m, teardown
}
