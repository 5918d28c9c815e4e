package debug_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/statekit/actions.go/debug"
)

func TestEnabledFlag(t *testing.T) {
	require.False(t, debug.GetEnabled())

	debug.SetEnabled(true)
	require.True(t, debug.GetEnabled())

	debug.SetEnabled(false)
	require.False(t, debug.GetEnabled())
}

func TestFunctionName(t *testing.T) {
	require.True(t, strings.HasSuffix(debug.FunctionName(TestFunctionName), "TestFunctionName"))
}

func TestStackTrace(t *testing.T) {
	stackTrace := debug.StackTrace(false, 0)

	require.True(t, strings.HasPrefix(stackTrace, "goroutine"))
	require.Contains(t, stackTrace, "TestStackTrace")
}
