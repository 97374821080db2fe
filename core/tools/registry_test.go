package tools

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func resetRegistry(t *testing.T) {
	t.Cleanup(func() {
		ClearRegistry()
		RegisterBuiltins()
	})
}

func TestRegister(t *testing.T) {
	resetRegistry(t)

	testFunc := func(args map[string]interface{}) (string, error) {
		return "test result", nil
	}

	// Test basic registration
	Register("test_tool", testFunc)
	require.Contains(t, List(), "test_tool")

	// Test that tool is executable
	result, err := Execute("test_tool", map[string]interface{}{})
	require.NoError(t, err)
	require.Equal(t, "test result", result)
}

func TestExecuteNonExistent(t *testing.T) {
	_, err := Execute("non_existent_tool", map[string]interface{}{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestList(t *testing.T) {
	resetRegistry(t)
	ClearRegistry()

	testFunc := func(args map[string]interface{}) (string, error) {
		return "", nil
	}

	Register("tool2", testFunc)
	Register("tool1", testFunc)

	require.Equal(t, []string{"tool1", "tool2"}, List())
}

func TestBuiltinsRegistered(t *testing.T) {
	require.Equal(t, []string{"factorial", "factorial_digits"}, List())
}

func TestGetToolDescriptions(t *testing.T) {
	defs := GetToolDescriptions()
	require.Len(t, defs, 2)

	for _, def := range defs {
		require.NotEmpty(t, def.Description)
		require.Equal(t, "object", def.InputSchema["type"])
		require.Equal(t, []string{"n"}, def.InputSchema["required"])
	}
}

func TestCall(t *testing.T) {
	res := Call(entityCall("factorial", 5))
	require.False(t, res.Failed())
	require.Equal(t, "120", res.Output)

	res = Call(entityCall("factorial", -1))
	require.True(t, res.Failed())
	require.Contains(t, res.Error, "negative")
}
