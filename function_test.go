package future

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCallable_ValidAndCall(t *testing.T) {
	called := false
	c := newCallable(func() { called = true })
	require.True(t, c.valid())
	require.NoError(t, c.call())
	require.True(t, called)
}

func TestCallable_ZeroValueIsInvalid(t *testing.T) {
	var c callable
	require.False(t, c.valid())
	err := c.call()
	require.ErrorIs(t, err, ErrBadFunctionCall)
}
