package future_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	future "github.com/go-futures/future"
)

func TestThenSharedFuture_ImplicitUnwrap(t *testing.T) {
	f := future.Ready(4)
	sf := future.ThenSharedFuture(f, func(parent future.Future[int]) (future.SharedFuture[int], error) {
		v, _ := parent.Get()
		return future.ReadyShared(v * 2), nil
	})
	v1, err := sf.Get()
	require.NoError(t, err)
	v2, err := sf.Get()
	require.NoError(t, err)
	require.Equal(t, 8, v1)
	require.Equal(t, 8, v2)
}

func TestNextSharedFuture_ImplicitUnwrap(t *testing.T) {
	f := future.Ready(10)
	sf := future.NextSharedFuture(f, func(v int) (future.SharedFuture[int], error) {
		return future.ReadyShared(v + 1), nil
	})
	v, err := sf.Get()
	require.NoError(t, err)
	require.Equal(t, 11, v)
}

func TestNextShared_SkipsOnParentError(t *testing.T) {
	calls := 0
	sf := future.FailedShared[int](future.ErrBrokenPromise)
	g := future.NextShared(sf, func(v int) (int, error) {
		calls++
		return v, nil
	})
	_, err := g.Get()
	require.Error(t, err)
	require.Equal(t, 0, calls)
}

func TestNotifyShared_CallableAfterFulfilment(t *testing.T) {
	sf := future.ReadyShared(99)
	seen := 0
	future.NotifyShared(sf, func(v int, err error) {
		require.NoError(t, err)
		seen = v
	})
	require.Equal(t, 99, seen)
}
