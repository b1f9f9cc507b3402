package future

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWaiter_NotifyIsIdempotent(t *testing.T) {
	w := newWaiter()
	w.notify()
	w.notify() // must not panic on double-close
	w.wait()
}

func TestWaiter_WaitContextCancelled(t *testing.T) {
	w := newWaiter()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := w.waitContext(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestWaiter_WaitContextNotified(t *testing.T) {
	w := newWaiter()
	w.notify()
	err := w.waitContext(context.Background())
	require.NoError(t, err)
}

func TestWaiter_WaitTimeoutExpiresAndSucceeds(t *testing.T) {
	w := newWaiter()
	require.False(t, w.waitTimeout(5*time.Millisecond))
	w.notify()
	require.True(t, w.waitTimeout(time.Second))
}

func TestWaiter_WaitTimeoutNonPositiveIsNonBlockingPoll(t *testing.T) {
	w := newWaiter()
	require.False(t, w.waitTimeout(0))
	w.notify()
	require.True(t, w.waitTimeout(0))
}

func TestWaiter_WaitDeadline(t *testing.T) {
	w := newWaiter()
	require.False(t, w.waitDeadline(time.Now().Add(5*time.Millisecond)))
	w.notify()
	require.True(t, w.waitDeadline(time.Now().Add(time.Second)))
}
