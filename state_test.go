package future

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestContinuationStack_PushBeforeConsume(t *testing.T) {
	var s continuationStack
	var calls []int
	require.True(t, s.push(func() { calls = append(calls, 1) }))
	require.True(t, s.push(func() { calls = append(calls, 2) }))
	require.False(t, s.isConsumed())

	s.consume()
	require.True(t, s.isConsumed())
	require.ElementsMatch(t, []int{1, 2}, calls)
}

func TestContinuationStack_NilContinuationIsBadFunctionCallNotPanic(t *testing.T) {
	var s continuationStack
	require.True(t, s.push(nil))
	require.NotPanics(t, func() { s.consume() })
}

func TestContinuationStack_PushAfterConsumeFails(t *testing.T) {
	var s continuationStack
	s.consume()
	require.False(t, s.push(func() {}))
}

func TestContinuationStack_ConcurrentPush(t *testing.T) {
	var s continuationStack
	var mu sync.Mutex
	var count int
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.push(func() {
				mu.Lock()
				count++
				mu.Unlock()
			})
		}()
	}
	wg.Wait()
	s.consume()
	require.Equal(t, 100, count)
}

func TestResultBox_ValueAndError(t *testing.T) {
	var b resultBox[int]
	_, err := b.get()
	require.ErrorIs(t, err, ErrNoState)

	b.emplaceValue(5)
	v, err := b.get()
	require.NoError(t, err)
	require.Equal(t, 5, v)

	var b2 resultBox[int]
	b2.emplaceError(ErrBrokenPromise)
	_, err = b2.get()
	require.ErrorIs(t, err, ErrBrokenPromise)
}

func TestSharedState_OnReadyRunsImmediatelyWhenAlreadyReady(t *testing.T) {
	s := newSharedState[int]()
	s.emplace(3)
	called := false
	s.onReady(func() { called = true })
	require.True(t, called)
}

func TestSharedState_OnReadyDefersUntilFulfilled(t *testing.T) {
	s := newSharedState[int]()
	called := false
	s.onReady(func() { called = true })
	require.False(t, called)
	s.emplace(1)
	require.True(t, called)
}

func TestSharedState_GetWaiterBeforeAndAfterReady(t *testing.T) {
	s := newSharedState[int]()
	w := s.getWaiter()
	done := make(chan struct{})
	go func() {
		w.wait()
		close(done)
	}()
	s.emplace(1)
	<-done
}

// TestSharedState_GetWaiterFulfilledFromDifferentGoroutine exercises the
// cross-goroutine path: getWaiter() is called on the blocking goroutine
// while emplace (and thus fulfil) runs on a separate one, matching the
// producer/consumer thread-safety contract -- a plain field read in
// fulfil() could observe a stale nil waiter here and hang forever.
func TestSharedState_GetWaiterFulfilledFromDifferentGoroutine(t *testing.T) {
	for i := 0; i < 50; i++ {
		s := newSharedState[int]()
		done := make(chan struct{})
		go func() {
			s.getWaiter().wait()
			close(done)
		}()
		go func() {
			s.emplace(1)
		}()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("waiter was never notified across goroutines")
		}
	}
}
