package future_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	future "github.com/go-futures/future"
)

func TestWhenAny_EmptyInputResolvesImmediatelyWithNegativeIndex(t *testing.T) {
	any, err := future.WhenAny[int]()
	require.NoError(t, err)
	require.True(t, any.IsReady())
	result, err := any.Get()
	require.NoError(t, err)
	require.Equal(t, -1, result.Index)
	require.Empty(t, result.Futures)
}

func TestWhenAny_ResolvesOnAlreadyReadyInput(t *testing.T) {
	f1 := future.Ready(1)
	f2 := future.Ready(2)
	any, err := future.WhenAny(f1, f2)
	require.NoError(t, err)
	result, err := any.Get()
	require.NoError(t, err)
	require.Equal(t, 0, result.Index)
	require.Len(t, result.Futures, 2)
}

// Scenario: WhenAny picks exactly one winner even when every input
// completes concurrently, and the winning index is stable.
func TestWhenAny_OneShotIndexStabilityUnderConcurrentCompletion(t *testing.T) {
	const n = 8
	promises := make([]*future.Promise[int], n)
	futures := make([]future.Future[int], n)
	for i := range promises {
		promises[i] = future.NewPromise[int]()
		f, err := promises[i].GetFuture()
		require.NoError(t, err)
		futures[i] = f
	}

	any, err := future.WhenAny(futures...)
	require.NoError(t, err)

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i, p := range promises {
		wg.Add(1)
		go func(i int, p *future.Promise[int]) {
			defer wg.Done()
			<-start
			_ = p.SetValue(i)
		}(i, p)
	}
	close(start)

	result, err := any.Get()
	require.NoError(t, err)
	require.True(t, result.Index >= 0 && result.Index < n)

	firstIndex := result.Index
	wg.Wait()

	// After every input has completed, the future at the winning index
	// still holds the value its own promise set, so Index names that input.
	v, err := result.Futures[firstIndex].Get()
	require.NoError(t, err)
	require.Equal(t, firstIndex, v)
}

func TestWhenAny_InvalidInputReturnsError(t *testing.T) {
	var invalid future.Future[int]
	_, err := future.WhenAny(future.Ready(1), invalid)
	require.ErrorIs(t, err, future.ErrNoState)
}
