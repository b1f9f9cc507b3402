package future_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	future "github.com/go-futures/future"
)

// Scenario: WhenAll preserves input order regardless of completion order.
func TestWhenAll_OrderPreservedUnderReverseCompletion(t *testing.T) {
	promises := make([]*future.Promise[int], 3)
	futures := make([]future.Future[int], 3)
	for i := range promises {
		promises[i] = future.NewPromise[int]()
		f, err := promises[i].GetFuture()
		require.NoError(t, err)
		futures[i] = f
	}

	all := future.WhenAll(futures...)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		// Fulfil in reverse order.
		for i := len(promises) - 1; i >= 0; i-- {
			time.Sleep(time.Millisecond)
			require.NoError(t, promises[i].SetValue(i*10))
		}
	}()

	results, err := all.Get()
	require.NoError(t, err)
	wg.Wait()

	require.Len(t, results, 3)
	for i, r := range results {
		require.NoError(t, r.Err)
		require.Equal(t, i*10, r.Value)
	}
}

func TestWhenAll_EmptyInputResolvesImmediately(t *testing.T) {
	all := future.WhenAll[int]()
	require.True(t, all.IsReady())
	results, err := all.Get()
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestWhenAll_PerElementErrorsPreserved(t *testing.T) {
	ok := future.Ready(1)
	bad := future.Failed[int](future.ErrBrokenPromise)
	all := future.WhenAll(ok, bad)
	results, err := all.Get()
	require.NoError(t, err, "WhenAll itself never fails")
	require.Equal(t, 1, results[0].Value)
	require.NoError(t, results[0].Err)
	require.ErrorIs(t, results[1].Err, future.ErrBrokenPromise)
}

func TestWhenAll_InvalidInputReportsNoState(t *testing.T) {
	var invalid future.Future[int]
	all := future.WhenAll(future.Ready(1), invalid)
	results, err := all.Get()
	require.NoError(t, err)
	require.ErrorIs(t, results[1].Err, future.ErrNoState)
}

func TestWhenAll2_JoinsHeterogeneousTypes(t *testing.T) {
	fa := future.Ready(1)
	fb := future.Ready("two")
	joined := future.WhenAll2(fa, fb)
	pair, err := joined.Get()
	require.NoError(t, err)
	require.Equal(t, 1, pair.A)
	require.Equal(t, "two", pair.B)
	require.NoError(t, pair.AErr)
	require.NoError(t, pair.BErr)
}

func TestWhenAll3_JoinsThreeTypes(t *testing.T) {
	fa := future.Ready(1)
	fb := future.Ready("two")
	fc := future.Ready(3.0)
	joined := future.WhenAll3(fa, fb, fc)
	triple, err := joined.Get()
	require.NoError(t, err)
	require.Equal(t, 1, triple.A)
	require.Equal(t, "two", triple.B)
	require.Equal(t, 3.0, triple.C)
}
