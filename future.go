package future

import (
	"context"
	"time"
)

// Future is a unique handle to an asynchronously produced value of type T.
// It is move-only by convention: [Future.Get] and [Future.Share] invalidate
// the handle they are called on, leaving the receiver with no state. The
// continuation attachers ([Then], [Next] and their variants) take the
// Future by value and do not clear the caller's variable. On an invalid
// Future, [Future.IsReady] reports false and the waiting and value methods
// return [ErrNoState].
//
// The zero value is an invalid Future, equivalent to a default-constructed
// future<T>.
type Future[T any] struct {
	state *sharedState[T]
}

func newFuture[T any](s *sharedState[T]) Future[T] {
	return Future[T]{state: s}
}

// Valid reports whether f refers to a shared state.
func (f Future[T]) Valid() bool {
	return f.state != nil
}

// IsReady reports whether the value is available without blocking. An
// invalid Future is never ready.
func (f Future[T]) IsReady() bool {
	return f.state != nil && f.state.isReady()
}

// Wait blocks until the future is ready.
func (f Future[T]) Wait() error {
	if f.state == nil {
		return ErrNoState
	}
	f.state.getWaiter().wait()
	return nil
}

// WaitContext blocks until the future is ready or ctx is done.
func (f Future[T]) WaitContext(ctx context.Context) error {
	if f.state == nil {
		return ErrNoState
	}
	return f.state.getWaiter().waitContext(ctx)
}

// WaitFor blocks until the future is ready or d elapses, reporting which.
func (f Future[T]) WaitFor(d time.Duration) (ready bool, err error) {
	if f.state == nil {
		return false, ErrNoState
	}
	return f.state.getWaiter().waitTimeout(d), nil
}

// WaitUntil blocks until the future is ready or the deadline passes.
func (f Future[T]) WaitUntil(deadline time.Time) (ready bool, err error) {
	if f.state == nil {
		return false, ErrNoState
	}
	return f.state.getWaiter().waitDeadline(deadline), nil
}

// Get blocks until ready, then returns the value (or error), invalidating
// f. Calling Get on an invalid Future returns [ErrNoState].
func (f *Future[T]) Get() (T, error) {
	if f.state == nil {
		var zero T
		return zero, ErrNoState
	}
	s := f.state
	f.state = nil
	s.getWaiter().wait()
	return s.get()
}

// Share converts f into a [SharedFuture], invalidating f. Calling Share on
// an invalid Future returns an invalid SharedFuture and [ErrNoState].
func (f *Future[T]) Share() (SharedFuture[T], error) {
	if f.state == nil {
		return SharedFuture[T]{}, ErrNoState
	}
	s := f.state
	f.state = nil
	return SharedFuture[T]{state: s}, nil
}

// Ready returns an already-fulfilled Future holding v.
func Ready[T any](v T) Future[T] {
	s := newSharedState[T]()
	s.emplace(v)
	return newFuture(s)
}

// Failed returns an already-fulfilled Future holding err.
func Failed[T any](err error) Future[T] {
	s := newSharedState[T]()
	s.setError(err)
	return newFuture(s)
}
