package future

import (
	"context"
	"time"
)

// SharedFuture is the copyable counterpart to [Future]: many consumers may
// hold and read the same SharedFuture value concurrently. Unlike Future,
// [SharedFuture.Get] does not invalidate the handle and may be called
// repeatedly, each time returning the same value (re-evaluated from the
// stored box, not recomputed).
//
// The zero value is an invalid SharedFuture.
type SharedFuture[T any] struct {
	state *sharedState[T]
}

// Valid reports whether sf refers to a shared state.
func (sf SharedFuture[T]) Valid() bool {
	return sf.state != nil
}

// IsReady reports whether the value is available without blocking.
func (sf SharedFuture[T]) IsReady() bool {
	return sf.state != nil && sf.state.isReady()
}

// Wait blocks until the future is ready.
func (sf SharedFuture[T]) Wait() error {
	if sf.state == nil {
		return ErrNoState
	}
	sf.state.getWaiter().wait()
	return nil
}

// WaitContext blocks until the future is ready or ctx is done.
func (sf SharedFuture[T]) WaitContext(ctx context.Context) error {
	if sf.state == nil {
		return ErrNoState
	}
	return sf.state.getWaiter().waitContext(ctx)
}

// WaitFor blocks until the future is ready or d elapses.
func (sf SharedFuture[T]) WaitFor(d time.Duration) (ready bool, err error) {
	if sf.state == nil {
		return false, ErrNoState
	}
	return sf.state.getWaiter().waitTimeout(d), nil
}

// WaitUntil blocks until the future is ready or the deadline passes.
func (sf SharedFuture[T]) WaitUntil(deadline time.Time) (ready bool, err error) {
	if sf.state == nil {
		return false, ErrNoState
	}
	return sf.state.getWaiter().waitDeadline(deadline), nil
}

// Get blocks until ready and returns the stored value/error. It may be
// called any number of times and from any number of goroutines.
func (sf SharedFuture[T]) Get() (T, error) {
	if sf.state == nil {
		var zero T
		return zero, ErrNoState
	}
	sf.state.getWaiter().wait()
	return sf.state.get()
}

// ReadyShared returns an already-fulfilled SharedFuture holding v.
func ReadyShared[T any](v T) SharedFuture[T] {
	s := newSharedState[T]()
	s.emplace(v)
	return SharedFuture[T]{state: s}
}

// FailedShared returns an already-fulfilled SharedFuture holding err.
func FailedShared[T any](err error) SharedFuture[T] {
	s := newSharedState[T]()
	s.setError(err)
	return SharedFuture[T]{state: s}
}
