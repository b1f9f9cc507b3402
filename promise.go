package future

import "runtime"

// Promise is the producer side of a [Future]: exactly one of SetValue/
// SetError must be called to fulfil it. Calling either a second time
// returns [ErrPromiseAlreadySatisfied]. GetFuture may only be called once;
// a second call returns [ErrFutureAlreadyRetrieved].
//
// If a Promise is garbage collected without ever being fulfilled, its
// future resolves with [ErrBrokenPromise] -- a GC-driven approximation of
// the deterministic destructor-triggered behavior of the type this is
// modeled on. Callers that need the broken-promise transition to happen
// promptly (rather than whenever the GC next runs) should call [Promise.Close]
// explicitly once they know no value is coming.
type Promise[T any] struct {
	state     *sharedState[T]
	retrieved bool
	satisfied bool
}

// NewPromise creates an unsatisfied Promise.
func NewPromise[T any]() *Promise[T] {
	p := &Promise[T]{state: newSharedState[T]()}
	runtime.SetFinalizer(p, finalizePromise[T])
	return p
}

func finalizePromise[T any](p *Promise[T]) {
	if !p.satisfied {
		p.state.setError(ErrBrokenPromise)
	}
}

// GetFuture returns the Future reading this promise's eventual value. It
// may only be called once per Promise.
func (p *Promise[T]) GetFuture() (Future[T], error) {
	if p.retrieved {
		return Future[T]{}, ErrFutureAlreadyRetrieved
	}
	p.retrieved = true
	return newFuture(p.state), nil
}

// SetValue fulfils the promise with v.
func (p *Promise[T]) SetValue(v T) error {
	if p.satisfied {
		return ErrPromiseAlreadySatisfied
	}
	p.satisfied = true
	p.state.emplace(v)
	logDebug("promise", "satisfied with value", nil)
	return nil
}

// SetError fulfils the promise with err.
func (p *Promise[T]) SetError(err error) error {
	if p.satisfied {
		return ErrPromiseAlreadySatisfied
	}
	p.satisfied = true
	p.state.setError(err)
	logDebug("promise", "satisfied with error", map[string]any{"error": err})
	return nil
}

// Close fulfils the promise with [ErrBrokenPromise] if it has not already
// been satisfied, and disarms the GC finalizer. It is idempotent and safe
// to call even after a successful SetValue/SetError.
func (p *Promise[T]) Close() {
	runtime.SetFinalizer(p, nil)
	if !p.satisfied {
		p.satisfied = true
		p.state.setError(ErrBrokenPromise)
		logError("promise", "broken promise on close", ErrBrokenPromise, nil)
	}
}
