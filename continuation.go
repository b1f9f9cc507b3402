package future

import "runtime"

// brokenPromiseFinalizer is shared by every continuation child state: if
// the state is collected by the GC before being fulfilled -- typically
// because the executor it was posted to dropped the work instead of
// running it -- it resolves to [ErrBrokenPromise], mirroring cnt_action's
// destructor calling data->abandon() when its weak_ptr to the
// continuation's data has already expired.
func brokenPromiseFinalizer[R any](s *sharedState[R]) {
	if !s.isReady() {
		s.setError(ErrBrokenPromise)
	}
}

func runProtected[R any](child *sharedState[R], compute func() (R, error)) {
	defer func() {
		if r := recover(); r != nil {
			child.setError(&PanicError{Value: r})
		}
	}()
	v, err := compute()
	if err != nil {
		child.setError(err)
		return
	}
	child.emplace(v)
}

func chainFuture[T, R any](parent *sharedState[T], exec Executor, compute func() (R, error)) Future[R] {
	child := newSharedState[R]()
	runtime.SetFinalizer(child, brokenPromiseFinalizer[R])
	parent.onReady(func() {
		post(exec, func() { runProtected(child, compute) })
	})
	return newFuture(child)
}

// Then attaches a continuation that receives the whole parent future
// (including its error, if any) and produces a new value, running inline
// on whichever goroutine fulfils f (or the calling goroutine, if f is
// already ready). f is consumed; use [ThenOn] to run fn on an [Executor].
func Then[T, R any](f Future[T], fn func(Future[T]) (R, error)) Future[R] {
	return ThenOn[T, R](f, nil, fn)
}

// ThenOn is [Then], dispatching fn through exec.
func ThenOn[T, R any](f Future[T], exec Executor, fn func(Future[T]) (R, error)) Future[R] {
	if !f.Valid() {
		return Failed[R](ErrNoState)
	}
	parent := f.state
	return chainFuture[T, R](parent, exec, func() (R, error) {
		return fn(Future[T]{state: parent})
	})
}

// Next attaches a continuation that receives only the parent's value: if f
// resolves to an error, fn is skipped and that error propagates directly to
// the returned future. f is consumed; use [NextOn] to run fn on an
// [Executor].
func Next[T, R any](f Future[T], fn func(T) (R, error)) Future[R] {
	return NextOn[T, R](f, nil, fn)
}

// NextOn is [Next], dispatching fn through exec.
func NextOn[T, R any](f Future[T], exec Executor, fn func(T) (R, error)) Future[R] {
	if !f.Valid() {
		return Failed[R](ErrNoState)
	}
	parent := f.state
	return chainFuture[T, R](parent, exec, func() (R, error) {
		v, err := parent.get()
		if err != nil {
			var zero R
			return zero, err
		}
		return fn(v)
	})
}

// ThenFuture is [Then] for a continuation that itself returns a [Future]:
// the result is flattened (implicitly unwrapped) so callers never see a
// Future[Future[R]]. fn runs whether the parent holds a value or an error.
// If fn returns an error (or panics), the returned future resolves with
// that error; if fn's returned future is invalid, it resolves with
// [ErrBrokenPromise].
func ThenFuture[T, R any](f Future[T], fn func(Future[T]) (Future[R], error)) Future[R] {
	return ThenFutureOn[T, R](f, nil, fn)
}

// ThenFutureOn is [ThenFuture], dispatching fn through exec.
func ThenFutureOn[T, R any](f Future[T], exec Executor, fn func(Future[T]) (Future[R], error)) Future[R] {
	if !f.Valid() {
		return Failed[R](ErrNoState)
	}
	parent := f.state
	child := newSharedState[R]()
	runtime.SetFinalizer(child, brokenPromiseFinalizer[R])
	parent.onReady(func() {
		post(exec, func() { unwrapInto(child, func() (Future[R], error) { return fn(Future[T]{state: parent}) }) })
	})
	return newFuture(child)
}

// NextFuture is [Next] for a continuation that itself returns a [Future].
func NextFuture[T, R any](f Future[T], fn func(T) (Future[R], error)) Future[R] {
	return NextFutureOn[T, R](f, nil, fn)
}

// NextFutureOn is [NextFuture], dispatching fn through exec.
func NextFutureOn[T, R any](f Future[T], exec Executor, fn func(T) (Future[R], error)) Future[R] {
	if !f.Valid() {
		return Failed[R](ErrNoState)
	}
	parent := f.state
	child := newSharedState[R]()
	runtime.SetFinalizer(child, brokenPromiseFinalizer[R])
	parent.onReady(func() {
		post(exec, func() {
			unwrapInto(child, func() (Future[R], error) {
				v, err := parent.get()
				if err != nil {
					return Future[R]{}, err
				}
				return fn(v)
			})
		})
	})
	return newFuture(child)
}

// unwrapInto runs produce, catching panics, then attaches the resulting
// future's readiness to child -- the two-stage wait described in the
// implicit-unwrap rules: child becomes ready only once both the outer
// continuation and the inner future it returned are ready.
func unwrapInto[R any](child *sharedState[R], produce func() (Future[R], error)) {
	inner, err := func() (fut Future[R], err error) {
		defer func() {
			if r := recover(); r != nil {
				err = &PanicError{Value: r}
			}
		}()
		return produce()
	}()
	if err != nil {
		child.setError(err)
		return
	}
	if !inner.Valid() {
		child.setError(ErrBrokenPromise)
		return
	}
	innerState := inner.state
	innerState.onReady(func() {
		v, err := innerState.get()
		if err != nil {
			child.setError(err)
		} else {
			child.emplace(v)
		}
	})
}
