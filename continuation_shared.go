package future

import "runtime"

// ThenSharedFuture is [Then] for a continuation returning a [SharedFuture],
// flattening Future[SharedFuture[R]] into SharedFuture[R].
func ThenSharedFuture[T, R any](f Future[T], fn func(Future[T]) (SharedFuture[R], error)) SharedFuture[R] {
	return ThenSharedFutureOn[T, R](f, nil, fn)
}

// ThenSharedFutureOn is [ThenSharedFuture], dispatching fn through exec.
func ThenSharedFutureOn[T, R any](f Future[T], exec Executor, fn func(Future[T]) (SharedFuture[R], error)) SharedFuture[R] {
	if !f.Valid() {
		return FailedShared[R](ErrNoState)
	}
	parent := f.state
	child := newSharedState[R]()
	runtime.SetFinalizer(child, brokenPromiseFinalizer[R])
	parent.onReady(func() {
		post(exec, func() {
			unwrapSharedInto(child, func() (SharedFuture[R], error) { return fn(Future[T]{state: parent}) })
		})
	})
	return SharedFuture[R]{state: child}
}

// NextSharedFuture is [Next] for a continuation returning a [SharedFuture].
func NextSharedFuture[T, R any](f Future[T], fn func(T) (SharedFuture[R], error)) SharedFuture[R] {
	return NextSharedFutureOn[T, R](f, nil, fn)
}

// NextSharedFutureOn is [NextSharedFuture], dispatching fn through exec.
func NextSharedFutureOn[T, R any](f Future[T], exec Executor, fn func(T) (SharedFuture[R], error)) SharedFuture[R] {
	if !f.Valid() {
		return FailedShared[R](ErrNoState)
	}
	parent := f.state
	child := newSharedState[R]()
	runtime.SetFinalizer(child, brokenPromiseFinalizer[R])
	parent.onReady(func() {
		post(exec, func() {
			unwrapSharedInto(child, func() (SharedFuture[R], error) {
				v, err := parent.get()
				if err != nil {
					return SharedFuture[R]{}, err
				}
				return fn(v)
			})
		})
	})
	return SharedFuture[R]{state: child}
}

func unwrapSharedInto[R any](child *sharedState[R], produce func() (SharedFuture[R], error)) {
	inner, err := func() (sf SharedFuture[R], err error) {
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

// ThenShared attaches a continuation to a [SharedFuture], receiving a copy
// of the parent (readable any number of times) and producing a unique
// [Future], mirroring shared_future<T>::then.
func ThenShared[T, R any](sf SharedFuture[T], fn func(SharedFuture[T]) (R, error)) Future[R] {
	return ThenSharedOn[T, R](sf, nil, fn)
}

// ThenSharedOn is [ThenShared], dispatching fn through exec.
func ThenSharedOn[T, R any](sf SharedFuture[T], exec Executor, fn func(SharedFuture[T]) (R, error)) Future[R] {
	if !sf.Valid() {
		return Failed[R](ErrNoState)
	}
	parent := sf.state
	return chainFuture[T, R](parent, exec, func() (R, error) {
		return fn(SharedFuture[T]{state: parent})
	})
}

// NextShared attaches a continuation receiving only the parent's value.
func NextShared[T, R any](sf SharedFuture[T], fn func(T) (R, error)) Future[R] {
	return NextSharedOn[T, R](sf, nil, fn)
}

// NextSharedOn is [NextShared], dispatching fn through exec.
func NextSharedOn[T, R any](sf SharedFuture[T], exec Executor, fn func(T) (R, error)) Future[R] {
	if !sf.Valid() {
		return Failed[R](ErrNoState)
	}
	parent := sf.state
	return chainFuture[T, R](parent, exec, func() (R, error) {
		v, err := parent.get()
		if err != nil {
			var zero R
			return zero, err
		}
		return fn(v)
	})
}
