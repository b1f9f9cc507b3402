package future

// Async runs fn on exec and returns a future for its result, the executor-
// aware analog of std::async: packaging fn as a [Task], posting it to exec,
// and handing back the task's future immediately.
func Async[R any](exec Executor, fn func() R) Future[R] {
	return AsyncErr(exec, func() (R, error) { return fn(), nil })
}

// AsyncErr is [Async] for a function that may itself fail.
func AsyncErr[R any](exec Executor, fn func() (R, error)) Future[R] {
	t := NewTaskErr(fn)
	f, _ := t.GetFuture()
	post(exec, func() {
		_ = t.Run()
	})
	return f
}

// AsyncFuture is [Async] for a function returning a [Future], flattening
// the result the same way [ThenFuture] does.
func AsyncFuture[R any](exec Executor, fn func() (Future[R], error)) Future[R] {
	child := newSharedState[R]()
	post(exec, func() {
		unwrapInto(child, fn)
	})
	return newFuture(child)
}

// AsyncSharedFuture is [Async] for a function returning a [SharedFuture].
func AsyncSharedFuture[R any](exec Executor, fn func() (SharedFuture[R], error)) SharedFuture[R] {
	child := newSharedState[R]()
	post(exec, func() {
		unwrapSharedInto(child, fn)
	})
	return SharedFuture[R]{state: child}
}
