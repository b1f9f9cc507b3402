package future

// Void is the result type for futures that signal completion without
// carrying a value, standing in for future<void>/promise<void>.
type Void = struct{}

// Done returns an already-ready Future[Void].
func Done() Future[Void] {
	return Ready(Void{})
}

// Notify attaches a fire-and-forget observer that runs fn with the
// future's error (nil on success) once it is ready, without producing a
// chained future of its own. It runs inline; use [NotifyOn] to dispatch fn
// through an [Executor].
func Notify[T any](f Future[T], fn func(T, error)) {
	NotifyOn(f, nil, fn)
}

// NotifyOn is [Notify], dispatching fn through exec.
func NotifyOn[T any](f Future[T], exec Executor, fn func(T, error)) {
	if !f.Valid() {
		fn(*new(T), ErrNoState)
		return
	}
	parent := f.state
	parent.onReady(func() {
		post(exec, func() {
			v, err := parent.get()
			fn(v, err)
		})
	})
}

// NotifyShared is [Notify] for a [SharedFuture], callable repeatedly.
func NotifyShared[T any](sf SharedFuture[T], fn func(T, error)) {
	NotifySharedOn(sf, nil, fn)
}

// NotifySharedOn is [NotifyShared], dispatching fn through exec.
func NotifySharedOn[T any](sf SharedFuture[T], exec Executor, fn func(T, error)) {
	if !sf.Valid() {
		fn(*new(T), ErrNoState)
		return
	}
	parent := sf.state
	parent.onReady(func() {
		post(exec, func() {
			v, err := parent.get()
			fn(v, err)
		})
	})
}
