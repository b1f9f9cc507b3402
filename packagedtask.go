package future

import "runtime"

// Task wraps a zero-argument function so that calling it fulfils a
// [Future] with its result (or with the recovered panic value, wrapped in
// a [PanicError]), mirroring packaged_task<R()>. A Task may be reset and
// invoked again, each time producing a fresh Future.
type Task[R any] struct {
	fn        func() (R, error)
	state     *sharedState[R]
	retrieved bool
	invoked   bool
}

// NewTask wraps fn, which produces the task's result directly (no error
// return) -- the common case for plain computations.
func NewTask[R any](fn func() R) *Task[R] {
	return NewTaskErr(func() (R, error) { return fn(), nil })
}

// NewTaskErr wraps fn, which may itself fail.
func NewTaskErr[R any](fn func() (R, error)) *Task[R] {
	t := &Task[R]{fn: fn, state: newSharedState[R]()}
	runtime.SetFinalizer(t, finalizeTask[R])
	return t
}

func finalizeTask[R any](t *Task[R]) {
	if !t.invoked {
		t.state.setError(ErrBrokenPromise)
	}
}

// Valid reports whether the task still wraps a callable.
func (t *Task[R]) Valid() bool {
	return t.fn != nil
}

// GetFuture returns the Future that will hold this invocation's result. It
// may only be called once since the last [Task.Reset] (or construction).
func (t *Task[R]) GetFuture() (Future[R], error) {
	if t.retrieved {
		return Future[R]{}, ErrFutureAlreadyRetrieved
	}
	t.retrieved = true
	return newFuture(t.state), nil
}

// Run invokes the wrapped function and fulfils the current shared state.
// Calling Run on a Task whose state has already been fulfilled (without an
// intervening [Task.Reset]) returns [ErrPromiseAlreadySatisfied].
func (t *Task[R]) Run() error {
	if t.fn == nil {
		return ErrNoState
	}
	if t.invoked {
		return ErrPromiseAlreadySatisfied
	}
	t.invoked = true
	t.invokeInto(t.state)
	return nil
}

func (t *Task[R]) invokeInto(s *sharedState[R]) {
	defer func() {
		if r := recover(); r != nil {
			s.setError(&PanicError{Value: r})
		}
	}()
	v, err := t.fn()
	if err != nil {
		s.setError(err)
		return
	}
	s.emplace(v)
}

// Reset rearms the task for another invocation, discarding any previously
// retrieved future's ability to be fetched again (a fresh one must be
// requested via [Task.GetFuture]).
func (t *Task[R]) Reset() {
	t.state = newSharedState[R]()
	t.retrieved = false
	t.invoked = false
	runtime.SetFinalizer(t, finalizeTask[R])
}
