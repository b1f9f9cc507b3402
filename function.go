package future

// callable is a move-only-by-convention wrapper around a zero-argument
// function, standing in for small_unique_function<void()>. A Go closure is
// already a single heap-allocated, reference-counted, type-erased callable
// -- the byte-buffer-plus-vtable small-buffer optimization the original
// applies to avoid a heap allocation per continuation has no equivalent
// payoff here, since the closure itself is already the allocation Go's
// runtime manages. What callable preserves from the original type is the
// *contract*: a zero value is "empty" and calling it is a programmer error
// signalled by [ErrBadFunctionCall] rather than a nil-pointer panic. Every
// continuation stored in a [continuationNode] is a callable, so that
// contract holds for every continuation the package drains.
type callable struct {
	fn func()
}

// newCallable wraps fn. Passing a nil fn produces an empty callable.
func newCallable(fn func()) callable {
	return callable{fn: fn}
}

// valid reports whether the callable holds a function.
func (c callable) valid() bool {
	return c.fn != nil
}

// call invokes the wrapped function, or returns [ErrBadFunctionCall] if the
// callable is empty.
func (c callable) call() error {
	if c.fn == nil {
		return ErrBadFunctionCall
	}
	c.fn()
	return nil
}
