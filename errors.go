package future

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the well-known error conditions this package raises,
// mirroring the error-code taxonomy of std::future_error (broken_promise,
// future_already_retrieved, promise_already_satisfied, no_state) plus the
// bad-function-call condition raised by the zero-value callable wrapper.
type ErrorKind int

const (
	// KindNoState indicates the handle is empty: default-constructed,
	// moved-from, or its value has already been taken.
	KindNoState ErrorKind = iota
	// KindFutureAlreadyRetrieved indicates a second GetFuture call on the
	// same promise or task.
	KindFutureAlreadyRetrieved
	// KindPromiseAlreadySatisfied indicates a second fulfilment of the
	// same shared state.
	KindPromiseAlreadySatisfied
	// KindBrokenPromise indicates the producer side (promise, task, or an
	// abandoned continuation/executor job) was dropped before fulfilling
	// its state.
	KindBrokenPromise
	// KindBadFunctionCall indicates an attempt to invoke a null callable
	// wrapper.
	KindBadFunctionCall
)

// String returns a short, stable name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindNoState:
		return "no-state"
	case KindFutureAlreadyRetrieved:
		return "future-already-retrieved"
	case KindPromiseAlreadySatisfied:
		return "promise-already-satisfied"
	case KindBrokenPromise:
		return "broken-promise"
	case KindBadFunctionCall:
		return "bad-function-call"
	default:
		return fmt.Sprintf("unknown-error-kind(%d)", int(k))
	}
}

// Error is the concrete error type raised for every well-known condition in
// this package's taxonomy. Callers should match on kind via [errors.Is]
// against the sentinel values below, not by type-asserting *Error directly.
type Error struct {
	Kind ErrorKind
	// Msg optionally qualifies the error with extra context (e.g. which
	// operation observed a no-state handle).
	Msg string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Msg == "" {
		return "future: " + e.Kind.String()
	}
	return "future: " + e.Kind.String() + ": " + e.Msg
}

// Is reports whether target is an *Error with the same Kind, so that
// errors.Is(err, ErrBrokenPromise) works regardless of Msg.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return other.Kind == e.Kind
}

// Sentinel errors, one per [ErrorKind], for use with errors.Is. Every
// *Error this package constructs carries one of these kinds; the sentinels
// themselves are valid targets but callers should prefer the functions
// below to attach a message.
var (
	ErrNoState                 = &Error{Kind: KindNoState}
	ErrFutureAlreadyRetrieved  = &Error{Kind: KindFutureAlreadyRetrieved}
	ErrPromiseAlreadySatisfied = &Error{Kind: KindPromiseAlreadySatisfied}
	ErrBrokenPromise           = &Error{Kind: KindBrokenPromise}
	ErrBadFunctionCall         = &Error{Kind: KindBadFunctionCall}
)

func newError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// PanicError wraps a value recovered from a panicking continuation, task, or
// promisified function, preserving it as the future's stored exception.
type PanicError struct {
	Value any
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("future: panic recovered: %v", e.Value)
}

// Unwrap returns the underlying error if the panic value was itself an
// error, enabling errors.Is/errors.As to see through the wrapper.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
