package future

import "sync/atomic"

// WhenAll returns a future that becomes ready once every future in fs is
// ready, holding their results in the same order, never itself failing
// (per-element errors are preserved in the corresponding [Result] entry).
// Each input is consumed.
//
// The arming pattern mirrors when_all_state: the remaining-operations
// counter starts at len(fs)+1 so that attaching every continuation cannot
// race the last one completing before all of them are registered; the
// extra decrement ("arming") happens only after the loop finishes.
func WhenAll[T any](fs ...Future[T]) Future[[]Result[T]] {
	n := len(fs)
	results := make([]Result[T], n)
	child := newSharedState[[]Result[T]]()
	if n == 0 {
		child.emplace(results)
		return newFuture(child)
	}

	var remaining atomic.Int64
	remaining.Store(int64(n) + 1)

	arrive := func() {
		if remaining.Add(-1) == 0 {
			child.emplace(results)
		}
	}

	for i, f := range fs {
		if !f.Valid() {
			results[i] = Result[T]{Err: ErrNoState}
			arrive()
			continue
		}
		i, s := i, f.state
		s.onReady(func() {
			v, err := s.get()
			results[i] = Result[T]{Value: v, Err: err}
			arrive()
		})
	}
	arrive()
	return newFuture(child)
}

// Result is one element of a [WhenAll] result slice: exactly one of Value
// (when Err is nil) or Err is meaningful.
type Result[T any] struct {
	Value T
	Err   error
}

// WhenAll2 joins two differently-typed futures into a future of a pair,
// the fixed-arity tuple overload Go's lack of variadic generics requires in
// place of the variadic template when_all(futures...).
func WhenAll2[A, B any](fa Future[A], fb Future[B]) Future[Pair[A, B]] {
	child := newSharedState[Pair[A, B]]()
	var remaining atomic.Int64
	remaining.Store(3)
	var pair Pair[A, B]

	arrive := func() {
		if remaining.Add(-1) == 0 {
			child.emplace(pair)
		}
	}

	attachWhenAllField(&remaining, fa, &pair.A, &pair.AErr, arrive)
	attachWhenAllField(&remaining, fb, &pair.B, &pair.BErr, arrive)
	arrive()
	return newFuture(child)
}

// Pair is the result of [WhenAll2]: A/B hold each future's value, and
// AErr/BErr hold its error, if any.
type Pair[A, B any] struct {
	A    A
	AErr error
	B    B
	BErr error
}

func attachWhenAllField[T any](remaining *atomic.Int64, f Future[T], value *T, errField *error, arrive func()) {
	if !f.Valid() {
		*errField = ErrNoState
		arrive()
		return
	}
	s := f.state
	s.onReady(func() {
		v, err := s.get()
		*value = v
		*errField = err
		arrive()
	})
}

// WhenAll3 is [WhenAll2] for three futures.
func WhenAll3[A, B, C any](fa Future[A], fb Future[B], fc Future[C]) Future[Triple[A, B, C]] {
	child := newSharedState[Triple[A, B, C]]()
	var remaining atomic.Int64
	remaining.Store(4)
	var triple Triple[A, B, C]

	arrive := func() {
		if remaining.Add(-1) == 0 {
			child.emplace(triple)
		}
	}

	attachWhenAllField(&remaining, fa, &triple.A, &triple.AErr, arrive)
	attachWhenAllField(&remaining, fb, &triple.B, &triple.BErr, arrive)
	attachWhenAllField(&remaining, fc, &triple.C, &triple.CErr, arrive)
	arrive()
	return newFuture(child)
}

// Triple is the result of [WhenAll3].
type Triple[A, B, C any] struct {
	A    A
	AErr error
	B    B
	BErr error
	C    C
	CErr error
}
