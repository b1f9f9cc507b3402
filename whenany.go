package future

import "sync/atomic"

// WhenAnyResult is the value type of [WhenAny]'s returned future: Index is
// the position of the first input future to become ready, and Futures is
// the original slice of futures (only the winner is guaranteed to be ready
// at that point), preserved so the winner's
// value can be retrieved alongside its siblings -- mirroring
// when_any_result<Sequence>.
type WhenAnyResult[T any] struct {
	Index   int
	Futures []SharedFuture[T]
}

// WhenAny returns a future that becomes ready as soon as any one of fs
// does, reporting which. An empty fs produces an already-ready result with
// Index -1 and an empty Futures slice, mirroring when_any over an empty
// sequence. Every input is converted to a [SharedFuture] (so the caller can
// still read every element's result afterwards); the race between
// concurrently completing inputs is settled with a single atomic compare-
// and-swap (mirroring when_any_state's barrier_, minus the construction-
// ordering dance that trick exists for in the original: Go closures only
// close over already-fully-initialized values, so there is no analogous
// "continuation fires before the state is fully built" hazard to guard
// against).
func WhenAny[T any](fs ...Future[T]) (Future[WhenAnyResult[T]], error) {
	n := len(fs)
	if n == 0 {
		child := newSharedState[WhenAnyResult[T]]()
		child.emplace(WhenAnyResult[T]{Index: -1})
		return newFuture(child), nil
	}

	shared := make([]SharedFuture[T], n)
	for i, f := range fs {
		if !f.Valid() {
			return Future[WhenAnyResult[T]]{}, ErrNoState
		}
		sf, _ := (&f).Share()
		shared[i] = sf
	}

	child := newSharedState[WhenAnyResult[T]]()
	var claimed atomic.Bool

	for i, sf := range shared {
		i, s := i, sf.state
		s.onReady(func() {
			if claimed.CompareAndSwap(false, true) {
				child.emplace(WhenAnyResult[T]{Index: i, Futures: shared})
			}
		})
	}

	return newFuture(child), nil
}
