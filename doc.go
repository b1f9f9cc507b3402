// Package future provides a composable asynchronous-value abstraction: a
// future that eventually holds either a value of some type T or an error,
// together with the operators that let callers chain further work onto it,
// wait for it, combine several futures into one, or drive continuations on
// caller-supplied executors.
//
// # Architecture
//
// Every future and shared-future handle is backed by a [sharedState], a
// garbage-collected object that mediates between a single producer
// ([Promise] or [Task]) and one or more consumers. Fulfilment is the single
// write (by value or by error) that transitions the state to ready and
// drains a lock-free, single-consumer/multi-producer continuation stack
// built on a once-consumable continuation stack.
//
// [Future] is a unique, move-only-by-convention handle: [Future.Get] moves
// the value out and invalidates the handle. [SharedFuture] is its
// copyable counterpart, read by reference, safe for many consumers.
//
// [Then]/[Next] attach continuations; [ThenFuture]/[NextFuture] (and their
// SharedFuture counterparts) attach continuations whose result is itself a
// future, flattening the nesting the way an implicit unwrap does in the
// original C++ design this package is modeled on. See the package-level
// "unwrap" doc comment on [ThenFuture] for the exact laws.
//
// [WhenAll] and [WhenAny] compose a homogeneous sequence of futures;
// [WhenAll2]/[WhenAll3] provide the fixed-arity tuple-shaped overloads Go's
// type system can express without variadic generics.
//
// # Executors
//
// An [Executor] is anything with a Post(func()) method. Continuations
// attached without an executor run on whichever goroutine fulfils the
// parent state (or, if the parent is already ready, on the attaching
// goroutine). Continuations attached with an executor run wherever that
// executor decides to run them; if the executor drops the work instead of
// running it, the continuation resolves its child with [ErrBrokenPromise].
//
// Thread pool, latch, and other collaborator types external to this core
// live in the sibling packages under executors/ and latch/.
//
// # Thread safety
//
// A given [Promise]/[Task] value must be used from one goroutine at a time
// (moving/copying its zero value around is safe, concurrent method calls on
// the same value are not). The same rule applies to a single [Future]
// handle. Distinct handles over the same shared state -- including copies
// of a [SharedFuture], or a producer and its consumer -- may be used
// concurrently from different goroutines.
package future
