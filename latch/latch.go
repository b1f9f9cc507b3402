// Package latch provides a single-use countdown synchronization point,
// grounded on portable_concurrency's latch<T>: a thread blocks on Wait
// until a counter, initialized to some count, reaches zero via repeated
// CountDown calls.
package latch

import (
	"sync"
)

// Latch lets one or more goroutines block until a fixed number of
// CountDown calls have been made. It cannot be reused once its count
// reaches zero.
type Latch struct {
	mu      sync.Mutex
	cond    *sync.Cond
	count   int
	waiters int
}

// New creates a Latch armed with count, which must not be negative.
func New(count int) *Latch {
	if count < 0 {
		panic("latch: negative count")
	}
	l := &Latch{count: count}
	l.cond = sync.NewCond(&l.mu)
	return l
}

// CountDown decrements the latch's counter by n (default 1 if n is empty),
// waking every blocked Wait/CountDownAndWait call once it reaches zero.
// Calling it after the counter has already reached zero is a no-op.
func (l *Latch) CountDown(n ...int) {
	dec := 1
	if len(n) > 0 {
		dec = n[0]
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.count == 0 {
		return
	}
	l.count -= dec
	if l.count < 0 {
		l.count = 0
	}
	if l.count == 0 {
		l.cond.Broadcast()
	}
}

// CountDownAndWait decrements the counter by one, then blocks until it
// reaches zero -- the common rendezvous-barrier usage.
func (l *Latch) CountDownAndWait() {
	l.CountDown()
	l.Wait()
}

// Wait blocks until the latch's counter reaches zero. If it is already
// zero, Wait returns immediately.
func (l *Latch) Wait() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for l.count > 0 {
		l.waiters++
		l.cond.Wait()
		l.waiters--
	}
}

// IsReady reports whether the counter has already reached zero.
func (l *Latch) IsReady() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count == 0
}
