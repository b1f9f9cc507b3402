// Package executors provides ready-made [future.Executor] implementations:
// a fixed-size worker pool backed by a chunked task queue and a semaphore-
// bounded concurrent executor. The synchronous and goroutine-per-task
// executors are future.Inline and future.Goroutine in the core package.
package executors

import (
	"context"
	"sync"

	"github.com/go-futures/future"
	"golang.org/x/sync/semaphore"
)

// chunkSize is the number of tasks held per node of a [chunkedQueue]'s
// linked list: large enough to amortize allocation, small enough to keep
// each node cache-friendly.
const chunkSize = 128

// chunk is a fixed-size node in a chunked linked-list task queue, indexed
// by independent read/write cursors so push/pop never shift elements.
type chunk struct {
	tasks   [chunkSize]func()
	next    *chunk
	readPos int
	pos     int
}

var chunkPool = sync.Pool{New: func() any { return &chunk{} }}

func newChunk() *chunk {
	c := chunkPool.Get().(*chunk)
	c.pos, c.readPos, c.next = 0, 0, nil
	return c
}

func returnChunk(c *chunk) {
	for i := 0; i < c.pos; i++ {
		c.tasks[i] = nil // avoid retaining closures past their use
	}
	c.pos, c.readPos, c.next = 0, 0, nil
	chunkPool.Put(c)
}

// chunkedQueue is a FIFO task queue built from pooled, fixed-size chunks.
// It is not itself safe for concurrent use; [FixedPool] guards it with a
// mutex and a condition variable.
type chunkedQueue struct {
	head, tail *chunk
	length     int
}

func (q *chunkedQueue) push(task func()) {
	if q.tail == nil {
		q.tail = newChunk()
		q.head = q.tail
	}
	if q.tail.pos == len(q.tail.tasks) {
		next := newChunk()
		q.tail.next = next
		q.tail = next
	}
	q.tail.tasks[q.tail.pos] = task
	q.tail.pos++
	q.length++
}

func (q *chunkedQueue) pop() (func(), bool) {
	if q.head == nil {
		return nil, false
	}
	if q.head.readPos >= q.head.pos {
		if q.head == q.tail {
			q.head.pos, q.head.readPos = 0, 0
			return nil, false
		}
		old := q.head
		q.head = q.head.next
		returnChunk(old)
	}
	if q.head.readPos >= q.head.pos {
		return nil, false
	}
	task := q.head.tasks[q.head.readPos]
	q.head.tasks[q.head.readPos] = nil
	q.head.readPos++
	q.length--
	if q.head.readPos >= q.head.pos && q.head == q.tail {
		q.head.pos, q.head.readPos = 0, 0
	}
	return task, true
}

// FixedPool is a [future.Executor] backed by a fixed number of worker
// goroutines pulling from a shared chunked queue. Posting never blocks the
// caller; workers block on the queue's condition variable when idle.
type FixedPool struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  chunkedQueue
	closed bool
	wg     sync.WaitGroup
}

// NewFixedPool starts a FixedPool with workers goroutines. workers must be
// at least 1.
func NewFixedPool(workers int) *FixedPool {
	if workers < 1 {
		workers = 1
	}
	p := &FixedPool{}
	p.cond = sync.NewCond(&p.mu)
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *FixedPool) worker() {
	defer p.wg.Done()
	for {
		p.mu.Lock()
		for p.queue.length == 0 && !p.closed {
			p.cond.Wait()
		}
		task, ok := p.queue.pop()
		p.mu.Unlock()
		if !ok {
			if p.isClosed() {
				return
			}
			continue
		}
		task()
	}
}

func (p *FixedPool) isClosed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed && p.queue.length == 0
}

// Post implements [future.Executor]. Posting to a closed pool runs fn
// inline instead of dropping it, since a closed pool is a programmer-
// visible lifecycle event, not a transient condition continuations should
// interpret as a broken promise.
func (p *FixedPool) Post(fn func()) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		fn()
		return
	}
	p.queue.push(fn)
	p.mu.Unlock()
	p.cond.Signal()
}

// Close stops accepting new work and waits for queued work to drain and
// every worker goroutine to exit.
func (p *FixedPool) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.cond.Broadcast()
	p.wg.Wait()
}

var _ future.Executor = (*FixedPool)(nil)

// Bounded is a [future.Executor] that runs each posted function on its own
// goroutine, but limits how many may run concurrently using a weighted
// semaphore, backpressuring Post itself when the limit is reached.
type Bounded struct {
	sem *semaphore.Weighted
	ctx context.Context
}

// NewBounded returns a Bounded executor allowing at most n concurrent
// functions.
func NewBounded(n int64) *Bounded {
	return &Bounded{sem: semaphore.NewWeighted(n), ctx: context.Background()}
}

// Post implements [future.Executor]. It blocks the calling goroutine until
// a concurrency slot is available, then runs fn on a new goroutine.
func (b *Bounded) Post(fn func()) {
	_ = b.sem.Acquire(b.ctx, 1)
	go func() {
		defer b.sem.Release(1)
		fn()
	}()
}

var _ future.Executor = (*Bounded)(nil)
