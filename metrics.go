package future

import (
	"sync"
	"sync/atomic"
	"time"
)

// Metrics tracks runtime statistics for futures created under it: how many
// resolved versus rejected, and the distribution of fulfilment latency
// (time from creation to fulfilment). All methods are thread-safe. The
// zero value is usable.
type Metrics struct {
	mu      sync.Mutex
	psquare *pSquareMultiQuantile

	resolved atomic.Int64
	rejected atomic.Int64
}

// NewMetrics returns a ready-to-use [Metrics] collector.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// recordLatency records a single fulfilment latency sample.
func (m *Metrics) recordLatency(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.psquare == nil {
		m.psquare = newPSquareMultiQuantile(0.50, 0.90, 0.95, 0.99)
	}
	m.psquare.Update(float64(d))
}

func (m *Metrics) recordOutcome(err error) {
	if err != nil {
		m.rejected.Add(1)
	} else {
		m.resolved.Add(1)
	}
}

// Snapshot is a point-in-time copy of a [Metrics] collector's state.
type Snapshot struct {
	Resolved int64
	Rejected int64
	P50      time.Duration
	P90      time.Duration
	P95      time.Duration
	P99      time.Duration
	Mean     time.Duration
	Count    int
}

// Snapshot returns the current state of the collector.
func (m *Metrics) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := Snapshot{
		Resolved: m.resolved.Load(),
		Rejected: m.rejected.Load(),
	}
	if m.psquare != nil {
		s.P50 = time.Duration(m.psquare.Quantile(0))
		s.P90 = time.Duration(m.psquare.Quantile(1))
		s.P95 = time.Duration(m.psquare.Quantile(2))
		s.P99 = time.Duration(m.psquare.Quantile(3))
		s.Mean = time.Duration(m.psquare.Mean())
		s.Count = m.psquare.Count()
	}
	return s
}

// instrumentedState wires a [Metrics] collector into a shared state's
// fulfilment, recording latency from construction to fulfilment plus the
// resolved/rejected outcome split.
type instrumentedState[T any] struct {
	*sharedState[T]
	metrics   *Metrics
	createdAt time.Time
}

func newInstrumentedState[T any](m *Metrics) *instrumentedState[T] {
	return &instrumentedState[T]{
		sharedState: newSharedState[T](),
		metrics:     m,
		createdAt:   time.Now(),
	}
}

func (s *instrumentedState[T]) emplace(v T) {
	s.sharedState.emplace(v)
	s.metrics.recordLatency(time.Since(s.createdAt))
	s.metrics.recordOutcome(nil)
}

func (s *instrumentedState[T]) setError(err error) {
	s.sharedState.setError(err)
	s.metrics.recordLatency(time.Since(s.createdAt))
	s.metrics.recordOutcome(err)
}

// AsyncInstrumented is [Async], recording fulfilment latency and outcome
// counts into m.
func AsyncInstrumented[R any](exec Executor, m *Metrics, fn func() (R, error)) Future[R] {
	is := newInstrumentedState[R](m)
	post(exec, func() {
		defer func() {
			if r := recover(); r != nil {
				is.setError(&PanicError{Value: r})
			}
		}()
		v, err := fn()
		if err != nil {
			is.setError(err)
			return
		}
		is.emplace(v)
	})
	return newFuture(is.sharedState)
}
