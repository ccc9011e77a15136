package queue

import (
	"runtime"
	"sync"
	"time"
)

// unregisterGracePeriod bounds how long Close waits for a drain loop
// to empty a departing Producer's queue before draining it inline.
const unregisterGracePeriod = 50 * time.Millisecond

// Manager tracks the set of live queues a drain loop must visit. It
// is the Go-native counterpart of a thread-scoped queue registry: Go
// producers register and unregister explicitly through Producer
// rather than implicitly through thread construction and teardown.
type Manager struct {
	mu       sync.Mutex
	queues   map[*Queue]struct{}
	drainOne func(*Queue)
}

// NewManager constructs an empty Manager.
func NewManager() *Manager {
	return &Manager{queues: make(map[*Queue]struct{})}
}

// SetDrainFunc installs the callback unregister falls back to when a
// queue still holds messages after the grace period elapses with no
// drain loop having emptied it. The drain package wires its own
// formatting and output here; until this is set, unregister falls
// back to silently discarding the remaining messages.
func (m *Manager) SetDrainFunc(fn func(*Queue)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drainOne = fn
}

func (m *Manager) register(q *Queue) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queues[q] = struct{}{}
}

// unregister removes q once it has no outstanding messages. Unlike
// the fixed five-second sleep this is modeled on, it never blocks
// for longer than unregisterGracePeriod: if no drain loop has
// emptied the queue by then, unregister drains it inline itself, so
// a producer closing down can never be held hostage by a drain loop
// that isn't running.
//
// q is removed from the set under the lock before the inline drain
// runs, not after: ring.Buffer allows exactly one consumer, so q must
// be gone from the set — and therefore unreachable from any ForEach
// call that starts from this point on — before a second consumer
// (this inline fallback) is allowed to touch it.
func (m *Manager) unregister(q *Queue) {
	deadline := time.Now().Add(unregisterGracePeriod)
	for !q.IsEmpty() && time.Now().Before(deadline) {
		runtime.Gosched()
	}

	m.mu.Lock()
	fn := m.drainOne
	delete(m.queues, q)
	m.mu.Unlock()

	if !q.IsEmpty() {
		if fn != nil {
			fn(q)
		} else {
			for {
				if _, ok := q.Dequeue(); !ok {
					break
				}
			}
		}
	}
}

// ForEach calls fn once for every queue registered at the moment of
// the call. The lock is held only long enough to snapshot the live
// set — never while fn runs — so a slow drain pass (formatting and
// writing every queue's backlog) never blocks a concurrent Register
// or Close. fn must not call Register or unregister through this
// Manager: the pointers in the snapshot stay valid either way (Go's
// GC keeps them alive), but reentering the Manager from inside fn is
// still unsupported.
func (m *Manager) ForEach(fn func(*Queue)) {
	m.mu.Lock()
	snapshot := make([]*Queue, 0, len(m.queues))
	for q := range m.queues {
		snapshot = append(snapshot, q)
	}
	m.mu.Unlock()

	for _, q := range snapshot {
		fn(q)
	}
}

// Len reports the number of currently registered queues.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queues)
}
