package queue

import (
	"errors"
	"log"
	"sync"
	"sync/atomic"

	"github.com/corelog/fastlog/core"
	"github.com/corelog/fastlog/formatter"
	"github.com/corelog/fastlog/message"
)

// ErrProducerClosed is returned by Log once the Producer has been
// closed.
var ErrProducerClosed = errors.New("queue: producer is closed")

// Producer is the explicit stand-in for the thread-local queue a
// logging thread picks up implicitly elsewhere: Go has no per-
// goroutine storage and no destructor to run on goroutine exit, so
// callers obtain a Producer once per logging goroutine and must
// Close it before that goroutine exits.
type Producer struct {
	manager *Manager
	queue   *Queue
	closed  bool

	rejected       atomic.Uint64
	warnRejectOnce sync.Once
}

// NewProducer registers a new queue of the given capacity (or
// DefaultCapacity, if capacity <= 0) with m and returns a Producer
// bound to it.
func NewProducer(m *Manager, capacity int) *Producer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	q := newQueue(capacity)
	m.register(q)
	return &Producer{manager: m, queue: q}
}

// Log validates args against h's interned kind tuple and checks that
// they fit the fixed payload, and only if both hold does it enqueue a
// new message for the drain loop to pick up. Both checks happen
// before the ring buffer slot is claimed: ring.Buffer.Enqueue's
// in-place construction callback always publishes the slot it was
// given, with no way to abandon it partway through, so a kind
// mismatch or an oversized argument must be caught first — otherwise
// the drain loop would render a stale or partially written payload,
// or a later slot reusing the same backing array could decode
// garbage left over from a failed encode.
func (p *Producer) Log(h *formatter.Handle, level core.Level, args ...formatter.Arg) error {
	if p.closed {
		return ErrProducerClosed
	}
	size, err := h.EncodedSize(args...)
	if err != nil {
		p.reject(h, err)
		return err
	}
	if size > message.MaxArgsSize {
		p.reject(h, formatter.ErrPayloadOverflow)
		return formatter.ErrPayloadOverflow
	}
	var initErr error
	p.queue.buf.Enqueue(func(slot *message.Slot) {
		initErr = slot.Init(h, level, args...)
	})
	return initErr
}

func (p *Producer) reject(h *formatter.Handle, err error) {
	p.rejected.Add(1)
	p.warnRejectOnce.Do(func() {
		log.Printf("fastlog: rejecting log call for %q: %v (further rejections are counted but not logged)", h.Template(), err)
	})
}

// Rejected returns the number of Log calls this Producer has refused
// because the supplied arguments didn't match the formatter's
// interned kind tuple, or would have overflowed the payload. Only the
// first rejection is logged; this counter is how callers observe the
// rest.
func (p *Producer) Rejected() uint64 { return p.rejected.Load() }

// Close unregisters the Producer's queue, which gives a running
// drain loop a grace period to empty it and drains it inline
// otherwise. It must be called exactly once, from the goroutine that
// owns the Producer.
func (p *Producer) Close() {
	if p.closed {
		return
	}
	p.closed = true
	p.manager.unregister(p.queue)
}
