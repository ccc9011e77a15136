package queue

import (
	"github.com/corelog/fastlog/message"
	"github.com/corelog/fastlog/ring"
)

// DefaultCapacity is the ring buffer capacity a Producer uses when
// none is given explicitly.
const DefaultCapacity = 1024

// Queue owns one producer's outstanding messages. It is only ever
// touched by its owning Producer (as writer) and by the drain loop
// that visits it through a Manager (as reader) — the same
// single-producer/single-consumer contract ring.Buffer requires.
type Queue struct {
	buf *ring.Buffer[message.Slot]
}

func newQueue(capacity int) *Queue {
	return &Queue{buf: ring.New[message.Slot](capacity)}
}

// Dequeue removes and returns the oldest outstanding message, or
// reports false if the queue is currently empty.
func (q *Queue) Dequeue() (message.Slot, bool) { return q.buf.Dequeue() }

// IsEmpty reports whether the queue currently holds no messages.
func (q *Queue) IsEmpty() bool { return q.buf.IsEmpty() }
