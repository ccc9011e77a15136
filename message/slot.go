package message

import (
	"github.com/corelog/fastlog/core"
	"github.com/corelog/fastlog/formatter"
)

// PayloadSize is the fixed capacity, in bytes, of a Slot's argument
// payload, including the one-byte level prefix. It is a package
// constant rather than a per-Slot field: the ring buffer's slot type
// must have a uniform size.
const PayloadSize = 1024

// levelSize is the number of bytes the Level prefix occupies at the
// front of Payload.
const levelSize = 1

// MaxArgsSize is the number of Payload bytes available for encoded
// arguments, after the level prefix. Callers that construct a Slot's
// arguments outside of Init — the queue package, checking that a
// message will fit before claiming a ring buffer slot — compare
// against this rather than PayloadSize directly.
const MaxArgsSize = PayloadSize - levelSize

// Slot is the unit of transfer through a ring buffer. Formatter is
// never nil for a published slot; Payload's first byte is the
// message's Level and the remaining PayloadSize-1 bytes are whatever
// Formatter.Encode wrote for the call's arguments.
type Slot struct {
	Formatter *formatter.Handle
	Payload   [PayloadSize]byte
	argLen    int // bytes of Payload[levelSize:] actually in use
}

// Init constructs a Slot in place: it records the formatter handle,
// writes the level prefix, and encodes args into the remaining
// payload space. It returns an error (and leaves the slot unusable)
// if the encoded arguments would overflow the payload or don't match
// the formatter's argument kinds. Init does not stop a slot from
// being published: when it runs inside ring.Buffer.Enqueue's
// callback the slot is published regardless, which is why
// queue.Producer.Log checks both conditions before claiming a slot.
func (s *Slot) Init(h *formatter.Handle, level core.Level, args ...formatter.Arg) error {
	s.Formatter = h
	s.Payload[0] = byte(level)
	n, err := h.Encode(s.Payload[levelSize:], args...)
	if err != nil {
		return err
	}
	s.argLen = n
	return nil
}

// Level returns the level recorded in the payload prefix.
func (s *Slot) Level() core.Level {
	return core.Level(s.Payload[0])
}

// Args returns the encoded argument bytes, excluding the level
// prefix, ready to be passed to Formatter.Format.
func (s *Slot) Args() []byte {
	return s.Payload[levelSize : levelSize+s.argLen]
}
