// Package message defines the fixed-size MessageSlot record that
// flows through a ring buffer from producer to drain loop: a
// formatter handle plus a fixed-capacity byte payload. The payload's
// first byte is always the message's core.Level; the remainder is
// whatever the formatter's Encode wrote.
package message
