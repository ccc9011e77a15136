// Package queue binds a ring.Buffer of message.Slot to a producer
// and tracks the set of live queues a drain loop must visit.
//
// There is no OS or goroutine thread-local storage involved: Go gives
// producers no destructor to hook thread exit, so callers obtain a
// Queue explicitly through a Producer and must Close it explicitly
// when done, rather than relying on implicit teardown.
package queue
