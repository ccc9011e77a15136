// Package ring implements the fixed-capacity single-producer/
// single-consumer ring buffer that backs every per-goroutine queue.
//
// Exactly one goroutine may call Enqueue and exactly one (possibly
// different) goroutine may call Dequeue on a given Buffer at a time;
// any other access pattern is undefined. head and tail are each
// pinned to their own cache line to avoid false sharing between the
// two goroutines touching them. Capacity must be a power of two, and
// one slot is always left unused to distinguish empty from full —
// a Buffer of capacity 1024 holds at most 1023 outstanding messages.
package ring
