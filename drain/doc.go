// Package drain implements the single consumer that periodically
// visits every registered queue, renders each outstanding message
// through its formatter, and writes the result to a sink.
//
// A Loop owns exactly one background goroutine. It is the only
// permitted reader of every queue.Queue it visits, matching the
// single-producer/single-consumer contract the ring buffers beneath
// them require.
package drain
