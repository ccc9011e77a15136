// Package logger ties together a formatter registry, a queue
// manager, and a drain loop into the single entry point callers
// construct: a Logger. Each Logger owns exactly one queue.Manager —
// there is no process-wide singleton — matching the data model's
// "each Logger has its own manager instance."
package logger
