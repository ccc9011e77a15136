// Package sink provides the append-only file output the drain loop
// writes rendered log lines to. There is no rotation, size limit, or
// backup retention here — a single growing file is all the drain
// loop's single-writer contract requires, and the original's log
// manager used rotation only to pick a fresh filename per run, which
// DatedFilename reproduces without wiring it into File itself.
package sink
