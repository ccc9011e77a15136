package drain

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/corelog/fastlog/core"
	"github.com/corelog/fastlog/message"
	"github.com/corelog/fastlog/queue"
	"github.com/trickstertwo/xclock"
)

// Interval is the default pause between consecutive passes over
// every registered queue.
const Interval = 100 * time.Millisecond

// Writer is the destination a Loop renders lines into. sink.File
// implements it; tests substitute an in-memory fake.
type Writer interface {
	WriteLine(line string) error
}

// Loop is the single consumer that periodically drains every queue
// registered with a queue.Manager, renders each message, and writes
// it to a Writer. Construct with New, launch the background
// goroutine with Start; Stop requests shutdown and blocks until the
// goroutine has performed one final pass.
type Loop struct {
	manager  *queue.Manager
	writer   Writer
	clock    xclock.Clock
	interval time.Duration

	mu          sync.Mutex
	keepRunning bool
	stop        chan struct{}
	done        chan struct{}
	lastErr     error
}

// New constructs a Loop over manager, writing rendered lines to
// writer. clock defaults to xclock.Default() if nil; interval
// defaults to Interval if zero or negative.
func New(manager *queue.Manager, writer Writer, clock xclock.Clock, interval time.Duration) *Loop {
	if clock == nil {
		clock = xclock.Default()
	}
	if interval <= 0 {
		interval = Interval
	}
	l := &Loop{
		manager:  manager,
		writer:   writer,
		clock:    clock,
		interval: interval,
	}
	manager.SetDrainFunc(l.drainQueue)
	return l
}

// Start launches the background goroutine that drains every
// registered queue once per interval until Stop is called. Calling
// Start while already running is a no-op. Start creates the channels
// Stop signals on before it launches the goroutine, so a Start
// immediately followed by Stop is race-free.
func (l *Loop) Start() {
	l.mu.Lock()
	if l.keepRunning {
		l.mu.Unlock()
		return
	}
	l.keepRunning = true
	stop := make(chan struct{})
	l.stop = stop
	l.done = make(chan struct{})
	l.mu.Unlock()

	go l.run(stop)
}

// run performs the ticked drain passes until stop is closed, then
// one final pass so that Stop is guaranteed not to leave messages
// that were already enqueued before it was called stranded in a
// queue with no consumer left to drain them.
func (l *Loop) run(stop chan struct{}) {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-ticker.C:
			l.DrainOnce()
		case <-stop:
			break loop
		}
	}

	l.DrainOnce()

	l.mu.Lock()
	l.keepRunning = false
	close(l.done)
	l.mu.Unlock()
}

// Stop requests that the background loop exit and blocks until it
// has completed its guaranteed final pass. Calling Stop before Start,
// or more than once, is a no-op.
func (l *Loop) Stop() {
	l.mu.Lock()
	if !l.keepRunning {
		l.mu.Unlock()
		return
	}
	stop := l.stop
	done := l.done
	l.mu.Unlock()

	close(stop)
	<-done
}

// DrainOnce makes one pass over every queue currently registered
// with the Loop's manager, dequeuing and writing out every message
// each holds. It is exported so a Logger can force a synchronous
// drain (Logger.DrainOnce) without waiting for the next ticked pass.
func (l *Loop) DrainOnce() {
	l.manager.ForEach(l.drainQueue)
}

func (l *Loop) drainQueue(q *queue.Queue) {
	for {
		slot, ok := q.Dequeue()
		if !ok {
			return
		}
		l.writeSlot(slot)
	}
}

func (l *Loop) writeSlot(slot message.Slot) {
	var body bytes.Buffer
	fmt.Fprintf(&body, "[%s] [%s] ", l.clock.Now().Local().Format("2006-01-02 15:04:05"), levelString(slot.Level()))
	slot.Formatter.Format(slot.Args(), &body)
	if err := l.writer.WriteLine(body.String()); err != nil {
		l.mu.Lock()
		l.lastErr = err
		l.mu.Unlock()
	}
}

// Err returns the most recent error WriteLine reported, or nil if
// every write so far has succeeded. A write error never stops the
// Loop — unlike the teacher's channel-backed handler, there is no
// way to push a failed message back onto its queue, so the Loop
// keeps draining and simply remembers the last failure for the
// caller to inspect.
func (l *Loop) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr
}

func levelString(lvl core.Level) string { return lvl.String() }
