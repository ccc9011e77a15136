package logger

import (
	"sync/atomic"

	"github.com/corelog/fastlog/core"
	"github.com/corelog/fastlog/drain"
	"github.com/corelog/fastlog/formatter"
	"github.com/corelog/fastlog/queue"
)

// Logger is the single entry point a program constructs: a formatter
// registry is process-wide (package formatter), but the queue
// manager and drain loop are per-Logger, so two Loggers never
// interfere with each other's queues.
type Logger struct {
	manager *queue.Manager
	loop    *drain.Loop
	level   atomic.Uint32
}

// New constructs a Logger that writes rendered lines to writer.
// Without WithLevel, the initial minimum level is core.InfoLevel,
// matching the teacher's Builder default.
func New(writer drain.Writer, opts ...Option) *Logger {
	cfg := config{level: core.InfoLevel}
	for _, opt := range opts {
		opt(&cfg)
	}

	m := queue.NewManager()
	l := &Logger{manager: m}
	l.level.Store(uint32(cfg.level))
	l.loop = drain.New(m, writer, cfg.clock, cfg.interval)
	return l
}

// SetLevel changes the minimum level Log accepts. Safe to call
// concurrently with Log.
func (l *Logger) SetLevel(level core.Level) { l.level.Store(uint32(level)) }

// Level returns the current minimum level.
func (l *Logger) Level() core.Level { return core.Level(l.level.Load()) }

// NewProducer returns a Producer bound to this Logger's queue
// manager, using queue.DefaultCapacity. Callers obtain one Producer
// per logging goroutine and reuse it for that goroutine's lifetime.
func (l *Logger) NewProducer() *queue.Producer {
	return queue.NewProducer(l.manager, queue.DefaultCapacity)
}

// NewProducerWithCapacity is NewProducer with an explicit ring
// buffer capacity, which must be a power of two.
func (l *Logger) NewProducerWithCapacity(capacity int) *queue.Producer {
	return queue.NewProducer(l.manager, capacity)
}

// Log checks level against the Logger's current minimum before
// handing off to p.Log, exactly mirroring FastLogger::Log's
// level-gate-then-enqueue sequence: the check happens here, before
// any argument validation or ring buffer work, so a call below the
// current level costs one atomic load and nothing else.
func (l *Logger) Log(p *queue.Producer, h *formatter.Handle, level core.Level, args ...formatter.Arg) error {
	if level < l.Level() {
		return nil
	}
	return p.Log(h, level, args...)
}

// Debug logs at core.DebugLevel.
func (l *Logger) Debug(p *queue.Producer, h *formatter.Handle, args ...formatter.Arg) error {
	return l.Log(p, h, core.DebugLevel, args...)
}

// Info logs at core.InfoLevel.
func (l *Logger) Info(p *queue.Producer, h *formatter.Handle, args ...formatter.Arg) error {
	return l.Log(p, h, core.InfoLevel, args...)
}

// Error logs at core.ErrorLevel.
func (l *Logger) Error(p *queue.Producer, h *formatter.Handle, args ...formatter.Arg) error {
	return l.Log(p, h, core.ErrorLevel, args...)
}

// Fatal logs at core.FatalLevel. Unlike the teacher's Fatal, it does
// not call os.Exit: FATAL here is the top of the four-value Level
// enum, not a process-termination signal — spec.md's Non-goals leave
// process lifecycle to the caller.
func (l *Logger) Fatal(p *queue.Producer, h *formatter.Handle, args ...formatter.Arg) error {
	return l.Log(p, h, core.FatalLevel, args...)
}

// Start launches the background drain loop.
func (l *Logger) Start() { l.loop.Start() }

// Stop halts the background drain loop after one guaranteed final
// pass over every registered queue.
func (l *Logger) Stop() { l.loop.Stop() }

// DrainOnce forces a synchronous pass over every registered queue,
// without needing Start to have been called at all.
func (l *Logger) DrainOnce() { l.loop.DrainOnce() }

// Err returns the most recent error the drain loop's writer reported.
func (l *Logger) Err() error { return l.loop.Err() }
