package logger

import (
	"time"

	"github.com/corelog/fastlog/core"
	"github.com/trickstertwo/xclock"
)

type config struct {
	clock    xclock.Clock
	interval time.Duration
	level    core.Level
}

// Option configures a Logger at construction time. An unset clock or
// interval is left zero/nil here and resolved by drain.New, which
// already defaults to xclock.Default() and drain.Interval.
type Option func(*config)

// WithClock overrides the clock the drain loop stamps each rendered
// line with. Tests use this to inject an xclock.Frozen clock.
func WithClock(c xclock.Clock) Option {
	return func(cfg *config) { cfg.clock = c }
}

// WithInterval overrides how often the background drain loop visits
// every registered queue.
func WithInterval(d time.Duration) Option {
	return func(cfg *config) { cfg.interval = d }
}

// WithLevel sets the initial minimum level Log will accept; it can be
// changed later with Logger.SetLevel.
func WithLevel(level core.Level) Option {
	return func(cfg *config) { cfg.level = level }
}
