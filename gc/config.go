package gc

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Config holds the collector's programmatic tunables. There is
// deliberately no file or environment-variable based configuration layer:
// spec.md §6 rules that out explicitly ("No persisted state, no config
// files, no environment variables"), so every knob here is set by the
// embedding Go program via Option functions, mirroring the teacher's
// ConcurrentGCConfig / DefaultConcurrentGCConfig shape.
type Config struct {
	// MarkStepBudget is the number of gray objects StepMark processes per
	// call (the "S" of spec.md §4.4's step_mark).
	MarkStepBudget int

	// BackgroundStepsPerTick is the mark budget of each background driver
	// tick when StartBackground is given a non-positive stepsPerTick.
	BackgroundStepsPerTick int

	// BackgroundInterval is how long the background driver waits between
	// ticks absent an early wakeup from StopBackground.
	BackgroundInterval time.Duration

	// Allocator supplies backing buffers for Alloc/AllocManage/... .
	Allocator Allocator

	// Logger receives structured lifecycle events (cycle start/finish,
	// background ticks, gate contention, recovered finalizer panics). A
	// nil Logger silences logging entirely.
	Logger logrus.FieldLogger
}

// DefaultConfig returns the tunables used by Default() and by New() when no
// options override them.
func DefaultConfig() Config {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	return Config{
		MarkStepBudget:         256,
		BackgroundStepsPerTick: 50,
		BackgroundInterval:     10 * time.Millisecond,
		Allocator:              DefaultAllocator,
		Logger:                 log,
	}
}

// Option configures a Collector at construction time.
type Option func(*Config)

// WithMarkStepBudget sets the per-call StepMark budget.
func WithMarkStepBudget(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.MarkStepBudget = n
		}
	}
}

// WithBackgroundCadence sets the background driver's per-tick step budget
// and tick interval. Either value left at zero keeps the default.
func WithBackgroundCadence(stepsPerTick int, interval time.Duration) Option {
	return func(c *Config) {
		if stepsPerTick > 0 {
			c.BackgroundStepsPerTick = stepsPerTick
		}
		if interval > 0 {
			c.BackgroundInterval = interval
		}
	}
}

// WithAllocator replaces the buffer allocator backing Alloc/AllocManage/....
func WithAllocator(a Allocator) Option {
	return func(c *Config) {
		if a != nil {
			c.Allocator = a
		}
	}
}

// WithLogger sets the logger used for lifecycle events. Passing nil
// silences logging.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Config) { c.Logger = l }
}

// silentLogger is used whenever Config.Logger is nil (WithLogger(nil)), so
// call sites never need a nil check.
func silentLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func (c Config) logger() logrus.FieldLogger {
	if c.Logger == nil {
		return silentLogger()
	}
	return c.Logger
}
