package charm

import (
	"errors"
	"io"
	"os"
	"time"
)

// ErrNilClock is returned by New when the configuration carries no Clock.
var ErrNilClock = errors.New("charm: engine needs a clock")

// Config configures an Engine.
type Config struct {
	// Clock times delayed continuations (yoyo restarts, walk segment delays,
	// Wait). Required.
	Clock Clock

	// Debug enables per-frame stats on DebugOutput.
	Debug bool

	// DebugOutput receives debug stats. Defaults to os.Stderr.
	DebugOutput io.Writer

	// Sink, if set, receives tween lifecycle events.
	Sink EventSink
}

// DefaultConfig returns a configuration driven by the wall clock.
func DefaultConfig() Config {
	return Config{Clock: WallClock{}}
}

// Handle is anything Engine.Remove accepts: *Tween, *CurveTween, *Composite
// and *Walk.
type Handle interface {
	Play()
	Pause()
	Playing() bool

	stop()
	registered() bool
}

// Engine owns the tween registry and the delayed-task scheduler. Call Update
// once per host frame. An Engine is not safe for concurrent use.
type Engine struct {
	registry *registry
	sched    scheduler
	frame    uint64
	clears   uint64 // bumped by Clear; callbacks compare it to skip rescheduling

	debug    bool
	debugOut io.Writer
	sink     EventSink
}

// New creates an engine from cfg.
func New(cfg Config) (*Engine, error) {
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	out := cfg.DebugOutput
	if out == nil {
		out = os.Stderr
	}
	return &Engine{
		registry: newRegistry(),
		sched:    scheduler{clock: cfg.Clock},
		debug:    cfg.Debug,
		debugOut: out,
		sink:     cfg.Sink,
	}, nil
}

// MustNew is like New but panics on a configuration error.
func MustNew(cfg Config) *Engine {
	e, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return e
}

// Update runs due delayed continuations, then advances every registered tween
// by one frame.
func (e *Engine) Update() {
	e.frame++

	var stats debugStats
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	e.sched.run()

	if e.debug {
		stats.taskTime = time.Since(t0)
		t0 = time.Now()
	}

	e.registry.update()

	if e.debug {
		stats.stepTime = time.Since(t0)
		stats.active = e.registry.len()
		stats.pending = e.sched.pending()
		e.debugLog(stats)
	}
}

// Remove pauses h and deregisters it, cancelling any pending yoyo restart or
// walk continuation. Removing something that is not registered is a no-op.
func (e *Engine) Remove(h Handle) {
	if h == nil {
		return
	}
	h.stop()
}

// Contains reports whether h is registered or waiting on a continuation.
func (e *Engine) Contains(h Handle) bool {
	return h != nil && h.registered()
}

// Len returns the number of registered tweens.
func (e *Engine) Len() int {
	return e.registry.len()
}

// Pending returns the number of delayed continuations waiting to run.
func (e *Engine) Pending() int {
	return e.sched.pending()
}

// Frame returns the number of Update calls so far.
func (e *Engine) Frame() uint64 {
	return e.frame
}

// Wait schedules fn to run at the start of the first Update at least d after
// now. Wait returns immediately; cancel the returned task to drop fn.
func (e *Engine) Wait(d time.Duration, fn func()) *Task {
	if fn == nil {
		panic("charm: Wait with nil func")
	}
	return e.sched.after(d, fn)
}

// Clear removes every registered tween and cancels every pending task. It is
// safe to call from OnComplete and Wait callbacks: the completing tween or walk
// does not reschedule itself afterwards.
func (e *Engine) Clear() {
	e.clears++
	for _, s := range e.registry.removeAll() {
		s.stop()
	}
	e.sched.clear()
}

// SetEventSink sets the optional lifecycle event sink.
func (e *Engine) SetEventSink(sink EventSink) {
	e.sink = sink
}

// SetDebugMode enables or disables per-frame stats.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

func (e *Engine) emit(ev TweenEvent) {
	if e.sink == nil {
		return
	}
	ev.Frame = e.frame
	e.sink.EmitEvent(ev)
}
