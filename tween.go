package charm

import "time"

// TweenOptions configures a single tween. The zero value is a Smoothstep tween
// that plays once.
type TweenOptions struct {
	Easing Easing
	// Yoyo restarts the tween in reverse each time it completes.
	Yoyo bool
	// Delay is waited between completion and a yoyo restart.
	Delay time.Duration
}

// clip is the frame counter, easing and yoyo machinery shared by Tween and
// CurveTween.
type clip struct {
	engine  *Engine
	id      uint64 // registry id, 0 while not registered
	frames  int
	frame   int
	easing  Easing
	yoyo    bool
	delay   time.Duration
	playing bool
	stopped bool
	restart *Task
}

func newClip(e *Engine, frames int, opts TweenOptions) clip {
	return clip{
		engine: e,
		frames: max(frames, 0),
		easing: opts.Easing,
		yoyo:   opts.Yoyo,
		delay:  opts.Delay,
	}
}

func (c *clip) begin(s stepper) {
	c.frame = 0
	c.playing = true
	c.id = c.engine.registry.add(s)
}

// advance moves one frame forward and returns the curved time of the new
// frame. done is true once the final frame is reached; the caller then writes
// the exact end value.
func (c *clip) advance() (curved float64, done bool) {
	c.frame++
	if c.frame < c.frames {
		return c.easing.Apply(float64(c.frame) / float64(c.frames)), false
	}
	c.frame = c.frames
	return 1, true
}

// finish deregisters, runs onDone and, for yoyo clips that were not removed,
// schedules restart after the repeat delay.
func (c *clip) finish(onDone func(), restart func()) {
	c.playing = false
	c.engine.registry.remove(c.id)
	c.id = 0
	gen := c.engine.clears
	if onDone != nil {
		onDone()
	}
	if c.engine.clears != gen {
		c.stopped = true
	}
	if !c.yoyo || c.stopped {
		return
	}
	c.restart = c.engine.sched.after(c.delay, func() {
		c.restart = nil
		if !c.stopped {
			restart()
		}
	})
}

// halt pauses, deregisters and cancels any pending restart. It reports
// whether the clip was registered or waiting to restart.
func (c *clip) halt() bool {
	active := c.id != 0 || c.restart.Pending()
	c.playing = false
	c.stopped = true
	c.restart.Cancel()
	c.restart = nil
	c.engine.registry.remove(c.id)
	c.id = 0
	return active
}

func (c *clip) registered() bool {
	return c.engine.registry.has(c.id) || c.restart.Pending()
}

// Play resumes a paused tween from its current frame. It has no effect on a
// tween that is not registered.
func (c *clip) Play() {
	if c.id == 0 || c.stopped {
		return
	}
	c.playing = true
}

// Pause stops advancement without resetting the frame counter.
func (c *clip) Pause() { c.playing = false }

// Playing reports whether the tween advances on the next update.
func (c *clip) Playing() bool { return c.playing }

// Frame returns the number of frames played in the current run.
func (c *clip) Frame() int { return c.frame }

// TotalFrames returns the length of one run in frames.
func (c *clip) TotalFrames() int { return c.frames }

// Easing returns the tween's easing.
func (c *clip) Easing() Easing { return c.easing }

// Tween animates one numeric property of a Target.
type Tween struct {
	clip

	Target   Target
	Property string

	// OnComplete runs each time a run reaches its final frame.
	OnComplete func()

	from, to float64
}

// TweenProperty starts a tween that moves target's property from from to to
// over frames updates. A frames value of 0 or less jumps to to on the first
// update.
func (e *Engine) TweenProperty(target Target, property string, from, to float64, frames int, opts TweenOptions) *Tween {
	if target == nil {
		panic("charm: tween with nil target")
	}
	t := &Tween{
		clip:     newClip(e, frames, opts),
		Target:   target,
		Property: property,
	}
	t.start(from, to)
	return t
}

func (t *Tween) start(from, to float64) {
	t.from = from
	t.to = to
	t.begin(t)
	t.engine.emit(TweenEvent{Type: EventTweenStarted, Property: t.Property, Value: from})
}

func (t *Tween) step() {
	if !t.playing {
		return
	}
	if targetDisposed(t.Target) {
		t.stop()
		return
	}
	curved, done := t.advance()
	if !done {
		t.Target.Set(t.Property, t.to*curved+t.from*(1-curved))
		return
	}
	t.Target.Set(t.Property, t.to)
	t.engine.emit(TweenEvent{Type: EventTweenCompleted, Property: t.Property, Value: t.to})
	t.finish(t.OnComplete, t.reverse)
}

func (t *Tween) reverse() {
	t.start(t.to, t.from)
}

func (t *Tween) stop() {
	if t.halt() {
		t.engine.emit(TweenEvent{Type: EventTweenRemoved, Property: t.Property, Value: t.Target.Get(t.Property)})
	}
}

// From returns the start value of the current run.
func (t *Tween) From() float64 { return t.from }

// To returns the end value of the current run.
func (t *Tween) To() float64 { return t.to }
