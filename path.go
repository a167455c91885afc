package charm

import (
	"slices"
	"time"
)

// WalkOptions configures a path or curve walk. The zero value walks once with
// Smoothstep segments and no delay.
type WalkOptions struct {
	Easing Easing
	// Loop restarts the walk from the first segment after the last one.
	Loop bool
	// Yoyo reverses the walk direction on every loop. Ignored without Loop.
	Yoyo bool
	// Delay is waited between segments and before each loop restart.
	Delay time.Duration
}

// Walk chains segment tweens across waypoints or Bezier curves. Exactly one
// segment is registered at a time; the next one is built when the previous
// completes and the delay has elapsed.
type Walk struct {
	// OnComplete runs after the last segment of every traversal.
	OnComplete func()

	engine    *Engine
	target    Target
	waypoints []Vec2
	curves    []Bezier
	frames    int
	opts      WalkOptions

	index   int
	laps    int
	current Handle
	next    *Task
	paused  bool
	stopped bool
	done    bool
}

// WalkPath moves target in straight segments through waypoints, spending
// totalFrames / (len(waypoints)-1) frames per segment. The waypoints are
// copied; later changes to the slice do not affect the walk.
func (e *Engine) WalkPath(target Target, waypoints []Vec2, totalFrames int, opts WalkOptions) *Walk {
	if target == nil {
		panic("charm: walk with nil target")
	}
	if len(waypoints) < 2 {
		panic("charm: walk path needs at least two waypoints")
	}
	w := &Walk{
		engine:    e,
		target:    target,
		waypoints: slices.Clone(waypoints),
		opts:      opts,
	}
	w.frames = segmentFrames(totalFrames, len(waypoints)-1)
	w.makeSegment()
	return w
}

// WalkCurve moves target along a chain of Bezier curves, spending
// totalFrames / len(curves) frames per curve. The curves are copied.
func (e *Engine) WalkCurve(target Target, curves []Bezier, totalFrames int, opts WalkOptions) *Walk {
	if target == nil {
		panic("charm: walk with nil target")
	}
	if len(curves) == 0 {
		panic("charm: walk curve needs at least one curve")
	}
	w := &Walk{
		engine: e,
		target: target,
		curves: slices.Clone(curves),
		opts:   opts,
	}
	w.frames = segmentFrames(totalFrames, len(curves))
	w.makeSegment()
	return w
}

func segmentFrames(total, segments int) int {
	return max(total/segments, 1)
}

func (w *Walk) segments() int {
	if w.curves != nil {
		return len(w.curves)
	}
	return len(w.waypoints) - 1
}

func (w *Walk) origin() Vec2 {
	if w.curves != nil {
		return w.curves[0][0]
	}
	return w.waypoints[0]
}

func (w *Walk) makeSegment() {
	i := w.index
	opts := TweenOptions{Easing: w.opts.Easing}
	if w.curves != nil {
		seg := w.engine.FollowCurve(w.target, w.curves[i], w.frames, opts)
		seg.OnComplete = w.segmentDone
		w.current = seg
	} else {
		a, b := w.waypoints[i], w.waypoints[i+1]
		seg := w.engine.MakeTween(
			TweenSpec{Target: w.target, Property: PropX, From: a.X, To: b.X, Frames: w.frames, Options: opts},
			TweenSpec{Target: w.target, Property: PropY, From: a.Y, To: b.Y, Frames: w.frames, Options: opts},
		)
		seg.OnComplete = w.segmentDone
		w.current = seg
	}
	if w.paused {
		w.current.Pause()
	}
	w.engine.emit(TweenEvent{Type: EventWalkSegment, Segment: i})
}

func (w *Walk) segmentDone() {
	w.index++
	if w.index < w.segments() {
		w.schedule(w.makeSegment)
		return
	}

	w.laps++
	gen := w.engine.clears
	if w.OnComplete != nil {
		w.OnComplete()
	}
	if w.engine.clears != gen {
		w.stopped = true
	}
	if w.stopped {
		return
	}
	if !w.opts.Loop {
		w.done = true
		w.engine.emit(TweenEvent{Type: EventWalkCompleted, Segment: w.index - 1})
		return
	}

	if w.opts.Yoyo {
		w.reverse()
	}
	w.schedule(func() {
		w.index = 0
		o := w.origin()
		w.target.Set(PropX, o.X)
		w.target.Set(PropY, o.Y)
		w.engine.emit(TweenEvent{Type: EventWalkLooped})
		w.makeSegment()
	})
}

func (w *Walk) schedule(fn func()) {
	w.next = w.engine.sched.after(w.opts.Delay, func() {
		w.next = nil
		if !w.stopped {
			fn()
		}
	})
}

// reverse flips the traversal order, and for curves the point order within
// each curve.
func (w *Walk) reverse() {
	if w.curves == nil {
		slices.Reverse(w.waypoints)
		return
	}
	slices.Reverse(w.curves)
	for i, c := range w.curves {
		w.curves[i] = c.Reversed()
	}
}

// Play resumes the active segment and lets later segments play.
func (w *Walk) Play() {
	w.paused = false
	if w.current != nil {
		w.current.Play()
	}
}

// Pause pauses the active segment. Segments started while paused begin paused.
func (w *Walk) Pause() {
	w.paused = true
	if w.current != nil {
		w.current.Pause()
	}
}

// Playing reports whether the walk is live and not paused. It stays true
// while the next segment waits out its delay.
func (w *Walk) Playing() bool {
	return !w.paused && w.registered()
}

func (w *Walk) stop() {
	w.stopped = true
	w.next.Cancel()
	w.next = nil
	if w.current != nil {
		w.current.stop()
	}
}

func (w *Walk) registered() bool {
	if w.stopped {
		return false
	}
	return w.next.Pending() || (w.current != nil && w.current.registered())
}

// Current returns the active (or most recent) segment tween: a *Composite for
// WalkPath, a *CurveTween for WalkCurve.
func (w *Walk) Current() Handle { return w.current }

// Index returns the index of the segment being walked.
func (w *Walk) Index() int { return w.index }

// Laps returns the number of completed traversals.
func (w *Walk) Laps() int { return w.laps }

// Done reports whether a non-looping walk has finished.
func (w *Walk) Done() bool { return w.done }

// Waypoints returns a copy of the waypoints in their current walking order.
func (w *Walk) Waypoints() []Vec2 { return slices.Clone(w.waypoints) }

// Curves returns a copy of the curves in their current walking order.
func (w *Walk) Curves() []Bezier { return slices.Clone(w.curves) }
