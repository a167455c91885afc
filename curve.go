package charm

// CurveTween moves a target's x and y along a cubic Bezier segment.
type CurveTween struct {
	clip

	Target Target

	// OnComplete runs each time a run reaches the end point.
	OnComplete func()

	points Bezier
}

// FollowCurve starts a tween that moves target along points over frames
// updates. The easing shapes progress along the curve; both axes share it.
// On a yoyo restart the point order is reversed.
func (e *Engine) FollowCurve(target Target, points Bezier, frames int, opts TweenOptions) *CurveTween {
	if target == nil {
		panic("charm: curve tween with nil target")
	}
	t := &CurveTween{
		clip:   newClip(e, frames, opts),
		Target: target,
	}
	t.start(points)
	return t
}

func (t *CurveTween) start(points Bezier) {
	t.points = points
	t.begin(t)
	t.engine.emit(TweenEvent{Type: EventTweenStarted})
}

func (t *CurveTween) step() {
	if !t.playing {
		return
	}
	if targetDisposed(t.Target) {
		t.stop()
		return
	}
	curved, done := t.advance()
	p := &t.points
	if !done {
		t.Target.Set(PropX, CubicBezier(curved, p[0].X, p[1].X, p[2].X, p[3].X))
		t.Target.Set(PropY, CubicBezier(curved, p[0].Y, p[1].Y, p[2].Y, p[3].Y))
		return
	}
	t.Target.Set(PropX, p[3].X)
	t.Target.Set(PropY, p[3].Y)
	t.engine.emit(TweenEvent{Type: EventTweenCompleted})
	t.finish(t.OnComplete, t.reverse)
}

func (t *CurveTween) reverse() {
	t.start(t.points.Reversed())
}

func (t *CurveTween) stop() {
	if t.halt() {
		t.engine.emit(TweenEvent{Type: EventTweenRemoved})
	}
}

// Points returns the control points of the current run.
func (t *CurveTween) Points() Bezier { return t.points }
