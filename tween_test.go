package charm

import (
	"math"
	"testing"
	"time"
)

func newTestEngine(t *testing.T) (*Engine, *ManualClock) {
	t.Helper()
	clock := NewManualClock(time.Unix(0, 0))
	e, err := New(Config{Clock: clock})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e, clock
}

func updateN(e *Engine, n int) {
	for i := 0; i < n; i++ {
		e.Update()
	}
}

func TestTweenLinearAlphaScenario(t *testing.T) {
	e, _ := newTestEngine(t)
	obj := Props{"alpha": 1}

	tw := e.TweenProperty(obj, "alpha", 1, 0, 10, TweenOptions{Easing: Named(Linear)})

	updateN(e, 5)
	if obj["alpha"] != 0.5 {
		t.Errorf("alpha after 5 updates = %v, want 0.5", obj["alpha"])
	}
	if !e.Contains(tw) {
		t.Fatal("tween should still be registered halfway")
	}

	updateN(e, 5)
	if obj["alpha"] != 0 {
		t.Errorf("alpha after 10 updates = %v, want 0", obj["alpha"])
	}
	if e.Contains(tw) || e.Len() != 0 {
		t.Error("tween should have left the registry")
	}
	if tw.Playing() {
		t.Error("completed tween should not be playing")
	}
}

func TestTweenReachesExactEndValue(t *testing.T) {
	for _, c := range Curves() {
		for _, n := range []int{1, 3, 7, 60} {
			e, _ := newTestEngine(t)
			obj := Props{}
			e.TweenProperty(obj, "v", 0.1, 0.7, n, TweenOptions{Easing: Named(c)})
			updateN(e, n)
			if obj["v"] != 0.7 {
				t.Errorf("%s over %d frames ended at %v, want exactly 0.7", c, n, obj["v"])
			}
		}
	}
}

func TestTweenZeroFramesJumpsOnFirstUpdate(t *testing.T) {
	e, _ := newTestEngine(t)
	obj := Props{"x": 5}
	completed := 0

	tw := e.TweenProperty(obj, "x", 5, 9, 0, TweenOptions{})
	tw.OnComplete = func() { completed++ }

	if obj["x"] != 5 {
		t.Fatal("construction should not write")
	}
	e.Update()
	if obj["x"] != 9 || completed != 1 {
		t.Errorf("x = %v, completed = %d; want 9 and 1", obj["x"], completed)
	}
	if e.Len() != 0 {
		t.Error("tween should be deregistered")
	}
}

func TestTweenOnCompleteOncePerRun(t *testing.T) {
	e, _ := newTestEngine(t)
	obj := Props{}
	completed := 0

	tw := e.TweenProperty(obj, "v", 0, 1, 4, TweenOptions{})
	tw.OnComplete = func() { completed++ }

	updateN(e, 20)
	if completed != 1 {
		t.Errorf("OnComplete ran %d times, want 1", completed)
	}
}

func TestTweenYoyoRoundTrip(t *testing.T) {
	e, _ := newTestEngine(t)
	obj := Props{}
	completed := 0

	tw := e.TweenProperty(obj, "v", 2, 8, 6, TweenOptions{Easing: Named(Sine), Yoyo: true})
	tw.OnComplete = func() { completed++ }

	updateN(e, 6)
	if completed != 1 || obj["v"] != 8 {
		t.Fatalf("after first run: completed = %d, v = %v", completed, obj["v"])
	}
	if !e.Contains(tw) {
		t.Error("yoyo tween waiting to restart should count as contained")
	}

	// The restart runs at the start of the next update, which also plays frame 1.
	updateN(e, 6)
	if completed != 2 {
		t.Fatalf("completed = %d, want 2", completed)
	}
	if obj["v"] != 2 {
		t.Errorf("v after round trip = %v, want exactly 2", obj["v"])
	}
	if tw.From() != 8 || tw.To() != 2 {
		t.Errorf("second run endpoints = (%v, %v), want (8, 2)", tw.From(), tw.To())
	}

	updateN(e, 6)
	if completed != 3 || obj["v"] != 8 {
		t.Errorf("third run: completed = %d, v = %v", completed, obj["v"])
	}
}

func TestTweenYoyoDelay(t *testing.T) {
	e, clock := newTestEngine(t)
	obj := Props{}

	tw := e.TweenProperty(obj, "v", 0, 1, 2, TweenOptions{Easing: Named(Linear), Yoyo: true, Delay: 100 * time.Millisecond})

	updateN(e, 2)
	if obj["v"] != 1 {
		t.Fatalf("v = %v, want 1", obj["v"])
	}

	// The clock has not moved: the restart must not happen.
	updateN(e, 5)
	if tw.Playing() || e.Len() != 0 || obj["v"] != 1 {
		t.Fatalf("tween restarted before its delay (playing=%v len=%d v=%v)", tw.Playing(), e.Len(), obj["v"])
	}
	if e.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", e.Pending())
	}

	clock.Advance(100 * time.Millisecond)
	e.Update()
	if !tw.Playing() || obj["v"] != 0.5 {
		t.Errorf("after delay: playing = %v, v = %v; want true and 0.5", tw.Playing(), obj["v"])
	}
}

func TestTweenPauseAndPlay(t *testing.T) {
	e, _ := newTestEngine(t)
	obj := Props{}

	tw := e.TweenProperty(obj, "v", 0, 10, 10, TweenOptions{Easing: Named(Linear)})

	updateN(e, 3)
	tw.Pause()
	updateN(e, 5)
	if math.Abs(obj["v"]-3) > 1e-9 || tw.Frame() != 3 {
		t.Fatalf("paused tween moved: v = %v, frame = %d", obj["v"], tw.Frame())
	}
	if !e.Contains(tw) {
		t.Error("paused tween should stay registered")
	}

	tw.Play()
	updateN(e, 7)
	if obj["v"] != 10 {
		t.Errorf("v = %v, want 10", obj["v"])
	}
}

func TestTweenDisposedTarget(t *testing.T) {
	e, _ := newTestEngine(t)
	node := NewNode("disposed")
	node.Alpha = 1

	tw := e.FadeOut(node, 10)
	e.Update()
	node.Dispose()
	saved := node.Alpha

	e.Update()
	if node.Alpha != saved {
		t.Error("disposed node should not be written")
	}
	if e.Contains(tw) {
		t.Error("tween on disposed node should remove itself")
	}
}

func TestTweenRemoveCancelsYoyo(t *testing.T) {
	e, _ := newTestEngine(t)
	obj := Props{}

	tw := e.TweenProperty(obj, "v", 0, 1, 2, TweenOptions{Yoyo: true})
	updateN(e, 2)
	if e.Pending() != 1 {
		t.Fatalf("Pending = %d, want 1", e.Pending())
	}

	e.Remove(tw)
	updateN(e, 5)
	if e.Len() != 0 || tw.Playing() || obj["v"] != 1 {
		t.Errorf("removed tween restarted: len = %d, playing = %v, v = %v", e.Len(), tw.Playing(), obj["v"])
	}
}

func TestTweenEasingProducesDifferentCurves(t *testing.T) {
	e, _ := newTestEngine(t)
	lin := NewNode("linear")
	acc := NewNode("accel")

	e.TweenProperty(lin, PropX, 0, 100, 10, TweenOptions{Easing: Named(Linear)})
	e.TweenProperty(acc, PropX, 0, 100, 10, TweenOptions{Easing: Named(Acceleration)})

	updateN(e, 5)
	if math.Abs(lin.X-acc.X) < 1.0 {
		t.Errorf("easing curves should differ at midpoint: linear=%f accel=%f", lin.X, acc.X)
	}
	if acc.X >= lin.X {
		t.Errorf("acceleration should lag linear at midpoint: linear=%f accel=%f", lin.X, acc.X)
	}
}

func TestTweenUpdateZeroAlloc(t *testing.T) {
	e, _ := newTestEngine(t)
	node := NewNode("alloc")
	e.TweenProperty(node, PropX, 0, 100, 1<<30, TweenOptions{Easing: Named(Linear)})

	// Warm up: the first call may differ.
	e.Update()

	result := testing.AllocsPerRun(100, func() {
		e.Update()
	})
	if result > 0 {
		t.Errorf("Engine.Update allocated %f times per run, want 0", result)
	}
}

func TestTweenPlayIgnoredWhenNotRegistered(t *testing.T) {
	e, _ := newTestEngine(t)
	obj := Props{}

	done := e.TweenProperty(obj, "a", 0, 1, 2, TweenOptions{})
	updateN(e, 2)
	done.Play()
	if done.Playing() {
		t.Error("Play on a completed tween should be ignored")
	}

	removed := e.TweenProperty(obj, "b", 0, 1, 10, TweenOptions{})
	e.Remove(removed)
	removed.Play()
	if removed.Playing() {
		t.Error("Play on a removed tween should be ignored")
	}
	e.Update()
	if obj["b"] != 0 {
		t.Errorf("removed tween wrote %v", obj["b"])
	}
}
