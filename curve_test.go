package charm

import (
	"math"
	"testing"
)

var arch = Bezier{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}

func TestFollowCurveEndsOnLastPoint(t *testing.T) {
	e, _ := newTestEngine(t)
	n := NewNode("curve")

	ct := e.FollowCurve(n, arch, 5, TweenOptions{})
	e.Update()
	if n.X <= 0 || n.Y <= 0 {
		t.Errorf("after one frame (%v, %v) should have left the origin", n.X, n.Y)
	}

	updateN(e, 4)
	if n.X != 10 || n.Y != 0 {
		t.Errorf("end = (%v, %v), want exactly (10, 0)", n.X, n.Y)
	}
	if e.Contains(ct) {
		t.Error("curve tween should be deregistered")
	}
}

func TestFollowCurveMidpoint(t *testing.T) {
	e, _ := newTestEngine(t)
	n := NewNode("curve")

	e.FollowCurve(n, arch, 10, TweenOptions{Easing: Named(Linear)})
	updateN(e, 5)

	wantX := CubicBezier(0.5, 0, 0, 10, 10)
	wantY := CubicBezier(0.5, 0, 10, 10, 0)
	if math.Abs(n.X-wantX) > 1e-9 || math.Abs(n.Y-wantY) > 1e-9 {
		t.Errorf("midpoint = (%v, %v), want (%v, %v)", n.X, n.Y, wantX, wantY)
	}
}

func TestFollowCurveYoyoReversesPoints(t *testing.T) {
	e, _ := newTestEngine(t)
	n := NewNode("curve")
	completed := 0

	ct := e.FollowCurve(n, arch, 4, TweenOptions{Yoyo: true})
	ct.OnComplete = func() { completed++ }

	updateN(e, 4)
	if ct.Points() != arch {
		t.Fatalf("first run points = %v", ct.Points())
	}

	updateN(e, 4)
	if completed != 2 {
		t.Fatalf("completed = %d, want 2", completed)
	}
	if ct.Points() != arch.Reversed() {
		t.Errorf("second run points = %v, want %v", ct.Points(), arch.Reversed())
	}
	if n.X != 0 || n.Y != 0 {
		t.Errorf("after return leg (%v, %v), want (0, 0)", n.X, n.Y)
	}
}

func TestBezierReversed(t *testing.T) {
	r := arch.Reversed()
	for i := range r {
		if r[i] != arch[3-i] {
			t.Errorf("Reversed()[%d] = %v, want %v", i, r[i], arch[3-i])
		}
	}
	if r.Reversed() != arch {
		t.Error("reversing twice should give the original")
	}
}
