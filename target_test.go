package charm

import "testing"

func TestPropsTarget(t *testing.T) {
	p := Props{}
	if p.Get("missing") != 0 {
		t.Error("missing prop should read 0")
	}
	p.Set("alpha", 0.25)
	if p["alpha"] != 0.25 {
		t.Errorf("alpha = %v, want 0.25", p["alpha"])
	}
	if targetDisposed(p) {
		t.Error("Props is never disposed")
	}
}

func TestFieldsTarget(t *testing.T) {
	var sprite struct {
		Pos   struct{ X, Y float64 }
		Scale struct{ X, Y float64 }
	}
	f := Fields{
		PropX:      &sprite.Pos.X,
		PropY:      &sprite.Pos.Y,
		PropScaleX: &sprite.Scale.X,
		PropScaleY: &sprite.Scale.Y,
	}

	f.Set(PropX, 4)
	f.Set(PropScaleY, 2)
	if sprite.Pos.X != 4 || sprite.Scale.Y != 2 {
		t.Errorf("writes not forwarded: %+v", sprite)
	}
	if f.Get(PropScaleY) != 2 {
		t.Errorf("Get(scaleY) = %v, want 2", f.Get(PropScaleY))
	}

	f.Set(PropRotation, 1)
	if f.Get(PropRotation) != 0 {
		t.Error("unmapped property should read 0")
	}
}

func TestFieldsTargetTweens(t *testing.T) {
	e, _ := newTestEngine(t)
	var pos struct{ X, Y float64 }

	e.Slide(Fields{PropX: &pos.X, PropY: &pos.Y}, 12, -6, 3, TweenOptions{})
	updateN(e, 3)
	if pos.X != 12 || pos.Y != -6 {
		t.Errorf("pos = %+v, want {12 -6}", pos)
	}
}
