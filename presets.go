package charm

import "time"

// FadeOut tweens alpha from its current value to 0 with a Sine curve.
func (e *Engine) FadeOut(target Target, frames int) *Tween {
	return e.TweenProperty(target, PropAlpha, target.Get(PropAlpha), 0, frames,
		TweenOptions{Easing: Named(Sine)})
}

// FadeIn tweens alpha from its current value to 1 with a Sine curve.
func (e *Engine) FadeIn(target Target, frames int) *Tween {
	return e.TweenProperty(target, PropAlpha, target.Get(PropAlpha), 1, frames,
		TweenOptions{Easing: Named(Sine)})
}

// Pulse fades alpha down to minAlpha and back, forever.
func (e *Engine) Pulse(target Target, frames int, minAlpha float64) *Tween {
	return e.TweenProperty(target, PropAlpha, target.Get(PropAlpha), minAlpha, frames,
		TweenOptions{Easing: Named(Smoothstep), Yoyo: true})
}

// Slide moves target to (endX, endY).
func (e *Engine) Slide(target Target, endX, endY float64, frames int, opts TweenOptions) *Composite {
	return e.MakeTween(
		TweenSpec{Target: target, Property: PropX, From: target.Get(PropX), To: endX, Frames: frames, Options: opts},
		TweenSpec{Target: target, Property: PropY, From: target.Get(PropY), To: endY, Frames: frames, Options: opts},
	)
}

// scaleTween builds the scaleX/scaleY pair shared by the scale presets.
func (e *Engine) scaleTween(target Target, endX, endY float64, frames int, ox, oy TweenOptions) *Composite {
	return e.MakeTween(
		TweenSpec{Target: target, Property: PropScaleX, From: target.Get(PropScaleX), To: endX, Frames: frames, Options: ox},
		TweenSpec{Target: target, Property: PropScaleY, From: target.Get(PropScaleY), To: endY, Frames: frames, Options: oy},
	)
}

// Breathe scales target towards (endScaleX, endScaleY) with a SmoothstepSquared
// curve. With yoyo it keeps breathing in and out. The usual call is
// Breathe(t, 0.8, 0.8, DefaultFrames, true, 0).
func (e *Engine) Breathe(target Target, endScaleX, endScaleY float64, frames int, yoyo bool, delay time.Duration) *Composite {
	opts := TweenOptions{Easing: Named(SmoothstepSquared), Yoyo: yoyo, Delay: delay}
	return e.scaleTween(target, endScaleX, endScaleY, frames, opts, opts)
}

// Scale tweens target's scale to (endScaleX, endScaleY) once.
func (e *Engine) Scale(target Target, endScaleX, endScaleY float64, frames int) *Composite {
	opts := TweenOptions{Easing: Named(Smoothstep)}
	return e.scaleTween(target, endScaleX, endScaleY, frames, opts, opts)
}

// Strobe bounces both scale axes towards scaleFactor using a Bounce spline
// with the given magnitudes. The usual call is
// Strobe(t, 1.3, 10, 20, 10, true, 0).
func (e *Engine) Strobe(target Target, scaleFactor, startMagnitude, endMagnitude float64, frames int, yoyo bool, delay time.Duration) *Composite {
	opts := TweenOptions{Easing: Bounce(startMagnitude, endMagnitude), Yoyo: yoyo, Delay: delay}
	return e.scaleTween(target, scaleFactor, scaleFactor, frames, opts, opts)
}

// WobbleConfig configures Wobble.
type WobbleConfig struct {
	ScaleFactorX, ScaleFactorY     float64
	Frames                         int
	XStartMagnitude, XEndMagnitude float64
	YStartMagnitude, YEndMagnitude float64
	Friction                       float64
	Yoyo                           bool
	Delay                          time.Duration
}

// DefaultWobbleConfig returns a jelly-like wobble that settles in a few seconds.
func DefaultWobbleConfig() WobbleConfig {
	return WobbleConfig{
		ScaleFactorX:    1.2,
		ScaleFactorY:    1.2,
		Frames:          10,
		XStartMagnitude: 10,
		XEndMagnitude:   10,
		YStartMagnitude: -10,
		YEndMagnitude:   -10,
		Friction:        0.98,
		Yoyo:            true,
	}
}

// Wobble bounces the scale axes independently. Each time a member completes
// with an end value above 1, the end value is multiplied by Friction; once it
// reaches 1 the member is pinned to 1 and removed.
func (e *Engine) Wobble(target Target, cfg WobbleConfig) *Composite {
	ox := TweenOptions{Easing: Bounce(cfg.XStartMagnitude, cfg.XEndMagnitude), Yoyo: cfg.Yoyo, Delay: cfg.Delay}
	oy := TweenOptions{Easing: Bounce(cfg.YStartMagnitude, cfg.YEndMagnitude), Yoyo: cfg.Yoyo, Delay: cfg.Delay}
	c := e.scaleTween(target, cfg.ScaleFactorX, cfg.ScaleFactorY, cfg.Frames, ox, oy)
	for _, t := range c.Tweens {
		t.OnComplete = func() {
			if t.to > 1 {
				t.to *= cfg.Friction
				if t.to <= 1 {
					t.to = 1
					t.Target.Set(t.Property, 1)
					e.Remove(t)
				}
			}
			c.memberDone()
		}
	}
	return c
}
