// Package charm is a frame-driven tweening engine for 2D games.
//
// Charm animates numeric properties (position, scale, alpha, rotation, or
// anything a [Target] exposes by name) from a start value to an end value over
// a fixed number of frames, shaped by an [Easing] curve. Tweens can yoyo back
// and forth, be grouped into composites, follow cubic Bezier curves, and walk
// chains of waypoints or curves.
//
// # Quick start
//
// Create an [Engine] and call [Engine.Update] once per frame from your game
// loop:
//
//	engine := charm.MustNew(charm.DefaultConfig())
//	hero := charm.NewNode("hero")
//	engine.Slide(hero, 200, 120, charm.DefaultFrames, charm.TweenOptions{})
//
//	// in your Update:
//	engine.Update()
//
// For Ebitengine, [github.com/phanxgames/charm/ebitenhost] wraps an Engine in
// an ebiten.Game.
//
// # Frames, not seconds
//
// A tween of N frames reaches its end value exactly on the Nth update. Only
// delays (yoyo repeat delay, walk segment delay, [Engine.Wait]) are measured
// in time, against the configured [Clock]; they run at the start of the first
// update at or after their due time.
//
// # Targets
//
// Any type implementing [Target] can be animated. [Node] covers the common
// flat-field case, [Props] is a map-backed target, and [Fields] forwards names
// to float64 fields owned elsewhere, which is how hosts with nested scale or
// position pairs expose them.
//
// # Easing
//
// Built-in curves are selected with [Named]; [Bounce] selects an overshooting
// spline; [Func] accepts any [gween] easing function such as ease.OutElastic.
//
// # Removal
//
// [Engine.Remove] stops a tween, composite, curve tween or whole walk and
// cancels its pending continuations. Removing twice is harmless.
//
// [gween]: https://github.com/tanema/gween
package charm
