package charm

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tanema/gween/ease"
)

// Curve names one of the built-in easing formulas.
type Curve uint8

const (
	Smoothstep Curve = iota // x²(3−2x); the zero Curve
	SmoothstepSquared
	SmoothstepCubed
	Linear
	Acceleration
	AccelerationCubed
	Deceleration
	DecelerationCubed
	Sine
	SineSquared
	SineCubed // squares the sine term, identical to SineSquared
	InverseSine
	InverseSineSquared
	InverseSineCubed
	curveCount
)

var curveNames = [curveCount]string{
	Smoothstep:         "smoothstep",
	SmoothstepSquared:  "smoothstepSquared",
	SmoothstepCubed:    "smoothstepCubed",
	Linear:             "linear",
	Acceleration:       "acceleration",
	AccelerationCubed:  "accelerationCubed",
	Deceleration:       "deceleration",
	DecelerationCubed:  "decelerationCubed",
	Sine:               "sine",
	SineSquared:        "sineSquared",
	SineCubed:          "sineCubed",
	InverseSine:        "inverseSine",
	InverseSineSquared: "inverseSineSquared",
	InverseSineCubed:   "inverseSineCubed",
}

// Curves returns every built-in curve in declaration order.
func Curves() []Curve {
	out := make([]Curve, curveCount)
	for i := range out {
		out[i] = Curve(i)
	}
	return out
}

func (c Curve) String() string {
	if c < curveCount {
		return curveNames[c]
	}
	return "Curve(" + strconv.Itoa(int(c)) + ")"
}

// Apply maps normalized time x to curved time.
func (c Curve) Apply(x float64) float64 {
	switch c {
	case Smoothstep:
		return smoothstep(x)
	case SmoothstepSquared:
		return math.Pow(smoothstep(x), 2)
	case SmoothstepCubed:
		return math.Pow(smoothstep(x), 3)
	case Linear:
		return x
	case Acceleration:
		return x * x
	case AccelerationCubed:
		return math.Pow(x*x, 3)
	case Deceleration:
		return 1 - math.Pow(1-x, 2)
	case DecelerationCubed:
		return 1 - math.Pow(1-x, 3)
	case Sine:
		return math.Sin(x * math.Pi / 2)
	case SineSquared, SineCubed:
		return math.Pow(math.Sin(x*math.Pi/2), 2)
	case InverseSine:
		return 1 - math.Sin((1-x)*math.Pi/2)
	case InverseSineSquared:
		return 1 - math.Pow(math.Sin((1-x)*math.Pi/2), 2)
	case InverseSineCubed:
		return 1 - math.Pow(math.Sin((1-x)*math.Pi/2), 3)
	default:
		panic("charm: unknown easing curve " + c.String())
	}
}

func smoothstep(x float64) float64 {
	return x * x * (3 - 2*x)
}

// Spline is a Catmull-Rom style cubic spline through p1 and p2 with p0 and p3
// as outer tangent points.
func Spline(t, p0, p1, p2, p3 float64) float64 {
	return 0.5 * ((2 * p1) +
		(-p0+p2)*t +
		(2*p0-5*p1+4*p2-p3)*t*t +
		(-p0+3*p1-3*p2+p3)*t*t*t)
}

// CubicBezier evaluates a one-dimensional cubic Bezier with control scalars a..d.
func CubicBezier(t, a, b, c, d float64) float64 {
	u := 1 - t
	return u*u*u*a + 3*u*u*t*b + 3*u*t*t*c + t*t*t*d
}

type easingKind uint8

const (
	easingCurve easingKind = iota
	easingBounce
	easingFunc
)

// Easing selects how normalized time is curved. It is either a named Curve,
// a Bounce spline, or a gween easing function. The zero Easing is Smoothstep.
type Easing struct {
	kind       easingKind
	curve      Curve
	start, end float64
	fn         ease.TweenFunc
}

// Named returns an Easing for a built-in curve. It panics if c is not one of
// the declared curves.
func Named(c Curve) Easing {
	if c >= curveCount {
		panic("charm: unknown easing curve " + c.String())
	}
	return Easing{kind: easingCurve, curve: c}
}

// Bounce returns a spline Easing that overshoots according to the start and
// end magnitudes: Spline(t, start, 0, 1, end).
func Bounce(startMagnitude, endMagnitude float64) Easing {
	return Easing{kind: easingBounce, start: startMagnitude, end: endMagnitude}
}

// Func wraps a gween easing function. It is evaluated as fn(t, 0, 1, 1).
func Func(fn ease.TweenFunc) Easing {
	if fn == nil {
		return Easing{}
	}
	return Easing{kind: easingFunc, fn: fn}
}

// Apply maps normalized time x to curved time.
func (e Easing) Apply(x float64) float64 {
	switch e.kind {
	case easingBounce:
		return Spline(x, e.start, 0, 1, e.end)
	case easingFunc:
		return float64(e.fn(float32(x), 0, 1, 1))
	default:
		return e.curve.Apply(x)
	}
}

// Curve returns the named curve and true, or false for bounce and func easings.
func (e Easing) Curve() (Curve, bool) {
	return e.curve, e.kind == easingCurve
}

// Magnitudes returns the spline magnitudes of a Bounce easing.
func (e Easing) Magnitudes() (start, end float64, ok bool) {
	return e.start, e.end, e.kind == easingBounce
}

func (e Easing) String() string {
	switch e.kind {
	case easingBounce:
		return "bounce " + strconv.FormatFloat(e.start, 'g', -1, 64) + " " + strconv.FormatFloat(e.end, 'g', -1, 64)
	case easingFunc:
		return "func"
	default:
		return e.curve.String()
	}
}

// ErrUnknownEasing is returned when an easing name matches no built-in curve.
var ErrUnknownEasing = errors.New("unknown easing")

// ParseCurve looks up a built-in curve by name.
func ParseCurve(name string) (Curve, error) {
	for i, n := range curveNames {
		if n == name {
			return Curve(i), nil
		}
	}
	return 0, fmt.Errorf("charm: parse curve %q: %w", name, ErrUnknownEasing)
}

// ParseEasing accepts a curve name or the "bounce <start> <end>" form with
// integer magnitudes.
func ParseEasing(name string) (Easing, error) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return Easing{}, fmt.Errorf("charm: parse easing %q: %w", name, ErrUnknownEasing)
	}
	if fields[0] != "bounce" {
		c, err := ParseCurve(name)
		if err != nil {
			return Easing{}, err
		}
		return Named(c), nil
	}
	if len(fields) != 3 {
		return Easing{}, fmt.Errorf("charm: parse easing %q: bounce needs two magnitudes", name)
	}
	start, err := strconv.Atoi(fields[1])
	if err != nil {
		return Easing{}, fmt.Errorf("charm: parse easing %q: start magnitude: %w", name, err)
	}
	end, err := strconv.Atoi(fields[2])
	if err != nil {
		return Easing{}, fmt.Errorf("charm: parse easing %q: end magnitude: %w", name, err)
	}
	return Bounce(float64(start), float64(end)), nil
}
