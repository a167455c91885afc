package charm

// Vec2 is a 2D point used for waypoints and Bezier control points.
type Vec2 struct {
	X, Y float64
}

// Bezier is a cubic Bezier segment: start point, two control points, end point.
type Bezier [4]Vec2

// Reversed returns the segment with its point order reversed.
func (b Bezier) Reversed() Bezier {
	return Bezier{b[3], b[2], b[1], b[0]}
}

// Property names understood by Node and used by the built-in tweens.
const (
	PropX        = "x"
	PropY        = "y"
	PropScaleX   = "scaleX"
	PropScaleY   = "scaleY"
	PropRotation = "rotation"
	PropAlpha    = "alpha"
)

// Default durations, in frames.
const (
	DefaultFrames     = 60
	DefaultPathFrames = 300
)

// EventType identifies a kind of tween lifecycle event.
type EventType uint8

const (
	EventTweenStarted   EventType = iota // a tween or curve tween was (re)registered
	EventTweenCompleted                  // a tween reached its final frame
	EventTweenRemoved                    // a tween was removed before or after completing
	EventWalkSegment                     // a walk began a new segment
	EventWalkLooped                      // a looping walk restarted from its first segment
	EventWalkCompleted                   // a non-looping walk finished its last segment
)

var eventTypeNames = [...]string{
	EventTweenStarted:   "tween-started",
	EventTweenCompleted: "tween-completed",
	EventTweenRemoved:   "tween-removed",
	EventWalkSegment:    "walk-segment",
	EventWalkLooped:     "walk-looped",
	EventWalkCompleted:  "walk-completed",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// TweenEvent carries lifecycle data to an EventSink.
type TweenEvent struct {
	Type     EventType
	Frame    uint64 // engine frame the event happened on
	Property string // empty for curve tweens and walks
	Segment  int    // walk events only
	Value    float64
}

// EventSink is the interface for optional event forwarding (for example into an ECS).
// When set on an Engine, lifecycle events are emitted synchronously.
type EventSink interface {
	EmitEvent(event TweenEvent)
}
