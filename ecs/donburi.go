package ecs

import (
	"github.com/phanxgames/charm"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TweenEventType is the Donburi event type for charm tween lifecycle events.
var TweenEventType = events.NewEventType[charm.TweenEvent]()

var _ charm.EventSink = (*donburiSink)(nil)

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Tween events are published to TweenEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) charm.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event charm.TweenEvent) {
	TweenEventType.Publish(s.world, event)
}
