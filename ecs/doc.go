// Package ecs provides ECS adapters for charm's tween lifecycle events.
//
// The primary adapter is [NewDonburiSink], which bridges charm tween events
// (started, completed, removed, walk segment, walk looped, walk completed)
// into a [Donburi] world as typed events. Subscribe to [TweenEventType] in
// your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	engine.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
