// Package ecs provides ECS adapters for roi's change notifications.
//
// The primary adapter is [NewDonburiSink], which publishes every
// [roi.ChangeEvent] (started, changing, finished) into a [Donburi] world as a
// typed event. Subscribe to [ChangeEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	reg := roi.NewRegistry(roi.WithEventSink(ecs.NewDonburiSink(world)))
//
// Events are queued by Donburi; call ChangeEventType.ProcessEvents (or
// events.ProcessAllEvents) once per tick to deliver them.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
