package ecs

import (
	"github.com/phanxgames/roi"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ChangeEventType carries every started, changing and finished event of the
// registry the sink is attached to.
var ChangeEventType = events.NewEventType[roi.ChangeEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink returns a sink that queues ROI change events on world.
// Systems see them after ChangeEventType.ProcessEvents runs, typically once
// per tick, so several Changing events of one drag may arrive together.
func NewDonburiSink(world donburi.World) roi.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event roi.ChangeEvent) {
	ChangeEventType.Publish(s.world, event)
}

// SubscribeFinished registers fn for Finished events only. Its State is the
// geometry the ROI settled on, restored geometry included when the gesture
// was cancelled, which makes it the event a system mirroring ROIs into
// components should react to.
func SubscribeFinished(world donburi.World, fn func(donburi.World, roi.ChangeEvent)) {
	ChangeEventType.Subscribe(world, func(w donburi.World, e roi.ChangeEvent) {
		if e.Type == roi.EventFinished {
			fn(w, e)
		}
	})
}
