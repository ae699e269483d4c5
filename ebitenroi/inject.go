package ebitenroi

import "github.com/phanxgames/roi"

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates, converted to scene coordinates via the view exactly like real
// mouse input.
type syntheticPointerEvent struct {
	pos     roi.Vec2
	pressed bool
	cancel  bool
	mods    roi.KeyModifiers
}

// InjectModifiers sets the key modifiers attached to subsequently injected
// events.
func (in *Input) InjectModifiers(mods roi.KeyModifiers) {
	in.injectMods = mods
}

// InjectPress queues a left-button press at the given screen position. The
// event is consumed by the next Update.
func (in *Input) InjectPress(x, y float64) {
	in.inject(x, y, true, false)
}

// InjectMove queues a pointer move with the button held down. Use it between
// InjectPress and InjectRelease to simulate a drag.
func (in *Input) InjectMove(x, y float64) {
	in.inject(x, y, true, false)
}

// InjectRelease queues a button release at the given screen position.
func (in *Input) InjectRelease(x, y float64) {
	in.inject(x, y, false, false)
}

// InjectCancel queues a cancel (right click) at the given screen position
// while the left button stays down.
func (in *Input) InjectCancel(x, y float64) {
	in.inject(x, y, true, true)
}

// InjectDrag queues a full drag sequence: press at from, linearly
// interpolated moves over frames-2 intermediate frames, and release at to.
// The sequence consumes frames frames; the minimum is 2 (press + release),
// and a drag needs at least 3 since release carries no movement.
func (in *Input) InjectDrag(from, to roi.Vec2, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.InjectPress(from.X, from.Y)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := from.Add(to.Sub(from).Scale(t))
		in.InjectMove(p.X, p.Y)
	}
	in.InjectRelease(to.X, to.Y)
}

// Pending returns the number of queued synthetic events.
func (in *Input) Pending() int { return len(in.injectQueue) }

func (in *Input) inject(x, y float64, pressed, cancel bool) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{
		pos:     roi.Vec2{X: x, Y: y},
		pressed: pressed,
		cancel:  cancel,
		mods:    in.injectMods,
	})
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. It reports whether an event was consumed (real
// input is skipped for the frame).
func (in *Input) processInjectedInput() bool {
	if len(in.injectQueue) == 0 {
		return false
	}
	evt := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	in.processPointer(evt.pos, evt.pressed, evt.cancel, evt.mods)
	return true
}
