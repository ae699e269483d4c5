package roi

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// StateTween animates an ROI from its current state to a target state. The
// animation runs as one gesture: Started when created, Changing on every
// Update that moves the shape, Finished when the target is reached. Create
// one with TweenState and call Update(dt) each frame.
//
// There is no global animation manager; callers drive Update themselves.
type StateTween struct {
	target *ROI
	to     ShapeState
	tweens [5]*gween.Tween
	Done   bool
}

// TweenState starts animating r to the state to over duration seconds using
// the easing function fn. If r is already in a gesture the tween joins it.
func TweenState(r *ROI, to ShapeState, duration float32, fn ease.TweenFunc) *StateTween {
	from := r.state
	t := &StateTween{target: r, to: to}
	pairs := [5][2]float64{
		{from.Pos.X, to.Pos.X},
		{from.Pos.Y, to.Pos.Y},
		{from.Size.X, to.Size.X},
		{from.Size.Y, to.Size.Y},
		{from.Angle, to.Angle},
	}
	for i, p := range pairs {
		t.tweens[i] = gween.New(float32(p[0]), float32(p[1]), duration, fn)
	}
	r.StartGesture()
	return t
}

// Update advances the animation by dt seconds. On completion the exact
// target state is applied and the gesture finishes. If the ROI was removed,
// Done is set and nothing is written.
func (t *StateTween) Update(dt float32) {
	if t.Done {
		return
	}
	r := t.target
	if r.removed {
		t.Done = true
		return
	}

	var v [5]float64
	allDone := true
	for i, tw := range t.tweens {
		val, finished := tw.Update(dt)
		v[i] = float64(val)
		if !finished {
			allDone = false
		}
	}

	s := ShapeState{Pos: Vec2{v[0], v[1]}, Size: Vec2{v[2], v[3]}, Angle: v[4]}
	if allDone {
		// gween works in float32; land exactly on the target.
		s = t.to
	}
	r.SetState(s)
	if allDone {
		t.Done = true
		r.FinishGesture()
	}
}

// Cancel stops the animation and restores the state the ROI had when the
// tween started.
func (t *StateTween) Cancel() {
	if t.Done {
		return
	}
	t.Done = true
	if !t.target.removed {
		t.target.CancelGesture()
	}
}
