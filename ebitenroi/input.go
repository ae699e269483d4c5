package ebitenroi

import (
	"github.com/phanxgames/roi"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	defaultDragDeadZone = 4.0 // pixels
	defaultHandleRadius = 6.0 // pixels
)

// --- Hit shapes ---

// HitCircle is a circular hit area.
type HitCircle struct {
	Center roi.Vec2
	Radius float64
}

// Contains reports whether p lies inside or on the circle.
func (c HitCircle) Contains(p roi.Vec2) bool {
	d := p.Sub(c.Center)
	return d.Dot(d) <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area. Points may use either winding
// order.
type HitPolygon struct {
	Points []roi.Vec2
}

// Contains reports whether p lies inside the polygon using a cross-product
// sign test.
func (poly HitPolygon) Contains(p roi.Vec2) bool {
	n := len(poly.Points)
	if n < 3 {
		return false
	}
	// Check that the point is on the same side of every edge.
	var positive, negative bool
	for i := 0; i < n; i++ {
		a := poly.Points[i]
		b := poly.Points[(i+1)%n]
		cross := b.Sub(a).Cross(p.Sub(a))
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// Target identifies what the pointer is over: a handle, or the body of an
// ROI when Handle is zero. The zero Target is empty space.
type Target struct {
	Handle roi.HandleID
	ROI    roi.ROIID
}

// IsZero reports whether t is empty space.
func (t Target) IsZero() bool { return t == Target{} }

// --- Pointer state ---

type pointerState struct {
	down      bool
	start     roi.Vec2 // screen
	last      roi.Vec2 // screen
	hit       Target
	dragging  bool
	cancelled bool
}

// Input turns pointer input into drag samples for a Registry. Call Update
// once per frame from ebiten.Game.Update.
//
// A press on a handle (or an ROI body) followed by movement beyond the dead
// zone starts a gesture; release finishes it. Pressing the right button or
// Escape during a drag cancels it.
type Input struct {
	// HandleRadius is the screen-space pick radius of handles.
	HandleRadius float64
	// DragDeadZone is the minimum movement in pixels before a drag starts.
	DragDeadZone float64
	// BodyDrag enables dragging ROIs by their body.
	BodyDrag bool

	reg  *roi.Registry
	view *View

	ps    pointerState
	hover Target

	injectQueue []syntheticPointerEvent
	injectMods  roi.KeyModifiers
}

// NewInput creates an Input feeding reg. view may be nil, in which case
// screen and scene coordinates coincide.
func NewInput(reg *roi.Registry, view *View) *Input {
	return &Input{
		HandleRadius: defaultHandleRadius,
		DragDeadZone: defaultDragDeadZone,
		BodyDrag:     true,
		reg:          reg,
		view:         view,
	}
}

// Hovered returns what the pointer was over at the last update.
func (in *Input) Hovered() Target { return in.hover }

// Active returns the target of the drag in progress, or the zero Target.
func (in *Input) Active() Target {
	if in.ps.dragging {
		return in.ps.hit
	}
	return Target{}
}

// Update processes one frame of input. A queued synthetic event, if any,
// replaces real input for the frame.
func (in *Input) Update() {
	if in.processInjectedInput() {
		return
	}
	mx, my := ebiten.CursorPosition()
	pos := roi.Vec2{X: float64(mx), Y: float64(my)}
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	// A single touch behaves like the left button.
	if !pressed {
		if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
			tx, ty := ebiten.TouchPosition(ids[0])
			pos = roi.Vec2{X: float64(tx), Y: float64(ty)}
			pressed = true
		}
	}
	cancel := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) || ebiten.IsKeyPressed(ebiten.KeyEscape)
	in.processPointer(pos, pressed, cancel, readModifiers())
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() roi.KeyModifiers {
	var mods roi.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= roi.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= roi.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= roi.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= roi.ModMeta
	}
	return mods
}

// processPointer runs the pointer state machine for one sample in screen
// coordinates.
func (in *Input) processPointer(screen roi.Vec2, pressed, cancel bool, mods roi.KeyModifiers) {
	ps := &in.ps
	scene := screenToScene(in.view, screen)

	switch {
	case pressed && !ps.down:
		// Just pressed.
		ps.down = true
		ps.start = screen
		ps.last = screen
		ps.hit = in.HitTest(screen)
		ps.dragging = false
		ps.cancelled = false

	case !pressed && ps.down:
		// Just released.
		if ps.dragging {
			in.send(ps.hit, scene, mods, roi.PhaseFinish)
		}
		ps.down = false
		ps.hit = Target{}
		ps.dragging = false
		ps.cancelled = false

	case pressed && ps.down:
		// Held down, possibly moved.
		if cancel && ps.dragging {
			in.send(ps.hit, scene, mods, roi.PhaseCancel)
			ps.dragging = false
			ps.cancelled = true
		}
		if ps.cancelled || ps.hit.IsZero() {
			break
		}
		if screen != ps.last {
			if !ps.dragging && screen.Sub(ps.start).Length() > in.DragDeadZone {
				ps.dragging = true
				// Start at the press position so the grab offset is exact.
				in.send(ps.hit, screenToScene(in.view, ps.start), mods, roi.PhaseStart)
			}
			if ps.dragging {
				in.send(ps.hit, scene, mods, roi.PhaseUpdate)
			}
		}
		ps.last = screen
	}

	if ps.dragging {
		in.hover = ps.hit
	} else {
		in.hover = in.HitTest(screen)
	}
}

// send delivers one drag sample to the registry. Samples for targets that
// vanished mid-gesture are dropped.
func (in *Input) send(t Target, scene roi.Vec2, mods roi.KeyModifiers, phase roi.Phase) {
	err := in.reg.Drag(roi.DragSample{
		Handle:    t.Handle,
		ROI:       t.ROI,
		Pos:       scene,
		Frame:     roi.FrameScene,
		Modifiers: mods,
		Phase:     phase,
	})
	if err != nil {
		in.reg.Logger().Debug("ebitenroi: drag sample dropped", "err", err)
	}
}

// HitTest returns the topmost target at the screen position. ROIs created
// later are on top; handles take priority over bodies.
func (in *Input) HitTest(screen roi.Vec2) Target {
	rois := in.reg.ROIs()
	for i := len(rois) - 1; i >= 0; i-- {
		r := rois[i]
		hs := r.Handles()
		for j, p := range r.HandlePositions(roi.FrameScene) {
			c := HitCircle{Center: sceneToScreen(in.view, p), Radius: in.HandleRadius}
			if c.Contains(screen) {
				return Target{Handle: hs[j].ID, ROI: r.ID()}
			}
		}
	}
	if !in.BodyDrag {
		return Target{}
	}
	scene := screenToScene(in.view, screen)
	for i := len(rois) - 1; i >= 0; i-- {
		if bodyPolygon(rois[i]).Contains(scene) {
			return Target{ROI: rois[i].ID()}
		}
	}
	return Target{}
}

// bodyPolygon returns the corners of r in scene coordinates.
func bodyPolygon(r *roi.ROI) HitPolygon {
	size := r.Size()
	local := [4]roi.Vec2{{}, {X: size.X}, size, {Y: size.Y}}
	pts := make([]roi.Vec2, len(local))
	for i, p := range local {
		pts[i] = r.MapToScene(p)
	}
	return HitPolygon{Points: pts}
}

func screenToScene(v *View, p roi.Vec2) roi.Vec2 {
	if v == nil {
		return p
	}
	return v.ScreenToScene(p)
}

func sceneToScreen(v *View, p roi.Vec2) roi.Vec2 {
	if v == nil {
		return p
	}
	return v.SceneToScreen(p)
}
