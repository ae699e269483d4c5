package ebitenroi

import (
	"testing"

	"github.com/phanxgames/roi"
)

func TestHitCircle(t *testing.T) {
	c := HitCircle{Center: roi.Vec2{X: 10, Y: 10}, Radius: 5}
	tests := []struct {
		p    roi.Vec2
		want bool
	}{
		{roi.Vec2{X: 10, Y: 10}, true},
		{roi.Vec2{X: 15, Y: 10}, true},
		{roi.Vec2{X: 14, Y: 14}, false},
	}
	for _, tt := range tests {
		if got := c.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestHitPolygon(t *testing.T) {
	// Diamond, clockwise.
	poly := HitPolygon{Points: []roi.Vec2{{X: 0, Y: -10}, {X: 10, Y: 0}, {X: 0, Y: 10}, {X: -10, Y: 0}}}
	tests := []struct {
		p    roi.Vec2
		want bool
	}{
		{roi.Vec2{}, true},
		{roi.Vec2{X: 4, Y: 4}, true},
		{roi.Vec2{X: 8, Y: 8}, false},
		{roi.Vec2{X: -11, Y: 0}, false},
	}
	for _, tt := range tests {
		if got := poly.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if (HitPolygon{Points: poly.Points[:2]}).Contains(roi.Vec2{}) {
		t.Error("degenerate polygon should contain nothing")
	}
}

func newInputScene() (*roi.Registry, *roi.ROI, *roi.Handle, *Input) {
	reg := roi.NewRegistry()
	r := reg.NewROI(roi.ShapeState{Pos: roi.Vec2{X: 100, Y: 100}, Size: roi.Vec2{X: 50, Y: 50}})
	h := r.AddScaleHandle(roi.Vec2{X: 1, Y: 1}, roi.Vec2{})
	return reg, r, h, NewInput(reg, nil)
}

func drain(in *Input) {
	for in.Pending() > 0 {
		in.Update()
	}
}

func TestHitTest(t *testing.T) {
	reg, r, h, in := newInputScene()
	top := reg.NewROI(roi.ShapeState{Pos: roi.Vec2{X: 120, Y: 120}, Size: roi.Vec2{X: 10, Y: 10}})

	tests := []struct {
		name string
		p    roi.Vec2
		want Target
	}{
		{"handle", roi.Vec2{X: 152, Y: 149}, Target{Handle: h.ID, ROI: r.ID()}},
		{"body", roi.Vec2{X: 105, Y: 105}, Target{ROI: r.ID()}},
		{"topmost body", roi.Vec2{X: 125, Y: 125}, Target{ROI: top.ID()}},
		{"empty", roi.Vec2{X: 10, Y: 10}, Target{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := in.HitTest(tt.p); got != tt.want {
				t.Errorf("HitTest = %+v, want %+v", got, tt.want)
			}
		})
	}

	in.BodyDrag = false
	if got := in.HitTest(roi.Vec2{X: 105, Y: 105}); !got.IsZero() {
		t.Errorf("body hit with BodyDrag off: %+v", got)
	}
}

func TestInjectedHandleDrag(t *testing.T) {
	_, r, _, in := newInputScene()
	var types []roi.EventType
	rec := func(e roi.ChangeEvent) { types = append(types, e.Type) }
	r.OnStarted(rec)
	r.OnChanging(rec)
	r.OnFinished(rec)

	in.InjectDrag(roi.Vec2{X: 150, Y: 150}, roi.Vec2{X: 170, Y: 160}, 6)
	if in.Pending() != 6 {
		t.Fatalf("pending = %d, want 6", in.Pending())
	}
	drain(in)

	assertVec(t, "size", r.Size(), roi.Vec2{X: 70, Y: 60})
	if types[0] != roi.EventStarted || types[len(types)-1] != roi.EventFinished {
		t.Errorf("events = %v", types)
	}
	if !in.Active().IsZero() {
		t.Error("active target after release")
	}
}

func TestInjectedBodyDragThroughView(t *testing.T) {
	reg := roi.NewRegistry()
	r := reg.NewROI(roi.ShapeState{Pos: roi.Vec2{X: 100, Y: 100}, Size: roi.Vec2{X: 50, Y: 50}})
	view := NewView(testViewport)
	view.Zoom = 2
	in := NewInput(reg, view)

	from := view.SceneToScreen(roi.Vec2{X: 110, Y: 110})
	in.InjectDrag(from, from.Add(roi.Vec2{X: 20, Y: 10}), 4)
	drain(in)

	// 20x10 screen pixels at zoom 2 is 10x5 scene units.
	assertVec(t, "pos", r.Pos(), roi.Vec2{X: 110, Y: 105})
}

func TestInjectedDragCancel(t *testing.T) {
	_, r, _, in := newInputScene()
	start := r.State()
	cancelled := false
	r.OnFinished(func(e roi.ChangeEvent) { cancelled = e.Cancelled })

	in.InjectPress(150, 150)
	in.InjectMove(170, 170)
	in.InjectCancel(170, 170)
	in.InjectMove(190, 190)
	in.InjectRelease(190, 190)
	drain(in)

	if r.State() != start {
		t.Errorf("state = %+v, want %+v", r.State(), start)
	}
	if !cancelled {
		t.Error("finished event should be cancelled")
	}
}

func TestDragDeadZone(t *testing.T) {
	_, r, _, in := newInputScene()
	events := 0
	r.OnStarted(func(roi.ChangeEvent) { events++ })

	in.InjectPress(150, 150)
	in.InjectMove(152, 151)
	in.InjectRelease(152, 151)
	drain(in)

	if events != 0 {
		t.Errorf("started %d gestures inside the dead zone", events)
	}
	assertVec(t, "size", r.Size(), roi.Vec2{X: 50, Y: 50})
}

func TestInjectModifiers(t *testing.T) {
	reg := roi.NewRegistry()
	r := reg.NewROI(roi.ShapeState{Size: roi.Vec2{X: 50, Y: 50}}, roi.WithSnap(10))
	r.AddScaleHandle(roi.Vec2{X: 1, Y: 1}, roi.Vec2{})
	in := NewInput(reg, nil)
	in.BodyDrag = false

	in.InjectModifiers(roi.ModCtrl)
	in.InjectDrag(roi.Vec2{X: 50, Y: 50}, roi.Vec2{X: 73, Y: 58}, 3)
	drain(in)

	assertVec(t, "size", r.Size(), roi.Vec2{X: 70, Y: 60})
}

func TestHoverTracksPointer(t *testing.T) {
	_, r, h, in := newInputScene()

	in.InjectPress(0, 0)
	in.InjectRelease(150, 150)
	drain(in)

	if got := in.Hovered(); got != (Target{Handle: h.ID, ROI: r.ID()}) {
		t.Errorf("hovered = %+v", got)
	}
}
