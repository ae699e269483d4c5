package roi

import "testing"

func TestGestureLifecycle(t *testing.T) {
	_, r := newTestROI(square10())
	h := r.AddTranslateHandle(Vec2{0.5, 0.5})
	events := recordEvents(r)

	r.StartGesture()
	for i := 1; i <= 3; i++ {
		r.ResolveHandleMove(h, Vec2{5 + float64(i), 5}, 0, FrameParent)
	}
	r.FinishGesture()

	assertEventTypes(t, *events,
		EventStarted, EventChanging, EventChanging, EventChanging, EventFinished)
	last := (*events)[len(*events)-1]
	assertVec(t, "finished pos", last.State.Pos, Vec2{3, 0})
	if r.Dragging() {
		t.Error("still dragging after finish")
	}
}

func TestGestureNoOpUpdateIsSilent(t *testing.T) {
	_, r := newTestROI(square10())
	h := r.AddTranslateHandle(Vec2{0.5, 0.5})
	events := recordEvents(r)

	r.StartGesture()
	r.ResolveHandleMove(h, Vec2{5, 5}, 0, FrameParent)
	r.FinishGesture()

	assertEventTypes(t, *events, EventStarted, EventFinished)
}

func TestGestureCancelRestores(t *testing.T) {
	start := ShapeState{Pos: Vec2{1, 2}, Size: Vec2{10, 10}, Angle: 15}
	_, r := newTestROI(start)
	h := r.AddScaleHandle(Vec2{1, 1}, Vec2{0, 0})
	events := recordEvents(r)

	r.StartGesture()
	p, _ := r.HandlePos(h, FrameParent)
	r.ResolveHandleMove(h, p.Add(Vec2{7, 3}), 0, FrameParent)
	r.CancelGesture()

	if r.State() != start {
		t.Errorf("state = %+v, want %+v", r.State(), start)
	}
	assertEventTypes(t, *events, EventStarted, EventChanging, EventFinished)
	fin := (*events)[2]
	if !fin.Cancelled {
		t.Error("finished event should be marked cancelled")
	}
	if fin.State != start {
		t.Errorf("finished state = %+v, want %+v", fin.State, start)
	}
}

func TestGestureIdleFinishAndCancel(t *testing.T) {
	_, r := newTestROI(square10())
	events := recordEvents(r)

	r.FinishGesture()
	r.CancelGesture()

	if len(*events) != 0 {
		t.Errorf("events = %v, want none", eventTypes(*events))
	}
}

func TestGestureDuplicateStart(t *testing.T) {
	_, r := newTestROI(square10())
	events := recordEvents(r)

	r.StartGesture()
	r.SetPos(Vec2{4, 4})
	r.StartGesture()
	r.FinishGesture()

	assertEventTypes(t, *events, EventStarted, EventChanging, EventFinished)
	assertVec(t, "pre-move", r.PreMoveState().Pos, Vec2{0, 0})
}

func TestSetStateOutsideGestureCommits(t *testing.T) {
	_, r := newTestROI(square10())
	events := recordEvents(r)

	r.SetState(ShapeState{Pos: Vec2{1, 1}, Size: Vec2{5, 5}})

	assertEventTypes(t, *events, EventChanging, EventFinished)
}

func TestDragImplicitStart(t *testing.T) {
	_, r := newTestROI(square10())
	h := r.AddTranslateHandle(Vec2{0.5, 0.5})
	events := recordEvents(r)

	r.Drag(DragSample{Handle: h.ID, Pos: Vec2{9, 5}, Phase: PhaseUpdate})
	r.Drag(DragSample{Handle: h.ID, Phase: PhaseFinish})

	assertEventTypes(t, *events, EventStarted, EventChanging, EventFinished)
	assertVec(t, "pos", r.Pos(), Vec2{4, 0})
}

func TestBodyDrag(t *testing.T) {
	_, r := newTestROI(ShapeState{Pos: Vec2{10, 10}, Size: Vec2{20, 20}})
	events := recordEvents(r)

	r.Drag(DragSample{Pos: Vec2{15, 15}, Phase: PhaseStart})
	r.Drag(DragSample{Pos: Vec2{18, 19}, Phase: PhaseUpdate})
	r.Drag(DragSample{Pos: Vec2{25, 15}, Phase: PhaseUpdate})
	r.Drag(DragSample{Pos: Vec2{25, 15}, Phase: PhaseFinish})

	assertVec(t, "pos", r.Pos(), Vec2{20, 10})
	assertEventTypes(t, *events,
		EventStarted, EventChanging, EventChanging, EventFinished)
}

func TestBodyDragRejectedOutsideBounds(t *testing.T) {
	_, r := newTestROI(ShapeState{Pos: Vec2{10, 10}, Size: Vec2{20, 20}},
		WithMaxBounds(Rect{Width: 40, Height: 40}))

	r.Drag(DragSample{Pos: Vec2{15, 15}, Phase: PhaseStart})
	r.Drag(DragSample{Pos: Vec2{20, 15}, Phase: PhaseUpdate})
	r.Drag(DragSample{Pos: Vec2{40, 15}, Phase: PhaseUpdate}) // would reach x=50
	r.Drag(DragSample{Phase: PhaseFinish})

	assertVec(t, "pos", r.Pos(), Vec2{15, 10})
}

func TestBodyDragNotTranslatable(t *testing.T) {
	_, r := newTestROI(square10(), WithTranslatable(false))

	r.Drag(DragSample{Pos: Vec2{5, 5}, Phase: PhaseStart})
	r.Drag(DragSample{Pos: Vec2{50, 50}, Phase: PhaseUpdate})
	r.Drag(DragSample{Phase: PhaseFinish})

	if r.State() != square10() {
		t.Errorf("state = %+v, want unchanged", r.State())
	}
}

func TestBodyDragCancel(t *testing.T) {
	_, r := newTestROI(square10())

	r.Drag(DragSample{Pos: Vec2{5, 5}, Phase: PhaseStart})
	r.Drag(DragSample{Pos: Vec2{50, 50}, Phase: PhaseUpdate})
	r.Drag(DragSample{Phase: PhaseCancel})

	if r.State() != square10() {
		t.Errorf("state = %+v, want restored", r.State())
	}
	if r.Dragging() {
		t.Error("still dragging after cancel")
	}
}
