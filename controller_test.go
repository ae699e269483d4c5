package roi

import (
	"errors"
	"math"
	"testing"
)

func TestTranslateClampsToBounds(t *testing.T) {
	_, r := newTestROI(square10(), WithMaxBounds(Rect{Width: 20, Height: 20}))

	r.Translate(Vec2{15, -5}, false)

	assertVec(t, "pos", r.Pos(), Vec2{10, 0})
}

func TestTranslateSnap(t *testing.T) {
	_, r := newTestROI(square10(), WithSnap(4))

	r.Translate(Vec2{5, 7}, true)

	assertVec(t, "pos", r.Pos(), Vec2{4, 8})
}

func TestRotateAboutCenter(t *testing.T) {
	_, r := newTestROI(square10())

	r.Rotate(90, Vec2{0.5, 0.5})

	assertNear(t, "angle", r.Angle(), 90)
	assertVec(t, "pos", r.Pos(), Vec2{10, 0})
	assertVec(t, "center", r.MapToParent(Vec2{5, 5}), Vec2{5, 5})
}

func TestROIScaleAboutCenter(t *testing.T) {
	_, r := newTestROI(ShapeState{Size: Vec2{10, 10}, Angle: 30})
	center := r.MapToParent(Vec2{5, 5})

	r.Scale(Vec2{2, 3}, Vec2{0.5, 0.5})

	assertVec(t, "size", r.Size(), Vec2{20, 30})
	assertVec(t, "center", r.MapToParent(Vec2{10, 15}), center)
}

func TestSaveRestoreState(t *testing.T) {
	_, r := newTestROI(square10())
	saved := r.SaveState()
	r.SetSize(Vec2{3, 3})
	r.SetAngle(10)

	r.RestoreState(saved)

	if r.State() != saved {
		t.Errorf("state = %+v, want %+v", r.State(), saved)
	}
}

func TestSetStateIgnoresNonFinite(t *testing.T) {
	_, r := newTestROI(square10())
	r.SetPos(Vec2{math.Inf(1), 0})
	r.SetAngle(math.NaN())

	if r.State() != square10() {
		t.Errorf("state = %+v, want unchanged", r.State())
	}
}

func TestMapSceneRoundTrip(t *testing.T) {
	parent := Translation(5, 5).Multiply(Rotation(30))
	_, r := newTestROI(ShapeState{Pos: Vec2{2, 3}, Size: Vec2{10, 10}, Angle: 15}, WithParentTransform(parent))

	p := Vec2{4, 7}
	assertVec(t, "round trip", r.MapFromScene(r.MapToScene(p)), p)
}

func TestSetMaxBounds(t *testing.T) {
	_, r := newTestROI(square10())
	r.SetMaxBounds(&Rect{X: 10, Y: 10, Width: -10, Height: -10})

	b, ok := r.MaxBounds()
	if !ok || b != (Rect{Width: 10, Height: 10}) {
		t.Errorf("bounds = %+v, %v", b, ok)
	}
	r.SetMaxBounds(nil)
	if _, ok := r.MaxBounds(); ok {
		t.Error("bounds not cleared")
	}
}

func TestGlobalTransformTranslation(t *testing.T) {
	reg := NewRegistry()
	leader := reg.NewROI(square10())
	follower := reg.NewROI(ShapeState{Pos: Vec2{20, 20}, Size: Vec2{4, 4}})

	leader.StartGesture()
	leader.SetPos(Vec2{5, 0})
	tr, err := leader.GlobalTransform(nil)
	if err != nil {
		t.Fatal(err)
	}
	leader.FinishGesture()

	if err := follower.ApplyGlobalTransform(tr); err != nil {
		t.Fatal(err)
	}
	assertVec(t, "pos", follower.Pos(), Vec2{25, 20})
	assertVec(t, "size", follower.Size(), Vec2{4, 4})
}

func TestGlobalTransformRotation(t *testing.T) {
	reg := NewRegistry()
	leader := reg.NewROI(square10())
	follower := reg.NewROI(ShapeState{Pos: Vec2{10, 0}, Size: Vec2{2, 2}})
	ref := leader.State()

	leader.SetAngle(90)
	tr, err := leader.GlobalTransform(&ref)
	if err != nil {
		t.Fatal(err)
	}
	if err := follower.ApplyGlobalTransform(tr); err != nil {
		t.Fatal(err)
	}

	assertVec(t, "pos", follower.Pos(), Vec2{0, 10})
	assertVec(t, "size", follower.Size(), Vec2{2, 2})
	assertNear(t, "angle", follower.Angle(), 90)
}

func TestApplyGlobalTransformShear(t *testing.T) {
	start := ShapeState{Size: Vec2{10, 10}, Angle: 30}
	_, r := newTestROI(start)

	err := r.ApplyGlobalTransform(AffineState{Scale: Vec2{2, 1}})

	if !errors.Is(err, ErrShear) {
		t.Fatalf("err = %v, want ErrShear", err)
	}
	if r.State() != start {
		t.Errorf("state = %+v, want unchanged", r.State())
	}
}
