package roi

import "testing"

func TestAddHandle(t *testing.T) {
	_, r := newTestROI(ShapeState{Size: Vec2{20, 10}})
	h := r.AddScaleHandle(Vec2{1, 1}, Vec2{0.5, 0.5})

	if h.Role != RoleScale {
		t.Errorf("role = %v", h.Role)
	}
	anchor, center, ok := r.HandleAnchor(h)
	if !ok {
		t.Fatal("handle not bound")
	}
	assertVec(t, "anchor", anchor, Vec2{1, 1})
	assertVec(t, "center", center, Vec2{0.5, 0.5})
	p, _ := r.HandlePos(h, FrameParent)
	assertVec(t, "pos", p, Vec2{20, 10})
	assertVec(t, "local", r.LocalHandlePositions()[0], Vec2{20, 10})
}

func TestHandlePositionsFollowState(t *testing.T) {
	_, r := newTestROI(square10(), WithParentTransform(Scaling(2, 2)))
	r.AddTranslateHandle(Vec2{0.5, 0.5})
	r.AddFreeHandle(Vec2{0, 1})

	r.SetPos(Vec2{1, 1})

	parent := r.HandlePositions(FrameParent)
	assertVec(t, "translate", parent[0], Vec2{6, 6})
	assertVec(t, "free", parent[1], Vec2{1, 11})
	scene := r.HandlePositions(FrameScene)
	assertVec(t, "scene", scene[0], Vec2{12, 12})
}

func TestAttachHandleTwicePanics(t *testing.T) {
	_, r := newTestROI(square10())
	h := r.AddTranslateHandle(Vec2{})
	expectBreach(t, func() { r.AttachHandle(h, Vec2{1, 1}, Vec2{}) })
}

func TestAttachRemovedHandlePanics(t *testing.T) {
	reg, r := newTestROI(square10())
	other := reg.NewROI(square10())
	h := r.AddTranslateHandle(Vec2{})
	r.RemoveHandle(h)
	expectBreach(t, func() { other.AttachHandle(h, Vec2{}, Vec2{}) })
}

func TestRemoveHandleNotOwnedPanics(t *testing.T) {
	reg, r := newTestROI(square10())
	other := reg.NewROI(square10())
	h := other.AddTranslateHandle(Vec2{})
	expectBreach(t, func() { r.RemoveHandle(h) })
}

func TestSharedHandleOwners(t *testing.T) {
	reg := NewRegistry()
	a := reg.NewROI(square10())
	b := reg.NewROI(square10())
	c := reg.NewROI(square10())
	h := c.AddFreeHandle(Vec2{})
	a.AttachHandle(h, Vec2{1, 1}, Vec2{})
	b.AttachHandle(h, Vec2{0, 1}, Vec2{})

	owners := h.Owners()
	if len(owners) != 3 || owners[0] != a.ID() || owners[1] != b.ID() || owners[2] != c.ID() {
		t.Errorf("owners = %v, want ascending ids", owners)
	}

	a.RemoveHandle(h)
	c.RemoveHandle(h)
	if h.IsRemoved() || reg.Handle(h.ID) != h {
		t.Error("handle dropped while still owned")
	}
	b.RemoveHandle(h)
	if !h.IsRemoved() || reg.Handle(h.ID) != nil {
		t.Error("handle not dropped after last owner")
	}
}

