package roi

import "slices"

// HandleID identifies a Handle within its Registry. Zero is never assigned.
type HandleID uint32

// Handle is a typed control point. Dragging it reports a target position to
// every ROI that owns it; the handle never decides geometry itself.
//
// Owners are held as ROIIDs into the registry rather than pointers, so a
// handle can drive several shapes (chains) without owning any of them.
type Handle struct {
	ID   HandleID
	Name string
	Role HandleRole

	owners []ROIID // ascending

	// cursorOffset is the scene-space offset from the pointer to the handle,
	// captured when a gesture starts so the handle does not jump.
	cursorOffset Vec2
	dragging     bool
	removed      bool
}

// Owners returns the IDs of the ROIs this handle is attached to, in
// ascending order. The returned slice is a copy.
func (h *Handle) Owners() []ROIID {
	return slices.Clone(h.owners)
}

// IsShared reports whether more than one ROI owns the handle.
func (h *Handle) IsShared() bool {
	return len(h.owners) > 1
}

// IsRemoved reports whether the handle has lost all of its owners.
func (h *Handle) IsRemoved() bool {
	return h.removed
}

func (h *Handle) addOwner(id ROIID) {
	i, found := slices.BinarySearch(h.owners, id)
	if !found {
		h.owners = slices.Insert(h.owners, i, id)
	}
}

func (h *Handle) removeOwner(id ROIID) {
	if i, found := slices.BinarySearch(h.owners, id); found {
		h.owners = slices.Delete(h.owners, i, i+1)
	}
}

// handleBinding is an ROI's view of one of its handles. Anchor and center
// are normalized to the ROI's size, so (1,1) is the far corner whatever the
// shape's dimensions. They live on the binding rather than on the Handle
// because a shared handle sits at a different normalized position in each
// owner.
type handleBinding struct {
	handle *Handle
	anchor Vec2
	center Vec2
}

// local returns the binding's position in unscaled local coordinates.
func (b *handleBinding) local(size Vec2) Vec2 {
	return b.anchor.Mul(size)
}

// setLocal stores a local position, normalizing it against size. Axes with
// zero size keep their previous normalized value.
func (b *handleBinding) setLocal(p, size Vec2) {
	if size.X != 0 {
		b.anchor.X = p.X / size.X
	}
	if size.Y != 0 {
		b.anchor.Y = p.Y / size.Y
	}
}

// --- ROI handle management ---

// AddHandle creates a handle of the given role at the normalized anchor
// position, pivoting around the normalized center (ignored for translate and
// free handles), and attaches it to r.
func (r *ROI) AddHandle(role HandleRole, anchor, center Vec2) *Handle {
	r.checkLive("AddHandle")
	h := r.reg.newHandle(role)
	r.AttachHandle(h, anchor, center)
	return h
}

// AddTranslateHandle adds a handle that moves the whole shape.
func (r *ROI) AddTranslateHandle(anchor Vec2) *Handle {
	return r.AddHandle(RoleTranslate, anchor, anchor)
}

// AddFreeHandle adds a handle that moves independently of the shape, such as
// a polyline vertex.
func (r *ROI) AddFreeHandle(anchor Vec2) *Handle {
	return r.AddHandle(RoleFree, anchor, anchor)
}

// AddScaleHandle adds a handle that scales the shape about center.
func (r *ROI) AddScaleHandle(anchor, center Vec2) *Handle {
	return r.AddHandle(RoleScale, anchor, center)
}

// AddRotateHandle adds a handle that rotates the shape about center.
func (r *ROI) AddRotateHandle(anchor, center Vec2) *Handle {
	return r.AddHandle(RoleRotate, anchor, center)
}

// AddScaleRotateHandle adds a handle that rotates the shape about center and
// scales it along the axis the handle does not share with center.
func (r *ROI) AddScaleRotateHandle(anchor, center Vec2) *Handle {
	return r.AddHandle(RoleScaleRotate, anchor, center)
}

// AddRotateFreeHandle adds a rotate handle whose distance from center
// follows the pointer.
func (r *ROI) AddRotateFreeHandle(anchor, center Vec2) *Handle {
	return r.AddHandle(RoleRotateFree, anchor, center)
}

// AttachHandle binds an existing handle to r, letting one handle drive
// several ROIs. Attaching a handle r already owns is a programming error.
func (r *ROI) AttachHandle(h *Handle, anchor, center Vec2) {
	r.checkLive("AttachHandle")
	if h.removed {
		breach("AttachHandle", "handle %d has been removed", h.ID)
	}
	if r.binding(h) != nil {
		breach("AttachHandle", "handle %d is already attached to roi %d", h.ID, r.id)
	}
	r.handles = append(r.handles, handleBinding{handle: h, anchor: anchor, center: center})
	h.addOwner(r.id)
	if r.reg.debug {
		r.debugCheckHandles()
	}
}

// RemoveHandle detaches h from r. A handle left with no owners is removed
// from the registry. Removing a handle r does not own is a programming error.
func (r *ROI) RemoveHandle(h *Handle) {
	r.checkLive("RemoveHandle")
	i := r.bindingIndex(h)
	if i < 0 {
		breach("RemoveHandle", "handle %d is not owned by roi %d", h.ID, r.id)
	}
	r.handles = slices.Delete(r.handles, i, i+1)
	h.removeOwner(r.id)
	if len(h.owners) == 0 {
		r.reg.dropHandle(h)
	}
}

// Handles returns r's handles in the order they were attached.
func (r *ROI) Handles() []*Handle {
	out := make([]*Handle, len(r.handles))
	for i := range r.handles {
		out[i] = r.handles[i].handle
	}
	return out
}

// HandleAnchor returns the normalized anchor and center of h within r.
func (r *ROI) HandleAnchor(h *Handle) (anchor, center Vec2, ok bool) {
	b := r.binding(h)
	if b == nil {
		return Vec2{}, Vec2{}, false
	}
	return b.anchor, b.center, true
}

// HandlePos returns the position of h in the requested frame.
func (r *ROI) HandlePos(h *Handle, frame Frame) (Vec2, bool) {
	b := r.binding(h)
	if b == nil {
		return Vec2{}, false
	}
	p := r.state.MapToParent(b.local(r.state.Size))
	if frame == FrameScene {
		p = r.parent.Apply(p)
	}
	return p, true
}

// HandlePositions returns the position of every handle, in attach order, in
// the requested frame.
func (r *ROI) HandlePositions(frame Frame) []Vec2 {
	out := make([]Vec2, len(r.handles))
	for i := range r.handles {
		out[i], _ = r.HandlePos(r.handles[i].handle, frame)
	}
	return out
}

// LocalHandlePositions returns the position of every handle in r's unscaled
// local coordinates.
func (r *ROI) LocalHandlePositions() []Vec2 {
	out := make([]Vec2, len(r.handles))
	for i := range r.handles {
		out[i] = r.handles[i].local(r.state.Size)
	}
	return out
}

func (r *ROI) bindingIndex(h *Handle) int {
	for i := range r.handles {
		if r.handles[i].handle == h {
			return i
		}
	}
	return -1
}

func (r *ROI) binding(h *Handle) *handleBinding {
	if i := r.bindingIndex(h); i >= 0 {
		return &r.handles[i]
	}
	return nil
}
