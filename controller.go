package roi

import (
	"fmt"
	"math"
)

// ROIID identifies an ROI within its Registry. Zero is never assigned.
type ROIID uint32

// ROI is an interactive region of interest: it owns a ShapeState, the
// handles that transform it and the constraints every drag must satisfy.
// Create one with Registry.NewROI.
type ROI struct {
	Name string

	id  ROIID
	reg *Registry

	state        ShapeState // current
	lastState    ShapeState // last published, for change detection
	preMoveState ShapeState // snapshot at gesture start, for cancel

	handles []handleBinding
	cons    constraints
	parent  Matrix // parent to scene

	dragging        bool
	freeHandleMoved bool
	bodyOffset      Vec2 // parent-space offset from pointer to Pos during a body drag

	handlers handlerRegistry
	stack    []ShapeState
	removed  bool
}

// ID returns the ROI's registry ID.
func (r *ROI) ID() ROIID { return r.id }

// Registry returns the registry that owns r.
func (r *ROI) Registry() *Registry { return r.reg }

// IsRemoved reports whether r has been removed from its registry.
func (r *ROI) IsRemoved() bool { return r.removed }

func (r *ROI) String() string {
	if r.Name != "" {
		return fmt.Sprintf("roi %d (%s)", r.id, r.Name)
	}
	return fmt.Sprintf("roi %d", r.id)
}

// --- State ---

// State returns a copy of the current geometry.
func (r *ROI) State() ShapeState { return r.state }

// Pos returns the current origin in parent coordinates.
func (r *ROI) Pos() Vec2 { return r.state.Pos }

// Size returns the current size.
func (r *ROI) Size() Vec2 { return r.state.Size }

// Angle returns the current rotation in degrees.
func (r *ROI) Angle() float64 { return r.state.Angle }

// SetState replaces the geometry and publishes the change. Outside a gesture
// the change is committed immediately (changing then finished). Non-finite
// states are ignored.
func (r *ROI) SetState(s ShapeState) {
	r.checkLive("SetState")
	if !s.valid() {
		r.reg.logger.Debug("roi: ignoring non-finite state", "roi", r.id, "state", s)
		return
	}
	r.state = s
	r.publish(!r.dragging)
}

// SaveState returns the current geometry for persistence by the caller.
func (r *ROI) SaveState() ShapeState { return r.state }

// RestoreState applies a state previously returned by SaveState.
func (r *ROI) RestoreState(s ShapeState) { r.SetState(s) }

// SetPos moves the origin.
func (r *ROI) SetPos(p Vec2) {
	s := r.state
	s.Pos = p
	r.SetState(s)
}

// SetSize changes the size, keeping the origin fixed.
func (r *ROI) SetSize(size Vec2) {
	s := r.state
	s.Size = size
	r.SetState(s)
}

// SetAngle sets the rotation in degrees, keeping the origin fixed.
func (r *ROI) SetAngle(deg float64) {
	s := r.state
	s.Angle = deg
	r.SetState(s)
}

// Translate moves the ROI by delta in parent coordinates. With snap, the
// resulting origin is rounded to the snap grid. If the ROI has bounds, the
// move is clamped per axis so the shape stays inside them.
func (r *ROI) Translate(delta Vec2, snap bool) {
	s := r.translated(r.state, delta, snap)
	if b := r.cons.maxBounds; b != nil {
		pb := s.ParentBounds()
		var d Vec2
		if pb.X < b.X {
			d.X = b.X - pb.X
		} else if pb.X+pb.Width > b.X+b.Width {
			d.X = b.X + b.Width - (pb.X + pb.Width)
		}
		if pb.Y < b.Y {
			d.Y = b.Y - pb.Y
		} else if pb.Y+pb.Height > b.Y+b.Height {
			d.Y = b.Y + b.Height - (pb.Y + pb.Height)
		}
		s.Pos = s.Pos.Add(d)
	}
	r.SetState(s)
}

// Rotate rotates the ROI by deg degrees about the normalized center point,
// which stays fixed in parent coordinates.
func (r *ROI) Rotate(deg float64, center Vec2) {
	s := r.state
	s.Angle += deg
	s.Pos = pivotPos(r.state, s, center)
	r.SetState(s)
}

// Scale multiplies the size by factor about the normalized center point,
// which stays fixed in parent coordinates.
func (r *ROI) Scale(factor, center Vec2) {
	s := r.state
	s.Size = s.Size.Mul(factor)
	s.Pos = pivotPos(r.state, s, center)
	r.SetState(s)
}

// pivotPos returns the origin for next such that the normalized point center
// maps to the same parent position it had in prev.
func pivotPos(prev, next ShapeState, center Vec2) Vec2 {
	fixed := prev.MapToParent(center.Mul(prev.Size))
	return fixed.Sub(Rotation(next.Angle).ApplyVector(center.Mul(next.Size)))
}

// ParentBounds returns the axis-aligned bounding box in parent coordinates.
func (r *ROI) ParentBounds() Rect { return r.state.ParentBounds() }

// --- Coordinate frames ---

// SetParentTransform sets the parent-to-scene matrix.
func (r *ROI) SetParentTransform(m Matrix) { r.parent = m }

// ParentTransform returns the parent-to-scene matrix.
func (r *ROI) ParentTransform() Matrix { return r.parent }

// MapToParent maps a local point into parent coordinates.
func (r *ROI) MapToParent(p Vec2) Vec2 { return r.state.MapToParent(p) }

// MapFromParent maps a parent point into local coordinates.
func (r *ROI) MapFromParent(p Vec2) Vec2 { return r.state.MapFromParent(p) }

// MapToScene maps a local point into scene coordinates.
func (r *ROI) MapToScene(p Vec2) Vec2 { return r.parent.Apply(r.state.MapToParent(p)) }

// MapFromScene maps a scene point into local coordinates.
func (r *ROI) MapFromScene(p Vec2) Vec2 {
	return r.state.MapFromParent(r.parent.Invert().Apply(p))
}

// toParent converts p from frame into parent coordinates.
func (r *ROI) toParent(p Vec2, frame Frame) Vec2 {
	if frame == FrameScene {
		return r.parent.Invert().Apply(p)
	}
	return p
}

// --- Global transforms ---

// GlobalTransform returns the transform that carries relativeTo onto the
// current state. A nil relativeTo uses the state captured when the current
// (or last) gesture started. Use it to broadcast one shape's move to its
// siblings with ApplyGlobalTransform.
func (r *ROI) GlobalTransform(relativeTo *ShapeState) (AffineState, error) {
	ref := r.preMoveState
	if relativeTo != nil {
		ref = *relativeTo
	}
	return Divide(r.state.Affine(), ref.Affine())
}

// ApplyGlobalTransform composes tr on top of the current state. If the
// result cannot be decomposed back into a shape the state is left untouched
// and the decomposition error is returned.
func (r *ROI) ApplyGlobalTransform(tr AffineState) error {
	a, err := Multiply(r.state.Affine(), tr)
	if err != nil {
		r.reg.logger.Debug("roi: apply global transform", "roi", r.id, "err", err)
		return err
	}
	r.SetState(ShapeFromAffine(a))
	return nil
}

// --- Constraints ---

// SetMaxBounds sets or clears (nil) the bounding region.
func (r *ROI) SetMaxBounds(bounds *Rect) {
	if bounds == nil {
		r.cons.maxBounds = nil
		return
	}
	b := bounds.Normalized()
	r.cons.maxBounds = &b
}

// MaxBounds returns the bounding region, if any.
func (r *ROI) MaxBounds() (Rect, bool) {
	if r.cons.maxBounds == nil {
		return Rect{}, false
	}
	return *r.cons.maxBounds, true
}

// SetAspectLocked enables or disables the aspect lock. See WithAspectLock.
func (r *ROI) SetAspectLocked(locked bool, ratio float64) {
	r.cons.aspectLocked = locked
	r.cons.aspectRatio = ratio
}

// SetInvertible allows or forbids negative sizes from scale drags.
func (r *ROI) SetInvertible(invertible bool) { r.cons.invertible = invertible }

// inBounds reports whether s satisfies the bounding region.
func (r *ROI) inBounds(s ShapeState) bool {
	b := r.cons.maxBounds
	return b == nil || b.ContainsRect(s.ParentBounds())
}

// aspectRatio returns the width/height ratio enforced by the aspect lock.
func (r *ROI) aspectRatio() float64 {
	if r.cons.aspectRatio > 0 {
		return r.cons.aspectRatio
	}
	if r.state.Size.Y == 0 {
		return 1
	}
	if ratio := math.Abs(r.state.Size.X / r.state.Size.Y); ratio > 0 {
		return ratio
	}
	return 1
}
