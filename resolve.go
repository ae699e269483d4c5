package roi

import "math"

// resolution is the outcome of resolving one drag sample against an ROI.
type resolution struct {
	state ShapeState
	// moveHandle requests that the dragged handle be repositioned to
	// handleLocal (unscaled local coordinates of state).
	moveHandle  bool
	handleLocal Vec2
}

// ResolveHandleMove drags h so that it lands at pos, expressed in frame, and
// returns the resulting state.
//
// Each role resolves differently (see HandleRole); every role then checks the
// candidate state against the bounding region and rejects the whole step if
// it leaves it. A sample whose pivot vector has zero length is skipped. Both
// cases leave the previous state in place and the gesture continues.
//
// Outside a gesture an accepted move is committed immediately; inside one it
// publishes a Changing event only. Dragging a handle r does not own is a
// programming error.
func (r *ROI) ResolveHandleMove(h *Handle, pos Vec2, mods KeyModifiers, frame Frame) ShapeState {
	r.moveHandle(h, pos, mods, frame)
	return r.state
}

func (r *ROI) moveHandle(h *Handle, pos Vec2, mods KeyModifiers, frame Frame) {
	r.checkLive("ResolveHandleMove")
	b := r.binding(h)
	if b == nil {
		breach("ResolveHandleMove", "handle %d is not owned by roi %d", h.ID, r.id)
	}
	res, err := r.resolve(b, r.toParent(pos, frame), mods)
	if err != nil {
		r.reg.logger.Debug("roi: drag sample skipped",
			"roi", r.id, "handle", h.ID, "role", h.Role.String(), "err", err)
		return
	}
	if res.moveHandle {
		b.setLocal(res.handleLocal, res.state.Size)
		r.freeHandleMoved = true
	}
	r.state = res.state
	r.publish(!r.dragging)
}

// resolve computes the candidate state for dragging b's handle to the parent
// position p1. It mutates nothing.
func (r *ROI) resolve(b *handleBinding, p1 Vec2, mods KeyModifiers) (resolution, error) {
	st := r.state
	res := resolution{state: st}
	p0 := st.MapToParent(b.local(st.Size))

	// Pivoting roles work on local vectors from the center to the handle's
	// old (lp0) and new (lp1) positions.
	var cs, lp0, lp1 Vec2
	role := b.handle.Role
	if role.hasCenter() {
		cs = b.center.Mul(st.Size)
		lp0 = st.MapFromParent(p0).Sub(cs)
		lp1 = st.MapFromParent(p1).Sub(cs)
	}

	switch role {
	case RoleTranslate:
		if !r.cons.translatable {
			return res, nil
		}
		snap := r.cons.translateSnap || mods&ModCtrl != 0
		res.state = r.translated(st, p1.Sub(p0), snap)

	case RoleFree:
		res.moveHandle = true
		res.handleLocal = st.MapFromParent(p1)
		return res, nil

	case RoleScale:
		if !r.cons.resizable {
			return res, nil
		}
		res.state = r.scaled(st, b, lp0, lp1, cs, mods)

	case RoleRotate, RoleRotateFree:
		if !r.cons.rotatable {
			return res, nil
		}
		if lp0.Length() == 0 || lp1.Length() == 0 {
			return res, ErrInvalidHandleGeometry
		}
		next := st
		next.Angle = r.rotatedAngle(st.Angle, lp0, lp1, mods)
		next.Pos = st.MapToParent(cs).Sub(Rotation(next.Angle).ApplyVector(cs))
		res.state = next
		if role == RoleRotateFree {
			res.moveHandle = true
			res.handleLocal = next.MapFromParent(p1)
		}

	case RoleScaleRotate:
		if !r.cons.rotatable {
			return res, nil
		}
		if lp0.Length() == 0 || lp1.Length() == 0 {
			return res, ErrInvalidHandleGeometry
		}
		res.state = r.scaleRotated(st, b, lp0, lp1, cs, mods)
	}

	if !res.state.valid() {
		return resolution{state: st}, ErrInvalidHandleGeometry
	}
	if !r.inBounds(res.state) {
		return resolution{state: st}, ErrConstraintViolation
	}
	return res, nil
}

// translated returns st moved by delta, optionally snapping the origin.
func (r *ROI) translated(st ShapeState, delta Vec2, snap bool) ShapeState {
	st.Pos = st.Pos.Add(delta)
	if snap {
		st.Pos = st.Pos.Snap(r.cons.snapSize)
	}
	return st
}

// scaled resolves a scale drag. Snap is applied before the aspect lock, so
// the lock can override it.
func (r *ROI) scaled(st ShapeState, b *handleBinding, lp0, lp1, cs Vec2, mods KeyModifiers) ShapeState {
	// A handle sharing an axis with its center cannot scale along it.
	if b.center.X == b.anchor.X {
		lp1.X = 0
	}
	if b.center.Y == b.anchor.Y {
		lp1.Y = 0
	}
	if r.cons.scaleSnap || mods&ModCtrl != 0 {
		lp1 = lp1.Snap(r.cons.snapSize)
	}
	locked := r.cons.aspectLocked || mods&ModAlt != 0
	if locked {
		lp1 = lp1.Proj(lp0)
	}

	hs := b.anchor.Sub(b.center)
	if hs.X == 0 {
		hs.X = 1
	}
	if hs.Y == 0 {
		hs.Y = 1
	}
	size := Vec2{lp1.X / hs.X, lp1.Y / hs.Y}

	if size.X == 0 {
		size.X = st.Size.X
	}
	if size.Y == 0 {
		size.Y = st.Size.Y
	}
	if !r.cons.invertible {
		if size.X < 0 {
			size.X = st.Size.X
		}
		if size.Y < 0 {
			size.Y = st.Size.Y
		}
	}
	if locked {
		ratio := r.aspectRatio()
		if b.center.X == b.anchor.X {
			size.X = math.Copysign(math.Abs(size.Y)*ratio, size.X)
		} else {
			size.Y = math.Copysign(math.Abs(size.X)/ratio, size.Y)
		}
	}

	next := st
	next.Size = size
	next.Pos = st.MapToParent(cs).Sub(Rotation(st.Angle).ApplyVector(b.center.Mul(size)))
	return next
}

// scaleRotated resolves a combined rotate and scale drag. The size changes
// along the axis the handle does not share with its center (both axes when
// the aspect is locked) by the ratio of the pivot vector lengths.
func (r *ROI) scaleRotated(st ShapeState, b *handleBinding, lp0, lp1, cs Vec2, mods KeyModifiers) ShapeState {
	next := st
	next.Angle = r.rotatedAngle(st.Angle, lp0, lp1, mods)

	if r.cons.resizable {
		ratio := lp1.Length() / lp0.Length()
		locked := r.cons.aspectLocked
		snapping := r.cons.scaleSnap || mods&ModCtrl != 0
		if locked || b.center.X != b.anchor.X {
			next.Size.X = st.Size.X * ratio
			if snapping {
				next.Size.X = snap(next.Size.X, r.cons.snapSize)
			}
		}
		if locked || b.center.Y != b.anchor.Y {
			next.Size.Y = st.Size.Y * ratio
			if snapping {
				next.Size.Y = snap(next.Size.Y, r.cons.snapSize)
			}
		}
		if next.Size.X == 0 {
			next.Size.X = st.Size.X
		}
		if next.Size.Y == 0 {
			next.Size.Y = st.Size.Y
		}
	}

	next.Pos = st.MapToParent(cs).Sub(Rotation(next.Angle).ApplyVector(b.center.Mul(next.Size)))
	return next
}

// rotatedAngle returns the new angle after rotating by the signed angle from
// lp0 to lp1. With snapping, the rotation accumulated since the gesture
// started is rounded to the snap angle.
func (r *ROI) rotatedAngle(current float64, lp0, lp1 Vec2, mods KeyModifiers) float64 {
	ang := current + lp0.AngleTo(lp1)
	if (r.cons.rotateSnap || mods&ModCtrl != 0) && r.cons.rotateSnapAngle > 0 {
		base := r.state.Angle
		if r.dragging {
			base = r.preMoveState.Angle
		}
		ang = base + snap(ang-base, r.cons.rotateSnapAngle)
	}
	return ang
}
