package roi

// StartGesture begins an interactive change. It snapshots the current state
// for cancellation and emits Started. Calling it during a gesture does
// nothing.
func (r *ROI) StartGesture() {
	r.checkLive("StartGesture")
	if r.dragging {
		return
	}
	r.dragging = true
	r.preMoveState = r.state
	r.lastState = r.state
	r.freeHandleMoved = false
	r.emit(EventStarted, false, false)
}

// FinishGesture commits the current gesture and emits Finished. It does
// nothing when no gesture is active.
func (r *ROI) FinishGesture() {
	if !r.dragging {
		return
	}
	r.dragging = false
	r.lastState = r.state
	r.freeHandleMoved = false
	r.emit(EventFinished, false, false)
}

// CancelGesture restores the state captured at StartGesture and emits a
// Finished event with Cancelled set. No Changing event is emitted for the
// restore. It does nothing when no gesture is active.
func (r *ROI) CancelGesture() {
	if !r.dragging {
		return
	}
	r.dragging = false
	r.state = r.preMoveState
	r.lastState = r.state
	r.freeHandleMoved = false
	r.bodyOffset = Vec2{}
	r.emit(EventFinished, false, true)
}

// Dragging reports whether a gesture is in progress.
func (r *ROI) Dragging() bool { return r.dragging }

// PreMoveState returns the state captured when the current (or last) gesture
// started.
func (r *ROI) PreMoveState() ShapeState { return r.preMoveState }

// publish emits Changing when the state differs from the last published one
// or a free handle moved, and Finished as well when finish is set. Nothing is
// emitted for a no-op.
func (r *ROI) publish(finish bool) {
	dirty := r.state != r.lastState || r.freeHandleMoved
	if !dirty {
		return
	}
	freeMoved := r.freeHandleMoved
	r.freeHandleMoved = false
	r.lastState = r.state
	r.emit(EventChanging, freeMoved, false)
	if finish {
		r.emit(EventFinished, false, false)
	}
}

// Drag delivers one sample to the gesture state machine of r. A sample with
// a Handle drags that handle of r alone (use Registry.Drag to move shared
// handles on every owner); otherwise it drags the whole shape.
func (r *ROI) Drag(s DragSample) {
	if s.Handle == 0 {
		r.dragBody(s)
		return
	}
	h := r.reg.Handle(s.Handle)
	if h == nil || r.binding(h) == nil {
		breach("Drag", "handle %d is not owned by roi %d", s.Handle, r.id)
	}
	switch s.Phase {
	case PhaseStart:
		r.StartGesture()
	case PhaseUpdate:
		r.StartGesture()
		r.moveHandle(h, s.Pos, s.Modifiers, s.Frame)
	case PhaseFinish:
		r.FinishGesture()
	case PhaseCancel:
		r.CancelGesture()
	}
}

// dragBody translates the whole shape so the point grabbed at start follows
// the pointer. Each step is all-or-nothing against the bounding region.
func (r *ROI) dragBody(s DragSample) {
	p := r.toParent(s.Pos, s.Frame)
	switch s.Phase {
	case PhaseStart:
		if r.dragging {
			return
		}
		r.bodyOffset = r.state.Pos.Sub(p)
		r.StartGesture()
	case PhaseUpdate:
		if !r.dragging {
			r.bodyOffset = r.state.Pos.Sub(p)
			r.StartGesture()
		}
		if !r.cons.translatable {
			return
		}
		snap := r.cons.translateSnap || s.Modifiers&ModCtrl != 0
		next := r.translated(r.state, p.Add(r.bodyOffset).Sub(r.state.Pos), snap)
		if !r.inBounds(next) {
			r.reg.logger.Debug("roi: body drag rejected", "roi", r.id, "err", ErrConstraintViolation)
			return
		}
		r.state = next
		r.publish(false)
	case PhaseFinish:
		r.bodyOffset = Vec2{}
		r.FinishGesture()
	case PhaseCancel:
		r.CancelGesture()
	}
}
