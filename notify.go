package roi

import "slices"

// ChangeEvent carries one notification of the three-phase change protocol.
//
// A Changing event is not a commitment: collaborators that mirror the ROI
// elsewhere should defer expensive work until Finished.
type ChangeEvent struct {
	Type  EventType
	ID    ROIID
	ROI   *ROI
	State ShapeState
	// FreeHandleMoved is set on Changing events raised because a free
	// handle moved while the shape itself did not change.
	FreeHandleMoved bool
	// Cancelled is set on the Finished event of a cancelled gesture; State
	// then holds the restored pre-move state.
	Cancelled bool
}

// EventSink is the interface for optional ECS integration. When set on a
// Registry, every change event is forwarded to it after the callbacks run.
type EventSink interface {
	EmitEvent(event ChangeEvent)
}

// --- Handler registry ---

type changeHandler struct {
	id uint32
	fn func(ChangeEvent)
}

type handlerRegistry struct {
	started  []changeHandler
	changing []changeHandler
	finished []changeHandler
	nextID   uint32
}

// CallbackHandle allows removing a registered change callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventStarted:
		h.reg.started = removeChangeHandler(h.reg.started, h.id)
	case EventChanging:
		h.reg.changing = removeChangeHandler(h.reg.changing, h.id)
	case EventFinished:
		h.reg.finished = removeChangeHandler(h.reg.finished, h.id)
	}
}

func removeChangeHandler(s []changeHandler, id uint32) []changeHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = changeHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) add(event EventType, fn func(ChangeEvent)) CallbackHandle {
	r.nextID++
	h := changeHandler{id: r.nextID, fn: fn}
	switch event {
	case EventStarted:
		r.started = append(r.started, h)
	case EventChanging:
		r.changing = append(r.changing, h)
	case EventFinished:
		r.finished = append(r.finished, h)
	}
	return CallbackHandle{id: h.id, reg: r, event: event}
}

func (r *handlerRegistry) list(event EventType) []changeHandler {
	switch event {
	case EventStarted:
		return r.started
	case EventChanging:
		return r.changing
	case EventFinished:
		return r.finished
	}
	return nil
}

// dispatch calls every handler registered for e.Type. Handlers may remove
// themselves (or others) while the event is being delivered.
func (r *handlerRegistry) dispatch(e ChangeEvent) {
	hs := r.list(e.Type)
	if len(hs) == 0 {
		return
	}
	for _, h := range slices.Clone(hs) {
		h.fn(e)
	}
}

// --- ROI-level registration ---

// OnStarted registers a callback fired once when a gesture begins.
func (r *ROI) OnStarted(fn func(ChangeEvent)) CallbackHandle {
	return r.handlers.add(EventStarted, fn)
}

// OnChanging registers a callback fired for every accepted change that has
// not been committed yet.
func (r *ROI) OnChanging(fn func(ChangeEvent)) CallbackHandle {
	return r.handlers.add(EventChanging, fn)
}

// OnFinished registers a callback fired once per committed or cancelled
// change.
func (r *ROI) OnFinished(fn func(ChangeEvent)) CallbackHandle {
	return r.handlers.add(EventFinished, fn)
}

// --- Registry-level registration ---

// OnStarted registers a callback fired when any ROI in the registry starts a
// gesture.
func (g *Registry) OnStarted(fn func(ChangeEvent)) CallbackHandle {
	return g.handlers.add(EventStarted, fn)
}

// OnChanging registers a callback fired on every uncommitted change of any
// ROI in the registry.
func (g *Registry) OnChanging(fn func(ChangeEvent)) CallbackHandle {
	return g.handlers.add(EventChanging, fn)
}

// OnFinished registers a callback fired when any ROI in the registry
// commits or cancels a change.
func (g *Registry) OnFinished(fn func(ChangeEvent)) CallbackHandle {
	return g.handlers.add(EventFinished, fn)
}

// emit delivers an event for r: registry-level handlers first, then the
// ROI's own handlers, then the ECS sink.
func (r *ROI) emit(typ EventType, freeMoved, cancelled bool) {
	e := ChangeEvent{
		Type:            typ,
		ID:              r.id,
		ROI:             r,
		State:           r.state,
		FreeHandleMoved: freeMoved,
		Cancelled:       cancelled,
	}
	g := r.reg
	g.handlers.dispatch(e)
	r.handlers.dispatch(e)
	if g.sink != nil {
		g.sink.EmitEvent(e)
	}
}
