package roi

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrUnknownTarget is returned by Registry.Drag when a sample names a handle
// or ROI the registry does not hold.
var ErrUnknownTarget = errors.New("unknown drag target")

// DragSample is one input event delivered by the scene layer. Handle selects
// the dragged handle; when it is zero the sample drags the body of ROI.
type DragSample struct {
	Handle    HandleID
	ROI       ROIID
	Pos       Vec2
	Frame     Frame
	Modifiers KeyModifiers
	Phase     Phase
}

// Registry is a caller-owned arena of ROIs and handles. Handles refer back to
// their owners by ROIID, and all cross-object lookups go through the
// registry, so there are no hidden globals and no reference cycles.
//
// A Registry is not safe for concurrent use: all resolution runs
// synchronously on the goroutine delivering input.
type Registry struct {
	rois    []*ROI    // index = ID-1; nil once removed
	handles []*Handle // index = ID-1; nil once removed

	handlers handlerRegistry
	sink     EventSink
	logger   *slog.Logger
	debug    bool
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	var o registryOptions
	for _, opt := range opts {
		opt(&o)
	}
	g := &Registry{sink: o.sink, debug: o.debug}
	g.SetLogger(o.logger)
	return g
}

// NewROI creates an ROI with the given initial state and adds it to the
// registry.
func (g *Registry) NewROI(state ShapeState, opts ...Option) *ROI {
	o := defaultROIOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := &ROI{
		id:           ROIID(len(g.rois) + 1),
		Name:         o.name,
		reg:          g,
		state:        state,
		lastState:    state,
		preMoveState: state,
		cons:         o.cons,
		parent:       o.parent,
	}
	g.rois = append(g.rois, r)
	if g.debug {
		g.debugCheckCount()
	}
	return r
}

// ROI returns the ROI with the given ID, or nil.
func (g *Registry) ROI(id ROIID) *ROI {
	if id == 0 || int(id) > len(g.rois) {
		return nil
	}
	return g.rois[id-1]
}

// ROIs returns all live ROIs in creation order.
func (g *Registry) ROIs() []*ROI {
	out := make([]*ROI, 0, len(g.rois))
	for _, r := range g.rois {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

// Handle returns the handle with the given ID, or nil.
func (g *Registry) Handle(id HandleID) *Handle {
	if id == 0 || int(id) > len(g.handles) {
		return nil
	}
	return g.handles[id-1]
}

// Remove takes r out of the registry. An active gesture on r is cancelled
// first so its finished event still fires. Handles owned only by r are
// removed with it; shared handles stay with their other owners.
func (g *Registry) Remove(r *ROI) {
	if r.removed {
		return
	}
	r.CancelGesture()
	for len(r.handles) > 0 {
		r.RemoveHandle(r.handles[len(r.handles)-1].handle)
	}
	r.removed = true
	g.rois[r.id-1] = nil
}

// SetEventSink sets the optional ECS bridge.
func (g *Registry) SetEventSink(sink EventSink) {
	g.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, use of removed
// ROIs panics and unusually large registries are reported through the logger.
func (g *Registry) SetDebugMode(enabled bool) {
	g.debug = enabled
}

func (g *Registry) newHandle(role HandleRole) *Handle {
	h := &Handle{ID: HandleID(len(g.handles) + 1), Role: role}
	g.handles = append(g.handles, h)
	return h
}

func (g *Registry) dropHandle(h *Handle) {
	h.removed = true
	h.dragging = false
	g.handles[h.ID-1] = nil
}

// owners resolves h's owner IDs in ascending (deterministic) order.
func (g *Registry) owners(h *Handle) []*ROI {
	out := make([]*ROI, 0, len(h.owners))
	for _, id := range h.owners {
		if r := g.ROI(id); r != nil {
			out = append(out, r)
		}
	}
	return out
}

// Drag routes one drag sample. Handle samples are forwarded to every owner of
// the handle in ascending ROIID order; body samples translate the named ROI.
func (g *Registry) Drag(s DragSample) error {
	if s.Handle != 0 {
		h := g.Handle(s.Handle)
		if h == nil {
			return fmt.Errorf("drag handle %d: %w", s.Handle, ErrUnknownTarget)
		}
		g.dragHandle(h, s)
		return nil
	}
	r := g.ROI(s.ROI)
	if r == nil {
		return fmt.Errorf("drag roi %d: %w", s.ROI, ErrUnknownTarget)
	}
	r.dragBody(s)
	return nil
}

func (g *Registry) dragHandle(h *Handle, s DragSample) {
	owners := g.owners(h)
	if len(owners) == 0 {
		return
	}
	first := owners[0]
	pointer := s.Pos
	if s.Frame == FrameParent {
		pointer = first.parent.Apply(pointer)
	}

	switch s.Phase {
	case PhaseStart:
		if h.dragging {
			return
		}
		hp, _ := first.HandlePos(h, FrameScene)
		h.cursorOffset = hp.Sub(pointer)
		h.dragging = true
		for _, r := range owners {
			r.StartGesture()
		}
	case PhaseUpdate:
		if !h.dragging {
			h.cursorOffset = Vec2{}
			h.dragging = true
		}
		target := pointer.Add(h.cursorOffset)
		for _, r := range owners {
			r.StartGesture()
			r.moveHandle(h, target, s.Modifiers, FrameScene)
		}
	case PhaseFinish:
		h.dragging = false
		for _, r := range owners {
			r.FinishGesture()
		}
	case PhaseCancel:
		h.dragging = false
		for _, r := range owners {
			r.CancelGesture()
		}
	}
}
