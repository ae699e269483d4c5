package roi

import (
	"math"
	"slices"
)

// Segment handle placement: each segment runs from its head handle at the
// middle of the left edge to its tail handle at the middle of the right edge,
// and each end pivots on the other.
var (
	segmentHead = Vec2{0, 0.5}
	segmentTail = Vec2{1, 0.5}
)

// minSegmentLength is the shortest segment a chain accepts.
const minSegmentLength = 1e-9

// Chain is a segmented path built from ROIs whose adjacent ends share one
// scale-rotate handle: the tail handle of segment i is the head handle of
// segment i+1. Dragging a shared handle through Registry.Drag re-resolves
// both neighbors.
type Chain struct {
	reg     *Registry
	width   float64
	opts    []Option
	segs    []*ROI
	handles []*Handle // len(segs)+1; handles[i] joins segs[i-1] and segs[i]
}

// NewChain creates a chain through points, each segment width units wide.
// opts are applied to every segment. A chain needs at least two points and
// consecutive points must differ.
func NewChain(reg *Registry, points []Vec2, width float64, opts ...Option) *Chain {
	if len(points) < 2 {
		breach("NewChain", "need at least 2 points, got %d", len(points))
	}
	for i := 1; i < len(points); i++ {
		checkSegment("NewChain", points[i-1], points[i])
	}
	c := &Chain{reg: reg, width: width, opts: opts}
	c.handles = append(c.handles, nil)
	for i := 1; i < len(points); i++ {
		seg := c.newSegment(points[i-1], points[i], c.handles[i-1], nil)
		if i == 1 {
			c.handles[0] = seg.handles[0].handle
		}
		c.segs = append(c.segs, seg)
		c.handles = append(c.handles, seg.handles[1].handle)
	}
	return c
}

// checkSegment rejects a zero-length segment: its scale-rotate handles would
// sit on their own pivots and could never be dragged.
func checkSegment(op string, a, b Vec2) {
	if b.Sub(a).Length() < minSegmentLength {
		breach(op, "coincident points %v and %v", a, b)
	}
}

// fitSegment returns the state of a segment running from a to b.
func fitSegment(a, b Vec2, width float64) ShapeState {
	d := b.Sub(a)
	angle := math.Atan2(d.Y, d.X) * 180 / math.Pi
	return ShapeState{
		Pos:   a.Sub(Rotation(angle).ApplyVector(Vec2{0, width / 2})),
		Size:  Vec2{d.Length(), width},
		Angle: angle,
	}
}

// newSegment creates a segment from a to b. head and tail are attached when
// non-nil and created otherwise.
func (c *Chain) newSegment(a, b Vec2, head, tail *Handle) *ROI {
	seg := c.reg.NewROI(fitSegment(a, b, c.width), c.opts...)
	if head == nil {
		seg.AddScaleRotateHandle(segmentHead, segmentTail)
	} else {
		seg.AttachHandle(head, segmentHead, segmentTail)
	}
	if tail == nil {
		seg.AddScaleRotateHandle(segmentTail, segmentHead)
	} else {
		seg.AttachHandle(tail, segmentTail, segmentHead)
	}
	return seg
}

// AddSegment appends a segment from the current last point to pos and
// returns it. pos must differ from the last point.
func (c *Chain) AddSegment(pos Vec2) *ROI {
	last := c.handles[len(c.handles)-1]
	a := c.point(len(c.handles) - 1)
	checkSegment("AddSegment", a, pos)
	seg := c.newSegment(a, pos, last, nil)
	c.segs = append(c.segs, seg)
	c.handles = append(c.handles, seg.handles[1].handle)
	return seg
}

// RemoveSegment removes segment i. An end segment takes its outer handle
// with it. A middle segment's head handle is dropped and its tail handle is
// reassigned to the previous segment, which is refitted to reach it.
// Removing the sole segment, or a middle segment whose neighbors' outer
// points coincide, is a programming error.
func (c *Chain) RemoveSegment(i int) {
	if len(c.segs) == 1 {
		breach("RemoveSegment", "cannot remove the only segment")
	}
	if i < 0 || i >= len(c.segs) {
		breach("RemoveSegment", "segment %d out of range [0,%d)", i, len(c.segs))
	}
	seg := c.segs[i]
	switch {
	case i == 0:
		c.reg.Remove(seg)
		c.handles = c.handles[1:]
	case i == len(c.segs)-1:
		c.reg.Remove(seg)
		c.handles = c.handles[:i+1]
	default:
		prev := c.segs[i-1]
		a, b := c.point(i-1), c.point(i+1)
		checkSegment("RemoveSegment", a, b)
		tail := c.handles[i+1]
		c.reg.Remove(seg)
		prev.RemoveHandle(c.handles[i])
		prev.SetState(fitSegment(a, b, c.width))
		prev.AttachHandle(tail, segmentTail, segmentHead)
		c.handles = slices.Delete(c.handles, i, i+1)
	}
	c.segs = slices.Delete(c.segs, i, i+1)
}

// SplitSegment inserts a vertex at pos into segment i, which becomes two
// segments meeting at a new shared handle. It returns the new segment, which
// follows segment i. pos must differ from both ends of segment i.
func (c *Chain) SplitSegment(i int, pos Vec2) *ROI {
	if i < 0 || i >= len(c.segs) {
		breach("SplitSegment", "segment %d out of range [0,%d)", i, len(c.segs))
	}
	seg := c.segs[i]
	a, b := c.point(i), c.point(i+1)
	checkSegment("SplitSegment", a, pos)
	checkSegment("SplitSegment", pos, b)
	tail := c.handles[i+1]

	// Attach tail to the new segment first so it never loses all owners.
	next := c.newSegment(pos, b, nil, tail)
	mid := next.handles[0].handle
	seg.RemoveHandle(tail)
	seg.SetState(fitSegment(a, pos, c.width))
	seg.AttachHandle(mid, segmentTail, segmentHead)

	c.segs = slices.Insert(c.segs, i+1, next)
	c.handles = slices.Insert(c.handles, i+1, mid)
	return next
}

// Remove removes every segment and handle of the chain from the registry.
func (c *Chain) Remove() {
	for _, seg := range c.segs {
		c.reg.Remove(seg)
	}
	c.segs = nil
	c.handles = nil
}

// Width returns the segment width.
func (c *Chain) Width() float64 { return c.width }

// Len returns the number of segments.
func (c *Chain) Len() int { return len(c.segs) }

// Segments returns the segments in path order.
func (c *Chain) Segments() []*ROI { return slices.Clone(c.segs) }

// Handles returns the vertex handles in path order.
func (c *Chain) Handles() []*Handle { return slices.Clone(c.handles) }

// Points returns the vertex positions in parent coordinates.
func (c *Chain) Points() []Vec2 {
	out := make([]Vec2, len(c.handles))
	for i := range c.handles {
		out[i] = c.point(i)
	}
	return out
}

// point returns vertex i as seen by the segment that ends there, or by the
// first segment for vertex 0.
func (c *Chain) point(i int) Vec2 {
	seg := c.segs[0]
	if i > 0 {
		seg = c.segs[i-1]
	}
	p, _ := seg.HandlePos(c.handles[i], FrameParent)
	return p
}
