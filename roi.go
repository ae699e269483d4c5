package roi

import "math"

// Vec2 is a 2D vector used for positions, sizes, offsets, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul returns the component-wise product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// Scale returns v scaled uniformly by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the 3D cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// AngleTo returns the signed angle in degrees that rotates v onto o, in
// (-180, 180]. Positive angles rotate +X toward +Y.
func (v Vec2) AngleTo(o Vec2) float64 {
	return math.Atan2(v.Cross(o), v.Dot(o)) * 180 / math.Pi
}

// Proj returns the projection of v onto o. Projecting onto a zero vector
// returns the zero vector.
func (v Vec2) Proj(o Vec2) Vec2 {
	l2 := o.Dot(o)
	if l2 == 0 {
		return Vec2{}
	}
	return o.Scale(v.Dot(o) / l2)
}

// Snap rounds both components to the nearest multiple of step.
// A non-positive step returns v unchanged.
func (v Vec2) Snap(step float64) Vec2 {
	return Vec2{snap(v.X, step), snap(v.Y, step)}
}

// snap rounds x to the nearest multiple of step. A non-positive step
// disables snapping.
func snap(x, step float64) float64 {
	if step <= 0 {
		return x
	}
	return math.Round(x/step) * step
}

// Vec3 is a 3D vector used by the 3D SRT decomposition.
type Vec3 struct {
	X, Y, Z float64
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{v.Y*o.Z - v.Z*o.Y, v.Z*o.X - v.X*o.Z, v.X*o.Y - v.Y*o.X}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Scale returns v scaled uniformly by s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// boundsEpsilon absorbs floating point noise from rotations when testing
// containment against a bounding region.
const boundsEpsilon = 1e-9

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ContainsRect reports whether o lies entirely inside r. Shared edges count
// as inside.
func (r Rect) ContainsRect(o Rect) bool {
	r, o = r.Normalized(), o.Normalized()
	return o.X >= r.X-boundsEpsilon && o.Y >= r.Y-boundsEpsilon &&
		o.X+o.Width <= r.X+r.Width+boundsEpsilon &&
		o.Y+o.Height <= r.Y+r.Height+boundsEpsilon
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Normalized returns r with non-negative width and height.
func (r Rect) Normalized() Rect {
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
	return r
}

// Corners returns the four corners in order (x,y), (x+w,y), (x+w,y+h), (x,y+h).
func (r Rect) Corners() [4]Vec2 {
	return [4]Vec2{
		{r.X, r.Y},
		{r.X + r.Width, r.Y},
		{r.X + r.Width, r.Y + r.Height},
		{r.X, r.Y + r.Height},
	}
}

// KeyModifiers is a bitmask of keyboard modifier keys held during a drag
// sample. Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key; enables snapping
	ModAlt                            // Alt / Option key; locks aspect on scale drags
	ModMeta                           // Meta / Command / Windows key
)

// HandleRole selects how dragging a handle changes its owner's geometry.
type HandleRole uint8

const (
	RoleTranslate   HandleRole = iota // moves the whole shape
	RoleFree                          // moves only the handle itself
	RoleScale                         // scales about the handle's center
	RoleRotate                        // rotates about the handle's center
	RoleScaleRotate                   // rotates and scales along one axis about the center
	RoleRotateFree                    // rotates about the center; handle follows the pointer
)

var roleNames = [...]string{"translate", "free", "scale", "rotate", "scale-rotate", "rotate-free"}

func (r HandleRole) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return "unknown"
}

// hasCenter reports whether the role pivots around a center point.
func (r HandleRole) hasCenter() bool {
	switch r {
	case RoleScale, RoleRotate, RoleScaleRotate, RoleRotateFree:
		return true
	}
	return false
}

// Frame identifies the coordinate frame a drag position is expressed in.
type Frame uint8

const (
	FrameParent Frame = iota // the owning ROI's parent coordinates
	FrameScene               // scene coordinates, mapped through the parent transform
)

// Phase tags a drag sample's place within a gesture.
type Phase uint8

const (
	PhaseStart  Phase = iota // first sample of a gesture; snapshots the pre-move state
	PhaseUpdate              // intermediate sample carrying a new position
	PhaseFinish              // release; commits the gesture
	PhaseCancel              // abort; restores the pre-move state
)

// EventType identifies a phase of the change notification protocol.
type EventType uint8

const (
	EventStarted  EventType = iota // fires once when a gesture begins
	EventChanging                  // fires for each accepted, uncommitted change
	EventFinished                  // fires once when a change is committed or cancelled
)

var eventNames = [...]string{"started", "changing", "finished"}

func (e EventType) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "unknown"
}
