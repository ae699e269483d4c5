package roi

import (
	"fmt"
	"math"
)

// ShapeState is the geometry of one ROI: origin in parent coordinates, size
// and rotation in degrees about the origin. Size components may be negative
// when the ROI is invertible.
type ShapeState struct {
	Pos   Vec2    `json:"pos"`
	Size  Vec2    `json:"size"`
	Angle float64 `json:"angle"`
}

// Transform returns the local-to-parent matrix T(pos) · R(angle). Local
// coordinates are unscaled: the shape spans (0,0)..size.
func (s ShapeState) Transform() Matrix {
	sin, cos := sincosDeg(s.Angle)
	return Matrix{cos, sin, -sin, cos, s.Pos.X, s.Pos.Y}
}

// Affine returns the exact AffineState mapping the normalized unit square
// onto the shape: scale equals size.
func (s ShapeState) Affine() AffineState {
	return AffineState{Pos: s.Pos, Scale: s.Size, Angle: s.Angle}
}

// ShapeFromAffine is the inverse of ShapeState.Affine.
func ShapeFromAffine(a AffineState) ShapeState {
	return ShapeState{Pos: a.Pos, Size: a.Scale, Angle: a.Angle}
}

// MapToParent maps a local point into parent coordinates.
func (s ShapeState) MapToParent(p Vec2) Vec2 {
	return s.Transform().Apply(p)
}

// MapFromParent maps a parent point into local coordinates.
func (s ShapeState) MapFromParent(p Vec2) Vec2 {
	return s.Transform().Invert().Apply(p)
}

// LocalRect returns the shape's rectangle in local coordinates, normalized
// so width and height are non-negative.
func (s ShapeState) LocalRect() Rect {
	return Rect{Width: s.Size.X, Height: s.Size.Y}.Normalized()
}

// ParentBounds returns the axis-aligned bounding box of the shape in parent
// coordinates.
func (s ShapeState) ParentBounds() Rect {
	return s.Transform().MapRect(s.LocalRect())
}

// Equal reports whether every field of s and o is identical.
func (s ShapeState) Equal(o ShapeState) bool {
	return s == o
}

// valid reports whether every component is finite.
func (s ShapeState) valid() bool {
	for _, v := range [5]float64{s.Pos.X, s.Pos.Y, s.Size.X, s.Size.Y, s.Angle} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Map returns the state as a key-value map suitable for persistence:
// "pos" and "size" hold two-element slices, "angle" a float64.
func (s ShapeState) Map() map[string]any {
	return map[string]any{
		"pos":   []float64{s.Pos.X, s.Pos.Y},
		"size":  []float64{s.Size.X, s.Size.Y},
		"angle": s.Angle,
	}
}

// StateFromMap parses a map produced by ShapeState.Map, or decoded from JSON
// or TOML into map[string]any. Missing keys keep their zero value.
func StateFromMap(m map[string]any) (ShapeState, error) {
	var s ShapeState
	var err error
	if v, ok := m["pos"]; ok {
		if s.Pos, err = vec2FromAny(v); err != nil {
			return ShapeState{}, fmt.Errorf("parse state pos: %w", err)
		}
	}
	if v, ok := m["size"]; ok {
		if s.Size, err = vec2FromAny(v); err != nil {
			return ShapeState{}, fmt.Errorf("parse state size: %w", err)
		}
	}
	if v, ok := m["angle"]; ok {
		if s.Angle, err = floatFromAny(v); err != nil {
			return ShapeState{}, fmt.Errorf("parse state angle: %w", err)
		}
	}
	if !s.valid() {
		return ShapeState{}, fmt.Errorf("parse state: non-finite value in %v", m)
	}
	return s, nil
}

func vec2FromAny(v any) (Vec2, error) {
	var xs []any
	switch t := v.(type) {
	case []float64:
		if len(t) != 2 {
			return Vec2{}, fmt.Errorf("want 2 components, got %d", len(t))
		}
		return Vec2{t[0], t[1]}, nil
	case Vec2:
		return t, nil
	case []any:
		xs = t
	default:
		return Vec2{}, fmt.Errorf("unsupported type %T", v)
	}
	if len(xs) != 2 {
		return Vec2{}, fmt.Errorf("want 2 components, got %d", len(xs))
	}
	x, err := floatFromAny(xs[0])
	if err != nil {
		return Vec2{}, err
	}
	y, err := floatFromAny(xs[1])
	if err != nil {
		return Vec2{}, err
	}
	return Vec2{x, y}, nil
}

func floatFromAny(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	}
	return 0, fmt.Errorf("unsupported number type %T", v)
}
