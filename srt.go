package roi

import "math"

// shearTolerance is the largest normalized dot product between the two
// basis columns that still counts as orthogonal.
const shearTolerance = 1e-9

// AffineState is a scale/rotate/translate decomposition of a 2D affine
// transform. Angle is in degrees.
type AffineState struct {
	Pos   Vec2    `json:"pos"`
	Scale Vec2    `json:"scale"`
	Angle float64 `json:"angle"`
}

// IdentityState returns the state whose composed matrix is the identity.
func IdentityState() AffineState {
	return AffineState{Scale: Vec2{1, 1}}
}

// Compose builds the matrix T(pos) · R(angle) · S(scale). The order is fixed:
// scale is applied first, then rotation, then translation.
func Compose(s AffineState) Matrix {
	sin, cos := sincosDeg(s.Angle)
	return Matrix{
		cos * s.Scale.X,
		sin * s.Scale.X,
		-sin * s.Scale.Y,
		cos * s.Scale.Y,
		s.Pos.X,
		s.Pos.Y,
	}
}

// Decompose splits m into translation, rotation and per-axis scale.
//
// Scale is the length of each basis column. When m contains a reflection
// (negative determinant) the second axis is always the one made negative, so
// a reflection and a 180° rotation are never confused and the result depends
// only on m.
//
// A matrix with shear or a zero-length column still yields the closest state,
// together with a *DecompositionError.
func Decompose(m Matrix) (AffineState, error) {
	col0 := Vec2{m[0], m[1]}
	col1 := Vec2{m[2], m[3]}
	sx, sy := col0.Length(), col1.Length()

	s := AffineState{Pos: Vec2{m[4], m[5]}, Scale: Vec2{sx, sy}}

	if sx == 0 || sy == 0 {
		switch {
		case sx != 0:
			s.Angle = math.Atan2(col0.Y, col0.X) * 180 / math.Pi
		case sy != 0:
			s.Angle = math.Atan2(-col1.X, col1.Y) * 180 / math.Pi
		}
		return s, &DecompositionError{Residual: Residual(m, s), Err: ErrDegenerate}
	}

	if m.Det() < 0 {
		s.Scale.Y = -sy
	}
	s.Angle = math.Atan2(col0.Y, col0.X) * 180 / math.Pi

	if math.Abs(col0.Dot(col1))/(sx*sy) > shearTolerance {
		return s, &DecompositionError{Residual: Residual(m, s), Err: ErrShear}
	}
	return s, nil
}

// Residual returns the largest absolute element difference between
// Compose(s) and m.
func Residual(m Matrix, s AffineState) float64 {
	c := Compose(s)
	var r float64
	for i := range m {
		r = math.Max(r, math.Abs(c[i]-m[i]))
	}
	return r
}

// Divide returns the relative transform that carries b onto a: the state d
// for which Multiply(b, d) equals a. It answers "how far has this shape moved
// since it was grabbed" independent of absolute coordinates.
func Divide(a, b AffineState) (AffineState, error) {
	return Decompose(Compose(a).Multiply(Compose(b).Invert()))
}

// Multiply applies a first and then b, returning the combined state.
func Multiply(a, b AffineState) (AffineState, error) {
	return Decompose(Compose(b).Multiply(Compose(a)))
}

// Map transforms p by the composed state.
func (s AffineState) Map(p Vec2) Vec2 {
	return Compose(s).Apply(p)
}

// ApproxEqual reports whether position and scale differ by at most eps and the
// angles by at most angleEps degrees (modulo 360).
func (s AffineState) ApproxEqual(o AffineState, eps, angleEps float64) bool {
	if math.Abs(s.Pos.X-o.Pos.X) > eps || math.Abs(s.Pos.Y-o.Pos.Y) > eps ||
		math.Abs(s.Scale.X-o.Scale.X) > eps || math.Abs(s.Scale.Y-o.Scale.Y) > eps {
		return false
	}
	return math.Abs(angleDiff(s.Angle, o.Angle)) <= angleEps
}

// angleDiff returns a-b wrapped into [-180, 180).
func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b+180, 360)
	if d < 0 {
		d += 360
	}
	return d - 180
}
