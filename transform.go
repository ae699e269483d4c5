package roi

import "math"

// Matrix is a 2D affine matrix stored as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
//
// Points are column vectors, so m.Multiply(o) applies o first and m second.
type Matrix [6]float64

// identityMatrix is the identity affine matrix.
var identityMatrix = Matrix{1, 0, 0, 1, 0, 0}

// Identity returns the identity matrix.
func Identity() Matrix { return identityMatrix }

// Translation returns a matrix translating by (tx, ty).
func Translation(tx, ty float64) Matrix { return Matrix{1, 0, 0, 1, tx, ty} }

// Scaling returns a matrix scaling by (sx, sy).
func Scaling(sx, sy float64) Matrix { return Matrix{sx, 0, 0, sy, 0, 0} }

// Rotation returns a matrix rotating by deg degrees. Positive angles rotate
// +X toward +Y.
func Rotation(deg float64) Matrix {
	sin, cos := sincosDeg(deg)
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// sincosDeg returns exact values for multiples of 90 degrees so that
// quarter-turn rotations do not accumulate noise.
func sincosDeg(deg float64) (sin, cos float64) {
	r := math.Mod(deg, 360)
	if r < 0 {
		r += 360
	}
	switch r {
	case 0:
		return 0, 1
	case 90:
		return 1, 0
	case 180:
		return 0, -1
	case 270:
		return -1, 0
	}
	return math.Sincos(deg * math.Pi / 180)
}

// Multiply returns m * o.
func (m Matrix) Multiply(o Matrix) Matrix {
	return Matrix{
		m[0]*o[0] + m[2]*o[1],
		m[1]*o[0] + m[3]*o[1],
		m[0]*o[2] + m[2]*o[3],
		m[1]*o[2] + m[3]*o[3],
		m[0]*o[4] + m[2]*o[5] + m[4],
		m[1]*o[4] + m[3]*o[5] + m[5],
	}
}

// Det returns the determinant of the linear part of m.
func (m Matrix) Det() float64 {
	return m[0]*m[3] - m[2]*m[1]
}

// Invert returns the inverse of m.
// Returns the identity matrix if m is singular (determinant ≈ 0).
func (m Matrix) Invert() Matrix {
	det := m.Det()
	if det > -1e-12 && det < 1e-12 {
		return identityMatrix
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Matrix{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// Apply transforms the point p.
func (m Matrix) Apply(p Vec2) Vec2 {
	return Vec2{m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]}
}

// ApplyVector transforms the direction v, ignoring translation.
func (m Matrix) ApplyVector(v Vec2) Vec2 {
	return Vec2{m[0]*v.X + m[2]*v.Y, m[1]*v.X + m[3]*v.Y}
}

// MapRect transforms r and returns the axis-aligned bounding box of the result.
func (m Matrix) MapRect(r Rect) Rect {
	corners := r.Corners()
	p := m.Apply(corners[0])
	minX, maxX, minY, maxY := p.X, p.X, p.Y, p.Y
	for _, c := range corners[1:] {
		p = m.Apply(c)
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// ApproxEqual reports whether every element of m and o differs by at most eps.
func (m Matrix) ApproxEqual(o Matrix, eps float64) bool {
	for i := range m {
		if math.Abs(m[i]-o[i]) > eps {
			return false
		}
	}
	return true
}

// IsIdentity reports whether m is the identity matrix (within 1e-10).
func (m Matrix) IsIdentity() bool {
	return m.ApproxEqual(identityMatrix, 1e-10)
}
