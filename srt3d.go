package roi

import "math"

// rotationAxisTolerance bounds |det(R - I)| for a linear part to count as a
// rotation with an eigenvalue of 1.
const rotationAxisTolerance = 1e-6

// Matrix4 is a 3D affine matrix in row-major order with the translation in
// the last column. The bottom row is expected to be (0, 0, 0, 1).
type Matrix4 [16]float64

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 {
	return Matrix4{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
}

// at returns the element at row r, column c.
func (m Matrix4) at(r, c int) float64 { return m[r*4+c] }

// Multiply returns m * o.
func (m Matrix4) Multiply(o Matrix4) Matrix4 {
	var out Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m.at(r, k) * o.at(k, c)
			}
			out[r*4+c] = sum
		}
	}
	return out
}

// Apply transforms the point p.
func (m Matrix4) Apply(p Vec3) Vec3 {
	return Vec3{
		m[0]*p.X + m[1]*p.Y + m[2]*p.Z + m[3],
		m[4]*p.X + m[5]*p.Y + m[6]*p.Z + m[7],
		m[8]*p.X + m[9]*p.Y + m[10]*p.Z + m[11],
	}
}

// AffineState3D is a scale/rotate/translate decomposition of a 3D affine
// transform. The rotation is Angle degrees about Axis.
type AffineState3D struct {
	Pos   Vec3    `json:"pos"`
	Scale Vec3    `json:"scale"`
	Angle float64 `json:"angle"`
	Axis  Vec3    `json:"axis"`
}

// rotation3 returns the 3x3 rotation of deg degrees about axis using
// Rodrigues' formula. A zero axis yields the identity.
func rotation3(deg float64, axis Vec3) [3][3]float64 {
	l := axis.Length()
	if l == 0 {
		return [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	}
	u := axis.Scale(1 / l)
	sin, cos := sincosDeg(deg)
	t := 1 - cos
	return [3][3]float64{
		{cos + u.X*u.X*t, u.X*u.Y*t - u.Z*sin, u.X*u.Z*t + u.Y*sin},
		{u.Y*u.X*t + u.Z*sin, cos + u.Y*u.Y*t, u.Y*u.Z*t - u.X*sin},
		{u.Z*u.X*t - u.Y*sin, u.Z*u.Y*t + u.X*sin, cos + u.Z*u.Z*t},
	}
}

// Compose3D builds T(pos) · R(angle, axis) · S(scale).
func Compose3D(s AffineState3D) Matrix4 {
	r := rotation3(s.Angle, s.Axis)
	sc := [3]float64{s.Scale.X, s.Scale.Y, s.Scale.Z}
	pos := [3]float64{s.Pos.X, s.Pos.Y, s.Pos.Z}
	var m Matrix4
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i*4+j] = r[i][j] * sc[j]
		}
		m[i*4+3] = pos[i]
	}
	m[15] = 1
	return m
}

func det3(a [3][3]float64) float64 {
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

// Decompose3D splits m into translation, axis-angle rotation and per-axis
// scale, following the same reflection rule as Decompose: a negative
// determinant always negates the second scale axis.
//
// The rotation axis is the eigenvector of eigenvalue 1 of the normalized
// linear part. The angle magnitude comes from trace = 1 + 2cos(θ); its sign
// is taken from the antisymmetric part at the off-diagonal element paired
// with the axis' dominant component. Matrices without an eigenvalue near 1
// fail with ErrNoRotationAxis.
func Decompose3D(m Matrix4) (AffineState3D, error) {
	s := AffineState3D{
		Pos:  Vec3{m.at(0, 3), m.at(1, 3), m.at(2, 3)},
		Axis: Vec3{0, 0, 1},
	}
	var cols [3]Vec3
	for j := 0; j < 3; j++ {
		cols[j] = Vec3{m.at(0, j), m.at(1, j), m.at(2, j)}
	}
	scale := [3]float64{cols[0].Length(), cols[1].Length(), cols[2].Length()}
	s.Scale = Vec3{scale[0], scale[1], scale[2]}
	if scale[0] == 0 || scale[1] == 0 || scale[2] == 0 {
		return s, &DecompositionError{Residual: residual3(m, s), Err: ErrDegenerate}
	}

	var lin [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			lin[i][j] = m.at(i, j)
		}
	}
	if det3(lin) < 0 {
		scale[1] = -scale[1]
		s.Scale.Y = scale[1]
	}

	var r [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = lin[i][j] / scale[j]
		}
	}

	a := r
	for i := 0; i < 3; i++ {
		a[i][i]--
	}
	if math.Abs(det3(a)) > rotationAxisTolerance {
		return s, &DecompositionError{Residual: residual3(m, s), Err: ErrNoRotationAxis}
	}

	cos := (r[0][0] + r[1][1] + r[2][2] - 1) * 0.5
	cos = math.Max(-1, math.Min(1, cos))

	// The null space of R - I is spanned by the largest cross product of
	// two of its rows.
	rows := [3]Vec3{
		{a[0][0], a[0][1], a[0][2]},
		{a[1][0], a[1][1], a[1][2]},
		{a[2][0], a[2][1], a[2][2]},
	}
	var axis Vec3
	var best float64
	for _, pair := range [3][2]int{{0, 1}, {0, 2}, {1, 2}} {
		c := rows[pair[0]].Cross(rows[pair[1]])
		if l := c.Length(); l > best {
			best, axis = l, c
		}
	}
	if best < 1e-12 {
		// R is the identity.
		return s, checkShear3(m, s, cols, scale)
	}
	axis = axis.Scale(1 / best)

	comps := [3]float64{axis.X, axis.Y, axis.Z}
	dom := 0
	for i := 1; i < 3; i++ {
		if math.Abs(comps[i]) > math.Abs(comps[dom]) {
			dom = i
		}
	}
	pairs := [3]struct {
		r, c int
		sign float64
	}{
		{1, 2, -1},
		{0, 2, 1},
		{0, 1, -1},
	}
	p := pairs[dom]
	sin := (r[p.r][p.c] - r[p.c][p.r]) / (2 * p.sign * comps[dom])

	s.Angle = math.Atan2(sin, cos) * 180 / math.Pi
	if s.Angle != 0 {
		s.Axis = axis
	}
	return s, checkShear3(m, s, cols, scale)
}

func checkShear3(m Matrix4, s AffineState3D, cols [3]Vec3, scale [3]float64) error {
	for _, pair := range [3][2]int{{0, 1}, {0, 2}, {1, 2}} {
		i, j := pair[0], pair[1]
		if math.Abs(cols[i].Dot(cols[j])/(scale[i]*scale[j])) > shearTolerance {
			return &DecompositionError{Residual: residual3(m, s), Err: ErrShear}
		}
	}
	return nil
}

// residual3 returns the largest absolute element difference between
// Compose3D(s) and m.
func residual3(m Matrix4, s AffineState3D) float64 {
	c := Compose3D(s)
	var r float64
	for i := range m {
		r = math.Max(r, math.Abs(c[i]-m[i]))
	}
	return r
}
