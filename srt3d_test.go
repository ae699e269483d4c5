package roi

import (
	"errors"
	"math"
	"testing"
)

func TestCompose3DIdentity(t *testing.T) {
	s := AffineState3D{Scale: Vec3{1, 1, 1}, Axis: Vec3{0, 0, 1}}
	if got := Compose3D(s); got != Identity4() {
		t.Errorf("Compose3D(identity) = %v", got)
	}
}

func TestCompose3DApply(t *testing.T) {
	s := AffineState3D{Pos: Vec3{1, 2, 3}, Scale: Vec3{2, 2, 2}, Angle: 90, Axis: Vec3{0, 0, 1}}
	p := Compose3D(s).Apply(Vec3{1, 0, 0})
	// Scale to (2,0,0), rotate +X toward +Y to (0,2,0), translate.
	assertNear(t, "x", p.X, 1)
	assertNear(t, "y", p.Y, 4)
	assertNear(t, "z", p.Z, 3)
}

func TestDecompose3DRoundTrip(t *testing.T) {
	tests := []AffineState3D{
		{Pos: Vec3{1, 2, 3}, Scale: Vec3{2, 3, 4}, Angle: 40, Axis: Vec3{1.0 / 3, 2.0 / 3, 2.0 / 3}},
		{Pos: Vec3{-5, 0, 5}, Scale: Vec3{1, 1, 1}, Angle: 30, Axis: Vec3{0, 0, 1}},
		{Pos: Vec3{0, 0, 0}, Scale: Vec3{0.5, 2, 1}, Angle: -75, Axis: Vec3{1, 0, 0}},
		{Pos: Vec3{9, 9, 9}, Scale: Vec3{1, 2, 3}, Angle: 120, Axis: Vec3{0, 1, 0}},
		{Pos: Vec3{0, 1, 0}, Scale: Vec3{1, 1, 1}, Angle: 180, Axis: Vec3{1, 0, 0}},
	}
	for _, in := range tests {
		m := Compose3D(in)
		got, err := Decompose3D(m)
		if err != nil {
			t.Errorf("Decompose3D(%+v) error: %v", in, err)
			continue
		}
		if r := residual3(m, got); r > 1e-9 {
			t.Errorf("residual for %+v = %v (got %+v)", in, r, got)
		}
		if math.Abs(math.Abs(got.Angle)-math.Abs(in.Angle)) > angleEpsilon {
			t.Errorf("|angle| = %v, want %v", math.Abs(got.Angle), math.Abs(in.Angle))
		}
		assertNear(t, "axis length", got.Axis.Length(), 1)
	}
}

func TestDecompose3DZAxis(t *testing.T) {
	got, err := Decompose3D(Compose3D(AffineState3D{Scale: Vec3{1, 1, 1}, Angle: 30, Axis: Vec3{0, 0, 1}}))
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, "angle", got.Angle, 30)
	assertNear(t, "axis z", got.Axis.Z, 1)
}

func TestDecompose3DIdentityAxis(t *testing.T) {
	got, err := Decompose3D(Identity4())
	if err != nil {
		t.Fatal(err)
	}
	if got.Angle != 0 || got.Axis != (Vec3{0, 0, 1}) {
		t.Errorf("identity decomposed to angle %v axis %v", got.Angle, got.Axis)
	}
	if got.Scale != (Vec3{1, 1, 1}) {
		t.Errorf("scale = %v", got.Scale)
	}
}

func TestDecompose3DReflectionCanonicalAxis(t *testing.T) {
	for _, scale := range []Vec3{{-1, 1, 1}, {1, -1, 1}, {1, 1, -1}} {
		m := Compose3D(AffineState3D{Pos: Vec3{1, 1, 1}, Scale: scale, Angle: 25, Axis: Vec3{0, 0, 1}})
		got, err := Decompose3D(m)
		if err != nil {
			t.Fatalf("scale %v: %v", scale, err)
		}
		if got.Scale.X < 0 || got.Scale.Y > 0 || got.Scale.Z < 0 {
			t.Errorf("scale %v decomposed to %v, want negative Y only", scale, got.Scale)
		}
		if r := residual3(m, got); r > 1e-9 {
			t.Errorf("scale %v: residual %v", scale, r)
		}
	}
}

func TestDecompose3DNoRotationAxis(t *testing.T) {
	m := Matrix4{
		2, 1, 0, 0,
		0, 1, 1, 0,
		1, 0, 1, 0,
		0, 0, 0, 1,
	}
	_, err := Decompose3D(m)
	if !errors.Is(err, ErrNoRotationAxis) {
		t.Errorf("err = %v, want ErrNoRotationAxis", err)
	}
}

func TestDecompose3DDegenerate(t *testing.T) {
	m := Identity4()
	m[0] = 0
	_, err := Decompose3D(m)
	if !errors.Is(err, ErrDegenerate) {
		t.Errorf("err = %v, want ErrDegenerate", err)
	}
}

func TestDecompose3DShear(t *testing.T) {
	m := Identity4()
	m[1] = 0.5 // row 0, column 1
	_, err := Decompose3D(m)
	if !errors.Is(err, ErrShear) {
		t.Errorf("err = %v, want ErrShear", err)
	}
}
