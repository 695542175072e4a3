package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestProjectTranslateScale(t *testing.T) {
	m := Translate(10, 20, 30).Mul(Scale(2, 2, 2))
	got := m.Project(Vec3{1, 2, 3})
	want := Vec3{12, 24, 36}
	if got != want {
		t.Errorf("Project: got %v, want %v", got, want)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2))
	result := m.Project(Vec3{1, 0, 0})

	// (1,0,0) turns onto -Z
	if abs(result.X) > 0.001 || abs(result.Y) > 0.001 || abs(result.Z+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestRotateYKeepsRadius(t *testing.T) {
	p := Vec3{1.5, 0.3, -0.7}
	for _, angle := range []float32{0.1, 1, 2.5, -3} {
		got := RotateY(angle).Project(p)
		if abs(got.Radius()-p.Radius()) > 1e-5 {
			t.Errorf("RotateY(%v) changed radius: %v -> %v", angle, p.Radius(), got.Radius())
		}
		if got.Y != p.Y {
			t.Errorf("RotateY(%v) changed height: %v -> %v", angle, p.Y, got.Y)
		}
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1, 0.1, 100)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := Vec3{0, 2, 5}
	m := LookAt(eye, Vec3{}, Vec3{0, 1, 0})

	got := m.Project(eye)
	if got.Length() > 1e-5 {
		t.Errorf("LookAt should map eye to origin, got %v", got)
	}
	if m[15] != 1 {
		t.Errorf("LookAt [15] should be 1, got %f", m[15])
	}
}

func TestInverseRoundTrip(t *testing.T) {
	view := LookAt(Vec3{0, 1, 6}, Vec3{}, Vec3{0, 1, 0})
	proj := Perspective(float32(math.Pi/4), 16.0/9.0, 0.1, 100)
	vp := proj.Mul(view)
	inv := vp.Inverse()

	p := Vec3{0.4, -0.3, 1.2}
	back := inv.Project(vp.Project(p))
	if back.Distance(p) > 1e-3 {
		t.Errorf("inverse round trip: got %v, want %v", back, p)
	}
}

func TestInverseSingular(t *testing.T) {
	var zero Mat4
	if zero.Inverse() != Identity() {
		t.Error("singular matrix should invert to identity")
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
