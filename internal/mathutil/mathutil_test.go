package mathutil

import (
	"math"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		v, m, want float64
	}{
		{0, 10, 0},
		{10, 10, 0},
		{-1, 10, 9},
		{25, 10, 5},
		{-100, 2100, 2000},
	}
	for _, tt := range tests {
		if got := Wrap(tt.v, tt.m); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Wrap(%v, %v) = %v, want %v", tt.v, tt.m, got, tt.want)
		}
	}
	if got := Wrap(-1e-18, 2100); got < 0 || got >= 2100 {
		t.Errorf("Wrap(-tiny) = %v, outside [0, 2100)", got)
	}
}

func TestSignClamp(t *testing.T) {
	if Sign(-3) != -1 || Sign(0) != 0 || Sign(2) != 1 {
		t.Error("Sign")
	}
	if ClampAbs(-40, 35) != -35 || ClampAbs(12, 35) != 12 {
		t.Error("ClampAbs")
	}
	if Clamp(11, 0, 10) != 10 || Clamp(-1, 0, 10) != 0 {
		t.Error("Clamp")
	}
	if Lerp(2, 4, 0.5) != 3 {
		t.Error("Lerp")
	}
}

func TestProjectCentre(t *testing.T) {
	m := Mat4Mul(Perspective(Deg2Rad(50), 1, 0.1, 1000), Translation(Vec3{0, 0, -5}))
	p, ok := m.Project(Vec3{0, 0, 0})
	if !ok {
		t.Fatal("origin should be in front of the camera")
	}
	if math.Abs(p[0]) > 1e-12 || math.Abs(p[1]) > 1e-12 {
		t.Errorf("origin projected to %v, want screen centre", p)
	}
	if _, ok := m.Project(Vec3{0, 0, 6}); ok {
		t.Error("point behind the camera should not project")
	}
}

func TestProjectEdge(t *testing.T) {
	// At distance d the half-height visible is d*tan(fov/2).
	fov := Deg2Rad(50)
	m := Mat4Mul(Perspective(fov, 1, 0.1, 1000), Translation(Vec3{0, 0, -5}))
	p, _ := m.Project(Vec3{0, 5 * math.Tan(fov/2), 0})
	if math.Abs(p[1]-1) > 1e-9 {
		t.Errorf("top edge projected to y=%v, want 1", p[1])
	}
}

func TestIntersectPlaneZ(t *testing.T) {
	r := Ray{Origin: Vec3{0, 0, 5}, Dir: Vec3{0, 0, -1}}
	d, ok := r.IntersectPlaneZ(0)
	if !ok || d != 5 {
		t.Fatalf("got %v %v", d, ok)
	}
	if r.At(d) != (Vec3{0, 0, 0}) {
		t.Errorf("At = %v", r.At(d))
	}
	if _, ok := (Ray{Origin: Vec3{0, 0, 5}, Dir: Vec3{1, 0, 0}}).IntersectPlaneZ(0); ok {
		t.Error("parallel ray should miss")
	}
	if _, ok := (Ray{Origin: Vec3{0, 0, 5}, Dir: Vec3{0, 0, 1}}).IntersectPlaneZ(0); ok {
		t.Error("ray pointing away should miss")
	}
}
