package scene

import (
	"testing"

	"stretch-menu/internal/camera"
	"stretch-menu/internal/mathutil"
)

func testScene(ys ...float64) *Scene {
	s := &Scene{Camera: camera.New(1000, 800), Width: 1000, Height: 800}
	for i, y := range ys {
		s.Quads = append(s.Quads, Quad{
			Index:   i,
			Center:  mathutil.Vec3{0, y, 0},
			Width:   PlaneWidth,
			Height:  PlaneHeight,
			Stretch: 1,
		})
	}
	return s
}

func TestIntersectCentre(t *testing.T) {
	s := testScene(0, 3)
	idx, ok := s.Intersect(s.Camera.Ray(0, 0))
	if !ok || idx != 0 {
		t.Errorf("Intersect(centre) = %d, %v; want 0, true", idx, ok)
	}
}

func TestIntersectMiss(t *testing.T) {
	s := testScene(0)
	// Far right edge: the viewport is wider than the 5-unit plane.
	if idx, ok := s.Intersect(s.Camera.Ray(0.99, 0)); ok {
		t.Errorf("Intersect(edge) hit %d, want miss", idx)
	}
}

func TestIntersectOverlapPrefersFirst(t *testing.T) {
	s := testScene(0, 0.5)
	idx, ok := s.Intersect(s.Camera.Ray(0, 0.05))
	if !ok || idx != 0 {
		t.Errorf("overlapping quads hit %d, %v; want 0", idx, ok)
	}
}

func TestIntersectUsesUndeformedGeometry(t *testing.T) {
	s := testScene(0)
	s.Quads[0].Stretch = 5
	vp := s.Camera.Viewport()
	// 1.0 world units above centre is outside the 1.2-tall plane even
	// though the stretched quad would cover it on screen.
	ndcY := 1.0 / (vp.Height / 2)
	if _, ok := s.Intersect(s.Camera.Ray(0, ndcY)); ok {
		t.Error("stretch must not enlarge the hit area")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := testScene(0, 1)
	c := s.Clone()
	c.Quads[0].Stretch = 3
	if s.Quads[0].Stretch != 1 {
		t.Error("clone shares the quad slice")
	}
}
