package motion

import (
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"
)

const loop = 70 * 30

func TestNewRejectsEmptyLoop(t *testing.T) {
	for _, h := range []float64{0, -10, math.NaN(), math.Inf(1)} {
		if _, err := New(h); !errors.Is(err, ErrEmptyLoop) {
			t.Errorf("New(%v) error = %v, want ErrEmptyLoop", h, err)
		}
	}
}

func TestFrameDeltaCapsStalls(t *testing.T) {
	cases := []struct {
		elapsed time.Duration
		want    float64
	}{
		{0, 0},
		{8 * time.Millisecond, 0.5},
		{16 * time.Millisecond, 1},
		{32 * time.Millisecond, 2},
		{5 * time.Second, 2},
		{-time.Millisecond, 0},
	}
	for _, c := range cases {
		if got := FrameDelta(c.elapsed); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("FrameDelta(%v) = %v, want %v", c.elapsed, got, c.want)
		}
	}
}

func TestAdvanceSingleStep(t *testing.T) {
	s, _ := New(loop)
	s.Velocity = 10

	s.Advance(16 * time.Millisecond)

	// velocity 10 → 9.5, target 9.5, position 9.5*0.06
	if math.Abs(s.Velocity-9.5) > 1e-12 {
		t.Errorf("Velocity = %v, want 9.5", s.Velocity)
	}
	if math.Abs(s.Target-9.5) > 1e-12 {
		t.Errorf("Target = %v, want 9.5", s.Target)
	}
	if math.Abs(s.Position-0.57) > 1e-12 {
		t.Errorf("Position = %v, want 0.57", s.Position)
	}
}

func TestWrapInvariantUnderRandomMotion(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s, _ := New(loop)

	for i := 0; i < 20000; i++ {
		if i%25 == 0 {
			s.Velocity += (rng.Float64()*2 - 1) * 50
		}
		before := s.Offset()
		elapsed := time.Duration(rng.Intn(60)) * time.Millisecond
		s.Advance(elapsed)

		if s.Position < 0 || s.Position >= loop {
			t.Fatalf("step %d: position %v out of [0,%v)", i, s.Position, loop)
		}
		// Wrapping must not disturb the pending offset: only the eased
		// approach (and new velocity) changes it.
		want := (1 - approach) * (before + s.Velocity*FrameDelta(elapsed))
		if math.Abs(s.Offset()-want) > 1e-6 {
			t.Fatalf("step %d: offset %v, want %v", i, s.Offset(), want)
		}
	}
}

func TestWrapPreservesPendingOffset(t *testing.T) {
	s, _ := New(loop)
	s.Position = 5
	s.Target = -100

	s.Advance(0)

	// position: 5 + (-105)*0.06 = -1.3 → wraps to loop-1.3
	want := loop - 1.3
	if math.Abs(s.Position-want) > 1e-9 {
		t.Fatalf("Position = %v, want %v", s.Position, want)
	}
	if math.Abs(s.Offset()-(-98.7)) > 1e-9 {
		t.Errorf("Offset = %v, want -98.7 (unchanged by the wrap)", s.Offset())
	}
}

func TestWrapUpperBoundIsExclusive(t *testing.T) {
	s, _ := New(loop)
	s.Position = loop
	s.Target = loop

	s.Advance(0)

	if s.Position != 0 || s.Target != 0 {
		t.Errorf("Position, Target = %v, %v; want 0, 0", s.Position, s.Target)
	}
}

func TestSetPositionWrapsAndCollapsesTarget(t *testing.T) {
	s, _ := New(loop)
	s.Target = 400

	s.SetPosition(-90)

	if s.Position != loop-90 {
		t.Errorf("Position = %v, want %v", s.Position, loop-90)
	}
	if s.Offset() != 0 {
		t.Errorf("Offset = %v, want 0", s.Offset())
	}
}

func TestStopIsIdempotent(t *testing.T) {
	s, _ := New(loop)
	s.Velocity = 12
	s.Advance(16 * time.Millisecond)
	s.Advance(16 * time.Millisecond)

	s.Stop()
	first := *s
	s.Stop()

	if *s != first {
		t.Errorf("second Stop changed state: %+v vs %+v", *s, first)
	}
	if s.Velocity != 0 || s.Target != s.Position {
		t.Errorf("after Stop: velocity %v, target %v, position %v", s.Velocity, s.Target, s.Position)
	}
}
