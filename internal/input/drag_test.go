package input

import (
	"math"
	"testing"
	"time"
)

func TestDragPositionFollowsPointer(t *testing.T) {
	st := newState(t)
	d := NewDrag()

	d.Begin(500, t0, st)
	d.Move(440, t0.Add(16*time.Millisecond), st)

	if st.Position != 90 {
		t.Errorf("Position = %v, want 90", st.Position)
	}
	if st.Target != st.Position {
		t.Errorf("Target = %v, want %v", st.Target, st.Position)
	}
}

func TestDragWrapsBackwards(t *testing.T) {
	st := newState(t)
	d := NewDrag()

	d.Begin(100, t0, st)
	d.Move(200, t0.Add(10*time.Millisecond), st)

	// 0 + (100-200)*1.5 = -150 → 2100-150
	if st.Position != 1950 {
		t.Errorf("Position = %v, want 1950", st.Position)
	}
}

func TestDragBeginDampsMomentum(t *testing.T) {
	st := newState(t)
	st.Velocity = 20
	st.Target = st.Position + 300
	d := NewDrag()

	d.Begin(0, t0, st)

	if st.Velocity != 6 {
		t.Errorf("Velocity = %v, want 6", st.Velocity)
	}
	if st.Target != st.Position {
		t.Errorf("Target = %v, want collapsed to %v", st.Target, st.Position)
	}
	if !d.Active() {
		t.Error("drag should be active")
	}
}

func TestDragVelocityDoesNotApplyWhileDragging(t *testing.T) {
	st := newState(t)
	d := NewDrag()

	d.Begin(500, t0, st)
	v := st.Velocity
	d.Move(300, t0.Add(5*time.Millisecond), st)

	if st.Velocity != v {
		t.Errorf("velocity changed during drag: %v -> %v", v, st.Velocity)
	}
}

func TestDragReleaseAveragesRecentSamples(t *testing.T) {
	st := newState(t)
	d := NewDrag()

	d.Begin(500, t0, st)
	now := t0
	y := 500.0
	// Six moves of 10px per 10ms each sample 10/10*40 = 40.
	// A first slow sample is pushed out of the five-sample window.
	now = now.Add(100 * time.Millisecond)
	y -= 1
	d.Move(y, now, st)
	for i := 0; i < 6; i++ {
		now = now.Add(10 * time.Millisecond)
		y -= 10
		d.Move(y, now, st)
	}
	if d.Samples() != DragHistory {
		t.Fatalf("Samples = %d, want %d", d.Samples(), DragHistory)
	}

	d.End(st)

	if math.Abs(st.Velocity-28) > 1e-9 {
		t.Errorf("release velocity = %v, want 40*0.7 = 28", st.Velocity)
	}
	if d.Active() {
		t.Error("drag should have ended")
	}
}

func TestDragReleaseClamp(t *testing.T) {
	st := newState(t)
	d := NewDrag()

	d.Begin(500, t0, st)
	// 100px within the 1ms floor: 100/1*40 = 4000
	d.Move(400, t0, st)
	d.End(st)

	if st.Velocity != 50 {
		t.Errorf("release velocity = %v, want 50", st.Velocity)
	}
}

func TestDragReleaseWithoutMovementKeepsVelocity(t *testing.T) {
	st := newState(t)
	st.Velocity = 10
	d := NewDrag()

	d.Begin(500, t0, st)
	d.End(st)

	if st.Velocity != 3 {
		t.Errorf("velocity = %v, want damped 3", st.Velocity)
	}
}

func TestDragMoveWithoutBeginIsIgnored(t *testing.T) {
	st := newState(t)
	d := NewDrag()

	d.Move(10, t0, st)
	d.End(st)

	if st.Position != 0 || st.Velocity != 0 {
		t.Errorf("state changed without an active drag: %+v", *st)
	}
}

func TestRingMean(t *testing.T) {
	r := NewRing(3)
	if r.Mean() != 0 {
		t.Errorf("empty mean = %v", r.Mean())
	}
	for _, v := range []float64{1, 2, 3, 4} {
		r.Push(v)
	}
	if r.Len() != 3 {
		t.Errorf("Len = %d, want 3", r.Len())
	}
	if r.Mean() != 3 {
		t.Errorf("Mean = %v, want 3", r.Mean())
	}
	r.Reset()
	if r.Len() != 0 {
		t.Errorf("Len after Reset = %d", r.Len())
	}
}
