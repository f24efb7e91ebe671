package input

import (
	"math"
	"testing"
	"time"

	"stretch-menu/internal/motion"
)

var t0 = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newState(t *testing.T) *motion.State {
	t.Helper()
	st, err := motion.New(70 * 30)
	if err != nil {
		t.Fatal(err)
	}
	return st
}

func TestWheelFastFirstEventClampsToMax(t *testing.T) {
	st := newState(t)
	w := NewWheel()

	// 120*2 = 240 accumulated, 240*0.156 = 37.44, 37.44^0.88 ≈ 24.3
	eased := Ease(240, true)
	if want := math.Pow(37.44, 0.88); math.Abs(eased-want) > 1e-9 {
		t.Fatalf("Ease(240, fast) = %v, want %v", eased, want)
	}

	w.Apply(120, t0, st)
	if math.Abs(st.Velocity-eased) > 1e-9 {
		t.Fatalf("velocity after one event = %v, want %v", st.Velocity, eased)
	}

	w.Apply(120, t0.Add(40*time.Millisecond), st)
	if st.Velocity != 35 {
		t.Errorf("velocity after two fast events = %v, want clamp 35", st.Velocity)
	}
}

func TestWheelSlowGestureClamp(t *testing.T) {
	st := newState(t)
	w := NewWheel()

	now := t0
	for i := 0; i < 20; i++ {
		w.Apply(-40, now, st)
		now = now.Add(30 * time.Millisecond)
	}
	if st.Velocity != -18 {
		t.Errorf("velocity = %v, want -18", st.Velocity)
	}
}

func TestWheelTimeWeight(t *testing.T) {
	cases := []struct {
		since time.Duration
		want  float64
	}{
		{0, 0},
		{8 * time.Millisecond, 0.5},
		{16 * time.Millisecond, 1},
		{time.Hour, 2},
	}
	for _, c := range cases {
		if got := TimeWeight(c.since); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("TimeWeight(%v) = %v, want %v", c.since, got, c.want)
		}
	}
}

func TestWheelBackToBackEventsCarryNoWeight(t *testing.T) {
	st := newState(t)
	w := NewWheel()

	w.Apply(10, t0, st)
	v := st.Velocity
	w.Apply(10, t0, st)

	if st.Velocity != v {
		t.Errorf("same-instant event changed velocity %v -> %v", v, st.Velocity)
	}
}

func TestWheelIdleTaperFiresOnce(t *testing.T) {
	st := newState(t)
	w := NewWheel()

	w.Apply(30, t0, st)
	v := st.Velocity

	if w.Poll(t0.Add(99*time.Millisecond), st) {
		t.Fatal("taper fired before the idle delay")
	}
	if !w.Poll(t0.Add(100*time.Millisecond), st) {
		t.Fatal("taper did not fire at the idle delay")
	}
	if math.Abs(st.Velocity-v*0.96) > 1e-12 {
		t.Errorf("velocity = %v, want %v", st.Velocity, v*0.96)
	}
	if w.Poll(t0.Add(time.Second), st) {
		t.Error("taper fired twice")
	}
}

func TestWheelIdleTaperIsRescheduledNotStacked(t *testing.T) {
	st := newState(t)
	w := NewWheel()

	w.Apply(30, t0, st)
	w.Apply(30, t0.Add(80*time.Millisecond), st)

	if w.Poll(t0.Add(120*time.Millisecond), st) {
		t.Fatal("first deadline should have been replaced")
	}
	v := st.Velocity
	if !w.Poll(t0.Add(180*time.Millisecond), st) {
		t.Fatal("rescheduled taper did not fire")
	}
	if w.Poll(t0.Add(400*time.Millisecond), st) {
		t.Error("taper stacked")
	}
	if math.Abs(st.Velocity-v*0.96) > 1e-12 {
		t.Errorf("velocity = %v, want a single taper of %v", st.Velocity, v)
	}
}

func TestWheelCancel(t *testing.T) {
	st := newState(t)
	w := NewWheel()

	w.Apply(30, t0, st)
	w.Cancel()
	if w.Pending() || w.Poll(t0.Add(time.Second), st) {
		t.Error("cancelled taper still fired")
	}
}
