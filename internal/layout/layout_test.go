package layout

import (
	"math"
	"math/rand"
	"testing"
)

const (
	itemHeight = 70.0
	count      = 30
	loop       = itemHeight * count
)

func TestOffsetShortestPath(t *testing.T) {
	cases := []struct {
		index    int
		position float64
		want     float64
	}{
		{0, 0, 0},
		{1, 0, 70},
		{29, 0, -70},
		{15, 0, 1050},
		{16, 0, -980},
		{0, 90, -90},
		{2, 90, 50},
		{0, 2090, 10},
	}
	for _, c := range cases {
		if got := Offset(c.index, itemHeight, c.position, loop); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Offset(%d, pos %v) = %v, want %v", c.index, c.position, got, c.want)
		}
	}
}

func TestOffsetRangeAndCongruence(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 5000; i++ {
		index := rng.Intn(count)
		position := rng.Float64() * loop

		y := Offset(index, itemHeight, position, loop)
		if y < -loop/2 || y > loop/2 {
			t.Fatalf("Offset(%d, %v) = %v outside [-L/2, L/2]", index, position, y)
		}

		diff := (float64(index)*itemHeight - position) - y
		k := math.Round(diff / loop)
		if math.Abs(diff-k*loop) > 1e-6 {
			t.Fatalf("Offset(%d, %v) = %v not congruent to raw offset", index, position, y)
		}
	}
}

func TestToViewport(t *testing.T) {
	// 70px on an 800px screen with a 4-unit tall viewport
	got := ToViewport(70, 800, 4)
	if math.Abs(got-0.7) > 1e-12 {
		t.Errorf("ToViewport = %v, want 0.7", got)
	}
	if ToViewport(0, 800, 4) != 0 {
		t.Error("centre should map to 0")
	}
}
