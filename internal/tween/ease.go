package tween

import (
	"fmt"
	"math"
	"strings"
)

// EaseFunc maps linear progress in [0,1] to eased progress.
type EaseFunc func(t float64) float64

// Linear does not ease.
func Linear(t float64) float64 { return t }

// PowerIn returns an ease-in of the given strength: power1 is quadratic,
// power2 cubic, and so on.
func PowerIn(power int) EaseFunc {
	p := float64(power + 1)
	return func(t float64) float64 { return math.Pow(t, p) }
}

// PowerOut mirrors PowerIn.
func PowerOut(power int) EaseFunc {
	in := PowerIn(power)
	return func(t float64) float64 { return 1 - in(1-t) }
}

// PowerInOut eases in for the first half and out for the second.
func PowerInOut(power int) EaseFunc {
	in := PowerIn(power)
	return func(t float64) float64 {
		if t < 0.5 {
			return in(t*2) / 2
		}
		return 1 - in((1-t)*2)/2
	}
}

// ParseEase resolves names like "power2.out", "power3.in" or "linear".
// A bare "powerN" means "powerN.out".
func ParseEase(name string) (EaseFunc, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "linear" || name == "none" {
		return Linear, nil
	}

	kind, mode, _ := strings.Cut(name, ".")
	var power int
	if _, err := fmt.Sscanf(kind, "power%d", &power); err != nil || power < 0 || power > 4 {
		return nil, fmt.Errorf("tween: unknown ease %q", name)
	}
	if power == 0 {
		return Linear, nil
	}

	switch mode {
	case "", "out":
		return PowerOut(power), nil
	case "in":
		return PowerIn(power), nil
	case "inout":
		return PowerInOut(power), nil
	}
	return nil, fmt.Errorf("tween: unknown ease %q", name)
}
