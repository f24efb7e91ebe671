package session

// Demo returns a short tour for a w×h viewport: slide in, flick the
// wheel, hover the centre item, drag, scroll back, then click to close.
func Demo(w, h int) *Script {
	cx, cy := float64(w)/2, float64(h)/2
	s := &Script{
		FPS:      DefaultFPS,
		Duration: 6.5,
		Events: []Event{
			{T: 0, Type: Open},
			{T: 1.3, Type: Wheel, DeltaY: 120},
			{T: 1.35, Type: Wheel, DeltaY: 120},
			{T: 1.4, Type: Wheel, DeltaY: 120},
			{T: 2.2, Type: Hover, X: cx, Y: cy},
			{T: 2.6, Type: Down, X: cx, Y: cy + 100},
		},
	}
	for i := 1; i <= 8; i++ {
		s.Events = append(s.Events, Event{T: 2.6 + float64(i)*0.03, Type: Move, X: cx, Y: cy + 100 - float64(i)*25})
	}
	s.Events = append(s.Events,
		Event{T: 2.9, Type: Up, X: cx, Y: cy - 100},
		Event{T: 3.8, Type: Wheel, DeltaY: -40},
		Event{T: 3.9, Type: Wheel, DeltaY: -40},
		Event{T: 4.6, Type: Hover, X: cx, Y: cy},
		Event{T: 5.0, Type: Click, X: cx, Y: cy},
	)
	return s
}
