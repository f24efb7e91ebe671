package main

import "github.com/gdamore/tcell/v2"

// pointer is the subset of the menu driven by the mouse.
type pointer interface {
	Wheel(deltaY float64)
	PointerDown(x, y float64)
	PointerMove(x, y float64)
	PointerUp(x, y float64)
	Click(x, y float64)
}

// mouseRouter turns terminal mouse reports into menu pointer calls.
// Terminal cells map to menu pixels: one cell is scale pixels wide and
// 2*scale tall. A press and release on the same cell is a click.
type mouseRouter struct {
	target    pointer
	scale     float64
	wheelStep float64

	pressed bool
	pressX  int
	pressY  int
	dragged bool
}

func (r *mouseRouter) toPixels(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * r.scale, (float64(cy) + 0.5) * 2 * r.scale
}

func (r *mouseRouter) handle(ev *tcell.EventMouse) {
	cx, cy := ev.Position()
	x, y := r.toPixels(cx, cy)
	btn := ev.Buttons()

	switch {
	case btn&tcell.WheelUp != 0:
		r.target.Wheel(-r.wheelStep)
		return
	case btn&tcell.WheelDown != 0:
		r.target.Wheel(r.wheelStep)
		return
	}

	held := btn&tcell.ButtonPrimary != 0
	switch {
	case held && !r.pressed:
		r.pressed, r.dragged = true, false
		r.pressX, r.pressY = cx, cy
		r.target.PointerDown(x, y)
	case held:
		if cx != r.pressX || cy != r.pressY {
			r.dragged = true
		}
		r.target.PointerMove(x, y)
	case r.pressed:
		r.pressed = false
		r.target.PointerUp(x, y)
		if !r.dragged && cx == r.pressX && cy == r.pressY {
			r.target.Click(x, y)
		}
	default:
		r.target.PointerMove(x, y)
	}
}
