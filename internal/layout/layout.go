// Package layout places items of a looping list relative to the viewport centre.
package layout

import "stretch-menu/internal/mathutil"

// Offset returns the signed distance of item index from the viewport
// centre, choosing among all copies congruent modulo loopHeight the one
// nearest the centre. The result lies in (-loopHeight/2, loopHeight/2].
func Offset(index int, itemHeight, position, loopHeight float64) float64 {
	raw := float64(index)*itemHeight - position
	y := mathutil.Wrap(raw, loopHeight)
	if y > loopHeight/2 {
		y -= loopHeight
	}
	return y
}

// ToViewport converts a pixel offset into world units on the item plane.
func ToViewport(y, screenHeight, viewportHeight float64) float64 {
	return y / screenHeight * viewportHeight * 2
}
