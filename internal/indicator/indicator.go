// Package indicator computes the pixel bounds of the selection indicator.
package indicator

import (
	"math"

	"github.com/leg100/tabstrip/internal/layout"
)

// NotDrawn are the bounds of an indicator that isn't drawn.
var NotDrawn = layout.Bounds{Left: -1, Right: -1}

// State is what the rendering surface paints: the indicator's bounds and
// thickness.
type State struct {
	layout.Bounds
	Thickness int
}

// Drawn reports whether the indicator should be painted.
func (s State) Drawn() bool {
	return Visible(s.Bounds)
}

// Underline is the decoration painted along the full width of the strip,
// beneath the indicator.
type Underline struct {
	Width     int
	Thickness int
}

// Drawn reports whether the underline should be painted.
func (u Underline) Drawn() bool {
	return u.Thickness > 0 && u.Width > 0
}

// Visible reports whether bounds describe a drawable indicator.
func Visible(b layout.Bounds) bool {
	return b.Left >= 0 && b.Right > b.Left
}

// Interpolate computes the indicator bounds at a fractional position between
// the tab at position and the tab after it. Each edge moves independently,
// so the indicator slides and stretches as offset sweeps from 0 to 1. If the
// tab at position doesn't exist or hasn't been laid out, NotDrawn is
// returned.
func Interpolate(position int, offset float64, tabs []layout.Bounds) layout.Bounds {
	if position < 0 || position >= len(tabs) || tabs[position].Width() <= 0 {
		return NotDrawn
	}
	current := tabs[position]
	if offset <= 0 || position+1 >= len(tabs) {
		return current
	}
	next := tabs[position+1]
	return layout.Bounds{
		Left:  int(offset*float64(next.Left) + (1-offset)*float64(current.Left)),
		Right: int(offset*float64(next.Right) + (1-offset)*float64(current.Right)),
	}
}

// Lerp interpolates bounds linearly in pixel space, rounding each edge.
func Lerp(from, to layout.Bounds, fraction float64) layout.Bounds {
	return layout.Bounds{
		Left:  lerp(from.Left, to.Left, fraction),
		Right: lerp(from.Right, to.Right, fraction),
	}
}

// SlideInStart synthesizes the starting bounds for an animation to a tab
// that isn't adjacent to the previous one: a zero-width indicator margin
// pixels outside the target, on the side the selection is coming from.
func SlideInStart(target layout.Bounds, from, to, margin int, rtl bool) layout.Bounds {
	var x int
	switch {
	case to < from && rtl, to > from && !rtl:
		x = target.Left - margin
	default:
		x = target.Right + margin
	}
	return layout.Bounds{Left: x, Right: x}
}

func lerp(from, to int, fraction float64) int {
	return from + int(math.Round(fraction*float64(to-from)))
}
