package tui

import (
	"github.com/leg100/tabstrip/internal/indicator"
)

// hscroll is the strip's horizontal scroll offset, clamped to the width of
// the content beyond the viewport.
type hscroll struct {
	x   int
	max int
}

func (s *hscroll) ScrollX() int { return s.x }

func (s *hscroll) ScrollTo(x int) {
	s.x = min(max(0, x), s.max)
}

func (s *hscroll) setMax(m int) {
	s.max = max(0, m)
	s.ScrollTo(s.x)
}

// canvas records what the engine last painted. The view renders from it.
type canvas struct {
	indicator indicator.State
	underline indicator.Underline
	paints    int
}

func (c *canvas) Paint(s indicator.State, u indicator.Underline) {
	c.indicator = s
	c.underline = u
	c.paints++
}
