// Package scroll keeps the selected tab centered in the strip's viewport.
package scroll

import (
	"time"

	"github.com/leg100/tabstrip/internal/anim"
	"github.com/leg100/tabstrip/internal/layout"
	"github.com/leg100/tabstrip/internal/logging"
)

// Scroller is the host's horizontal scroll surface. ScrollTo may clamp.
type Scroller interface {
	ScrollX() int
	ScrollTo(x int)
}

// Coordinator computes and delivers scroll offsets, either directly or as an
// animation.
type Coordinator struct {
	scroller Scroller
	driver   *anim.Driver
	logger   logging.Interface

	Mode     layout.Mode
	Viewport int
	Duration time.Duration
	Easing   anim.Easing

	current *anim.Animation
	target  int
}

func NewCoordinator(scroller Scroller, driver *anim.Driver, logger logging.Interface) *Coordinator {
	if logger == nil {
		logger = logging.Discard
	}
	return &Coordinator{
		scroller: scroller,
		driver:   driver,
		logger:   logger,
		Duration: 300 * time.Millisecond,
		Easing:   anim.FastOutSlowIn,
	}
}

// TargetOffset is the scroll offset that centers the indicator at the given
// fractional position. In fixed mode it is always zero.
func (c *Coordinator) TargetOffset(position int, offset float64, tabs []layout.Bounds) int {
	if c.Mode != layout.Scrollable {
		return 0
	}
	if position < 0 || position >= len(tabs) {
		return 0
	}
	sel := tabs[position]
	var nextWidth int
	if position+1 < len(tabs) {
		nextWidth = tabs[position+1].Width()
	}
	return int(float64(sel.Left) +
		float64(sel.Width()+nextWidth)*offset*0.5 +
		float64(sel.Width())*0.5 -
		float64(c.Viewport)*0.5)
}

// ScrollTo delivers an offset directly, canceling any scroll animation.
func (c *Coordinator) ScrollTo(x int) {
	c.Cancel()
	c.scroller.ScrollTo(x)
}

// AnimateTo scrolls smoothly from the current offset to x. Nothing happens if
// the scroller is already there.
func (c *Coordinator) AnimateTo(x int) {
	c.Cancel()
	start := c.scroller.ScrollX()
	if start == x {
		return
	}
	c.target = x
	a := &anim.Animation{
		Duration: c.Duration,
		Easing:   c.Easing,
		Update: func(f float64) {
			c.scroller.ScrollTo(start + int(f*float64(x-start)+0.5*sign(x-start)))
		},
		End: func(canceled bool) {
			if canceled {
				c.logger.Debug("scroll animation canceled", "target", x)
			}
			c.current = nil
		},
	}
	c.current = a
	c.driver.Start(a)
}

// Cancel stops an in-flight scroll animation, leaving the scroller at the
// animation's target.
func (c *Coordinator) Cancel() {
	if c.current != nil {
		c.driver.Cancel(c.current)
	}
}

// Animating reports whether a scroll animation is in flight.
func (c *Coordinator) Animating() bool {
	return c.current.Running()
}

// Target returns the destination of the in-flight animation, if any.
func (c *Coordinator) Target() (int, bool) {
	if !c.Animating() {
		return 0, false
	}
	return c.target, true
}

func sign(n int) float64 {
	if n < 0 {
		return -1
	}
	return 1
}
