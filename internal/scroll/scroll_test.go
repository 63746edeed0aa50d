package scroll

import (
	"testing"
	"time"

	"github.com/leg100/tabstrip/internal/anim"
	"github.com/leg100/tabstrip/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScroller struct {
	x       int
	history []int
}

func (f *fakeScroller) ScrollX() int { return f.x }

func (f *fakeScroller) ScrollTo(x int) {
	f.x = x
	f.history = append(f.history, x)
}

func setup(t *testing.T) (*Coordinator, *fakeScroller, *anim.FakeClock, *anim.Driver) {
	t.Helper()

	clock := anim.NewFakeClock(time.Unix(0, 0))
	driver := anim.NewDriver(clock.Now)
	scroller := &fakeScroller{}
	c := NewCoordinator(scroller, driver, nil)
	c.Viewport = 100
	return c, scroller, clock, driver
}

func TestTargetOffset(t *testing.T) {
	c, _, _, _ := setup(t)
	tabs := []layout.Bounds{{Left: 0, Right: 80}, {Left: 80, Right: 200}, {Left: 200, Right: 260}}

	tests := []struct {
		name     string
		position int
		offset   float64
		want     int
	}{
		{"first tab", 0, 0, -10},
		{"second tab", 1, 0, 90},
		{"halfway between first and second", 0, 0.5, 40},
		{"last tab has no next", 2, 0.5, 195},
		{"out of range", 3, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.TargetOffset(tt.position, tt.offset, tabs))
		})
	}

	t.Run("fixed mode never scrolls", func(t *testing.T) {
		c.Mode = layout.Fixed
		assert.Equal(t, 0, c.TargetOffset(1, 0.5, tabs))
	})
}

func TestAnimateTo(t *testing.T) {
	c, scroller, clock, driver := setup(t)

	c.AnimateTo(100)
	require.True(t, c.Animating())
	target, ok := c.Target()
	require.True(t, ok)
	assert.Equal(t, 100, target)

	driver.Tick(clock.Advance(150 * time.Millisecond))
	assert.Greater(t, scroller.x, 0)
	assert.Less(t, scroller.x, 100)

	driver.Tick(clock.Advance(150 * time.Millisecond))
	assert.Equal(t, 100, scroller.x)
	assert.False(t, c.Animating())

	// Offsets never go backwards on the way to the target.
	for i := 1; i < len(scroller.history); i++ {
		assert.GreaterOrEqual(t, scroller.history[i], scroller.history[i-1])
	}
}

func TestAnimateTo_AlreadyThere(t *testing.T) {
	c, scroller, _, _ := setup(t)
	scroller.x = 40

	c.AnimateTo(40)

	assert.False(t, c.Animating())
	assert.Empty(t, scroller.history)
}

func TestScrollTo_CancelsAnimationAtTarget(t *testing.T) {
	c, scroller, clock, driver := setup(t)

	c.AnimateTo(100)
	driver.Tick(clock.Advance(50 * time.Millisecond))

	c.ScrollTo(30)

	assert.False(t, c.Animating())
	// The animation snapped to its own target before the direct offset
	// landed.
	n := len(scroller.history)
	require.GreaterOrEqual(t, n, 2)
	assert.Equal(t, 100, scroller.history[n-2])
	assert.Equal(t, 30, scroller.x)
}
