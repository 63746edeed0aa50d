package indicator

import (
	"testing"

	"github.com/leg100/tabstrip/internal/layout"
	"github.com/stretchr/testify/assert"
)

func TestInterpolate(t *testing.T) {
	tabs := []layout.Bounds{{Left: 10, Right: 50}, {Left: 60, Right: 100}}

	tests := []struct {
		name     string
		position int
		offset   float64
		want     layout.Bounds
	}{
		{"settled", 0, 0, layout.Bounds{Left: 10, Right: 50}},
		{"halfway", 0, 0.5, layout.Bounds{Left: 35, Right: 75}},
		{"quarter", 0, 0.25, layout.Bounds{Left: 22, Right: 62}},
		{"nearly there", 0, 0.999, layout.Bounds{Left: 59, Right: 99}},
		{"last tab ignores offset", 1, 0.5, layout.Bounds{Left: 60, Right: 100}},
		{"negative offset treated as settled", 0, -0.2, layout.Bounds{Left: 10, Right: 50}},
		{"position out of range", 2, 0, NotDrawn},
		{"negative position", -1, 0, NotDrawn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Interpolate(tt.position, tt.offset, tabs))
		})
	}

	t.Run("tab not yet laid out", func(t *testing.T) {
		got := Interpolate(0, 0.5, []layout.Bounds{{Left: 0, Right: 0}, {Left: 60, Right: 100}})
		assert.Equal(t, NotDrawn, got)
		assert.False(t, State{Bounds: got}.Drawn())
	})
}

func TestInterpolate_ApproachesNextTab(t *testing.T) {
	tabs := []layout.Bounds{{Left: 10, Right: 50}, {Left: 60, Right: 100}}

	prev := Interpolate(0, 0, tabs)
	for _, offset := range []float64{0.1, 0.3, 0.6, 0.9, 0.99, 0.9999} {
		got := Interpolate(0, offset, tabs)
		assert.GreaterOrEqual(t, got.Left, prev.Left)
		assert.GreaterOrEqual(t, got.Right, prev.Right)
		assert.LessOrEqual(t, 60-got.Left, 60-prev.Left)
		prev = got
	}
	assert.Equal(t, layout.Bounds{Left: 59, Right: 99}, prev)
}

func TestLerp(t *testing.T) {
	from := layout.Bounds{Left: 0, Right: 10}
	to := layout.Bounds{Left: 100, Right: 150}

	assert.Equal(t, from, Lerp(from, to, 0))
	assert.Equal(t, to, Lerp(from, to, 1))
	assert.Equal(t, layout.Bounds{Left: 50, Right: 80}, Lerp(from, to, 0.5))
}

func TestSlideInStart(t *testing.T) {
	target := layout.Bounds{Left: 100, Right: 150}

	tests := []struct {
		name     string
		from, to int
		rtl      bool
		want     layout.Bounds
	}{
		{"forward enters from the left", 0, 3, false, layout.Bounds{Left: 76, Right: 76}},
		{"backward enters from the right", 5, 1, false, layout.Bounds{Left: 174, Right: 174}},
		{"forward under rtl enters from the right", 0, 3, true, layout.Bounds{Left: 174, Right: 174}},
		{"backward under rtl enters from the left", 5, 1, true, layout.Bounds{Left: 76, Right: 76}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SlideInStart(target, tt.from, tt.to, 24, tt.rtl))
		})
	}
}

func TestDrawn(t *testing.T) {
	assert.True(t, State{Bounds: layout.Bounds{Left: 0, Right: 1}}.Drawn())
	assert.False(t, State{Bounds: layout.Bounds{Left: 5, Right: 5}}.Drawn())
	assert.False(t, State{Bounds: layout.Bounds{Left: 6, Right: 5}}.Drawn())
	assert.False(t, State{Bounds: NotDrawn}.Drawn())

	assert.True(t, Underline{Width: 10, Thickness: 1}.Drawn())
	assert.False(t, Underline{Width: 10}.Drawn())
}
