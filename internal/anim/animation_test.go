package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEasing_Endpoints(t *testing.T) {
	for name, fn := range map[string]Easing{
		"linear":           Linear,
		"ease in out":      EaseInOutCubic,
		"fast out slow in": FastOutSlowIn,
	} {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, 0, fn(0), 1e-6)
			assert.InDelta(t, 1, fn(1), 1e-6)
		})
	}
}

func TestCubicBezier(t *testing.T) {
	// A bezier with control points on the diagonal is linear.
	linear := CubicBezier(1.0/3, 1.0/3, 2.0/3, 2.0/3)
	for _, x := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		assert.InDelta(t, x, linear(x), 1e-4)
	}

	// Fast out: the curve is ahead of linear through the middle.
	assert.Greater(t, FastOutSlowIn(0.5), 0.5)

	prev := 0.0
	for i := 1; i <= 100; i++ {
		got := FastOutSlowIn(float64(i) / 100)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}

func TestDriver(t *testing.T) {
	clock := NewFakeClock(time.Unix(0, 0))
	d := NewDriver(clock.Now)

	var (
		got      []float64
		ended    bool
		canceled bool
	)
	a := &Animation{
		Duration: 300 * time.Millisecond,
		Easing:   Linear,
		Update:   func(f float64) { got = append(got, f) },
		End: func(c bool) {
			ended = true
			canceled = c
		},
	}
	d.Start(a)
	require.True(t, a.Running())
	assert.True(t, d.Active())
	assert.Equal(t, []float64{0}, got)

	assert.True(t, d.Tick(clock.Advance(150*time.Millisecond)))
	assert.InDelta(t, 0.5, got[len(got)-1], 1e-9)
	assert.False(t, ended)

	assert.False(t, d.Tick(clock.Advance(200*time.Millisecond)))
	assert.Equal(t, 1.0, got[len(got)-1])
	assert.True(t, ended)
	assert.False(t, canceled)
	assert.False(t, a.Running())
	assert.False(t, d.Active())
}

func TestDriver_Cancel(t *testing.T) {
	clock := NewFakeClock(time.Unix(0, 0))
	d := NewDriver(clock.Now)

	var (
		last     float64
		canceled bool
	)
	a := &Animation{
		Duration: time.Second,
		Update:   func(f float64) { last = f },
		End:      func(c bool) { canceled = c },
	}
	d.Start(a)
	d.Tick(clock.Advance(100 * time.Millisecond))
	require.Less(t, last, 1.0)

	d.Cancel(a)

	// Cancel is synchronous and snaps to the final value.
	assert.Equal(t, 1.0, last)
	assert.True(t, canceled)
	assert.False(t, a.Running())
	assert.False(t, d.Active())

	// Canceling again is a no-op.
	canceled = false
	d.Cancel(a)
	assert.False(t, canceled)
}

func TestDriver_ZeroDuration(t *testing.T) {
	d := NewDriver(NewFakeClock(time.Unix(0, 0)).Now)

	var ended bool
	a := &Animation{End: func(bool) { ended = true }}
	d.Start(a)

	assert.True(t, ended)
	assert.False(t, d.Active())
}

func TestDriver_StartFromCallback(t *testing.T) {
	clock := NewFakeClock(time.Unix(0, 0))
	d := NewDriver(clock.Now)

	second := &Animation{Duration: 100 * time.Millisecond}
	first := &Animation{
		Duration: 100 * time.Millisecond,
		End:      func(bool) { d.Start(second) },
	}
	d.Start(first)

	assert.True(t, d.Tick(clock.Advance(100*time.Millisecond)))
	assert.False(t, first.Running())
	assert.True(t, second.Running())

	assert.False(t, d.Tick(clock.Advance(100*time.Millisecond)))
}
