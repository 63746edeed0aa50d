// Package anim drives time-based animations off an explicit frame clock.
//
// Nothing here is safe for concurrent use: animations are started,
// advanced and canceled from the single thread that owns the strip.
package anim

import (
	"time"
)

// Animation interpolates from 0 to 1 over Duration. Update is called with the
// eased fraction on every frame, End once when the animation finishes or is
// canceled.
type Animation struct {
	Duration time.Duration
	Easing   Easing
	Update   func(fraction float64)
	End      func(canceled bool)

	start   time.Time
	running bool
}

// Running reports whether the animation has been started and has neither
// finished nor been canceled.
func (a *Animation) Running() bool {
	return a != nil && a.running
}

func (a *Animation) ease(t float64) float64 {
	if a.Easing == nil {
		return FastOutSlowIn(t)
	}
	return a.Easing(t)
}

func (a *Animation) update(t float64) {
	if a.Update != nil {
		a.Update(a.ease(t))
	}
}

func (a *Animation) finish(canceled bool) {
	a.running = false
	if a.End != nil {
		a.End(canceled)
	}
}

// Driver owns the set of running animations and advances them when the host
// delivers a frame.
type Driver struct {
	now   func() time.Time
	anims []*Animation
}

// NewDriver constructs a driver. If now is nil the wall clock is used.
func NewDriver(now func() time.Time) *Driver {
	if now == nil {
		now = time.Now
	}
	return &Driver{now: now}
}

// Start begins the animation from the driver's current time. An animation
// with no duration completes immediately.
func (d *Driver) Start(a *Animation) {
	if a.running {
		d.remove(a)
	}
	a.start = d.now()
	a.running = true
	if a.Duration <= 0 {
		a.update(1)
		a.finish(false)
		return
	}
	a.update(0)
	d.anims = append(d.anims, a)
}

// Cancel stops a running animation, first snapping it to its final value.
// It returns once End has been called.
func (d *Driver) Cancel(a *Animation) {
	if !a.Running() {
		return
	}
	d.remove(a)
	a.update(1)
	a.finish(true)
}

// Tick advances every running animation to now, finishing those whose
// duration has elapsed. It reports whether any animation is still running.
func (d *Driver) Tick(now time.Time) bool {
	// Callbacks may start or cancel animations, so walk a snapshot.
	snapshot := make([]*Animation, len(d.anims))
	copy(snapshot, d.anims)
	for _, a := range snapshot {
		if !a.running {
			continue
		}
		elapsed := now.Sub(a.start)
		if elapsed >= a.Duration {
			d.remove(a)
			a.update(1)
			a.finish(false)
			continue
		}
		t := float64(elapsed) / float64(a.Duration)
		if t < 0 {
			t = 0
		}
		a.update(t)
	}
	return d.Active()
}

// Active reports whether any animation is running.
func (d *Driver) Active() bool {
	return len(d.anims) > 0
}

// Now returns the driver's clock reading.
func (d *Driver) Now() time.Time {
	return d.now()
}

func (d *Driver) remove(a *Animation) {
	for i, b := range d.anims {
		if a == b {
			d.anims = append(d.anims[:i], d.anims[i+1:]...)
			return
		}
	}
}
