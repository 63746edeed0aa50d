// Package strip implements the tab strip engine: it owns the tabs, decides
// where the selection indicator sits and keeps the selected tab in view,
// whether the selection changes discretely or follows an external pager.
package strip

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/leg100/tabstrip/internal/anim"
	"github.com/leg100/tabstrip/internal/indicator"
	"github.com/leg100/tabstrip/internal/layout"
	"github.com/leg100/tabstrip/internal/logging"
	"github.com/leg100/tabstrip/internal/pubsub"
	"github.com/leg100/tabstrip/internal/resource"
	"github.com/leg100/tabstrip/internal/scroll"
	"github.com/leg100/tabstrip/internal/tab"
)

var ErrClosed = errors.New("strip engine closed")

// Engine is the tab strip engine. It is not safe for concurrent use: every
// method must be called from the goroutine that owns the host's event loop.
type Engine struct {
	registry *tab.Registry
	broker   *pubsub.Broker[*tab.Tab]
	driver   *anim.Driver
	scroll   *scroll.Coordinator
	logger   logging.Interface
	surface  Surface
	opts     Options

	mode    layout.Mode
	gravity layout.Gravity

	// measured bounds from the last layout pass
	bounds   []layout.Bounds
	viewport int

	// fractional position the indicator is settled on or dragged to
	position int
	offset   float64
	state    State

	// index of the tab that looks selected; during a drag it follows the
	// drag rather than the stored selection.
	highlighted int

	indicator layout.Bounds
	animation *anim.Animation

	dirty  bool
	closed bool
}

// New constructs an engine.
func New(opts Options) *Engine {
	opts.setDefaults()

	driver := anim.NewDriver(opts.Now)
	coordinator := scroll.NewCoordinator(opts.Scroller, driver, opts.Logger)
	coordinator.Mode = opts.Mode
	coordinator.Duration = opts.TransitionDuration
	coordinator.Easing = opts.Easing

	e := &Engine{
		broker:      pubsub.NewBroker[*tab.Tab](opts.Logger),
		driver:      driver,
		scroll:      coordinator,
		logger:      opts.Logger,
		surface:     opts.Surface,
		opts:        opts,
		mode:        opts.Mode,
		gravity:     opts.Gravity,
		highlighted: tab.InvalidPosition,
		indicator:   indicator.NotDrawn,
	}
	e.registry = tab.NewRegistry(e)
	e.registry.SetObserver(e)

	// Log tab IDs as the tabs they identify.
	opts.Logger.AddArgsUpdater(&logging.IDResolver[*tab.Tab]{
		Getter: tabGetter{e.registry},
		Kind:   resource.Tab,
		Name:   "tab",
	})
	return e
}

type tabGetter struct {
	*tab.Registry
}

func (g tabGetter) Get(id resource.ID) (*tab.Tab, error) {
	return g.Lookup(id)
}

// NewTab creates a detached tab bound to this engine.
func (e *Engine) NewTab() *tab.Tab {
	return e.registry.NewTab()
}

// AddTab appends the tab, selecting it if it is the first tab.
func (e *Engine) AddTab(t *tab.Tab) error {
	return e.InsertTab(t, e.registry.Count(), e.registry.Count() == 0)
}

// AddTabAt inserts the tab at index, selecting it if it is the first tab.
func (e *Engine) AddTabAt(t *tab.Tab, index int) error {
	return e.InsertTab(t, index, e.registry.Count() == 0)
}

// InsertTab inserts the tab at index, optionally selecting it.
func (e *Engine) InsertTab(t *tab.Tab, index int, selectAfterAdd bool) error {
	if e.closed {
		return ErrClosed
	}
	if err := e.registry.Add(t, index, false); err != nil {
		return err
	}
	e.cancelAnimation()
	e.logger.Debug("added tab", "tab", t)
	e.broker.Publish(resource.CreatedEvent, t)
	e.resync()
	if selectAfterAdd {
		e.SelectTab(t)
	}
	return nil
}

// RemoveTab removes the tab from the strip.
func (e *Engine) RemoveTab(t *tab.Tab) error {
	if e.closed {
		return ErrClosed
	}
	if t.Owner() != e.registry {
		return fmt.Errorf("removing %s: %w", t.ID, tab.ErrOwnership)
	}
	if !t.Attached() {
		return fmt.Errorf("removing detached %s: %w", t.ID, tab.ErrRange)
	}
	return e.RemoveTabAt(t.Position())
}

// RemoveTabAt removes the tab at index. If it was selected, the tab before it
// is selected instead.
func (e *Engine) RemoveTabAt(index int) error {
	if e.closed {
		return ErrClosed
	}
	e.cancelAnimation()
	removed, err := e.registry.RemoveAt(index)
	if err != nil {
		return err
	}
	e.logger.Debug("removed tab", "tab", removed, "index", index)
	e.broker.Publish(resource.DeletedEvent, removed)
	e.resync()
	return nil
}

// RemoveAllTabs removes every tab and clears the selection without
// publishing selection events.
func (e *Engine) RemoveAllTabs() {
	if e.closed {
		return
	}
	e.cancelAnimation()
	removed := e.registry.RemoveAll()
	for _, t := range removed {
		e.broker.Publish(resource.DeletedEvent, t)
	}
	e.logger.Debug("removed all tabs", "count", len(removed))
	e.position, e.offset = 0, 0
	e.state = Idle
	e.highlighted = tab.InvalidPosition
	e.bounds = nil
	e.setIndicator(indicator.NotDrawn)
	e.scroll.ScrollTo(0)
}

// Select selects the tab, or clears the selection if t is nil. Selecting
// the selected tab publishes a reselected event and re-centers it. A tab
// belonging to another engine returns tab.ErrOwnership and a detached tab
// returns tab.ErrRange, leaving the selection untouched.
func (e *Engine) Select(t *tab.Tab) error {
	if e.closed {
		return ErrClosed
	}
	if t != nil && t.Owner() != e.registry {
		return fmt.Errorf("selecting %s: %w", t.ID, tab.ErrOwnership)
	}
	if t != nil && !t.Attached() {
		return fmt.Errorf("selecting detached %s: %w", t.ID, tab.ErrRange)
	}
	e.selectTab(t)
	return nil
}

// SelectTab is Select for callers with no use for the error: a foreign or
// detached tab is logged and otherwise ignored, publishing nothing.
func (e *Engine) SelectTab(t *tab.Tab) {
	if err := e.Select(t); err != nil && !errors.Is(err, ErrClosed) {
		e.logger.Error("selecting tab", "tab", t, "error", err)
	}
}

func (e *Engine) selectTab(t *tab.Tab) {
	current := e.registry.Selected()
	if t == current {
		if t != nil {
			e.logger.Debug("reselected tab", "tab", t)
			e.broker.Publish(TabReselectedEvent, t)
			e.animateToTab(t.Position())
		}
		return
	}

	newPos := tab.InvalidPosition
	if t != nil {
		newPos = t.Position()
	}
	e.highlighted = newPos
	if current == nil || !current.Attached() {
		if newPos != tab.InvalidPosition {
			e.jumpTo(newPos)
		}
	} else {
		e.animateToTab(newPos)
	}

	if current != nil {
		e.broker.Publish(TabUnselectedEvent, current)
	}
	e.registry.SetSelected(t)
	if t != nil {
		e.logger.Debug("selected tab", "tab", t)
		e.broker.Publish(TabSelectedEvent, t)
	}
}

// OnExternalScrollFrame applies a frame from an external pager: the
// fractional position the pager's content has scrolled to. A frame that is
// not settling cancels any animation in flight; a settling frame with a zero
// offset commits the selection of the tab at position.
func (e *Engine) OnExternalScrollFrame(position int, offset float64, settling bool) {
	if e.closed {
		return
	}
	position, offset, ok := e.clampFrame(position, offset)
	if !ok {
		return
	}
	if !settling {
		e.cancelAnimation()
		e.state = Dragging
		e.setScrollPosition(position, offset, true)
		return
	}
	if e.state == Animating {
		// The pager is settling on behalf of the animated transition.
		return
	}
	e.setScrollPosition(position, offset, false)
	if offset != 0 {
		e.state = Dragging
		return
	}
	e.state = Idle
	if t, err := e.registry.Get(position); err == nil && t != e.registry.Selected() {
		e.SelectTab(t)
	}
}

// SetMode switches between fixed and scrollable tabs. The host should
// re-measure.
func (e *Engine) SetMode(m layout.Mode) {
	if e.mode == m {
		return
	}
	e.mode = m
	e.scroll.Mode = m
	e.logger.Info("set mode", "mode", m)
}

// SetGravity sets the gravity of fixed tabs. The host should re-measure.
func (e *Engine) SetGravity(g layout.Gravity) {
	if e.gravity == g {
		return
	}
	e.gravity = g
	e.logger.Info("set gravity", "gravity", g)
}

// Constraints derives the tab constraints for the next layout pass. If fixed
// tabs don't fit centered, the engine falls back to fill gravity and
// publishes a GravityFallbackEvent.
func (e *Engine) Constraints(stripWidth int, natural []int) layout.Result {
	res := layout.Compute(layout.Input{
		Mode:            e.mode,
		Gravity:         e.gravity,
		StripWidth:      stripWidth,
		Natural:         natural,
		MinTabWidth:     e.opts.MinTabWidth,
		MaxTabWidth:     e.MaxTabWidth(stripWidth),
		Gutter:          e.opts.Gutter,
		ContentInset:    e.opts.ContentInset,
		TabPaddingStart: e.opts.TabPaddingStart,
	})
	if res.FellBack {
		e.gravity = res.Gravity
		e.logger.Info("centered tabs don't fit; falling back to fill", "strip_width", stripWidth)
		e.broker.Publish(GravityFallbackEvent, nil)
	}
	return res
}

// MaxTabWidth is the widest a tab may be in a strip of the given width.
func (e *Engine) MaxTabWidth(stripWidth int) int {
	return layout.MaxTabWidth(e.opts.MaxTabWidth, stripWidth, e.opts.MaxWidthInset)
}

// Layout reports the measured bounds of every tab, in order, along with the
// viewport width.
func (e *Engine) Layout(viewport int, bounds []layout.Bounds) {
	if e.closed {
		return
	}
	e.viewport = viewport
	e.scroll.Viewport = viewport
	e.bounds = append(e.bounds[:0], bounds...)
	e.dirty = true
	if len(bounds) != e.registry.Count() {
		// Bounds can't be matched to tabs; draw nothing until the next pass.
		e.logger.Debug("layout inconsistency", "bounds", len(bounds), "tabs", e.registry.Count())
		e.cancelAnimation()
		e.state = Idle
		e.setIndicator(indicator.NotDrawn)
		return
	}
	if e.state == Animating {
		// the animation reads the target bounds afresh on every frame
		return
	}
	e.setIndicator(indicator.Interpolate(e.position, e.offset, e.bounds))
}

// Tick renders a frame: animations are advanced to now and the surface is
// painted if the geometry changed. It reports whether any animation is
// still running, i.e. whether the host should schedule another frame.
func (e *Engine) Tick(now time.Time) bool {
	active := e.driver.Tick(now)
	if e.dirty && e.surface != nil {
		e.surface.Paint(e.Indicator(), e.Underline())
	}
	e.dirty = false
	return active
}

// Subscribe to the engine's events.
func (e *Engine) Subscribe(ctx context.Context) <-chan resource.Event[*tab.Tab] {
	return e.broker.Subscribe(ctx)
}

// Close tears down the engine. Subscriptions are closed and subsequent
// operations are no-ops.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.cancelAnimation()
	e.scroll.Cancel()
	e.closed = true
	e.broker.Shutdown()
}

func (e *Engine) Closed() bool { return e.closed }

func (e *Engine) Count() int { return e.registry.Count() }

func (e *Engine) Tab(index int) (*tab.Tab, error) { return e.registry.Get(index) }

func (e *Engine) Tabs() []*tab.Tab { return e.registry.Tabs() }

func (e *Engine) Selected() *tab.Tab { return e.registry.Selected() }

func (e *Engine) SelectedPosition() int { return e.registry.SelectedPosition() }

func (e *Engine) Mode() layout.Mode { return e.mode }

func (e *Engine) Gravity() layout.Gravity { return e.gravity }

func (e *Engine) State() State { return e.state }

// Position returns the fractional position of the indicator.
func (e *Engine) Position() (int, float64) { return e.position, e.offset }

// LooksSelected reports whether the tab at index should be rendered as
// selected.
func (e *Engine) LooksSelected(index int) bool {
	return index == e.highlighted
}

// Indicator returns the indicator as it would be painted.
func (e *Engine) Indicator() indicator.State {
	return indicator.State{Bounds: e.indicator, Thickness: e.opts.IndicatorThickness}
}

// Underline returns the underline as it would be painted. It spans the full
// strip.
func (e *Engine) Underline() indicator.Underline {
	return indicator.Underline{
		Width:     max(e.viewport, layout.ContentWidth(e.bounds)),
		Thickness: e.opts.UnderlineThickness,
	}
}

// TabUpdated is called when an attached tab's payload changes.
func (e *Engine) TabUpdated(t *tab.Tab) {
	e.broker.Publish(resource.UpdatedEvent, t)
}

func (e *Engine) laidOut() bool {
	return e.viewport > 0 && len(e.bounds) == e.registry.Count()
}

// jumpTo moves straight to position, without animation.
func (e *Engine) jumpTo(position int) {
	e.cancelAnimation()
	e.state = Idle
	e.setScrollPosition(position, 0, true)
}

func (e *Engine) setScrollPosition(position int, offset float64, highlight bool) {
	if position < 0 || position >= e.registry.Count() {
		return
	}
	e.position, e.offset = position, offset
	e.setIndicator(indicator.Interpolate(position, offset, e.bounds))
	e.scroll.ScrollTo(e.scroll.TargetOffset(position, offset, e.bounds))
	if highlight {
		e.highlighted = int(math.Round(float64(position) + offset))
	}
}

func (e *Engine) animateToTab(position int) {
	if position == tab.InvalidPosition {
		return
	}
	if !e.laidOut() {
		e.jumpTo(position)
		return
	}
	e.cancelAnimation()
	e.scroll.AnimateTo(e.scroll.TargetOffset(position, 0, e.bounds))
	e.animateIndicator(position)
}

func (e *Engine) animateIndicator(position int) {
	target := e.bounds[position]
	start := e.indicator
	if abs(position-e.position) > 1 {
		start = indicator.SlideInStart(target, e.position, position, e.opts.NonAdjacentMargin, e.opts.RTL)
	} else if !indicator.Visible(start) {
		start = target
	}
	if start == target {
		e.settle(position)
		return
	}

	e.state = Animating
	a := &anim.Animation{
		Duration: e.opts.TransitionDuration,
		Easing:   e.opts.Easing,
		Update: func(f float64) {
			to := indicator.NotDrawn
			if position < len(e.bounds) {
				to = e.bounds[position]
			}
			e.setIndicator(indicator.Lerp(start, to, f))
		},
		End: func(canceled bool) {
			e.animation = nil
			if canceled {
				e.logger.Debug("indicator animation canceled", "target", position)
			}
			e.settle(position)
		},
	}
	e.animation = a
	e.driver.Start(a)
}

// settle completes a transition to position.
func (e *Engine) settle(position int) {
	e.position, e.offset = position, 0
	e.state = Idle
	e.setIndicator(indicator.Interpolate(position, 0, e.bounds))
}

// cancelAnimation stops any transition in flight, snapping the indicator and
// scroll offset to their targets.
func (e *Engine) cancelAnimation() {
	if e.animation != nil {
		e.driver.Cancel(e.animation)
	}
	e.scroll.Cancel()
}

// resync realigns the indicator with the selection after the tabs have been
// renumbered.
func (e *Engine) resync() {
	if e.state == Dragging {
		return
	}
	if pos := e.registry.SelectedPosition(); pos != tab.InvalidPosition {
		e.position, e.offset = pos, 0
		e.highlighted = pos
	}
}

func (e *Engine) clampFrame(position int, offset float64) (int, float64, bool) {
	n := e.registry.Count()
	if n == 0 {
		return 0, 0, false
	}
	p, o := position, offset
	if math.IsNaN(o) || math.IsInf(o, 0) || o < 0 {
		o = 0
	}
	if o >= 1 {
		p += int(o)
		o -= math.Floor(o)
	}
	if p < 0 {
		p, o = 0, 0
	}
	if p >= n-1 {
		// nothing to move towards beyond the last tab
		p, o = n-1, 0
	}
	if p != position || o != offset {
		e.logger.Debug("clamped frame", "position", position, "offset", offset, "clamped_position", p, "clamped_offset", o)
	}
	return p, o, true
}

func (e *Engine) setIndicator(b layout.Bounds) {
	if b == e.indicator {
		return
	}
	e.indicator = b
	e.dirty = true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
