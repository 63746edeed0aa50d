package strip

import (
	"time"

	"github.com/leg100/tabstrip/internal/anim"
	"github.com/leg100/tabstrip/internal/indicator"
	"github.com/leg100/tabstrip/internal/layout"
	"github.com/leg100/tabstrip/internal/logging"
	"github.com/leg100/tabstrip/internal/scroll"
)

const (
	DefaultTransitionDuration = 300 * time.Millisecond
	DefaultNonAdjacentMargin  = 24
)

// Surface paints the indicator and underline.
type Surface interface {
	Paint(indicator.State, indicator.Underline)
}

type Options struct {
	Mode    layout.Mode
	Gravity layout.Gravity

	// TransitionDuration is the duration of indicator and scroll animations
	// following a discrete selection.
	TransitionDuration time.Duration
	// NonAdjacentMargin is how far outside the target tab the indicator
	// starts when sliding in from a non-adjacent position.
	NonAdjacentMargin int
	Easing            anim.Easing

	MinTabWidth int
	// MaxTabWidth is the requested maximum tab width. Zero means derive it
	// from the strip width.
	MaxTabWidth     int
	MaxWidthInset   int
	Gutter          int
	ContentInset    int
	TabPaddingStart int

	IndicatorThickness int
	UnderlineThickness int

	// RTL mirrors the non-adjacent slide-in direction.
	RTL bool

	Now      func() time.Time
	Logger   logging.Interface
	Surface  Surface
	Scroller scroll.Scroller
}

func (o *Options) setDefaults() {
	if o.TransitionDuration == 0 {
		o.TransitionDuration = DefaultTransitionDuration
	}
	if o.NonAdjacentMargin == 0 {
		o.NonAdjacentMargin = DefaultNonAdjacentMargin
	}
	if o.Easing == nil {
		o.Easing = anim.FastOutSlowIn
	}
	if o.MaxWidthInset == 0 {
		o.MaxWidthInset = layout.DefaultMaxWidthInset
	}
	if o.Gutter == 0 {
		o.Gutter = layout.DefaultGutter
	}
	if o.IndicatorThickness == 0 {
		o.IndicatorThickness = 1
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Logger == nil {
		o.Logger = logging.Discard
	}
	if o.Scroller == nil {
		o.Scroller = &nopScroller{}
	}
}

type nopScroller struct{ x int }

func (s *nopScroller) ScrollX() int   { return s.x }
func (s *nopScroller) ScrollTo(x int) { s.x = x }
