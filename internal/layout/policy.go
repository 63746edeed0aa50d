package layout

// Defaults, in density-independent pixels.
const (
	// DefaultGutter is the inset either side of fixed, centered tabs.
	DefaultGutter = 16
	// DefaultMaxWidthInset is subtracted from the container width to derive
	// the maximum tab width.
	DefaultMaxWidthInset = 56
)

// Constraint is the width a host applies to a single tab. A non-zero Weight
// means the tab takes Weight shares of the space left over once fixed widths
// are laid out, and Width is then ignored.
type Constraint struct {
	Width  int
	Weight float64
}

// Flexible reports whether the tab takes a share of remaining space.
func (c Constraint) Flexible() bool {
	return c.Weight > 0
}

// Input to a layout pass.
type Input struct {
	Mode    Mode
	Gravity Gravity
	// StripWidth is the measured width of the strip.
	StripWidth int
	// Natural is the natural content width of each tab, in visual order.
	Natural []int
	// MinTabWidth and MaxTabWidth clamp scrollable tabs. A MaxTabWidth of
	// zero means unbounded.
	MinTabWidth int
	MaxTabWidth int
	// Gutter is the inset either side of fixed, centered tabs.
	Gutter int
	// ContentInset is the start inset of a scrollable strip, and
	// TabPaddingStart the start padding of each tab; the strip is padded by
	// the difference.
	ContentInset    int
	TabPaddingStart int
}

// Result of a layout pass: a fresh constraint per tab.
type Result struct {
	Tabs         []Constraint
	Align        Alignment
	PaddingStart int
	// Gravity is the gravity actually applied. It differs from the input
	// gravity when fixed, centered tabs don't fit and the pass fell back to
	// Fill.
	Gravity Gravity
	// FellBack is true when the pass fell back to Fill; the caller should
	// re-measure.
	FellBack bool
}

// Compute derives the constraint for each tab. It is a pure function of its
// input.
func Compute(in Input) Result {
	n := len(in.Natural)
	res := Result{
		Tabs:    make([]Constraint, n),
		Gravity: in.Gravity,
	}

	if in.Mode == Scrollable {
		res.Align = AlignStart
		res.PaddingStart = max(0, in.ContentInset-in.TabPaddingStart)
		for i, w := range in.Natural {
			res.Tabs[i] = Constraint{Width: clamp(w, in.MinTabWidth, in.MaxTabWidth)}
		}
		return res
	}

	res.Align = AlignCenter
	if in.Gravity == Center {
		widest := 0
		for _, w := range in.Natural {
			widest = max(widest, w)
		}
		if widest <= 0 {
			// Nothing measured yet: leave tabs at their natural width.
			copy(res.Tabs, naturalConstraints(in.Natural))
			return res
		}
		if widest*n <= in.StripWidth-2*in.Gutter {
			for i := range res.Tabs {
				res.Tabs[i] = Constraint{Width: widest}
			}
			return res
		}
		// They don't fit: fall back to filling the strip.
		res.Gravity = Fill
		res.FellBack = true
	}
	for i := range res.Tabs {
		res.Tabs[i] = Constraint{Weight: 1}
	}
	return res
}

// MaxTabWidth derives the maximum width of a tab from the container width:
// the requested maximum, unless that is unset or exceeds the container less
// its inset.
func MaxTabWidth(requested, containerWidth, inset int) int {
	limit := containerWidth - inset
	if requested <= 0 || requested > limit {
		return max(0, limit)
	}
	return requested
}

func naturalConstraints(natural []int) []Constraint {
	cs := make([]Constraint, len(natural))
	for i, w := range natural {
		cs[i] = Constraint{Width: w}
	}
	return cs
}

func clamp(w, lo, hi int) int {
	if hi > 0 && w > hi {
		w = hi
	}
	if lo > 0 && w < lo {
		w = lo
	}
	return w
}
