package layout

// Arrange positions tabs according to the constraints of a layout pass, the
// way a horizontal linear container would: fixed widths first, then any
// remaining width shared between flexible tabs in proportion to their
// weight. Tabs are laid out in visual order starting at the result's
// alignment.
func Arrange(res Result, stripWidth int) []Bounds {
	var (
		fixed       int
		totalWeight float64
	)
	for _, c := range res.Tabs {
		if c.Flexible() {
			totalWeight += c.Weight
		} else {
			fixed += c.Width
		}
	}

	widths := make([]int, len(res.Tabs))
	remaining := max(0, stripWidth-res.PaddingStart-fixed)
	shared := 0
	for i, c := range res.Tabs {
		if !c.Flexible() {
			widths[i] = c.Width
			continue
		}
		widths[i] = int(float64(remaining) * c.Weight / totalWeight)
		shared += widths[i]
	}
	// Hand out pixels lost to rounding, one per flexible tab, from the start.
	for i, c := range res.Tabs {
		if shared >= remaining {
			break
		}
		if c.Flexible() {
			widths[i]++
			shared++
		}
	}

	total := 0
	for _, w := range widths {
		total += w
	}
	x := res.PaddingStart
	if res.Align == AlignCenter && totalWeight == 0 {
		x = max(0, (stripWidth-total)/2)
	}

	bounds := make([]Bounds, len(widths))
	for i, w := range widths {
		bounds[i] = Bounds{Left: x, Right: x + w}
		x += w
	}
	return bounds
}

// ContentWidth is the width of the arranged strip: the right edge of the last
// tab.
func ContentWidth(bounds []Bounds) int {
	if len(bounds) == 0 {
		return 0
	}
	return bounds[len(bounds)-1].Right
}
