package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/go-runewidth"
	"github.com/leg100/tabstrip/internal/indicator"
	"github.com/leg100/tabstrip/internal/layout"
	"github.com/leg100/tabstrip/internal/strip"
	"github.com/leg100/tabstrip/internal/tab"
)

// tabPadding is the number of cells either side of a tab's label.
const tabPadding = 1

// label is what's rendered for a tab: its custom content if it can be
// rendered as text, otherwise its icon and text.
func label(t *tab.Tab) string {
	switch c := t.CustomContent().(type) {
	case string:
		return c
	case fmt.Stringer:
		return c.String()
	}
	return t.Label()
}

// measure lays out the engine's tabs across a strip width cells wide,
// returning each tab's label, truncated to the maximum tab width, and its
// bounds.
func measure(e *strip.Engine, width int) ([]string, []layout.Bounds) {
	tabs := e.Tabs()
	labels := make([]string, len(tabs))
	natural := make([]int, len(tabs))
	maxLabel := e.MaxTabWidth(width) - 2*tabPadding
	for i, t := range tabs {
		labels[i] = truncate(label(t), maxLabel)
		natural[i] = lipgloss.Width(labels[i]) + 2*tabPadding
	}
	res := e.Constraints(width, natural)
	if res.FellBack {
		// gravity has changed so re-measure
		res = e.Constraints(width, natural)
	}
	return labels, layout.Arrange(res, width)
}

// renderLabels renders the row of tab labels visible in the viewport
// [x, x+width).
func (st stripStyles) renderLabels(e *strip.Engine, labels []string, bounds []layout.Bounds, x, width int) string {
	var b strings.Builder
	cursor := x
	for i, bd := range bounds {
		left, right := max(bd.Left, x), min(bd.Right, x+width)
		if right <= left {
			continue
		}
		if left > cursor {
			b.WriteString(strings.Repeat(" ", left-cursor))
		}
		cell := crop(center(labels[i], bd.Width()), left-bd.Left, right-left)
		if e.LooksSelected(i) {
			b.WriteString(st.selected.Render(cell))
		} else {
			b.WriteString(st.normal.Render(cell))
		}
		cursor = right
	}
	if end := x + width; cursor < end {
		b.WriteString(strings.Repeat(" ", end-cursor))
	}
	return b.String()
}

type cellKind int

const (
	blankCell cellKind = iota
	underlineCell
	indicatorCell
)

// renderIndicator renders the row beneath the labels: the indicator over
// the underline, for the viewport [x, x+width).
func (st stripStyles) renderIndicator(ind indicator.State, ul indicator.Underline, x, width int) string {
	kind := func(c int) cellKind {
		switch {
		case ind.Drawn() && ind.Thickness > 0 && c >= ind.Left && c < ind.Right:
			return indicatorCell
		case ul.Drawn() && c < ul.Width:
			return underlineCell
		default:
			return blankCell
		}
	}
	var b strings.Builder
	for c := x; c < x+width; {
		k := kind(c)
		end := c + 1
		for end < x+width && kind(end) == k {
			end++
		}
		switch k {
		case indicatorCell:
			b.WriteString(st.indicator.Render(strings.Repeat("━", end-c)))
		case underlineCell:
			b.WriteString(st.underline.Render(strings.Repeat("─", end-c)))
		default:
			b.WriteString(strings.Repeat(" ", end-c))
		}
		c = end
	}
	return b.String()
}

// center pads s with spaces either side to fill w cells, truncating it if it
// doesn't fit within the padding.
func center(s string, w int) string {
	s = truncate(s, w-2*tabPadding)
	gap := max(0, w-runewidth.StringWidth(s))
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// crop returns w cells of s starting at cell from.
func crop(s string, from, w int) string {
	if from > 0 {
		s = runewidth.TruncateLeft(s, from, "")
	}
	s = runewidth.Truncate(s, w, "")
	if pad := w - runewidth.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, "…")
}
