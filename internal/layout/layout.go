// Package layout derives per-tab width constraints from the strip's mode and
// gravity, and arranges measured tabs into pixel bounds.
package layout

import (
	"fmt"
	"strings"
)

// Mode determines whether tabs must fit the strip or may scroll.
type Mode int

const (
	// Scrollable tabs take their natural width and the strip scrolls.
	Scrollable Mode = iota
	// Fixed tabs all fit within the visible width.
	Fixed
)

func (m Mode) String() string {
	switch m {
	case Scrollable:
		return "scrollable"
	case Fixed:
		return "fixed"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses the string form of a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "scrollable":
		return Scrollable, nil
	case "fixed":
		return Fixed, nil
	}
	return 0, fmt.Errorf("invalid tab mode: %q", s)
}

// Gravity determines how fixed tabs share the strip.
type Gravity int

const (
	// Fill distributes the strip's width equally between tabs.
	Fill Gravity = iota
	// Center gives each tab the width of the widest tab and centers them.
	Center
)

func (g Gravity) String() string {
	switch g {
	case Fill:
		return "fill"
	case Center:
		return "center"
	default:
		return fmt.Sprintf("Gravity(%d)", int(g))
	}
}

// ParseGravity parses the string form of a Gravity.
func ParseGravity(s string) (Gravity, error) {
	switch strings.ToLower(s) {
	case "fill":
		return Fill, nil
	case "center":
		return Center, nil
	}
	return 0, fmt.Errorf("invalid tab gravity: %q", s)
}

// Alignment of the tabs within the strip's container.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
)

// Bounds are the horizontal pixel bounds of a tab within the strip.
type Bounds struct {
	Left  int
	Right int
}

func (b Bounds) Width() int {
	return b.Right - b.Left
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%d,%d)", b.Left, b.Right)
}
