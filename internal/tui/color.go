package tui

import "github.com/charmbracelet/lipgloss"

const (
	Red         = lipgloss.Color("#FF5353")
	Yellow      = lipgloss.Color("#DBBD70")
	Green       = lipgloss.Color("34")
	LightGreen  = lipgloss.Color("86")
	Blue        = lipgloss.Color("63")
	Violet      = lipgloss.Color("13")
	Pink        = lipgloss.Color("#E760FC")
	LightGrey   = lipgloss.Color("245")
	LighterGrey = lipgloss.Color("250")
)

var (
	DebugLogLevel = Blue
	InfoLogLevel  = lipgloss.AdaptiveColor{Dark: string(LightGreen), Light: string(Green)}
	ErrorLogLevel = Red
	WarnLogLevel  = Yellow

	ActiveTab   = Violet
	InactiveTab = LighterGrey
	Indicator   = Violet
	Underline   = lipgloss.AdaptiveColor{
		Dark:  "244",
		Light: "250",
	}
)

// Colors configures the tab strip. Each is an ANSI color number or a hex
// code; empty keeps the default.
type Colors struct {
	Indicator    string
	Underline    string
	SelectedText string
	Text         string
}

// stripStyles renders the tab strip.
type stripStyles struct {
	selected  lipgloss.Style
	normal    lipgloss.Style
	indicator lipgloss.Style
	underline lipgloss.Style
}

func newStripStyles(c Colors) stripStyles {
	color := func(s string, def lipgloss.TerminalColor) lipgloss.TerminalColor {
		if s == "" {
			return def
		}
		return lipgloss.Color(s)
	}
	return stripStyles{
		selected:  Bold.Copy().Foreground(color(c.SelectedText, ActiveTab)),
		normal:    Regular.Copy().Foreground(color(c.Text, InactiveTab)),
		indicator: Bold.Copy().Foreground(color(c.Indicator, Indicator)),
		underline: Regular.Copy().Foreground(color(c.Underline, Underline)),
	}
}
