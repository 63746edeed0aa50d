package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var (
	shortHelpKeyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "248",
		Dark:  "#626262",
	}).Bold(true).Margin(0, 1, 0, 0)

	shortHelpDescStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#B2B2B2",
		Dark:  "#4A4A4A",
	})
)

// shortHelpView renders help for key bindings on a single line, dropping
// any bindings that don't fit within maxWidth.
func shortHelpView(bindings []key.Binding, maxWidth int) string {
	var (
		pairs []string
		width int
	)
	for _, kb := range bindings {
		var cols []string
		// Beyond the first pair, render a three space left margin, in order
		// to visually separate the pairs.
		if len(pairs) > 0 {
			cols = []string{"   "}
		}
		cols = append(cols,
			shortHelpKeyStyle.Render(kb.Help().Key),
			shortHelpDescStyle.Render(kb.Help().Desc),
		)
		pair := lipgloss.JoinHorizontal(lipgloss.Left, cols...)
		width += lipgloss.Width(pair)
		if width > maxWidth {
			break
		}
		pairs = append(pairs, pair)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, pairs...)
}

var (
	longHelpHeadingStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#909090",
		Dark:  "#626262",
	}).Bold(true).Margin(0, 3, 0, 0)

	longHelpKeyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#909090",
		Dark:  "#626262",
	}).Bold(true).Margin(0, 1, 0, 0)

	longHelpDescStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#B2B2B2",
		Dark:  "#4A4A4A",
	}).Margin(0, 3, 0, 0)
)

// fullHelpView renders a table of two columns describing the key bindings,
// categorised into strip and general keys.
func fullHelpView(strip, general []key.Binding) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Left,
		helpColumn("STRIP", strip),
		helpColumn("GENERAL", general),
	)
}

func helpColumn(heading string, bindings []key.Binding) string {
	keys := make([]string, len(bindings))
	descs := make([]string, len(bindings))
	for i, kb := range bindings {
		keys[i] = longHelpKeyStyle.Render(kb.Help().Key)
		descs[i] = longHelpDescStyle.Render(kb.Help().Desc)
	}
	return lipgloss.JoinVertical(lipgloss.Top,
		longHelpHeadingStyle.Render(heading),
		lipgloss.JoinHorizontal(lipgloss.Left,
			strings.Join(keys, "\n"),
			strings.Join(descs, "\n"),
		),
	)
}
