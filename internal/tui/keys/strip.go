package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type strip struct {
	Prev      key.Binding
	Next      key.Binding
	Select    key.Binding
	Reselect  key.Binding
	Add       key.Binding
	Remove    key.Binding
	RemoveAll key.Binding
	Mode      key.Binding
	Gravity   key.Binding
}

// Strip returns key bindings for driving the tab strip.
var Strip = strip{
	Prev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "swipe to previous page"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "swipe to next page"),
	),
	Select: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "select tab"),
	),
	Reselect: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "reselect tab"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add tab"),
	),
	Remove: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "remove tab"),
	),
	RemoveAll: key.NewBinding(
		key.WithKeys("X"),
		key.WithHelp("X", "remove all tabs"),
	),
	Mode: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "toggle mode"),
	),
	Gravity: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "toggle gravity"),
	),
}
