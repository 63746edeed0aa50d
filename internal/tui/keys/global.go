package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type global struct {
	Help key.Binding
	Quit key.Binding
}

var Global = global{
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "quit"),
	),
}
