package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/leg100/tabstrip/internal/tui"
	"gopkg.in/yaml.v3"
)

var errEmptyDeck = errors.New("deck has no pages")

// deck is the YAML file of pages shown in the strip.
type deck struct {
	Pages []tui.Page `yaml:"pages"`
}

var defaultDeck = []tui.Page{
	{Title: "Inbox", Icon: "✉", Body: "Nothing new. Swipe with ←/→ or select a tab with 1-9."},
	{Title: "Starred", Icon: "★", Body: "Starred messages appear here."},
	{Title: "Drafts", Body: "No drafts."},
	{Title: "Sent", Body: "Sent messages appear here."},
	{Title: "Scheduled", Body: "Nothing scheduled."},
	{Title: "Archive", Body: "Archived messages appear here."},
	{Title: "Spam", Body: "No spam. Nice."},
	{Title: "Trash", Body: "Trash is empty."},
}

// loadDeck reads pages from the YAML file at path, or returns the default
// deck if path is empty.
func loadDeck(path string) ([]tui.Page, error) {
	if path == "" {
		return defaultDeck, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading deck: %w", err)
	}
	return parseDeck(data)
}

func parseDeck(data []byte) ([]tui.Page, error) {
	var d deck
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing deck: %w", err)
	}
	if len(d.Pages) == 0 {
		return nil, errEmptyDeck
	}
	for i, p := range d.Pages {
		if p.Title == "" && p.Icon == "" {
			return nil, fmt.Errorf("page %d: missing title", i+1)
		}
	}
	return d.Pages, nil
}
