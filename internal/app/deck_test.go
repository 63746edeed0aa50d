package app

import (
	"testing"

	"github.com/leg100/tabstrip/internal/testutils"
	"github.com/leg100/tabstrip/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDeck(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []tui.Page
		wantErr string
	}{
		{
			name: "pages",
			content: `
pages:
  - title: Overview
    icon: "★"
    body: Everything at a glance
  - title: Activity
`,
			want: []tui.Page{
				{Title: "Overview", Icon: "★", Body: "Everything at a glance"},
				{Title: "Activity"},
			},
		},
		{
			name:    "icon only",
			content: "pages:\n  - icon: \"★\"\n",
			want:    []tui.Page{{Icon: "★"}},
		},
		{
			name:    "no pages",
			content: "pages: []\n",
			wantErr: errEmptyDeck.Error(),
		},
		{
			name:    "missing title",
			content: "pages:\n  - title: one\n  - body: two\n",
			wantErr: "page 2: missing title",
		},
		{
			name:    "invalid yaml",
			content: "pages: [",
			wantErr: "parsing deck",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutils.WriteFile(t, "deck.yaml", tt.content)

			got, err := loadDeck(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadDeck_Default(t *testing.T) {
	got, err := loadDeck("")
	require.NoError(t, err)
	assert.Equal(t, defaultDeck, got)
}

func TestLoadDeck_MissingFile(t *testing.T) {
	_, err := loadDeck("does-not-exist.yaml")
	assert.ErrorContains(t, err, "reading deck")
}
