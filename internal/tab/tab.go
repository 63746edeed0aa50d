package tab

import (
	"fmt"
	"log/slog"

	"github.com/leg100/tabstrip/internal/resource"
)

// InvalidPosition is the position of a tab that is not attached to a
// registry.
const InvalidPosition = -1

// Tab is a single entry in the strip. A tab is permanently bound to the
// registry that created it.
type Tab struct {
	resource.ID

	text        string
	icon        string
	custom      any
	tag         any
	description string

	position int
	owner    *Registry
}

func (t *Tab) Text() string               { return t.text }
func (t *Tab) Icon() string               { return t.icon }
func (t *Tab) CustomContent() any         { return t.custom }
func (t *Tab) Tag() any                   { return t.tag }
func (t *Tab) ContentDescription() string { return t.description }

// Position is the tab's index in the strip, or InvalidPosition if detached.
func (t *Tab) Position() int { return t.position }

// Attached reports whether the tab currently occupies a position.
func (t *Tab) Attached() bool { return t.position >= 0 }

// Owner returns the registry the tab is bound to.
func (t *Tab) Owner() *Registry { return t.owner }

// Label is what a host renders for the tab absent custom content: the icon,
// if any, followed by the text.
func (t *Tab) Label() string {
	switch {
	case t.icon != "" && t.text != "":
		return t.icon + " " + t.text
	case t.icon != "":
		return t.icon
	default:
		return t.text
	}
}

func (t *Tab) SetText(text string) *Tab {
	t.text = text
	t.changed()
	return t
}

// SetIcon sets a glyph to render before the text. An empty string means no
// icon.
func (t *Tab) SetIcon(icon string) *Tab {
	t.icon = icon
	t.changed()
	return t
}

// SetCustomContent replaces the text and icon with host-defined content. Nil
// reverts to text and icon.
func (t *Tab) SetCustomContent(content any) *Tab {
	t.custom = content
	t.changed()
	return t
}

func (t *Tab) SetTag(tag any) *Tab {
	t.tag = tag
	return t
}

func (t *Tab) SetContentDescription(desc string) *Tab {
	t.description = desc
	t.changed()
	return t
}

// Select asks the owning registry's selector to select this tab.
func (t *Tab) Select() {
	t.owner.selectTab(t)
}

func (t *Tab) String() string {
	return fmt.Sprintf("%s(#%d)", t.text, t.position)
}

func (t *Tab) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", t.ID.String()),
		slog.String("text", t.text),
		slog.Int("position", t.position),
	)
}

func (t *Tab) changed() {
	if t.Attached() {
		t.owner.updated(t)
	}
}
