package tab

import (
	"errors"
	"fmt"

	"github.com/leg100/tabstrip/internal/resource"
)

var (
	// ErrOwnership is returned when a tab is used with a registry that did
	// not create it.
	ErrOwnership = errors.New("tab belongs to a different registry")
	// ErrRange is returned when an index is out of bounds.
	ErrRange = errors.New("tab index out of range")
	// ErrAttached is returned when adding a tab that already occupies a
	// position.
	ErrAttached = fmt.Errorf("tab already attached: %w", resource.ErrExists)
)

// Selector performs selection on behalf of the registry, i.e. after an add
// with selectAfterAdd, or after the selected tab is removed.
type Selector interface {
	SelectTab(t *Tab)
}

// Observer is notified when an attached tab's payload changes, so that the
// host can re-measure it.
type Observer interface {
	TabUpdated(t *Tab)
}

// Registry is the ordered collection of tabs. Positions are always
// 0..Count()-1, in visual order.
type Registry struct {
	resource.ID

	tabs     []*Tab
	selected *Tab
	// selectedPos caches the selected tab's position; it always equals
	// selected.position.
	selectedPos int

	selector Selector
	observer Observer
}

// NewRegistry constructs a registry. Selection requests are delegated to
// selector, which may be nil, in which case the registry records the
// selection itself.
func NewRegistry(selector Selector) *Registry {
	return &Registry{
		ID:          resource.NewID(resource.Registry),
		selector:    selector,
		selectedPos: InvalidPosition,
	}
}

// SetObserver registers the observer of payload changes.
func (r *Registry) SetObserver(o Observer) {
	r.observer = o
}

// NewTab creates a detached tab bound to this registry.
func (r *Registry) NewTab() *Tab {
	return &Tab{
		ID:       resource.NewID(resource.Tab),
		position: InvalidPosition,
		owner:    r,
	}
}

// Add inserts the tab at index, shifting tabs at or after index up by one. If
// selectAfterAdd is true the tab is selected once the insertion completes.
func (r *Registry) Add(t *Tab, index int, selectAfterAdd bool) error {
	if t.owner != r {
		return fmt.Errorf("adding %s: %w", t.ID, ErrOwnership)
	}
	if t.Attached() {
		return fmt.Errorf("adding %s: %w", t.ID, ErrAttached)
	}
	if index < 0 || index > len(r.tabs) {
		return fmt.Errorf("adding tab at %d with %d tabs: %w", index, len(r.tabs), ErrRange)
	}
	r.tabs = append(r.tabs, nil)
	copy(r.tabs[index+1:], r.tabs[index:])
	r.tabs[index] = t
	r.renumber(index)

	if selectAfterAdd {
		r.selectTab(t)
	}
	return nil
}

// Append adds the tab at the end.
func (r *Registry) Append(t *Tab, selectAfterAdd bool) error {
	return r.Add(t, len(r.tabs), selectAfterAdd)
}

// RemoveAt detaches the tab at index and renumbers the remaining tabs. If the
// removed tab was selected, the tab now at max(0, index-1) is selected, or
// none if the registry is empty.
func (r *Registry) RemoveAt(index int) (*Tab, error) {
	if index < 0 || index >= len(r.tabs) {
		return nil, fmt.Errorf("removing tab at %d with %d tabs: %w", index, len(r.tabs), ErrRange)
	}
	removed := r.tabs[index]
	wasSelected := removed == r.selected

	r.tabs = append(r.tabs[:index], r.tabs[index+1:]...)
	removed.position = InvalidPosition
	r.renumber(index)

	if wasSelected {
		if len(r.tabs) == 0 {
			r.selectTab(nil)
		} else {
			r.selectTab(r.tabs[max(0, index-1)])
		}
	}
	return removed, nil
}

// Remove detaches the given tab.
func (r *Registry) Remove(t *Tab) error {
	if t.owner != r {
		return fmt.Errorf("removing %s: %w", t.ID, ErrOwnership)
	}
	if !t.Attached() {
		return fmt.Errorf("removing detached %s: %w", t.ID, ErrRange)
	}
	_, err := r.RemoveAt(t.position)
	return err
}

// RemoveAll detaches every tab and clears the selection.
func (r *Registry) RemoveAll() []*Tab {
	removed := r.tabs
	for _, t := range removed {
		t.position = InvalidPosition
	}
	r.tabs = nil
	r.selected = nil
	r.selectedPos = InvalidPosition
	return removed
}

// Get returns the tab at index.
func (r *Registry) Get(index int) (*Tab, error) {
	if index < 0 || index >= len(r.tabs) {
		return nil, fmt.Errorf("getting tab at %d with %d tabs: %w", index, len(r.tabs), ErrRange)
	}
	return r.tabs[index], nil
}

// Lookup retrieves an attached tab by its ID.
func (r *Registry) Lookup(id resource.ID) (*Tab, error) {
	for _, t := range r.tabs {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", id, resource.ErrNotFound)
}

func (r *Registry) Count() int {
	return len(r.tabs)
}

// Tabs returns the tabs in visual order.
func (r *Registry) Tabs() []*Tab {
	return append([]*Tab(nil), r.tabs...)
}

// Selected returns the selected tab, or nil. The returned tab may be detached
// if it was removed and no replacement has been selected yet.
func (r *Registry) Selected() *Tab {
	return r.selected
}

// SelectedPosition is the cached position of the selected tab, or
// InvalidPosition.
func (r *Registry) SelectedPosition() int {
	return r.selectedPos
}

// SetSelected records the selection. It is for use by the Selector, which
// is responsible for notifications.
func (r *Registry) SetSelected(t *Tab) {
	r.selected = t
	if t == nil {
		r.selectedPos = InvalidPosition
		return
	}
	r.selectedPos = t.position
}

func (r *Registry) selectTab(t *Tab) {
	if r.selector != nil {
		r.selector.SelectTab(t)
		return
	}
	r.SetSelected(t)
}

func (r *Registry) updated(t *Tab) {
	if r.observer != nil {
		r.observer.TabUpdated(t)
	}
}

// renumber re-derives positions for every tab at or after from, keeping the
// cached selected position in step.
func (r *Registry) renumber(from int) {
	for i := from; i < len(r.tabs); i++ {
		r.tabs[i].position = i
	}
	if r.selected != nil {
		r.selectedPos = r.selected.position
	}
}
