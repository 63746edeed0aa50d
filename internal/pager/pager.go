// Package pager binds a strip engine to a pager: a horizontally swiping set
// of pages whose scroll position drives the strip, and whose current page
// follows the strip's selection.
package pager

import (
	"context"
	"fmt"

	"github.com/leg100/tabstrip/internal/resource"
)

// DragState is the pager's scroll state.
type DragState int

const (
	Idle DragState = iota
	Dragging
	Settling
)

func (s DragState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Settling:
		return "settling"
	default:
		return "unknown"
	}
}

// FrameEvent is the type of event a pager publishes for each frame.
const FrameEvent resource.EventType = "frame"

// Frame is the pager's scroll position: a point offset of the way between
// page Position and the page after it.
type Frame struct {
	State    DragState
	Position int
	Offset   float64
}

func (f Frame) String() string {
	return fmt.Sprintf("%s(%d+%.2f)", f.State, f.Position, f.Offset)
}

// Pager is implemented by the host's pager.
type Pager interface {
	PageCount() int
	PageTitle(index int) string
	CurrentPage() int
	// SetCurrentPage scrolls the pager to the page.
	SetCurrentPage(index int)
	// Subscribe to frames. The subscription lasts until the context is
	// canceled.
	Subscribe(ctx context.Context) <-chan resource.Event[Frame]
}
