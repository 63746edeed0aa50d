package pager

import (
	"context"

	"github.com/leg100/tabstrip/internal/logging"
	"github.com/leg100/tabstrip/internal/resource"
	"github.com/leg100/tabstrip/internal/strip"
	"github.com/leg100/tabstrip/internal/tab"
)

// Msg is an event received from either side of a binding. The host delivers
// it to Handle.Handle on the goroutine that owns the engine.
type Msg struct {
	Frame     *resource.Event[Frame]
	Selection *resource.Event[*tab.Tab]
}

// Handle is a binding between an engine and a pager. Once disposed, or once
// the engine is closed, every call is a no-op.
type Handle struct {
	resource.ID

	engine *strip.Engine
	pager  Pager
	logger logging.Interface

	cancel   context.CancelFunc
	msgs     chan Msg
	disposed bool

	// committed is the page whose selection the pager's own settling frame
	// committed, or -1.
	committed int
}

// Bind replaces the engine's tabs with one per page, titled after the page,
// and starts relaying events in both directions. The returned handle's
// Messages must be drained and passed back to Handle.
func Bind(ctx context.Context, engine *strip.Engine, pager Pager, logger logging.Interface) *Handle {
	if logger == nil {
		logger = logging.Discard
	}
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{
		ID:        resource.NewID(resource.Binding),
		engine:    engine,
		pager:     pager,
		logger:    logger,
		cancel:    cancel,
		msgs:      make(chan Msg),
		committed: -1,
	}

	frames := pager.Subscribe(ctx)

	engine.RemoveAllTabs()
	for i := 0; i < pager.PageCount(); i++ {
		t := engine.NewTab().SetText(pager.PageTitle(i))
		if err := engine.AddTab(t); err != nil {
			logger.Error("adding tab for page", "page", i, "error", err)
		}
	}
	if t, err := engine.Tab(pager.CurrentPage()); err == nil && t != engine.Selected() {
		if err := engine.Select(t); err != nil {
			logger.Error("selecting current page", "page", pager.CurrentPage(), "error", err)
		}
	}
	// The pager already shows the selection made while filling the strip.
	selections := engine.Subscribe(ctx)

	logger.Debug("bound pager", "binding", h.ID, "pages", pager.PageCount())

	go func() {
		defer close(h.msgs)
		for frames != nil || selections != nil {
			var msg Msg
			select {
			case ev, ok := <-frames:
				if !ok {
					frames = nil
					continue
				}
				msg.Frame = &ev
			case ev, ok := <-selections:
				if !ok {
					selections = nil
					continue
				}
				msg.Selection = &ev
			}
			select {
			case h.msgs <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()

	return h
}

// Messages returns the channel of relayed events. It is closed once the
// binding is disposed or both subscriptions end.
func (h *Handle) Messages() <-chan Msg {
	return h.msgs
}

// Handle applies a relayed event: pager frames are applied to the engine,
// and the engine's selections are sent back to the pager.
func (h *Handle) Handle(msg Msg) {
	if h.disposed || h.engine.Closed() {
		return
	}
	switch {
	case msg.Frame != nil:
		f := msg.Frame.Payload
		before := h.engine.Selected()
		h.engine.OnExternalScrollFrame(f.Position, f.Offset, f.State != Dragging)
		if h.engine.Selected() != before {
			h.committed = h.engine.SelectedPosition()
		}
	case msg.Selection != nil && msg.Selection.Type == strip.TabSelectedEvent:
		t := msg.Selection.Payload
		if t != h.engine.Selected() {
			// superseded by a later selection
			return
		}
		committed := h.committed
		h.committed = -1
		pos := t.Position()
		if pos == committed {
			// the pager is already settling on it
			return
		}
		if pos >= 0 && pos < h.pager.PageCount() && pos != h.pager.CurrentPage() {
			h.logger.Debug("setting current page", "page", pos, "tab", t.ID)
			h.pager.SetCurrentPage(pos)
		}
	}
}

// Dispose unsubscribes from both sides. Subsequent calls to Handle are
// no-ops.
func (h *Handle) Dispose() {
	if h.disposed {
		return
	}
	h.disposed = true
	h.cancel()
	h.logger.Debug("disposed pager binding", "binding", h.ID)
}

func (h *Handle) Disposed() bool {
	return h.disposed || h.engine.Closed()
}
