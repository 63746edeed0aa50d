package pager

import (
	"context"
	"math"

	"github.com/leg100/tabstrip/internal/logging"
	"github.com/leg100/tabstrip/internal/pubsub"
	"github.com/leg100/tabstrip/internal/resource"
)

var (
	// fractions of the way to the next page at which a swipe emits frames
	dragSteps   = []float64{0.2, 0.4, 0.6}
	settleSteps = []float64{0.8, 1}
)

// Sim is an in-memory pager. Swipes are scripted: each call to Advance emits
// the next frame of the swipe in progress.
type Sim struct {
	titles  []string
	current int
	broker  *pubsub.Broker[Frame]
	pending []Frame
	logger  logging.Interface

	// number of times SetCurrentPage changed the page
	sets int
}

func NewSim(titles []string, logger logging.Interface) *Sim {
	if logger == nil {
		logger = logging.Discard
	}
	return &Sim{
		titles: titles,
		broker: pubsub.NewBroker[Frame](logger),
		logger: logger,
	}
}

func (s *Sim) PageCount() int { return len(s.titles) }

func (s *Sim) PageTitle(index int) string {
	if index < 0 || index >= len(s.titles) {
		return ""
	}
	return s.titles[index]
}

func (s *Sim) CurrentPage() int { return s.current }

// SetCurrentPage jumps straight to the page, abandoning any swipe.
func (s *Sim) SetCurrentPage(index int) {
	if index < 0 || index >= len(s.titles) || index == s.current {
		return
	}
	s.pending = nil
	s.current = index
	s.sets++
	s.broker.Publish(FrameEvent, Frame{State: Idle, Position: index})
}

// AddPage appends a page and returns its index.
func (s *Sim) AddPage(title string) int {
	s.titles = append(s.titles, title)
	return len(s.titles) - 1
}

// RemovePage removes the page at index, keeping the current page unless it
// was the one removed, in which case the page before it becomes current.
func (s *Sim) RemovePage(index int) {
	if index < 0 || index >= len(s.titles) {
		return
	}
	s.pending = nil
	s.titles = append(s.titles[:index], s.titles[index+1:]...)
	if index <= s.current {
		s.current = max(0, s.current-1)
	}
}

// RemoveAllPages removes every page.
func (s *Sim) RemoveAllPages() {
	s.pending = nil
	s.titles = nil
	s.current = 0
}

func (s *Sim) Subscribe(ctx context.Context) <-chan resource.Event[Frame] {
	return s.broker.Subscribe(ctx)
}

// BeginSwipe starts swiping delta pages, i.e. 1 to the next page and -1 to
// the previous. It reports false if there is no such page or a swipe is
// already in progress.
func (s *Sim) BeginSwipe(delta int) bool {
	if s.Swiping() || delta == 0 {
		return false
	}
	target := s.current + delta
	if target < 0 || target >= len(s.titles) {
		return false
	}
	for _, f := range dragSteps {
		s.pending = append(s.pending, s.frameAt(Dragging, delta, f))
	}
	for _, f := range settleSteps {
		s.pending = append(s.pending, s.frameAt(Settling, delta, f))
	}
	s.pending = append(s.pending, Frame{State: Idle, Position: target})
	s.logger.Debug("began swipe", "from", s.current, "to", target)
	return true
}

// Advance emits the next frame of the swipe in progress. It reports whether
// more frames remain.
func (s *Sim) Advance() bool {
	if len(s.pending) == 0 {
		return false
	}
	f := s.pending[0]
	s.pending = s.pending[1:]
	if f.State == Idle {
		s.current = f.Position
	}
	s.broker.Publish(FrameEvent, f)
	return len(s.pending) > 0
}

func (s *Sim) Swiping() bool { return len(s.pending) > 0 }

// Shutdown closes all subscriptions.
func (s *Sim) Shutdown() {
	s.broker.Shutdown()
}

func (s *Sim) frameAt(state DragState, delta int, fraction float64) Frame {
	x := float64(s.current) + float64(delta)*fraction
	pos := math.Floor(x + 1e-9)
	offset := x - pos
	if offset < 1e-9 {
		offset = 0
	}
	return Frame{State: state, Position: int(pos), Offset: offset}
}
