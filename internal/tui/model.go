// Package tui hosts the tab strip in the terminal: one cell is one pixel.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"github.com/leg100/tabstrip/internal/layout"
	"github.com/leg100/tabstrip/internal/logging"
	"github.com/leg100/tabstrip/internal/pager"
	"github.com/leg100/tabstrip/internal/resource"
	"github.com/leg100/tabstrip/internal/strip"
	"github.com/leg100/tabstrip/internal/tab"
	"github.com/leg100/tabstrip/internal/tui/keys"
	"github.com/leg100/tabstrip/internal/version"
)

const (
	DefaultFrameInterval = 16 * time.Millisecond
	DefaultSwipeInterval = 60 * time.Millisecond
)

// Page is a page of the simulated pager.
type Page struct {
	Title string `yaml:"title"`
	Icon  string `yaml:"icon"`
	Body  string `yaml:"body"`
}

type Options struct {
	Pages  []Page
	Strip  strip.Options
	Logger *logging.Logger
	Colors Colors
	// Debug dumps every message received to messages.log.
	Debug bool

	// FrameInterval is the time between rendered frames while animating.
	FrameInterval time.Duration
	// SwipeInterval is the time between frames of a simulated swipe.
	SwipeInterval time.Duration
}

type (
	frameMsg time.Time
	swipeMsg time.Time
)

type model struct {
	engine   *strip.Engine
	sim      *pager.Sim
	handle   *pager.Handle
	logger   *logging.Logger
	scroller *hscroll
	canvas   *canvas
	styles   stripStyles

	bodies []string
	labels []string
	bounds []layout.Bounds

	width  int
	height int

	frameInterval time.Duration
	swipeInterval time.Duration
	// animating is true while a frame tick is outstanding; swiping likewise
	// for a swipe tick.
	animating bool
	swiping   bool

	showHelp bool

	// Either an error or an informational message is rendered in the footer.
	err  error
	info string

	dump *os.File
}

func newModel(opts Options) (model, error) {
	var dump *os.File
	if opts.Debug {
		var err error
		dump, err = os.OpenFile("messages.log", os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o755)
		if err != nil {
			return model{}, err
		}
	}
	if opts.FrameInterval == 0 {
		opts.FrameInterval = DefaultFrameInterval
	}
	if opts.SwipeInterval == 0 {
		opts.SwipeInterval = DefaultSwipeInterval
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewLogger(logging.Options{})
	}

	m := model{
		logger:        opts.Logger,
		scroller:      &hscroll{},
		canvas:        &canvas{},
		styles:        newStripStyles(opts.Colors),
		frameInterval: opts.FrameInterval,
		swipeInterval: opts.SwipeInterval,
		dump:          dump,
	}

	stripOpts := opts.Strip
	stripOpts.Logger = opts.Logger
	stripOpts.Surface = m.canvas
	stripOpts.Scroller = m.scroller
	if stripOpts.Now == nil {
		stripOpts.Now = time.Now
	}
	m.engine = strip.New(stripOpts)

	titles := make([]string, len(opts.Pages))
	for i, p := range opts.Pages {
		titles[i] = p.Title
		m.bodies = append(m.bodies, p.Body)
	}
	m.sim = pager.NewSim(titles, opts.Logger)
	m.handle = pager.Bind(context.Background(), m.engine, m.sim, opts.Logger)

	for i, p := range opts.Pages {
		if p.Icon == "" {
			continue
		}
		if t, err := m.engine.Tab(i); err == nil {
			t.SetIcon(p.Icon)
		}
	}
	return m, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.dump != nil {
		spew.Fdump(m.dump, msg)
	}

	cmd := m.update(msg)

	// Render a frame, and keep rendering frames for as long as animations
	// are running.
	cmds := []tea.Cmd{cmd}
	if m.engine.Tick(time.Now()) && !m.animating {
		m.animating = true
		cmds = append(cmds, tea.Tick(m.frameInterval, func(t time.Time) tea.Msg {
			return frameMsg(t)
		}))
	}
	return m, tea.Batch(cmds...)
}

func (m *model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
	case tea.KeyMsg:
		// Pressing any key makes any info/error message in the footer disappear
		m.info = ""
		m.err = nil

		switch {
		case key.Matches(msg, keys.Global.Quit):
			return tea.Quit
		case key.Matches(msg, keys.Global.Help):
			m.showHelp = !m.showHelp
		case key.Matches(msg, keys.Strip.Prev):
			return m.swipe(-1)
		case key.Matches(msg, keys.Strip.Next):
			return m.swipe(1)
		case key.Matches(msg, keys.Strip.Select):
			i := int(msg.String()[0] - '1')
			t, err := m.engine.Tab(i)
			if err != nil {
				m.err = fmt.Errorf("selecting tab %d: %w", i+1, err)
				return nil
			}
			m.engine.SelectTab(t)
		case key.Matches(msg, keys.Strip.Reselect):
			m.engine.SelectTab(m.engine.Selected())
		case key.Matches(msg, keys.Strip.Add):
			m.addTab()
		case key.Matches(msg, keys.Strip.Remove):
			m.removeTab()
		case key.Matches(msg, keys.Strip.RemoveAll):
			m.sim.RemoveAllPages()
			m.engine.RemoveAllTabs()
			m.bodies = nil
			m.relayout()
		case key.Matches(msg, keys.Strip.Mode):
			if m.engine.Mode() == layout.Scrollable {
				m.engine.SetMode(layout.Fixed)
			} else {
				m.engine.SetMode(layout.Scrollable)
			}
			m.relayout()
		case key.Matches(msg, keys.Strip.Gravity):
			if m.engine.Gravity() == layout.Fill {
				m.engine.SetGravity(layout.Center)
			} else {
				m.engine.SetGravity(layout.Fill)
			}
			m.relayout()
		}
	case pager.Msg:
		m.handle.Handle(msg)
	case resource.Event[*tab.Tab]:
		switch msg.Type {
		case strip.TabSelectedEvent:
			m.info = fmt.Sprintf("selected %s", label(msg.Payload))
		case strip.GravityFallbackEvent:
			m.info = "tabs don't fit centered: fell back to fill"
		case resource.UpdatedEvent:
			m.relayout()
		}
	case swipeMsg:
		m.swiping = m.sim.Advance()
		if m.swiping {
			return m.swipeTick()
		}
	case frameMsg:
		m.animating = false
	}
	return nil
}

func (m *model) swipe(delta int) tea.Cmd {
	if !m.sim.BeginSwipe(delta) || m.swiping {
		return nil
	}
	m.swiping = true
	return m.swipeTick()
}

func (m *model) swipeTick() tea.Cmd {
	return tea.Tick(m.swipeInterval, func(t time.Time) tea.Msg {
		return swipeMsg(t)
	})
}

func (m *model) addTab() {
	title := fmt.Sprintf("Tab %d", m.engine.Count()+1)
	m.sim.AddPage(title)
	m.bodies = append(m.bodies, "")
	if err := m.engine.AddTab(m.engine.NewTab().SetText(title)); err != nil {
		m.err = fmt.Errorf("adding tab: %w", err)
		return
	}
	m.relayout()
}

func (m *model) removeTab() {
	i := m.engine.SelectedPosition()
	if i < 0 {
		return
	}
	m.sim.RemovePage(i)
	m.bodies = append(m.bodies[:i], m.bodies[i+1:]...)
	if err := m.engine.RemoveTabAt(i); err != nil {
		m.err = fmt.Errorf("removing tab: %w", err)
		return
	}
	m.relayout()
}

// relayout measures the tabs and reports their bounds to the engine.
func (m *model) relayout() {
	if m.width == 0 {
		return
	}
	m.labels, m.bounds = measure(m.engine, m.width)
	m.scroller.setMax(layout.ContentWidth(m.bounds) - m.width)
	m.engine.Layout(m.width, m.bounds)
}

var (
	titleStyle = Bold.Copy().Foreground(Pink).Margin(0, 1)
	metaStyle  = Regular.Copy().Foreground(LightGrey)
)

const (
	headerHeight         = 1
	stripHeight          = 2
	horizontalRuleHeight = 1
	footerHeight         = 2
)

func (m model) View() string {
	if m.width == 0 {
		return ""
	}

	title := titleStyle.Render("tabstrip")
	meta := metaStyle.Render(fmt.Sprintf("%s %s %s %s",
		m.engine.Mode(), m.engine.Gravity(), m.engine.State(), version.Version,
	))
	header := lipgloss.JoinHorizontal(lipgloss.Left,
		title,
		Regular.Copy().
			Width(max(0, m.width-lipgloss.Width(title)-1)).
			Align(lipgloss.Right).
			Render(meta),
	)

	x := m.scroller.ScrollX()
	tabs := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.renderLabels(m.engine, m.labels, m.bounds, x, m.width),
		m.styles.renderIndicator(m.canvas.indicator, m.canvas.underline, x, m.width),
	)

	var (
		content  string
		bindings []key.Binding
	)
	if m.showHelp {
		content = fullHelpView(
			keys.KeyMapToSlice(keys.Strip),
			keys.KeyMapToSlice(keys.Global),
		)
		bindings = []key.Binding{
			key.NewBinding(
				key.WithKeys("?"),
				key.WithHelp("?", "close help"),
			),
		}
	} else {
		content = m.body()
		bindings = append(keys.KeyMapToSlice(keys.Strip), keys.KeyMapToSlice(keys.Global)...)
	}

	// Page number goes in the bottom right corner of the footer.
	var pageNumber string
	if n := m.sim.PageCount(); n > 0 {
		pageNumber = Padded.Copy().Render(fmt.Sprintf("%d/%d", m.sim.CurrentPage()+1, n))
	}
	footerWidth := m.width - lipgloss.Width(pageNumber)

	return lipgloss.JoinVertical(
		lipgloss.Top,
		header,
		tabs,
		lipgloss.NewStyle().
			Margin(1, 1, 0, 1).
			Height(m.contentHeight()).
			MaxHeight(m.contentHeight()+1).
			Render(content),
		strings.Repeat("─", m.width),
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			Regular.Copy().
				Inline(true).
				MaxWidth(footerWidth).
				Width(footerWidth).
				Render(m.footerMessage()),
			pageNumber,
		),
		Padded.Copy().Render(shortHelpView(bindings, m.width-2)),
	)
}

func (m model) body() string {
	if m.sim.PageCount() == 0 {
		return metaStyle.Render("no tabs: press a to add one")
	}
	i := m.sim.CurrentPage()
	if i < len(m.bodies) && m.bodies[i] != "" {
		return m.bodies[i]
	}
	return metaStyle.Render(fmt.Sprintf("%s is empty", m.sim.PageTitle(i)))
}

// footerMessage is either an error, an info message, or failing those, the
// most recent log message.
func (m model) footerMessage() string {
	switch {
	case m.err != nil:
		return Padded.Copy().Foreground(Red).Render("Error: " + m.err.Error())
	case m.info != "":
		return Padded.Copy().Render(m.info)
	}
	last, ok := m.logger.Last()
	if !ok {
		return ""
	}
	var color lipgloss.TerminalColor
	switch last.Level {
	case "ERROR":
		color = ErrorLogLevel
	case "WARN":
		color = WarnLogLevel
	case "DEBUG":
		color = DebugLogLevel
	default:
		color = InfoLogLevel
	}
	return Padded.Copy().Render(
		Bold.Copy().Foreground(color).Render(last.Level) + " " + last.Message,
	)
}

// contentHeight is the height available beneath the strip and above the
// footer, less the content's top margin.
func (m model) contentHeight() int {
	return max(0, m.height-headerHeight-stripHeight-horizontalRuleHeight-footerHeight-1)
}
