package tui

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/require"
)

// Start starts the TUI and blocks until the user exits.
func Start(opts Options) error {
	p, err := newProgram(opts)
	if err != nil {
		return err
	}
	defer p.cleanup()

	tp := tea.NewProgram(p.model,
		// Use the full size of the terminal with its "alternate screen buffer"
		tea.WithAltScreen(),
	)
	// Relay events in background
	go func() {
		for msg := range p.ch {
			tp.Send(msg)
		}
	}()
	// Blocks until user quits
	_, err = tp.Run()
	return err
}

// StartTest starts the TUI and returns a test model for testing purposes.
func StartTest(t *testing.T, opts Options, width, height int) *teatest.TestModel {
	p, err := newProgram(opts)
	require.NoError(t, err)

	tm := teatest.NewTestModel(t, p.model, teatest.WithInitialTermSize(width, height))
	t.Cleanup(func() {
		p.cleanup()
		tm.Quit()
	})

	// Relay events in background
	go func() {
		for msg := range p.ch {
			tm.Send(msg)
		}
	}()
	return tm
}

type program struct {
	model   model
	ch      chan tea.Msg
	cleanup func()
}

func newProgram(opts Options) (*program, error) {
	m, err := newModel(opts)
	if err != nil {
		return nil, err
	}
	// Relay events to TUI. Deliberately set up subscriptions *before* any
	// events are triggered, to ensure the TUI receives all messages.
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan tea.Msg)
	wg := sync.WaitGroup{} // sync closure of subscriptions

	logEvents := m.logger.Subscribe(ctx)
	wg.Add(1)
	go func() {
		for ev := range logEvents {
			ch <- ev
		}
		wg.Done()
	}()

	stripEvents := m.engine.Subscribe(ctx)
	wg.Add(1)
	go func() {
		for ev := range stripEvents {
			ch <- ev
		}
		wg.Done()
	}()

	pagerMsgs := m.handle.Messages()
	wg.Add(1)
	go func() {
		for msg := range pagerMsgs {
			ch <- msg
		}
		wg.Done()
	}()

	// cleanup function to be invoked when program is terminated.
	cleanup := func() {
		// Close subscriptions
		cancel()
		m.handle.Dispose()

		// Wait for relays to finish before closing channel, to avoid sends
		// to a closed channel, which would result in a panic.
		wg.Wait()
		close(ch)

		m.engine.Close()
		m.sim.Shutdown()
		if m.dump != nil {
			m.dump.Close()
		}
	}

	return &program{
		cleanup: cleanup,
		ch:      ch,
		model:   m,
	}, nil
}
