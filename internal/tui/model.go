// Package tui is the terminal adapter: it turns key presses into session
// commands and draws whatever View the session last published.
package tui

import (
	"context"
	"ctchen222/Noughts-And-Crosses/internal/events"
	"ctchen222/Noughts-And-Crosses/internal/game"
	"ctchen222/Noughts-And-Crosses/internal/session"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

type viewMsg session.View

type sessionDoneMsg struct{}

// Model never mutates game state. It only forwards commands and renders views.
type Model struct {
	commands chan<- events.Event
	views    <-chan session.View
	view     session.View
	quitting bool
}

func New(commands chan<- events.Event, views <-chan session.View, initial session.View) *Model {
	return &Model{
		commands: commands,
		views:    views,
		view:     initial,
	}
}

// Run blocks until the user quits, the session ends or ctx is cancelled.
// Cancellation is not reported as an error.
func Run(ctx context.Context, m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

func (m *Model) Init() tea.Cmd {
	return waitForView(m.views)
}

func waitForView(views <-chan session.View) tea.Cmd {
	return func() tea.Msg {
		v, ok := <-views
		if !ok {
			return sessionDoneMsg{}
		}
		return viewMsg(v)
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case viewMsg:
		m.view = session.View(msg)
		return m, waitForView(m.views)

	case sessionDoneMsg:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyMsg:
		ev, ok := commandFor(msg.String())
		if !ok {
			return m, nil
		}
		m.dispatch(ev)
		if _, quit := ev.(events.Quit); quit {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// dispatch never blocks the UI. A full inbox means the session is stuck.
func (m *Model) dispatch(ev events.Event) {
	select {
	case m.commands <- ev:
	default:
		slog.Warn("Dropping input, session inbox is full", "event", events.Name(ev))
	}
}

// commandFor maps a key to a session command. Unknown keys are ignored.
func commandFor(key string) (events.Event, bool) {
	switch key {
	case "up":
		return events.MoveUp{}, true
	case "down":
		return events.MoveDown{}, true
	case "left":
		return events.MoveLeft{}, true
	case "right":
		return events.MoveRight{}, true
	case "enter":
		return events.Confirm{}, true
	case "s":
		return events.StartGame{}, true
	case "n":
		return events.NewGame{}, true
	case "e":
		return events.SetDifficulty{Difficulty: game.Easy}, true
	case "h":
		return events.SetDifficulty{Difficulty: game.Hard}, true
	case "c":
		return events.ToggleOpponent{}, true
	case "esc", "q", "ctrl+c":
		return events.Quit{}, true
	}
	return nil, false
}
