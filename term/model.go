// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package term

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/danielhkuo/widgetyy/progress"
)

type tickMsg time.Time

type keyMap struct {
	Quit key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Model owns the refresh timer and recomputes the target on every tick.
type Model struct {
	target Target
	clock  progress.Clock
	now    time.Time
}

// New creates a Model showing target as of clock.Now().
func New(target Target, clock progress.Clock) Model {
	return Model{target: target, clock: clock, now: clock.Now()}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// tickCmd schedules the next recompute. Quitting drops the pending tick.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.target.Interval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
	case tickMsg:
		// The clock, not the tick timestamp, is the source of "now"
		m.now = m.clock.Now()
		return m, m.tickCmd()
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	help := keys.Quit.Help()
	return Render(m.target.Snapshot(m.now), help.Key+" "+help.Desc) + "\n"
}

// Run shows target until the user quits or ctx is cancelled.
func Run(ctx context.Context, target Target, clock progress.Clock, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(New(target, clock), opts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
