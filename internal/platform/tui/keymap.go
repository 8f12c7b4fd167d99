package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/color-runner/internal/core"
)

// KeyMap translates terminal input into game actions.
// A left mouse press stands in for a tap.
type KeyMap struct {
	Activate key.Binding
	Start    key.Binding
	Restart  key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Activate: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space/click", "start, then switch color"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "play again"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
	}
}

// Action maps a key or mouse message to an action.
// Anything unbound maps to ActionNone.
func (km KeyMap) Action(msg tea.Msg) core.Action {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, km.Quit):
			return core.ActionQuit
		case key.Matches(msg, km.Activate):
			return core.ActionActivate
		case key.Matches(msg, km.Start):
			return core.ActionStart
		case key.Matches(msg, km.Restart):
			return core.ActionRestart
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return core.ActionActivate
		}
	}
	return core.ActionNone
}

// ShortHelp lists the bindings in the order the play command documents them.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Activate, km.Start, km.Restart, km.Quit}
}
