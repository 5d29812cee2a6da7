package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// KeyMap defines the key bindings shown in the help footer. Only Quit is
// matched exactly; every other key press activates.
type KeyMap struct {
	Flap key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Flap, k.Quit}}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "enter", "up"),
			key.WithHelp("any key/click", "flap / select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key press to a game event.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.EventKind {
	if key.Matches(msg, k.Quit) {
		return core.EventQuit
	}
	return core.EventActivate
}

// MapMouse translates a mouse message to a game event. Only button presses
// count; motion and releases are ignored.
func MapMouse(msg tea.MouseMsg) core.EventKind {
	if msg.Action != tea.MouseActionPress {
		return core.EventNone
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown,
		tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight, tea.MouseButtonNone:
		return core.EventNone
	}
	return core.EventActivate
}
