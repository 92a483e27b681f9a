package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blocks/internal/core"
)

// DefaultRepeatWindow is the longest gap between two presses of the same key
// that still counts as the key being held.
const DefaultRepeatWindow = 150 * time.Millisecond

// KeyMap holds the key bindings of a session.
type KeyMap struct {
	Launch     key.Binding
	Left       key.Binding
	Right      key.Binding
	Pause      key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Launch: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start/launch"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Launch, k.Left, k.Right, k.Pause, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Screenshot}}
}

// KeyMapper translates Bubble Tea key messages to key events.
// Terminals do not report key repeat, so a press of the same action within
// the repeat window of the previous one is marked as a repeat.
type KeyMapper struct {
	keys   KeyMap
	window time.Duration
	last   core.Action
	lastAt time.Time
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper(window time.Duration) *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap(), window: window}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// Action returns the action bound to msg, or ActionNone.
func (km *KeyMapper) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.keys.Screenshot):
		return core.ActionScreenshot
	case key.Matches(msg, km.keys.Launch):
		return core.ActionLaunch
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}

// Map translates msg received at now into a key event.
func (km *KeyMapper) Map(msg tea.KeyMsg, now time.Time) core.KeyEvent {
	action := km.Action(msg)
	if action == core.ActionNone {
		return core.KeyEvent{}
	}

	repeat := action == km.last && !km.lastAt.IsZero() && now.Sub(km.lastAt) <= km.window
	km.last = action
	km.lastAt = now

	return core.KeyEvent{Action: action, Repeat: repeat}
}
