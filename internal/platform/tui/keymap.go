package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dimensions/internal/core"
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Fast       key.Binding
	Confirm    key.Binding
	Back       key.Binding
	ToggleEasy key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Back, k.ToggleEasy, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Fast},
		{k.Confirm, k.Back, k.ToggleEasy},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "shift+up", "W"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "shift+down", "S"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "shift+left", "A"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "shift+right", "D"),
			key.WithHelp("→/d", "right"),
		),
		Fast: key.NewBinding(
			key.WithKeys("shift+up", "shift+down", "shift+left", "shift+right", "W", "A", "S", "D"),
			key.WithHelp("shift", "boost"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "home"),
		),
		ToggleEasy: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "pro/noob"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// Actions translates a key message to game actions.
// A shifted direction yields both the direction and ActionFast.
func (k KeyMap) Actions(msg tea.KeyMsg) []core.Action {
	var actions []core.Action
	bindings := []struct {
		b key.Binding
		a core.Action
	}{
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Fast, core.ActionFast},
		{k.Confirm, core.ActionConfirm},
		{k.Back, core.ActionBack},
		{k.ToggleEasy, core.ActionToggleEasy},
		{k.Quit, core.ActionQuit},
	}
	for _, kb := range bindings {
		if key.Matches(msg, kb.b) {
			actions = append(actions, kb.a)
		}
	}
	return actions
}

// continuous reports whether an action is polled as held rather than pressed.
func continuous(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionFast:
		return true
	}
	return false
}

// holdTracker turns key-repeat events into held state. Terminals report no
// key release, so an action stays held for window after its last press.
type holdTracker struct {
	window time.Duration
	last   map[core.Action]time.Time
}

func newHoldTracker(window time.Duration) *holdTracker {
	return &holdTracker{window: window, last: make(map[core.Action]time.Time)}
}

// press records a key-down of a continuous action at now.
func (h *holdTracker) press(a core.Action, now time.Time) {
	if continuous(a) {
		h.last[a] = now
	}
}

// apply marks every action still inside its window as held.
// Expired actions are forgotten.
func (h *holdTracker) apply(frame *core.InputFrame, now time.Time) {
	for a, at := range h.last {
		if now.Sub(at) > h.window {
			delete(h.last, a)
			continue
		}
		frame.Hold(a)
	}
}

// release drops all held state. Used when the window loses focus.
func (h *holdTracker) release() {
	clear(h.last)
}
