package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bounce-shield/internal/core"
)

// GameKeyMap defines the key bindings used while a game is running.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Fullscreen key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Pause, k.Restart, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Pause, k.Restart, k.Fullscreen},
		{k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns the default in-game bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
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
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fullscreen"),
			key.WithDisabled(), // No terminal equivalent
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings for help rendering.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight, false
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause, false
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, false
	case slices.Contains(km.keys.Fullscreen.Keys(), msg.String()):
		return core.ActionFullscreen, false
	case key.Matches(msg, km.keys.Back):
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}

// HoldTracker emulates key state on terminals, which only report presses.
// A press keeps its action held for the hold window; auto-repeat presses
// refresh it.
type HoldTracker struct {
	window    float64
	remaining map[core.Action]float64
}

// NewHoldTracker creates a tracker with the given hold window in seconds.
func NewHoldTracker(window float64) *HoldTracker {
	return &HoldTracker{
		window:    window,
		remaining: make(map[core.Action]float64),
	}
}

// Press starts or refreshes the hold for a movement action.
// Opposite directions cancel each other.
func (h *HoldTracker) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(h.remaining, core.ActionRight)
	case core.ActionRight:
		delete(h.remaining, core.ActionLeft)
	}
	h.remaining[a] = h.window
}

// Apply marks every live hold on the frame, then ages holds by dt.
func (h *HoldTracker) Apply(frame *core.InputFrame, dt float64) {
	for a, left := range h.remaining {
		if left <= 0 {
			delete(h.remaining, a)
			continue
		}
		frame.Hold(a)
		h.remaining[a] = left - dt
	}
}

// Release drops all holds.
func (h *HoldTracker) Release() {
	clear(h.remaining)
}
