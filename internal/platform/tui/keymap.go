package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/meowgic/internal/core"
)

// KeyMap holds the key bindings for each game action.
type KeyMap struct {
	RotateLeft   key.Binding
	RotateRight  key.Binding
	MoveForward  key.Binding
	MoveBackward key.Binding
	Jump         key.Binding
	Meow         key.Binding
	Decoy        key.Binding
	Cheat        key.Binding
	ZoomIn       key.Binding
	ZoomOut      key.Binding
	Pause        key.Binding
	Restart      key.Binding
	Quit         key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.MoveForward, k.RotateLeft, k.Jump, k.Meow, k.Decoy, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.MoveForward, k.MoveBackward, k.RotateLeft, k.RotateRight},
		{k.Jump, k.Meow, k.Decoy, k.Cheat},
		{k.ZoomIn, k.ZoomOut, k.Pause, k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		RotateLeft: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "turn left"),
		),
		RotateRight: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "turn right"),
		),
		MoveForward: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "step"),
		),
		MoveBackward: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "back"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "jump"),
		),
		Meow: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "meow"),
		),
		Decoy: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "decoy"),
		),
		Cheat: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "magnet"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "zoom out"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
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
	keys     KeyMap
	bindings []actionBinding
}

type actionBinding struct {
	binding *key.Binding
	action  core.Action
}

// NewKeyMapper creates a key mapper for the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	km := &KeyMapper{keys: keys}
	k := &km.keys
	km.bindings = []actionBinding{
		{&k.Quit, core.ActionQuit},
		{&k.RotateLeft, core.ActionRotateLeft},
		{&k.RotateRight, core.ActionRotateRight},
		{&k.MoveForward, core.ActionMoveForward},
		{&k.MoveBackward, core.ActionMoveBackward},
		{&k.Jump, core.ActionJump},
		{&k.Meow, core.ActionMeow},
		{&k.Decoy, core.ActionDropDecoy},
		{&k.Cheat, core.ActionToggleCheat},
		{&k.ZoomIn, core.ActionZoomIn},
		{&k.ZoomOut, core.ActionZoomOut},
		{&k.Pause, core.ActionPause},
		{&k.Restart, core.ActionRestart},
	}
	return km
}

// Keys returns the bindings, for the help view.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range km.bindings {
		if key.Matches(msg, *b.binding) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}
