package selector

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap binds keystrokes to the seven navigation actions. It is a plain
// value: hand a copy to New and later changes to the original cannot leak
// into a running selector.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Exit     key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Exit}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.Home, km.End},
		{km.PageUp, km.PageDown, km.Exit},
	}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

// DefaultKeyMap carries the classic nethack movement letters alongside the
// standard navigation keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("↓/j", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("h", "pgup"),
		key.WithHelp("pgup/h", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("l", "pgdown"),
		key.WithHelp("pgdn/l", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("y", "home"),
		key.WithHelp("home/y", "first"),
	),
	End: key.NewBinding(
		key.WithKeys("n", "end"),
		key.WithHelp("end/n", "last"),
	),
	Exit: key.NewBinding(
		key.WithKeys("q", "esc"),
		key.WithHelp("q/esc", "exit"),
	),
}
