package tuipager

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the component's key bindings. Turns move one page with an
// animated slide; scrubs drag the surface and settle like a wheel gesture.
type KeyMap struct {
	PageLeft   key.Binding
	PageRight  key.Binding
	ScrubLeft  key.Binding
	ScrubRight key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		PageLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "page left"),
		),
		PageRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "page right"),
		),
		ScrubLeft: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("shift+←", "scrub left"),
		),
		ScrubRight: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp("shift+→", "scrub right"),
		),
	}
}

// ShortHelp implements the bubbles help interface.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PageLeft, k.PageRight}
}

// FullHelp implements the bubbles help interface.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PageLeft, k.PageRight},
		{k.ScrubLeft, k.ScrubRight},
	}
}
