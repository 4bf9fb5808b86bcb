package reader

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the reader-level bindings; page turning and scrubbing live
// on the pager's own key map.
type keyMap struct {
	Chapters    key.Binding
	NextChapter key.Binding
	PrevChapter key.Binding
	Cover       key.Binding
	LastPage    key.Binding
	Direction   key.Binding
	Reload      key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Chapters: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "chapters"),
		),
		NextChapter: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next chapter"),
		),
		PrevChapter: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "prev chapter"),
		),
		Cover: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "cover"),
		),
		LastPage: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last page"),
		),
		Direction: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "direction"),
		),
		Reload: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// footerBindings is the order the footer presents shortcuts in.
func (k keyMap) footerBindings() []key.Binding {
	return []key.Binding{k.Chapters, k.NextChapter, k.PrevChapter, k.Direction, k.Quit}
}
