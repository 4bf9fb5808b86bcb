package tuipager

import "github.com/charmbracelet/lipgloss"

var (
	colorGutterBg = lipgloss.Color("#181825")
	colorMuted    = lipgloss.Color("#a6adc8")
)

// Styles controls the chrome the component draws itself: the gutter
// between pages and the hint shown while no pages are loaded. Page content
// is styled by the pages.
type Styles struct {
	Gutter    lipgloss.Style
	EmptyHint lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Gutter:    lipgloss.NewStyle().Background(colorGutterBg),
		EmptyHint: lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
	}
}
