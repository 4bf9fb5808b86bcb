package reader

import "github.com/charmbracelet/lipgloss"

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorBg       lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorSurface0 lipgloss.Color = "#313244"
	colorError    lipgloss.Color = "#f38ba8"
)

// styleSet carries every style the reader renders with. The accent and
// muted colors come from configuration; the rest of the palette is fixed.
type styleSet struct {
	chapterHeading lipgloss.Style
	pageBody       lipgloss.Style
	pageNumber     lipgloss.Style

	coverTitle  lipgloss.Style
	coverByline lipgloss.Style
	coverHint   lipgloss.Style

	statusBar    lipgloss.Style
	statusErrBar lipgloss.Style
	footer       lipgloss.Style
	footerKey    lipgloss.Style
	footerDesc   lipgloss.Style

	pickerTitle    lipgloss.Style
	pickerQuery    lipgloss.Style
	pickerItem     lipgloss.Style
	pickerSelected lipgloss.Style
	pickerHint     lipgloss.Style
	pickerBox      lipgloss.Style
}

func newStyleSet(accent, muted string) *styleSet {
	ac := lipgloss.Color(accent)
	if accent == "" {
		ac = colorAccent
	}
	mu := lipgloss.Color(muted)
	if muted == "" {
		mu = colorMuted
	}
	return &styleSet{
		chapterHeading: lipgloss.NewStyle().Foreground(ac).Bold(true),
		pageBody:       lipgloss.NewStyle().Foreground(colorText),
		pageNumber:     lipgloss.NewStyle().Foreground(mu),

		coverTitle:  lipgloss.NewStyle().Foreground(ac).Bold(true),
		coverByline: lipgloss.NewStyle().Foreground(colorText),
		coverHint:   lipgloss.NewStyle().Foreground(mu).Italic(true),

		statusBar:    lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0),
		statusErrBar: lipgloss.NewStyle().Foreground(colorError).Background(colorSurface0).Bold(true),
		footer:       lipgloss.NewStyle().Background(colorMantle),
		footerKey:    lipgloss.NewStyle().Foreground(ac).Bold(true).Background(colorMantle),
		footerDesc:   lipgloss.NewStyle().Foreground(mu).Background(colorMantle),

		pickerTitle:    lipgloss.NewStyle().Foreground(ac).Bold(true),
		pickerQuery:    lipgloss.NewStyle().Foreground(colorText),
		pickerItem:     lipgloss.NewStyle().Foreground(colorText),
		pickerSelected: lipgloss.NewStyle().Foreground(colorBg).Background(ac).Bold(true),
		pickerHint:     lipgloss.NewStyle().Foreground(mu),
		pickerBox:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(mu).Padding(0, 1),
	}
}
